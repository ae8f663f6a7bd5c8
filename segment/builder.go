// Package segment's builder.go implements the segmentation graph
// constructor described for the segmentation core's L3 layer: it turns a
// pixel raster plus two seed sets into a terminated flow network, solves
// it, and projects the min cut back to pixel indices.
package segment

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/flooose01/image-segmentation/gridgraph"
	"github.com/flooose01/image-segmentation/histogram"
	"github.com/flooose01/image-segmentation/maxflow"
	"github.com/flooose01/image-segmentation/network"
	"github.com/flooose01/image-segmentation/voxel"
)

// Calibrated constants — see DESIGN.md for the discrepancy between a
// formula naming DIST=10 and the value actually used here.
const (
	boundarySigma = 60.0
	lambda        = 1.0
	dist          = 50.0
)

// Segment partitions pixels into "object" and "background" regions given
// two non-overlapping seed sets, by building a capacitated flow network
// with boundary (n-link) and regional (t-link) cost terms and solving a
// minimum s-t cut over it.
//
// Preconditions: pixels is non-empty and rectangular; both seed sets are
// non-empty; every seed index is in range. Violating any fails with a
// specific error and builds no network.
func Segment(pixels [][]voxel.Pixel, seedObj, seedBkg voxel.IndexSet, opts ...Option) (Result, error) {
	cfg := newSettings(opts)

	grid, err := gridgraph.NewPixelGrid(pixels)
	if err != nil {
		return Result{}, ErrInvalidRaster
	}
	if len(seedObj) == 0 || len(seedBkg) == 0 {
		return Result{}, ErrEmptySeeds
	}
	if err := validateSeeds(grid, seedObj, seedBkg); err != nil {
		return Result{}, err
	}

	voxels := buildVoxelGrid(pixels)

	cfg.logger.WithFields(logrus.Fields{
		"height": grid.Height,
		"width":  grid.Width,
		"obj":    len(seedObj),
		"bkg":    len(seedBkg),
	}).Debug("segment: starting graph construction")

	g := network.New[voxel.Voxel]()
	k, err := addBoundaryEdges(g, grid, voxels)
	if err != nil {
		return Result{}, err
	}
	if err := addRegionalEdges(g, voxels, seedObj, seedBkg, k); err != nil {
		return Result{}, err
	}

	s, t := voxel.SourceVoxel(), voxel.SinkVoxel()
	res, err := maxflow.Solve(g, s, t)
	if err != nil {
		return Result{}, err
	}

	cfg.logger.WithFields(logrus.Fields{
		"max_flow": res.MaxFlow(),
	}).Debug("segment: solved")

	object := voxel.IndexSet{}
	for i := 0; i < grid.Height; i++ {
		for j := 0; j < grid.Width; j++ {
			v := voxels[i][j]
			if res.InCut(v) {
				object[v.Index] = struct{}{}
			}
		}
	}

	return Result{
		height:  grid.Height,
		width:   grid.Width,
		object:  object,
		seedObj: copySet(seedObj),
		seedBkg: copySet(seedBkg),
	}, nil
}

// validateSeeds fails with ErrSeedOutOfRange if any index in either seed
// set lies outside grid's bounds.
func validateSeeds(grid *gridgraph.PixelGrid, seedObj, seedBkg voxel.IndexSet) error {
	for ix := range seedObj {
		if !grid.InBounds(ix.I, ix.J) {
			return ErrSeedOutOfRange
		}
	}
	for ix := range seedBkg {
		if !grid.InBounds(ix.I, ix.J) {
			return ErrSeedOutOfRange
		}
	}

	return nil
}

// buildVoxelGrid wraps each pixel of the raster as a Voxel at its own
// index.
func buildVoxelGrid(pixels [][]voxel.Pixel) [][]voxel.Voxel {
	voxels := make([][]voxel.Voxel, len(pixels))
	for i, row := range pixels {
		voxels[i] = make([]voxel.Voxel, len(row))
		for j, p := range row {
			voxels[i][j] = voxel.NewVoxel(i, j, p)
		}
	}

	return voxels
}

// addBoundaryEdges adds one directed n-link per ordered (p, q) pair of
// 4-neighbors, with capacity ⌊B(p,q)⌋. Because every pixel's own
// Neighbors4 pass adds p→q, and q's own pass (when q is itself visited)
// adds q→p, each undirected adjacency ends up with edges in both
// directions without any explicit dual-add step. It returns
// K = 1 + ⌊max_p Σ_q B(p,q)⌋, the t-link anchor capacity that must exceed
// any possible boundary cost so that cutting a seed is never optimal.
func addBoundaryEdges(g *network.FlowNetwork[voxel.Voxel], grid *gridgraph.PixelGrid, voxels [][]voxel.Voxel) (int, error) {
	maxSum := 0.0

	for i := 0; i < grid.Height; i++ {
		for j := 0; j < grid.Width; j++ {
			p := voxels[i][j]
			sum := 0.0
			for _, n := range grid.Neighbors4(i, j) {
				q := voxels[n[0]][n[1]]
				b := boundaryCost(p, q)
				sum += b

				if err := g.AddEdge(&network.Edge[voxel.Voxel]{
					Source:      p,
					Destination: q,
					Capacity:    int(math.Floor(b)),
				}); err != nil {
					return 0, err
				}
			}
			if sum > maxSum {
				maxSum = sum
			}
		}
	}

	return 1 + int(math.Floor(maxSum)), nil
}

// boundaryCost computes B(p,q) = DIST·exp(−(I(p)−I(q))²/(2σ²)), or 0 if p
// and q are the same pixel.
func boundaryCost(p, q voxel.Voxel) float64 {
	if p.Index == q.Index {
		return 0
	}
	diff := float64(p.Pixel.Intensity()) - float64(q.Pixel.Intensity())

	return dist * math.Exp(-(diff*diff)/(2*boundarySigma*boundarySigma))
}

// addRegionalEdges adds one t-link pair per pixel: a seed anchor at
// capacity k for pixels in either seed set, or a regional term derived
// from each class's intensity histogram otherwise.
func addRegionalEdges(g *network.FlowNetwork[voxel.Voxel], voxels [][]voxel.Voxel, seedObj, seedBkg voxel.IndexSet, k int) error {
	objHist, err := histogram.New(voxels, seedObj)
	if err != nil {
		return err
	}
	bkgHist, err := histogram.New(voxels, seedBkg)
	if err != nil {
		return err
	}

	s, t := voxel.SourceVoxel(), voxel.SinkVoxel()

	for _, row := range voxels {
		for _, p := range row {
			var addErr error
			switch {
			case seedObj.Contains(p.Index):
				addErr = g.AddEdge(&network.Edge[voxel.Voxel]{Source: s, Destination: p, Capacity: k})
			case seedBkg.Contains(p.Index):
				addErr = g.AddEdge(&network.Edge[voxel.Voxel]{Source: p, Destination: t, Capacity: k})
			default:
				intensity := p.Pixel.Intensity()
				objCap := regionalCapacity(objHist.NegLogLikelihood(intensity))
				bkgCap := regionalCapacity(bkgHist.NegLogLikelihood(intensity))
				if addErr = g.AddEdge(&network.Edge[voxel.Voxel]{Source: s, Destination: p, Capacity: objCap}); addErr == nil {
					addErr = g.AddEdge(&network.Edge[voxel.Voxel]{Source: p, Destination: t, Capacity: bkgCap})
				}
			}
			if addErr != nil {
				return addErr
			}
		}
	}

	return nil
}

// regionalCapacity turns a histogram negative-log-likelihood into an edge
// capacity. A bin that floored to zero count reports +Inf, which this
// clamps to a large finite capacity: converting a +Inf float64 to int is
// undefined by the language, and the intent — an edge so expensive that
// cutting it is never optimal — is served just as well by any capacity
// that dwarfs every boundary and seed-anchor capacity in the network.
func regionalCapacity(cost float64) int {
	if math.IsInf(cost, 1) {
		return math.MaxInt32
	}

	return int(math.Floor(lambda * cost))
}

// copySet returns a shallow copy of s.
func copySet(s voxel.IndexSet) voxel.IndexSet {
	out := make(voxel.IndexSet, len(s))
	for ix := range s {
		out[ix] = struct{}{}
	}
	return out
}
