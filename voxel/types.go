// Package voxel defines the pixel-grid vertex identity shared by the
// network, histogram and segment packages.
//
// An Index is a (row, column) coordinate. A Pixel is a 24-bit RGB triple.
// A Voxel binds an Index to a Pixel for ordinary grid cells, or stands for
// one of the two flow-network terminals when its Index is a reserved
// sentinel. Voxel is a small, comparable value type so it can be used
// directly as a map key inside network.FlowNetwork.
package voxel

import "fmt"

// Index is a (row, column) coordinate into a pixel raster.
type Index struct {
	I, J int
}

// sourceRow and sinkRow are out-of-range row markers that can never collide
// with a real raster row (rows are always ≥ 0), giving Source and Sink
// injective, stable identities regardless of raster size.
const (
	sourceRow = -1
	sinkRow   = -2
)

// Source is the reserved Index identifying the flow network's source
// terminal s.
var Source = Index{I: sourceRow, J: sourceRow}

// Sink is the reserved Index identifying the flow network's sink terminal t.
var Sink = Index{I: sinkRow, J: sinkRow}

func (ix Index) String() string {
	switch ix {
	case Source:
		return "source"
	case Sink:
		return "sink"
	default:
		return fmt.Sprintf("(%d,%d)", ix.I, ix.J)
	}
}

// IndexSet is a set of raster coordinates, used for the operator-supplied
// object and background seed sets.
type IndexSet map[Index]struct{}

// NewIndexSet builds an IndexSet from the given indices.
func NewIndexSet(indices ...Index) IndexSet {
	s := make(IndexSet, len(indices))
	for _, ix := range indices {
		s[ix] = struct{}{}
	}

	return s
}

// Contains reports whether ix is a member of s.
func (s IndexSet) Contains(ix Index) bool {
	_, ok := s[ix]

	return ok
}

// Pixel is a 24-bit RGB color sample.
type Pixel struct {
	R, G, B uint8
}

// Intensity is max(R, G, B), the luminance proxy used throughout the
// boundary and regional cost terms.
func (p Pixel) Intensity() uint8 {
	m := p.R
	if p.G > m {
		m = p.G
	}
	if p.B > m {
		m = p.B
	}

	return m
}

// Voxel is a flow-network vertex: either a terminal (Source or Sink) or a
// grid cell carrying its Index and Pixel color.
//
// Voxel is comparable by value: equality (and therefore map-key identity)
// is (Index, Pixel) for ordinary cells and Index alone for terminals,
// because color is meaningless for a terminal and must not perturb its
// identity.
type Voxel struct {
	Index Index
	Pixel Pixel
}

// NewVoxel constructs the Voxel for raster cell (i, j) with the given color.
func NewVoxel(i, j int, p Pixel) Voxel {
	return Voxel{Index: Index{I: i, J: j}, Pixel: p}
}

// SourceVoxel returns the sentinel Voxel representing the flow network's
// source terminal.
func SourceVoxel() Voxel { return Voxel{Index: Source} }

// SinkVoxel returns the sentinel Voxel representing the flow network's
// sink terminal.
func SinkVoxel() Voxel { return Voxel{Index: Sink} }

// IsTerminal reports whether v is the Source or the Sink.
func (v Voxel) IsTerminal() bool {
	return v.Index == Source || v.Index == Sink
}

// IsSource reports whether v is the Source terminal.
func (v Voxel) IsSource() bool { return v.Index == Source }

// IsSink reports whether v is the Sink terminal.
func (v Voxel) IsSink() bool { return v.Index == Sink }

// Key returns the comparable identity used for map lookups: for terminals
// it collapses to the Index alone (color is irrelevant there), for ordinary
// cells it is the full (Index, Pixel) value.
//
// Because Voxel is itself comparable and a terminal's Pixel is always the
// zero value, v == other already implements this rule; Key exists so call
// sites can be explicit about intent without relying on that coincidence.
func (v Voxel) Key() Voxel { return v }

// ID returns an integer identity for v that is injective over non-terminal
// voxels of a raster with the given height, and distinct from both
// terminal ids. Terminals map to negative ids (Source: -1, Sink: -2);
// ordinary cells map to j*height + i (column-major), which stays injective
// for any column count because every row index i lies in [0, height).
func (v Voxel) ID(height int) int {
	if v.IsSource() {
		return -1
	}
	if v.IsSink() {
		return -2
	}

	return v.Index.J*height + v.Index.I
}

func (v Voxel) String() string {
	if v.IsTerminal() {
		return v.Index.String()
	}

	return v.Index.String()
}
