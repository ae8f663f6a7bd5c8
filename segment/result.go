package segment

import (
	"github.com/flooose01/image-segmentation/matrix"
	"github.com/flooose01/image-segmentation/voxel"
)

// Result is the outcome of a completed Segment call: the object pixel mask
// and cheap derived views over it.
type Result struct {
	height, width int
	object        voxel.IndexSet
	seedObj       voxel.IndexSet
	seedBkg       voxel.IndexSet
}

// Object returns the set of pixel indices on the source side of the
// minimum cut — the object mask. The returned set is an independent copy;
// mutating it does not affect r.
func (r Result) Object() voxel.IndexSet {
	return voxel.NewIndexSet(keys(r.object)...)
}

// Contains reports whether ix was assigned to the object class.
func (r Result) Contains(ix voxel.Index) bool {
	return r.object.Contains(ix)
}

// Mask renders the object mask as a dense height×width grid: true at
// object pixels, false everywhere else. It is a pure, already-computed
// view: no part of the pipeline is rerun to produce it.
func (r Result) Mask() *Mask {
	return newMask(r.height, r.width, r.object)
}

// Coverage reports, over the pixels that belonged to neither seed set, how
// many were assigned to the object class versus the background class.
func (r Result) Coverage() matrix.Coverage {
	var c matrix.Coverage
	for i := 0; i < r.height; i++ {
		for j := 0; j < r.width; j++ {
			ix := voxel.Index{I: i, J: j}
			if r.seedObj.Contains(ix) || r.seedBkg.Contains(ix) {
				continue
			}
			if r.object.Contains(ix) {
				c.ObjectCount++
			} else {
				c.BackgroundCount++
			}
		}
	}

	return c
}

func keys(s voxel.IndexSet) []voxel.Index {
	out := make([]voxel.Index, 0, len(s))
	for ix := range s {
		out = append(out, ix)
	}

	return out
}
