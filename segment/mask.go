package segment

import (
	"errors"
	"fmt"

	"github.com/flooose01/image-segmentation/voxel"
)

// ErrMaskIndexOutOfBounds is returned by Mask.At for a row or column
// outside the mask's dimensions.
var ErrMaskIndexOutOfBounds = errors.New("segment: mask index out of bounds")

// Mask is a dense height×width view of a segmentation result: true at
// object pixels, false everywhere else (background and, for pixels
// outside either seed set, whichever side of the cut they fell on). It is
// a flat bool slice rather than a numeric matrix, since a segmentation
// result is inherently binary and nothing downstream needs a float64
// cell to hold anything but 0 or 1.
type Mask struct {
	height, width int
	data          []bool
}

// newMask builds a Mask from the object index set returned by a completed
// Segment call.
func newMask(height, width int, object voxel.IndexSet) *Mask {
	m := &Mask{height: height, width: width, data: make([]bool, height*width)}
	for ix := range object {
		m.data[ix.I*width+ix.J] = true
	}

	return m
}

// Height returns the mask's row count.
func (m *Mask) Height() int { return m.height }

// Width returns the mask's column count.
func (m *Mask) Width() int { return m.width }

// At reports whether (row, col) was assigned to the object class, or
// fails with ErrMaskIndexOutOfBounds if the coordinate lies outside the
// mask's dimensions.
func (m *Mask) At(row, col int) (bool, error) {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		return false, fmt.Errorf("%w: (%d,%d) in %dx%d mask", ErrMaskIndexOutOfBounds, row, col, m.height, m.width)
	}

	return m.data[row*m.width+col], nil
}
