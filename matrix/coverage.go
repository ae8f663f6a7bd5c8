// Package matrix provides the segmentation core's one post-hoc diagnostic
// statistic: Coverage, the split of non-seed pixels between the object
// and background classes after a Segment call. Nothing in this core
// performs general-purpose linear algebra, so there is no matrix type
// here — the object mask itself is represented directly where it's
// produced (segment.Mask), not through an intermediate numeric type.
package matrix

// Coverage reports, over the pixels that were not part of either seed
// set, how many were assigned to the object class versus the background
// class. It is a cheap sanity diagnostic: a caller can log it without
// rerunning the solver, and a wildly lopsided Coverage (near 0 or near 1)
// on an image with balanced seeds is usually a sign the seeds need work.
type Coverage struct {
	ObjectCount     int
	BackgroundCount int
}

// Total returns ObjectCount + BackgroundCount.
func (c Coverage) Total() int { return c.ObjectCount + c.BackgroundCount }

// ObjectFraction returns ObjectCount / Total(), or 0 if Total() is 0.
func (c Coverage) ObjectFraction() float64 {
	if c.Total() == 0 {
		return 0
	}

	return float64(c.ObjectCount) / float64(c.Total())
}
