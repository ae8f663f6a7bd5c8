// Package histogram implements the 256-bin Gaussian-smoothed intensity
// histogram used by the segmentation builder's regional (t-link) cost
// term, as specified for the segmentation core's L3a layer.
//
// For each seed pixel with intensity I, every bin k in [0,255] is
// incremented by floor(1000 * φ(k-I; μ=0, σ=10)), where φ is the Gaussian
// probability density. This spreads each observation into a Gaussian
// kernel centered at its own intensity (Parzen-window smoothing). The
// kernel's σ=10 is narrow relative to the 0-255 intensity range: a bin far
// from every seed's intensity can still floor to zero, so
// NegLogLikelihood's log(0) case is a real, reachable case, not a
// theoretical one — see its doc comment for how it is handled.
//
// A naive caller could build the background histogram from the object
// seed set by accident, silently collapsing both classes' regional terms
// together. New takes a single seed set per call, so each class's
// histogram must be constructed separately and explicitly.
package histogram

import (
	"errors"
	"math"

	"github.com/flooose01/image-segmentation/voxel"
)

// NumIntensities is the number of bins: one per possible 8-bit intensity
// value.
const NumIntensities = 256

// kernelSigma and kernelScale are the Parzen-window smoothing parameters
// from the original formulation: a Gaussian of σ=10 scaled by 1000 before
// truncation to an integer bin increment.
const (
	kernelSigma = 10.0
	kernelScale = 1000.0
)

// ErrEmptySeed is returned by New when a seed set has no members; an empty
// seed set would leave every bin at zero, making the log-likelihood
// queries undefined.
var ErrEmptySeed = errors.New("histogram: seed set must not be empty")

// Histogram is a smoothed count of pixel intensities over a seed set,
// supporting the regional negative-log-likelihood query used as a t-link
// capacity.
type Histogram struct {
	bins  [NumIntensities]int
	total int
}

// New builds a Histogram over the pixels at indices seed, read from
// voxels. It fails with ErrEmptySeed if seed is empty.
func New(voxels [][]voxel.Voxel, seed voxel.IndexSet) (*Histogram, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	h := &Histogram{}
	for idx := range seed {
		intensity := int(voxels[idx.I][idx.J].Pixel.Intensity())
		for k := 0; k < NumIntensities; k++ {
			h.bins[k] += int(math.Floor(gaussianDensity(float64(k-intensity), kernelSigma) * kernelScale))
		}
	}
	for _, c := range h.bins {
		h.total += c
	}

	return h, nil
}

// gaussianDensity evaluates the probability density of a zero-mean normal
// distribution with standard deviation sigma at x.
func gaussianDensity(x, sigma float64) float64 {
	return math.Exp(-(x*x)/(2*sigma*sigma)) / (sigma * math.Sqrt(2*math.Pi))
}

// NegLogLikelihood returns -(ln(bins[intensity]) - ln(total)), the
// regional cost of assigning a pixel of this intensity to the class this
// histogram represents. It is always non-negative because bins[intensity]
// ≤ total.
//
// A bin that floored to zero yields ln(0) = -Inf, so this returns +Inf:
// an infinitely expensive assignment to this class. Callers that turn
// this into an integer edge capacity must clamp it themselves.
func (h *Histogram) NegLogLikelihood(intensity uint8) float64 {
	count := h.bins[intensity]

	return -(math.Log(float64(count)) - math.Log(float64(h.total)))
}

// Total returns the cached sum of all bins.
func (h *Histogram) Total() int { return h.total }
