package segment

import "errors"

// Sentinel errors for Segment's precondition checks. Lower-layer errors
// (network.ErrUnknownVertex, maxflow.ErrSourceEqualsSink, and the like) are
// surfaced unwrapped when the builder or solver reports them; they should
// never occur against a network this package assembles itself, but Segment
// does not hide them if they do.
var (
	// ErrInvalidRaster indicates pixels has zero rows or zero columns, or
	// is not rectangular.
	ErrInvalidRaster = errors.New("segment: raster must be non-empty and rectangular")

	// ErrEmptySeeds indicates seedObj or seedBkg has no members.
	ErrEmptySeeds = errors.New("segment: both seed sets must be non-empty")

	// ErrSeedOutOfRange indicates a seed index falls outside the raster.
	ErrSeedOutOfRange = errors.New("segment: seed index out of range")
)
