// Package imageseg is the root of a graph-cut image segmentation core.
//
// It partitions a color raster into "object" and "background" regions from
// two operator-supplied seed sets, by solving a minimum s-t cut over a
// capacitated flow network built from boundary and regional cost terms,
// following the Boykov–Funka-Lea formulation.
//
// The implementation is organized as a small pipeline of leaf packages:
//
//	voxel/     — Index, Pixel and Voxel value types shared by every layer
//	network/   — directed multigraph with residual-capacity edge semantics
//	maxflow/   — Edmonds–Karp shortest-augmenting-path max-flow / min-cut solver
//	histogram/ — Gaussian-smoothed intensity histogram and regional log-likelihoods
//	gridgraph/ — 4-neighbor iteration over a rectangular pixel raster
//	matrix/    — diagnostics-only coverage statistics
//	segment/   — the public Segment(pixels, seedObj, seedBkg) entry point
//
// Seed painting, image decoding/encoding, on-screen rendering and
// command-line plumbing are explicitly out of scope: this module only
// contracts with those layers via plain Go value types.
package imageseg
