// Package segment is the segmentation graph constructor: it builds the
// s/t-terminated flow network for a pixel raster and two seed sets, solves
// it with maxflow, and projects the source-side reachable set back to
// pixel indices.
//
// Segment is the module's single primary entry point. Everything else —
// voxel, network, maxflow, histogram, gridgraph, matrix — exists to serve
// this one operation.
package segment
