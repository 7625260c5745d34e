// Package flow provides the core value types for matrix-power flows.
//
// The package defines the plain data every pipeline stage shares:
//
//   - [Vec3]: a point or direction in 3D world space
//   - [Mat3]: a row-major 3x3 real matrix
//   - [Lerp]: linear interpolation between two points
//
// Both types have value semantics and are copied by assignment; no stage
// of the pipeline mutates an input in place, which is what makes repeated
// recomputation for a new time parameter safe.
package flow
