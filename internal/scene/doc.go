// Package scene assembles the numerical pipeline into renderable
// records. A [Session] snapshots one configuration: it prepares the base
// matrix (integer power, scalar multiplier, optional determinant
// normalization), decomposes it once, and then answers synchronous
// queries from a host display loop.
//
// The query shapes are [Session.Frame], the per-instant record a redraw
// consumes (matrix snapshot, time-adjusted eigenvalues, current and
// previous positions, wall contacts), [Session.Trajectories], the full
// sampled paths, and [Session.Build], which bundles a whole pass into a
// self-contained [Scene] for exporters. All are pure recomputations:
// calling them again for the same time yields the same record, so a
// host may drive the session at whatever rate it redraws.
//
// A matrix whose decomposition fails still yields a usable session; it
// reports the construction error from every query until the matrix is
// superseded with [Session.SetMatrix].
package scene
