// Package analysis characterizes a transform from its eigenvalues and
// renders traced paths on a coordinate plane.
//
//   - [Classify]: bucket a spectrum as contracting, expanding, saddle or neutral
//   - [Spectrum.GrowthRate]: exponential rate of the dominant direction
//   - [Spectrum.Angle]: rotation angle per unit time from a complex pair
//   - [Project]: flatten a 3D path onto a coordinate plane
//   - [Projection.ASCII]: plot a projected path in the terminal
//
// # Regime Detection
//
// The spectrum alone decides the long-term fate of every vector:
//
//	spec := analysis.Classify(values)
//	if spec.Regime == analysis.RegimeExpanding {
//	    // Some direction escapes to infinity
//	}
package analysis
