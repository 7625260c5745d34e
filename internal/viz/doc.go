// Package viz renders a live terminal dashboard for one session using
// the Bubble Tea framework.
//
// The dashboard owns the only loop in the program: each tick advances a
// normalized sweep position through an injected easing function, asks
// the session for a fresh frame at the resulting time, and redraws the
// matrix snapshot, eigenvalues, vector positions, contact totals, and a
// coordinate history graph.
//
// # Key Bindings
//
//	Space - Pause/Resume the sweep
//	R     - Restart the sweep and clear contact totals
//	+/-   - Adjust sweep speed
//	Q     - Quit
package viz
