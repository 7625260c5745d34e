// Package activation provides the element-wise shaping functions applied
// to transformed points before they enter a trajectory. An activation is
// any pure func(float64) float64; the named variants here cover the
// built-in choices, and callers may inject their own closure (a parsed
// user expression, for example) anywhere a Func is accepted.
package activation

import (
	"math"
	"sort"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
)

// Func is an element-wise activation. Implementations must be pure:
// the pipeline re-evaluates freely and expects identical results.
type Func func(float64) float64

// Identity passes coordinates through unchanged. It is the default for
// every pipeline that does not ask for shaping.
func Identity(x float64) float64 { return x }

var funcs = map[string]Func{
	"identity": Identity,
	"tanh":     math.Tanh,
	"sigmoid":  func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
	"relu":     func(x float64) float64 { return math.Max(0, x) },
	"softsign": func(x float64) float64 { return x / (1 + math.Abs(x)) },
	"sin":      math.Sin,
}

// Get returns the named activation, or nil when the name is unknown.
func Get(name string) Func {
	return funcs[name]
}

// List returns the registered names in alphabetical order.
func List() []string {
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply maps f over every component of v. A nil f acts as identity.
func Apply(f Func, v flow.Vec3) flow.Vec3 {
	if f == nil {
		return v
	}
	return flow.Vec3{X: f(v.X), Y: f(v.Y), Z: f(v.Z)}
}
