package config

import "sort"

var Presets = map[string]*Config{
	"rotation": {
		Matrix: [][]float64{
			{0, -1, 0},
			{1, 0, 0},
			{0, 0, 1},
		},
		Multiplier: 1, Exponent: 1,
		Mode: "power", Activation: "identity",
		Start: 0, End: 2, Precision: 0.01,
		Vectors: []VectorConfig{
			{X: 1, Color: "red", Label: "e1"},
			{Y: 1, Color: "green", Label: "e2"},
		},
		Walls: []WallConfig{
			{ID: "yz-plane", Axis: "x", Position: 0},
		},
	},
	"spiral": {
		Matrix: [][]float64{
			{0.57, -0.57, 0},
			{0.57, 0.57, 0},
			{0, 0, 0.9},
		},
		Multiplier: 1, Exponent: 1,
		Mode: "power", Activation: "identity",
		Start: 0, End: 4, Precision: 0.01,
		Vectors: []VectorConfig{
			{X: 1, Y: 0, Z: 1, Color: "cyan", Label: "p1"},
			{X: -1, Y: 0, Z: 1, Color: "magenta", Label: "p2"},
		},
		Walls: []WallConfig{
			{ID: "xz-plane", Axis: "y", Position: 0},
		},
	},
	"saddle": {
		Matrix: [][]float64{
			{2, 0, 0},
			{0, 0.5, 0},
			{0, 0, 1},
		},
		Multiplier: 1, Exponent: 1,
		Mode: "power", Activation: "identity",
		Start: 0, End: 2, Precision: 0.01,
		Vectors: []VectorConfig{
			{X: 1, Y: 1, Z: 0.5, Color: "yellow", Label: "q1"},
			{X: -1, Y: 1, Z: -0.5, Color: "blue", Label: "q2"},
		},
		Walls: []WallConfig{
			{ID: "x-gate", Axis: "x", Position: 3},
		},
	},
	"contract": {
		Matrix: [][]float64{
			{0.5, 0, 0},
			{0, 0.5, 0},
			{0, 0, 0.5},
		},
		Multiplier: 1, Exponent: 1,
		Mode: "power", Activation: "identity",
		Start: 0, End: 3, Precision: 0.01,
		Vectors: []VectorConfig{
			{X: 1, Y: 1, Z: 1, Color: "white", Label: "c1"},
		},
		Walls: []WallConfig{
			{ID: "x-gate", Axis: "x", Position: 0.25},
		},
	},
	"blend": {
		Matrix: [][]float64{
			{0, -2, 0},
			{2, 0, 0},
			{0, 0, 2},
		},
		Multiplier: 1, Exponent: 1, Normalize: true,
		Mode: "linear", Activation: "identity",
		Start: 0, End: 1, Precision: 0.01,
		Vectors: []VectorConfig{
			{X: 1, Color: "red", Label: "e1"},
			{Y: 1, Color: "green", Label: "e2"},
			{Z: 1, Color: "blue", Label: "e3"},
		},
	},
	// A Jordan block: valid as configuration, but the matrix has no
	// eigenvector basis, so the session reports it unavailable. Kept as
	// the canonical demo of that failure path.
	"shear": {
		Matrix: [][]float64{
			{1, 1, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
		Multiplier: 1, Exponent: 1,
		Mode: "power", Activation: "identity",
		Start: 0, End: 1, Precision: 0.01,
		Vectors: []VectorConfig{
			{X: 1, Y: 1, Color: "yellow", Label: "s1"},
		},
	},
	"squash": {
		Matrix: [][]float64{
			{3, 0, 0},
			{0, 3, 0},
			{0, 0, 3},
		},
		Multiplier: 1, Exponent: 2,
		Mode: "power", Activation: "tanh",
		Start: 0, End: 1, Precision: 0.01,
		Vectors: []VectorConfig{
			{X: 0.2, Y: 0.1, Z: 0, Color: "cyan", Label: "s1"},
			{X: -0.1, Y: 0.2, Z: 0.1, Color: "magenta", Label: "s2"},
		},
		Walls: []WallConfig{
			{ID: "x-limit", Axis: "x", Position: 1},
		},
	},
}

// GetPreset returns a copy of the named preset, nil when the name is
// unknown. Copies keep callers from editing the shared table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
