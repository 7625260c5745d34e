package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/activation"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/contact"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/eigen"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
)

const (
	DefaultMultiplier = 1.0
	DefaultExponent   = 1
	DefaultStart      = 0.0
	DefaultEnd        = 1.0
	DefaultPrecision  = 0.01
)

// Config describes one visualization session: the base matrix, how it is
// prepared before decomposition, the trace window, and the tracked
// vectors and walls.
type Config struct {
	Matrix     [][]float64 `yaml:"matrix"`
	Multiplier float64     `yaml:"multiplier"`
	Exponent   int         `yaml:"exponent"`
	Normalize  bool        `yaml:"normalize"`

	Mode       string  `yaml:"mode"`
	Activation string  `yaml:"activation"`
	Start      float64 `yaml:"start"`
	End        float64 `yaml:"end"`
	Precision  float64 `yaml:"precision"`

	Vectors []VectorConfig `yaml:"vectors"`
	Walls   []WallConfig   `yaml:"walls"`
}

// VectorConfig is one tracked vector. Hidden inverts the usual
// visibility flag so that a vector listed without extra keys is shown.
type VectorConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
	Color  string  `yaml:"color"`
	Label  string  `yaml:"label"`
	Hidden bool    `yaml:"hidden"`
}

func (v VectorConfig) Vec3() flow.Vec3 { return flow.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// WallConfig is one axis-aligned wall.
type WallConfig struct {
	ID       string  `yaml:"id"`
	Axis     string  `yaml:"axis"`
	Position float64 `yaml:"position"`
}

func DefaultConfig() *Config {
	return &Config{
		Matrix: [][]float64{
			{0, -1, 0},
			{1, 0, 0},
			{0, 0, 1},
		},
		Multiplier: DefaultMultiplier,
		Exponent:   DefaultExponent,
		Mode:       string(eigen.ModePower),
		Activation: "identity",
		Start:      DefaultStart,
		End:        DefaultEnd,
		Precision:  DefaultPrecision,
		Vectors: []VectorConfig{
			{X: 1, Color: "red", Label: "e1"},
			{Y: 1, Color: "green", Label: "e2"},
			{Z: 1, Color: "blue", Label: "e3"},
		},
		Walls: []WallConfig{
			{ID: "yz-plane", Axis: "x", Position: 0},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns an independent copy, safe to mutate without touching a
// shared preset.
func (c *Config) Clone() *Config {
	out := *c
	out.Matrix = make([][]float64, len(c.Matrix))
	for i, row := range c.Matrix {
		out.Matrix[i] = append([]float64(nil), row...)
	}
	out.Vectors = append([]VectorConfig(nil), c.Vectors...)
	out.Walls = append([]WallConfig(nil), c.Walls...)
	return &out
}

// Validate reports the first problem that would stop a session from
// being assembled.
func (c *Config) Validate() error {
	if len(c.Matrix) != 3 {
		return fmt.Errorf("matrix must have 3 rows, got %d", len(c.Matrix))
	}
	for i, row := range c.Matrix {
		if len(row) != 3 {
			return fmt.Errorf("matrix row %d must have 3 entries, got %d", i, len(row))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("matrix entry [%d][%d] is not finite", i, j)
			}
		}
	}
	if c.Exponent < 1 {
		return fmt.Errorf("exponent must be at least 1, got %d", c.Exponent)
	}
	if math.IsNaN(c.Multiplier) || math.IsInf(c.Multiplier, 0) {
		return fmt.Errorf("multiplier is not finite")
	}
	switch eigen.Mode(c.Mode) {
	case eigen.ModePower, eigen.ModeLinear:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Activation != "" && activation.Get(c.Activation) == nil {
		return fmt.Errorf("unknown activation %q", c.Activation)
	}
	if c.End <= c.Start {
		return fmt.Errorf("end time %f must exceed start time %f", c.End, c.Start)
	}
	if c.Precision <= 0 {
		return fmt.Errorf("precision must be positive, got %f", c.Precision)
	}
	for i, w := range c.Walls {
		if _, ok := contact.ParseAxis(w.Axis); !ok {
			return fmt.Errorf("wall %d has unknown axis %q", i, w.Axis)
		}
		if math.IsNaN(w.Position) || math.IsInf(w.Position, 0) {
			return fmt.Errorf("wall %d position is not finite", i)
		}
	}
	return nil
}

// Matrix3 converts the matrix rows to a flow.Mat3. Missing entries stay
// zero; Validate rejects malformed shapes before this is trusted.
func (c *Config) Matrix3() flow.Mat3 {
	var m flow.Mat3
	for i := 0; i < 3 && i < len(c.Matrix); i++ {
		for j := 0; j < 3 && j < len(c.Matrix[i]); j++ {
			m[i][j] = c.Matrix[i][j]
		}
	}
	return m
}

// ActiveVectors returns the visible tracked vectors in listed order,
// metadata included.
func (c *Config) ActiveVectors() []VectorConfig {
	out := make([]VectorConfig, 0, len(c.Vectors))
	for _, v := range c.Vectors {
		if v.Hidden {
			continue
		}
		out = append(out, v)
	}
	return out
}

// WallList converts the wall entries, skipping any with an unparseable
// axis and assigning positional IDs where none is set.
func (c *Config) WallList() []contact.Wall {
	out := make([]contact.Wall, 0, len(c.Walls))
	for i, w := range c.Walls {
		axis, ok := contact.ParseAxis(w.Axis)
		if !ok {
			continue
		}
		id := w.ID
		if id == "" {
			id = fmt.Sprintf("wall-%d", i)
		}
		out = append(out, contact.Wall{ID: id, Axis: axis, Position: w.Position})
	}
	return out
}
