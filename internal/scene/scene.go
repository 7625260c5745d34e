package scene

import (
	"context"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/contact"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/eigen"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
)

// Scene is the complete description of one full pass over the session
// window: everything a consumer needs to draw or export the paths
// without touching the pipeline again.
type Scene struct {
	ID         string
	Mode       eigen.Mode
	Activation string
	Matrix     flow.Mat3
	Values     [3]eigen.Value
	Times      []float64
	Objects    []Object
	Walls      []contact.Wall
	Contacts   []contact.Event
	Metrics    map[string]float64
	Warnings   []string
}

// Object is one tracked vector's sampled path plus display metadata.
type Object struct {
	Label  string
	Color  string
	Source flow.Vec3
	Points []flow.Vec3
}

// Build assembles the scene for the whole window: full trajectories for
// every tracked vector, the contact events found along them, and the
// static facts rendered around the paths.
func (s *Session) Build(ctx context.Context) (*Scene, error) {
	res, err := s.Trajectories(ctx)
	if err != nil {
		return nil, err
	}

	scn := &Scene{
		ID:         s.id,
		Mode:       s.mode,
		Activation: s.act,
		Matrix:     s.prepared,
		Values:     s.eval.Values(),
		Times:      res.Times,
		Walls:      s.Walls(),
		Contacts:   s.sweep(res),
		Metrics:    res.Metrics,
		Warnings:   s.Warnings(),
	}
	for i, path := range res.Trajectories {
		spec := s.specs[i]
		scn.Objects = append(scn.Objects, Object{
			Label:  spec.Label,
			Color:  spec.Color,
			Source: path.Source,
			Points: path.Points,
		})
	}
	return scn, nil
}
