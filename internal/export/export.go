// Package export serializes assembled scenes for external tooling.
// Writers receive the data; the caller decides whether that is stdout
// or a file.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/scene"
)

// Data is the JSON envelope for one assembled scene.
type Data struct {
	Session    string             `json:"session"`
	Mode       string             `json:"mode"`
	Activation string             `json:"activation,omitempty"`
	Matrix     [][]float64        `json:"matrix"`
	Values     []ValueData        `json:"eigenvalues"`
	Times      []float64          `json:"times"`
	Objects    []ObjectData       `json:"objects"`
	Contacts   []ContactData      `json:"contacts,omitempty"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
	Warnings   []string           `json:"warnings,omitempty"`
}

// ValueData splits an eigenvalue for consumers without complex types.
type ValueData struct {
	Re      float64 `json:"re"`
	Im      float64 `json:"im"`
	Complex bool    `json:"complex"`
}

// ObjectData is one traced vector: display metadata plus [x, y, z]
// triples aligned with Times.
type ObjectData struct {
	Label  string      `json:"label"`
	Color  string      `json:"color,omitempty"`
	Source []float64   `json:"source"`
	Points [][]float64 `json:"points"`
}

// ContactData is one wall contact found along a path.
type ContactData struct {
	Wall      string    `json:"wall"`
	Axis      string    `json:"axis"`
	Position  float64   `json:"position"`
	Point     []float64 `json:"point"`
	Direction int       `json:"direction"`
}

// Build flattens a scene into its serialized form.
func Build(scn *scene.Scene) Data {
	data := Data{
		Session:    scn.ID,
		Mode:       string(scn.Mode),
		Activation: scn.Activation,
		Matrix:     make([][]float64, 3),
		Values:     make([]ValueData, 0, len(scn.Values)),
		Times:      scn.Times,
		Objects:    make([]ObjectData, 0, len(scn.Objects)),
		Metrics:    scn.Metrics,
		Warnings:   scn.Warnings,
	}
	for i := 0; i < 3; i++ {
		data.Matrix[i] = []float64{scn.Matrix[i][0], scn.Matrix[i][1], scn.Matrix[i][2]}
	}
	for _, v := range scn.Values {
		data.Values = append(data.Values, ValueData{Re: v.Real(), Im: v.Imag(), Complex: v.IsComplex()})
	}
	for _, obj := range scn.Objects {
		points := make([][]float64, len(obj.Points))
		for i, p := range obj.Points {
			points[i] = triple(p)
		}
		data.Objects = append(data.Objects, ObjectData{
			Label:  obj.Label,
			Color:  obj.Color,
			Source: triple(obj.Source),
			Points: points,
		})
	}
	for _, ev := range scn.Contacts {
		data.Contacts = append(data.Contacts, ContactData{
			Wall:      ev.WallID,
			Axis:      ev.Axis.String(),
			Position:  ev.Position,
			Point:     triple(ev.Point),
			Direction: ev.Direction,
		})
	}
	return data
}

// JSON writes a scene as indented JSON.
func JSON(w io.Writer, scn *scene.Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Build(scn))
}

// CSV writes one row per sample time: a time column followed by x/y/z
// columns for every object.
func CSV(w io.Writer, scn *scene.Scene) error {
	cw := csv.NewWriter(w)

	header := []string{"time"}
	for i := range scn.Objects {
		header = append(header,
			fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i), fmt.Sprintf("z%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, t := range scn.Times {
		row := []string{strconv.FormatFloat(t, 'f', 6, 64)}
		for _, obj := range scn.Objects {
			if i >= len(obj.Points) {
				row = append(row, "0", "0", "0")
				continue
			}
			p := obj.Points[i]
			row = append(row,
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64),
				strconv.FormatFloat(p.Z, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func triple(p flow.Vec3) []float64 { return []float64{p.X, p.Y, p.Z} }
