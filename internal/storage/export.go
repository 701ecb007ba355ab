package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/avirni/qwell/internal/quantum"
)

type ExportData struct {
	ID        string      `json:"id"`
	Shape     string      `json:"shape"`
	ShapeName string      `json:"shape_name"`
	Method    string      `json:"method"`
	XMin      float64     `json:"x_min"`
	XMax      float64     `json:"x_max"`
	Steps     int         `json:"steps"`
	Amplitude float64     `json:"amplitude"`
	States    int         `json:"states"`
	Positions []float64   `json:"positions"`
	Potential []float64   `json:"potential"`
	Energies  []float64   `json:"energies"`
	Vectors   [][]float64 `json:"eigenvectors"`
}

func BuildExport(meta *RunMetadata, x, v []float64, spec quantum.Spectrum) ExportData {
	return ExportData{
		ID:        meta.ID,
		Shape:     meta.Shape,
		ShapeName: meta.ShapeName,
		Method:    meta.Method,
		XMin:      meta.XMin,
		XMax:      meta.XMax,
		Steps:     meta.Steps,
		Amplitude: meta.Amplitude,
		States:    meta.States,
		Positions: x,
		Potential: v,
		Energies:  spec.Values,
		Vectors:   spec.Vectors,
	}
}

func ExportJSON(w io.Writer, data ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportJSONStdout(data ExportData) error {
	return ExportJSON(os.Stdout, data)
}
