package metrics

import (
	"encoding/json"
	"io"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/sphkit/internal/snapshot"
)

// FieldStats summarises one per-particle quantity.
type FieldStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// Summary is the exportable overview of a snapshot.
type Summary struct {
	File      string                `json:"file"`
	Time      float64               `json:"time"`
	BoxSize   []float64             `json:"box_size"`
	Particles int                   `json:"particles"`
	Dim       int                   `json:"dim"`
	Kinetic   float64               `json:"kinetic_energy"`
	Thermal   float64               `json:"thermal_energy"`
	Fields    map[string]FieldStats `json:"fields"`
}

func Summarise(path string, s *snapshot.Snapshot) Summary {
	sum := Summary{
		File:      path,
		Time:      s.Time,
		BoxSize:   s.BoxSize,
		Particles: s.Count(),
		Dim:       s.Dim(),
		Kinetic:   Kinetic(s),
		Thermal:   Thermal(s),
		Fields:    make(map[string]FieldStats),
	}
	add := func(name string, v []float64) {
		if len(v) == 0 {
			return
		}
		mean, std := stat.MeanStdDev(v, nil)
		sum.Fields[name] = FieldStats{Min: floats.Min(v), Max: floats.Max(v), Mean: mean, Std: std}
	}
	add(snapshot.Masses, s.Masses)
	add(snapshot.InternalEnergy, s.InternalEnergy)
	if s.HasDensity() {
		add(snapshot.Density, s.Densities)
	}
	if s.HasSmoothingLength() {
		add(snapshot.SmoothingLength, s.SmoothingLengths)
	}
	return sum
}

func (s Summary) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}

// ExportJSON writes the summary to path, or stdout when path is "-".
func (s Summary) ExportJSON(path string) error {
	if path == "-" {
		return s.WriteJSON(os.Stdout)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return s.WriteJSON(file)
}
