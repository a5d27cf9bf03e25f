package monospline

import (
	"cmp"
	"encoding/json"
	"slices"
)

// Point is a single sample of a Dump.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dump is a serializable representation of a Spline. Only the samples are
// stored; everything else is recomputed on load.
type Dump struct {
	Points []Point `json:"points"`
}

// FromDump builds a spline from a dump.
// It sorts the points by X first, as they may come from an untrusted source.
func FromDump(d *Dump) (*Spline, error) {
	p := slices.Clone(d.Points)
	slices.SortStableFunc(p, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})

	x := make([]float64, len(p))
	y := make([]float64, len(p))
	for i := range p {
		x[i], y[i] = p[i].X, p[i].Y
	}
	return New(x, y)
}

// Dump generates a serializable dump for a spline.
func (s *Spline) Dump() *Dump {
	d := &Dump{Points: make([]Point, len(s.x))}
	for i := range s.x {
		d.Points[i] = Point{X: s.x[i], Y: s.y[i]}
	}
	return d
}

// MarshalJSON implements the json.Marshaler interface for Spline.
func (s *Spline) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Spline.
// The receiver is only replaced when the decoded samples are valid.
func (s *Spline) UnmarshalJSON(bytes []byte) error {
	var dump Dump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return err
	}
	built, err := FromDump(&dump)
	if err != nil {
		return err
	}
	*s = *built
	return nil
}
