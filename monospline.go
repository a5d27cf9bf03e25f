// Package monospline implements Hyman's monotonicity preserving cubic spline.
//
// Hyman, J. M. (1983). Accurate monotonicity preserving cubic interpolation.
// SIAM Journal on Scientific and Statistical Computing, 4(4), 645–654.
package monospline

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidInput is returned by New when the samples cannot define a spline.
var ErrInvalidInput = errors.New("monospline: invalid input")

// minPoints is the smallest sample count the boundary formulas accept.
const minPoints = 3

// Spline is a piecewise cubic through a fixed set of samples. It is never
// modified after New, so it may be shared by concurrent readers.
type Spline struct {
	x, y []float64
	h, m []float64 // interval widths and secant slopes, len n-1
	b    []float64 // node tangents, len n
	c, d []float64 // quadratic and cubic terms, len n-1
}

// New builds the spline through (x[i], y[i]). x must be strictly increasing
// and hold at least three points. Both slices are copied.
func New(x, y []float64) (*Spline, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: len(x) = %d but len(y) = %d", ErrInvalidInput, len(x), len(y))
	}
	if len(x) < minPoints {
		return nil, fmt.Errorf("%w: need at least %d points, got %d", ErrInvalidInput, minPoints, len(x))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("%w: x not strictly increasing at index %d (%v after %v)",
				ErrInvalidInput, i, x[i], x[i-1])
		}
	}

	n := len(x)
	s := &Spline{
		x: slices.Clone(x),
		y: slices.Clone(y),
		h: make([]float64, n-1),
		m: make([]float64, n-1),
		c: make([]float64, n-1),
		d: make([]float64, n-1),
	}
	for i := 0; i < n-1; i++ {
		s.h[i] = s.x[i+1] - s.x[i]
		s.m[i] = (s.y[i+1] - s.y[i]) / s.h[i]
	}
	s.b = s.tangents()
	for i := 0; i < n-1; i++ {
		s.c[i] = (3*s.m[i] - s.b[i+1] - 2*s.b[i]) / s.h[i]
		s.d[i] = (s.b[i+1] + s.b[i] - 2*s.m[i]) / (s.h[i] * s.h[i])
	}
	return s, nil
}

// tangents applies the Hyman limiter to the interior nodes. The end nodes
// use a one-sided three point difference and are deliberately left
// unlimited, so the outer intervals may overshoot.
func (s *Spline) tangents() []float64 {
	n := len(s.x)
	h, m := s.h, s.m
	b := make([]float64, n)

	for i := 1; i < n-1; i++ {
		prev, next := m[i-1], m[i]
		mono := prev*next > 0
		if mono {
			b[i] = 3 * prev * next / (max(prev, next) + 2*min(prev, next))
		}
		switch {
		case mono && next > 0:
			b[i] = min(max(0, b[i]), 3*min(prev, next))
		case mono && next < 0:
			b[i] = max(min(0, b[i]), 3*max(prev, next))
		}
	}

	b[0] = ((2*h[0]+h[1])*m[0] - h[0]*m[1]) / (h[0] + h[1])
	j := n - 2
	b[n-1] = ((2*h[j]+h[j-1])*m[j] - h[j]*m[j-1]) / (h[j] + h[j-1])
	return b
}

// segment returns the index of the last knot not greater than tau, clamped
// to the valid interval range. Points left of the first knot use interval 0.
func (s *Spline) segment(tau float64) int {
	i, found := slices.BinarySearch(s.x, tau)
	if !found {
		i--
	}
	if i < 0 {
		return 0
	}
	if last := len(s.x) - 2; i > last {
		return last
	}
	return i
}

// F returns the spline value at tau. Outside the knots the first or last
// cubic is extended.
func (s *Spline) F(tau float64) float64 {
	i := s.segment(tau)
	t := tau - s.x[i]
	return s.y[i] + s.b[i]*t + s.c[i]*t*t + s.d[i]*t*t*t
}

// Evaluate returns F for every element of taus.
func (s *Spline) Evaluate(taus []float64) []float64 {
	out := make([]float64, len(taus))
	for k, tau := range taus {
		out[k] = s.F(tau)
	}
	return out
}

// EvaluateDerivative returns the first derivative at tau.
func (s *Spline) EvaluateDerivative(tau float64) float64 {
	i := s.segment(tau)
	t := tau - s.x[i]
	return s.b[i] + 2*s.c[i]*t + 3*s.d[i]*t*t
}

// EvaluateDerivatives is the batch form of EvaluateDerivative.
func (s *Spline) EvaluateDerivatives(taus []float64) []float64 {
	out := make([]float64, len(taus))
	for k, tau := range taus {
		out[k] = s.EvaluateDerivative(tau)
	}
	return out
}

// EvaluateForward computes, for every tau,
//
//	a + b*(2tau-x) + c*(tau-x)*(3tau-x) + d*(tau-x)^2*(4tau-x)
//
// with x the left knot of the interval. The combination is kept exactly as
// downstream consumers expect it; it is neither the value nor a derivative
// of the curve.
func (s *Spline) EvaluateForward(taus []float64) []float64 {
	out := make([]float64, len(taus))
	for k, tau := range taus {
		i := s.segment(tau)
		xi := s.x[i]
		t1 := tau - xi
		t2 := 2*tau - xi
		t3 := 3*tau - xi
		t4 := 4*tau - xi
		out[k] = s.y[i] + s.b[i]*t2 + s.c[i]*t1*t3 + s.d[i]*t1*t1*t4
	}
	return out
}

// Integrate returns the integral of the spline from the first to the last knot.
func (s *Spline) Integrate() float64 {
	var sum float64
	for i, dif := range s.h {
		// dif*(y + dif*(b/2 + dif*(c/3 + dif*d/4)))
		sum += dif * (s.y[i] + dif*(s.b[i]/2+dif*(s.c[i]/3+dif*s.d[i]/4)))
	}
	return sum
}

func (s *Spline) Len() int { return len(s.x) }

func (s *Spline) Xmin() float64 { return s.x[0] }

func (s *Spline) Xmax() float64 { return s.x[len(s.x)-1] }

func (s *Spline) Ymin() float64 { return slices.Min(s.y) }

func (s *Spline) Ymax() float64 { return slices.Max(s.y) }

// Knots returns copies of the sample coordinates.
func (s *Spline) Knots() (x, y []float64) {
	return slices.Clone(s.x), slices.Clone(s.y)
}

// Tangents returns a copy of the limited node derivatives.
func (s *Spline) Tangents() []float64 {
	return slices.Clone(s.b)
}

// Coefficients returns the cubic a + b*t + c*t^2 + d*t^3 of interval i,
// with t measured from x[i]. It panics if i is not in [0, Len()-2].
func (s *Spline) Coefficients(i int) (a, b, c, d float64) {
	return s.y[i], s.b[i], s.c[i], s.d[i]
}

func (s *Spline) String() string {
	str := "\nMonotone spline:\n"
	str = fmt.Sprintf("%s\tn: %d\n", str, len(s.x))
	str = fmt.Sprintf("%s\txmin: %v; xmax: %v\n", str, s.Xmin(), s.Xmax())
	str = fmt.Sprintf("%s\tymin: %v; ymax: %v\n", str, s.Ymin(), s.Ymax())
	str = fmt.Sprintf("%s\tx: %v\n\ty: %v\n", str, s.x, s.y)
	str = fmt.Sprintf("%s\tb: %v\n\tc: %v\n\td: %v\n", str, s.b, s.c, s.d)
	return str
}
