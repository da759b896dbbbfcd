// Package testfunc provides standard optimization benchmark objectives
// written with dual numbers.
//
// Each Problem is expressed once over dual.Number and exposed as an
// *ad.Function, so the same definition yields values and exact gradients.
package testfunc

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/born-ml/dualgrad/internal/ad"
	"github.com/born-ml/dualgrad/internal/dual"
)

// ErrUnknown is returned by Lookup for names not in the catalogue.
var ErrUnknown = errors.New("testfunc: unknown function")

// Problem describes a benchmark objective.
type Problem struct {
	Name string

	// Dim is the required input dimension; 0 means any dimension >= 1.
	Dim int

	// Minimum returns the location of the global minimum for an n-dimensional
	// input, or nil when the objective is unbounded below.
	Minimum func(n int) []float64

	// MinValue is the objective value at Minimum.
	MinValue float64

	// Start is a conventional starting point (for Dim == 0, per coordinate).
	Start []float64

	fn func(x []dual.Number) dual.Number
}

// Function returns the objective as a differentiable function.
func (p Problem) Function(opts ...ad.Option) *ad.Function {
	return ad.New(ad.Multivariate(func(x []dual.Number) (dual.Number, error) {
		if p.Dim != 0 && len(x) != p.Dim {
			return dual.Number{}, fmt.Errorf("%w: %s takes %d inputs, got %d", ad.ErrShape, p.Name, p.Dim, len(x))
		}
		return p.fn(x), nil
	}), opts...)
}

// StartPoint returns a fresh copy of the conventional start in n dimensions.
// For fixed-dimension problems n is ignored.
func (p Problem) StartPoint(n int) []float64 {
	if p.Dim != 0 {
		return slices.Clone(p.Start)
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = p.Start[0]
	}
	return x
}

func fill(v float64) func(n int) []float64 {
	return func(n int) []float64 {
		x := make([]float64, n)
		for i := range x {
			x[i] = v
		}
		return x
	}
}

func fixed(v ...float64) func(int) []float64 {
	return func(int) []float64 { return slices.Clone(v) }
}

// Sphere is Σ xᵢ², minimized at the origin.
var Sphere = Problem{
	Name:    "sphere",
	Minimum: fill(0),
	Start:   []float64{10},
	fn: func(x []dual.Number) dual.Number {
		sum := dual.Const(0)
		for _, xi := range x {
			sum = sum.Add(xi.Mul(xi))
		}
		return sum
	},
}

// ShiftedSphere is Σ (xᵢ² + 4xᵢ + 4), minimized at xᵢ = -2.
var ShiftedSphere = Problem{
	Name:    "shifted-sphere",
	Minimum: fill(-2),
	Start:   []float64{10},
	fn: func(x []dual.Number) dual.Number {
		sum := dual.Const(0)
		for _, xi := range x {
			sum = sum.Add(xi.PowReal(2).Add(xi.MulReal(4)).AddReal(4))
		}
		return sum
	},
}

// Linear is Σ xᵢ. It has no minimum and every optimizer rejects it as
// degenerate.
var Linear = Problem{
	Name:    "linear",
	Minimum: func(int) []float64 { return nil },
	Start:   []float64{0},
	fn: func(x []dual.Number) dual.Number {
		sum := dual.Const(0)
		for _, xi := range x {
			sum = sum.Add(xi)
		}
		return sum
	},
}

// Rosenbrock is the two-dimensional banana function
//
//	(1 - x)² + 100 (y - x²)²
//
// minimized at (1, 1).
var Rosenbrock = Problem{
	Name:    "rosenbrock",
	Dim:     2,
	Minimum: fixed(1, 1),
	Start:   []float64{-1.2, 1},
	fn: func(x []dual.Number) dual.Number {
		a := x[0].RSub(1)
		b := x[1].Sub(x[0].Mul(x[0]))
		return a.Mul(a).Add(b.Mul(b).MulReal(100))
	},
}

// Beale is
//
//	(1.5 - x + xy)² + (2.25 - x + xy²)² + (2.625 - x + xy³)²
//
// minimized at (3, 0.5).
var Beale = Problem{
	Name:    "beale",
	Dim:     2,
	Minimum: fixed(3, 0.5),
	Start:   []float64{1, 1},
	fn: func(x []dual.Number) dual.Number {
		sum := dual.Const(0)
		for i, c := range []float64{1.5, 2.25, 2.625} {
			t := x[1].PowReal(float64(i + 1)).Mul(x[0]).Sub(x[0]).AddReal(c)
			sum = sum.Add(t.Mul(t))
		}
		return sum
	},
}

// Booth is (x + 2y - 7)² + (2x + y - 5)², minimized at (1, 3).
var Booth = Problem{
	Name:    "booth",
	Dim:     2,
	Minimum: fixed(1, 3),
	Start:   []float64{0, 0},
	fn: func(x []dual.Number) dual.Number {
		a := x[0].Add(x[1].MulReal(2)).SubReal(7)
		b := x[0].MulReal(2).Add(x[1]).SubReal(5)
		return a.Mul(a).Add(b.Mul(b))
	},
}

var catalogue = map[string]Problem{
	Sphere.Name:        Sphere,
	ShiftedSphere.Name: ShiftedSphere,
	Linear.Name:        Linear,
	Rosenbrock.Name:    Rosenbrock,
	Beale.Name:         Beale,
	Booth.Name:         Booth,
}

// Lookup returns the problem registered under name.
func Lookup(name string) (Problem, error) {
	p, ok := catalogue[name]
	if !ok {
		return Problem{}, fmt.Errorf("%w %q (known: %v)", ErrUnknown, name, Names())
	}
	return p, nil
}

// Names returns the registered problem names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
