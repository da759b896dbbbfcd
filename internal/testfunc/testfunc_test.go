package testfunc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/dualgrad/internal/ad"
	"github.com/born-ml/dualgrad/internal/optim"
	"github.com/born-ml/dualgrad/internal/testfunc"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"beale", "booth", "linear", "rosenbrock", "shifted-sphere", "sphere",
	}, testfunc.Names())
}

func TestLookup(t *testing.T) {
	for _, name := range testfunc.Names() {
		p, err := testfunc.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
	}

	_, err := testfunc.Lookup("himmelblau")
	assert.ErrorIs(t, err, testfunc.ErrUnknown)
	assert.Contains(t, err.Error(), `"himmelblau"`)
}

// TestMinimum checks the value and the vanishing gradient at each known minimum.
func TestMinimum(t *testing.T) {
	for _, name := range testfunc.Names() {
		p, _ := testfunc.Lookup(name)
		xmin := p.Minimum(3)
		if xmin == nil {
			continue
		}
		t.Run(name, func(t *testing.T) {
			f := p.Function()

			v, err := f.Func(xmin)
			require.NoError(t, err)
			assert.InDelta(t, p.MinValue, v, 1e-12)

			g, err := f.Grad(xmin)
			require.NoError(t, err)
			assert.InDelta(t, 0, floats.Norm(g, 2), 1e-12)
		})
	}
}

// TestGradient cross-checks dual-number gradients against central differences.
func TestGradient(t *testing.T) {
	for _, name := range testfunc.Names() {
		p, _ := testfunc.Lookup(name)
		t.Run(name, func(t *testing.T) {
			f := p.Function()
			x := []float64{0.7, -1.3}

			got, err := f.Grad(x)
			require.NoError(t, err)

			want := fd.Gradient(nil, func(x []float64) float64 {
				v, err := f.Func(x)
				require.NoError(t, err)
				return v
			}, x, &fd.Settings{Formula: fd.Central})

			for i := range want {
				assert.InDelta(t, want[i], got[i], 1e-5, "partial %d", i)
			}
		})
	}
}

func TestFunction_WrongDimension(t *testing.T) {
	_, err := testfunc.Rosenbrock.Function().Func([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ad.ErrShape)
}

func TestStartPoint(t *testing.T) {
	assert.Equal(t, []float64{10, 10, 10}, testfunc.Sphere.StartPoint(3))
	assert.Equal(t, []float64{-1.2, 1}, testfunc.Rosenbrock.StartPoint(7))

	// The returned slice is a copy.
	x := testfunc.Booth.StartPoint(2)
	x[0] = 42
	assert.Equal(t, []float64{0, 0}, testfunc.Booth.Start)
}

// TestAdam_Benchmarks minimizes the two-dimensional benchmarks with the
// default Adam configuration.
func TestAdam_Benchmarks(t *testing.T) {
	for _, p := range []testfunc.Problem{testfunc.Rosenbrock, testfunc.Beale, testfunc.Booth} {
		t.Run(p.Name, func(t *testing.T) {
			res, err := optim.MinimizeAdam(p.Function(), p.StartPoint(2), optim.AdamConfig{}, optim.Settings{})
			require.NoError(t, err)
			assert.Equal(t, optim.Converged, res.Status)
			assert.Less(t, floats.Distance(res.X, p.Minimum(2), 2), 1e-5, "ended at %v", res.X)
		})
	}
}

func TestLinear_Degenerate(t *testing.T) {
	p := testfunc.Linear
	_, err := optim.MinimizeGD(p.Function(), p.StartPoint(4), optim.GDConfig{}, optim.Settings{})
	assert.ErrorIs(t, err, optim.ErrDegenerate)
}
