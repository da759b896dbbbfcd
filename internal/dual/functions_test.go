package dual_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gdual "gonum.org/v1/gonum/num/dual"

	"github.com/born-ml/dualgrad/internal/dual"
)

func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func TestUnaryFunctions(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(dual.Number) dual.Number
		ref   func(gdual.Number) gdual.Number
		deriv func(x float64) float64
	}{
		{"exp", dual.Exp, gdual.Exp, math.Exp},
		{"sin", dual.Sin, gdual.Sin, math.Cos},
		{"cos", dual.Cos, gdual.Cos, func(x float64) float64 { return -math.Sin(x) }},
		{"tan", dual.Tan, gdual.Tan, func(x float64) float64 { return 1 + math.Tan(x)*math.Tan(x) }},
		{"atan", dual.Atan, gdual.Atan, func(x float64) float64 { return 1 / (1 + x*x) }},
		{"sinh", dual.Sinh, gdual.Sinh, math.Cosh},
		{"cosh", dual.Cosh, gdual.Cosh, math.Sinh},
		{"tanh", dual.Tanh, gdual.Tanh, func(x float64) float64 { return 1 / (math.Cosh(x) * math.Cosh(x)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range pairs {
				x := dual.New(p[0], p[1])
				got := tt.fn(x)
				assert.InDelta(t, p[1]*tt.deriv(p[0]), got.Dual, tol)
				assertMatches(t, tt.ref(ref(x)), got, tt.name)
			}
		})
	}
}

func TestExp_Exact(t *testing.T) {
	for _, p := range pairs {
		got := dual.Exp(dual.New(p[0], p[1]))
		assert.Equal(t, math.Exp(p[0]), got.Real)
		assert.Equal(t, p[1]*math.Exp(p[0]), got.Dual)
	}
}

func TestLogistic(t *testing.T) {
	for _, p := range pairs {
		got := dual.Logistic(dual.New(p[0], p[1]))
		s := logistic(p[0])
		assert.Equal(t, s, got.Real)
		assert.InDelta(t, p[1]*s*(1-s), got.Dual, tol)
	}
}

func TestLog(t *testing.T) {
	for _, p := range pairs[:2] {
		for _, b := range []float64{2, math.E, 10} {
			got, err := dual.Log(dual.New(p[0], p[1]), b)
			require.NoError(t, err)
			assert.InDelta(t, math.Log(p[0])/math.Log(b), got.Real, tol)
			assert.InDelta(t, p[1]/math.Log(b)/p[0], got.Dual, tol)
		}
	}

	got, err := dual.Ln(dual.New(0.3, -0.7))
	require.NoError(t, err)
	assertMatches(t, gdual.Log(gdual.Number{Real: 0.3, Emag: -0.7}), got, "ln")
}

func TestLog_Domain(t *testing.T) {
	for _, x := range []dual.Number{dual.New(0, 1), dual.New(-1, 1)} {
		_, err := dual.Log(x, math.E)
		var domainErr *dual.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "log", domainErr.Func)
		assert.Equal(t, x.Real, domainErr.Input)
		assert.ErrorIs(t, err, dual.ErrDomain)

		_, err = dual.Ln(x)
		assert.ErrorIs(t, err, dual.ErrDomain)
	}

	for _, b := range []float64{0, -2, 1} {
		_, err := dual.Log(dual.New(2, 1), b)
		assert.ErrorIs(t, err, dual.ErrDomain, "base %v", b)
	}
}

func TestSqrt(t *testing.T) {
	for _, p := range pairs[:2] {
		got, err := dual.Sqrt(dual.New(p[0], p[1]))
		require.NoError(t, err)
		assert.Equal(t, math.Sqrt(p[0]), got.Real)
		assert.Equal(t, p[1]/(2*math.Sqrt(p[0])), got.Dual)
	}

	got, err := dual.Sqrt(dual.New(0, 0.5))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Real)
	assert.True(t, math.IsInf(got.Dual, 1))

	got, err = dual.Sqrt(dual.Const(0))
	require.NoError(t, err)
	assert.Equal(t, dual.Const(0), got)

	_, err = dual.Sqrt(dual.New(-1, 1))
	assert.ErrorIs(t, err, dual.ErrDomain)
}

func TestAsinAcos(t *testing.T) {
	for _, p := range pairs {
		x := dual.New(p[0], p[1])

		got, err := dual.Asin(x)
		require.NoError(t, err)
		assert.InDelta(t, math.Asin(p[0]), got.Real, tol)
		assert.InDelta(t, p[1]/math.Sqrt(1-p[0]*p[0]), got.Dual, tol)
		assertMatches(t, gdual.Asin(ref(x)), got, "asin")

		got, err = dual.Acos(x)
		require.NoError(t, err)
		assert.InDelta(t, math.Acos(p[0]), got.Real, tol)
		assert.InDelta(t, -p[1]/math.Sqrt(1-p[0]*p[0]), got.Dual, tol)
		assertMatches(t, gdual.Acos(ref(x)), got, "acos")
	}
}

func TestAsinAcos_Domain(t *testing.T) {
	for _, v := range []float64{1, -1, 1.5, -1.5} {
		_, err := dual.Asin(dual.New(v, 1))
		assert.ErrorIs(t, err, dual.ErrDomain, "asin(%v)", v)

		_, err = dual.Acos(dual.New(v, 1))
		assert.ErrorIs(t, err, dual.ErrDomain, "acos(%v)", v)
	}
}

func TestAbs(t *testing.T) {
	got, err := dual.Abs(dual.New(-2, 3))
	require.NoError(t, err)
	assert.Equal(t, dual.New(2, -3), got)

	got, err = dual.Abs(dual.New(2, 3))
	require.NoError(t, err)
	assert.Equal(t, dual.New(2, 3), got)

	_, err = dual.Abs(dual.New(0, 1))
	assert.ErrorIs(t, err, dual.ErrDomain)
}

func TestDomainError_Message(t *testing.T) {
	_, err := dual.Sqrt(dual.New(-4, 1))
	require.Error(t, err)
	assert.Equal(t, "dual: sqrt: input -4 outside domain x >= 0", err.Error())
}

// Composite expressions must agree with the closed-form derivative.
func TestChainRule(t *testing.T) {
	const x0 = 3.0

	// (sin x + cos x)² → 2(cos²x - sin²x)
	x := dual.Var(x0)
	got := dual.Sin(x).Add(dual.Cos(x)).PowReal(2)
	want := 2 * (math.Cos(x0)*math.Cos(x0) - math.Sin(x0)*math.Sin(x0))
	assert.InDelta(t, want, got.Dual, 1e-12)

	// (x³ - 5x) / (x² + 10) at 3 → 12/19, 346/361
	got = x.PowReal(3).Sub(x.MulReal(5)).Div(x.Mul(x).AddReal(10))
	assert.InDelta(t, 12.0/19, got.Real, 1e-15)
	assert.InDelta(t, 346.0/361, got.Dual, 1e-15)

	// x**x → x^x(ln x + 1)
	got = x.Pow(x)
	assert.Equal(t, 27.0, got.Real)
	assert.InDelta(t, 27*(math.Log(x0)+1), got.Dual, 1e-12)

	// x² ln x / e^x → e^-x (x - (x-2) x ln x)
	lnx, err := dual.Ln(x)
	require.NoError(t, err)
	got = x.Mul(x).Mul(lnx).Div(dual.Exp(x))
	assert.InDelta(t, math.Exp(-x0)*(x0-(x0-2)*x0*math.Log(x0)), got.Dual, 1e-12)
}
