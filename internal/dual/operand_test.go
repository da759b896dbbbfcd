package dual_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/dualgrad/internal/dual"
)

func TestApply_MixedOperands(t *testing.T) {
	x := dual.New(1, 2)

	tests := []struct {
		name     string
		op       func(lhs, rhs any) (dual.Number, error)
		lhs, rhs any
		want     dual.Number
	}{
		{"dual+int", dual.Add, x, -7, dual.New(-6, 2)},
		{"dual+int zero", dual.Add, x, 0, dual.New(1, 2)},
		{"dual+float", dual.Add, x, 0.5, dual.New(1.5, 2)},
		{"int+dual", dual.Add, 3, x, dual.New(4, 2)},
		{"float+dual", dual.Add, 5.0, x, dual.New(6, 2)},
		{"dual-int", dual.Sub, x, -7, dual.New(8, 2)},
		{"int-dual", dual.Sub, -7, x, dual.New(-8, -2)},
		{"int-dual positive", dual.Sub, 5, x, dual.New(4, -2)},
		{"dual-float", dual.Sub, x, 0.5, dual.New(0.5, 2)},
		{"float-dual", dual.Sub, 0.5, x, dual.New(-0.5, -2)},
		{"dual*int", dual.Mul, x, -7, dual.New(-7, -14)},
		{"int*dual", dual.Mul, 5, x, dual.New(5, 10)},
		{"dual*float", dual.Mul, x, 0.5, dual.New(0.5, 1)},
		{"dual/int", dual.Div, x, 2, dual.New(0.5, 1)},
		{"dual/float", dual.Div, x, 2.0, dual.New(0.5, 1)},
		{"dual/dual", dual.Div, x, dual.New(3, 4), dual.New(1.0/3, 2.0/9)},
		{"int/dual", dual.Div, 2, dual.Var(3), dual.New(2.0/3, -2.0/9)},
		{"dual**int", dual.Pow, dual.New(3, 4), 3, dual.New(27, 108)},
		{"dual**float", dual.Pow, dual.New(3, 4), 3.0, dual.New(27, 108)},
		{"uint8+dual", dual.Add, uint8(2), x, dual.New(3, 2)},
		{"float32*dual", dual.Mul, float32(0.5), x, dual.New(0.5, 1)},
		{"int+int", dual.Add, 2, 3, dual.Const(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(tt.lhs, tt.rhs)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Real, got.Real, tol)
			assert.InDelta(t, tt.want.Dual, got.Dual, tol)
		})
	}
}

func TestApply_PowDualExponent(t *testing.T) {
	got, err := dual.Pow(dual.New(2, 2), dual.New(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 8.0, got.Real)
	assert.InDelta(t, 32*math.Log(2)+24, got.Dual, tol)

	// 2**x at x = 3: d/dx = 8·ln 2
	got, err = dual.Pow(2, dual.Var(3))
	require.NoError(t, err)
	assert.Equal(t, 8.0, got.Real)
	assert.InDelta(t, 8*math.Log(2), got.Dual, tol)

	_, err = dual.Pow(dual.New(-2, 1), dual.Var(3))
	var domainErr *dual.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "pow", domainErr.Func)
	assert.Equal(t, -2.0, domainErr.Input)

	_, err = dual.Pow(0, dual.Var(1))
	assert.ErrorIs(t, err, dual.ErrDomain)
}

func TestApply_ReflectedConsistency(t *testing.T) {
	x := dual.New(2, 1)
	y := dual.New(4, 3)
	operands := []any{y, 3, 5.0, int64(-2), float32(0.25)}

	for _, o := range operands {
		sum, err := dual.Add(x, o)
		require.NoError(t, err)
		rsum, err := dual.Add(o, x)
		require.NoError(t, err)
		assert.Equal(t, sum, rsum, "x+%v", o)

		prod, err := dual.Mul(x, o)
		require.NoError(t, err)
		rprod, err := dual.Mul(o, x)
		require.NoError(t, err)
		assert.Equal(t, prod, rprod, "x*%v", o)

		diff, err := dual.Sub(x, o)
		require.NoError(t, err)
		rdiff, err := dual.Sub(o, x)
		require.NoError(t, err)
		assert.Equal(t, diff, rdiff.Neg(), "x-%v", o)
	}
}

func TestApply_UnsupportedOperand(t *testing.T) {
	x := dual.New(1, 2)
	ops := map[string]func(lhs, rhs any) (dual.Number, error){
		"add": dual.Add,
		"sub": dual.Sub,
		"mul": dual.Mul,
		"div": dual.Div,
		"pow": dual.Pow,
	}
	bad := []any{"1", []int{1}, []float64{1}, nil, true, complex(1, 0), &x}

	for name, op := range ops {
		for _, b := range bad {
			_, err := op(x, b)
			var opErr *dual.OperandError
			require.ErrorAs(t, err, &opErr, "%s: x op %#v", name, b)
			assert.False(t, opErr.Left)
			assert.Equal(t, b, opErr.Operand)
			assert.ErrorIs(t, err, dual.ErrUnsupportedOperand)

			_, err = op(b, x)
			require.ErrorAs(t, err, &opErr, "%s: %#v op x", name, b)
			assert.True(t, opErr.Left)
			assert.ErrorIs(t, err, dual.ErrUnsupportedOperand)
		}
	}
}

func TestOperandError_Message(t *testing.T) {
	_, err := dual.Add(dual.New(1, 2), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"1"`)
	assert.Contains(t, err.Error(), "string")
	assert.Contains(t, err.Error(), "+")
}

func TestCompare(t *testing.T) {
	x := dual.New(1, 2)

	c, err := dual.Compare(x, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	c, err = dual.Compare(x, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = dual.Compare(0.5, x)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = dual.Compare(x, dual.New(1, 3))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	_, err = dual.Compare(x, "1")
	assert.True(t, errors.Is(err, dual.ErrUnsupportedOperand))
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "+", dual.OpAdd.String())
	assert.Equal(t, "**", dual.OpPow.String())
	assert.Equal(t, "unknown", dual.Op(42).String())

	_, err := dual.Apply(dual.Op(42), 1, 2)
	assert.Error(t, err)
}
