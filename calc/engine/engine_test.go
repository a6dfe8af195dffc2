package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rexbrahh/ndvis/calc/ad"
	"github.com/rexbrahh/ndvis/calc/codes"
)

func TestCompileEvalGradientScenario(t *testing.T) {
	ctx := DefaultContext()
	prog, err := ctx.Compile("x^2 + y^2", []string{"x", "y"})
	require.NoError(t, err)

	v, err := prog.Eval([]float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 25.0, v)

	g, err := prog.Gradient([]float64{3, 4})
	require.NoError(t, err)
	require.InDelta(t, 6.0, g[0], 1e-9)
	require.InDelta(t, 8.0, g[1], 1e-9)
}

func TestDirectionalDerivativeScenario(t *testing.T) {
	ctx := DefaultContext()
	prog, err := ctx.Compile("x^2 + y^2", []string{"x", "y"})
	require.NoError(t, err)

	g, err := prog.Gradient([]float64{3, 4})
	require.NoError(t, err)

	dir := []float64{1 / math.Sqrt2, 1 / math.Sqrt2}
	var directional float64
	for i := range g {
		directional += g[i] * dir[i]
	}
	require.InDelta(t, 9.899, directional, 1e-3)
}

func TestCompileErrorRetainedOnContext(t *testing.T) {
	ctx := DefaultContext()
	_, err := ctx.Compile("1 +", nil)
	require.Error(t, err)
	require.NotEmpty(t, ctx.LastError())

	_, err = ctx.Compile("1 + 1", nil)
	require.NoError(t, err)
	require.Empty(t, ctx.LastError())
}

func TestEvalDivByZeroReportsEvalCode(t *testing.T) {
	ctx := DefaultContext()
	prog, err := ctx.Compile("1/0", nil)
	require.NoError(t, err)

	_, err = prog.Eval(nil)
	require.Error(t, err)
	require.Equal(t, codes.Eval, codes.Of(err))
}

func TestModeForwardDoesNotFallBackOnDomainFailure(t *testing.T) {
	ctx := DefaultContext()
	prog, err := ctx.Compile("log(x)", []string{"x"})
	require.NoError(t, err)
	prog.SetMode(Forward)

	_, err = prog.Gradient([]float64{-1})
	require.Error(t, err)
}

func TestModeAutoGradientWhenADSucceeds(t *testing.T) {
	ctx := DefaultContext()
	prog, err := ctx.Compile("x*x", []string{"x"})
	require.NoError(t, err)
	prog.SetMode(Auto)

	g, err := prog.Gradient([]float64{2})
	require.NoError(t, err)
	require.InDelta(t, 4.0, g[0], 1e-3)
}

// TestModeAutoFallsBackOnDivisionByZeroAtProbe exercises the actual
// AD-fails-then-FD-succeeds path: 1/x at x=0 hits forward-mode AD's
// exact-zero division check on every seed sweep (the probe itself is
// the singular point), but finite differences only ever evaluate at
// x+h and x-h, both nonzero, so the fallback succeeds where AD cannot.
// A domain restriction over a whole half-line (e.g. log(x) for x<0)
// would not demonstrate this: central differencing a probe deep inside
// a forbidden region lands both perturbed points in that same region,
// so FD fails there too. A single isolated singular point is what lets
// the fallback actually do something.
func TestModeAutoFallsBackOnDivisionByZeroAtProbe(t *testing.T) {
	ctx := DefaultContext()
	prog, err := ctx.Compile("1 / x", []string{"x"})
	require.NoError(t, err)
	prog.SetMode(Auto)

	_, err = ad.Gradient(prog.bc, []float64{0})
	require.Error(t, err, "forward-mode AD must fail exactly at the singular probe")

	g, err := prog.Gradient([]float64{0})
	require.NoError(t, err, "Auto mode must fall back to finite differences and succeed")
	require.False(t, math.IsNaN(g[0]) || math.IsInf(g[0], 0))
}

func TestDimensionMismatchRejected(t *testing.T) {
	ctx := DefaultContext()
	prog, err := ctx.Compile("x + y", []string{"x", "y"})
	require.NoError(t, err)

	_, err = prog.Eval([]float64{1})
	require.Error(t, err)
}
