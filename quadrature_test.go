package magnus

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestIntegrate1DPolynomial(t *testing.T) {
	e := DefaultEngine()

	v, est := e.Integrate1D(func(x float64) float64 { return x * x }, 0, 1)
	require.InDelta(t, 1.0/3.0, v, 1e-12, "∫₀¹ x² dx")
	require.Less(t, est, 1e-10, "error estimate for an exactly integrable polynomial")

	v, _ = e.Integrate1D(math.Sin, 0, math.Pi)
	require.InDelta(t, 2.0, v, 1e-12, "∫₀^π sin x dx")
}

func TestIntegrate1DOscillatory(t *testing.T) {
	e := DefaultEngine()

	// ∫₀^{2π} cos(5t) dt = 0: the cancellation that makes the physics
	// integrands demanding, in miniature.
	v, est := e.Integrate1D(func(x float64) float64 { return math.Cos(5 * x) }, 0, 2*math.Pi)
	require.InDelta(t, 0.0, v, 1e-10)
	require.Less(t, est, 1e-8)
}

func TestIntegrate2DRectangle(t *testing.T) {
	e := DefaultEngine()

	// ∫₀¹∫₀¹ xy = 1/4.
	v, _ := e.Integrate2D(
		func(x, y float64) float64 { return x * y },
		0, 1, ZeroBound, ConstBound(1),
	)
	require.InDelta(t, 0.25, v, 1e-12)
}

func TestIntegrate2DTriangle(t *testing.T) {
	e := DefaultEngine()

	// Area of the lower triangle of the unit square.
	v, _ := e.Integrate2D(
		func(x, y float64) float64 { return 1 },
		0, 1, ZeroBound, IdentityBound,
	)
	require.InDelta(t, 0.5, v, 1e-12)

	// ∫₀¹ dx ∫₀ˣ dy xy = ∫₀¹ x³/2 dx = 1/8.
	v, _ = e.Integrate2D(
		func(x, y float64) float64 { return x * y },
		0, 1, ZeroBound, IdentityBound,
	)
	require.InDelta(t, 0.125, v, 1e-12)
}

// TestDomainAdditivity: triangle plus complementary triangle must equal
// the full square for a plain polynomial, independent of any physics.
func TestDomainAdditivity(t *testing.T) {
	e := DefaultEngine()
	f := func(x, y float64) float64 { return x*x*y + 3*x - y }
	AssertDomainAdditivity(t, e, f, 0, 2, 1e-10)
}

func TestComplex1D(t *testing.T) {
	e := DefaultEngine()

	// ∫₀^π e^{it} dt = 2i, recombined from separate real and imaginary
	// quadratures.
	res := e.Complex1D(func(t float64) complex128 { return cmplx.Exp(complex(0, t)) }, 0, math.Pi)
	require.InDelta(t, 0.0, real(res.Value), 1e-12)
	require.InDelta(t, 2.0, imag(res.Value), 1e-12)
	require.Less(t, res.AbsError, 1e-9)
}

func TestComplex2D(t *testing.T) {
	e := DefaultEngine()

	// ∫₀¹∫₀¹ (x + iy) = 1/2 + i/2.
	res := e.Complex2D(
		func(x, y float64) complex128 { return complex(x, y) },
		0, 1, ZeroBound, ConstBound(1),
	)
	require.InDelta(t, 0.5, real(res.Value), 1e-12)
	require.InDelta(t, 0.5, imag(res.Value), 1e-12)
}

// TestZeroEngineFallsBackToDefaults: the zero Engine must behave like
// DefaultEngine rather than dividing by zero nodes.
func TestZeroEngineFallsBackToDefaults(t *testing.T) {
	var e Engine

	v, _ := e.Integrate1D(func(x float64) float64 { return x }, 0, 2)
	if !scalar.EqualWithinAbs(v, 2, 1e-12) {
		t.Errorf("zero-Engine ∫₀² x dx = %v, want 2", v)
	}
}

// TestErrorEstimateSurfacesRoughIntegrand: a kink keeps the paired
// resolutions apart, and the engine reports that instead of hiding it.
func TestErrorEstimateSurfacesRoughIntegrand(t *testing.T) {
	e := Engine{Nodes: 8, MaxNodes: 16, Tolerance: 1e-14}

	v, est := e.Integrate1D(func(x float64) float64 { return math.Abs(x - 0.2357) }, -1, 1)
	if est == 0 {
		t.Errorf("error estimate = 0 for a kinked integrand at 8 vs 16 nodes (value %v)", v)
	}

	t.Logf("✓ Nonconvergence surfaces in the estimate: est = %.3e", est)
}
