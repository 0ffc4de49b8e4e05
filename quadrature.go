package magnus

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Engine evaluates definite integrals with fixed-location Gauss–Legendre
// rules. A call integrates at paired resolutions (n and 2n nodes) and
// reports the absolute difference as its error estimate; if the estimate
// is above Tolerance the node count doubles again, up to MaxNodes.
//
// The paired-resolution refinement is the only adaptivity: there is no
// subdivision and no automatic retry beyond MaxNodes. A call that stops at
// MaxNodes still returns its best value; the caller reads the estimate
// and decides.
//
// The zero Engine is usable; zero fields fall back to DefaultEngine values.
type Engine struct {
	// Nodes is the node count of the first pass.
	Nodes int

	// MaxNodes caps refinement. In two dimensions the cap applies per
	// axis, so the worst case is MaxNodes² evaluations per pass.
	MaxNodes int

	// Tolerance is the absolute tolerance on the paired-resolution defect.
	Tolerance float64

	// Concurrent is forwarded to quad.Fixed for the outer rule.
	Concurrent int
}

// DefaultEngine returns the reference quadrature settings. 64 first-pass
// nodes resolve the oscillation of the default drive (Ω = 0.5, T = 2π)
// with room to spare; the cap exists for pathological cells only.
func DefaultEngine() Engine {
	return Engine{
		Nodes:     64,
		MaxNodes:  512,
		Tolerance: 1e-10,
	}
}

// Result is one complex integral: the recombined value and the summed
// error estimates of its real and imaginary projections. It is a pure
// return value, never cached or mutated.
type Result struct {
	Value    complex128
	AbsError float64
}

func (e Engine) normalized() Engine {
	d := DefaultEngine()
	if e.Nodes <= 0 {
		e.Nodes = d.Nodes
	}
	if e.MaxNodes <= 0 {
		e.MaxNodes = d.MaxNodes
	}
	if e.MaxNodes < 2*e.Nodes {
		e.MaxNodes = 2 * e.Nodes
	}
	if e.Tolerance <= 0 {
		e.Tolerance = d.Tolerance
	}
	return e
}

// Integrate1D approximates ∫ₐᵇ f and returns (value, errorEstimate).
func (e Engine) Integrate1D(f func(float64) float64, a, b float64) (float64, float64) {
	e = e.normalized()
	prev := quad.Fixed(f, a, b, e.Nodes, nil, e.Concurrent)
	for nodes := 2 * e.Nodes; ; nodes *= 2 {
		cur := quad.Fixed(f, a, b, nodes, nil, e.Concurrent)
		est := math.Abs(cur - prev)
		if est <= e.Tolerance || nodes >= e.MaxNodes {
			return cur, est
		}
		prev = cur
	}
}

// Integrate2D approximates the nested integral
//
//	∫ₐᵇ dt1 ∫_{lower(t1)}^{upper(t1)} dt2  f(t1, t2)
//
// The inner bounds are function-valued so triangular domains come for
// free: lower = ZeroBound, upper = IdentityBound is t2 ∈ [0, t1].
func (e Engine) Integrate2D(f func(t1, t2 float64) float64, a, b float64, lower, upper func(float64) float64) (float64, float64) {
	e = e.normalized()
	prev := e.fixed2D(f, a, b, lower, upper, e.Nodes)
	for nodes := 2 * e.Nodes; ; nodes *= 2 {
		cur := e.fixed2D(f, a, b, lower, upper, nodes)
		est := math.Abs(cur - prev)
		if est <= e.Tolerance || nodes >= e.MaxNodes {
			return cur, est
		}
		prev = cur
	}
}

func (e Engine) fixed2D(f func(t1, t2 float64) float64, a, b float64, lower, upper func(float64) float64, nodes int) float64 {
	outer := func(t1 float64) float64 {
		lo, hi := lower(t1), upper(t1)
		if lo == hi {
			return 0
		}
		inner := func(t2 float64) float64 { return f(t1, t2) }
		return quad.Fixed(inner, lo, hi, nodes, nil, 0)
	}
	return quad.Fixed(outer, a, b, nodes, nil, e.Concurrent)
}

// Complex1D integrates a complex integrand by integrating its real and
// imaginary projections separately and recombining. The split is mandatory:
// the underlying fixed rule accepts real-valued functions only.
func (e Engine) Complex1D(f func(float64) complex128, a, b float64) Result {
	re, reErr := e.Integrate1D(realProjection1D(f), a, b)
	im, imErr := e.Integrate1D(imagProjection1D(f), a, b)
	return Result{Value: complex(re, im), AbsError: reErr + imErr}
}

// Complex2D is Complex1D for nested integrals with function-valued bounds.
func (e Engine) Complex2D(f func(t1, t2 float64) complex128, a, b float64, lower, upper func(float64) float64) Result {
	re, reErr := e.Integrate2D(realProjection2D(f), a, b, lower, upper)
	im, imErr := e.Integrate2D(imagProjection2D(f), a, b, lower, upper)
	return Result{Value: complex(re, im), AbsError: reErr + imErr}
}

// Named projection adapters. Each binds one complex integrand to one real
// component over immutable captures; they are the only glue between the
// complex integrands and the real-valued quadrature rule.

func realProjection1D(f func(float64) complex128) func(float64) float64 {
	return func(t float64) float64 { return real(f(t)) }
}

func imagProjection1D(f func(float64) complex128) func(float64) float64 {
	return func(t float64) float64 { return imag(f(t)) }
}

func realProjection2D(f func(t1, t2 float64) complex128) func(t1, t2 float64) float64 {
	return func(t1, t2 float64) float64 { return real(f(t1, t2)) }
}

func imagProjection2D(f func(t1, t2 float64) complex128) func(t1, t2 float64) float64 {
	return func(t1, t2 float64) float64 { return imag(f(t1, t2)) }
}

// ZeroBound is the constant inner bound t2 = 0.
func ZeroBound(float64) float64 { return 0 }

// IdentityBound is the inner bound t2 = t1, the hypotenuse of the
// triangular half-domain.
func IdentityBound(t1 float64) float64 { return t1 }

// ConstBound returns the constant inner bound t2 = v.
func ConstBound(v float64) func(float64) float64 {
	return func(float64) float64 { return v }
}
