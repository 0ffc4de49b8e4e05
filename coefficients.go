package magnus

import (
	"fmt"
	"math/cmplx"
)

// Assembler orchestrates the quadrature calls behind each named
// coefficient. It holds only the engine settings; every method is a
// stateless pure computation over its arguments.
type Assembler struct {
	Engine Engine
}

// NewAssembler returns an assembler running on the given engine.
func NewAssembler(e Engine) *Assembler {
	return &Assembler{Engine: e}
}

// FirstOrder computes the first-order Magnus coefficient
//
//	I_mn = (i/2) ∫₀ᵀ e^{iθ(τ)} ⟨m|D(α(τ))|n⟩ dτ
//
// The real and imaginary projections of the integrand are integrated
// separately and recombined; the i/2 prefactor is applied to the
// recombined value, not folded into the integrand (multiplying by i swaps
// and negates the components, so the order matters for matching the
// defining formula).
func (a *Assembler) FirstOrder(m, n int, cfg DriveConfig) (Result, error) {
	if err := precheck(m, n, cfg); err != nil {
		return Result{}, err
	}
	f := func(tau float64) complex128 { return FirstOrderIntegrand(tau, m, n, cfg) }
	res := a.Engine.Complex1D(f, 0, cfg.GateDuration)
	res.Value *= complex(0, 0.5)
	if err := checkFinite(res.Value, "I", m, n); err != nil {
		return Result{}, err
	}
	return res, nil
}

// SecondOrder1 computes J1, the loop-closure pathway (end-of-gate
// displacement and phase enter the kernel).
func (a *Assembler) SecondOrder1(m, n int, cfg DriveConfig) (Result, error) {
	return a.secondOrder("J1", m, n, cfg, wingJ11, wingJ12)
}

// SecondOrder2 computes J2, the echo pathway (first time argument shifted
// by the gate duration, second displacement inverted).
func (a *Assembler) SecondOrder2(m, n int, cfg DriveConfig) (Result, error) {
	return a.secondOrder("J2", m, n, cfg, wingJ21, wingJ22)
}

// SecondOrder3 computes J3, the direct pathway (propagator against inverse
// propagator at two unshifted times).
func (a *Assembler) SecondOrder3(m, n int, cfg DriveConfig) (Result, error) {
	return a.secondOrder("J3", m, n, cfg, wingJ31, wingJ32)
}

// secondOrder evaluates one second-order coefficient as the sum of its two
// wings: the triangle wing over t2 ∈ [0, t1] and the square wing over
// [0, T]² with the time arguments swapped. There is no closed-form
// shortcut; both double integrals are evaluated numerically.
func (a *Assembler) secondOrder(name string, m, n int, cfg DriveConfig, tri, sq wing2) (Result, error) {
	if err := precheck(m, n, cfg); err != nil {
		return Result{}, err
	}
	T := cfg.GateDuration

	triangle := a.Engine.Complex2D(
		func(t1, t2 float64) complex128 { return tri(t1, t2, m, n, cfg) },
		0, T, ZeroBound, IdentityBound,
	)
	square := a.Engine.Complex2D(
		func(t1, t2 float64) complex128 { return sq(t2, t1, m, n, cfg) },
		0, T, ZeroBound, ConstBound(T),
	)

	res := Result{
		Value:    triangle.Value + square.Value,
		AbsError: triangle.AbsError + square.AbsError,
	}
	if err := checkFinite(res.Value, name, m, n); err != nil {
		return Result{}, err
	}
	return res, nil
}

func precheck(m, n int, cfg DriveConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return validateModePair(m, n)
}

// checkFinite surfaces matrix-element overflow that rode through the
// quadrature as Inf/NaN. It aborts this one coefficient only; concurrent
// evaluations of other cells are unaffected.
func checkFinite(v complex128, name string, m, n int) error {
	if cmplx.IsInf(v) || cmplx.IsNaN(v) {
		return fmt.Errorf("%w: %s(%d,%d) is non-finite", ErrOverflow, name, m, n)
	}
	return nil
}

// Package-level convenience wrappers running on DefaultEngine.

// FirstOrderCoefficient computes I_mn with the default engine.
func FirstOrderCoefficient(m, n int, cfg DriveConfig) (Result, error) {
	return NewAssembler(DefaultEngine()).FirstOrder(m, n, cfg)
}

// SecondOrderCoefficient1 computes J1_mn with the default engine.
func SecondOrderCoefficient1(m, n int, cfg DriveConfig) (Result, error) {
	return NewAssembler(DefaultEngine()).SecondOrder1(m, n, cfg)
}

// SecondOrderCoefficient2 computes J2_mn with the default engine.
func SecondOrderCoefficient2(m, n int, cfg DriveConfig) (Result, error) {
	return NewAssembler(DefaultEngine()).SecondOrder2(m, n, cfg)
}

// SecondOrderCoefficient3 computes J3_mn with the default engine.
func SecondOrderCoefficient3(m, n int, cfg DriveConfig) (Result, error) {
	return NewAssembler(DefaultEngine()).SecondOrder3(m, n, cfg)
}
