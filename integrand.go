package magnus

import "math/cmplx"

// FirstOrderIntegrand is the integrand of the first-order Magnus
// coefficient:
//
//	f(τ) = e^{iθ(τ)} · ⟨m|D(α(τ))|n⟩
//
// The i/2 prefactor of the coefficient itself is NOT part of the
// integrand; the assembler applies it to the recombined integral.
func FirstOrderIntegrand(tau float64, m, n int, cfg DriveConfig) complex128 {
	return cmplx.Exp(complex(0, NonlinearPhase(tau, cfg))) *
		matrixElement(Displacement(tau, cfg), m, n)
}

// pairing is the anti-Hermitian displacement pairing
//
//	s(a, b) = (a·b̄ − ā·b)/2
//
// which is purely imaginary and carries the phase picked up when two
// displacements are composed into one.
func pairing(a, b complex128) complex128 {
	return (a*cmplx.Conj(b) - cmplx.Conj(a)*b) / 2
}

// wing2 is the shape of one second-order wing integrand. Each second-order
// coefficient sums a triangle wing over t2 ∈ [0, t1] and a square wing over
// [0, T]² with the argument order swapped.
type wing2 func(t1, t2 float64, m, n int, cfg DriveConfig) complex128

// Each second-order coefficient is the time-ordered double integral of one
// two-time kernel: a Fock matrix element of a product of interaction-picture
// propagators V(t) = e^{iθ(t)}·D(α(t)) and their adjoints, composed into a
// single displacement through the pairing phases. Because the products mix
// D with D†, the cross terms are genuine exponentials of ᾱ(s1)·α(s2), not
// pure phases, and the three kernels stay distinct even when the drive loop
// closes (α(T) = 0 at the default duration).
//
// The time ordering is realized as the two wings below: for a kernel g,
//
//	(1/2) ∫₀ᵀ dt1 ∫₀^{t1} dt2 g(t1, t2)
//	  = (1/2) ∫∫_{[0,T]²} g  −  (1/2) ∫₀ᵀ dt1 ∫₀^{t1} dt2 g(t2, t1)
//
// so the square wing is the kernel itself and the triangle wing is its
// sign-flipped swap. The kernels are validated against the recorded
// vacuum baselines in the coefficient tests.

// kernelJ1 is the loop-closure kernel: the end-of-gate displacement and
// accumulated phase close the drive loop around an adjoint pair,
//
//	e^{i(θ(T) − θ(s1) + θ(s2))} · ⟨m| D(α(T)) D(α(s1))† D(α(s2)) |n⟩
func kernelJ1(s1, s2 float64, m, n int, cfg DriveConfig) complex128 {
	aT := Displacement(cfg.GateDuration, cfg)
	a1 := Displacement(s1, cfg)
	a2 := Displacement(s2, cfg)
	phase := complex(0, NonlinearPhase(cfg.GateDuration, cfg)-NonlinearPhase(s1, cfg)+NonlinearPhase(s2, cfg))
	return cmplx.Exp(phase) * cmplx.Exp(-pairing(aT, a1)+pairing(aT-a1, a2)) *
		matrixElement(aT-a1+a2, m, n)
}

// kernelJ2 is the echo kernel: the first time argument is reflected by the
// gate duration, pairing the late half of the drive against the early half
// with the second displacement inverted,
//
//	e^{−i(θ(s1−T) − θ(s2))} · ⟨m| D(α(s1−T))† D(−α(s2)) |n⟩
func kernelJ2(s1, s2 float64, m, n int, cfg DriveConfig) complex128 {
	ae := Displacement(s1-cfg.GateDuration, cfg)
	a2 := Displacement(s2, cfg)
	phase := complex(0, -(NonlinearPhase(s1-cfg.GateDuration, cfg) - NonlinearPhase(s2, cfg)))
	return cmplx.Exp(phase) * cmplx.Exp(pairing(ae, a2)) *
		matrixElement(-ae-a2, m, n)
}

// kernelJ3 is the direct kernel: a propagator against an inverse propagator
// at two unshifted times,
//
//	e^{i(θ(s1) − θ(s2))} · ⟨m| D(α(s1)) D(α(s2))† |n⟩
func kernelJ3(s1, s2 float64, m, n int, cfg DriveConfig) complex128 {
	a1 := Displacement(s1, cfg)
	a2 := Displacement(s2, cfg)
	phase := complex(0, NonlinearPhase(s1, cfg)-NonlinearPhase(s2, cfg))
	return cmplx.Exp(phase) * cmplx.Exp(-pairing(a1, a2)) *
		matrixElement(a1-a2, m, n)
}

func wingJ11(t1, t2 float64, m, n int, cfg DriveConfig) complex128 {
	return -0.5 * kernelJ1(t2, t1, m, n, cfg)
}

func wingJ12(t1, t2 float64, m, n int, cfg DriveConfig) complex128 {
	return 0.5 * kernelJ1(t1, t2, m, n, cfg)
}

func wingJ21(t1, t2 float64, m, n int, cfg DriveConfig) complex128 {
	return -0.5 * kernelJ2(t2, t1, m, n, cfg)
}

func wingJ22(t1, t2 float64, m, n int, cfg DriveConfig) complex128 {
	return 0.5 * kernelJ2(t1, t2, m, n, cfg)
}

func wingJ31(t1, t2 float64, m, n int, cfg DriveConfig) complex128 {
	return -0.5 * kernelJ3(t2, t1, m, n, cfg)
}

func wingJ32(t1, t2 float64, m, n int, cfg DriveConfig) complex128 {
	return 0.5 * kernelJ3(t1, t2, m, n, cfg)
}
