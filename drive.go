package magnus

import (
	"math"
	"math/cmplx"
)

// Displacement returns the instantaneous phase-space displacement of the
// driven oscillator at time tau:
//
//	α(τ) = Ω(e^{iτ} − 1)
//
// Total over all real tau; Displacement(0) = Displacement(2πk) = 0, so a
// resonant drive closes its loop in phase space at multiples of 2π.
func Displacement(tau float64, cfg DriveConfig) complex128 {
	return complex(cfg.RabiFrequency, 0) * (cmplx.Exp(complex(0, tau)) - 1)
}

// NonlinearPhase returns the accumulated nonlinear phase of the driven
// oscillator at time tau:
//
//	θ(τ) = Ω²(τ − sin τ)
func NonlinearPhase(tau float64, cfg DriveConfig) float64 {
	return cfg.RabiFrequency * cfg.RabiFrequency * (tau - math.Sin(tau))
}
