// Package magnus computes Magnus-expansion coefficients for a driven
// two-qubit entangling gate under drive miscalibration.
//
// The gate is modeled as a quantum harmonic oscillator coupled to two
// internal states and driven by a constant pulse. A miscalibrated drive
// leaves a residual interaction whose time-ordered evolution is expanded
// in a Magnus series; the coefficients of that series are matrix elements
// of the expansion terms in the truncated Fock basis:
//
//	I_mn  = (i/2) ∫₀ᵀ e^{iθ(τ)} ⟨m|D(α(τ))|n⟩ dτ
//	Jk_mn = ∫∫ (triangle wing) + ∫∫ (square wing),  k = 1, 2, 3
//
// Where:
//   - α(τ) = Ω(e^{iτ} − 1): instantaneous phase-space displacement
//   - θ(τ) = Ω²(τ − sin τ): accumulated nonlinear phase
//   - D(α): bosonic displacement operator
//   - Ω, T: Rabi frequency and gate duration of the drive
//
// # Architecture
//
// The package components:
//
//   - config.go       - Drive configuration (Ω, T) with validation
//   - drive.go        - Displacement α(τ) and nonlinear phase θ(τ)
//   - displacement.go - Fock-basis matrix element ⟨m|D(α)|n⟩
//   - integrand.go    - First- and second-order Magnus integrands
//   - quadrature.go   - Real/complex 1-D and 2-D Gauss–Legendre quadrature
//   - coefficients.go - Coefficient assembly (I, J1, J2, J3)
//   - grid.go         - Concurrent sweep over (m, n) mode pairs
//   - assertions.go   - Test helpers for numerical identities
//
// # Quick Start
//
// Compute the first-order coefficient for the vacuum cell:
//
//	cfg := magnus.DefaultDriveConfig()
//
//	res, err := magnus.FirstOrderCoefficient(0, 0, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("I(0,0) = %v (±%.2e)\n", res.Value, res.AbsError)
//
// Sweep a grid of mode pairs concurrently:
//
//	grid, failures, err := magnus.SweepGrid(magnus.FirstOrderKind, cfg, magnus.DefaultGridConfig())
//
// # Numerical Notes
//
// The displacement matrix element is evaluated through its closed-form
// combinatorial sum with all factorial and binomial ratios carried in log
// space (math.Lgamma). Direct factorial ratios overflow float64 beyond
// 170!; the log-space form pushes the practical limit to mode indices in
// the low hundreds and turns the remaining overflow into a descriptive
// ErrOverflow instead of a silent Inf.
//
// Complex integrals are split into independently integrated real and
// imaginary projections, because the underlying quadrature rule operates
// on real-valued functions only. Each projection is integrated at paired
// resolutions (n and 2n Gauss–Legendre nodes); the absolute difference is
// the reported error estimate. Estimates are informational: a quadrature
// call never aborts, callers compare the estimate against their own
// ceiling.
//
// All computations are pure. A coefficient evaluation shares no state with
// any other, so grid sweeps parallelize freely across (m, n) cells; the
// only invariant is that the DriveConfig value passed in must not change
// mid-sweep, which its value semantics already guarantee.
package magnus
