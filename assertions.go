package magnus

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// Test helpers for the numerical identities the matrix element and the
// quadrature engine must satisfy. They live outside the _test files so
// downstream packages building further perturbative orders on top of the
// primitives can reuse the same checks.

// LaguerrePolynomial evaluates the Laguerre polynomial L_k(x) by the
// three-term recurrence
//
//	(j+1)·L_{j+1}(x) = (2j+1−x)·L_j(x) − j·L_{j−1}(x)
//
// It is deliberately independent of the displacement matrix element so the
// diagonal identity check below cross-validates two unrelated evaluators.
func LaguerrePolynomial(k int, x float64) float64 {
	if k == 0 {
		return 1
	}
	prev, cur := 1.0, 1-x
	for j := 1; j < k; j++ {
		prev, cur = cur, ((2*float64(j)+1-x)*cur-float64(j)*prev)/(float64(j)+1)
	}
	return cur
}

// AssertVacuumOrthonormal verifies that at zero displacement the matrix
// element collapses to the Kronecker delta: ⟨m|D(0)|n⟩ = δ_mn for all
// m, n ≤ maxIndex. D(0) is the identity, so anything else means the
// combinatorial sum mishandles the α → 0 limit (the 0⁰ corner).
func AssertVacuumOrthonormal(t *testing.T, maxIndex int) {
	t.Helper()

	for m := 0; m <= maxIndex; m++ {
		for n := 0; n <= maxIndex; n++ {
			v, err := MatrixElement(0, m, n)
			if err != nil {
				t.Fatalf("MatrixElement(0, %d, %d) failed: %v", m, n, err)
			}
			want := complex128(0)
			if m == n {
				want = 1
			}
			if v != want {
				t.Errorf("⟨%d|D(0)|%d⟩ = %v, want %v\n"+
					"Zero displacement must reproduce the orthonormal Fock basis exactly.",
					m, n, v, want)
			}
		}
	}

	t.Logf("✓ Vacuum orthonormality: ⟨m|D(0)|n⟩ = δ_mn for m, n ≤ %d", maxIndex)
}

// AssertDiagonalLaguerre verifies the diagonal identity
//
//	⟨m|D(α)|m⟩ = e^{−|α|²/2} · L_m(|α|²)
//
// for all m ≤ maxM, against the independent recurrence evaluator.
func AssertDiagonalLaguerre(t *testing.T, alpha complex128, maxM int, tol float64) {
	t.Helper()

	x := real(alpha)*real(alpha) + imag(alpha)*imag(alpha)
	for m := 0; m <= maxM; m++ {
		got, err := MatrixElement(alpha, m, m)
		if err != nil {
			t.Fatalf("MatrixElement(%v, %d, %d) failed: %v", alpha, m, m, err)
		}
		want := math.Exp(-x/2) * LaguerrePolynomial(m, x)

		if math.Abs(imag(got)) > tol {
			t.Errorf("⟨%d|D(%v)|%d⟩ has imaginary part %.3e (diagonal elements are real)",
				m, alpha, m, imag(got))
		}
		if !scalar.EqualWithinAbs(real(got), want, tol) {
			t.Errorf("⟨%d|D(%v)|%d⟩ = %.12f, want e^{−|α|²/2}·L_%d(|α|²) = %.12f (tol %.1e)",
				m, alpha, m, real(got), m, want, tol)
		}
	}

	t.Logf("✓ Diagonal Laguerre identity holds for m ≤ %d at α = %v", maxM, alpha)
}

// AssertDomainAdditivity verifies that for a real integrand the triangular
// half-domain plus its complement reproduce the full-square integral:
//
//	∫∫_{t2 ≤ t1} f + ∫∫_{t2 > t1} f = ∫∫_{[a,b]²} f
//
// This isolates the engine's variable-bound handling from the physics
// integrands.
func AssertDomainAdditivity(t *testing.T, e Engine, f func(t1, t2 float64) float64, a, b, tol float64) {
	t.Helper()

	lowerTri, _ := e.Integrate2D(f, a, b, ZeroBound, IdentityBound)
	upperTri, _ := e.Integrate2D(f, a, b, IdentityBound, ConstBound(b))
	square, _ := e.Integrate2D(f, a, b, ZeroBound, ConstBound(b))

	if !scalar.EqualWithinAbs(lowerTri+upperTri, square, tol) {
		t.Errorf("Domain splitting broken: triangle %.12f + complement %.12f = %.12f, "+
			"full square = %.12f (tol %.1e)",
			lowerTri, upperTri, lowerTri+upperTri, square, tol)
	}

	t.Logf("✓ Domain additivity: %.12f + %.12f ≈ %.12f", lowerTri, upperTri, square)
}

// AssertFiniteGrid verifies a magnitude matrix contains no NaN or Inf
// entries.
func AssertFiniteGrid(t *testing.T, rows, cols int, at func(i, j int) float64) {
	t.Helper()

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := at(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("grid cell (%d, %d) is non-finite: %v", i, j, v)
			}
		}
	}
}
