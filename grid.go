package magnus

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// ErrNonconverged reports a quadrature error estimate above the sweep's
// ceiling. The cell is recorded as failed; the sweep continues.
var ErrNonconverged = errors.New("quadrature error estimate above ceiling")

// CoefficientKind names one of the four coefficients a sweep can target.
type CoefficientKind string

const (
	FirstOrderKind   CoefficientKind = "I"
	SecondOrder1Kind CoefficientKind = "J1"
	SecondOrder2Kind CoefficientKind = "J2"
	SecondOrder3Kind CoefficientKind = "J3"
)

// GridConfig controls a sweep over mode-index pairs.
type GridConfig struct {
	// MaxIndex is the inclusive upper mode index; the sweep covers the
	// (MaxIndex+1)² pairs (m, n) ∈ [0, MaxIndex]².
	MaxIndex int

	// Workers is the worker-pool size. 0 means runtime.NumCPU().
	Workers int

	// ErrorCeiling is the hard ceiling on a cell's quadrature error
	// estimate. Estimates above it mark the cell failed instead of
	// contributing a value of unknown quality.
	ErrorCeiling float64

	// Engine is the quadrature engine shared by all workers.
	Engine Engine
}

// DefaultGridConfig returns the reference sweep settings: indices 0..7,
// one worker per CPU, ceiling 1e-6.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		MaxIndex:     7,
		Workers:      runtime.NumCPU(),
		ErrorCeiling: 1e-6,
		Engine:       DefaultEngine(),
	}
}

// CellFailure records one grid cell that could not produce a trusted
// value, with the error that stopped it.
type CellFailure struct {
	M, N int
	Err  error
}

// SweepGrid evaluates one coefficient over every mode pair in the grid and
// returns the squared magnitudes |c_mn|² as a dense matrix (rows m,
// columns n). Failed cells stay at zero and are reported in the failure
// list; a failure never aborts the sweep.
//
// Cells are embarrassingly parallel: each one is a pure function of
// (m, n) and the shared immutable DriveConfig, so the pool needs no
// synchronization beyond result collection.
func SweepGrid(kind CoefficientKind, cfg DriveConfig, gc GridConfig) (*mat.Dense, []CellFailure, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if gc.MaxIndex < 0 {
		return nil, nil, fmt.Errorf("%w: MaxIndex = %d", ErrNegativeIndex, gc.MaxIndex)
	}
	eval, err := coefficientFunc(kind, gc.Engine)
	if err != nil {
		return nil, nil, err
	}

	workers := gc.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	dim := gc.MaxIndex + 1
	grid := mat.NewDense(dim, dim, nil)

	type cell struct{ m, n int }
	jobs := make(chan cell)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []CellFailure
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				res, err := eval(c.m, c.n, cfg)
				if err == nil && gc.ErrorCeiling > 0 && res.AbsError > gc.ErrorCeiling {
					err = fmt.Errorf("%w: estimate %.3e > ceiling %.3e",
						ErrNonconverged, res.AbsError, gc.ErrorCeiling)
				}
				if err != nil {
					mu.Lock()
					failures = append(failures, CellFailure{M: c.m, N: c.n, Err: err})
					mu.Unlock()
					continue
				}
				mag := real(res.Value)*real(res.Value) + imag(res.Value)*imag(res.Value)
				mu.Lock()
				grid.Set(c.m, c.n, mag)
				mu.Unlock()
			}
		}()
	}

	for m := 0; m < dim; m++ {
		for n := 0; n < dim; n++ {
			jobs <- cell{m, n}
		}
	}
	close(jobs)
	wg.Wait()

	return grid, failures, nil
}

func coefficientFunc(kind CoefficientKind, e Engine) (func(m, n int, cfg DriveConfig) (Result, error), error) {
	a := NewAssembler(e)
	switch kind {
	case FirstOrderKind:
		return a.FirstOrder, nil
	case SecondOrder1Kind:
		return a.SecondOrder1, nil
	case SecondOrder2Kind:
		return a.SecondOrder2, nil
	case SecondOrder3Kind:
		return a.SecondOrder3, nil
	default:
		return nil, fmt.Errorf("unknown coefficient kind %q (want I, J1, J2 or J3)", kind)
	}
}
