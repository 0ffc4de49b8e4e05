package magnus

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig reports a drive configuration that fails validation.
// Returned (wrapped) before any quadrature is attempted.
var ErrInvalidConfig = errors.New("invalid drive configuration")

// ErrNegativeIndex reports a negative Fock mode index.
var ErrNegativeIndex = errors.New("negative mode index")

// DriveConfig describes the constant drive pulse applied to the gate.
//
// Both fields are strictly positive. The same value must be used for every
// integrand evaluation within one coefficient computation; DriveConfig is
// passed by value everywhere, so callers cannot mutate a computation in
// flight.
type DriveConfig struct {
	// RabiFrequency is the drive strength Ω.
	RabiFrequency float64

	// GateDuration is the total interaction time T.
	GateDuration float64
}

// DefaultDriveConfig returns the reference drive: Ω = 0.5, T = 2π.
func DefaultDriveConfig() DriveConfig {
	return DriveConfig{
		RabiFrequency: 0.5,
		GateDuration:  2 * math.Pi,
	}
}

// Validate checks that both drive parameters are strictly positive and
// finite. It is called by every coefficient entry point before any
// numerical work starts.
func (c DriveConfig) Validate() error {
	if !(c.RabiFrequency > 0) || math.IsInf(c.RabiFrequency, 0) {
		return fmt.Errorf("%w: RabiFrequency = %v (must be a positive finite real)",
			ErrInvalidConfig, c.RabiFrequency)
	}
	if !(c.GateDuration > 0) || math.IsInf(c.GateDuration, 0) {
		return fmt.Errorf("%w: GateDuration = %v (must be a positive finite real)",
			ErrInvalidConfig, c.GateDuration)
	}
	return nil
}

// validateModePair rejects negative Fock indices before quadrature starts.
func validateModePair(m, n int) error {
	if m < 0 || n < 0 {
		return fmt.Errorf("%w: (m, n) = (%d, %d)", ErrNegativeIndex, m, n)
	}
	return nil
}
