package magnus

import (
	"errors"
	"math"
	"testing"
)

// TestDefaultDriveConfig verifies the reference drive parameters.
func TestDefaultDriveConfig(t *testing.T) {
	cfg := DefaultDriveConfig()

	if cfg.RabiFrequency != 0.5 {
		t.Errorf("default RabiFrequency = %v, want 0.5", cfg.RabiFrequency)
	}
	if cfg.GateDuration != 2*math.Pi {
		t.Errorf("default GateDuration = %v, want 2π", cfg.GateDuration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}

	t.Logf("✓ Default drive: Ω = %.2f, T = 2π", cfg.RabiFrequency)
}

// TestDriveConfigValidate rejects every non-positive or non-finite field.
func TestDriveConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  DriveConfig
	}{
		{"zero rabi", DriveConfig{RabiFrequency: 0, GateDuration: 1}},
		{"negative rabi", DriveConfig{RabiFrequency: -0.5, GateDuration: 1}},
		{"NaN rabi", DriveConfig{RabiFrequency: math.NaN(), GateDuration: 1}},
		{"inf rabi", DriveConfig{RabiFrequency: math.Inf(1), GateDuration: 1}},
		{"zero duration", DriveConfig{RabiFrequency: 0.5, GateDuration: 0}},
		{"negative duration", DriveConfig{RabiFrequency: 0.5, GateDuration: -2 * math.Pi}},
		{"inf duration", DriveConfig{RabiFrequency: 0.5, GateDuration: math.Inf(1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestValidationFailsBeforeQuadrature verifies that every coefficient entry
// point rejects bad inputs before any numerical work starts.
func TestValidationFailsBeforeQuadrature(t *testing.T) {
	bad := DriveConfig{RabiFrequency: -1, GateDuration: 2 * math.Pi}
	good := DefaultDriveConfig()

	if _, err := FirstOrderCoefficient(0, 0, bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("FirstOrderCoefficient with bad config: err = %v, want ErrInvalidConfig", err)
	}
	if _, err := SecondOrderCoefficient1(0, 0, bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("SecondOrderCoefficient1 with bad config: err = %v, want ErrInvalidConfig", err)
	}
	if _, err := FirstOrderCoefficient(-1, 0, good); !errors.Is(err, ErrNegativeIndex) {
		t.Errorf("FirstOrderCoefficient(-1, 0): err = %v, want ErrNegativeIndex", err)
	}
	if _, err := SecondOrderCoefficient3(0, -2, good); !errors.Is(err, ErrNegativeIndex) {
		t.Errorf("SecondOrderCoefficient3(0, -2): err = %v, want ErrNegativeIndex", err)
	}

	t.Logf("✓ Validation errors are fatal to the single call and raised up front")
}
