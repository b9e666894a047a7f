package core

import (
	"errors"
	"math"
	"testing"
)

func TestApplyTuningOptions(t *testing.T) {
	cfg := ApplyTuningOptions(WithFrequency(3), WithDamping(1), WithResponse(0))
	want := Tuning{Frequency: 3, Damping: 1, Response: 0}
	if cfg != want {
		t.Fatalf("cfg = %#v, want %#v", cfg, want)
	}
}

func TestInvalidTuningOptionsIgnored(t *testing.T) {
	cfg := ApplyTuningOptions(WithFrequency(0), WithDamping(-1), WithResponse(math.NaN()), nil)
	def := DefaultTuning()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name    string
		tuning  Tuning
		wantErr bool
	}{
		{name: "default", tuning: DefaultTuning()},
		{name: "undamped", tuning: Tuning{Frequency: 2, Damping: 0, Response: 0}},
		{name: "negative response", tuning: Tuning{Frequency: 2, Damping: 1, Response: -1}},
		{name: "zero frequency", tuning: Tuning{Frequency: 0, Damping: 1}, wantErr: true},
		{name: "negative damping", tuning: Tuning{Frequency: 1, Damping: -0.1}, wantErr: true},
		{name: "inf response", tuning: Tuning{Frequency: 1, Damping: 1, Response: math.Inf(1)}, wantErr: true},
		{name: "nan frequency", tuning: Tuning{Frequency: math.NaN(), Damping: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tuning.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTuning) {
					t.Fatalf("Validate() = %v, want ErrInvalidTuning", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
		})
	}
}
