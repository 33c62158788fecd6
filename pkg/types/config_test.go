package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty data dir returns ErrDataDirEmpty",
			config:  Config{DataDir: ""},
			wantErr: ErrDataDirEmpty,
		},
		{
			name:    "negative list limit returns ErrListLimitInvalid",
			config:  Config{DataDir: "/tmp/data", ListLimit: -1},
			wantErr: ErrListLimitInvalid,
		},
		{
			name:    "valid config",
			config:  Config{DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "explicit list limit is valid",
			config:  Config{DataDir: "/tmp/data", ListLimit: 10},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigEffectiveListLimit(t *testing.T) {
	if got := (Config{}).EffectiveListLimit(); got != DefaultListLimit {
		t.Fatalf("expected default %d, got %d", DefaultListLimit, got)
	}
	if got := (Config{ListLimit: 25}).EffectiveListLimit(); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
}
