package model

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output != OutputTable {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputTable)
	}

	if cfg.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty string", cfg.BaseURL)
	}

	if cfg.RefreshThreshold != "" {
		t.Errorf("RefreshThreshold = %q, want empty string", cfg.RefreshThreshold)
	}
}

func TestConfig_Threshold(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantNil bool
		wantErr bool
	}{
		{
			name:    "empty means no threshold",
			value:   "",
			wantNil: true,
		},
		{
			name:  "hours",
			value: "24h",
			want:  24 * time.Hour,
		},
		{
			name:  "mixed units",
			value: "1h30m",
			want:  90 * time.Minute,
		},
		{
			name:    "garbage",
			value:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{RefreshThreshold: tt.value}

			got, err := cfg.Threshold()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Threshold() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				return
			}

			if tt.wantNil {
				if got != nil {
					t.Errorf("Threshold() = %v, want nil", *got)
				}
				return
			}

			if got == nil || *got != tt.want {
				t.Errorf("Threshold() = %v, want %v", got, tt.want)
			}
		})
	}
}
