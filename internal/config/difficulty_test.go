package config

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"HARD", DifficultyHard, false},
		{" fixed ", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestPresetNextWraps(t *testing.T) {
	p := DifficultyEasy
	seen := map[DifficultyPreset]bool{}
	for range Presets() {
		seen[p] = true
		p = p.Next()
	}
	if p != DifficultyEasy {
		t.Errorf("cycling all presets should return to easy, got %q", p)
	}
	if len(seen) != len(Presets()) {
		t.Errorf("expected %d distinct presets, saw %d", len(Presets()), len(seen))
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		initialMs int
		speedUp   bool
	}{
		{DifficultyEasy, 200, true},
		{DifficultyNormal, 150, true},
		{DifficultyHard, 110, true},
		{DifficultyFixed, 150, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)
			if cfg.Speed.InitialMs != tc.initialMs {
				t.Errorf("InitialMs = %d, expected %d", cfg.Speed.InitialMs, tc.initialMs)
			}
			if cfg.Speed.SpeedUp != tc.speedUp {
				t.Errorf("SpeedUp = %v, expected %v", cfg.Speed.SpeedUp, tc.speedUp)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestApplySnakePresetClampsFloor(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Speed.MinMs = 150
	ApplySnakePreset(&cfg, DifficultyHard)
	if cfg.Speed.MinMs > cfg.Speed.InitialMs {
		t.Errorf("MinMs %d should not exceed InitialMs %d", cfg.Speed.MinMs, cfg.Speed.InitialMs)
	}
}

func TestIsFixedPreset(t *testing.T) {
	for _, p := range Presets() {
		expected := p == DifficultyFixed
		if got := IsFixedPreset(p); got != expected {
			t.Errorf("IsFixedPreset(%q) = %v, expected %v", p, got, expected)
		}
	}

	// A config file that enables speed-up is still overridden by fixed.
	cfg := DefaultSnakeConfig()
	cfg.Speed.SpeedUp = true
	ApplySnakePreset(&cfg, DifficultyFixed)
	if cfg.Speed.SpeedUp {
		t.Error("fixed preset should disable speed-up")
	}
}
