package core

import "testing"

func TestResolveSeed(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive", 42},
		{"negative", -7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveSeed(tc.seed); got != tc.seed {
				t.Errorf("ResolveSeed(%d) = %d, expected it unchanged", tc.seed, got)
			}
		})
	}

	if ResolveSeed(0) == 0 {
		t.Error("ResolveSeed(0) should pick a time-based seed")
	}
}

func TestDefaultConfigSeedIsResolvedLater(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Seed != 0 {
		t.Errorf("DefaultConfig().Seed = %d, expected 0", cfg.Seed)
	}
	if cfg.TickRate != 60 {
		t.Errorf("DefaultConfig().TickRate = %d, expected 60", cfg.TickRate)
	}
}
