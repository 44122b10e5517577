package wordarena

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
	if cfg.MaxWords != 100 || cfg.WallCount != 40 || cfg.PressThreshold != time.Second {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Gravity != (Vec2{}) {
		t.Errorf("Gravity = %v, want zero", cfg.Gravity)
	}
	c := cfg.Center()
	assertNear(t, "Center.X", c.X, 300)
	assertNear(t, "Center.Y", c.Y, 300)
}

func TestConfigDamping(t *testing.T) {
	cfg := DefaultConfig()
	// One step at the configured timestep keeps 98% of the velocity.
	perStep := math.Pow(cfg.Damping(), cfg.Timestep)
	assertNear(t, "per-step damping", perStep, 0.98)

	cfg.Timestep = 0
	assertNear(t, "zero timestep", cfg.Damping(), 1)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"max words", func(c *Config) { c.MaxWords = 0 }},
		{"max runes", func(c *Config) { c.MaxWordRunes = -1 }},
		{"arena too big", func(c *Config) { c.ArenaRadius = 400 }},
		{"few walls", func(c *Config) { c.WallCount = 2 }},
		{"bubble radius", func(c *Config) { c.BubbleRadius = 0 }},
		{"spawn inset", func(c *Config) { c.SpawnInset = 10 }},
		{"air friction", func(c *Config) { c.AirFriction = 1 }},
		{"timestep", func(c *Config) { c.Timestep = 0 }},
		{"threshold", func(c *Config) { c.PressThreshold = 0 }},
		{"burst count", func(c *Config) { c.BurstCount = -1 }},
		{"burst duration", func(c *Config) { c.BurstDuration = DurationRange{Min: time.Second, Max: time.Millisecond} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.applyEnv(lookupMap(map[string]string{
		"WORDARENA_MAX_WORDS":       "5",
		"WORDARENA_RESTITUTION":     "0.5",
		"WORDARENA_GRAVITY_Y":       "200",
		"WORDARENA_PRESS_THRESHOLD": "1500ms",
		"WORDARENA_SOUND":           "false",
		"WORDARENA_SEED":            "42",
		"WORDARENA_INTERACTION":     "Click",
		"WORDARENA_SYNC":            "rebuild",
		"WORDARENA_USER_NAME":       " alex ",
		"WORDARENA_EXPORT_DIR":      "",
	}))
	if err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if cfg.MaxWords != 5 || cfg.Restitution != 0.5 || cfg.Gravity.Y != 200 {
		t.Errorf("numeric overrides: %d %v %v", cfg.MaxWords, cfg.Restitution, cfg.Gravity.Y)
	}
	if cfg.PressThreshold != 1500*time.Millisecond || cfg.Sound || cfg.Seed != 42 {
		t.Errorf("threshold=%v sound=%v seed=%d", cfg.PressThreshold, cfg.Sound, cfg.Seed)
	}
	if cfg.Interaction != InteractionClick || cfg.Sync != SyncRebuild {
		t.Errorf("modes = %v/%v", cfg.Interaction, cfg.Sync)
	}
	if cfg.UserName != "alex" {
		t.Errorf("UserName = %q", cfg.UserName)
	}
	if cfg.ExportDir != "exports" {
		t.Errorf("empty value overrode ExportDir: %q", cfg.ExportDir)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	tests := map[string]string{
		"WORDARENA_MAX_WORDS":       "many",
		"WORDARENA_AIR_FRICTION":    "x",
		"WORDARENA_LOCK_SETTLE":     "soon",
		"WORDARENA_DEBUG":           "maybe",
		"WORDARENA_SEED":            "-1",
		"WORDARENA_INTERACTION":     "swipe",
		"WORDARENA_SYNC":            "sometimes",
		"WORDARENA_PRESS_THRESHOLD": "1",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := cfg.applyEnv(lookupMap(map[string]string{key: val})); err == nil {
				t.Errorf("%s=%q: expected error", key, val)
			}
		})
	}
}

func TestLoadConfigDotenv(t *testing.T) {
	// Registering the keys with t.Setenv restores the environment after
	// godotenv writes to it.
	for _, k := range []string{"WORDARENA_MAX_WORDS", "WORDARENA_USER_NAME"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("WORDARENA_MAX_WORDS=7\nWORDARENA_USER_NAME=sam\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxWords != 7 || cfg.UserName != "sam" {
		t.Errorf("MaxWords = %d, UserName = %q", cfg.MaxWords, cfg.UserName)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("WORDARENA_MAX_WORDS", "")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxWords != 100 {
		t.Errorf("MaxWords = %d, want 100", cfg.MaxWords)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	t.Setenv("WORDARENA_MAX_WORDS", "0")
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected validation error")
	}
}
