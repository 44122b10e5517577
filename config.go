package wordarena

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// envPrefix is prepended to every configuration key read from the environment.
const envPrefix = "WORDARENA_"

// Config controls the arena simulation and its interaction timings. The zero
// value is not usable; start from DefaultConfig.
type Config struct {
	// MaxWords bounds the registry. Adds beyond it are ignored.
	MaxWords int
	// MaxWordRunes caps the length of a single word.
	MaxWordRunes int

	// StageSize is the side of the square stage that holds the arena.
	StageSize float64
	// ArenaRadius is the inner radius of the circular wall.
	ArenaRadius float64
	// WallCount is the number of static segments approximating the circle.
	WallCount int
	// WallThickness and WallLength size each segment before overlap clamping.
	WallThickness float64
	WallLength    float64

	// BubbleRadius is the radius of every word body.
	BubbleRadius float64
	// SpawnInset shrinks the spawn disc so new bodies start clear of the wall.
	SpawnInset float64
	// MaxInitialSpeed bounds each velocity axis of a new body, in px/s.
	MaxInitialSpeed float64
	// Restitution is the bounciness of bubbles.
	Restitution float64
	// AirFriction is the fraction of velocity lost per physics step.
	AirFriction float64
	// Gravity is the constant acceleration applied to bubbles, in px/s².
	Gravity Vec2
	// Timestep is the fixed physics step in seconds.
	Timestep float64
	// Sync selects the body synchronization strategy.
	Sync SyncMode

	// Interaction selects press-and-hold or click removal.
	Interaction InteractionMode
	// PressThreshold is how long a press must be held to remove every
	// bubble sharing the pressed word.
	PressThreshold time.Duration
	// BurstStagger separates consecutive bursts of a batch removal.
	BurstStagger time.Duration
	// LockSettle is added after the last staggered burst before the lock clears.
	LockSettle time.Duration

	// BurstCount is the number of particles per removal burst.
	BurstCount int
	// BurstDuration is the lifetime range of burst particles.
	BurstDuration DurationRange
	// BurstDistance is the travel distance range of burst particles.
	BurstDistance Range
	// BurstJitter is the maximum angular jitter per particle, in radians.
	BurstJitter float64
	// ParticleSize is the radius of a particle at birth.
	ParticleSize float64
	// PopDuration is how long a removed bubble's pop animation runs.
	PopDuration time.Duration

	// NeutralColor and AlertColor are the ends of the press-progress ramp.
	NeutralColor Color
	AlertColor   Color
	// ParticleColor tints burst particles.
	ParticleColor Color

	// UserName is drawn over the arena while it is captured. Empty disables it.
	UserName string
	// ExportDir receives PNG files when the image clipboard is unavailable.
	ExportDir string
	// Sound enables the synthesized pop sound.
	Sound bool
	// Seed seeds the arena's random source. Zero picks a time-based seed.
	Seed uint64
	// LogLevel is a zerolog level name.
	LogLevel string
	// Debug enables periodic stats logging.
	Debug bool
}

// DefaultConfig returns a 600px stage,
// a 250px arena walled by 40 segments, 32px bubbles and at most 100 words.
func DefaultConfig() Config {
	return Config{
		MaxWords:     100,
		MaxWordRunes: 12,

		StageSize:     600,
		ArenaRadius:   250,
		WallCount:     40,
		WallThickness: 16,
		WallLength:    40,

		BubbleRadius:    32,
		SpawnInset:      40,
		MaxInitialSpeed: 60,
		Restitution:     0.9,
		AirFriction:     0.02,
		Timestep:        1.0 / 60.0,
		Sync:            SyncIncremental,

		Interaction:    InteractionPress,
		PressThreshold: time.Second,
		BurstStagger:   120 * time.Millisecond,
		LockSettle:     500 * time.Millisecond,

		BurstCount:    12,
		BurstDuration: DurationRange{Min: 450 * time.Millisecond, Max: 800 * time.Millisecond},
		BurstDistance: Range{Min: 40, Max: 90},
		BurstJitter:   0.2,
		ParticleSize:  6,
		PopDuration:   350 * time.Millisecond,

		NeutralColor:  Color{R: 1, G: 1, B: 1, A: 1},
		AlertColor:    Color{R: 0.93, G: 0.27, B: 0.27, A: 1},
		ParticleColor: Color{R: 0.55, G: 0.55, B: 0.6, A: 1},

		ExportDir: "exports",
		Sound:     true,
		LogLevel:  "info",
	}
}

// Center returns the arena center in stage coordinates.
func (c Config) Center() Vec2 {
	return Vec2{X: c.StageSize / 2, Y: c.StageSize / 2}
}

// Damping converts AirFriction (per step) into the per-second velocity
// retention factor the physics engine expects.
func (c Config) Damping() float64 {
	if c.Timestep <= 0 {
		return 1
	}
	return math.Pow(1-c.AirFriction, 1/c.Timestep)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.MaxWords <= 0:
		return fmt.Errorf("config: MaxWords must be positive, got %d", c.MaxWords)
	case c.MaxWordRunes <= 0:
		return fmt.Errorf("config: MaxWordRunes must be positive, got %d", c.MaxWordRunes)
	case c.StageSize <= 0:
		return fmt.Errorf("config: StageSize must be positive, got %v", c.StageSize)
	case c.ArenaRadius <= 0 || 2*(c.ArenaRadius+c.WallThickness) > c.StageSize:
		return fmt.Errorf("config: ArenaRadius %v does not fit stage %v", c.ArenaRadius, c.StageSize)
	case c.WallCount < 3:
		return fmt.Errorf("config: WallCount must be at least 3, got %d", c.WallCount)
	case c.BubbleRadius <= 0:
		return fmt.Errorf("config: BubbleRadius must be positive, got %v", c.BubbleRadius)
	case c.SpawnInset < c.BubbleRadius || c.SpawnInset >= c.ArenaRadius:
		return fmt.Errorf("config: SpawnInset %v must be in [BubbleRadius, ArenaRadius)", c.SpawnInset)
	case c.AirFriction < 0 || c.AirFriction >= 1:
		return fmt.Errorf("config: AirFriction must be in [0, 1), got %v", c.AirFriction)
	case c.Timestep <= 0:
		return fmt.Errorf("config: Timestep must be positive, got %v", c.Timestep)
	case c.PressThreshold <= 0:
		return fmt.Errorf("config: PressThreshold must be positive, got %v", c.PressThreshold)
	case c.BurstCount < 0:
		return fmt.Errorf("config: BurstCount must not be negative, got %d", c.BurstCount)
	case c.BurstDuration.Min <= 0 || c.BurstDuration.Max < c.BurstDuration.Min:
		return fmt.Errorf("config: BurstDuration %v..%v is invalid", c.BurstDuration.Min, c.BurstDuration.Max)
	}
	return nil
}

// LoadConfig starts from DefaultConfig, loads the given dotenv files (missing
// files are skipped; with no arguments ".env" is tried) and applies
// WORDARENA_* overrides from the process environment. Variables already set in
// the environment win over dotenv values.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := DefaultConfig()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from lookup, which follows os.LookupEnv.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var err error
	get := func(key string) (string, bool) {
		v, ok := lookup(envPrefix + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}
	setInt := func(key string, dst *int) {
		if v, ok := get(key); ok && err == nil {
			n, perr := strconv.Atoi(v)
			if perr != nil {
				err = fmt.Errorf("config: %s%s: %w", envPrefix, key, perr)
				return
			}
			*dst = n
		}
	}
	setFloat := func(key string, dst *float64) {
		if v, ok := get(key); ok && err == nil {
			f, perr := strconv.ParseFloat(v, 64)
			if perr != nil {
				err = fmt.Errorf("config: %s%s: %w", envPrefix, key, perr)
				return
			}
			*dst = f
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v, ok := get(key); ok && err == nil {
			d, perr := time.ParseDuration(v)
			if perr != nil {
				err = fmt.Errorf("config: %s%s: %w", envPrefix, key, perr)
				return
			}
			*dst = d
		}
	}
	setBool := func(key string, dst *bool) {
		if v, ok := get(key); ok && err == nil {
			b, perr := strconv.ParseBool(v)
			if perr != nil {
				err = fmt.Errorf("config: %s%s: %w", envPrefix, key, perr)
				return
			}
			*dst = b
		}
	}

	setInt("MAX_WORDS", &c.MaxWords)
	setInt("MAX_WORD_RUNES", &c.MaxWordRunes)
	setInt("WALL_COUNT", &c.WallCount)
	setInt("BURST_COUNT", &c.BurstCount)
	setFloat("ARENA_RADIUS", &c.ArenaRadius)
	setFloat("BUBBLE_RADIUS", &c.BubbleRadius)
	setFloat("RESTITUTION", &c.Restitution)
	setFloat("AIR_FRICTION", &c.AirFriction)
	setFloat("GRAVITY_Y", &c.Gravity.Y)
	setDuration("PRESS_THRESHOLD", &c.PressThreshold)
	setDuration("BURST_STAGGER", &c.BurstStagger)
	setDuration("LOCK_SETTLE", &c.LockSettle)
	setBool("SOUND", &c.Sound)
	setBool("DEBUG", &c.Debug)
	if err != nil {
		return err
	}

	if v, ok := get("SEED"); ok {
		n, perr := strconv.ParseUint(v, 10, 64)
		if perr != nil {
			return fmt.Errorf("config: %sSEED: %w", envPrefix, perr)
		}
		c.Seed = n
	}
	if v, ok := get("INTERACTION"); ok {
		switch strings.ToLower(v) {
		case "press":
			c.Interaction = InteractionPress
		case "click":
			c.Interaction = InteractionClick
		default:
			return fmt.Errorf("config: %sINTERACTION: unknown mode %q", envPrefix, v)
		}
	}
	if v, ok := get("SYNC"); ok {
		switch strings.ToLower(v) {
		case "incremental":
			c.Sync = SyncIncremental
		case "rebuild":
			c.Sync = SyncRebuild
		default:
			return fmt.Errorf("config: %sSYNC: unknown mode %q", envPrefix, v)
		}
	}
	if v, ok := get("USER_NAME"); ok {
		c.UserName = v
	}
	if v, ok := get("EXPORT_DIR"); ok {
		c.ExportDir = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return nil
}
