// Package config provides configuration loading and access for the simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Creature   CreatureConfig   `yaml:"creature"`
	Movement   MovementConfig   `yaml:"movement"`
	Mutation   MutationConfig   `yaml:"mutation"`
	Population PopulationConfig `yaml:"population"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window parameters.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds physics-world dimensions.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	FloorFraction float64 `yaml:"floor_fraction"`  // Floor thickness as a fraction of world height
	ScorePerWidth float64 `yaml:"score_per_width"` // Score units awarded for crossing the full world width
}

// PhysicsConfig holds integration and muscle actuation parameters.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"` // Positive y is down
	StepsPerSecond  int     `yaml:"steps_per_second"`
	Iterations      int     `yaml:"iterations"` // Constraint solver iterations
	Restitution     float64 `yaml:"restitution"`
	MuscleStiffness float64 `yaml:"muscle_stiffness"`
	MuscleDamping   float64 `yaml:"muscle_damping"`
	MaxContraction  float64 `yaml:"max_contraction"` // Relative to natural length, -0.5 = half length
	MaxExtension    float64 `yaml:"max_extension"`   // Relative to natural length, 0.5 = 1.5x length
	LimitFlux       float64 `yaml:"limit_flux"`      // Permitted joint travel beyond the nominal range
}

// CreatureConfig holds random generation parameters.
type CreatureConfig struct {
	BaseNodes       int     `yaml:"base_nodes"`
	ExtraNodeChance float64 `yaml:"extra_node_chance"` // Geometric coin flip per extra node
	PositionRange   float64 `yaml:"position_range"`    // Nodes placed in [-range, range] on both axes
	SizeMin         float64 `yaml:"size_min"`
	SizeMax         float64 `yaml:"size_max"`
	ConnectChance   float64 `yaml:"connect_chance"` // Probability each unordered node pair gets a muscle
	HueMax          int     `yaml:"hue_max"`        // Initial hue sampled from [0, hue_max]
}

// MovementConfig holds movement schedule sampling ranges, in seconds.
type MovementConfig struct {
	OffsetMaxSeconds float64 `yaml:"offset_max_seconds"`
	MinPeriodSeconds float64 `yaml:"min_period_seconds"`
	MaxPeriodSeconds float64 `yaml:"max_period_seconds"`
}

// MutationConfig holds mutation deltas.
type MutationConfig struct {
	PeriodDeltaSteps int `yaml:"period_delta_steps"` // Max perturbation of schedule periods, in steps
	HueDelta         int `yaml:"hue_delta"`          // Max hue perturbation, degrees
}

// PopulationConfig holds generation sizing and timing.
type PopulationConfig struct {
	Size               int     `yaml:"size"`
	OffspringPerParent int     `yaml:"offspring_per_parent"`
	GenerationSeconds  float64 `yaml:"generation_seconds"` // Simulated time each generation runs
	EvolveSeconds      float64 `yaml:"evolve_seconds"`     // Simulated time spent in the evolving phase
	MaxCatchupSteps    int     `yaml:"max_catchup_steps"`  // Cap on whole ticks consumed per Run call
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	LogStats bool `yaml:"log_stats"`
}

// DerivedConfig holds values computed from the configuration after loading.
type DerivedConfig struct {
	Dt              float64 // Seconds per simulation step
	FloorHeight     float64
	FloorTopY       float64
	SpawnX, SpawnY  float64 // Common bottom-center spawn point
	ScoreScale      float64 // Score units per world x unit
	OffsetMaxSteps  int
	MinPeriodSteps  int
	MaxPeriodSteps  int
	GenerationSteps int
	EvolveSteps     int
}

var global *Config

// Init loads configuration and makes it available via Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load reads the embedded defaults, overlays the user config file if path is
// non-empty, and computes derived values.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.ComputeDerived()

	return cfg, nil
}

// Default returns a fresh copy of the embedded default configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Physics.StepsPerSecond <= 0 {
		return fmt.Errorf("physics.steps_per_second must be positive, got %d", c.Physics.StepsPerSecond)
	}
	if c.Population.Size <= 0 || c.Population.OffspringPerParent <= 0 {
		return fmt.Errorf("population.size and population.offspring_per_parent must be positive")
	}
	if c.Population.Size%c.Population.OffspringPerParent != 0 {
		return fmt.Errorf("population.size (%d) must be divisible by population.offspring_per_parent (%d)",
			c.Population.Size, c.Population.OffspringPerParent)
	}
	if c.Movement.MinPeriodSeconds <= 0 || c.Movement.MaxPeriodSeconds < c.Movement.MinPeriodSeconds {
		return fmt.Errorf("movement period range [%v, %v] is invalid",
			c.Movement.MinPeriodSeconds, c.Movement.MaxPeriodSeconds)
	}
	return nil
}

// ComputeDerived recomputes the Derived section. Load calls this; tests that
// tweak fields directly must call it again.
func (c *Config) ComputeDerived() {
	sps := float64(c.Physics.StepsPerSecond)

	c.Derived.Dt = 1.0 / sps
	c.Derived.FloorHeight = c.World.Height * c.World.FloorFraction
	c.Derived.FloorTopY = c.World.Height - c.Derived.FloorHeight
	c.Derived.SpawnX = c.World.Width / 2
	c.Derived.SpawnY = c.Derived.FloorTopY
	c.Derived.ScoreScale = c.World.ScorePerWidth / c.World.Width

	c.Derived.OffsetMaxSteps = int(c.Movement.OffsetMaxSeconds * sps)
	c.Derived.MinPeriodSteps = max(1, int(c.Movement.MinPeriodSeconds*sps))
	c.Derived.MaxPeriodSteps = max(c.Derived.MinPeriodSteps, int(c.Movement.MaxPeriodSeconds*sps))
	c.Derived.GenerationSteps = max(1, int(c.Population.GenerationSeconds*sps))
	c.Derived.EvolveSteps = max(1, int(c.Population.EvolveSeconds*sps))
}

// WriteYAML saves the configuration to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
