package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWeeks        = 18
	DefaultByeStart     = 4
	DefaultByeEnd       = 14
	DefaultMaxAttempts  = 25
	DefaultStrategy     = "rotation"
	DefaultRatingBoost  = 3
	DefaultPlayoffSeeds = 7
)

type ByeWindow struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

type Season struct {
	Weeks       int       `yaml:"weeks"`
	ByeWindow   ByeWindow `yaml:"bye_window"`
	MaxAttempts int       `yaml:"max_attempts"`
	Seed        int64     `yaml:"seed"` // 0 = random
}

type Simulation struct {
	RatingBoost  float64 `yaml:"rating_boost"`
	PlayoffSeeds int     `yaml:"playoff_seeds"`
}

type Team struct {
	Name          string  `yaml:"name"`
	Conference    string  `yaml:"conference"`
	Division      string  `yaml:"division"`
	Rating        float64 `yaml:"rating"`
	StadiumRating float64 `yaml:"stadium_rating"`
}

type Config struct {
	Season     Season     `yaml:"season"`
	Strategy   string     `yaml:"strategy"`
	Simulation Simulation `yaml:"simulation"`
	Teams      []Team     `yaml:"teams"`
}

// Env holds settings read from the environment. They override the file.
type Env struct {
	Seed      int64  `env:"SEASONSIM_SEED"`
	LogLevel  string `env:"SEASONSIM_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"SEASONSIM_LOG_FORMAT" envDefault:"text"`
}

// LoadEnv parses the SEASONSIM_* environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parsing environment: %w", err)
	}
	return e, nil
}

// Apply copies environment overrides onto the config.
func (e Env) Apply(cfg *Config) {
	if e.Seed != 0 {
		cfg.Season.Seed = e.Seed
	}
}

// Conferences returns conference names in roster order of first appearance.
func (c *Config) Conferences() []string {
	seen := make(map[string]bool)
	var confs []string
	for _, t := range c.Teams {
		if !seen[t.Conference] {
			seen[t.Conference] = true
			confs = append(confs, t.Conference)
		}
	}
	return confs
}

// LoadFromBytes parses YAML bytes into a Config and validates it.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile reads and parses a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

func (c *Config) applyDefaults() {
	if c.Season.Weeks == 0 {
		c.Season.Weeks = DefaultWeeks
	}
	if c.Season.ByeWindow == (ByeWindow{}) {
		c.Season.ByeWindow = ByeWindow{Start: DefaultByeStart, End: DefaultByeEnd}
		if c.Season.ByeWindow.End > c.Season.Weeks {
			c.Season.ByeWindow = ByeWindow{Start: 1, End: c.Season.Weeks}
		}
	}
	if c.Season.MaxAttempts == 0 {
		c.Season.MaxAttempts = DefaultMaxAttempts
	}
	if c.Strategy == "" {
		c.Strategy = DefaultStrategy
	}
	if c.Simulation.RatingBoost == 0 {
		c.Simulation.RatingBoost = DefaultRatingBoost
	}
	if c.Simulation.PlayoffSeeds == 0 {
		c.Simulation.PlayoffSeeds = DefaultPlayoffSeeds
	}
}

func (c *Config) validate() error {
	if c.Season.Weeks < 1 {
		return fmt.Errorf("season must have at least one week, got %d", c.Season.Weeks)
	}

	bw := c.Season.ByeWindow
	if bw.Start < 1 || bw.End > c.Season.Weeks || bw.Start > bw.End {
		return fmt.Errorf("bye window %d-%d must lie within weeks 1-%d", bw.Start, bw.End, c.Season.Weeks)
	}

	if c.Season.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1, got %d", c.Season.MaxAttempts)
	}

	if c.Simulation.PlayoffSeeds < 1 {
		return fmt.Errorf("playoff_seeds must be at least 1, got %d", c.Simulation.PlayoffSeeds)
	}

	if len(c.Teams) == 0 {
		return fmt.Errorf("at least one team is required")
	}

	seen := make(map[string]bool)
	for i, t := range c.Teams {
		if t.Name == "" {
			return fmt.Errorf("team %d has no name", i+1)
		}
		if t.Conference == "" || t.Division == "" {
			return fmt.Errorf("team %q must have a conference and a division", t.Name)
		}
		if t.Rating <= 0 {
			return fmt.Errorf("team %q rating must be positive, got %g", t.Name, t.Rating)
		}
		if seen[t.Name] {
			return fmt.Errorf("team %q appears more than once", t.Name)
		}
		seen[t.Name] = true
	}

	return nil
}
