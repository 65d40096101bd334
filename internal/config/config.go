package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"lundao/internal/bot"
)

var ErrInvalidConfig = errors.New("invalid config")

type LookaheadConfig struct {
	Depth int `yaml:"depth" validate:"min=1,max=10"`
}

type MCTSConfig struct {
	Iterations   int     `yaml:"iterations" validate:"min=1"`
	Exploration  float64 `yaml:"exploration" validate:"gt=0"`
	RolloutDepth int     `yaml:"rollout_depth" validate:"min=1"`
	Seed         int64   `yaml:"seed"`
}

type BenchConfig struct {
	Games   int    `yaml:"games" validate:"min=1"`
	Sandbox string `yaml:"sandbox" validate:"oneof=vanilla plus"`
	// MaxDiffs caps the differences a comparison collects; 0 means no cap.
	MaxDiffs int `yaml:"max_diffs" validate:"min=0"`
}

type Config struct {
	// Enabled gates the decision loop; RPCs still answer when it is off.
	Enabled   bool            `yaml:"enabled"`
	Strategy  string          `yaml:"strategy" validate:"required,oneof=baseline improved_baseline greedy lookahead mcts"`
	LogLevel  string          `yaml:"log_level" validate:"oneof=debug info warn error"`
	Lookahead LookaheadConfig `yaml:"lookahead"`
	MCTS      MCTSConfig      `yaml:"mcts"`
	Bench     BenchConfig     `yaml:"bench"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Enabled:  true,
		Strategy: string(bot.KindLookahead),
		LogLevel: "info",
		Lookahead: LookaheadConfig{
			Depth: bot.DefaultTuning.LookaheadDepth,
		},
		MCTS: MCTSConfig{
			Iterations:   bot.DefaultTuning.MCTSIterations,
			Exploration:  bot.DefaultTuning.MCTSExploration,
			RolloutDepth: bot.DefaultTuning.MCTSRolloutDepth,
		},
		Bench: BenchConfig{
			Games:    1000,
			Sandbox:  "vanilla",
			MaxDiffs: 10,
		},
	}
}

var validate = validator.New()

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// StrategyOptions converts the search settings for bot.NewStrategy.
func (c Config) StrategyOptions() bot.Options {
	return bot.Options{
		LookaheadDepth:   c.Lookahead.Depth,
		MCTSIterations:   c.MCTS.Iterations,
		MCTSExploration:  c.MCTS.Exploration,
		MCTSRolloutDepth: c.MCTS.RolloutDepth,
		Seed:             c.MCTS.Seed,
	}
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

var (
	cfg      *Config
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the process-wide configuration once. An empty path
// keeps the defaults.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		if path == "" {
			c := Default()
			cfg = &c
			return
		}
		c, err := Load(path)
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the process-wide configuration, or the defaults when
// nothing was loaded.
func GetGameConfig() Config {
	if cfg == nil {
		return Default()
	}
	return *cfg
}
