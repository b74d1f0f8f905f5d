package experiments

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gamey/experiments/metrics"
	"gamey/meta"
	"gamey/searcher"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

type MatchUp struct {
	Agent1 int `yaml:"agent1"` // AgentConfig.ID, blue in odd games
	Agent2 int `yaml:"agent2"` // AgentConfig.ID, blue in even games
}

type Config struct {
	Name     string                `yaml:"name"`
	Size     int                   `yaml:"size"`
	Games    int                   `yaml:"games"` // Per match up
	Parallel int                   `yaml:"parallel"`
	MaxMoves int                   `yaml:"max_moves"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps []MatchUp             `yaml:"matchups"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML config, fills in defaults and validates it.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "tournament"
	}
	if c.Size == 0 {
		c.Size = meta.BOARD_SIZE
	}
	if c.Games == 0 {
		c.Games = meta.GAMES
	}
	if c.Parallel == 0 {
		c.Parallel = meta.GO_ROUTINES
	}
	for i := range c.Agents {
		if c.Agents[i].Bot == searcher.MinimaxName && c.Agents[i].MaxDepth == 0 {
			c.Agents[i].MaxDepth = meta.MAX_DEPTH
		}
	}
}

func (c *Config) Validate() error {
	if c.Size < 1 || c.Games < 1 || c.Parallel < 1 || c.MaxMoves < 0 {
		return fmt.Errorf("%w: board size and game counts must be positive", ErrInvalidConfig)
	}
	if len(c.MatchUps) == 0 {
		return fmt.Errorf("%w: no match ups", ErrInvalidConfig)
	}

	known := searcher.DefaultNames()
	ids := map[int]bool{}
	for _, a := range c.Agents {
		if a.ID < 1 || ids[a.ID] {
			return fmt.Errorf("%w: agent id %d must be positive and unique", ErrInvalidConfig, a.ID)
		}
		if !lo.Contains(known, a.Bot) {
			return fmt.Errorf("%w: agent %d has unknown bot %q", ErrInvalidConfig, a.ID, a.Bot)
		}
		ids[a.ID] = true
	}
	for _, m := range c.MatchUps {
		if !ids[m.Agent1] || !ids[m.Agent2] {
			return fmt.Errorf("%w: match up %d vs %d names an unknown agent", ErrInvalidConfig, m.Agent1, m.Agent2)
		}
	}
	return nil
}
