package config

import (
	"fmt"
	"os"
	"reversi/game"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

var (
	cfgFile = "reversi/experiments.yaml"
)

const (
	RandomOpponent = "random"
	NoPassRules    = "no-pass"
	StandardRules  = "standard"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// Experiment pits Agent (playing Dark) against Opponent at every depth up to MaxDepth.
// Both name an evaluator; Opponent may also be RandomOpponent.
type Experiment struct {
	Name     string `yaml:"name"`
	Agent    string `yaml:"agent"`
	Opponent string `yaml:"opponent"`
}

func (e Experiment) AgainstRandom() bool {
	return strings.EqualFold(strings.TrimSpace(e.Opponent), RandomOpponent)
}

type Config struct {
	OutputDir     string       `yaml:"output_dir"`
	NumGames      int          `yaml:"games"` // Per depth
	MaxDepth      int          `yaml:"max_depth"`
	BoardSize     int          `yaml:"board_size"`
	Rules         string       `yaml:"rules"`
	RandomOpening int          `yaml:"random_opening"` // Plies, evaluator match-ups only
	Goroutines    int          `yaml:"goroutines"`
	Seed          uint64       `yaml:"seed"`
	Experiments   []Experiment `yaml:"experiments"`
}

// InitConfig reads the experiment file from the XDG config directories,
// falling back to DefaultConfig when there is none.
func InitConfig() (*Config, error) {
	config := DefaultConfig()
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err = readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load reads path over DefaultConfig. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.NumGames <= 0 {
		return &InvalidConfig{"games must be positive"}
	}
	if c.MaxDepth <= 0 {
		return &InvalidConfig{"max_depth must be positive"}
	}
	if c.BoardSize < game.MinSize || c.BoardSize%2 != 0 {
		return &InvalidConfig{fmt.Sprintf("board_size must be even and at least %d, got %d", game.MinSize, c.BoardSize)}
	}
	if c.Rules != NoPassRules && c.Rules != StandardRules {
		return &InvalidConfig{fmt.Sprintf("rules must be %q or %q, got %q", NoPassRules, StandardRules, c.Rules)}
	}
	if c.RandomOpening < 0 {
		return &InvalidConfig{"random_opening must not be negative"}
	}
	if c.Goroutines <= 0 {
		return &InvalidConfig{"goroutines must be positive"}
	}
	if len(c.Experiments) == 0 {
		return &InvalidConfig{"no experiments configured"}
	}

	names := map[string]bool{}
	for _, e := range c.Experiments {
		if e.Name == "" {
			return &InvalidConfig{"experiment without a name"}
		}
		if names[e.Name] {
			return &InvalidConfig{fmt.Sprintf("duplicate experiment %q", e.Name)}
		}
		names[e.Name] = true

		if _, err := game.EvaluatorByName(e.Agent); err != nil {
			return &InvalidConfig{fmt.Sprintf("experiment %q: %v", e.Name, err)}
		}
		if !e.AgainstRandom() {
			if _, err := game.EvaluatorByName(e.Opponent); err != nil {
				return &InvalidConfig{fmt.Sprintf("experiment %q: %v", e.Name, err)}
			}
		}
	}
	return nil
}

// StrictNoPassTerminal reports whether a side without moves ends the game.
func (c *Config) StrictNoPassTerminal() bool {
	return c.Rules == NoPassRules
}

// Experiment looks an experiment up by name.
func (c *Config) Experiment(name string) (Experiment, bool) {
	for _, e := range c.Experiments {
		if e.Name == name {
			return e, true
		}
	}
	return Experiment{}, false
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to resolve config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm os.FileMode) error {
	yamlData, err := yaml.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err = os.WriteFile(filePath, yamlData, perm); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err = yaml.Unmarshal(data, a); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", filePath, err)
	}
	return nil
}
