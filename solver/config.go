package solver

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/knapsack/grasp"
	"github.com/katalvlaran/knapsack/localsearch"
	"github.com/katalvlaran/knapsack/scatter"
	"github.com/katalvlaran/knapsack/solution"
	"github.com/katalvlaran/knapsack/tabu"
)

// Config selects a driver and holds the options of all of them.
type Config struct {
	Algorithm Algorithm `json:"algorithm"`

	// Capacity is optional in files; callers decide whether a command-line
	// value overrides it.
	Capacity int64 `json:"capacity,omitempty"`

	LocalSearch localsearch.Options `json:"localSearch"`
	GRASP       grasp.Options       `json:"grasp"`
	Tabu        tabu.Options        `json:"tabu"`
	Scatter     scatter.Options     `json:"scatter"`

	Verbose     bool                   `json:"verbose"`
	Logger      logr.Logger            `json:"-"`
	OnIteration solution.IterationHook `json:"-"`
}

// DefaultConfig selects Local with every driver at its defaults.
func DefaultConfig() Config {
	return Config{
		Algorithm:   Local,
		LocalSearch: localsearch.DefaultOptions(),
		GRASP:       grasp.DefaultOptions(),
		Tabu:        tabu.DefaultOptions(),
		Scatter:     scatter.DefaultOptions(),
	}
}

// ParseConfig decodes YAML on top of DefaultConfig.
//
// Errors: unknown keys or malformed YAML (as reported by sigs.k8s.io/yaml),
// ErrUnsupportedAlgorithm.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("solver: config: %w", err)
	}
	a, err := ParseAlgorithm(string(cfg.Algorithm))
	if err != nil {
		return Config{}, err
	}
	cfg.Algorithm = a
	return cfg, nil
}

// LoadConfig reads and parses a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// MarshalConfig renders cfg as YAML.
func MarshalConfig(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
