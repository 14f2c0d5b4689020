package strategy

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ratmaze/heuristic"
	"github.com/katalvlaran/ratmaze/tsp"
)

// Planner names accepted by Config.Planner.
const (
	PlannerTSP       = "tsp"
	PlannerGreedy    = "greedy"
	PlannerLookahead = "lookahead"
	PlannerDensity   = "density"
	PlannerCluster   = "cluster"
	PlannerRegime    = "regime"
)

// ErrInvalidConfig is returned by Validate and the loaders.
var ErrInvalidConfig = errors.New("strategy: invalid config")

// Config selects and tunes a planner.
type Config struct {
	// Planner is one of the Planner* names.
	Planner string `yaml:"planner"`

	// MaxExactTargets caps the TSP planner; above it a greedy chain is used.
	MaxExactTargets int `yaml:"max_exact_targets"`

	// ClosedTour makes the TSP planner return to the start.
	ClosedTour bool `yaml:"closed_tour"`

	// Algorithm is "branch-and-bound" or "held-karp".
	Algorithm string `yaml:"algorithm"`

	LookaheadDepth   int `yaml:"lookahead_depth"`
	LookaheadBreadth int `yaml:"lookahead_breadth"`

	// ClusterSize is k for the cluster planner.
	ClusterSize int `yaml:"cluster_size"`

	Density heuristic.DensityConfig `yaml:"density"`
	Regime  heuristic.RegimeConfig  `yaml:"regime"`
}

// DefaultConfig returns the regime planner with PyRat's thresholds.
func DefaultConfig() Config {
	return Config{
		Planner:          PlannerRegime,
		MaxExactTargets:  10,
		Algorithm:        tsp.BranchAndBound.String(),
		LookaheadDepth:   3,
		LookaheadBreadth: heuristic.DefaultBreadth,
		ClusterSize:      3,
		Density:          heuristic.DefaultDensityConfig(),
		Regime:           heuristic.DefaultRegimeConfig(),
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.Planner {
	case PlannerTSP, PlannerGreedy, PlannerLookahead, PlannerDensity, PlannerCluster, PlannerRegime:
	default:
		return fmt.Errorf("%w: unknown planner %q", ErrInvalidConfig, c.Planner)
	}
	if _, err := c.algorithm(); err != nil {
		return err
	}
	switch {
	case c.MaxExactTargets < 1:
		return fmt.Errorf("%w: max_exact_targets must be >= 1 (%d)", ErrInvalidConfig, c.MaxExactTargets)
	case c.LookaheadDepth < 1:
		return fmt.Errorf("%w: lookahead_depth must be >= 1 (%d)", ErrInvalidConfig, c.LookaheadDepth)
	case c.LookaheadBreadth < 1:
		return fmt.Errorf("%w: lookahead_breadth must be >= 1 (%d)", ErrInvalidConfig, c.LookaheadBreadth)
	case c.ClusterSize < 1:
		return fmt.Errorf("%w: cluster_size must be >= 1 (%d)", ErrInvalidConfig, c.ClusterSize)
	case c.Density.Radius < 0:
		return fmt.Errorf("%w: density.radius must be >= 0 (%d)", ErrInvalidConfig, c.Density.Radius)
	case c.Density.Lambda < 0:
		return fmt.Errorf("%w: density.lambda must be >= 0 (%g)", ErrInvalidConfig, c.Density.Lambda)
	case c.Regime.CountThreshold < 0:
		return fmt.Errorf("%w: regime.count_threshold must be >= 0 (%d)", ErrInvalidConfig, c.Regime.CountThreshold)
	case c.Regime.RatioThreshold < 0 || c.Regime.RatioThreshold > 1:
		return fmt.Errorf("%w: regime.ratio_threshold must be in [0,1] (%g)", ErrInvalidConfig, c.Regime.RatioThreshold)
	}

	return nil
}

func (c Config) algorithm() (tsp.Algorithm, error) {
	switch c.Algorithm {
	case "", tsp.BranchAndBound.String():
		return tsp.BranchAndBound, nil
	case tsp.HeldKarp.String():
		return tsp.HeldKarp, nil
	}

	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, c.Algorithm)
}

// ParseConfig overlays YAML onto DefaultConfig and validates the result.
// Unknown keys are rejected; empty input yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("strategy: read config %q: %w", path, err)
	}

	return ParseConfig(data)
}
