package heuristic

// Regime is the coarse play mode chosen from the board state.
type Regime int

const (
	// RegimeRoute favors shortest routes (few, scattered targets).
	RegimeRoute Regime = iota
	// RegimeDensity favors clusters (many targets, crowded board).
	RegimeDensity
)

// String returns the regime name.
func (r Regime) String() string {
	if r == RegimeDensity {
		return "density"
	}

	return "route"
}

// RegimeConfig holds the switch thresholds.
type RegimeConfig struct {
	CountThreshold int     `yaml:"count_threshold"`
	RatioThreshold float64 `yaml:"ratio_threshold"`
}

// DefaultRegimeConfig returns count > 15 or ratio ≥ 0.15.
func DefaultRegimeConfig() RegimeConfig {
	return RegimeConfig{CountThreshold: 15, RatioThreshold: 0.15}
}

// SelectRegime returns RegimeDensity when count exceeds CountThreshold or
// count/(width·height) reaches RatioThreshold, RegimeRoute otherwise.
func SelectRegime(count, width, height int, cfg RegimeConfig) Regime {
	if count > cfg.CountThreshold {
		return RegimeDensity
	}
	if area := width * height; area > 0 && float64(count)/float64(area) >= cfg.RatioThreshold {
		return RegimeDensity
	}

	return RegimeRoute
}
