package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/mbarros/particle-clash/internal/constants"
	"github.com/mbarros/particle-clash/internal/engine"
	"github.com/mbarros/particle-clash/internal/game"
)

type strategyEntry struct {
	Name         string             `json:"name"`
	RoleWeights  map[string]float64 `json:"role_weights"`
	Interactions map[string]float64 `json:"interactions"`
	BaseWeight   float64            `json:"base_weight"`
	Priority     int                `json:"priority"`
}

type rawConfig struct {
	StrategyList []strategyEntry `json:"strategy_list"`
	Scoring      *struct {
		DamageWeight float64 `json:"damage_weight"`
		HealthWeight float64 `json:"health_weight"`
	} `json:"scoring"`
	EquilibriumBias *float64 `json:"equilibrium_bias"`
	UtilityRefine   bool     `json:"utility_refine"`
	Server          *struct {
		Address string `json:"address"`
	} `json:"server"`
	Database *struct {
		Path string `json:"path"`
	} `json:"database"`
}

// LoadedConfig contains the strategy registry, the shared catalog and the
// tuning tables, all resolved once at startup. Nothing is re-read per call.
type LoadedConfig struct {
	Registry      *engine.Registry
	Catalog       game.StrategyCatalog
	Selector      engine.SelectorConfig
	Scoring       engine.ScoreWeights
	ServerAddress string
	DatabasePath  string
}

// Default returns the built-in strategy table with default tuning, for
// callers that run without a config file (the simulator CLI mostly does).
func Default() *LoadedConfig {
	reg := engine.NewRegistry()
	return &LoadedConfig{
		Registry:      reg,
		Catalog:       reg.Catalog(),
		Selector:      engine.DefaultSelectorConfig(),
		Scoring:       engine.DefaultScoreWeights(),
		ServerAddress: constants.DefaultServerAddress,
		DatabasePath:  constants.DefaultDBPath,
	}
}

// LoadConfig reads the configuration file at path. It requires the key
// `strategy_list` (snake_case) with at least two uniquely named entries;
// scoring weights must be non-negative and sum to 1.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.StrategyList) < 2 {
		return nil, fmt.Errorf("config file %s: strategy_list needs at least two entries", path)
	}

	reg := engine.NewEmptyRegistry()
	for _, e := range rc.StrategyList {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("config file %s: strategy entry missing 'name'", path)
		}
		var weights game.RoleVector
		for roleName, w := range e.RoleWeights {
			role, ok := game.RoleFromName(roleName)
			if !ok {
				return nil, fmt.Errorf("config file %s: strategy '%s' references unknown role '%s'", path, e.Name, roleName)
			}
			weights[role] = w
		}
		def := engine.StrategyDef{
			Name:         e.Name,
			RoleWeights:  weights,
			Interactions: e.Interactions,
			BaseWeight:   e.BaseWeight,
			Priority:     e.Priority,
		}
		if err := reg.Register(def); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	scoring := engine.DefaultScoreWeights()
	if rc.Scoring != nil {
		scoring = engine.ScoreWeights{Damage: rc.Scoring.DamageWeight, Health: rc.Scoring.HealthWeight}
		if scoring.Damage < 0 || scoring.Health < 0 {
			return nil, fmt.Errorf("config file %s: scoring weights must be non-negative", path)
		}
		if math.Abs(scoring.Damage+scoring.Health-1.0) > 1e-9 {
			return nil, fmt.Errorf("config file %s: scoring weights must sum to 1, got %v", path, scoring.Damage+scoring.Health)
		}
	}

	selector := engine.DefaultSelectorConfig()
	selector.Scoring = scoring
	selector.UtilityRefine = rc.UtilityRefine
	if rc.EquilibriumBias != nil {
		if *rc.EquilibriumBias < 0 {
			return nil, fmt.Errorf("config file %s: equilibrium_bias must be non-negative", path)
		}
		selector.EquilibriumBias = *rc.EquilibriumBias
	}

	addr := constants.DefaultServerAddress
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	dbPath := constants.DefaultDBPath
	if rc.Database != nil && rc.Database.Path != "" {
		dbPath = rc.Database.Path
	}

	return &LoadedConfig{
		Registry:      reg,
		Catalog:       reg.Catalog(),
		Selector:      selector,
		Scoring:       scoring,
		ServerAddress: addr,
		DatabasePath:  dbPath,
	}, nil
}
