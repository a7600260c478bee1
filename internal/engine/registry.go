package engine

import (
	"fmt"
	"strings"

	"github.com/mbarros/particle-clash/internal/game"
)

// StrategyDef is the data registration for one strategy: its role-weight
// vector, the cross-strategy interaction row, the decision-tree base weight
// and the tie-break priority (lower wins). Adding a strategy to the game is
// a registration, not a code change.
type StrategyDef struct {
	Name        string
	RoleWeights game.RoleVector
	// Interactions maps an opponent strategy name to the term added to
	// this strategy's payoff when the opponent plays it. Missing entries
	// mean zero.
	Interactions map[string]float64
	BaseWeight   float64
	Priority     int
}

// Interaction returns the payoff adjustment for playing this strategy
// against the named opponent strategy.
func (d StrategyDef) Interaction(opponent string) float64 {
	return d.Interactions[opponent]
}

// Registry maps strategy names to their definitions while preserving
// registration order. It is built once at startup and passed explicitly to
// the functions that need it; it holds no mutable per-battle state.
type Registry struct {
	defs  map[string]StrategyDef
	order []string
}

// NewRegistry returns a registry preloaded with the built-in strategies.
func NewRegistry() *Registry {
	r := &Registry{defs: make(map[string]StrategyDef)}
	for _, d := range builtinStrategies() {
		// built-ins are well-formed by construction
		_ = r.Register(d)
	}
	return r
}

// NewEmptyRegistry returns a registry with no strategies, for callers that
// define the whole catalog from configuration.
func NewEmptyRegistry() *Registry {
	return &Registry{defs: make(map[string]StrategyDef)}
}

// Register adds a strategy definition. Names must be non-empty and unique;
// base weights must be non-negative.
func (r *Registry) Register(d StrategyDef) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return fmt.Errorf("strategy definition missing name")
	}
	if _, exists := r.defs[name]; exists {
		return fmt.Errorf("duplicate strategy %q", name)
	}
	if d.BaseWeight < 0 {
		return fmt.Errorf("strategy %q has negative base weight %v", name, d.BaseWeight)
	}
	d.Name = name
	r.defs[name] = d
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the definition for a strategy name.
func (r *Registry) Lookup(name string) (StrategyDef, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// Catalog returns the full registration order as a strategy catalog.
func (r *Registry) Catalog() game.StrategyCatalog {
	return game.NewStrategyCatalog(r.order...)
}

// Built-in strategy names.
const (
	StrategyAttack  = "attack"
	StrategyDefend  = "defend"
	StrategySpecial = "special"
	StrategyEvade   = "evade"
)

func builtinStrategies() []StrategyDef {
	return []StrategyDef{
		{
			Name: StrategyAttack,
			RoleWeights: game.RoleVector{
				game.RoleOffense: 1.0,
				game.RoleDefense: -0.15,
				game.RoleSpeed:   0.25,
				game.RoleArcane:  0.10,
			},
			Interactions: map[string]float64{
				StrategyAttack:  3,
				StrategyDefend:  -8,
				StrategySpecial: 4,
				StrategyEvade:   -6,
			},
			BaseWeight: 0.30,
			Priority:   1,
		},
		{
			Name: StrategyDefend,
			RoleWeights: game.RoleVector{
				game.RoleOffense:  -0.10,
				game.RoleDefense:  1.0,
				game.RoleSpeed:    0.05,
				game.RoleVitality: 0.35,
			},
			Interactions: map[string]float64{
				StrategyAttack:  8,
				StrategySpecial: -4,
				StrategyEvade:   -2,
			},
			BaseWeight: 0.28,
			Priority:   2,
		},
		{
			Name: StrategySpecial,
			RoleWeights: game.RoleVector{
				game.RoleOffense: 0.15,
				game.RoleDefense: -0.05,
				game.RoleSpeed:   0.20,
				game.RoleArcane:  1.0,
			},
			Interactions: map[string]float64{
				StrategyAttack: -3,
				StrategyDefend: 5,
				StrategyEvade:  -4,
			},
			BaseWeight: 0.22,
			Priority:   3,
		},
		{
			Name: StrategyEvade,
			RoleWeights: game.RoleVector{
				game.RoleOffense:  -0.05,
				game.RoleDefense:  0.10,
				game.RoleSpeed:    1.0,
				game.RoleVitality: 0.20,
			},
			Interactions: map[string]float64{
				StrategyAttack:  7,
				StrategySpecial: 5,
				StrategyDefend:  -3,
			},
			BaseWeight: 0.20,
			Priority:   4,
		},
	}
}
