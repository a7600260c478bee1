package engine

import "github.com/mbarros/particle-clash/internal/game"

// SelectorConfig tunes the decision-tree weighting. EquilibriumBias is the
// flat bonus a strategy earns for appearing in any pure equilibrium
// (stability preference); it degrades to zero naturally when the pure set
// is empty. UtilityRefine optionally folds the utility evaluator into the
// branch weights — an explicit wiring choice, deterministic either way.
type SelectorConfig struct {
	EquilibriumBias float64      `json:"equilibrium_bias"`
	UtilityRefine   bool         `json:"utility_refine"`
	UtilityScale    float64      `json:"utility_scale"`
	Scoring         ScoreWeights `json:"scoring"`
}

// DefaultSelectorConfig mirrors the shipped clash_config.json defaults.
func DefaultSelectorConfig() SelectorConfig {
	return SelectorConfig{
		EquilibriumBias: 0.05,
		UtilityScale:    0.001,
		Scoring:         DefaultScoreWeights(),
	}
}

const weightEpsilon = 1e-12

// BuildDecisionTree computes one weighted branch per catalog strategy for
// the given creature. Raw branch weight is the strategy's base weight, plus
// a role bonus linear in the strategy's dominant role, plus flat
// behavior-type trait bonuses, plus the equilibrium bias, and optionally a
// scaled mean utility over all opponent replies. Negative raw weights floor
// at zero and the result is normalized to sum to 1.
func BuildDecisionTree(snap *game.Snapshot, catalog game.StrategyCatalog, m *game.PayoffMatrix, eq game.EquilibriumResult, reg *Registry, cfg SelectorConfig) *game.DecisionTree {
	n := len(catalog)
	tree := &game.DecisionTree{Branches: make([]game.DecisionBranch, n)}
	sum := 0.0
	for i, name := range catalog {
		def, _ := reg.Lookup(name)
		w := def.BaseWeight

		dominant := def.RoleWeights.Dominant()
		w += def.RoleWeights[dominant] * float64(snap.Roles[dominant]) / float64(game.ParticleTotal)

		for _, t := range snap.Traits {
			if t.Strategy == name {
				w += t.BehaviorBonus
			}
		}
		if eq.PureContains(i) {
			w += cfg.EquilibriumBias
		}
		if cfg.UtilityRefine {
			mean := 0.0
			for j := 0; j < n; j++ {
				mean += EvaluateUtility(snap, i, j, m, cfg.Scoring)
			}
			w += cfg.UtilityScale * mean / float64(n)
		}
		if w < 0 {
			w = 0
		}
		tree.Branches[i] = game.DecisionBranch{Strategy: name, Index: i, Weight: w}
		sum += w
	}

	if sum <= weightEpsilon {
		// degenerate weighting collapses to uniform
		uniform := 1.0 / float64(n)
		for i := range tree.Branches {
			tree.Branches[i].Weight = uniform
		}
		return tree
	}
	for i := range tree.Branches {
		tree.Branches[i].Weight /= sum
	}
	return tree
}

// SelectStrategy resolves the decision tree to a single strategy index by
// deterministic arg-max over normalized weights. Ties break by registry
// priority (lower wins) and then by catalog index, never by randomness.
func SelectStrategy(snap *game.Snapshot, catalog game.StrategyCatalog, m *game.PayoffMatrix, eq game.EquilibriumResult, reg *Registry, cfg SelectorConfig) int {
	tree := BuildDecisionTree(snap, catalog, m, eq, reg, cfg)
	best := 0
	for i := 1; i < len(tree.Branches); i++ {
		if branchBeats(tree.Branches[i], tree.Branches[best], reg) {
			best = i
		}
	}
	return best
}

func branchBeats(candidate, incumbent game.DecisionBranch, reg *Registry) bool {
	diff := candidate.Weight - incumbent.Weight
	if diff > weightEpsilon {
		return true
	}
	if diff < -weightEpsilon {
		return false
	}
	cd, _ := reg.Lookup(candidate.Strategy)
	id, _ := reg.Lookup(incumbent.Strategy)
	if cd.Priority != id.Priority {
		return cd.Priority < id.Priority
	}
	return candidate.Index < incumbent.Index
}
