package engine

import (
	"math"
	"testing"

	"github.com/mbarros/particle-clash/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDecisionTree_WeightsNormalized(t *testing.T) {
	reg := NewRegistry()
	catalog := reg.Catalog()
	snap := &game.Snapshot{Name: "a", Roles: [game.NumRoles]int{150, 120, 100, 70, 60}}
	m, err := BuildPayoffMatrix(snap, balancedSnapshot("b"), catalog, reg)
	require.NoError(t, err)
	eq := FindEquilibria(m)

	tree := BuildDecisionTree(snap, catalog, m, eq, reg, DefaultSelectorConfig())
	require.Len(t, tree.Branches, len(catalog))

	sum := 0.0
	for _, br := range tree.Branches {
		assert.GreaterOrEqual(t, br.Weight, 0.0)
		sum += br.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestSelectStrategy_Deterministic(t *testing.T) {
	reg := NewRegistry()
	catalog := reg.Catalog()
	snap := &game.Snapshot{Name: "a", Roles: [game.NumRoles]int{200, 50, 150, 50, 50}}
	m, err := BuildPayoffMatrix(snap, balancedSnapshot("b"), catalog, reg)
	require.NoError(t, err)
	eq := FindEquilibria(m)

	cfg := DefaultSelectorConfig()
	first := SelectStrategy(snap, catalog, m, eq, reg, cfg)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SelectStrategy(snap, catalog, m, eq, reg, cfg))
	}
}

func TestSelectStrategy_TieBreaksByPriority(t *testing.T) {
	reg := NewEmptyRegistry()
	require.NoError(t, reg.Register(StrategyDef{Name: "late", BaseWeight: 0.5, Priority: 9}))
	require.NoError(t, reg.Register(StrategyDef{Name: "early", BaseWeight: 0.5, Priority: 1}))
	catalog := reg.Catalog()

	snap := &game.Snapshot{Name: "a"}
	m, err := BuildPayoffMatrix(snap, &game.Snapshot{Name: "b"}, catalog, reg)
	require.NoError(t, err)

	// Equal weights everywhere: the lower priority value must win even
	// though it registered (and indexes) second.
	idx := SelectStrategy(snap, catalog, m, game.EquilibriumResult{}, reg, SelectorConfig{})
	assert.Equal(t, catalog.IndexOf("early"), idx)
}

func TestBuildDecisionTree_EquilibriumBias(t *testing.T) {
	reg := NewRegistry()
	catalog := reg.Catalog()
	snap := balancedSnapshot("a")
	m, err := BuildPayoffMatrix(snap, balancedSnapshot("b"), catalog, reg)
	require.NoError(t, err)

	cfg := DefaultSelectorConfig()
	biased := game.EquilibriumResult{Pure: []game.PureEquilibrium{{RowA: 0, ColB: 0}}}
	empty := game.EquilibriumResult{}

	withBias := BuildDecisionTree(snap, catalog, m, biased, reg, cfg)
	without := BuildDecisionTree(snap, catalog, m, empty, reg, cfg)

	// The biased strategy gains normalized weight; with an empty
	// equilibrium set the bias term contributes nothing at all.
	assert.Greater(t, withBias.Branches[0].Weight, without.Branches[0].Weight)

	noBiasCfg := cfg
	noBiasCfg.EquilibriumBias = 0
	assert.Equal(t, BuildDecisionTree(snap, catalog, m, biased, reg, noBiasCfg), BuildDecisionTree(snap, catalog, m, empty, reg, noBiasCfg))
}

func TestBuildDecisionTree_BehaviorTraitBonus(t *testing.T) {
	reg := NewRegistry()
	catalog := reg.Catalog()
	plain := balancedSnapshot("plain")
	aggressive := balancedSnapshot("aggressive")
	aggressive.Traits = []game.TraitModifier{
		{Name: "bloodlust", Kind: game.TraitAdditive, Strategy: StrategyAttack, BehaviorBonus: 0.4},
	}
	m, err := BuildPayoffMatrix(plain, balancedSnapshot("b"), catalog, reg)
	require.NoError(t, err)
	eq := FindEquilibria(m)
	cfg := DefaultSelectorConfig()

	attackIdx := catalog.IndexOf(StrategyAttack)
	tPlain := BuildDecisionTree(plain, catalog, m, eq, reg, cfg)
	tAggr := BuildDecisionTree(aggressive, catalog, m, eq, reg, cfg)
	assert.Greater(t, tAggr.Branches[attackIdx].Weight, tPlain.Branches[attackIdx].Weight)
}

func TestBuildDecisionTree_UtilityRefineDeterministic(t *testing.T) {
	reg := NewRegistry()
	catalog := reg.Catalog()
	snap := &game.Snapshot{Name: "a", Roles: [game.NumRoles]int{130, 110, 90, 100, 70}}
	m, err := BuildPayoffMatrix(snap, balancedSnapshot("b"), catalog, reg)
	require.NoError(t, err)
	eq := FindEquilibria(m)

	cfg := DefaultSelectorConfig()
	cfg.UtilityRefine = true

	first := BuildDecisionTree(snap, catalog, m, eq, reg, cfg)
	second := BuildDecisionTree(snap, catalog, m, eq, reg, cfg)
	assert.Equal(t, first, second)

	sum := 0.0
	for _, br := range first.Branches {
		sum += br.Weight
	}
	assert.True(t, math.Abs(sum-1.0) < 1e-9)
}
