package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mbarros/particle-clash/internal/game"
)

func balancedSnapshot(name string) *game.Snapshot {
	return &game.Snapshot{
		Name:  name,
		Roles: [game.NumRoles]int{100, 100, 100, 100, 100},
	}
}

func TestBuildPayoffMatrix_Completeness(t *testing.T) {
	reg := NewRegistry()
	catalog := reg.Catalog()
	m, err := BuildPayoffMatrix(balancedSnapshot("a"), balancedSnapshot("b"), catalog, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Size() != len(catalog) {
		t.Fatalf("expected %d strategies, got %d", len(catalog), m.Size())
	}
	if len(m.Cells) != len(catalog) {
		t.Fatalf("expected %d rows, got %d", len(catalog), len(m.Cells))
	}
	for i, row := range m.Cells {
		if len(row) != len(catalog) {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), len(catalog))
		}
	}
}

func TestBuildPayoffMatrix_Deterministic(t *testing.T) {
	reg := NewRegistry()
	catalog := reg.Catalog()
	a := balancedSnapshot("a")
	a.Traits = []game.TraitModifier{
		{Name: "sharp", Kind: game.TraitAdditive, Strategy: StrategyAttack, Magnitude: 12},
		{Name: "focus", Kind: game.TraitMultiplicative, Magnitude: 1.1},
	}
	b := balancedSnapshot("b")

	m1, err := BuildPayoffMatrix(a, b, catalog, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m2, err := BuildPayoffMatrix(a, b, catalog, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(m1, m2) {
		t.Fatalf("rebuilding with identical inputs produced different matrices")
	}
}

func TestBuildPayoffMatrix_BackwardCompatibleExtension(t *testing.T) {
	reg := NewRegistry()
	small := game.NewStrategyCatalog(StrategyAttack, StrategyDefend)
	big := game.NewStrategyCatalog(StrategyAttack, StrategyDefend, StrategySpecial)

	a := balancedSnapshot("a")
	b := balancedSnapshot("b")
	mSmall, err := BuildPayoffMatrix(a, b, small, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mBig, err := BuildPayoffMatrix(a, b, big, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if mSmall.At(i, j) != mBig.At(i, j) {
				t.Fatalf("cell (%d,%d) changed after catalog extension: %v != %v", i, j, mSmall.At(i, j), mBig.At(i, j))
			}
		}
	}
}

func TestBuildPayoffMatrix_OffenseMonotonicity(t *testing.T) {
	reg := NewRegistry()
	catalog := reg.Catalog()
	attackIdx := catalog.IndexOf(StrategyAttack)
	b := balancedSnapshot("b")

	prev := -1e18
	for offense := 0; offense <= 200; offense += 50 {
		a := balancedSnapshot("a")
		a.Roles[game.RoleOffense] = offense
		m, err := BuildPayoffMatrix(a, b, catalog, reg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for j := range catalog {
			if m.At(attackIdx, j).A < prev {
				t.Fatalf("offense %d: attack payoff vs %s decreased", offense, catalog[j])
			}
		}
		prev = m.At(attackIdx, 0).A
	}
}

func TestBuildPayoffMatrix_RoleDominanceScenario(t *testing.T) {
	reg := NewRegistry()
	catalog := game.NewStrategyCatalog(StrategyAttack, StrategyDefend)
	attackIdx := 0

	baseline := &game.Snapshot{Name: "baseline", Roles: [game.NumRoles]int{0, 50, 50, 50, 50}}
	offensive := &game.Snapshot{Name: "offensive", Roles: [game.NumRoles]int{100, 50, 50, 50, 50}}
	defender := &game.Snapshot{Name: "defender", Roles: [game.NumRoles]int{50, 100, 50, 50, 50}}

	mOff, err := BuildPayoffMatrix(offensive, defender, catalog, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mBase, err := BuildPayoffMatrix(baseline, defender, catalog, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for j := range catalog {
		if mOff.At(attackIdx, j).A <= mBase.At(attackIdx, j).A {
			t.Fatalf("attack payoff vs %s did not strictly exceed the zero-offense baseline", catalog[j])
		}
	}
}

func TestBuildPayoffMatrix_TraitPasses(t *testing.T) {
	reg := NewRegistry()
	catalog := game.NewStrategyCatalog(StrategyAttack, StrategyDefend)
	b := balancedSnapshot("b")

	plain := balancedSnapshot("plain")
	mPlain, err := BuildPayoffMatrix(plain, b, catalog, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	base := mPlain.At(0, 0).A

	modified := balancedSnapshot("modified")
	modified.Traits = []game.TraitModifier{
		{Name: "sharp", Kind: game.TraitAdditive, Strategy: StrategyAttack, Magnitude: 10},
		{Name: "focus", Kind: game.TraitMultiplicative, Strategy: StrategyAttack, Magnitude: 2},
	}
	mMod, err := BuildPayoffMatrix(modified, b, catalog, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// multiplicative scales (base + additive)
	interaction := mPlain.At(0, 0).A - baseContributionForTest(t, reg, plain, StrategyAttack)
	want := (baseContributionForTest(t, reg, plain, StrategyAttack)+10)*2 + interaction
	if got := mMod.At(0, 0).A; got != want {
		t.Fatalf("trait passes applied out of order: got %v, want %v (base %v)", got, want, base)
	}
}

func baseContributionForTest(t *testing.T, reg *Registry, snap *game.Snapshot, name string) float64 {
	t.Helper()
	def, ok := reg.Lookup(name)
	if !ok {
		t.Fatalf("strategy %q missing", name)
	}
	return baseContribution(snap, def)
}

func TestBuildPayoffMatrix_ConditionalTraitGating(t *testing.T) {
	reg := NewRegistry()
	catalog := game.NewStrategyCatalog(StrategyAttack, StrategyDefend)
	b := balancedSnapshot("b")

	gatedOnly := balancedSnapshot("gated")
	gatedOnly.Traits = []game.TraitModifier{
		{Name: "pack_instinct", Kind: game.TraitConditional, Strategy: StrategyAttack, Magnitude: 25, RequiresTrait: "alpha"},
	}
	withFlag := balancedSnapshot("gated")
	withFlag.Traits = []game.TraitModifier{
		{Name: "pack_instinct", Kind: game.TraitConditional, Strategy: StrategyAttack, Magnitude: 25, RequiresTrait: "alpha"},
		{Name: "alpha", Kind: game.TraitAdditive, Strategy: StrategyDefend, Magnitude: 0},
	}

	mGated, err := BuildPayoffMatrix(gatedOnly, b, catalog, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mFlag, err := BuildPayoffMatrix(withFlag, b, catalog, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mFlag.At(0, 0).A != mGated.At(0, 0).A+25 {
		t.Fatalf("conditional modifier did not gate on trait membership: %v vs %v", mFlag.At(0, 0).A, mGated.At(0, 0).A)
	}
}

func TestBuildPayoffMatrix_ClampsSilently(t *testing.T) {
	reg := NewRegistry()
	catalog := game.NewStrategyCatalog(StrategyAttack, StrategyDefend)
	a := balancedSnapshot("a")
	a.Traits = []game.TraitModifier{
		{Name: "overload", Kind: game.TraitAdditive, Magnitude: 1e9},
	}
	m, err := BuildPayoffMatrix(a, balancedSnapshot("b"), catalog, reg)
	if err != nil {
		t.Fatalf("clamping must not error: %v", err)
	}
	for i := range catalog {
		for j := range catalog {
			if m.At(i, j).A > payoffBound {
				t.Fatalf("cell (%d,%d) escaped the payoff bound: %v", i, j, m.At(i, j).A)
			}
		}
	}
}

func TestBuildPayoffMatrix_BoundaryErrors(t *testing.T) {
	reg := NewRegistry()
	catalog := reg.Catalog()

	bad := balancedSnapshot("bad")
	bad.Roles[game.RoleDefense] = -1
	if _, err := BuildPayoffMatrix(bad, balancedSnapshot("b"), catalog, reg); !errors.Is(err, ErrInvalidSnapshot) {
		t.Fatalf("expected ErrInvalidSnapshot, got %v", err)
	}

	if _, err := BuildPayoffMatrix(balancedSnapshot("a"), balancedSnapshot("b"), game.NewStrategyCatalog(StrategyAttack), reg); !errors.Is(err, ErrEmptyStrategySet) {
		t.Fatalf("expected ErrEmptyStrategySet, got %v", err)
	}

	if _, err := BuildPayoffMatrix(balancedSnapshot("a"), balancedSnapshot("b"), game.NewStrategyCatalog(StrategyAttack, "ambush"), reg); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}
