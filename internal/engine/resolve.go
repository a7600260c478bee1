package engine

import "github.com/mbarros/particle-clash/internal/game"

// Engine bundles the strategy registry and the tuning tables. It is a
// stateless value constructed once at startup and passed explicitly; every
// ResolveBattle call is independent, so concurrent callers need no
// synchronization.
type Engine struct {
	Registry *Registry
	Selector SelectorConfig
	Scoring  ScoreWeights
}

// New returns an engine over the given registry and tuning tables.
func New(reg *Registry, selector SelectorConfig, scoring ScoreWeights) *Engine {
	return &Engine{Registry: reg, Selector: selector, Scoring: scoring}
}

// ResolveBattle drives the full pipeline for one encounter: build the
// payoff matrix, find equilibria, run the decision-tree selector
// independently for each side against the shared matrix, then read the
// outcome off the chosen cell. A strictly greater payoff wins; equality is
// a draw. The only error paths are the boundary validations in
// BuildPayoffMatrix — an empty equilibrium set resolves normally with the
// equilibrium bias contributing nothing.
func (e *Engine) ResolveBattle(snapA, snapB *game.Snapshot, catalog game.StrategyCatalog) (*game.BattleOutcome, error) {
	matrix, err := BuildPayoffMatrix(snapA, snapB, catalog, e.Registry)
	if err != nil {
		return nil, err
	}
	equilibria := FindEquilibria(matrix)

	chosenA := SelectStrategy(snapA, catalog, matrix, equilibria, e.Registry, e.Selector)
	chosenB := SelectStrategy(snapB, catalog, matrix, equilibria, e.Registry, e.Selector)

	cell := matrix.At(chosenA, chosenB)
	winner := game.WinnerDraw
	switch {
	case cell.A > cell.B:
		winner = game.WinnerA
	case cell.B > cell.A:
		winner = game.WinnerB
	}

	return &game.BattleOutcome{
		StrategyA:     chosenA,
		StrategyB:     chosenB,
		StrategyNameA: catalog[chosenA],
		StrategyNameB: catalog[chosenB],
		PayoffA:       cell.A,
		PayoffB:       cell.B,
		Winner:        winner,
		Equilibria:    equilibria,
	}, nil
}
