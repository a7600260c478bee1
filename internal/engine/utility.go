package engine

import "github.com/mbarros/particle-clash/internal/game"

// ScoreWeights are the configurable non-negative utility weights. They must
// sum to 1.0; config validation enforces this at load time.
type ScoreWeights struct {
	Damage float64 `json:"damage_weight"`
	Health float64 `json:"health_weight"`
}

// DefaultScoreWeights leans slightly offensive, matching the built-in
// strategy table.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Damage: 0.6, Health: 0.4}
}

// EvaluateUtility scores the (own, opp) strategy pair for the row creature.
// The matrix cell decomposes into two named sub-components with a fixed
// mapping:
//
//	damage-equivalent:  the positive part of own payoff (outgoing pressure)
//	health-preserved:   the negative part of the opponent's payoff
//	                    (pressure the opponent failed to land)
//
// The weighted combination then takes the creature's trait bonuses keyed to
// the own strategy: additive_flat magnitudes add, multiplicative_weight
// magnitudes scale. Total, pure, and free of randomness.
func EvaluateUtility(snap *game.Snapshot, own, opp int, m *game.PayoffMatrix, w ScoreWeights) float64 {
	cell := m.At(own, opp)

	damage := cell.A
	if damage < 0 {
		damage = 0
	}
	health := -cell.B
	if health < 0 {
		health = 0
	}
	score := w.Damage*damage + w.Health*health

	// Same pass order as the payoff builder: additive first, then
	// multiplicative, regardless of trait list order.
	name := m.Strategies[own]
	for _, t := range snap.Traits {
		if t.Kind == game.TraitAdditive && t.Strategy == name {
			score += t.Magnitude
		}
	}
	for _, t := range snap.Traits {
		if t.Kind == game.TraitMultiplicative && t.Strategy == name {
			score *= t.Magnitude
		}
	}
	return score
}
