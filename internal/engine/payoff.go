package engine

import (
	"fmt"

	"github.com/mbarros/particle-clash/internal/game"
)

// payoffBound saturates every intermediate contribution and every cell so
// payoffs stay bounded no matter how many traits a creature stacks.
// Saturation is silent; it is not an error.
const payoffBound = 10000.0

func clampPayoff(v float64) float64 {
	if v > payoffBound {
		return payoffBound
	}
	if v < -payoffBound {
		return -payoffBound
	}
	return v
}

// baseContribution computes a creature's payoff contribution for one
// strategy: the dot product of its role counts with the strategy's
// role-weight vector, then the three trait passes in fixed order —
// additive_flat sums onto the base, multiplicative_weight scales the
// subtotal, conditional_flag adds when its required trait is present.
func baseContribution(snap *game.Snapshot, def StrategyDef) float64 {
	v := def.RoleWeights.Dot(snap.Roles)

	for _, t := range snap.Traits {
		if t.Kind == game.TraitAdditive && t.AppliesTo(def.Name) {
			v += t.Magnitude
		}
	}
	for _, t := range snap.Traits {
		if t.Kind == game.TraitMultiplicative && t.AppliesTo(def.Name) {
			v *= t.Magnitude
		}
	}
	for _, t := range snap.Traits {
		if t.Kind == game.TraitConditional && t.AppliesTo(def.Name) && snap.HasTrait(t.RequiresTrait) {
			v += t.Magnitude
		}
	}
	return clampPayoff(v)
}

// BuildPayoffMatrix fills the |catalog| x |catalog| grid of payoff pairs
// for the two snapshots. Cell (i, j) holds
//
//	payoffA = baseA(i) + interaction(i, j)
//	payoffB = baseB(j) + interaction(j, i)
//
// The result is a pure function of the inputs: rebuilding with identical
// arguments yields byte-identical output, and appending a strategy to the
// catalog leaves previously existing cells unchanged.
func BuildPayoffMatrix(snapA, snapB *game.Snapshot, catalog game.StrategyCatalog, reg *Registry) (*game.PayoffMatrix, error) {
	if err := snapA.Validate(); err != nil {
		return nil, fmt.Errorf("%w: creature A: %v", ErrInvalidSnapshot, err)
	}
	if err := snapB.Validate(); err != nil {
		return nil, fmt.Errorf("%w: creature B: %v", ErrInvalidSnapshot, err)
	}
	if len(catalog) < 2 {
		return nil, ErrEmptyStrategySet
	}

	defs := make([]StrategyDef, len(catalog))
	for i, name := range catalog {
		d, ok := reg.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
		}
		defs[i] = d
	}

	baseA := make([]float64, len(defs))
	baseB := make([]float64, len(defs))
	for i, d := range defs {
		baseA[i] = baseContribution(snapA, d)
		baseB[i] = baseContribution(snapB, d)
	}

	m := game.NewPayoffMatrix(catalog)
	for i := range defs {
		for j := range defs {
			m.Cells[i][j] = game.PayoffPair{
				A: clampPayoff(baseA[i] + defs[i].Interaction(defs[j].Name)),
				B: clampPayoff(baseB[j] + defs[j].Interaction(defs[i].Name)),
			}
		}
	}
	return m, nil
}
