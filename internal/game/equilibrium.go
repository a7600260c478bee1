package game

// PureEquilibrium is a strategy pair where neither creature improves by
// unilaterally deviating.
type PureEquilibrium struct {
	RowA   int        `json:"row_a"`
	ColB   int        `json:"col_b"`
	Payoff PayoffPair `json:"payoff"`
}

// MixedEquilibrium is a pair of probability distributions over the catalog
// satisfying the indifference condition. Only produced when the pure set is
// empty.
type MixedEquilibrium struct {
	ProbsA []float64 `json:"probs_a"`
	ProbsB []float64 `json:"probs_b"`
}

// EquilibriumResult is computed fresh per matrix and never cached across
// matrices. An empty Pure set with a nil Mixed is a valid, non-fatal state;
// Exhausted records that the mixed search ran out of budget rather than
// proving absence.
type EquilibriumResult struct {
	Pure      []PureEquilibrium `json:"pure"`
	Mixed     *MixedEquilibrium `json:"mixed,omitempty"`
	Exhausted bool              `json:"exhausted,omitempty"`
}

// HasPure reports whether at least one pure equilibrium was found.
func (r EquilibriumResult) HasPure() bool { return len(r.Pure) > 0 }

// PureContains reports whether the strategy index appears in any pure
// equilibrium, on either side. The decision tree uses this for its
// stability-preference bias.
func (r EquilibriumResult) PureContains(strategy int) bool {
	for _, e := range r.Pure {
		if e.RowA == strategy || e.ColB == strategy {
			return true
		}
	}
	return false
}
