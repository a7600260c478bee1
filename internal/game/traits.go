package game

// TraitKind discriminates how a trait modifier changes a payoff
// contribution. Using a dedicated type instead of plain string makes code
// safer and self-documenting.
type TraitKind string

const (
	// TraitAdditive adds its magnitude onto the base contribution.
	TraitAdditive TraitKind = "additive_flat"
	// TraitMultiplicative scales the (base + additive) subtotal by its
	// magnitude.
	TraitMultiplicative TraitKind = "multiplicative_weight"
	// TraitConditional adds its magnitude only when the creature also
	// carries the trait named by RequiresTrait.
	TraitConditional TraitKind = "conditional_flag"
)

// TraitModifier is a discrete, pre-resolved numeric effect applied during
// payoff computation. Traits are assigned upstream (the deterministic
// random-draw stage is external); by the time a snapshot reaches the engine
// they are plain data.
type TraitModifier struct {
	Name string    `json:"name"`
	Kind TraitKind `json:"kind"`
	// Strategy names the strategy this modifier targets. Empty means the
	// modifier applies to every strategy.
	Strategy  string  `json:"strategy"`
	Magnitude float64 `json:"magnitude"`
	// RequiresTrait gates a conditional_flag modifier: it fires only when
	// the snapshot's trait list contains a trait with this name. Ignored
	// for the other kinds.
	RequiresTrait string `json:"requires_trait,omitempty"`
	// BehaviorBonus is a flat addition to the decision-tree branch weight
	// of the targeted strategy. It does not touch payoff values.
	BehaviorBonus float64 `json:"behavior_bonus,omitempty"`
}

// AppliesTo reports whether the modifier targets the given strategy name.
func (t TraitModifier) AppliesTo(strategy string) bool {
	return t.Strategy == "" || t.Strategy == strategy
}
