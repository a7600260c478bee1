package game

// Winner identifies which side of an encounter won.
type Winner string

const (
	WinnerA    Winner = "creature_a"
	WinnerB    Winner = "creature_b"
	WinnerDraw Winner = "draw"
)

// DecisionBranch is one child of the decision tree root: a strategy and its
// normalized selection weight.
type DecisionBranch struct {
	Strategy string  `json:"strategy"`
	Index    int     `json:"index"`
	Weight   float64 `json:"weight"`
}

// DecisionTree holds one weighted branch per catalog strategy. After
// normalization the branch weights sum to 1.0 within floating-point
// tolerance.
type DecisionTree struct {
	Branches []DecisionBranch `json:"branches"`
}

// BattleOutcome is the final result of one resolution call. It is immutable
// once produced and is the only structure that survives the call boundary.
type BattleOutcome struct {
	StrategyA     int               `json:"strategy_a"`
	StrategyB     int               `json:"strategy_b"`
	StrategyNameA string            `json:"strategy_name_a"`
	StrategyNameB string            `json:"strategy_name_b"`
	PayoffA       float64           `json:"payoff_a"`
	PayoffB       float64           `json:"payoff_b"`
	Winner        Winner            `json:"winner"`
	Equilibria    EquilibriumResult `json:"equilibria"`
}
