package game

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// Creature is the persisted form of a battle-ready creature: its five role
// counts plus the serialized trait list. The engine never touches this
// type; the service layer converts it to a Snapshot per encounter.
type Creature struct {
	gorm.Model
	Name     string `json:"name" gorm:"uniqueIndex"`
	Offense  int    `json:"offense"`
	Defense  int    `json:"defense"`
	Speed    int    `json:"speed"`
	Arcane   int    `json:"arcane"`
	Vitality int    `json:"vitality"`
	// TraitsJSON holds the creature's []TraitModifier serialized as JSON.
	// Trait lists are small and read back whole, so a single text column
	// keeps the schema simple.
	TraitsJSON string `json:"-" gorm:"column:traits_json;type:text"`

	BattlesFought int `json:"battles_fought"`
	Wins          int `json:"wins"`
	Draws         int `json:"draws"`
}

func (Creature) TableName() string { return "creatures" }

// Snapshot converts the persisted creature into the engine's immutable
// input record.
func (c *Creature) Snapshot() (*Snapshot, error) {
	s := &Snapshot{Name: c.Name}
	s.Roles[RoleOffense] = c.Offense
	s.Roles[RoleDefense] = c.Defense
	s.Roles[RoleSpeed] = c.Speed
	s.Roles[RoleArcane] = c.Arcane
	s.Roles[RoleVitality] = c.Vitality
	if c.TraitsJSON != "" {
		if err := json.Unmarshal([]byte(c.TraitsJSON), &s.Traits); err != nil {
			return nil, fmt.Errorf("creature %q has malformed traits: %w", c.Name, err)
		}
	}
	return s, nil
}

// CreatureFromSnapshot builds a persistable creature from a snapshot.
func CreatureFromSnapshot(s *Snapshot) (*Creature, error) {
	traits := []byte("[]")
	if len(s.Traits) > 0 {
		b, err := json.Marshal(s.Traits)
		if err != nil {
			return nil, err
		}
		traits = b
	}
	return &Creature{
		Name:       s.Name,
		Offense:    s.Roles[RoleOffense],
		Defense:    s.Roles[RoleDefense],
		Speed:      s.Roles[RoleSpeed],
		Arcane:     s.Roles[RoleArcane],
		Vitality:   s.Roles[RoleVitality],
		TraitsJSON: string(traits),
	}, nil
}

// BattleRecord stores the result of one resolved encounter between two
// persisted creatures. ContentHash is the cache key of the inputs, so
// identical rematches can be traced back to the same computation.
type BattleRecord struct {
	gorm.Model
	CreatureAID uint   `json:"creature_a_id" gorm:"index"`
	CreatureBID uint   `json:"creature_b_id" gorm:"index"`
	ContentHash string `json:"content_hash" gorm:"index"`

	StrategyA string  `json:"strategy_a"`
	StrategyB string  `json:"strategy_b"`
	PayoffA   float64 `json:"payoff_a"`
	PayoffB   float64 `json:"payoff_b"`
	Winner    string  `json:"winner"`

	PureEquilibria int  `json:"pure_equilibria"`
	MixedUsed      bool `json:"mixed_used"`
}

func (BattleRecord) TableName() string { return "battle_records" }
