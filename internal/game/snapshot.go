package game

import "fmt"

// Snapshot is the immutable input record describing one side of an
// encounter: five non-negative role-aggregate particle counts plus the
// ordered list of resolved trait modifiers. It is created once per
// encounter from upstream creature data and never mutated during
// resolution.
type Snapshot struct {
	Name   string          `json:"name"`
	Roles  [NumRoles]int   `json:"roles"`
	Traits []TraitModifier `json:"traits"`
}

// HasTrait is the deterministic membership test used by conditional_flag
// modifiers.
func (s *Snapshot) HasTrait(name string) bool {
	for _, t := range s.Traits {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Validate checks the boundary preconditions: every role count must be
// non-negative. Particle-total enforcement belongs to the creature intake
// layer, not the engine, so a partial snapshot is still resolvable.
func (s *Snapshot) Validate() error {
	for i, c := range s.Roles {
		if c < 0 {
			return fmt.Errorf("role %s has negative count %d", Role(i), c)
		}
	}
	return nil
}
