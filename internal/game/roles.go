package game

import "strings"

// Role is one of the five particle groupings that make up a creature.
// The numeric values index into role-count arrays and role-weight vectors,
// so their order is part of the engine's deterministic contract.
type Role int

const (
	RoleOffense Role = iota
	RoleDefense
	RoleSpeed
	RoleArcane
	RoleVitality

	NumRoles = 5
)

// ParticleTotal is the fixed number of particles distributed across the
// five roles of a fully formed creature.
const ParticleTotal = 500

var roleNames = [NumRoles]string{"offense", "defense", "speed", "arcane", "vitality"}

func (r Role) String() string {
	if r < 0 || int(r) >= NumRoles {
		return "unknown"
	}
	return roleNames[r]
}

// RoleFromName maps a lowercase role name to its Role value. The boolean is
// false for unknown names.
func RoleFromName(name string) (Role, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range roleNames {
		if n == name {
			return Role(i), true
		}
	}
	return 0, false
}

// RoleVector holds one linear coefficient per role, in role order. Strategy
// definitions use it to turn role counts into a base payoff contribution.
type RoleVector [NumRoles]float64

// Dot returns the dot product of the vector with a creature's role counts.
func (v RoleVector) Dot(counts [NumRoles]int) float64 {
	var sum float64
	for i := 0; i < NumRoles; i++ {
		sum += v[i] * float64(counts[i])
	}
	return sum
}

// Dominant returns the role with the largest coefficient. Ties resolve to
// the lowest role index so the result is stable.
func (v RoleVector) Dominant() Role {
	best := 0
	for i := 1; i < NumRoles; i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return Role(best)
}
