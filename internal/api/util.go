package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mbarros/particle-clash/internal/engine"
	"github.com/mbarros/particle-clash/internal/game"
	"github.com/mbarros/particle-clash/internal/service"
)

// creaturePayload is the wire shape of one creature: named role counts plus
// the trait list. Named fields keep request bodies readable instead of a
// bare five-element array.
type creaturePayload struct {
	Name     string               `json:"name"`
	Offense  int                  `json:"offense"`
	Defense  int                  `json:"defense"`
	Speed    int                  `json:"speed"`
	Arcane   int                  `json:"arcane"`
	Vitality int                  `json:"vitality"`
	Traits   []game.TraitModifier `json:"traits"`
}

func (p *creaturePayload) snapshot() *game.Snapshot {
	s := &game.Snapshot{Name: p.Name, Traits: p.Traits}
	s.Roles[game.RoleOffense] = p.Offense
	s.Roles[game.RoleDefense] = p.Defense
	s.Roles[game.RoleSpeed] = p.Speed
	s.Roles[game.RoleArcane] = p.Arcane
	s.Roles[game.RoleVitality] = p.Vitality
	return s
}

// parseLimit reads an optional ?limit=N query parameter, capped at 100.
func parseLimit(c *gin.Context, def int) int {
	limit := def
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	return limit
}

// statusForError maps service and engine errors to HTTP status codes.
// Validation failures are the caller's fault; everything else is ours.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrCreatureNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSelfBattle),
		errors.Is(err, service.ErrInvalidParticleTotal),
		errors.Is(err, engine.ErrInvalidSnapshot),
		errors.Is(err, engine.ErrEmptyStrategySet),
		errors.Is(err, engine.ErrUnknownStrategy):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
