package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mbarros/particle-clash/internal/constants"
)

// ListCreatures returns every stored creature ordered by name.
func (h *BattleHandler) ListCreatures(c *gin.Context) {
	creatures, err := h.repo.GetCreatures()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCreatures})
		return
	}
	c.JSON(http.StatusOK, creatures)
}

// CreateCreature validates and stores a new creature. Role counts must sum
// to the full particle budget.
func (h *BattleHandler) CreateCreature(c *gin.Context) {
	var body creaturePayload
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if body.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest, constants.JSONKeyDetails: "name is required"})
		return
	}
	creature, err := h.svc.CreateCreature(body.snapshot())
	if err != nil {
		status := statusForError(err)
		msg := constants.ErrFailedSaveCreature
		if status == http.StatusBadRequest {
			msg = constants.ErrInvalidRequest
		}
		c.JSON(status, gin.H{constants.JSONKeyError: msg, constants.JSONKeyDetails: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, creature)
}

// GetCreature returns a creature by ID.
func (h *BattleHandler) GetCreature(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("creatureID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCreatureID})
		return
	}
	creature, err := h.repo.GetCreatureByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCreatureNotFound})
		return
	}
	c.JSON(http.StatusOK, creature)
}

// ListLeaderboard returns the top creatures by wins (desc), limited to the
// top 10 by default.
func (h *BattleHandler) ListLeaderboard(c *gin.Context) {
	creatures, err := h.repo.GetTopCreatures(parseLimit(c, 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchTop})
		return
	}
	c.JSON(http.StatusOK, creatures)
}
