package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mbarros/particle-clash/internal/constants"
)

// ListStrategies returns the shared strategy catalog in its fixed order.
func (h *BattleHandler) ListStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategies": h.svc.Catalog()})
}

// ResolveBattle resolves a battle between two stored creatures, records the
// result and updates both creatures' stats.
func (h *BattleHandler) ResolveBattle(c *gin.Context) {
	var body struct {
		CreatureAID uint `json:"creature_a_id"`
		CreatureBID uint `json:"creature_b_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if body.CreatureAID == 0 || body.CreatureBID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCreatureID})
		return
	}
	rec, out, err := h.svc.ResolveByID(body.CreatureAID, body.CreatureBID)
	if err != nil {
		status := statusForError(err)
		msg := constants.ErrFailedResolveBattle
		if status == http.StatusNotFound {
			msg = constants.ErrCreatureNotFound
		} else if status == http.StatusBadRequest {
			msg = constants.ErrInvalidRequest
		}
		c.JSON(status, gin.H{constants.JSONKeyError: msg, constants.JSONKeyDetails: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": rec, "outcome": out})
}

// PreviewBattle resolves two inline creature snapshots without persisting
// anything. Identical inputs are served from the outcome cache.
func (h *BattleHandler) PreviewBattle(c *gin.Context) {
	var body struct {
		CreatureA creaturePayload `json:"creature_a"`
		CreatureB creaturePayload `json:"creature_b"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	out, hash, err := h.svc.Preview(body.CreatureA.snapshot(), body.CreatureB.snapshot())
	if err != nil {
		c.JSON(statusForError(err), gin.H{constants.JSONKeyError: constants.ErrFailedResolveBattle, constants.JSONKeyDetails: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"outcome": out, "content_hash": hash})
}

// ListBattles returns the most recent battle records, newest first.
func (h *BattleHandler) ListBattles(c *gin.Context) {
	recs, err := h.repo.GetBattleRecords(parseLimit(c, 20))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattles})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// GetBattle returns a battle record by ID.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("battleID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleID})
		return
	}
	rec, err := h.repo.GetBattleRecordByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	c.JSON(http.StatusOK, rec)
}
