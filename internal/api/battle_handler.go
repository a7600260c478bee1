package api

import (
	"github.com/mbarros/particle-clash/internal/service"
	"github.com/mbarros/particle-clash/internal/storage"
)

// BattleHandler groups all HTTP handlers over the battle service.
type BattleHandler struct {
	svc  *service.BattleService
	repo storage.Repository
}

// NewBattleHandler creates a new BattleHandler with the given service and
// repository.
func NewBattleHandler(svc *service.BattleService, repo storage.Repository) *BattleHandler {
	return &BattleHandler{svc: svc, repo: repo}
}
