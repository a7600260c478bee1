package service

import (
	"errors"
	"fmt"

	"github.com/mbarros/particle-clash/internal/cache"
	"github.com/mbarros/particle-clash/internal/constants"
	"github.com/mbarros/particle-clash/internal/engine"
	"github.com/mbarros/particle-clash/internal/game"
	"github.com/mbarros/particle-clash/internal/keys"
	"github.com/mbarros/particle-clash/internal/logging"
	"github.com/mbarros/particle-clash/internal/storage"
)

var (
	ErrCreatureNotFound     = errors.New("creature not found")
	ErrSelfBattle           = errors.New("a creature cannot battle itself")
	ErrInvalidParticleTotal = errors.New("role counts must sum to the particle total")
)

// BattleService orchestrates battles over persisted creatures: it loads the
// two snapshots, resolves through the read-through cache and records the
// outcome. The engine itself stays pure; everything stateful lives here.
type BattleService struct {
	repo    storage.Repository
	engine  *engine.Engine
	catalog game.StrategyCatalog
	cache   *cache.OutcomeCache
}

func NewBattleService(repo storage.Repository, eng *engine.Engine, catalog game.StrategyCatalog, outcomes *cache.OutcomeCache) *BattleService {
	return &BattleService{repo: repo, engine: eng, catalog: catalog, cache: outcomes}
}

// Catalog returns the shared strategy catalog.
func (s *BattleService) Catalog() game.StrategyCatalog { return s.catalog }

// CreateCreature validates and persists a creature snapshot. Unlike the
// engine boundary, intake enforces the full particle budget.
func (s *BattleService) CreateCreature(snap *game.Snapshot) (*game.Creature, error) {
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrInvalidSnapshot, err)
	}
	total := 0
	for _, c := range snap.Roles {
		total += c
	}
	if total != game.ParticleTotal {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidParticleTotal, total, game.ParticleTotal)
	}
	c, err := game.CreatureFromSnapshot(snap)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateCreature(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Preview resolves two inline snapshots without touching storage. Returns
// the outcome together with the content hash of the inputs.
func (s *BattleService) Preview(a, b *game.Snapshot) (*game.BattleOutcome, string, error) {
	key := keys.BattleKey(a, b, s.catalog)
	out, err := s.cache.Resolve(key, func() (*game.BattleOutcome, error) {
		return s.engine.ResolveBattle(a, b, s.catalog)
	})
	if err != nil {
		return nil, "", err
	}
	return out, key, nil
}

// ResolveByID resolves a battle between two stored creatures, persists a
// record and updates both creatures' aggregate stats.
func (s *BattleService) ResolveByID(aID, bID uint) (*game.BattleRecord, *game.BattleOutcome, error) {
	if aID == bID {
		return nil, nil, ErrSelfBattle
	}
	creatureA, err := s.repo.GetCreatureByID(aID)
	if err != nil {
		return nil, nil, ErrCreatureNotFound
	}
	creatureB, err := s.repo.GetCreatureByID(bID)
	if err != nil {
		return nil, nil, ErrCreatureNotFound
	}
	snapA, err := creatureA.Snapshot()
	if err != nil {
		return nil, nil, err
	}
	snapB, err := creatureB.Snapshot()
	if err != nil {
		return nil, nil, err
	}

	out, key, err := s.Preview(snapA, snapB)
	if err != nil {
		return nil, nil, err
	}
	if out.Equilibria.Exhausted {
		logging.Warn("equilibrium search exhausted its budget", logging.Fields{
			constants.LogFieldCreatureA: creatureA.Name,
			constants.LogFieldCreatureB: creatureB.Name,
		})
	}

	rec := &game.BattleRecord{
		CreatureAID:    aID,
		CreatureBID:    bID,
		ContentHash:    key,
		StrategyA:      out.StrategyNameA,
		StrategyB:      out.StrategyNameB,
		PayoffA:        out.PayoffA,
		PayoffB:        out.PayoffB,
		Winner:         string(out.Winner),
		PureEquilibria: len(out.Equilibria.Pure),
		MixedUsed:      out.Equilibria.Mixed != nil,
	}
	if err := s.repo.CreateBattleRecord(rec); err != nil {
		return nil, nil, err
	}
	if err := s.repo.UpdateStatsOnBattleEnd(creatureA, creatureB, out.Winner); err != nil {
		return nil, nil, err
	}

	logging.Info("battle resolved", logging.Fields{
		constants.LogFieldCreatureA: creatureA.Name,
		constants.LogFieldCreatureB: creatureB.Name,
		constants.LogFieldWinner:    string(out.Winner),
		constants.LogFieldHash:      key,
	})
	return rec, out, nil
}
