package storage

import "github.com/mbarros/particle-clash/internal/game"

type Repository interface {
	CreateCreature(c *game.Creature) error
	GetCreatures() ([]game.Creature, error)
	GetCreatureByID(id uint) (*game.Creature, error)
	// GetCreatureByName returns a creature by its name (case-insensitive).
	GetCreatureByName(name string) (*game.Creature, error)
	UpdateCreature(c *game.Creature) error

	CreateBattleRecord(r *game.BattleRecord) error
	GetBattleRecordByID(id uint) (*game.BattleRecord, error)
	// GetBattleRecords returns the most recent records, newest first.
	GetBattleRecords(limit int) ([]game.BattleRecord, error)
	// GetBattleRecordsByContentHash returns every recorded rematch of the
	// same inputs (identical content hash).
	GetBattleRecordsByContentHash(hash string) ([]game.BattleRecord, error)

	// UpdateStatsOnBattleEnd bumps the aggregate counters of both
	// participants after a resolved encounter.
	UpdateStatsOnBattleEnd(a, b *game.Creature, winner game.Winner) error
	// Leaderboard
	GetTopCreatures(limit int) ([]game.Creature, error)
}
