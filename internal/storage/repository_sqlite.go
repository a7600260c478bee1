package storage

import (
	"github.com/mbarros/particle-clash/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateCreature(c *game.Creature) error {
	return r.db.Create(c).Error
}

func (r *sqliteRepository) GetCreatures() ([]game.Creature, error) {
	var creatures []game.Creature
	if err := r.db.Order("name").Find(&creatures).Error; err != nil {
		return nil, err
	}
	return creatures, nil
}

func (r *sqliteRepository) GetCreatureByID(id uint) (*game.Creature, error) {
	var c game.Creature
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepository) GetCreatureByName(name string) (*game.Creature, error) {
	var c game.Creature
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepository) UpdateCreature(c *game.Creature) error {
	return r.db.Save(c).Error
}

func (r *sqliteRepository) CreateBattleRecord(rec *game.BattleRecord) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetBattleRecordByID(id uint) (*game.BattleRecord, error) {
	var rec game.BattleRecord
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) GetBattleRecords(limit int) ([]game.BattleRecord, error) {
	var recs []game.BattleRecord
	q := r.db.Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *sqliteRepository) GetBattleRecordsByContentHash(hash string) ([]game.BattleRecord, error) {
	var recs []game.BattleRecord
	if err := r.db.Where("content_hash = ?", hash).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *sqliteRepository) UpdateStatsOnBattleEnd(a, b *game.Creature, winner game.Winner) error {
	a.BattlesFought++
	b.BattlesFought++
	switch winner {
	case game.WinnerA:
		a.Wins++
	case game.WinnerB:
		b.Wins++
	case game.WinnerDraw:
		a.Draws++
		b.Draws++
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(a).Error; err != nil {
			return err
		}
		return tx.Save(b).Error
	})
}

func (r *sqliteRepository) GetTopCreatures(limit int) ([]game.Creature, error) {
	var creatures []game.Creature
	if limit <= 0 {
		limit = 10
	}
	err := r.db.Order("wins DESC, draws DESC, name ASC").Limit(limit).Find(&creatures).Error
	if err != nil {
		return nil, err
	}
	return creatures, nil
}
