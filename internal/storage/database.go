package storage

import (
	"github.com/mbarros/particle-clash/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database at dataSourceName and keeps the
// schema updated via AutoMigrate. Creatures are created through the API or
// the simulator CLI; nothing is seeded at startup.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Creature{}, &game.BattleRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
