package configs

import (
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Single connection so every handler's map of reads and writes is
	// serialized, and so an in-memory DSN stays one database.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Table{},
		&entity.Reservation{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.InventoryItem{}, &entity.StockMovement{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Supplier{}, &entity.Promotion{}, &entity.Event{},
	)
}
