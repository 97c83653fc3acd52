package repository

import (
	"testing"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/configs"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := configs.ConnectDB(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
