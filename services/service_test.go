package services

import (
	"testing"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/configs"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := configs.ConnectDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	return db
}
