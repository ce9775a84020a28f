package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"briefing/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.ChannelStateModel{},
		&models.GmailSeenModel{},
		&models.ZendeskSeenModel{},
		&models.GchatSeenModel{},
		&models.FollowUpModel{},
		&models.RequestModel{},
		&models.RequestItemModel{},
		&models.PrefModel{},
		&models.MemoryModel{},
	)
	require.NoError(t, err)

	return db
}
