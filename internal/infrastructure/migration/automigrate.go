package migration

import (
	"briefing/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ChannelStateModel{},
		&models.GmailSeenModel{},
		&models.ZendeskSeenModel{},
		&models.GchatSeenModel{},
		&models.FollowUpModel{},
		&models.RequestModel{},
		&models.RequestItemModel{},
		&models.PrefModel{},
		&models.MemoryModel{},
	}
}
