package models

type RequestModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null"`
	Version     int    `gorm:"not null;default:1"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt    *int64

	// Note: No foreign key constraints or associations.
	// The item cascade is handled in the repository transaction.
}

func (RequestModel) TableName() string {
	return "requests"
}

type RequestItemModel struct {
	ID        uint   `gorm:"primaryKey"`
	RequestID uint   `gorm:"not null;index;uniqueIndex:idx_request_channel_item"`
	Channel   string `gorm:"size:20;not null;uniqueIndex:idx_request_channel_item"`
	ItemID    string `gorm:"size:200;not null;uniqueIndex:idx_request_channel_item"`
	Label     string `gorm:"size:500"`
	AddedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (RequestItemModel) TableName() string {
	return "request_items"
}
