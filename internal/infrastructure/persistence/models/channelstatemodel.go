package models

type ChannelStateModel struct {
	Channel     string `gorm:"primaryKey;size:20"`
	LastBriefed *int64
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (ChannelStateModel) TableName() string {
	return "channel_state"
}
