package models

type PrefModel struct {
	PrefKey   string `gorm:"primaryKey;size:100;column:pref_key"`
	PrefValue string `gorm:"type:text;not null;column:pref_value"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PrefModel) TableName() string {
	return "briefing_prefs"
}

// MemoryModel is a single-row table; last writer wins.
type MemoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Content   string `gorm:"type:text;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (MemoryModel) TableName() string {
	return "memory"
}
