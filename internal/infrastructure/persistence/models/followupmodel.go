package models

type FollowUpModel struct {
	ID         uint   `gorm:"primaryKey"`
	Person     string `gorm:"size:200;not null"`
	Summary    string `gorm:"type:text;not null"`
	SourceLink string `gorm:"size:500"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	ResolvedAt *int64 `gorm:"index"`
}

func (FollowUpModel) TableName() string {
	return "followups"
}
