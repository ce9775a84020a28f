package models

// One seen table per channel, keyed by the channel's natural item
// identifier. sms has no per-item records.

type GmailSeenModel struct {
	MessageID string `gorm:"primaryKey;size:100"`
	BriefedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (GmailSeenModel) TableName() string {
	return "gmail_seen"
}

type ZendeskSeenModel struct {
	TicketID string `gorm:"primaryKey;size:50"`
	// LastUpdate is the ticket's updated_at as briefed; a newer value
	// makes the ticket new again.
	LastUpdate string `gorm:"size:100;not null"`
	BriefedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ZendeskSeenModel) TableName() string {
	return "zendesk_seen"
}

type GchatSeenModel struct {
	SpaceName   string `gorm:"primaryKey;size:200"`
	LastMessage string `gorm:"size:100;not null"`
	BriefedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (GchatSeenModel) TableName() string {
	return "gchat_seen"
}
