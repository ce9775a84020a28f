// Package channel defines the communication surfaces tracked by the briefing core.
package channel

import "fmt"

type Channel string

const (
	Gmail   Channel = "gmail"
	Zendesk Channel = "zendesk"
	GChat   Channel = "gchat"
	SMS     Channel = "sms"
)

var validChannels = map[Channel]bool{
	Gmail:   true,
	Zendesk: true,
	GChat:   true,
	SMS:     true,
}

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	return validChannels[c]
}

// HasVersionToken reports whether items on this channel carry a version
// token that can make an already-seen item new again.
func (c Channel) HasVersionToken() bool {
	return c == Zendesk || c == GChat
}

// TracksItems reports whether the channel keeps per-item seen records.
// SMS only carries the channel-level cursor.
func (c Channel) TracksItems() bool {
	return c != SMS
}

// All returns every known channel in a stable order.
func All() []Channel {
	return []Channel{Gmail, Zendesk, GChat, SMS}
}

func NewChannel(s string) (Channel, error) {
	c := Channel(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid channel: %s", s)
	}
	return c, nil
}
