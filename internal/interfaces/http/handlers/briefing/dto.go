package briefing

import (
	"time"

	"briefing/internal/application/briefing/usecases"
)

type BriefedItemRequest struct {
	ItemKey      string `json:"item_key" binding:"required,max=500"`
	VersionToken string `json:"version_token,omitempty"`
}

type MarkBriefedRequest struct {
	// Timestamp is RFC3339; defaults to the server clock when omitted.
	Timestamp *time.Time           `json:"timestamp,omitempty"`
	Items     []BriefedItemRequest `json:"items,omitempty"`
}

func (r *MarkBriefedRequest) ToCommand(channel string) usecases.MarkBriefedCommand {
	items := make([]usecases.BriefedItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, usecases.BriefedItem{
			ItemKey:      item.ItemKey,
			VersionToken: item.VersionToken,
		})
	}
	return usecases.MarkBriefedCommand{
		Channel:   channel,
		Timestamp: r.Timestamp,
		Items:     items,
	}
}

type IncomingItemRequest struct {
	ItemKey      string `json:"item_key" binding:"required,max=500"`
	VersionToken string `json:"version_token,omitempty"`
}

type CheckNewRequest struct {
	Items []IncomingItemRequest `json:"items" binding:"required"`
}

func (r *CheckNewRequest) ToQuery(channel string) usecases.CheckNewQuery {
	items := make([]usecases.IncomingItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, usecases.IncomingItem{
			ItemKey:      item.ItemKey,
			VersionToken: item.VersionToken,
		})
	}
	return usecases.CheckNewQuery{
		Channel: channel,
		Items:   items,
	}
}

type SetPrefRequest struct {
	Key   string `json:"key" binding:"required,max=100"`
	Value string `json:"value"`
}

func (r *SetPrefRequest) ToCommand() usecases.SetPrefCommand {
	return usecases.SetPrefCommand{
		Key:   r.Key,
		Value: r.Value,
	}
}

type SetMemoryRequest struct {
	Content string `json:"content" binding:"required"`
}

func (r *SetMemoryRequest) ToCommand() usecases.SetMemoryCommand {
	return usecases.SetMemoryCommand{
		Content: r.Content,
	}
}
