// Package reconciliation derives per-channel side effects from request
// status transitions. The engine never mutates an external system
// directly; it emits intents for the orchestrator to execute, some
// pre-approved and some requiring explicit confirmation.
package reconciliation

import "briefing/internal/domain/channel"

type IntentType string

const (
	// IntentArchive is pre-approved: the orchestrator may execute it
	// without asking.
	IntentArchive IntentType = "archive"

	// IntentConfirm carries a discrepancy the user must approve or
	// reject before anything is applied.
	IntentConfirm IntentType = "confirm"
)

// Intent is a proposed or pre-approved external side effect. Intents
// are derived from current state on every run, never queued, so a lost
// intent is regenerated by re-running reconciliation.
type Intent struct {
	Type    IntentType      `json:"type"`
	Channel channel.Channel `json:"channel"`
	ItemID  string          `json:"item_id"`
	Label   string          `json:"label,omitempty"`

	// CurrentStatus and ProposedStatus are set on confirm intents only.
	CurrentStatus  string `json:"current_status,omitempty"`
	ProposedStatus string `json:"proposed_status,omitempty"`
}

// Failure records a linked item the engine could not evaluate, e.g. the
// ticket gateway being unreachable.
type Failure struct {
	Channel channel.Channel `json:"channel"`
	ItemID  string          `json:"item_id"`
	Reason  string          `json:"reason"`
}

// Result is the outcome of one reconciliation pass. Incomplete means
// some linked items could not be evaluated; the request status change
// stays committed and the caller retries reconciliation independently.
type Result struct {
	Intents    []Intent  `json:"intents"`
	Incomplete bool      `json:"incomplete"`
	Failures   []Failure `json:"failures,omitempty"`
}
