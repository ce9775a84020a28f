package reconciliation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing/internal/domain/channel"
	"briefing/internal/domain/request"
	vo "briefing/internal/domain/request/valueobjects"
)

func buildRequest(t *testing.T, items ...[2]string) *request.Request {
	t.Helper()
	req, err := request.NewRequest("test request", "", vo.PriorityNormal)
	require.NoError(t, err)
	for _, it := range items {
		_, err := req.AttachItem(channel.Channel(it[0]), it[1], "")
		require.NoError(t, err)
	}
	return req
}

func TestEngine_Reconcile_ArchiveAndConfirm(t *testing.T) {
	// The end-to-end scenario: a gmail message and a zendesk ticket whose
	// remote status is still open while the request closes.
	req := buildRequest(t,
		[2]string{"gmail", "m1"},
		[2]string{"zendesk", "658950"},
	)

	gw := &mockZendeskGateway{
		GetTicketStatusFunc: func(ctx context.Context, ticketID string) (string, error) {
			assert.Equal(t, "658950", ticketID)
			return "open", nil
		},
	}

	engine := NewEngine(gw, &mockLogger{})
	result := engine.Reconcile(context.Background(), req, vo.StatusOpen, vo.StatusClosed)

	require.False(t, result.Incomplete)
	require.Len(t, result.Intents, 2)

	assert.Equal(t, IntentArchive, result.Intents[0].Type)
	assert.Equal(t, channel.Gmail, result.Intents[0].Channel)
	assert.Equal(t, "m1", result.Intents[0].ItemID)

	assert.Equal(t, IntentConfirm, result.Intents[1].Type)
	assert.Equal(t, channel.Zendesk, result.Intents[1].Channel)
	assert.Equal(t, "658950", result.Intents[1].ItemID)
	assert.Equal(t, "open", result.Intents[1].CurrentStatus)
	assert.Equal(t, "solved", result.Intents[1].ProposedStatus)
}

func TestEngine_Reconcile_SilentChannels(t *testing.T) {
	req := buildRequest(t,
		[2]string{"gchat", "spaces/AAA"},
		[2]string{"sms", "+15550100"},
	)

	engine := NewEngine(&mockZendeskGateway{}, &mockLogger{})
	result := engine.Reconcile(context.Background(), req, vo.StatusOpen, vo.StatusClosed)

	assert.Empty(t, result.Intents)
	assert.False(t, result.Incomplete)
	assert.Empty(t, result.Failures)
}

func TestEngine_Reconcile_OnlyClosedTransitionsFire(t *testing.T) {
	req := buildRequest(t, [2]string{"gmail", "m1"})
	engine := NewEngine(&mockZendeskGateway{}, &mockLogger{})

	// open <-> pending does not touch closed
	result := engine.Reconcile(context.Background(), req, vo.StatusOpen, vo.StatusPending)
	assert.Empty(t, result.Intents)

	result = engine.Reconcile(context.Background(), req, vo.StatusPending, vo.StatusOpen)
	assert.Empty(t, result.Intents)

	// same status never fires
	result = engine.Reconcile(context.Background(), req, vo.StatusClosed, vo.StatusClosed)
	assert.Empty(t, result.Intents)
}

func TestEngine_Reconcile_ReopenDoesNotArchive(t *testing.T) {
	req := buildRequest(t,
		[2]string{"gmail", "m1"},
		[2]string{"zendesk", "42"},
	)

	gw := &mockZendeskGateway{
		GetTicketStatusFunc: func(ctx context.Context, ticketID string) (string, error) {
			return "solved", nil
		},
	}

	engine := NewEngine(gw, &mockLogger{})
	result := engine.Reconcile(context.Background(), req, vo.StatusClosed, vo.StatusOpen)

	// No archive on reopen; zendesk proposes moving the ticket back to open.
	require.Len(t, result.Intents, 1)
	assert.Equal(t, IntentConfirm, result.Intents[0].Type)
	assert.Equal(t, "solved", result.Intents[0].CurrentStatus)
	assert.Equal(t, "open", result.Intents[0].ProposedStatus)
}

func TestEngine_Reconcile_ZendeskAlreadyMatching(t *testing.T) {
	req := buildRequest(t, [2]string{"zendesk", "42"})

	tests := []struct {
		name   string
		remote string
	}{
		{name: "remote solved", remote: "solved"},
		{name: "remote closed satisfies solved target", remote: "closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &mockZendeskGateway{
				GetTicketStatusFunc: func(ctx context.Context, ticketID string) (string, error) {
					return tt.remote, nil
				},
			}
			engine := NewEngine(gw, &mockLogger{})
			result := engine.Reconcile(context.Background(), req, vo.StatusOpen, vo.StatusClosed)
			assert.Empty(t, result.Intents)
			assert.False(t, result.Incomplete)
		})
	}
}

func TestEngine_Reconcile_GatewayFailureIsIncomplete(t *testing.T) {
	req := buildRequest(t,
		[2]string{"gmail", "m1"},
		[2]string{"zendesk", "42"},
	)

	gw := &mockZendeskGateway{
		GetTicketStatusFunc: func(ctx context.Context, ticketID string) (string, error) {
			return "", errors.New("zendesk unreachable")
		},
	}

	engine := NewEngine(gw, &mockLogger{})
	result := engine.Reconcile(context.Background(), req, vo.StatusOpen, vo.StatusClosed)

	// The gmail intent still comes through; the ticket lands in failures.
	require.Len(t, result.Intents, 1)
	assert.Equal(t, IntentArchive, result.Intents[0].Type)
	assert.True(t, result.Incomplete)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "42", result.Failures[0].ItemID)
	assert.Contains(t, result.Failures[0].Reason, "unreachable")
}

func TestEngine_Reconcile_Reentrant(t *testing.T) {
	// Re-running reconciliation for the same transition regenerates an
	// equivalent result: intents are derived, not queued.
	req := buildRequest(t, [2]string{"zendesk", "42"})

	gw := &mockZendeskGateway{
		GetTicketStatusFunc: func(ctx context.Context, ticketID string) (string, error) {
			return "open", nil
		},
	}

	engine := NewEngine(gw, &mockLogger{})
	first := engine.Reconcile(context.Background(), req, vo.StatusOpen, vo.StatusClosed)
	second := engine.Reconcile(context.Background(), req, vo.StatusOpen, vo.StatusClosed)

	assert.Equal(t, first, second)
}

func TestEngine_Reevaluate(t *testing.T) {
	t.Run("closed request regenerates its intents", func(t *testing.T) {
		req := buildRequest(t,
			[2]string{"gmail", "m1"},
			[2]string{"zendesk", "658950"},
		)
		_, err := req.ChangeStatus(vo.StatusClosed)
		require.NoError(t, err)

		gw := &mockZendeskGateway{
			GetTicketStatusFunc: func(ctx context.Context, ticketID string) (string, error) {
				return "open", nil
			},
		}

		engine := NewEngine(gw, &mockLogger{})
		result := engine.Reevaluate(context.Background(), req)

		require.Len(t, result.Intents, 2)
		assert.Equal(t, IntentArchive, result.Intents[0].Type)
		assert.Equal(t, IntentConfirm, result.Intents[1].Type)
		assert.Equal(t, "solved", result.Intents[1].ProposedStatus)
	})

	t.Run("open request only checks ticket drift", func(t *testing.T) {
		req := buildRequest(t,
			[2]string{"gmail", "m1"},
			[2]string{"zendesk", "658950"},
		)

		gw := &mockZendeskGateway{
			GetTicketStatusFunc: func(ctx context.Context, ticketID string) (string, error) {
				return "open", nil
			},
		}

		engine := NewEngine(gw, &mockLogger{})
		result := engine.Reevaluate(context.Background(), req)

		// Ticket already matches and mail is never archived while open
		assert.Empty(t, result.Intents)
		assert.False(t, result.Incomplete)
	})
}

func TestProposedZendeskStatus(t *testing.T) {
	assert.Equal(t, "open", ProposedZendeskStatus(vo.StatusOpen))
	assert.Equal(t, "pending", ProposedZendeskStatus(vo.StatusPending))
	assert.Equal(t, "solved", ProposedZendeskStatus(vo.StatusClosed))
}
