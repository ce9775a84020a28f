package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing/internal/domain/channel"
	"briefing/internal/domain/reconciliation"
	"briefing/internal/domain/request"
	vo "briefing/internal/domain/request/valueobjects"
	"briefing/internal/shared/errors"
)

func buildLinkedRequest(t *testing.T) *request.Request {
	t.Helper()
	req := buildStoredRequest(t)
	_, err := req.AttachItem(channel.Gmail, "m1", "Original email")
	require.NoError(t, err)
	_, err = req.AttachItem(channel.Zendesk, "658950", "Dispute ticket")
	require.NoError(t, err)
	return req
}

func TestSetStatusUseCase_Execute(t *testing.T) {
	t.Run("closing derives archive and confirm intents", func(t *testing.T) {
		mockRepo := &mockRequestRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
				return buildLinkedRequest(t), nil
			},
		}
		gw := &mockZendeskGateway{
			GetTicketStatusFunc: func(ctx context.Context, ticketID string) (string, error) {
				return "open", nil
			},
		}

		engine := reconciliation.NewEngine(gw, &mockLogger{})
		useCase := NewSetStatusUseCase(mockRepo, engine, &mockLogger{})

		result, err := useCase.Execute(context.Background(), SetStatusCommand{RequestID: 1, Status: "closed"})

		require.NoError(t, err)
		assert.True(t, result.Changed)
		assert.Equal(t, "closed", result.Status)
		assert.NotNil(t, result.ClosedAt)
		require.Len(t, result.Reconciliation.Intents, 2)
		assert.Equal(t, reconciliation.IntentArchive, result.Reconciliation.Intents[0].Type)
		assert.Equal(t, reconciliation.IntentConfirm, result.Reconciliation.Intents[1].Type)
		assert.Equal(t, "solved", result.Reconciliation.Intents[1].ProposedStatus)
	})

	t.Run("same status is a no-op without reconciliation", func(t *testing.T) {
		updated := false
		mockRepo := &mockRequestRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
				return buildLinkedRequest(t), nil
			},
			UpdateStatusFunc: func(ctx context.Context, r *request.Request, expected vo.Status) error {
				updated = true
				return nil
			},
		}

		engine := reconciliation.NewEngine(&mockZendeskGateway{}, &mockLogger{})
		useCase := NewSetStatusUseCase(mockRepo, engine, &mockLogger{})

		result, err := useCase.Execute(context.Background(), SetStatusCommand{RequestID: 1, Status: "open"})

		require.NoError(t, err)
		assert.False(t, result.Changed)
		assert.False(t, updated)
		assert.Empty(t, result.Reconciliation.Intents)
	})

	t.Run("gateway failure leaves the transition committed but incomplete", func(t *testing.T) {
		mockRepo := &mockRequestRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
				return buildLinkedRequest(t), nil
			},
		}
		gw := &mockZendeskGateway{
			GetTicketStatusFunc: func(ctx context.Context, ticketID string) (string, error) {
				return "", assert.AnError
			},
		}

		engine := reconciliation.NewEngine(gw, &mockLogger{})
		useCase := NewSetStatusUseCase(mockRepo, engine, &mockLogger{})

		result, err := useCase.Execute(context.Background(), SetStatusCommand{RequestID: 1, Status: "closed"})

		require.NoError(t, err)
		assert.True(t, result.Changed)
		assert.True(t, result.Reconciliation.Incomplete)
		require.Len(t, result.Reconciliation.Failures, 1)
		assert.Equal(t, "658950", result.Reconciliation.Failures[0].ItemID)
	})

	t.Run("retries a lost race and succeeds", func(t *testing.T) {
		attempts := 0
		mockRepo := &mockRequestRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
				return buildStoredRequest(t), nil
			},
			UpdateStatusFunc: func(ctx context.Context, r *request.Request, expected vo.Status) error {
				attempts++
				if attempts == 1 {
					return request.ErrStatusConflict
				}
				return nil
			},
		}

		engine := reconciliation.NewEngine(&mockZendeskGateway{}, &mockLogger{})
		useCase := NewSetStatusUseCase(mockRepo, engine, &mockLogger{})

		result, err := useCase.Execute(context.Background(), SetStatusCommand{RequestID: 1, Status: "pending"})

		require.NoError(t, err)
		assert.True(t, result.Changed)
		assert.Equal(t, 2, attempts)
	})

	t.Run("persistent conflict surfaces after retries", func(t *testing.T) {
		mockRepo := &mockRequestRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
				return buildStoredRequest(t), nil
			},
			UpdateStatusFunc: func(ctx context.Context, r *request.Request, expected vo.Status) error {
				return request.ErrStatusConflict
			},
		}

		engine := reconciliation.NewEngine(&mockZendeskGateway{}, &mockLogger{})
		useCase := NewSetStatusUseCase(mockRepo, engine, &mockLogger{})

		_, err := useCase.Execute(context.Background(), SetStatusCommand{RequestID: 1, Status: "pending"})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("missing request is not found", func(t *testing.T) {
		engine := reconciliation.NewEngine(&mockZendeskGateway{}, &mockLogger{})
		useCase := NewSetStatusUseCase(&mockRequestRepository{}, engine, &mockLogger{})

		_, err := useCase.Execute(context.Background(), SetStatusCommand{RequestID: 42, Status: "closed"})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		engine := reconciliation.NewEngine(&mockZendeskGateway{}, &mockLogger{})
		useCase := NewSetStatusUseCase(&mockRequestRepository{}, engine, &mockLogger{})

		_, err := useCase.Execute(context.Background(), SetStatusCommand{RequestID: 1, Status: "archived"})
		assert.True(t, errors.IsValidationError(err))
	})
}
