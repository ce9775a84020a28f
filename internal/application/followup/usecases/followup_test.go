package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing/internal/domain/followup"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type mockFollowUpRepository struct {
	SaveFunc    func(ctx context.Context, f *followup.FollowUp) error
	UpdateFunc  func(ctx context.Context, f *followup.FollowUp) error
	GetByIDFunc func(ctx context.Context, id uint) (*followup.FollowUp, error)
	ListFunc    func(ctx context.Context, includeResolved bool) ([]*followup.FollowUp, error)
}

func (m *mockFollowUpRepository) Save(ctx context.Context, f *followup.FollowUp) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return f.SetID(1)
}

func (m *mockFollowUpRepository) Update(ctx context.Context, f *followup.FollowUp) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return nil
}

func (m *mockFollowUpRepository) GetByID(ctx context.Context, id uint) (*followup.FollowUp, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFollowUpRepository) List(ctx context.Context, includeResolved bool) ([]*followup.FollowUp, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, includeResolved)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestAddFollowUpUseCase_Execute(t *testing.T) {
	t.Run("creates follow-up", func(t *testing.T) {
		useCase := NewAddFollowUpUseCase(&mockFollowUpRepository{}, &mockLogger{})

		result, err := useCase.Execute(context.Background(), AddFollowUpCommand{
			Person:     "Dana",
			Summary:    "Reply about the invoice",
			SourceLink: "https://mail.example.com/thread/1",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.FollowUpID)
		assert.False(t, result.CreatedAt.IsZero())
	})

	t.Run("rejects missing person", func(t *testing.T) {
		useCase := NewAddFollowUpUseCase(&mockFollowUpRepository{}, &mockLogger{})

		_, err := useCase.Execute(context.Background(), AddFollowUpCommand{Summary: "orphan"})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects missing summary", func(t *testing.T) {
		useCase := NewAddFollowUpUseCase(&mockFollowUpRepository{}, &mockLogger{})

		_, err := useCase.Execute(context.Background(), AddFollowUpCommand{Person: "Dana"})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestListFollowUpsUseCase_Execute(t *testing.T) {
	created := time.Now().UTC().Add(-72 * time.Hour)
	pending, err := followup.ReconstructFollowUp(1, "Dana", "Reply", "", created, nil)
	require.NoError(t, err)

	mockRepo := &mockFollowUpRepository{
		ListFunc: func(ctx context.Context, includeResolved bool) ([]*followup.FollowUp, error) {
			return []*followup.FollowUp{pending}, nil
		},
	}

	useCase := NewListFollowUpsUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListFollowUpsQuery{})

	require.NoError(t, err)
	require.Len(t, result.FollowUps, 1)
	assert.Equal(t, "Dana", result.FollowUps[0].Person)
	assert.Equal(t, 3, result.FollowUps[0].AgeDays)
	assert.Nil(t, result.FollowUps[0].ResolvedAt)
}

func TestResolveFollowUpUseCase_Execute(t *testing.T) {
	t.Run("resolves a pending follow-up", func(t *testing.T) {
		pending, err := followup.ReconstructFollowUp(7, "Sam", "Confirm time", "", time.Now().UTC(), nil)
		require.NoError(t, err)
		updated := false

		mockRepo := &mockFollowUpRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*followup.FollowUp, error) {
				return pending, nil
			},
			UpdateFunc: func(ctx context.Context, f *followup.FollowUp) error {
				updated = true
				return nil
			},
		}

		useCase := NewResolveFollowUpUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), ResolveFollowUpCommand{FollowUpID: 7})

		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, uint(7), result.FollowUpID)
		assert.False(t, result.ResolvedAt.IsZero())
	})

	t.Run("resolving again keeps the original time", func(t *testing.T) {
		resolvedAt := time.Now().UTC().Add(-time.Hour)
		resolved, err := followup.ReconstructFollowUp(7, "Sam", "Confirm time", "", time.Now().UTC().Add(-2*time.Hour), &resolvedAt)
		require.NoError(t, err)
		updated := false

		mockRepo := &mockFollowUpRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*followup.FollowUp, error) {
				return resolved, nil
			},
			UpdateFunc: func(ctx context.Context, f *followup.FollowUp) error {
				updated = true
				return nil
			},
		}

		useCase := NewResolveFollowUpUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), ResolveFollowUpCommand{FollowUpID: 7})

		require.NoError(t, err)
		assert.False(t, updated)
		assert.Equal(t, resolvedAt, result.ResolvedAt)
	})

	t.Run("missing follow-up is not found", func(t *testing.T) {
		useCase := NewResolveFollowUpUseCase(&mockFollowUpRepository{}, &mockLogger{})

		_, err := useCase.Execute(context.Background(), ResolveFollowUpCommand{FollowUpID: 99})
		assert.True(t, errors.IsNotFoundError(err))
	})
}
