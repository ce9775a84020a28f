package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing/internal/domain/channel"
	"briefing/internal/domain/request"
	vo "briefing/internal/domain/request/valueobjects"
)

func createTestRequest(t *testing.T, name, description string) *request.Request {
	req, err := request.NewRequest(name, description, vo.DefaultPriority())
	require.NoError(t, err)
	return req
}

func TestRequestRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	req := createTestRequest(t, "Laptop replacement", "Dana needs a new laptop")
	err := repo.Save(ctx, req)
	require.NoError(t, err)
	assert.NotZero(t, req.ID())

	found, err := repo.GetByID(ctx, req.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Laptop replacement", found.Name())
	assert.Equal(t, vo.StatusOpen, found.Status())
	assert.Empty(t, found.Items())
}

func TestRequestRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	t.Run("returns nil for unknown id", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("loads linked items", func(t *testing.T) {
		req := createTestRequest(t, "Billing dispute", "")
		require.NoError(t, repo.Save(ctx, req))

		item, err := req.AttachItem(channel.Zendesk, "658950", "Dispute ticket")
		require.NoError(t, err)
		require.NoError(t, repo.SaveItem(ctx, item))

		found, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Len(t, found.Items(), 1)
		assert.Equal(t, channel.Zendesk, found.Items()[0].Channel())
		assert.Equal(t, "658950", found.Items()[0].ItemID())
	})
}

func TestRequestRepository_SaveItem(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	req := createTestRequest(t, "Laptop replacement", "")
	require.NoError(t, repo.Save(ctx, req))

	item, err := req.AttachItem(channel.Gmail, "msg-001", "Original email")
	require.NoError(t, err)
	require.NoError(t, repo.SaveItem(ctx, item))
	assert.NotZero(t, item.ID())

	t.Run("same link from a concurrent writer is already applied", func(t *testing.T) {
		other, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)

		dup, err := request.ReconstructItem(0, other.ID(), channel.Gmail, "msg-001", "Original email", item.AddedAt())
		require.NoError(t, err)

		err = repo.SaveItem(ctx, dup)
		require.NoError(t, err)
		assert.Equal(t, item.ID(), dup.ID())

		found, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)
		assert.Len(t, found.Items(), 1)
	})

	t.Run("same item id on another channel is distinct", func(t *testing.T) {
		second, err := req.AttachItem(channel.Zendesk, "msg-001", "")
		require.NoError(t, err)
		require.NoError(t, repo.SaveItem(ctx, second))

		found, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)
		assert.Len(t, found.Items(), 2)
	})
}

func TestRequestRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	t.Run("persists the transition", func(t *testing.T) {
		req := createTestRequest(t, "Laptop replacement", "")
		require.NoError(t, repo.Save(ctx, req))

		moved, err := req.ChangeStatus(vo.StatusClosed)
		require.NoError(t, err)
		require.True(t, moved)

		err = repo.UpdateStatus(ctx, req, vo.StatusOpen)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusClosed, found.Status())
		assert.NotNil(t, found.ClosedAt())
	})

	t.Run("reopening clears closed_at", func(t *testing.T) {
		req := createTestRequest(t, "Reopen me", "")
		require.NoError(t, repo.Save(ctx, req))

		_, err := req.ChangeStatus(vo.StatusClosed)
		require.NoError(t, err)
		require.NoError(t, repo.UpdateStatus(ctx, req, vo.StatusOpen))

		_, err = req.ChangeStatus(vo.StatusOpen)
		require.NoError(t, err)
		require.NoError(t, repo.UpdateStatus(ctx, req, vo.StatusClosed))

		found, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusOpen, found.Status())
		assert.Nil(t, found.ClosedAt())
	})

	t.Run("concurrent transition loses with a conflict", func(t *testing.T) {
		req := createTestRequest(t, "Contested", "")
		require.NoError(t, repo.Save(ctx, req))

		first, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)
		second, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)

		_, err = first.ChangeStatus(vo.StatusClosed)
		require.NoError(t, err)
		require.NoError(t, repo.UpdateStatus(ctx, first, vo.StatusOpen))

		_, err = second.ChangeStatus(vo.StatusPending)
		require.NoError(t, err)
		err = repo.UpdateStatus(ctx, second, vo.StatusOpen)
		assert.ErrorIs(t, err, request.ErrStatusConflict)
	})

	t.Run("missing request fails without a conflict", func(t *testing.T) {
		req := createTestRequest(t, "Ghost", "")
		require.NoError(t, req.SetID(9999))

		_, err := req.ChangeStatus(vo.StatusClosed)
		require.NoError(t, err)
		err = repo.UpdateStatus(ctx, req, vo.StatusOpen)
		require.Error(t, err)
		assert.NotErrorIs(t, err, request.ErrStatusConflict)
	})
}

func TestRequestRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	open := createTestRequest(t, "Open one", "")
	require.NoError(t, repo.Save(ctx, open))

	closed := createTestRequest(t, "Closed one", "")
	require.NoError(t, repo.Save(ctx, closed))
	_, err := closed.ChangeStatus(vo.StatusClosed)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, closed, vo.StatusOpen))

	t.Run("returns everything in insertion order", func(t *testing.T) {
		requests, err := repo.List(ctx, request.Filter{})
		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, open.ID(), requests[0].ID())
		assert.Equal(t, closed.ID(), requests[1].ID())
	})

	t.Run("filters by status", func(t *testing.T) {
		status := vo.StatusClosed
		requests, err := repo.List(ctx, request.Filter{Status: &status})
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, closed.ID(), requests[0].ID())
	})
}

func TestRequestRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	laptop := createTestRequest(t, "Laptop Replacement", "Dana needs hardware")
	require.NoError(t, repo.Save(ctx, laptop))
	billing := createTestRequest(t, "Billing dispute", "Refund the LAPTOP charge")
	require.NoError(t, repo.Save(ctx, billing))
	unrelated := createTestRequest(t, "Office move", "")
	require.NoError(t, repo.Save(ctx, unrelated))

	t.Run("matches name and description case-insensitively", func(t *testing.T) {
		requests, err := repo.Search(ctx, "laptop")
		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, laptop.ID(), requests[0].ID())
		assert.Equal(t, billing.ID(), requests[1].ID())
	})

	t.Run("no match returns empty", func(t *testing.T) {
		requests, err := repo.Search(ctx, "printer")
		require.NoError(t, err)
		assert.Empty(t, requests)
	})
}

func TestRequestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	req := createTestRequest(t, "Doomed", "")
	require.NoError(t, repo.Save(ctx, req))
	item, err := req.AttachItem(channel.Gmail, "msg-001", "")
	require.NoError(t, err)
	require.NoError(t, repo.SaveItem(ctx, item))

	t.Run("removes request and items together", func(t *testing.T) {
		existed, err := repo.Delete(ctx, req.ID())
		require.NoError(t, err)
		assert.True(t, existed)

		found, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("deleting again reports not found", func(t *testing.T) {
		existed, err := repo.Delete(ctx, req.ID())
		require.NoError(t, err)
		assert.False(t, existed)
	})
}
