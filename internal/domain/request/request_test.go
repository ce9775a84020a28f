package request

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing/internal/domain/channel"
	vo "briefing/internal/domain/request/valueobjects"
)

func TestNewRequest(t *testing.T) {
	tests := []struct {
		name        string
		reqName     string
		description string
		priority    vo.Priority
		wantErr     bool
	}{
		{name: "valid", reqName: "Scanner setup", description: "help Ben with scanner", priority: vo.PriorityNormal},
		{name: "no description", reqName: "Quick ask", priority: vo.PriorityLow},
		{name: "missing name", reqName: "", priority: vo.PriorityNormal, wantErr: true},
		{name: "name too long", reqName: strings.Repeat("x", 201), priority: vo.PriorityNormal, wantErr: true},
		{name: "invalid priority", reqName: "ok", priority: vo.Priority("urgent"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRequest(tt.reqName, tt.description, tt.priority)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusOpen, r.Status())
			assert.Nil(t, r.ClosedAt())
			assert.Equal(t, 1, r.Version())
			assert.Empty(t, r.Items())
		})
	}
}

func TestRequest_ChangeStatus(t *testing.T) {
	t.Run("close sets closed_at", func(t *testing.T) {
		r, err := NewRequest("req", "", vo.PriorityNormal)
		require.NoError(t, err)

		changed, err := r.ChangeStatus(vo.StatusClosed)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, r.Status().IsClosed())
		require.NotNil(t, r.ClosedAt())
	})

	t.Run("reopen clears closed_at", func(t *testing.T) {
		r, err := NewRequest("req", "", vo.PriorityNormal)
		require.NoError(t, err)

		_, err = r.ChangeStatus(vo.StatusClosed)
		require.NoError(t, err)

		changed, err := r.ChangeStatus(vo.StatusOpen)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Nil(t, r.ClosedAt())
	})

	t.Run("same status is idempotent no-op", func(t *testing.T) {
		r, err := NewRequest("req", "", vo.PriorityNormal)
		require.NoError(t, err)

		changed, err := r.ChangeStatus(vo.StatusOpen)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 1, r.Version())
	})

	t.Run("open pending transitions keep closed_at nil", func(t *testing.T) {
		r, err := NewRequest("req", "", vo.PriorityNormal)
		require.NoError(t, err)

		changed, err := r.ChangeStatus(vo.StatusPending)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Nil(t, r.ClosedAt())
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		r, err := NewRequest("req", "", vo.PriorityNormal)
		require.NoError(t, err)

		_, err = r.ChangeStatus(vo.Status("solved"))
		assert.Error(t, err)
	})
}

func TestRequest_AttachItem(t *testing.T) {
	r, err := NewRequest("req", "", vo.PriorityNormal)
	require.NoError(t, err)

	item, err := r.AttachItem(channel.Gmail, "m1", "thread with Ben")
	require.NoError(t, err)
	assert.Equal(t, channel.Gmail, item.Channel())
	assert.Len(t, r.Items(), 1)

	// Same (channel, item) twice is a no-op
	again, err := r.AttachItem(channel.Gmail, "m1", "different label")
	require.NoError(t, err)
	assert.Same(t, item, again)
	assert.Len(t, r.Items(), 1)

	// Same item id in a different channel is a distinct link
	_, err = r.AttachItem(channel.Zendesk, "m1", "")
	require.NoError(t, err)
	assert.Len(t, r.Items(), 2)

	_, err = r.AttachItem(channel.Channel("slack"), "x", "")
	assert.Error(t, err)

	_, err = r.AttachItem(channel.Gmail, "", "")
	assert.Error(t, err)
}

func TestRequest_Matches(t *testing.T) {
	r, err := NewRequest("Scanner setup", "help Ben with the MX-500", vo.PriorityNormal)
	require.NoError(t, err)

	assert.True(t, r.Matches("scanner"))
	assert.True(t, r.Matches("SCANNER"))
	assert.True(t, r.Matches("mx-500"))
	assert.True(t, r.Matches(""))
	assert.False(t, r.Matches("printer"))
}

func TestReconstructRequest(t *testing.T) {
	now := time.Now().UTC()

	t.Run("closed_at consistency enforced", func(t *testing.T) {
		_, err := ReconstructRequest(1, "req", "", vo.StatusClosed, vo.PriorityNormal, 1, now, now, nil)
		assert.Error(t, err)

		_, err = ReconstructRequest(1, "req", "", vo.StatusOpen, vo.PriorityNormal, 1, now, now, &now)
		assert.Error(t, err)

		_, err = ReconstructRequest(1, "req", "", vo.StatusClosed, vo.PriorityNormal, 1, now, now, &now)
		assert.NoError(t, err)
	})

	t.Run("zero id rejected", func(t *testing.T) {
		_, err := ReconstructRequest(0, "req", "", vo.StatusOpen, vo.PriorityNormal, 1, now, now, nil)
		assert.Error(t, err)
	})
}
