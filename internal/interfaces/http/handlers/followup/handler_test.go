package followup

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing/internal/application/followup/usecases"
	"briefing/internal/interfaces/http/handlers/testutil"
	"briefing/internal/shared/errors"
)

type mockAddFollowUpUC struct {
	result *usecases.AddFollowUpResult
	err    error
}

func (m *mockAddFollowUpUC) Execute(_ context.Context, _ usecases.AddFollowUpCommand) (*usecases.AddFollowUpResult, error) {
	return m.result, m.err
}

type mockListFollowUpsUC struct {
	result    *usecases.ListFollowUpsResult
	err       error
	lastQuery usecases.ListFollowUpsQuery
}

func (m *mockListFollowUpsUC) Execute(_ context.Context, query usecases.ListFollowUpsQuery) (*usecases.ListFollowUpsResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockResolveFollowUpUC struct {
	result *usecases.ResolveFollowUpResult
	err    error
}

func (m *mockResolveFollowUpUC) Execute(_ context.Context, _ usecases.ResolveFollowUpCommand) (*usecases.ResolveFollowUpResult, error) {
	return m.result, m.err
}

func newTestFollowUpHandler(add usecases.AddFollowUpExecutor, list usecases.ListFollowUpsExecutor, resolve usecases.ResolveFollowUpExecutor) *FollowUpHandler {
	return NewFollowUpHandler(add, list, resolve)
}

func TestFollowUpHandler_AddFollowUp_Success(t *testing.T) {
	mockUC := &mockAddFollowUpUC{
		result: &usecases.AddFollowUpResult{FollowUpID: 5, CreatedAt: time.Now().UTC()},
	}
	handler := newTestFollowUpHandler(mockUC, nil, nil)

	reqBody := AddFollowUpRequest{
		Person:  "dana",
		Summary: "waiting on contract draft",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/briefing/followups", reqBody)

	handler.AddFollowUp(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestFollowUpHandler_AddFollowUp_BindError(t *testing.T) {
	handler := newTestFollowUpHandler(&mockAddFollowUpUC{}, nil, nil)

	// Missing required summary
	reqBody := map[string]string{"person": "dana"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/briefing/followups", reqBody)

	handler.AddFollowUp(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFollowUpHandler_ListFollowUps_IncludeResolved(t *testing.T) {
	resolved := time.Now().UTC()
	mockUC := &mockListFollowUpsUC{
		result: &usecases.ListFollowUpsResult{
			FollowUps: []usecases.FollowUpEntry{
				{ID: 1, Person: "dana", Summary: "contract", CreatedAt: time.Now().UTC().Add(-72 * time.Hour), AgeDays: 3},
				{ID: 2, Person: "sam", Summary: "invoice", CreatedAt: time.Now().UTC(), ResolvedAt: &resolved},
			},
		},
	}
	handler := newTestFollowUpHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/briefing/followups", nil)
	testutil.SetQueryParams(c, map[string]string{"include_resolved": "true"})

	handler.ListFollowUps(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.lastQuery.IncludeResolved)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data ListFollowUpsResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.FollowUps, 2)
	assert.Equal(t, 3, data.FollowUps[0].AgeDays)
	assert.NotNil(t, data.FollowUps[1].ResolvedAt)
}

func TestFollowUpHandler_ResolveFollowUp_Success(t *testing.T) {
	mockUC := &mockResolveFollowUpUC{
		result: &usecases.ResolveFollowUpResult{FollowUpID: 7, ResolvedAt: time.Now().UTC()},
	}
	handler := newTestFollowUpHandler(nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/briefing/followups/7/resolve", nil)
	testutil.SetURLParam(c, "id", "7")

	handler.ResolveFollowUp(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFollowUpHandler_ResolveFollowUp_InvalidID(t *testing.T) {
	handler := newTestFollowUpHandler(nil, nil, &mockResolveFollowUpUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/briefing/followups/abc/resolve", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.ResolveFollowUp(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFollowUpHandler_ResolveFollowUp_NotFound(t *testing.T) {
	mockUC := &mockResolveFollowUpUC{
		err: errors.NewNotFoundError("follow-up not found"),
	}
	handler := newTestFollowUpHandler(nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/briefing/followups/99/resolve", nil)
	testutil.SetURLParam(c, "id", "99")

	handler.ResolveFollowUp(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
