package followup

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"briefing/internal/application/followup/usecases"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
	"briefing/internal/shared/utils"
)

type FollowUpHandler struct {
	addFollowUpUC     usecases.AddFollowUpExecutor
	listFollowUpsUC   usecases.ListFollowUpsExecutor
	resolveFollowUpUC usecases.ResolveFollowUpExecutor
	logger            logger.Interface
}

func NewFollowUpHandler(
	addFollowUpUC usecases.AddFollowUpExecutor,
	listFollowUpsUC usecases.ListFollowUpsExecutor,
	resolveFollowUpUC usecases.ResolveFollowUpExecutor,
) *FollowUpHandler {
	return &FollowUpHandler{
		addFollowUpUC:     addFollowUpUC,
		listFollowUpsUC:   listFollowUpsUC,
		resolveFollowUpUC: resolveFollowUpUC,
		logger:            logger.NewLogger(),
	}
}

// AddFollowUp handles POST /api/briefing/followups
func (h *FollowUpHandler) AddFollowUp(c *gin.Context) {
	var req AddFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add follow-up", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addFollowUpUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":         result.FollowUpID,
		"created_at": result.CreatedAt,
	}, "Follow-up recorded")
}

// ListFollowUps handles GET /api/briefing/followups
func (h *FollowUpHandler) ListFollowUps(c *gin.Context) {
	query := usecases.ListFollowUpsQuery{
		IncludeResolved: c.Query("include_resolved") == "true",
	}

	result, err := h.listFollowUpsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	followUps := make([]FollowUpResponse, 0, len(result.FollowUps))
	for _, f := range result.FollowUps {
		followUps = append(followUps, FollowUpResponse{
			ID:         f.ID,
			Person:     f.Person,
			Summary:    f.Summary,
			SourceLink: f.SourceLink,
			CreatedAt:  f.CreatedAt,
			ResolvedAt: f.ResolvedAt,
			AgeDays:    f.AgeDays,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", ListFollowUpsResponse{FollowUps: followUps})
}

// ResolveFollowUp handles POST /api/briefing/followups/:id/resolve
func (h *FollowUpHandler) ResolveFollowUp(c *gin.Context) {
	followUpID, err := parseFollowUpID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ResolveFollowUpCommand{FollowUpID: followUpID}

	result, err := h.resolveFollowUpUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Follow-up resolved", gin.H{
		"id":          result.FollowUpID,
		"resolved_at": result.ResolvedAt,
	})
}

func parseFollowUpID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid follow-up ID")
	}
	return uint(id), nil
}
