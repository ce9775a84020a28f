package request

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"briefing/internal/application/request/usecases"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
	"briefing/internal/shared/utils"
)

type RequestHandler struct {
	createRequestUC        usecases.CreateRequestExecutor
	getRequestUC           usecases.GetRequestExecutor
	linkItemUC             usecases.LinkItemExecutor
	listRequestsUC         usecases.ListRequestsExecutor
	searchRequestsUC       usecases.SearchRequestsExecutor
	setStatusUC            usecases.SetStatusExecutor
	reconcileUC            usecases.ReconcileExecutor
	approveZendeskUpdateUC usecases.ApproveZendeskUpdateExecutor
	deleteRequestUC        usecases.DeleteRequestExecutor
	logger                 logger.Interface
}

func NewRequestHandler(
	createRequestUC usecases.CreateRequestExecutor,
	getRequestUC usecases.GetRequestExecutor,
	linkItemUC usecases.LinkItemExecutor,
	listRequestsUC usecases.ListRequestsExecutor,
	searchRequestsUC usecases.SearchRequestsExecutor,
	setStatusUC usecases.SetStatusExecutor,
	reconcileUC usecases.ReconcileExecutor,
	approveZendeskUpdateUC usecases.ApproveZendeskUpdateExecutor,
	deleteRequestUC usecases.DeleteRequestExecutor,
) *RequestHandler {
	return &RequestHandler{
		createRequestUC:        createRequestUC,
		getRequestUC:           getRequestUC,
		linkItemUC:             linkItemUC,
		listRequestsUC:         listRequestsUC,
		searchRequestsUC:       searchRequestsUC,
		setStatusUC:            setStatusUC,
		reconcileUC:            reconcileUC,
		approveZendeskUpdateUC: approveZendeskUpdateUC,
		deleteRequestUC:        deleteRequestUC,
		logger:                 logger.NewLogger(),
	}
}

// CreateRequest handles POST /api/briefing/requests
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createRequestUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":         result.RequestID,
		"status":     result.Status,
		"priority":   result.Priority,
		"created_at": result.CreatedAt,
	}, "Request created")
}

// GetRequest handles GET /api/briefing/requests/:id
func (h *RequestHandler) GetRequest(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	entry, err := h.getRequestUC.Execute(c.Request.Context(), usecases.GetRequestQuery{RequestID: requestID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toRequestResponse(*entry))
}

// ListRequests handles GET /api/briefing/requests
func (h *RequestHandler) ListRequests(c *gin.Context) {
	query := usecases.ListRequestsQuery{
		Status: c.Query("status"),
	}

	result, err := h.listRequestsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ListRequestsResponse{
		Requests: toRequestResponses(result.Requests),
	})
}

// SearchRequests handles GET /api/briefing/requests/search
func (h *RequestHandler) SearchRequests(c *gin.Context) {
	query := usecases.SearchRequestsQuery{
		Text: c.Query("q"),
	}

	result, err := h.searchRequestsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ListRequestsResponse{
		Requests: toRequestResponses(result.Requests),
	})
}

// LinkItem handles POST /api/briefing/requests/:id/items
func (h *RequestHandler) LinkItem(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req LinkItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for link item", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.linkItemUC.Execute(c.Request.Context(), req.ToCommand(requestID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	data := gin.H{
		"request_id":     result.RequestID,
		"item_id":        result.ItemID,
		"already_linked": result.AlreadyLinked,
	}
	if result.AlreadyLinked {
		utils.SuccessResponse(c, http.StatusOK, "Item already linked", data)
		return
	}
	utils.CreatedResponse(c, data, "Item linked")
}

// SetStatus handles PATCH /api/briefing/requests/:id/status
func (h *RequestHandler) SetStatus(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SetStatusCommand{
		RequestID: requestID,
		Status:    req.Status,
	}

	result, err := h.setStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request status updated", SetStatusResponse{
		ID:             result.RequestID,
		Status:         result.Status,
		Changed:        result.Changed,
		ClosedAt:       result.ClosedAt,
		Reconciliation: result.Reconciliation,
	})
}

// Reconcile handles POST /api/briefing/requests/:id/reconcile
func (h *RequestHandler) Reconcile(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reconcileUC.Execute(c.Request.Context(), usecases.ReconcileCommand{RequestID: requestID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ReconcileResponse{
		ID:             result.RequestID,
		Status:         result.Status,
		Reconciliation: result.Reconciliation,
	})
}

// ApproveZendeskUpdate handles POST /api/briefing/requests/:id/zendesk/approve
func (h *RequestHandler) ApproveZendeskUpdate(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ApproveZendeskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for approve zendesk update", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ApproveZendeskUpdateCommand{
		RequestID: requestID,
		TicketID:  req.TicketID,
		Status:    req.Status,
	}

	result, err := h.approveZendeskUpdateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status pushed", gin.H{
		"request_id": result.RequestID,
		"ticket_id":  result.TicketID,
		"applied":    result.Applied,
	})
}

// DeleteRequest handles DELETE /api/briefing/requests/:id
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteRequestUC.Execute(c.Request.Context(), usecases.DeleteRequestCommand{RequestID: requestID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request deleted", gin.H{
		"id": result.RequestID,
	})
}

func parseRequestID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid request ID")
	}
	return uint(id), nil
}
