package briefing

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"briefing/internal/application/briefing/usecases"
	"briefing/internal/domain/channel"
	"briefing/internal/shared/logger"
	"briefing/internal/shared/utils"
)

type BriefingHandler struct {
	getSummaryUC      usecases.GetSummaryExecutor
	getChannelStateUC usecases.GetChannelStateExecutor
	markBriefedUC     usecases.MarkBriefedExecutor
	checkNewUC        usecases.CheckNewExecutor
	resetChannelUC    usecases.ResetChannelExecutor
	pruneSeenUC       usecases.PruneSeenExecutor
	logger            logger.Interface
}

func NewBriefingHandler(
	getSummaryUC usecases.GetSummaryExecutor,
	getChannelStateUC usecases.GetChannelStateExecutor,
	markBriefedUC usecases.MarkBriefedExecutor,
	checkNewUC usecases.CheckNewExecutor,
	resetChannelUC usecases.ResetChannelExecutor,
	pruneSeenUC usecases.PruneSeenExecutor,
) *BriefingHandler {
	return &BriefingHandler{
		getSummaryUC:      getSummaryUC,
		getChannelStateUC: getChannelStateUC,
		markBriefedUC:     markBriefedUC,
		checkNewUC:        checkNewUC,
		resetChannelUC:    resetChannelUC,
		pruneSeenUC:       pruneSeenUC,
		logger:            logger.NewLogger(),
	}
}

// GetSummary handles GET /api/briefing/summary
func (h *BriefingHandler) GetSummary(c *gin.Context) {
	result, err := h.getSummaryUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	channels := make([]ChannelSummaryResponse, 0, len(result.Channels))
	for _, ch := range result.Channels {
		channels = append(channels, ChannelSummaryResponse{
			Channel:     ch.Channel,
			LastBriefed: ch.LastBriefed,
			IsStale:     ch.IsStale,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", SummaryResponse{Channels: channels})
}

// GetChannelState handles GET /api/briefing/state/:channel
func (h *BriefingHandler) GetChannelState(c *gin.Context) {
	query := usecases.GetChannelStateQuery{
		Channel: c.Param("channel"),
	}

	if limitStr := c.Query("seen_limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid seen_limit value")
			return
		}
		query.SeenLimit = limit
	}

	result, err := h.getChannelStateUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	seen := make([]SeenItemResponse, 0, len(result.RecentSeen))
	for _, item := range result.RecentSeen {
		seen = append(seen, SeenItemResponse{
			ItemKey:      item.ItemKey,
			VersionToken: item.VersionToken,
			BriefedAt:    item.BriefedAt,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", ChannelStateResponse{
		Channel:     result.Channel,
		LastBriefed: result.LastBriefed,
		RecentSeen:  seen,
	})
}

// MarkBriefed handles POST /api/briefing/state/:channel/mark
func (h *BriefingHandler) MarkBriefed(c *gin.Context) {
	// An empty body is a plain cursor advance with no items.
	var req MarkBriefedRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for mark briefed", "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	ch := c.Param("channel")
	result, err := h.markBriefedUC.Execute(c.Request.Context(), req.ToCommand(ch))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Gmail message IDs never change, so records past the retention
	// window only bloat the ledger. Pruning piggybacks on marks; a
	// failed prune never fails the mark.
	if ch == channel.Gmail.String() {
		if _, pruneErr := h.pruneSeenUC.Execute(c.Request.Context()); pruneErr != nil {
			h.logger.Warnw("failed to prune old seen records", "error", pruneErr)
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "Channel marked as briefed", MarkBriefedResponse{
		Channel:     result.Channel,
		LastBriefed: result.LastBriefed,
		ItemsMarked: result.ItemsMarked,
	})
}

// CheckNew handles POST /api/briefing/state/:channel/check
func (h *BriefingHandler) CheckNew(c *gin.Context) {
	var req CheckNewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for check new", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.checkNewUC.Execute(c.Request.Context(), req.ToQuery(c.Param("channel")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", CheckNewResponse{
		Channel:  result.Channel,
		NewItems: result.NewItems,
	})
}

// ResetChannel handles DELETE /api/briefing/state/:channel/reset
func (h *BriefingHandler) ResetChannel(c *gin.Context) {
	cmd := usecases.ResetChannelCommand{Channel: c.Param("channel")}

	result, err := h.resetChannelUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Channel state reset", ResetChannelResponse{
		Channel: result.Channel,
	})
}

type ChannelSummaryResponse struct {
	Channel     string     `json:"channel"`
	LastBriefed *time.Time `json:"last_briefed"`
	IsStale     bool       `json:"is_stale"`
}

type SummaryResponse struct {
	Channels []ChannelSummaryResponse `json:"channels"`
}

type SeenItemResponse struct {
	ItemKey      string    `json:"item_key"`
	VersionToken string    `json:"version_token,omitempty"`
	BriefedAt    time.Time `json:"briefed_at"`
}

type ChannelStateResponse struct {
	Channel     string             `json:"channel"`
	LastBriefed *time.Time         `json:"last_briefed"`
	RecentSeen  []SeenItemResponse `json:"recent_seen"`
}

type MarkBriefedResponse struct {
	Channel     string    `json:"channel"`
	LastBriefed time.Time `json:"last_briefed"`
	ItemsMarked int       `json:"items_marked"`
}

type CheckNewResponse struct {
	Channel  string   `json:"channel"`
	NewItems []string `json:"new_items"`
}

type ResetChannelResponse struct {
	Channel string `json:"channel"`
}
