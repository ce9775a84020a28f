package briefing

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"briefing/internal/application/briefing/usecases"
	"briefing/internal/shared/logger"
	"briefing/internal/shared/utils"
)

// PrefsHandler serves the user preference store and the free-form
// briefing memory blob.
type PrefsHandler struct {
	getPrefsUC   usecases.GetPrefsExecutor
	setPrefUC    usecases.SetPrefExecutor
	deletePrefUC usecases.DeletePrefExecutor
	getMemoryUC  usecases.GetMemoryExecutor
	setMemoryUC  usecases.SetMemoryExecutor
	logger       logger.Interface
}

func NewPrefsHandler(
	getPrefsUC usecases.GetPrefsExecutor,
	setPrefUC usecases.SetPrefExecutor,
	deletePrefUC usecases.DeletePrefExecutor,
	getMemoryUC usecases.GetMemoryExecutor,
	setMemoryUC usecases.SetMemoryExecutor,
) *PrefsHandler {
	return &PrefsHandler{
		getPrefsUC:   getPrefsUC,
		setPrefUC:    setPrefUC,
		deletePrefUC: deletePrefUC,
		getMemoryUC:  getMemoryUC,
		setMemoryUC:  setMemoryUC,
		logger:       logger.NewLogger(),
	}
}

// GetPrefs handles GET /api/briefing/prefs
func (h *PrefsHandler) GetPrefs(c *gin.Context) {
	result, err := h.getPrefsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	prefs := make([]PrefResponse, 0, len(result.Prefs))
	for _, pref := range result.Prefs {
		prefs = append(prefs, PrefResponse{
			Key:       pref.Key,
			Value:     pref.Value,
			UpdatedAt: pref.UpdatedAt,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", PrefsResponse{Prefs: prefs})
}

// SetPref handles POST /api/briefing/prefs
func (h *PrefsHandler) SetPref(c *gin.Context) {
	var req SetPrefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set pref", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.setPrefUC.Execute(c.Request.Context(), req.ToCommand()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Preference saved", gin.H{
		"key":   req.Key,
		"value": req.Value,
	})
}

// DeletePref handles DELETE /api/briefing/prefs/:key
func (h *PrefsHandler) DeletePref(c *gin.Context) {
	cmd := usecases.DeletePrefCommand{Key: c.Param("key")}

	result, err := h.deletePrefUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Preference deleted", gin.H{
		"key":     cmd.Key,
		"deleted": result.Deleted,
	})
}

// GetMemory handles GET /api/briefing/memory
func (h *PrefsHandler) GetMemory(c *gin.Context) {
	result, err := h.getMemoryUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", MemoryResponse{
		Content:   result.Content,
		UpdatedAt: result.UpdatedAt,
	})
}

// SetMemory handles PUT /api/briefing/memory
func (h *PrefsHandler) SetMemory(c *gin.Context) {
	var req SetMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set memory", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.setMemoryUC.Execute(c.Request.Context(), req.ToCommand()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Memory updated", nil)
}

type PrefResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PrefsResponse struct {
	Prefs []PrefResponse `json:"prefs"`
}

type MemoryResponse struct {
	Content   string     `json:"content"`
	UpdatedAt *time.Time `json:"updated_at"`
}
