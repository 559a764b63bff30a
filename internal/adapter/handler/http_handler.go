package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rl1809/epc-inventory/internal/core/domain"
	"github.com/rl1809/epc-inventory/internal/core/service"
	"github.com/rl1809/epc-inventory/internal/port"
)

// HTTPHandler is the REST surface the mobile client talks to.
type HTTPHandler struct {
	assets   *service.AssetService
	sessions *service.SessionService
	logger   *zap.Logger
}

func NewHTTPHandler(assets *service.AssetService, sessions *service.SessionService, logger *zap.Logger) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{assets: assets, sessions: sessions, logger: logger}
}

type registerAssetRequest struct {
	AssetType string   `json:"asset_type"`
	Name      string   `json:"name"`
	EPCs      []string `json:"epcs"`
}

type assetResponse struct {
	ID        string `json:"id"`
	AssetType string `json:"asset_type"`
	Name      string `json:"name"`
}

type createTaskRequest struct {
	Name string `json:"name"`
}

type openSessionRequest struct {
	TaskID  string `json:"task_id"`
	AssetID string `json:"asset_id"`
}

type openSessionResponse struct {
	SessionID     string `json:"session_id"`
	TaskID        string `json:"task_id"`
	AssetID       string `json:"asset_id"`
	ExpectedCount int    `json:"expected_count"`
}

type scanBatchRequest struct {
	EPCs []string `json:"epcs"`
}

type scanRecordResponse struct {
	EPC       string         `json:"epc"`
	Status    string         `json:"status"`
	Asset     *assetResponse `json:"asset,omitempty"`
	ScannedAt time.Time      `json:"scanned_at"`
}

type partitionResponse struct {
	Valid   []scanRecordResponse `json:"valid"`
	Surplus []scanRecordResponse `json:"surplus"`
	Error   []scanRecordResponse `json:"error"`
}

type sessionStateResponse struct {
	SessionID     string            `json:"session_id"`
	ExpectedCount int               `json:"expected_count"`
	Buckets       partitionResponse `json:"buckets"`
}

type confirmResponse struct {
	TaskID         string `json:"task_id"`
	AssetID        string `json:"asset_id"`
	ConfirmedCount int    `json:"confirmed_count"`
	ExpectedCount  int    `json:"expected_count"`
}

// RegisterAsset declares a new asset with its EPC tag list.
func (h *HTTPHandler) RegisterAsset(c *gin.Context) {
	var req registerAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	asset, err := h.assets.RegisterAsset(c.Request.Context(), req.AssetType, req.Name, req.EPCs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyName),
			errors.Is(err, service.ErrNoEPCs),
			errors.Is(err, service.ErrEmptyEPC):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, port.ErrDuplicateEPC):
			c.JSON(http.StatusConflict, gin.H{"error": "epc already registered to another asset"})
		default:
			h.logger.Error("failed registering asset", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, toAssetResponse(&asset))
}

// LookupAsset resolves a scanned EPC or barcode to the asset it is
// registered to.
func (h *HTTPHandler) LookupAsset(c *gin.Context) {
	epc := c.Query("epc")

	asset, err := h.assets.LookupAsset(c.Request.Context(), epc)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyEPC):
			c.JSON(http.StatusBadRequest, gin.H{"error": "epc query parameter required"})
		case errors.Is(err, service.ErrAssetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no asset registered for epc"})
		default:
			h.logger.Error("failed looking up asset", zap.String("epc", epc), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, toAssetResponse(asset))
}

// CreateTask opens a new inventory-count task.
func (h *HTTPHandler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.assets.CreateTask(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed creating task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     task.ID,
		"name":   task.Name,
		"status": string(task.Status),
	})
}

// CloseTask marks a task finished; open sessions keep running, new
// ones are refused.
func (h *HTTPHandler) CloseTask(c *gin.Context) {
	task, err := h.assets.CloseTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		h.logger.Error("failed closing task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     task.ID,
		"name":   task.Name,
		"status": string(task.Status),
	})
}

// OpenSession starts a scan session for counting one asset in a task.
func (h *HTTPHandler) OpenSession(c *gin.Context) {
	var req openSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.TaskID == "" || req.AssetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task_id and asset_id required"})
		return
	}

	sess, err := h.sessions.Open(c.Request.Context(), req.TaskID, req.AssetID)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		if errors.Is(err, service.ErrTaskClosed) {
			c.JSON(http.StatusConflict, gin.H{"error": "task is closed"})
			return
		}
		h.logger.Error("failed opening session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, openSessionResponse{
		SessionID:     sess.ID,
		TaskID:        sess.TaskID,
		AssetID:       sess.AssetID,
		ExpectedCount: sess.ExpectedCount,
	})
}

// GetSession returns the session's records bucketed for display, plus
// the expected count the screen shows progress against.
func (h *HTTPHandler) GetSession(c *gin.Context) {
	state, err := h.sessions.State(c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionStateResponse{
		SessionID:     state.SessionID,
		ExpectedCount: state.ExpectedCount,
		Buckets: partitionResponse{
			Valid:   toRecordResponses(state.Buckets.Valid),
			Surplus: toRecordResponses(state.Buckets.Surplus),
			Error:   toRecordResponses(state.Buckets.Error),
		},
	})
}

// AppendScans ingests a batch of freshly read EPCs.
func (h *HTTPHandler) AppendScans(c *gin.Context) {
	sessionID := c.Param("id")

	var req scanBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	added, err := h.sessions.Append(c.Request.Context(), sessionID, req.EPCs)
	if err != nil {
		if errors.Is(err, service.ErrEmptyEPC) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": toRecordResponses(added)})
}

// RemoveScan deletes one invalid record so the tag can be re-scanned.
func (h *HTTPHandler) RemoveScan(c *gin.Context) {
	sessionID := c.Param("id")
	epc := c.Param("epc")

	if err := h.sessions.Remove(sessionID, epc); err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		case errors.Is(err, service.ErrRemoveValid):
			c.JSON(http.StatusConflict, gin.H{"error": "valid records cannot be removed"})
		default:
			h.sessionError(c, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ConfirmSession closes the session and hands the valid count off for
// persistence.
func (h *HTTPHandler) ConfirmSession(c *gin.Context) {
	sessionID := c.Param("id")

	count, err := h.sessions.Confirm(sessionID)
	if err != nil {
		h.sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, confirmResponse{
		TaskID:         count.TaskID,
		AssetID:        count.AssetID,
		ConfirmedCount: count.ConfirmedCount,
		ExpectedCount:  count.ExpectedCount,
	})
}

// DiscardSession drops a session without confirming anything.
func (h *HTTPHandler) DiscardSession(c *gin.Context) {
	h.sessions.Discard(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrSessionConfirmed):
		c.JSON(http.StatusConflict, gin.H{"error": "session already confirmed"})
	default:
		h.logger.Error("session operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func toAssetResponse(asset *domain.Asset) *assetResponse {
	if asset == nil {
		return nil
	}
	return &assetResponse{ID: asset.ID, AssetType: asset.AssetType, Name: asset.Name}
}

func toRecordResponses(records []domain.ScanRecord) []scanRecordResponse {
	out := make([]scanRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, scanRecordResponse{
			EPC:       rec.EPC,
			Status:    string(rec.Status),
			Asset:     toAssetResponse(rec.Asset),
			ScannedAt: rec.ScannedAt,
		})
	}
	return out
}
