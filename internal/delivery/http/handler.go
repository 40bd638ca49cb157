package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/poetis/backend/internal/domain"
)

// ScanUsecase is the application surface the handlers drive
type ScanUsecase interface {
	Scan(ctx context.Context, request *domain.ScanRequest) (*domain.ScanResult, error)
	RecipeStatus(ctx context.Context, container string, maxSets int, allowIdentified *bool) (*domain.RecipeStatus, error)
	History(ctx context.Context, limit int) ([]domain.ScanSummary, error)
	Filters() (*domain.FilterConfig, error)
	ReloadFilters() (*domain.FilterConfig, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scans ScanUsecase
}

// NewHandler creates a new HTTP handler
func NewHandler(scans ScanUsecase) *Handler {
	return &Handler{scans: scans}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "poetis-backend",
		"version": "1.0.0",
	})
}

// Scan handles POST /api/v1/scans
func (h *Handler) Scan(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var request domain.ScanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	result, err := h.scans.Scan(c.Request.Context(), &request)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListScans handles GET /api/v1/scans?limit=
func (h *Handler) ListScans(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		h.respondError(c, err)
		return
	}

	summaries, err := h.scans.History(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scans": summaries})
}

// RecipeCounters handles GET /api/v1/recipe/counters?container=&maxSets=&allowIdentified=
func (h *Handler) RecipeCounters(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	maxSets, err := queryInt(c, "maxSets", 0)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var allowIdentified *bool
	if raw := c.Query("allowIdentified"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.respondError(c, fmt.Errorf("%w: allowIdentified must be a boolean", domain.ErrInvalidRequest))
			return
		}
		allowIdentified = &v
	}

	status, err := h.scans.RecipeStatus(c.Request.Context(), c.Query("container"), maxSets, allowIdentified)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetFilters handles GET /api/v1/filters
func (h *Handler) GetFilters(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	cfg, err := h.scans.Filters()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// ReloadFilters handles POST /api/v1/filters/reload
func (h *Handler) ReloadFilters(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	cfg, err := h.scans.ReloadFilters()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reloaded": true, "mods": cfg.ModCount()})
}

func (h *Handler) ready(c *gin.Context) bool {
	if h.scans == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "scan service not configured"})
		return false
	}
	return true
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("[HTTP] request failed")
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrStashNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidFilterConfiguration):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrInventoryFetch):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrHistoryUnavailable):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidRequest, key)
	}
	return v, nil
}
