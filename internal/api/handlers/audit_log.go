package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "feature-flag-backend/internal/errors"
	"feature-flag-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLogHandler handles HTTP requests for the audit trail
type AuditLogHandler struct {
	service service.AuditLogServiceInterface
}

// NewAuditLogHandler creates a new audit log handler
func NewAuditLogHandler(service service.AuditLogServiceInterface) *AuditLogHandler {
	return &AuditLogHandler{service: service}
}

// ListAuditLogs lists audit entries
// @Summary List audit log entries
// @Description Get audit entries newest-first, filterable by flag id, team, or operation
// @Tags audit-logs
// @Accept json
// @Produce json
// @Param flag_id query string false "Filter by flag ID (UUID)"
// @Param team query string false "Filter by team"
// @Param operation query string false "Filter by operation (CREATE, UPDATE, DELETE)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AuditLogListResponse "Successfully retrieved entries"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Router /audit-logs [get]
func (h *AuditLogHandler) ListAuditLogs(c *gin.Context) {
	query := &service.AuditLogQuery{
		Team:      c.Query("team"),
		Operation: c.Query("operation"),
	}

	if raw := c.Query("flag_id"); raw != "" {
		flagID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flag ID"})
			return
		}
		query.FeatureFlagID = &flagID
	}

	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidAuditOperation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit entries", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
