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

// FeatureFlagHandler handles HTTP requests for feature flags
type FeatureFlagHandler struct {
	service service.FeatureFlagServiceInterface
}

// NewFeatureFlagHandler creates a new feature flag handler
func NewFeatureFlagHandler(service service.FeatureFlagServiceInterface) *FeatureFlagHandler {
	return &FeatureFlagHandler{service: service}
}

// CreateFlag creates a new feature flag
// @Summary Create a new feature flag
// @Description Create a feature flag, seed its workspace associations and apply the initial rollout
// @Tags flags
// @Accept json
// @Produce json
// @Param flag body service.CreateFeatureFlagRequest true "Flag data"
// @Success 201 {object} service.FeatureFlagResponse "Successfully created flag"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Flag already exists in team"
// @Router /flags [post]
func (h *FeatureFlagHandler) CreateFlag(c *gin.Context) {
	var req service.CreateFeatureFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flag, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrFeatureFlagExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, flag)
}

// GetFlag retrieves a feature flag by ID
// @Summary Get flag by ID
// @Description Get a specific feature flag by its UUID
// @Tags flags
// @Accept json
// @Produce json
// @Param id path string true "Flag ID (UUID)"
// @Success 200 {object} service.FeatureFlagResponse "Successfully retrieved flag"
// @Failure 404 {object} map[string]interface{} "Flag not found"
// @Router /flags/{id} [get]
func (h *FeatureFlagHandler) GetFlag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flag ID"})
		return
	}

	flag, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrFeatureFlagNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, flag)
}

// ListFlags lists feature flags
// @Summary List feature flags
// @Description Get feature flags with pagination, optionally filtered by team
// @Tags flags
// @Accept json
// @Produce json
// @Param team query string false "Filter by team"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.FeatureFlagListResponse "Successfully retrieved flags"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /flags [get]
func (h *FeatureFlagHandler) ListFlags(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	team := c.Query("team")

	resp, err := h.service.List(c.Request.Context(), team, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list flags", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SearchFlags searches feature flags by name substring
// @Summary Search feature flags
// @Description Search feature flags by name substring with pagination
// @Tags flags
// @Accept json
// @Produce json
// @Param q query string true "Name substring to search for"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.FeatureFlagListResponse "Successfully retrieved flags"
// @Failure 400 {object} map[string]interface{} "Missing query parameter"
// @Router /flags/search [get]
func (h *FeatureFlagHandler) SearchFlags(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q parameter is required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.service.Search(c.Request.Context(), query, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search flags", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateFlag updates a feature flag
// @Summary Update a feature flag
// @Description Update a feature flag and re-apply its rollout at the new percentage
// @Tags flags
// @Accept json
// @Produce json
// @Param id path string true "Flag ID (UUID)"
// @Param flag body service.UpdateFeatureFlagRequest true "Flag data"
// @Success 200 {object} service.FeatureFlagResponse "Successfully updated flag"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Flag not found"
// @Failure 409 {object} map[string]interface{} "Flag already exists in team"
// @Router /flags/{id} [put]
func (h *FeatureFlagHandler) UpdateFlag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flag ID"})
		return
	}

	var req service.UpdateFeatureFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flag, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrFeatureFlagNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrFeatureFlagExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, flag)
}

// DeleteFlag deletes a feature flag
// @Summary Delete a feature flag
// @Description Delete a feature flag and its workspace associations
// @Tags flags
// @Accept json
// @Produce json
// @Param id path string true "Flag ID (UUID)"
// @Param changed_by query string false "Identifier of the caller for the audit trail"
// @Success 204 "Successfully deleted flag"
// @Failure 404 {object} map[string]interface{} "Flag not found"
// @Router /flags/{id} [delete]
func (h *FeatureFlagHandler) DeleteFlag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flag ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, c.Query("changed_by")); err != nil {
		if errors.Is(err, apperrors.ErrFeatureFlagNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetWorkspaces force-sets a flag for specific workspaces
// @Summary Force-set a flag for specific workspaces
// @Description Force-enable or force-disable a flag for an explicit list of workspaces, independent of percentage bucketing
// @Tags flags
// @Accept json
// @Produce json
// @Param id path string true "Flag ID (UUID)"
// @Param request body service.SetWorkspacesRequest true "Workspace ids and target state"
// @Success 204 "Successfully updated workspaces"
// @Failure 400 {object} map[string]interface{} "No associations found"
// @Failure 404 {object} map[string]interface{} "Flag or workspace not found"
// @Router /flags/{id}/workspaces [put]
func (h *FeatureFlagHandler) SetWorkspaces(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flag ID"})
		return
	}

	var req service.SetWorkspacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SetWorkspaces(c.Request.Context(), id, &req); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListEnabledWorkspaces lists the workspaces a flag is enabled for
// @Summary List enabled workspaces for a flag
// @Description Get the workspaces a flag is currently enabled for, with pagination
// @Tags flags
// @Accept json
// @Produce json
// @Param id path string true "Flag ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.EnabledWorkspacesResponse "Successfully retrieved workspaces"
// @Failure 404 {object} map[string]interface{} "Flag not found"
// @Router /flags/{id}/workspaces [get]
func (h *FeatureFlagHandler) ListEnabledWorkspaces(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flag ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.service.ListEnabledWorkspaces(c.Request.Context(), id, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrFeatureFlagNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CountEnabledByRegion aggregates enabled workspaces per region
// @Summary Count enabled workspaces per region
// @Description Get the number of workspaces a flag is enabled for, grouped by region
// @Tags flags
// @Accept json
// @Produce json
// @Param id path string true "Flag ID (UUID)"
// @Success 200 {object} service.RegionCountsResponse "Successfully retrieved counts"
// @Failure 404 {object} map[string]interface{} "Flag not found"
// @Router /flags/{id}/regions/counts [get]
func (h *FeatureFlagHandler) CountEnabledByRegion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flag ID"})
		return
	}

	resp, err := h.service.CountEnabledByRegion(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrFeatureFlagNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
