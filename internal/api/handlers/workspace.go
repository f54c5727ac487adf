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

// WorkspaceHandler handles HTTP requests for workspaces
type WorkspaceHandler struct {
	service service.WorkspaceServiceInterface
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(service service.WorkspaceServiceInterface) *WorkspaceHandler {
	return &WorkspaceHandler{service: service}
}

// CreateWorkspace creates a new workspace
// @Summary Create a new workspace
// @Description Create a workspace and seed disabled association rows for every existing flag
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace body service.CreateWorkspaceRequest true "Workspace data"
// @Success 201 {object} service.WorkspaceResponse "Successfully created workspace"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Workspace already exists"
// @Router /workspaces [post]
func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	var req service.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workspace, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkspaceExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, workspace)
}

// GetWorkspace retrieves a workspace by ID
// @Summary Get workspace by ID
// @Description Get a specific workspace by its UUID
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID (UUID)"
// @Success 200 {object} service.WorkspaceResponse "Successfully retrieved workspace"
// @Failure 404 {object} map[string]interface{} "Workspace not found"
// @Router /workspaces/{id} [get]
func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	workspace, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workspace)
}

// ListWorkspaces lists workspaces
// @Summary List workspaces
// @Description Get workspaces with pagination
// @Tags workspaces
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.WorkspaceListResponse "Successfully retrieved workspaces"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /workspaces [get]
func (h *WorkspaceHandler) ListWorkspaces(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workspaces", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateWorkspace updates a workspace
// @Summary Update a workspace
// @Description Update a workspace's name, type, or region
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID (UUID)"
// @Param workspace body service.UpdateWorkspaceRequest true "Workspace data"
// @Success 200 {object} service.WorkspaceResponse "Successfully updated workspace"
// @Failure 404 {object} map[string]interface{} "Workspace not found"
// @Router /workspaces/{id} [put]
func (h *WorkspaceHandler) UpdateWorkspace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	var req service.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workspace, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workspace)
}

// DeleteWorkspace deletes a workspace
// @Summary Delete a workspace
// @Description Delete a workspace and its flag associations
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID (UUID)"
// @Success 204 "Successfully deleted workspace"
// @Failure 404 {object} map[string]interface{} "Workspace not found"
// @Router /workspaces/{id} [delete]
func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListEnabledFlags lists the flags enabled for a workspace
// @Summary List enabled flags for a workspace
// @Description Get the feature flags currently enabled for a workspace
// @Tags workspaces
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID (UUID)"
// @Success 200 {array} service.FeatureFlagResponse "Successfully retrieved flags"
// @Failure 404 {object} map[string]interface{} "Workspace not found"
// @Router /workspaces/{id}/flags [get]
func (h *WorkspaceHandler) ListEnabledFlags(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	flags, err := h.service.ListEnabledFlags(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, flags)
}
