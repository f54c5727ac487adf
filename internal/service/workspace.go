package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feature-flag-backend/internal/database/models"
	apperrors "feature-flag-backend/internal/errors"
	"feature-flag-backend/internal/logger"
	"feature-flag-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkspaceService handles business logic for workspaces. Creating a workspace
// also seeds a disabled association row per existing flag, which is how rows
// come to exist for the rollout engine to flip later.
type WorkspaceService struct {
	workspaces   repository.WorkspaceRepositoryInterface
	flags        repository.FeatureFlagRepositoryInterface
	associations repository.AssociationRepositoryInterface
	tx           repository.TransactionManagerInterface
	validator    *validator.Validate
}

// Ensure WorkspaceService implements WorkspaceServiceInterface
var _ WorkspaceServiceInterface = (*WorkspaceService)(nil)

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(
	workspaces repository.WorkspaceRepositoryInterface,
	flags repository.FeatureFlagRepositoryInterface,
	associations repository.AssociationRepositoryInterface,
	tx repository.TransactionManagerInterface,
	validator *validator.Validate,
) *WorkspaceService {
	return &WorkspaceService{
		workspaces:   workspaces,
		flags:        flags,
		associations: associations,
		tx:           tx,
		validator:    validator,
	}
}

// CreateWorkspaceRequest represents the request to create a workspace
type CreateWorkspaceRequest struct {
	Name   string  `json:"name" validate:"required,min=1,max=100"`
	Type   string  `json:"type" validate:"max=50"`
	Region *string `json:"region,omitempty" validate:"omitempty,min=1,max=20"`
}

// UpdateWorkspaceRequest represents the request to update a workspace
type UpdateWorkspaceRequest struct {
	Name   string  `json:"name" validate:"required,min=1,max=100"`
	Type   string  `json:"type" validate:"max=50"`
	Region *string `json:"region,omitempty" validate:"omitempty,min=1,max=20"`
}

// WorkspaceResponse represents the response for workspace operations
type WorkspaceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Region    *string   `json:"region,omitempty"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// WorkspaceListResponse represents a paginated list of workspaces
type WorkspaceListResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Create creates a new workspace and seeds a disabled association row for
// every existing flag in the same transaction
func (s *WorkspaceService) Create(ctx context.Context, req *CreateWorkspaceRequest) (*WorkspaceResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	log := logger.WithContext(ctx).WithField("name", req.Name)
	log.Info("Creating workspace")

	var workspace *models.Workspace
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.workspaces.GetByName(ctx, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing workspace by name: %w", err)
		}
		if existing != nil {
			return apperrors.ErrWorkspaceExists
		}

		workspace = &models.Workspace{
			Name:   req.Name,
			Type:   req.Type,
			Region: req.Region,
		}
		if err := s.workspaces.Create(ctx, workspace); err != nil {
			return fmt.Errorf("failed to create workspace: %w", err)
		}

		flagIDs, err := s.flags.GetAllIDs(ctx)
		if err != nil {
			return fmt.Errorf("failed to list flags: %w", err)
		}
		if len(flagIDs) > 0 {
			associations := make([]models.WorkspaceFeatureFlagAssociation, len(flagIDs))
			for i, flagID := range flagIDs {
				associations[i] = models.WorkspaceFeatureFlagAssociation{
					FeatureFlagID: flagID,
					WorkspaceID:   workspace.ID,
				}
			}
			if err := s.associations.CreateBatch(ctx, associations); err != nil {
				return fmt.Errorf("failed to seed associations: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toWorkspaceResponse(workspace)
	return &resp, nil
}

// GetByID retrieves a workspace by ID
func (s *WorkspaceService) GetByID(ctx context.Context, id uuid.UUID) (*WorkspaceResponse, error) {
	workspace, err := s.workspaces.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	resp := toWorkspaceResponse(workspace)
	return &resp, nil
}

// List retrieves workspaces with pagination
func (s *WorkspaceService) List(ctx context.Context, page, pageSize int) (*WorkspaceListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	workspaces, total, err := s.workspaces.GetAll(ctx, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	responses := make([]WorkspaceResponse, len(workspaces))
	for i, w := range workspaces {
		responses[i] = toWorkspaceResponse(&w)
	}

	return &WorkspaceListResponse{
		Workspaces: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Update updates a workspace
func (s *WorkspaceService) Update(ctx context.Context, id uuid.UUID, req *UpdateWorkspaceRequest) (*WorkspaceResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var workspace *models.Workspace
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		workspace, err = s.workspaces.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrWorkspaceNotFound
			}
			return fmt.Errorf("failed to get workspace: %w", err)
		}

		workspace.Name = req.Name
		workspace.Type = req.Type
		workspace.Region = req.Region

		if err := s.workspaces.Update(ctx, workspace); err != nil {
			return fmt.Errorf("failed to update workspace: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toWorkspaceResponse(workspace)
	return &resp, nil
}

// Delete deletes a workspace and cascades its association rows
func (s *WorkspaceService) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.WithContext(ctx).WithField("workspace_id", id)
	log.Info("Deleting workspace")

	return s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.workspaces.GetByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrWorkspaceNotFound
			}
			return fmt.Errorf("failed to get workspace: %w", err)
		}

		if err := s.associations.DeleteByWorkspace(ctx, id); err != nil {
			return fmt.Errorf("failed to delete associations: %w", err)
		}
		return s.workspaces.Delete(ctx, id)
	})
}

// ListEnabledFlags retrieves the flags enabled for a workspace
func (s *WorkspaceService) ListEnabledFlags(ctx context.Context, id uuid.UUID) ([]FeatureFlagResponse, error) {
	if _, err := s.workspaces.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	flags, err := s.associations.GetEnabledFlagsByWorkspace(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled flags: %w", err)
	}

	responses := make([]FeatureFlagResponse, len(flags))
	for i, flag := range flags {
		responses[i] = FeatureFlagResponse{
			ID:                flag.ID,
			Name:              flag.Name,
			Team:              flag.Team,
			Description:       flag.Description,
			RolloutPercentage: flag.RolloutPercentage,
			Regions:           []string(flag.Regions),
			CreatedAt:         flag.CreatedAt.Format(time.RFC3339),
			UpdatedAt:         flag.UpdatedAt.Format(time.RFC3339),
		}
	}
	return responses, nil
}

// toWorkspaceResponse converts a Workspace model to API response
func toWorkspaceResponse(workspace *models.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:        workspace.ID,
		Name:      workspace.Name,
		Type:      workspace.Type,
		Region:    workspace.Region,
		CreatedAt: workspace.CreatedAt.Format(time.RFC3339),
		UpdatedAt: workspace.UpdatedAt.Format(time.RFC3339),
	}
}
