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
	"feature-flag-backend/internal/rollout"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FeatureFlagService handles business logic for feature flags. Every mutating
// operation runs inside one transaction scope covering the flag write, the
// association batch writes and the audit append.
type FeatureFlagService struct {
	flags        repository.FeatureFlagRepositoryInterface
	workspaces   repository.WorkspaceRepositoryInterface
	associations repository.AssociationRepositoryInterface
	audits       repository.AuditLogRepositoryInterface
	engine       rollout.EngineInterface
	tx           repository.TransactionManagerInterface
	validator    *validator.Validate
}

// Ensure FeatureFlagService implements FeatureFlagServiceInterface
var _ FeatureFlagServiceInterface = (*FeatureFlagService)(nil)

// NewFeatureFlagService creates a new feature flag service
func NewFeatureFlagService(
	flags repository.FeatureFlagRepositoryInterface,
	workspaces repository.WorkspaceRepositoryInterface,
	associations repository.AssociationRepositoryInterface,
	audits repository.AuditLogRepositoryInterface,
	engine rollout.EngineInterface,
	tx repository.TransactionManagerInterface,
	validator *validator.Validate,
) *FeatureFlagService {
	return &FeatureFlagService{
		flags:        flags,
		workspaces:   workspaces,
		associations: associations,
		audits:       audits,
		engine:       engine,
		tx:           tx,
		validator:    validator,
	}
}

// CreateFeatureFlagRequest represents the request to create a feature flag
type CreateFeatureFlagRequest struct {
	Name              string   `json:"name" validate:"required,min=1,max=100"`
	Team              string   `json:"team" validate:"required,min=1,max=100"`
	Description       string   `json:"description" validate:"max=500"`
	Regions           []string `json:"regions,omitempty" validate:"dive,min=1,max=20"`
	RolloutPercentage int      `json:"rollout_percentage" validate:"min=0,max=100"`
	ChangedBy         string   `json:"changed_by,omitempty" validate:"max=100"`
}

// UpdateFeatureFlagRequest represents the request to update a feature flag
type UpdateFeatureFlagRequest struct {
	Name              string   `json:"name" validate:"required,min=1,max=100"`
	Team              string   `json:"team" validate:"required,min=1,max=100"`
	Description       string   `json:"description" validate:"max=500"`
	Regions           []string `json:"regions,omitempty" validate:"dive,min=1,max=20"`
	RolloutPercentage int      `json:"rollout_percentage" validate:"min=0,max=100"`
	ChangedBy         string   `json:"changed_by,omitempty" validate:"max=100"`
}

// SetWorkspacesRequest represents the request to force-set a flag for an
// explicit list of workspaces
type SetWorkspacesRequest struct {
	WorkspaceIDs []uuid.UUID `json:"workspace_ids" validate:"required,min=1"`
	Enabled      *bool       `json:"enabled" validate:"required"`
	ChangedBy    string      `json:"changed_by,omitempty" validate:"max=100"`
}

// FeatureFlagResponse represents the response for feature flag operations
type FeatureFlagResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Team              string    `json:"team"`
	Description       string    `json:"description"`
	RolloutPercentage int       `json:"rollout_percentage"`
	Regions           []string  `json:"regions"`
	CreatedAt         string    `json:"created_at"`
	UpdatedAt         string    `json:"updated_at"`
}

// FeatureFlagListResponse represents a paginated list of feature flags
type FeatureFlagListResponse struct {
	Flags    []FeatureFlagResponse `json:"flags"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// EnabledWorkspacesResponse represents a paginated list of workspaces a flag
// is enabled for
type EnabledWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// RegionCountsResponse represents enabled-workspace counts per region
type RegionCountsResponse struct {
	FeatureFlagID uuid.UUID                `json:"feature_flag_id"`
	Counts        []repository.RegionCount `json:"counts"`
}

// Create creates a new feature flag, seeds one association row per existing
// workspace, applies the initial rollout, and records a CREATE audit entry
func (s *FeatureFlagService) Create(ctx context.Context, req *CreateFeatureFlagRequest) (*FeatureFlagResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team": req.Team,
		"name": req.Name,
	})
	log.Info("Creating feature flag")

	var flag *models.FeatureFlag
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		// Check (team, name) uniqueness
		existing, err := s.flags.GetByTeamAndName(ctx, req.Team, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing flag by name: %w", err)
		}
		if existing != nil {
			return apperrors.ErrFeatureFlagExists
		}

		flag = &models.FeatureFlag{
			Name:              req.Name,
			Team:              req.Team,
			Description:       req.Description,
			RolloutPercentage: req.RolloutPercentage,
			Regions:           datatypes.NewJSONSlice(req.Regions),
		}
		if err := s.flags.Create(ctx, flag); err != nil {
			return fmt.Errorf("failed to create flag: %w", err)
		}

		// Seed a disabled association row for every current workspace
		workspaceIDs, err := s.workspaces.GetAllIDs(ctx)
		if err != nil {
			return fmt.Errorf("failed to list workspaces: %w", err)
		}
		if len(workspaceIDs) > 0 {
			associations := make([]models.WorkspaceFeatureFlagAssociation, len(workspaceIDs))
			for i, wsID := range workspaceIDs {
				associations[i] = models.WorkspaceFeatureFlagAssociation{
					FeatureFlagID: flag.ID,
					WorkspaceID:   wsID,
				}
			}
			if err := s.associations.CreateBatch(ctx, associations); err != nil {
				return fmt.Errorf("failed to seed associations: %w", err)
			}
		}

		if err := s.engine.Apply(ctx, flag, flag.RolloutPercentage); err != nil {
			return fmt.Errorf("failed to apply rollout: %w", err)
		}

		return s.audits.Create(ctx, s.buildCreateAudit(flag, req.ChangedBy))
	})
	if err != nil {
		return nil, err
	}

	log.WithField("flag_id", flag.ID).Info("Feature flag created")
	return s.toResponse(flag), nil
}

// GetByID retrieves a feature flag by ID
func (s *FeatureFlagService) GetByID(ctx context.Context, id uuid.UUID) (*FeatureFlagResponse, error) {
	flag, err := s.flags.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFeatureFlagNotFound
		}
		return nil, fmt.Errorf("failed to get flag: %w", err)
	}

	return s.toResponse(flag), nil
}

// List retrieves feature flags with pagination, optionally filtered by team
func (s *FeatureFlagService) List(ctx context.Context, team string, page, pageSize int) (*FeatureFlagListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	flags, total, err := s.flags.GetAll(ctx, team, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list flags: %w", err)
	}

	return s.toListResponse(flags, total, page, pageSize), nil
}

// Search searches feature flags by name substring with pagination
func (s *FeatureFlagService) Search(ctx context.Context, query string, page, pageSize int) (*FeatureFlagListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	flags, total, err := s.flags.Search(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search flags: %w", err)
	}

	return s.toListResponse(flags, total, page, pageSize), nil
}

// Update updates a feature flag, re-applies the rollout at the new percentage,
// and records an UPDATE audit entry tracking the percentage transition
func (s *FeatureFlagService) Update(ctx context.Context, id uuid.UUID, req *UpdateFeatureFlagRequest) (*FeatureFlagResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"flag_id":            id,
		"rollout_percentage": req.RolloutPercentage,
	})
	log.Info("Updating feature flag")

	var flag *models.FeatureFlag
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		flag, err = s.flags.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrFeatureFlagNotFound
			}
			return fmt.Errorf("failed to get flag: %w", err)
		}

		// Check (team, name) uniqueness excluding self
		existing, err := s.flags.GetByTeamAndName(ctx, req.Team, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing flag by name: %w", err)
		}
		if existing != nil && existing.ID != flag.ID {
			return apperrors.ErrFeatureFlagExists
		}

		oldPercentage := flag.RolloutPercentage

		flag.Name = req.Name
		flag.Team = req.Team
		flag.Description = req.Description
		flag.RolloutPercentage = req.RolloutPercentage
		flag.Regions = datatypes.NewJSONSlice(req.Regions)

		if err := s.flags.Update(ctx, flag); err != nil {
			return fmt.Errorf("failed to update flag: %w", err)
		}

		if err := s.engine.Apply(ctx, flag, flag.RolloutPercentage); err != nil {
			return fmt.Errorf("failed to apply rollout: %w", err)
		}

		return s.audits.Create(ctx, s.buildUpdateAudit(flag, oldPercentage, req.ChangedBy))
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(flag), nil
}

// Delete deletes a feature flag, cascades its association rows, and records a
// DELETE audit entry with a full snapshot of the flag's last state
func (s *FeatureFlagService) Delete(ctx context.Context, id uuid.UUID, changedBy string) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"flag_id":    id,
		"changed_by": changedBy,
	})
	log.Info("Deleting feature flag")

	return s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		flag, err := s.flags.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrFeatureFlagNotFound
			}
			return fmt.Errorf("failed to get flag: %w", err)
		}

		// Cascade: association rows go with the flag. Audit entries keep the
		// flag id as a plain value and survive.
		if err := s.associations.DeleteByFlag(ctx, flag.ID); err != nil {
			return fmt.Errorf("failed to delete associations: %w", err)
		}
		if err := s.flags.Delete(ctx, flag.ID); err != nil {
			return fmt.Errorf("failed to delete flag: %w", err)
		}

		return s.audits.Create(ctx, s.buildDeleteAudit(flag, changedBy))
	})
}

// SetWorkspaces force-enables or force-disables the flag for an explicit list
// of workspaces and records an UPDATE audit entry with the enabled-count
// transition
func (s *FeatureFlagService) SetWorkspaces(ctx context.Context, id uuid.UUID, req *SetWorkspacesRequest) error {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"flag_id":         id,
		"workspace_count": len(req.WorkspaceIDs),
		"enabled":         *req.Enabled,
		"changed_by":      req.ChangedBy,
	})
	log.Info("Force-setting flag for workspaces")

	return s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		flag, err := s.flags.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrFeatureFlagNotFound
			}
			return fmt.Errorf("failed to get flag: %w", err)
		}

		result, err := s.engine.SetExplicit(ctx, flag, req.WorkspaceIDs, *req.Enabled)
		if err != nil {
			return err
		}

		return s.audits.Create(ctx, s.buildWorkspaceUpdateAudit(flag, result, req.ChangedBy))
	})
}

// ListEnabledWorkspaces retrieves the workspaces a flag is enabled for, with
// pagination
func (s *FeatureFlagService) ListEnabledWorkspaces(ctx context.Context, id uuid.UUID, page, pageSize int) (*EnabledWorkspacesResponse, error) {
	if _, err := s.flags.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFeatureFlagNotFound
		}
		return nil, fmt.Errorf("failed to get flag: %w", err)
	}

	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	workspaces, total, err := s.associations.GetEnabledWorkspacesByFlag(ctx, id, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled workspaces: %w", err)
	}

	responses := make([]WorkspaceResponse, len(workspaces))
	for i, w := range workspaces {
		responses[i] = toWorkspaceResponse(&w)
	}

	return &EnabledWorkspacesResponse{
		Workspaces: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// CountEnabledByRegion aggregates enabled workspaces per region for a flag
func (s *FeatureFlagService) CountEnabledByRegion(ctx context.Context, id uuid.UUID) (*RegionCountsResponse, error) {
	if _, err := s.flags.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFeatureFlagNotFound
		}
		return nil, fmt.Errorf("failed to get flag: %w", err)
	}

	counts, err := s.associations.CountEnabledByRegion(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count enabled workspaces: %w", err)
	}

	return &RegionCountsResponse{
		FeatureFlagID: id,
		Counts:        counts,
	}, nil
}

// Audit shaping

func (s *FeatureFlagService) buildCreateAudit(flag *models.FeatureFlag, changedBy string) *models.AuditLog {
	return &models.AuditLog{
		FeatureFlagID: flagIDPtr(flag),
		FlagName:      flag.Name,
		Team:          flag.Team,
		Operation:     models.AuditOperationCreate,
		NewValues:     flagSnapshot(flag),
		ChangedBy:     changedByPtr(changedBy),
	}
}

func (s *FeatureFlagService) buildUpdateAudit(flag *models.FeatureFlag, oldPercentage int, changedBy string) *models.AuditLog {
	// Only the percentage transition is tracked on a plain update.
	return &models.AuditLog{
		FeatureFlagID: flagIDPtr(flag),
		FlagName:      flag.Name,
		Team:          flag.Team,
		Operation:     models.AuditOperationUpdate,
		OldValues:     datatypes.JSONMap{"rollout_percentage": oldPercentage},
		NewValues:     datatypes.JSONMap{"rollout_percentage": flag.RolloutPercentage},
		ChangedBy:     changedByPtr(changedBy),
	}
}

func (s *FeatureFlagService) buildDeleteAudit(flag *models.FeatureFlag, changedBy string) *models.AuditLog {
	return &models.AuditLog{
		FeatureFlagID: flagIDPtr(flag),
		FlagName:      flag.Name,
		Team:          flag.Team,
		Operation:     models.AuditOperationDelete,
		OldValues:     flagSnapshot(flag),
		ChangedBy:     changedByPtr(changedBy),
	}
}

func (s *FeatureFlagService) buildWorkspaceUpdateAudit(flag *models.FeatureFlag, result *rollout.ExplicitResult, changedBy string) *models.AuditLog {
	return &models.AuditLog{
		FeatureFlagID: flagIDPtr(flag),
		FlagName:      flag.Name,
		Team:          flag.Team,
		Operation:     models.AuditOperationUpdate,
		OldValues: datatypes.JSONMap{
			"enabled_workspace_count": result.OldEnabledCount,
			"rollout_percentage":      flag.RolloutPercentage,
		},
		NewValues: datatypes.JSONMap{
			"enabled_workspace_count": result.NewEnabledCount,
			"rollout_percentage":      flag.RolloutPercentage,
		},
		ChangedBy: changedByPtr(changedBy),
	}
}

func flagSnapshot(flag *models.FeatureFlag) datatypes.JSONMap {
	return datatypes.JSONMap{
		"name":               flag.Name,
		"description":        flag.Description,
		"team":               flag.Team,
		"rollout_percentage": flag.RolloutPercentage,
		"regions":            []string(flag.Regions),
	}
}

func flagIDPtr(flag *models.FeatureFlag) *uuid.UUID {
	id := flag.ID
	return &id
}

func changedByPtr(changedBy string) *string {
	if changedBy == "" {
		return nil
	}
	return &changedBy
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// toResponse converts a FeatureFlag model to API response
func (s *FeatureFlagService) toResponse(flag *models.FeatureFlag) *FeatureFlagResponse {
	return &FeatureFlagResponse{
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

func (s *FeatureFlagService) toListResponse(flags []models.FeatureFlag, total int64, page, pageSize int) *FeatureFlagListResponse {
	responses := make([]FeatureFlagResponse, len(flags))
	for i, flag := range flags {
		responses[i] = *s.toResponse(&flag)
	}

	return &FeatureFlagListResponse{
		Flags:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
