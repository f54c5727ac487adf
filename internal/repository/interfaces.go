package repository

import (
	"context"

	"feature-flag-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TransactionManagerInterface scopes a group of repository calls to one
// commit/rollback. Implemented by database.TransactionManager.
type TransactionManagerInterface interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// FeatureFlagRepositoryInterface defines the interface for feature flag repository operations
type FeatureFlagRepositoryInterface interface {
	Create(ctx context.Context, flag *models.FeatureFlag) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FeatureFlag, error)
	GetByTeamAndName(ctx context.Context, team, name string) (*models.FeatureFlag, error)
	GetAll(ctx context.Context, team string, limit, offset int) ([]models.FeatureFlag, int64, error)
	GetAllIDs(ctx context.Context) ([]uuid.UUID, error)
	Search(ctx context.Context, query string, limit, offset int) ([]models.FeatureFlag, int64, error)
	Update(ctx context.Context, flag *models.FeatureFlag) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WorkspaceRepositoryInterface defines the interface for workspace repository operations
type WorkspaceRepositoryInterface interface {
	Create(ctx context.Context, workspace *models.Workspace) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Workspace, error)
	GetByName(ctx context.Context, name string) (*models.Workspace, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Workspace, int64, error)
	GetAllIDs(ctx context.Context) ([]uuid.UUID, error)
	Update(ctx context.Context, workspace *models.Workspace) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RegionCount is one row of the enabled-workspaces-per-region aggregation
type RegionCount struct {
	Region string `json:"region"`
	Count  int64  `json:"count"`
}

// AssociationRepositoryInterface defines the interface for workspace-flag association repository operations
type AssociationRepositoryInterface interface {
	CreateBatch(ctx context.Context, associations []models.WorkspaceFeatureFlagAssociation) error
	GetByFlag(ctx context.Context, flagID uuid.UUID) ([]models.WorkspaceFeatureFlagAssociation, error)
	GetByFlagInRegions(ctx context.Context, flagID uuid.UUID, regions []string) ([]models.WorkspaceFeatureFlagAssociation, error)
	GetByFlagAndWorkspaces(ctx context.Context, flagID uuid.UUID, workspaceIDs []uuid.UUID) ([]models.WorkspaceFeatureFlagAssociation, error)
	SetEnabledByIDs(ctx context.Context, ids []uuid.UUID, enabled bool) error
	CountEnabledByFlag(ctx context.Context, flagID uuid.UUID) (int64, error)
	CountEnabledByRegion(ctx context.Context, flagID uuid.UUID) ([]RegionCount, error)
	GetEnabledWorkspacesByFlag(ctx context.Context, flagID uuid.UUID, limit, offset int) ([]models.Workspace, int64, error)
	GetEnabledFlagsByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.FeatureFlag, error)
	DeleteByFlag(ctx context.Context, flagID uuid.UUID) error
	DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error
}

// AuditLogFilter narrows audit log queries. Zero values mean "no filter".
type AuditLogFilter struct {
	FeatureFlagID *uuid.UUID
	Team          string
	Operation     models.AuditOperation
}

// AuditLogRepositoryInterface defines the interface for audit log repository operations.
// Entries are append-only; there is deliberately no update or delete.
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, filter AuditLogFilter, limit, offset int) ([]models.AuditLog, int64, error)
}
