package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// FeatureFlagServiceInterface defines the interface for feature flag service
type FeatureFlagServiceInterface interface {
	Create(ctx context.Context, req *CreateFeatureFlagRequest) (*FeatureFlagResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*FeatureFlagResponse, error)
	List(ctx context.Context, team string, page, pageSize int) (*FeatureFlagListResponse, error)
	Search(ctx context.Context, query string, page, pageSize int) (*FeatureFlagListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateFeatureFlagRequest) (*FeatureFlagResponse, error)
	Delete(ctx context.Context, id uuid.UUID, changedBy string) error
	SetWorkspaces(ctx context.Context, id uuid.UUID, req *SetWorkspacesRequest) error
	ListEnabledWorkspaces(ctx context.Context, id uuid.UUID, page, pageSize int) (*EnabledWorkspacesResponse, error)
	CountEnabledByRegion(ctx context.Context, id uuid.UUID) (*RegionCountsResponse, error)
}

// WorkspaceServiceInterface defines the interface for workspace service
type WorkspaceServiceInterface interface {
	Create(ctx context.Context, req *CreateWorkspaceRequest) (*WorkspaceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*WorkspaceResponse, error)
	List(ctx context.Context, page, pageSize int) (*WorkspaceListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateWorkspaceRequest) (*WorkspaceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListEnabledFlags(ctx context.Context, id uuid.UUID) ([]FeatureFlagResponse, error)
}

// AuditLogServiceInterface defines the interface for audit log service
type AuditLogServiceInterface interface {
	List(ctx context.Context, query *AuditLogQuery) (*AuditLogListResponse, error)
}
