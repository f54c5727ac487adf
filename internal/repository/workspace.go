package repository

import (
	"context"

	"feature-flag-backend/internal/database"
	"feature-flag-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkspaceRepository handles database operations for workspaces
type WorkspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create creates a new workspace
func (r *WorkspaceRepository) Create(ctx context.Context, workspace *models.Workspace) error {
	return database.FromContext(ctx, r.db).Create(workspace).Error
}

// GetByID retrieves a workspace by ID
func (r *WorkspaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	var workspace models.Workspace
	err := database.FromContext(ctx, r.db).First(&workspace, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

// GetByIDs retrieves the workspaces matching the given ids. Missing ids are
// simply absent from the result; callers compare lengths to detect them.
func (r *WorkspaceRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Workspace, error) {
	var workspaces []models.Workspace
	if len(ids) == 0 {
		return workspaces, nil
	}
	err := database.FromContext(ctx, r.db).Where("id IN ?", ids).Find(&workspaces).Error
	return workspaces, err
}

// GetByName retrieves a workspace by its unique name
func (r *WorkspaceRepository) GetByName(ctx context.Context, name string) (*models.Workspace, error) {
	var workspace models.Workspace
	err := database.FromContext(ctx, r.db).First(&workspace, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

// GetAll retrieves workspaces with pagination
func (r *WorkspaceRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Workspace, int64, error) {
	var workspaces []models.Workspace
	var total int64

	db := database.FromContext(ctx, r.db)

	// Get total count
	if err := db.Model(&models.Workspace{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&workspaces).Error
	if err != nil {
		return nil, 0, err
	}

	return workspaces, total, nil
}

// GetAllIDs retrieves the ids of every workspace
func (r *WorkspaceRepository) GetAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := database.FromContext(ctx, r.db).Model(&models.Workspace{}).Pluck("id", &ids).Error
	return ids, err
}

// Update updates a workspace
func (r *WorkspaceRepository) Update(ctx context.Context, workspace *models.Workspace) error {
	return database.FromContext(ctx, r.db).Save(workspace).Error
}

// Delete deletes a workspace
func (r *WorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.FromContext(ctx, r.db).Delete(&models.Workspace{}, "id = ?", id).Error
}
