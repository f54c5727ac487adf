package repository

import (
	"context"

	"feature-flag-backend/internal/database"
	"feature-flag-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssociationRepository handles database operations for workspace-flag
// association rows. Rows are created in batches when flags or workspaces are
// provisioned; rollout logic only updates the enabled boolean.
type AssociationRepository struct {
	db *gorm.DB
}

// NewAssociationRepository creates a new association repository
func NewAssociationRepository(db *gorm.DB) *AssociationRepository {
	return &AssociationRepository{db: db}
}

// CreateBatch inserts association rows in one statement
func (r *AssociationRepository) CreateBatch(ctx context.Context, associations []models.WorkspaceFeatureFlagAssociation) error {
	if len(associations) == 0 {
		return nil
	}
	return database.FromContext(ctx, r.db).Create(&associations).Error
}

// GetByFlag retrieves all association rows for a flag
func (r *AssociationRepository) GetByFlag(ctx context.Context, flagID uuid.UUID) ([]models.WorkspaceFeatureFlagAssociation, error) {
	var associations []models.WorkspaceFeatureFlagAssociation
	err := database.FromContext(ctx, r.db).
		Where("feature_flag_id = ?", flagID).
		Find(&associations).Error
	return associations, err
}

// GetByFlagInRegions retrieves a flag's association rows restricted to
// workspaces in the given regions
func (r *AssociationRepository) GetByFlagInRegions(ctx context.Context, flagID uuid.UUID, regions []string) ([]models.WorkspaceFeatureFlagAssociation, error) {
	var associations []models.WorkspaceFeatureFlagAssociation
	err := database.FromContext(ctx, r.db).
		Joins("JOIN workspaces ON workspaces.id = workspace_feature_flag_associations.workspace_id").
		Where("workspace_feature_flag_associations.feature_flag_id = ? AND workspaces.region IN ?", flagID, regions).
		Find(&associations).Error
	return associations, err
}

// GetByFlagAndWorkspaces retrieves a flag's association rows restricted to the
// given workspace ids
func (r *AssociationRepository) GetByFlagAndWorkspaces(ctx context.Context, flagID uuid.UUID, workspaceIDs []uuid.UUID) ([]models.WorkspaceFeatureFlagAssociation, error) {
	var associations []models.WorkspaceFeatureFlagAssociation
	if len(workspaceIDs) == 0 {
		return associations, nil
	}
	err := database.FromContext(ctx, r.db).
		Where("feature_flag_id = ? AND workspace_id IN ?", flagID, workspaceIDs).
		Find(&associations).Error
	return associations, err
}

// SetEnabledByIDs batch-updates the enabled state of the given association rows
func (r *AssociationRepository) SetEnabledByIDs(ctx context.Context, ids []uuid.UUID, enabled bool) error {
	if len(ids) == 0 {
		return nil
	}
	return database.FromContext(ctx, r.db).
		Model(&models.WorkspaceFeatureFlagAssociation{}).
		Where("id IN ?", ids).
		Update("enabled", enabled).Error
}

// CountEnabledByFlag returns the number of workspaces the flag is enabled for
func (r *AssociationRepository) CountEnabledByFlag(ctx context.Context, flagID uuid.UUID) (int64, error) {
	var count int64
	err := database.FromContext(ctx, r.db).
		Model(&models.WorkspaceFeatureFlagAssociation{}).
		Where("feature_flag_id = ? AND enabled = ?", flagID, true).
		Count(&count).Error
	return count, err
}

// CountEnabledByRegion aggregates enabled workspaces per region for a flag.
// Workspaces without a region are grouped under the empty string.
func (r *AssociationRepository) CountEnabledByRegion(ctx context.Context, flagID uuid.UUID) ([]RegionCount, error) {
	var counts []RegionCount
	err := database.FromContext(ctx, r.db).Raw(`
		SELECT COALESCE(w.region, '') AS region, COUNT(a.id) AS count
		FROM workspace_feature_flag_associations a
		JOIN workspaces w ON w.id = a.workspace_id
		WHERE a.feature_flag_id = ? AND a.enabled = true
		GROUP BY COALESCE(w.region, '')
		ORDER BY region
	`, flagID).Scan(&counts).Error
	return counts, err
}

// GetEnabledWorkspacesByFlag retrieves the workspaces a flag is enabled for,
// with pagination
func (r *AssociationRepository) GetEnabledWorkspacesByFlag(ctx context.Context, flagID uuid.UUID, limit, offset int) ([]models.Workspace, int64, error) {
	var workspaces []models.Workspace
	var total int64

	query := database.FromContext(ctx, r.db).
		Model(&models.Workspace{}).
		Joins("JOIN workspace_feature_flag_associations a ON a.workspace_id = workspaces.id").
		Where("a.feature_flag_id = ? AND a.enabled = ?", flagID, true)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("workspaces.name").Limit(limit).Offset(offset).Find(&workspaces).Error
	if err != nil {
		return nil, 0, err
	}

	return workspaces, total, nil
}

// GetEnabledFlagsByWorkspace retrieves the flags enabled for a workspace
func (r *AssociationRepository) GetEnabledFlagsByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.FeatureFlag, error) {
	var flags []models.FeatureFlag
	err := database.FromContext(ctx, r.db).
		Model(&models.FeatureFlag{}).
		Joins("JOIN workspace_feature_flag_associations a ON a.feature_flag_id = feature_flags.id").
		Where("a.workspace_id = ? AND a.enabled = ?", workspaceID, true).
		Order("feature_flags.name").
		Find(&flags).Error
	return flags, err
}

// DeleteByFlag removes all association rows for a flag (flag delete cascade)
func (r *AssociationRepository) DeleteByFlag(ctx context.Context, flagID uuid.UUID) error {
	return database.FromContext(ctx, r.db).
		Delete(&models.WorkspaceFeatureFlagAssociation{}, "feature_flag_id = ?", flagID).Error
}

// DeleteByWorkspace removes all association rows for a workspace (workspace delete cascade)
func (r *AssociationRepository) DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	return database.FromContext(ctx, r.db).
		Delete(&models.WorkspaceFeatureFlagAssociation{}, "workspace_id = ?", workspaceID).Error
}
