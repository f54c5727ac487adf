package repository

import (
	"context"

	"feature-flag-backend/internal/database"
	"feature-flag-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeatureFlagRepository handles database operations for feature flags
type FeatureFlagRepository struct {
	db *gorm.DB
}

// NewFeatureFlagRepository creates a new feature flag repository
func NewFeatureFlagRepository(db *gorm.DB) *FeatureFlagRepository {
	return &FeatureFlagRepository{db: db}
}

// Create creates a new feature flag
func (r *FeatureFlagRepository) Create(ctx context.Context, flag *models.FeatureFlag) error {
	return database.FromContext(ctx, r.db).Create(flag).Error
}

// GetByID retrieves a feature flag by ID
func (r *FeatureFlagRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FeatureFlag, error) {
	var flag models.FeatureFlag
	err := database.FromContext(ctx, r.db).First(&flag, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &flag, nil
}

// GetByTeamAndName retrieves a feature flag by its unique (team, name) pair
func (r *FeatureFlagRepository) GetByTeamAndName(ctx context.Context, team, name string) (*models.FeatureFlag, error) {
	var flag models.FeatureFlag
	err := database.FromContext(ctx, r.db).First(&flag, "team = ? AND name = ?", team, name).Error
	if err != nil {
		return nil, err
	}
	return &flag, nil
}

// GetAll retrieves feature flags with pagination, optionally filtered by team
func (r *FeatureFlagRepository) GetAll(ctx context.Context, team string, limit, offset int) ([]models.FeatureFlag, int64, error) {
	var flags []models.FeatureFlag
	var total int64

	query := database.FromContext(ctx, r.db).Model(&models.FeatureFlag{})
	if team != "" {
		query = query.Where("team = ?", team)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&flags).Error
	if err != nil {
		return nil, 0, err
	}

	return flags, total, nil
}

// GetAllIDs retrieves the ids of every feature flag
func (r *FeatureFlagRepository) GetAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := database.FromContext(ctx, r.db).Model(&models.FeatureFlag{}).Pluck("id", &ids).Error
	return ids, err
}

// Search searches feature flags by name substring with pagination
func (r *FeatureFlagRepository) Search(ctx context.Context, query string, limit, offset int) ([]models.FeatureFlag, int64, error) {
	var flags []models.FeatureFlag
	var total int64

	searchQuery := database.FromContext(ctx, r.db).Model(&models.FeatureFlag{}).
		Where("name ILIKE ?", "%"+query+"%")

	// Get total count
	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := searchQuery.Order("created_at DESC").Limit(limit).Offset(offset).Find(&flags).Error
	if err != nil {
		return nil, 0, err
	}

	return flags, total, nil
}

// Update updates a feature flag
func (r *FeatureFlagRepository) Update(ctx context.Context, flag *models.FeatureFlag) error {
	return database.FromContext(ctx, r.db).Save(flag).Error
}

// Delete deletes a feature flag
func (r *FeatureFlagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.FromContext(ctx, r.db).Delete(&models.FeatureFlag{}, "id = ?", id).Error
}
