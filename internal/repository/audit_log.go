package repository

import (
	"context"

	"feature-flag-backend/internal/database"
	"feature-flag-backend/internal/database/models"

	"gorm.io/gorm"
)

// AuditLogRepository handles database operations for audit log entries.
// The table is append-only.
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create appends a new audit log entry
func (r *AuditLogRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	return database.FromContext(ctx, r.db).Create(entry).Error
}

// List retrieves audit log entries newest-first, optionally filtered by flag,
// team, or operation, with pagination
func (r *AuditLogRepository) List(ctx context.Context, filter AuditLogFilter, limit, offset int) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	query := database.FromContext(ctx, r.db).Model(&models.AuditLog{})
	if filter.FeatureFlagID != nil {
		query = query.Where("feature_flag_id = ?", *filter.FeatureFlagID)
	}
	if filter.Team != "" {
		query = query.Where("team = ?", filter.Team)
	}
	if filter.Operation != "" {
		query = query.Where("operation = ?", filter.Operation)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results, newest first
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
