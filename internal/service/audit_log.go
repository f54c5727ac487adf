package service

import (
	"context"
	"fmt"
	"time"

	"feature-flag-backend/internal/database/models"
	apperrors "feature-flag-backend/internal/errors"
	"feature-flag-backend/internal/repository"

	"github.com/google/uuid"
)

// AuditLogService exposes the audit trail read-only. Writes happen inside the
// flag mutations; nothing here mutates entries.
type AuditLogService struct {
	audits repository.AuditLogRepositoryInterface
}

// Ensure AuditLogService implements AuditLogServiceInterface
var _ AuditLogServiceInterface = (*AuditLogService)(nil)

// NewAuditLogService creates a new audit log service
func NewAuditLogService(audits repository.AuditLogRepositoryInterface) *AuditLogService {
	return &AuditLogService{audits: audits}
}

// AuditLogQuery narrows an audit log listing
type AuditLogQuery struct {
	FeatureFlagID *uuid.UUID
	Team          string
	Operation     string
	Page          int
	PageSize      int
}

// AuditLogResponse represents a single audit entry in API responses
type AuditLogResponse struct {
	ID            uuid.UUID              `json:"id"`
	FeatureFlagID *uuid.UUID             `json:"feature_flag_id,omitempty"`
	FlagName      string                 `json:"flag_name"`
	Team          string                 `json:"team"`
	Operation     string                 `json:"operation"`
	OldValues     map[string]interface{} `json:"old_values,omitempty"`
	NewValues     map[string]interface{} `json:"new_values,omitempty"`
	ChangedBy     *string                `json:"changed_by,omitempty"`
	CreatedAt     string                 `json:"created_at"`
}

// AuditLogListResponse represents a paginated list of audit entries,
// newest first
type AuditLogListResponse struct {
	Entries  []AuditLogResponse `json:"entries"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// List retrieves audit entries newest-first with optional filters
func (s *AuditLogService) List(ctx context.Context, query *AuditLogQuery) (*AuditLogListResponse, error) {
	operation := models.AuditOperation(query.Operation)
	if query.Operation != "" && !operation.IsValid() {
		return nil, apperrors.ErrInvalidAuditOperation
	}

	page, pageSize := normalizePagination(query.Page, query.PageSize)

	filter := repository.AuditLogFilter{
		FeatureFlagID: query.FeatureFlagID,
		Team:          query.Team,
		Operation:     operation,
	}

	offset := (page - 1) * pageSize
	entries, total, err := s.audits.List(ctx, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	responses := make([]AuditLogResponse, len(entries))
	for i, entry := range entries {
		responses[i] = s.toResponse(&entry)
	}

	return &AuditLogListResponse{
		Entries:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// toResponse converts an AuditLog model to API response
func (s *AuditLogService) toResponse(entry *models.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:            entry.ID,
		FeatureFlagID: entry.FeatureFlagID,
		FlagName:      entry.FlagName,
		Team:          entry.Team,
		Operation:     string(entry.Operation),
		OldValues:     entry.OldValues,
		NewValues:     entry.NewValues,
		ChangedBy:     entry.ChangedBy,
		CreatedAt:     entry.CreatedAt.Format(time.RFC3339),
	}
}
