package models

import (
	"github.com/google/uuid"
)

// WorkspaceFeatureFlagAssociation is the enablement state of one flag for one
// workspace. At most one row exists per (flag, workspace) pair. Rows are seeded
// when a flag or workspace is created; rollout logic only flips the boolean.
type WorkspaceFeatureFlagAssociation struct {
	BaseModel
	FeatureFlagID uuid.UUID `json:"feature_flag_id" gorm:"type:uuid;not null;uniqueIndex:idx_associations_flag_workspace;index" validate:"required"`
	WorkspaceID   uuid.UUID `json:"workspace_id" gorm:"type:uuid;not null;uniqueIndex:idx_associations_flag_workspace" validate:"required"`
	Enabled       bool      `json:"enabled" gorm:"not null;default:false"`

	// Relationships
	FeatureFlag *FeatureFlag `json:"feature_flag,omitempty" gorm:"foreignKey:FeatureFlagID"`
	Workspace   *Workspace   `json:"workspace,omitempty" gorm:"foreignKey:WorkspaceID"`
}

// TableName returns the table name for WorkspaceFeatureFlagAssociation
func (WorkspaceFeatureFlagAssociation) TableName() string {
	return "workspace_feature_flag_associations"
}
