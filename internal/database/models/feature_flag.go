package models

import (
	"gorm.io/datatypes"
)

// RegionAll is the wildcard region code meaning "no region restriction".
const RegionAll = "ALL"

// FeatureFlag represents a percentage-rolled-out feature toggle owned by a team.
// The (team, name) pair is unique.
type FeatureFlag struct {
	BaseModel
	Name              string                      `json:"name" gorm:"size:100;not null;uniqueIndex:idx_feature_flags_team_name" validate:"required,min=1,max=100"`
	Team              string                      `json:"team" gorm:"size:100;not null;uniqueIndex:idx_feature_flags_team_name" validate:"required,min=1,max=100"`
	Description       string                      `json:"description" gorm:"size:500" validate:"max=500"`
	RolloutPercentage int                         `json:"rollout_percentage" gorm:"not null;default:0" validate:"min=0,max=100"`
	Regions           datatypes.JSONSlice[string] `json:"regions" gorm:"type:jsonb"`

	// Relationships
	Associations []WorkspaceFeatureFlagAssociation `json:"associations,omitempty" gorm:"foreignKey:FeatureFlagID"`
}

// TableName returns the table name for FeatureFlag
func (FeatureFlag) TableName() string {
	return "feature_flags"
}

// IsAllRegions reports whether the flag targets every region. An empty region
// set and an explicit "ALL" entry mean the same thing.
func (f *FeatureFlag) IsAllRegions() bool {
	if len(f.Regions) == 0 {
		return true
	}
	for _, r := range f.Regions {
		if r == RegionAll {
			return true
		}
	}
	return false
}

// RegionScope returns the restricted region codes, or nil when the flag
// targets all regions.
func (f *FeatureFlag) RegionScope() []string {
	if f.IsAllRegions() {
		return nil
	}
	return []string(f.Regions)
}
