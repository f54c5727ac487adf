package models

// Workspace represents a tenant workspace that flags roll out to.
// Workspaces are provisioned through their own CRUD surface; rollout logic
// only ever reads them.
type Workspace struct {
	BaseModel
	Name   string  `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Type   string  `json:"type" gorm:"size:50" validate:"max=50"`
	Region *string `json:"region,omitempty" gorm:"size:20;index"`

	// Relationships
	Associations []WorkspaceFeatureFlagAssociation `json:"associations,omitempty" gorm:"foreignKey:WorkspaceID"`
}

// TableName returns the table name for Workspace
func (Workspace) TableName() string {
	return "workspaces"
}
