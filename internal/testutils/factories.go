package testutils

import (
	"fmt"
	"time"

	"feature-flag-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FeatureFlagFactory provides methods to create test FeatureFlag data
type FeatureFlagFactory struct{}

// NewFeatureFlagFactory creates a new FeatureFlagFactory
func NewFeatureFlagFactory() *FeatureFlagFactory {
	return &FeatureFlagFactory{}
}

// Create creates a test FeatureFlag with default values
func (f *FeatureFlagFactory) Create() *models.FeatureFlag {
	id := uuid.New()
	return &models.FeatureFlag{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:              "test-flag-" + id.String()[:8],
		Team:              "platform",
		Description:       "A test feature flag",
		RolloutPercentage: 0,
		Regions:           datatypes.NewJSONSlice([]string{models.RegionAll}),
	}
}

// WithName sets a custom name for the flag
func (f *FeatureFlagFactory) WithName(name string) *models.FeatureFlag {
	flag := f.Create()
	flag.Name = name
	return flag
}

// WithTeam sets a custom team for the flag
func (f *FeatureFlagFactory) WithTeam(team string) *models.FeatureFlag {
	flag := f.Create()
	flag.Team = team
	return flag
}

// WithRollout sets a custom rollout percentage for the flag
func (f *FeatureFlagFactory) WithRollout(percentage int) *models.FeatureFlag {
	flag := f.Create()
	flag.RolloutPercentage = percentage
	return flag
}

// WithRegions sets a custom region scope for the flag
func (f *FeatureFlagFactory) WithRegions(regions ...string) *models.FeatureFlag {
	flag := f.Create()
	flag.Regions = datatypes.NewJSONSlice(regions)
	return flag
}

// WorkspaceFactory provides methods to create test Workspace data
type WorkspaceFactory struct{}

// NewWorkspaceFactory creates a new WorkspaceFactory
func NewWorkspaceFactory() *WorkspaceFactory {
	return &WorkspaceFactory{}
}

// Create creates a test Workspace with default values
func (f *WorkspaceFactory) Create() *models.Workspace {
	id := uuid.New()
	region := "us-east-1"
	return &models.Workspace{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   "test-workspace-" + id.String()[:8],
		Type:   "standard",
		Region: &region,
	}
}

// WithName sets a custom name for the workspace
func (f *WorkspaceFactory) WithName(name string) *models.Workspace {
	ws := f.Create()
	ws.Name = name
	return ws
}

// WithRegion sets a custom region for the workspace
func (f *WorkspaceFactory) WithRegion(region string) *models.Workspace {
	ws := f.Create()
	ws.Region = &region
	return ws
}

// WithoutRegion clears the region for the workspace
func (f *WorkspaceFactory) WithoutRegion() *models.Workspace {
	ws := f.Create()
	ws.Region = nil
	return ws
}

// CreateBatch creates n workspaces with distinct names in the given region
func (f *WorkspaceFactory) CreateBatch(n int, region string) []*models.Workspace {
	workspaces := make([]*models.Workspace, n)
	for i := 0; i < n; i++ {
		ws := f.WithRegion(region)
		ws.Name = fmt.Sprintf("batch-workspace-%d-%s", i, ws.ID.String()[:8])
		workspaces[i] = ws
	}
	return workspaces
}

// AssociationFactory provides methods to create test association data
type AssociationFactory struct{}

// NewAssociationFactory creates a new AssociationFactory
func NewAssociationFactory() *AssociationFactory {
	return &AssociationFactory{}
}

// Create creates a disabled association between a flag and a workspace
func (f *AssociationFactory) Create(flagID, workspaceID uuid.UUID) *models.WorkspaceFeatureFlagAssociation {
	return &models.WorkspaceFeatureFlagAssociation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FeatureFlagID: flagID,
		WorkspaceID:   workspaceID,
		Enabled:       false,
	}
}

// Enabled creates an enabled association between a flag and a workspace
func (f *AssociationFactory) Enabled(flagID, workspaceID uuid.UUID) *models.WorkspaceFeatureFlagAssociation {
	a := f.Create(flagID, workspaceID)
	a.Enabled = true
	return a
}

// FactorySet provides access to all factories
type FactorySet struct {
	FeatureFlag *FeatureFlagFactory
	Workspace   *WorkspaceFactory
	Association *AssociationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		FeatureFlag: NewFeatureFlagFactory(),
		Workspace:   NewWorkspaceFactory(),
		Association: NewAssociationFactory(),
	}
}
