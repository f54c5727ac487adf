package rollout_test

import (
	"context"
	"testing"

	"feature-flag-backend/internal/database/models"
	apperrors "feature-flag-backend/internal/errors"
	"feature-flag-backend/internal/mocks"
	"feature-flag-backend/internal/rollout"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

func TestBucketIsStable(t *testing.T) {
	flagID := uuid.New()
	workspaceID := uuid.New()

	first := rollout.Bucket(flagID, workspaceID)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, rollout.Bucket(flagID, workspaceID))
	}
	assert.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, 100)
}

func TestBucketDependsOnBothIDs(t *testing.T) {
	flagA := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	flagB := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	// Over enough workspaces the two flags must disagree somewhere;
	// otherwise the bucket would be a function of the workspace alone.
	differs := false
	for i := 0; i < 50; i++ {
		ws := uuid.New()
		if rollout.Bucket(flagA, ws) != rollout.Bucket(flagB, ws) {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}

func TestBucketMonotonicity(t *testing.T) {
	// The enabled set at a lower percentage must be a subset of the
	// enabled set at any higher percentage for the same flag.
	flagID := uuid.New()
	workspaceIDs := make([]uuid.UUID, 200)
	for i := range workspaceIDs {
		workspaceIDs[i] = uuid.New()
	}

	enabledAt := func(target int) map[uuid.UUID]bool {
		enabled := make(map[uuid.UUID]bool)
		for _, wsID := range workspaceIDs {
			if rollout.Bucket(flagID, wsID) < target {
				enabled[wsID] = true
			}
		}
		return enabled
	}

	previous := enabledAt(0)
	assert.Empty(t, previous)
	for target := 10; target <= 100; target += 10 {
		current := enabledAt(target)
		for wsID := range previous {
			assert.True(t, current[wsID], "workspace enabled at lower percentage must stay enabled")
		}
		previous = current
	}
	assert.Len(t, previous, len(workspaceIDs))
}

type RolloutEngineTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockAssociations *mocks.MockAssociationRepositoryInterface
	mockWorkspaces   *mocks.MockWorkspaceRepositoryInterface
	engine           *rollout.Engine
	ctx              context.Context
}

func (suite *RolloutEngineTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssociations = mocks.NewMockAssociationRepositoryInterface(suite.ctrl)
	suite.mockWorkspaces = mocks.NewMockWorkspaceRepositoryInterface(suite.ctrl)
	suite.engine = rollout.NewEngine(suite.mockAssociations, suite.mockWorkspaces)
	suite.ctx = context.Background()
}

func (suite *RolloutEngineTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RolloutEngineTestSuite) allRegionsFlag() *models.FeatureFlag {
	return &models.FeatureFlag{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "test-flag",
		Team:      "platform",
		Regions:   datatypes.NewJSONSlice([]string{models.RegionAll}),
	}
}

func (suite *RolloutEngineTestSuite) makeAssociations(flagID uuid.UUID, n int) []models.WorkspaceFeatureFlagAssociation {
	associations := make([]models.WorkspaceFeatureFlagAssociation, n)
	for i := range associations {
		associations[i] = models.WorkspaceFeatureFlagAssociation{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			FeatureFlagID: flagID,
			WorkspaceID:   uuid.New(),
		}
	}
	return associations
}

func (suite *RolloutEngineTestSuite) TestApply_InvalidPercentage() {
	flag := suite.allRegionsFlag()

	err := suite.engine.Apply(suite.ctx, flag, -1)
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))

	err = suite.engine.Apply(suite.ctx, flag, 101)
	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *RolloutEngineTestSuite) TestApply_NoAssociations() {
	flag := suite.allRegionsFlag()
	suite.mockAssociations.EXPECT().GetByFlag(suite.ctx, flag.ID).Return(nil, nil)

	err := suite.engine.Apply(suite.ctx, flag, 50)

	assert.NoError(suite.T(), err)
}

func (suite *RolloutEngineTestSuite) TestApply_ZeroDisablesEverything() {
	flag := suite.allRegionsFlag()
	associations := suite.makeAssociations(flag.ID, 5)
	allIDs := associationIDs(associations)

	suite.mockAssociations.EXPECT().GetByFlag(suite.ctx, flag.ID).Return(associations, nil)
	suite.mockAssociations.EXPECT().SetEnabledByIDs(suite.ctx, allIDs, false).Return(nil)

	err := suite.engine.Apply(suite.ctx, flag, 0)

	assert.NoError(suite.T(), err)
}

func (suite *RolloutEngineTestSuite) TestApply_HundredEnablesEverything() {
	flag := suite.allRegionsFlag()
	associations := suite.makeAssociations(flag.ID, 5)
	allIDs := associationIDs(associations)

	suite.mockAssociations.EXPECT().GetByFlag(suite.ctx, flag.ID).Return(associations, nil)
	suite.mockAssociations.EXPECT().SetEnabledByIDs(suite.ctx, allIDs, false).Return(nil)
	suite.mockAssociations.EXPECT().SetEnabledByIDs(suite.ctx, allIDs, true).Return(nil)

	err := suite.engine.Apply(suite.ctx, flag, 100)

	assert.NoError(suite.T(), err)
}

func (suite *RolloutEngineTestSuite) TestApply_PartialEnablesBucketedSubset() {
	flag := suite.allRegionsFlag()
	associations := suite.makeAssociations(flag.ID, 50)
	allIDs := associationIDs(associations)
	target := 30

	var expectedEnabled []uuid.UUID
	for _, a := range associations {
		if rollout.Bucket(a.FeatureFlagID, a.WorkspaceID) < target {
			expectedEnabled = append(expectedEnabled, a.ID)
		}
	}

	suite.mockAssociations.EXPECT().GetByFlag(suite.ctx, flag.ID).Return(associations, nil)
	suite.mockAssociations.EXPECT().SetEnabledByIDs(suite.ctx, allIDs, false).Return(nil)
	if len(expectedEnabled) > 0 {
		suite.mockAssociations.EXPECT().SetEnabledByIDs(suite.ctx, expectedEnabled, true).Return(nil)
	}

	err := suite.engine.Apply(suite.ctx, flag, target)

	assert.NoError(suite.T(), err)
}

func (suite *RolloutEngineTestSuite) TestApply_SameTargetIsIdempotent() {
	// Re-applying the same percentage selects exactly the same workspaces.
	flag := suite.allRegionsFlag()
	associations := suite.makeAssociations(flag.ID, 10)
	allIDs := associationIDs(associations)
	target := 40

	var expectedEnabled []uuid.UUID
	for _, a := range associations {
		if rollout.Bucket(a.FeatureFlagID, a.WorkspaceID) < target {
			expectedEnabled = append(expectedEnabled, a.ID)
		}
	}

	suite.mockAssociations.EXPECT().GetByFlag(suite.ctx, flag.ID).Return(associations, nil).Times(2)
	suite.mockAssociations.EXPECT().SetEnabledByIDs(suite.ctx, allIDs, false).Return(nil).Times(2)
	if len(expectedEnabled) > 0 {
		suite.mockAssociations.EXPECT().SetEnabledByIDs(suite.ctx, expectedEnabled, true).Return(nil).Times(2)
	}

	assert.NoError(suite.T(), suite.engine.Apply(suite.ctx, flag, target))
	assert.NoError(suite.T(), suite.engine.Apply(suite.ctx, flag, target))
}

func (suite *RolloutEngineTestSuite) TestApply_ResetRunsBeforeRecompute() {
	// Even when the target percentage drops, every candidate is reset first
	// so no previously enabled row survives by accident.
	flag := suite.allRegionsFlag()
	associations := suite.makeAssociations(flag.ID, 10)
	for i := range associations {
		associations[i].Enabled = true
	}
	allIDs := associationIDs(associations)

	gomock.InOrder(
		suite.mockAssociations.EXPECT().GetByFlag(suite.ctx, flag.ID).Return(associations, nil),
		suite.mockAssociations.EXPECT().SetEnabledByIDs(suite.ctx, allIDs, false).Return(nil),
	)

	err := suite.engine.Apply(suite.ctx, flag, 0)

	assert.NoError(suite.T(), err)
}

func (suite *RolloutEngineTestSuite) TestApply_RegionScopedUsesScopedCandidates() {
	flag := &models.FeatureFlag{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "regional-flag",
		Team:      "platform",
		Regions:   datatypes.NewJSONSlice([]string{"eu-central-1", "eu-west-1"}),
	}
	associations := suite.makeAssociations(flag.ID, 3)
	allIDs := associationIDs(associations)

	// Only the region-scoped lookup runs; rows outside the scope are never touched.
	suite.mockAssociations.EXPECT().
		GetByFlagInRegions(suite.ctx, flag.ID, []string{"eu-central-1", "eu-west-1"}).
		Return(associations, nil)
	suite.mockAssociations.EXPECT().SetEnabledByIDs(suite.ctx, allIDs, false).Return(nil)
	suite.mockAssociations.EXPECT().SetEnabledByIDs(suite.ctx, allIDs, true).Return(nil)

	err := suite.engine.Apply(suite.ctx, flag, 100)

	assert.NoError(suite.T(), err)
}

func (suite *RolloutEngineTestSuite) TestSetExplicit_EmptyWorkspaceList() {
	flag := suite.allRegionsFlag()

	result, err := suite.engine.SetExplicit(suite.ctx, flag, nil, true)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsInvalidArgument(err))
	assert.Nil(suite.T(), result)
}

func (suite *RolloutEngineTestSuite) TestSetExplicit_MissingWorkspace() {
	flag := suite.allRegionsFlag()
	existing := uuid.New()
	missing := uuid.New()
	ids := []uuid.UUID{existing, missing}

	suite.mockWorkspaces.EXPECT().GetByIDs(suite.ctx, ids).Return([]models.Workspace{
		{BaseModel: models.BaseModel{ID: existing}, Name: "ws-1"},
	}, nil)

	result, err := suite.engine.SetExplicit(suite.ctx, flag, ids, true)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkspaceNotFound)
	assert.Contains(suite.T(), err.Error(), missing.String())
	assert.Nil(suite.T(), result)
}

func (suite *RolloutEngineTestSuite) TestSetExplicit_NoAssociations() {
	flag := suite.allRegionsFlag()
	wsID := uuid.New()
	ids := []uuid.UUID{wsID}

	suite.mockWorkspaces.EXPECT().GetByIDs(suite.ctx, ids).Return([]models.Workspace{
		{BaseModel: models.BaseModel{ID: wsID}, Name: "ws-1"},
	}, nil)
	suite.mockAssociations.EXPECT().GetByFlagAndWorkspaces(suite.ctx, flag.ID, ids).Return(nil, nil)

	result, err := suite.engine.SetExplicit(suite.ctx, flag, ids, true)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsInvalidArgument(err))
	assert.Contains(suite.T(), err.Error(), "no associations found")
	assert.Nil(suite.T(), result)
}

func (suite *RolloutEngineTestSuite) TestSetExplicit_PartialAssociations() {
	// Both workspaces exist but only one has an association row; the whole
	// request must fail instead of updating one and skipping the other.
	flag := suite.allRegionsFlag()
	covered := uuid.New()
	uncovered := uuid.New()
	ids := []uuid.UUID{covered, uncovered}

	suite.mockWorkspaces.EXPECT().GetByIDs(suite.ctx, ids).Return([]models.Workspace{
		{BaseModel: models.BaseModel{ID: covered}, Name: "ws-1"},
		{BaseModel: models.BaseModel{ID: uncovered}, Name: "ws-5"},
	}, nil)
	suite.mockAssociations.EXPECT().GetByFlagAndWorkspaces(suite.ctx, flag.ID, ids).Return([]models.WorkspaceFeatureFlagAssociation{
		{BaseModel: models.BaseModel{ID: uuid.New()}, FeatureFlagID: flag.ID, WorkspaceID: covered},
	}, nil)

	result, err := suite.engine.SetExplicit(suite.ctx, flag, ids, true)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoAssociationsFound)
	assert.True(suite.T(), apperrors.IsInvalidArgument(err))
	assert.Contains(suite.T(), err.Error(), uncovered.String())
	assert.Nil(suite.T(), result)
}

func (suite *RolloutEngineTestSuite) TestSetExplicit_EnableSuccess() {
	flag := suite.allRegionsFlag()
	ws1 := uuid.New()
	ws2 := uuid.New()
	ids := []uuid.UUID{ws1, ws2}

	associations := []models.WorkspaceFeatureFlagAssociation{
		{BaseModel: models.BaseModel{ID: uuid.New()}, FeatureFlagID: flag.ID, WorkspaceID: ws1},
		{BaseModel: models.BaseModel{ID: uuid.New()}, FeatureFlagID: flag.ID, WorkspaceID: ws2},
	}
	associationRowIDs := associationIDs(associations)

	suite.mockWorkspaces.EXPECT().GetByIDs(suite.ctx, ids).Return([]models.Workspace{
		{BaseModel: models.BaseModel{ID: ws1}, Name: "ws-1"},
		{BaseModel: models.BaseModel{ID: ws2}, Name: "ws-2"},
	}, nil)
	suite.mockAssociations.EXPECT().GetByFlagAndWorkspaces(suite.ctx, flag.ID, ids).Return(associations, nil)
	suite.mockAssociations.EXPECT().CountEnabledByFlag(suite.ctx, flag.ID).Return(int64(1), nil)
	suite.mockAssociations.EXPECT().SetEnabledByIDs(suite.ctx, associationRowIDs, true).Return(nil)
	suite.mockAssociations.EXPECT().CountEnabledByFlag(suite.ctx, flag.ID).Return(int64(3), nil)

	result, err := suite.engine.SetExplicit(suite.ctx, flag, ids, true)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), result)
	assert.Equal(suite.T(), int64(1), result.OldEnabledCount)
	assert.Equal(suite.T(), int64(3), result.NewEnabledCount)
}

func (suite *RolloutEngineTestSuite) TestSetExplicit_DisableSuccess() {
	flag := suite.allRegionsFlag()
	wsID := uuid.New()
	ids := []uuid.UUID{wsID}

	associations := []models.WorkspaceFeatureFlagAssociation{
		{BaseModel: models.BaseModel{ID: uuid.New()}, FeatureFlagID: flag.ID, WorkspaceID: wsID, Enabled: true},
	}

	suite.mockWorkspaces.EXPECT().GetByIDs(suite.ctx, ids).Return([]models.Workspace{
		{BaseModel: models.BaseModel{ID: wsID}, Name: "ws-1"},
	}, nil)
	suite.mockAssociations.EXPECT().GetByFlagAndWorkspaces(suite.ctx, flag.ID, ids).Return(associations, nil)
	suite.mockAssociations.EXPECT().CountEnabledByFlag(suite.ctx, flag.ID).Return(int64(4), nil)
	suite.mockAssociations.EXPECT().SetEnabledByIDs(suite.ctx, associationIDs(associations), false).Return(nil)
	suite.mockAssociations.EXPECT().CountEnabledByFlag(suite.ctx, flag.ID).Return(int64(3), nil)

	result, err := suite.engine.SetExplicit(suite.ctx, flag, ids, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(4), result.OldEnabledCount)
	assert.Equal(suite.T(), int64(3), result.NewEnabledCount)
}

func associationIDs(associations []models.WorkspaceFeatureFlagAssociation) []uuid.UUID {
	ids := make([]uuid.UUID, len(associations))
	for i, a := range associations {
		ids[i] = a.ID
	}
	return ids
}

func TestRolloutEngineTestSuite(t *testing.T) {
	suite.Run(t, new(RolloutEngineTestSuite))
}
