package service_test

import (
	"context"
	"testing"

	"feature-flag-backend/internal/database/models"
	apperrors "feature-flag-backend/internal/errors"
	"feature-flag-backend/internal/mocks"
	"feature-flag-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WorkspaceServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockWorkspaces   *mocks.MockWorkspaceRepositoryInterface
	mockFlags        *mocks.MockFeatureFlagRepositoryInterface
	mockAssociations *mocks.MockAssociationRepositoryInterface
	mockTx           *mocks.MockTransactionManagerInterface
	workspaceService *service.WorkspaceService
	ctx              context.Context
}

func (suite *WorkspaceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWorkspaces = mocks.NewMockWorkspaceRepositoryInterface(suite.ctrl)
	suite.mockFlags = mocks.NewMockFeatureFlagRepositoryInterface(suite.ctrl)
	suite.mockAssociations = mocks.NewMockAssociationRepositoryInterface(suite.ctrl)
	suite.mockTx = mocks.NewMockTransactionManagerInterface(suite.ctrl)
	suite.workspaceService = service.NewWorkspaceService(
		suite.mockWorkspaces,
		suite.mockFlags,
		suite.mockAssociations,
		suite.mockTx,
		validator.New(),
	)
	suite.ctx = context.Background()
}

func (suite *WorkspaceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkspaceServiceTestSuite) expectTransaction() {
	suite.mockTx.EXPECT().
		RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func (suite *WorkspaceServiceTestSuite) TestCreate_SeedsAssociationsForExistingFlags() {
	region := "us-east-1"
	req := &service.CreateWorkspaceRequest{
		Name:   "acme-production",
		Type:   "production",
		Region: &region,
	}
	flagIDs := []uuid.UUID{uuid.New(), uuid.New()}

	suite.expectTransaction()
	suite.mockWorkspaces.EXPECT().GetByName(suite.ctx, "acme-production").Return(nil, gorm.ErrRecordNotFound)
	suite.mockWorkspaces.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)
	suite.mockFlags.EXPECT().GetAllIDs(suite.ctx).Return(flagIDs, nil)

	var seeded []models.WorkspaceFeatureFlagAssociation
	suite.mockAssociations.EXPECT().
		CreateBatch(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, associations []models.WorkspaceFeatureFlagAssociation) error {
			seeded = associations
			return nil
		})

	resp, err := suite.workspaceService.Create(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "acme-production", resp.Name)
	assert.Equal(suite.T(), "us-east-1", *resp.Region)

	// A late workspace starts disabled for every existing flag
	assert.Len(suite.T(), seeded, 2)
	for i, a := range seeded {
		assert.Equal(suite.T(), flagIDs[i], a.FeatureFlagID)
		assert.False(suite.T(), a.Enabled)
	}
}

func (suite *WorkspaceServiceTestSuite) TestCreate_NoFlagsYet() {
	req := &service.CreateWorkspaceRequest{Name: "acme-staging"}

	suite.expectTransaction()
	suite.mockWorkspaces.EXPECT().GetByName(suite.ctx, "acme-staging").Return(nil, gorm.ErrRecordNotFound)
	suite.mockWorkspaces.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)
	suite.mockFlags.EXPECT().GetAllIDs(suite.ctx).Return(nil, nil)

	resp, err := suite.workspaceService.Create(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "acme-staging", resp.Name)
	assert.Nil(suite.T(), resp.Region)
}

func (suite *WorkspaceServiceTestSuite) TestCreate_DuplicateName() {
	req := &service.CreateWorkspaceRequest{Name: "acme-production"}

	suite.expectTransaction()
	suite.mockWorkspaces.EXPECT().GetByName(suite.ctx, "acme-production").Return(&models.Workspace{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "acme-production",
	}, nil)

	resp, err := suite.workspaceService.Create(suite.ctx, req)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkspaceExists)
	assert.Nil(suite.T(), resp)
}

func (suite *WorkspaceServiceTestSuite) TestCreate_ValidationError() {
	req := &service.CreateWorkspaceRequest{
		// Name missing
		Type: "production",
	}

	resp, err := suite.workspaceService.Create(suite.ctx, req)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
	assert.Nil(suite.T(), resp)
}

func (suite *WorkspaceServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockWorkspaces.EXPECT().GetByID(suite.ctx, id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.workspaceService.GetByID(suite.ctx, id)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkspaceNotFound)
	assert.Nil(suite.T(), resp)
}

func (suite *WorkspaceServiceTestSuite) TestList_Success() {
	workspaces := []models.Workspace{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "ws-1"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "ws-2"},
	}
	suite.mockWorkspaces.EXPECT().GetAll(suite.ctx, 20, 0).Return(workspaces, int64(2), nil)

	resp, err := suite.workspaceService.List(suite.ctx, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), resp.Total)
	assert.Len(suite.T(), resp.Workspaces, 2)
}

func (suite *WorkspaceServiceTestSuite) TestUpdate_Success() {
	ws := &models.Workspace{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "old-name",
		Type:      "staging",
	}
	region := "eu-central-1"
	req := &service.UpdateWorkspaceRequest{
		Name:   "new-name",
		Type:   "production",
		Region: &region,
	}

	suite.expectTransaction()
	suite.mockWorkspaces.EXPECT().GetByID(suite.ctx, ws.ID).Return(ws, nil)
	suite.mockWorkspaces.EXPECT().Update(suite.ctx, ws).Return(nil)

	resp, err := suite.workspaceService.Update(suite.ctx, ws.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "new-name", resp.Name)
	assert.Equal(suite.T(), "production", resp.Type)
	assert.Equal(suite.T(), "eu-central-1", *resp.Region)
}

func (suite *WorkspaceServiceTestSuite) TestDelete_CascadesAssociations() {
	id := uuid.New()

	suite.expectTransaction()
	suite.mockWorkspaces.EXPECT().GetByID(suite.ctx, id).Return(&models.Workspace{
		BaseModel: models.BaseModel{ID: id},
		Name:      "doomed",
	}, nil)
	suite.mockAssociations.EXPECT().DeleteByWorkspace(suite.ctx, id).Return(nil)
	suite.mockWorkspaces.EXPECT().Delete(suite.ctx, id).Return(nil)

	err := suite.workspaceService.Delete(suite.ctx, id)

	assert.NoError(suite.T(), err)
}

func (suite *WorkspaceServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()

	suite.expectTransaction()
	suite.mockWorkspaces.EXPECT().GetByID(suite.ctx, id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.workspaceService.Delete(suite.ctx, id)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkspaceNotFound)
}

func (suite *WorkspaceServiceTestSuite) TestListEnabledFlags_Success() {
	id := uuid.New()
	flags := []models.FeatureFlag{
		{
			BaseModel:         models.BaseModel{ID: uuid.New()},
			Name:              "dark-mode",
			Team:              "frontend",
			RolloutPercentage: 100,
			Regions:           datatypes.NewJSONSlice([]string{models.RegionAll}),
		},
	}

	suite.mockWorkspaces.EXPECT().GetByID(suite.ctx, id).Return(&models.Workspace{
		BaseModel: models.BaseModel{ID: id},
		Name:      "acme-production",
	}, nil)
	suite.mockAssociations.EXPECT().GetEnabledFlagsByWorkspace(suite.ctx, id).Return(flags, nil)

	resp, err := suite.workspaceService.ListEnabledFlags(suite.ctx, id)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), "dark-mode", resp[0].Name)
}

func (suite *WorkspaceServiceTestSuite) TestListEnabledFlags_WorkspaceNotFound() {
	id := uuid.New()
	suite.mockWorkspaces.EXPECT().GetByID(suite.ctx, id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.workspaceService.ListEnabledFlags(suite.ctx, id)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkspaceNotFound)
	assert.Nil(suite.T(), resp)
}

func TestWorkspaceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceServiceTestSuite))
}
