package repository

import (
	"context"
	"testing"

	"feature-flag-backend/internal/database/models"
	"feature-flag-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// WorkspaceRepositoryTestSuite tests the WorkspaceRepository
type WorkspaceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WorkspaceRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *WorkspaceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewWorkspaceRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkspaceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WorkspaceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WorkspaceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a workspace directly via gorm
func (suite *WorkspaceRepositoryTestSuite) createWorkspace(name, region string) *models.Workspace {
	var ws *models.Workspace
	if region == "" {
		ws = suite.factories.Workspace.WithoutRegion()
	} else {
		ws = suite.factories.Workspace.WithRegion(region)
	}
	ws.Name = name
	err := suite.baseTestSuite.DB.Create(ws).Error
	suite.NoError(err)
	return ws
}

func (suite *WorkspaceRepositoryTestSuite) TestCreateAndGetByID() {
	ws := suite.factories.Workspace.WithName("acme-production")

	err := suite.repo.Create(suite.ctx, ws)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(suite.ctx, ws.ID)
	suite.NoError(err)
	suite.Equal("acme-production", retrieved.Name)
	suite.Equal("standard", retrieved.Type)
	suite.NotNil(retrieved.Region)
	suite.Equal("us-east-1", *retrieved.Region)
}

func (suite *WorkspaceRepositoryTestSuite) TestGetByIDNotFound() {
	ws, err := suite.repo.GetByID(suite.ctx, uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(ws)
}

func (suite *WorkspaceRepositoryTestSuite) TestGetByIDsSkipsMissing() {
	a := suite.createWorkspace("ws-a", "us-east-1")
	b := suite.createWorkspace("ws-b", "eu-central-1")

	workspaces, err := suite.repo.GetByIDs(suite.ctx, []uuid.UUID{a.ID, b.ID, uuid.New()})

	suite.NoError(err)
	suite.Len(workspaces, 2)
}

func (suite *WorkspaceRepositoryTestSuite) TestGetByIDsEmptyInput() {
	suite.createWorkspace("ws-a", "us-east-1")

	workspaces, err := suite.repo.GetByIDs(suite.ctx, nil)

	suite.NoError(err)
	suite.Empty(workspaces)
}

func (suite *WorkspaceRepositoryTestSuite) TestGetByName() {
	suite.createWorkspace("acme-production", "us-east-1")

	ws, err := suite.repo.GetByName(suite.ctx, "acme-production")

	suite.NoError(err)
	suite.Equal("acme-production", ws.Name)
}

func (suite *WorkspaceRepositoryTestSuite) TestGetByNameNotFound() {
	ws, err := suite.repo.GetByName(suite.ctx, "missing")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(ws)
}

func (suite *WorkspaceRepositoryTestSuite) TestGetAllWithPagination() {
	for i := 0; i < 5; i++ {
		suite.createWorkspace("ws-"+uuid.New().String()[:6], "us-east-1")
	}

	workspaces, total, err := suite.repo.GetAll(suite.ctx, 3, 0)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(workspaces, 3)

	workspaces, total, err = suite.repo.GetAll(suite.ctx, 3, 3)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(workspaces, 2)
}

func (suite *WorkspaceRepositoryTestSuite) TestGetAllIDs() {
	a := suite.createWorkspace("ws-a", "us-east-1")
	b := suite.createWorkspace("ws-b", "")

	ids, err := suite.repo.GetAllIDs(suite.ctx)

	suite.NoError(err)
	suite.Len(ids, 2)
	suite.Contains(ids, a.ID)
	suite.Contains(ids, b.ID)
}

func (suite *WorkspaceRepositoryTestSuite) TestUpdate() {
	ws := suite.createWorkspace("old-name", "us-east-1")

	newRegion := "eu-central-1"
	ws.Name = "new-name"
	ws.Region = &newRegion
	err := suite.repo.Update(suite.ctx, ws)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(suite.ctx, ws.ID)
	suite.NoError(err)
	suite.Equal("new-name", retrieved.Name)
	suite.Equal("eu-central-1", *retrieved.Region)
}

func (suite *WorkspaceRepositoryTestSuite) TestDelete() {
	ws := suite.createWorkspace("doomed", "us-east-1")

	err := suite.repo.Delete(suite.ctx, ws.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(suite.ctx, ws.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestWorkspaceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceRepositoryTestSuite))
}
