package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"feature-flag-backend/internal/api/handlers"
	apperrors "feature-flag-backend/internal/errors"
	"feature-flag-backend/internal/mocks"
	"feature-flag-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WorkspaceHandlerTestSuite defines the test suite for WorkspaceHandler
type WorkspaceHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockWsSvc *mocks.MockWorkspaceServiceInterface
	handler   *handlers.WorkspaceHandler
	router    *gin.Engine
}

func (suite *WorkspaceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWsSvc = mocks.NewMockWorkspaceServiceInterface(suite.ctrl)
	suite.handler = handlers.NewWorkspaceHandler(suite.mockWsSvc)

	suite.router = gin.New()
	suite.router.GET("/workspaces", suite.handler.ListWorkspaces)
	suite.router.POST("/workspaces", suite.handler.CreateWorkspace)
	suite.router.GET("/workspaces/:id", suite.handler.GetWorkspace)
	suite.router.PUT("/workspaces/:id", suite.handler.UpdateWorkspace)
	suite.router.DELETE("/workspaces/:id", suite.handler.DeleteWorkspace)
	suite.router.GET("/workspaces/:id/flags", suite.handler.ListEnabledFlags)
}

func (suite *WorkspaceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkspaceHandlerTestSuite) jsonRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *WorkspaceHandlerTestSuite) TestCreateWorkspace_Success() {
	region := "us-east-1"
	resp := &service.WorkspaceResponse{
		ID:     uuid.New(),
		Name:   "acme-production",
		Type:   "production",
		Region: &region,
	}
	suite.mockWsSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(resp, nil)

	w := suite.jsonRequest(http.MethodPost, "/workspaces", map[string]interface{}{
		"name":   "acme-production",
		"type":   "production",
		"region": "us-east-1",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.WorkspaceResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "acme-production", got.Name)
	assert.Equal(suite.T(), "us-east-1", *got.Region)
}

func (suite *WorkspaceHandlerTestSuite) TestCreateWorkspace_Conflict() {
	suite.mockWsSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrWorkspaceExists)

	w := suite.jsonRequest(http.MethodPost, "/workspaces", map[string]interface{}{
		"name": "acme-production",
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *WorkspaceHandlerTestSuite) TestCreateWorkspace_InvalidBody() {
	w := suite.jsonRequest(http.MethodPost, "/workspaces", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *WorkspaceHandlerTestSuite) TestGetWorkspace_Success() {
	id := uuid.New()
	resp := &service.WorkspaceResponse{ID: id, Name: "acme-production"}
	suite.mockWsSvc.EXPECT().GetByID(gomock.Any(), id).Return(resp, nil)

	w := suite.jsonRequest(http.MethodGet, "/workspaces/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.WorkspaceResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), id, got.ID)
}

func (suite *WorkspaceHandlerTestSuite) TestGetWorkspace_NotFound() {
	id := uuid.New()
	suite.mockWsSvc.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrWorkspaceNotFound)

	w := suite.jsonRequest(http.MethodGet, "/workspaces/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *WorkspaceHandlerTestSuite) TestGetWorkspace_InvalidID() {
	w := suite.jsonRequest(http.MethodGet, "/workspaces/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *WorkspaceHandlerTestSuite) TestListWorkspaces_Pagination() {
	resp := &service.WorkspaceListResponse{
		Workspaces: []service.WorkspaceResponse{{ID: uuid.New(), Name: "ws-1"}},
		Total:      15,
		Page:       2,
		PageSize:   10,
	}
	suite.mockWsSvc.EXPECT().List(gomock.Any(), 2, 10).Return(resp, nil)

	w := suite.jsonRequest(http.MethodGet, "/workspaces?page=2&page_size=10", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.WorkspaceListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(15), got.Total)
	assert.Equal(suite.T(), 2, got.Page)
}

func (suite *WorkspaceHandlerTestSuite) TestUpdateWorkspace_NotFound() {
	id := uuid.New()
	suite.mockWsSvc.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrWorkspaceNotFound)

	w := suite.jsonRequest(http.MethodPut, "/workspaces/"+id.String(), map[string]interface{}{
		"name": "renamed",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *WorkspaceHandlerTestSuite) TestDeleteWorkspace_Success() {
	id := uuid.New()
	suite.mockWsSvc.EXPECT().Delete(gomock.Any(), id).Return(nil)

	w := suite.jsonRequest(http.MethodDelete, "/workspaces/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Empty(suite.T(), w.Body.Bytes())
}

func (suite *WorkspaceHandlerTestSuite) TestDeleteWorkspace_NotFound() {
	id := uuid.New()
	suite.mockWsSvc.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrWorkspaceNotFound)

	w := suite.jsonRequest(http.MethodDelete, "/workspaces/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *WorkspaceHandlerTestSuite) TestListEnabledFlags_Success() {
	id := uuid.New()
	flags := []service.FeatureFlagResponse{
		{ID: uuid.New(), Name: "dark-mode", Team: "frontend", RolloutPercentage: 100},
	}
	suite.mockWsSvc.EXPECT().ListEnabledFlags(gomock.Any(), id).Return(flags, nil)

	w := suite.jsonRequest(http.MethodGet, "/workspaces/"+id.String()+"/flags", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.FeatureFlagResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "dark-mode", got[0].Name)
}

func (suite *WorkspaceHandlerTestSuite) TestListEnabledFlags_WorkspaceNotFound() {
	id := uuid.New()
	suite.mockWsSvc.EXPECT().ListEnabledFlags(gomock.Any(), id).Return(nil, apperrors.ErrWorkspaceNotFound)

	w := suite.jsonRequest(http.MethodGet, "/workspaces/"+id.String()+"/flags", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestWorkspaceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceHandlerTestSuite))
}
