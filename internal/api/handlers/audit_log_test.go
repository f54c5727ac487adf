package handlers_test

import (
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

// AuditLogHandlerTestSuite defines the test suite for AuditLogHandler
type AuditLogHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockAuditSvc *mocks.MockAuditLogServiceInterface
	handler      *handlers.AuditLogHandler
	router       *gin.Engine
}

func (suite *AuditLogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAuditSvc = mocks.NewMockAuditLogServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAuditLogHandler(suite.mockAuditSvc)

	suite.router = gin.New()
	suite.router.GET("/audit-logs", suite.handler.ListAuditLogs)
}

func (suite *AuditLogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuditLogHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuditLogHandlerTestSuite) TestListAuditLogs_Success() {
	flagID := uuid.New()
	resp := &service.AuditLogListResponse{
		Entries: []service.AuditLogResponse{
			{
				ID:            uuid.New(),
				FeatureFlagID: &flagID,
				FlagName:      "dark-mode",
				Team:          "frontend",
				Operation:     "UPDATE",
				OldValues:     map[string]interface{}{"rollout_percentage": float64(10)},
				NewValues:     map[string]interface{}{"rollout_percentage": float64(60)},
			},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}

	suite.mockAuditSvc.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, query *service.AuditLogQuery) (*service.AuditLogListResponse, error) {
			assert.Equal(suite.T(), flagID, *query.FeatureFlagID)
			assert.Equal(suite.T(), "frontend", query.Team)
			assert.Equal(suite.T(), "UPDATE", query.Operation)
			assert.Equal(suite.T(), 1, query.Page)
			assert.Equal(suite.T(), 20, query.PageSize)
			return resp, nil
		})

	w := suite.get("/audit-logs?flag_id=" + flagID.String() + "&team=frontend&operation=UPDATE")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.AuditLogListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Entries, 1)
	assert.Equal(suite.T(), "UPDATE", got.Entries[0].Operation)
	assert.Equal(suite.T(), float64(60), got.Entries[0].NewValues["rollout_percentage"])
}

func (suite *AuditLogHandlerTestSuite) TestListAuditLogs_NoFilters() {
	resp := &service.AuditLogListResponse{
		Entries:  []service.AuditLogResponse{},
		Total:    0,
		Page:     1,
		PageSize: 20,
	}
	suite.mockAuditSvc.EXPECT().List(gomock.Any(), gomock.Any()).Return(resp, nil)

	w := suite.get("/audit-logs")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AuditLogHandlerTestSuite) TestListAuditLogs_InvalidFlagID() {
	w := suite.get("/audit-logs?flag_id=not-a-uuid")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "Invalid flag ID", body["error"])
}

func (suite *AuditLogHandlerTestSuite) TestListAuditLogs_InvalidOperation() {
	suite.mockAuditSvc.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidAuditOperation)

	w := suite.get("/audit-logs?operation=TRUNCATE")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestAuditLogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuditLogHandlerTestSuite))
}
