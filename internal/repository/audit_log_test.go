//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"feature-flag-backend/internal/database/models"
	"feature-flag-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
)

// AuditLogRepositoryTestSuite tests the AuditLogRepository
type AuditLogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AuditLogRepository
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *AuditLogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAuditLogRepository(suite.baseTestSuite.DB)
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *AuditLogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AuditLogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AuditLogRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert an audit entry with an explicit timestamp so ordering is deterministic
func (suite *AuditLogRepositoryTestSuite) createEntry(flagID *uuid.UUID, flagName, team string, op models.AuditOperation, createdAt time.Time) *models.AuditLog {
	entry := &models.AuditLog{
		ID:            uuid.New(),
		CreatedAt:     createdAt,
		FeatureFlagID: flagID,
		FlagName:      flagName,
		Team:          team,
		Operation:     op,
		NewValues:     datatypes.JSONMap{"rollout_percentage": float64(50)},
	}
	err := suite.baseTestSuite.DB.Create(entry).Error
	suite.NoError(err)
	return entry
}

func (suite *AuditLogRepositoryTestSuite) TestCreate() {
	flagID := uuid.New()
	changedBy := "alice"
	entry := &models.AuditLog{
		FeatureFlagID: &flagID,
		FlagName:      "dark-mode",
		Team:          "frontend",
		Operation:     models.AuditOperationCreate,
		NewValues:     datatypes.JSONMap{"name": "dark-mode", "rollout_percentage": float64(0)},
		ChangedBy:     &changedBy,
	}

	err := suite.repo.Create(suite.ctx, entry)
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, entry.ID)

	entries, total, err := suite.repo.List(suite.ctx, AuditLogFilter{}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("dark-mode", entries[0].FlagName)
	suite.Equal("alice", *entries[0].ChangedBy)
	suite.Equal(float64(0), entries[0].NewValues["rollout_percentage"])
}

func (suite *AuditLogRepositoryTestSuite) TestListNewestFirst() {
	flagID := uuid.New()
	base := time.Now().Add(-time.Hour)
	suite.createEntry(&flagID, "dark-mode", "frontend", models.AuditOperationCreate, base)
	suite.createEntry(&flagID, "dark-mode", "frontend", models.AuditOperationUpdate, base.Add(time.Minute))
	suite.createEntry(&flagID, "dark-mode", "frontend", models.AuditOperationDelete, base.Add(2*time.Minute))

	entries, total, err := suite.repo.List(suite.ctx, AuditLogFilter{}, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Equal(models.AuditOperationDelete, entries[0].Operation)
	suite.Equal(models.AuditOperationUpdate, entries[1].Operation)
	suite.Equal(models.AuditOperationCreate, entries[2].Operation)
}

func (suite *AuditLogRepositoryTestSuite) TestListFiltersByFlag() {
	flagA := uuid.New()
	flagB := uuid.New()
	now := time.Now()
	suite.createEntry(&flagA, "flag-a", "frontend", models.AuditOperationCreate, now)
	suite.createEntry(&flagB, "flag-b", "frontend", models.AuditOperationCreate, now)

	entries, total, err := suite.repo.List(suite.ctx, AuditLogFilter{FeatureFlagID: &flagA}, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("flag-a", entries[0].FlagName)
}

func (suite *AuditLogRepositoryTestSuite) TestListFiltersByTeamAndOperation() {
	flagID := uuid.New()
	now := time.Now()
	suite.createEntry(&flagID, "dark-mode", "frontend", models.AuditOperationCreate, now)
	suite.createEntry(&flagID, "dark-mode", "frontend", models.AuditOperationUpdate, now.Add(time.Second))
	suite.createEntry(&flagID, "new-invoices", "billing", models.AuditOperationUpdate, now.Add(2*time.Second))

	entries, total, err := suite.repo.List(suite.ctx, AuditLogFilter{
		Team:      "frontend",
		Operation: models.AuditOperationUpdate,
	}, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("dark-mode", entries[0].FlagName)
	suite.Equal(models.AuditOperationUpdate, entries[0].Operation)
}

func (suite *AuditLogRepositoryTestSuite) TestListPagination() {
	flagID := uuid.New()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		suite.createEntry(&flagID, "dark-mode", "frontend", models.AuditOperationUpdate, base.Add(time.Duration(i)*time.Minute))
	}

	entries, total, err := suite.repo.List(suite.ctx, AuditLogFilter{}, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(entries, 2)

	entries, total, err = suite.repo.List(suite.ctx, AuditLogFilter{}, 2, 4)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(entries, 1)
}

func (suite *AuditLogRepositoryTestSuite) TestEntriesSurviveWithoutFlagRow() {
	// FeatureFlagID is a plain column, not a foreign key; entries for deleted
	// flags must still be listable
	flagID := uuid.New()
	suite.createEntry(&flagID, "deleted-flag", "frontend", models.AuditOperationDelete, time.Now())

	entries, total, err := suite.repo.List(suite.ctx, AuditLogFilter{FeatureFlagID: &flagID}, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("deleted-flag", entries[0].FlagName)
}

// Run the test suite
func TestAuditLogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AuditLogRepositoryTestSuite))
}
