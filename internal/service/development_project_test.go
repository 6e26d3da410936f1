package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/cache"
	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/mocks"
	"sysmayal-backend/internal/repository"
	"sysmayal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// DevelopmentProjectServiceTestSuite defines the test suite for DevelopmentProjectService
type DevelopmentProjectServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockDevelopmentProjectRepositoryInterface
	mockCommentRepo *mocks.MockCommentRepositoryInterface
	projectService  *service.DevelopmentProjectService
	ctx             context.Context
}

func (suite *DevelopmentProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockDevelopmentProjectRepositoryInterface(suite.ctrl)
	suite.mockCommentRepo = mocks.NewMockCommentRepositoryInterface(suite.ctrl)
	suite.ctx = auth.ContextWithUser(context.Background(), "rnd.lead", "rnd.lead@sysmayal.com")

	suite.projectService = service.NewDevelopmentProjectService(suite.mockRepo, suite.mockCommentRepo, nil, validator.New())
}

func (suite *DevelopmentProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DevelopmentProjectServiceTestSuite) TestCreateAppliesDefaults() {
	req := &service.DevelopmentProjectRequest{
		ProjectName:         "Cold-pressed aloe juice",
		EstimatedInvestment: decimal.NewFromInt(80_000),
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(project *models.DevelopmentProject) error {
			assert.Equal(suite.T(), "rnd.lead", project.CreatedBy)
			return nil
		}).
		Times(1)

	response, err := suite.projectService.Create(suite.ctx, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ProjectStatusPlanning, response.Status)
	assert.Equal(suite.T(), models.PriorityMedium, response.Priority)
	assert.Equal(suite.T(), "Not Started", response.ComplianceStatus)
	require.NotNil(suite.T(), response.LastUpdateDate)
	assert.Equal(suite.T(), models.Today(), *response.LastUpdateDate)
}

func (suite *DevelopmentProjectServiceTestSuite) TestCreateRejectsStartAfterCompletion() {
	start := models.DateOf(2026, time.June, 1)
	end := models.DateOf(2026, time.May, 1)

	response, err := suite.projectService.Create(suite.ctx, &service.DevelopmentProjectRequest{
		ProjectName:        "Aloe lip balm",
		StartDate:          &start,
		ExpectedCompletion: &end,
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectStartAfterEnd)
}

func (suite *DevelopmentProjectServiceTestSuite) TestCreateValidationError() {
	response, err := suite.projectService.Create(suite.ctx, &service.DevelopmentProjectRequest{
		ProjectName: "Aloe lip balm",
		Status:      "Shipped",
	})

	assert.Nil(suite.T(), response)
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *DevelopmentProjectServiceTestSuite) TestUpdateKeepsComplianceStatus() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.DevelopmentProject{BaseModel: models.BaseModel{ID: id}}, nil).Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(project *models.DevelopmentProject) error {
			assert.Equal(suite.T(), "Dossier Submitted", project.ComplianceStatus)
			assert.Equal(suite.T(), models.ProjectStatusRegulatoryReview, project.Status)
			assert.Equal(suite.T(), "rnd.lead", project.UpdatedBy)
			return nil
		}).
		Times(1)

	_, err := suite.projectService.Update(suite.ctx, id, &service.DevelopmentProjectRequest{
		ProjectName:      "Aloe lip balm",
		Status:           models.ProjectStatusRegulatoryReview,
		ComplianceStatus: "Dossier Submitted",
	})

	require.NoError(suite.T(), err)
}

func (suite *DevelopmentProjectServiceTestSuite) TestUpdateNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.projectService.Update(suite.ctx, id, &service.DevelopmentProjectRequest{ProjectName: "Missing"})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func (suite *DevelopmentProjectServiceTestSuite) TestGetSummary() {
	start := models.DateOf(2026, time.January, 1)
	end := models.DateOf(2026, time.March, 2)
	project := &models.DevelopmentProject{
		BaseModel:            models.BaseModel{ID: uuid.New()},
		ProjectName:          "Cold-pressed aloe juice",
		Status:               models.ProjectStatusTesting,
		StartDate:            &start,
		ExpectedCompletion:   &end,
		CompletionPercentage: 60,
		ProjectManager:       "Lena Fischer",
		RegulatoryLead:       "Omar Haddad",
		TeamMembers:          "Ana, Ben, , Chloe",
		TargetCountries:      "Germany, France, Spain",
	}
	suite.mockRepo.EXPECT().GetByID(project.ID).Return(project, nil).Times(1)

	summary, err := suite.projectService.GetSummary(suite.ctx, project.ID)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), summary.DurationDays)
	assert.Equal(suite.T(), 60, *summary.DurationDays)
	assert.Equal(suite.T(), 5, summary.TeamSize)
	assert.Equal(suite.T(), 3, summary.TargetCountriesCount)
	assert.Equal(suite.T(), models.ProjectStatusTesting, summary.Status)
}

func (suite *DevelopmentProjectServiceTestSuite) TestGetSummaryWithoutDates() {
	project := &models.DevelopmentProject{BaseModel: models.BaseModel{ID: uuid.New()}, ProjectName: "Idea"}
	suite.mockRepo.EXPECT().GetByID(project.ID).Return(project, nil).Times(1)

	summary, err := suite.projectService.GetSummary(suite.ctx, project.ID)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), summary.DurationDays)
	assert.Zero(suite.T(), summary.TeamSize)
	assert.Zero(suite.T(), summary.TargetCountriesCount)
}

func (suite *DevelopmentProjectServiceTestSuite) TestGetComments() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.DevelopmentProject{}, nil).Times(1)
	suite.mockCommentRepo.EXPECT().
		GetByReference(models.ReferenceProject, id).
		Return([]models.Comment{{Content: "Market Research insights available"}}, nil).
		Times(1)

	comments, err := suite.projectService.GetComments(suite.ctx, id)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), comments, 1)
}

func (suite *DevelopmentProjectServiceTestSuite) TestGetDashboardUsesCache() {
	store := cache.NewMemoryCache()
	svc := service.NewDevelopmentProjectService(
		suite.mockRepo, suite.mockCommentRepo, service.NewDashboardCache(store, time.Minute), validator.New(),
	)

	suite.mockRepo.EXPECT().CountByStatus().Return([]repository.GroupCount{{Key: "Testing", Count: 2}}, nil).Times(1)
	suite.mockRepo.EXPECT().CountByPriority().Return([]repository.GroupCount{{Key: "High", Count: 1}}, nil).Times(1)
	suite.mockRepo.EXPECT().CountByCompletionStage().Return([]repository.GroupCount{{Key: "Late Stage", Count: 2}}, nil).Times(1)

	_, err := svc.GetDashboard(suite.ctx)
	require.NoError(suite.T(), err)
	dashboard, err := svc.GetDashboard(suite.ctx)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), []repository.GroupCount{{Key: "Late Stage", Count: 2}}, dashboard.CompletionSummary)
}

func (suite *DevelopmentProjectServiceTestSuite) TestGetDashboardError() {
	suite.mockRepo.EXPECT().CountByStatus().Return(nil, errors.New("timeout")).Times(1)

	dashboard, err := suite.projectService.GetDashboard(suite.ctx)

	assert.Nil(suite.T(), dashboard)
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to count project status")
}

func (suite *DevelopmentProjectServiceTestSuite) TestGetAllPaginates() {
	filter := service.DevelopmentProjectFilter{Status: "Testing"}
	suite.mockRepo.EXPECT().
		GetAll(repository.DevelopmentProjectFilter{Status: "Testing"}, 20, 20).
		Return([]models.DevelopmentProject{{ProjectName: "Aloe lip balm"}}, int64(21), nil).
		Times(1)

	response, err := suite.projectService.GetAll(suite.ctx, filter, 2, 0)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(21), response.Total)
	assert.Equal(suite.T(), 2, response.Page)
	assert.Equal(suite.T(), 20, response.PageSize)
}

func TestDevelopmentProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DevelopmentProjectServiceTestSuite))
}
