package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sysmayal-backend/internal/auth"
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

// MarketResearchServiceTestSuite defines the test suite for MarketResearchService
type MarketResearchServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockMarketResearchRepositoryInterface
	mockProjectRepo *mocks.MockDevelopmentProjectRepositoryInterface
	mockCommentRepo *mocks.MockCommentRepositoryInterface
	researchService *service.MarketResearchService
	ctx             context.Context
}

func (suite *MarketResearchServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockMarketResearchRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockDevelopmentProjectRepositoryInterface(suite.ctrl)
	suite.mockCommentRepo = mocks.NewMockCommentRepositoryInterface(suite.ctrl)
	suite.ctx = auth.ContextWithUser(context.Background(), "research.analyst", "research.analyst@sysmayal.com")

	suite.researchService = service.NewMarketResearchService(
		suite.mockRepo,
		suite.mockProjectRepo,
		suite.mockCommentRepo,
		nil,
		validator.New(),
	)
}

func (suite *MarketResearchServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MarketResearchServiceTestSuite) TestCreateAppliesDefaults() {
	req := &service.MarketResearchRequest{
		ResearchTitle: "Aloe beverages in Brazil",
		Country:       "Brazil",
		MarketValue:   decimal.NewFromInt(12_000_000),
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.researchService.Create(suite.ctx, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ResearchStatusPlanning, response.ResearchStatus)
	assert.Equal(suite.T(), models.PriorityMedium, response.Priority)
	assert.Equal(suite.T(), "research.analyst", response.ResearchLead)
	assert.Equal(suite.T(), "research.analyst", response.CreatedBy)
	require.NotNil(suite.T(), response.ResearchDate)
	assert.Equal(suite.T(), models.Today(), *response.ResearchDate)
	assert.Empty(suite.T(), response.Warnings)
}

func (suite *MarketResearchServiceTestSuite) TestCreateCompletedForcesFullCompletion() {
	req := &service.MarketResearchRequest{
		ResearchTitle:        "Consumer survey Mexico",
		Country:              "Mexico",
		ResearchStatus:       models.ResearchStatusCompleted,
		CompletionPercentage: 70,
		ResearchLead:         "Maria Lopez",
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.researchService.Create(suite.ctx, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 100, response.CompletionPercentage)
	assert.Equal(suite.T(), "Maria Lopez", response.ResearchLead)
}

func (suite *MarketResearchServiceTestSuite) TestCreateWarnsOnHighPlanningCompletion() {
	req := &service.MarketResearchRequest{
		ResearchTitle:        "Retail audit Chile",
		Country:              "Chile",
		ResearchStatus:       models.ResearchStatusPlanning,
		CompletionPercentage: 40,
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.researchService.Create(suite.ctx, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"Completion percentage seems high for Planning status"}, response.Warnings)
	assert.Equal(suite.T(), 40, response.CompletionPercentage)
}

func (suite *MarketResearchServiceTestSuite) TestCreateRejectsFutureResearchDate() {
	tomorrow := models.Today().AddDays(1)

	response, err := suite.researchService.Create(suite.ctx, &service.MarketResearchRequest{
		ResearchTitle: "Future study",
		Country:       "Peru",
		ResearchDate:  &tomorrow,
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrResearchDateInFuture)
}

func (suite *MarketResearchServiceTestSuite) TestCreateValidationError() {
	response, err := suite.researchService.Create(suite.ctx, &service.MarketResearchRequest{
		ResearchTitle:    "Bad score",
		Country:          "Peru",
		ReliabilityScore: 11,
	})

	assert.Nil(suite.T(), response)
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *MarketResearchServiceTestSuite) TestUpdateSharesInsightsWithProjects() {
	id := uuid.New()
	projectA, projectB := uuid.New(), uuid.New()
	findings := strings.Repeat("f", 250)

	suite.mockRepo.EXPECT().GetByID(id).Return(&models.MarketResearch{BaseModel: models.BaseModel{ID: id}}, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockProjectRepo.EXPECT().
		FindActiveForMarket("Brazil", "Beverages").
		Return([]models.DevelopmentProject{
			{BaseModel: models.BaseModel{ID: projectA}},
			{BaseModel: models.BaseModel{ID: projectB}},
		}, nil).
		Times(1)

	var commented []uuid.UUID
	suite.mockCommentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(comment *models.Comment) error {
			assert.Equal(suite.T(), models.ReferenceProject, comment.ReferenceType)
			assert.Equal(suite.T(), "research.analyst", comment.Author)
			assert.Equal(suite.T(),
				"Market Research insights available: Aloe beverages in Brazil. Key findings: "+strings.Repeat("f", 200)+"...",
				comment.Content)
			commented = append(commented, comment.ReferenceID)
			return nil
		}).
		Times(2)

	response, err := suite.researchService.Update(suite.ctx, id, &service.MarketResearchRequest{
		ResearchTitle:            "Aloe beverages in Brazil",
		Country:                  "Brazil",
		ProductCategory:          "Beverages",
		ResearchStatus:           models.ResearchStatusCompleted,
		KeyFindings:              findings,
		StrategicRecommendations: "Partner with a national retailer",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 100, response.CompletionPercentage)
	assert.Equal(suite.T(), []uuid.UUID{projectA, projectB}, commented)
}

func (suite *MarketResearchServiceTestSuite) TestUpdateWithoutRecommendationsSharesNothing() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(&models.MarketResearch{BaseModel: models.BaseModel{ID: id}}, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockProjectRepo.EXPECT().FindActiveForMarket(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.researchService.Update(suite.ctx, id, &service.MarketResearchRequest{
		ResearchTitle:  "Aloe beverages in Brazil",
		Country:        "Brazil",
		ResearchStatus: models.ResearchStatusCompleted,
	})

	require.NoError(suite.T(), err)
}

func (suite *MarketResearchServiceTestSuite) TestUpdateIgnoresProjectLookupFailure() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(&models.MarketResearch{BaseModel: models.BaseModel{ID: id}}, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockProjectRepo.EXPECT().FindActiveForMarket("Brazil", "").Return(nil, errors.New("connection reset")).Times(1)

	_, err := suite.researchService.Update(suite.ctx, id, &service.MarketResearchRequest{
		ResearchTitle:            "Aloe beverages in Brazil",
		Country:                  "Brazil",
		ResearchStatus:           models.ResearchStatusCompleted,
		StrategicRecommendations: "Launch in Sao Paulo first",
	})

	require.NoError(suite.T(), err)
}

func (suite *MarketResearchServiceTestSuite) TestUpdateAlreadyCompletedStudySharesNothing() {
	id := uuid.New()
	study := &models.MarketResearch{
		BaseModel:      models.BaseModel{ID: id},
		Country:        "Brazil",
		ResearchStatus: models.ResearchStatusCompleted,
	}

	suite.mockRepo.EXPECT().GetByID(id).Return(study, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockProjectRepo.EXPECT().FindActiveForMarket(gomock.Any(), gomock.Any()).Times(0)
	suite.mockCommentRepo.EXPECT().Create(gomock.Any()).Times(0)

	_, err := suite.researchService.Update(suite.ctx, id, &service.MarketResearchRequest{
		ResearchTitle:            "Aloe beverages in Brazil",
		Country:                  "Brazil",
		ResearchStatus:           models.ResearchStatusCompleted,
		StrategicRecommendations: "Partner with a national retailer",
	})

	require.NoError(suite.T(), err)
}

func (suite *MarketResearchServiceTestSuite) TestUpdateWithoutCountrySharesNothing() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(&models.MarketResearch{BaseModel: models.BaseModel{ID: id}}, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockProjectRepo.EXPECT().FindActiveForMarket(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.researchService.Update(suite.ctx, id, &service.MarketResearchRequest{
		ResearchTitle:            "Global aloe beverages",
		Country:                  "  ",
		ResearchStatus:           models.ResearchStatusCompleted,
		StrategicRecommendations: "Focus on Latin America",
	})

	require.NoError(suite.T(), err)
}

func (suite *MarketResearchServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.researchService.GetByID(suite.ctx, id)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMarketResearchNotFound)
}

func (suite *MarketResearchServiceTestSuite) TestGenerateReport() {
	study := &models.MarketResearch{
		BaseModel:                models.BaseModel{ID: uuid.New()},
		ResearchTitle:            "Aloe cosmetics in France",
		Country:                  "France",
		MarketSize:               "Large",
		MarketGrowthRate:         6.5,
		MainCompetitors:          "Lumiere, Verde",
		MarketShareAnalysis:      "Lumiere 30%",
		CompetitiveAdvantages:    "Organic certification",
		Strengths:                "Brand",
		Threats:                  "Private labels",
		StrategicRecommendations: "Pharmacy channel",
		PriceSensitivity:         "High",
	}
	suite.mockRepo.EXPECT().GetByID(study.ID).Return(study, nil).Times(2)

	report, err := suite.researchService.GenerateReport(suite.ctx, study.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Large", report.MarketOverview.MarketSize)
	assert.Equal(suite.T(), 6.5, report.MarketOverview.GrowthRate)
	assert.Equal(suite.T(), "Organic certification", report.CompetitiveLandscape.OurAdvantages)
	assert.Equal(suite.T(), "High", report.CustomerInsights.PriceSensitivity)
	assert.Equal(suite.T(), "Brand", report.SWOTAnalysis.Strengths)
	assert.Equal(suite.T(), "Pharmacy channel", report.Conclusions.Recommendations)

	competitive, err := suite.researchService.GetCompetitiveSummary(suite.ctx, study.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Lumiere 30%", competitive.MarketShareData)
}

func (suite *MarketResearchServiceTestSuite) TestGetIntelligence() {
	suite.mockRepo.EXPECT().
		GetCompleted(repository.MarketResearchFilter{Country: "Germany"}).
		Return([]models.MarketResearch{
			{ProductCategory: "Beverages", MainCompetitors: "AloeCo, GreenLeaf", GrowthOpportunities: "Sports drinks", MarketTrends: "Low sugar"},
			{ProductCategory: "Cosmetics", MainCompetitors: "GreenLeaf, Dermaloe", RegulatoryChallenges: "Novel food rules"},
			{ProductCategory: "Beverages"},
		}, nil).
		Times(1)

	intel, err := suite.researchService.GetIntelligence(suite.ctx, "Germany")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, intel.TotalResearchStudies)
	assert.Equal(suite.T(), []string{"Beverages", "Cosmetics"}, intel.MarketSegments)
	assert.Equal(suite.T(), []string{"AloeCo", "GreenLeaf", "Dermaloe"}, intel.KeyCompetitors)
	assert.Equal(suite.T(), []string{"Sports drinks"}, intel.GrowthOpportunities)
	assert.Equal(suite.T(), []string{"Novel food rules"}, intel.RegulatoryChallenges)
	assert.Equal(suite.T(), []string{"Low sugar"}, intel.MarketTrends)
}

func (suite *MarketResearchServiceTestSuite) TestGetIntelligenceWithoutStudies() {
	suite.mockRepo.EXPECT().GetCompleted(gomock.Any()).Return([]models.MarketResearch{}, nil).Times(1)

	intel, err := suite.researchService.GetIntelligence(suite.ctx, "Iceland")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "No market research data available for Iceland", intel.Message)
	assert.Zero(suite.T(), intel.TotalResearchStudies)
}

func (suite *MarketResearchServiceTestSuite) TestGetLandscapeReport() {
	suite.mockRepo.EXPECT().
		GetCompleted(repository.MarketResearchFilter{ProductCategory: "Beverages", Region: "Europe"}).
		Return([]models.MarketResearch{
			{Country: "Germany", MainCompetitors: "AloeCo, GreenLeaf", CompetitiveThreats: "Price war", Strengths: "Quality"},
			{Country: "France", MainCompetitors: "GreenLeaf", GrowthOpportunities: "Organic shops", Weaknesses: "Awareness"},
			{Country: "Germany", MainCompetitors: "GreenLeaf, Dermaloe"},
		}, nil).
		Times(1)

	report, err := suite.researchService.GetLandscapeReport(suite.ctx, "Beverages", "Europe")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, report.TotalStudies)
	assert.Equal(suite.T(), []string{"Germany", "France"}, report.MarketsAnalyzed)
	require.Len(suite.T(), report.TopCompetitors, 3)
	assert.Equal(suite.T(), service.CompetitorMention{Competitor: "GreenLeaf", Mentions: 3}, report.TopCompetitors[0])
	assert.Equal(suite.T(), "AloeCo", report.TopCompetitors[1].Competitor)
	assert.Equal(suite.T(), []service.MarketNote{{Market: "Germany", Text: "Price war"}}, report.CompetitiveThreats)
	assert.Equal(suite.T(), []service.MarketNote{{Market: "France", Text: "Organic shops"}}, report.MarketOpportunities)
	assert.Equal(suite.T(), []string{"Quality"}, report.SWOTSummary.Strengths)
	assert.Equal(suite.T(), []string{"Awareness"}, report.SWOTSummary.Weaknesses)
	assert.Empty(suite.T(), report.SWOTSummary.Threats)
}

func (suite *MarketResearchServiceTestSuite) TestGetLandscapeReportWithoutStudies() {
	suite.mockRepo.EXPECT().GetCompleted(gomock.Any()).Return(nil, nil).Times(1)

	report, err := suite.researchService.GetLandscapeReport(suite.ctx, "", "")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "No completed research studies found for the specified criteria", report.Message)
}

func (suite *MarketResearchServiceTestSuite) TestGetDashboard() {
	researched := models.Today().AddDays(-7)
	suite.mockRepo.EXPECT().CountByStatus().Return([]repository.GroupCount{{Key: "Completed", Count: 2}}, nil).Times(1)
	suite.mockRepo.EXPECT().TopCountries(10).Return([]repository.ResearchCountryOverview{{Country: "Brazil", StudyCount: 2}}, nil).Times(1)
	suite.mockRepo.EXPECT().CountByCategory().Return([]repository.GroupCount{{Key: "Beverages", Count: 2}}, nil).Times(1)
	suite.mockRepo.EXPECT().
		RecentCompleted(5).
		Return([]models.MarketResearch{{ResearchTitle: "Aloe beverages in Brazil", Country: "Brazil", ResearchDate: &researched}}, nil).
		Times(1)

	dashboard, err := suite.researchService.GetDashboard(suite.ctx)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), dashboard.RecentCompleted, 1)
	assert.Equal(suite.T(), "Aloe beverages in Brazil", dashboard.RecentCompleted[0].ResearchTitle)
	assert.Equal(suite.T(), int64(2), dashboard.CountryDistribution[0].StudyCount)
}

func (suite *MarketResearchServiceTestSuite) TestDeleteRepositoryError() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.MarketResearch{}, nil).Times(1)
	suite.mockRepo.EXPECT().Delete(id).Return(errors.New("locked")).Times(1)

	err := suite.researchService.Delete(suite.ctx, id)

	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to delete market research")
}

func TestMarketResearchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MarketResearchServiceTestSuite))
}
