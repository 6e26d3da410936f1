package handlers

import (
	"net/http"
	"testing"

	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/mocks"
	"sysmayal-backend/internal/service"
	"sysmayal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MarketResearchHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMarketResearchServiceInterface
	handler     *MarketResearchHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *MarketResearchHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMarketResearchServiceInterface(suite.ctrl)
	suite.handler = NewMarketResearchHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	research := suite.httpSuite.Router.Group("/api/v1/market-research")
	{
		research.POST("", suite.handler.CreateStudy)
		research.GET("", suite.handler.ListStudies)
		research.GET("/landscape", suite.handler.GetLandscapeReport)
		research.GET("/intelligence/:country", suite.handler.GetIntelligence)
		research.GET("/:id", suite.handler.GetStudy)
		research.PUT("/:id", suite.handler.UpdateStudy)
		research.DELETE("/:id", suite.handler.DeleteStudy)
		research.GET("/:id/competitive-summary", suite.handler.GetCompetitiveSummary)
		research.GET("/:id/report", suite.handler.GenerateReport)
	}
}

func (suite *MarketResearchHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MarketResearchHandlerTestSuite) TestCreateStudy() {
	study := testutils.NewMarketResearchFactory().WithCountry("Brazil")

	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *service.MarketResearchRequest) (*service.MarketResearchResponse, error) {
			assert.Equal(suite.T(), "Brazil", req.Country)
			assert.Nil(suite.T(), req.ResearchDate.OrNil())
			return &service.MarketResearchResponse{MarketResearch: study}, nil
		})

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/market-research", map[string]interface{}{
		"research_title": study.ResearchTitle,
		"country":        "Brazil",
		"research_date":  "",
	})

	var response models.MarketResearch
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), study.ID, response.ID)
}

func (suite *MarketResearchHandlerTestSuite) TestCreateStudyInFuture() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrResearchDateInFuture)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/market-research", map[string]interface{}{
		"research_title": "Aloe beverages",
		"country":        "Brazil",
		"research_date":  "2099-01-01",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Research date cannot be in the future")
}

func (suite *MarketResearchHandlerTestSuite) TestGetStudyInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/market-research/abc", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid study ID")
}

func (suite *MarketResearchHandlerTestSuite) TestListStudiesPassesFilter() {
	filter := service.MarketResearchFilter{Status: "Completed", Region: "Latin America", ProductCategory: "Beverages"}
	suite.mockService.EXPECT().
		GetAll(gomock.Any(), filter, 1, 20).
		Return(&service.MarketResearchListResponse{Page: 1, PageSize: 20}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/market-research?status=Completed&region=Latin%20America&product_category=Beverages", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *MarketResearchHandlerTestSuite) TestUpdateStudyNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		Return(nil, apperrors.ErrMarketResearchNotFound)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/market-research/"+id.String(), map[string]interface{}{
		"research_title":  "Aloe beverages",
		"country":         "Brazil",
		"research_status": "Completed",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "market research study not found")
}

func (suite *MarketResearchHandlerTestSuite) TestDeleteStudy() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/market-research/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *MarketResearchHandlerTestSuite) TestGetCompetitiveSummary() {
	id := uuid.New()
	suite.mockService.EXPECT().
		GetCompetitiveSummary(gomock.Any(), id).
		Return(&service.CompetitiveSummary{MainCompetitors: "Forever Living, Lily of the Desert"}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/market-research/"+id.String()+"/competitive-summary", nil)

	var summary service.CompetitiveSummary
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &summary)
	assert.Equal(suite.T(), "Forever Living, Lily of the Desert", summary.MainCompetitors)
}

func (suite *MarketResearchHandlerTestSuite) TestGenerateReportNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().
		GenerateReport(gomock.Any(), id).
		Return(nil, apperrors.ErrMarketResearchNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/market-research/"+id.String()+"/report", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "market research study not found")
}

func (suite *MarketResearchHandlerTestSuite) TestGetIntelligence() {
	suite.mockService.EXPECT().
		GetIntelligence(gomock.Any(), "Mexico").
		Return(&service.MarketIntelligence{Country: "Mexico", TotalResearchStudies: 3, KeyCompetitors: []string{"Aloe Farms"}}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/market-research/intelligence/Mexico", nil)

	var intelligence service.MarketIntelligence
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &intelligence)
	assert.Equal(suite.T(), 3, intelligence.TotalResearchStudies)
}

func (suite *MarketResearchHandlerTestSuite) TestGetLandscapeReport() {
	suite.mockService.EXPECT().
		GetLandscapeReport(gomock.Any(), "Cosmetics", "Europe").
		Return(&service.LandscapeReport{
			TotalStudies:   2,
			TopCompetitors: []service.CompetitorMention{{Competitor: "Aloe Farms", Mentions: 2}},
		}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/market-research/landscape?product_category=Cosmetics&region=Europe", nil)

	var report service.LandscapeReport
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &report)
	assert.Equal(suite.T(), 2, report.TopCompetitors[0].Mentions)
}

func TestMarketResearchHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MarketResearchHandlerTestSuite))
}
