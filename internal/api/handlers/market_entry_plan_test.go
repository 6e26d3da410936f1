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

type MarketEntryPlanHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMarketEntryPlanServiceInterface
	handler     *MarketEntryPlanHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *MarketEntryPlanHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMarketEntryPlanServiceInterface(suite.ctrl)
	suite.handler = NewMarketEntryPlanHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	plans := suite.httpSuite.Router.Group("/api/v1/market-entry-plans")
	{
		plans.POST("", suite.handler.CreatePlan)
		plans.GET("", suite.handler.ListPlans)
		plans.GET("/opportunities", suite.handler.GetOpportunities)
		plans.GET("/report", suite.handler.GetReport)
		plans.GET("/:id", suite.handler.GetPlan)
		plans.PUT("/:id", suite.handler.UpdatePlan)
		plans.DELETE("/:id", suite.handler.DeletePlan)
		plans.GET("/:id/analysis", suite.handler.GetAnalysisSummary)
		plans.POST("/:id/milestones", suite.handler.UpdateMilestone)
	}
}

func (suite *MarketEntryPlanHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MarketEntryPlanHandlerTestSuite) TestCreatePlan() {
	plan := testutils.NewMarketEntryPlanFactory().WithCountry("Poland")

	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *service.MarketEntryPlanRequest) (*service.MarketEntryPlanResponse, error) {
			assert.Equal(suite.T(), "Poland", req.TargetCountry)
			assert.Nil(suite.T(), req.NextMilestoneDate.OrNil())
			return &service.MarketEntryPlanResponse{MarketEntryPlan: plan}, nil
		})

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/market-entry-plans", map[string]interface{}{
		"plan_title":          plan.PlanTitle,
		"target_country":      "Poland",
		"next_milestone_date": "",
	})

	var response models.MarketEntryPlan
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), plan.ID, response.ID)
}

func (suite *MarketEntryPlanHandlerTestSuite) TestCreatePlanDatesOutOfOrder() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrPlanDateAfterLaunch)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/market-entry-plans", map[string]interface{}{
		"plan_title":         "Launch",
		"target_country":     "Chile",
		"plan_date":          "2027-06-01",
		"target_launch_date": "2027-01-01",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Plan date cannot be after target launch date")
}

func (suite *MarketEntryPlanHandlerTestSuite) TestGetPlanNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().
		GetByID(gomock.Any(), id).
		Return(nil, apperrors.ErrMarketEntryPlanNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/market-entry-plans/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "market entry plan not found")
}

func (suite *MarketEntryPlanHandlerTestSuite) TestListPlansDefaultsPagination() {
	filter := service.MarketEntryPlanFilter{Status: "Approved", TargetCountry: "Chile"}
	suite.mockService.EXPECT().
		GetAll(gomock.Any(), filter, 1, 20).
		Return(&service.MarketEntryPlanListResponse{Page: 1, PageSize: 20}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/market-entry-plans?status=Approved&target_country=Chile&page=0&page_size=500", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *MarketEntryPlanHandlerTestSuite) TestUpdatePlanInvalidID() {
	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/market-entry-plans/42", map[string]interface{}{"plan_title": "x"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid plan ID")
}

func (suite *MarketEntryPlanHandlerTestSuite) TestDeletePlanNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrMarketEntryPlanNotFound)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/market-entry-plans/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "market entry plan not found")
}

func (suite *MarketEntryPlanHandlerTestSuite) TestGetAnalysisSummary() {
	id := uuid.New()
	days := 120
	suite.mockService.EXPECT().
		GetAnalysisSummary(gomock.Any(), id).
		Return(&service.PlanAnalysisSummary{TimelineAnalysis: service.PlanTimeline{DaysToLaunch: &days, CurrentPhase: "Regulatory approval"}}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/market-entry-plans/"+id.String()+"/analysis", nil)

	var summary service.PlanAnalysisSummary
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &summary)
	assert.Equal(suite.T(), 120, *summary.TimelineAnalysis.DaysToLaunch)
}

func (suite *MarketEntryPlanHandlerTestSuite) TestUpdateMilestone() {
	id := uuid.New()
	suite.mockService.EXPECT().
		UpdateMilestone(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.MilestoneRequest) (*service.MessageResponse, error) {
			assert.Equal(suite.T(), "Distributor agreement signed", req.Description)
			return &service.MessageResponse{Message: "Milestone updated"}, nil
		})

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/market-entry-plans/"+id.String()+"/milestones", map[string]interface{}{
		"description": "Distributor agreement signed",
		"date":        "2026-11-02",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *MarketEntryPlanHandlerTestSuite) TestGetOpportunities() {
	suite.mockService.EXPECT().
		GetOpportunities(gomock.Any()).
		Return([]service.MarketOpportunity{{CountryName: "Kenya", RegulatoryAuthority: "PPB"}}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/market-entry-plans/opportunities", nil)

	var opportunities []service.MarketOpportunity
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &opportunities)
	assert.Equal(suite.T(), "Kenya", opportunities[0].CountryName)
}

func (suite *MarketEntryPlanHandlerTestSuite) TestGetReportFailure() {
	suite.mockService.EXPECT().
		GetReport(gomock.Any(), service.MarketEntryPlanFilter{Priority: "High"}).
		Return(nil, assert.AnError)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/market-entry-plans/report?priority=High", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to get market entry report")
}

func TestMarketEntryPlanHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MarketEntryPlanHandlerTestSuite))
}
