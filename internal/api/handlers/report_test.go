package handlers

import (
	"errors"
	"net/http"
	"testing"

	"sysmayal-backend/internal/mocks"
	"sysmayal-backend/internal/service"
	"sysmayal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockReportServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
}

func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportHandlerTestSuite) register(recipients []string) {
	handler := NewReportHandler(suite.mockService, recipients)
	reports := suite.httpSuite.Router.Group("/api/v1/reports")
	reports.GET("/compliance", handler.ComplianceStatus)
	reports.POST("/compliance/digest", handler.SendComplianceDigest)
}

func (suite *ReportHandlerTestSuite) TestComplianceStatusPassesFilters() {
	suite.register(nil)
	suite.mockService.EXPECT().
		ComplianceStatus(gomock.Any(), service.ComplianceReportQuery{Country: "Sweden", RiskLevel: "High"}).
		Return(&service.ComplianceReport{}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/reports/compliance?country=Sweden&risk_level=High", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *ReportHandlerTestSuite) TestDigestUsesRequestRecipients() {
	suite.register([]string{"fallback@sysmayal.com"})
	suite.mockService.EXPECT().
		SendComplianceDigest(gomock.Any(), []string{"qa@sysmayal.com"}).
		Return(nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/reports/compliance/digest", DigestRequest{Recipients: []string{"qa@sysmayal.com"}})

	assert.Equal(suite.T(), http.StatusAccepted, recorder.Code)
}

func (suite *ReportHandlerTestSuite) TestDigestFallsBackToConfiguredRecipients() {
	suite.register([]string{"fallback@sysmayal.com"})
	suite.mockService.EXPECT().
		SendComplianceDigest(gomock.Any(), []string{"fallback@sysmayal.com"}).
		Return(nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/reports/compliance/digest", nil)

	assert.Equal(suite.T(), http.StatusAccepted, recorder.Code)
}

func (suite *ReportHandlerTestSuite) TestDigestWithoutRecipients() {
	suite.register(nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/reports/compliance/digest", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "No recipients configured")
}

func (suite *ReportHandlerTestSuite) TestDigestSendFailure() {
	suite.register([]string{"fallback@sysmayal.com"})
	suite.mockService.EXPECT().
		SendComplianceDigest(gomock.Any(), gomock.Any()).
		Return(errors.New("smtp: connection refused"))

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/reports/compliance/digest", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to send compliance digest")
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
