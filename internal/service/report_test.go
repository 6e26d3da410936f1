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
	"sysmayal-backend/internal/notification"
	"sysmayal-backend/internal/repository"
	"sysmayal-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReportServiceTestSuite defines the test suite for ReportService
type ReportServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockReportRepositoryInterface
	mockNotifier  *mocks.MockNotifierInterface
	reportService *service.ReportService
	ctx           context.Context
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockReportRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifierInterface(suite.ctrl)
	suite.ctx = auth.ContextWithUser(context.Background(), "compliance.manager", "compliance.manager@sysmayal.com")

	suite.reportService = service.NewReportService(suite.mockRepo, suite.mockNotifier, nil)
}

func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func daysPtr(n int) *int {
	return &n
}

func complianceRows() []repository.ComplianceReportRow {
	return []repository.ComplianceReportRow{
		{ProductName: "Aloe Gel 99%", ComplianceStatus: "Compliant", DaysToExpiry: daysPtr(20), DaysToReview: daysPtr(5)},
		{ProductName: "Aloe Juice", ComplianceStatus: "Compliant", DaysToExpiry: daysPtr(200)},
		{ProductName: "Aloe Cream", ComplianceStatus: "Non-Compliant", DaysToReview: daysPtr(0)},
		{ProductName: "Aloe Capsules", ComplianceStatus: "Expired", DaysToExpiry: daysPtr(-3)},
		{ProductName: "Aloe Soap", ComplianceStatus: "Compliant"},
	}
}

func (suite *ReportServiceTestSuite) TestComplianceStatus() {
	suite.mockRepo.EXPECT().
		ComplianceStatusRows(repository.ComplianceReportFilter{Country: "Germany"}, gomock.Any()).
		Return(complianceRows(), nil).
		Times(1)

	report, err := suite.reportService.ComplianceStatus(suite.ctx, service.ComplianceReportQuery{Country: "Germany"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.ComplianceReportSummary{
		TotalProducts:     5,
		CompliantProducts: 3,
		ComplianceRate:    60,
		NonCompliant:      1,
		Expired:           1,
		ExpiringSoon:      1,
		ReviewsDue:        1,
	}, report.Summary)

	assert.Equal(suite.T(), "donut", report.Chart.Type)
	assert.Equal(suite.T(), 300, report.Chart.Height)
	assert.Equal(suite.T(), []string{"Compliant", "Non-Compliant", "Expired"}, report.Chart.Data.Labels)
	require.Len(suite.T(), report.Chart.Data.Datasets, 1)
	assert.Equal(suite.T(), []int64{3, 1, 1}, report.Chart.Data.Datasets[0].Values)
}

func (suite *ReportServiceTestSuite) TestComplianceStatusParsesDates() {
	suite.mockRepo.EXPECT().
		ComplianceStatusRows(gomock.Any(), gomock.Any()).
		DoAndReturn(func(filter repository.ComplianceReportFilter, today time.Time) ([]repository.ComplianceReportRow, error) {
			require.NotNil(suite.T(), filter.FromDate)
			assert.Equal(suite.T(), time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), *filter.FromDate)
			assert.Nil(suite.T(), filter.ToDate)
			assert.Equal(suite.T(), models.Today().Time, today)
			return nil, nil
		}).
		Times(1)

	report, err := suite.reportService.ComplianceStatus(suite.ctx, service.ComplianceReportQuery{FromDate: "2026-01-01"})

	require.NoError(suite.T(), err)
	assert.Zero(suite.T(), report.Summary.TotalProducts)
	assert.Zero(suite.T(), report.Summary.ComplianceRate)
}

func (suite *ReportServiceTestSuite) TestComplianceStatusRejectsBadDate() {
	report, err := suite.reportService.ComplianceStatus(suite.ctx, service.ComplianceReportQuery{ToDate: "31/12/2026"})

	assert.Nil(suite.T(), report)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ReportServiceTestSuite) TestComplianceStatusIsCachedPerQuery() {
	svc := service.NewReportService(suite.mockRepo, suite.mockNotifier, service.NewDashboardCache(cache.NewMemoryCache(), time.Minute))

	suite.mockRepo.EXPECT().
		ComplianceStatusRows(repository.ComplianceReportFilter{Country: "Germany"}, gomock.Any()).
		Return(complianceRows(), nil).
		Times(1)
	suite.mockRepo.EXPECT().
		ComplianceStatusRows(repository.ComplianceReportFilter{Country: "France"}, gomock.Any()).
		Return(nil, nil).
		Times(1)

	for i := 0; i < 2; i++ {
		report, err := svc.ComplianceStatus(suite.ctx, service.ComplianceReportQuery{Country: "Germany"})
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 5, report.Summary.TotalProducts)
	}
	report, err := svc.ComplianceStatus(suite.ctx, service.ComplianceReportQuery{Country: "France"})
	require.NoError(suite.T(), err)
	assert.Zero(suite.T(), report.Summary.TotalProducts)
}

func (suite *ReportServiceTestSuite) TestGetFilters() {
	suite.mockRepo.EXPECT().ComplianceCountries().Return([]string{"France", "Germany"}, nil).Times(1)
	suite.mockRepo.EXPECT().ManufacturerNames().Return([]string{"Aloe Farms SA"}, nil).Times(1)
	suite.mockRepo.EXPECT().ResponsiblePeople().Return([]string{"Lena Fischer"}, nil).Times(1)

	options, err := suite.reportService.GetFilters(suite.ctx)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"France", "Germany"}, options.Countries)
	assert.Equal(suite.T(), models.ComplianceStatuses, options.ComplianceStatuses)
	assert.Equal(suite.T(), models.RiskLevels, options.RiskLevels)
}

func (suite *ReportServiceTestSuite) TestDistributionSummary() {
	minRevenue := decimal.NewFromInt(1000)
	expected := repository.DistributionReportFilter{Country: "Germany", MinRevenue: &minRevenue}
	expiry := models.Today().AddDays(45)

	suite.mockRepo.EXPECT().
		DistributionTotals(gomock.Any()).
		DoAndReturn(func(filter repository.DistributionReportFilter) (*repository.DistributionTotals, error) {
			require.NotNil(suite.T(), filter.MinRevenue)
			assert.True(suite.T(), filter.MinRevenue.Equal(*expected.MinRevenue))
			assert.Nil(suite.T(), filter.MaxRevenue)
			return &repository.DistributionTotals{TotalOrganizations: 8, Distributors: 5}, nil
		}).
		Times(1)
	suite.mockRepo.EXPECT().GeographicDistribution(gomock.Any()).Return([]repository.GeographicDistribution{}, nil).Times(1)
	suite.mockRepo.EXPECT().
		RegulatoryDistribution(gomock.Any()).
		Return([]repository.ShareCount{{Key: "Compliant", Count: 6, Percentage: 75}}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		ExpiringAgreements(gomock.Any(), gomock.Any(), 90).
		Return([]repository.ExpiringAgreement{{OrganizationName: "Aloe Distribution GmbH", AgreementExpiry: &expiry, DaysToExpiry: 45}}, nil).
		Times(1)

	summary, err := suite.reportService.DistributionSummary(suite.ctx, service.DistributionReportQuery{Country: "Germany", MinRevenue: "1000"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(8), summary.Totals.TotalOrganizations)
	assert.Equal(suite.T(), 75.0, summary.ComplianceDistribution[0].Percentage)
	require.Len(suite.T(), summary.ExpiringAgreements, 1)
	assert.Equal(suite.T(), 45, summary.ExpiringAgreements[0].DaysToExpiry)
}

func (suite *ReportServiceTestSuite) TestDistributionRejectsBadRevenue() {
	rows, err := suite.reportService.Distribution(suite.ctx, service.DistributionReportQuery{MaxRevenue: "lots"})

	assert.Nil(suite.T(), rows)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ReportServiceTestSuite) TestDistributionPerformanceUsesCurrentYear() {
	suite.mockRepo.EXPECT().PerformanceByType(gomock.Any()).Return([]repository.TypePerformance{}, nil).Times(1)
	suite.mockRepo.EXPECT().PerformanceByAge(gomock.Any(), models.Today().Year()).Return([]repository.AgeGroupPerformance{}, nil).Times(1)

	performance, err := suite.reportService.DistributionPerformance(suite.ctx, service.DistributionReportQuery{})

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), performance.ByType)
}

func (suite *ReportServiceTestSuite) TestContactAnalyticsError() {
	suite.mockRepo.EXPECT().ContactsByRole(gomock.Any()).Return(nil, errors.New("syntax error")).Times(1)

	analytics, err := suite.reportService.ContactAnalytics(suite.ctx, service.DistributionReportQuery{})

	assert.Nil(suite.T(), analytics)
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to group contacts by role")
}

func (suite *ReportServiceTestSuite) TestProjectRisks() {
	suite.mockRepo.EXPECT().
		OverdueProjects(repository.ProjectReportFilter{Priority: "High"}, gomock.Any()).
		Return([]repository.ProjectRisk{{ProjectName: "Aloe lip balm", Days: 12}}, nil).
		Times(1)
	suite.mockRepo.EXPECT().StalledProjects(gomock.Any(), gomock.Any()).Return([]repository.ProjectRisk{}, nil).Times(1)
	suite.mockRepo.EXPECT().
		HighRiskProjects(gomock.Any()).
		Return([]repository.ProjectRisk{{ProjectName: "Aloe capsules", EstimatedInvestment: decimal.NewFromInt(250_000)}}, nil).
		Times(1)

	risks, err := suite.reportService.ProjectRisks(suite.ctx, service.ProjectReportQuery{Priority: "High"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 12, risks.Overdue[0].Days)
	assert.Empty(suite.T(), risks.Stalled)
	assert.Equal(suite.T(), "Aloe capsules", risks.HighRisk[0].ProjectName)
}

func (suite *ReportServiceTestSuite) TestProjectStatusRejectsBadInvestment() {
	rows, err := suite.reportService.ProjectStatus(suite.ctx, service.ProjectReportQuery{MinInvestment: "ten"})

	assert.Nil(suite.T(), rows)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ReportServiceTestSuite) TestPortfolioSummary() {
	suite.mockRepo.EXPECT().PortfolioTotals(gomock.Any()).Return(&repository.PortfolioTotals{TotalProjects: 7, ActiveProjects: 4}, nil).Times(1)
	suite.mockRepo.EXPECT().ProjectTimeline(gomock.Any(), gomock.Any()).Return([]repository.TimelineBucket{}, nil).Times(1)
	suite.mockRepo.EXPECT().ProjectCategories(gomock.Any()).Return([]repository.CategoryAnalysis{}, nil).Times(1)
	suite.mockRepo.EXPECT().ProjectResources(gomock.Any()).Return([]repository.ResourceAllocation{}, nil).Times(1)

	portfolio, err := suite.reportService.PortfolioSummary(suite.ctx, service.ProjectReportQuery{})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), portfolio.Summary.TotalProjects)
	assert.Equal(suite.T(), int64(4), portfolio.Summary.ActiveProjects)
}

func (suite *ReportServiceTestSuite) TestSendComplianceDigest() {
	suite.mockRepo.EXPECT().ComplianceStatusRows(repository.ComplianceReportFilter{}, gomock.Any()).Return(complianceRows(), nil).Times(1)
	suite.mockNotifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n notification.Notification) error {
			assert.Equal(suite.T(), []string{"qa@sysmayal.com"}, n.Recipients)
			assert.Equal(suite.T(), "Weekly Compliance Report - "+models.Today().String(), n.Subject)
			assert.Equal(suite.T(), models.ReferenceReport, n.ReferenceType)
			assert.Contains(suite.T(), n.Body, "Total products: 5\n")
			assert.Contains(suite.T(), n.Body, "Compliant: 3 (60.0%)\n")
			assert.Contains(suite.T(), n.Body, "Expiring within 30 days: 1\n")
			assert.Contains(suite.T(), n.Body, "Reviews due within 7 days: 1\n")
			return nil
		}).
		Times(1)

	require.NoError(suite.T(), suite.reportService.SendComplianceDigest(suite.ctx, []string{"qa@sysmayal.com"}))
}

func (suite *ReportServiceTestSuite) TestSendComplianceDigestWithoutRecipients() {
	suite.mockRepo.EXPECT().ComplianceStatusRows(gomock.Any(), gomock.Any()).Times(0)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(suite.T(), suite.reportService.SendComplianceDigest(suite.ctx, nil))
}

func (suite *ReportServiceTestSuite) TestSendComplianceDigestMailFailure() {
	suite.mockRepo.EXPECT().ComplianceStatusRows(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(1)

	err := suite.reportService.SendComplianceDigest(suite.ctx, []string{"qa@sysmayal.com"})

	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to send compliance report")
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
