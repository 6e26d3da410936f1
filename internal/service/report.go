package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sysmayal-backend/internal/cache"
	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/notification"
	"sysmayal-backend/internal/repository"

	"github.com/shopspring/decimal"
)

const agreementExpiryWindow = 90

var donutColors = []string{"#28a745", "#ffc107", "#dc3545", "#6c757d", "#17a2b8"}

// ReportService builds the compliance, distribution and R&D reports
type ReportService struct {
	repo       repository.ReportRepositoryInterface
	notifier   notification.NotifierInterface
	dashboards *DashboardCache
}

// NewReportService creates a new report service
func NewReportService(repo repository.ReportRepositoryInterface, notifier notification.NotifierInterface, dashboards *DashboardCache) *ReportService {
	return &ReportService{repo: repo, notifier: notifier, dashboards: dashboards}
}

// ComplianceReportQuery holds the compliance report query parameters
type ComplianceReportQuery struct {
	Country           string `form:"country"`
	ComplianceStatus  string `form:"compliance_status"`
	RiskLevel         string `form:"risk_level"`
	Manufacturer      string `form:"manufacturer"`
	ResponsiblePerson string `form:"responsible_person"`
	FromDate          string `form:"from_date"`
	ToDate            string `form:"to_date"`
}

func (q ComplianceReportQuery) filter() (repository.ComplianceReportFilter, error) {
	from, err := dateParam("from_date", q.FromDate)
	if err != nil {
		return repository.ComplianceReportFilter{}, err
	}
	to, err := dateParam("to_date", q.ToDate)
	if err != nil {
		return repository.ComplianceReportFilter{}, err
	}
	return repository.ComplianceReportFilter{
		Country:           q.Country,
		ComplianceStatus:  q.ComplianceStatus,
		RiskLevel:         q.RiskLevel,
		Manufacturer:      q.Manufacturer,
		ResponsiblePerson: q.ResponsiblePerson,
		FromDate:          from,
		ToDate:            to,
	}, nil
}

// ComplianceReportSummary holds the headline figures of the compliance report
type ComplianceReportSummary struct {
	TotalProducts     int     `json:"total_products"`
	CompliantProducts int     `json:"compliant_products"`
	ComplianceRate    float64 `json:"compliance_rate"`
	NonCompliant      int     `json:"non_compliant"`
	Expired           int     `json:"expired"`
	ExpiringSoon      int     `json:"expiring_soon"`
	ReviewsDue        int     `json:"reviews_due"`
}

// ChartDataset is one named series of a chart
type ChartDataset struct {
	Name   string  `json:"name"`
	Values []int64 `json:"values"`
}

// Chart is a chart payload for the dashboard front end
type Chart struct {
	Data struct {
		Labels   []string       `json:"labels"`
		Datasets []ChartDataset `json:"datasets"`
	} `json:"data"`
	Type   string   `json:"type"`
	Height int      `json:"height"`
	Colors []string `json:"colors"`
}

// ComplianceReport is the compliance status report with its summary and chart
type ComplianceReport struct {
	Rows    []repository.ComplianceReportRow `json:"rows"`
	Summary ComplianceReportSummary          `json:"summary"`
	Chart   Chart                            `json:"chart"`
}

// ComplianceFilterOptions lists the values the compliance report can be filtered by
type ComplianceFilterOptions struct {
	Countries          []string                  `json:"countries"`
	Manufacturers      []string                  `json:"manufacturers"`
	ResponsiblePeople  []string                  `json:"responsible_people"`
	ComplianceStatuses []models.ComplianceStatus `json:"compliance_statuses"`
	RiskLevels         []models.RiskLevel        `json:"risk_levels"`
}

// DistributionReportQuery holds the distribution analytics query parameters
type DistributionReportQuery struct {
	Country          string `form:"country"`
	OrganizationType string `form:"organization_type"`
	Status           string `form:"status"`
	Territory        string `form:"territory"`
	RegulatoryStatus string `form:"regulatory_status"`
	MinRevenue       string `form:"min_revenue"`
	MaxRevenue       string `form:"max_revenue"`
}

func (q DistributionReportQuery) filter() (repository.DistributionReportFilter, error) {
	minRevenue, err := decimalParam("min_revenue", q.MinRevenue)
	if err != nil {
		return repository.DistributionReportFilter{}, err
	}
	maxRevenue, err := decimalParam("max_revenue", q.MaxRevenue)
	if err != nil {
		return repository.DistributionReportFilter{}, err
	}
	return repository.DistributionReportFilter{
		Country:          q.Country,
		OrganizationType: q.OrganizationType,
		Status:           q.Status,
		Territory:        q.Territory,
		RegulatoryStatus: q.RegulatoryStatus,
		MinRevenue:       minRevenue,
		MaxRevenue:       maxRevenue,
	}, nil
}

// DistributionSummary holds totals, geography, regulatory shares and expiring agreements
type DistributionSummary struct {
	Totals                 *repository.DistributionTotals      `json:"totals"`
	GeographicDistribution []repository.GeographicDistribution `json:"geographic_distribution"`
	ComplianceDistribution []repository.ShareCount             `json:"compliance_distribution"`
	ExpiringAgreements     []repository.ExpiringAgreement      `json:"expiring_agreements"`
}

// DistributionPerformance compares organizations by type and by age
type DistributionPerformance struct {
	ByType []repository.TypePerformance     `json:"by_type"`
	ByAge  []repository.AgeGroupPerformance `json:"by_age"`
}

// ContactAnalytics breaks contacts down by role and preferred channel
type ContactAnalytics struct {
	ByRole       []repository.RoleCoverage `json:"by_role"`
	ByPreference []repository.ShareCount   `json:"by_preference"`
}

// ProjectReportQuery holds the R&D project report query parameters
type ProjectReportQuery struct {
	Status           string `form:"status"`
	Priority         string `form:"priority"`
	ProjectType      string `form:"project_type"`
	ProductCategory  string `form:"product_category"`
	ProjectManager   string `form:"project_manager"`
	RAndDLead        string `form:"r_and_d_lead"`
	ComplianceStatus string `form:"compliance_status"`
	FromDate         string `form:"from_date"`
	ToDate           string `form:"to_date"`
	MinInvestment    string `form:"min_investment"`
	MaxInvestment    string `form:"max_investment"`
}

func (q ProjectReportQuery) filter() (repository.ProjectReportFilter, error) {
	f := repository.ProjectReportFilter{
		Status:           q.Status,
		Priority:         q.Priority,
		ProjectType:      q.ProjectType,
		ProductCategory:  q.ProductCategory,
		ProjectManager:   q.ProjectManager,
		RAndDLead:        q.RAndDLead,
		ComplianceStatus: q.ComplianceStatus,
	}
	var err error
	if f.FromDate, err = dateParam("from_date", q.FromDate); err != nil {
		return f, err
	}
	if f.ToDate, err = dateParam("to_date", q.ToDate); err != nil {
		return f, err
	}
	if f.MinInvestment, err = decimalParam("min_investment", q.MinInvestment); err != nil {
		return f, err
	}
	if f.MaxInvestment, err = decimalParam("max_investment", q.MaxInvestment); err != nil {
		return f, err
	}
	return f, nil
}

// PortfolioSummary holds the R&D portfolio overview
type PortfolioSummary struct {
	Summary            *repository.PortfolioTotals     `json:"summary"`
	Timeline           []repository.TimelineBucket     `json:"timeline"`
	Categories         []repository.CategoryAnalysis   `json:"categories"`
	ResourceAllocation []repository.ResourceAllocation `json:"resource_allocation"`
}

// ProjectPerformance holds completion, investment and compliance breakdowns
type ProjectPerformance struct {
	CompletionByStatus []repository.CompletionByStatus        `json:"completion_by_status"`
	InvestmentAnalysis []repository.InvestmentBucket          `json:"investment_analysis"`
	ComplianceAnalysis []repository.ProjectComplianceAnalysis `json:"compliance_analysis"`
}

// ProjectRisks lists overdue, stalled and high-risk projects
type ProjectRisks struct {
	Overdue  []repository.ProjectRisk `json:"overdue"`
	Stalled  []repository.ProjectRisk `json:"stalled"`
	HighRisk []repository.ProjectRisk `json:"high_risk"`
}

// ComplianceStatus returns the compliance status report with summary and status donut chart
func (s *ReportService) ComplianceStatus(ctx context.Context, q ComplianceReportQuery) (*ComplianceReport, error) {
	filter, err := q.filter()
	if err != nil {
		return nil, err
	}
	return loadCached(ctx, s.dashboards, reportKey("compliance", q), func() (*ComplianceReport, error) {
		rows, err := s.repo.ComplianceStatusRows(filter, models.Today().Time)
		if err != nil {
			return nil, fmt.Errorf("failed to generate compliance report: %w", err)
		}
		return &ComplianceReport{
			Rows:    rows,
			Summary: summariseCompliance(rows),
			Chart:   statusDonut(rows),
		}, nil
	})
}

// GetFilters returns the options of the compliance report filters
func (s *ReportService) GetFilters(ctx context.Context) (*ComplianceFilterOptions, error) {
	countries, err := s.repo.ComplianceCountries()
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	manufacturers, err := s.repo.ManufacturerNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list manufacturers: %w", err)
	}
	people, err := s.repo.ResponsiblePeople()
	if err != nil {
		return nil, fmt.Errorf("failed to list responsible people: %w", err)
	}
	return &ComplianceFilterOptions{
		Countries:          countries,
		Manufacturers:      manufacturers,
		ResponsiblePeople:  people,
		ComplianceStatuses: models.ComplianceStatuses,
		RiskLevels:         models.RiskLevels,
	}, nil
}

// Distribution returns the distribution analytics lines
func (s *ReportService) Distribution(ctx context.Context, q DistributionReportQuery) ([]repository.DistributionReportRow, error) {
	filter, err := q.filter()
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.DistributionRows(filter, models.Today().Time)
	if err != nil {
		return nil, fmt.Errorf("failed to generate distribution report: %w", err)
	}
	return rows, nil
}

// DistributionSummary returns totals, geography, regulatory shares and agreements expiring within 90 days
func (s *ReportService) DistributionSummary(ctx context.Context, q DistributionReportQuery) (*DistributionSummary, error) {
	filter, err := q.filter()
	if err != nil {
		return nil, err
	}
	return loadCached(ctx, s.dashboards, reportKey("distribution-summary", q), func() (*DistributionSummary, error) {
		totals, err := s.repo.DistributionTotals(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to total organizations: %w", err)
		}
		geography, err := s.repo.GeographicDistribution(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to group organizations by country: %w", err)
		}
		regulatory, err := s.repo.RegulatoryDistribution(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to group organizations by regulatory status: %w", err)
		}
		expiring, err := s.repo.ExpiringAgreements(filter, models.Today().Time, agreementExpiryWindow)
		if err != nil {
			return nil, fmt.Errorf("failed to get expiring agreements: %w", err)
		}
		return &DistributionSummary{
			Totals:                 totals,
			GeographicDistribution: geography,
			ComplianceDistribution: regulatory,
			ExpiringAgreements:     expiring,
		}, nil
	})
}

// DistributionPerformance compares organizations by type and by years since establishment
func (s *ReportService) DistributionPerformance(ctx context.Context, q DistributionReportQuery) (*DistributionPerformance, error) {
	filter, err := q.filter()
	if err != nil {
		return nil, err
	}
	return loadCached(ctx, s.dashboards, reportKey("distribution-performance", q), func() (*DistributionPerformance, error) {
		byType, err := s.repo.PerformanceByType(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to compare organization types: %w", err)
		}
		byAge, err := s.repo.PerformanceByAge(filter, models.Today().Year())
		if err != nil {
			return nil, fmt.Errorf("failed to compare organization ages: %w", err)
		}
		return &DistributionPerformance{ByType: byType, ByAge: byAge}, nil
	})
}

// ContactAnalytics breaks down the contacts of the filtered organizations
func (s *ReportService) ContactAnalytics(ctx context.Context, q DistributionReportQuery) (*ContactAnalytics, error) {
	filter, err := q.filter()
	if err != nil {
		return nil, err
	}
	byRole, err := s.repo.ContactsByRole(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to group contacts by role: %w", err)
	}
	byPreference, err := s.repo.ContactsByPreference(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to group contacts by preference: %w", err)
	}
	return &ContactAnalytics{ByRole: byRole, ByPreference: byPreference}, nil
}

// ProjectStatus returns the R&D project status lines
func (s *ReportService) ProjectStatus(ctx context.Context, q ProjectReportQuery) ([]repository.ProjectReportRow, error) {
	filter, err := q.filter()
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ProjectRows(filter, models.Today().Time)
	if err != nil {
		return nil, fmt.Errorf("failed to generate project report: %w", err)
	}
	return rows, nil
}

// PortfolioSummary returns the R&D portfolio overview
func (s *ReportService) PortfolioSummary(ctx context.Context, q ProjectReportQuery) (*PortfolioSummary, error) {
	filter, err := q.filter()
	if err != nil {
		return nil, err
	}
	return loadCached(ctx, s.dashboards, reportKey("portfolio", q), func() (*PortfolioSummary, error) {
		today := models.Today().Time
		totals, err := s.repo.PortfolioTotals(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to total projects: %w", err)
		}
		timeline, err := s.repo.ProjectTimeline(filter, today)
		if err != nil {
			return nil, fmt.Errorf("failed to build project timeline: %w", err)
		}
		categories, err := s.repo.ProjectCategories(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to group projects by category: %w", err)
		}
		resources, err := s.repo.ProjectResources(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to group projects by manager: %w", err)
		}
		return &PortfolioSummary{
			Summary:            totals,
			Timeline:           timeline,
			Categories:         categories,
			ResourceAllocation: resources,
		}, nil
	})
}

// ProjectPerformance returns completion, investment and compliance breakdowns
func (s *ReportService) ProjectPerformance(ctx context.Context, q ProjectReportQuery) (*ProjectPerformance, error) {
	filter, err := q.filter()
	if err != nil {
		return nil, err
	}
	completion, err := s.repo.CompletionByStatus(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to group completion by status: %w", err)
	}
	investment, err := s.repo.InvestmentBuckets(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to group projects by investment: %w", err)
	}
	compliance, err := s.repo.ProjectCompliance(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to group projects by compliance: %w", err)
	}
	return &ProjectPerformance{
		CompletionByStatus: completion,
		InvestmentAnalysis: investment,
		ComplianceAnalysis: compliance,
	}, nil
}

// ProjectRisks lists overdue, stalled and high-investment low-progress projects
func (s *ReportService) ProjectRisks(ctx context.Context, q ProjectReportQuery) (*ProjectRisks, error) {
	filter, err := q.filter()
	if err != nil {
		return nil, err
	}
	today := models.Today().Time
	overdue, err := s.repo.OverdueProjects(filter, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get overdue projects: %w", err)
	}
	stalled, err := s.repo.StalledProjects(filter, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get stalled projects: %w", err)
	}
	highRisk, err := s.repo.HighRiskProjects(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get high risk projects: %w", err)
	}
	return &ProjectRisks{Overdue: overdue, Stalled: stalled, HighRisk: highRisk}, nil
}

// SendComplianceDigest mails the compliance summary of all records to recipients
func (s *ReportService) SendComplianceDigest(ctx context.Context, recipients []string) error {
	if len(recipients) == 0 {
		return nil
	}
	report, err := s.ComplianceStatus(ctx, ComplianceReportQuery{})
	if err != nil {
		return err
	}

	today := models.Today()
	n := notification.Notification{
		Recipients:    recipients,
		Subject:       fmt.Sprintf("Weekly Compliance Report - %s", today),
		Body:          complianceDigestBody(report, today),
		ReferenceType: models.ReferenceReport,
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		return fmt.Errorf("failed to send compliance report: %w", err)
	}
	return nil
}

func summariseCompliance(rows []repository.ComplianceReportRow) ComplianceReportSummary {
	summary := ComplianceReportSummary{TotalProducts: len(rows)}
	for _, row := range rows {
		switch models.ComplianceStatus(row.ComplianceStatus) {
		case models.ComplianceStatusCompliant:
			summary.CompliantProducts++
		case models.ComplianceStatusNonCompliant:
			summary.NonCompliant++
		case models.ComplianceStatusExpired:
			summary.Expired++
		}
		if days := row.DaysToExpiry; days != nil && *days > 0 && *days <= expiryWarningDays {
			summary.ExpiringSoon++
		}
		if days := row.DaysToReview; days != nil && *days > 0 && *days <= reviewWarningDays {
			summary.ReviewsDue++
		}
	}
	summary.ComplianceRate = percentage(int64(summary.CompliantProducts), int64(summary.TotalProducts))
	return summary
}

// statusDonut counts rows per compliance status in order of first appearance
func statusDonut(rows []repository.ComplianceReportRow) Chart {
	counts := map[string]int64{}
	labels := []string{}
	for _, row := range rows {
		status := orDefault(row.ComplianceStatus, "Unknown")
		if _, seen := counts[status]; !seen {
			labels = append(labels, status)
		}
		counts[status]++
	}

	values := make([]int64, 0, len(labels))
	for _, label := range labels {
		values = append(values, counts[label])
	}

	chart := Chart{Type: "donut", Height: 300, Colors: donutColors}
	chart.Data.Labels = labels
	chart.Data.Datasets = []ChartDataset{{Name: "Compliance Status Distribution", Values: values}}
	return chart
}

func complianceDigestBody(report *ComplianceReport, today models.Date) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Compliance summary as of %s\n\n", today)
	fmt.Fprintf(&b, "Total products: %d\n", report.Summary.TotalProducts)
	fmt.Fprintf(&b, "Compliant: %d (%.1f%%)\n", report.Summary.CompliantProducts, report.Summary.ComplianceRate)
	fmt.Fprintf(&b, "Non-compliant: %d\n", report.Summary.NonCompliant)
	fmt.Fprintf(&b, "Expired: %d\n", report.Summary.Expired)
	fmt.Fprintf(&b, "Expiring within %d days: %d\n", expiryWarningDays, report.Summary.ExpiringSoon)
	fmt.Fprintf(&b, "Reviews due within %d days: %d\n", reviewWarningDays, report.Summary.ReviewsDue)
	return b.String()
}

func reportKey(name string, query interface{}) string {
	return fmt.Sprintf("%s%s:%+v", cache.PrefixReports, name, query)
}

func dateParam(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := models.ParseDate(value)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return &d.Time, nil
}

func decimalParam(field, value string) (*decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return nil, apperrors.NewValidationError(field, "must be a number")
	}
	return &d, nil
}
