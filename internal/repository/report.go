package repository

import (
	"strings"
	"time"

	"sysmayal-backend/internal/database/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// sqlConditions accumulates AND-ed WHERE clauses with their bind arguments
type sqlConditions struct {
	clauses []string
	args    []interface{}
}

func (c *sqlConditions) add(clause string, args ...interface{}) {
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

func (c *sqlConditions) addIf(value, clause string) {
	if value != "" {
		c.add(clause, value)
	}
}

func (c *sqlConditions) sql() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " AND " + strings.Join(c.clauses, " AND ")
}

// ComplianceReportFilter narrows the compliance status report; empty fields are ignored
type ComplianceReportFilter struct {
	Country           string
	ComplianceStatus  string
	RiskLevel         string
	Manufacturer      string
	ResponsiblePerson string
	FromDate          *time.Time
	ToDate            *time.Time
}

func (f ComplianceReportFilter) conditions() *sqlConditions {
	c := &sqlConditions{}
	c.addIf(f.Country, "pc.country = ?")
	c.addIf(f.ComplianceStatus, "pc.compliance_status = ?")
	c.addIf(f.RiskLevel, "pc.risk_level = ?")
	c.addIf(f.Manufacturer, "m.organization_name = ?")
	c.addIf(f.ResponsiblePerson, "pc.responsible_person = ?")
	if f.FromDate != nil {
		c.add("pc.last_review_date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		c.add("pc.next_review_date <= ?", *f.ToDate)
	}
	return c
}

// ComplianceReportRow is one product line of the compliance status report
type ComplianceReportRow struct {
	ProductName          string       `json:"product_name"`
	ProductCode          string       `json:"product_code"`
	Country              string       `json:"country"`
	ComplianceStatus     string       `json:"compliance_status"`
	CompliancePercentage int          `json:"compliance_percentage"`
	RiskLevel            string       `json:"risk_level"`
	ApprovalStatus       string       `json:"approval_status"`
	TestingStatus        string       `json:"testing_status"`
	NextReviewDate       *models.Date `json:"next_review_date"`
	ExpiryDate           *models.Date `json:"expiry_date"`
	ResponsiblePerson    string       `json:"responsible_person"`
	Manufacturer         string       `json:"manufacturer"`
	DaysToReview         *int         `json:"days_to_review"`
	DaysToExpiry         *int         `json:"days_to_expiry"`
}

// DistributionReportFilter narrows the distribution analytics report; empty fields are ignored
type DistributionReportFilter struct {
	Country          string
	OrganizationType string
	Status           string
	Territory        string
	RegulatoryStatus string
	MinRevenue       *decimal.Decimal
	MaxRevenue       *decimal.Decimal
}

func (f DistributionReportFilter) conditions() *sqlConditions {
	c := &sqlConditions{}
	c.addIf(f.Country, "o.country = ?")
	c.addIf(f.OrganizationType, "o.organization_type = ?")
	c.addIf(f.Status, "o.status = ?")
	c.addIf(f.Territory, "o.territory = ?")
	c.addIf(f.RegulatoryStatus, "o.regulatory_status = ?")
	if f.MinRevenue != nil {
		c.add("o.annual_revenue >= ?", *f.MinRevenue)
	}
	if f.MaxRevenue != nil {
		c.add("o.annual_revenue <= ?", *f.MaxRevenue)
	}
	return c
}

// DistributionReportRow is one organization line of the distribution analytics report
type DistributionReportRow struct {
	OrganizationName string          `json:"organization_name"`
	OrganizationType string          `json:"organization_type"`
	Country          string          `json:"country"`
	Territory        string          `json:"territory"`
	Status           string          `json:"status"`
	RegulatoryStatus string          `json:"regulatory_status"`
	ContactPerson    string          `json:"contact_person"`
	EmailID          string          `json:"email_id"`
	Phone            string          `json:"phone"`
	AnnualRevenue    decimal.Decimal `json:"annual_revenue"`
	EmployeeCount    int             `json:"employee_count"`
	EstablishedYear  int             `json:"established_year"`
	AgreementExpiry  *models.Date    `json:"agreement_expiry"`
	ContactCount     int64           `json:"contact_count"`
	DaysToExpiry     *int            `json:"days_to_expiry"`
}

// DistributionTotals is the headline block of the distribution summary
type DistributionTotals struct {
	TotalOrganizations  int64               `json:"total_organizations"`
	ActiveOrganizations int64               `json:"active_organizations"`
	Distributors        int64               `json:"distributors"`
	Retailers           int64               `json:"retailers"`
	Wholesalers         int64               `json:"wholesalers"`
	Suppliers           int64               `json:"suppliers"`
	Manufacturers       int64               `json:"manufacturers"`
	CountriesCovered    int64               `json:"countries_covered"`
	TerritoriesCovered  int64               `json:"territories_covered"`
	AvgRevenue          decimal.NullDecimal `json:"avg_revenue"`
	TotalRevenue        decimal.NullDecimal `json:"total_revenue"`
	AvgEmployees        decimal.NullDecimal `json:"avg_employees"`
	TotalEmployees      int64               `json:"total_employees"`
}

// GeographicDistribution is the organization spread of one country
type GeographicDistribution struct {
	Country     string              `json:"country"`
	OrgCount    int64               `json:"org_count"`
	AvgRevenue  decimal.NullDecimal `json:"avg_revenue"`
	ActiveCount int64               `json:"active_count"`
}

// ShareCount is a label with its row count and its share of all rows in percent
type ShareCount struct {
	Key        string  `json:"key" gorm:"column:key"`
	Count      int64   `json:"count" gorm:"column:count"`
	Percentage float64 `json:"percentage" gorm:"column:percentage"`
}

// ExpiringAgreement is an organization whose distribution agreement ends soon
type ExpiringAgreement struct {
	OrganizationName string       `json:"organization_name"`
	Country          string       `json:"country"`
	AgreementExpiry  *models.Date `json:"agreement_expiry"`
	DaysToExpiry     int          `json:"days_to_expiry"`
}

// TypePerformance aggregates organizations of one type
type TypePerformance struct {
	OrganizationType string              `json:"organization_type"`
	Count            int64               `json:"count"`
	AvgRevenue       decimal.NullDecimal `json:"avg_revenue"`
	AvgEmployees     decimal.NullDecimal `json:"avg_employees"`
	CompliantCount   int64               `json:"compliant_count"`
	ComplianceRate   float64             `json:"compliance_rate"`
}

// AgeGroupPerformance aggregates organizations by years since establishment
type AgeGroupPerformance struct {
	AgeGroup   string              `json:"age_group"`
	Count      int64               `json:"count"`
	AvgRevenue decimal.NullDecimal `json:"avg_revenue"`
}

// RoleCoverage aggregates contacts holding one regulatory role
type RoleCoverage struct {
	RegulatoryRole       string `json:"regulatory_role"`
	Count                int64  `json:"count"`
	ActiveCount          int64  `json:"active_count"`
	OrganizationsCovered int64  `json:"organizations_covered"`
}

// ProjectReportFilter narrows the R&D project status report; empty fields are ignored
type ProjectReportFilter struct {
	Status           string
	Priority         string
	ProjectType      string
	ProductCategory  string
	ProjectManager   string
	RAndDLead        string
	ComplianceStatus string
	FromDate         *time.Time
	ToDate           *time.Time
	MinInvestment    *decimal.Decimal
	MaxInvestment    *decimal.Decimal
}

func (f ProjectReportFilter) conditions() *sqlConditions {
	c := &sqlConditions{}
	c.addIf(f.Status, "p.status = ?")
	c.addIf(f.Priority, "p.priority = ?")
	c.addIf(f.ProjectType, "p.project_type = ?")
	c.addIf(f.ProductCategory, "p.product_category = ?")
	c.addIf(f.ProjectManager, "p.project_manager = ?")
	c.addIf(f.RAndDLead, "p.r_and_d_lead = ?")
	c.addIf(f.ComplianceStatus, "p.compliance_status = ?")
	if f.FromDate != nil {
		c.add("p.start_date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		c.add("p.expected_completion <= ?", *f.ToDate)
	}
	if f.MinInvestment != nil {
		c.add("p.estimated_investment >= ?", *f.MinInvestment)
	}
	if f.MaxInvestment != nil {
		c.add("p.estimated_investment <= ?", *f.MaxInvestment)
	}
	return c
}

// ProjectReportRow is one project line of the R&D status report
type ProjectReportRow struct {
	ProjectName          string          `json:"project_name"`
	ProjectType          string          `json:"project_type"`
	Status               string          `json:"status"`
	Priority             string          `json:"priority"`
	StartDate            *models.Date    `json:"start_date"`
	ExpectedCompletion   *models.Date    `json:"expected_completion"`
	ProductCategory      string          `json:"product_category"`
	EstimatedInvestment  decimal.Decimal `json:"estimated_investment"`
	CompletionPercentage int             `json:"completion_percentage"`
	CurrentPhase         string          `json:"current_phase"`
	ProjectManager       string          `json:"project_manager"`
	RAndDLead            string          `json:"r_and_d_lead" gorm:"column:r_and_d_lead"`
	ComplianceStatus     string          `json:"compliance_status"`
	TargetCountries      string          `json:"target_countries"`
	DaysRemaining        *int            `json:"days_remaining"`
}

// PortfolioTotals is the headline block of the R&D portfolio summary
type PortfolioTotals struct {
	TotalProjects     int64               `json:"total_projects"`
	ActiveProjects    int64               `json:"active_projects"`
	CompletedProjects int64               `json:"completed_projects"`
	OnHoldProjects    int64               `json:"on_hold_projects"`
	CancelledProjects int64               `json:"cancelled_projects"`
	HighPriority      int64               `json:"high_priority"`
	MediumPriority    int64               `json:"medium_priority"`
	LowPriority       int64               `json:"low_priority"`
	AvgCompletion     decimal.NullDecimal `json:"avg_completion"`
	TotalInvestment   decimal.NullDecimal `json:"total_investment"`
	AvgInvestment     decimal.NullDecimal `json:"avg_investment"`
}

// TimelineBucket groups open projects by how close their deadline is
type TimelineBucket struct {
	TimelineCategory string              `json:"timeline_category"`
	Count            int64               `json:"count"`
	AvgCompletion    decimal.NullDecimal `json:"avg_completion"`
}

// CategoryAnalysis aggregates projects of one product category
type CategoryAnalysis struct {
	ProductCategory string              `json:"product_category"`
	Count           int64               `json:"count"`
	AvgCompletion   decimal.NullDecimal `json:"avg_completion"`
	TotalInvestment decimal.NullDecimal `json:"total_investment"`
	CompletedCount  int64               `json:"completed_count"`
}

// ResourceAllocation aggregates the projects run by one manager
type ResourceAllocation struct {
	ProjectManager  string              `json:"project_manager"`
	ProjectCount    int64               `json:"project_count"`
	ActiveProjects  int64               `json:"active_projects"`
	TotalInvestment decimal.NullDecimal `json:"total_investment"`
	AvgCompletion   decimal.NullDecimal `json:"avg_completion"`
}

// CompletionByStatus aggregates completion of the projects in one status
type CompletionByStatus struct {
	Status        string              `json:"status"`
	Count         int64               `json:"count"`
	AvgCompletion decimal.NullDecimal `json:"avg_completion"`
	MinCompletion int                 `json:"min_completion"`
	MaxCompletion int                 `json:"max_completion"`
}

// InvestmentBucket aggregates projects of one investment size
type InvestmentBucket struct {
	InvestmentCategory string              `json:"investment_category"`
	Count              int64               `json:"count"`
	AvgCompletion      decimal.NullDecimal `json:"avg_completion"`
	AvgDurationDays    decimal.NullDecimal `json:"avg_duration_days"`
}

// ProjectComplianceAnalysis aggregates projects of one compliance status
type ProjectComplianceAnalysis struct {
	ComplianceStatus string              `json:"compliance_status"`
	Count            int64               `json:"count"`
	AvgCompletion    decimal.NullDecimal `json:"avg_completion"`
}

// ProjectRisk is a project flagged by the risk analysis
type ProjectRisk struct {
	ProjectName          string          `json:"project_name"`
	Status               string          `json:"status"`
	Priority             string          `json:"priority"`
	StartDate            *models.Date    `json:"start_date,omitempty"`
	ExpectedCompletion   *models.Date    `json:"expected_completion,omitempty"`
	EstimatedInvestment  decimal.Decimal `json:"estimated_investment"`
	CompletionPercentage int             `json:"completion_percentage"`
	ProjectManager       string          `json:"project_manager"`
	Days                 int             `json:"days,omitempty"`
}

const activeProjectStatuses = "('In Progress', 'Testing', 'Regulatory Review')"

// ReportRepository runs the fixed analytical queries behind the reports
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) scan(dest interface{}, query string, args ...interface{}) error {
	return r.db.Raw(query, args...).Scan(dest).Error
}

// ComplianceStatusRows returns the compliance status report lines, worst standing first per country
func (r *ReportRepository) ComplianceStatusRows(filter ComplianceReportFilter, today time.Time) ([]ComplianceReportRow, error) {
	c := filter.conditions()
	query := `SELECT pc.product_name, pc.product_code, pc.country, pc.compliance_status,
			pc.compliance_percentage, pc.risk_level, pc.approval_status, pc.testing_status,
			pc.next_review_date, pc.expiry_date, pc.responsible_person,
			COALESCE(m.organization_name, '') AS manufacturer,
			(pc.next_review_date - CAST(? AS date)) AS days_to_review,
			(pc.expiry_date - CAST(? AS date)) AS days_to_expiry
		FROM product_compliance_records pc
		LEFT JOIN distribution_organizations m ON m.id = pc.manufacturer_id
		WHERE 1=1` + c.sql() + `
		ORDER BY pc.country,
			CASE pc.compliance_status
				WHEN 'Non-Compliant' THEN 1
				WHEN 'Expired' THEN 2
				WHEN 'Pending Review' THEN 3
				WHEN 'Partially Compliant' THEN 4
				WHEN 'Compliant' THEN 5
				ELSE 6
			END,
			pc.product_name`

	var rows []ComplianceReportRow
	args := append([]interface{}{today, today}, c.args...)
	if err := r.scan(&rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// ComplianceCountries lists the countries that have compliance records
func (r *ReportRepository) ComplianceCountries() ([]string, error) {
	var countries []string
	err := r.scan(&countries, `SELECT DISTINCT country FROM product_compliance_records ORDER BY country`)
	return countries, err
}

// ManufacturerNames lists the manufacturers and suppliers a compliance record can name
func (r *ReportRepository) ManufacturerNames() ([]string, error) {
	var names []string
	err := r.scan(&names, `SELECT organization_name FROM distribution_organizations
		WHERE organization_type IN ('Manufacturer', 'Supplier') ORDER BY organization_name`)
	return names, err
}

// ResponsiblePeople lists the people responsible for at least one compliance record
func (r *ReportRepository) ResponsiblePeople() ([]string, error) {
	var people []string
	err := r.scan(&people, `SELECT DISTINCT responsible_person FROM product_compliance_records
		WHERE responsible_person <> '' ORDER BY responsible_person`)
	return people, err
}

// DistributionRows returns the distribution analytics lines with active contact counts
func (r *ReportRepository) DistributionRows(filter DistributionReportFilter, today time.Time) ([]DistributionReportRow, error) {
	c := filter.conditions()
	query := `SELECT o.organization_name, o.organization_type, o.country, o.territory, o.status,
			o.regulatory_status, o.contact_person, o.email_id, o.phone, o.annual_revenue,
			o.employee_count, o.established_year, o.agreement_expiry,
			(SELECT COUNT(*) FROM distribution_contacts c
				WHERE c.organization_id = o.id AND c.status = 'Active') AS contact_count,
			(o.agreement_expiry - CAST(? AS date)) AS days_to_expiry
		FROM distribution_organizations o
		WHERE 1=1` + c.sql() + `
		ORDER BY o.country, o.organization_type, o.organization_name`

	var rows []DistributionReportRow
	args := append([]interface{}{today}, c.args...)
	if err := r.scan(&rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// DistributionTotals returns the headline counts and sums of the filtered organizations
func (r *ReportRepository) DistributionTotals(filter DistributionReportFilter) (*DistributionTotals, error) {
	c := filter.conditions()
	query := `SELECT COUNT(*) AS total_organizations,
			COUNT(*) FILTER (WHERE o.status = 'Active') AS active_organizations,
			COUNT(*) FILTER (WHERE o.organization_type = 'Distributor') AS distributors,
			COUNT(*) FILTER (WHERE o.organization_type = 'Retailer') AS retailers,
			COUNT(*) FILTER (WHERE o.organization_type = 'Wholesaler') AS wholesalers,
			COUNT(*) FILTER (WHERE o.organization_type = 'Supplier') AS suppliers,
			COUNT(*) FILTER (WHERE o.organization_type = 'Manufacturer') AS manufacturers,
			COUNT(DISTINCT o.country) AS countries_covered,
			COUNT(DISTINCT NULLIF(o.territory, '')) AS territories_covered,
			ROUND(AVG(o.annual_revenue), 2) AS avg_revenue,
			SUM(o.annual_revenue) AS total_revenue,
			ROUND(AVG(o.employee_count), 1) AS avg_employees,
			COALESCE(SUM(o.employee_count), 0) AS total_employees
		FROM distribution_organizations o
		WHERE 1=1` + c.sql()

	var totals DistributionTotals
	if err := r.scan(&totals, query, c.args...); err != nil {
		return nil, err
	}
	return &totals, nil
}

// GeographicDistribution returns organization counts per country, largest first
func (r *ReportRepository) GeographicDistribution(filter DistributionReportFilter) ([]GeographicDistribution, error) {
	c := filter.conditions()
	query := `SELECT o.country, COUNT(*) AS org_count,
			ROUND(AVG(o.annual_revenue), 2) AS avg_revenue,
			COUNT(*) FILTER (WHERE o.status = 'Active') AS active_count
		FROM distribution_organizations o
		WHERE 1=1` + c.sql() + `
		GROUP BY o.country
		ORDER BY org_count DESC, o.country`

	var rows []GeographicDistribution
	if err := r.scan(&rows, query, c.args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// RegulatoryDistribution returns the share of organizations per regulatory status
func (r *ReportRepository) RegulatoryDistribution(filter DistributionReportFilter) ([]ShareCount, error) {
	c := filter.conditions()
	query := `SELECT o.regulatory_status AS key, COUNT(*) AS count,
			ROUND(COUNT(*) * 100.0 / SUM(COUNT(*)) OVER (), 1) AS percentage
		FROM distribution_organizations o
		WHERE 1=1` + c.sql() + `
		GROUP BY o.regulatory_status
		ORDER BY count DESC`

	var rows []ShareCount
	if err := r.scan(&rows, query, c.args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// ExpiringAgreements returns organizations whose agreement ends within days, soonest first
func (r *ReportRepository) ExpiringAgreements(filter DistributionReportFilter, today time.Time, days int) ([]ExpiringAgreement, error) {
	c := filter.conditions()
	from, to := dayRange(today, days)
	query := `SELECT o.organization_name, o.country, o.agreement_expiry,
			(o.agreement_expiry - CAST(? AS date)) AS days_to_expiry
		FROM distribution_organizations o
		WHERE o.agreement_expiry BETWEEN ? AND ?` + c.sql() + `
		ORDER BY o.agreement_expiry`

	var rows []ExpiringAgreement
	args := append([]interface{}{today, from, to}, c.args...)
	if err := r.scan(&rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// PerformanceByType aggregates revenue, headcount and compliance per organization type
func (r *ReportRepository) PerformanceByType(filter DistributionReportFilter) ([]TypePerformance, error) {
	c := filter.conditions()
	query := `SELECT o.organization_type, COUNT(*) AS count,
			ROUND(AVG(o.annual_revenue), 2) AS avg_revenue,
			ROUND(AVG(o.employee_count), 1) AS avg_employees,
			COUNT(*) FILTER (WHERE o.regulatory_status = 'Compliant') AS compliant_count,
			ROUND(COUNT(*) FILTER (WHERE o.regulatory_status = 'Compliant') * 100.0 / COUNT(*), 1) AS compliance_rate
		FROM distribution_organizations o
		WHERE 1=1` + c.sql() + `
		GROUP BY o.organization_type
		ORDER BY count DESC`

	var rows []TypePerformance
	if err := r.scan(&rows, query, c.args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// PerformanceByAge aggregates organizations by years since establishment
func (r *ReportRepository) PerformanceByAge(filter DistributionReportFilter, currentYear int) ([]AgeGroupPerformance, error) {
	c := filter.conditions()
	query := `SELECT CASE
				WHEN ? - o.established_year <= 2 THEN 'New (0-2 years)'
				WHEN ? - o.established_year <= 5 THEN 'Young (3-5 years)'
				WHEN ? - o.established_year <= 10 THEN 'Mature (6-10 years)'
				ELSE 'Established (10+ years)'
			END AS age_group,
			COUNT(*) AS count,
			ROUND(AVG(o.annual_revenue), 2) AS avg_revenue
		FROM distribution_organizations o
		WHERE o.established_year > 0` + c.sql() + `
		GROUP BY age_group
		ORDER BY MIN(? - o.established_year)`

	var rows []AgeGroupPerformance
	args := append([]interface{}{currentYear, currentYear, currentYear}, c.args...)
	args = append(args, currentYear)
	if err := r.scan(&rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// ContactsByRole aggregates contacts of the filtered organizations per regulatory role
func (r *ReportRepository) ContactsByRole(filter DistributionReportFilter) ([]RoleCoverage, error) {
	c := filter.conditions()
	query := `SELECT c.regulatory_role, COUNT(*) AS count,
			COUNT(*) FILTER (WHERE c.status = 'Active') AS active_count,
			COUNT(DISTINCT c.organization_id) AS organizations_covered
		FROM distribution_contacts c
		JOIN distribution_organizations o ON o.id = c.organization_id
		WHERE c.regulatory_role <> ''` + c.sql() + `
		GROUP BY c.regulatory_role
		ORDER BY count DESC`

	var rows []RoleCoverage
	if err := r.scan(&rows, query, c.args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// ContactsByPreference returns the share of contacts per communication preference
func (r *ReportRepository) ContactsByPreference(filter DistributionReportFilter) ([]ShareCount, error) {
	c := filter.conditions()
	query := `SELECT c.communication_preference AS key, COUNT(*) AS count,
			ROUND(COUNT(*) * 100.0 / SUM(COUNT(*)) OVER (), 1) AS percentage
		FROM distribution_contacts c
		JOIN distribution_organizations o ON o.id = c.organization_id
		WHERE 1=1` + c.sql() + `
		GROUP BY c.communication_preference
		ORDER BY count DESC`

	var rows []ShareCount
	if err := r.scan(&rows, query, c.args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// ProjectRows returns the R&D status lines, highest priority and most advanced status first
func (r *ReportRepository) ProjectRows(filter ProjectReportFilter, today time.Time) ([]ProjectReportRow, error) {
	c := filter.conditions()
	query := `SELECT p.project_name, p.project_type, p.status, p.priority, p.start_date,
			p.expected_completion, p.product_category, p.estimated_investment,
			p.completion_percentage, p.current_phase, p.project_manager, p.r_and_d_lead,
			p.compliance_status, p.target_countries,
			(p.expected_completion - CAST(? AS date)) AS days_remaining
		FROM development_projects p
		WHERE 1=1` + c.sql() + `
		ORDER BY
			CASE p.priority WHEN 'High' THEN 1 WHEN 'Medium' THEN 2 WHEN 'Low' THEN 3 ELSE 4 END,
			CASE p.status
				WHEN 'In Progress' THEN 1
				WHEN 'Testing' THEN 2
				WHEN 'Regulatory Review' THEN 3
				WHEN 'Planning' THEN 4
				WHEN 'Completed' THEN 5
				ELSE 6
			END,
			p.expected_completion`

	var rows []ProjectReportRow
	args := append([]interface{}{today}, c.args...)
	if err := r.scan(&rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// PortfolioTotals returns the headline counts of the filtered projects
func (r *ReportRepository) PortfolioTotals(filter ProjectReportFilter) (*PortfolioTotals, error) {
	c := filter.conditions()
	query := `SELECT COUNT(*) AS total_projects,
			COUNT(*) FILTER (WHERE p.status IN ` + activeProjectStatuses + `) AS active_projects,
			COUNT(*) FILTER (WHERE p.status = 'Completed') AS completed_projects,
			COUNT(*) FILTER (WHERE p.status = 'On Hold') AS on_hold_projects,
			COUNT(*) FILTER (WHERE p.status = 'Cancelled') AS cancelled_projects,
			COUNT(*) FILTER (WHERE p.priority = 'High') AS high_priority,
			COUNT(*) FILTER (WHERE p.priority = 'Medium') AS medium_priority,
			COUNT(*) FILTER (WHERE p.priority = 'Low') AS low_priority,
			ROUND(AVG(p.completion_percentage), 1) AS avg_completion,
			SUM(p.estimated_investment) AS total_investment,
			ROUND(AVG(p.estimated_investment), 2) AS avg_investment
		FROM development_projects p
		WHERE 1=1` + c.sql()

	var totals PortfolioTotals
	if err := r.scan(&totals, query, c.args...); err != nil {
		return nil, err
	}
	return &totals, nil
}

// ProjectTimeline groups open projects into Overdue, Due Soon, Due This Quarter and Future
func (r *ReportRepository) ProjectTimeline(filter ProjectReportFilter, today time.Time) ([]TimelineBucket, error) {
	c := filter.conditions()
	query := `SELECT CASE
				WHEN p.expected_completion < ? THEN 'Overdue'
				WHEN p.expected_completion <= ? THEN 'Due Soon'
				WHEN p.expected_completion <= ? THEN 'Due This Quarter'
				ELSE 'Future'
			END AS timeline_category,
			COUNT(*) AS count,
			ROUND(AVG(p.completion_percentage), 1) AS avg_completion
		FROM development_projects p
		WHERE p.status NOT IN ('Completed', 'Cancelled')
			AND p.expected_completion IS NOT NULL` + c.sql() + `
		GROUP BY timeline_category
		ORDER BY MIN(p.expected_completion)`

	var rows []TimelineBucket
	args := append([]interface{}{today, today.AddDate(0, 0, 30), today.AddDate(0, 0, 90)}, c.args...)
	if err := r.scan(&rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// ProjectCategories aggregates projects per product category
func (r *ReportRepository) ProjectCategories(filter ProjectReportFilter) ([]CategoryAnalysis, error) {
	c := filter.conditions()
	query := `SELECT p.product_category, COUNT(*) AS count,
			ROUND(AVG(p.completion_percentage), 1) AS avg_completion,
			SUM(p.estimated_investment) AS total_investment,
			COUNT(*) FILTER (WHERE p.status = 'Completed') AS completed_count
		FROM development_projects p
		WHERE 1=1` + c.sql() + `
		GROUP BY p.product_category
		ORDER BY count DESC`

	var rows []CategoryAnalysis
	if err := r.scan(&rows, query, c.args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// ProjectResources aggregates projects per project manager
func (r *ReportRepository) ProjectResources(filter ProjectReportFilter) ([]ResourceAllocation, error) {
	c := filter.conditions()
	query := `SELECT p.project_manager, COUNT(*) AS project_count,
			COUNT(*) FILTER (WHERE p.status IN ` + activeProjectStatuses + `) AS active_projects,
			SUM(p.estimated_investment) AS total_investment,
			ROUND(AVG(p.completion_percentage), 1) AS avg_completion
		FROM development_projects p
		WHERE p.project_manager <> ''` + c.sql() + `
		GROUP BY p.project_manager
		ORDER BY project_count DESC`

	var rows []ResourceAllocation
	if err := r.scan(&rows, query, c.args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// CompletionByStatus returns average, minimum and maximum completion per status
func (r *ReportRepository) CompletionByStatus(filter ProjectReportFilter) ([]CompletionByStatus, error) {
	c := filter.conditions()
	query := `SELECT p.status, COUNT(*) AS count,
			ROUND(AVG(p.completion_percentage), 1) AS avg_completion,
			MIN(p.completion_percentage) AS min_completion,
			MAX(p.completion_percentage) AS max_completion
		FROM development_projects p
		WHERE 1=1` + c.sql() + `
		GROUP BY p.status
		ORDER BY count DESC`

	var rows []CompletionByStatus
	if err := r.scan(&rows, query, c.args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// InvestmentBuckets groups projects by investment size
func (r *ReportRepository) InvestmentBuckets(filter ProjectReportFilter) ([]InvestmentBucket, error) {
	c := filter.conditions()
	query := `SELECT CASE
				WHEN p.estimated_investment < 100000 THEN 'Small (<$100K)'
				WHEN p.estimated_investment < 500000 THEN 'Medium ($100K-$500K)'
				WHEN p.estimated_investment < 1000000 THEN 'Large ($500K-$1M)'
				ELSE 'Major (>$1M)'
			END AS investment_category,
			COUNT(*) AS count,
			ROUND(AVG(p.completion_percentage), 1) AS avg_completion,
			ROUND(AVG(p.expected_completion - p.start_date), 0) AS avg_duration_days
		FROM development_projects p
		WHERE p.estimated_investment > 0` + c.sql() + `
		GROUP BY investment_category
		ORDER BY MIN(p.estimated_investment)`

	var rows []InvestmentBucket
	if err := r.scan(&rows, query, c.args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// ProjectCompliance aggregates projects per compliance status
func (r *ReportRepository) ProjectCompliance(filter ProjectReportFilter) ([]ProjectComplianceAnalysis, error) {
	c := filter.conditions()
	query := `SELECT p.compliance_status, COUNT(*) AS count,
			ROUND(AVG(p.completion_percentage), 1) AS avg_completion
		FROM development_projects p
		WHERE 1=1` + c.sql() + `
		GROUP BY p.compliance_status
		ORDER BY count DESC`

	var rows []ProjectComplianceAnalysis
	if err := r.scan(&rows, query, c.args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// OverdueProjects returns open projects past their expected completion, most overdue first
func (r *ReportRepository) OverdueProjects(filter ProjectReportFilter, today time.Time) ([]ProjectRisk, error) {
	c := filter.conditions()
	query := `SELECT p.project_name, p.status, p.priority, p.expected_completion,
			p.estimated_investment, p.completion_percentage, p.project_manager,
			(CAST(? AS date) - p.expected_completion) AS days
		FROM development_projects p
		WHERE p.expected_completion < ?
			AND p.status NOT IN ('Completed', 'Cancelled')` + c.sql() + `
		ORDER BY days DESC`

	var rows []ProjectRisk
	args := append([]interface{}{today, today}, c.args...)
	if err := r.scan(&rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// StalledProjects returns live projects started over 180 days ago that are below 25% complete
func (r *ReportRepository) StalledProjects(filter ProjectReportFilter, today time.Time) ([]ProjectRisk, error) {
	c := filter.conditions()
	query := `SELECT p.project_name, p.status, p.priority, p.start_date,
			p.estimated_investment, p.completion_percentage, p.project_manager,
			(CAST(? AS date) - p.start_date) AS days
		FROM development_projects p
		WHERE p.start_date < ?
			AND p.completion_percentage < 25
			AND p.status NOT IN ('Completed', 'Cancelled', 'On Hold')` + c.sql() + `
		ORDER BY days DESC`

	var rows []ProjectRisk
	args := append([]interface{}{today, today.AddDate(0, 0, -180)}, c.args...)
	if err := r.scan(&rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// HighRiskProjects returns open projects above 500k investment that are below 50% complete
func (r *ReportRepository) HighRiskProjects(filter ProjectReportFilter) ([]ProjectRisk, error) {
	c := filter.conditions()
	query := `SELECT p.project_name, p.status, p.priority, p.expected_completion,
			p.estimated_investment, p.completion_percentage, p.project_manager
		FROM development_projects p
		WHERE p.estimated_investment > 500000
			AND p.completion_percentage < 50
			AND p.status NOT IN ('Completed', 'Cancelled')` + c.sql() + `
		ORDER BY p.estimated_investment DESC`

	var rows []ProjectRisk
	if err := r.scan(&rows, query, c.args...); err != nil {
		return nil, err
	}
	return rows, nil
}
