package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/cache"
	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	aggressiveLaunchDays = 180
	launchDueSoonDays    = 90
	maxMilestoneProgress = 90
	milestoneProgress    = 10

	// planOpportunitiesKey also depends on regulation records
	planOpportunitiesKey = cache.PrefixPlans + "opportunities"
)

var (
	hundred           = decimal.NewFromInt(100)
	matureMarketSize  = decimal.NewFromInt(100_000_000)
	growingMarketSize = decimal.NewFromInt(10_000_000)
	highRegulatory    = decimal.NewFromInt(100_000)
	highCapital       = decimal.NewFromInt(1_000_000)
)

// MarketEntryPlanService handles business logic for market entry plans
type MarketEntryPlanService struct {
	repo        repository.MarketEntryPlanRepositoryInterface
	regulations repository.CountryRegulationRepositoryInterface
	dashboards  *DashboardCache
	validator   *validator.Validate
}

// NewMarketEntryPlanService creates a new market entry plan service
func NewMarketEntryPlanService(
	repo repository.MarketEntryPlanRepositoryInterface,
	regulations repository.CountryRegulationRepositoryInterface,
	dashboards *DashboardCache,
	validator *validator.Validate,
) *MarketEntryPlanService {
	return &MarketEntryPlanService{
		repo:        repo,
		regulations: regulations,
		dashboards:  dashboards,
		validator:   validator,
	}
}

// MarketEntryPlanRequest represents the request to create or update a plan
type MarketEntryPlanRequest struct {
	PlanTitle            string            `json:"plan_title" validate:"required,max=200" example:"Aloe drinks launch in Poland"`
	TargetCountry        string            `json:"target_country" validate:"required,max=100" example:"Poland"`
	Status               models.PlanStatus `json:"status,omitempty" validate:"omitempty,oneof=Planning 'In Progress' 'Approval Required' Approved Implementing Completed 'On Hold' Cancelled"`
	Priority             models.Priority   `json:"priority,omitempty" validate:"omitempty,oneof=High Medium Low"`
	PlanDate             *models.Date      `json:"plan_date,omitempty" swaggertype:"string"`
	TargetLaunchDate     *models.Date      `json:"target_launch_date,omitempty" swaggertype:"string" example:"2027-03-01"`
	NextMilestoneDate    *models.Date      `json:"next_milestone_date,omitempty" swaggertype:"string"`
	CompletionPercentage int               `json:"completion_percentage,omitempty" validate:"gte=0,lte=100"`
	CurrentPhase         string            `json:"current_phase,omitempty" validate:"max=100"`

	MarketSize        decimal.Decimal `json:"market_size" swaggertype:"number"`
	MarketPotential   string          `json:"market_potential,omitempty" validate:"omitempty,oneof=High Medium Low"`
	TargetSegments    string          `json:"target_segments,omitempty"`
	EntryStrategy     string          `json:"entry_strategy,omitempty" validate:"max=100"`
	TargetProducts    string          `json:"target_products,omitempty"`
	RegulatoryPathway string          `json:"regulatory_pathway,omitempty"`

	InitialInvestment decimal.Decimal `json:"initial_investment" swaggertype:"number"`
	OngoingCosts      decimal.Decimal `json:"ongoing_costs" swaggertype:"number"`
	RegulatoryCosts   decimal.Decimal `json:"regulatory_costs" swaggertype:"number"`
	Year1Revenue      decimal.Decimal `json:"year_1_revenue" swaggertype:"number"`
	Year2Revenue      decimal.Decimal `json:"year_2_revenue" swaggertype:"number"`
	Year3Revenue      decimal.Decimal `json:"year_3_revenue" swaggertype:"number"`

	KeyMilestones  string `json:"key_milestones,omitempty"`
	ProjectManager string `json:"project_manager,omitempty" validate:"max=140"`
	MarketLead     string `json:"market_lead,omitempty" validate:"max=140"`
	RegulatoryLead string `json:"regulatory_lead,omitempty" validate:"max=140"`
}

func (req *MarketEntryPlanRequest) apply(plan *models.MarketEntryPlan) {
	plan.PlanTitle = req.PlanTitle
	plan.TargetCountry = req.TargetCountry
	plan.Status = req.Status
	plan.Priority = req.Priority
	plan.PlanDate = req.PlanDate.OrNil()
	plan.TargetLaunchDate = req.TargetLaunchDate.OrNil()
	plan.NextMilestoneDate = req.NextMilestoneDate.OrNil()
	plan.CompletionPercentage = req.CompletionPercentage
	plan.CurrentPhase = req.CurrentPhase
	plan.MarketSize = req.MarketSize
	plan.MarketPotential = req.MarketPotential
	plan.TargetSegments = req.TargetSegments
	plan.EntryStrategy = req.EntryStrategy
	plan.TargetProducts = req.TargetProducts
	plan.RegulatoryPathway = req.RegulatoryPathway
	plan.InitialInvestment = req.InitialInvestment
	plan.OngoingCosts = req.OngoingCosts
	plan.RegulatoryCosts = req.RegulatoryCosts
	plan.Year1Revenue = req.Year1Revenue
	plan.Year2Revenue = req.Year2Revenue
	plan.Year3Revenue = req.Year3Revenue
	plan.KeyMilestones = req.KeyMilestones
	plan.ProjectManager = req.ProjectManager
	plan.MarketLead = req.MarketLead
	plan.RegulatoryLead = req.RegulatoryLead
}

// MarketEntryPlanResponse represents the response for plan operations
type MarketEntryPlanResponse struct {
	*models.MarketEntryPlan
	Warnings []string `json:"warnings,omitempty"`
}

// MarketEntryPlanListResponse represents a paginated list of plans
type MarketEntryPlanListResponse = ListResponse[models.MarketEntryPlan]

// MarketEntryPlanFilter holds the list and report query parameters
type MarketEntryPlanFilter struct {
	Status        string `form:"status"`
	TargetCountry string `form:"target_country"`
	Priority      string `form:"priority"`
}

// MilestoneRequest records a reached milestone
type MilestoneRequest struct {
	Description string       `json:"description" validate:"required,max=500" example:"Distributor agreement signed"`
	Date        *models.Date `json:"date,omitempty" swaggertype:"string"`
}

// FinancialMetrics are the return figures derived from a plan's projections
type FinancialMetrics struct {
	Year1ROI      *decimal.Decimal `json:"year_1_roi,omitempty" swaggertype:"number"`
	RevenueCAGR   *decimal.Decimal `json:"revenue_cagr,omitempty" swaggertype:"number"`
	PaybackPeriod *decimal.Decimal `json:"payback_period,omitempty" swaggertype:"number"`
	ThreeYearROI  *decimal.Decimal `json:"three_year_roi,omitempty" swaggertype:"number"`
}

// MarketAnalysis grades the target market
type MarketAnalysis struct {
	MarketMaturity      string   `json:"market_maturity"`
	EntryBarriers       []string `json:"entry_barriers"`
	InvestmentIntensity string   `json:"investment_intensity"`
}

// PlanRisk is one identified market entry risk
type PlanRisk struct {
	Type        string `json:"type"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

// PlanTimeline describes how close a plan is to its launch
type PlanTimeline struct {
	DaysToLaunch   *int   `json:"days_to_launch,omitempty"`
	CurrentPhase   string `json:"current_phase"`
	CompletionRate int    `json:"completion_rate"`
	Status         string `json:"status,omitempty"`
}

// PlanAnalysisSummary combines regulation, financial, market, risk and timeline views of a plan
type PlanAnalysisSummary struct {
	CountryRegulations *models.CountryRegulation `json:"country_regulations"`
	FinancialMetrics   FinancialMetrics          `json:"financial_metrics"`
	MarketAnalysis     MarketAnalysis            `json:"competitive_landscape"`
	RiskAssessment     []PlanRisk                `json:"risk_assessment"`
	TimelineAnalysis   PlanTimeline              `json:"timeline_analysis"`
}

// ExecutiveSummary is the stakeholder view of a plan
type ExecutiveSummary struct {
	PlanOverview struct {
		Title         string            `json:"title"`
		TargetCountry string            `json:"target_country"`
		TargetLaunch  *models.Date      `json:"target_launch" swaggertype:"string"`
		Status        models.PlanStatus `json:"status"`
		Completion    string            `json:"completion"`
	} `json:"plan_overview"`
	MarketOpportunity struct {
		MarketSize decimal.Decimal `json:"market_size" swaggertype:"number"`
		Potential  string          `json:"potential"`
		Segments   string          `json:"segments"`
	} `json:"market_opportunity"`
	FinancialOutlook struct {
		InvestmentRequired decimal.Decimal  `json:"investment_required" swaggertype:"number"`
		Year1Revenue       decimal.Decimal  `json:"year_1_revenue" swaggertype:"number"`
		Year3Revenue       decimal.Decimal  `json:"year_3_revenue" swaggertype:"number"`
		ThreeYearROI       *decimal.Decimal `json:"roi_3_year" swaggertype:"number"`
	} `json:"financial_outlook"`
	KeyRisks    []string `json:"key_risks"`
	NextActions string   `json:"next_actions"`
	Team        struct {
		ProjectManager string `json:"project_manager"`
		MarketLead     string `json:"market_lead"`
		RegulatoryLead string `json:"regulatory_lead"`
	} `json:"team"`
}

// MarketEntryDashboard aggregates plans for the dashboard
type MarketEntryDashboard struct {
	StatusDistribution []repository.GroupCount          `json:"status_distribution"`
	CountryAnalysis    []repository.PlanCountryOverview `json:"country_analysis"`
	FinancialSummary   *repository.PlanFinancials       `json:"financial_summary"`
	TimelineAnalysis   []repository.GroupCount          `json:"timeline_analysis"`
}

// MarketOpportunity is a regulated country without an open entry plan
type MarketOpportunity struct {
	CountryName         string `json:"country_name"`
	RegulatoryAuthority string `json:"regulatory_authority"`
	AloeClassification  string `json:"aloe_classification"`
}

// Create creates a new market entry plan
func (s *MarketEntryPlanService) Create(ctx context.Context, req *MarketEntryPlanRequest) (*MarketEntryPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	plan := &models.MarketEntryPlan{}
	req.apply(plan)
	warnings, err := preparePlan(plan, models.Today())
	if err != nil {
		return nil, err
	}

	plan.Stamp(auth.UserFromContext(ctx))
	if err := s.repo.Create(plan); err != nil {
		return nil, fmt.Errorf("failed to create market entry plan: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixPlans)

	return &MarketEntryPlanResponse{MarketEntryPlan: plan, Warnings: warnings}, nil
}

// GetByID retrieves a plan by ID
func (s *MarketEntryPlanService) GetByID(ctx context.Context, id uuid.UUID) (*MarketEntryPlanResponse, error) {
	plan, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrMarketEntryPlanNotFound, "market entry plan")
	}
	return &MarketEntryPlanResponse{MarketEntryPlan: plan}, nil
}

// GetAll retrieves plans with filters and pagination
func (s *MarketEntryPlanService) GetAll(ctx context.Context, filter MarketEntryPlanFilter, page, pageSize int) (*MarketEntryPlanListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	plans, total, err := s.repo.GetAll(repository.MarketEntryPlanFilter(filter), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get market entry plans: %w", err)
	}
	return &MarketEntryPlanListResponse{Items: plans, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update replaces the editable fields of a plan
func (s *MarketEntryPlanService) Update(ctx context.Context, id uuid.UUID, req *MarketEntryPlanRequest) (*MarketEntryPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	plan, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrMarketEntryPlanNotFound, "market entry plan")
	}
	route := plan.Route
	req.apply(plan)
	plan.Route = route

	warnings, err := preparePlan(plan, models.Today())
	if err != nil {
		return nil, err
	}
	if err := s.update(ctx, plan); err != nil {
		return nil, err
	}
	return &MarketEntryPlanResponse{MarketEntryPlan: plan, Warnings: warnings}, nil
}

// Delete deletes a plan
func (s *MarketEntryPlanService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookupError(err, apperrors.ErrMarketEntryPlanNotFound, "market entry plan")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete market entry plan: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixPlans)
	return nil
}

// GetAnalysisSummary returns the regulation, financial, market, risk and timeline analysis of a plan
func (s *MarketEntryPlanService) GetAnalysisSummary(ctx context.Context, id uuid.UUID) (*PlanAnalysisSummary, error) {
	plan, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrMarketEntryPlanNotFound, "market entry plan")
	}

	regulation, err := s.regulations.GetByCountry(plan.TargetCountry)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		regulation = nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get country regulation: %w", err)
	}

	today := models.Today()
	return &PlanAnalysisSummary{
		CountryRegulations: regulation,
		FinancialMetrics:   planMetrics(plan),
		MarketAnalysis:     analyseMarket(plan),
		RiskAssessment:     planRisks(plan, today),
		TimelineAnalysis:   planTimeline(plan, today),
	}, nil
}

// UpdateMilestone appends a reached milestone and advances completion
func (s *MarketEntryPlanService) UpdateMilestone(ctx context.Context, id uuid.UUID, req *MilestoneRequest) (*MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	plan, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrMarketEntryPlanNotFound, "market entry plan")
	}

	date := models.Today()
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}
	plan.KeyMilestones = appendLine(plan.KeyMilestones, fmt.Sprintf("%s: %s", date, strings.TrimSpace(req.Description)))
	if plan.CompletionPercentage < maxMilestoneProgress {
		plan.CompletionPercentage += milestoneProgress
	}

	if err := s.update(ctx, plan); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Milestone updated successfully"}, nil
}

// GetExecutiveSummary returns the stakeholder summary of a plan
func (s *MarketEntryPlanService) GetExecutiveSummary(ctx context.Context, id uuid.UUID) (*ExecutiveSummary, error) {
	plan, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrMarketEntryPlanNotFound, "market entry plan")
	}

	summary := &ExecutiveSummary{}
	summary.PlanOverview.Title = plan.PlanTitle
	summary.PlanOverview.TargetCountry = plan.TargetCountry
	summary.PlanOverview.TargetLaunch = plan.TargetLaunchDate
	summary.PlanOverview.Status = plan.Status
	summary.PlanOverview.Completion = fmt.Sprintf("%d%%", plan.CompletionPercentage)

	summary.MarketOpportunity.MarketSize = plan.MarketSize
	summary.MarketOpportunity.Potential = plan.MarketPotential
	summary.MarketOpportunity.Segments = plan.TargetSegments

	summary.FinancialOutlook.InvestmentRequired = plan.InitialInvestment
	summary.FinancialOutlook.Year1Revenue = plan.Year1Revenue
	summary.FinancialOutlook.Year3Revenue = plan.Year3Revenue
	summary.FinancialOutlook.ThreeYearROI = planMetrics(plan).ThreeYearROI

	summary.KeyRisks = []string{}
	for _, risk := range planRisks(plan, models.Today()) {
		summary.KeyRisks = append(summary.KeyRisks, risk.Description)
	}
	summary.NextActions = plan.KeyMilestones

	summary.Team.ProjectManager = plan.ProjectManager
	summary.Team.MarketLead = plan.MarketLead
	summary.Team.RegulatoryLead = plan.RegulatoryLead
	return summary, nil
}

// GetDashboard returns status, country, financial and launch timeline aggregates
func (s *MarketEntryPlanService) GetDashboard(ctx context.Context) (*MarketEntryDashboard, error) {
	return loadCached(ctx, s.dashboards, cache.PrefixPlans+"dashboard", func() (*MarketEntryDashboard, error) {
		byStatus, err := s.repo.CountByStatus()
		if err != nil {
			return nil, fmt.Errorf("failed to count plan status: %w", err)
		}
		byCountry, err := s.repo.CountryOverview()
		if err != nil {
			return nil, fmt.Errorf("failed to summarise plans by country: %w", err)
		}
		financials, err := s.repo.Financials()
		if err != nil {
			return nil, fmt.Errorf("failed to total plan financials: %w", err)
		}
		open, err := s.repo.GetOpen()
		if err != nil {
			return nil, fmt.Errorf("failed to get open plans: %w", err)
		}

		return &MarketEntryDashboard{
			StatusDistribution: byStatus,
			CountryAnalysis:    byCountry,
			FinancialSummary:   financials,
			TimelineAnalysis:   launchBuckets(open, models.Today()),
		}, nil
	})
}

// GetOpportunities lists regulated countries that no open plan targets
func (s *MarketEntryPlanService) GetOpportunities(ctx context.Context) ([]MarketOpportunity, error) {
	return loadCached(ctx, s.dashboards, planOpportunitiesKey, func() ([]MarketOpportunity, error) {
		regulations, err := s.regulations.ListAll()
		if err != nil {
			return nil, fmt.Errorf("failed to get country regulations: %w", err)
		}
		planned, err := s.repo.CountriesWithOpenPlans()
		if err != nil {
			return nil, fmt.Errorf("failed to get planned countries: %w", err)
		}

		taken := make(map[string]bool, len(planned))
		for _, country := range planned {
			taken[country] = true
		}

		opportunities := []MarketOpportunity{}
		for _, reg := range regulations {
			if taken[reg.CountryName] {
				continue
			}
			opportunities = append(opportunities, MarketOpportunity{
				CountryName:         reg.CountryName,
				RegulatoryAuthority: reg.RegulatoryAuthority,
				AloeClassification:  reg.AloeClassification,
			})
		}
		return opportunities, nil
	})
}

// GetReport lists every plan matching filter
func (s *MarketEntryPlanService) GetReport(ctx context.Context, filter MarketEntryPlanFilter) ([]models.MarketEntryPlan, error) {
	plans, err := s.repo.Find(repository.MarketEntryPlanFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to generate market entry report: %w", err)
	}
	return plans, nil
}

func (s *MarketEntryPlanService) update(ctx context.Context, plan *models.MarketEntryPlan) error {
	plan.Stamp(auth.UserFromContext(ctx))
	if err := s.repo.Update(plan); err != nil {
		return fmt.Errorf("failed to update market entry plan: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixPlans)
	return nil
}

// preparePlan validates dates, collects projection warnings and fills defaults
func preparePlan(plan *models.MarketEntryPlan, today models.Date) ([]string, error) {
	if plan.PlanDate != nil && plan.TargetLaunchDate != nil && plan.PlanDate.After(*plan.TargetLaunchDate) {
		return nil, apperrors.ErrPlanDateAfterLaunch
	}

	var warnings []string
	if plan.NextMilestoneDate != nil && plan.TargetLaunchDate != nil && plan.NextMilestoneDate.After(*plan.TargetLaunchDate) {
		warnings = append(warnings, "Warning: Next milestone is after target launch date")
	}
	if plan.Year1Revenue.IsPositive() && plan.InitialInvestment.IsPositive() &&
		plan.Year1Revenue.GreaterThan(plan.InitialInvestment.Mul(decimal.NewFromInt(10))) {
		warnings = append(warnings, "Warning: Year 1 revenue seems unusually high compared to investment")
	}
	if plan.Year1Revenue.IsPositive() && plan.Year2Revenue.IsPositive() &&
		plan.Year2Revenue.LessThan(plan.Year1Revenue.Mul(decimal.NewFromFloat(0.5))) {
		warnings = append(warnings, "Warning: Year 2 revenue projection shows significant decline")
	}

	if plan.Status == "" {
		plan.Status = models.PlanStatusPlanning
	}
	if plan.Priority == "" {
		plan.Priority = models.PriorityMedium
	}
	if plan.PlanDate == nil {
		plan.PlanDate = models.DatePtr(today)
	}
	plan.MarketPotential = orDefault(plan.MarketPotential, "Medium")
	plan.EntryStrategy = orDefault(plan.EntryStrategy, "Distributor Partnership")
	if plan.CompletionPercentage == 0 {
		plan.CompletionPercentage = plan.Status.DefaultCompletion()
	}
	if plan.Route == "" && plan.PlanTitle != "" {
		plan.Route = scrub(plan.PlanTitle)
	}
	return warnings, nil
}

// planMetrics derives return figures; a metric is omitted when its inputs are missing
func planMetrics(plan *models.MarketEntryPlan) FinancialMetrics {
	var m FinancialMetrics
	investment, ongoing := plan.InitialInvestment, plan.OngoingCosts
	y1, y2, y3 := plan.Year1Revenue, plan.Year2Revenue, plan.Year3Revenue

	if !investment.IsZero() && !y1.IsZero() {
		roi := y1.Sub(investment).Div(investment).Mul(hundred).Round(2)
		m.Year1ROI = &roi
	}
	if !y1.IsZero() && !y3.IsZero() {
		ratio := y3.Div(y1).InexactFloat64()
		if ratio >= 0 {
			cagr := decimal.NewFromFloat(math.Sqrt(ratio)).Sub(decimal.NewFromInt(1)).Mul(hundred).Round(2)
			m.RevenueCAGR = &cagr
		}
	}
	if !investment.IsZero() && !ongoing.IsZero() {
		if net := y1.Sub(ongoing); !net.IsZero() {
			payback := investment.Div(net).Round(2)
			m.PaybackPeriod = &payback
		}
	}
	if !y1.IsZero() && !y2.IsZero() && !y3.IsZero() {
		revenue := y1.Add(y2).Add(y3)
		costs := investment.Add(ongoing.Mul(decimal.NewFromInt(3))).Add(plan.RegulatoryCosts)
		if !costs.IsZero() {
			roi := revenue.Sub(costs).Div(costs).Mul(hundred).Round(2)
			m.ThreeYearROI = &roi
		}
	}
	return m
}

func analyseMarket(plan *models.MarketEntryPlan) MarketAnalysis {
	analysis := MarketAnalysis{MarketMaturity: "Unknown", EntryBarriers: []string{}, InvestmentIntensity: "Low"}

	switch {
	case plan.MarketSize.IsZero():
	case plan.MarketSize.GreaterThan(matureMarketSize):
		analysis.MarketMaturity = "Mature"
	case plan.MarketSize.GreaterThan(growingMarketSize):
		analysis.MarketMaturity = "Growing"
	default:
		analysis.MarketMaturity = "Emerging"
	}

	if plan.RegulatoryCosts.GreaterThan(highRegulatory) {
		analysis.EntryBarriers = append(analysis.EntryBarriers, "High regulatory costs")
	}
	if plan.InitialInvestment.GreaterThan(highCapital) {
		analysis.EntryBarriers = append(analysis.EntryBarriers, "High capital requirements")
	}
	if strings.Contains(strings.ToLower(plan.TargetProducts), "pharmaceutical") {
		analysis.EntryBarriers = append(analysis.EntryBarriers, "Pharmaceutical regulations")
	}

	if !plan.MarketSize.IsZero() && !plan.InitialInvestment.IsZero() {
		share := plan.InitialInvestment.Div(plan.MarketSize)
		switch {
		case share.GreaterThan(decimal.NewFromFloat(0.01)):
			analysis.InvestmentIntensity = "High"
		case share.GreaterThan(decimal.NewFromFloat(0.001)):
			analysis.InvestmentIntensity = "Medium"
		}
	}
	return analysis
}

func planRisks(plan *models.MarketEntryPlan, today models.Date) []PlanRisk {
	risks := []PlanRisk{}
	if strings.TrimSpace(plan.RegulatoryPathway) == "" {
		risks = append(risks, PlanRisk{Type: "Regulatory", Level: "High", Description: "Regulatory pathway not defined"})
	}
	if !plan.InitialInvestment.IsZero() && !plan.Year1Revenue.IsZero() &&
		plan.InitialInvestment.GreaterThan(plan.Year1Revenue.Mul(decimal.NewFromInt(2))) {
		risks = append(risks, PlanRisk{Type: "Financial", Level: "High", Description: "High investment relative to projected revenue"})
	}
	if days := daysUntil(plan.TargetLaunchDate, today); days != nil && *days < aggressiveLaunchDays {
		risks = append(risks, PlanRisk{Type: "Timeline", Level: "Medium", Description: "Aggressive launch timeline"})
	}
	return risks
}

func planTimeline(plan *models.MarketEntryPlan, today models.Date) PlanTimeline {
	timeline := PlanTimeline{
		DaysToLaunch:   daysUntil(plan.TargetLaunchDate, today),
		CurrentPhase:   plan.CurrentPhase,
		CompletionRate: plan.CompletionPercentage,
	}
	if days := timeline.DaysToLaunch; days != nil {
		switch {
		case *days < 0:
			timeline.Status = "Overdue"
		case *days < 30:
			timeline.Status = "Critical"
		case *days < launchDueSoonDays:
			timeline.Status = "Urgent"
		default:
			timeline.Status = "On Track"
		}
	}
	return timeline
}

// launchBuckets groups open plans into Overdue, Due Soon and Future by launch date
func launchBuckets(plans []models.MarketEntryPlan, today models.Date) []repository.GroupCount {
	counts := map[string]int64{}
	for i := range plans {
		days := daysUntil(plans[i].TargetLaunchDate, today)
		switch {
		case days == nil:
			counts["Future"]++
		case *days < 0:
			counts["Overdue"]++
		case *days < launchDueSoonDays:
			counts["Due Soon"]++
		default:
			counts["Future"]++
		}
	}

	buckets := []repository.GroupCount{}
	for _, key := range []string{"Overdue", "Due Soon", "Future"} {
		if counts[key] > 0 {
			buckets = append(buckets, repository.GroupCount{Key: key, Count: counts[key]})
		}
	}
	return buckets
}
