package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/cache"
	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/logger"
	"sysmayal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	findingsExcerptLength = 200
	planningCompletionCap = 10
	topResearchCountries  = 10
	recentResearchStudies = 5
	topCompetitors        = 10
)

// MarketResearchService handles business logic for market research studies
type MarketResearchService struct {
	repo       repository.MarketResearchRepositoryInterface
	projects   repository.DevelopmentProjectRepositoryInterface
	comments   repository.CommentRepositoryInterface
	dashboards *DashboardCache
	validator  *validator.Validate
}

// NewMarketResearchService creates a new market research service
func NewMarketResearchService(
	repo repository.MarketResearchRepositoryInterface,
	projects repository.DevelopmentProjectRepositoryInterface,
	comments repository.CommentRepositoryInterface,
	dashboards *DashboardCache,
	validator *validator.Validate,
) *MarketResearchService {
	return &MarketResearchService{
		repo:       repo,
		projects:   projects,
		comments:   comments,
		dashboards: dashboards,
		validator:  validator,
	}
}

// MarketResearchRequest represents the request to create or update a study
type MarketResearchRequest struct {
	ResearchTitle        string                `json:"research_title" validate:"required,max=200" example:"Aloe beverages in Brazil"`
	ResearchType         string                `json:"research_type,omitempty" validate:"max=100" example:"Competitive Analysis"`
	ResearchStatus       models.ResearchStatus `json:"research_status,omitempty" validate:"omitempty,oneof=Planning 'In Progress' Completed 'On Hold' Cancelled"`
	Country              string                `json:"country" validate:"required,max=100" example:"Brazil"`
	Region               string                `json:"region,omitempty" validate:"max=100"`
	ProductCategory      string                `json:"product_category,omitempty" validate:"max=100"`
	ResearchDate         *models.Date          `json:"research_date,omitempty" swaggertype:"string"`
	ResearchLead         string                `json:"research_lead,omitempty" validate:"max=140"`
	Priority             models.Priority       `json:"priority,omitempty" validate:"omitempty,oneof=High Medium Low"`
	CompletionPercentage int                   `json:"completion_percentage,omitempty" validate:"gte=0,lte=100"`

	MarketSize       string          `json:"market_size,omitempty" validate:"max=100"`
	MarketGrowthRate float64         `json:"market_growth_rate,omitempty"`
	MarketValue      decimal.Decimal `json:"market_value" swaggertype:"number"`
	TargetSegments   string          `json:"target_segments,omitempty"`
	KeyDrivers       string          `json:"key_drivers,omitempty"`
	MarketBarriers   string          `json:"market_barriers,omitempty"`

	MainCompetitors       string `json:"main_competitors,omitempty"`
	CompetitiveLandscape  string `json:"competitive_landscape,omitempty"`
	MarketShareAnalysis   string `json:"market_share_analysis,omitempty"`
	CompetitiveAdvantages string `json:"competitive_advantages,omitempty"`
	CompetitiveThreats    string `json:"competitive_threats,omitempty"`

	TargetDemographics  string `json:"target_demographics,omitempty"`
	CustomerBehavior    string `json:"customer_behavior,omitempty"`
	BuyingPatterns      string `json:"buying_patterns,omitempty"`
	CustomerPreferences string `json:"customer_preferences,omitempty"`
	PriceSensitivity    string `json:"price_sensitivity,omitempty" validate:"max=40"`

	Strengths     string `json:"strengths,omitempty"`
	Weaknesses    string `json:"weaknesses,omitempty"`
	Opportunities string `json:"opportunities,omitempty"`
	Threats       string `json:"threats,omitempty"`

	RegulatoryEnvironment   string `json:"regulatory_environment,omitempty"`
	ComplianceRequirements  string `json:"compliance_requirements,omitempty"`
	RegulatoryChallenges    string `json:"regulatory_challenges,omitempty"`
	RegulatoryOpportunities string `json:"regulatory_opportunities,omitempty"`

	MarketTrends        string `json:"market_trends,omitempty"`
	FutureProjections   string `json:"future_projections,omitempty"`
	GrowthOpportunities string `json:"growth_opportunities,omitempty"`
	RiskFactors         string `json:"risk_factors,omitempty"`

	ResearchMethods     string          `json:"research_methods,omitempty"`
	DataSources         string          `json:"data_sources,omitempty"`
	SampleSize          int             `json:"sample_size,omitempty" validate:"gte=0"`
	ResearchDuration    string          `json:"research_duration,omitempty" validate:"max=60"`
	ResearchBudget      decimal.Decimal `json:"research_budget" swaggertype:"number"`
	ExternalConsultants string          `json:"external_consultants,omitempty"`
	ReliabilityScore    int             `json:"reliability_score,omitempty" validate:"gte=0,lte=10"`

	KeyFindings              string `json:"key_findings,omitempty"`
	StrategicRecommendations string `json:"strategic_recommendations,omitempty"`
	NextSteps                string `json:"next_steps,omitempty"`
	ActionItems              string `json:"action_items,omitempty"`
}

func (req *MarketResearchRequest) apply(study *models.MarketResearch) {
	study.ResearchTitle = req.ResearchTitle
	study.ResearchType = req.ResearchType
	study.ResearchStatus = req.ResearchStatus
	study.Country = req.Country
	study.Region = req.Region
	study.ProductCategory = req.ProductCategory
	study.ResearchDate = req.ResearchDate.OrNil()
	study.ResearchLead = req.ResearchLead
	study.Priority = req.Priority
	study.CompletionPercentage = req.CompletionPercentage

	study.MarketSize = req.MarketSize
	study.MarketGrowthRate = req.MarketGrowthRate
	study.MarketValue = req.MarketValue
	study.TargetSegments = req.TargetSegments
	study.KeyDrivers = req.KeyDrivers
	study.MarketBarriers = req.MarketBarriers

	study.MainCompetitors = req.MainCompetitors
	study.CompetitiveLandscape = req.CompetitiveLandscape
	study.MarketShareAnalysis = req.MarketShareAnalysis
	study.CompetitiveAdvantages = req.CompetitiveAdvantages
	study.CompetitiveThreats = req.CompetitiveThreats

	study.TargetDemographics = req.TargetDemographics
	study.CustomerBehavior = req.CustomerBehavior
	study.BuyingPatterns = req.BuyingPatterns
	study.CustomerPreferences = req.CustomerPreferences
	study.PriceSensitivity = req.PriceSensitivity

	study.Strengths = req.Strengths
	study.Weaknesses = req.Weaknesses
	study.Opportunities = req.Opportunities
	study.Threats = req.Threats

	study.RegulatoryEnvironment = req.RegulatoryEnvironment
	study.ComplianceRequirements = req.ComplianceRequirements
	study.RegulatoryChallenges = req.RegulatoryChallenges
	study.RegulatoryOpportunities = req.RegulatoryOpportunities

	study.MarketTrends = req.MarketTrends
	study.FutureProjections = req.FutureProjections
	study.GrowthOpportunities = req.GrowthOpportunities
	study.RiskFactors = req.RiskFactors

	study.ResearchMethods = req.ResearchMethods
	study.DataSources = req.DataSources
	study.SampleSize = req.SampleSize
	study.ResearchDuration = req.ResearchDuration
	study.ResearchBudget = req.ResearchBudget
	study.ExternalConsultants = req.ExternalConsultants
	study.ReliabilityScore = req.ReliabilityScore

	study.KeyFindings = req.KeyFindings
	study.StrategicRecommendations = req.StrategicRecommendations
	study.NextSteps = req.NextSteps
	study.ActionItems = req.ActionItems
}

// MarketResearchResponse represents the response for study operations
type MarketResearchResponse struct {
	*models.MarketResearch
	Warnings []string `json:"warnings,omitempty"`
}

// MarketResearchListResponse represents a paginated list of studies
type MarketResearchListResponse = ListResponse[models.MarketResearch]

// MarketResearchFilter holds the list query parameters
type MarketResearchFilter struct {
	Status          string `form:"status"`
	Country         string `form:"country"`
	Region          string `form:"region"`
	ProductCategory string `form:"product_category"`
}

// CompetitiveSummary is the competition section of one study
type CompetitiveSummary struct {
	MainCompetitors       string `json:"main_competitors"`
	CompetitiveThreats    string `json:"competitive_threats"`
	CompetitiveAdvantages string `json:"competitive_advantages"`
	MarketShareData       string `json:"market_share_data"`
}

// MarketReport is the full report generated from one study
type MarketReport struct {
	ResearchTitle   string `json:"research_title"`
	ResearchType    string `json:"research_type"`
	Country         string `json:"country"`
	ProductCategory string `json:"product_category"`
	MarketOverview  struct {
		MarketSize  string          `json:"market_size"`
		MarketValue decimal.Decimal `json:"market_value" swaggertype:"number"`
		GrowthRate  float64         `json:"growth_rate"`
		KeyDrivers  string          `json:"key_drivers"`
		Barriers    string          `json:"barriers"`
	} `json:"market_overview"`
	CompetitiveLandscape struct {
		MainCompetitors    string `json:"main_competitors"`
		MarketShare        string `json:"market_share"`
		CompetitiveThreats string `json:"competitive_threats"`
		OurAdvantages      string `json:"our_advantages"`
	} `json:"competitive_landscape"`
	CustomerInsights struct {
		Demographics     string `json:"demographics"`
		Behavior         string `json:"behavior"`
		Preferences      string `json:"preferences"`
		PriceSensitivity string `json:"price_sensitivity"`
	} `json:"customer_insights"`
	SWOTAnalysis         SWOT `json:"swot_analysis"`
	TrendsAndProjections struct {
		MarketTrends        string `json:"market_trends"`
		FutureProjections   string `json:"future_projections"`
		GrowthOpportunities string `json:"growth_opportunities"`
		RiskFactors         string `json:"risk_factors"`
	} `json:"trends_and_projections"`
	Conclusions struct {
		KeyFindings     string `json:"key_findings"`
		Recommendations string `json:"recommendations"`
		NextSteps       string `json:"next_steps"`
		ActionItems     string `json:"action_items"`
	} `json:"conclusions"`
}

// SWOT holds the four SWOT quadrants of a study
type SWOT struct {
	Strengths     string `json:"strengths"`
	Weaknesses    string `json:"weaknesses"`
	Opportunities string `json:"opportunities"`
	Threats       string `json:"threats"`
}

// ResearchDashboard aggregates studies for the dashboard
type ResearchDashboard struct {
	StatusDistribution   []repository.GroupCount              `json:"status_distribution"`
	CountryDistribution  []repository.ResearchCountryOverview `json:"country_distribution"`
	CategoryDistribution []repository.GroupCount              `json:"category_distribution"`
	RecentCompleted      []RecentStudy                        `json:"recent_completed"`
}

// RecentStudy is a completed study shown on the dashboard
type RecentStudy struct {
	ID            uuid.UUID    `json:"id"`
	ResearchTitle string       `json:"research_title"`
	Country       string       `json:"country"`
	ResearchDate  *models.Date `json:"research_date" swaggertype:"string"`
	ResearchType  string       `json:"research_type"`
}

// MarketIntelligence aggregates the completed studies of one country
type MarketIntelligence struct {
	Message              string   `json:"message,omitempty"`
	Country              string   `json:"country,omitempty"`
	TotalResearchStudies int      `json:"total_research_studies"`
	MarketSegments       []string `json:"market_segments"`
	KeyCompetitors       []string `json:"key_competitors"`
	GrowthOpportunities  []string `json:"growth_opportunities"`
	RegulatoryChallenges []string `json:"regulatory_challenges"`
	MarketTrends         []string `json:"market_trends"`
}

// MarketNote pairs a finding with the market it was made in
type MarketNote struct {
	Market string `json:"market"`
	Text   string `json:"text"`
}

// CompetitorMention counts how many studies name a competitor
type CompetitorMention struct {
	Competitor string `json:"competitor"`
	Mentions   int    `json:"mentions"`
}

// SWOTSummary collects SWOT quadrants across studies
type SWOTSummary struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// LandscapeReport aggregates competition across completed studies
type LandscapeReport struct {
	Message             string              `json:"message,omitempty"`
	TotalStudies        int                 `json:"total_studies"`
	MarketsAnalyzed     []string            `json:"markets_analyzed"`
	TopCompetitors      []CompetitorMention `json:"top_competitors"`
	CompetitiveThreats  []MarketNote        `json:"competitive_threats"`
	MarketOpportunities []MarketNote        `json:"market_opportunities"`
	SWOTSummary         SWOTSummary         `json:"swot_summary"`
}

// Create creates a new market research study
func (s *MarketResearchService) Create(ctx context.Context, req *MarketResearchRequest) (*MarketResearchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	study := &models.MarketResearch{}
	req.apply(study)
	user := auth.UserFromContext(ctx)
	warnings, err := prepareStudy(study, user, models.Today())
	if err != nil {
		return nil, err
	}

	study.Stamp(user)
	if err := s.repo.Create(study); err != nil {
		return nil, fmt.Errorf("failed to create market research: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixResearch)

	return &MarketResearchResponse{MarketResearch: study, Warnings: warnings}, nil
}

// GetByID retrieves a study by ID
func (s *MarketResearchService) GetByID(ctx context.Context, id uuid.UUID) (*MarketResearchResponse, error) {
	study, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrMarketResearchNotFound, "market research")
	}
	return &MarketResearchResponse{MarketResearch: study}, nil
}

// GetAll retrieves studies with filters and pagination
func (s *MarketResearchService) GetAll(ctx context.Context, filter MarketResearchFilter, page, pageSize int) (*MarketResearchListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	studies, total, err := s.repo.GetAll(repository.MarketResearchFilter(filter), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get market research: %w", err)
	}
	return &MarketResearchListResponse{Items: studies, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update replaces the editable fields of a study and shares completed insights with related projects
func (s *MarketResearchService) Update(ctx context.Context, id uuid.UUID, req *MarketResearchRequest) (*MarketResearchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	study, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrMarketResearchNotFound, "market research")
	}
	wasCompleted := study.ResearchStatus == models.ResearchStatusCompleted
	req.apply(study)

	user := auth.UserFromContext(ctx)
	warnings, err := prepareStudy(study, user, models.Today())
	if err != nil {
		return nil, err
	}

	study.Stamp(user)
	if err := s.repo.Update(study); err != nil {
		return nil, fmt.Errorf("failed to update market research: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixResearch)
	if !wasCompleted {
		s.shareInsights(ctx, study)
	}

	return &MarketResearchResponse{MarketResearch: study, Warnings: warnings}, nil
}

// Delete deletes a study
func (s *MarketResearchService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookupError(err, apperrors.ErrMarketResearchNotFound, "market research")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete market research: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixResearch)
	return nil
}

// GetCompetitiveSummary returns the competition section of a study
func (s *MarketResearchService) GetCompetitiveSummary(ctx context.Context, id uuid.UUID) (*CompetitiveSummary, error) {
	study, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrMarketResearchNotFound, "market research")
	}
	return &CompetitiveSummary{
		MainCompetitors:       study.MainCompetitors,
		CompetitiveThreats:    study.CompetitiveThreats,
		CompetitiveAdvantages: study.CompetitiveAdvantages,
		MarketShareData:       study.MarketShareAnalysis,
	}, nil
}

// GenerateReport builds the sectioned market report of a study
func (s *MarketResearchService) GenerateReport(ctx context.Context, id uuid.UUID) (*MarketReport, error) {
	study, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrMarketResearchNotFound, "market research")
	}

	report := &MarketReport{
		ResearchTitle:   study.ResearchTitle,
		ResearchType:    study.ResearchType,
		Country:         study.Country,
		ProductCategory: study.ProductCategory,
		SWOTAnalysis: SWOT{
			Strengths:     study.Strengths,
			Weaknesses:    study.Weaknesses,
			Opportunities: study.Opportunities,
			Threats:       study.Threats,
		},
	}

	report.MarketOverview.MarketSize = study.MarketSize
	report.MarketOverview.MarketValue = study.MarketValue
	report.MarketOverview.GrowthRate = study.MarketGrowthRate
	report.MarketOverview.KeyDrivers = study.KeyDrivers
	report.MarketOverview.Barriers = study.MarketBarriers

	report.CompetitiveLandscape.MainCompetitors = study.MainCompetitors
	report.CompetitiveLandscape.MarketShare = study.MarketShareAnalysis
	report.CompetitiveLandscape.CompetitiveThreats = study.CompetitiveThreats
	report.CompetitiveLandscape.OurAdvantages = study.CompetitiveAdvantages

	report.CustomerInsights.Demographics = study.TargetDemographics
	report.CustomerInsights.Behavior = study.CustomerBehavior
	report.CustomerInsights.Preferences = study.CustomerPreferences
	report.CustomerInsights.PriceSensitivity = study.PriceSensitivity

	report.TrendsAndProjections.MarketTrends = study.MarketTrends
	report.TrendsAndProjections.FutureProjections = study.FutureProjections
	report.TrendsAndProjections.GrowthOpportunities = study.GrowthOpportunities
	report.TrendsAndProjections.RiskFactors = study.RiskFactors

	report.Conclusions.KeyFindings = study.KeyFindings
	report.Conclusions.Recommendations = study.StrategicRecommendations
	report.Conclusions.NextSteps = study.NextSteps
	report.Conclusions.ActionItems = study.ActionItems
	return report, nil
}

// GetDashboard returns status, country and category counts plus the latest completed studies
func (s *MarketResearchService) GetDashboard(ctx context.Context) (*ResearchDashboard, error) {
	return loadCached(ctx, s.dashboards, cache.PrefixResearch+"dashboard", func() (*ResearchDashboard, error) {
		byStatus, err := s.repo.CountByStatus()
		if err != nil {
			return nil, fmt.Errorf("failed to count research status: %w", err)
		}
		byCountry, err := s.repo.TopCountries(topResearchCountries)
		if err != nil {
			return nil, fmt.Errorf("failed to count research countries: %w", err)
		}
		byCategory, err := s.repo.CountByCategory()
		if err != nil {
			return nil, fmt.Errorf("failed to count research categories: %w", err)
		}
		recent, err := s.repo.RecentCompleted(recentResearchStudies)
		if err != nil {
			return nil, fmt.Errorf("failed to get recent research: %w", err)
		}

		studies := make([]RecentStudy, 0, len(recent))
		for _, study := range recent {
			studies = append(studies, RecentStudy{
				ID:            study.ID,
				ResearchTitle: study.ResearchTitle,
				Country:       study.Country,
				ResearchDate:  study.ResearchDate,
				ResearchType:  study.ResearchType,
			})
		}

		return &ResearchDashboard{
			StatusDistribution:   byStatus,
			CountryDistribution:  byCountry,
			CategoryDistribution: byCategory,
			RecentCompleted:      studies,
		}, nil
	})
}

// GetIntelligence aggregates the completed studies of a country
func (s *MarketResearchService) GetIntelligence(ctx context.Context, country string) (*MarketIntelligence, error) {
	studies, err := s.repo.GetCompleted(repository.MarketResearchFilter{Country: country})
	if err != nil {
		return nil, fmt.Errorf("failed to get market research: %w", err)
	}
	if len(studies) == 0 {
		return &MarketIntelligence{Message: fmt.Sprintf("No market research data available for %s", country)}, nil
	}

	segments := newOrderedSet()
	competitors := newOrderedSet()
	intel := &MarketIntelligence{
		Country:              country,
		TotalResearchStudies: len(studies),
		GrowthOpportunities:  []string{},
		RegulatoryChallenges: []string{},
		MarketTrends:         []string{},
	}
	for _, study := range studies {
		segments.add(study.ProductCategory)
		for _, competitor := range splitList(study.MainCompetitors) {
			competitors.add(competitor)
		}
		intel.GrowthOpportunities = appendNonEmpty(intel.GrowthOpportunities, study.GrowthOpportunities)
		intel.RegulatoryChallenges = appendNonEmpty(intel.RegulatoryChallenges, study.RegulatoryChallenges)
		intel.MarketTrends = appendNonEmpty(intel.MarketTrends, study.MarketTrends)
	}
	intel.MarketSegments = segments.items
	intel.KeyCompetitors = competitors.items
	return intel, nil
}

// GetLandscapeReport aggregates competitors, threats, opportunities and SWOT across completed studies
func (s *MarketResearchService) GetLandscapeReport(ctx context.Context, productCategory, region string) (*LandscapeReport, error) {
	studies, err := s.repo.GetCompleted(repository.MarketResearchFilter{ProductCategory: productCategory, Region: region})
	if err != nil {
		return nil, fmt.Errorf("failed to get market research: %w", err)
	}
	if len(studies) == 0 {
		return &LandscapeReport{Message: "No completed research studies found for the specified criteria"}, nil
	}

	markets := newOrderedSet()
	mentions := map[string]int{}
	var order []string
	report := &LandscapeReport{
		TotalStudies:        len(studies),
		CompetitiveThreats:  []MarketNote{},
		MarketOpportunities: []MarketNote{},
		SWOTSummary: SWOTSummary{
			Strengths:     []string{},
			Weaknesses:    []string{},
			Opportunities: []string{},
			Threats:       []string{},
		},
	}

	for _, study := range studies {
		markets.add(study.Country)
		for _, competitor := range splitList(study.MainCompetitors) {
			if mentions[competitor] == 0 {
				order = append(order, competitor)
			}
			mentions[competitor]++
		}
		if study.CompetitiveThreats != "" {
			report.CompetitiveThreats = append(report.CompetitiveThreats, MarketNote{Market: study.Country, Text: study.CompetitiveThreats})
		}
		if study.GrowthOpportunities != "" {
			report.MarketOpportunities = append(report.MarketOpportunities, MarketNote{Market: study.Country, Text: study.GrowthOpportunities})
		}
		report.SWOTSummary.Strengths = appendNonEmpty(report.SWOTSummary.Strengths, study.Strengths)
		report.SWOTSummary.Weaknesses = appendNonEmpty(report.SWOTSummary.Weaknesses, study.Weaknesses)
		report.SWOTSummary.Opportunities = appendNonEmpty(report.SWOTSummary.Opportunities, study.Opportunities)
		report.SWOTSummary.Threats = appendNonEmpty(report.SWOTSummary.Threats, study.Threats)
	}

	report.MarketsAnalyzed = markets.items
	report.TopCompetitors = make([]CompetitorMention, 0, len(order))
	for _, competitor := range order {
		report.TopCompetitors = append(report.TopCompetitors, CompetitorMention{Competitor: competitor, Mentions: mentions[competitor]})
	}
	sort.SliceStable(report.TopCompetitors, func(i, j int) bool {
		return report.TopCompetitors[i].Mentions > report.TopCompetitors[j].Mentions
	})
	if len(report.TopCompetitors) > topCompetitors {
		report.TopCompetitors = report.TopCompetitors[:topCompetitors]
	}
	return report, nil
}

// shareInsights comments a completed study's findings on the R&D projects of the same market.
// Studies without a country are not shared.
func (s *MarketResearchService) shareInsights(ctx context.Context, study *models.MarketResearch) {
	if study.ResearchStatus != models.ResearchStatusCompleted || strings.TrimSpace(study.StrategicRecommendations) == "" {
		return
	}
	if strings.TrimSpace(study.Country) == "" {
		return
	}

	log := logger.WithContext(ctx).WithField("market_research_id", study.ID)
	projects, err := s.projects.FindActiveForMarket(study.Country, study.ProductCategory)
	if err != nil {
		log.Warnf("Failed to find related projects: %v", err)
		return
	}

	user := auth.UserFromContext(ctx)
	content := fmt.Sprintf("Market Research insights available: %s. Key findings: %s...",
		study.ResearchTitle, excerpt(study.KeyFindings, findingsExcerptLength))
	for _, project := range projects {
		comment := &models.Comment{
			ReferenceType: models.ReferenceProject,
			ReferenceID:   project.ID,
			Content:       content,
			Author:        user,
		}
		comment.Stamp(user)
		if err := s.comments.Create(comment); err != nil {
			log.WithField("project_id", project.ID).Warnf("Failed to comment on project: %v", err)
		}
	}
}

// prepareStudy validates the research date, aligns completion with status and fills defaults
func prepareStudy(study *models.MarketResearch, user string, today models.Date) ([]string, error) {
	if study.ResearchDate != nil && study.ResearchDate.After(today) {
		return nil, apperrors.ErrResearchDateInFuture
	}

	var warnings []string
	switch {
	case study.ResearchStatus == models.ResearchStatusCompleted:
		study.CompletionPercentage = 100
	case study.ResearchStatus == models.ResearchStatusPlanning && study.CompletionPercentage > planningCompletionCap:
		warnings = append(warnings, "Completion percentage seems high for Planning status")
	}

	if study.ResearchStatus == "" {
		study.ResearchStatus = models.ResearchStatusPlanning
	}
	if study.ResearchDate == nil {
		study.ResearchDate = models.DatePtr(today)
	}
	study.ResearchLead = orDefault(study.ResearchLead, user)
	if study.Priority == "" {
		study.Priority = models.PriorityMedium
	}
	return warnings, nil
}

// excerpt returns the first n runes of s
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func appendNonEmpty(list []string, value string) []string {
	if strings.TrimSpace(value) == "" {
		return list
	}
	return append(list, value)
}

// orderedSet keeps the first occurrence of each non-empty value
type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]bool{}, items: []string{}}
}

func (s *orderedSet) add(value string) {
	if value == "" || s.seen[value] {
		return
	}
	s.seen[value] = true
	s.items = append(s.items, value)
}
