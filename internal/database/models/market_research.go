package models

import "github.com/shopspring/decimal"

// MarketResearch is a market study for a country and product category
type MarketResearch struct {
	BaseModel
	ResearchTitle        string         `json:"research_title" gorm:"not null;size:200" validate:"required,max=200"`
	ResearchType         string         `json:"research_type" gorm:"size:100"`
	ResearchStatus       ResearchStatus `json:"research_status" gorm:"type:varchar(20);not null;default:'Planning';index"`
	Country              string         `json:"country" gorm:"not null;size:100;index" validate:"required,max=100"`
	Region               string         `json:"region" gorm:"size:100;index"`
	ProductCategory      string         `json:"product_category" gorm:"size:100;index"`
	ResearchDate         *Date          `json:"research_date,omitempty" gorm:"type:date"`
	ResearchLead         string         `json:"research_lead" gorm:"size:140"`
	Priority             Priority       `json:"priority" gorm:"type:varchar(10);not null;default:'Medium'"`
	CompletionPercentage int            `json:"completion_percentage" gorm:"default:0"`

	MarketSize       string          `json:"market_size" gorm:"size:100"`
	MarketGrowthRate float64         `json:"market_growth_rate" gorm:"default:0"`
	MarketValue      decimal.Decimal `json:"market_value" gorm:"type:numeric(18,2);default:0"`
	TargetSegments   string          `json:"target_segments" gorm:"type:text"`
	KeyDrivers       string          `json:"key_drivers" gorm:"type:text"`
	MarketBarriers   string          `json:"market_barriers" gorm:"type:text"`

	MainCompetitors       string `json:"main_competitors" gorm:"type:text"`
	CompetitiveLandscape  string `json:"competitive_landscape" gorm:"type:text"`
	MarketShareAnalysis   string `json:"market_share_analysis" gorm:"type:text"`
	CompetitiveAdvantages string `json:"competitive_advantages" gorm:"type:text"`
	CompetitiveThreats    string `json:"competitive_threats" gorm:"type:text"`

	TargetDemographics  string `json:"target_demographics" gorm:"type:text"`
	CustomerBehavior    string `json:"customer_behavior" gorm:"type:text"`
	BuyingPatterns      string `json:"buying_patterns" gorm:"type:text"`
	CustomerPreferences string `json:"customer_preferences" gorm:"type:text"`
	PriceSensitivity    string `json:"price_sensitivity" gorm:"size:40"`

	Strengths     string `json:"strengths" gorm:"type:text"`
	Weaknesses    string `json:"weaknesses" gorm:"type:text"`
	Opportunities string `json:"opportunities" gorm:"type:text"`
	Threats       string `json:"threats" gorm:"type:text"`

	RegulatoryEnvironment   string `json:"regulatory_environment" gorm:"type:text"`
	ComplianceRequirements  string `json:"compliance_requirements" gorm:"type:text"`
	RegulatoryChallenges    string `json:"regulatory_challenges" gorm:"type:text"`
	RegulatoryOpportunities string `json:"regulatory_opportunities" gorm:"type:text"`

	MarketTrends        string `json:"market_trends" gorm:"type:text"`
	FutureProjections   string `json:"future_projections" gorm:"type:text"`
	GrowthOpportunities string `json:"growth_opportunities" gorm:"type:text"`
	RiskFactors         string `json:"risk_factors" gorm:"type:text"`

	ResearchMethods     string          `json:"research_methods" gorm:"type:text"`
	DataSources         string          `json:"data_sources" gorm:"type:text"`
	SampleSize          int             `json:"sample_size" gorm:"default:0"`
	ResearchDuration    string          `json:"research_duration" gorm:"size:60"`
	ResearchBudget      decimal.Decimal `json:"research_budget" gorm:"type:numeric(18,2);default:0"`
	ExternalConsultants string          `json:"external_consultants" gorm:"type:text"`
	ReliabilityScore    int             `json:"reliability_score" gorm:"default:0"`

	KeyFindings              string `json:"key_findings" gorm:"type:text"`
	StrategicRecommendations string `json:"strategic_recommendations" gorm:"type:text"`
	NextSteps                string `json:"next_steps" gorm:"type:text"`
	ActionItems              string `json:"action_items" gorm:"type:text"`
}

// TableName returns the table name for MarketResearch
func (MarketResearch) TableName() string {
	return "market_research_studies"
}
