package models

import "github.com/shopspring/decimal"

// MarketEntryPlan describes how and when a product line enters a new country
type MarketEntryPlan struct {
	BaseModel
	PlanTitle            string     `json:"plan_title" gorm:"not null;size:200" validate:"required,max=200"`
	TargetCountry        string     `json:"target_country" gorm:"not null;size:100;index" validate:"required,max=100"`
	Status               PlanStatus `json:"status" gorm:"type:varchar(30);not null;default:'Planning';index"`
	Priority             Priority   `json:"priority" gorm:"type:varchar(10);not null;default:'Medium'"`
	PlanDate             *Date      `json:"plan_date,omitempty" gorm:"type:date"`
	TargetLaunchDate     *Date      `json:"target_launch_date,omitempty" gorm:"type:date;index"`
	NextMilestoneDate    *Date      `json:"next_milestone_date,omitempty" gorm:"type:date"`
	CompletionPercentage int        `json:"completion_percentage" gorm:"default:0"`
	CurrentPhase         string     `json:"current_phase" gorm:"size:100"`

	MarketSize        decimal.Decimal `json:"market_size" gorm:"type:numeric(18,2);default:0"`
	MarketPotential   string          `json:"market_potential" gorm:"size:20;default:'Medium'"`
	TargetSegments    string          `json:"target_segments" gorm:"type:text"`
	EntryStrategy     string          `json:"entry_strategy" gorm:"size:100;default:'Distributor Partnership'"`
	TargetProducts    string          `json:"target_products" gorm:"type:text"`
	RegulatoryPathway string          `json:"regulatory_pathway" gorm:"type:text"`

	InitialInvestment decimal.Decimal `json:"initial_investment" gorm:"type:numeric(18,2);default:0"`
	OngoingCosts      decimal.Decimal `json:"ongoing_costs" gorm:"type:numeric(18,2);default:0"`
	RegulatoryCosts   decimal.Decimal `json:"regulatory_costs" gorm:"type:numeric(18,2);default:0"`
	Year1Revenue      decimal.Decimal `json:"year_1_revenue" gorm:"column:year_1_revenue;type:numeric(18,2);default:0"`
	Year2Revenue      decimal.Decimal `json:"year_2_revenue" gorm:"column:year_2_revenue;type:numeric(18,2);default:0"`
	Year3Revenue      decimal.Decimal `json:"year_3_revenue" gorm:"column:year_3_revenue;type:numeric(18,2);default:0"`

	KeyMilestones  string `json:"key_milestones" gorm:"type:text"`
	ProjectManager string `json:"project_manager" gorm:"size:140"`
	MarketLead     string `json:"market_lead" gorm:"size:140"`
	RegulatoryLead string `json:"regulatory_lead" gorm:"size:140"`
	Route          string `json:"route" gorm:"size:255"`
}

// TableName returns the table name for MarketEntryPlan
func (MarketEntryPlan) TableName() string {
	return "market_entry_plans"
}
