package models

import "github.com/shopspring/decimal"

// DevelopmentProject is an R&D project for a new or improved aloe product
type DevelopmentProject struct {
	BaseModel
	ProjectName        string        `json:"project_name" gorm:"not null;size:200" validate:"required,max=200"`
	ProjectType        string        `json:"project_type" gorm:"size:100;index"`
	Status             ProjectStatus `json:"status" gorm:"type:varchar(30);not null;default:'Planning';index"`
	Priority           Priority      `json:"priority" gorm:"type:varchar(10);not null;default:'Medium';index"`
	StartDate          *Date         `json:"start_date,omitempty" gorm:"type:date"`
	ExpectedCompletion *Date         `json:"expected_completion,omitempty" gorm:"type:date;index"`
	ProductCategory    string        `json:"product_category" gorm:"size:100;index"`
	TargetMarkets      string        `json:"target_markets" gorm:"type:text"`
	TargetCountries    string        `json:"target_countries" gorm:"type:text"`

	ProjectDescription   string          `json:"project_description" gorm:"type:text"`
	BusinessCase         string          `json:"business_case" gorm:"type:text"`
	SuccessCriteria      string          `json:"success_criteria" gorm:"type:text"`
	EstimatedInvestment  decimal.Decimal `json:"estimated_investment" gorm:"type:numeric(18,2);default:0"`
	CompletionPercentage int             `json:"completion_percentage" gorm:"default:0"`

	CurrentPhase           string `json:"current_phase" gorm:"size:100"`
	NextMilestone          string `json:"next_milestone" gorm:"type:text"`
	RegulatoryStrategy     string `json:"regulatory_strategy" gorm:"type:text"`
	RequiredCertifications string `json:"required_certifications" gorm:"type:text"`
	ComplianceStatus       string `json:"compliance_status" gorm:"size:40;default:'Not Started'"`

	ProjectManager string `json:"project_manager" gorm:"size:140;index"`
	RAndDLead      string `json:"r_and_d_lead" gorm:"column:r_and_d_lead;size:140"`
	RegulatoryLead string `json:"regulatory_lead" gorm:"size:140"`
	TeamMembers    string `json:"team_members" gorm:"type:text"`
	LastUpdateDate *Date  `json:"last_update_date,omitempty" gorm:"type:date"`
}

// TableName returns the table name for DevelopmentProject
func (DevelopmentProject) TableName() string {
	return "development_projects"
}
