package models

// CountryRegulation summarises how a country regulates aloe products
type CountryRegulation struct {
	BaseModel
	CountryName         string                 `json:"country_name" gorm:"not null;size:100;uniqueIndex" validate:"required,max=100"`
	Region              string                 `json:"region" gorm:"size:100;index"`
	RegulatoryAuthority string                 `json:"regulatory_authority" gorm:"size:200"`
	AuthorityWebsite    string                 `json:"authority_website" gorm:"size:255"`
	KeyRequirements     string                 `json:"key_requirements" gorm:"type:text"`
	AloeClassification  string                 `json:"aloe_classification" gorm:"size:140"`
	TypicalTimeline     string                 `json:"typical_timeline" gorm:"size:100"`
	LastUpdated         *Date                  `json:"last_updated,omitempty" gorm:"type:date"`
	VerificationStatus  RegulationVerification `json:"verification_status" gorm:"type:varchar(30);not null;default:'Pending Verification'"`
	NextReviewDate      *Date                  `json:"next_review_date,omitempty" gorm:"type:date"`
	DataSource          string                 `json:"data_source" gorm:"size:40"`
	Route               string                 `json:"route" gorm:"size:255"`
}

// TableName returns the table name for CountryRegulation
func (CountryRegulation) TableName() string {
	return "country_regulations"
}
