package models

import "github.com/google/uuid"

// Reference types used by comments and communications
const (
	ReferenceOrganization      = "organization"
	ReferenceContact           = "contact"
	ReferenceProductCompliance = "product_compliance"
	ReferenceCertificate       = "certification_document"
	ReferenceMarketEntryPlan   = "market_entry_plan"
	ReferenceMarketResearch    = "market_research"
	ReferenceProject           = "development_project"
	ReferenceReport            = "report"
)

// Comment is a note attached to any record
type Comment struct {
	BaseModel
	ReferenceType string    `json:"reference_type" gorm:"not null;size:40;index:idx_comment_reference"`
	ReferenceID   uuid.UUID `json:"reference_id" gorm:"type:uuid;not null;index:idx_comment_reference"`
	Content       string    `json:"content" gorm:"type:text;not null"`
	Author        string    `json:"author" gorm:"size:140"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "record_comments"
}
