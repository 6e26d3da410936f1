package models

import "github.com/google/uuid"

// ProductCompliance tracks the regulatory standing of one product in one country
type ProductCompliance struct {
	BaseModel
	ProductName     string     `json:"product_name" gorm:"not null;size:140;index" validate:"required,max=140"`
	ProductCode     string     `json:"product_code" gorm:"size:60;index"`
	ProductCategory string     `json:"product_category" gorm:"size:100"`
	Country         string     `json:"country" gorm:"not null;size:100;index" validate:"required,max=100"`
	ManufacturerID  *uuid.UUID `json:"manufacturer_id,omitempty" gorm:"type:uuid;index"`

	ComplianceStatus     ComplianceStatus `json:"compliance_status" gorm:"type:varchar(30);not null;default:'Pending Review';index"`
	CompliancePercentage int              `json:"compliance_percentage" gorm:"default:0"`
	RiskLevel            RiskLevel        `json:"risk_level" gorm:"type:varchar(20);not null;default:'Medium';index"`
	ApprovalStatus       string           `json:"approval_status" gorm:"size:40;default:'Not Submitted'"`
	TestingStatus        string           `json:"testing_status" gorm:"size:40;default:'Not Started'"`

	ApprovalDate      *Date `json:"approval_date,omitempty" gorm:"type:date"`
	ManufacturingDate *Date `json:"manufacturing_date,omitempty" gorm:"type:date"`
	ExpiryDate        *Date `json:"expiry_date,omitempty" gorm:"type:date;index"`
	LastReviewDate    *Date `json:"last_review_date,omitempty" gorm:"type:date"`
	NextReviewDate    *Date `json:"next_review_date,omitempty" gorm:"type:date"`

	ResponsiblePerson   string `json:"responsible_person" gorm:"size:140"`
	ContactEmail        string `json:"contact_email" gorm:"size:140"`
	RegulatoryAuthority string `json:"regulatory_authority" gorm:"size:140"`
	ApprovalNumber      string `json:"approval_number" gorm:"size:100"`

	ComplianceNotes         string `json:"compliance_notes" gorm:"type:text"`
	RequiredTests           string `json:"required_tests" gorm:"type:text"`
	CertificationsHeld      string `json:"certifications_held" gorm:"type:text"`
	OutstandingRequirements string `json:"outstanding_requirements" gorm:"type:text"`
	SupportingDocuments     string `json:"supporting_documents" gorm:"type:text"`
	RegulatorySubmissions   string `json:"regulatory_submissions" gorm:"type:text"`
	AuditTrail              string `json:"audit_trail" gorm:"type:text"`
	Route                   string `json:"route" gorm:"size:255"`

	Manufacturer *Organization `json:"manufacturer,omitempty" gorm:"foreignKey:ManufacturerID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for ProductCompliance
func (ProductCompliance) TableName() string {
	return "product_compliance_records"
}
