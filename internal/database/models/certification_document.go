package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CertificationDocument is a certificate, licence or approval held by the business
type CertificationDocument struct {
	BaseModel
	DocumentTitle     string     `json:"document_title" gorm:"not null;size:200" validate:"required,max=200"`
	DocumentType      string     `json:"document_type" gorm:"size:100;index"`
	CertificateNumber string     `json:"certificate_number" gorm:"size:100"`
	IssuingAuthority  string     `json:"issuing_authority" gorm:"size:140"`
	Country           string     `json:"country" gorm:"size:100;index"`
	OrganizationID    *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	RelatedProduct    string     `json:"related_product" gorm:"size:140"`

	IssueDate       *Date `json:"issue_date,omitempty" gorm:"type:date"`
	ExpiryDate      *Date `json:"expiry_date,omitempty" gorm:"type:date;index"`
	LastRenewalDate *Date `json:"last_renewal_date,omitempty" gorm:"type:date"`
	NextRenewalDue  *Date `json:"next_renewal_due,omitempty" gorm:"type:date"`

	Status             CertificateStatus  `json:"status" gorm:"type:varchar(20);not null;default:'Valid';index"`
	AccessLevel        string             `json:"access_level" gorm:"size:20;default:'Internal'"`
	VerificationStatus VerificationStatus `json:"verification_status" gorm:"type:varchar(30);default:'Pending Verification'"`
	PaymentStatus      string             `json:"payment_status" gorm:"size:20;default:'Paid'"`
	ReviewFrequency    string             `json:"review_frequency" gorm:"size:20;default:'Annual'"`

	DocumentFile string `json:"document_file" gorm:"size:255"`
	DocumentHash string `json:"document_hash" gorm:"size:64"`
	FileSize     string `json:"file_size" gorm:"size:40"`

	CertificationCost decimal.Decimal `json:"certification_cost" gorm:"type:numeric(18,2);default:0"`
	RenewalCost       decimal.Decimal `json:"renewal_cost" gorm:"type:numeric(18,2);default:0"`
	Currency          string          `json:"currency" gorm:"size:10"`

	PrimaryContact   string `json:"primary_contact" gorm:"size:140"`
	SecondaryContact string `json:"secondary_contact" gorm:"size:140"`
	ContactEmail     string `json:"contact_email" gorm:"size:140"`
	CreatedByUser    string `json:"created_by_user" gorm:"size:140"`
	LastUpdatedBy    string `json:"last_updated_by" gorm:"size:140"`
	Archived         bool   `json:"archived" gorm:"not null;default:false;index"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for CertificationDocument
func (CertificationDocument) TableName() string {
	return "certification_documents"
}
