package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Organization is a distribution partner: distributor, retailer, supplier and so on
type Organization struct {
	BaseModel
	OrganizationName string             `json:"organization_name" gorm:"not null;size:140;uniqueIndex:idx_org_name_country" validate:"required,max=140"`
	OrganizationType OrganizationType   `json:"organization_type" gorm:"type:varchar(40);not null;default:'Distributor';index"`
	Country          string             `json:"country" gorm:"not null;size:100;uniqueIndex:idx_org_name_country;index" validate:"required,max=100"`
	Territory        string             `json:"territory" gorm:"size:140;index"`
	Status           OrganizationStatus `json:"status" gorm:"type:varchar(20);not null;default:'Active';index"`
	RegulatoryStatus RegulatoryStatus   `json:"regulatory_status" gorm:"type:varchar(30);not null;default:'Pending Review'"`

	ContactPerson string `json:"contact_person" gorm:"size:140"`
	EmailID       string `json:"email_id" gorm:"size:140"`
	Phone         string `json:"phone" gorm:"size:40"`
	MobileNo      string `json:"mobile_no" gorm:"size:40"`
	Website       string `json:"website" gorm:"size:200"`

	AddressLine1 string `json:"address_line_1" gorm:"size:200"`
	AddressLine2 string `json:"address_line_2" gorm:"size:200"`
	City         string `json:"city" gorm:"size:100"`
	State        string `json:"state" gorm:"size:100"`
	PostalCode   string `json:"postal_code" gorm:"size:20"`

	BusinessFocus   string          `json:"business_focus" gorm:"type:text"`
	AnnualRevenue   decimal.Decimal `json:"annual_revenue" gorm:"type:numeric(18,2);default:0"`
	EmployeeCount   int             `json:"employee_count" gorm:"default:0"`
	EstablishedYear int             `json:"established_year" gorm:"default:0"`
	Currency        string          `json:"currency" gorm:"size:10"`

	ParentOrganizationID *uuid.UUID `json:"parent_organization_id,omitempty" gorm:"type:uuid;index"`
	AgreementExpiry      *Date      `json:"agreement_expiry,omitempty" gorm:"type:date"`
	LastAuditDate        *Date      `json:"last_audit_date,omitempty" gorm:"type:date"`
	NextAuditDue         *Date      `json:"next_audit_due,omitempty" gorm:"type:date"`

	// Relationships
	Contacts []Contact `json:"contacts,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "distribution_organizations"
}

// PartnerAccountType distinguishes customer from supplier accounts
type PartnerAccountType string

const (
	PartnerAccountCustomer PartnerAccountType = "customer"
	PartnerAccountSupplier PartnerAccountType = "supplier"
)

// PartnerAccount is the trading account opened for a new organization
type PartnerAccount struct {
	BaseModel
	OrganizationID uuid.UUID          `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_partner_org_type"`
	AccountType    PartnerAccountType `json:"account_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_partner_org_type"`
	AccountName    string             `json:"account_name" gorm:"not null;size:140"`
	AccountGroup   string             `json:"account_group" gorm:"size:100"`
	Territory      string             `json:"territory" gorm:"size:140"`
	Country        string             `json:"country" gorm:"size:100"`

	Organization Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PartnerAccount
func (PartnerAccount) TableName() string {
	return "partner_accounts"
}
