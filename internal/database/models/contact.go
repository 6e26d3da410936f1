package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a person working at a distribution organization
type Contact struct {
	BaseModel
	FirstName      string    `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName       string    `json:"last_name" gorm:"size:100"`
	FullName       string    `json:"full_name" gorm:"size:200;index"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Designation    string    `json:"designation" gorm:"size:140"`
	Department     string    `json:"department" gorm:"size:140"`
	RegulatoryRole string    `json:"regulatory_role" gorm:"size:100;index"`
	Status         string    `json:"status" gorm:"size:20;not null;default:'Active'"`

	EmailID                 string `json:"email_id" gorm:"not null;size:140;index"`
	Phone                   string `json:"phone" gorm:"size:40"`
	MobileNo                string `json:"mobile_no" gorm:"size:40"`
	Country                 string `json:"country" gorm:"size:100;index"`
	PreferredLanguage       string `json:"preferred_language" gorm:"size:20"`
	CommunicationPreference string `json:"communication_preference" gorm:"size:40;default:'Email'"`
	ContactFrequency        string `json:"contact_frequency" gorm:"size:40;default:'Monthly'"`

	YearsExperience int        `json:"years_experience" gorm:"default:0"`
	Certifications  string     `json:"certifications" gorm:"type:text"`
	LastContacted   *time.Time `json:"last_contacted,omitempty"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "distribution_contacts"
}
