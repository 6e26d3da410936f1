package models

import (
	"time"

	"github.com/google/uuid"
)

// Communication is the log entry of one outgoing email
type Communication struct {
	BaseModel
	Subject       string              `json:"subject" gorm:"not null;size:255"`
	Recipients    string              `json:"recipients" gorm:"type:text;not null"`
	Content       string              `json:"content" gorm:"type:text"`
	ReferenceType string              `json:"reference_type" gorm:"size:40;index"`
	ReferenceID   *uuid.UUID          `json:"reference_id,omitempty" gorm:"type:uuid;index"`
	Status        CommunicationStatus `json:"status" gorm:"type:varchar(10);not null"`
	ErrorMessage  string              `json:"error_message,omitempty" gorm:"type:text"`
	SentAt        time.Time           `json:"sent_at" gorm:"index"`
}

// TableName returns the table name for Communication
func (Communication) TableName() string {
	return "communications"
}
