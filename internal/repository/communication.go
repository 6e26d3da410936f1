package repository

import (
	"strings"

	"sysmayal-backend/internal/database/models"

	"gorm.io/gorm"
)

// CommunicationRepository handles database operations for the outgoing mail log
type CommunicationRepository struct {
	db *gorm.DB
}

// NewCommunicationRepository creates a new communication repository
func NewCommunicationRepository(db *gorm.DB) *CommunicationRepository {
	return &CommunicationRepository{db: db}
}

// Create records an outgoing mail
func (r *CommunicationRepository) Create(communication *models.Communication) error {
	return r.db.Create(communication).Error
}

// GetByRecipient retrieves the latest mails whose comma separated recipients include email, newest first
func (r *CommunicationRepository) GetByRecipient(email string, limit int) ([]models.Communication, error) {
	var communications []models.Communication
	err := r.db.Where("? = ANY(string_to_array(lower(recipients), ','))", strings.ToLower(strings.TrimSpace(email))).
		Order("sent_at DESC").
		Limit(limit).
		Find(&communications).Error
	return communications, err
}
