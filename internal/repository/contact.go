package repository

import (
	"time"

	"sysmayal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactFilter narrows contact listings; empty fields are ignored
type ContactFilter struct {
	OrganizationID *uuid.UUID
	Status         string
	RegulatoryRole string
	Country        string
}

func (f ContactFilter) apply(db *gorm.DB) *gorm.DB {
	if f.OrganizationID != nil {
		db = db.Where("organization_id = ?", *f.OrganizationID)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.RegulatoryRole != "" {
		db = db.Where("regulatory_role = ?", f.RegulatoryRole)
	}
	if f.Country != "" {
		db = db.Where("country = ?", f.Country)
	}
	return db
}

// ContactRepository handles database operations for contacts
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create creates a new contact
func (r *ContactRepository) Create(contact *models.Contact) error {
	return r.db.Omit("Organization").Create(contact).Error
}

// GetByID retrieves a contact by ID
func (r *ContactRepository) GetByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetAll retrieves contacts matching filter with pagination
func (r *ContactRepository) GetAll(filter ContactFilter, limit, offset int) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	if err := filter.apply(r.db.Model(&models.Contact{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := filter.apply(r.db).Order("full_name").Limit(limit).Offset(offset).Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// Find retrieves every contact matching filter ordered by name
func (r *ContactRepository) Find(filter ContactFilter) ([]models.Contact, error) {
	var contacts []models.Contact
	err := filter.apply(r.db).Order("full_name").Find(&contacts).Error
	return contacts, err
}

// EmailExistsInOrganization reports whether another contact of the organization uses email
func (r *ContactRepository) EmailExistsInOrganization(orgID uuid.UUID, email string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.Model(&models.Contact{}).
		Where("organization_id = ? AND LOWER(email_id) = LOWER(?)", orgID, email)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// UpdateStatus sets the status of every listed contact
func (r *ContactRepository) UpdateStatus(ids []uuid.UUID, status, updatedBy string) (int64, error) {
	result := r.db.Model(&models.Contact{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{"status": status, "updated_by": updatedBy})
	return result.RowsAffected, result.Error
}

// TouchLastContacted records when a contact was last reached
func (r *ContactRepository) TouchLastContacted(id uuid.UUID, at time.Time) error {
	result := r.db.Model(&models.Contact{}).Where("id = ?", id).Update("last_contacted", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Update updates a contact
func (r *ContactRepository) Update(contact *models.Contact) error {
	return r.db.Omit("Organization").Save(contact).Error
}

// Delete deletes a contact
func (r *ContactRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}
