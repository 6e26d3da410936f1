package repository

import (
	"time"

	"sysmayal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationFilter narrows organization listings; empty fields are ignored
type OrganizationFilter struct {
	Country          string
	Status           string
	OrganizationType string
}

func (f OrganizationFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Country != "" {
		db = db.Where("country = ?", f.Country)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.OrganizationType != "" {
		db = db.Where("organization_type = ?", f.OrganizationType)
	}
	return db
}

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// FindByName retrieves every organization with the given name, ordered by country
func (r *OrganizationRepository) FindByName(name string) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.Where("organization_name = ?", name).Order("country").Find(&orgs).Error
	return orgs, err
}

// GetByName retrieves the first organization with the given name
func (r *OrganizationRepository) GetByName(name string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.Order("created_at").First(&org, "organization_name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByNameAndCountry retrieves an organization by its natural key
func (r *OrganizationRepository) GetByNameAndCountry(name, country string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "organization_name = ? AND country = ?", name, country).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// ExistsByName reports whether any organization carries the given name
func (r *OrganizationRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Organization{}).Where("organization_name = ?", name).Count(&count).Error
	return count > 0, err
}

// GetAll retrieves organizations matching filter with pagination
func (r *OrganizationRepository) GetAll(filter OrganizationFilter, limit, offset int) ([]models.Organization, int64, error) {
	var orgs []models.Organization
	var total int64

	// Get total count
	if err := filter.apply(r.db.Model(&models.Organization{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := filter.apply(r.db).Order("organization_name").Limit(limit).Offset(offset).Find(&orgs).Error
	if err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}

// GetByCountry retrieves all organizations in a country ordered by name
func (r *OrganizationRepository) GetByCountry(country string) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.Where("country = ?", country).Order("organization_name").Find(&orgs).Error
	return orgs, err
}

// GetChildren retrieves the direct children of an organization
func (r *OrganizationRepository) GetChildren(parentID uuid.UUID) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.Where("parent_organization_id = ?", parentID).Order("organization_name").Find(&orgs).Error
	return orgs, err
}

// CountByCountry counts organizations in a country
func (r *OrganizationRepository) CountByCountry(country string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Organization{}).Where("country = ?", country).Count(&count).Error
	return count, err
}

// GetAuditOverdue retrieves audited organizations whose next audit is past due
// while their regulatory status still reads as in good standing
func (r *OrganizationRepository) GetAuditOverdue(today time.Time) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.
		Where("last_audit_date IS NOT NULL AND next_audit_due IS NOT NULL AND next_audit_due < ?", today).
		Where("regulatory_status IN ?", []models.RegulatoryStatus{models.RegulatoryStatusCompliant, models.RegulatoryStatusPendingReview}).
		Find(&orgs).Error
	return orgs, err
}

// Update updates an organization
func (r *OrganizationRepository) Update(org *models.Organization) error {
	return r.db.Omit("Contacts").Save(org).Error
}

// Delete deletes an organization
func (r *OrganizationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Organization{}, "id = ?", id).Error
}

// PartnerAccountRepository handles database operations for partner accounts
type PartnerAccountRepository struct {
	db *gorm.DB
}

// NewPartnerAccountRepository creates a new partner account repository
func NewPartnerAccountRepository(db *gorm.DB) *PartnerAccountRepository {
	return &PartnerAccountRepository{db: db}
}

// Create creates a new partner account
func (r *PartnerAccountRepository) Create(account *models.PartnerAccount) error {
	return r.db.Omit("Organization").Create(account).Error
}

// GetByOrganization retrieves the account of the given type for an organization
func (r *PartnerAccountRepository) GetByOrganization(orgID uuid.UUID, accountType models.PartnerAccountType) (*models.PartnerAccount, error) {
	var account models.PartnerAccount
	err := r.db.First(&account, "organization_id = ? AND account_type = ?", orgID, accountType).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Update updates a partner account
func (r *PartnerAccountRepository) Update(account *models.PartnerAccount) error {
	return r.db.Omit("Organization").Save(account).Error
}
