package repository

import (
	"time"

	"sysmayal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductComplianceFilter narrows compliance listings; empty fields are ignored
type ProductComplianceFilter struct {
	Country          string
	ComplianceStatus string
	RiskLevel        string
}

func (f ProductComplianceFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Country != "" {
		db = db.Where("country = ?", f.Country)
	}
	if f.ComplianceStatus != "" {
		db = db.Where("compliance_status = ?", f.ComplianceStatus)
	}
	if f.RiskLevel != "" {
		db = db.Where("risk_level = ?", f.RiskLevel)
	}
	return db
}

// ProductComplianceRepository handles database operations for product compliance records
type ProductComplianceRepository struct {
	db *gorm.DB
}

// NewProductComplianceRepository creates a new product compliance repository
func NewProductComplianceRepository(db *gorm.DB) *ProductComplianceRepository {
	return &ProductComplianceRepository{db: db}
}

// Create creates a new compliance record
func (r *ProductComplianceRepository) Create(record *models.ProductCompliance) error {
	return r.db.Omit("Manufacturer").Create(record).Error
}

// GetByID retrieves a compliance record by ID
func (r *ProductComplianceRepository) GetByID(id uuid.UUID) (*models.ProductCompliance, error) {
	var record models.ProductCompliance
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByProductAndCountry retrieves a compliance record by its natural key
func (r *ProductComplianceRepository) GetByProductAndCountry(productCode, country string) (*models.ProductCompliance, error) {
	var record models.ProductCompliance
	err := r.db.First(&record, "product_code = ? AND country = ?", productCode, country).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetAll retrieves compliance records matching filter with pagination
func (r *ProductComplianceRepository) GetAll(filter ProductComplianceFilter, limit, offset int) ([]models.ProductCompliance, int64, error) {
	var records []models.ProductCompliance
	var total int64

	if err := filter.apply(r.db.Model(&models.ProductCompliance{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := filter.apply(r.db).Order("country, product_name").Limit(limit).Offset(offset).Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Find retrieves every record matching filter ordered by country and product
func (r *ProductComplianceRepository) Find(filter ProductComplianceFilter) ([]models.ProductCompliance, error) {
	var records []models.ProductCompliance
	err := filter.apply(r.db).Order("country, product_name").Find(&records).Error
	return records, err
}

// GetByCountry retrieves a country's records, most compliant first
func (r *ProductComplianceRepository) GetByCountry(country string) ([]models.ProductCompliance, error) {
	var records []models.ProductCompliance
	err := r.db.Where("country = ?", country).Order("compliance_percentage DESC, product_name").Find(&records).Error
	return records, err
}

// GetWithUpcomingDates retrieves records that carry an expiry or next review date
// and are not already expired
func (r *ProductComplianceRepository) GetWithUpcomingDates() ([]models.ProductCompliance, error) {
	var records []models.ProductCompliance
	err := r.db.
		Where("expiry_date IS NOT NULL OR next_review_date IS NOT NULL").
		Where("compliance_status <> ?", models.ComplianceStatusExpired).
		Find(&records).Error
	return records, err
}

// GetExpiringWithin retrieves records expiring between today and today+days, soonest first
func (r *ProductComplianceRepository) GetExpiringWithin(today time.Time, days int) ([]models.ProductCompliance, error) {
	from, to := dayRange(today, days)
	var records []models.ProductCompliance
	err := r.db.Where("expiry_date BETWEEN ? AND ?", from, to).Order("expiry_date").Find(&records).Error
	return records, err
}

// UpdateStatus sets the compliance status of every listed record
func (r *ProductComplianceRepository) UpdateStatus(ids []uuid.UUID, status models.ComplianceStatus, updatedBy string) (int64, error) {
	result := r.db.Model(&models.ProductCompliance{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{"compliance_status": status, "updated_by": updatedBy})
	return result.RowsAffected, result.Error
}

// CountByStatus counts records per compliance status
func (r *ProductComplianceRepository) CountByStatus() ([]GroupCount, error) {
	return groupCounts(r.db, &models.ProductCompliance{}, "compliance_status")
}

// CountByRisk counts records per risk level
func (r *ProductComplianceRepository) CountByRisk() ([]GroupCount, error) {
	return groupCounts(r.db, &models.ProductCompliance{}, "risk_level")
}

// CountByCountryAndStatus counts records per country and compliance status
func (r *ProductComplianceRepository) CountByCountryAndStatus() ([]CountryStatusCount, error) {
	var rows []CountryStatusCount
	err := r.db.Model(&models.ProductCompliance{}).
		Select("country, compliance_status AS status, COUNT(*) AS count").
		Group("country, compliance_status").
		Order("country, compliance_status").
		Scan(&rows).Error
	return rows, err
}

// CountForCountry returns the total and compliant record counts of a country
func (r *ProductComplianceRepository) CountForCountry(country string) (int64, int64, error) {
	var row struct {
		Total     int64
		Compliant int64
	}
	err := r.db.Model(&models.ProductCompliance{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE compliance_status = ?) AS compliant", models.ComplianceStatusCompliant).
		Where("country = ?", country).
		Scan(&row).Error
	return row.Total, row.Compliant, err
}

// Update updates a compliance record
func (r *ProductComplianceRepository) Update(record *models.ProductCompliance) error {
	return r.db.Omit("Manufacturer").Save(record).Error
}

// Delete deletes a compliance record
func (r *ProductComplianceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProductCompliance{}, "id = ?", id).Error
}
