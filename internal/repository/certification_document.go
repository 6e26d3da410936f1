package repository

import (
	"time"

	"sysmayal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CertificateFilter narrows certificate listings; empty fields are ignored
type CertificateFilter struct {
	Status          string
	DocumentType    string
	Country         string
	OrganizationID  *uuid.UUID
	IncludeArchived bool
}

func (f CertificateFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.DocumentType != "" {
		db = db.Where("document_type = ?", f.DocumentType)
	}
	if f.Country != "" {
		db = db.Where("country = ?", f.Country)
	}
	if f.OrganizationID != nil {
		db = db.Where("organization_id = ?", *f.OrganizationID)
	}
	if !f.IncludeArchived {
		db = db.Where("archived = ?", false)
	}
	return db
}

// CertificateCostSummary aggregates certification and renewal spend
type CertificateCostSummary struct {
	TotalCertificationCost decimal.Decimal `json:"total_certification_cost"`
	TotalRenewalCost       decimal.Decimal `json:"total_renewal_cost"`
	AverageCost            decimal.Decimal `json:"average_cost"`
	CertificateCount       int64           `json:"certificate_count"`
}

// CertificateRepository handles database operations for certification documents
type CertificateRepository struct {
	db *gorm.DB
}

// NewCertificateRepository creates a new certificate repository
func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// Create creates a new certificate
func (r *CertificateRepository) Create(doc *models.CertificationDocument) error {
	return r.db.Omit("Organization").Create(doc).Error
}

// GetByID retrieves a certificate by ID
func (r *CertificateRepository) GetByID(id uuid.UUID) (*models.CertificationDocument, error) {
	var doc models.CertificationDocument
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetByIDs retrieves the listed certificates
func (r *CertificateRepository) GetByIDs(ids []uuid.UUID) ([]models.CertificationDocument, error) {
	var docs []models.CertificationDocument
	err := r.db.Where("id IN ?", ids).Order("document_title").Find(&docs).Error
	return docs, err
}

// GetByCertificateNumber retrieves a certificate by its number
func (r *CertificateRepository) GetByCertificateNumber(number string) (*models.CertificationDocument, error) {
	var doc models.CertificationDocument
	err := r.db.First(&doc, "certificate_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetAll retrieves certificates matching filter with pagination
func (r *CertificateRepository) GetAll(filter CertificateFilter, limit, offset int) ([]models.CertificationDocument, int64, error) {
	var docs []models.CertificationDocument
	var total int64

	if err := filter.apply(r.db.Model(&models.CertificationDocument{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := filter.apply(r.db).Order("expiry_date, document_title").Limit(limit).Offset(offset).Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// Find retrieves every certificate matching filter ordered by expiry and title
func (r *CertificateRepository) Find(filter CertificateFilter) ([]models.CertificationDocument, error) {
	var docs []models.CertificationDocument
	err := filter.apply(r.db).Order("expiry_date, document_title").Find(&docs).Error
	return docs, err
}

// GetExpiring retrieves unexpired, unarchived certificates expiring within days
func (r *CertificateRepository) GetExpiring(today time.Time, days int) ([]models.CertificationDocument, error) {
	from, to := dayRange(today, days)
	var docs []models.CertificationDocument
	err := r.db.
		Where("expiry_date BETWEEN ? AND ?", from, to).
		Where("status <> ? AND archived = ?", models.CertificateStatusExpired, false).
		Order("expiry_date").
		Find(&docs).Error
	return docs, err
}

// GetWithExpiry retrieves unarchived certificates that carry an expiry date
func (r *CertificateRepository) GetWithExpiry() ([]models.CertificationDocument, error) {
	var docs []models.CertificationDocument
	err := r.db.Where("expiry_date IS NOT NULL AND archived = ?", false).Find(&docs).Error
	return docs, err
}

// CountByStatus counts unarchived certificates per status
func (r *CertificateRepository) CountByStatus() ([]GroupCount, error) {
	return groupCounts(r.db.Where("archived = ?", false), &models.CertificationDocument{}, "status")
}

// CountByType counts unarchived certificates per document type, largest first
func (r *CertificateRepository) CountByType() ([]GroupCount, error) {
	return groupCounts(r.db.Where("archived = ?", false), &models.CertificationDocument{}, "document_type")
}

// ExpiryForecast counts certificates expiring in each of the next months, keyed YYYY-MM
func (r *CertificateRepository) ExpiryForecast(today time.Time, months int) ([]GroupCount, error) {
	var rows []GroupCount
	err := r.db.Model(&models.CertificationDocument{}).
		Select("TO_CHAR(expiry_date, 'YYYY-MM') AS key, COUNT(*) AS count").
		Where("expiry_date >= ? AND expiry_date < ?", today, today.AddDate(0, months, 0)).
		Where("archived = ?", false).
		Group("key").
		Order("key").
		Scan(&rows).Error
	return rows, err
}

// CostSummary sums and averages the cost of certificates that carry one
func (r *CertificateRepository) CostSummary() (*CertificateCostSummary, error) {
	var row struct {
		TotalCertificationCost decimal.NullDecimal
		TotalRenewalCost       decimal.NullDecimal
		AverageCost            decimal.NullDecimal
		CertificateCount       int64
	}
	err := r.db.Model(&models.CertificationDocument{}).
		Select(`SUM(certification_cost) AS total_certification_cost,
			SUM(renewal_cost) AS total_renewal_cost,
			AVG(certification_cost) AS average_cost,
			COUNT(*) AS certificate_count`).
		Where("certification_cost > 0").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &CertificateCostSummary{
		TotalCertificationCost: sumOrZero(row.TotalCertificationCost),
		TotalRenewalCost:       sumOrZero(row.TotalRenewalCost),
		AverageCost:            sumOrZero(row.AverageCost).Round(2),
		CertificateCount:       row.CertificateCount,
	}, nil
}

// ArchiveExpiredBefore archives expired certificates whose expiry is older than cutoff
func (r *CertificateRepository) ArchiveExpiredBefore(cutoff time.Time) (int64, error) {
	result := r.db.Model(&models.CertificationDocument{}).
		Where("status = ? AND archived = ? AND expiry_date < ?", models.CertificateStatusExpired, false, cutoff).
		Updates(map[string]interface{}{"archived": true, "updated_by": "system"})
	return result.RowsAffected, result.Error
}

// Update updates a certificate
func (r *CertificateRepository) Update(doc *models.CertificationDocument) error {
	return r.db.Omit("Organization").Save(doc).Error
}

// Delete deletes a certificate
func (r *CertificateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CertificationDocument{}, "id = ?", id).Error
}
