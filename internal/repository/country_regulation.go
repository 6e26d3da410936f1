package repository

import (
	"sysmayal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CountryRegulationRepository handles database operations for country regulations
type CountryRegulationRepository struct {
	db *gorm.DB
}

// NewCountryRegulationRepository creates a new country regulation repository
func NewCountryRegulationRepository(db *gorm.DB) *CountryRegulationRepository {
	return &CountryRegulationRepository{db: db}
}

// Create creates a new regulation record
func (r *CountryRegulationRepository) Create(regulation *models.CountryRegulation) error {
	return r.db.Create(regulation).Error
}

// GetByID retrieves a regulation record by ID
func (r *CountryRegulationRepository) GetByID(id uuid.UUID) (*models.CountryRegulation, error) {
	var regulation models.CountryRegulation
	err := r.db.First(&regulation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &regulation, nil
}

// GetByCountry retrieves the regulation record of a country
func (r *CountryRegulationRepository) GetByCountry(country string) (*models.CountryRegulation, error) {
	var regulation models.CountryRegulation
	err := r.db.First(&regulation, "country_name = ?", country).Error
	if err != nil {
		return nil, err
	}
	return &regulation, nil
}

// GetAll retrieves regulation records, optionally of one region, with pagination
func (r *CountryRegulationRepository) GetAll(region string, limit, offset int) ([]models.CountryRegulation, int64, error) {
	var regulations []models.CountryRegulation
	var total int64

	query := r.db.Model(&models.CountryRegulation{})
	if region != "" {
		query = query.Where("region = ?", region)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("country_name").Limit(limit).Offset(offset).Find(&regulations).Error
	if err != nil {
		return nil, 0, err
	}

	return regulations, total, nil
}

// GetByRegion retrieves every regulation record of a region ordered by country
func (r *CountryRegulationRepository) GetByRegion(region string) ([]models.CountryRegulation, error) {
	var regulations []models.CountryRegulation
	err := r.db.Where("region = ?", region).Order("country_name").Find(&regulations).Error
	return regulations, err
}

// ListAll retrieves every regulation record ordered by country
func (r *CountryRegulationRepository) ListAll() ([]models.CountryRegulation, error) {
	var regulations []models.CountryRegulation
	err := r.db.Order("country_name").Find(&regulations).Error
	return regulations, err
}

// ListCountries lists every country that has a regulation record
func (r *CountryRegulationRepository) ListCountries() ([]string, error) {
	var countries []string
	err := r.db.Model(&models.CountryRegulation{}).Order("country_name").Pluck("country_name", &countries).Error
	return countries, err
}

// Update updates a regulation record
func (r *CountryRegulationRepository) Update(regulation *models.CountryRegulation) error {
	return r.db.Save(regulation).Error
}

// Delete deletes a regulation record
func (r *CountryRegulationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CountryRegulation{}, "id = ?", id).Error
}
