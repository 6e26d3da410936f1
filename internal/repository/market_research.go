package repository

import (
	"sysmayal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarketResearchFilter narrows research listings; empty fields are ignored
type MarketResearchFilter struct {
	Status          string
	Country         string
	Region          string
	ProductCategory string
}

func (f MarketResearchFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("research_status = ?", f.Status)
	}
	if f.Country != "" {
		db = db.Where("country = ?", f.Country)
	}
	if f.Region != "" {
		db = db.Where("region = ?", f.Region)
	}
	if f.ProductCategory != "" {
		db = db.Where("product_category = ?", f.ProductCategory)
	}
	return db
}

// ResearchCountryOverview summarises the studies of one country
type ResearchCountryOverview struct {
	Country           string  `json:"country"`
	StudyCount        int64   `json:"study_count"`
	AverageCompletion float64 `json:"average_completion"`
}

// MarketResearchRepository handles database operations for market research studies
type MarketResearchRepository struct {
	db *gorm.DB
}

// NewMarketResearchRepository creates a new market research repository
func NewMarketResearchRepository(db *gorm.DB) *MarketResearchRepository {
	return &MarketResearchRepository{db: db}
}

// Create creates a new study
func (r *MarketResearchRepository) Create(study *models.MarketResearch) error {
	return r.db.Create(study).Error
}

// GetByID retrieves a study by ID
func (r *MarketResearchRepository) GetByID(id uuid.UUID) (*models.MarketResearch, error) {
	var study models.MarketResearch
	err := r.db.First(&study, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &study, nil
}

// GetByTitle retrieves a study by title
func (r *MarketResearchRepository) GetByTitle(title string) (*models.MarketResearch, error) {
	var study models.MarketResearch
	err := r.db.First(&study, "research_title = ?", title).Error
	if err != nil {
		return nil, err
	}
	return &study, nil
}

// GetAll retrieves studies matching filter with pagination
func (r *MarketResearchRepository) GetAll(filter MarketResearchFilter, limit, offset int) ([]models.MarketResearch, int64, error) {
	var studies []models.MarketResearch
	var total int64

	if err := filter.apply(r.db.Model(&models.MarketResearch{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := filter.apply(r.db).Order("research_date DESC, research_title").Limit(limit).Offset(offset).Find(&studies).Error
	if err != nil {
		return nil, 0, err
	}

	return studies, total, nil
}

// GetCompleted retrieves completed studies matching filter, newest first
func (r *MarketResearchRepository) GetCompleted(filter MarketResearchFilter) ([]models.MarketResearch, error) {
	filter.Status = string(models.ResearchStatusCompleted)
	var studies []models.MarketResearch
	err := filter.apply(r.db).Order("research_date DESC").Find(&studies).Error
	return studies, err
}

// RecentCompleted retrieves the most recently dated completed studies
func (r *MarketResearchRepository) RecentCompleted(limit int) ([]models.MarketResearch, error) {
	var studies []models.MarketResearch
	err := r.db.Where("research_status = ?", models.ResearchStatusCompleted).
		Order("research_date DESC").
		Limit(limit).
		Find(&studies).Error
	return studies, err
}

// CountByStatus counts studies per status, largest first
func (r *MarketResearchRepository) CountByStatus() ([]GroupCount, error) {
	return groupCounts(r.db, &models.MarketResearch{}, "research_status")
}

// CountByCategory counts studies per product category
func (r *MarketResearchRepository) CountByCategory() ([]GroupCount, error) {
	return groupCounts(r.db, &models.MarketResearch{}, "product_category")
}

// TopCountries summarises the countries with the most studies
func (r *MarketResearchRepository) TopCountries(limit int) ([]ResearchCountryOverview, error) {
	var rows []ResearchCountryOverview
	err := r.db.Model(&models.MarketResearch{}).
		Select("country, COUNT(*) AS study_count, ROUND(AVG(completion_percentage), 1) AS average_completion").
		Group("country").
		Order("study_count DESC, country").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// Update updates a study
func (r *MarketResearchRepository) Update(study *models.MarketResearch) error {
	return r.db.Save(study).Error
}

// Delete deletes a study
func (r *MarketResearchRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MarketResearch{}, "id = ?", id).Error
}
