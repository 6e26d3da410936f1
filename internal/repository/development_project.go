package repository

import (
	"sysmayal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DevelopmentProjectFilter narrows project listings; empty fields are ignored
type DevelopmentProjectFilter struct {
	Status          string
	Priority        string
	ProjectType     string
	ProductCategory string
}

func (f DevelopmentProjectFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		db = db.Where("priority = ?", f.Priority)
	}
	if f.ProjectType != "" {
		db = db.Where("project_type = ?", f.ProjectType)
	}
	if f.ProductCategory != "" {
		db = db.Where("product_category = ?", f.ProductCategory)
	}
	return db
}

// DevelopmentProjectRepository handles database operations for R&D projects
type DevelopmentProjectRepository struct {
	db *gorm.DB
}

// NewDevelopmentProjectRepository creates a new R&D project repository
func NewDevelopmentProjectRepository(db *gorm.DB) *DevelopmentProjectRepository {
	return &DevelopmentProjectRepository{db: db}
}

// Create creates a new project
func (r *DevelopmentProjectRepository) Create(project *models.DevelopmentProject) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *DevelopmentProjectRepository) GetByID(id uuid.UUID) (*models.DevelopmentProject, error) {
	var project models.DevelopmentProject
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByName retrieves a project by name
func (r *DevelopmentProjectRepository) GetByName(name string) (*models.DevelopmentProject, error) {
	var project models.DevelopmentProject
	err := r.db.First(&project, "project_name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves projects matching filter with pagination
func (r *DevelopmentProjectRepository) GetAll(filter DevelopmentProjectFilter, limit, offset int) ([]models.DevelopmentProject, int64, error) {
	var projects []models.DevelopmentProject
	var total int64

	if err := filter.apply(r.db.Model(&models.DevelopmentProject{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := filter.apply(r.db).Order("expected_completion, project_name").Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// FindActiveForMarket retrieves planning or in-progress projects of a product category
// whose target countries mention country
func (r *DevelopmentProjectRepository) FindActiveForMarket(country, productCategory string) ([]models.DevelopmentProject, error) {
	var projects []models.DevelopmentProject
	err := r.db.
		Where("target_countries ILIKE ?", containsPattern(country)).
		Where("product_category = ?", productCategory).
		Where("status IN ?", []models.ProjectStatus{models.ProjectStatusPlanning, models.ProjectStatusInProgress}).
		Find(&projects).Error
	return projects, err
}

// CountByStatus counts projects per status
func (r *DevelopmentProjectRepository) CountByStatus() ([]GroupCount, error) {
	return groupCounts(r.db, &models.DevelopmentProject{}, "status")
}

// CountByPriority counts projects per priority
func (r *DevelopmentProjectRepository) CountByPriority() ([]GroupCount, error) {
	return groupCounts(r.db, &models.DevelopmentProject{}, "priority")
}

// CountByCompletionStage buckets projects by completion percentage
func (r *DevelopmentProjectRepository) CountByCompletionStage() ([]GroupCount, error) {
	var rows []GroupCount
	err := r.db.Model(&models.DevelopmentProject{}).
		Select(`CASE
				WHEN completion_percentage < 25 THEN 'Starting'
				WHEN completion_percentage < 50 THEN 'In Progress'
				WHEN completion_percentage < 75 THEN 'Advanced'
				WHEN completion_percentage < 100 THEN 'Nearly Complete'
				ELSE 'Completed'
			END AS key, COUNT(*) AS count`).
		Group("key").
		Order("MIN(completion_percentage)").
		Scan(&rows).Error
	return rows, err
}

// Update updates a project
func (r *DevelopmentProjectRepository) Update(project *models.DevelopmentProject) error {
	return r.db.Save(project).Error
}

// Delete deletes a project
func (r *DevelopmentProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DevelopmentProject{}, "id = ?", id).Error
}
