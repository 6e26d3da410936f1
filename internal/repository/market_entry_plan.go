package repository

import (
	"sysmayal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MarketEntryPlanFilter narrows plan listings; empty fields are ignored
type MarketEntryPlanFilter struct {
	Status        string
	TargetCountry string
	Priority      string
}

func (f MarketEntryPlanFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.TargetCountry != "" {
		db = db.Where("target_country = ?", f.TargetCountry)
	}
	if f.Priority != "" {
		db = db.Where("priority = ?", f.Priority)
	}
	return db
}

// PlanCountryOverview summarises the plans targeting one country
type PlanCountryOverview struct {
	TargetCountry     string          `json:"target_country"`
	PlanCount         int64           `json:"plan_count"`
	AverageCompletion float64         `json:"average_completion"`
	TotalInvestment   decimal.Decimal `json:"total_investment"`
}

// PlanFinancials totals the money of live plans
type PlanFinancials struct {
	TotalInvestment decimal.Decimal `json:"total_investment"`
	TotalOngoing    decimal.Decimal `json:"total_ongoing_costs"`
	Year1Revenue    decimal.Decimal `json:"total_year_1_revenue"`
	Year2Revenue    decimal.Decimal `json:"total_year_2_revenue"`
	Year3Revenue    decimal.Decimal `json:"total_year_3_revenue"`
}

var closedPlanStatuses = []models.PlanStatus{models.PlanStatusCompleted, models.PlanStatusCancelled}

// MarketEntryPlanRepository handles database operations for market entry plans
type MarketEntryPlanRepository struct {
	db *gorm.DB
}

// NewMarketEntryPlanRepository creates a new market entry plan repository
func NewMarketEntryPlanRepository(db *gorm.DB) *MarketEntryPlanRepository {
	return &MarketEntryPlanRepository{db: db}
}

// Create creates a new plan
func (r *MarketEntryPlanRepository) Create(plan *models.MarketEntryPlan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a plan by ID
func (r *MarketEntryPlanRepository) GetByID(id uuid.UUID) (*models.MarketEntryPlan, error) {
	var plan models.MarketEntryPlan
	err := r.db.First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByTitle retrieves a plan by title
func (r *MarketEntryPlanRepository) GetByTitle(title string) (*models.MarketEntryPlan, error) {
	var plan models.MarketEntryPlan
	err := r.db.First(&plan, "plan_title = ?", title).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetAll retrieves plans matching filter with pagination
func (r *MarketEntryPlanRepository) GetAll(filter MarketEntryPlanFilter, limit, offset int) ([]models.MarketEntryPlan, int64, error) {
	var plans []models.MarketEntryPlan
	var total int64

	if err := filter.apply(r.db.Model(&models.MarketEntryPlan{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := filter.apply(r.db).Order("target_launch_date, plan_title").Limit(limit).Offset(offset).Find(&plans).Error
	if err != nil {
		return nil, 0, err
	}

	return plans, total, nil
}

// Find retrieves every plan matching filter ordered by country and launch date
func (r *MarketEntryPlanRepository) Find(filter MarketEntryPlanFilter) ([]models.MarketEntryPlan, error) {
	var plans []models.MarketEntryPlan
	err := filter.apply(r.db).Order("target_country, target_launch_date").Find(&plans).Error
	return plans, err
}

// GetOpen retrieves plans that are neither completed nor cancelled
func (r *MarketEntryPlanRepository) GetOpen() ([]models.MarketEntryPlan, error) {
	var plans []models.MarketEntryPlan
	err := r.db.Where("status NOT IN ?", closedPlanStatuses).Order("target_launch_date").Find(&plans).Error
	return plans, err
}

// CountriesWithOpenPlans lists the countries targeted by at least one open plan
func (r *MarketEntryPlanRepository) CountriesWithOpenPlans() ([]string, error) {
	var countries []string
	err := r.db.Model(&models.MarketEntryPlan{}).
		Where("status NOT IN ?", closedPlanStatuses).
		Distinct().
		Pluck("target_country", &countries).Error
	return countries, err
}

// CountByStatus counts plans per status
func (r *MarketEntryPlanRepository) CountByStatus() ([]GroupCount, error) {
	return groupCounts(r.db, &models.MarketEntryPlan{}, "status")
}

// CountryOverview summarises plans per target country
func (r *MarketEntryPlanRepository) CountryOverview() ([]PlanCountryOverview, error) {
	var rows []struct {
		TargetCountry     string
		PlanCount         int64
		AverageCompletion float64
		TotalInvestment   decimal.NullDecimal
	}
	err := r.db.Model(&models.MarketEntryPlan{}).
		Select(`target_country, COUNT(*) AS plan_count,
			ROUND(AVG(completion_percentage), 1) AS average_completion,
			SUM(initial_investment) AS total_investment`).
		Group("target_country").
		Order("plan_count DESC, target_country").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	overview := make([]PlanCountryOverview, 0, len(rows))
	for _, row := range rows {
		overview = append(overview, PlanCountryOverview{
			TargetCountry:     row.TargetCountry,
			PlanCount:         row.PlanCount,
			AverageCompletion: row.AverageCompletion,
			TotalInvestment:   sumOrZero(row.TotalInvestment),
		})
	}
	return overview, nil
}

// Financials totals investment and revenue of plans that are not cancelled or on hold
func (r *MarketEntryPlanRepository) Financials() (*PlanFinancials, error) {
	var row struct {
		TotalInvestment decimal.NullDecimal
		TotalOngoing    decimal.NullDecimal
		Year1Revenue    decimal.NullDecimal
		Year2Revenue    decimal.NullDecimal
		Year3Revenue    decimal.NullDecimal
	}
	err := r.db.Model(&models.MarketEntryPlan{}).
		Select(`SUM(initial_investment) AS total_investment,
			SUM(ongoing_costs) AS total_ongoing,
			SUM(year_1_revenue) AS year1_revenue,
			SUM(year_2_revenue) AS year2_revenue,
			SUM(year_3_revenue) AS year3_revenue`).
		Where("status NOT IN ?", []models.PlanStatus{models.PlanStatusCancelled, models.PlanStatusOnHold}).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &PlanFinancials{
		TotalInvestment: sumOrZero(row.TotalInvestment),
		TotalOngoing:    sumOrZero(row.TotalOngoing),
		Year1Revenue:    sumOrZero(row.Year1Revenue),
		Year2Revenue:    sumOrZero(row.Year2Revenue),
		Year3Revenue:    sumOrZero(row.Year3Revenue),
	}, nil
}

// Update updates a plan
func (r *MarketEntryPlanRepository) Update(plan *models.MarketEntryPlan) error {
	return r.db.Save(plan).Error
}

// Delete deletes a plan
func (r *MarketEntryPlanRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MarketEntryPlan{}, "id = ?", id).Error
}
