package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// importDataSource marks regulation records created or refreshed by ImportFromJSON
const importDataSource = "Import"

// CountryRegulationService handles business logic for country regulation records
type CountryRegulationService struct {
	repo       repository.CountryRegulationRepositoryInterface
	orgRepo    repository.OrganizationRepositoryInterface
	compliance repository.ProductComplianceRepositoryInterface
	dashboards *DashboardCache
	validator  *validator.Validate
}

// NewCountryRegulationService creates a new country regulation service
func NewCountryRegulationService(
	repo repository.CountryRegulationRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	compliance repository.ProductComplianceRepositoryInterface,
	dashboards *DashboardCache,
	validator *validator.Validate,
) *CountryRegulationService {
	return &CountryRegulationService{
		repo:       repo,
		orgRepo:    orgRepo,
		compliance: compliance,
		dashboards: dashboards,
		validator:  validator,
	}
}

// CountryRegulationRequest represents the request to create or update a regulation record
type CountryRegulationRequest struct {
	CountryName         string                        `json:"country_name" validate:"required,max=100" example:"Germany"`
	Region              string                        `json:"region,omitempty" validate:"max=100" example:"Europe"`
	RegulatoryAuthority string                        `json:"regulatory_authority,omitempty" validate:"max=200" example:"BVL"`
	AuthorityWebsite    string                        `json:"authority_website,omitempty" validate:"omitempty,url,max=255"`
	KeyRequirements     string                        `json:"key_requirements,omitempty"`
	AloeClassification  string                        `json:"aloe_classification,omitempty" validate:"max=140"`
	TypicalTimeline     string                        `json:"typical_timeline,omitempty" validate:"max=100"`
	LastUpdated         *models.Date                  `json:"last_updated,omitempty" swaggertype:"string"`
	VerificationStatus  models.RegulationVerification `json:"verification_status,omitempty" validate:"omitempty,oneof='Pending Verification' Verified Expired"`
	NextReviewDate      *models.Date                  `json:"next_review_date,omitempty" swaggertype:"string"`
	DataSource          string                        `json:"data_source,omitempty" validate:"max=40"`
}

func (req *CountryRegulationRequest) apply(reg *models.CountryRegulation) {
	reg.CountryName = req.CountryName
	reg.Region = req.Region
	reg.RegulatoryAuthority = req.RegulatoryAuthority
	reg.AuthorityWebsite = req.AuthorityWebsite
	reg.KeyRequirements = req.KeyRequirements
	reg.AloeClassification = req.AloeClassification
	reg.TypicalTimeline = req.TypicalTimeline
	reg.LastUpdated = req.LastUpdated.OrNil()
	reg.VerificationStatus = req.VerificationStatus
	reg.NextReviewDate = req.NextReviewDate.OrNil()
	reg.DataSource = req.DataSource
}

// CountryRegulationListResponse represents a paginated list of regulation records
type CountryRegulationListResponse = ListResponse[models.CountryRegulation]

// RegulationComplianceSummary relates a regulation record to the business done in its country
type RegulationComplianceSummary struct {
	Country             string                        `json:"country"`
	Organizations       int64                         `json:"organizations"`
	TotalProducts       int64                         `json:"total_products"`
	CompliantProducts   int64                         `json:"compliant_products"`
	ComplianceRate      float64                       `json:"compliance_rate"`
	RegulatoryAuthority string                        `json:"regulatory_authority"`
	LastUpdated         *models.Date                  `json:"last_updated" swaggertype:"string"`
	VerificationStatus  models.RegulationVerification `json:"verification_status"`
}

// RegulationImport is the document accepted by ImportFromJSON, keyed by country code
type RegulationImport struct {
	Countries map[string]RegulationImportCountry `json:"countries" validate:"required"`
}

// RegulationImportCountry is one country of a regulation import
type RegulationImportCountry struct {
	CountryName            string                              `json:"country_name,omitempty"`
	RegulatoryAuthority    string                              `json:"regulatory_authority,omitempty"`
	Website                string                              `json:"website,omitempty"`
	ProductClassifications map[string]RegulationClassification `json:"product_classifications,omitempty"`
}

// RegulationClassification is how a country classifies one product type
type RegulationClassification struct {
	Category     string   `json:"category,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
}

// ImportResult counts the records an import created and updated
type ImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Total   int `json:"total"`
}

// Create creates a new regulation record; each country may have only one
func (s *CountryRegulationService) Create(ctx context.Context, req *CountryRegulationRequest) (*models.CountryRegulation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.ensureUnique(req.CountryName, uuid.Nil); err != nil {
		return nil, err
	}

	reg := &models.CountryRegulation{}
	req.apply(reg)
	prepareRegulation(reg, models.Today())

	reg.Stamp(auth.UserFromContext(ctx))
	if err := s.repo.Create(reg); err != nil {
		return nil, fmt.Errorf("failed to create country regulation: %w", err)
	}
	s.dashboards.invalidate(ctx, planOpportunitiesKey)
	return reg, nil
}

// GetByID retrieves a regulation record by ID
func (s *CountryRegulationService) GetByID(ctx context.Context, id uuid.UUID) (*models.CountryRegulation, error) {
	reg, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrRegulationNotFound, "country regulation")
	}
	return reg, nil
}

// GetAll retrieves regulation records of an optional region with pagination
func (s *CountryRegulationService) GetAll(ctx context.Context, region string, page, pageSize int) (*CountryRegulationListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	regs, total, err := s.repo.GetAll(region, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get country regulations: %w", err)
	}
	return &CountryRegulationListResponse{Items: regs, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update replaces the editable fields of a regulation record
func (s *CountryRegulationService) Update(ctx context.Context, id uuid.UUID, req *CountryRegulationRequest) (*models.CountryRegulation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	reg, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrRegulationNotFound, "country regulation")
	}
	if req.CountryName != reg.CountryName {
		if err := s.ensureUnique(req.CountryName, reg.ID); err != nil {
			return nil, err
		}
	}

	route := reg.Route
	req.apply(reg)
	reg.Route = route
	prepareRegulation(reg, models.Today())

	reg.Stamp(auth.UserFromContext(ctx))
	if err := s.repo.Update(reg); err != nil {
		return nil, fmt.Errorf("failed to update country regulation: %w", err)
	}
	s.dashboards.invalidate(ctx, planOpportunitiesKey)
	return reg, nil
}

// Delete deletes a regulation record
func (s *CountryRegulationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookupError(err, apperrors.ErrRegulationNotFound, "country regulation")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete country regulation: %w", err)
	}
	s.dashboards.invalidate(ctx, planOpportunitiesKey)
	return nil
}

// GetComplianceSummary counts the organizations and compliant products of the record's country
func (s *CountryRegulationService) GetComplianceSummary(ctx context.Context, id uuid.UUID) (*RegulationComplianceSummary, error) {
	reg, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrRegulationNotFound, "country regulation")
	}

	orgs, err := s.orgRepo.CountByCountry(reg.CountryName)
	if err != nil {
		return nil, fmt.Errorf("failed to count organizations: %w", err)
	}
	total, compliant, err := s.compliance.CountForCountry(reg.CountryName)
	if err != nil {
		return nil, fmt.Errorf("failed to count compliance records: %w", err)
	}

	return &RegulationComplianceSummary{
		Country:             reg.CountryName,
		Organizations:       orgs,
		TotalProducts:       total,
		CompliantProducts:   compliant,
		ComplianceRate:      percentage(compliant, total),
		RegulatoryAuthority: reg.RegulatoryAuthority,
		LastUpdated:         reg.LastUpdated,
		VerificationStatus:  reg.VerificationStatus,
	}, nil
}

// GetByRegion lists the regulation records of a region ordered by country
func (s *CountryRegulationService) GetByRegion(ctx context.Context, region string) ([]models.CountryRegulation, error) {
	regs, err := s.repo.GetByRegion(region)
	if err != nil {
		return nil, fmt.Errorf("failed to get regulations by region: %w", err)
	}
	return regs, nil
}

// ImportFromJSON creates or refreshes one regulation record per country of doc.
// Countries and product types are processed in key order.
func (s *CountryRegulationService) ImportFromJSON(ctx context.Context, doc *RegulationImport) (*ImportResult, error) {
	if err := s.validator.Struct(doc); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user := auth.UserFromContext(ctx)
	today := models.Today()
	result := &ImportResult{}
	defer s.dashboards.invalidate(ctx, planOpportunitiesKey)

	for _, code := range sortedKeys(doc.Countries) {
		data := doc.Countries[code]
		name := strings.TrimSpace(data.CountryName)
		if name == "" {
			name = countryNameFromCode(code)
		}

		reg, err := s.repo.GetByCountry(name)
		created := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !created {
			return nil, fmt.Errorf("failed to look up %s: %w", name, err)
		}
		if created {
			reg = &models.CountryRegulation{CountryName: name}
		}

		reg.RegulatoryAuthority = data.RegulatoryAuthority
		reg.AuthorityWebsite = data.Website
		reg.LastUpdated = models.DatePtr(today)
		reg.DataSource = importDataSource
		reg.VerificationStatus = models.RegulationPendingVerification

		var categories, requirements []string
		for _, productType := range sortedKeys(data.ProductClassifications) {
			classification := data.ProductClassifications[productType]
			if classification.Category != "" {
				categories = append(categories, classification.Category)
			}
			requirements = append(requirements, classification.Requirements...)
		}
		if len(categories) > 0 {
			reg.AloeClassification = categories[0]
		}
		if len(requirements) > 0 {
			reg.KeyRequirements = strings.Join(requirements, lineSeparator)
		}

		prepareRegulation(reg, today)
		reg.Stamp(user)
		if created {
			if err := s.repo.Create(reg); err != nil {
				return nil, fmt.Errorf("failed to create regulation for %s: %w", name, err)
			}
			result.Created++
		} else {
			if err := s.repo.Update(reg); err != nil {
				return nil, fmt.Errorf("failed to update regulation for %s: %w", name, err)
			}
			result.Updated++
		}
	}

	result.Total = result.Created + result.Updated
	return result, nil
}

func (s *CountryRegulationService) ensureUnique(country string, excludeID uuid.UUID) error {
	existing, err := s.repo.GetByCountry(country)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check existing regulation: %w", err)
	}
	if existing.ID != excludeID {
		return apperrors.NewRegulationExistsError(country)
	}
	return nil
}

// prepareRegulation fills defaults and moves the next review date with the verification status
func prepareRegulation(reg *models.CountryRegulation, today models.Date) {
	if reg.LastUpdated == nil {
		reg.LastUpdated = models.DatePtr(today)
	}
	if reg.VerificationStatus == "" {
		reg.VerificationStatus = models.RegulationPendingVerification
	}
	if reg.NextReviewDate == nil {
		reg.NextReviewDate = models.DatePtr(today.AddMonths(12))
	}

	switch reg.VerificationStatus {
	case models.RegulationVerified:
		if reg.NextReviewDate.Before(today) {
			reg.NextReviewDate = models.DatePtr(today.AddMonths(12))
		}
	case models.RegulationExpired:
		reg.NextReviewDate = models.DatePtr(today)
	}

	if reg.Route == "" && reg.CountryName != "" {
		reg.Route = scrub("regulations-" + reg.CountryName)
	}
}

// countryNameFromCode turns "south_africa" into "South Africa"
func countryNameFromCode(code string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(code, "_", " "))
}

// percentage returns part of total in percent rounded to one decimal
func percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
