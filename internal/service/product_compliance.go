package service

import (
	"context"
	"fmt"
	"strings"

	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/cache"
	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/logger"
	"sysmayal-backend/internal/notification"
	"sysmayal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	expiryWarningDays   = 30
	reviewWarningDays   = 7
	expiringProductDays = 90
)

// ProductComplianceService handles business logic for product compliance records
type ProductComplianceService struct {
	repo        repository.ProductComplianceRepositoryInterface
	orgRepo     repository.OrganizationRepositoryInterface
	regulations repository.CountryRegulationRepositoryInterface
	comments    repository.CommentRepositoryInterface
	notifier    notification.NotifierInterface
	dashboards  *DashboardCache
	validator   *validator.Validate
}

// NewProductComplianceService creates a new product compliance service
func NewProductComplianceService(
	repo repository.ProductComplianceRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	regulations repository.CountryRegulationRepositoryInterface,
	comments repository.CommentRepositoryInterface,
	notifier notification.NotifierInterface,
	dashboards *DashboardCache,
	validator *validator.Validate,
) *ProductComplianceService {
	return &ProductComplianceService{
		repo:        repo,
		orgRepo:     orgRepo,
		regulations: regulations,
		comments:    comments,
		notifier:    notifier,
		dashboards:  dashboards,
		validator:   validator,
	}
}

// ProductComplianceRequest represents the request to create or update a compliance record
type ProductComplianceRequest struct {
	ProductName     string     `json:"product_name" validate:"required,max=140" example:"Aloe Vera Gel 99%"`
	ProductCode     string     `json:"product_code,omitempty" validate:"max=60" example:"AVG-99-250"`
	ProductCategory string     `json:"product_category,omitempty" validate:"max=100" example:"Skincare"`
	Country         string     `json:"country" validate:"required,max=100" example:"Germany"`
	ManufacturerID  *uuid.UUID `json:"manufacturer_id,omitempty"`

	ComplianceStatus     models.ComplianceStatus `json:"compliance_status,omitempty" validate:"omitempty,oneof=Compliant 'Pending Review' Non-Compliant 'Partially Compliant' Expired 'Not Applicable'"`
	CompliancePercentage int                     `json:"compliance_percentage,omitempty" validate:"gte=0,lte=100"`
	RiskLevel            models.RiskLevel        `json:"risk_level,omitempty" validate:"omitempty,oneof=Low Medium High Critical"`
	ApprovalStatus       string                  `json:"approval_status,omitempty" validate:"max=40"`
	TestingStatus        string                  `json:"testing_status,omitempty" validate:"max=40"`

	ApprovalDate      *models.Date `json:"approval_date,omitempty" swaggertype:"string"`
	ManufacturingDate *models.Date `json:"manufacturing_date,omitempty" swaggertype:"string"`
	ExpiryDate        *models.Date `json:"expiry_date,omitempty" swaggertype:"string" example:"2027-12-31"`
	LastReviewDate    *models.Date `json:"last_review_date,omitempty" swaggertype:"string"`
	NextReviewDate    *models.Date `json:"next_review_date,omitempty" swaggertype:"string"`

	ResponsiblePerson   string `json:"responsible_person,omitempty" validate:"max=140"`
	ContactEmail        string `json:"contact_email,omitempty" validate:"omitempty,email,max=140"`
	RegulatoryAuthority string `json:"regulatory_authority,omitempty" validate:"max=140"`
	ApprovalNumber      string `json:"approval_number,omitempty" validate:"max=100"`

	ComplianceNotes         string `json:"compliance_notes,omitempty"`
	RequiredTests           string `json:"required_tests,omitempty"`
	CertificationsHeld      string `json:"certifications_held,omitempty"`
	OutstandingRequirements string `json:"outstanding_requirements,omitempty"`
	SupportingDocuments     string `json:"supporting_documents,omitempty"`
	RegulatorySubmissions   string `json:"regulatory_submissions,omitempty"`
}

func (req *ProductComplianceRequest) apply(rec *models.ProductCompliance) {
	rec.ProductName = req.ProductName
	rec.ProductCode = req.ProductCode
	rec.ProductCategory = req.ProductCategory
	rec.Country = req.Country
	rec.ManufacturerID = req.ManufacturerID
	rec.ComplianceStatus = req.ComplianceStatus
	rec.CompliancePercentage = req.CompliancePercentage
	rec.RiskLevel = req.RiskLevel
	rec.ApprovalStatus = req.ApprovalStatus
	rec.TestingStatus = req.TestingStatus
	rec.ApprovalDate = req.ApprovalDate.OrNil()
	rec.ManufacturingDate = req.ManufacturingDate.OrNil()
	rec.ExpiryDate = req.ExpiryDate.OrNil()
	rec.LastReviewDate = req.LastReviewDate.OrNil()
	rec.NextReviewDate = req.NextReviewDate.OrNil()
	rec.ResponsiblePerson = req.ResponsiblePerson
	rec.ContactEmail = req.ContactEmail
	rec.RegulatoryAuthority = req.RegulatoryAuthority
	rec.ApprovalNumber = req.ApprovalNumber
	rec.ComplianceNotes = req.ComplianceNotes
	rec.RequiredTests = req.RequiredTests
	rec.CertificationsHeld = req.CertificationsHeld
	rec.OutstandingRequirements = req.OutstandingRequirements
	rec.SupportingDocuments = req.SupportingDocuments
	rec.RegulatorySubmissions = req.RegulatorySubmissions
}

// ProductComplianceResponse represents the response for compliance record operations
type ProductComplianceResponse struct {
	*models.ProductCompliance
	Warnings []string `json:"warnings,omitempty"`
	Alerts   []string `json:"alerts,omitempty"`
}

// ProductComplianceListResponse represents a paginated list of compliance records
type ProductComplianceListResponse = ListResponse[models.ProductCompliance]

// ProductComplianceFilter holds the list and report query parameters
type ProductComplianceFilter struct {
	Country          string `form:"country"`
	ComplianceStatus string `form:"status"`
	RiskLevel        string `form:"risk_level"`
}

// ComplianceStatusRequest represents a status change of one record
type ComplianceStatusRequest struct {
	Status models.ComplianceStatus `json:"status" validate:"required,oneof=Compliant 'Pending Review' Non-Compliant 'Partially Compliant' Expired 'Not Applicable'"`
	Notes  string                  `json:"notes,omitempty"`
}

// BulkComplianceStatusRequest represents a status change of several records
type BulkComplianceStatusRequest struct {
	IDs    []uuid.UUID             `json:"ids" validate:"required,min=1"`
	Status models.ComplianceStatus `json:"status" validate:"required,oneof=Compliant 'Pending Review' Non-Compliant 'Partially Compliant' Expired 'Not Applicable'"`
	Notes  string                  `json:"notes,omitempty"`
}

// ComplianceSummary is the at-a-glance view of one compliance record
type ComplianceSummary struct {
	ProductName          string                  `json:"product_name"`
	Country              string                  `json:"country"`
	ComplianceStatus     models.ComplianceStatus `json:"compliance_status"`
	CompliancePercentage int                     `json:"compliance_percentage"`
	RiskLevel            models.RiskLevel        `json:"risk_level"`
	ApprovalStatus       string                  `json:"approval_status"`
	TestingStatus        string                  `json:"testing_status"`
	DaysToReview         *int                    `json:"days_to_review,omitempty"`
	DaysToExpiry         *int                    `json:"days_to_expiry,omitempty"`
	RegulatoryAuthority  string                  `json:"regulatory_authority,omitempty"`
	KeyRequirements      string                  `json:"key_requirements,omitempty"`
}

// ExpiringProduct is a product whose approval lapses soon
type ExpiringProduct struct {
	ID           uuid.UUID    `json:"id"`
	ProductName  string       `json:"product_name"`
	Country      string       `json:"country"`
	ExpiryDate   *models.Date `json:"expiry_date"`
	DaysToExpiry int          `json:"days_to_expiry"`
}

// ComplianceDashboard aggregates compliance records for the dashboard
type ComplianceDashboard struct {
	StatusDistribution []repository.GroupCount          `json:"status_distribution"`
	RiskDistribution   []repository.GroupCount          `json:"risk_distribution"`
	CountryCompliance  []repository.CountryStatusCount  `json:"country_compliance"`
	ExpiringProducts   []ExpiringProduct                `json:"expiring_products"`
}

// Create creates a new compliance record
func (s *ProductComplianceService) Create(ctx context.Context, req *ProductComplianceRequest) (*ProductComplianceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	rec := &models.ProductCompliance{}
	req.apply(rec)
	return s.save(ctx, rec, true)
}

// GetByID retrieves a compliance record by ID
func (s *ProductComplianceService) GetByID(ctx context.Context, id uuid.UUID) (*ProductComplianceResponse, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrProductComplianceNotFound, "product compliance record")
	}
	return &ProductComplianceResponse{ProductCompliance: rec}, nil
}

// GetAll retrieves compliance records with filters and pagination
func (s *ProductComplianceService) GetAll(ctx context.Context, filter ProductComplianceFilter, page, pageSize int) (*ProductComplianceListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	records, total, err := s.repo.GetAll(repository.ProductComplianceFilter(filter), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get product compliance records: %w", err)
	}
	return &ProductComplianceListResponse{Items: records, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update replaces the editable fields of a compliance record
func (s *ProductComplianceService) Update(ctx context.Context, id uuid.UUID, req *ProductComplianceRequest) (*ProductComplianceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrProductComplianceNotFound, "product compliance record")
	}
	req.apply(rec)
	return s.save(ctx, rec, false)
}

// Delete deletes a compliance record
func (s *ProductComplianceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookupError(err, apperrors.ErrProductComplianceNotFound, "product compliance record")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete product compliance record: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixCompliance, cache.PrefixReports)
	return nil
}

// GetSummary returns the status, the days left until review and expiry, and the country's requirements
func (s *ProductComplianceService) GetSummary(ctx context.Context, id uuid.UUID) (*ComplianceSummary, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrProductComplianceNotFound, "product compliance record")
	}

	today := models.Today()
	summary := &ComplianceSummary{
		ProductName:          rec.ProductName,
		Country:              rec.Country,
		ComplianceStatus:     rec.ComplianceStatus,
		CompliancePercentage: rec.CompliancePercentage,
		RiskLevel:            rec.RiskLevel,
		ApprovalStatus:       rec.ApprovalStatus,
		TestingStatus:        rec.TestingStatus,
		DaysToReview:         daysUntil(rec.NextReviewDate, today),
		DaysToExpiry:         daysUntil(rec.ExpiryDate, today),
	}

	brief, err := regulationBrief(s.regulations, rec.Country)
	if err != nil {
		return nil, err
	}
	if brief != nil {
		summary.RegulatoryAuthority = brief.RegulatoryAuthority
		summary.KeyRequirements = brief.KeyRequirements
	}
	return summary, nil
}

// GetComments returns the remarks recorded against a compliance record, oldest first
func (s *ProductComplianceService) GetComments(ctx context.Context, id uuid.UUID) ([]models.Comment, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, lookupError(err, apperrors.ErrProductComplianceNotFound, "product compliance record")
	}
	comments, err := s.comments.GetByReference(models.ReferenceProductCompliance, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	return comments, nil
}

// UpdateStatus changes the compliance status and appends the change to the audit trail
func (s *ProductComplianceService) UpdateStatus(ctx context.Context, id uuid.UUID, req *ComplianceStatusRequest) (*MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.changeStatus(ctx, id, req.Status, req.Notes); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Compliance status updated successfully"}, nil
}

// BulkUpdateStatus changes the status of several records; records that fail are logged and skipped
func (s *ProductComplianceService) BulkUpdateStatus(ctx context.Context, req *BulkComplianceStatusRequest) (*MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updated := 0
	for _, id := range req.IDs {
		if err := s.changeStatus(ctx, id, req.Status, req.Notes); err != nil {
			logger.WithContext(ctx).WithField("product_compliance_id", id).Errorf("Error updating compliance status: %v", err)
			continue
		}
		updated++
	}
	return &MessageResponse{Message: fmt.Sprintf("%d products updated successfully", updated)}, nil
}

// GetDashboard returns the status, risk and country distributions plus products expiring within 90 days
func (s *ProductComplianceService) GetDashboard(ctx context.Context) (*ComplianceDashboard, error) {
	return loadCached(ctx, s.dashboards, cache.PrefixCompliance+"dashboard", func() (*ComplianceDashboard, error) {
		byStatus, err := s.repo.CountByStatus()
		if err != nil {
			return nil, fmt.Errorf("failed to count compliance status: %w", err)
		}
		byRisk, err := s.repo.CountByRisk()
		if err != nil {
			return nil, fmt.Errorf("failed to count risk levels: %w", err)
		}
		byCountry, err := s.repo.CountByCountryAndStatus()
		if err != nil {
			return nil, fmt.Errorf("failed to count compliance by country: %w", err)
		}

		today := models.Today()
		expiring, err := s.repo.GetExpiringWithin(today.Time, expiringProductDays)
		if err != nil {
			return nil, fmt.Errorf("failed to get expiring products: %w", err)
		}

		products := make([]ExpiringProduct, 0, len(expiring))
		for _, rec := range expiring {
			products = append(products, ExpiringProduct{
				ID:           rec.ID,
				ProductName:  rec.ProductName,
				Country:      rec.Country,
				ExpiryDate:   rec.ExpiryDate,
				DaysToExpiry: today.DaysUntil(*rec.ExpiryDate),
			})
		}

		return &ComplianceDashboard{
			StatusDistribution: byStatus,
			RiskDistribution:   byRisk,
			CountryCompliance:  byCountry,
			ExpiringProducts:   products,
		}, nil
	})
}

// GetByCountry lists a country's records, most compliant first
func (s *ProductComplianceService) GetByCountry(ctx context.Context, country string) ([]models.ProductCompliance, error) {
	records, err := s.repo.GetByCountry(country)
	if err != nil {
		return nil, fmt.Errorf("failed to get compliance by country: %w", err)
	}
	return records, nil
}

// GetReport lists every record matching filter ordered by country and product name
func (s *ProductComplianceService) GetReport(ctx context.Context, filter ProductComplianceFilter) ([]models.ProductCompliance, error) {
	records, err := s.repo.Find(repository.ProductComplianceFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to generate compliance report: %w", err)
	}
	return records, nil
}

// RefreshStatuses re-applies the expiry and review checks to every dated record and
// returns the number of records that changed
func (s *ProductComplianceService) RefreshStatuses(ctx context.Context) (int, error) {
	records, err := s.repo.GetWithUpcomingDates()
	if err != nil {
		return 0, fmt.Errorf("failed to get compliance records: %w", err)
	}

	today := models.Today()
	user := auth.UserFromContext(ctx)
	updated := 0
	for i := range records {
		rec := &records[i]
		before := rec.ComplianceStatus
		remarks := checkComplianceDates(rec, today)

		if rec.ComplianceStatus != before {
			rec.Stamp(user)
			if err := s.repo.Update(rec); err != nil {
				logger.WithContext(ctx).WithField("product_compliance_id", rec.ID).Errorf("Failed to refresh compliance status: %v", err)
				continue
			}
			updated++
		}
		s.addComments(ctx, rec.ID, remarks)
	}

	if updated > 0 {
		s.dashboards.invalidate(ctx, cache.PrefixCompliance, cache.PrefixReports)
	}
	return updated, nil
}

func (s *ProductComplianceService) changeStatus(ctx context.Context, id uuid.UUID, status models.ComplianceStatus, notes string) error {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return lookupError(err, apperrors.ErrProductComplianceNotFound, "product compliance record")
	}

	entry := fmt.Sprintf("%s: Status changed from %s to %s by %s", models.Today(), rec.ComplianceStatus, status, auth.UserFromContext(ctx))
	if notes = strings.TrimSpace(notes); notes != "" {
		entry += " - Notes: " + notes
	}
	rec.ComplianceStatus = status
	rec.AuditTrail = appendLine(rec.AuditTrail, entry)

	_, err = s.save(ctx, rec, false)
	return err
}

// save runs validation, defaults, scoring and the date checks, persists the record,
// then records remarks and sends alerts
func (s *ProductComplianceService) save(ctx context.Context, rec *models.ProductCompliance, create bool) (*ProductComplianceResponse, error) {
	if err := validateComplianceDates(rec); err != nil {
		return nil, err
	}
	if rec.ManufacturerID != nil {
		if _, err := s.orgRepo.GetByID(*rec.ManufacturerID); err != nil {
			return nil, lookupError(err, apperrors.ErrOrganizationNotFound, "manufacturer")
		}
	}

	warnings := complianceWarnings(rec)
	today := models.Today()
	applyComplianceDefaults(rec, today)
	if rec.CompliancePercentage == 0 {
		rec.CompliancePercentage = complianceScore(rec)
	}
	if rec.Route == "" {
		rec.Route = complianceRoute(rec)
	}
	remarks := checkComplianceDates(rec, today)

	rec.Stamp(auth.UserFromContext(ctx))
	if create {
		if err := s.repo.Create(rec); err != nil {
			return nil, fmt.Errorf("failed to create product compliance record: %w", err)
		}
	} else {
		if err := s.repo.Update(rec); err != nil {
			return nil, fmt.Errorf("failed to update product compliance record: %w", err)
		}
	}

	s.addComments(ctx, rec.ID, remarks)
	alerts := complianceAlerts(rec, today)
	if len(alerts) > 0 && rec.ResponsiblePerson != "" && rec.ContactEmail != "" {
		notify(ctx, s.notifier, complianceAlertMail(rec, alerts))
	}
	s.dashboards.invalidate(ctx, cache.PrefixCompliance, cache.PrefixReports)

	return &ProductComplianceResponse{ProductCompliance: rec, Warnings: warnings, Alerts: alerts}, nil
}

func (s *ProductComplianceService) addComments(ctx context.Context, id uuid.UUID, remarks []string) {
	user := auth.UserFromContext(ctx)
	for _, remark := range remarks {
		comment := &models.Comment{
			ReferenceType: models.ReferenceProductCompliance,
			ReferenceID:   id,
			Content:       remark,
			Author:        user,
		}
		comment.Stamp(user)
		if err := s.comments.Create(comment); err != nil {
			logger.WithContext(ctx).WithField("product_compliance_id", id).Warnf("Failed to add comment: %v", err)
		}
	}
}

func validateComplianceDates(rec *models.ProductCompliance) error {
	if rec.ManufacturingDate != nil && rec.ExpiryDate != nil && !rec.ManufacturingDate.Before(*rec.ExpiryDate) {
		return apperrors.ErrManufacturingAfterExpiry
	}
	if rec.LastReviewDate != nil && rec.NextReviewDate != nil && rec.LastReviewDate.After(*rec.NextReviewDate) {
		return apperrors.ErrReviewDatesOutOfOrder
	}
	return nil
}

func complianceWarnings(rec *models.ProductCompliance) []string {
	var warnings []string
	if rec.ComplianceStatus == models.ComplianceStatusCompliant && rec.CompliancePercentage < 100 {
		warnings = append(warnings, "Warning: Product marked as compliant but compliance percentage is less than 100%")
	}
	if rec.ComplianceStatus == models.ComplianceStatusNonCompliant && strings.TrimSpace(rec.OutstandingRequirements) == "" {
		warnings = append(warnings, "Please specify outstanding requirements for non-compliant products")
	}
	return warnings
}

func applyComplianceDefaults(rec *models.ProductCompliance, today models.Date) {
	if rec.ComplianceStatus == "" {
		rec.ComplianceStatus = models.ComplianceStatusPendingReview
	}
	if rec.RiskLevel == "" {
		rec.RiskLevel = models.RiskLevelMedium
	}
	if rec.TestingStatus == "" {
		rec.TestingStatus = "Not Started"
	}
	if rec.ApprovalStatus == "" {
		rec.ApprovalStatus = "Not Submitted"
	}
	if rec.NextReviewDate == nil {
		rec.NextReviewDate = models.DatePtr(today.AddMonths(12))
	}
}

// complianceScore estimates completeness from product data, approval, testing and documentation
func complianceScore(rec *models.ProductCompliance) int {
	score := 0
	if rec.ProductName != "" && rec.Country != "" && rec.ProductCategory != "" {
		score += 20
	}

	switch rec.ApprovalStatus {
	case "Approved":
		score += 30
	case "Pending Approval", "Conditional Approval":
		score += 15
	}

	switch rec.TestingStatus {
	case "Completed":
		score += 25
	case "In Progress":
		score += 10
	}

	hasDocs := strings.TrimSpace(rec.SupportingDocuments) != ""
	hasSubmissions := strings.TrimSpace(rec.RegulatorySubmissions) != ""
	switch {
	case hasDocs && hasSubmissions:
		score += 25
	case hasDocs || hasSubmissions:
		score += 12
	}

	if score > 100 {
		return 100
	}
	return score
}

// checkComplianceDates expires lapsed records and returns remarks for dates coming up
func checkComplianceDates(rec *models.ProductCompliance, today models.Date) []string {
	var remarks []string
	if days := daysUntil(rec.ExpiryDate, today); days != nil {
		switch {
		case *days <= 0:
			rec.ComplianceStatus = models.ComplianceStatusExpired
		case *days <= expiryWarningDays:
			remarks = append(remarks, fmt.Sprintf("Product expires in %d days", *days))
		}
	}
	if days := daysUntil(rec.NextReviewDate, today); days != nil && *days > 0 && *days <= reviewWarningDays {
		remarks = append(remarks, fmt.Sprintf("Compliance review due in %d days", *days))
	}
	return remarks
}

func complianceAlerts(rec *models.ProductCompliance, today models.Date) []string {
	var alerts []string
	if rec.ComplianceStatus == models.ComplianceStatusNonCompliant {
		alerts = append(alerts, "Product is non-compliant and requires immediate attention")
	}
	if rec.RiskLevel == models.RiskLevelCritical {
		alerts = append(alerts, "Product has critical risk level")
	}
	if days := daysUntil(rec.ExpiryDate, today); days != nil && *days <= expiryWarningDays {
		alerts = append(alerts, "Product expiry approaching")
	}
	return alerts
}

func complianceRoute(rec *models.ProductCompliance) string {
	switch {
	case rec.ProductName != "" && rec.Country != "":
		return scrub(rec.ProductName + "-compliance-" + rec.Country)
	case rec.ProductName != "":
		return scrub("product-compliance-" + rec.ProductName)
	}
	return ""
}

func complianceAlertMail(rec *models.ProductCompliance, alerts []string) notification.Notification {
	var body strings.Builder
	fmt.Fprintf(&body, "Compliance alerts for %s in %s:\n\n", rec.ProductName, rec.Country)
	for _, alert := range alerts {
		fmt.Fprintf(&body, "- %s\n", alert)
	}
	fmt.Fprintf(&body, "\nResponsible person: %s\n", rec.ResponsiblePerson)

	return notification.Notification{
		Recipients:    []string{rec.ContactEmail},
		Subject:       "Compliance Alert: " + rec.ProductName,
		Body:          body.String(),
		ReferenceType: models.ReferenceProductCompliance,
		ReferenceID:   &rec.ID,
	}
}
