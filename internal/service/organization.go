package service

import (
	"context"
	"errors"
	"fmt"

	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/cache"
	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/logger"
	"sysmayal-backend/internal/notification"
	"sysmayal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	defaultTerritory     = "All Territories"
	supplierAccountGroup = "Raw Material"
	maxHierarchyDepth    = 32
)

// OrganizationService handles business logic for distribution organizations
type OrganizationService struct {
	repo        repository.OrganizationRepositoryInterface
	accounts    repository.PartnerAccountRepositoryInterface
	regulations repository.CountryRegulationRepositoryInterface
	notifier    notification.NotifierInterface
	dashboards  *DashboardCache
	validator   *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	repo repository.OrganizationRepositoryInterface,
	accounts repository.PartnerAccountRepositoryInterface,
	regulations repository.CountryRegulationRepositoryInterface,
	notifier notification.NotifierInterface,
	dashboards *DashboardCache,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		repo:        repo,
		accounts:    accounts,
		regulations: regulations,
		notifier:    notifier,
		dashboards:  dashboards,
		validator:   validator,
	}
}

// OrganizationRequest represents the request to create or update an organization
type OrganizationRequest struct {
	OrganizationName string                  `json:"organization_name" validate:"required,max=140" example:"Global Aloe Distributors"`
	OrganizationType models.OrganizationType `json:"organization_type" validate:"omitempty,oneof=Distributor Retailer Wholesaler Supplier Manufacturer" example:"Distributor"`
	Country          string                  `json:"country" validate:"required,max=100" example:"United States"`
	Territory        string                  `json:"territory,omitempty" validate:"max=140"`
	Status           models.OrganizationStatus `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive Pending Suspended"`
	RegulatoryStatus models.RegulatoryStatus   `json:"regulatory_status,omitempty" validate:"omitempty,oneof=Compliant 'Pending Review' Non-Compliant Expired"`

	ContactPerson string `json:"contact_person,omitempty" validate:"max=140"`
	EmailID       string `json:"email_id,omitempty" validate:"omitempty,email,max=140"`
	Phone         string `json:"phone,omitempty" validate:"max=40"`
	MobileNo      string `json:"mobile_no,omitempty" validate:"max=40"`
	Website       string `json:"website,omitempty" validate:"max=200"`

	AddressLine1 string `json:"address_line_1,omitempty" validate:"max=200"`
	AddressLine2 string `json:"address_line_2,omitempty" validate:"max=200"`
	City         string `json:"city,omitempty" validate:"max=100"`
	State        string `json:"state,omitempty" validate:"max=100"`
	PostalCode   string `json:"postal_code,omitempty" validate:"max=20"`

	BusinessFocus   string          `json:"business_focus,omitempty"`
	AnnualRevenue   decimal.Decimal `json:"annual_revenue,omitempty" swaggertype:"string"`
	EmployeeCount   int             `json:"employee_count,omitempty" validate:"gte=0"`
	EstablishedYear int             `json:"established_year,omitempty" validate:"gte=0"`
	Currency        string          `json:"currency,omitempty" validate:"max=10"`

	ParentOrganizationID *uuid.UUID  `json:"parent_organization_id,omitempty"`
	AgreementExpiry      *models.Date `json:"agreement_expiry,omitempty" swaggertype:"string" example:"2027-06-30"`
	LastAuditDate        *models.Date `json:"last_audit_date,omitempty" swaggertype:"string"`
	NextAuditDue         *models.Date `json:"next_audit_due,omitempty" swaggertype:"string"`
}

func (req *OrganizationRequest) apply(org *models.Organization) {
	org.OrganizationName = req.OrganizationName
	org.OrganizationType = req.OrganizationType
	org.Country = req.Country
	org.Territory = req.Territory
	org.Status = req.Status
	org.RegulatoryStatus = req.RegulatoryStatus
	org.ContactPerson = req.ContactPerson
	org.EmailID = req.EmailID
	org.Phone = req.Phone
	org.MobileNo = req.MobileNo
	org.Website = req.Website
	org.AddressLine1 = req.AddressLine1
	org.AddressLine2 = req.AddressLine2
	org.City = req.City
	org.State = req.State
	org.PostalCode = req.PostalCode
	org.BusinessFocus = req.BusinessFocus
	org.AnnualRevenue = req.AnnualRevenue
	org.EmployeeCount = req.EmployeeCount
	org.EstablishedYear = req.EstablishedYear
	org.Currency = req.Currency
	org.ParentOrganizationID = req.ParentOrganizationID
	org.AgreementExpiry = req.AgreementExpiry.OrNil()
	org.LastAuditDate = req.LastAuditDate.OrNil()
	org.NextAuditDue = req.NextAuditDue.OrNil()
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	*models.Organization
	Warnings []string `json:"warnings,omitempty"`
}

// OrganizationListResponse represents a paginated list of organizations
type OrganizationListResponse = ListResponse[models.Organization]

// OrganizationListFilter holds the list query parameters
type OrganizationListFilter struct {
	Country          string `form:"country"`
	Status           string `form:"status"`
	OrganizationType string `form:"organization_type"`
}

// RegulationBrief is the regulation summary shown on an organization
type RegulationBrief struct {
	ID                  uuid.UUID `json:"id"`
	CountryName         string    `json:"country_name"`
	RegulatoryAuthority string    `json:"regulatory_authority"`
	AuthorityWebsite    string    `json:"authority_website"`
	KeyRequirements     string    `json:"key_requirements"`
}

// ChecklistItem is one line of the organization compliance checklist
type ChecklistItem struct {
	Item    string `json:"item"`
	Status  string `json:"status"`
	Details string `json:"details"`
}

// HierarchyNode is an organization with its descendants
type HierarchyNode struct {
	ID               uuid.UUID                 `json:"id"`
	OrganizationName string                    `json:"organization_name"`
	OrganizationType models.OrganizationType   `json:"organization_type"`
	Status           models.OrganizationStatus `json:"status"`
	Children         []HierarchyNode           `json:"children"`
}

// DuplicateCheckResponse tells whether an organization name is taken
type DuplicateCheckResponse struct {
	Exists bool       `json:"exists"`
	Name   string     `json:"name,omitempty"`
	ID     *uuid.UUID `json:"id,omitempty"`
}

// Create creates a new organization, opens its partner account and welcomes its contact person
func (s *OrganizationService) Create(ctx context.Context, req *OrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByNameAndCountry(req.OrganizationName, req.Country)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewOrganizationExistsError(req.OrganizationName, req.Country)
	}

	org := &models.Organization{}
	req.apply(org)

	warnings, err := s.prepare(org)
	if err != nil {
		return nil, err
	}

	org.Stamp(auth.UserFromContext(ctx))
	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	log := logger.WithContext(ctx).WithField("organization_id", org.ID)
	if err := s.openPartnerAccount(ctx, org); err != nil {
		log.Warnf("Failed to create partner account: %v", err)
	}
	if org.EmailID != "" && org.ContactPerson != "" {
		notify(ctx, s.notifier, welcomeOrganizationMail(org))
	}
	s.dashboards.invalidate(ctx, cache.PrefixReports)
	log.Info("Organization created")

	return &OrganizationResponse{Organization: org, Warnings: warnings}, nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(ctx context.Context, id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrOrganizationNotFound, "organization")
	}
	return &OrganizationResponse{Organization: org}, nil
}

// GetAll retrieves organizations with filters and pagination
func (s *OrganizationService) GetAll(ctx context.Context, filter OrganizationListFilter, page, pageSize int) (*OrganizationListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	orgs, total, err := s.repo.GetAll(repository.OrganizationFilter{
		Country:          filter.Country,
		Status:           filter.Status,
		OrganizationType: filter.OrganizationType,
	}, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	return &OrganizationListResponse{Items: orgs, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update replaces the editable fields of an organization
func (s *OrganizationService) Update(ctx context.Context, id uuid.UUID, req *OrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrOrganizationNotFound, "organization")
	}

	if req.OrganizationName != org.OrganizationName || req.Country != org.Country {
		existing, err := s.repo.GetByNameAndCountry(req.OrganizationName, req.Country)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing organization: %w", err)
		}
		if existing != nil && existing.ID != org.ID {
			return nil, apperrors.NewOrganizationExistsError(req.OrganizationName, req.Country)
		}
	}

	req.apply(org)
	warnings, err := s.prepare(org)
	if err != nil {
		return nil, err
	}

	org.Stamp(auth.UserFromContext(ctx))
	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	if err := s.refreshPartnerAccount(org); err != nil {
		logger.WithContext(ctx).WithField("organization_id", org.ID).Warnf("Failed to update partner account: %v", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixReports)

	return &OrganizationResponse{Organization: org, Warnings: warnings}, nil
}

// Delete deletes an organization
func (s *OrganizationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookupError(err, apperrors.ErrOrganizationNotFound, "organization")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixReports)
	return nil
}

// GetCountryRegulations returns the regulation record of the organization's country, or nil
func (s *OrganizationService) GetCountryRegulations(ctx context.Context, id uuid.UUID) (*RegulationBrief, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrOrganizationNotFound, "organization")
	}
	return regulationBrief(s.regulations, org.Country)
}

// GetComplianceChecklist evaluates the organization against the onboarding checklist
func (s *OrganizationService) GetComplianceChecklist(ctx context.Context, id uuid.UUID) ([]ChecklistItem, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrOrganizationNotFound, "organization")
	}
	return complianceChecklist(org, models.Today()), nil
}

// GetHierarchy returns the organization with its descendant tree
func (s *OrganizationService) GetHierarchy(ctx context.Context, id uuid.UUID) (*HierarchyNode, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrOrganizationNotFound, "organization")
	}

	visited := map[uuid.UUID]bool{org.ID: true}
	children, err := s.children(org.ID, visited, 1)
	if err != nil {
		return nil, err
	}

	return &HierarchyNode{
		ID:               org.ID,
		OrganizationName: org.OrganizationName,
		OrganizationType: org.OrganizationType,
		Status:           org.Status,
		Children:         children,
	}, nil
}

// GetByCountry lists the organizations of a country ordered by name
func (s *OrganizationService) GetByCountry(ctx context.Context, country string) ([]models.Organization, error) {
	orgs, err := s.repo.GetByCountry(country)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations by country: %w", err)
	}
	return orgs, nil
}

// CheckDuplicate reports whether an organization name is already used, within country when given
func (s *OrganizationService) CheckDuplicate(ctx context.Context, name, country string) (*DuplicateCheckResponse, error) {
	var (
		org *models.Organization
		err error
	)
	if country != "" {
		org, err = s.repo.GetByNameAndCountry(name, country)
	} else {
		org, err = s.repo.GetByName(name)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &DuplicateCheckResponse{Exists: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check duplicate organization: %w", err)
	}
	return &DuplicateCheckResponse{Exists: true, Name: org.OrganizationName, ID: &org.ID}, nil
}

// ExpireOverdueAudits marks organizations whose audit is past due as Expired and returns how many changed
func (s *OrganizationService) ExpireOverdueAudits(ctx context.Context) (int, error) {
	today := models.Today()
	orgs, err := s.repo.GetAuditOverdue(today.Time)
	if err != nil {
		return 0, fmt.Errorf("failed to get organizations with overdue audits: %w", err)
	}

	updated := 0
	for i := range orgs {
		org := &orgs[i]
		if !applyAuditExpiry(org, today) {
			continue
		}
		org.Stamp(auth.UserFromContext(ctx))
		if err := s.repo.Update(org); err != nil {
			logger.WithContext(ctx).WithField("organization_id", org.ID).Errorf("Failed to expire audit status: %v", err)
			continue
		}
		updated++
	}
	if updated > 0 {
		s.dashboards.invalidate(ctx, cache.PrefixReports)
	}
	return updated, nil
}

// prepare validates the parent link, applies defaults and derived status, and collects warnings
func (s *OrganizationService) prepare(org *models.Organization) ([]string, error) {
	if err := s.validateParent(org); err != nil {
		return nil, err
	}

	if org.OrganizationType == "" {
		org.OrganizationType = models.OrganizationTypeDistributor
	}
	if org.Status == "" {
		org.Status = models.OrganizationStatusActive
	}
	if org.RegulatoryStatus == "" {
		org.RegulatoryStatus = models.RegulatoryStatusPendingReview
	}

	today := models.Today()
	applyAuditExpiry(org, today)

	var warnings []string
	if org.AgreementExpiry != nil && org.AgreementExpiry.Before(today) {
		warnings = append(warnings, "Distribution agreement has expired")
	}
	return warnings, nil
}

func (s *OrganizationService) validateParent(org *models.Organization) error {
	if org.ParentOrganizationID == nil {
		return nil
	}
	if org.ID != uuid.Nil && *org.ParentOrganizationID == org.ID {
		return apperrors.ErrOwnParent
	}

	parent, err := s.repo.GetByID(*org.ParentOrganizationID)
	if err != nil {
		return lookupError(err, apperrors.ErrParentOrganizationNotFound, "parent organization")
	}
	if org.ID != uuid.Nil && parent.ParentOrganizationID != nil && *parent.ParentOrganizationID == org.ID {
		return apperrors.ErrCircularParent
	}
	return nil
}

// applyAuditExpiry flips a good regulatory standing to Expired once the next audit is overdue
func applyAuditExpiry(org *models.Organization, today models.Date) bool {
	if org.LastAuditDate == nil || org.NextAuditDue == nil {
		return false
	}
	if !org.NextAuditDue.Before(today) {
		return false
	}
	if org.RegulatoryStatus != models.RegulatoryStatusCompliant && org.RegulatoryStatus != models.RegulatoryStatusPendingReview {
		return false
	}
	org.RegulatoryStatus = models.RegulatoryStatusExpired
	return true
}

func (s *OrganizationService) openPartnerAccount(ctx context.Context, org *models.Organization) error {
	account := &models.PartnerAccount{
		OrganizationID: org.ID,
		AccountName:    org.OrganizationName,
		Country:        org.Country,
	}
	switch {
	case org.OrganizationType.IsCustomer():
		account.AccountType = models.PartnerAccountCustomer
		account.AccountGroup = string(org.OrganizationType)
		account.Territory = orDefault(org.Territory, defaultTerritory)
	case org.OrganizationType.IsSupplier():
		account.AccountType = models.PartnerAccountSupplier
		account.AccountGroup = supplierAccountGroup
		account.Territory = org.Territory
	default:
		return nil
	}

	account.Stamp(auth.UserFromContext(ctx))
	return s.accounts.Create(account)
}

func (s *OrganizationService) refreshPartnerAccount(org *models.Organization) error {
	account, err := s.accounts.GetByOrganization(org.ID, models.PartnerAccountCustomer)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	account.Territory = orDefault(org.Territory, defaultTerritory)
	account.AccountName = org.OrganizationName
	account.Stamp(org.UpdatedBy)
	return s.accounts.Update(account)
}

func regulationBrief(regulations repository.CountryRegulationRepositoryInterface, country string) (*RegulationBrief, error) {
	if country == "" {
		return nil, nil
	}
	reg, err := regulations.GetByCountry(country)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get country regulation: %w", err)
	}
	return &RegulationBrief{
		ID:                  reg.ID,
		CountryName:         reg.CountryName,
		RegulatoryAuthority: reg.RegulatoryAuthority,
		AuthorityWebsite:    reg.AuthorityWebsite,
		KeyRequirements:     reg.KeyRequirements,
	}, nil
}

func (s *OrganizationService) children(parentID uuid.UUID, visited map[uuid.UUID]bool, depth int) ([]HierarchyNode, error) {
	nodes := []HierarchyNode{}
	if depth > maxHierarchyDepth {
		return nodes, nil
	}

	orgs, err := s.repo.GetChildren(parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get child organizations: %w", err)
	}

	for _, child := range orgs {
		if visited[child.ID] {
			continue
		}
		visited[child.ID] = true

		grandchildren, err := s.children(child.ID, visited, depth+1)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, HierarchyNode{
			ID:               child.ID,
			OrganizationName: child.OrganizationName,
			OrganizationType: child.OrganizationType,
			Status:           child.Status,
			Children:         grandchildren,
		})
	}
	return nodes, nil
}

func complianceChecklist(org *models.Organization, today models.Date) []ChecklistItem {
	infoStatus := "Incomplete"
	if org.OrganizationName != "" && org.Country != "" && org.ContactPerson != "" {
		infoStatus = "Complete"
	}

	agreementStatus := "Not Set"
	if days := daysUntil(org.AgreementExpiry, today); days != nil {
		switch {
		case *days < 0:
			agreementStatus = "Expired"
		case *days < 30:
			agreementStatus = "Expiring Soon"
		default:
			agreementStatus = "Valid"
		}
	}

	return []ChecklistItem{
		{
			Item:    "Organization Information Complete",
			Status:  infoStatus,
			Details: "Basic organization details and contact information",
		},
		{
			Item:    "Regulatory Status",
			Status:  orDefault(string(org.RegulatoryStatus), "Not Set"),
			Details: "Current status: " + orDefault(string(org.RegulatoryStatus), "Not specified"),
		},
		{
			Item:    "Distribution Agreement",
			Status:  agreementStatus,
			Details: "Expiry: " + dateString(org.AgreementExpiry),
		},
	}
}

func welcomeOrganizationMail(org *models.Organization) notification.Notification {
	body := fmt.Sprintf(`Dear %s,

Welcome to our distribution network. We are pleased to partner with %s.

Organization type: %s
Territory: %s

Our partner team will contact you shortly with onboarding details.

Best regards,
Sysmayal Distribution Team`, org.ContactPerson, org.OrganizationName, org.OrganizationType, orDefault(org.Territory, defaultTerritory))

	return notification.Notification{
		Recipients:    []string{org.EmailID},
		Subject:       "Welcome to Our Distribution Network",
		Body:          body,
		ReferenceType: models.ReferenceOrganization,
		ReferenceID:   &org.ID,
	}
}
