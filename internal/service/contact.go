package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

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

const communicationHistoryLimit = 20

// designationRoles maps designation keywords to regulatory roles; the first match wins
var designationRoles = []struct {
	keyword string
	role    string
}{
	{"quality manager", "Quality Manager"},
	{"qa manager", "Quality Manager"},
	{"regulatory affairs", "Regulatory Affairs Manager"},
	{"product manager", "Product Manager"},
	{"sales manager", "Sales Manager"},
	{"business development", "Business Development"},
	{"compliance", "Compliance Officer"},
	{"legal", "Legal Counsel"},
}

var roleRequirements = map[string][]string{
	"Quality Manager": {
		"Quality Management System certification",
		"Good Manufacturing Practices compliance",
		"Product testing and validation protocols",
	},
	"Regulatory Affairs Manager": {
		"Product registration and approval",
		"Regulatory submission management",
		"Compliance monitoring and reporting",
	},
	"Product Manager": {
		"Product labeling compliance",
		"Market authorization requirements",
		"Product lifecycle management",
	},
	"Compliance Officer": {
		"Audit preparation and management",
		"Documentation compliance",
		"Training and awareness programs",
	},
}

// ContactExportColumns are the labeled columns of a contact export
var ContactExportColumns = []string{
	"Full Name", "Email", "Phone", "Mobile", "Designation", "Department",
	"Regulatory Role", "Status", "Country", "Last Contacted",
}

// ContactService handles business logic for distribution contacts
type ContactService struct {
	repo           repository.ContactRepositoryInterface
	orgRepo        repository.OrganizationRepositoryInterface
	regulations    repository.CountryRegulationRepositoryInterface
	communications repository.CommunicationRepositoryInterface
	notifier       notification.NotifierInterface
	dashboards     *DashboardCache
	validator      *validator.Validate
	now            func() time.Time
}

// NewContactService creates a new contact service
func NewContactService(
	repo repository.ContactRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	regulations repository.CountryRegulationRepositoryInterface,
	communications repository.CommunicationRepositoryInterface,
	notifier notification.NotifierInterface,
	dashboards *DashboardCache,
	validator *validator.Validate,
) *ContactService {
	return &ContactService{
		repo:           repo,
		orgRepo:        orgRepo,
		regulations:    regulations,
		communications: communications,
		notifier:       notifier,
		dashboards:     dashboards,
		validator:      validator,
		now:            time.Now,
	}
}

// ContactRequest represents the request to create or update a contact
type ContactRequest struct {
	FirstName      string    `json:"first_name" validate:"required,max=100" example:"Maria"`
	LastName       string    `json:"last_name,omitempty" validate:"max=100" example:"Santos"`
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Designation    string    `json:"designation,omitempty" validate:"max=140" example:"QA Manager"`
	Department     string    `json:"department,omitempty" validate:"max=140"`
	RegulatoryRole string    `json:"regulatory_role,omitempty" validate:"max=100"`
	Status         string    `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`

	EmailID                 string `json:"email_id" validate:"required,email,max=140" example:"maria.santos@aloevida.com.br"`
	Phone                   string `json:"phone,omitempty" validate:"max=40"`
	MobileNo                string `json:"mobile_no,omitempty" validate:"max=40"`
	Country                 string `json:"country,omitempty" validate:"max=100"`
	PreferredLanguage       string `json:"preferred_language,omitempty" validate:"max=20"`
	CommunicationPreference string `json:"communication_preference,omitempty" validate:"max=40"`
	ContactFrequency        string `json:"contact_frequency,omitempty" validate:"max=40"`

	YearsExperience int    `json:"years_experience,omitempty" validate:"gte=0"`
	Certifications  string `json:"certifications,omitempty"`
}

func (req *ContactRequest) apply(contact *models.Contact) {
	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.OrganizationID = req.OrganizationID
	contact.Designation = req.Designation
	contact.Department = req.Department
	contact.RegulatoryRole = req.RegulatoryRole
	contact.Status = req.Status
	contact.EmailID = strings.TrimSpace(req.EmailID)
	contact.Phone = req.Phone
	contact.MobileNo = req.MobileNo
	contact.Country = req.Country
	contact.PreferredLanguage = req.PreferredLanguage
	contact.CommunicationPreference = req.CommunicationPreference
	contact.ContactFrequency = req.ContactFrequency
	contact.YearsExperience = req.YearsExperience
	contact.Certifications = req.Certifications
}

// ContactResponse represents the response for contact operations
type ContactResponse struct {
	*models.Contact
	Warnings []string `json:"warnings,omitempty"`
}

// ContactListResponse represents a paginated list of contacts
type ContactListResponse = ListResponse[models.Contact]

// ContactListFilter holds the list query parameters
type ContactListFilter struct {
	OrganizationID *uuid.UUID `form:"organization_id"`
	Status         string     `form:"status"`
	RegulatoryRole string     `form:"regulatory_role"`
	Country        string     `form:"country"`
}

// OrganizationDetails is the organization summary shown on a contact
type OrganizationDetails struct {
	ID               uuid.UUID                 `json:"id"`
	OrganizationName string                    `json:"organization_name"`
	OrganizationType models.OrganizationType   `json:"organization_type"`
	Country          string                    `json:"country"`
	Territory        string                    `json:"territory"`
	Status           models.OrganizationStatus `json:"status"`
	RegulatoryStatus models.RegulatoryStatus   `json:"regulatory_status"`
	Website          string                    `json:"website"`
	PrimaryContact   string                    `json:"primary_contact"`
	PrimaryEmail     string                    `json:"primary_email"`
}

// RegulatoryRequirement is a group of requirements from one source
type RegulatoryRequirement struct {
	Source       string   `json:"source"`
	Authority    string   `json:"authority"`
	Requirements []string `json:"requirements"`
}

// BulkStatusRequest represents a status change applied to many records
type BulkStatusRequest struct {
	IDs    []uuid.UUID `json:"ids" validate:"required,min=1"`
	Status string      `json:"status" validate:"required"`
}

// Create creates a new contact and welcomes them when active
func (s *ContactService) Create(ctx context.Context, req *ContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact := &models.Contact{}
	req.apply(contact)

	warnings, err := s.prepare(contact)
	if err != nil {
		return nil, err
	}

	contact.Stamp(auth.UserFromContext(ctx))
	if err := s.repo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	if contact.EmailID != "" && contact.Status == string(models.OrganizationStatusActive) {
		if notify(ctx, s.notifier, welcomeContactMail(contact)) {
			now := s.now().UTC()
			if err := s.repo.TouchLastContacted(contact.ID, now); err != nil {
				logger.WithContext(ctx).WithField("contact_id", contact.ID).Warnf("Failed to update last contacted: %v", err)
			} else {
				contact.LastContacted = &now
			}
		}
	}
	s.dashboards.invalidate(ctx, cache.PrefixReports)

	return &ContactResponse{Contact: contact, Warnings: warnings}, nil
}

// GetByID retrieves a contact by ID
func (s *ContactService) GetByID(ctx context.Context, id uuid.UUID) (*ContactResponse, error) {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrContactNotFound, "contact")
	}
	return &ContactResponse{Contact: contact}, nil
}

// GetAll retrieves contacts with filters and pagination
func (s *ContactService) GetAll(ctx context.Context, filter ContactListFilter, page, pageSize int) (*ContactListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	contacts, total, err := s.repo.GetAll(repository.ContactFilter(filter), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}
	return &ContactListResponse{Items: contacts, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update replaces the editable fields of a contact
func (s *ContactService) Update(ctx context.Context, id uuid.UUID, req *ContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrContactNotFound, "contact")
	}

	req.apply(contact)
	warnings, err := s.prepare(contact)
	if err != nil {
		return nil, err
	}

	contact.Stamp(auth.UserFromContext(ctx))
	if err := s.repo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixReports)
	return &ContactResponse{Contact: contact, Warnings: warnings}, nil
}

// Delete deletes a contact
func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookupError(err, apperrors.ErrContactNotFound, "contact")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixReports)
	return nil
}

// GetOrganizationDetails returns the organization the contact works for
func (s *ContactService) GetOrganizationDetails(ctx context.Context, id uuid.UUID) (*OrganizationDetails, error) {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrContactNotFound, "contact")
	}
	org, err := s.orgRepo.GetByID(contact.OrganizationID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrOrganizationNotFound, "organization")
	}
	return &OrganizationDetails{
		ID:               org.ID,
		OrganizationName: org.OrganizationName,
		OrganizationType: org.OrganizationType,
		Country:          org.Country,
		Territory:        org.Territory,
		Status:           org.Status,
		RegulatoryStatus: org.RegulatoryStatus,
		Website:          org.Website,
		PrimaryContact:   org.ContactPerson,
		PrimaryEmail:     org.EmailID,
	}, nil
}

// GetCommunicationHistory returns the latest mails sent to the contact, newest first
func (s *ContactService) GetCommunicationHistory(ctx context.Context, id uuid.UUID) ([]models.Communication, error) {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrContactNotFound, "contact")
	}
	if contact.EmailID == "" {
		return []models.Communication{}, nil
	}
	history, err := s.communications.GetByRecipient(contact.EmailID, communicationHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get communication history: %w", err)
	}
	return history, nil
}

// UpdateLastContacted stamps the contact as reached now
func (s *ContactService) UpdateLastContacted(ctx context.Context, id uuid.UUID) (*MessageResponse, error) {
	if err := s.repo.TouchLastContacted(id, s.now().UTC()); err != nil {
		return nil, lookupError(err, apperrors.ErrContactNotFound, "contact")
	}
	return &MessageResponse{Message: "Last contacted timestamp updated"}, nil
}

// GetRegulatoryRequirements returns the country requirements plus those of the contact's role
func (s *ContactService) GetRegulatoryRequirements(ctx context.Context, id uuid.UUID) ([]RegulatoryRequirement, error) {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrContactNotFound, "contact")
	}

	requirements := []RegulatoryRequirement{}
	if contact.Country != "" {
		brief, err := regulationBrief(s.regulations, contact.Country)
		if err != nil {
			return nil, err
		}
		if brief != nil {
			requirements = append(requirements, RegulatoryRequirement{
				Source:       "Country Regulation",
				Authority:    brief.RegulatoryAuthority,
				Requirements: []string{orDefault(brief.KeyRequirements, "Not specified")},
			})
		}
	}

	if items, ok := roleRequirements[contact.RegulatoryRole]; ok {
		requirements = append(requirements, RegulatoryRequirement{
			Source:       "Role-specific",
			Authority:    contact.RegulatoryRole,
			Requirements: items,
		})
	}
	return requirements, nil
}

// GetByOrganization lists the contacts of an organization ordered by full name
func (s *ContactService) GetByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Contact, error) {
	contacts, err := s.repo.Find(repository.ContactFilter{OrganizationID: &orgID})
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts by organization: %w", err)
	}
	return contacts, nil
}

// GetByRegulatoryRole lists contacts holding a regulatory role, optionally within a country
func (s *ContactService) GetByRegulatoryRole(ctx context.Context, role, country string) ([]models.Contact, error) {
	contacts, err := s.repo.Find(repository.ContactFilter{RegulatoryRole: role, Country: country})
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts by regulatory role: %w", err)
	}
	return contacts, nil
}

// BulkUpdateStatus sets the status of several contacts at once
func (s *ContactService) BulkUpdateStatus(ctx context.Context, req *BulkStatusRequest) (*MessageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	updated, err := s.repo.UpdateStatus(req.IDs, req.Status, auth.UserFromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to update contact status: %w", err)
	}
	s.dashboards.invalidate(ctx, cache.PrefixReports)
	return &MessageResponse{Message: fmt.Sprintf("%d contacts updated successfully", updated)}, nil
}

// Export returns labeled rows for every contact, or the contacts of one organization
func (s *ContactService) Export(ctx context.Context, orgID *uuid.UUID) ([]map[string]string, error) {
	contacts, err := s.repo.Find(repository.ContactFilter{OrganizationID: orgID})
	if err != nil {
		return nil, fmt.Errorf("failed to export contacts: %w", err)
	}

	rows := make([]map[string]string, len(contacts))
	for i := range contacts {
		values := contactExportValues(&contacts[i])
		row := make(map[string]string, len(ContactExportColumns))
		for j, column := range ContactExportColumns {
			row[column] = values[j]
		}
		rows[i] = row
	}
	return rows, nil
}

// ExportCSV writes the contact export as CSV with a header row
func (s *ContactService) ExportCSV(ctx context.Context, orgID *uuid.UUID, w io.Writer) error {
	contacts, err := s.repo.Find(repository.ContactFilter{OrganizationID: orgID})
	if err != nil {
		return fmt.Errorf("failed to export contacts: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(ContactExportColumns); err != nil {
		return err
	}
	for i := range contacts {
		if err := writer.Write(contactExportValues(&contacts[i])); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// prepare checks the organization and email, then applies defaults
func (s *ContactService) prepare(contact *models.Contact) ([]string, error) {
	org, err := s.orgRepo.GetByID(contact.OrganizationID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrOrganizationNotFound, "organization")
	}

	var warnings []string
	if org.Status != models.OrganizationStatusActive && org.Status != models.OrganizationStatusPending {
		warnings = append(warnings, fmt.Sprintf("Warning: The organization %s is not active", org.OrganizationName))
	}

	if contact.EmailID != "" {
		taken, err := s.repo.EmailExistsInOrganization(contact.OrganizationID, contact.EmailID, contact.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check contact email: %w", err)
		}
		if taken {
			return nil, apperrors.ErrContactExists
		}
	}

	contact.FullName = strings.TrimSpace(contact.FirstName + " " + contact.LastName)
	if contact.Status == "" {
		contact.Status = string(models.OrganizationStatusActive)
	}
	if contact.CommunicationPreference == "" {
		contact.CommunicationPreference = "Email"
	}
	if contact.ContactFrequency == "" {
		contact.ContactFrequency = "Monthly"
	}
	if contact.RegulatoryRole == "" {
		contact.RegulatoryRole = regulatoryRoleFor(contact.Designation)
	}
	if contact.Country == "" {
		contact.Country = org.Country
	}
	return warnings, nil
}

// regulatoryRoleFor maps a designation to a regulatory role, or "" when nothing matches
func regulatoryRoleFor(designation string) string {
	lower := strings.ToLower(designation)
	if lower == "" {
		return ""
	}
	for _, mapping := range designationRoles {
		if strings.Contains(lower, mapping.keyword) {
			return mapping.role
		}
	}
	return ""
}

func contactExportValues(c *models.Contact) []string {
	lastContacted := ""
	if c.LastContacted != nil {
		lastContacted = c.LastContacted.UTC().Format(time.RFC3339)
	}
	return []string{
		c.FullName, c.EmailID, c.Phone, c.MobileNo, c.Designation, c.Department,
		c.RegulatoryRole, c.Status, c.Country, lastContacted,
	}
}

func welcomeContactMail(c *models.Contact) notification.Notification {
	body := fmt.Sprintf(`Dear %s,

Welcome to our distribution network. You have been registered as %s.

Regulatory role: %s

We look forward to working with you.

Best regards,
Sysmayal Distribution Team`, c.FullName, orDefault(c.Designation, "a partner contact"), orDefault(c.RegulatoryRole, "Not assigned"))

	return notification.Notification{
		Recipients:    []string{c.EmailID},
		Subject:       "Welcome to Our Distribution Network",
		Body:          body,
		ReferenceType: models.ReferenceContact,
		ReferenceID:   &c.ID,
	}
}
