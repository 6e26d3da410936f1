package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/logger"
	"sysmayal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Doctypes accepted by the importer
const (
	DoctypeOrganizations = "organizations"
	DoctypeContacts      = "contacts"
)

var doctypeLabels = map[string]string{
	DoctypeOrganizations: "Distribution Organizations",
	DoctypeContacts:      "Distribution Contacts",
}

// OrganizationCreator creates organizations through the organization rules
type OrganizationCreator interface {
	Create(ctx context.Context, req *service.OrganizationRequest) (*service.OrganizationResponse, error)
}

// ContactCreator creates contacts through the contact rules
type ContactCreator interface {
	Create(ctx context.Context, req *service.ContactRequest) (*service.ContactResponse, error)
}

// OrganizationFinder resolves an organization by its name, and by country when the name is shared
type OrganizationFinder interface {
	GetByNameAndCountry(name, country string) (*models.Organization, error)
	FindByName(name string) ([]models.Organization, error)
}

// RegulationImporter loads a country regulation document
type RegulationImporter interface {
	ImportFromJSON(ctx context.Context, doc *service.RegulationImport) (*service.ImportResult, error)
}

// RowError describes a row that could not be imported
type RowError struct {
	Row   int               `json:"row"`
	Error string            `json:"error"`
	Data  map[string]string `json:"data"`
}

// RowWarning describes a row that was not imported on purpose
type RowWarning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// Result summarises an import run
type Result struct {
	Doctype      string       `json:"doctype"`
	TotalRecords int          `json:"total_records"`
	Imported     int          `json:"imported"`
	Skipped      int          `json:"skipped"`
	Errors       int          `json:"errors"`
	ErrorDetails []RowError   `json:"error_details"`
	Warnings     []RowWarning `json:"warnings"`
}

// RegulationResult summarises a regulation import
type RegulationResult struct {
	Doctype      string       `json:"doctype"`
	TotalRecords int          `json:"total_records"`
	Created      int          `json:"created"`
	Updated      int          `json:"updated"`
	Errors       []RowError   `json:"errors"`
	Warnings     []RowWarning `json:"warnings"`
}

// rowSkipped is returned by a row handler when the row is a duplicate
type rowSkipped struct {
	message string
}

func (s *rowSkipped) Error() string {
	return s.message
}

// Importer loads organizations, contacts and regulations from files
type Importer struct {
	organizations OrganizationCreator
	contacts      ContactCreator
	lookup        OrganizationFinder
	regulations   RegulationImporter
	validator     *validator.Validate
}

// New creates an importer
func New(
	organizations OrganizationCreator,
	contacts ContactCreator,
	lookup OrganizationFinder,
	regulations RegulationImporter,
	validator *validator.Validate,
) *Importer {
	return &Importer{
		organizations: organizations,
		contacts:      contacts,
		lookup:        lookup,
		regulations:   regulations,
		validator:     validator,
	}
}

// Import loads a CSV of the given doctype; rows fail or are skipped independently
func (im *Importer) Import(ctx context.Context, doctype string, r io.Reader, mapping map[string]string) (*Result, error) {
	var handle func(context.Context, *Row) error
	switch doctype {
	case DoctypeOrganizations:
		handle = im.importOrganization
	case DoctypeContacts:
		handle = im.importContact
	default:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedImportDoctype, doctype)
	}

	sheet, err := Parse(r, mapping)
	if err != nil {
		return nil, fmt.Errorf("error reading import file: %w", err)
	}

	result := &Result{
		Doctype:      doctypeLabels[doctype],
		ErrorDetails: []RowError{},
		Warnings:     []RowWarning{},
	}
	for _, row := range sheet.Rows {
		err := handle(ctx, row)
		var skipped *rowSkipped
		switch {
		case err == nil:
			result.Imported++
		case errors.As(err, &skipped):
			result.Skipped++
			result.Warnings = append(result.Warnings, RowWarning{Row: row.Number, Message: skipped.message, Action: "Skipped"})
		default:
			result.ErrorDetails = append(result.ErrorDetails, RowError{Row: row.Number, Error: apperrors.UserMessage(err), Data: row.Data})
		}
	}
	result.Errors = len(result.ErrorDetails)
	result.TotalRecords = result.Imported + result.Skipped + result.Errors

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"doctype":  doctype,
		"imported": result.Imported,
		"skipped":  result.Skipped,
		"errors":   result.Errors,
	}).Info("Import completed")

	return result, nil
}

// ImportRegulations loads a country regulation JSON document
func (im *Importer) ImportRegulations(ctx context.Context, r io.Reader) (*RegulationResult, error) {
	var doc service.RegulationImport
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, apperrors.NewValidationError("file", fmt.Sprintf("Error importing regulatory data: %v", err))
	}

	res, err := im.regulations.ImportFromJSON(ctx, &doc)
	if err != nil {
		return nil, fmt.Errorf("error importing regulatory data: %w", err)
	}

	return &RegulationResult{
		Doctype:      "Country Regulations",
		TotalRecords: res.Total,
		Created:      res.Created,
		Updated:      res.Updated,
		Errors:       []RowError{},
		Warnings:     []RowWarning{},
	}, nil
}

func (im *Importer) importOrganization(ctx context.Context, row *Row) error {
	name := row.Get("organization_name")
	country := row.Get("country")
	if name == "" {
		return errors.New("Organization name is required")
	}
	if country == "" {
		return errors.New("Country is required")
	}

	email := row.Get("email_id")
	if email != "" && im.validator.Var(email, "email") != nil {
		return fmt.Errorf("Invalid email address: %s", email)
	}

	req := &service.OrganizationRequest{
		OrganizationName: name,
		OrganizationType: models.OrganizationType(row.Get("organization_type")),
		Country:          country,
		Territory:        row.Get("territory"),
		Status:           models.OrganizationStatus(row.Get("status")),
		RegulatoryStatus: models.RegulatoryStatus(row.Get("regulatory_status")),
		ContactPerson:    row.Get("contact_person"),
		EmailID:          email,
		Phone:            row.Get("phone"),
		MobileNo:         row.Get("mobile_no"),
		Website:          row.Get("website"),
		AddressLine1:     row.Get("address_line_1"),
		AddressLine2:     row.Get("address_line_2"),
		City:             row.Get("city"),
		State:            row.Get("state"),
		PostalCode:       row.Get("postal_code"),
		BusinessFocus:    row.Get("business_focus"),
	}
	if req.Status == "" {
		req.Status = models.OrganizationStatusActive
	}
	if req.OrganizationType == "" {
		req.OrganizationType = models.OrganizationTypeDistributor
	}

	if v := row.Get("annual_revenue"); v != "" {
		revenue, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("Invalid annual revenue: %s", v)
		}
		req.AnnualRevenue = revenue
	}
	if v := row.Get("employee_count"); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("Invalid employee count: %s", v)
		}
		req.EmployeeCount = count
	}

	if _, err := im.organizations.Create(ctx, req); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return &rowSkipped{message: fmt.Sprintf("Organization '%s' already exists in %s", name, country)}
		}
		return err
	}
	return nil
}

// findOrganization resolves a contact row's organization. A name shared by
// organizations in several countries needs the row's country to pick one.
func (im *Importer) findOrganization(name, country string) (*models.Organization, error) {
	if country != "" {
		org, err := im.lookup.GetByNameAndCountry(name, country)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("Organization '%s' does not exist in %s", name, country)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up organization: %w", err)
		}
		return org, nil
	}

	orgs, err := im.lookup.FindByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up organization: %w", err)
	}
	switch len(orgs) {
	case 0:
		return nil, fmt.Errorf("Organization '%s' does not exist", name)
	case 1:
		return &orgs[0], nil
	}
	return nil, fmt.Errorf("Organization '%s' exists in %d countries; set the country column", name, len(orgs))
}

func (im *Importer) importContact(ctx context.Context, row *Row) error {
	firstName := row.Get("first_name")
	email := row.Get("email_id")
	orgName := row.Get("organization")
	if firstName == "" {
		return errors.New("First name is required")
	}
	if email == "" {
		return errors.New("Email ID is required")
	}
	if orgName == "" {
		return errors.New("Organization is required")
	}
	if im.validator.Var(email, "email") != nil {
		return fmt.Errorf("Invalid email address: %s", email)
	}

	org, err := im.findOrganization(orgName, row.Get("country"))
	if err != nil {
		return err
	}

	req := &service.ContactRequest{
		FirstName:               firstName,
		LastName:                row.Get("last_name"),
		OrganizationID:          org.ID,
		Designation:             row.Get("designation"),
		Department:              row.Get("department"),
		RegulatoryRole:          row.Get("regulatory_role"),
		Status:                  row.Get("status"),
		EmailID:                 email,
		Phone:                   row.Get("phone"),
		MobileNo:                row.Get("mobile_no"),
		Country:                 row.Get("country"),
		PreferredLanguage:       row.Get("preferred_language"),
		CommunicationPreference: row.Get("communication_preference"),
		Certifications:          row.Get("certifications"),
	}
	if req.Status == "" {
		req.Status = string(models.OrganizationStatusActive)
	}
	if v := row.Get("years_experience"); v != "" {
		years, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("Invalid years of experience: %s", v)
		}
		req.YearsExperience = years
	}

	if _, err := im.contacts.Create(ctx, req); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return &rowSkipped{message: fmt.Sprintf("Contact with email '%s' already exists in organization", email)}
		}
		return err
	}
	return nil
}
