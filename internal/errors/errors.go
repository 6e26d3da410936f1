package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
	Message string // Full user-facing text; overrides Entity and Context
}

func (e *AlreadyExistsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound       = &NotFoundError{Entity: "organization"}
	ErrParentOrganizationNotFound = &NotFoundError{Entity: "parent organization"}
	ErrContactNotFound            = &NotFoundError{Entity: "contact"}
	ErrProductComplianceNotFound  = &NotFoundError{Entity: "product compliance record"}
	ErrCertificateNotFound        = &NotFoundError{Entity: "certification document"}
	ErrMarketEntryPlanNotFound    = &NotFoundError{Entity: "market entry plan"}
	ErrMarketResearchNotFound     = &NotFoundError{Entity: "market research study"}
	ErrProjectNotFound            = &NotFoundError{Entity: "development project"}
	ErrRegulationNotFound         = &NotFoundError{Entity: "country regulation"}
	ErrDocumentFileNotFound       = &NotFoundError{Entity: "document file"}
	ErrTaskNotFound               = &NotFoundError{Entity: "task"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name in the country"}
	ErrContactExists      = &AlreadyExistsError{Entity: "contact", Message: "A contact with this email already exists in the organization"}
	ErrRegulationExists   = &AlreadyExistsError{Entity: "country regulation", Context: "for this country"}
)

// Business Logic Errors
var (
	ErrOwnParent                = &ValidationError{Field: "parent_organization_id", Message: "Organization cannot be its own parent"}
	ErrCircularParent           = &ValidationError{Field: "parent_organization_id", Message: "Circular parent-child relationship not allowed"}
	ErrManufacturingAfterExpiry = &ValidationError{Field: "manufacturing_date", Message: "Manufacturing date cannot be after expiry date"}
	ErrReviewDatesOutOfOrder    = &ValidationError{Field: "next_review_date", Message: "Last review date cannot be after next review date"}
	ErrIssueAfterExpiry         = &ValidationError{Field: "expiry_date", Message: "Issue date cannot be after or equal to expiry date"}
	ErrRenewalDatesOutOfOrder   = &ValidationError{Field: "next_renewal_due", Message: "Last renewal date cannot be after next renewal due date"}
	ErrPlanDateAfterLaunch      = &ValidationError{Field: "target_launch_date", Message: "Plan date cannot be after target launch date"}
	ErrResearchDateInFuture     = &ValidationError{Field: "research_date", Message: "Research date cannot be in the future"}
	ErrProjectStartAfterEnd     = &ValidationError{Field: "expected_completion", Message: "Start date cannot be after expected completion date"}
	ErrInvalidExpiryWindow      = &ValidationError{Field: "days", Message: "days must be a positive integer"}
	ErrNoFileForVerification    = errors.New("No file or hash available for verification")
	ErrUnsupportedImportDoctype = errors.New("unsupported import document type")
	ErrTaskAlreadyRunning       = errors.New("task is already running")
)

// Configuration Errors
var (
	ErrStorageNotConfigured = &ConfigurationError{Message: "document storage is not configured"}
	ErrMailerNotConfigured  = &ConfigurationError{Message: "mail transport is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewRegulationExistsError reports a second regulation record for the same country
func NewRegulationExistsError(country string) error {
	return &AlreadyExistsError{Entity: "country regulation", Message: fmt.Sprintf("Regulation record for %s already exists", country)}
}

// NewOrganizationExistsError reports a duplicate organization name within a country
func NewOrganizationExistsError(name, country string) error {
	return &AlreadyExistsError{Entity: "organization", Message: fmt.Sprintf("Organization '%s' already exists in %s", name, country)}
}

// NewTemplateNotAvailableError reports an import template request for an unknown doctype
func NewTemplateNotAvailableError(doctype string) error {
	return &ValidationError{Field: "doctype", Message: fmt.Sprintf("Template not available for %s", doctype)}
}

// UserMessage returns the message of a ValidationError in err's chain, or err's text
func UserMessage(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	return err.Error()
}
