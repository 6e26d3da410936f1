package models

// OrganizationType classifies a distribution partner
type OrganizationType string

const (
	OrganizationTypeDistributor  OrganizationType = "Distributor"
	OrganizationTypeRetailer     OrganizationType = "Retailer"
	OrganizationTypeWholesaler   OrganizationType = "Wholesaler"
	OrganizationTypeSupplier     OrganizationType = "Supplier"
	OrganizationTypeManufacturer OrganizationType = "Manufacturer"
)

// IsValid checks if the OrganizationType is valid
func (t OrganizationType) IsValid() bool {
	switch t {
	case OrganizationTypeDistributor, OrganizationTypeRetailer, OrganizationTypeWholesaler,
		OrganizationTypeSupplier, OrganizationTypeManufacturer:
		return true
	}
	return false
}

// IsCustomer reports whether partners of this type buy from us
func (t OrganizationType) IsCustomer() bool {
	switch t {
	case OrganizationTypeDistributor, OrganizationTypeRetailer, OrganizationTypeWholesaler:
		return true
	}
	return false
}

// IsSupplier reports whether partners of this type sell to us
func (t OrganizationType) IsSupplier() bool {
	return t == OrganizationTypeSupplier || t == OrganizationTypeManufacturer
}

// OrganizationStatus is the partnership state of an organization
type OrganizationStatus string

const (
	OrganizationStatusActive    OrganizationStatus = "Active"
	OrganizationStatusInactive  OrganizationStatus = "Inactive"
	OrganizationStatusPending   OrganizationStatus = "Pending"
	OrganizationStatusSuspended OrganizationStatus = "Suspended"
)

// RegulatoryStatus is the regulatory standing of an organization
type RegulatoryStatus string

const (
	RegulatoryStatusCompliant     RegulatoryStatus = "Compliant"
	RegulatoryStatusPendingReview RegulatoryStatus = "Pending Review"
	RegulatoryStatusNonCompliant  RegulatoryStatus = "Non-Compliant"
	RegulatoryStatusExpired       RegulatoryStatus = "Expired"
)

// ComplianceStatus is the compliance standing of a product in a country
type ComplianceStatus string

const (
	ComplianceStatusCompliant          ComplianceStatus = "Compliant"
	ComplianceStatusPendingReview      ComplianceStatus = "Pending Review"
	ComplianceStatusNonCompliant       ComplianceStatus = "Non-Compliant"
	ComplianceStatusPartiallyCompliant ComplianceStatus = "Partially Compliant"
	ComplianceStatusExpired            ComplianceStatus = "Expired"
	ComplianceStatusNotApplicable      ComplianceStatus = "Not Applicable"
)

// ComplianceStatuses lists every compliance status in display order
var ComplianceStatuses = []ComplianceStatus{
	ComplianceStatusCompliant,
	ComplianceStatusPendingReview,
	ComplianceStatusNonCompliant,
	ComplianceStatusPartiallyCompliant,
	ComplianceStatusExpired,
	ComplianceStatusNotApplicable,
}

// RiskLevel grades the compliance risk of a product
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "Low"
	RiskLevelMedium   RiskLevel = "Medium"
	RiskLevelHigh     RiskLevel = "High"
	RiskLevelCritical RiskLevel = "Critical"
)

// RiskLevels lists every risk level from lowest to highest
var RiskLevels = []RiskLevel{RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical}

// CertificateStatus is the validity state of a certification document
type CertificateStatus string

const (
	CertificateStatusValid        CertificateStatus = "Valid"
	CertificateStatusExpiringSoon CertificateStatus = "Expiring Soon"
	CertificateStatusExpired      CertificateStatus = "Expired"
	CertificateStatusUnderRenewal CertificateStatus = "Under Renewal"
	CertificateStatusSuspended    CertificateStatus = "Suspended"
)

// VerificationStatus is the integrity state of a stored document
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "Pending Verification"
	VerificationStatusVerified VerificationStatus = "Verified"
	VerificationStatusFailed   VerificationStatus = "Verification Failed"
	VerificationStatusExpired  VerificationStatus = "Expired"
)

// PlanStatus is the lifecycle state of a market entry plan
type PlanStatus string

const (
	PlanStatusPlanning         PlanStatus = "Planning"
	PlanStatusInProgress       PlanStatus = "In Progress"
	PlanStatusApprovalRequired PlanStatus = "Approval Required"
	PlanStatusApproved         PlanStatus = "Approved"
	PlanStatusImplementing     PlanStatus = "Implementing"
	PlanStatusCompleted        PlanStatus = "Completed"
	PlanStatusOnHold           PlanStatus = "On Hold"
	PlanStatusCancelled        PlanStatus = "Cancelled"
)

// DefaultCompletion is the completion percentage implied by a plan status
func (s PlanStatus) DefaultCompletion() int {
	switch s {
	case PlanStatusPlanning:
		return 10
	case PlanStatusInProgress:
		return 25
	case PlanStatusApprovalRequired:
		return 50
	case PlanStatusApproved:
		return 60
	case PlanStatusImplementing:
		return 80
	case PlanStatusCompleted:
		return 100
	}
	return 0
}

// IsClosed reports whether the plan no longer needs follow-up
func (s PlanStatus) IsClosed() bool {
	return s == PlanStatusCompleted || s == PlanStatusCancelled
}

// ResearchStatus is the lifecycle state of a market research study
type ResearchStatus string

const (
	ResearchStatusPlanning   ResearchStatus = "Planning"
	ResearchStatusInProgress ResearchStatus = "In Progress"
	ResearchStatusCompleted  ResearchStatus = "Completed"
	ResearchStatusOnHold     ResearchStatus = "On Hold"
	ResearchStatusCancelled  ResearchStatus = "Cancelled"
)

// ProjectStatus is the lifecycle state of an R&D project
type ProjectStatus string

const (
	ProjectStatusPlanning         ProjectStatus = "Planning"
	ProjectStatusInProgress       ProjectStatus = "In Progress"
	ProjectStatusTesting          ProjectStatus = "Testing"
	ProjectStatusRegulatoryReview ProjectStatus = "Regulatory Review"
	ProjectStatusCompleted        ProjectStatus = "Completed"
	ProjectStatusOnHold           ProjectStatus = "On Hold"
	ProjectStatusCancelled        ProjectStatus = "Cancelled"
)

// Priority ranks plans, studies and projects
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// RegulationVerification is the review state of a country regulation record
type RegulationVerification string

const (
	RegulationPendingVerification RegulationVerification = "Pending Verification"
	RegulationVerified            RegulationVerification = "Verified"
	RegulationExpired             RegulationVerification = "Expired"
)

// CommunicationStatus records whether an outgoing mail was delivered
type CommunicationStatus string

const (
	CommunicationStatusSent  CommunicationStatus = "Sent"
	CommunicationStatusError CommunicationStatus = "Error"
)
