package service

import (
	"context"
	"io"

	"sysmayal-backend/internal/database/models"
	"sysmayal-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(ctx context.Context, req *OrganizationRequest) (*OrganizationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OrganizationResponse, error)
	GetAll(ctx context.Context, filter OrganizationListFilter, page, pageSize int) (*OrganizationListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *OrganizationRequest) (*OrganizationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetCountryRegulations(ctx context.Context, id uuid.UUID) (*RegulationBrief, error)
	GetComplianceChecklist(ctx context.Context, id uuid.UUID) ([]ChecklistItem, error)
	GetHierarchy(ctx context.Context, id uuid.UUID) (*HierarchyNode, error)
	GetByCountry(ctx context.Context, country string) ([]models.Organization, error)
	CheckDuplicate(ctx context.Context, name, country string) (*DuplicateCheckResponse, error)
	ExpireOverdueAudits(ctx context.Context) (int, error)
}

// ContactServiceInterface defines the interface for contact service
type ContactServiceInterface interface {
	Create(ctx context.Context, req *ContactRequest) (*ContactResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ContactResponse, error)
	GetAll(ctx context.Context, filter ContactListFilter, page, pageSize int) (*ContactListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *ContactRequest) (*ContactResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetOrganizationDetails(ctx context.Context, id uuid.UUID) (*OrganizationDetails, error)
	GetCommunicationHistory(ctx context.Context, id uuid.UUID) ([]models.Communication, error)
	UpdateLastContacted(ctx context.Context, id uuid.UUID) (*MessageResponse, error)
	GetRegulatoryRequirements(ctx context.Context, id uuid.UUID) ([]RegulatoryRequirement, error)
	GetByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Contact, error)
	GetByRegulatoryRole(ctx context.Context, role, country string) ([]models.Contact, error)
	BulkUpdateStatus(ctx context.Context, req *BulkStatusRequest) (*MessageResponse, error)
	Export(ctx context.Context, orgID *uuid.UUID) ([]map[string]string, error)
	ExportCSV(ctx context.Context, orgID *uuid.UUID, w io.Writer) error
}

// ProductComplianceServiceInterface defines the interface for product compliance service
type ProductComplianceServiceInterface interface {
	Create(ctx context.Context, req *ProductComplianceRequest) (*ProductComplianceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductComplianceResponse, error)
	GetAll(ctx context.Context, filter ProductComplianceFilter, page, pageSize int) (*ProductComplianceListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *ProductComplianceRequest) (*ProductComplianceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetSummary(ctx context.Context, id uuid.UUID) (*ComplianceSummary, error)
	GetComments(ctx context.Context, id uuid.UUID) ([]models.Comment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *ComplianceStatusRequest) (*MessageResponse, error)
	BulkUpdateStatus(ctx context.Context, req *BulkComplianceStatusRequest) (*MessageResponse, error)
	GetDashboard(ctx context.Context) (*ComplianceDashboard, error)
	GetByCountry(ctx context.Context, country string) ([]models.ProductCompliance, error)
	GetReport(ctx context.Context, filter ProductComplianceFilter) ([]models.ProductCompliance, error)
	RefreshStatuses(ctx context.Context) (int, error)
}

// CertificateServiceInterface defines the interface for certification document service
type CertificateServiceInterface interface {
	Create(ctx context.Context, req *CertificateRequest) (*CertificateResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CertificateResponse, error)
	GetAll(ctx context.Context, filter CertificateListFilter, page, pageSize int) (*CertificateListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *CertificateRequest) (*CertificateResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Upload(ctx context.Context, id uuid.UUID, filename string, data []byte, contentType string) (*CertificateResponse, error)
	Download(ctx context.Context, id uuid.UUID) (*DocumentFile, error)
	Verify(ctx context.Context, id uuid.UUID) (*VerificationResult, error)
	BulkVerify(ctx context.Context, ids []uuid.UUID) ([]VerificationResult, error)
	Renew(ctx context.Context, id uuid.UUID) (*MessageResponse, error)
	GetTimeline(ctx context.Context, id uuid.UUID) ([]TimelineEvent, error)
	GetExpiring(ctx context.Context, days int) ([]models.CertificationDocument, error)
	GetDashboard(ctx context.Context) (*CertificateDashboard, error)
	GetReport(ctx context.Context, filter CertificateListFilter) ([]models.CertificationDocument, error)
	CheckExpiry(ctx context.Context) (*ExpiryCheckResult, error)
	ArchiveOld(ctx context.Context, days int) (int64, error)
}

// MarketEntryPlanServiceInterface defines the interface for market entry plan service
type MarketEntryPlanServiceInterface interface {
	Create(ctx context.Context, req *MarketEntryPlanRequest) (*MarketEntryPlanResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*MarketEntryPlanResponse, error)
	GetAll(ctx context.Context, filter MarketEntryPlanFilter, page, pageSize int) (*MarketEntryPlanListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *MarketEntryPlanRequest) (*MarketEntryPlanResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetAnalysisSummary(ctx context.Context, id uuid.UUID) (*PlanAnalysisSummary, error)
	UpdateMilestone(ctx context.Context, id uuid.UUID, req *MilestoneRequest) (*MessageResponse, error)
	GetExecutiveSummary(ctx context.Context, id uuid.UUID) (*ExecutiveSummary, error)
	GetDashboard(ctx context.Context) (*MarketEntryDashboard, error)
	GetOpportunities(ctx context.Context) ([]MarketOpportunity, error)
	GetReport(ctx context.Context, filter MarketEntryPlanFilter) ([]models.MarketEntryPlan, error)
}

// MarketResearchServiceInterface defines the interface for market research service
type MarketResearchServiceInterface interface {
	Create(ctx context.Context, req *MarketResearchRequest) (*MarketResearchResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*MarketResearchResponse, error)
	GetAll(ctx context.Context, filter MarketResearchFilter, page, pageSize int) (*MarketResearchListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *MarketResearchRequest) (*MarketResearchResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetCompetitiveSummary(ctx context.Context, id uuid.UUID) (*CompetitiveSummary, error)
	GenerateReport(ctx context.Context, id uuid.UUID) (*MarketReport, error)
	GetDashboard(ctx context.Context) (*ResearchDashboard, error)
	GetIntelligence(ctx context.Context, country string) (*MarketIntelligence, error)
	GetLandscapeReport(ctx context.Context, productCategory, region string) (*LandscapeReport, error)
}

// DevelopmentProjectServiceInterface defines the interface for R&D project service
type DevelopmentProjectServiceInterface interface {
	Create(ctx context.Context, req *DevelopmentProjectRequest) (*DevelopmentProjectResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*DevelopmentProjectResponse, error)
	GetAll(ctx context.Context, filter DevelopmentProjectFilter, page, pageSize int) (*DevelopmentProjectListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *DevelopmentProjectRequest) (*DevelopmentProjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetSummary(ctx context.Context, id uuid.UUID) (*ProjectSummary, error)
	GetComments(ctx context.Context, id uuid.UUID) ([]models.Comment, error)
	GetDashboard(ctx context.Context) (*ProjectDashboard, error)
}

// CountryRegulationServiceInterface defines the interface for country regulation service
type CountryRegulationServiceInterface interface {
	Create(ctx context.Context, req *CountryRegulationRequest) (*models.CountryRegulation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CountryRegulation, error)
	GetAll(ctx context.Context, region string, page, pageSize int) (*CountryRegulationListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *CountryRegulationRequest) (*models.CountryRegulation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetComplianceSummary(ctx context.Context, id uuid.UUID) (*RegulationComplianceSummary, error)
	GetByRegion(ctx context.Context, region string) ([]models.CountryRegulation, error)
	ImportFromJSON(ctx context.Context, doc *RegulationImport) (*ImportResult, error)
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	ComplianceStatus(ctx context.Context, q ComplianceReportQuery) (*ComplianceReport, error)
	GetFilters(ctx context.Context) (*ComplianceFilterOptions, error)
	Distribution(ctx context.Context, q DistributionReportQuery) ([]repository.DistributionReportRow, error)
	DistributionSummary(ctx context.Context, q DistributionReportQuery) (*DistributionSummary, error)
	DistributionPerformance(ctx context.Context, q DistributionReportQuery) (*DistributionPerformance, error)
	ContactAnalytics(ctx context.Context, q DistributionReportQuery) (*ContactAnalytics, error)
	ProjectStatus(ctx context.Context, q ProjectReportQuery) ([]repository.ProjectReportRow, error)
	PortfolioSummary(ctx context.Context, q ProjectReportQuery) (*PortfolioSummary, error)
	ProjectPerformance(ctx context.Context, q ProjectReportQuery) (*ProjectPerformance, error)
	ProjectRisks(ctx context.Context, q ProjectReportQuery) (*ProjectRisks, error)
	SendComplianceDigest(ctx context.Context, recipients []string) error
}
