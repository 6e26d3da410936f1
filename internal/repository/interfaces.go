package repository

import (
	"time"

	"sysmayal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetByNameAndCountry(name, country string) (*models.Organization, error)
	FindByName(name string) ([]models.Organization, error)
	ExistsByName(name string) (bool, error)
	GetAll(filter OrganizationFilter, limit, offset int) ([]models.Organization, int64, error)
	GetByCountry(country string) ([]models.Organization, error)
	GetChildren(parentID uuid.UUID) ([]models.Organization, error)
	CountByCountry(country string) (int64, error)
	GetAuditOverdue(today time.Time) ([]models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// PartnerAccountRepositoryInterface defines the interface for partner account repository operations
type PartnerAccountRepositoryInterface interface {
	Create(account *models.PartnerAccount) error
	GetByOrganization(orgID uuid.UUID, accountType models.PartnerAccountType) (*models.PartnerAccount, error)
	Update(account *models.PartnerAccount) error
}

// ContactRepositoryInterface defines the interface for contact repository operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact) error
	GetByID(id uuid.UUID) (*models.Contact, error)
	GetAll(filter ContactFilter, limit, offset int) ([]models.Contact, int64, error)
	Find(filter ContactFilter) ([]models.Contact, error)
	EmailExistsInOrganization(orgID uuid.UUID, email string, excludeID uuid.UUID) (bool, error)
	UpdateStatus(ids []uuid.UUID, status, updatedBy string) (int64, error)
	TouchLastContacted(id uuid.UUID, at time.Time) error
	Update(contact *models.Contact) error
	Delete(id uuid.UUID) error
}

// ProductComplianceRepositoryInterface defines the interface for product compliance repository operations
type ProductComplianceRepositoryInterface interface {
	Create(record *models.ProductCompliance) error
	GetByID(id uuid.UUID) (*models.ProductCompliance, error)
	GetByProductAndCountry(productCode, country string) (*models.ProductCompliance, error)
	GetAll(filter ProductComplianceFilter, limit, offset int) ([]models.ProductCompliance, int64, error)
	Find(filter ProductComplianceFilter) ([]models.ProductCompliance, error)
	GetByCountry(country string) ([]models.ProductCompliance, error)
	GetWithUpcomingDates() ([]models.ProductCompliance, error)
	GetExpiringWithin(today time.Time, days int) ([]models.ProductCompliance, error)
	UpdateStatus(ids []uuid.UUID, status models.ComplianceStatus, updatedBy string) (int64, error)
	CountByStatus() ([]GroupCount, error)
	CountByRisk() ([]GroupCount, error)
	CountByCountryAndStatus() ([]CountryStatusCount, error)
	CountForCountry(country string) (int64, int64, error)
	Update(record *models.ProductCompliance) error
	Delete(id uuid.UUID) error
}

// CertificateRepositoryInterface defines the interface for certification document repository operations
type CertificateRepositoryInterface interface {
	Create(doc *models.CertificationDocument) error
	GetByID(id uuid.UUID) (*models.CertificationDocument, error)
	GetByIDs(ids []uuid.UUID) ([]models.CertificationDocument, error)
	GetByCertificateNumber(number string) (*models.CertificationDocument, error)
	GetAll(filter CertificateFilter, limit, offset int) ([]models.CertificationDocument, int64, error)
	Find(filter CertificateFilter) ([]models.CertificationDocument, error)
	GetExpiring(today time.Time, days int) ([]models.CertificationDocument, error)
	GetWithExpiry() ([]models.CertificationDocument, error)
	CountByStatus() ([]GroupCount, error)
	CountByType() ([]GroupCount, error)
	ExpiryForecast(today time.Time, months int) ([]GroupCount, error)
	CostSummary() (*CertificateCostSummary, error)
	ArchiveExpiredBefore(cutoff time.Time) (int64, error)
	Update(doc *models.CertificationDocument) error
	Delete(id uuid.UUID) error
}

// MarketEntryPlanRepositoryInterface defines the interface for market entry plan repository operations
type MarketEntryPlanRepositoryInterface interface {
	Create(plan *models.MarketEntryPlan) error
	GetByID(id uuid.UUID) (*models.MarketEntryPlan, error)
	GetByTitle(title string) (*models.MarketEntryPlan, error)
	GetAll(filter MarketEntryPlanFilter, limit, offset int) ([]models.MarketEntryPlan, int64, error)
	Find(filter MarketEntryPlanFilter) ([]models.MarketEntryPlan, error)
	GetOpen() ([]models.MarketEntryPlan, error)
	CountriesWithOpenPlans() ([]string, error)
	CountByStatus() ([]GroupCount, error)
	CountryOverview() ([]PlanCountryOverview, error)
	Financials() (*PlanFinancials, error)
	Update(plan *models.MarketEntryPlan) error
	Delete(id uuid.UUID) error
}

// MarketResearchRepositoryInterface defines the interface for market research repository operations
type MarketResearchRepositoryInterface interface {
	Create(study *models.MarketResearch) error
	GetByID(id uuid.UUID) (*models.MarketResearch, error)
	GetByTitle(title string) (*models.MarketResearch, error)
	GetAll(filter MarketResearchFilter, limit, offset int) ([]models.MarketResearch, int64, error)
	GetCompleted(filter MarketResearchFilter) ([]models.MarketResearch, error)
	RecentCompleted(limit int) ([]models.MarketResearch, error)
	CountByStatus() ([]GroupCount, error)
	CountByCategory() ([]GroupCount, error)
	TopCountries(limit int) ([]ResearchCountryOverview, error)
	Update(study *models.MarketResearch) error
	Delete(id uuid.UUID) error
}

// DevelopmentProjectRepositoryInterface defines the interface for R&D project repository operations
type DevelopmentProjectRepositoryInterface interface {
	Create(project *models.DevelopmentProject) error
	GetByID(id uuid.UUID) (*models.DevelopmentProject, error)
	GetByName(name string) (*models.DevelopmentProject, error)
	GetAll(filter DevelopmentProjectFilter, limit, offset int) ([]models.DevelopmentProject, int64, error)
	FindActiveForMarket(country, productCategory string) ([]models.DevelopmentProject, error)
	CountByStatus() ([]GroupCount, error)
	CountByPriority() ([]GroupCount, error)
	CountByCompletionStage() ([]GroupCount, error)
	Update(project *models.DevelopmentProject) error
	Delete(id uuid.UUID) error
}

// CountryRegulationRepositoryInterface defines the interface for country regulation repository operations
type CountryRegulationRepositoryInterface interface {
	Create(regulation *models.CountryRegulation) error
	GetByID(id uuid.UUID) (*models.CountryRegulation, error)
	GetByCountry(country string) (*models.CountryRegulation, error)
	GetAll(region string, limit, offset int) ([]models.CountryRegulation, int64, error)
	GetByRegion(region string) ([]models.CountryRegulation, error)
	ListAll() ([]models.CountryRegulation, error)
	ListCountries() ([]string, error)
	Update(regulation *models.CountryRegulation) error
	Delete(id uuid.UUID) error
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	GetByReference(referenceType string, referenceID uuid.UUID) ([]models.Comment, error)
}

// CommunicationRepositoryInterface defines the interface for communication log repository operations
type CommunicationRepositoryInterface interface {
	Create(communication *models.Communication) error
	GetByRecipient(email string, limit int) ([]models.Communication, error)
}

// ReportRepositoryInterface defines the interface for report query repository operations
type ReportRepositoryInterface interface {
	ComplianceStatusRows(filter ComplianceReportFilter, today time.Time) ([]ComplianceReportRow, error)
	ComplianceCountries() ([]string, error)
	ManufacturerNames() ([]string, error)
	ResponsiblePeople() ([]string, error)
	DistributionRows(filter DistributionReportFilter, today time.Time) ([]DistributionReportRow, error)
	DistributionTotals(filter DistributionReportFilter) (*DistributionTotals, error)
	GeographicDistribution(filter DistributionReportFilter) ([]GeographicDistribution, error)
	RegulatoryDistribution(filter DistributionReportFilter) ([]ShareCount, error)
	ExpiringAgreements(filter DistributionReportFilter, today time.Time, days int) ([]ExpiringAgreement, error)
	PerformanceByType(filter DistributionReportFilter) ([]TypePerformance, error)
	PerformanceByAge(filter DistributionReportFilter, currentYear int) ([]AgeGroupPerformance, error)
	ContactsByRole(filter DistributionReportFilter) ([]RoleCoverage, error)
	ContactsByPreference(filter DistributionReportFilter) ([]ShareCount, error)
	ProjectRows(filter ProjectReportFilter, today time.Time) ([]ProjectReportRow, error)
	PortfolioTotals(filter ProjectReportFilter) (*PortfolioTotals, error)
	ProjectTimeline(filter ProjectReportFilter, today time.Time) ([]TimelineBucket, error)
	ProjectCategories(filter ProjectReportFilter) ([]CategoryAnalysis, error)
	ProjectResources(filter ProjectReportFilter) ([]ResourceAllocation, error)
	CompletionByStatus(filter ProjectReportFilter) ([]CompletionByStatus, error)
	InvestmentBuckets(filter ProjectReportFilter) ([]InvestmentBucket, error)
	ProjectCompliance(filter ProjectReportFilter) ([]ProjectComplianceAnalysis, error)
	OverdueProjects(filter ProjectReportFilter, today time.Time) ([]ProjectRisk, error)
	StalledProjects(filter ProjectReportFilter, today time.Time) ([]ProjectRisk, error)
	HighRiskProjects(filter ProjectReportFilter) ([]ProjectRisk, error)
}
