package service

import (
	"sysmayal-backend/internal/notification"
	"sysmayal-backend/internal/repository"
	"sysmayal-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Registry holds one instance of every domain service, sharing repositories,
// the dashboard cache and the notifier
type Registry struct {
	Organizations       *OrganizationService
	Contacts            *ContactService
	ProductCompliance   *ProductComplianceService
	Certificates        *CertificateService
	MarketEntryPlans    *MarketEntryPlanService
	MarketResearch      *MarketResearchService
	DevelopmentProjects *DevelopmentProjectService
	Regulations         *CountryRegulationService
	Reports             *ReportService

	// OrganizationRepo resolves organizations by name for the importer
	OrganizationRepo *repository.OrganizationRepository
	Validator        *validator.Validate
}

// NewRegistry wires the repositories and services on top of db.
// dashboards may be nil to disable caching.
func NewRegistry(db *gorm.DB, store storage.ObjectStore, mailer notification.Mailer, dashboards *DashboardCache) *Registry {
	validate := validator.New()

	organizationRepo := repository.NewOrganizationRepository(db)
	accountRepo := repository.NewPartnerAccountRepository(db)
	contactRepo := repository.NewContactRepository(db)
	complianceRepo := repository.NewProductComplianceRepository(db)
	certificateRepo := repository.NewCertificateRepository(db)
	planRepo := repository.NewMarketEntryPlanRepository(db)
	researchRepo := repository.NewMarketResearchRepository(db)
	projectRepo := repository.NewDevelopmentProjectRepository(db)
	regulationRepo := repository.NewCountryRegulationRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	communicationRepo := repository.NewCommunicationRepository(db)
	reportRepo := repository.NewReportRepository(db)

	notifier := notification.NewNotifier(mailer, communicationRepo)

	return &Registry{
		Organizations:       NewOrganizationService(organizationRepo, accountRepo, regulationRepo, notifier, dashboards, validate),
		Contacts:            NewContactService(contactRepo, organizationRepo, regulationRepo, communicationRepo, notifier, dashboards, validate),
		ProductCompliance:   NewProductComplianceService(complianceRepo, organizationRepo, regulationRepo, commentRepo, notifier, dashboards, validate),
		Certificates:        NewCertificateService(certificateRepo, organizationRepo, store, notifier, dashboards, validate),
		MarketEntryPlans:    NewMarketEntryPlanService(planRepo, regulationRepo, dashboards, validate),
		MarketResearch:      NewMarketResearchService(researchRepo, projectRepo, commentRepo, dashboards, validate),
		DevelopmentProjects: NewDevelopmentProjectService(projectRepo, commentRepo, dashboards, validate),
		Regulations:         NewCountryRegulationService(regulationRepo, organizationRepo, complianceRepo, dashboards, validate),
		Reports:             NewReportService(reportRepo, notifier, dashboards),
		OrganizationRepo:    organizationRepo,
		Validator:           validate,
	}
}
