package routes

import (
	"net/http"

	"sysmayal-backend/internal/api/handlers"
	"sysmayal-backend/internal/api/middleware"
	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/config"
	"sysmayal-backend/internal/importer"
	"sysmayal-backend/internal/scheduler"
	"sysmayal-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the shared components the router is built from
type Dependencies struct {
	DB       *gorm.DB
	Services *service.Registry
	Auth     *auth.AuthService
	Importer importer.ImporterInterface
	Tasks    scheduler.TaskRunnerInterface

	// HealthChecks are reported next to the database by /health
	HealthChecks map[string]handlers.Pinger
	Version      string
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, deps *Dependencies) *gin.Engine {
	router := gin.New()

	if cfg.TracingEnabled {
		router.Use(middleware.Tracing(cfg.ServiceName))
	}
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	svc := deps.Services
	organizationHandler := handlers.NewOrganizationHandler(svc.Organizations)
	contactHandler := handlers.NewContactHandler(svc.Contacts)
	complianceHandler := handlers.NewProductComplianceHandler(svc.ProductCompliance)
	certificateHandler := handlers.NewCertificateHandler(svc.Certificates)
	planHandler := handlers.NewMarketEntryPlanHandler(svc.MarketEntryPlans)
	researchHandler := handlers.NewMarketResearchHandler(svc.MarketResearch)
	projectHandler := handlers.NewDevelopmentProjectHandler(svc.DevelopmentProjects)
	regulationHandler := handlers.NewCountryRegulationHandler(svc.Regulations)
	reportHandler := handlers.NewReportHandler(svc.Reports, cfg.ReportRecipients)
	importHandler := handlers.NewImportHandler(deps.Importer)
	taskHandler := handlers.NewTaskHandler(deps.Tasks)

	registerHealthRoutes(router, deps)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authHandler := auth.NewAuthHandler(deps.Auth)
	authMiddleware := auth.NewAuthMiddleware(deps.Auth)
	router.POST("/api/auth/validate", authHandler.ValidateToken)

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		organizations := v1.Group("/organizations")
		{
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.GET("/check-duplicate", organizationHandler.CheckDuplicate)
			organizations.GET("/by-country/:country", organizationHandler.GetOrganizationsByCountry)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
			organizations.GET("/:id/regulations", organizationHandler.GetCountryRegulations)
			organizations.GET("/:id/compliance-checklist", organizationHandler.GetComplianceChecklist)
			organizations.GET("/:id/hierarchy", organizationHandler.GetHierarchy)
		}

		contacts := v1.Group("/contacts")
		{
			contacts.POST("", contactHandler.CreateContact)
			contacts.GET("", contactHandler.ListContacts)
			contacts.GET("/export", contactHandler.ExportContacts)
			contacts.GET("/by-role", contactHandler.GetContactsByRegulatoryRole)
			contacts.GET("/by-organization/:orgId", contactHandler.GetContactsByOrganization)
			contacts.POST("/bulk-status", contactHandler.BulkUpdateStatus)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
			contacts.GET("/:id/organization", contactHandler.GetOrganizationDetails)
			contacts.GET("/:id/communications", contactHandler.GetCommunicationHistory)
			contacts.POST("/:id/contacted", contactHandler.UpdateLastContacted)
			contacts.GET("/:id/regulatory-requirements", contactHandler.GetRegulatoryRequirements)
		}

		compliance := v1.Group("/product-compliance")
		{
			compliance.POST("", complianceHandler.CreateRecord)
			compliance.GET("", complianceHandler.ListRecords)
			compliance.GET("/dashboard", complianceHandler.GetDashboard)
			compliance.GET("/report", complianceHandler.GetReport)
			compliance.GET("/by-country/:country", complianceHandler.GetByCountry)
			compliance.POST("/bulk-status", complianceHandler.BulkUpdateStatus)
			compliance.GET("/:id", complianceHandler.GetRecord)
			compliance.PUT("/:id", complianceHandler.UpdateRecord)
			compliance.DELETE("/:id", complianceHandler.DeleteRecord)
			compliance.GET("/:id/summary", complianceHandler.GetSummary)
			compliance.GET("/:id/comments", complianceHandler.GetComments)
			compliance.PUT("/:id/status", complianceHandler.UpdateStatus)
		}

		certificates := v1.Group("/certificates")
		{
			certificates.POST("", certificateHandler.CreateCertificate)
			certificates.GET("", certificateHandler.ListCertificates)
			certificates.GET("/dashboard", certificateHandler.GetDashboard)
			certificates.GET("/report", certificateHandler.GetReport)
			certificates.GET("/expiring", certificateHandler.GetExpiring)
			certificates.POST("/bulk-verify", certificateHandler.BulkVerify)
			certificates.GET("/:id", certificateHandler.GetCertificate)
			certificates.PUT("/:id", certificateHandler.UpdateCertificate)
			certificates.DELETE("/:id", certificateHandler.DeleteCertificate)
			certificates.POST("/:id/file", certificateHandler.UploadDocument)
			certificates.GET("/:id/file", certificateHandler.DownloadDocument)
			certificates.POST("/:id/verify", certificateHandler.VerifyCertificate)
			certificates.POST("/:id/renew", certificateHandler.RenewCertificate)
			certificates.GET("/:id/timeline", certificateHandler.GetTimeline)
		}

		plans := v1.Group("/market-entry-plans")
		{
			plans.POST("", planHandler.CreatePlan)
			plans.GET("", planHandler.ListPlans)
			plans.GET("/dashboard", planHandler.GetDashboard)
			plans.GET("/opportunities", planHandler.GetOpportunities)
			plans.GET("/report", planHandler.GetReport)
			plans.GET("/:id", planHandler.GetPlan)
			plans.PUT("/:id", planHandler.UpdatePlan)
			plans.DELETE("/:id", planHandler.DeletePlan)
			plans.GET("/:id/analysis", planHandler.GetAnalysisSummary)
			plans.POST("/:id/milestones", planHandler.UpdateMilestone)
			plans.GET("/:id/executive-summary", planHandler.GetExecutiveSummary)
		}

		research := v1.Group("/market-research")
		{
			research.POST("", researchHandler.CreateStudy)
			research.GET("", researchHandler.ListStudies)
			research.GET("/dashboard", researchHandler.GetDashboard)
			research.GET("/landscape", researchHandler.GetLandscapeReport)
			research.GET("/intelligence/:country", researchHandler.GetIntelligence)
			research.GET("/:id", researchHandler.GetStudy)
			research.PUT("/:id", researchHandler.UpdateStudy)
			research.DELETE("/:id", researchHandler.DeleteStudy)
			research.GET("/:id/competitive-summary", researchHandler.GetCompetitiveSummary)
			research.GET("/:id/report", researchHandler.GenerateReport)
		}

		projects := v1.Group("/rd-projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/dashboard", projectHandler.GetDashboard)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/summary", projectHandler.GetSummary)
			projects.GET("/:id/comments", projectHandler.GetComments)
		}

		regulations := v1.Group("/regulations")
		{
			regulations.POST("", regulationHandler.CreateRegulation)
			regulations.GET("", regulationHandler.ListRegulations)
			regulations.POST("/import", regulationHandler.ImportRegulations)
			regulations.GET("/by-region/:region", regulationHandler.GetByRegion)
			regulations.GET("/:id", regulationHandler.GetRegulation)
			regulations.PUT("/:id", regulationHandler.UpdateRegulation)
			regulations.DELETE("/:id", regulationHandler.DeleteRegulation)
			regulations.GET("/:id/compliance-summary", regulationHandler.GetComplianceSummary)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/compliance", reportHandler.ComplianceStatus)
			reports.GET("/compliance/filters", reportHandler.GetFilters)
			reports.POST("/compliance/digest", reportHandler.SendComplianceDigest)
			reports.GET("/distribution", reportHandler.Distribution)
			reports.GET("/distribution/summary", reportHandler.DistributionSummary)
			reports.GET("/distribution/performance", reportHandler.DistributionPerformance)
			reports.GET("/distribution/contacts", reportHandler.ContactAnalytics)
			reports.GET("/projects", reportHandler.ProjectStatus)
			reports.GET("/projects/summary", reportHandler.PortfolioSummary)
			reports.GET("/projects/performance", reportHandler.ProjectPerformance)
			reports.GET("/projects/risks", reportHandler.ProjectRisks)
		}

		imports := v1.Group("/imports")
		{
			imports.GET("/templates/:doctype", importHandler.GetTemplate)
			imports.POST("/regulations", importHandler.ImportRegulations)
			imports.POST("/:doctype", importHandler.ImportRecords)
			imports.POST("/:doctype/validate", importHandler.ValidateFile)
		}

		tasks := v1.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("/:name/run", taskHandler.RunTask)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

func registerHealthRoutes(router *gin.Engine, deps *Dependencies) {
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Version)
	for name, check := range deps.HealthChecks {
		healthHandler.AddCheck(name, check)
	}
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	registerHealthRoutes(router, &Dependencies{DB: db})
	return router
}
