package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sysmayal-backend/internal/config"
	"sysmayal-backend/internal/database"
	"sysmayal-backend/internal/database/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dates in the seed files are offsets in days from the load date so that the
// expiry and review windows stay meaningful whenever the data is loaded.

type OrganizationData struct {
	OrganizationName string  `yaml:"organization_name"`
	OrganizationType string  `yaml:"organization_type"`
	Country          string  `yaml:"country"`
	Territory        string  `yaml:"territory"`
	Status           string  `yaml:"status"`
	RegulatoryStatus string  `yaml:"regulatory_status"`
	ContactPerson    string  `yaml:"contact_person"`
	EmailID          string  `yaml:"email_id"`
	Phone            string  `yaml:"phone"`
	Website          string  `yaml:"website"`
	City             string  `yaml:"city"`
	BusinessFocus    string  `yaml:"business_focus"`
	AnnualRevenue    float64 `yaml:"annual_revenue"`
	EmployeeCount    int     `yaml:"employee_count"`
	Currency         string  `yaml:"currency"`
	ParentName       string  `yaml:"parent_organization,omitempty"`
	AgreementExpiry  *int    `yaml:"agreement_expiry_in_days,omitempty"`
	LastAuditDate    *int    `yaml:"last_audit_in_days,omitempty"`
	NextAuditDue     *int    `yaml:"next_audit_in_days,omitempty"`
}

type ContactData struct {
	FirstName         string `yaml:"first_name"`
	LastName          string `yaml:"last_name"`
	OrganizationName  string `yaml:"organization_name"`
	Designation       string `yaml:"designation"`
	Department        string `yaml:"department"`
	RegulatoryRole    string `yaml:"regulatory_role"`
	Status            string `yaml:"status"`
	EmailID           string `yaml:"email_id"`
	Phone             string `yaml:"phone"`
	Country           string `yaml:"country"`
	PreferredLanguage string `yaml:"preferred_language"`
}

type ComplianceData struct {
	ProductName          string `yaml:"product_name"`
	ProductCode          string `yaml:"product_code"`
	ProductCategory      string `yaml:"product_category"`
	Country              string `yaml:"country"`
	Manufacturer         string `yaml:"manufacturer,omitempty"`
	ComplianceStatus     string `yaml:"compliance_status"`
	CompliancePercentage int    `yaml:"compliance_percentage"`
	RiskLevel            string `yaml:"risk_level"`
	ResponsiblePerson    string `yaml:"responsible_person"`
	RegulatoryAuthority  string `yaml:"regulatory_authority"`
	ExpiryDate           *int   `yaml:"expiry_in_days,omitempty"`
	NextReviewDate       *int   `yaml:"next_review_in_days,omitempty"`
}

type CertificateData struct {
	DocumentTitle      string  `yaml:"document_title"`
	DocumentType       string  `yaml:"document_type"`
	CertificateNumber  string  `yaml:"certificate_number"`
	IssuingAuthority   string  `yaml:"issuing_authority"`
	Country            string  `yaml:"country"`
	OrganizationName   string  `yaml:"organization_name,omitempty"`
	RelatedProduct     string  `yaml:"related_product"`
	Status             string  `yaml:"status"`
	VerificationStatus string  `yaml:"verification_status"`
	CertificationCost  float64 `yaml:"certification_cost"`
	Currency           string  `yaml:"currency"`
	IssueDate          *int    `yaml:"issue_in_days,omitempty"`
	ExpiryDate         *int    `yaml:"expiry_in_days,omitempty"`
	NextRenewalDue     *int    `yaml:"next_renewal_in_days,omitempty"`
}

type PlanData struct {
	PlanTitle            string  `yaml:"plan_title"`
	TargetCountry        string  `yaml:"target_country"`
	Status               string  `yaml:"status"`
	Priority             string  `yaml:"priority"`
	CompletionPercentage int     `yaml:"completion_percentage"`
	CurrentPhase         string  `yaml:"current_phase"`
	MarketSize           float64 `yaml:"market_size"`
	EntryStrategy        string  `yaml:"entry_strategy"`
	TargetProducts       string  `yaml:"target_products"`
	InitialInvestment    float64 `yaml:"initial_investment"`
	Year1Revenue         float64 `yaml:"year_1_revenue"`
	Year2Revenue         float64 `yaml:"year_2_revenue"`
	Year3Revenue         float64 `yaml:"year_3_revenue"`
	ProjectManager       string  `yaml:"project_manager"`
	PlanDate             *int    `yaml:"plan_in_days,omitempty"`
	TargetLaunchDate     *int    `yaml:"target_launch_in_days,omitempty"`
}

type ResearchData struct {
	ResearchTitle            string `yaml:"research_title"`
	ResearchType             string `yaml:"research_type"`
	ResearchStatus           string `yaml:"research_status"`
	Country                  string `yaml:"country"`
	Region                   string `yaml:"region"`
	ProductCategory          string `yaml:"product_category"`
	ResearchLead             string `yaml:"research_lead"`
	MainCompetitors          string `yaml:"main_competitors"`
	Strengths                string `yaml:"strengths"`
	Weaknesses               string `yaml:"weaknesses"`
	Opportunities            string `yaml:"opportunities"`
	Threats                  string `yaml:"threats"`
	StrategicRecommendations string `yaml:"strategic_recommendations"`
	ReliabilityScore         int    `yaml:"reliability_score"`
	ResearchDate             *int   `yaml:"research_in_days,omitempty"`
}

type ProjectData struct {
	ProjectName          string  `yaml:"project_name"`
	ProjectType          string  `yaml:"project_type"`
	Status               string  `yaml:"status"`
	Priority             string  `yaml:"priority"`
	ProductCategory      string  `yaml:"product_category"`
	TargetCountries      string  `yaml:"target_countries"`
	ProjectDescription   string  `yaml:"project_description"`
	EstimatedInvestment  float64 `yaml:"estimated_investment"`
	CompletionPercentage int     `yaml:"completion_percentage"`
	CurrentPhase         string  `yaml:"current_phase"`
	ProjectManager       string  `yaml:"project_manager"`
	StartDate            *int    `yaml:"start_in_days,omitempty"`
	ExpectedCompletion   *int    `yaml:"expected_completion_in_days,omitempty"`
}

type RegulationData struct {
	CountryName         string `yaml:"country_name"`
	Region              string `yaml:"region"`
	RegulatoryAuthority string `yaml:"regulatory_authority"`
	AuthorityWebsite    string `yaml:"authority_website"`
	KeyRequirements     string `yaml:"key_requirements"`
	AloeClassification  string `yaml:"aloe_classification"`
	TypicalTimeline     string `yaml:"typical_timeline"`
	VerificationStatus  string `yaml:"verification_status"`
	DataSource          string `yaml:"data_source"`
	NextReviewDate      *int   `yaml:"next_review_in_days,omitempty"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type ContactsFile struct {
	Contacts []ContactData `yaml:"contacts"`
}

type ComplianceFile struct {
	Records []ComplianceData `yaml:"product_compliance"`
}

type CertificatesFile struct {
	Certificates []CertificateData `yaml:"certificates"`
}

type PlansFile struct {
	Plans []PlanData `yaml:"market_entry_plans"`
}

type ResearchFile struct {
	Studies []ResearchData `yaml:"market_research"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"development_projects"`
}

type RegulationsFile struct {
	Regulations []RegulationData `yaml:"country_regulations"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data", models.Today()); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// seeder carries the load date and the organizations resolved so far
type seeder struct {
	db    *gorm.DB
	today models.Date
	orgs  map[string]*models.Organization
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string, today models.Date) error {
	s := &seeder{db: db, today: today, orgs: make(map[string]*models.Organization)}

	var organizations OrganizationsFile
	if err := readYAMLFiles(dataDir, "organizations", &organizations, func(f *OrganizationsFile, into *OrganizationsFile) {
		into.Organizations = append(into.Organizations, f.Organizations...)
	}); err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	// Parents first so that children can reference them
	created := 0
	for pass := 0; pass < 2; pass++ {
		for _, data := range organizations.Organizations {
			if (pass == 0) != (data.ParentName == "") {
				continue
			}
			org, ok, err := s.createOrganization(data)
			if err != nil {
				return fmt.Errorf("failed to create organization %s: %w", data.OrganizationName, err)
			}
			s.orgs[data.OrganizationName] = org
			if ok {
				created++
			}
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", created, len(organizations.Organizations))

	var contacts ContactsFile
	if err := readYAMLFiles(dataDir, "contacts", &contacts, func(f *ContactsFile, into *ContactsFile) {
		into.Contacts = append(into.Contacts, f.Contacts...)
	}); err != nil {
		return fmt.Errorf("failed to load contacts: %w", err)
	}
	if err := seedAll(contacts.Contacts, s.createContact, "Contacts"); err != nil {
		return err
	}

	var compliance ComplianceFile
	if err := readYAMLFiles(dataDir, "compliance", &compliance, func(f *ComplianceFile, into *ComplianceFile) {
		into.Records = append(into.Records, f.Records...)
	}); err != nil {
		return fmt.Errorf("failed to load compliance records: %w", err)
	}
	if err := seedAll(compliance.Records, s.createCompliance, "Compliance records"); err != nil {
		return err
	}

	var certificates CertificatesFile
	if err := readYAMLFiles(dataDir, "certificates", &certificates, func(f *CertificatesFile, into *CertificatesFile) {
		into.Certificates = append(into.Certificates, f.Certificates...)
	}); err != nil {
		return fmt.Errorf("failed to load certificates: %w", err)
	}
	if err := seedAll(certificates.Certificates, s.createCertificate, "Certificates"); err != nil {
		return err
	}

	var plans PlansFile
	if err := readYAMLFiles(dataDir, "market_entry_plans", &plans, func(f *PlansFile, into *PlansFile) {
		into.Plans = append(into.Plans, f.Plans...)
	}); err != nil {
		return fmt.Errorf("failed to load market entry plans: %w", err)
	}
	if err := seedAll(plans.Plans, s.createPlan, "Market entry plans"); err != nil {
		return err
	}

	var research ResearchFile
	if err := readYAMLFiles(dataDir, "market_research", &research, func(f *ResearchFile, into *ResearchFile) {
		into.Studies = append(into.Studies, f.Studies...)
	}); err != nil {
		return fmt.Errorf("failed to load market research: %w", err)
	}
	if err := seedAll(research.Studies, s.createResearch, "Market research"); err != nil {
		return err
	}

	var projects ProjectsFile
	if err := readYAMLFiles(dataDir, "development_projects", &projects, func(f *ProjectsFile, into *ProjectsFile) {
		into.Projects = append(into.Projects, f.Projects...)
	}); err != nil {
		return fmt.Errorf("failed to load development projects: %w", err)
	}
	if err := seedAll(projects.Projects, s.createProject, "Development projects"); err != nil {
		return err
	}

	var regulations RegulationsFile
	if err := readYAMLFiles(dataDir, "regulations", &regulations, func(f *RegulationsFile, into *RegulationsFile) {
		into.Regulations = append(into.Regulations, f.Regulations...)
	}); err != nil {
		return fmt.Errorf("failed to load regulations: %w", err)
	}
	return seedAll(regulations.Regulations, s.createRegulation, "Country regulations")
}

// readYAMLFiles decodes every .yaml file under dataDir whose name contains key and merges it into dest
func readYAMLFiles[F any](dataDir, key string, dest *F, merge func(file *F, into *F)) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), key) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file F
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		merge(&file, dest)
		return nil
	})
}

func seedAll[T any](items []T, create func(T) (bool, error), label string) error {
	created := 0
	for i, item := range items {
		ok, err := create(item)
		if err != nil {
			return fmt.Errorf("failed to create %s entry %d: %w", strings.ToLower(label), i+1, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("📋 %s: %d created, %d total", label, created, len(items))
	return nil
}

// firstOrCreate looks the record up with the natural key query and creates it when missing
func firstOrCreate[M any](db *gorm.DB, record *M, query string, args ...interface{}) (bool, error) {
	var existing M
	err := db.Where(query, args...).First(&existing).Error
	if err == nil {
		*record = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query: %w", err)
	}
	if err := db.Create(record).Error; err != nil {
		return false, fmt.Errorf("failed to create: %w", err)
	}
	return true, nil
}

func (s *seeder) date(offset *int) *models.Date {
	if offset == nil {
		return nil
	}
	return models.DatePtr(s.today.AddDays(*offset))
}

func (s *seeder) createOrganization(data OrganizationData) (*models.Organization, bool, error) {
	org := models.Organization{
		OrganizationName: data.OrganizationName,
		OrganizationType: models.OrganizationType(data.OrganizationType),
		Country:          data.Country,
		Territory:        data.Territory,
		Status:           models.OrganizationStatus(data.Status),
		RegulatoryStatus: models.RegulatoryStatus(data.RegulatoryStatus),
		ContactPerson:    data.ContactPerson,
		EmailID:          data.EmailID,
		Phone:            data.Phone,
		Website:          data.Website,
		City:             data.City,
		BusinessFocus:    data.BusinessFocus,
		AnnualRevenue:    decimal.NewFromFloat(data.AnnualRevenue),
		EmployeeCount:    data.EmployeeCount,
		Currency:         data.Currency,
		AgreementExpiry:  s.date(data.AgreementExpiry),
		LastAuditDate:    s.date(data.LastAuditDate),
		NextAuditDue:     s.date(data.NextAuditDue),
	}
	if data.ParentName != "" {
		parent, ok := s.orgs[data.ParentName]
		if !ok {
			return nil, false, fmt.Errorf("parent organization %s not found", data.ParentName)
		}
		org.ParentOrganizationID = &parent.ID
	}

	created, err := firstOrCreate(s.db, &org, "organization_name = ? AND country = ?", data.OrganizationName, data.Country)
	if err != nil {
		return nil, false, err
	}
	return &org, created, nil
}

func (s *seeder) organizationID(name string) (*models.Organization, error) {
	org, ok := s.orgs[name]
	if !ok {
		return nil, fmt.Errorf("organization %s not found", name)
	}
	return org, nil
}

func (s *seeder) createContact(data ContactData) (bool, error) {
	org, err := s.organizationID(data.OrganizationName)
	if err != nil {
		return false, err
	}
	contact := models.Contact{
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		FullName:          strings.TrimSpace(data.FirstName + " " + data.LastName),
		OrganizationID:    org.ID,
		Designation:       data.Designation,
		Department:        data.Department,
		RegulatoryRole:    data.RegulatoryRole,
		Status:            data.Status,
		EmailID:           data.EmailID,
		Phone:             data.Phone,
		Country:           data.Country,
		PreferredLanguage: data.PreferredLanguage,
	}
	return firstOrCreate(s.db, &contact, "email_id = ?", data.EmailID)
}

func (s *seeder) createCompliance(data ComplianceData) (bool, error) {
	record := models.ProductCompliance{
		ProductName:          data.ProductName,
		ProductCode:          data.ProductCode,
		ProductCategory:      data.ProductCategory,
		Country:              data.Country,
		ComplianceStatus:     models.ComplianceStatus(data.ComplianceStatus),
		CompliancePercentage: data.CompliancePercentage,
		RiskLevel:            models.RiskLevel(data.RiskLevel),
		ResponsiblePerson:    data.ResponsiblePerson,
		RegulatoryAuthority:  data.RegulatoryAuthority,
		ExpiryDate:           s.date(data.ExpiryDate),
		NextReviewDate:       s.date(data.NextReviewDate),
	}
	if data.Manufacturer != "" {
		org, err := s.organizationID(data.Manufacturer)
		if err != nil {
			return false, err
		}
		record.ManufacturerID = &org.ID
	}
	return firstOrCreate(s.db, &record, "product_code = ? AND country = ?", data.ProductCode, data.Country)
}

func (s *seeder) createCertificate(data CertificateData) (bool, error) {
	cert := models.CertificationDocument{
		DocumentTitle:      data.DocumentTitle,
		DocumentType:       data.DocumentType,
		CertificateNumber:  data.CertificateNumber,
		IssuingAuthority:   data.IssuingAuthority,
		Country:            data.Country,
		RelatedProduct:     data.RelatedProduct,
		Status:             models.CertificateStatus(data.Status),
		VerificationStatus: models.VerificationStatus(data.VerificationStatus),
		CertificationCost:  decimal.NewFromFloat(data.CertificationCost),
		Currency:           data.Currency,
		IssueDate:          s.date(data.IssueDate),
		ExpiryDate:         s.date(data.ExpiryDate),
		NextRenewalDue:     s.date(data.NextRenewalDue),
	}
	if data.OrganizationName != "" {
		org, err := s.organizationID(data.OrganizationName)
		if err != nil {
			return false, err
		}
		cert.OrganizationID = &org.ID
	}
	return firstOrCreate(s.db, &cert, "certificate_number = ?", data.CertificateNumber)
}

func (s *seeder) createPlan(data PlanData) (bool, error) {
	plan := models.MarketEntryPlan{
		PlanTitle:            data.PlanTitle,
		TargetCountry:        data.TargetCountry,
		Status:               models.PlanStatus(data.Status),
		Priority:             models.Priority(data.Priority),
		CompletionPercentage: data.CompletionPercentage,
		CurrentPhase:         data.CurrentPhase,
		MarketSize:           decimal.NewFromFloat(data.MarketSize),
		EntryStrategy:        data.EntryStrategy,
		TargetProducts:       data.TargetProducts,
		InitialInvestment:    decimal.NewFromFloat(data.InitialInvestment),
		Year1Revenue:         decimal.NewFromFloat(data.Year1Revenue),
		Year2Revenue:         decimal.NewFromFloat(data.Year2Revenue),
		Year3Revenue:         decimal.NewFromFloat(data.Year3Revenue),
		ProjectManager:       data.ProjectManager,
		PlanDate:             s.date(data.PlanDate),
		TargetLaunchDate:     s.date(data.TargetLaunchDate),
	}
	return firstOrCreate(s.db, &plan, "plan_title = ? AND target_country = ?", data.PlanTitle, data.TargetCountry)
}

func (s *seeder) createResearch(data ResearchData) (bool, error) {
	study := models.MarketResearch{
		ResearchTitle:            data.ResearchTitle,
		ResearchType:             data.ResearchType,
		ResearchStatus:           models.ResearchStatus(data.ResearchStatus),
		Country:                  data.Country,
		Region:                   data.Region,
		ProductCategory:          data.ProductCategory,
		ResearchLead:             data.ResearchLead,
		MainCompetitors:          data.MainCompetitors,
		Strengths:                data.Strengths,
		Weaknesses:               data.Weaknesses,
		Opportunities:            data.Opportunities,
		Threats:                  data.Threats,
		StrategicRecommendations: data.StrategicRecommendations,
		ReliabilityScore:         data.ReliabilityScore,
		ResearchDate:             s.date(data.ResearchDate),
	}
	return firstOrCreate(s.db, &study, "research_title = ?", data.ResearchTitle)
}

func (s *seeder) createProject(data ProjectData) (bool, error) {
	project := models.DevelopmentProject{
		ProjectName:          data.ProjectName,
		ProjectType:          data.ProjectType,
		Status:               models.ProjectStatus(data.Status),
		Priority:             models.Priority(data.Priority),
		ProductCategory:      data.ProductCategory,
		TargetCountries:      data.TargetCountries,
		ProjectDescription:   data.ProjectDescription,
		EstimatedInvestment:  decimal.NewFromFloat(data.EstimatedInvestment),
		CompletionPercentage: data.CompletionPercentage,
		CurrentPhase:         data.CurrentPhase,
		ProjectManager:       data.ProjectManager,
		StartDate:            s.date(data.StartDate),
		ExpectedCompletion:   s.date(data.ExpectedCompletion),
	}
	return firstOrCreate(s.db, &project, "project_name = ?", data.ProjectName)
}

func (s *seeder) createRegulation(data RegulationData) (bool, error) {
	regulation := models.CountryRegulation{
		CountryName:         data.CountryName,
		Region:              data.Region,
		RegulatoryAuthority: data.RegulatoryAuthority,
		AuthorityWebsite:    data.AuthorityWebsite,
		KeyRequirements:     data.KeyRequirements,
		AloeClassification:  data.AloeClassification,
		TypicalTimeline:     data.TypicalTimeline,
		VerificationStatus:  models.RegulationVerification(data.VerificationStatus),
		DataSource:          data.DataSource,
		LastUpdated:         models.DatePtr(s.today),
		NextReviewDate:      s.date(data.NextReviewDate),
	}
	return firstOrCreate(s.db, &regulation, "country_name = ?", data.CountryName)
}
