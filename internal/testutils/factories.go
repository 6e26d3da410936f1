package testutils

import (
	"fmt"
	"time"

	"sysmayal-backend/internal/database/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var fake = gofakeit.New(0)

func newBase() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: "test.user",
		UpdatedBy: "test.user",
	}
}

// unique appends a short random suffix so rows never collide on unique indexes
func unique(s string) string {
	return fmt.Sprintf("%s %s", s, uuid.NewString()[:8])
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel:        newBase(),
		OrganizationName: unique(fake.Company()),
		OrganizationType: models.OrganizationTypeDistributor,
		Country:          "Germany",
		Territory:        "DACH",
		Status:           models.OrganizationStatusActive,
		RegulatoryStatus: models.RegulatoryStatusPendingReview,
		ContactPerson:    fake.Name(),
		EmailID:          fake.Email(),
		Phone:            fake.Phone(),
		City:             fake.City(),
		AnnualRevenue:    decimal.NewFromInt(int64(fake.Number(100000, 5000000))),
		EmployeeCount:    fake.Number(5, 500),
		EstablishedYear:  fake.Number(1980, 2020),
		Currency:         "EUR",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.OrganizationName = name
	return org
}

// WithCountry sets a custom country for the organization
func (f *OrganizationFactory) WithCountry(country string) *models.Organization {
	org := f.Create()
	org.Country = country
	return org
}

// WithType sets a custom organization type
func (f *OrganizationFactory) WithType(t models.OrganizationType) *models.Organization {
	org := f.Create()
	org.OrganizationType = t
	return org
}

// WithParent links the organization to a parent organization
func (f *OrganizationFactory) WithParent(parentID uuid.UUID) *models.Organization {
	org := f.Create()
	org.ParentOrganizationID = &parentID
	return org
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// NewContactFactory creates a new ContactFactory
func NewContactFactory() *ContactFactory {
	return &ContactFactory{}
}

// Create creates a test Contact with default values
func (f *ContactFactory) Create() *models.Contact {
	first, last := fake.FirstName(), fake.LastName()
	return &models.Contact{
		BaseModel:               newBase(),
		FirstName:               first,
		LastName:                last,
		FullName:                first + " " + last,
		OrganizationID:          uuid.New(),
		Designation:             fake.JobTitle(),
		RegulatoryRole:          "Regulatory Affairs Manager",
		Status:                  "Active",
		EmailID:                 fake.Email(),
		Phone:                   fake.Phone(),
		Country:                 "Germany",
		CommunicationPreference: "Email",
		ContactFrequency:        "Monthly",
	}
}

// WithOrganization sets the organization ID for the contact
func (f *ContactFactory) WithOrganization(orgID uuid.UUID) *models.Contact {
	contact := f.Create()
	contact.OrganizationID = orgID
	return contact
}

// WithEmail sets a custom email for the contact
func (f *ContactFactory) WithEmail(email string) *models.Contact {
	contact := f.Create()
	contact.EmailID = email
	return contact
}

// ProductComplianceFactory provides methods to create test ProductCompliance data
type ProductComplianceFactory struct{}

// NewProductComplianceFactory creates a new ProductComplianceFactory
func NewProductComplianceFactory() *ProductComplianceFactory {
	return &ProductComplianceFactory{}
}

// Create creates a test ProductCompliance with default values
func (f *ProductComplianceFactory) Create() *models.ProductCompliance {
	today := models.Today()
	return &models.ProductCompliance{
		BaseModel:            newBase(),
		ProductName:          unique("Aloe Vera Gel"),
		ProductCode:          "AVG-" + fake.DigitN(4),
		ProductCategory:      "Cosmetics",
		Country:              "Germany",
		ComplianceStatus:     models.ComplianceStatusPendingReview,
		CompliancePercentage: 40,
		RiskLevel:            models.RiskLevelMedium,
		ApprovalStatus:       "Not Submitted",
		TestingStatus:        "Not Started",
		ExpiryDate:           models.DatePtr(today.AddDays(365)),
		ResponsiblePerson:    fake.Name(),
		ContactEmail:         fake.Email(),
	}
}

// WithCountry sets a custom country for the compliance record
func (f *ProductComplianceFactory) WithCountry(country string) *models.ProductCompliance {
	record := f.Create()
	record.Country = country
	return record
}

// WithStatus sets a custom compliance status
func (f *ProductComplianceFactory) WithStatus(status models.ComplianceStatus) *models.ProductCompliance {
	record := f.Create()
	record.ComplianceStatus = status
	return record
}

// WithExpiry sets a custom expiry date
func (f *ProductComplianceFactory) WithExpiry(d models.Date) *models.ProductCompliance {
	record := f.Create()
	record.ExpiryDate = models.DatePtr(d)
	return record
}

// CertificateFactory provides methods to create test CertificationDocument data
type CertificateFactory struct{}

// NewCertificateFactory creates a new CertificateFactory
func NewCertificateFactory() *CertificateFactory {
	return &CertificateFactory{}
}

// Create creates a test CertificationDocument with default values
func (f *CertificateFactory) Create() *models.CertificationDocument {
	today := models.Today()
	return &models.CertificationDocument{
		BaseModel:          newBase(),
		DocumentTitle:      unique("GMP Certificate"),
		DocumentType:       "GMP Certificate",
		CertificateNumber:  "GMP-" + fake.DigitN(6),
		IssuingAuthority:   "BfArM",
		Country:            "Germany",
		IssueDate:          models.DatePtr(today.AddDays(-200)),
		ExpiryDate:         models.DatePtr(today.AddDays(165)),
		Status:             models.CertificateStatusValid,
		AccessLevel:        "Internal",
		VerificationStatus: models.VerificationStatusPending,
		PaymentStatus:      "Paid",
		ReviewFrequency:    "Annual",
		CertificationCost:  decimal.NewFromInt(2500),
		RenewalCost:        decimal.NewFromInt(1200),
		Currency:           "EUR",
		PrimaryContact:     fake.Name(),
		ContactEmail:       fake.Email(),
	}
}

// WithExpiry sets a custom expiry date for the certificate
func (f *CertificateFactory) WithExpiry(d models.Date) *models.CertificationDocument {
	cert := f.Create()
	cert.ExpiryDate = models.DatePtr(d)
	return cert
}

// WithStatus sets a custom certificate status
func (f *CertificateFactory) WithStatus(status models.CertificateStatus) *models.CertificationDocument {
	cert := f.Create()
	cert.Status = status
	return cert
}

// MarketEntryPlanFactory provides methods to create test MarketEntryPlan data
type MarketEntryPlanFactory struct{}

// NewMarketEntryPlanFactory creates a new MarketEntryPlanFactory
func NewMarketEntryPlanFactory() *MarketEntryPlanFactory {
	return &MarketEntryPlanFactory{}
}

// Create creates a test MarketEntryPlan with default values
func (f *MarketEntryPlanFactory) Create() *models.MarketEntryPlan {
	today := models.Today()
	return &models.MarketEntryPlan{
		BaseModel:            newBase(),
		PlanTitle:            unique("Market Entry"),
		TargetCountry:        "France",
		Status:               models.PlanStatusPlanning,
		Priority:             models.PriorityMedium,
		PlanDate:             models.DatePtr(today),
		TargetLaunchDate:     models.DatePtr(today.AddDays(180)),
		CompletionPercentage: 10,
		MarketSize:           decimal.NewFromInt(1500000),
		MarketPotential:      "Medium",
		EntryStrategy:        "Distributor Partnership",
		InitialInvestment:    decimal.NewFromInt(200000),
		OngoingCosts:         decimal.NewFromInt(50000),
		RegulatoryCosts:      decimal.NewFromInt(25000),
		Year1Revenue:         decimal.NewFromInt(150000),
		Year2Revenue:         decimal.NewFromInt(300000),
		Year3Revenue:         decimal.NewFromInt(450000),
		ProjectManager:       fake.Name(),
	}
}

// WithCountry sets a custom target country for the plan
func (f *MarketEntryPlanFactory) WithCountry(country string) *models.MarketEntryPlan {
	plan := f.Create()
	plan.TargetCountry = country
	return plan
}

// WithStatus sets a custom plan status
func (f *MarketEntryPlanFactory) WithStatus(status models.PlanStatus) *models.MarketEntryPlan {
	plan := f.Create()
	plan.Status = status
	return plan
}

// MarketResearchFactory provides methods to create test MarketResearch data
type MarketResearchFactory struct{}

// NewMarketResearchFactory creates a new MarketResearchFactory
func NewMarketResearchFactory() *MarketResearchFactory {
	return &MarketResearchFactory{}
}

// Create creates a test MarketResearch with default values
func (f *MarketResearchFactory) Create() *models.MarketResearch {
	return &models.MarketResearch{
		BaseModel:            newBase(),
		ResearchTitle:        unique("Aloe Beverage Study"),
		ResearchType:         "Market Analysis",
		ResearchStatus:       models.ResearchStatusInProgress,
		Country:              "France",
		Region:               "Europe",
		ProductCategory:      "Beverages",
		ResearchDate:         models.DatePtr(models.Today()),
		ResearchLead:         fake.Name(),
		Priority:             models.PriorityMedium,
		CompletionPercentage: 50,
		MarketGrowthRate:     6.5,
		MarketValue:          decimal.NewFromInt(2000000),
		MainCompetitors:      "Forever Living\nLily of the Desert",
		ResearchBudget:       decimal.NewFromInt(15000),
		ReliabilityScore:     7,
	}
}

// WithCountry sets a custom country for the research
func (f *MarketResearchFactory) WithCountry(country string) *models.MarketResearch {
	research := f.Create()
	research.Country = country
	return research
}

// DevelopmentProjectFactory provides methods to create test DevelopmentProject data
type DevelopmentProjectFactory struct{}

// NewDevelopmentProjectFactory creates a new DevelopmentProjectFactory
func NewDevelopmentProjectFactory() *DevelopmentProjectFactory {
	return &DevelopmentProjectFactory{}
}

// Create creates a test DevelopmentProject with default values
func (f *DevelopmentProjectFactory) Create() *models.DevelopmentProject {
	today := models.Today()
	return &models.DevelopmentProject{
		BaseModel:            newBase(),
		ProjectName:          unique("Aloe Serum"),
		ProjectType:          "New Product Development",
		Status:               models.ProjectStatusInProgress,
		Priority:             models.PriorityHigh,
		StartDate:            models.DatePtr(today.AddDays(-30)),
		ExpectedCompletion:   models.DatePtr(today.AddDays(120)),
		ProductCategory:      "Cosmetics",
		EstimatedInvestment:  decimal.NewFromInt(80000),
		CompletionPercentage: 25,
		CurrentPhase:         "Formulation",
		ComplianceStatus:     "In Progress",
		ProjectManager:       fake.Name(),
		RAndDLead:            fake.Name(),
		LastUpdateDate:       models.DatePtr(today),
	}
}

// WithStatus sets a custom project status
func (f *DevelopmentProjectFactory) WithStatus(status models.ProjectStatus) *models.DevelopmentProject {
	project := f.Create()
	project.Status = status
	return project
}

// WithExpectedCompletion sets a custom expected completion date
func (f *DevelopmentProjectFactory) WithExpectedCompletion(d models.Date) *models.DevelopmentProject {
	project := f.Create()
	project.ExpectedCompletion = models.DatePtr(d)
	return project
}

// CountryRegulationFactory provides methods to create test CountryRegulation data
type CountryRegulationFactory struct{}

// NewCountryRegulationFactory creates a new CountryRegulationFactory
func NewCountryRegulationFactory() *CountryRegulationFactory {
	return &CountryRegulationFactory{}
}

// Create creates a test CountryRegulation with default values
func (f *CountryRegulationFactory) Create() *models.CountryRegulation {
	return &models.CountryRegulation{
		BaseModel:           newBase(),
		CountryName:         unique(fake.Country()),
		Region:              "Europe",
		RegulatoryAuthority: "National Health Authority",
		KeyRequirements:     "Product registration\nLabelling in local language",
		AloeClassification:  "Cosmetic",
		TypicalTimeline:     "3-6 months",
		LastUpdated:         models.DatePtr(models.Today()),
		VerificationStatus:  models.RegulationPendingVerification,
		DataSource:          "Manual",
	}
}

// WithCountry sets a custom country name for the regulation
func (f *CountryRegulationFactory) WithCountry(country string) *models.CountryRegulation {
	regulation := f.Create()
	regulation.CountryName = country
	return regulation
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization       *OrganizationFactory
	Contact            *ContactFactory
	ProductCompliance  *ProductComplianceFactory
	Certificate        *CertificateFactory
	MarketEntryPlan    *MarketEntryPlanFactory
	MarketResearch     *MarketResearchFactory
	DevelopmentProject *DevelopmentProjectFactory
	CountryRegulation  *CountryRegulationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:       NewOrganizationFactory(),
		Contact:            NewContactFactory(),
		ProductCompliance:  NewProductComplianceFactory(),
		Certificate:        NewCertificateFactory(),
		MarketEntryPlan:    NewMarketEntryPlanFactory(),
		MarketResearch:     NewMarketResearchFactory(),
		DevelopmentProject: NewDevelopmentProjectFactory(),
		CountryRegulation:  NewCountryRegulationFactory(),
	}
}

// CreateDistributionNetwork creates an organization with one contact and one compliance record manufactured by it
func (fs *FactorySet) CreateDistributionNetwork() (*models.Organization, *models.Contact, *models.ProductCompliance) {
	org := fs.Organization.WithType(models.OrganizationTypeManufacturer)
	contact := fs.Contact.WithOrganization(org.ID)
	contact.Country = org.Country
	record := fs.ProductCompliance.WithCountry(org.Country)
	record.ManufacturerID = &org.ID
	return org, contact, record
}
