package importer

import (
	"context"
	"strings"
	"testing"

	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type fakeOrganizations struct {
	existing map[string]bool
	created  []*service.OrganizationRequest
}

func (f *fakeOrganizations) Create(ctx context.Context, req *service.OrganizationRequest) (*service.OrganizationResponse, error) {
	key := req.OrganizationName + "|" + req.Country
	if f.existing[key] {
		return nil, apperrors.NewOrganizationExistsError(req.OrganizationName, req.Country)
	}
	f.existing[key] = true
	f.created = append(f.created, req)
	return &service.OrganizationResponse{Organization: &models.Organization{OrganizationName: req.OrganizationName}}, nil
}

type fakeContacts struct {
	emails  map[string]bool
	created []*service.ContactRequest
}

func (f *fakeContacts) Create(ctx context.Context, req *service.ContactRequest) (*service.ContactResponse, error) {
	key := req.OrganizationID.String() + "|" + req.EmailID
	if f.emails[key] {
		return nil, apperrors.ErrContactExists
	}
	f.emails[key] = true
	f.created = append(f.created, req)
	return &service.ContactResponse{Contact: &models.Contact{EmailID: req.EmailID}}, nil
}

type fakeLookup struct {
	orgs []models.Organization
}

func (f *fakeLookup) GetByNameAndCountry(name, country string) (*models.Organization, error) {
	for i := range f.orgs {
		if f.orgs[i].OrganizationName == name && f.orgs[i].Country == country {
			return &f.orgs[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLookup) FindByName(name string) ([]models.Organization, error) {
	var out []models.Organization
	for _, org := range f.orgs {
		if org.OrganizationName == name {
			out = append(out, org)
		}
	}
	return out, nil
}

type fakeRegulations struct {
	doc *service.RegulationImport
}

func (f *fakeRegulations) ImportFromJSON(ctx context.Context, doc *service.RegulationImport) (*service.ImportResult, error) {
	f.doc = doc
	return &service.ImportResult{Created: 1, Updated: 1, Total: 2}, nil
}

type ImporterTestSuite struct {
	suite.Suite
	orgs        *fakeOrganizations
	contacts    *fakeContacts
	regulations *fakeRegulations
	aloeVida    *models.Organization
	lookup      *fakeLookup
	importer    *Importer
}

func (suite *ImporterTestSuite) SetupTest() {
	suite.orgs = &fakeOrganizations{existing: map[string]bool{"Aloe Vida|Brazil": true}}
	suite.contacts = &fakeContacts{emails: map[string]bool{}}
	suite.regulations = &fakeRegulations{}
	suite.aloeVida = &models.Organization{OrganizationName: "Aloe Vida", Country: "Brazil"}
	suite.aloeVida.ID = uuid.New()
	suite.lookup = &fakeLookup{orgs: []models.Organization{*suite.aloeVida}}

	suite.importer = New(
		suite.orgs,
		suite.contacts,
		suite.lookup,
		suite.regulations,
		validator.New(),
	)
}

func (suite *ImporterTestSuite) TestImportOrganizations() {
	input := strings.Join([]string{
		"organization_name,country,email_id,annual_revenue,status",
		"Green Leaf,Mexico,sales@greenleaf.mx,250000.50,",
		"Aloe Vida,Brazil,,,",
		",Peru,,,",
		"Desert Gold,,,,",
		"Sun Aloe,Chile,not-an-email,,",
		"Cactus Co,Chile,,lots,",
	}, "\n")

	result, err := suite.importer.Import(context.Background(), DoctypeOrganizations, strings.NewReader(input), nil)

	suite.Require().NoError(err)
	suite.Equal("Distribution Organizations", result.Doctype)
	suite.Equal(6, result.TotalRecords)
	suite.Equal(1, result.Imported)
	suite.Equal(1, result.Skipped)
	suite.Equal(4, result.Errors)

	suite.Require().Len(result.Warnings, 1)
	suite.Equal(RowWarning{Row: 2, Message: "Organization 'Aloe Vida' already exists in Brazil", Action: "Skipped"}, result.Warnings[0])

	messages := make([]string, 0, len(result.ErrorDetails))
	for _, e := range result.ErrorDetails {
		messages = append(messages, e.Error)
	}
	suite.Equal([]string{
		"Organization name is required",
		"Country is required",
		"Invalid email address: not-an-email",
		"Invalid annual revenue: lots",
	}, messages)
	suite.Equal(3, result.ErrorDetails[0].Row)
	suite.Equal("Peru", result.ErrorDetails[0].Data["country"])

	suite.Require().Len(suite.orgs.created, 1)
	created := suite.orgs.created[0]
	suite.Equal(models.OrganizationStatusActive, created.Status)
	suite.Equal(models.OrganizationTypeDistributor, created.OrganizationType)
	suite.Equal("250000.5", created.AnnualRevenue.String())
}

func (suite *ImporterTestSuite) TestImportContacts() {
	input := strings.Join([]string{
		"first_name,last_name,organization,email_id,years_experience",
		"Maria,Santos,Aloe Vida,maria@aloevida.com.br,8",
		"Maria,Santos,Aloe Vida,maria@aloevida.com.br,8",
		",Silva,Aloe Vida,silva@aloevida.com.br,",
		"Joao,,Aloe Vida,,",
		"Ana,,,ana@aloevida.com.br,",
		"Rita,,Aloe Vida,rita-at-aloevida,",
		"Luis,,Unknown Org,luis@unknown.com,",
	}, "\n")

	result, err := suite.importer.Import(context.Background(), DoctypeContacts, strings.NewReader(input), nil)

	suite.Require().NoError(err)
	suite.Equal("Distribution Contacts", result.Doctype)
	suite.Equal(7, result.TotalRecords)
	suite.Equal(1, result.Imported)
	suite.Equal(1, result.Skipped)
	suite.Equal("Contact with email 'maria@aloevida.com.br' already exists in organization", result.Warnings[0].Message)

	messages := make([]string, 0, len(result.ErrorDetails))
	for _, e := range result.ErrorDetails {
		messages = append(messages, e.Error)
	}
	suite.Equal([]string{
		"First name is required",
		"Email ID is required",
		"Organization is required",
		"Invalid email address: rita-at-aloevida",
		"Organization 'Unknown Org' does not exist",
	}, messages)

	suite.Require().Len(suite.contacts.created, 1)
	suite.Equal(suite.aloeVida.ID, suite.contacts.created[0].OrganizationID)
	suite.Equal(8, suite.contacts.created[0].YearsExperience)
	suite.Equal("Active", suite.contacts.created[0].Status)
}

func (suite *ImporterTestSuite) TestImportContactsSharedOrganizationName() {
	portugal := models.Organization{OrganizationName: "Aloe Vida", Country: "Portugal"}
	portugal.ID = uuid.New()
	suite.lookup.orgs = append(suite.lookup.orgs, portugal)

	input := strings.Join([]string{
		"first_name,organization,email_id,country",
		"Maria,Aloe Vida,maria@aloevida.com.br,",
		"Ines,Aloe Vida,ines@aloevida.pt,Portugal",
		"Pablo,Aloe Vida,pablo@aloevida.es,Spain",
	}, "\n")

	result, err := suite.importer.Import(context.Background(), DoctypeContacts, strings.NewReader(input), nil)

	suite.Require().NoError(err)
	suite.Equal(1, result.Imported)
	suite.Require().Len(result.ErrorDetails, 2)
	suite.Equal(1, result.ErrorDetails[0].Row)
	suite.Equal("Organization 'Aloe Vida' exists in 2 countries; set the country column", result.ErrorDetails[0].Error)
	suite.Equal("Organization 'Aloe Vida' does not exist in Spain", result.ErrorDetails[1].Error)

	suite.Require().Len(suite.contacts.created, 1)
	suite.Equal(portugal.ID, suite.contacts.created[0].OrganizationID)
}

func (suite *ImporterTestSuite) TestImportWithMapping() {
	input := "Company,Nation\nGreen Leaf,Mexico\n"

	result, err := suite.importer.Import(context.Background(), DoctypeOrganizations, strings.NewReader(input),
		map[string]string{"Company": "organization_name", "Nation": "country"})

	suite.Require().NoError(err)
	suite.Equal(1, result.Imported)
}

func (suite *ImporterTestSuite) TestImportUnsupportedDoctype() {
	_, err := suite.importer.Import(context.Background(), "invoices", strings.NewReader("a\n1\n"), nil)

	suite.ErrorIs(err, apperrors.ErrUnsupportedImportDoctype)
}

func (suite *ImporterTestSuite) TestImportRegulations() {
	input := `{"countries": {"br": {"country_name": "Brazil", "regulatory_authority": "ANVISA"}}}`

	result, err := suite.importer.ImportRegulations(context.Background(), strings.NewReader(input))

	suite.Require().NoError(err)
	suite.Equal("Country Regulations", result.Doctype)
	suite.Equal(2, result.TotalRecords)
	suite.Equal(1, result.Created)
	suite.Equal(1, result.Updated)
	suite.Equal("ANVISA", suite.regulations.doc.Countries["br"].RegulatoryAuthority)
}

func (suite *ImporterTestSuite) TestImportRegulationsInvalidJSON() {
	_, err := suite.importer.ImportRegulations(context.Background(), strings.NewReader("{not json"))

	suite.True(apperrors.IsValidation(err))
}

func (suite *ImporterTestSuite) TestValidateOrganizations() {
	input := strings.Join([]string{
		"organization_name,territory",
		"Green Leaf,North",
		",South",
		"Green Leaf,East",
	}, "\n")

	report, err := suite.importer.Validate(DoctypeOrganizations, strings.NewReader(input), nil)

	suite.Require().NoError(err)
	suite.Equal(3, report.TotalRows)
	suite.Equal([]string{"organization_name", "territory"}, report.Columns)
	suite.Equal([]string{"country"}, report.MissingRequiredFields)
	suite.Equal([]InvalidValue{{Row: 2, Field: "organization_name", Issue: "Required field is empty"}}, report.InvalidData)
	suite.Empty(report.Duplicates)
}

func (suite *ImporterTestSuite) TestValidateContacts() {
	input := strings.Join([]string{
		"first_name,email_id,organization",
		"Maria,maria@aloevida.com.br,Aloe Vida",
		"Rita,rita-at-aloevida,Aloe Vida",
		"Maria,maria@aloevida.com.br,Aloe Vida",
	}, "\n")

	report, err := suite.importer.Validate(DoctypeContacts, strings.NewReader(input), nil)

	suite.Require().NoError(err)
	suite.Empty(report.MissingRequiredFields)
	suite.Equal([]InvalidValue{{Row: 2, Field: "email_id", Issue: "Invalid email format"}}, report.InvalidData)
	suite.Equal([]Duplicate{
		{Row: 1, EmailID: "maria@aloevida.com.br", Organization: "Aloe Vida"},
		{Row: 3, EmailID: "maria@aloevida.com.br", Organization: "Aloe Vida"},
	}, report.Duplicates)
}

func (suite *ImporterTestSuite) TestGetTemplate() {
	tpl, err := GetTemplate(DoctypeContacts)
	suite.Require().NoError(err)
	suite.Len(tpl.SampleData[0], len(tpl.Fields))

	var b strings.Builder
	suite.Require().NoError(tpl.WriteCSV(&b))
	suite.True(strings.HasPrefix(b.String(), "first_name,last_name,organization,"))

	_, err = GetTemplate("invoices")
	suite.Error(err)
	suite.Equal("Template not available for invoices", apperrors.UserMessage(err))
}

func TestImporterTestSuite(t *testing.T) {
	suite.Run(t, new(ImporterTestSuite))
}
