package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/cache"
	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/mocks"
	"sysmayal-backend/internal/repository"
	"sysmayal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ContactServiceTestSuite defines the test suite for ContactService
type ContactServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockContactRepo    *mocks.MockContactRepositoryInterface
	mockOrgRepo        *mocks.MockOrganizationRepositoryInterface
	mockRegulationRepo *mocks.MockCountryRegulationRepositoryInterface
	mockCommRepo       *mocks.MockCommunicationRepositoryInterface
	mockNotifier       *mocks.MockNotifierInterface
	store              *cache.MemoryCache
	contactService     *service.ContactService
	ctx                context.Context
	org                *models.Organization
}

// SetupTest sets up the test suite
func (suite *ContactServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockContactRepo = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockRegulationRepo = mocks.NewMockCountryRegulationRepositoryInterface(suite.ctrl)
	suite.mockCommRepo = mocks.NewMockCommunicationRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifierInterface(suite.ctrl)
	suite.ctx = auth.ContextWithUser(context.Background(), "jane.doe", "")
	suite.store = cache.NewMemoryCache()

	suite.contactService = service.NewContactService(
		suite.mockContactRepo,
		suite.mockOrgRepo,
		suite.mockRegulationRepo,
		suite.mockCommRepo,
		suite.mockNotifier,
		service.NewDashboardCache(suite.store, time.Minute),
		validator.New(),
	)

	suite.org = &models.Organization{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		OrganizationName: "Aloe Vida",
		Country:          "Brazil",
		Status:           models.OrganizationStatusActive,
	}
}

// TearDownTest cleans up after each test
func (suite *ContactServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContactServiceTestSuite) validRequest() *service.ContactRequest {
	return &service.ContactRequest{
		FirstName:      "Maria",
		LastName:       "Santos",
		OrganizationID: suite.org.ID,
		Designation:    "Senior QA Manager",
		EmailID:        "maria.santos@aloevida.com.br",
	}
}

func (suite *ContactServiceTestSuite) TestCreateContact() {
	req := suite.validRequest()

	suite.mockOrgRepo.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil).Times(1)
	suite.mockContactRepo.EXPECT().
		EmailExistsInOrganization(suite.org.ID, req.EmailID, uuid.Nil).
		Return(false, nil).
		Times(1)
	suite.mockContactRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockContactRepo.EXPECT().TouchLastContacted(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	response, err := suite.contactService.Create(suite.ctx, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Maria Santos", response.FullName)
	assert.Equal(suite.T(), "Quality Manager", response.RegulatoryRole)
	assert.Equal(suite.T(), "Active", response.Status)
	assert.Equal(suite.T(), "Email", response.CommunicationPreference)
	assert.Equal(suite.T(), "Monthly", response.ContactFrequency)
	assert.Equal(suite.T(), "Brazil", response.Country)
	assert.NotNil(suite.T(), response.LastContacted)
	assert.Empty(suite.T(), response.Warnings)
}

func (suite *ContactServiceTestSuite) TestCreateContactMailFailureKeepsContact() {
	req := suite.validRequest()
	req.Status = "Active"

	suite.mockOrgRepo.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil).Times(1)
	suite.mockContactRepo.EXPECT().EmailExistsInOrganization(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(1)
	suite.mockContactRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(1)

	response, err := suite.contactService.Create(suite.ctx, req)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), response.LastContacted)
}

func (suite *ContactServiceTestSuite) TestCreateInactiveContactIsNotWelcomed() {
	req := suite.validRequest()
	req.Status = "Inactive"

	suite.mockOrgRepo.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil).Times(1)
	suite.mockContactRepo.EXPECT().EmailExistsInOrganization(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(1)
	suite.mockContactRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	_, err := suite.contactService.Create(suite.ctx, req)

	assert.NoError(suite.T(), err)
}

func (suite *ContactServiceTestSuite) TestCreateWarnsForInactiveOrganization() {
	suite.org.Status = models.OrganizationStatusSuspended
	req := suite.validRequest()
	req.Status = "Inactive"

	suite.mockOrgRepo.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil).Times(1)
	suite.mockContactRepo.EXPECT().EmailExistsInOrganization(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(1)
	suite.mockContactRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.contactService.Create(suite.ctx, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"Warning: The organization Aloe Vida is not active"}, response.Warnings)
}

func (suite *ContactServiceTestSuite) TestCreateDuplicateEmail() {
	req := suite.validRequest()

	suite.mockOrgRepo.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil).Times(1)
	suite.mockContactRepo.EXPECT().EmailExistsInOrganization(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(1)

	response, err := suite.contactService.Create(suite.ctx, req)

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrContactExists, err)
}

func (suite *ContactServiceTestSuite) TestCreateUnknownOrganization() {
	req := suite.validRequest()
	suite.mockOrgRepo.EXPECT().GetByID(suite.org.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.contactService.Create(suite.ctx, req)

	assert.Equal(suite.T(), apperrors.ErrOrganizationNotFound, err)
}

func (suite *ContactServiceTestSuite) TestCreateValidationError() {
	req := suite.validRequest()
	req.EmailID = "not-an-email"

	_, err := suite.contactService.Create(suite.ctx, req)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *ContactServiceTestSuite) TestUpdateExcludesSelfFromEmailCheck() {
	id := uuid.New()
	existing := &models.Contact{BaseModel: models.BaseModel{ID: id}, OrganizationID: suite.org.ID, RegulatoryRole: "Legal Counsel"}
	req := suite.validRequest()
	req.RegulatoryRole = "Legal Counsel"

	suite.mockContactRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockOrgRepo.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil).Times(1)
	suite.mockContactRepo.EXPECT().EmailExistsInOrganization(suite.org.ID, req.EmailID, id).Return(false, nil).Times(1)
	suite.mockContactRepo.EXPECT().Update(existing).Return(nil).Times(1)

	response, err := suite.contactService.Update(suite.ctx, id, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Legal Counsel", response.RegulatoryRole)
	assert.Equal(suite.T(), "jane.doe", response.UpdatedBy)
}

func (suite *ContactServiceTestSuite) TestGetOrganizationDetails() {
	id := uuid.New()
	suite.org.ContactPerson = "Joao Silva"
	suite.mockContactRepo.EXPECT().GetByID(id).Return(&models.Contact{OrganizationID: suite.org.ID}, nil).Times(1)
	suite.mockOrgRepo.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil).Times(1)

	details, err := suite.contactService.GetOrganizationDetails(suite.ctx, id)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Aloe Vida", details.OrganizationName)
	assert.Equal(suite.T(), "Joao Silva", details.PrimaryContact)
}

func (suite *ContactServiceTestSuite) TestGetCommunicationHistory() {
	id := uuid.New()
	history := []models.Communication{{Subject: "Welcome"}}
	suite.mockContactRepo.EXPECT().GetByID(id).Return(&models.Contact{EmailID: "a@b.com"}, nil).Times(1)
	suite.mockCommRepo.EXPECT().GetByRecipient("a@b.com", 20).Return(history, nil).Times(1)

	result, err := suite.contactService.GetCommunicationHistory(suite.ctx, id)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), history, result)
}

func (suite *ContactServiceTestSuite) TestGetCommunicationHistoryWithoutEmail() {
	id := uuid.New()
	suite.mockContactRepo.EXPECT().GetByID(id).Return(&models.Contact{}, nil).Times(1)

	result, err := suite.contactService.GetCommunicationHistory(suite.ctx, id)

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), result)
}

func (suite *ContactServiceTestSuite) TestUpdateLastContacted() {
	id := uuid.New()
	suite.mockContactRepo.EXPECT().TouchLastContacted(id, gomock.Any()).Return(nil).Times(1)

	response, err := suite.contactService.UpdateLastContacted(suite.ctx, id)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Last contacted timestamp updated", response.Message)
}

func (suite *ContactServiceTestSuite) TestGetRegulatoryRequirements() {
	id := uuid.New()
	contact := &models.Contact{Country: "Brazil", RegulatoryRole: "Quality Manager"}
	regulation := &models.CountryRegulation{RegulatoryAuthority: "ANVISA", KeyRequirements: "Product notification"}

	suite.mockContactRepo.EXPECT().GetByID(id).Return(contact, nil).Times(1)
	suite.mockRegulationRepo.EXPECT().GetByCountry("Brazil").Return(regulation, nil).Times(1)

	requirements, err := suite.contactService.GetRegulatoryRequirements(suite.ctx, id)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), requirements, 2)
	assert.Equal(suite.T(), "Country Regulation", requirements[0].Source)
	assert.Equal(suite.T(), "ANVISA", requirements[0].Authority)
	assert.Equal(suite.T(), []string{"Product notification"}, requirements[0].Requirements)
	assert.Equal(suite.T(), "Role-specific", requirements[1].Source)
	assert.Len(suite.T(), requirements[1].Requirements, 3)
}

func (suite *ContactServiceTestSuite) TestGetRegulatoryRequirementsUnknownRole() {
	id := uuid.New()
	suite.mockContactRepo.EXPECT().GetByID(id).Return(&models.Contact{RegulatoryRole: "Sales Manager"}, nil).Times(1)

	requirements, err := suite.contactService.GetRegulatoryRequirements(suite.ctx, id)

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), requirements)
}

func (suite *ContactServiceTestSuite) TestGetByRegulatoryRole() {
	suite.mockContactRepo.EXPECT().
		Find(repository.ContactFilter{RegulatoryRole: "Quality Manager", Country: "Brazil"}).
		Return([]models.Contact{{FullName: "Maria Santos"}}, nil).
		Times(1)

	contacts, err := suite.contactService.GetByRegulatoryRole(suite.ctx, "Quality Manager", "Brazil")

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), contacts, 1)
}

func (suite *ContactServiceTestSuite) TestBulkUpdateStatus() {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	suite.mockContactRepo.EXPECT().UpdateStatus(ids, "Inactive", "jane.doe").Return(int64(2), nil).Times(1)

	response, err := suite.contactService.BulkUpdateStatus(suite.ctx, &service.BulkStatusRequest{IDs: ids, Status: "Inactive"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2 contacts updated successfully", response.Message)
}

func (suite *ContactServiceTestSuite) TestBulkUpdateStatusDropsCachedReports() {
	key := cache.PrefixReports + "distribution-performance:{}"
	require.NoError(suite.T(), suite.store.Set(suite.ctx, key, "stale", time.Minute))
	ids := []uuid.UUID{uuid.New()}
	suite.mockContactRepo.EXPECT().UpdateStatus(ids, "Active", "jane.doe").Return(int64(1), nil).Times(1)

	_, err := suite.contactService.BulkUpdateStatus(suite.ctx, &service.BulkStatusRequest{IDs: ids, Status: "Active"})
	require.NoError(suite.T(), err)

	var cached string
	found, err := suite.store.Get(suite.ctx, key, &cached)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), found)
}

func (suite *ContactServiceTestSuite) TestBulkUpdateStatusRequiresIDs() {
	_, err := suite.contactService.BulkUpdateStatus(suite.ctx, &service.BulkStatusRequest{Status: "Inactive"})

	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *ContactServiceTestSuite) TestExport() {
	contacts := []models.Contact{{FullName: "Maria Santos", EmailID: "maria@aloevida.com.br", Status: "Active"}}
	suite.mockContactRepo.EXPECT().Find(repository.ContactFilter{OrganizationID: &suite.org.ID}).Return(contacts, nil).Times(1)

	rows, err := suite.contactService.Export(suite.ctx, &suite.org.ID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), rows, 1)
	assert.Equal(suite.T(), "Maria Santos", rows[0]["Full Name"])
	assert.Equal(suite.T(), "maria@aloevida.com.br", rows[0]["Email"])
	assert.Equal(suite.T(), "", rows[0]["Last Contacted"])
}

func (suite *ContactServiceTestSuite) TestExportCSV() {
	contacts := []models.Contact{{FullName: "Maria Santos", EmailID: "maria@aloevida.com.br"}}
	suite.mockContactRepo.EXPECT().Find(gomock.Any()).Return(contacts, nil).Times(1)

	var buf bytes.Buffer
	err := suite.contactService.ExportCSV(suite.ctx, nil, &buf)

	require.NoError(suite.T(), err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(suite.T(), lines, 2)
	assert.True(suite.T(), strings.HasPrefix(lines[0], "Full Name,Email,Phone"))
	assert.True(suite.T(), strings.HasPrefix(lines[1], "Maria Santos,maria@aloevida.com.br"))
}

// TestContactServiceTestSuite runs the test suite
func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
