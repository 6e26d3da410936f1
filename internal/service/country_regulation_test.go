package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/cache"
	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/mocks"
	"sysmayal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CountryRegulationServiceTestSuite defines the test suite for CountryRegulationService
type CountryRegulationServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockCountryRegulationRepositoryInterface
	mockOrgRepo        *mocks.MockOrganizationRepositoryInterface
	mockComplianceRepo *mocks.MockProductComplianceRepositoryInterface
	store              *cache.MemoryCache
	regulationService  *service.CountryRegulationService
	ctx                context.Context
}

func (suite *CountryRegulationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCountryRegulationRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockComplianceRepo = mocks.NewMockProductComplianceRepositoryInterface(suite.ctrl)
	suite.ctx = auth.ContextWithUser(context.Background(), "reg.affairs", "reg.affairs@sysmayal.com")
	suite.store = cache.NewMemoryCache()

	suite.regulationService = service.NewCountryRegulationService(
		suite.mockRepo,
		suite.mockOrgRepo,
		suite.mockComplianceRepo,
		service.NewDashboardCache(suite.store, time.Minute),
		validator.New(),
	)
}

func (suite *CountryRegulationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CountryRegulationServiceTestSuite) TestCreateAppliesDefaults() {
	suite.mockRepo.EXPECT().GetByCountry("South Africa").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	reg, err := suite.regulationService.Create(suite.ctx, &service.CountryRegulationRequest{
		CountryName: "South Africa",
		Region:      "Africa",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RegulationPendingVerification, reg.VerificationStatus)
	require.NotNil(suite.T(), reg.LastUpdated)
	assert.Equal(suite.T(), models.Today(), *reg.LastUpdated)
	require.NotNil(suite.T(), reg.NextReviewDate)
	assert.Equal(suite.T(), models.Today().AddMonths(12), *reg.NextReviewDate)
	assert.Equal(suite.T(), "regulations-south-africa", reg.Route)
	assert.Equal(suite.T(), "reg.affairs", reg.CreatedBy)
}

func (suite *CountryRegulationServiceTestSuite) TestCreateDropsCachedOpportunities() {
	key := cache.PrefixPlans + "opportunities"
	require.NoError(suite.T(), suite.store.Set(suite.ctx, key, []string{"Kenya"}, time.Minute))
	suite.mockRepo.EXPECT().GetByCountry("Kenya").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	_, err := suite.regulationService.Create(suite.ctx, &service.CountryRegulationRequest{CountryName: "Kenya"})
	require.NoError(suite.T(), err)

	var cached []string
	found, err := suite.store.Get(suite.ctx, key, &cached)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), found)
}

func (suite *CountryRegulationServiceTestSuite) TestCreateVerifiedMovesStaleReviewDate() {
	stale := models.Today().AddDays(-30)
	suite.mockRepo.EXPECT().GetByCountry("Canada").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	reg, err := suite.regulationService.Create(suite.ctx, &service.CountryRegulationRequest{
		CountryName:        "Canada",
		VerificationStatus: models.RegulationVerified,
		NextReviewDate:     &stale,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.Today().AddMonths(12), *reg.NextReviewDate)
}

func (suite *CountryRegulationServiceTestSuite) TestCreateExpiredReviewsToday() {
	later := models.Today().AddDays(100)
	suite.mockRepo.EXPECT().GetByCountry("Chile").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	reg, err := suite.regulationService.Create(suite.ctx, &service.CountryRegulationRequest{
		CountryName:        "Chile",
		VerificationStatus: models.RegulationExpired,
		NextReviewDate:     &later,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.Today(), *reg.NextReviewDate)
}

func (suite *CountryRegulationServiceTestSuite) TestCreateDuplicateCountry() {
	suite.mockRepo.EXPECT().
		GetByCountry("Germany").
		Return(&models.CountryRegulation{BaseModel: models.BaseModel{ID: uuid.New()}, CountryName: "Germany"}, nil).
		Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Times(0)

	reg, err := suite.regulationService.Create(suite.ctx, &service.CountryRegulationRequest{CountryName: "Germany"})

	assert.Nil(suite.T(), reg)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
	assert.Contains(suite.T(), err.Error(), "Regulation record for Germany already exists")
}

func (suite *CountryRegulationServiceTestSuite) TestCreateInvalidWebsite() {
	reg, err := suite.regulationService.Create(suite.ctx, &service.CountryRegulationRequest{
		CountryName:      "Germany",
		AuthorityWebsite: "not a url",
	})

	assert.Nil(suite.T(), reg)
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *CountryRegulationServiceTestSuite) TestUpdateRenameChecksUniqueness() {
	id := uuid.New()
	existing := &models.CountryRegulation{BaseModel: models.BaseModel{ID: id}, CountryName: "Holland", Route: "regulations-holland"}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockRepo.EXPECT().GetByCountry("Netherlands").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(reg *models.CountryRegulation) error {
			assert.Equal(suite.T(), "Netherlands", reg.CountryName)
			assert.Equal(suite.T(), "regulations-holland", reg.Route)
			return nil
		}).
		Times(1)

	_, err := suite.regulationService.Update(suite.ctx, id, &service.CountryRegulationRequest{CountryName: "Netherlands"})

	require.NoError(suite.T(), err)
}

func (suite *CountryRegulationServiceTestSuite) TestUpdateSameCountrySkipsUniqueness() {
	id := uuid.New()
	existing := &models.CountryRegulation{BaseModel: models.BaseModel{ID: id}, CountryName: "Japan"}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockRepo.EXPECT().GetByCountry(gomock.Any()).Times(0)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	reg, err := suite.regulationService.Update(suite.ctx, id, &service.CountryRegulationRequest{
		CountryName:         "Japan",
		RegulatoryAuthority: "MHLW",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "MHLW", reg.RegulatoryAuthority)
}

func (suite *CountryRegulationServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	reg, err := suite.regulationService.GetByID(suite.ctx, id)

	assert.Nil(suite.T(), reg)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRegulationNotFound)
}

func (suite *CountryRegulationServiceTestSuite) TestGetComplianceSummary() {
	id := uuid.New()
	reg := &models.CountryRegulation{
		BaseModel:           models.BaseModel{ID: id},
		CountryName:         "Germany",
		RegulatoryAuthority: "BVL",
		VerificationStatus:  models.RegulationVerified,
	}
	suite.mockRepo.EXPECT().GetByID(id).Return(reg, nil).Times(1)
	suite.mockOrgRepo.EXPECT().CountByCountry("Germany").Return(int64(4), nil).Times(1)
	suite.mockComplianceRepo.EXPECT().CountForCountry("Germany").Return(int64(3), int64(2), nil).Times(1)

	summary, err := suite.regulationService.GetComplianceSummary(suite.ctx, id)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(4), summary.Organizations)
	assert.Equal(suite.T(), int64(3), summary.TotalProducts)
	assert.Equal(suite.T(), int64(2), summary.CompliantProducts)
	assert.Equal(suite.T(), 66.7, summary.ComplianceRate)
	assert.Equal(suite.T(), "BVL", summary.RegulatoryAuthority)
}

func (suite *CountryRegulationServiceTestSuite) TestGetComplianceSummaryWithoutProducts() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.CountryRegulation{CountryName: "Malta"}, nil).Times(1)
	suite.mockOrgRepo.EXPECT().CountByCountry("Malta").Return(int64(0), nil).Times(1)
	suite.mockComplianceRepo.EXPECT().CountForCountry("Malta").Return(int64(0), int64(0), nil).Times(1)

	summary, err := suite.regulationService.GetComplianceSummary(suite.ctx, id)

	require.NoError(suite.T(), err)
	assert.Zero(suite.T(), summary.ComplianceRate)
}

func (suite *CountryRegulationServiceTestSuite) TestImportFromJSON() {
	existing := &models.CountryRegulation{
		BaseModel:          models.BaseModel{ID: uuid.New()},
		CountryName:        "Germany",
		VerificationStatus: models.RegulationVerified,
		Route:              "regulations-germany",
	}
	doc := &service.RegulationImport{
		Countries: map[string]service.RegulationImportCountry{
			"south_africa": {
				RegulatoryAuthority: "SAHPRA",
				ProductClassifications: map[string]service.RegulationClassification{
					"juice": {Category: "Food", Requirements: []string{"Label in English"}},
					"gel":   {Category: "Cosmetic", Requirements: []string{"INCI list", "Safety report"}},
				},
			},
			"de": {
				CountryName:         "Germany",
				RegulatoryAuthority: "BVL",
				Website:             "https://www.bvl.bund.de",
			},
		},
	}

	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByCountry("Germany").Return(existing, nil),
		suite.mockRepo.EXPECT().
			Update(gomock.Any()).
			DoAndReturn(func(reg *models.CountryRegulation) error {
				assert.Equal(suite.T(), "BVL", reg.RegulatoryAuthority)
				assert.Equal(suite.T(), "https://www.bvl.bund.de", reg.AuthorityWebsite)
				assert.Equal(suite.T(), "Import", reg.DataSource)
				assert.Equal(suite.T(), models.RegulationPendingVerification, reg.VerificationStatus)
				assert.Equal(suite.T(), "regulations-germany", reg.Route)
				return nil
			}),
		suite.mockRepo.EXPECT().GetByCountry("South Africa").Return(nil, gorm.ErrRecordNotFound),
		suite.mockRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(reg *models.CountryRegulation) error {
				assert.Equal(suite.T(), "South Africa", reg.CountryName)
				assert.Equal(suite.T(), "Cosmetic", reg.AloeClassification)
				assert.Equal(suite.T(), "INCI list<br>Safety report<br>Label in English", reg.KeyRequirements)
				assert.Equal(suite.T(), "reg.affairs", reg.CreatedBy)
				return nil
			}),
	)

	result, err := suite.regulationService.ImportFromJSON(suite.ctx, doc)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), &service.ImportResult{Created: 1, Updated: 1, Total: 2}, result)
}

func (suite *CountryRegulationServiceTestSuite) TestImportFromJSONStopsOnLookupError() {
	doc := &service.RegulationImport{
		Countries: map[string]service.RegulationImportCountry{"fr": {CountryName: "France"}},
	}
	suite.mockRepo.EXPECT().GetByCountry("France").Return(nil, errors.New("connection refused")).Times(1)

	result, err := suite.regulationService.ImportFromJSON(suite.ctx, doc)

	assert.Nil(suite.T(), result)
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to look up France")
}

func (suite *CountryRegulationServiceTestSuite) TestImportFromJSONRequiresCountries() {
	result, err := suite.regulationService.ImportFromJSON(suite.ctx, &service.RegulationImport{})

	assert.Nil(suite.T(), result)
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func TestCountryRegulationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CountryRegulationServiceTestSuite))
}
