package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/mocks"
	"sysmayal-backend/internal/service"
	"sysmayal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	handler                 *OrganizationHandler
	httpSuite               *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.handler = NewOrganizationHandler(suite.mockOrganizationService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	orgs := v1.Group("/organizations")
	{
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.GET("", suite.handler.ListOrganizations)
		orgs.GET("/check-duplicate", suite.handler.CheckDuplicate)
		orgs.GET("/by-country/:country", suite.handler.GetOrganizationsByCountry)
		orgs.GET("/:id", suite.handler.GetOrganization)
		orgs.PUT("/:id", suite.handler.UpdateOrganization)
		orgs.DELETE("/:id", suite.handler.DeleteOrganization)
		orgs.GET("/:id/hierarchy", suite.handler.GetHierarchy)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	org := testutils.NewOrganizationFactory().WithName("Verde Distribuciones")
	requestBody := map[string]interface{}{
		"organization_name": "Verde Distribuciones",
		"organization_type": "Distributor",
		"country":           org.Country,
	}

	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.OrganizationRequest) (*service.OrganizationResponse, error) {
			assert.Equal(suite.T(), "Verde Distribuciones", req.OrganizationName)
			assert.Equal(suite.T(), models.OrganizationTypeDistributor, req.OrganizationType)
			return &service.OrganizationResponse{Organization: org}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Verde Distribuciones", response["organization_name"])
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationInvalidJSON() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", "not-an-object")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationDuplicate() {
	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrOrganizationExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", map[string]interface{}{
		"organization_name": "Verde Distribuciones",
		"country":           "Mexico",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationValidationError() {
	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrCircularParent).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", map[string]interface{}{
		"organization_name": "Loop",
		"country":           "Mexico",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Circular parent-child relationship not allowed")
}

func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationServiceError() {
	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", map[string]interface{}{
		"organization_name": "Verde Distribuciones",
		"country":           "Mexico",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to create organization")
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	org := testutils.NewOrganizationFactory().Create()

	suite.mockOrganizationService.EXPECT().
		GetByID(gomock.Any(), org.ID).
		Return(&service.OrganizationResponse{Organization: org}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+org.ID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), org.ID.String(), response["id"])
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	id := uuid.New()
	suite.mockOrganizationService.EXPECT().
		GetByID(gomock.Any(), id).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

func (suite *OrganizationHandlerTestSuite) TestListOrganizations() {
	orgs := []models.Organization{
		*testutils.NewOrganizationFactory().WithCountry("Mexico"),
		*testutils.NewOrganizationFactory().WithCountry("Mexico"),
	}

	suite.mockOrganizationService.EXPECT().
		GetAll(gomock.Any(), service.OrganizationListFilter{Country: "Mexico", Status: "Active"}, 2, 10).
		Return(&service.OrganizationListResponse{Items: orgs, Total: 12, Page: 2, PageSize: 10}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations?country=Mexico&status=Active&page=2&page_size=10", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.OrganizationListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Items, 2)
	assert.Equal(suite.T(), int64(12), response.Total)
}

func (suite *OrganizationHandlerTestSuite) TestListOrganizationsClampsPageSize() {
	suite.mockOrganizationService.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), 1, 20).
		Return(&service.OrganizationListResponse{Page: 1, PageSize: 20}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations?page=0&page_size=500", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *OrganizationHandlerTestSuite) TestUpdateOrganization() {
	org := testutils.NewOrganizationFactory().Create()

	suite.mockOrganizationService.EXPECT().
		Update(gomock.Any(), org.ID, gomock.Any()).
		Return(&service.OrganizationResponse{Organization: org, Warnings: []string{"Agreement expires in 20 days"}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organizations/"+org.ID.String(), map[string]interface{}{
		"organization_name": org.OrganizationName,
		"country":           org.Country,
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response["warnings"], 1)
}

func (suite *OrganizationHandlerTestSuite) TestDeleteOrganization() {
	id := uuid.New()
	suite.mockOrganizationService.EXPECT().
		Delete(gomock.Any(), id).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *OrganizationHandlerTestSuite) TestGetHierarchy() {
	id := uuid.New()
	suite.mockOrganizationService.EXPECT().
		GetHierarchy(gomock.Any(), id).
		Return(&service.HierarchyNode{
			ID:               id,
			OrganizationName: "Parent",
			Children:         []service.HierarchyNode{{ID: uuid.New(), OrganizationName: "Child"}},
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+id.String()+"/hierarchy", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.HierarchyNode
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Children, 1)
}

func (suite *OrganizationHandlerTestSuite) TestGetOrganizationsByCountry() {
	suite.mockOrganizationService.EXPECT().
		GetByCountry(gomock.Any(), "Sweden").
		Return([]models.Organization{*testutils.NewOrganizationFactory().WithCountry("Sweden")}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/by-country/Sweden", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *OrganizationHandlerTestSuite) TestCheckDuplicate() {
	id := uuid.New()
	suite.mockOrganizationService.EXPECT().
		CheckDuplicate(gomock.Any(), "Verde", "Mexico").
		Return(&service.DuplicateCheckResponse{Exists: true, Name: "Verde", ID: &id}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/check-duplicate?name=Verde&country=Mexico", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.DuplicateCheckResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.True(suite.T(), response.Exists)
}

func (suite *OrganizationHandlerTestSuite) TestCheckDuplicateMissingCountry() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/check-duplicate?name=Verde", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "required")
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
