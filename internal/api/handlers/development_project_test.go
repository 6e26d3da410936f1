package handlers

import (
	"net/http"
	"testing"

	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/mocks"
	"sysmayal-backend/internal/repository"
	"sysmayal-backend/internal/service"
	"sysmayal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DevelopmentProjectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDevelopmentProjectServiceInterface
	handler     *DevelopmentProjectHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *DevelopmentProjectHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDevelopmentProjectServiceInterface(suite.ctrl)
	suite.handler = NewDevelopmentProjectHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	projects := suite.httpSuite.Router.Group("/api/v1/rd-projects")
	{
		projects.POST("", suite.handler.CreateProject)
		projects.GET("", suite.handler.ListProjects)
		projects.GET("/dashboard", suite.handler.GetDashboard)
		projects.GET("/:id", suite.handler.GetProject)
		projects.PUT("/:id", suite.handler.UpdateProject)
		projects.DELETE("/:id", suite.handler.DeleteProject)
		projects.GET("/:id/summary", suite.handler.GetSummary)
		projects.GET("/:id/comments", suite.handler.GetComments)
	}
}

func (suite *DevelopmentProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DevelopmentProjectHandlerTestSuite) TestCreateProject() {
	project := testutils.NewDevelopmentProjectFactory().WithStatus(models.ProjectStatusPlanning)

	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *service.DevelopmentProjectRequest) (*service.DevelopmentProjectResponse, error) {
			assert.Equal(suite.T(), project.ProjectName, req.ProjectName)
			assert.Nil(suite.T(), req.ExpectedCompletion.OrNil())
			return &service.DevelopmentProjectResponse{DevelopmentProject: project}, nil
		})

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rd-projects", map[string]interface{}{
		"project_name":        project.ProjectName,
		"expected_completion": "",
	})

	var response models.DevelopmentProject
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), project.ID, response.ID)
}

func (suite *DevelopmentProjectHandlerTestSuite) TestCreateProjectStartAfterEnd() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrProjectStartAfterEnd)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/rd-projects", map[string]interface{}{
		"project_name":        "Aloe chewables",
		"start_date":          "2027-05-01",
		"expected_completion": "2027-01-01",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Start date cannot be after expected completion date")
}

func (suite *DevelopmentProjectHandlerTestSuite) TestGetProjectNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().
		GetByID(gomock.Any(), id).
		Return(nil, apperrors.ErrProjectNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rd-projects/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "development project not found")
}

func (suite *DevelopmentProjectHandlerTestSuite) TestListProjectsPassesFilter() {
	filter := service.DevelopmentProjectFilter{Status: "Testing", Priority: "High", ProjectType: "Formulation"}
	suite.mockService.EXPECT().
		GetAll(gomock.Any(), filter, 3, 10).
		Return(&service.DevelopmentProjectListResponse{Page: 3, PageSize: 10}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rd-projects?status=Testing&priority=High&project_type=Formulation&page=3&page_size=10", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *DevelopmentProjectHandlerTestSuite) TestUpdateProjectInvalidID() {
	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/rd-projects/xyz", map[string]interface{}{"project_name": "x"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid project ID")
}

func (suite *DevelopmentProjectHandlerTestSuite) TestDeleteProject() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/rd-projects/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *DevelopmentProjectHandlerTestSuite) TestGetSummary() {
	id := uuid.New()
	suite.mockService.EXPECT().
		GetSummary(gomock.Any(), id).
		Return(&service.ProjectSummary{ProjectName: "Aloe chewables", CompletionPercentage: 60, TeamSize: 4}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rd-projects/"+id.String()+"/summary", nil)

	var summary service.ProjectSummary
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &summary)
	assert.Equal(suite.T(), 60, summary.CompletionPercentage)
	assert.Equal(suite.T(), 4, summary.TeamSize)
}

func (suite *DevelopmentProjectHandlerTestSuite) TestGetComments() {
	id := uuid.New()
	suite.mockService.EXPECT().
		GetComments(gomock.Any(), id).
		Return([]models.Comment{{ReferenceType: models.ReferenceProject, ReferenceID: id, Content: "Stability batch passed"}}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rd-projects/"+id.String()+"/comments", nil)

	var comments []models.Comment
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &comments)
	assert.Equal(suite.T(), "Stability batch passed", comments[0].Content)
}

func (suite *DevelopmentProjectHandlerTestSuite) TestGetDashboard() {
	suite.mockService.EXPECT().
		GetDashboard(gomock.Any()).
		Return(&service.ProjectDashboard{StatusSummary: []repository.GroupCount{}}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/rd-projects/dashboard", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func TestDevelopmentProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DevelopmentProjectHandlerTestSuite))
}
