package handlers

import (
	"context"
	"io"
	"net/http"
	"testing"

	"sysmayal-backend/internal/database/models"
	"sysmayal-backend/internal/mocks"
	"sysmayal-backend/internal/service"
	"sysmayal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ContactHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockContactServiceInterface
	handler     *ContactHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *ContactHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockContactServiceInterface(suite.ctrl)
	suite.handler = NewContactHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	contacts := suite.httpSuite.Router.Group("/api/v1/contacts")
	{
		contacts.GET("/export", suite.handler.ExportContacts)
		contacts.GET("/by-role", suite.handler.GetContactsByRegulatoryRole)
		contacts.POST("/bulk-status", suite.handler.BulkUpdateStatus)
		contacts.POST("/:id/contacted", suite.handler.UpdateLastContacted)
	}
}

func (suite *ContactHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContactHandlerTestSuite) TestExportContactsJSON() {
	orgID := uuid.New()
	suite.mockService.EXPECT().
		Export(gomock.Any(), &orgID).
		Return([]map[string]string{{"full_name": "Carlos Ruiz", "organization": "Verde"}}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/contacts/export?organization_id="+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var rows []map[string]string
	testutils.ParseJSONResponse(suite.T(), recorder, &rows)
	assert.Equal(suite.T(), "Carlos Ruiz", rows[0]["full_name"])
}

func (suite *ContactHandlerTestSuite) TestExportContactsCSV() {
	suite.mockService.EXPECT().
		ExportCSV(gomock.Any(), gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *uuid.UUID, w io.Writer) error {
			_, err := io.WriteString(w, "full_name,email_id\nElin Berg,elin@example.com\n")
			return err
		})

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/contacts/export?format=csv", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "text/csv; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Contains(suite.T(), recorder.Body.String(), "Elin Berg")
}

func (suite *ContactHandlerTestSuite) TestExportContactsInvalidOrganization() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/contacts/export?organization_id=42", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

func (suite *ContactHandlerTestSuite) TestGetContactsByRegulatoryRole() {
	suite.mockService.EXPECT().
		GetByRegulatoryRole(gomock.Any(), "Quality Manager", "India").
		Return([]models.Contact{*testutils.NewContactFactory().Create()}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/contacts/by-role?role=Quality+Manager&country=India", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *ContactHandlerTestSuite) TestGetContactsByRegulatoryRoleRequiresRole() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/contacts/by-role", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "role query parameter is required")
}

func (suite *ContactHandlerTestSuite) TestUpdateLastContacted() {
	id := uuid.New()
	suite.mockService.EXPECT().
		UpdateLastContacted(gomock.Any(), id).
		Return(&service.MessageResponse{Message: "Last contacted date updated"}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/contacts/"+id.String()+"/contacted", nil)

	var msg service.MessageResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &msg)
	assert.Equal(suite.T(), "Last contacted date updated", msg.Message)
}

func TestContactHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}
