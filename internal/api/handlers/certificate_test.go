package handlers

import (
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

type CertificateHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCertificateServiceInterface
	handler     *CertificateHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *CertificateHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCertificateServiceInterface(suite.ctrl)
	suite.handler = NewCertificateHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	certs := suite.httpSuite.Router.Group("/api/v1/certificates")
	{
		certs.GET("/expiring", suite.handler.GetExpiring)
		certs.POST("/bulk-verify", suite.handler.BulkVerify)
		certs.GET("/:id", suite.handler.GetCertificate)
		certs.POST("/:id/document", suite.handler.UploadDocument)
		certs.GET("/:id/document", suite.handler.DownloadDocument)
		certs.POST("/:id/verify", suite.handler.VerifyCertificate)
		certs.POST("/:id/renew", suite.handler.RenewCertificate)
	}
}

func (suite *CertificateHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CertificateHandlerTestSuite) TestGetCertificateNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().
		GetByID(gomock.Any(), id).
		Return(nil, apperrors.ErrCertificateNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/certificates/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "certification document not found")
}

func (suite *CertificateHandlerTestSuite) TestUploadDocument() {
	cert := testutils.NewCertificateFactory().Create()
	content := []byte("%PDF-1.4 certificate body")

	suite.mockService.EXPECT().
		Upload(gomock.Any(), cert.ID, "gmp.pdf", content, "application/octet-stream").
		Return(&service.CertificateResponse{CertificationDocument: cert}, nil)

	recorder := suite.httpSuite.MakeMultipartRequest("POST", "/api/v1/certificates/"+cert.ID.String()+"/document", "file", "gmp.pdf", content)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *CertificateHandlerTestSuite) TestUploadDocumentMissingFile() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/certificates/"+uuid.NewString()+"/document", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "file is required")
}

func (suite *CertificateHandlerTestSuite) TestUploadDocumentStorageNotConfigured() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Upload(gomock.Any(), id, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrStorageNotConfigured)

	recorder := suite.httpSuite.MakeMultipartRequest("POST", "/api/v1/certificates/"+id.String()+"/document", "file", "scan.png", []byte("png"))

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusServiceUnavailable, "storage is not configured")
}

func (suite *CertificateHandlerTestSuite) TestDownloadDocument() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Download(gomock.Any(), id).
		Return(&service.DocumentFile{Name: "organic.pdf", Data: []byte("pdf-bytes")}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/certificates/"+id.String()+"/document", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "application/pdf", recorder.Header().Get("Content-Type"))
	assert.Contains(suite.T(), recorder.Header().Get("Content-Disposition"), `filename="organic.pdf"`)
	assert.Equal(suite.T(), "pdf-bytes", recorder.Body.String())
}

func (suite *CertificateHandlerTestSuite) TestVerifyWithoutFile() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Verify(gomock.Any(), id).
		Return(nil, apperrors.ErrNoFileForVerification)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/certificates/"+id.String()+"/verify", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "No file or hash available")
}

func (suite *CertificateHandlerTestSuite) TestBulkVerify() {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	suite.mockService.EXPECT().
		BulkVerify(gomock.Any(), ids).
		Return([]service.VerificationResult{
			{Document: ids[0].String(), Status: models.VerificationStatusVerified, Message: "Document integrity verified"},
			{Document: ids[1].String(), Status: models.VerificationStatusFailed, Message: "Hash mismatch"},
		}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/certificates/bulk-verify", map[string]interface{}{"ids": ids})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var results []service.VerificationResult
	testutils.ParseJSONResponse(suite.T(), recorder, &results)
	assert.Len(suite.T(), results, 2)
}

func (suite *CertificateHandlerTestSuite) TestBulkVerifyRequiresIDs() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/certificates/bulk-verify", map[string]interface{}{"ids": []string{}})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *CertificateHandlerTestSuite) TestRenewCertificate() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Renew(gomock.Any(), id).
		Return(&service.MessageResponse{Message: "Renewal process initiated"}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/certificates/"+id.String()+"/renew", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *CertificateHandlerTestSuite) TestGetExpiringDefaultsToNinetyDays() {
	suite.mockService.EXPECT().
		GetExpiring(gomock.Any(), 90).
		Return([]models.CertificationDocument{*testutils.NewCertificateFactory().Create()}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/certificates/expiring", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *CertificateHandlerTestSuite) TestGetExpiringRejectsInvalidDays() {
	for _, days := range []string{"-3", "0", "soon"} {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/certificates/expiring?days="+days, nil)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "days must be a positive integer")
	}
}

func TestCertificateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CertificateHandlerTestSuite))
}
