package service_test

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"testing"

	"sysmayal-backend/internal/auth"
	"sysmayal-backend/internal/database/models"
	apperrors "sysmayal-backend/internal/errors"
	"sysmayal-backend/internal/mocks"
	"sysmayal-backend/internal/notification"
	"sysmayal-backend/internal/service"
	"sysmayal-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CertificateServiceTestSuite defines the test suite for CertificateService
type CertificateServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockCertificateRepositoryInterface
	mockOrgRepo        *mocks.MockOrganizationRepositoryInterface
	mockNotifier       *mocks.MockNotifierInterface
	store              *storage.LocalStore
	certificateService *service.CertificateService
	ctx                context.Context
}

// SetupTest sets up the test suite
func (suite *CertificateServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCertificateRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifierInterface(suite.ctrl)
	suite.ctx = auth.ContextWithUser(context.Background(), "doc.admin", "")

	store, err := storage.NewLocalStore(suite.T().TempDir())
	require.NoError(suite.T(), err)
	suite.store = store

	suite.certificateService = service.NewCertificateService(
		suite.mockRepo,
		suite.mockOrgRepo,
		suite.store,
		suite.mockNotifier,
		nil,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *CertificateServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func md5Of(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

func (suite *CertificateServiceTestSuite) TestCreateDerivesStatusFromExpiry() {
	testCases := []struct {
		name     string
		days     int
		expected models.CertificateStatus
	}{
		{"far future", 200, models.CertificateStatusValid},
		{"inside warning window", 30, models.CertificateStatusExpiringSoon},
		{"already expired", -1, models.CertificateStatusExpired},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			issued := models.Today().AddDays(-400)
			expiry := models.Today().AddDays(tc.days)
			req := &service.CertificateRequest{DocumentTitle: "GMP Certificate", IssueDate: &issued, ExpiryDate: &expiry}

			suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

			response, err := suite.certificateService.Create(suite.ctx, req)

			require.NoError(suite.T(), err)
			assert.Equal(suite.T(), tc.expected, response.Status)
			assert.Equal(suite.T(), "Internal", response.AccessLevel)
			assert.Equal(suite.T(), "Paid", response.PaymentStatus)
			assert.Equal(suite.T(), "Annual", response.ReviewFrequency)
			assert.Equal(suite.T(), models.VerificationStatusPending, response.VerificationStatus)
			assert.Equal(suite.T(), "doc.admin", response.CreatedByUser)
		})
	}
}

func (suite *CertificateServiceTestSuite) TestCreateSendsReminderOnReminderDay() {
	expiry := models.Today().AddDays(30)
	req := &service.CertificateRequest{
		DocumentTitle: "EU Organic Certificate",
		ExpiryDate:    &expiry,
		ContactEmail:  "quality@sysmayal.com",
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockNotifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n notification.Notification) error {
			assert.Equal(suite.T(), []string{"quality@sysmayal.com"}, n.Recipients)
			assert.Equal(suite.T(), "Certificate Expiry Reminder: EU Organic Certificate", n.Subject)
			assert.Contains(suite.T(), n.Body, "in 30 day(s)")
			return nil
		}).
		Times(1)

	_, err := suite.certificateService.Create(suite.ctx, req)

	require.NoError(suite.T(), err)
}

func (suite *CertificateServiceTestSuite) TestCreateSkipsReminderOutsideReminderDays() {
	testCases := []struct {
		name string
		days int
	}{
		{"between reminder days", 45},
		{"expires today", 0},
		{"already expired", -1},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			expiry := models.Today().AddDays(tc.days)
			req := &service.CertificateRequest{DocumentTitle: "GMP", ExpiryDate: &expiry, ContactEmail: "quality@sysmayal.com"}

			suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
			suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

			_, err := suite.certificateService.Create(suite.ctx, req)

			require.NoError(suite.T(), err)
		})
	}
}

func (suite *CertificateServiceTestSuite) TestUpdateSendsReminderOnReminderDay() {
	id := uuid.New()
	expiry := models.Today().AddDays(7)
	doc := &models.CertificationDocument{BaseModel: models.BaseModel{ID: id}}

	suite.mockRepo.EXPECT().GetByID(id).Return(doc, nil).Times(1)
	suite.mockRepo.EXPECT().Update(doc).Return(nil).Times(1)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	response, err := suite.certificateService.Update(suite.ctx, id, &service.CertificateRequest{
		DocumentTitle: "Halal Certificate",
		ExpiryDate:    &expiry,
		ContactEmail:  "quality@sysmayal.com",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.CertificateStatusExpiringSoon, response.Status)
}

func (suite *CertificateServiceTestSuite) TestCreateRejectsIssueAfterExpiry() {
	day := models.Today()
	req := &service.CertificateRequest{DocumentTitle: "GMP", IssueDate: &day, ExpiryDate: &day}

	_, err := suite.certificateService.Create(suite.ctx, req)

	assert.Equal(suite.T(), apperrors.ErrIssueAfterExpiry, err)
}

func (suite *CertificateServiceTestSuite) TestCreateRejectsRenewalDatesOutOfOrder() {
	last := models.Today()
	next := models.Today().AddDays(-10)
	req := &service.CertificateRequest{DocumentTitle: "GMP", LastRenewalDate: &last, NextRenewalDue: &next}

	_, err := suite.certificateService.Create(suite.ctx, req)

	assert.Equal(suite.T(), apperrors.ErrRenewalDatesOutOfOrder, err)
}

func (suite *CertificateServiceTestSuite) TestUpdateKeepsManualStatusOutsideWarningWindow() {
	id := uuid.New()
	expiry := models.Today().AddDays(120)
	doc := &models.CertificationDocument{BaseModel: models.BaseModel{ID: id}, Status: models.CertificateStatusSuspended}

	suite.mockRepo.EXPECT().GetByID(id).Return(doc, nil).Times(1)
	suite.mockRepo.EXPECT().Update(doc).Return(nil).Times(1)

	response, err := suite.certificateService.Update(suite.ctx, id, &service.CertificateRequest{DocumentTitle: "GMP", ExpiryDate: &expiry})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.CertificateStatusSuspended, response.Status)
}

func (suite *CertificateServiceTestSuite) TestUploadDownloadAndVerify() {
	id := uuid.New()
	doc := &models.CertificationDocument{BaseModel: models.BaseModel{ID: id}, DocumentTitle: "GMP Certificate"}
	data := []byte("%PDF-1.4 certificate body")

	suite.mockRepo.EXPECT().GetByID(id).Return(doc, nil).Times(3)
	suite.mockRepo.EXPECT().Update(doc).Return(nil).Times(2)

	uploaded, err := suite.certificateService.Upload(suite.ctx, id, "gmp.pdf", data, "application/pdf")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "certificates/"+id.String()+"/gmp.pdf", uploaded.DocumentFile)
	assert.Equal(suite.T(), md5Of(data), uploaded.DocumentHash)
	assert.Equal(suite.T(), "0.0 KB", uploaded.FileSize)

	file, err := suite.certificateService.Download(suite.ctx, id)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "gmp.pdf", file.Name)
	assert.Equal(suite.T(), data, file.Data)

	result, err := suite.certificateService.Verify(suite.ctx, id)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.VerificationStatusVerified, result.Status)
	assert.Equal(suite.T(), "Document integrity verified", result.Message)
}

func (suite *CertificateServiceTestSuite) TestVerifyDetectsTampering() {
	id := uuid.New()
	key := storage.CertificateKey(id.String(), "gmp.pdf")
	require.NoError(suite.T(), suite.store.Put(suite.ctx, key, []byte("tampered"), "application/pdf"))
	doc := &models.CertificationDocument{
		BaseModel:     models.BaseModel{ID: id},
		DocumentTitle: "GMP Certificate",
		DocumentFile:  key,
		DocumentHash:  md5Of([]byte("original")),
	}

	suite.mockRepo.EXPECT().GetByID(id).Return(doc, nil).Times(1)
	suite.mockRepo.EXPECT().Update(doc).Return(nil).Times(1)

	result, err := suite.certificateService.Verify(suite.ctx, id)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.VerificationStatusFailed, result.Status)
	assert.Equal(suite.T(), "Document has been modified or corrupted", result.Message)
	assert.Equal(suite.T(), models.VerificationStatusFailed, doc.VerificationStatus)
}

func (suite *CertificateServiceTestSuite) TestBulkVerifyReportsMissingFiles() {
	docs := []models.CertificationDocument{
		{BaseModel: models.BaseModel{ID: uuid.New()}, DocumentTitle: "No File", VerificationStatus: models.VerificationStatusPending},
	}
	ids := []uuid.UUID{docs[0].ID}
	suite.mockRepo.EXPECT().GetByIDs(ids).Return(docs, nil).Times(1)

	results, err := suite.certificateService.BulkVerify(suite.ctx, ids)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), results, 1)
	assert.Equal(suite.T(), "No File", results[0].Document)
	assert.Equal(suite.T(), "No file or hash available for verification", results[0].Message)
}

func (suite *CertificateServiceTestSuite) TestBulkVerifyRequiresIDs() {
	_, err := suite.certificateService.BulkVerify(suite.ctx, nil)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *CertificateServiceTestSuite) TestUploadWithoutStore() {
	svc := service.NewCertificateService(suite.mockRepo, suite.mockOrgRepo, nil, suite.mockNotifier, nil, validator.New())

	_, err := svc.Upload(suite.ctx, uuid.New(), "gmp.pdf", []byte("x"), "application/pdf")

	assert.Equal(suite.T(), apperrors.ErrStorageNotConfigured, err)
}

func (suite *CertificateServiceTestSuite) TestDownloadWithoutFile() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.CertificationDocument{}, nil).Times(1)

	_, err := suite.certificateService.Download(suite.ctx, id)

	assert.Equal(suite.T(), apperrors.ErrDocumentFileNotFound, err)
}

func (suite *CertificateServiceTestSuite) TestRenewSchedulesNextRenewal() {
	id := uuid.New()
	expiry := models.Today().AddDays(365)
	doc := &models.CertificationDocument{
		BaseModel:       models.BaseModel{ID: id},
		ExpiryDate:      &expiry,
		ReviewFrequency: "Bi-annual",
		Status:          models.CertificateStatusUnderRenewal,
	}

	suite.mockRepo.EXPECT().GetByID(id).Return(doc, nil).Times(1)
	suite.mockRepo.EXPECT().Update(doc).Return(nil).Times(1)

	response, err := suite.certificateService.Renew(suite.ctx, id)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Certificate renewed successfully", response.Message)
	assert.Equal(suite.T(), models.Today(), *doc.LastRenewalDate)
	assert.Equal(suite.T(), expiry.AddDays(-60), *doc.NextRenewalDue)
	assert.Equal(suite.T(), models.CertificateStatusValid, doc.Status)
}

func (suite *CertificateServiceTestSuite) TestGetTimelineIsChronological() {
	id := uuid.New()
	today := models.Today()
	doc := &models.CertificationDocument{
		IssueDate:       models.DatePtr(today.AddDays(-300)),
		LastRenewalDate: models.DatePtr(today.AddDays(-30)),
		NextRenewalDue:  models.DatePtr(today.AddDays(-5)),
		ExpiryDate:      models.DatePtr(today.AddDays(60)),
	}
	suite.mockRepo.EXPECT().GetByID(id).Return(doc, nil).Times(1)

	events, err := suite.certificateService.GetTimeline(suite.ctx, id)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), events, 4)
	assert.Equal(suite.T(), []string{"Issued", "Last Renewal", "Renewal Due", "Expires"},
		[]string{events[0].Event, events[1].Event, events[2].Event, events[3].Event})
	assert.Equal(suite.T(), "overdue", events[2].Status)
	assert.Equal(suite.T(), "upcoming", events[3].Status)
}

func (suite *CertificateServiceTestSuite) TestGetExpiring() {
	suite.mockRepo.EXPECT().GetExpiring(gomock.Any(), service.DefaultExpiringWindow).Return([]models.CertificationDocument{}, nil).Times(1)

	docs, err := suite.certificateService.GetExpiring(suite.ctx, service.DefaultExpiringWindow)

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), docs)
}

func (suite *CertificateServiceTestSuite) TestGetExpiringRejectsNonPositiveWindow() {
	for _, days := range []int{0, -7} {
		_, err := suite.certificateService.GetExpiring(suite.ctx, days)

		assert.Equal(suite.T(), apperrors.ErrInvalidExpiryWindow, err)
	}
}

func (suite *CertificateServiceTestSuite) TestCheckExpiry() {
	today := models.Today()
	docs := []models.CertificationDocument{
		{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			DocumentTitle: "Expiring",
			Status:        models.CertificateStatusValid,
			ExpiryDate:    models.DatePtr(today.AddDays(30)),
			ContactEmail:  "quality@sysmayal.com",
		},
		{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			DocumentTitle: "Renewed",
			Status:        models.CertificateStatusExpired,
			ExpiryDate:    models.DatePtr(today.AddDays(200)),
		},
		{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			DocumentTitle: "Quiet",
			Status:        models.CertificateStatusValid,
			ExpiryDate:    models.DatePtr(today.AddDays(45)),
			ContactEmail:  "quality@sysmayal.com",
		},
	}

	suite.mockRepo.EXPECT().GetWithExpiry().Return(docs, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(2)
	suite.mockNotifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n notification.Notification) error {
			assert.Equal(suite.T(), "Certificate Expiry Reminder: Expiring", n.Subject)
			assert.Contains(suite.T(), n.Body, "in 30 day(s)")
			return nil
		}).
		Times(1)

	result, err := suite.certificateService.CheckExpiry(suite.ctx)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, result.StatusesUpdated)
	assert.Equal(suite.T(), 1, result.RemindersSent)
	assert.Equal(suite.T(), models.CertificateStatusExpiringSoon, docs[0].Status)
	assert.Equal(suite.T(), models.CertificateStatusValid, docs[1].Status)
}

func (suite *CertificateServiceTestSuite) TestArchiveOld() {
	suite.mockRepo.EXPECT().
		ArchiveExpiredBefore(models.Today().AddDays(-365).Time).
		Return(int64(4), nil).
		Times(1)

	archived, err := suite.certificateService.ArchiveOld(suite.ctx, 365)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(4), archived)
}

func (suite *CertificateServiceTestSuite) TestDeleteRemovesStoredFile() {
	id := uuid.New()
	key := storage.CertificateKey(id.String(), "gmp.pdf")
	require.NoError(suite.T(), suite.store.Put(suite.ctx, key, []byte("pdf"), "application/pdf"))

	suite.mockRepo.EXPECT().GetByID(id).Return(&models.CertificationDocument{DocumentFile: key}, nil).Times(1)
	suite.mockRepo.EXPECT().Delete(id).Return(nil).Times(1)

	require.NoError(suite.T(), suite.certificateService.Delete(suite.ctx, id))

	exists, err := suite.store.Exists(suite.ctx, key)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), exists)
}

func (suite *CertificateServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.certificateService.GetByID(suite.ctx, id)

	assert.Equal(suite.T(), apperrors.ErrCertificateNotFound, err)
}

// TestCertificateServiceTestSuite runs the test suite
func TestCertificateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CertificateServiceTestSuite))
}
