//go:build integration
// +build integration

package repository

import (
	"testing"

	"sysmayal-backend/internal/database/models"
	"sysmayal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type CertificateRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CertificateRepository
	factories     *testutils.FactorySet
}

func (suite *CertificateRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCertificateRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *CertificateRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *CertificateRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *CertificateRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CertificateRepositoryTestSuite) TestGetExpiringWindow() {
	today := models.Today()

	inWindow := suite.factories.Certificate.WithExpiry(today.AddDays(10))
	suite.Require().NoError(suite.repo.Create(inWindow))

	outside := suite.factories.Certificate.WithExpiry(today.AddDays(90))
	suite.Require().NoError(suite.repo.Create(outside))

	expired := suite.factories.Certificate.WithExpiry(today.AddDays(5))
	expired.Status = models.CertificateStatusExpired
	suite.Require().NoError(suite.repo.Create(expired))

	docs, err := suite.repo.GetExpiring(today.Time, 30)

	suite.NoError(err)
	suite.Require().Len(docs, 1)
	suite.Equal(inWindow.ID, docs[0].ID)
}

func (suite *CertificateRepositoryTestSuite) TestArchiveExpiredBefore() {
	today := models.Today()

	old := suite.factories.Certificate.WithExpiry(today.AddDays(-200))
	old.Status = models.CertificateStatusExpired
	suite.Require().NoError(suite.repo.Create(old))

	recent := suite.factories.Certificate.WithExpiry(today.AddDays(-10))
	recent.Status = models.CertificateStatusExpired
	suite.Require().NoError(suite.repo.Create(recent))

	archived, err := suite.repo.ArchiveExpiredBefore(today.AddDays(-90).Time)

	suite.NoError(err)
	suite.Equal(int64(1), archived)

	reloaded, err := suite.repo.GetByID(old.ID)
	suite.Require().NoError(err)
	suite.True(reloaded.Archived)
	suite.Equal("system", reloaded.UpdatedBy)

	// archived documents drop out of expiry processing
	remaining, err := suite.repo.GetWithExpiry()
	suite.NoError(err)
	suite.Len(remaining, 1)
}

func (suite *CertificateRepositoryTestSuite) TestGetByCertificateNumber() {
	cert := suite.factories.Certificate.Create()
	cert.CertificateNumber = "ORG-IN-2024-0117"
	suite.Require().NoError(suite.repo.Create(cert))

	found, err := suite.repo.GetByCertificateNumber("ORG-IN-2024-0117")

	suite.NoError(err)
	suite.Equal(cert.ID, found.ID)
}

func (suite *CertificateRepositoryTestSuite) TestCountByStatus() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Certificate.WithStatus(models.CertificateStatusValid)))
	suite.Require().NoError(suite.repo.Create(suite.factories.Certificate.WithStatus(models.CertificateStatusValid)))
	suite.Require().NoError(suite.repo.Create(suite.factories.Certificate.WithStatus(models.CertificateStatusSuspended)))

	counts, err := suite.repo.CountByStatus()

	suite.NoError(err)
	byStatus := make(map[string]int64)
	for _, c := range counts {
		byStatus[c.Key] = c.Count
	}
	suite.Equal(int64(2), byStatus[string(models.CertificateStatusValid)])
	suite.Equal(int64(1), byStatus[string(models.CertificateStatusSuspended)])
}

func TestCertificateRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CertificateRepositoryTestSuite))
}
