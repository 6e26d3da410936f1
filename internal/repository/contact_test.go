//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"sysmayal-backend/internal/database/models"
	"sysmayal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ContactRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ContactRepository
	factories     *testutils.FactorySet
	org           *models.Organization
}

func (suite *ContactRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewContactRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ContactRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ContactRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.org = suite.factories.Organization.Create()
	suite.baseTestSuite.Seed(suite.T(), suite.org)
}

func (suite *ContactRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ContactRepositoryTestSuite) TestCreateRequiresOrganization() {
	orphan := suite.factories.Contact.Create()

	suite.Error(suite.repo.Create(orphan))
}

func (suite *ContactRepositoryTestSuite) TestGetAllFiltersAndPaginates() {
	for _, name := range []string{"Ana", "Bruno", "Carla"} {
		contact := suite.factories.Contact.WithOrganization(suite.org.ID)
		contact.FullName = name
		suite.Require().NoError(suite.repo.Create(contact))
	}
	inactive := suite.factories.Contact.WithOrganization(suite.org.ID)
	inactive.Status = "Inactive"
	suite.Require().NoError(suite.repo.Create(inactive))

	contacts, total, err := suite.repo.GetAll(ContactFilter{OrganizationID: &suite.org.ID, Status: "Active"}, 2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(contacts, 2)
	suite.Equal("Ana", contacts[0].FullName)
	suite.Equal("Bruno", contacts[1].FullName)
}

func (suite *ContactRepositoryTestSuite) TestEmailExistsInOrganizationIgnoresCase() {
	contact := suite.factories.Contact.WithOrganization(suite.org.ID)
	contact.EmailID = "Maria.Lopez@verde.mx"
	suite.Require().NoError(suite.repo.Create(contact))

	exists, err := suite.repo.EmailExistsInOrganization(suite.org.ID, "maria.lopez@VERDE.mx", uuid.Nil)
	suite.NoError(err)
	suite.True(exists)

	// the contact itself is excluded on update
	exists, err = suite.repo.EmailExistsInOrganization(suite.org.ID, "maria.lopez@verde.mx", contact.ID)
	suite.NoError(err)
	suite.False(exists)

	exists, err = suite.repo.EmailExistsInOrganization(uuid.New(), "maria.lopez@verde.mx", uuid.Nil)
	suite.NoError(err)
	suite.False(exists)
}

func (suite *ContactRepositoryTestSuite) TestUpdateStatus() {
	first := suite.factories.Contact.WithOrganization(suite.org.ID)
	second := suite.factories.Contact.WithOrganization(suite.org.ID)
	untouched := suite.factories.Contact.WithOrganization(suite.org.ID)
	suite.baseTestSuite.Seed(suite.T(), first, second, untouched)

	updated, err := suite.repo.UpdateStatus([]uuid.UUID{first.ID, second.ID}, "Inactive", "ops@sysmayal.test")

	suite.NoError(err)
	suite.Equal(int64(2), updated)

	reloaded, err := suite.repo.GetByID(first.ID)
	suite.Require().NoError(err)
	suite.Equal("Inactive", reloaded.Status)
	suite.Equal("ops@sysmayal.test", reloaded.UpdatedBy)

	reloaded, err = suite.repo.GetByID(untouched.ID)
	suite.Require().NoError(err)
	suite.Equal("Active", reloaded.Status)
}

func (suite *ContactRepositoryTestSuite) TestTouchLastContacted() {
	contact := suite.factories.Contact.WithOrganization(suite.org.ID)
	suite.Require().NoError(suite.repo.Create(contact))
	at := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	suite.NoError(suite.repo.TouchLastContacted(contact.ID, at))

	reloaded, err := suite.repo.GetByID(contact.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(reloaded.LastContacted)
	suite.True(at.Equal(*reloaded.LastContacted))

	suite.ErrorIs(suite.repo.TouchLastContacted(uuid.New(), at), gorm.ErrRecordNotFound)
}

func (suite *ContactRepositoryTestSuite) TestDelete() {
	contact := suite.factories.Contact.WithOrganization(suite.org.ID)
	suite.Require().NoError(suite.repo.Create(contact))

	suite.NoError(suite.repo.Delete(contact.ID))

	_, err := suite.repo.GetByID(contact.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestContactRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ContactRepositoryTestSuite))
}
