//go:build integration
// +build integration

package repository

import (
	"testing"

	"sysmayal-backend/internal/database/models"
	"sysmayal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type DevelopmentProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DevelopmentProjectRepository
	factories     *testutils.FactorySet
}

func (suite *DevelopmentProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewDevelopmentProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *DevelopmentProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *DevelopmentProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *DevelopmentProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *DevelopmentProjectRepositoryTestSuite) TestFindActiveForMarket() {
	active := suite.factories.DevelopmentProject.Create()
	active.TargetCountries = "Germany, Austria"
	planned := suite.factories.DevelopmentProject.WithStatus(models.ProjectStatusPlanning)
	planned.TargetCountries = "germany"
	finished := suite.factories.DevelopmentProject.WithStatus(models.ProjectStatusCompleted)
	finished.TargetCountries = "Germany"
	otherCategory := suite.factories.DevelopmentProject.Create()
	otherCategory.TargetCountries = "Germany"
	otherCategory.ProductCategory = "Beverages"
	suite.baseTestSuite.Seed(suite.T(), active, planned, finished, otherCategory)

	projects, err := suite.repo.FindActiveForMarket("Germany", "Cosmetics")

	suite.NoError(err)
	ids := []interface{}{}
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	suite.ElementsMatch([]interface{}{active.ID, planned.ID}, ids)
}

func (suite *DevelopmentProjectRepositoryTestSuite) TestFindActiveForMarketMatchesWildcardsLiterally() {
	project := suite.factories.DevelopmentProject.Create()
	project.TargetCountries = "Germany"
	suite.Require().NoError(suite.repo.Create(project))

	for _, country := range []string{"%", "_ermany", "G%"} {
		projects, err := suite.repo.FindActiveForMarket(country, "Cosmetics")
		suite.NoError(err)
		suite.Empty(projects, country)
	}
}

func (suite *DevelopmentProjectRepositoryTestSuite) TestCountByCompletionStage() {
	for _, pct := range []int{10, 30, 35, 80, 100} {
		project := suite.factories.DevelopmentProject.Create()
		project.CompletionPercentage = pct
		suite.Require().NoError(suite.repo.Create(project))
	}

	stages, err := suite.repo.CountByCompletionStage()

	suite.NoError(err)
	suite.Equal([]GroupCount{
		{Key: "Starting", Count: 1},
		{Key: "In Progress", Count: 2},
		{Key: "Nearly Complete", Count: 1},
		{Key: "Completed", Count: 1},
	}, stages)
}

func (suite *DevelopmentProjectRepositoryTestSuite) TestGetAllOrdersByExpectedCompletion() {
	today := models.Today()
	late := suite.factories.DevelopmentProject.WithExpectedCompletion(today.AddDays(300))
	early := suite.factories.DevelopmentProject.WithExpectedCompletion(today.AddDays(30))
	suite.baseTestSuite.Seed(suite.T(), late, early)

	projects, total, err := suite.repo.GetAll(DevelopmentProjectFilter{ProductCategory: "Cosmetics"}, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(projects, 2)
	suite.Equal(early.ID, projects[0].ID)
}

func (suite *DevelopmentProjectRepositoryTestSuite) TestGetByName() {
	project := suite.factories.DevelopmentProject.Create()
	project.ProjectName = "Cold-pressed aloe juice"
	suite.Require().NoError(suite.repo.Create(project))

	found, err := suite.repo.GetByName("Cold-pressed aloe juice")

	suite.NoError(err)
	suite.Equal(project.ID, found.ID)
	suite.True(project.EstimatedInvestment.Equal(found.EstimatedInvestment))
}

func TestDevelopmentProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DevelopmentProjectRepositoryTestSuite))
}
