//go:build integration
// +build integration

package repository

import (
	"testing"

	"sysmayal-backend/internal/database/models"
	"sysmayal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type MarketResearchRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MarketResearchRepository
	factories     *testutils.FactorySet
}

func (suite *MarketResearchRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMarketResearchRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *MarketResearchRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *MarketResearchRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *MarketResearchRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MarketResearchRepositoryTestSuite) completed(country string, daysAgo int) *models.MarketResearch {
	study := suite.factories.MarketResearch.WithCountry(country)
	study.ResearchStatus = models.ResearchStatusCompleted
	study.ResearchDate = models.DatePtr(models.Today().AddDays(-daysAgo))
	return study
}

func (suite *MarketResearchRepositoryTestSuite) TestGetCompletedNewestFirst() {
	older := suite.completed("Brazil", 60)
	newer := suite.completed("Brazil", 5)
	running := suite.factories.MarketResearch.WithCountry("Brazil")
	suite.baseTestSuite.Seed(suite.T(), older, newer, running)

	studies, err := suite.repo.GetCompleted(MarketResearchFilter{Country: "Brazil"})

	suite.NoError(err)
	suite.Require().Len(studies, 2)
	suite.Equal(newer.ID, studies[0].ID)
	suite.Equal(older.ID, studies[1].ID)
}

func (suite *MarketResearchRepositoryTestSuite) TestRecentCompletedLimit() {
	suite.baseTestSuite.Seed(suite.T(), suite.completed("Chile", 30), suite.completed("Peru", 10), suite.completed("Peru", 1))

	studies, err := suite.repo.RecentCompleted(2)

	suite.NoError(err)
	suite.Len(studies, 2)
}

func (suite *MarketResearchRepositoryTestSuite) TestTopCountries() {
	suite.baseTestSuite.Seed(suite.T(),
		suite.factories.MarketResearch.WithCountry("Mexico"),
		suite.factories.MarketResearch.WithCountry("Mexico"),
		suite.factories.MarketResearch.WithCountry("Colombia"),
	)

	rows, err := suite.repo.TopCountries(1)

	suite.NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("Mexico", rows[0].Country)
	suite.Equal(int64(2), rows[0].StudyCount)
	suite.Equal(50.0, rows[0].AverageCompletion)
}

func (suite *MarketResearchRepositoryTestSuite) TestCountByCategory() {
	beverage := suite.factories.MarketResearch.Create()
	cosmetic := suite.factories.MarketResearch.Create()
	cosmetic.ProductCategory = "Cosmetics"
	suite.baseTestSuite.Seed(suite.T(), beverage, cosmetic, suite.factories.MarketResearch.Create())

	counts, err := suite.repo.CountByCategory()

	suite.NoError(err)
	suite.Equal([]GroupCount{{Key: "Beverages", Count: 2}, {Key: "Cosmetics", Count: 1}}, counts)
}

func (suite *MarketResearchRepositoryTestSuite) TestGetByTitleAfterUpdate() {
	study := suite.factories.MarketResearch.Create()
	suite.Require().NoError(suite.repo.Create(study))

	study.ResearchTitle = "Aloe beverages in Brazil"
	suite.Require().NoError(suite.repo.Update(study))

	found, err := suite.repo.GetByTitle("Aloe beverages in Brazil")
	suite.NoError(err)
	suite.Equal(study.ID, found.ID)
}

func TestMarketResearchRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MarketResearchRepositoryTestSuite))
}
