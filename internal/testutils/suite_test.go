package testutils

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestTableNames(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB, DriverName: "postgres"}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	tables, err := tableNames(db)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"distribution_organizations",
		"partner_accounts",
		"distribution_contacts",
		"country_regulations",
		"product_compliance_records",
		"certification_documents",
		"market_entry_plans",
		"market_research_studies",
		"development_projects",
		"record_comments",
		"communications",
	}, tables)
}

func TestCreateDistributionNetworkLinksRecords(t *testing.T) {
	org, contact, record := NewFactorySet().CreateDistributionNetwork()

	assert.Equal(t, org.ID, contact.OrganizationID)
	assert.Equal(t, org.Country, contact.Country)
	assert.Equal(t, org.Country, record.Country)
	require.NotNil(t, record.ManufacturerID)
	assert.Equal(t, org.ID, *record.ManufacturerID)
}

func TestConfigForContainer(t *testing.T) {
	cfg := testConfig("postgres://sysmayal@127.0.0.1:5432/sysmayal_test")

	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "postgres://sysmayal@127.0.0.1:5432/sysmayal_test", cfg.DatabaseURL)
	assert.False(t, cfg.IsProduction())
}
