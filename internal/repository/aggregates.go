package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GroupCount is a label with the number of rows carrying it
type GroupCount struct {
	Key   string `json:"key" gorm:"column:key"`
	Count int64  `json:"count" gorm:"column:count"`
}

// CountryStatusCount is a per-country, per-status row count
type CountryStatusCount struct {
	Country string `json:"country" gorm:"column:country"`
	Status  string `json:"status" gorm:"column:status"`
	Count   int64  `json:"count" gorm:"column:count"`
}

// groupCounts counts rows of model grouped by column, largest groups first
func groupCounts(db *gorm.DB, model interface{}, column string) ([]GroupCount, error) {
	var rows []GroupCount
	err := db.Model(model).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Order("count DESC, key").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// dayRange returns the [from, to] date window starting today and spanning days
func dayRange(today time.Time, days int) (time.Time, time.Time) {
	return today, today.AddDate(0, 0, days)
}

// sumOrZero converts a nullable SUM/AVG result into a decimal
func sumOrZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}
