package importer

import (
	"fmt"
	"io"
	"strings"

	apperrors "sysmayal-backend/internal/errors"
)

// InvalidValue points at a bad cell of an import file
type InvalidValue struct {
	Row   int    `json:"row"`
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// Duplicate is a row whose natural key appears more than once in the file
type Duplicate struct {
	Row              int    `json:"row"`
	OrganizationName string `json:"organization_name,omitempty"`
	Country          string `json:"country,omitempty"`
	EmailID          string `json:"email_id,omitempty"`
	Organization     string `json:"organization,omitempty"`
}

// ValidationReport is the outcome of checking a file without importing it
type ValidationReport struct {
	TotalRows             int            `json:"total_rows"`
	Columns               []string       `json:"columns"`
	MissingRequiredFields []string       `json:"missing_required_fields"`
	InvalidData           []InvalidValue `json:"invalid_data"`
	Duplicates            []Duplicate    `json:"duplicates"`
	Warnings              []string       `json:"warnings"`
}

// Validate checks a CSV for missing columns, empty required cells, bad emails and in-file duplicates
func (im *Importer) Validate(doctype string, r io.Reader, mapping map[string]string) (*ValidationReport, error) {
	required, ok := requiredFields[doctype]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedImportDoctype, doctype)
	}

	sheet, err := Parse(r, mapping)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	report := &ValidationReport{
		TotalRows:             len(sheet.Rows),
		Columns:               sheet.Columns,
		MissingRequiredFields: []string{},
		InvalidData:           []InvalidValue{},
		Duplicates:            []Duplicate{},
		Warnings:              []string{},
	}

	for _, field := range required {
		if !sheet.HasColumn(field) {
			report.MissingRequiredFields = append(report.MissingRequiredFields, field)
		}
	}

	for _, row := range sheet.Rows {
		for _, field := range required {
			if sheet.HasColumn(field) && row.Get(field) == "" {
				report.InvalidData = append(report.InvalidData, InvalidValue{Row: row.Number, Field: field, Issue: "Required field is empty"})
			}
		}
		if doctype == DoctypeContacts {
			if email := row.Get("email_id"); email != "" && im.validator.Var(email, "email") != nil {
				report.InvalidData = append(report.InvalidData, InvalidValue{Row: row.Number, Field: "email_id", Issue: "Invalid email format"})
			}
		}
	}

	switch doctype {
	case DoctypeOrganizations:
		if sheet.HasColumn("organization_name") && sheet.HasColumn("country") {
			for _, row := range duplicateRows(sheet.Rows, "organization_name", "country") {
				report.Duplicates = append(report.Duplicates, Duplicate{
					Row:              row.Number,
					OrganizationName: row.Get("organization_name"),
					Country:          row.Get("country"),
				})
			}
		}
	case DoctypeContacts:
		if sheet.HasColumn("email_id") && sheet.HasColumn("organization") {
			for _, row := range duplicateRows(sheet.Rows, "email_id", "organization") {
				report.Duplicates = append(report.Duplicates, Duplicate{
					Row:          row.Number,
					EmailID:      row.Get("email_id"),
					Organization: row.Get("organization"),
				})
			}
		}
	}

	return report, nil
}

// duplicateRows returns every row whose key columns occur more than once, in file order
func duplicateRows(rows []*Row, columns ...string) []*Row {
	key := func(row *Row) string {
		parts := make([]string, len(columns))
		for i, c := range columns {
			parts[i] = row.Get(c)
		}
		return strings.Join(parts, "\x00")
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[key(row)]++
	}

	var dups []*Row
	for _, row := range rows {
		if counts[key(row)] > 1 {
			dups = append(dups, row)
		}
	}
	return dups
}
