package importer

import (
	"encoding/csv"
	"io"

	apperrors "sysmayal-backend/internal/errors"
)

// Template lists the columns of an import file with a sample line
type Template struct {
	Fields     []string   `json:"fields"`
	SampleData [][]string `json:"sample_data"`
}

var templates = map[string]Template{
	DoctypeOrganizations: {
		Fields: []string{
			"organization_name", "organization_type", "country", "territory",
			"status", "contact_person", "email_id", "phone", "mobile_no",
			"website", "address_line_1", "city", "state", "postal_code",
			"business_focus", "annual_revenue", "employee_count", "regulatory_status",
		},
		SampleData: [][]string{{
			"ABC Distribution Ltd", "Distributor", "United States", "North America",
			"Active", "John Smith", "john@abcdist.com", "+1-555-0123", "+1-555-0124",
			"www.abcdist.com", "123 Main St", "New York", "NY", "10001",
			"Aloe vera product distribution", "5000000", "50", "Compliant",
		}},
	},
	DoctypeContacts: {
		Fields: []string{
			"first_name", "last_name", "organization", "designation", "department",
			"email_id", "phone", "mobile_no", "country", "regulatory_role",
			"status", "preferred_language", "communication_preference", "years_experience",
		},
		SampleData: [][]string{{
			"John", "Smith", "ABC Distribution Ltd", "Sales Manager", "Sales",
			"john.smith@abcdist.com", "+1-555-0123", "+1-555-0124", "United States",
			"Sales Manager", "Active", "English", "Email", "10",
		}},
	},
}

var requiredFields = map[string][]string{
	DoctypeOrganizations: {"organization_name", "country"},
	DoctypeContacts:      {"first_name", "email_id", "organization"},
}

// GetTemplate returns the import template of a doctype
func GetTemplate(doctype string) (*Template, error) {
	tpl, ok := templates[doctype]
	if !ok {
		return nil, apperrors.NewTemplateNotAvailableError(doctype)
	}
	return &tpl, nil
}

// WriteCSV writes the template header and sample lines
func (t *Template) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Fields); err != nil {
		return err
	}
	if err := cw.WriteAll(t.SampleData); err != nil {
		return err
	}
	return cw.Error()
}
