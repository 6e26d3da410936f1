package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("strips BOM and trims cells", func(t *testing.T) {
		input := "\xEF\xBB\xBForganization_name, country\n  Aloe Vida ,Brazil\n"

		sheet, err := Parse(strings.NewReader(input), nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"organization_name", "country"}, sheet.Columns)
		require.Len(t, sheet.Rows, 1)
		assert.Equal(t, 1, sheet.Rows[0].Number)
		assert.Equal(t, "Aloe Vida", sheet.Rows[0].Get("organization_name"))
		assert.Equal(t, "Brazil", sheet.Rows[0].Get("country"))
	})

	t.Run("renames mapped headers", func(t *testing.T) {
		input := "Company,Nation\nAloe Vida,Brazil\n"

		sheet, err := Parse(strings.NewReader(input), map[string]string{"Company": "organization_name", "Nation": "country"})

		require.NoError(t, err)
		assert.True(t, sheet.HasColumn("organization_name"))
		assert.False(t, sheet.HasColumn("Company"))
		assert.Equal(t, "Aloe Vida", sheet.Rows[0].Get("organization_name"))
	})

	t.Run("skips blank lines and pads short rows", func(t *testing.T) {
		input := "first_name,last_name,email_id\nMaria,Santos,maria@example.com\n,,\nJoao\n"

		sheet, err := Parse(strings.NewReader(input), nil)

		require.NoError(t, err)
		require.Len(t, sheet.Rows, 2)
		assert.Equal(t, 2, sheet.Rows[1].Number)
		assert.Equal(t, "Joao", sheet.Rows[1].Get("first_name"))
		assert.Equal(t, "", sheet.Rows[1].Get("email_id"))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := Parse(strings.NewReader(""), nil)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("rejects invalid UTF-8", func(t *testing.T) {
		_, err := Parse(strings.NewReader("organization_name\n\xff\xfeAloe\n"), nil)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})
}
