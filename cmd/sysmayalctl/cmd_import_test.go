package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumnMaps(t *testing.T) {
	t.Run("no values", func(t *testing.T) {
		mapping, err := parseColumnMaps(nil)
		require.NoError(t, err)
		assert.Nil(t, mapping)
	})

	t.Run("trims both sides", func(t *testing.T) {
		mapping, err := parseColumnMaps([]string{" Company = organization_name", "E-Mail=email_id"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"Company": "organization_name", "E-Mail": "email_id"}, mapping)
	})

	t.Run("keeps equals signs in the target", func(t *testing.T) {
		mapping, err := parseColumnMaps([]string{"a=b=c"})
		require.NoError(t, err)
		assert.Equal(t, "b=c", mapping["a"])
	})

	for _, bad := range []string{"Company", "=organization_name", "Company="} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := parseColumnMaps([]string{bad})
			assert.ErrorContains(t, err, "expected source=target")
		})
	}
}

func TestTemplateCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"template", "organizations"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	header := strings.SplitN(out.String(), "\n", 2)[0]
	assert.True(t, strings.HasPrefix(header, "organization_name,"))
}

func TestTemplateCommandUnknownDoctype(t *testing.T) {
	rootCmd.SetArgs([]string{"template", "invoices"})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetErr(nil)
	})

	assert.Error(t, rootCmd.Execute())
}
