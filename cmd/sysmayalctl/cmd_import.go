package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"sysmayal-backend/internal/app"
	"sysmayal-backend/internal/importer"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

var columnMaps []string

// importCmd loads organizations or contacts from a CSV file
var importCmd = &cobra.Command{
	Use:   "import organizations|contacts FILE",
	Short: "Import organizations or contacts from a CSV file",
	Long: `Import rows from a CSV file. Each row is imported on its own: duplicates are
skipped with a warning and failing rows are listed with their data.

Use --map to rename source columns, e.g. --map "Company=organization_name".`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{importer.DoctypeOrganizations, importer.DoctypeContacts},
	RunE:      runImport,
}

// validateCmd checks a CSV file without importing it
var validateCmd = &cobra.Command{
	Use:   "validate organizations|contacts FILE",
	Short: "Check a CSV file without importing it",
	Args:  cobra.ExactArgs(2),
	RunE:  runValidate,
}

// templateCmd prints the CSV template of a doctype
var templateCmd = &cobra.Command{
	Use:   "template organizations|contacts",
	Short: "Print the CSV import template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplate,
}

// regulationsCmd groups the country regulation commands
var regulationsCmd = &cobra.Command{
	Use:   "regulations",
	Short: "Manage country regulation records",
}

// regulationsImportCmd loads a regulation JSON document
var regulationsImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import country regulations from a JSON document",
	Long: `Import country regulations from a JSON document shaped as
{"countries": {"<code>": {"regulatory_body": ..., "product_classifications": {...}}}}.
Existing countries are updated, new ones are created.`,
	Args: cobra.ExactArgs(1),
	RunE: runRegulationsImport,
}

func init() {
	importCmd.Flags().StringArrayVar(&columnMaps, "map", nil, "Column mapping as source=target (repeatable)")
	validateCmd.Flags().StringArrayVar(&columnMaps, "map", nil, "Column mapping as source=target (repeatable)")
	regulationsCmd.AddCommand(regulationsImportCmd)
}

func parseColumnMaps(values []string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	mapping := make(map[string]string, len(values))
	for _, value := range values {
		source, target, ok := strings.Cut(value, "=")
		if !ok || strings.TrimSpace(source) == "" || strings.TrimSpace(target) == "" {
			return nil, fmt.Errorf("invalid --map value %q, expected source=target", value)
		}
		mapping[strings.TrimSpace(source)] = strings.TrimSpace(target)
	}
	return mapping, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	doctype, path := args[0], args[1]
	mapping, err := parseColumnMaps(columnMaps)
	if err != nil {
		return err
	}

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer file.Close()

		result, err := a.Importer.Import(ctx, doctype, file, mapping)
		if err != nil {
			return err
		}
		return printJSON(cmd, result)
	})
}

func runValidate(cmd *cobra.Command, args []string) error {
	doctype, path := args[0], args[1]
	mapping, err := parseColumnMaps(columnMaps)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	// validation only reads the file, no stores are needed
	report, err := importer.New(nil, nil, nil, nil, validator.New()).Validate(doctype, file, mapping)
	if err != nil {
		return err
	}
	return printJSON(cmd, report)
}

func runTemplate(cmd *cobra.Command, args []string) error {
	tpl, err := importer.GetTemplate(args[0])
	if err != nil {
		return err
	}
	return tpl.WriteCSV(cmd.OutOrStdout())
}

func runRegulationsImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer file.Close()

		result, err := a.Importer.ImportRegulations(ctx, file)
		if err != nil {
			return err
		}
		return printJSON(cmd, result)
	})
}
