package importer

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/importer_mocks.go -package=mocks

// ImporterInterface defines the interface for bulk imports
type ImporterInterface interface {
	Import(ctx context.Context, doctype string, r io.Reader, mapping map[string]string) (*Result, error)
	ImportRegulations(ctx context.Context, r io.Reader) (*RegulationResult, error)
	Validate(doctype string, r io.Reader, mapping map[string]string) (*ValidationReport, error)
}
