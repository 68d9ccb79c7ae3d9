// Package wordlist orchestrates the Oxford word-list import pipeline:
// read lines, parse them concurrently, and bulk-write the results.
package wordlist

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/oxford-wordlist/internal/domain"
)

// Repo defines the batch repository contract consumed by the pipeline.
// All methods use only domain types — no adapter imports.
// Implemented by wordentry.Repo.
type Repo interface {
	// Batch inserts — ON CONFLICT DO NOTHING.
	BulkInsertEntries(ctx context.Context, entries []domain.WordEntry) (int, error)
	BulkInsertSubentries(ctx context.Context, subentries []domain.WordSubentry) (int, error)
	BulkInsertDiagnostics(ctx context.Context, diagnostics []domain.ParseDiagnostic) (int, error)

	// Lookups — resolve headwords to canonical entry IDs so subentries of
	// conflict-skipped entries attach to the already-stored row.
	GetEntryIDsByNormalizedTexts(ctx context.Context, texts []string) (map[string]uuid.UUID, error)
	CountEntries(ctx context.Context) (int, error)
}
