// Package wordentry implements the word-list repository over PostgreSQL.
package wordentry

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/oxford-wordlist/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides bulk writes and lookups for parsed word-list records.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word-list repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// BulkInsertEntries inserts word_entries using pgx.Batch. Existing entries
// (by head_normalized) are skipped via ON CONFLICT DO NOTHING.
// Returns the number of actually inserted rows.
func (r *Repo) BulkInsertEntries(ctx context.Context, entries []domain.WordEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(
			`INSERT INTO word_entries (id, headword, head_normalized, word_forms, created_at)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (head_normalized) DO NOTHING`,
			e.ID, e.Headword, e.HeadNormalized, e.WordForms, e.CreatedAt,
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// BulkInsertSubentries inserts word_subentries using pgx.Batch.
// Existing subentries (by id) are skipped via ON CONFLICT DO NOTHING.
func (r *Repo) BulkInsertSubentries(ctx context.Context, subentries []domain.WordSubentry) (int, error) {
	if len(subentries) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, s := range subentries {
		batch.Queue(
			`INSERT INTO word_subentries (id, word_entry_id, definition, pos_tags, cefr_level, position)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (id) DO NOTHING`,
			s.ID, s.WordEntryID, s.Definition, s.POSTags, string(s.Level), s.Position,
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// BulkInsertDiagnostics inserts parse_diagnostics using pgx.Batch.
func (r *Repo) BulkInsertDiagnostics(ctx context.Context, diagnostics []domain.ParseDiagnostic) (int, error) {
	if len(diagnostics) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, d := range diagnostics {
		batch.Queue(
			`INSERT INTO parse_diagnostics (id, line_index, kind, raw_text, created_at)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO NOTHING`,
			d.ID, d.LineIndex, string(d.Kind), d.RawText, d.CreatedAt,
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// GetEntryIDsByNormalizedTexts resolves normalized headwords to entry IDs.
// Unknown headwords are absent from the result map.
func (r *Repo) GetEntryIDsByNormalizedTexts(ctx context.Context, texts []string) (map[string]uuid.UUID, error) {
	result := make(map[string]uuid.UUID, len(texts))
	if len(texts) == 0 {
		return result, nil
	}

	sql, args, err := psql.
		Select("id", "head_normalized").
		From("word_entries").
		Where(squirrel.Eq{"head_normalized": texts}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query entry IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var text string
		if err := rows.Scan(&id, &text); err != nil {
			return nil, fmt.Errorf("scan entry ID: %w", err)
		}
		result[text] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return result, nil
}

// CountEntries returns the total number of stored word entries.
func (r *Repo) CountEntries(ctx context.Context) (int, error) {
	sql, args, err := psql.Select("COUNT(*)").From("word_entries").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}

// sendBatchExec sends the batch and sums affected rows across all statements.
func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}
