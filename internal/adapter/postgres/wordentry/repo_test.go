package wordentry_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/oxford-wordlist/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/oxford-wordlist/internal/adapter/postgres/wordentry"
	"github.com/heartmarshall/oxford-wordlist/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*wordentry.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return wordentry.New(pool), pool
}

// makeEntry builds a word entry with a unique headword so parallel tests
// cannot collide on the head_normalized unique index.
func makeEntry(headword string) domain.WordEntry {
	unique := headword + "-" + uuid.New().String()[:8]
	return domain.WordEntry{
		ID:             uuid.New(),
		Headword:       unique,
		HeadNormalized: domain.NormalizeText(unique),
		WordForms:      []string{unique},
		CreatedAt:      time.Now().UTC(),
	}
}

func TestRepo_BulkInsertEntries(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	entries := []domain.WordEntry{makeEntry("bank"), makeEntry("abandon")}

	inserted, err := repo.BulkInsertEntries(ctx, entries)
	if err != nil {
		t.Fatalf("BulkInsertEntries: unexpected error: %v", err)
	}
	if inserted != 2 {
		t.Errorf("inserted = %d, want 2", inserted)
	}

	// Same headwords with fresh IDs must be skipped by the conflict target.
	dup := []domain.WordEntry{
		{ID: uuid.New(), Headword: entries[0].Headword, HeadNormalized: entries[0].HeadNormalized, WordForms: entries[0].WordForms, CreatedAt: time.Now().UTC()},
	}
	inserted, err = repo.BulkInsertEntries(ctx, dup)
	if err != nil {
		t.Fatalf("BulkInsertEntries (dup): unexpected error: %v", err)
	}
	if inserted != 0 {
		t.Errorf("duplicate insert = %d, want 0", inserted)
	}
}

func TestRepo_BulkInsertEntries_Empty(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	inserted, err := repo.BulkInsertEntries(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted != 0 {
		t.Errorf("inserted = %d, want 0", inserted)
	}
}

func TestRepo_GetEntryIDsByNormalizedTexts(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	entries := []domain.WordEntry{makeEntry("long-term"), makeEntry("o'clock")}
	if _, err := repo.BulkInsertEntries(ctx, entries); err != nil {
		t.Fatalf("BulkInsertEntries: %v", err)
	}

	texts := []string{entries[0].HeadNormalized, entries[1].HeadNormalized, "no-such-headword"}
	got, err := repo.GetEntryIDsByNormalizedTexts(ctx, texts)
	if err != nil {
		t.Fatalf("GetEntryIDsByNormalizedTexts: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("resolved %d headwords, want 2", len(got))
	}
	for _, e := range entries {
		if got[e.HeadNormalized] != e.ID {
			t.Errorf("headword %q: ID = %s, want %s", e.HeadNormalized, got[e.HeadNormalized], e.ID)
		}
	}
	if _, ok := got["no-such-headword"]; ok {
		t.Error("unknown headword should be absent from the result")
	}
}

// After a conflict-skipped re-insert, the lookup must return the original
// stored ID, not the ID of the skipped row.
func TestRepo_GetEntryIDs_CanonicalAfterConflict(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	original := makeEntry("walk")
	if _, err := repo.BulkInsertEntries(ctx, []domain.WordEntry{original}); err != nil {
		t.Fatalf("BulkInsertEntries: %v", err)
	}

	skipped := original
	skipped.ID = uuid.New()
	if _, err := repo.BulkInsertEntries(ctx, []domain.WordEntry{skipped}); err != nil {
		t.Fatalf("BulkInsertEntries (dup): %v", err)
	}

	got, err := repo.GetEntryIDsByNormalizedTexts(ctx, []string{original.HeadNormalized})
	if err != nil {
		t.Fatalf("GetEntryIDsByNormalizedTexts: %v", err)
	}
	if got[original.HeadNormalized] != original.ID {
		t.Errorf("canonical ID = %s, want %s", got[original.HeadNormalized], original.ID)
	}
}

func TestRepo_BulkInsertSubentries(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	entry := makeEntry("bank")
	if _, err := repo.BulkInsertEntries(ctx, []domain.WordEntry{entry}); err != nil {
		t.Fatalf("BulkInsertEntries: %v", err)
	}

	money := "money"
	subentries := []domain.WordSubentry{
		{ID: uuid.New(), WordEntryID: entry.ID, Definition: &money, POSTags: []string{"n."}, Level: domain.LevelB1, Position: 0},
		{ID: uuid.New(), WordEntryID: entry.ID, Definition: nil, POSTags: []string{"n.", "v."}, Level: domain.LevelA2, Position: 1},
	}

	inserted, err := repo.BulkInsertSubentries(ctx, subentries)
	if err != nil {
		t.Fatalf("BulkInsertSubentries: unexpected error: %v", err)
	}
	if inserted != 2 {
		t.Errorf("inserted = %d, want 2", inserted)
	}

	// Re-inserting the same IDs is a no-op.
	inserted, err = repo.BulkInsertSubentries(ctx, subentries)
	if err != nil {
		t.Fatalf("BulkInsertSubentries (dup): %v", err)
	}
	if inserted != 0 {
		t.Errorf("duplicate insert = %d, want 0", inserted)
	}

	rows, err := pool.Query(ctx,
		`SELECT definition, pos_tags, cefr_level, position
		 FROM word_subentries WHERE word_entry_id = $1 ORDER BY position`, entry.ID)
	if err != nil {
		t.Fatalf("query subentries: %v", err)
	}
	defer rows.Close()

	var stored []domain.WordSubentry
	for rows.Next() {
		var s domain.WordSubentry
		var level string
		if err := rows.Scan(&s.Definition, &s.POSTags, &level, &s.Position); err != nil {
			t.Fatalf("scan subentry: %v", err)
		}
		s.Level = domain.Level(level)
		stored = append(stored, s)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}

	if len(stored) != 2 {
		t.Fatalf("stored %d subentries, want 2", len(stored))
	}
	if stored[0].Definition == nil || *stored[0].Definition != "money" {
		t.Errorf("subentry 0 definition = %v, want money", stored[0].Definition)
	}
	if stored[1].Definition != nil {
		t.Errorf("subentry 1 definition = %v, want NULL", *stored[1].Definition)
	}
	if stored[0].Level != domain.LevelB1 || stored[1].Level != domain.LevelA2 {
		t.Errorf("levels = %q, %q, want B1, A2", stored[0].Level, stored[1].Level)
	}
	if len(stored[1].POSTags) != 2 {
		t.Errorf("subentry 1 pos_tags = %v, want two tags", stored[1].POSTags)
	}
}

func TestRepo_BulkInsertSubentries_UnknownEntry(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	orphan := []domain.WordSubentry{
		{ID: uuid.New(), WordEntryID: uuid.New(), POSTags: []string{"n."}, Level: domain.LevelA1},
	}
	if _, err := repo.BulkInsertSubentries(ctx, orphan); err == nil {
		t.Error("insert with unknown word_entry_id should violate the foreign key")
	}
}

func TestRepo_DeleteEntryCascades(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	entry := makeEntry("number")
	if _, err := repo.BulkInsertEntries(ctx, []domain.WordEntry{entry}); err != nil {
		t.Fatalf("BulkInsertEntries: %v", err)
	}
	subs := []domain.WordSubentry{
		{ID: uuid.New(), WordEntryID: entry.ID, POSTags: []string{"n."}, Level: domain.LevelA1},
	}
	if _, err := repo.BulkInsertSubentries(ctx, subs); err != nil {
		t.Fatalf("BulkInsertSubentries: %v", err)
	}

	if _, err := pool.Exec(ctx, `DELETE FROM word_entries WHERE id = $1`, entry.ID); err != nil {
		t.Fatalf("delete entry: %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM word_subentries WHERE word_entry_id = $1`, entry.ID).Scan(&count); err != nil {
		t.Fatalf("count subentries: %v", err)
	}
	if count != 0 {
		t.Errorf("subentries after entry delete = %d, want 0", count)
	}
}

func TestRepo_BulkInsertDiagnostics(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	diags := []domain.ParseDiagnostic{
		{ID: uuid.New(), LineIndex: 9, Kind: domain.DiagnosticNoWordBoundaryFound, RawText: "orphan words without markers", CreatedAt: time.Now().UTC()},
		{ID: uuid.New(), LineIndex: 10, Kind: domain.DiagnosticUnrecognizedPartOfSpeech, RawText: "zz.", CreatedAt: time.Now().UTC()},
	}

	inserted, err := repo.BulkInsertDiagnostics(ctx, diags)
	if err != nil {
		t.Fatalf("BulkInsertDiagnostics: unexpected error: %v", err)
	}
	if inserted != 2 {
		t.Errorf("inserted = %d, want 2", inserted)
	}

	var kind, raw string
	if err := pool.QueryRow(ctx,
		`SELECT kind, raw_text FROM parse_diagnostics WHERE id = $1`, diags[0].ID).Scan(&kind, &raw); err != nil {
		t.Fatalf("query diagnostic: %v", err)
	}
	if kind != string(domain.DiagnosticNoWordBoundaryFound) {
		t.Errorf("kind = %q, want %q", kind, domain.DiagnosticNoWordBoundaryFound)
	}
	if raw != "orphan words without markers" {
		t.Errorf("raw_text = %q", raw)
	}
}

func TestRepo_CountEntries(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	before, err := repo.CountEntries(ctx)
	if err != nil {
		t.Fatalf("CountEntries: %v", err)
	}

	if _, err := repo.BulkInsertEntries(ctx, []domain.WordEntry{makeEntry("greet")}); err != nil {
		t.Fatalf("BulkInsertEntries: %v", err)
	}

	after, err := repo.CountEntries(ctx)
	if err != nil {
		t.Fatalf("CountEntries: %v", err)
	}
	// Other parallel tests may insert too, so only require growth.
	if after <= before {
		t.Errorf("count did not grow: before=%d after=%d", before, after)
	}
}
