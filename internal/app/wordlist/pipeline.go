package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/oxford-wordlist/internal/app/wordlist/oxford"
	"github.com/heartmarshall/oxford-wordlist/internal/domain"
)

// Result holds the outcome of a pipeline run.
type Result struct {
	Lines       int
	Entries     int
	Subentries  int
	Diagnostics int
	Inserted    int
	Skipped     int
	Duration    time.Duration
	Err         error
}

// sourceLine pairs a kept line with its original file line number, so results
// and diagnostics keep input order even when blank lines are dropped and
// parsing runs out of order.
type sourceLine struct {
	Index int
	Text  string
}

// Pipeline reads the configured word list, parses it, and writes the parsed
// entries, subentries, and diagnostics through the repo.
type Pipeline struct {
	log    *slog.Logger
	repo   Repo
	cfg    Config
	parser *oxford.Parser
	result Result
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo Repo, cfg Config) *Pipeline {
	return &Pipeline{
		log:    log,
		repo:   repo,
		cfg:    cfg,
		parser: oxford.New(),
	}
}

// Result returns run statistics after Run completes.
func (p *Pipeline) Result() Result {
	return p.result
}

// Run executes the import. The only fatal error is failing to read the word
// list; every per-line anomaly is a diagnostic, not an error.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	defer func() { p.result.Duration = time.Since(start) }()

	lines, err := readLines(p.cfg.WordListPath)
	if err != nil {
		p.result.Err = err
		return fmt.Errorf("read word list: %w", err)
	}
	p.result.Lines = len(lines)

	entries, diags := p.parseAll(ctx, lines)

	p.result.Entries = len(entries)
	p.result.Diagnostics = len(diags)
	for _, e := range entries {
		p.result.Subentries += len(e.Subentries)
	}

	p.log.Info("word list parsed",
		slog.Int("lines", p.result.Lines),
		slog.Int("entries", p.result.Entries),
		slog.Int("subentries", p.result.Subentries),
		slog.Int("diagnostics", p.result.Diagnostics),
	)
	p.logDiagnosticKinds(diags)

	if p.cfg.DryRun {
		p.result.Skipped = len(entries)
		return nil
	}

	if err := p.store(ctx, entries, diags); err != nil {
		p.result.Err = err
		return err
	}

	total, err := p.repo.CountEntries(ctx)
	if err != nil {
		p.log.Warn("count entries", slog.String("error", err.Error()))
	} else {
		p.log.Info("import completed",
			slog.Int("inserted", p.result.Inserted),
			slog.Int("total_entries", total),
			slog.Duration("duration", time.Since(start)),
		)
	}

	return nil
}

// parseAll parses lines concurrently with a bounded worker pool. Each worker
// writes into its own slot of an index-addressed slice, so no locking is
// needed and input order is preserved.
func (p *Pipeline) parseAll(ctx context.Context, lines []sourceLine) ([]domain.Entry, []domain.Diagnostic) {
	entries := make([]domain.Entry, len(lines))
	lineDiags := make([][]domain.Diagnostic, len(lines))

	g, _ := errgroup.WithContext(ctx)
	workers := p.cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	g.SetLimit(workers)

	for i, line := range lines {
		g.Go(func() error {
			entries[i], lineDiags[i] = p.parser.ParseLine(line.Index, line.Text)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	var diags []domain.Diagnostic
	for _, d := range lineDiags {
		diags = append(diags, d...)
	}
	return entries, diags
}

// store converts and bulk-inserts parsed output in parent→child order:
// entries → subentries → diagnostics.
func (p *Pipeline) store(ctx context.Context, entries []domain.Entry, diags []domain.Diagnostic) error {
	wordEntries, subentries := oxford.ToWordEntries(entries)

	inserted, err := batchProcess(wordEntries, p.cfg.BatchSize, func(batch []domain.WordEntry) (int, error) {
		return p.repo.BulkInsertEntries(ctx, batch)
	})
	if err != nil {
		return fmt.Errorf("insert entries: %w", err)
	}
	p.result.Inserted += inserted

	// Entries skipped by ON CONFLICT keep their original IDs in the DB;
	// remap subentries onto the canonical IDs before inserting.
	subentries, err = p.remapSubentries(ctx, wordEntries, subentries)
	if err != nil {
		return fmt.Errorf("remap subentries: %w", err)
	}

	inserted, err = batchProcess(subentries, p.cfg.BatchSize, func(batch []domain.WordSubentry) (int, error) {
		return p.repo.BulkInsertSubentries(ctx, batch)
	})
	if err != nil {
		return fmt.Errorf("insert subentries: %w", err)
	}
	p.result.Inserted += inserted

	diagRecords := oxford.ToParseDiagnostics(diags)
	if _, err := batchProcess(diagRecords, p.cfg.BatchSize, func(batch []domain.ParseDiagnostic) (int, error) {
		return p.repo.BulkInsertDiagnostics(ctx, batch)
	}); err != nil {
		p.log.Warn("diagnostic insert failed", slog.String("error", err.Error()))
	}

	return nil
}

// remapSubentries resolves each entry's normalized headword to its canonical
// stored ID and rewrites subentry foreign keys accordingly.
func (p *Pipeline) remapSubentries(ctx context.Context, wordEntries []domain.WordEntry, subentries []domain.WordSubentry) ([]domain.WordSubentry, error) {
	if len(subentries) == 0 {
		return subentries, nil
	}

	texts := make([]string, 0, len(wordEntries))
	for _, we := range wordEntries {
		texts = append(texts, we.HeadNormalized)
	}

	canonical, err := batchedLookup(ctx, p.repo, texts, p.cfg.BatchSize)
	if err != nil {
		return nil, err
	}

	idByOld := make(map[uuid.UUID]uuid.UUID, len(wordEntries))
	for _, we := range wordEntries {
		if id, ok := canonical[we.HeadNormalized]; ok {
			idByOld[we.ID] = id
		}
	}

	remapped := subentries[:0]
	for _, sub := range subentries {
		id, ok := idByOld[sub.WordEntryID]
		if !ok {
			continue
		}
		sub.WordEntryID = id
		remapped = append(remapped, sub)
	}
	return remapped, nil
}

func (p *Pipeline) logDiagnosticKinds(diags []domain.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	counts := make(map[domain.DiagnosticKind]int)
	for _, d := range diags {
		counts[d.Kind]++
	}
	for kind, n := range counts {
		p.log.Warn("parse diagnostics", slog.String("kind", kind.String()), slog.Int("count", n))
	}
}

// readLines reads the word list, trimming whitespace and dropping blank
// lines. Indexes are 1-based file line numbers.
func readLines(path string) ([]sourceLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var lines []sourceLine
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		lines = append(lines, sourceLine{Index: n, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}

	return lines, nil
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// batchedLookup splits a large text slice into chunks and calls GetEntryIDsByNormalizedTexts.
func batchedLookup(ctx context.Context, repo Repo, texts []string, batchSize int) (map[string]uuid.UUID, error) {
	if len(texts) == 0 {
		return make(map[string]uuid.UUID), nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	result := make(map[string]uuid.UUID, len(texts))
	for i := 0; i < len(texts); i += batchSize {
		end := min(i+batchSize, len(texts))
		batch, err := repo.GetEntryIDsByNormalizedTexts(ctx, texts[i:end])
		if err != nil {
			return nil, err
		}
		maps.Copy(result, batch)
	}
	return result, nil
}
