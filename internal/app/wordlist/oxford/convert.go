package oxford

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/oxford-wordlist/internal/domain"
)

// ToWordEntries converts parsed entries into persistable records, assigning
// IDs and positions. Entries that produced no subentries are still returned
// so the best-effort headword survives.
func ToWordEntries(entries []domain.Entry) ([]domain.WordEntry, []domain.WordSubentry) {
	now := time.Now()

	wordEntries := make([]domain.WordEntry, 0, len(entries))
	var subentries []domain.WordSubentry

	for _, e := range entries {
		if e.Headword == "" {
			continue
		}

		we := domain.WordEntry{
			ID:             uuid.New(),
			Headword:       e.Headword,
			HeadNormalized: domain.NormalizeText(e.Headword),
			WordForms:      e.WordForms,
			CreatedAt:      now,
		}
		wordEntries = append(wordEntries, we)

		for i, sub := range e.Subentries {
			var def *string
			if sub.Definition != "" {
				d := sub.Definition
				def = &d
			}
			subentries = append(subentries, domain.WordSubentry{
				ID:          uuid.New(),
				WordEntryID: we.ID,
				Definition:  def,
				POSTags:     sub.PartsOfSpeech,
				Level:       sub.Level,
				Position:    i,
			})
		}
	}

	return wordEntries, subentries
}

// ToParseDiagnostics converts diagnostics into persistable records.
func ToParseDiagnostics(diags []domain.Diagnostic) []domain.ParseDiagnostic {
	now := time.Now()

	records := make([]domain.ParseDiagnostic, len(diags))
	for i, d := range diags {
		records[i] = domain.ParseDiagnostic{
			ID:        uuid.New(),
			LineIndex: d.LineIndex,
			Kind:      d.Kind,
			RawText:   d.RawText,
			CreatedAt: now,
		}
	}
	return records
}
