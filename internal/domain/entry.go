package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subentry is one definition/part-of-speech/level triple parsed from a line.
// Definition may be empty and PartsOfSpeech may be an empty list; Level is
// always one of the six CEFR codes.
type Subentry struct {
	Definition    string
	PartsOfSpeech []string
	Level         Level
}

// Entry is one parsed word-list line: the literal headword segment, its
// comma-separated alternate forms, and the subentries found after it.
// WordForms is never empty.
type Entry struct {
	Headword   string
	WordForms  []string
	Subentries []Subentry
}

// Diagnostic records a non-fatal parse anomaly attached to a source line.
type Diagnostic struct {
	LineIndex int
	Kind      DiagnosticKind
	RawText   string
}

// WordEntry is the persisted form of an Entry.
type WordEntry struct {
	ID             uuid.UUID
	Headword       string
	HeadNormalized string
	WordForms      []string
	CreatedAt      time.Time
}

// WordSubentry is the persisted form of a Subentry.
type WordSubentry struct {
	ID          uuid.UUID
	WordEntryID uuid.UUID
	Definition  *string
	POSTags     []string
	Level       Level
	Position    int
}

// ParseDiagnostic is the persisted form of a Diagnostic.
type ParseDiagnostic struct {
	ID        uuid.UUID
	LineIndex int
	Kind      DiagnosticKind
	RawText   string
	CreatedAt time.Time
}
