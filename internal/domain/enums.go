package domain

// Level is a CEFR proficiency code terminating a subentry.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

// Levels lists the six CEFR codes in ascending order.
func Levels() []Level {
	return []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}
}

// DiagnosticKind classifies a non-fatal parse anomaly.
type DiagnosticKind string

const (
	DiagnosticNoWordBoundaryFound      DiagnosticKind = "NO_WORD_BOUNDARY_FOUND"
	DiagnosticEmptySubentryList        DiagnosticKind = "EMPTY_SUBENTRY_LIST"
	DiagnosticMissingLevel             DiagnosticKind = "MISSING_LEVEL"
	DiagnosticUnrecognizedPartOfSpeech DiagnosticKind = "UNRECOGNIZED_PART_OF_SPEECH"
)

func (k DiagnosticKind) String() string { return string(k) }

func (k DiagnosticKind) IsValid() bool {
	switch k {
	case DiagnosticNoWordBoundaryFound, DiagnosticEmptySubentryList,
		DiagnosticMissingLevel, DiagnosticUnrecognizedPartOfSpeech:
		return true
	}
	return false
}

// KnownPartsOfSpeech is the closed vocabulary of part-of-speech tags as they
// appear in the Oxford word list. Longer tags come before their prefixes
// ("auxiliary v." before "auxiliary") so prefix scans prefer the longest match.
var KnownPartsOfSpeech = []string{
	"noun.",
	"n.",
	"v.",
	"adj.",
	"adv.",
	"prep.",
	"pron.",
	"conj.",
	"interj.",
	"det.",
	"auxiliary v.",
	"auxiliary",
	"aux.",
	"exclam.",
	"modal v.",
	"modal",
	"indefinite article",
	"definite article",
	"number",
	"infinitive marker",
}

var knownPartOfSpeechSet = func() map[string]bool {
	set := make(map[string]bool, len(KnownPartsOfSpeech))
	for _, tag := range KnownPartsOfSpeech {
		set[tag] = true
	}
	return set
}()

// IsKnownPartOfSpeech reports whether tag is exactly one of the closed
// part-of-speech vocabulary entries.
func IsKnownPartOfSpeech(tag string) bool {
	return knownPartOfSpeechSet[tag]
}
