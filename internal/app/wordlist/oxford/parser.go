// Package oxford parses Oxford word-list lines into structured entries.
// Pure functions: lines in, domain structs out. No database dependencies.
//
// A line carries one or more headword forms followed by repeated subentries,
// each an optional parenthesized definition, part-of-speech tags, and a CEFR
// level code. There are no reliable delimiters between fields; boundaries are
// recovered from overlapping lexical cues (parentheses, the closed
// part-of-speech vocabulary, and the six level codes).
package oxford

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/oxford-wordlist/internal/domain"
)

// Parser holds the fixed marker vocabularies. All fields are bound at
// construction and never mutated, so a single Parser is safe for concurrent
// use across lines.
type Parser struct {
	posMarkers []string
	levelPat   *regexp.Regexp
	levelSep   *regexp.Regexp
	posSplit   *regexp.Regexp
}

// New creates a Parser bound to the closed part-of-speech and level-code
// vocabularies.
func New() *Parser {
	levels := make([]string, 0, len(domain.Levels()))
	for _, l := range domain.Levels() {
		levels = append(levels, string(l))
	}
	alternation := strings.Join(levels, "|")

	return &Parser{
		posMarkers: domain.KnownPartsOfSpeech,
		levelPat:   regexp.MustCompile(alternation),
		levelSep:   regexp.MustCompile("(" + alternation + "),"),
		posSplit:   regexp.MustCompile(`[,/]`),
	}
}

// ParseLine parses one trimmed word-list line. It is total: any malformed
// field degrades to an empty value plus a diagnostic, and a best-effort Entry
// is always returned. lineIndex is only echoed into diagnostics.
func (p *Parser) ParseLine(lineIndex int, line string) (domain.Entry, []domain.Diagnostic) {
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.Entry{}, nil
	}

	var diags []domain.Diagnostic

	headword, remainder, found := p.scanWordForms(line)
	if !found {
		diags = append(diags, domain.Diagnostic{
			LineIndex: lineIndex,
			Kind:      domain.DiagnosticNoWordBoundaryFound,
			RawText:   line,
		})
	}

	entry := domain.Entry{
		Headword:  headword,
		WordForms: splitWordForms(headword),
	}

	raws := p.splitSubentries(remainder)
	if len(raws) == 0 && found {
		diags = append(diags, domain.Diagnostic{
			LineIndex: lineIndex,
			Kind:      domain.DiagnosticEmptySubentryList,
			RawText:   remainder,
		})
	}

	for _, raw := range raws {
		sub, unrecognized, ok := p.parseSubentry(raw)
		if !ok {
			diags = append(diags, domain.Diagnostic{
				LineIndex: lineIndex,
				Kind:      domain.DiagnosticMissingLevel,
				RawText:   raw,
			})
			continue
		}
		for _, candidate := range unrecognized {
			diags = append(diags, domain.Diagnostic{
				LineIndex: lineIndex,
				Kind:      domain.DiagnosticUnrecognizedPartOfSpeech,
				RawText:   candidate,
			})
		}
		entry.Subentries = append(entry.Subentries, sub)
	}

	return entry, diags
}

// splitWordForms breaks a headword segment into its comma-separated alternate
// forms ("colour, color" → two forms). A segment without commas is a single
// form.
func splitWordForms(headword string) []string {
	parts := strings.Split(headword, ",")
	forms := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			forms = append(forms, part)
		}
	}
	if len(forms) == 0 && headword != "" {
		forms = append(forms, headword)
	}
	return forms
}
