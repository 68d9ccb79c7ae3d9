package oxford

import (
	"strings"
)

// scanWordForms separates a line into the headword segment and the structured
// remainder. The boundary is the first later token where the rest of the line
// starts with an opening parenthesis (a definition) or with one of the
// part-of-speech markers. found is false when no boundary exists; the whole
// line is then the headword and the remainder is empty.
func (p *Parser) scanWordForms(line string) (headword, remainder string, found bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", "", false
	}

	// The first token always belongs to the headword: the word "number" is
	// itself a part-of-speech tag and would otherwise terminate the scan
	// before it began.
	for i := 1; i < len(tokens); i++ {
		rest := strings.Join(tokens[i:], " ")
		if strings.HasPrefix(rest, "(") || p.hasPOSMarkerPrefix(rest) {
			return strings.Join(tokens[:i], " "), rest, true
		}
	}

	return strings.Join(tokens, " "), "", false
}

// hasPOSMarkerPrefix reports whether s starts with any tag from the closed
// part-of-speech vocabulary.
func (p *Parser) hasPOSMarkerPrefix(s string) bool {
	for _, tag := range p.posMarkers {
		if strings.HasPrefix(s, tag) {
			return true
		}
	}
	return false
}
