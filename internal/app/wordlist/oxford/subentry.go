package oxford

import (
	"strings"

	"github.com/heartmarshall/oxford-wordlist/internal/domain"
)

// parseSubentry decomposes one raw subentry into its definition,
// part-of-speech tags, and level. ok is false when no level code is present;
// the subentry is then discarded by the caller. unrecognized collects
// candidate tags that fell outside the closed vocabulary, in input order.
func (p *Parser) parseSubentry(raw string) (sub domain.Subentry, unrecognized []string, ok bool) {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "(") {
		if end := strings.Index(text, ")"); end >= 0 {
			sub.Definition = text[1:end]
			text = strings.TrimSpace(text[end+1:])
		} else {
			// Unterminated parenthesis: consume the rest as the definition
			// rather than letting it pollute the tag scan.
			sub.Definition = text[1:]
			text = ""
		}
	}

	loc := p.levelPat.FindStringIndex(text)
	if loc == nil {
		return domain.Subentry{}, nil, false
	}
	sub.Level = domain.Level(text[loc[0]:loc[1]])
	text = strings.TrimSpace(text[:loc[0]] + text[loc[1]:])

	for _, candidate := range p.posSplit.Split(text, -1) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if domain.IsKnownPartOfSpeech(candidate) {
			sub.PartsOfSpeech = append(sub.PartsOfSpeech, candidate)
		} else {
			unrecognized = append(unrecognized, candidate)
		}
	}

	return sub, unrecognized, true
}
