package oxford

import (
	"strings"

	"github.com/heartmarshall/oxford-wordlist/internal/domain"
)

// splitSubentries partitions the remainder into raw subentry strings, each
// ending in exactly one level code. The loop is a two-state machine: text
// accumulates in buffer until a level-code-plus-comma separator emits a
// subentry and resets it. A trailing level code without a separating comma
// still closes the last subentry. An empty result means no level code was
// found anywhere.
func (p *Parser) splitSubentries(remainder string) []string {
	if remainder == "" {
		return nil
	}

	var subs []string
	buffer := ""
	last := 0

	for _, m := range p.levelSep.FindAllStringSubmatchIndex(remainder, -1) {
		if seg := strings.TrimSpace(remainder[last:m[0]]); seg != "" {
			buffer = seg
		}
		level := remainder[m[2]:m[3]]
		if buffer != "" {
			subs = append(subs, buffer+" "+level)
		} else {
			subs = append(subs, level)
		}
		buffer = ""
		last = m[1]
	}

	if tail := strings.TrimSpace(remainder[last:]); tail != "" && endsWithLevel(tail) {
		subs = append(subs, tail)
	}

	return subs
}

func endsWithLevel(s string) bool {
	for _, l := range domain.Levels() {
		if strings.HasSuffix(s, string(l)) {
			return true
		}
	}
	return false
}
