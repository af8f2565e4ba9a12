package answer

import "strings"

// smallWords stay lowercase in headlines unless they lead the line.
var smallWords = map[string]bool{
	"and": true, "or": true, "the": true, "of": true, "to": true,
	"in": true, "on": true, "for": true, "a": true, "an": true,
	"at": true, "by": true, "vs": true,
}

func titleCase(s string) string {
	words := strings.Fields(s)
	out := make([]string, 0, len(words))
	for i, w := range words {
		lw := strings.ToLower(w)
		if i != 0 && smallWords[lw] {
			out = append(out, lw)
			continue
		}
		out = append(out, strings.ToUpper(w[:1])+w[1:])
	}
	return strings.Join(out, " ")
}

// PostFormat deterministically shapes raw generated text: non-empty lines
// are kept in order, the first line becomes a title-cased headline with any
// trailing period stripped, and the sequence is padded with filler up to
// minLines. Lines beyond the minimum are never truncated.
func PostFormat(raw string, minLines int, filler string) string {
	var lines []string
	for _, ln := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(ln); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) > 0 {
		lines[0] = titleCase(strings.TrimRight(lines[0], "."))
	}
	for len(lines) < minLines {
		lines = append(lines, filler)
	}
	return strings.Join(lines, "\n")
}
