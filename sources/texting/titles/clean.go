package titles

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var (
	// The full-width comma is a separator of its own and must survive folding.
	keepWidth = runes.Predicate(func(r rune) bool {
		return r == '，'
	})

	folding = transform.Chain(
		norm.NFC,
		runes.If(keepWidth, nil, width.Fold),
	)

	canonical = strings.NewReplacer(
		"‐", "-", "‑", "-", "‒", "-", "–", "-", "—", "-", "―", "-", "−", "-",
		"“", `"`, "”", `"`, "„", `"`, "‘", "'", "’", "'",
	)
)

// Clean normalizes a scraped title before classification:
// fullwidth ASCII is folded to halfwidth ("１－３" -> "1-3"), dash and quote
// variants are canonicalized, and surrounding whitespace is trimmed.
func Clean(raw string) string {
	s := raw
	if folded, _, err := transform.String(folding, s); err == nil {
		s = folded
	}
	return strings.TrimSpace(canonical.Replace(s))
}
