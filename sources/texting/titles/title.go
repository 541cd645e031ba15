package titles

import (
	"strings"
)

const (
	dash            = "-"
	comma           = ","
	fullWidthComma  = "，"
	enumerationMark = "、"
)

// Options tunes classification and expansion.
type Options struct {
	// StrictMixedSeparators rejects mixed titles enumerated with the
	// full-width comma at expansion time instead of splitting on it.
	StrictMixedSeparators bool
}

// Title is a cleaned title fragment together with its classification.
// It never changes after construction.
type Title struct {
	content    string
	multiTable bool
	pattern    Pattern
	separator  string
	options    Options
}

type rule struct {
	pattern   Pattern
	separator string
	match     func(t *Title) bool
}

// Rules are evaluated in order; first match wins.
var rules = []rule{
	{Mixed, "", func(t *Title) bool {
		return hasEnumeration(t.content) && t.hasRangeDash()
	}},
	{Single, "", func(t *Title) bool {
		return isDigits(t.content)
	}},
	{Range, "", func(t *Title) bool {
		return t.hasRangeDash()
	}},
	{EnumeratedSingles, enumerationMark, func(t *Title) bool {
		return strings.Contains(t.content, enumerationMark)
	}},
	{EnumeratedSingles, comma, func(t *Title) bool {
		return strings.Contains(t.content, comma)
	}},
	{EnumeratedSingles, fullWidthComma, func(t *Title) bool {
		return strings.Contains(t.content, fullWidthComma)
	}},
	{Single, "", func(t *Title) bool {
		return t.multiTable
	}},
}

// New cleans and classifies raw with default options.
func New(raw string) (*Title, error) {
	return NewWithOptions(raw, Options{})
}

// NewWithOptions runs Clean over raw and classifies the result. It fails with
// ErrEmptyTitle when nothing is left after cleaning and with
// ErrUnsupportedTitle when no pattern matches, both wrapped in *TitleError.
func NewWithOptions(raw string, options Options) (*Title, error) {
	content := Clean(raw)
	if content == "" {
		return nil, &TitleError{Title: raw, Err: ErrEmptyTitle}
	}

	t := &Title{
		content:    content,
		multiTable: isMultiTable(content),
		options:    options,
	}

	for _, r := range rules {
		if r.match(t) {
			t.pattern, t.separator = r.pattern, r.separator
			return t, nil
		}
	}

	return nil, &TitleError{Title: content, Err: ErrUnsupportedTitle}
}

// Expand classifies raw and expands it in one step.
func Expand(raw string) ([]string, error) {
	t, err := New(raw)
	if err != nil {
		return nil, err
	}
	return t.Expand()
}

func (t *Title) Content() string {
	return t.content
}

func (t *Title) Pattern() Pattern {
	return t.pattern
}

// MultiTable reports whether the first dash is a grouping delimiter
// ("A-1") rather than a numeric range marker ("1-3").
func (t *Title) MultiTable() bool {
	return t.multiTable
}

// Separator is set for EnumeratedSingles only.
func (t *Title) Separator() string {
	return t.separator
}

func (t *Title) hasRangeDash() bool {
	return !t.multiTable && strings.Contains(t.content, dash)
}

// isMultiTable looks at the bytes around the first dash. A dash is a range
// marker only when both neighbours are ASCII digits.
func isMultiTable(content string) bool {
	i := strings.Index(content, dash)
	if i == -1 {
		return false
	}
	before := i > 0 && isDigit(content[i-1])
	after := i+1 < len(content) && isDigit(content[i+1])
	return !(before && after)
}

func hasEnumeration(content string) bool {
	return strings.Contains(content, enumerationMark) ||
		strings.Contains(content, comma) ||
		strings.Contains(content, fullWidthComma)
}

func isDigits(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
