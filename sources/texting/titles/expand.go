package titles

import (
	"fmt"
	"strconv"
	"strings"
)

// maxRangeSpan bounds how many indices one range may produce. It limits the
// distance between the bounds, not the bounds themselves.
const maxRangeSpan = 1 << 20

// Expand produces the ordered index strings for the title. It does not
// mutate t, so repeated calls return equal results.
func (t *Title) Expand() ([]string, error) {
	switch t.pattern {
	case Single:
		return t.expandSingle(), nil
	case Range:
		return t.expandRange()
	case EnumeratedSingles:
		return t.expandEnumerated(), nil
	case Mixed:
		return t.expandMixed()
	default:
		return nil, &TitleError{Title: t.content, Err: ErrUnsupportedTitle}
	}
}

func (t *Title) expandSingle() []string {
	if strings.TrimSpace(t.content) == "" {
		return []string{}
	}
	return []string{t.content}
}

func (t *Title) expandRange() ([]string, error) {
	parts := strings.Split(strings.TrimSpace(t.content), dash)
	if len(parts) != 2 {
		return nil, &TitleError{Title: t.content, Err: ErrRangeFormat}
	}

	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, &TitleError{Title: t.content, Fragment: parts[0], Err: ErrNumericParse}
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, &TitleError{Title: t.content, Fragment: parts[1], Err: ErrNumericParse}
	}

	if start > end {
		return []string{}, nil
	}

	// Bounds never carry a sign, so end-start cannot overflow here.
	if end-start >= maxRangeSpan {
		return nil, &TitleError{Title: t.content, Err: ErrRangeTooLarge}
	}

	result := make([]string, 0, end-start+1)
	for i := start; ; i++ {
		result = append(result, strconv.Itoa(i))
		if i == end {
			break
		}
	}
	return result, nil
}

func (t *Title) expandEnumerated() []string {
	pieces := strings.Split(t.content, t.separator)
	result := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		result = append(result, strings.TrimSpace(piece))
	}
	return result
}

// expandMixed splits on the enumeration separator and runs every piece
// through a fresh classification, so "1,2-3" yields the single 1 followed by
// the range 2..3.
func (t *Title) expandMixed() ([]string, error) {
	separator, ok := t.mixedSeparator()
	if !ok {
		return nil, &TitleError{Title: t.content, Err: ErrUnsupportedMixed}
	}

	result := []string{}
	for _, piece := range strings.Split(t.content, separator) {
		sub, err := NewWithOptions(strings.TrimSpace(piece), t.options)
		if err != nil {
			return nil, fmt.Errorf("mixed title %q: %w", t.content, err)
		}
		indices, err := sub.Expand()
		if err != nil {
			return nil, fmt.Errorf("mixed title %q: %w", t.content, err)
		}
		result = append(result, indices...)
	}
	return result, nil
}

func (t *Title) mixedSeparator() (string, bool) {
	switch {
	case strings.Contains(t.content, enumerationMark):
		return enumerationMark, true
	case strings.Contains(t.content, comma):
		return comma, true
	case strings.Contains(t.content, fullWidthComma) && !t.options.StrictMixedSeparators:
		return fullWidthComma, true
	default:
		return "", false
	}
}
