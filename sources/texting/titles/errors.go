package titles

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTitle       = errors.New("title content is empty")
	ErrUnsupportedTitle = errors.New("title format is not supported")
	ErrUnsupportedMixed = errors.New("mixed title separator is not supported")
	ErrRangeFormat      = errors.New("range must have exactly one start and one end")
	ErrNumericParse     = errors.New("range bound is not a number")
	ErrRangeTooLarge    = errors.New("range spans too many indices")
)

// TitleError carries the offending title and, for range failures, the
// fragment that could not be parsed.
type TitleError struct {
	Title    string
	Fragment string
	Err      error
}

func (e *TitleError) Error() string {
	if e.Fragment != "" {
		return fmt.Sprintf("title %q: %v: %q", e.Title, e.Err, e.Fragment)
	}
	return fmt.Sprintf("title %q: %v", e.Title, e.Err)
}

func (e *TitleError) Unwrap() error {
	return e.Err
}

// Reason maps an expansion error to a short label for logs and metrics.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyTitle):
		return "empty"
	case errors.Is(err, ErrUnsupportedTitle):
		return "unsupported"
	case errors.Is(err, ErrUnsupportedMixed):
		return "unsupported_mixed"
	case errors.Is(err, ErrRangeFormat):
		return "range_format"
	case errors.Is(err, ErrNumericParse):
		return "numeric_parse"
	case errors.Is(err, ErrRangeTooLarge):
		return "range_too_large"
	default:
		return "unknown"
	}
}
