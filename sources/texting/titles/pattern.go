package titles

// Pattern is the numbering shape a title was classified as.
type Pattern int

const (
	Unsupported Pattern = iota
	Single
	Range
	EnumeratedSingles
	Mixed
)

func (p Pattern) String() string {
	switch p {
	case Single:
		return "single"
	case Range:
		return "range"
	case EnumeratedSingles:
		return "enumerated"
	case Mixed:
		return "mixed"
	default:
		return "unsupported"
	}
}

func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
