package pagination

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params holds limit/offset pagination parameters.
type Params struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Normalize clamps the parameters to sane values: a non-positive limit
// becomes defaultLimit, a limit above maxLimit is capped, and a negative
// offset becomes zero. Non-positive defaultLimit/maxLimit fall back to the
// package defaults.
func (p Params) Normalize(defaultLimit, maxLimit int) Params {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Bounds returns the slice window [start, end) these parameters select from
// a result set of the given total size.
func (p Params) Bounds(total int) (start, end int) {
	start = p.Offset
	if start > total {
		start = total
	}
	end = start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}

// HasNext returns true if there are more results after the current page.
func (p Params) HasNext(total int) bool {
	return p.Offset+p.Limit < total
}

// HasPrevious returns true if there are results before the current page.
func (p Params) HasPrevious() bool {
	return p.Offset > 0
}

// NextOffset returns the offset for the next page.
func (p Params) NextOffset() int {
	return p.Offset + p.Limit
}

// PreviousOffset returns the offset for the previous page.
// Returns 0 if the result would be negative.
func (p Params) PreviousOffset() int {
	prev := p.Offset - p.Limit
	if prev < 0 {
		return 0
	}
	return prev
}
