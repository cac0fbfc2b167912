package table

const (
	ColumnTeam     = "Team"
	ColumnOpponent = "Opponent"
	ColumnLocation = "Location"
	ColumnWeek     = "Week"
	ColumnGame     = "Game"
	ColumnPoints   = "Pts*"
)

// Header is an ordered list of column names.
type Header []string

// NormalizeHeader converts the raw column names of a stats table into the
// output schema: the first "Game" column is dropped, Team, Opponent and
// Location are inserted at positions 1-3 and Week is appended.
//
// The raw slice is not modified. Passing a header that is already normalized
// returns ErrHeaderNormalized rather than inserting the fixed columns twice.
func NormalizeHeader(raw []string) (Header, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyHeader
	}
	if IsNormalized(raw) {
		return nil, ErrHeaderNormalized
	}

	out := make(Header, 0, len(raw)+4)
	removed := false
	for _, col := range raw {
		if col == ColumnGame && !removed {
			removed = true
			continue
		}
		out = append(out, col)
	}

	out = insertAt(out, 1, ColumnTeam)
	out = insertAt(out, 2, ColumnOpponent)
	out = insertAt(out, 3, ColumnLocation)
	return append(out, ColumnWeek), nil
}

// IsNormalized reports whether h already carries the fixed columns added by
// NormalizeHeader.
func IsNormalized(h []string) bool {
	if len(h) < 5 {
		return false
	}
	return h[1] == ColumnTeam &&
		h[2] == ColumnOpponent &&
		h[3] == ColumnLocation &&
		h[len(h)-1] == ColumnWeek
}

// insertAt inserts v before index i, appending when i is past the end.
func insertAt(h Header, i int, v string) Header {
	if i >= len(h) {
		return append(h, v)
	}
	h = append(h, "")
	copy(h[i+1:], h[i:])
	h[i] = v
	return h
}

// Index returns the position of the first column called name, or -1.
func (h Header) Index(name string) int {
	for i, col := range h {
		if col == name {
			return i
		}
	}
	return -1
}

// Clone returns a copy of h.
func (h Header) Clone() Header {
	return append(Header(nil), h...)
}
