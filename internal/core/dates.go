package core

import "time"

// StoredDateLayout is the persisted date format. Lexicographic order on
// this layout matches chronological order, which the dashboard sort relies
// on; any change here must preserve that property.
const StoredDateLayout = "2006-01-02"

const displayDateLayout = "02.01.2006"

// ValidateStoredDate reports whether s is a well-formed stored date.
func ValidateStoredDate(s string) error {
	if _, err := time.Parse(StoredDateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// DisplayDate reformats a stored date as "DD.MM.YYYY" for rendering. A
// value that does not parse is returned unchanged rather than failing the
// render; malformed dates are only reachable through corrupted records.
func DisplayDate(stored string) string {
	t, err := time.Parse(StoredDateLayout, stored)
	if err != nil {
		return stored
	}
	return t.Format(displayDateLayout)
}
