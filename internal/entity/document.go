package entity

import "time"

// updatedAtLayout is a timezone-naive ISO-8601 timestamp. The fraction is
// only written when there is a non-zero microsecond part.
const (
	updatedAtLayout         = "2006-01-02T15:04:05"
	updatedAtFractionLayout = "2006-01-02T15:04:05.000000"
)

// Document mirrors the persisted esg_sources.json file.
type Document struct {
	UpdatedAt *string  `json:"updated_at"`
	Sources   []Source `json:"sources"`
}

// NewDocument returns the document used when nothing has been saved yet.
func NewDocument() *Document {
	return &Document{Sources: []Source{}}
}

// FormatUpdatedAt renders t in UTC with a literal "Z" appended, e.g.
// "2024-01-15T10:30:00.123456Z".
func FormatUpdatedAt(t time.Time) string {
	t = t.UTC()
	layout := updatedAtLayout
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		layout = updatedAtFractionLayout
	}
	return t.Format(layout) + "Z"
}
