package models

// Status is the lifecycle state of a link
type Status int

const (
	StatusIncomplete Status = iota
	StatusSolved
	StatusSkipped
)

// String returns the display name of the status
func (s Status) String() string {
	switch s {
	case StatusIncomplete:
		return "Incomplete"
	case StatusSolved:
		return "Solved"
	case StatusSkipped:
		return "Skipped"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the three lifecycle states
func (s Status) Valid() bool {
	return s >= StatusIncomplete && s <= StatusSkipped
}

// Link is a row of the links table.
// The two flags are the persisted form of Status; use Status and SetStatus
// instead of writing them directly.
type Link struct {
	URL         string `gorm:"column:link;primaryKey;type:text"`
	SolvedCount int64  `gorm:"column:solved_count;type:integer;not null"`
	IsSolved    bool   `gorm:"column:is_solved;type:integer;not null"`
	IsSkipped   bool   `gorm:"column:is_skipped;type:integer;not null"`
}

// TableName keeps the table name compatible with existing databases
func (Link) TableName() string {
	return "links"
}

// Status maps the two persisted flags to a single state.
// A row with both flags set is reported as solved.
func (l Link) Status() Status {
	switch {
	case l.IsSolved:
		return StatusSolved
	case l.IsSkipped:
		return StatusSkipped
	default:
		return StatusIncomplete
	}
}

// SetStatus writes both flags for s
func (l *Link) SetStatus(s Status) {
	l.IsSolved, l.IsSkipped = StatusColumns(s)
}

// StatusColumns returns the is_solved and is_skipped values that encode s
func StatusColumns(s Status) (isSolved, isSkipped bool) {
	return s == StatusSolved, s == StatusSkipped
}

// StatusFilter returns a where clause and its arguments selecting rows in
// state s. Incomplete rows have neither flag set.
func StatusFilter(s Status) (string, []interface{}) {
	switch s {
	case StatusSolved:
		return "is_solved = ?", []interface{}{true}
	case StatusSkipped:
		return "is_skipped = ? AND is_solved = ?", []interface{}{true, false}
	default:
		return "is_solved = ? AND is_skipped = ?", []interface{}{false, false}
	}
}
