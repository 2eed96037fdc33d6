package domain

type EventReport struct {
	Event        Event         `json:"event"`
	Participants []Participant `json:"users"`
}

// Participant is one entitled, non-admin user's participation in an event.
// Counts are row counts, not booleans: a user may have several update rows.
type Participant struct {
	UserID       uint   `json:"user_id"`
	Name         string `json:"name"`
	Designation  string `json:"designation"`
	ViewedCount  int64  `json:"viewed_count"`
	UpdatedCount int64  `json:"updated_count"`
}
