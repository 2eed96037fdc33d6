package domain

import "time"

// EventUpdate is one submission by a user against an event. The trail is
// append-only: re-submitting creates a new row, never an overwrite.
type EventUpdate struct {
	ID            uint     `json:"id"`
	EventID       uint     `json:"event_id"`
	UserID        uint     `json:"user_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	StartDateTime *string  `json:"start_date_time"`
	EndDateTime   *string  `json:"end_date_time"`
	IssueDate     *string  `json:"issue_date"`
	Location      string   `json:"location"`
	Attendees     string   `json:"attendees"`
	Type          string   `json:"type"`
	UpdateDate    string   `json:"update_date"`
	Photos        []string `json:"photos"`
	Video         *string  `json:"video"`
	MediaPhotos   []string `json:"media_photos"`

	CreatedAt time.Time `json:"created_at"`
}

// MediaResult carries the uploaded asset URLs for one submission,
// preserving submission order within each slot.
type MediaResult struct {
	Photos      []string
	Video       *string
	MediaPhotos []string
}
