package domain

import "time"

const (
	// StatusOngoing is assigned at creation time iff the event starts
	// strictly in the future. The status is frozen afterwards.
	StatusOngoing  = "ongoing"
	StatusPrevious = "previous"
)

type Event struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	StartDateTime *string  `json:"start_date_time"`
	EndDateTime   *string  `json:"end_date_time"`
	IssueDate     *string  `json:"issue_date"`
	Location      string   `json:"location"`
	Type          string   `json:"type"`
	Status        string   `json:"status"`
	Photos        []string `json:"photos"`
	Video         *string  `json:"video"`

	// UserHasUpdated is only populated when a listing is requested on
	// behalf of a viewer. Absent from the JSON otherwise.
	UserHasUpdated *bool `json:"userHasUpdated,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
