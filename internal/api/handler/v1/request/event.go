package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/incevents/incevents-api/internal/domain"
)

type ListEventsQuery struct {
	Status string `form:"status"`
	UserID uint   `form:"user_id"`
}

func (q *ListEventsQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Status, validation.Required, validation.In(domain.StatusOngoing, domain.StatusPrevious)),
	)
}

type EventViewRequest struct {
	EventID uint `json:"event_id"`
	UserID  uint `json:"user_id"`
}

func (req *EventViewRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.UserID, validation.Required),
	)
}

// EventUpdateForm holds the text fields of an /event_update multipart
// submission. Only event_id and user_id are required; everything else
// persists as given, absent values as NULL.
type EventUpdateForm struct {
	EventID       uint   `form:"event_id"`
	UserID        uint   `form:"user_id"`
	Name          string `form:"name"`
	Description   string `form:"description"`
	StartDateTime string `form:"start_date_time"`
	EndDateTime   string `form:"end_date_time"`
	IssueDate     string `form:"issue_date"`
	Location      string `form:"location"`
	Attendees     string `form:"attendees"`
	Type          string `form:"type"`
}

func (f *EventUpdateForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.EventID, validation.Required),
		validation.Field(&f.UserID, validation.Required),
	)
}

// EventAddForm holds the text fields of the admin /event_add form. The
// user field is the broadcast target; "all" fans the event out to every
// non-admin user.
type EventAddForm struct {
	Name          string `form:"name"`
	Description   string `form:"description"`
	StartDateTime string `form:"start_date_time"`
	EndDateTime   string `form:"end_date_time"`
	IssueDate     string `form:"issue_date"`
	Location      string `form:"location"`
	Type          string `form:"type"`
	User          string `form:"user"`
}

func (f *EventAddForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 200)),
	)
}
