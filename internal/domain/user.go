package domain

import "time"

// DesignationAdmin marks privileged users. They are excluded from
// member-facing rosters and from participation reports.
const DesignationAdmin = "Admin"

type User struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Designation string    `json:"designation"`
	PIN         string    `json:"pin"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u User) IsAdmin() bool {
	return u.Designation == DesignationAdmin
}

// VisitSummary aggregates a user's visits for one calendar month.
type VisitSummary struct {
	LastVisit    *string `json:"last_visit"`
	MonthlyCount int64   `json:"monthly_count"`
}
