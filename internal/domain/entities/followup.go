package entities

import "time"

type FollowUpStatus string

const (
	FollowUpStatusPending   FollowUpStatus = "Pending"
	FollowUpStatusCompleted FollowUpStatus = "Completed"
	FollowUpStatusCancelled FollowUpStatus = "Cancelled"
)

func (s FollowUpStatus) IsValid() bool {
	switch s {
	case FollowUpStatusPending, FollowUpStatusCompleted, FollowUpStatusCancelled:
		return true
	}
	return false
}

// DefaultFollowUpTime is used when a follow-up is scheduled without a time of day.
const DefaultFollowUpTime = "10:00"

// FollowUp is a scheduled reminder to contact a customer, stored at /followups/{id}.
// Date is YYYY-MM-DD and Time is HH:MM, both in the operator's timezone.
type FollowUp struct {
	ID           string         `json:"id"`
	CustomerID   string         `json:"customerId"`
	CustomerName string         `json:"customerName"`
	Date         string         `json:"date"`
	Time         string         `json:"time"`
	Reason       string         `json:"reason"`
	Notes        string         `json:"notes"`
	Status       FollowUpStatus `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
}

func (f FollowUp) EntityID() string { return f.ID }

func (f FollowUp) WithID(id string) FollowUp {
	f.ID = id
	return f
}

// ScheduledAt resolves Date and Time in loc. A blank time falls back to DefaultFollowUpTime.
func (f FollowUp) ScheduledAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	clock := f.Time
	if clock == "" {
		clock = DefaultFollowUpTime
	}
	return time.ParseInLocation("2006-01-02 15:04", f.Date+" "+clock, loc)
}

// Toggled flips Pending and Completed. A cancelled follow-up is reopened as Pending.
func (f FollowUp) Toggled() FollowUp {
	if f.Status == FollowUpStatusPending {
		f.Status = FollowUpStatusCompleted
	} else {
		f.Status = FollowUpStatusPending
	}
	return f
}
