package domain

import "time"

// AbsenceStatus represents the review state of a leave request.
type AbsenceStatus string

const (
	AbsenceApproved AbsenceStatus = "approved"
	AbsencePending  AbsenceStatus = "pending"
	AbsenceRejected AbsenceStatus = "rejected"
)

// Valid reports whether s is a known absence status.
func (s AbsenceStatus) Valid() bool {
	switch s {
	case AbsenceApproved, AbsencePending, AbsenceRejected:
		return true
	}
	return false
}

// Absence is a leave request submitted by a user.
type Absence struct {
	ID           string        `json:"id" bson:"-"`
	ClientID     string        `json:"client_id" bson:"client_id"`
	UserID       string        `json:"user_id" bson:"user_id"`
	UserName     string        `json:"user_name,omitempty" bson:"user_name,omitempty"`
	Name         string        `json:"name,omitempty" bson:"name,omitempty"`
	Contact      string        `json:"contact,omitempty" bson:"contact,omitempty"`
	Email        string        `json:"email,omitempty" bson:"email,omitempty"`
	Phone        string        `json:"phone,omitempty" bson:"phone,omitempty"`
	DayOfAbsence time.Time     `json:"day_of_absence" bson:"day_of_absence"`
	StartDate    time.Time     `json:"start_date" bson:"start_date"`
	EndDate      time.Time     `json:"end_date" bson:"end_date"`
	TotalDays    float64       `json:"total_days" bson:"total_days"`
	Status       AbsenceStatus `json:"status" bson:"status"`
	Description  string        `json:"description,omitempty" bson:"description,omitempty"`
	Attachment   string        `json:"attachment,omitempty" bson:"attachment,omitempty"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" bson:"updated_at"`
}
