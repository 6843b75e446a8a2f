package domain

import "time"

// ActivityDay records the work classification of a single day.
type ActivityDay struct {
	Date     string `json:"date" bson:"date"`
	DayType  string `json:"day_type" bson:"day_type"`
	WorkType string `json:"work_type" bson:"work_type"`
}

// Activity is a monthly attendance/work-type log submitted by a user.
type Activity struct {
	ID            string        `json:"id" bson:"-"`
	ClientID      string        `json:"client_id" bson:"client_id"`
	UserID        string        `json:"user_id" bson:"user_id"`
	Name          string        `json:"name" bson:"name"`
	Surname       string        `json:"surname" bson:"surname"`
	ContactNumber string        `json:"contact_number" bson:"contact_number"`
	Email         string        `json:"email" bson:"email"`
	Status        string        `json:"status" bson:"status"`
	Months        []string      `json:"months,omitempty" bson:"months,omitempty"`
	Comments      string        `json:"comments,omitempty" bson:"comments,omitempty"`
	Attachments   []string      `json:"attachments,omitempty" bson:"attachments,omitempty"`
	SubmittedAt   time.Time     `json:"submitted_at,omitempty" bson:"submitted_at,omitempty"`
	Absent        bool          `json:"absent" bson:"absent"`
	HalfDay       bool          `json:"half_day" bson:"half_day"`
	Leave         bool          `json:"leave" bson:"leave"`
	Travel        bool          `json:"travel" bson:"travel"`
	AtOffice      bool          `json:"at_office" bson:"at_office"`
	RemoteWork    bool          `json:"remote_work" bson:"remote_work"`
	WorkTypes     string        `json:"work_types,omitempty" bson:"work_types,omitempty"`
	Days          []ActivityDay `json:"days,omitempty" bson:"days,omitempty"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}
