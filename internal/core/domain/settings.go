package domain

import "time"

// ReportType enumerates the reporting cadences a tenant can configure.
type ReportType string

const (
	ReportMonthly   ReportType = "monthly"
	ReportQuarterly ReportType = "quarterly"
	ReportYearly    ReportType = "yearly"
)

// Valid reports whether t is a known report type.
func (t ReportType) Valid() bool {
	switch t {
	case ReportMonthly, ReportQuarterly, ReportYearly:
		return true
	}
	return false
}

// AdvancedSettings holds per-tenant configuration: reporting setup, feature
// toggles, and branding.
type AdvancedSettings struct {
	ID                   string     `json:"id" bson:"-"`
	ClientID             string     `json:"client_id" bson:"client_id"`
	UserID               string     `json:"user_id" bson:"user_id"`
	ReportName           string     `json:"report_name" bson:"report_name"`
	ReportValidationDate time.Time  `json:"report_validation_date" bson:"report_validation_date"`
	ReportType           ReportType `json:"report_type" bson:"report_type"`
	CreateTeam           bool       `json:"create_team" bson:"create_team"`
	CreateDepartment     bool       `json:"create_department" bson:"create_department"`
	CreateRole           bool       `json:"create_role" bson:"create_role"`
	ActivityReport       bool       `json:"activity_report" bson:"activity_report"`
	ExpenseReport        bool       `json:"expense_report" bson:"expense_report"`
	AllCategoriesReport  bool       `json:"all_categories_report" bson:"all_categories_report"`
	Logo                 string     `json:"logo,omitempty" bson:"logo,omitempty"`
	LoginLogo            string     `json:"login_logo,omitempty" bson:"login_logo,omitempty"`
	BackgroundColor      string     `json:"background_color,omitempty" bson:"background_color,omitempty"`
	CreatedAt            time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at" bson:"updated_at"`
}
