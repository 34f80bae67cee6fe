package models

import "time"

// College defines the college model based on the 'colleges' table.
// Each college is owned by exactly one INSTITUTE user.
type College struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"userId" db:"user_id"`
	Name            string    `json:"name" db:"name" example:"Indian Institute of Technology Bombay"`
	EstablishedYear int       `json:"establishedYear" db:"established_year" example:"1958"`
	Accreditation   string    `json:"accreditation" db:"accreditation" example:"NAAC A++"`
	City            string    `json:"city" db:"city"`
	State           string    `json:"state" db:"state"`
	ContactEmail    string    `json:"contactEmail" db:"contact_email"`
	ContactPhone    *string   `json:"contactPhone,omitempty" db:"contact_phone"`
	Website         *string   `json:"website,omitempty" db:"website"`
	EmailDomain     string    `json:"emailDomain" db:"email_domain" example:"iitb.ac.in"` // Used for student auto-verification
	Description     *string   `json:"description,omitempty" db:"description"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// Infrastructure defines the one-to-one campus infrastructure record
// of a college, based on the 'infrastructure' table.
type Infrastructure struct {
	ID          int64   `json:"id" db:"id"`
	CollegeID   int64   `json:"collegeId" db:"college_id"`
	CampusArea  float64 `json:"campusArea" db:"campus_area" example:"550.5"` // In acres
	Hostel      bool    `json:"hostel" db:"hostel"`
	Labs        bool    `json:"labs" db:"labs"`
	Sports      bool    `json:"sports" db:"sports"`
	Library     bool    `json:"library" db:"library"`
	Wifi        bool    `json:"wifi" db:"wifi"`
	Description *string `json:"description,omitempty" db:"description"`
}
