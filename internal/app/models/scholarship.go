package models

import "time"

// Scholarship defines the scholarship model based on the 'scholarships' table
type Scholarship struct {
	ID          int64      `json:"id" db:"id"`
	CollegeID   int64      `json:"collegeId" db:"college_id"`
	Name        string     `json:"name" db:"name" example:"Merit Scholarship"`
	Amount      float64    `json:"amount" db:"amount" example:"50000"`
	Eligibility *string    `json:"eligibility,omitempty" db:"eligibility"`
	Deadline    *time.Time `json:"deadline,omitempty" db:"deadline"`
}
