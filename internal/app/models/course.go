package models

// Course defines the course model based on the 'courses' table
type Course struct {
	ID            int64    `json:"id" db:"id"`
	CollegeID     int64    `json:"collegeId" db:"college_id"`
	Name          string   `json:"name" db:"name" example:"B.Tech Computer Science"`
	DurationYears int      `json:"durationYears" db:"duration_years" example:"4"`
	Fee           float64  `json:"fee" db:"fee" example:"250000"`
	College       *College `json:"college,omitempty"` // Relation, no db tag
}

// Cutoff defines category-wise admission percentiles for a course in a
// given year, based on the 'cutoffs' table. At most one row may exist
// per (course, year); the database enforces this with a unique constraint.
type Cutoff struct {
	ID       int64    `json:"id" db:"id"`
	CourseID int64    `json:"courseId" db:"course_id"`
	Year     int      `json:"year" db:"year" example:"2024"`
	General  *float64 `json:"general,omitempty" db:"general"`
	OBC      *float64 `json:"obc,omitempty" db:"obc"`
	SC       *float64 `json:"sc,omitempty" db:"sc"`
	ST       *float64 `json:"st,omitempty" db:"st"`
	EWS      *float64 `json:"ews,omitempty" db:"ews"`
}
