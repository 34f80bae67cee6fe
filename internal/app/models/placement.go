package models

// Placement defines per-year aggregate placement statistics of a college,
// based on the 'placements' table. One row per (college, year).
type Placement struct {
	ID             int64   `json:"id" db:"id"`
	CollegeID      int64   `json:"collegeId" db:"college_id"`
	Year           int     `json:"year" db:"year" example:"2024"`
	StudentsPlaced int     `json:"studentsPlaced" db:"students_placed" example:"1350"`
	AveragePackage float64 `json:"averagePackage" db:"average_package" example:"1800000"`
	HighestPackage float64 `json:"highestPackage" db:"highest_package" example:"9800000"`
	TopRecruiters  *string `json:"topRecruiters,omitempty" db:"top_recruiters"`
}
