package models

// Alumnus defines the alumni record model based on the 'alumni' table
type Alumnus struct {
	ID             int64   `json:"id" db:"id"`
	CollegeID      int64   `json:"collegeId" db:"college_id"`
	Name           string  `json:"name" db:"name"`
	GraduationYear int     `json:"graduationYear" db:"graduation_year" example:"2018"`
	Degree         string  `json:"degree" db:"degree" example:"B.Tech"`
	CurrentCompany *string `json:"currentCompany,omitempty" db:"current_company"`
	Designation    *string `json:"designation,omitempty" db:"designation"`
	Achievements   *string `json:"achievements,omitempty" db:"achievements"`
}
