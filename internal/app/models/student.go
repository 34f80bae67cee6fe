package models

// StudentProfile defines the student profile model based on the
// 'student_profiles' table. One-to-one with a STUDENT user; CollegeID is
// set once the student is verified against a college's email domain.
type StudentProfile struct {
	ID           int64    `json:"id" db:"id"`
	UserID       int64    `json:"userId" db:"user_id"`
	CollegeID    *int64   `json:"collegeId,omitempty" db:"college_id"`
	EntranceExam *string  `json:"entranceExam,omitempty" db:"entrance_exam" example:"JEE Advanced"`
	ExamScore    *float64 `json:"examScore,omitempty" db:"exam_score" example:"98.4"`
	Category     *string  `json:"category,omitempty" db:"category" example:"GENERAL"`
	Stream       *string  `json:"stream,omitempty" db:"stream" example:"Engineering"`
	IsVerified   bool     `json:"isVerified" db:"is_verified"`
	User         *User    `json:"user,omitempty"` // Relation, no db tag
}
