package models

import "time"

// CourseApplication links a student profile, a course and a chosen faculty
// reviewer, based on the 'course_applications' table. At most one row may
// exist per (student, course); the database enforces this with a unique
// constraint.
type CourseApplication struct {
	ID        int64             `json:"id" db:"id"`
	StudentID int64             `json:"studentId" db:"student_id"`
	CourseID  int64             `json:"courseId" db:"course_id"`
	FacultyID int64             `json:"facultyId" db:"faculty_id"`
	Status    ApplicationStatus `json:"status" db:"status"`
	AppliedAt time.Time         `json:"appliedAt" db:"applied_at"`

	// Joined display fields, populated by list queries. No db tags.
	CourseName  string `json:"courseName,omitempty"`
	CollegeName string `json:"collegeName,omitempty"`
	StudentName string `json:"studentName,omitempty"`
}
