package models

import "time"

// FacultyProfile defines the faculty profile model based on the
// 'faculty_profiles' table. One-to-one with a FACULTY user.
type FacultyProfile struct {
	ID              int64    `json:"id" db:"id"`
	UserID          int64    `json:"userId" db:"user_id"`
	CollegeID       int64    `json:"collegeId" db:"college_id"`
	Department      string   `json:"department" db:"department" example:"Computer Science"`
	Qualification   string   `json:"qualification" db:"qualification" example:"PhD"`
	ExperienceYears int      `json:"experienceYears" db:"experience_years" example:"12"`
	User            *User    `json:"user,omitempty"`    // Relation, no db tag
	College         *College `json:"college,omitempty"` // Relation, no db tag
}

// FacultyInvitation defines an institute's invitation for a faculty member
// to join its college, based on the 'faculty_invitations' table.
// The lifecycle is pending -> accepted|rejected (terminal).
type FacultyInvitation struct {
	ID        int64            `json:"id" db:"id"`
	CollegeID int64            `json:"collegeId" db:"college_id"`
	Email     string           `json:"email" db:"email"`
	Token     string           `json:"token" db:"token"` // Opaque UUID carried in the invitation email
	Status    InvitationStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
	College   *College         `json:"college,omitempty"` // Relation, no db tag
}
