package dto

import "github.com/vallabh/collegehub/internal/app/models"

// InviteFacultyRequest represents an institute's invitation for a faculty
// member to join its college.
type InviteFacultyRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RespondInvitationRequest carries the invitee's decision together with the
// profile attributes required when accepting.
type RespondInvitationRequest struct {
	Accept          bool    `json:"accept"`
	Department      *string `json:"department,omitempty"`
	Qualification   *string `json:"qualification,omitempty"`
	ExperienceYears *int    `json:"experienceYears,omitempty" binding:"omitempty,gte=0,lte=60"`
}

// UpdateFacultyProfileRequest is a full replace of the mutable profile fields
type UpdateFacultyProfileRequest struct {
	Department      string `json:"department" binding:"required"`
	Qualification   string `json:"qualification" binding:"required"`
	ExperienceYears int    `json:"experienceYears" binding:"gte=0,lte=60"`
}

// ReviewApplicationRequest carries a faculty member's terminal decision
type ReviewApplicationRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=APPROVED REJECTED"`
}

// FacultyDashboard aggregates a faculty member's profile and the
// applications addressed to them.
type FacultyDashboard struct {
	Profile            *models.FacultyProfile      `json:"profile"`
	PendingCount       int                         `json:"pendingCount"`
	DecidedCount       int                         `json:"decidedCount"`
	RecentApplications []*models.CourseApplication `json:"recentApplications"`
}

// InstituteDashboard aggregates the institute's college with entity counts
// and recent applications across its courses.
type InstituteDashboard struct {
	College            *models.College             `json:"college"`
	CourseCount        int                         `json:"courseCount"`
	FacultyCount       int                         `json:"facultyCount"`
	PlacementCount     int                         `json:"placementCount"`
	AlumniCount        int                         `json:"alumniCount"`
	RecentApplications []*models.CourseApplication `json:"recentApplications"`
}
