package dto

import "github.com/vallabh/collegehub/internal/app/models"

// UpsertStudentProfileRequest represents the student profile payload.
// Profiles are created lazily on first write.
type UpsertStudentProfileRequest struct {
	EntranceExam *string  `json:"entranceExam,omitempty"`
	ExamScore    *float64 `json:"examScore,omitempty" binding:"omitempty,gte=0,lte=100"`
	Category     *string  `json:"category,omitempty"`
	Stream       *string  `json:"stream,omitempty"`
}

// ApplyCourseRequest represents a student's application to a course,
// addressed to a faculty reviewer at the course's college.
type ApplyCourseRequest struct {
	CourseID  int64 `json:"courseId" binding:"required,min=1"`
	FacultyID int64 `json:"facultyId" binding:"required,min=1"`
}

// ApplyCourseResponse carries the generated application id
type ApplyCourseResponse struct {
	ApplicationID int64  `json:"applicationId"`
	Status        string `json:"status"`
}

// VerifyCollegeResponse reports the outcome of email-domain verification
type VerifyCollegeResponse struct {
	CollegeID   int64  `json:"collegeId"`
	CollegeName string `json:"collegeName"`
	Verified    bool   `json:"verified"`
}

// CollegeComparison groups per-college rows for the comparison endpoint.
// Each map is keyed by college id; a college with no rows in a category is
// simply absent from that category's map.
type CollegeComparison struct {
	Colleges       map[int64]*models.College        `json:"colleges"`
	Infrastructure map[int64]*models.Infrastructure `json:"infrastructure"`
	Placements     map[int64][]*models.Placement    `json:"placements"`
	Courses        map[int64][]*models.Course       `json:"courses"`
	Scholarships   map[int64][]*models.Scholarship  `json:"scholarships"`
}

// StudentDashboard aggregates the student's profile, applications and the
// scholarships of the verified college into one payload.
type StudentDashboard struct {
	Profile      *models.StudentProfile      `json:"profile"`
	Applications []*models.CourseApplication `json:"applications"`
	Scholarships []*models.Scholarship       `json:"scholarships"`
}
