package dto

// CreateCourseRequest represents the payload for adding a course to a college
type CreateCourseRequest struct {
	CollegeID     int64   `json:"collegeId" binding:"required,min=1"`
	Name          string  `json:"name" binding:"required"`
	DurationYears int     `json:"durationYears" binding:"required,gte=1,lte=10"`
	Fee           float64 `json:"fee" binding:"required,gte=0"`
}

// UpdateCourseRequest is a full replace of the mutable course attributes
type UpdateCourseRequest struct {
	Name          string  `json:"name" binding:"required"`
	DurationYears int     `json:"durationYears" binding:"required,gte=1,lte=10"`
	Fee           float64 `json:"fee" binding:"required,gte=0"`
}

// CutoffRequest represents category-wise cutoff percentiles for one year
type CutoffRequest struct {
	Year    int      `json:"year" binding:"required,gte=2000,lte=2100"`
	General *float64 `json:"general,omitempty" binding:"omitempty,gte=0,lte=100"`
	OBC     *float64 `json:"obc,omitempty" binding:"omitempty,gte=0,lte=100"`
	SC      *float64 `json:"sc,omitempty" binding:"omitempty,gte=0,lte=100"`
	ST      *float64 `json:"st,omitempty" binding:"omitempty,gte=0,lte=100"`
	EWS     *float64 `json:"ews,omitempty" binding:"omitempty,gte=0,lte=100"`
}

// PlacementRequest represents per-year placement statistics
type PlacementRequest struct {
	Year           int     `json:"year" binding:"required,gte=2000,lte=2100"`
	StudentsPlaced int     `json:"studentsPlaced" binding:"required,gte=0"`
	AveragePackage float64 `json:"averagePackage" binding:"required,gte=0"`
	HighestPackage float64 `json:"highestPackage" binding:"required,gte=0"`
	TopRecruiters  *string `json:"topRecruiters,omitempty"`
}

// ScholarshipRequest represents a scholarship payload
type ScholarshipRequest struct {
	Name        string  `json:"name" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Eligibility *string `json:"eligibility,omitempty"`
	Deadline    *string `json:"deadline,omitempty"` // RFC 3339 date, e.g. 2025-06-30
}

// AlumnusRequest represents an alumni record payload
type AlumnusRequest struct {
	Name           string  `json:"name" binding:"required"`
	GraduationYear int     `json:"graduationYear" binding:"required,gte=1900,lte=2100"`
	Degree         string  `json:"degree" binding:"required"`
	CurrentCompany *string `json:"currentCompany,omitempty"`
	Designation    *string `json:"designation,omitempty"`
	Achievements   *string `json:"achievements,omitempty"`
}
