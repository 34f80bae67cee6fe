package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/app/services"
	"github.com/vallabh/collegehub/internal/middleware"
)

// StudentController handles student profiles, college verification,
// applications and the comparison endpoint.
type StudentController struct {
	studentService   services.StudentService
	dashboardService services.DashboardService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, dashboardService services.DashboardService) *StudentController {
	return &StudentController{
		studentService:   studentService,
		dashboardService: dashboardService,
	}
}

// GetProfile retrieves the caller's student profile
// @Summary Get own student profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.StudentProfile} "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Router /students/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.studentService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}

// UpsertProfile creates or replaces the caller's student profile
// @Summary Upsert own student profile
// @Description Creates the profile on first write, replaces it afterwards. The college link is untouched.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertStudentProfileRequest true "Profile information"
// @Success 200 {object} dto.APIResponse{data=models.StudentProfile} "Profile saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/profile [put]
func (c *StudentController) UpsertProfile(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpsertStudentProfileRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	profile, err := c.studentService.UpsertProfile(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}

// VerifyCollege links the caller to the college matching their email domain
// @Summary Verify college by email domain
// @Description Matches the caller's email domain against registered college domains and links the profile to the match
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.VerifyCollegeResponse} "College verified successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "No college matches the email domain"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/verify-college [post]
func (c *StudentController) VerifyCollege(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}

	result, err := c.studentService.VerifyCollege(ctx, userID, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// Apply submits a course application
// @Summary Apply to a course
// @Description Submits an application to a course, addressed to a faculty reviewer at the course's college
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApplyCourseRequest true "Application information"
// @Success 201 {object} dto.APIResponse{data=dto.ApplyCourseResponse} "Application submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or already applied"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Course, faculty or student profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/apply [post]
func (c *StudentController) Apply(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.ApplyCourseRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	result, err := c.studentService.Apply(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// ListApplications retrieves the caller's applications
// @Summary List own applications
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.CourseApplication} "Applications retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Router /students/applications [get]
func (c *StudentController) ListApplications(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	applications, err := c.studentService.ListApplications(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      applications,
		Timestamp: time.Now(),
	})
}

// CompareColleges builds a side-by-side comparison
// @Summary Compare colleges
// @Description Builds a side-by-side comparison of two or more colleges across profiles, infrastructure, placements, courses and scholarships
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param collegeId1 query int false "First college ID"
// @Param collegeId2 query int false "Second college ID"
// @Param ids query string false "Comma-separated college IDs, at least two" example("1,2")
// @Success 200 {object} dto.APIResponse{data=dto.CollegeComparison} "Comparison built successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid college ids"
// @Failure 404 {object} dto.ErrorResponse "One of the colleges was not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/compare-colleges [get]
func (c *StudentController) CompareColleges(ctx *gin.Context) {
	ids, ok := parseCompareQuery(ctx.Query("ids"), ctx.Query("collegeId1"), ctx.Query("collegeId2"))
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college ids")
		errorDetail = errorDetail.WithDetails("provide collegeId1 and collegeId2, or ids as at least two comma-separated college IDs")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	comparison, err := c.dashboardService.CompareColleges(ctx, ids)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      comparison,
		Timestamp: time.Now(),
	})
}

// Dashboard aggregates the caller's student data
// @Summary Student dashboard
// @Description Aggregates the caller's profile, applications and the verified college's scholarships
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentDashboard} "Dashboard retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/dashboard [get]
func (c *StudentController) Dashboard(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	dashboard, err := c.studentService.Dashboard(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dashboard,
		Timestamp: time.Now(),
	})
}
