package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/app/services"
	"github.com/vallabh/collegehub/internal/middleware"
)

// FacultyController handles invitations, faculty profiles and application
// review.
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// InviteFaculty invites a faculty member to the caller's college
// @Summary Invite a faculty member
// @Description Records a pending invitation from the caller's college to a faculty email
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.InviteFacultyRequest true "Invitation information"
// @Success 201 {object} dto.APIResponse{data=models.FacultyInvitation} "Invitation created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Institute role required"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 409 {object} dto.ErrorResponse "A pending invitation for this email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/invitations [post]
func (c *FacultyController) InviteFaculty(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.InviteFacultyRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	invitation, err := c.facultyService.InviteFaculty(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      invitation,
		Timestamp: time.Now(),
	})
}

// ListMyInvitations retrieves the caller's pending invitations
// @Summary List own pending invitations
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.FacultyInvitation} "Invitations retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /faculty/invitations [get]
func (c *FacultyController) ListMyInvitations(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}

	invitations, err := c.facultyService.ListMyInvitations(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      invitations,
		Timestamp: time.Now(),
	})
}

// RespondInvitation resolves a pending invitation
// @Summary Respond to an invitation
// @Description Accepts or rejects a pending invitation addressed to the caller. Accepting creates the faculty profile.
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invitation ID"
// @Param request body dto.RespondInvitationRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=models.FacultyProfile} "Invitation resolved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or invitation already resolved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Invitation addressed to someone else"
// @Failure 404 {object} dto.ErrorResponse "Invitation not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/invitations/{id}/respond [post]
func (c *FacultyController) RespondInvitation(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RespondInvitationRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	profile, err := c.facultyService.RespondInvitation(ctx, userID, email, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if profile == nil {
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data:      dto.SuccessResponse{Message: "Invitation rejected"},
			Timestamp: time.Now(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}

// GetMyProfile retrieves the caller's faculty profile
// @Summary Get own faculty profile
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.FacultyProfile} "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty profile not found"
// @Router /faculty/profile [get]
func (c *FacultyController) GetMyProfile(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.facultyService.GetMyProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}

// UpdateMyProfile updates the caller's faculty profile
// @Summary Update own faculty profile
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateFacultyProfileRequest true "Profile information"
// @Success 200 {object} dto.APIResponse{data=models.FacultyProfile} "Profile updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty profile not found"
// @Router /faculty/profile [put]
func (c *FacultyController) UpdateMyProfile(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateFacultyProfileRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	profile, err := c.facultyService.UpdateMyProfile(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}

// ListFacultyByCollege retrieves the faculty members of a college
// @Summary List faculty of a college
// @Description Retrieves the faculty members of a college. Students use this to pick a reviewer.
// @Tags faculty
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {object} dto.APIResponse{data=[]models.FacultyProfile} "Faculty retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{id}/faculty [get]
func (c *FacultyController) ListFacultyByCollege(ctx *gin.Context) {
	collegeID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	profiles, err := c.facultyService.ListByCollege(ctx, collegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profiles,
		Timestamp: time.Now(),
	})
}

// ListApplications retrieves the applications addressed to the caller
// @Summary List applications addressed to the caller
// @Description Retrieves every application awaiting or past the caller's review, newest first
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.CourseApplication} "Applications retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty profile not found"
// @Router /faculty/applications [get]
func (c *FacultyController) ListApplications(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	applications, err := c.facultyService.ListApplications(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      applications,
		Timestamp: time.Now(),
	})
}

// ReviewApplication records the caller's decision on an application
// @Summary Review an application
// @Description Approves or rejects a pending application addressed to the caller. Decided applications are immutable.
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.ReviewApplicationRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=models.CourseApplication} "Application reviewed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or application already reviewed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Application addressed to someone else"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/applications/{id}/review [put]
func (c *FacultyController) ReviewApplication(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ReviewApplicationRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	application, err := c.facultyService.ReviewApplication(ctx, userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      application,
		Timestamp: time.Now(),
	})
}

// Dashboard aggregates the caller's review workload
// @Summary Faculty dashboard
// @Description Aggregates the caller's profile, review counters and recent applications
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FacultyDashboard} "Dashboard retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/dashboard [get]
func (c *FacultyController) Dashboard(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	dashboard, err := c.facultyService.Dashboard(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dashboard,
		Timestamp: time.Now(),
	})
}
