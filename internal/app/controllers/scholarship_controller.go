package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/app/services"
	"github.com/vallabh/collegehub/internal/middleware"
)

// ScholarshipController handles scholarships published by colleges
type ScholarshipController struct {
	scholarshipService services.ScholarshipService
}

// NewScholarshipController creates a new ScholarshipController
func NewScholarshipController(scholarshipService services.ScholarshipService) *ScholarshipController {
	return &ScholarshipController{
		scholarshipService: scholarshipService,
	}
}

// CreateScholarship publishes a scholarship
// @Summary Create a scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "College ID"
// @Param request body dto.ScholarshipRequest true "Scholarship information"
// @Success 201 {object} dto.APIResponse{data=models.Scholarship} "Scholarship created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the owner"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{id}/scholarships [post]
func (c *ScholarshipController) CreateScholarship(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	collegeID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ScholarshipRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	scholarship, err := c.scholarshipService.CreateScholarship(ctx, collegeID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      scholarship,
		Timestamp: time.Now(),
	})
}

// ListScholarships retrieves the scholarships of a college
// @Summary List scholarships
// @Tags scholarships
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Scholarship} "Scholarships retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{id}/scholarships [get]
func (c *ScholarshipController) ListScholarships(ctx *gin.Context) {
	collegeID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	scholarships, err := c.scholarshipService.ListByCollege(ctx, collegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      scholarships,
		Timestamp: time.Now(),
	})
}

// UpdateScholarship updates a scholarship
// @Summary Update a scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "College ID"
// @Param scholarshipId path int true "Scholarship ID"
// @Param request body dto.ScholarshipRequest true "Scholarship information"
// @Success 200 {object} dto.APIResponse{data=models.Scholarship} "Scholarship updated successfully"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Scholarship not found"
// @Router /colleges/{id}/scholarships/{scholarshipId} [put]
func (c *ScholarshipController) UpdateScholarship(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	scholarshipID, ok := parseIDParam(ctx, "scholarshipId")
	if !ok {
		return
	}

	var req dto.ScholarshipRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	scholarship, err := c.scholarshipService.UpdateScholarship(ctx, scholarshipID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      scholarship,
		Timestamp: time.Now(),
	})
}

// DeleteScholarship deletes a scholarship
// @Summary Delete a scholarship
// @Tags scholarships
// @Produce json
// @Security BearerAuth
// @Param id path int true "College ID"
// @Param scholarshipId path int true "Scholarship ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Scholarship deleted successfully"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Scholarship not found"
// @Router /colleges/{id}/scholarships/{scholarshipId} [delete]
func (c *ScholarshipController) DeleteScholarship(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	scholarshipID, ok := parseIDParam(ctx, "scholarshipId")
	if !ok {
		return
	}

	if err := c.scholarshipService.DeleteScholarship(ctx, scholarshipID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Scholarship deleted successfully"},
		Timestamp: time.Now(),
	})
}
