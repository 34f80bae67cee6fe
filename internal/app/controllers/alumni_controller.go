package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/app/services"
	"github.com/vallabh/collegehub/internal/middleware"
)

// AlumniController handles notable alumni records
type AlumniController struct {
	alumniService services.AlumniService
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService services.AlumniService) *AlumniController {
	return &AlumniController{
		alumniService: alumniService,
	}
}

// CreateAlumnus adds an alumni record
// @Summary Create an alumni record
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "College ID"
// @Param request body dto.AlumnusRequest true "Alumni information"
// @Success 201 {object} dto.APIResponse{data=models.Alumnus} "Alumni record created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the owner"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{id}/alumni [post]
func (c *AlumniController) CreateAlumnus(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	collegeID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AlumnusRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	alumnus, err := c.alumniService.CreateAlumnus(ctx, collegeID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      alumnus,
		Timestamp: time.Now(),
	})
}

// ListAlumni retrieves the alumni records of a college
// @Summary List alumni of a college
// @Tags alumni
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Alumnus} "Alumni retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{id}/alumni [get]
func (c *AlumniController) ListAlumni(ctx *gin.Context) {
	collegeID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	alumni, err := c.alumniService.ListByCollege(ctx, collegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      alumni,
		Timestamp: time.Now(),
	})
}

// UpdateAlumnus updates an alumni record
// @Summary Update an alumni record
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni record ID"
// @Param request body dto.AlumnusRequest true "Alumni information"
// @Success 200 {object} dto.APIResponse{data=models.Alumnus} "Alumni record updated successfully"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Alumni record not found"
// @Router /alumni/{id} [put]
func (c *AlumniController) UpdateAlumnus(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AlumnusRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	alumnus, err := c.alumniService.UpdateAlumnus(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      alumnus,
		Timestamp: time.Now(),
	})
}

// DeleteAlumnus deletes an alumni record
// @Summary Delete an alumni record
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumni record ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Alumni record deleted successfully"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Alumni record not found"
// @Router /alumni/{id} [delete]
func (c *AlumniController) DeleteAlumnus(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.alumniService.DeleteAlumnus(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Alumni record deleted successfully"},
		Timestamp: time.Now(),
	})
}
