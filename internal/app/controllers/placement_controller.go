package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/app/services"
	"github.com/vallabh/collegehub/internal/middleware"
)

// PlacementController handles per-year placement statistics
type PlacementController struct {
	placementService services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService services.PlacementService) *PlacementController {
	return &PlacementController{
		placementService: placementService,
	}
}

// CreatePlacement records placement statistics for one year
// @Summary Create a placement record
// @Description Records the placement statistics of a college for one year
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "College ID"
// @Param request body dto.PlacementRequest true "Placement information"
// @Success 201 {object} dto.APIResponse{data=models.Placement} "Placement record created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or record already exists for the year"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the owner"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/{id}/placements [post]
func (c *PlacementController) CreatePlacement(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	collegeID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.PlacementRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	placement, err := c.placementService.CreatePlacement(ctx, collegeID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      placement,
		Timestamp: time.Now(),
	})
}

// ListPlacements retrieves the placement records of a college
// @Summary List placement records
// @Description Retrieves all placement records of a college, newest year first
// @Tags placements
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Placement} "Placement records retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/{id}/placements [get]
func (c *PlacementController) ListPlacements(ctx *gin.Context) {
	collegeID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	placements, err := c.placementService.ListByCollege(ctx, collegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      placements,
		Timestamp: time.Now(),
	})
}

// UpdatePlacement updates a placement record
// @Summary Update a placement record
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "College ID"
// @Param placementId path int true "Placement ID"
// @Param request body dto.PlacementRequest true "Placement information"
// @Success 200 {object} dto.APIResponse{data=models.Placement} "Placement record updated successfully"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Placement record not found"
// @Router /colleges/{id}/placements/{placementId} [put]
func (c *PlacementController) UpdatePlacement(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	placementID, ok := parseIDParam(ctx, "placementId")
	if !ok {
		return
	}

	var req dto.PlacementRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	placement, err := c.placementService.UpdatePlacement(ctx, placementID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      placement,
		Timestamp: time.Now(),
	})
}

// DeletePlacement deletes a placement record
// @Summary Delete a placement record
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param id path int true "College ID"
// @Param placementId path int true "Placement ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Placement record deleted successfully"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Placement record not found"
// @Router /colleges/{id}/placements/{placementId} [delete]
func (c *PlacementController) DeletePlacement(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	placementID, ok := parseIDParam(ctx, "placementId")
	if !ok {
		return
	}

	if err := c.placementService.DeletePlacement(ctx, placementID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Placement record deleted successfully"},
		Timestamp: time.Now(),
	})
}
