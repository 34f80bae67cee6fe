package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/app/services"
	"github.com/vallabh/collegehub/internal/middleware"
)

// CollegeController handles college profiles, infrastructure and the
// institute dashboard.
type CollegeController struct {
	collegeService   services.CollegeService
	dashboardService services.DashboardService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService, dashboardService services.DashboardService) *CollegeController {
	return &CollegeController{
		collegeService:   collegeService,
		dashboardService: dashboardService,
	}
}

// CreateCollege handles college registration
// @Summary Register a college
// @Description Creates the caller's college profile. A user can own at most one college.
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCollegeRequest true "College information"
// @Success 201 {object} dto.APIResponse{data=models.College} "College registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or college already registered"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Institute role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges [post]
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateCollegeRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	college, err := c.collegeService.CreateCollege(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      college,
		Timestamp: time.Now(),
	})
}

// ListColleges retrieves colleges with optional filters
// @Summary List colleges
// @Description Retrieves colleges filtered by city, state and name substring, with pagination
// @Tags colleges
// @Produce json
// @Param city query string false "Filter by city"
// @Param state query string false "Filter by state"
// @Param name query string false "Case-insensitive name substring"
// @Param page query int false "1-based page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Colleges retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges [get]
func (c *CollegeController) ListColleges(ctx *gin.Context) {
	var filter dto.CollegeListFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	colleges, pagination, err := c.collegeService.ListColleges(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      colleges,
			Pagination: pagination,
		},
		Timestamp: time.Now(),
	})
}

// GetCollege retrieves a college by ID
// @Summary Get college by ID
// @Description Retrieves a college profile
// @Tags colleges
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {object} dto.APIResponse{data=models.College} "College retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid college ID"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/{id} [get]
func (c *CollegeController) GetCollege(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	college, err := c.collegeService.GetCollege(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      college,
		Timestamp: time.Now(),
	})
}

// GetMyCollege retrieves the caller's college
// @Summary Get own college
// @Description Retrieves the college owned by the authenticated institute user
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.College} "College retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/me [get]
func (c *CollegeController) GetMyCollege(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	college, err := c.collegeService.GetMyCollege(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      college,
		Timestamp: time.Now(),
	})
}

// UpdateCollege updates the caller's college
// @Summary Update a college
// @Description Overwrites the mutable attributes of a college the caller owns
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "College ID"
// @Param request body dto.UpdateCollegeRequest true "College information"
// @Success 200 {object} dto.APIResponse{data=models.College} "College updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the owner"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/{id} [put]
func (c *CollegeController) UpdateCollege(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCollegeRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	college, err := c.collegeService.UpdateCollege(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      college,
		Timestamp: time.Now(),
	})
}

// DeleteCollege deletes the caller's college
// @Summary Delete a college
// @Description Removes a college the caller owns together with all its dependent records
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Param id path int true "College ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "College deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the owner"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/{id} [delete]
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.collegeService.DeleteCollege(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "College deleted successfully"},
		Timestamp: time.Now(),
	})
}

// GetInfrastructure retrieves a college's infrastructure record
// @Summary Get college infrastructure
// @Description Retrieves the infrastructure record of a college
// @Tags colleges
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {object} dto.APIResponse{data=models.Infrastructure} "Infrastructure retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "College or infrastructure record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/{id}/infrastructure [get]
func (c *CollegeController) GetInfrastructure(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	infra, err := c.collegeService.GetInfrastructure(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      infra,
		Timestamp: time.Now(),
	})
}

// UpsertInfrastructure creates or replaces a college's infrastructure record
// @Summary Upsert college infrastructure
// @Description Creates or replaces the one-to-one infrastructure record of a college the caller owns
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "College ID"
// @Param request body dto.UpsertInfrastructureRequest true "Infrastructure information"
// @Success 200 {object} dto.APIResponse{data=models.Infrastructure} "Infrastructure saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the owner"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/{id}/infrastructure [put]
func (c *CollegeController) UpsertInfrastructure(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpsertInfrastructureRequest
	if !middleware.ValidateBody(ctx, &req) {
		return
	}

	infra, err := c.collegeService.UpsertInfrastructure(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      infra,
		Timestamp: time.Now(),
	})
}

// GetInstituteDashboard aggregates the caller's college metrics
// @Summary Institute dashboard
// @Description Aggregates the caller's college with entity counts and recent applications
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.InstituteDashboard} "Dashboard retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Institute role required"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/me/dashboard [get]
func (c *CollegeController) GetInstituteDashboard(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.InstituteDashboard(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dashboard,
		Timestamp: time.Now(),
	})
}

// parseCompareQuery resolves the comparison target ids from either the
// collegeId1/collegeId2 pair or the comma-separated ids parameter.
func parseCompareQuery(ids, collegeID1, collegeID2 string) ([]int64, bool) {
	if ids == "" {
		if collegeID1 == "" || collegeID2 == "" {
			return nil, false
		}
		ids = collegeID1 + "," + collegeID2
	}
	return parseCollegeIDs(ids)
}

// parseCollegeIDs parses the comma-separated ids query parameter of the
// comparison endpoint.
func parseCollegeIDs(raw string) ([]int64, bool) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	seen := make(map[int64]bool, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id < 1 {
			return nil, false
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) < 2 {
		return nil, false
	}
	return ids, true
}
