package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
	"github.com/vallabh/collegehub/internal/pkg/auth"
	"github.com/vallabh/collegehub/internal/pkg/logger"
)

// HandleAPIError maps service-layer errors to HTTP responses. A CustomError
// wrapping a sentinel keeps the sentinel's status code but replaces the
// client-facing message.
func HandleAPIError(c *gin.Context, err error) {
	status, code, message := classifyError(err)

	// A CustomError carries the exact message the client should see
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled API error")
		// Never leak internals to the client
		message = "Internal server error"
	}

	c.JSON(status, dto.APIResponse{
		Error: dto.NewErrorDetail(code, message),
	})
}

func classifyError(err error) (int, dto.ErrorCode, string) {
	switch {
	// 400 — business rule violations surfaced as bad requests
	case errors.Is(err, apperrors.ErrCollegeAlreadyExists):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "This user already has a registered college"
	case errors.Is(err, apperrors.ErrAlreadyApplied):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "You have already applied to this course"
	case errors.Is(err, apperrors.ErrCutoffAlreadyExists):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Cutoff for this year already exists"
	case errors.Is(err, apperrors.ErrPlacementAlreadyExists):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Placement record for this year already exists"
	case errors.Is(err, apperrors.ErrApplicationReviewed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Application has already been reviewed"
	case errors.Is(err, apperrors.ErrInvitationResolved):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invitation has already been responded to"
	case errors.Is(err, apperrors.ErrFacultyNotAtCollege):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Selected faculty does not belong to this college"
	case errors.Is(err, apperrors.ErrInvalidEmail):
		return http.StatusBadRequest, dto.ErrorCodeInvalidEmail, "Invalid email address"
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request"

	// 401 — authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"

	// 403 — authorization
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"

	// 404 — missing resources
	case errors.Is(err, apperrors.ErrNoMatchingCollegeDomain):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "No college matches your email domain"
	case errors.Is(err, apperrors.ErrCollegeNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "College not found"
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found"
	case errors.Is(err, apperrors.ErrCutoffNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Cutoff not found"
	case errors.Is(err, apperrors.ErrPlacementNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Placement record not found"
	case errors.Is(err, apperrors.ErrScholarshipNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Scholarship not found"
	case errors.Is(err, apperrors.ErrAlumnusNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Alumni record not found"
	case errors.Is(err, apperrors.ErrFacultyProfileNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Faculty profile not found"
	case errors.Is(err, apperrors.ErrInvitationNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Invitation not found"
	case errors.Is(err, apperrors.ErrStudentProfileNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student profile not found"
	case errors.Is(err, apperrors.ErrApplicationNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Application not found"
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"

	// 409 — conflicts
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"
	case errors.Is(err, apperrors.ErrInvitationAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "A pending invitation for this email already exists"
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"

	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"
	}
}
