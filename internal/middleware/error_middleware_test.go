package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, *dto.ErrorDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/colleges", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return w.Code, body.Error
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"duplicate cutoff", apperrors.ErrCutoffAlreadyExists, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Cutoff for this year already exists"},
		{"duplicate application", apperrors.ErrAlreadyApplied, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "You have already applied to this course"},
		{"reviewed application", apperrors.ErrApplicationReviewed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Application has already been reviewed"},
		{"no matching domain", apperrors.ErrNoMatchingCollegeDomain, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "No college matches your email domain"},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},
		{"college not found", apperrors.ErrCollegeNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "College not found"},
		{"application not found", apperrors.ErrApplicationNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Application not found"},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"},
		{"pending invitation", apperrors.ErrInvitationAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "A pending invitation for this email already exists"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, detail := handleError(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, detail.Code)
			assert.Equal(t, tc.message, detail.Message)
		})
	}
}

func TestHandleAPIErrorCustomMessage(t *testing.T) {
	status, detail := handleError(t, apperrors.NewBadRequestError("Highest package cannot be below the average package"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Highest package cannot be below the average package", detail.Message)
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	// A wrapped sentinel still maps to its status
	status, detail := handleError(t, apperrors.NewResourceNotFoundError("infrastructure record not found"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "infrastructure record not found", detail.Message)
}

func TestHandleAPIErrorUnknown(t *testing.T) {
	status, detail := handleError(t, errors.New("pgx: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, dto.ErrorCodeInternalServer, detail.Code)
	// Internal details never reach the client
	assert.Equal(t, "Internal server error", detail.Message)
}
