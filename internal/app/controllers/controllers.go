// Package controllers contains the HTTP handlers. Controllers bind and
// validate requests, delegate to services and translate errors through the
// shared error middleware.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/middleware"
)

// parseIDParam parses a path parameter as an int64 id. On failure it writes
// a 400 and returns false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// requireUserID reads the authenticated user id set by the JWT middleware.
// On failure it writes a 401 and returns false.
func requireUserID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return userID, true
}

// requireEmail reads the authenticated user's email set by the JWT
// middleware. On failure it writes a 401 and returns false.
func requireEmail(ctx *gin.Context) (string, bool) {
	email, ok := middleware.CurrentEmail(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return "", false
	}
	return email, true
}
