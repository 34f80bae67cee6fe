package routes

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vallabh/collegehub/internal/app/controllers"
	"github.com/vallabh/collegehub/internal/middleware"
	"github.com/vallabh/collegehub/internal/pkg/auth"
)

func newRouterForTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "collegehub.test",
	})

	SetupRouter(
		router,
		controllers.NewAuthController(nil),
		controllers.NewCollegeController(nil, nil),
		controllers.NewCourseController(nil),
		controllers.NewPlacementController(nil),
		controllers.NewScholarshipController(nil),
		controllers.NewAlumniController(nil),
		controllers.NewStudentController(nil, nil),
		controllers.NewFacultyController(nil),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router
}

func TestSetupRouterRegistersEndpoints(t *testing.T) {
	router := newRouterForTest()

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		http.MethodPost + " /api/v1/auth/register",
		http.MethodPost + " /api/v1/auth/login",
		http.MethodGet + " /api/v1/colleges",
		http.MethodGet + " /api/v1/colleges/:id/courses",
		http.MethodGet + " /api/v1/courses/:id/cutoffs",
		http.MethodPost + " /api/v1/colleges",
		http.MethodGet + " /api/v1/colleges/me/dashboard",
		http.MethodPost + " /api/v1/courses/apply",
		http.MethodPost + " /api/v1/students/apply",
		http.MethodPost + " /api/v1/students/verify-college",
		http.MethodGet + " /api/v1/students/compare-colleges",
		http.MethodGet + " /api/v1/students/dashboard",
		http.MethodGet + " /api/v1/faculty/applications",
		http.MethodPut + " /api/v1/faculty/applications/:id/review",
		http.MethodGet + " /api/v1/faculty/dashboard",
		http.MethodPost + " /api/v1/faculty/invitations/:id/respond",
	}
	for _, want := range expected {
		assert.True(t, registered[want], "missing route %s", want)
	}
}
