package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vallabh/collegehub/internal/app/controllers"
	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	collegeController *controllers.CollegeController,
	courseController *controllers.CourseController,
	placementController *controllers.PlacementController,
	scholarshipController *controllers.ScholarshipController,
	alumniController *controllers.AlumniController,
	studentController *controllers.StudentController,
	facultyController *controllers.FacultyController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public browse routes ---
	colleges := v1.Group("/colleges")
	{
		colleges.GET("", collegeController.ListColleges)
		colleges.GET("/:id", collegeController.GetCollege)
		colleges.GET("/:id/infrastructure", collegeController.GetInfrastructure)
		colleges.GET("/:id/courses", courseController.ListCoursesByCollege)
		colleges.GET("/:id/placements", placementController.ListPlacements)
		colleges.GET("/:id/scholarships", scholarshipController.ListScholarships)
		colleges.GET("/:id/alumni", alumniController.ListAlumni)
		colleges.GET("/:id/faculty", facultyController.ListFacultyByCollege)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("/:id", courseController.GetCourse)
		courses.GET("/:id/cutoffs", courseController.ListCutoffs)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.GetProfile)

		// Institute-only routes: college profile and published content
		institute := authenticated.Group("")
		institute.Use(authMiddleware.RoleRequired(models.RoleInstitute))
		{
			institute.POST("/colleges", collegeController.CreateCollege)
			institute.GET("/colleges/me", collegeController.GetMyCollege)
			institute.GET("/colleges/me/dashboard", collegeController.GetInstituteDashboard)
			institute.PUT("/colleges/:id", collegeController.UpdateCollege)
			institute.DELETE("/colleges/:id", collegeController.DeleteCollege)
			institute.PUT("/colleges/:id/infrastructure", collegeController.UpsertInfrastructure)

			institute.POST("/courses", courseController.CreateCourse)
			institute.PUT("/courses/:id", courseController.UpdateCourse)
			institute.DELETE("/courses/:id", courseController.DeleteCourse)
			institute.POST("/courses/:id/cutoffs", courseController.CreateCutoff)
			institute.PUT("/courses/:id/cutoffs/:cutoffId", courseController.UpdateCutoff)
			institute.DELETE("/courses/:id/cutoffs/:cutoffId", courseController.DeleteCutoff)

			institute.POST("/colleges/:id/placements", placementController.CreatePlacement)
			institute.PUT("/colleges/:id/placements/:placementId", placementController.UpdatePlacement)
			institute.DELETE("/colleges/:id/placements/:placementId", placementController.DeletePlacement)

			institute.POST("/colleges/:id/scholarships", scholarshipController.CreateScholarship)
			institute.PUT("/colleges/:id/scholarships/:scholarshipId", scholarshipController.UpdateScholarship)
			institute.DELETE("/colleges/:id/scholarships/:scholarshipId", scholarshipController.DeleteScholarship)

			institute.POST("/colleges/:id/alumni", alumniController.CreateAlumnus)
			institute.PUT("/alumni/:id", alumniController.UpdateAlumnus)
			institute.DELETE("/alumni/:id", alumniController.DeleteAlumnus)

			institute.POST("/faculty/invitations", facultyController.InviteFaculty)
		}

		// Student-only routes
		courseApply := authenticated.Group("/courses")
		courseApply.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			courseApply.POST("/apply", studentController.Apply)
		}

		students := authenticated.Group("/students")
		students.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			students.GET("/profile", studentController.GetProfile)
			students.PUT("/profile", studentController.UpsertProfile)
			students.POST("/verify-college", studentController.VerifyCollege)
			// Legacy alias for POST /courses/apply
			students.POST("/apply", studentController.Apply)
			students.GET("/applications", studentController.ListApplications)
			students.GET("/compare-colleges", studentController.CompareColleges)
			students.GET("/dashboard", studentController.Dashboard)
		}

		// Faculty-only routes
		faculty := authenticated.Group("/faculty")
		faculty.Use(authMiddleware.RoleRequired(models.RoleFaculty))
		{
			faculty.GET("/invitations", facultyController.ListMyInvitations)
			faculty.POST("/invitations/:id/respond", facultyController.RespondInvitation)
			faculty.GET("/profile", facultyController.GetMyProfile)
			faculty.PUT("/profile", facultyController.UpdateMyProfile)
			faculty.GET("/applications", facultyController.ListApplications)
			faculty.PUT("/applications/:id/review", facultyController.ReviewApplication)
			faculty.GET("/dashboard", facultyController.Dashboard)
		}
	}
}
