package services

import (
	"github.com/rs/zerolog/log"

	"github.com/vallabh/collegehub/internal/app/auth"
	"github.com/vallabh/collegehub/internal/app/repositories"
	"github.com/vallabh/collegehub/internal/db"
	pkgAuth "github.com/vallabh/collegehub/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService        AuthService
	CollegeService     CollegeService
	CourseService      CourseService
	PlacementService   PlacementService
	ScholarshipService ScholarshipService
	AlumniService      AlumniService
	FacultyService     FacultyService
	StudentService     StudentService
	DashboardService   DashboardService
}

// NewServices wires all services against the repositories
func NewServices(
	repos *repositories.Repositories,
	authzService *auth.AuthorizationService,
	jwtService *pkgAuth.JWTService,
	database *db.PostgresDB,
) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, jwtService, log.Logger),
		CollegeService: NewCollegeService(repos.CollegeRepository, authzService),
		CourseService:  NewCourseService(repos.CourseRepository, authzService),
		PlacementService: NewPlacementService(
			repos.PlacementRepository, repos.CollegeRepository, authzService),
		ScholarshipService: NewScholarshipService(
			repos.ScholarshipRepository, repos.CollegeRepository, authzService),
		AlumniService: NewAlumniService(
			repos.AlumniRepository, repos.CollegeRepository, authzService),
		FacultyService: NewFacultyService(
			repos.FacultyRepository, repos.CollegeRepository, repos.ApplicationRepository),
		StudentService: NewStudentService(
			repos.StudentRepository, repos.CollegeRepository, repos.CourseRepository,
			repos.FacultyRepository, repos.ScholarshipRepository, repos.ApplicationRepository,
			database),
		DashboardService: NewDashboardService(
			repos.CollegeRepository, repos.CourseRepository, repos.PlacementRepository,
			repos.ScholarshipRepository, repos.AlumniRepository, repos.FacultyRepository,
			repos.ApplicationRepository),
	}
}
