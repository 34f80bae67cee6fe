package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	CollegeRepository     *CollegeRepository
	CourseRepository      *CourseRepository
	PlacementRepository   *PlacementRepository
	ScholarshipRepository *ScholarshipRepository
	AlumniRepository      *AlumniRepository
	FacultyRepository     *FacultyRepository
	StudentRepository     *StudentRepository
	ApplicationRepository *ApplicationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		CollegeRepository:     NewCollegeRepository(db),
		CourseRepository:      NewCourseRepository(db),
		PlacementRepository:   NewPlacementRepository(db),
		ScholarshipRepository: NewScholarshipRepository(db),
		AlumniRepository:      NewAlumniRepository(db),
		FacultyRepository:     NewFacultyRepository(db),
		StudentRepository:     NewStudentRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
	}
}
