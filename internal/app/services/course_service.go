package services

import (
	"context"
	"fmt"

	"github.com/vallabh/collegehub/internal/app/auth"
	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/app/repositories"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
	"github.com/vallabh/collegehub/internal/pkg/dberrors"
)

// CourseService handles courses and their yearly admission cutoffs
type CourseService interface {
	CreateCourse(ctx context.Context, userID int64, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	ListByCollege(ctx context.Context, collegeID int64) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, courseID, userID int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, courseID, userID int64) error

	CreateCutoff(ctx context.Context, courseID, userID int64, req *dto.CutoffRequest) (*models.Cutoff, error)
	ListCutoffs(ctx context.Context, courseID int64) ([]*models.Cutoff, error)
	UpdateCutoff(ctx context.Context, cutoffID, userID int64, req *dto.CutoffRequest) (*models.Cutoff, error)
	DeleteCutoff(ctx context.Context, cutoffID, userID int64) error
}

type courseService struct {
	courseRepo   repositories.ICourseRepository
	authzService *auth.AuthorizationService
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo repositories.ICourseRepository, authzService *auth.AuthorizationService) CourseService {
	return &courseService{
		courseRepo:   courseRepo,
		authzService: authzService,
	}
}

// CreateCourse adds a course to a college the caller owns
func (s *courseService) CreateCourse(ctx context.Context, userID int64, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.authzService.ValidateCollegeOwnership(ctx, req.CollegeID, userID); err != nil {
		return nil, err
	}

	course := &models.Course{
		CollegeID:     req.CollegeID,
		Name:          req.Name,
		DurationYears: req.DurationYears,
		Fee:           req.Fee,
	}

	if _, err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// GetCourse retrieves a course by id
func (s *courseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// ListByCollege retrieves all courses of a college
func (s *courseService) ListByCollege(ctx context.Context, collegeID int64) ([]*models.Course, error) {
	return s.courseRepo.GetByCollegeID(ctx, collegeID)
}

// UpdateCourse overwrites the mutable attributes of a course the caller owns
func (s *courseService) UpdateCourse(ctx context.Context, courseID, userID int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if err := s.authzService.ValidateCourseOwnership(ctx, courseID, userID); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	course.Name = req.Name
	course.DurationYears = req.DurationYears
	course.Fee = req.Fee

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes a course the caller owns together with its cutoffs
// and applications.
func (s *courseService) DeleteCourse(ctx context.Context, courseID, userID int64) error {
	if err := s.authzService.ValidateCourseOwnership(ctx, courseID, userID); err != nil {
		return err
	}
	return s.courseRepo.Delete(ctx, courseID)
}

// CreateCutoff records the category-wise cutoffs of a course for one year.
// At most one row per (course, year); the unique constraint decides the
// race loser.
func (s *courseService) CreateCutoff(ctx context.Context, courseID, userID int64, req *dto.CutoffRequest) (*models.Cutoff, error) {
	if err := s.authzService.ValidateCourseOwnership(ctx, courseID, userID); err != nil {
		return nil, err
	}

	exists, err := s.courseRepo.CutoffExists(ctx, courseID, req.Year)
	if err != nil {
		return nil, fmt.Errorf("error checking cutoff existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCutoffAlreadyExists
	}

	cutoff := &models.Cutoff{
		CourseID: courseID,
		Year:     req.Year,
		General:  req.General,
		OBC:      req.OBC,
		SC:       req.SC,
		ST:       req.ST,
		EWS:      req.EWS,
	}

	if _, err := s.courseRepo.CreateCutoff(ctx, cutoff); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "cutoffs_course_id_year_key") {
			return nil, apperrors.ErrCutoffAlreadyExists
		}
		return nil, fmt.Errorf("error creating cutoff: %w", err)
	}
	return cutoff, nil
}

// ListCutoffs retrieves the cutoffs of a course, newest year first
func (s *courseService) ListCutoffs(ctx context.Context, courseID int64) ([]*models.Cutoff, error) {
	// Resolve the course first so a bad id yields a course 404
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.courseRepo.GetCutoffsByCourseID(ctx, courseID)
}

// UpdateCutoff overwrites a cutoff the caller owns. Changing the year to one
// that already has a row is rejected.
func (s *courseService) UpdateCutoff(ctx context.Context, cutoffID, userID int64, req *dto.CutoffRequest) (*models.Cutoff, error) {
	if err := s.authzService.ValidateCutoffOwnership(ctx, cutoffID, userID); err != nil {
		return nil, err
	}

	cutoff, err := s.courseRepo.GetCutoffByID(ctx, cutoffID)
	if err != nil {
		return nil, err
	}

	if req.Year != cutoff.Year {
		exists, err := s.courseRepo.CutoffExists(ctx, cutoff.CourseID, req.Year)
		if err != nil {
			return nil, fmt.Errorf("error checking cutoff existence: %w", err)
		}
		if exists {
			return nil, apperrors.ErrCutoffAlreadyExists
		}
	}

	cutoff.Year = req.Year
	cutoff.General = req.General
	cutoff.OBC = req.OBC
	cutoff.SC = req.SC
	cutoff.ST = req.ST
	cutoff.EWS = req.EWS

	if err := s.courseRepo.UpdateCutoff(ctx, cutoff); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "cutoffs_course_id_year_key") {
			return nil, apperrors.ErrCutoffAlreadyExists
		}
		return nil, err
	}
	return cutoff, nil
}

// DeleteCutoff removes a cutoff the caller owns
func (s *courseService) DeleteCutoff(ctx context.Context, cutoffID, userID int64) error {
	if err := s.authzService.ValidateCutoffOwnership(ctx, cutoffID, userID); err != nil {
		return err
	}
	return s.courseRepo.DeleteCutoff(ctx, cutoffID)
}
