package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/app/repositories"
	"github.com/vallabh/collegehub/internal/db"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
	"github.com/vallabh/collegehub/internal/pkg/dberrors"
	"github.com/vallabh/collegehub/internal/pkg/logger"
	"github.com/vallabh/collegehub/internal/pkg/validation"
)

// TransactionRunner runs a function inside a database transaction.
// *db.PostgresDB satisfies it.
type TransactionRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// StudentService handles student profiles, college verification and course
// applications.
type StudentService interface {
	GetProfile(ctx context.Context, userID int64) (*models.StudentProfile, error)
	UpsertProfile(ctx context.Context, userID int64, req *dto.UpsertStudentProfileRequest) (*models.StudentProfile, error)
	VerifyCollege(ctx context.Context, userID int64, email string) (*dto.VerifyCollegeResponse, error)
	Apply(ctx context.Context, userID int64, req *dto.ApplyCourseRequest) (*dto.ApplyCourseResponse, error)
	ListApplications(ctx context.Context, userID int64) ([]*models.CourseApplication, error)
	Dashboard(ctx context.Context, userID int64) (*dto.StudentDashboard, error)
}

type studentService struct {
	studentRepo     repositories.IStudentRepository
	collegeRepo     repositories.ICollegeRepository
	courseRepo      repositories.ICourseRepository
	facultyRepo     repositories.IFacultyRepository
	scholarshipRepo repositories.IScholarshipRepository
	applicationRepo repositories.IApplicationRepository
	database        TransactionRunner
}

// NewStudentService creates a new student service
func NewStudentService(
	studentRepo repositories.IStudentRepository,
	collegeRepo repositories.ICollegeRepository,
	courseRepo repositories.ICourseRepository,
	facultyRepo repositories.IFacultyRepository,
	scholarshipRepo repositories.IScholarshipRepository,
	applicationRepo repositories.IApplicationRepository,
	database TransactionRunner,
) StudentService {
	return &studentService{
		studentRepo:     studentRepo,
		collegeRepo:     collegeRepo,
		courseRepo:      courseRepo,
		facultyRepo:     facultyRepo,
		scholarshipRepo: scholarshipRepo,
		applicationRepo: applicationRepo,
		database:        database,
	}
}

// GetProfile retrieves the caller's student profile
func (s *studentService) GetProfile(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	return s.studentRepo.GetProfileByUserID(ctx, userID)
}

// UpsertProfile creates or replaces the caller's student profile. Profiles
// are created lazily on first write; the college link is untouched.
func (s *studentService) UpsertProfile(ctx context.Context, userID int64, req *dto.UpsertStudentProfileRequest) (*models.StudentProfile, error) {
	profile := &models.StudentProfile{
		UserID:       userID,
		EntranceExam: req.EntranceExam,
		ExamScore:    req.ExamScore,
		Category:     req.Category,
		Stream:       req.Stream,
	}

	if err := s.studentRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// VerifyCollege links the caller to the college whose registered email
// domain matches the caller's email domain, marking the profile verified.
// The lookup and the link commit in one transaction.
func (s *studentService) VerifyCollege(ctx context.Context, userID int64, email string) (*dto.VerifyCollegeResponse, error) {
	domain := validation.EmailDomain(email)
	if domain == "" {
		return nil, apperrors.ErrInvalidEmail
	}

	college, err := s.collegeRepo.GetByEmailDomain(ctx, domain)
	if err != nil {
		if errors.Is(err, apperrors.ErrCollegeNotFound) {
			return nil, apperrors.ErrNoMatchingCollegeDomain
		}
		return nil, err
	}

	profile, err := s.studentRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrStudentProfileNotFound) {
			return nil, err
		}
		// First touch; create an empty profile to hang the link on
		profile = &models.StudentProfile{UserID: userID}
		if err := s.studentRepo.UpsertProfile(ctx, profile); err != nil {
			return nil, err
		}
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.studentRepo.LinkCollege(ctx, tx, profile.ID, college.ID)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", userID).Int64("collegeID", college.ID).Str("domain", domain).Msg("Student verified against college")
	return &dto.VerifyCollegeResponse{
		CollegeID:   college.ID,
		CollegeName: college.Name,
		Verified:    true,
	}, nil
}

// Apply submits an application to a course, addressed to a faculty reviewer
// at the course's college. One application per (student, course); the unique
// constraint decides the race loser.
func (s *studentService) Apply(ctx context.Context, userID int64, req *dto.ApplyCourseRequest) (*dto.ApplyCourseResponse, error) {
	profile, err := s.studentRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	faculty, err := s.facultyRepo.GetProfileByID(ctx, req.FacultyID)
	if err != nil {
		return nil, err
	}
	if faculty.CollegeID != course.CollegeID {
		return nil, apperrors.ErrFacultyNotAtCollege
	}

	exists, err := s.applicationRepo.Exists(ctx, profile.ID, course.ID)
	if err != nil {
		return nil, fmt.Errorf("error checking application existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.CourseApplication{
		StudentID: profile.ID,
		CourseID:  course.ID,
		FacultyID: faculty.ID,
	}

	if _, err := s.applicationRepo.Create(ctx, application); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "course_applications_student_id_course_id_key") {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("error creating application: %w", err)
	}

	logger.Info().Int64("applicationID", application.ID).Int64("courseID", course.ID).Int64("studentID", profile.ID).Msg("Application submitted")
	return &dto.ApplyCourseResponse{
		ApplicationID: application.ID,
		Status:        string(application.Status),
	}, nil
}

// ListApplications retrieves the caller's applications, newest first
func (s *studentService) ListApplications(ctx context.Context, userID int64) ([]*models.CourseApplication, error) {
	profile, err := s.studentRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.applicationRepo.GetByStudentID(ctx, profile.ID)
}

// Dashboard aggregates the caller's profile, applications and the verified
// college's scholarships. The queries are independent and run concurrently.
func (s *studentService) Dashboard(ctx context.Context, userID int64) (*dto.StudentDashboard, error) {
	profile, err := s.studentRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := &dto.StudentDashboard{Profile: profile}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		applications, err := s.applicationRepo.GetByStudentID(gctx, profile.ID)
		if err != nil {
			return err
		}
		dashboard.Applications = applications
		return nil
	})
	if profile.CollegeID != nil {
		collegeID := *profile.CollegeID
		g.Go(func() error {
			scholarships, err := s.scholarshipRepo.GetByCollegeID(gctx, collegeID)
			if err != nil {
				return err
			}
			dashboard.Scholarships = scholarships
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error building student dashboard: %w", err)
	}

	return dashboard, nil
}
