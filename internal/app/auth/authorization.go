package auth

import (
	"context"

	"github.com/vallabh/collegehub/internal/app/repositories"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
	"github.com/vallabh/collegehub/internal/pkg/logger"
)

// AuthorizationService resolves the owner chain of an entity up to the
// controlling user and validates it against the caller. Every mutation on
// college-owned data goes through one of these checks before any write.
type AuthorizationService struct {
	collegeRepo     repositories.ICollegeRepository
	courseRepo      repositories.ICourseRepository
	placementRepo   repositories.IPlacementRepository
	scholarshipRepo repositories.IScholarshipRepository
	alumniRepo      repositories.IAlumniRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(
	collegeRepo repositories.ICollegeRepository,
	courseRepo repositories.ICourseRepository,
	placementRepo repositories.IPlacementRepository,
	scholarshipRepo repositories.IScholarshipRepository,
	alumniRepo repositories.IAlumniRepository,
) *AuthorizationService {
	return &AuthorizationService{
		collegeRepo:     collegeRepo,
		courseRepo:      courseRepo,
		placementRepo:   placementRepo,
		scholarshipRepo: scholarshipRepo,
		alumniRepo:      alumniRepo,
	}
}

// ValidateCollegeOwnership validates that userID owns the college.
// Returns the not-found error untouched so callers can map it to 404.
func (s *AuthorizationService) ValidateCollegeOwnership(ctx context.Context, collegeID, userID int64) error {
	ownerID, err := s.collegeRepo.GetOwnerID(ctx, collegeID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		logger.Warn().Int64("collegeID", collegeID).Int64("userID", userID).Msg("College ownership check failed")
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateCourseOwnership resolves course -> college -> user and validates
// the chain against the caller.
func (s *AuthorizationService) ValidateCourseOwnership(ctx context.Context, courseID, userID int64) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	return s.ValidateCollegeOwnership(ctx, course.CollegeID, userID)
}

// ValidateCutoffOwnership resolves cutoff -> course -> college -> user.
func (s *AuthorizationService) ValidateCutoffOwnership(ctx context.Context, cutoffID, userID int64) error {
	cutoff, err := s.courseRepo.GetCutoffByID(ctx, cutoffID)
	if err != nil {
		return err
	}
	return s.ValidateCourseOwnership(ctx, cutoff.CourseID, userID)
}

// ValidatePlacementOwnership resolves placement -> college -> user.
func (s *AuthorizationService) ValidatePlacementOwnership(ctx context.Context, placementID, userID int64) error {
	placement, err := s.placementRepo.GetByID(ctx, placementID)
	if err != nil {
		return err
	}
	return s.ValidateCollegeOwnership(ctx, placement.CollegeID, userID)
}

// ValidateScholarshipOwnership resolves scholarship -> college -> user.
func (s *AuthorizationService) ValidateScholarshipOwnership(ctx context.Context, scholarshipID, userID int64) error {
	scholarship, err := s.scholarshipRepo.GetByID(ctx, scholarshipID)
	if err != nil {
		return err
	}
	return s.ValidateCollegeOwnership(ctx, scholarship.CollegeID, userID)
}

// ValidateAlumnusOwnership resolves alumni record -> college -> user.
func (s *AuthorizationService) ValidateAlumnusOwnership(ctx context.Context, alumnusID, userID int64) error {
	alumnus, err := s.alumniRepo.GetByID(ctx, alumnusID)
	if err != nil {
		return err
	}
	return s.ValidateCollegeOwnership(ctx, alumnus.CollegeID, userID)
}
