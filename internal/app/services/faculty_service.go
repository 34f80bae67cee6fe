package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/app/repositories"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
	"github.com/vallabh/collegehub/internal/pkg/logger"
)

const recentApplicationsLimit = 10

// FacultyService handles faculty invitations, profiles and application review
type FacultyService interface {
	InviteFaculty(ctx context.Context, instituteUserID int64, req *dto.InviteFacultyRequest) (*models.FacultyInvitation, error)
	ListMyInvitations(ctx context.Context, email string) ([]*models.FacultyInvitation, error)
	RespondInvitation(ctx context.Context, userID int64, email string, invitationID int64, req *dto.RespondInvitationRequest) (*models.FacultyProfile, error)
	GetMyProfile(ctx context.Context, userID int64) (*models.FacultyProfile, error)
	UpdateMyProfile(ctx context.Context, userID int64, req *dto.UpdateFacultyProfileRequest) (*models.FacultyProfile, error)
	ListByCollege(ctx context.Context, collegeID int64) ([]*models.FacultyProfile, error)
	ListApplications(ctx context.Context, userID int64) ([]*models.CourseApplication, error)
	ReviewApplication(ctx context.Context, userID, applicationID int64, req *dto.ReviewApplicationRequest) (*models.CourseApplication, error)
	Dashboard(ctx context.Context, userID int64) (*dto.FacultyDashboard, error)
}

type facultyService struct {
	facultyRepo     repositories.IFacultyRepository
	collegeRepo     repositories.ICollegeRepository
	applicationRepo repositories.IApplicationRepository
}

// NewFacultyService creates a new faculty service
func NewFacultyService(
	facultyRepo repositories.IFacultyRepository,
	collegeRepo repositories.ICollegeRepository,
	applicationRepo repositories.IApplicationRepository,
) FacultyService {
	return &facultyService{
		facultyRepo:     facultyRepo,
		collegeRepo:     collegeRepo,
		applicationRepo: applicationRepo,
	}
}

// InviteFaculty records a pending invitation from the caller's college to a
// faculty email. The token is an opaque UUID carried in the invitation mail.
func (s *facultyService) InviteFaculty(ctx context.Context, instituteUserID int64, req *dto.InviteFacultyRequest) (*models.FacultyInvitation, error) {
	college, err := s.collegeRepo.GetByUserID(ctx, instituteUserID)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.facultyRepo.PendingInvitationExists(ctx, college.ID, email)
	if err != nil {
		return nil, fmt.Errorf("error checking invitation existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrInvitationAlreadyExists
	}

	invitation := &models.FacultyInvitation{
		CollegeID: college.ID,
		Email:     email,
		Token:     uuid.New().String(),
		Status:    models.InvitationPending,
	}

	if _, err := s.facultyRepo.CreateInvitation(ctx, invitation); err != nil {
		return nil, err
	}

	logger.Info().Int64("collegeID", college.ID).Str("email", email).Msg("Faculty invitation created")
	return invitation, nil
}

// ListMyInvitations retrieves the caller's pending invitations
func (s *facultyService) ListMyInvitations(ctx context.Context, email string) ([]*models.FacultyInvitation, error) {
	return s.facultyRepo.GetPendingInvitationsByEmail(ctx, email)
}

// RespondInvitation resolves a pending invitation addressed to the caller.
// Accepting creates the faculty profile at the inviting college; resolution
// happens first so a concurrent responder loses cleanly.
func (s *facultyService) RespondInvitation(ctx context.Context, userID int64, email string, invitationID int64, req *dto.RespondInvitationRequest) (*models.FacultyProfile, error) {
	invitation, err := s.facultyRepo.GetInvitationByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(invitation.Email, email) {
		return nil, apperrors.ErrPermissionDenied
	}

	if !req.Accept {
		if err := s.facultyRepo.ResolveInvitation(ctx, invitationID, models.InvitationRejected); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if req.Department == nil || *req.Department == "" || req.Qualification == nil || *req.Qualification == "" {
		return nil, apperrors.NewBadRequestError("Department and qualification are required when accepting an invitation")
	}

	if _, err := s.facultyRepo.GetProfileByUserID(ctx, userID); err == nil {
		return nil, apperrors.NewBadRequestError("You already have a faculty profile")
	}

	if err := s.facultyRepo.ResolveInvitation(ctx, invitationID, models.InvitationAccepted); err != nil {
		return nil, err
	}

	profile := &models.FacultyProfile{
		UserID:        userID,
		CollegeID:     invitation.CollegeID,
		Department:    *req.Department,
		Qualification: *req.Qualification,
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}

	if _, err := s.facultyRepo.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("error creating faculty profile: %w", err)
	}

	logger.Info().Int64("userID", userID).Int64("collegeID", invitation.CollegeID).Msg("Faculty invitation accepted")
	return profile, nil
}

// GetMyProfile retrieves the caller's faculty profile
func (s *facultyService) GetMyProfile(ctx context.Context, userID int64) (*models.FacultyProfile, error) {
	return s.facultyRepo.GetProfileByUserID(ctx, userID)
}

// UpdateMyProfile overwrites the mutable attributes of the caller's profile
func (s *facultyService) UpdateMyProfile(ctx context.Context, userID int64, req *dto.UpdateFacultyProfileRequest) (*models.FacultyProfile, error) {
	profile, err := s.facultyRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Department = req.Department
	profile.Qualification = req.Qualification
	profile.ExperienceYears = req.ExperienceYears

	if err := s.facultyRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ListByCollege retrieves the faculty members of a college. Students use
// this to pick a reviewer when applying to a course.
func (s *facultyService) ListByCollege(ctx context.Context, collegeID int64) ([]*models.FacultyProfile, error) {
	if _, err := s.collegeRepo.GetByID(ctx, collegeID); err != nil {
		return nil, err
	}
	return s.facultyRepo.GetProfilesByCollegeID(ctx, collegeID)
}

// ListApplications retrieves every application addressed to the caller,
// newest first.
func (s *facultyService) ListApplications(ctx context.Context, userID int64) ([]*models.CourseApplication, error) {
	profile, err := s.facultyRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.applicationRepo.GetByFacultyID(ctx, profile.ID, 0)
}

// ReviewApplication records the caller's terminal decision on an application
// addressed to them. Decided applications are immutable.
func (s *facultyService) ReviewApplication(ctx context.Context, userID, applicationID int64, req *dto.ReviewApplicationRequest) (*models.CourseApplication, error) {
	profile, err := s.facultyRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.FacultyID != profile.ID {
		return nil, apperrors.ErrPermissionDenied
	}

	if err := s.applicationRepo.SetStatus(ctx, applicationID, req.Status); err != nil {
		return nil, err
	}

	application.Status = req.Status
	logger.Info().Int64("applicationID", applicationID).Str("status", string(req.Status)).Msg("Application reviewed")
	return application, nil
}

// Dashboard aggregates the caller's profile, review counters and recent
// applications. The queries are independent and run concurrently.
func (s *facultyService) Dashboard(ctx context.Context, userID int64) (*dto.FacultyDashboard, error) {
	profile, err := s.facultyRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := &dto.FacultyDashboard{Profile: profile}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.applicationRepo.CountByFacultyID(gctx, profile.ID, models.ApplicationPending)
		if err != nil {
			return err
		}
		dashboard.PendingCount = count
		return nil
	})
	g.Go(func() error {
		approved, err := s.applicationRepo.CountByFacultyID(gctx, profile.ID, models.ApplicationApproved)
		if err != nil {
			return err
		}
		rejected, err := s.applicationRepo.CountByFacultyID(gctx, profile.ID, models.ApplicationRejected)
		if err != nil {
			return err
		}
		dashboard.DecidedCount = approved + rejected
		return nil
	})
	g.Go(func() error {
		applications, err := s.applicationRepo.GetByFacultyID(gctx, profile.ID, recentApplicationsLimit)
		if err != nil {
			return err
		}
		dashboard.RecentApplications = applications
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error building faculty dashboard: %w", err)
	}

	return dashboard, nil
}
