package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vallabh/collegehub/internal/app/auth"
	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/app/repositories"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
	"github.com/vallabh/collegehub/internal/pkg/dberrors"
	"github.com/vallabh/collegehub/internal/pkg/helpers"
	"github.com/vallabh/collegehub/internal/pkg/logger"
	"github.com/vallabh/collegehub/internal/pkg/validation"
)

// CollegeService handles college profiles and their infrastructure records
type CollegeService interface {
	CreateCollege(ctx context.Context, userID int64, req *dto.CreateCollegeRequest) (*models.College, error)
	GetCollege(ctx context.Context, id int64) (*models.College, error)
	GetMyCollege(ctx context.Context, userID int64) (*models.College, error)
	ListColleges(ctx context.Context, filter *dto.CollegeListFilter) ([]*models.College, dto.PaginationInfo, error)
	UpdateCollege(ctx context.Context, collegeID, userID int64, req *dto.UpdateCollegeRequest) (*models.College, error)
	DeleteCollege(ctx context.Context, collegeID, userID int64) error
	GetInfrastructure(ctx context.Context, collegeID int64) (*models.Infrastructure, error)
	UpsertInfrastructure(ctx context.Context, collegeID, userID int64, req *dto.UpsertInfrastructureRequest) (*models.Infrastructure, error)
}

type collegeService struct {
	collegeRepo  repositories.ICollegeRepository
	authzService *auth.AuthorizationService
}

// NewCollegeService creates a new college service
func NewCollegeService(collegeRepo repositories.ICollegeRepository, authzService *auth.AuthorizationService) CollegeService {
	return &collegeService{
		collegeRepo:  collegeRepo,
		authzService: authzService,
	}
}

// CreateCollege registers the caller's college. A user owns at most one
// college; the user_id unique constraint decides the race loser.
func (s *collegeService) CreateCollege(ctx context.Context, userID int64, req *dto.CreateCollegeRequest) (*models.College, error) {
	if _, err := s.collegeRepo.GetByUserID(ctx, userID); err == nil {
		return nil, apperrors.ErrCollegeAlreadyExists
	} else if !errors.Is(err, apperrors.ErrCollegeNotFound) {
		return nil, fmt.Errorf("error checking existing college: %w", err)
	}

	if !validation.IsValidDomain(req.EmailDomain) {
		return nil, apperrors.NewBadRequestError("Email domain must be a bare domain, e.g. iitb.ac.in")
	}

	college := collegeFromRequest(req)
	college.UserID = userID

	if _, err := s.collegeRepo.Create(ctx, college); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "colleges_user_id_key") {
			return nil, apperrors.ErrCollegeAlreadyExists
		}
		return nil, fmt.Errorf("error creating college: %w", err)
	}

	logger.Info().Int64("collegeID", college.ID).Int64("userID", userID).Msg("College registered")
	return college, nil
}

// GetCollege retrieves a college by id
func (s *collegeService) GetCollege(ctx context.Context, id int64) (*models.College, error) {
	return s.collegeRepo.GetByID(ctx, id)
}

// GetMyCollege retrieves the college owned by the caller
func (s *collegeService) GetMyCollege(ctx context.Context, userID int64) (*models.College, error) {
	return s.collegeRepo.GetByUserID(ctx, userID)
}

// ListColleges retrieves colleges matching the filter with pagination
func (s *collegeService) ListColleges(ctx context.Context, filter *dto.CollegeListFilter) ([]*models.College, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)

	colleges, total, err := s.collegeRepo.List(ctx, repositories.CollegeFilter{
		City:   filter.City,
		State:  filter.State,
		Name:   filter.Name,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing colleges: %w", err)
	}

	return colleges, helpers.NewPaginationInfo(total, filter.Page, limit), nil
}

// UpdateCollege overwrites the mutable attributes of the caller's college
func (s *collegeService) UpdateCollege(ctx context.Context, collegeID, userID int64, req *dto.UpdateCollegeRequest) (*models.College, error) {
	if err := s.authzService.ValidateCollegeOwnership(ctx, collegeID, userID); err != nil {
		return nil, err
	}

	if !validation.IsValidDomain(req.EmailDomain) {
		return nil, apperrors.NewBadRequestError("Email domain must be a bare domain, e.g. iitb.ac.in")
	}

	college := collegeFromRequest(req)
	college.ID = collegeID
	college.UserID = userID

	if err := s.collegeRepo.Update(ctx, college); err != nil {
		return nil, err
	}
	return s.collegeRepo.GetByID(ctx, collegeID)
}

// DeleteCollege removes the caller's college together with its courses,
// cutoffs, placements, scholarships, alumni and applications.
func (s *collegeService) DeleteCollege(ctx context.Context, collegeID, userID int64) error {
	if err := s.authzService.ValidateCollegeOwnership(ctx, collegeID, userID); err != nil {
		return err
	}

	if err := s.collegeRepo.Delete(ctx, collegeID); err != nil {
		return err
	}

	logger.Info().Int64("collegeID", collegeID).Int64("userID", userID).Msg("College deleted")
	return nil
}

// GetInfrastructure retrieves the infrastructure record of a college
func (s *collegeService) GetInfrastructure(ctx context.Context, collegeID int64) (*models.Infrastructure, error) {
	// Resolve the college first so a bad id yields a college 404
	if _, err := s.collegeRepo.GetByID(ctx, collegeID); err != nil {
		return nil, err
	}
	return s.collegeRepo.GetInfrastructure(ctx, collegeID)
}

// UpsertInfrastructure inserts or replaces the infrastructure record of the
// caller's college.
func (s *collegeService) UpsertInfrastructure(ctx context.Context, collegeID, userID int64, req *dto.UpsertInfrastructureRequest) (*models.Infrastructure, error) {
	if err := s.authzService.ValidateCollegeOwnership(ctx, collegeID, userID); err != nil {
		return nil, err
	}

	infra := &models.Infrastructure{
		CollegeID:   collegeID,
		CampusArea:  req.CampusArea,
		Hostel:      req.Hostel,
		Labs:        req.Labs,
		Sports:      req.Sports,
		Library:     req.Library,
		Wifi:        req.Wifi,
		Description: req.Description,
	}

	if err := s.collegeRepo.UpsertInfrastructure(ctx, infra); err != nil {
		return nil, err
	}
	return infra, nil
}

func collegeFromRequest(req *dto.CreateCollegeRequest) *models.College {
	return &models.College{
		Name:            req.Name,
		EstablishedYear: req.EstablishedYear,
		Accreditation:   req.Accreditation,
		City:            req.City,
		State:           req.State,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Website:         req.Website,
		EmailDomain:     req.EmailDomain,
		Description:     req.Description,
	}
}
