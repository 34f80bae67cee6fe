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

// PlacementService handles per-year placement statistics of colleges
type PlacementService interface {
	CreatePlacement(ctx context.Context, collegeID, userID int64, req *dto.PlacementRequest) (*models.Placement, error)
	ListByCollege(ctx context.Context, collegeID int64) ([]*models.Placement, error)
	UpdatePlacement(ctx context.Context, placementID, userID int64, req *dto.PlacementRequest) (*models.Placement, error)
	DeletePlacement(ctx context.Context, placementID, userID int64) error
}

type placementService struct {
	placementRepo repositories.IPlacementRepository
	collegeRepo   repositories.ICollegeRepository
	authzService  *auth.AuthorizationService
}

// NewPlacementService creates a new placement service
func NewPlacementService(
	placementRepo repositories.IPlacementRepository,
	collegeRepo repositories.ICollegeRepository,
	authzService *auth.AuthorizationService,
) PlacementService {
	return &placementService{
		placementRepo: placementRepo,
		collegeRepo:   collegeRepo,
		authzService:  authzService,
	}
}

// CreatePlacement records placement statistics of a college for one year.
// At most one row per (college, year).
func (s *placementService) CreatePlacement(ctx context.Context, collegeID, userID int64, req *dto.PlacementRequest) (*models.Placement, error) {
	if err := s.authzService.ValidateCollegeOwnership(ctx, collegeID, userID); err != nil {
		return nil, err
	}

	if req.HighestPackage < req.AveragePackage {
		return nil, apperrors.NewBadRequestError("Highest package cannot be below the average package")
	}

	exists, err := s.placementRepo.Exists(ctx, collegeID, req.Year)
	if err != nil {
		return nil, fmt.Errorf("error checking placement existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrPlacementAlreadyExists
	}

	placement := &models.Placement{
		CollegeID:      collegeID,
		Year:           req.Year,
		StudentsPlaced: req.StudentsPlaced,
		AveragePackage: req.AveragePackage,
		HighestPackage: req.HighestPackage,
		TopRecruiters:  req.TopRecruiters,
	}

	if _, err := s.placementRepo.Create(ctx, placement); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "placements_college_id_year_key") {
			return nil, apperrors.ErrPlacementAlreadyExists
		}
		return nil, fmt.Errorf("error creating placement: %w", err)
	}
	return placement, nil
}

// ListByCollege retrieves the placement records of a college, newest first
func (s *placementService) ListByCollege(ctx context.Context, collegeID int64) ([]*models.Placement, error) {
	if _, err := s.collegeRepo.GetByID(ctx, collegeID); err != nil {
		return nil, err
	}
	return s.placementRepo.GetByCollegeID(ctx, collegeID)
}

// UpdatePlacement overwrites a placement record the caller owns
func (s *placementService) UpdatePlacement(ctx context.Context, placementID, userID int64, req *dto.PlacementRequest) (*models.Placement, error) {
	if err := s.authzService.ValidatePlacementOwnership(ctx, placementID, userID); err != nil {
		return nil, err
	}

	if req.HighestPackage < req.AveragePackage {
		return nil, apperrors.NewBadRequestError("Highest package cannot be below the average package")
	}

	placement, err := s.placementRepo.GetByID(ctx, placementID)
	if err != nil {
		return nil, err
	}

	if req.Year != placement.Year {
		exists, err := s.placementRepo.Exists(ctx, placement.CollegeID, req.Year)
		if err != nil {
			return nil, fmt.Errorf("error checking placement existence: %w", err)
		}
		if exists {
			return nil, apperrors.ErrPlacementAlreadyExists
		}
	}

	placement.Year = req.Year
	placement.StudentsPlaced = req.StudentsPlaced
	placement.AveragePackage = req.AveragePackage
	placement.HighestPackage = req.HighestPackage
	placement.TopRecruiters = req.TopRecruiters

	if err := s.placementRepo.Update(ctx, placement); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "placements_college_id_year_key") {
			return nil, apperrors.ErrPlacementAlreadyExists
		}
		return nil, err
	}
	return placement, nil
}

// DeletePlacement removes a placement record the caller owns
func (s *placementService) DeletePlacement(ctx context.Context, placementID, userID int64) error {
	if err := s.authzService.ValidatePlacementOwnership(ctx, placementID, userID); err != nil {
		return err
	}
	return s.placementRepo.Delete(ctx, placementID)
}
