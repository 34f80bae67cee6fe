package services

import (
	"context"

	"github.com/vallabh/collegehub/internal/app/auth"
	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/app/repositories"
)

// AlumniService handles notable alumni records published by colleges
type AlumniService interface {
	CreateAlumnus(ctx context.Context, collegeID, userID int64, req *dto.AlumnusRequest) (*models.Alumnus, error)
	ListByCollege(ctx context.Context, collegeID int64) ([]*models.Alumnus, error)
	UpdateAlumnus(ctx context.Context, alumnusID, userID int64, req *dto.AlumnusRequest) (*models.Alumnus, error)
	DeleteAlumnus(ctx context.Context, alumnusID, userID int64) error
}

type alumniService struct {
	alumniRepo   repositories.IAlumniRepository
	collegeRepo  repositories.ICollegeRepository
	authzService *auth.AuthorizationService
}

// NewAlumniService creates a new alumni service
func NewAlumniService(
	alumniRepo repositories.IAlumniRepository,
	collegeRepo repositories.ICollegeRepository,
	authzService *auth.AuthorizationService,
) AlumniService {
	return &alumniService{
		alumniRepo:   alumniRepo,
		collegeRepo:  collegeRepo,
		authzService: authzService,
	}
}

// CreateAlumnus adds an alumni record to a college the caller owns
func (s *alumniService) CreateAlumnus(ctx context.Context, collegeID, userID int64, req *dto.AlumnusRequest) (*models.Alumnus, error) {
	if err := s.authzService.ValidateCollegeOwnership(ctx, collegeID, userID); err != nil {
		return nil, err
	}

	alumnus := alumnusFromRequest(req)
	alumnus.CollegeID = collegeID

	if _, err := s.alumniRepo.Create(ctx, alumnus); err != nil {
		return nil, err
	}
	return alumnus, nil
}

// ListByCollege retrieves the alumni records of a college
func (s *alumniService) ListByCollege(ctx context.Context, collegeID int64) ([]*models.Alumnus, error) {
	if _, err := s.collegeRepo.GetByID(ctx, collegeID); err != nil {
		return nil, err
	}
	return s.alumniRepo.GetByCollegeID(ctx, collegeID)
}

// UpdateAlumnus overwrites an alumni record the caller owns
func (s *alumniService) UpdateAlumnus(ctx context.Context, alumnusID, userID int64, req *dto.AlumnusRequest) (*models.Alumnus, error) {
	if err := s.authzService.ValidateAlumnusOwnership(ctx, alumnusID, userID); err != nil {
		return nil, err
	}

	existing, err := s.alumniRepo.GetByID(ctx, alumnusID)
	if err != nil {
		return nil, err
	}

	alumnus := alumnusFromRequest(req)
	alumnus.ID = alumnusID
	alumnus.CollegeID = existing.CollegeID

	if err := s.alumniRepo.Update(ctx, alumnus); err != nil {
		return nil, err
	}
	return alumnus, nil
}

// DeleteAlumnus removes an alumni record the caller owns
func (s *alumniService) DeleteAlumnus(ctx context.Context, alumnusID, userID int64) error {
	if err := s.authzService.ValidateAlumnusOwnership(ctx, alumnusID, userID); err != nil {
		return err
	}
	return s.alumniRepo.Delete(ctx, alumnusID)
}

func alumnusFromRequest(req *dto.AlumnusRequest) *models.Alumnus {
	return &models.Alumnus{
		Name:           req.Name,
		GraduationYear: req.GraduationYear,
		Degree:         req.Degree,
		CurrentCompany: req.CurrentCompany,
		Designation:    req.Designation,
		Achievements:   req.Achievements,
	}
}
