package services

import (
	"context"
	"time"

	"github.com/vallabh/collegehub/internal/app/auth"
	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/app/repositories"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
)

// ScholarshipService handles scholarships published by colleges
type ScholarshipService interface {
	CreateScholarship(ctx context.Context, collegeID, userID int64, req *dto.ScholarshipRequest) (*models.Scholarship, error)
	ListByCollege(ctx context.Context, collegeID int64) ([]*models.Scholarship, error)
	UpdateScholarship(ctx context.Context, scholarshipID, userID int64, req *dto.ScholarshipRequest) (*models.Scholarship, error)
	DeleteScholarship(ctx context.Context, scholarshipID, userID int64) error
}

type scholarshipService struct {
	scholarshipRepo repositories.IScholarshipRepository
	collegeRepo     repositories.ICollegeRepository
	authzService    *auth.AuthorizationService
}

// NewScholarshipService creates a new scholarship service
func NewScholarshipService(
	scholarshipRepo repositories.IScholarshipRepository,
	collegeRepo repositories.ICollegeRepository,
	authzService *auth.AuthorizationService,
) ScholarshipService {
	return &scholarshipService{
		scholarshipRepo: scholarshipRepo,
		collegeRepo:     collegeRepo,
		authzService:    authzService,
	}
}

// CreateScholarship publishes a scholarship for a college the caller owns
func (s *scholarshipService) CreateScholarship(ctx context.Context, collegeID, userID int64, req *dto.ScholarshipRequest) (*models.Scholarship, error) {
	if err := s.authzService.ValidateCollegeOwnership(ctx, collegeID, userID); err != nil {
		return nil, err
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}

	scholarship := &models.Scholarship{
		CollegeID:   collegeID,
		Name:        req.Name,
		Amount:      req.Amount,
		Eligibility: req.Eligibility,
		Deadline:    deadline,
	}

	if _, err := s.scholarshipRepo.Create(ctx, scholarship); err != nil {
		return nil, err
	}
	return scholarship, nil
}

// ListByCollege retrieves the scholarships of a college
func (s *scholarshipService) ListByCollege(ctx context.Context, collegeID int64) ([]*models.Scholarship, error) {
	if _, err := s.collegeRepo.GetByID(ctx, collegeID); err != nil {
		return nil, err
	}
	return s.scholarshipRepo.GetByCollegeID(ctx, collegeID)
}

// UpdateScholarship overwrites a scholarship the caller owns
func (s *scholarshipService) UpdateScholarship(ctx context.Context, scholarshipID, userID int64, req *dto.ScholarshipRequest) (*models.Scholarship, error) {
	if err := s.authzService.ValidateScholarshipOwnership(ctx, scholarshipID, userID); err != nil {
		return nil, err
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}

	scholarship, err := s.scholarshipRepo.GetByID(ctx, scholarshipID)
	if err != nil {
		return nil, err
	}

	scholarship.Name = req.Name
	scholarship.Amount = req.Amount
	scholarship.Eligibility = req.Eligibility
	scholarship.Deadline = deadline

	if err := s.scholarshipRepo.Update(ctx, scholarship); err != nil {
		return nil, err
	}
	return scholarship, nil
}

// DeleteScholarship removes a scholarship the caller owns
func (s *scholarshipService) DeleteScholarship(ctx context.Context, scholarshipID, userID int64) error {
	if err := s.authzService.ValidateScholarshipOwnership(ctx, scholarshipID, userID); err != nil {
		return err
	}
	return s.scholarshipRepo.Delete(ctx, scholarshipID)
}

// parseDeadline accepts an RFC 3339 timestamp or a bare date
func parseDeadline(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, *value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", *value); err == nil {
		return &t, nil
	}
	return nil, apperrors.NewBadRequestError("Deadline must be an RFC 3339 timestamp or a date like 2025-06-30")
}
