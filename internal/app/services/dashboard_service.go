package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/app/repositories"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
)

// DashboardService handles the cross-entity aggregation endpoints: the
// side-by-side college comparison and the institute dashboard.
type DashboardService interface {
	CompareColleges(ctx context.Context, ids []int64) (*dto.CollegeComparison, error)
	InstituteDashboard(ctx context.Context, instituteUserID int64) (*dto.InstituteDashboard, error)
}

type dashboardService struct {
	collegeRepo     repositories.ICollegeRepository
	courseRepo      repositories.ICourseRepository
	placementRepo   repositories.IPlacementRepository
	scholarshipRepo repositories.IScholarshipRepository
	alumniRepo      repositories.IAlumniRepository
	facultyRepo     repositories.IFacultyRepository
	applicationRepo repositories.IApplicationRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	collegeRepo repositories.ICollegeRepository,
	courseRepo repositories.ICourseRepository,
	placementRepo repositories.IPlacementRepository,
	scholarshipRepo repositories.IScholarshipRepository,
	alumniRepo repositories.IAlumniRepository,
	facultyRepo repositories.IFacultyRepository,
	applicationRepo repositories.IApplicationRepository,
) DashboardService {
	return &dashboardService{
		collegeRepo:     collegeRepo,
		courseRepo:      courseRepo,
		placementRepo:   placementRepo,
		scholarshipRepo: scholarshipRepo,
		alumniRepo:      alumniRepo,
		facultyRepo:     facultyRepo,
		applicationRepo: applicationRepo,
	}
}

// CompareColleges builds a side-by-side comparison of the given colleges.
// Every requested id must resolve; per-college rows are grouped into maps
// keyed by college id so absent categories stay absent rather than empty.
// The category queries are independent and run concurrently.
func (s *dashboardService) CompareColleges(ctx context.Context, ids []int64) (*dto.CollegeComparison, error) {
	colleges, err := s.collegeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving colleges: %w", err)
	}
	for _, id := range ids {
		if _, ok := colleges[id]; !ok {
			return nil, apperrors.ErrCollegeNotFound
		}
	}

	comparison := &dto.CollegeComparison{Colleges: colleges}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		infra, err := s.collegeRepo.GetInfrastructureByCollegeIDs(gctx, ids)
		if err != nil {
			return err
		}
		comparison.Infrastructure = infra
		return nil
	})
	g.Go(func() error {
		placements, err := s.placementRepo.GetByCollegeIDs(gctx, ids)
		if err != nil {
			return err
		}
		comparison.Placements = placements
		return nil
	})
	g.Go(func() error {
		courses, err := s.courseRepo.GetByCollegeIDs(gctx, ids)
		if err != nil {
			return err
		}
		comparison.Courses = courses
		return nil
	})
	g.Go(func() error {
		scholarships, err := s.scholarshipRepo.GetByCollegeIDs(gctx, ids)
		if err != nil {
			return err
		}
		comparison.Scholarships = scholarships
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error building college comparison: %w", err)
	}

	return comparison, nil
}

// InstituteDashboard aggregates the caller's college with entity counts and
// the most recent applications across its courses.
func (s *dashboardService) InstituteDashboard(ctx context.Context, instituteUserID int64) (*dto.InstituteDashboard, error) {
	college, err := s.collegeRepo.GetByUserID(ctx, instituteUserID)
	if err != nil {
		return nil, err
	}

	dashboard := &dto.InstituteDashboard{College: college}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		courses, err := s.courseRepo.GetByCollegeID(gctx, college.ID)
		if err != nil {
			return err
		}
		dashboard.CourseCount = len(courses)
		return nil
	})
	g.Go(func() error {
		count, err := s.facultyRepo.CountByCollegeID(gctx, college.ID)
		if err != nil {
			return err
		}
		dashboard.FacultyCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.placementRepo.CountByCollegeID(gctx, college.ID)
		if err != nil {
			return err
		}
		dashboard.PlacementCount = count
		return nil
	})
	g.Go(func() error {
		count, err := s.alumniRepo.CountByCollegeID(gctx, college.ID)
		if err != nil {
			return err
		}
		dashboard.AlumniCount = count
		return nil
	})
	g.Go(func() error {
		applications, err := s.applicationRepo.GetRecentByCollegeID(gctx, college.ID, recentApplicationsLimit)
		if err != nil {
			return err
		}
		dashboard.RecentApplications = applications
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error building institute dashboard: %w", err)
	}

	return dashboard, nil
}
