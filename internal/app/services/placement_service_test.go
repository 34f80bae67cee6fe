package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
)

func TestCreatePlacementDuplicateYear(t *testing.T) {
	env := newTestEnv()
	svc := NewPlacementService(env.placements, env.colleges, env.authz)
	college := env.addCollege(1, "iitb.ac.in")

	req := &dto.PlacementRequest{
		Year:           2024,
		StudentsPlaced: 1350,
		AveragePackage: 1800000,
		HighestPackage: 9800000,
	}

	_, err := svc.CreatePlacement(context.Background(), college.ID, 1, req)
	require.NoError(t, err)

	_, err = svc.CreatePlacement(context.Background(), college.ID, 1, req)
	assert.ErrorIs(t, err, apperrors.ErrPlacementAlreadyExists)
}

func TestCreatePlacementHighestBelowAverage(t *testing.T) {
	env := newTestEnv()
	svc := NewPlacementService(env.placements, env.colleges, env.authz)
	college := env.addCollege(1, "iitb.ac.in")

	_, err := svc.CreatePlacement(context.Background(), college.ID, 1, &dto.PlacementRequest{
		Year:           2024,
		StudentsPlaced: 100,
		AveragePackage: 1800000,
		HighestPackage: 900000,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Equal(t, "Highest package cannot be below the average package", err.Error())
}

func TestCreatePlacementOwnershipEnforced(t *testing.T) {
	env := newTestEnv()
	svc := NewPlacementService(env.placements, env.colleges, env.authz)
	college := env.addCollege(1, "iitb.ac.in")

	_, err := svc.CreatePlacement(context.Background(), college.ID, 2, &dto.PlacementRequest{
		Year:           2024,
		StudentsPlaced: 100,
		AveragePackage: 1000000,
		HighestPackage: 2000000,
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestScholarshipDeadlineParsing(t *testing.T) {
	env := newTestEnv()
	svc := NewScholarshipService(env.scholarships, env.colleges, env.authz)
	college := env.addCollege(1, "iitb.ac.in")

	deadline := "2025-06-30"
	scholarship, err := svc.CreateScholarship(context.Background(), college.ID, 1, &dto.ScholarshipRequest{
		Name:     "Merit Scholarship",
		Amount:   50000,
		Deadline: &deadline,
	})
	require.NoError(t, err)
	require.NotNil(t, scholarship.Deadline)
	assert.Equal(t, 2025, scholarship.Deadline.Year())

	bad := "30/06/2025"
	_, err = svc.CreateScholarship(context.Background(), college.ID, 1, &dto.ScholarshipRequest{
		Name:     "Merit Scholarship",
		Amount:   50000,
		Deadline: &bad,
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdateAlumnusKeepsCollege(t *testing.T) {
	env := newTestEnv()
	svc := NewAlumniService(env.alumni, env.colleges, env.authz)
	college := env.addCollege(1, "iitb.ac.in")

	alumnus, err := svc.CreateAlumnus(context.Background(), college.ID, 1, &dto.AlumnusRequest{
		Name:           "Sundar",
		GraduationYear: 2004,
		Degree:         "B.Tech",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateAlumnus(context.Background(), alumnus.ID, 1, &dto.AlumnusRequest{
		Name:           "Sundar P.",
		GraduationYear: 2004,
		Degree:         "B.Tech",
	})
	require.NoError(t, err)
	assert.Equal(t, college.ID, updated.CollegeID)
	assert.Equal(t, "Sundar P.", updated.Name)
}
