package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
)

func newCollegeRequest(domain string) *dto.CreateCollegeRequest {
	return &dto.CreateCollegeRequest{
		Name:            "Indian Institute of Technology Bombay",
		EstablishedYear: 1958,
		Accreditation:   "NAAC A++",
		City:            "Mumbai",
		State:           "Maharashtra",
		ContactEmail:    "dean@" + domain,
		EmailDomain:     domain,
	}
}

func TestCreateCollege(t *testing.T) {
	env := newTestEnv()
	svc := NewCollegeService(env.colleges, env.authz)

	college, err := svc.CreateCollege(context.Background(), 1, newCollegeRequest("iitb.ac.in"))
	require.NoError(t, err)
	assert.NotZero(t, college.ID)
	assert.Equal(t, int64(1), college.UserID)
	assert.Equal(t, "iitb.ac.in", college.EmailDomain)
}

func TestCreateCollegeSecondCollegeRejected(t *testing.T) {
	env := newTestEnv()
	svc := NewCollegeService(env.colleges, env.authz)

	_, err := svc.CreateCollege(context.Background(), 1, newCollegeRequest("iitb.ac.in"))
	require.NoError(t, err)

	_, err = svc.CreateCollege(context.Background(), 1, newCollegeRequest("other.ac.in"))
	assert.ErrorIs(t, err, apperrors.ErrCollegeAlreadyExists)
}

func TestCreateCollegeRejectsNonDomain(t *testing.T) {
	env := newTestEnv()
	svc := NewCollegeService(env.colleges, env.authz)

	_, err := svc.CreateCollege(context.Background(), 1, newCollegeRequest("dean@iitb.ac.in"))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdateCollegeOwnershipEnforced(t *testing.T) {
	env := newTestEnv()
	svc := NewCollegeService(env.colleges, env.authz)
	college := env.addCollege(1, "iitb.ac.in")

	_, err := svc.UpdateCollege(context.Background(), college.ID, 2, newCollegeRequest("iitb.ac.in"))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// The record is untouched
	stored, getErr := env.colleges.GetByID(context.Background(), college.ID)
	require.NoError(t, getErr)
	assert.Equal(t, "Test College", stored.Name)
}

func TestDeleteCollegeUnknownID(t *testing.T) {
	env := newTestEnv()
	svc := NewCollegeService(env.colleges, env.authz)

	err := svc.DeleteCollege(context.Background(), 42, 1)
	assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
}

func TestGetInfrastructureUnknownCollege(t *testing.T) {
	env := newTestEnv()
	svc := NewCollegeService(env.colleges, env.authz)

	_, err := svc.GetInfrastructure(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
}

func TestUpsertInfrastructureReplaces(t *testing.T) {
	env := newTestEnv()
	svc := NewCollegeService(env.colleges, env.authz)
	college := env.addCollege(1, "iitb.ac.in")

	_, err := svc.UpsertInfrastructure(context.Background(), college.ID, 1, &dto.UpsertInfrastructureRequest{
		CampusArea: 550.5,
		Hostel:     true,
	})
	require.NoError(t, err)

	infra, err := svc.UpsertInfrastructure(context.Background(), college.ID, 1, &dto.UpsertInfrastructureRequest{
		CampusArea: 600,
		Wifi:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, 600.0, infra.CampusArea)
	assert.False(t, infra.Hostel)
	assert.True(t, infra.Wifi)

	stored, err := svc.GetInfrastructure(context.Background(), college.ID)
	require.NoError(t, err)
	assert.Equal(t, 600.0, stored.CampusArea)
}

func TestListCollegesFiltersByCity(t *testing.T) {
	env := newTestEnv()
	svc := NewCollegeService(env.colleges, env.authz)
	env.addCollege(1, "iitb.ac.in")
	other := env.addCollege(2, "iitd.ac.in")
	other.City = "Delhi"

	colleges, pagination, err := svc.ListColleges(context.Background(), &dto.CollegeListFilter{
		City: "Delhi",
		Page: 1,
		Size: 10,
	})
	require.NoError(t, err)
	require.Len(t, colleges, 1)
	assert.Equal(t, other.ID, colleges[0].ID)
	assert.Equal(t, int64(1), pagination.TotalItems)
}
