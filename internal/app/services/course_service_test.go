package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
)

func TestCreateCourseOwnershipEnforced(t *testing.T) {
	env := newTestEnv()
	svc := NewCourseService(env.courses, env.authz)
	college := env.addCollege(1, "iitb.ac.in")

	_, err := svc.CreateCourse(context.Background(), 2, &dto.CreateCourseRequest{
		CollegeID:     college.ID,
		Name:          "B.Tech Computer Science",
		DurationYears: 4,
		Fee:           250000,
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCreateCutoffDuplicateYear(t *testing.T) {
	env := newTestEnv()
	svc := NewCourseService(env.courses, env.authz)
	college := env.addCollege(1, "iitb.ac.in")
	course := env.addCourse(college.ID, "B.Tech Computer Science")

	general := 98.5
	req := &dto.CutoffRequest{Year: 2024, General: &general}

	_, err := svc.CreateCutoff(context.Background(), course.ID, 1, req)
	require.NoError(t, err)

	_, err = svc.CreateCutoff(context.Background(), course.ID, 1, req)
	assert.ErrorIs(t, err, apperrors.ErrCutoffAlreadyExists)
}

func TestCreateCutoffUnknownCourse(t *testing.T) {
	env := newTestEnv()
	svc := NewCourseService(env.courses, env.authz)

	_, err := svc.CreateCutoff(context.Background(), 42, 1, &dto.CutoffRequest{Year: 2024})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestUpdateCutoffYearChangeConflict(t *testing.T) {
	env := newTestEnv()
	svc := NewCourseService(env.courses, env.authz)
	college := env.addCollege(1, "iitb.ac.in")
	course := env.addCourse(college.ID, "B.Tech Computer Science")

	first, err := svc.CreateCutoff(context.Background(), course.ID, 1, &dto.CutoffRequest{Year: 2023})
	require.NoError(t, err)
	_, err = svc.CreateCutoff(context.Background(), course.ID, 1, &dto.CutoffRequest{Year: 2024})
	require.NoError(t, err)

	// Moving 2023 onto the occupied 2024 slot is rejected
	_, err = svc.UpdateCutoff(context.Background(), first.ID, 1, &dto.CutoffRequest{Year: 2024})
	assert.ErrorIs(t, err, apperrors.ErrCutoffAlreadyExists)

	// Same-year update stays legal
	general := 97.0
	updated, err := svc.UpdateCutoff(context.Background(), first.ID, 1, &dto.CutoffRequest{Year: 2023, General: &general})
	require.NoError(t, err)
	assert.Equal(t, 97.0, *updated.General)
}

func TestDeleteCourseOwnershipChain(t *testing.T) {
	env := newTestEnv()
	svc := NewCourseService(env.courses, env.authz)
	college := env.addCollege(1, "iitb.ac.in")
	course := env.addCourse(college.ID, "B.Tech Computer Science")

	err := svc.DeleteCourse(context.Background(), course.ID, 2)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.DeleteCourse(context.Background(), course.ID, 1))
	_, err = svc.GetCourse(context.Background(), course.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestListCutoffsUnknownCourse(t *testing.T) {
	env := newTestEnv()
	svc := NewCourseService(env.courses, env.authz)

	_, err := svc.ListCutoffs(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
