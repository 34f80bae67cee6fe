package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
)

func newStudentServiceForTest(env *testEnv) StudentService {
	return NewStudentService(env.students, env.colleges, env.courses, env.faculty, env.scholarships, env.applications, fakeTxRunner{})
}

func TestVerifyCollegeLinksMatchingDomain(t *testing.T) {
	env := newTestEnv()
	svc := newStudentServiceForTest(env)
	college := env.addCollege(1, "iitb.ac.in")

	// No profile yet; verification creates one lazily
	result, err := svc.VerifyCollege(context.Background(), 3, "asha@iitb.ac.in")
	require.NoError(t, err)
	assert.Equal(t, college.ID, result.CollegeID)
	assert.True(t, result.Verified)

	profile, err := env.students.GetProfileByUserID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, profile.CollegeID)
	assert.Equal(t, college.ID, *profile.CollegeID)
	assert.True(t, profile.IsVerified)
}

func TestVerifyCollegeNoMatchingDomain(t *testing.T) {
	env := newTestEnv()
	svc := newStudentServiceForTest(env)
	env.addCollege(1, "iitb.ac.in")

	_, err := svc.VerifyCollege(context.Background(), 3, "asha@gmail.com")
	assert.ErrorIs(t, err, apperrors.ErrNoMatchingCollegeDomain)
}

func TestApply(t *testing.T) {
	env := newTestEnv()
	svc := newStudentServiceForTest(env)
	college := env.addCollege(1, "iitb.ac.in")
	course := env.addCourse(college.ID, "B.Tech Computer Science")
	reviewer := env.addFacultyProfile(2, college.ID)
	env.addStudentProfile(3)

	result, err := svc.Apply(context.Background(), 3, &dto.ApplyCourseRequest{CourseID: course.ID, FacultyID: reviewer.ID})
	require.NoError(t, err)
	assert.NotZero(t, result.ApplicationID)
	assert.Equal(t, string(models.ApplicationPending), result.Status)
}

func TestApplyRequiresProfile(t *testing.T) {
	env := newTestEnv()
	svc := newStudentServiceForTest(env)
	college := env.addCollege(1, "iitb.ac.in")
	course := env.addCourse(college.ID, "B.Tech Computer Science")
	reviewer := env.addFacultyProfile(2, college.ID)

	_, err := svc.Apply(context.Background(), 3, &dto.ApplyCourseRequest{CourseID: course.ID, FacultyID: reviewer.ID})
	assert.ErrorIs(t, err, apperrors.ErrStudentProfileNotFound)
}

func TestApplyFacultyAtDifferentCollege(t *testing.T) {
	env := newTestEnv()
	svc := newStudentServiceForTest(env)
	college := env.addCollege(1, "iitb.ac.in")
	otherCollege := env.addCollege(2, "iitd.ac.in")
	course := env.addCourse(college.ID, "B.Tech Computer Science")
	outsider := env.addFacultyProfile(3, otherCollege.ID)
	env.addStudentProfile(4)

	_, err := svc.Apply(context.Background(), 4, &dto.ApplyCourseRequest{CourseID: course.ID, FacultyID: outsider.ID})
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotAtCollege)
}

func TestApplyTwiceRejected(t *testing.T) {
	env := newTestEnv()
	svc := newStudentServiceForTest(env)
	college := env.addCollege(1, "iitb.ac.in")
	course := env.addCourse(college.ID, "B.Tech Computer Science")
	reviewer := env.addFacultyProfile(2, college.ID)
	env.addStudentProfile(3)

	req := &dto.ApplyCourseRequest{CourseID: course.ID, FacultyID: reviewer.ID}
	_, err := svc.Apply(context.Background(), 3, req)
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), 3, req)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
}

func TestUpsertProfileKeepsCollegeLink(t *testing.T) {
	env := newTestEnv()
	svc := newStudentServiceForTest(env)
	college := env.addCollege(1, "iitb.ac.in")

	profile := env.addStudentProfile(3)
	require.NoError(t, env.students.LinkCollege(context.Background(), nil, profile.ID, college.ID))

	exam := "JEE Advanced"
	updated, err := svc.UpsertProfile(context.Background(), 3, &dto.UpsertStudentProfileRequest{EntranceExam: &exam})
	require.NoError(t, err)
	require.NotNil(t, updated.CollegeID)
	assert.Equal(t, college.ID, *updated.CollegeID)
	assert.True(t, updated.IsVerified)
	assert.Equal(t, "JEE Advanced", *updated.EntranceExam)
}

func TestListApplicationsRequiresProfile(t *testing.T) {
	env := newTestEnv()
	svc := newStudentServiceForTest(env)

	_, err := svc.ListApplications(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrStudentProfileNotFound)
}

func TestStudentDashboardIncludesCollegeScholarships(t *testing.T) {
	env := newTestEnv()
	svc := newStudentServiceForTest(env)
	college := env.addCollege(1, "iitb.ac.in")
	course := env.addCourse(college.ID, "B.Tech Computer Science")
	reviewer := env.addFacultyProfile(2, college.ID)

	profile := env.addStudentProfile(3)
	require.NoError(t, env.students.LinkCollege(context.Background(), nil, profile.ID, college.ID))

	_, err := env.scholarships.Create(context.Background(), &models.Scholarship{CollegeID: college.ID, Name: "Merit", Amount: 50000})
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), 3, &dto.ApplyCourseRequest{CourseID: course.ID, FacultyID: reviewer.ID})
	require.NoError(t, err)

	dashboard, err := svc.Dashboard(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, dashboard.Applications, 1)
	assert.Len(t, dashboard.Scholarships, 1)
}

func TestStudentDashboardWithoutCollegeLink(t *testing.T) {
	env := newTestEnv()
	svc := newStudentServiceForTest(env)
	env.addStudentProfile(3)

	dashboard, err := svc.Dashboard(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, dashboard.Applications)
	assert.Empty(t, dashboard.Scholarships)
}
