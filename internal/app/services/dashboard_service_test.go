package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
)

func newDashboardServiceForTest(env *testEnv) DashboardService {
	return NewDashboardService(env.colleges, env.courses, env.placements, env.scholarships, env.alumni, env.faculty, env.applications)
}

func TestCompareCollegesMissingID(t *testing.T) {
	env := newTestEnv()
	svc := newDashboardServiceForTest(env)
	college := env.addCollege(1, "iitb.ac.in")

	_, err := svc.CompareColleges(context.Background(), []int64{college.ID, 42})
	assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
}

func TestCompareCollegesGroupsByCollege(t *testing.T) {
	env := newTestEnv()
	svc := newDashboardServiceForTest(env)
	first := env.addCollege(1, "iitb.ac.in")
	second := env.addCollege(2, "iitd.ac.in")

	env.addCourse(first.ID, "B.Tech Computer Science")
	env.addCourse(first.ID, "B.Tech Electrical")
	env.addCourse(second.ID, "B.Tech Mechanical")

	_, err := env.placements.Create(context.Background(), &models.Placement{
		CollegeID: first.ID, Year: 2024, StudentsPlaced: 1350, AveragePackage: 1800000, HighestPackage: 9800000,
	})
	require.NoError(t, err)

	require.NoError(t, env.colleges.UpsertInfrastructure(context.Background(), &models.Infrastructure{
		CollegeID: second.ID, CampusArea: 320, Hostel: true,
	}))

	comparison, err := svc.CompareColleges(context.Background(), []int64{first.ID, second.ID})
	require.NoError(t, err)

	assert.Len(t, comparison.Colleges, 2)
	assert.Len(t, comparison.Courses[first.ID], 2)
	assert.Len(t, comparison.Courses[second.ID], 1)
	assert.Len(t, comparison.Placements[first.ID], 1)

	// Absent categories stay absent rather than empty
	_, hasPlacements := comparison.Placements[second.ID]
	assert.False(t, hasPlacements)
	_, hasInfra := comparison.Infrastructure[first.ID]
	assert.False(t, hasInfra)
	assert.NotNil(t, comparison.Infrastructure[second.ID])
}

func TestInstituteDashboardCounts(t *testing.T) {
	env := newTestEnv()
	svc := newDashboardServiceForTest(env)
	college := env.addCollege(1, "iitb.ac.in")

	course := env.addCourse(college.ID, "B.Tech Computer Science")
	env.addCourse(college.ID, "B.Tech Electrical")
	reviewer := env.addFacultyProfile(2, college.ID)
	student := env.addStudentProfile(3)

	_, err := env.placements.Create(context.Background(), &models.Placement{CollegeID: college.ID, Year: 2024, HighestPackage: 1})
	require.NoError(t, err)
	_, err = env.alumni.Create(context.Background(), &models.Alumnus{CollegeID: college.ID, Name: "Sundar", GraduationYear: 2004, Degree: "B.Tech"})
	require.NoError(t, err)
	_, err = env.applications.Create(context.Background(), &models.CourseApplication{StudentID: student.ID, CourseID: course.ID, FacultyID: reviewer.ID})
	require.NoError(t, err)

	dashboard, err := svc.InstituteDashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, dashboard.CourseCount)
	assert.Equal(t, 1, dashboard.FacultyCount)
	assert.Equal(t, 1, dashboard.PlacementCount)
	assert.Equal(t, 1, dashboard.AlumniCount)
	assert.Len(t, dashboard.RecentApplications, 1)
}

func TestInstituteDashboardWithoutCollege(t *testing.T) {
	env := newTestEnv()
	svc := newDashboardServiceForTest(env)

	_, err := svc.InstituteDashboard(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
}
