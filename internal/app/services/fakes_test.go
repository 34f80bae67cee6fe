package services

import (
	"context"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vallabh/collegehub/internal/app/auth"
	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/app/repositories"
	"github.com/vallabh/collegehub/internal/db"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
)

// testEnv bundles the fakes with an authorization service wired against
// them, plus seeding helpers shared by the service tests.
type testEnv struct {
	users        *fakeUserRepo
	colleges     *fakeCollegeRepo
	courses      *fakeCourseRepo
	placements   *fakePlacementRepo
	scholarships *fakeScholarshipRepo
	alumni       *fakeAlumniRepo
	faculty      *fakeFacultyRepo
	students     *fakeStudentRepo
	applications *fakeApplicationRepo
	authz        *auth.AuthorizationService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:        newFakeUserRepo(),
		colleges:     newFakeCollegeRepo(),
		courses:      newFakeCourseRepo(),
		placements:   newFakePlacementRepo(),
		scholarships: newFakeScholarshipRepo(),
		alumni:       newFakeAlumniRepo(),
		faculty:      newFakeFacultyRepo(),
		students:     newFakeStudentRepo(),
		applications: newFakeApplicationRepo(),
	}
	env.authz = auth.NewAuthorizationService(env.colleges, env.courses, env.placements, env.scholarships, env.alumni)
	return env
}

func (e *testEnv) addCollege(userID int64, domain string) *models.College {
	college := &models.College{
		UserID:          userID,
		Name:            "Test College",
		EstablishedYear: 1990,
		Accreditation:   "NAAC A",
		City:            "Pune",
		State:           "Maharashtra",
		ContactEmail:    "admin@" + domain,
		EmailDomain:     domain,
	}
	_, _ = e.colleges.Create(context.Background(), college)
	return college
}

func (e *testEnv) addCourse(collegeID int64, name string) *models.Course {
	course := &models.Course{
		CollegeID:     collegeID,
		Name:          name,
		DurationYears: 4,
		Fee:           250000,
	}
	_, _ = e.courses.Create(context.Background(), course)
	return course
}

func (e *testEnv) addFacultyProfile(userID, collegeID int64) *models.FacultyProfile {
	profile := &models.FacultyProfile{
		UserID:        userID,
		CollegeID:     collegeID,
		Department:    "Computer Science",
		Qualification: "PhD",
	}
	_, _ = e.faculty.CreateProfile(context.Background(), profile)
	return profile
}

func (e *testEnv) addStudentProfile(userID int64) *models.StudentProfile {
	profile := &models.StudentProfile{UserID: userID}
	_ = e.students.UpsertProfile(context.Background(), profile)
	return profile
}

// In-memory repository fakes. They mirror the sentinel errors the real
// repositories return so the services under test behave identically.

// fakeTxRunner runs the transaction body directly; the fakes ignore the tx.
type fakeTxRunner struct{}

func (fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

type fakeUserRepo struct {
	users     map[int64]*models.User
	createErr error
	nextID    int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	return nil
}

type fakeCollegeRepo struct {
	colleges map[int64]*models.College
	infra    map[int64]*models.Infrastructure
	nextID   int64
}

func newFakeCollegeRepo() *fakeCollegeRepo {
	return &fakeCollegeRepo{
		colleges: make(map[int64]*models.College),
		infra:    make(map[int64]*models.Infrastructure),
	}
}

func (f *fakeCollegeRepo) Create(_ context.Context, college *models.College) (int64, error) {
	f.nextID++
	college.ID = f.nextID
	f.colleges[college.ID] = college
	return college.ID, nil
}

func (f *fakeCollegeRepo) GetByID(_ context.Context, id int64) (*models.College, error) {
	college, ok := f.colleges[id]
	if !ok {
		return nil, apperrors.ErrCollegeNotFound
	}
	return college, nil
}

func (f *fakeCollegeRepo) List(_ context.Context, filter repositories.CollegeFilter) ([]*models.College, int64, error) {
	var out []*models.College
	for _, c := range f.colleges {
		if filter.City != "" && !strings.EqualFold(c.City, filter.City) {
			continue
		}
		if filter.State != "" && !strings.EqualFold(c.State, filter.State) {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (f *fakeCollegeRepo) GetByUserID(_ context.Context, userID int64) (*models.College, error) {
	for _, c := range f.colleges {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, apperrors.ErrCollegeNotFound
}

func (f *fakeCollegeRepo) GetByEmailDomain(_ context.Context, domain string) (*models.College, error) {
	for _, c := range f.colleges {
		if strings.EqualFold(c.EmailDomain, domain) {
			return c, nil
		}
	}
	return nil, apperrors.ErrCollegeNotFound
}

func (f *fakeCollegeRepo) GetOwnerID(_ context.Context, collegeID int64) (int64, error) {
	college, ok := f.colleges[collegeID]
	if !ok {
		return 0, apperrors.ErrCollegeNotFound
	}
	return college.UserID, nil
}

func (f *fakeCollegeRepo) Update(_ context.Context, college *models.College) error {
	if _, ok := f.colleges[college.ID]; !ok {
		return apperrors.ErrCollegeNotFound
	}
	f.colleges[college.ID] = college
	return nil
}

func (f *fakeCollegeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.colleges[id]; !ok {
		return apperrors.ErrCollegeNotFound
	}
	delete(f.colleges, id)
	return nil
}

func (f *fakeCollegeRepo) GetInfrastructure(_ context.Context, collegeID int64) (*models.Infrastructure, error) {
	infra, ok := f.infra[collegeID]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("infrastructure record not found")
	}
	return infra, nil
}

func (f *fakeCollegeRepo) UpsertInfrastructure(_ context.Context, infra *models.Infrastructure) error {
	f.infra[infra.CollegeID] = infra
	return nil
}

func (f *fakeCollegeRepo) GetByIDs(_ context.Context, ids []int64) (map[int64]*models.College, error) {
	out := make(map[int64]*models.College)
	for _, id := range ids {
		if c, ok := f.colleges[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (f *fakeCollegeRepo) GetInfrastructureByCollegeIDs(_ context.Context, ids []int64) (map[int64]*models.Infrastructure, error) {
	out := make(map[int64]*models.Infrastructure)
	for _, id := range ids {
		if infra, ok := f.infra[id]; ok {
			out[id] = infra
		}
	}
	return out, nil
}

type fakeCourseRepo struct {
	courses map[int64]*models.Course
	cutoffs map[int64]*models.Cutoff
	nextID  int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		courses: make(map[int64]*models.Course),
		cutoffs: make(map[int64]*models.Cutoff),
	}
}

func (f *fakeCourseRepo) Create(_ context.Context, course *models.Course) (int64, error) {
	f.nextID++
	course.ID = f.nextID
	f.courses[course.ID] = course
	return course.ID, nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseRepo) GetByCollegeID(_ context.Context, collegeID int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		if c.CollegeID == collegeID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCourseRepo) GetByCollegeIDs(ctx context.Context, ids []int64) (map[int64][]*models.Course, error) {
	out := make(map[int64][]*models.Course)
	for _, id := range ids {
		courses, _ := f.GetByCollegeID(ctx, id)
		if len(courses) > 0 {
			out[id] = courses
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseRepo) CreateCutoff(_ context.Context, cutoff *models.Cutoff) (int64, error) {
	f.nextID++
	cutoff.ID = f.nextID
	f.cutoffs[cutoff.ID] = cutoff
	return cutoff.ID, nil
}

func (f *fakeCourseRepo) GetCutoffByID(_ context.Context, id int64) (*models.Cutoff, error) {
	cutoff, ok := f.cutoffs[id]
	if !ok {
		return nil, apperrors.ErrCutoffNotFound
	}
	return cutoff, nil
}

func (f *fakeCourseRepo) GetCutoffsByCourseID(_ context.Context, courseID int64) ([]*models.Cutoff, error) {
	var out []*models.Cutoff
	for _, c := range f.cutoffs {
		if c.CourseID == courseID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out, nil
}

func (f *fakeCourseRepo) CutoffExists(_ context.Context, courseID int64, year int) (bool, error) {
	for _, c := range f.cutoffs {
		if c.CourseID == courseID && c.Year == year {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourseRepo) UpdateCutoff(_ context.Context, cutoff *models.Cutoff) error {
	if _, ok := f.cutoffs[cutoff.ID]; !ok {
		return apperrors.ErrCutoffNotFound
	}
	f.cutoffs[cutoff.ID] = cutoff
	return nil
}

func (f *fakeCourseRepo) DeleteCutoff(_ context.Context, id int64) error {
	if _, ok := f.cutoffs[id]; !ok {
		return apperrors.ErrCutoffNotFound
	}
	delete(f.cutoffs, id)
	return nil
}

type fakePlacementRepo struct {
	placements map[int64]*models.Placement
	nextID     int64
}

func newFakePlacementRepo() *fakePlacementRepo {
	return &fakePlacementRepo{placements: make(map[int64]*models.Placement)}
}

func (f *fakePlacementRepo) Create(_ context.Context, placement *models.Placement) (int64, error) {
	f.nextID++
	placement.ID = f.nextID
	f.placements[placement.ID] = placement
	return placement.ID, nil
}

func (f *fakePlacementRepo) GetByID(_ context.Context, id int64) (*models.Placement, error) {
	placement, ok := f.placements[id]
	if !ok {
		return nil, apperrors.ErrPlacementNotFound
	}
	return placement, nil
}

func (f *fakePlacementRepo) GetByCollegeID(_ context.Context, collegeID int64) ([]*models.Placement, error) {
	var out []*models.Placement
	for _, p := range f.placements {
		if p.CollegeID == collegeID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out, nil
}

func (f *fakePlacementRepo) GetByCollegeIDs(ctx context.Context, ids []int64) (map[int64][]*models.Placement, error) {
	out := make(map[int64][]*models.Placement)
	for _, id := range ids {
		placements, _ := f.GetByCollegeID(ctx, id)
		if len(placements) > 0 {
			out[id] = placements
		}
	}
	return out, nil
}

func (f *fakePlacementRepo) Exists(_ context.Context, collegeID int64, year int) (bool, error) {
	for _, p := range f.placements {
		if p.CollegeID == collegeID && p.Year == year {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePlacementRepo) CountByCollegeID(ctx context.Context, collegeID int64) (int, error) {
	placements, _ := f.GetByCollegeID(ctx, collegeID)
	return len(placements), nil
}

func (f *fakePlacementRepo) Update(_ context.Context, placement *models.Placement) error {
	if _, ok := f.placements[placement.ID]; !ok {
		return apperrors.ErrPlacementNotFound
	}
	f.placements[placement.ID] = placement
	return nil
}

func (f *fakePlacementRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.placements[id]; !ok {
		return apperrors.ErrPlacementNotFound
	}
	delete(f.placements, id)
	return nil
}

type fakeScholarshipRepo struct {
	scholarships map[int64]*models.Scholarship
	nextID       int64
}

func newFakeScholarshipRepo() *fakeScholarshipRepo {
	return &fakeScholarshipRepo{scholarships: make(map[int64]*models.Scholarship)}
}

func (f *fakeScholarshipRepo) Create(_ context.Context, scholarship *models.Scholarship) (int64, error) {
	f.nextID++
	scholarship.ID = f.nextID
	f.scholarships[scholarship.ID] = scholarship
	return scholarship.ID, nil
}

func (f *fakeScholarshipRepo) GetByID(_ context.Context, id int64) (*models.Scholarship, error) {
	scholarship, ok := f.scholarships[id]
	if !ok {
		return nil, apperrors.ErrScholarshipNotFound
	}
	return scholarship, nil
}

func (f *fakeScholarshipRepo) GetByCollegeID(_ context.Context, collegeID int64) ([]*models.Scholarship, error) {
	var out []*models.Scholarship
	for _, s := range f.scholarships {
		if s.CollegeID == collegeID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeScholarshipRepo) GetByCollegeIDs(ctx context.Context, ids []int64) (map[int64][]*models.Scholarship, error) {
	out := make(map[int64][]*models.Scholarship)
	for _, id := range ids {
		scholarships, _ := f.GetByCollegeID(ctx, id)
		if len(scholarships) > 0 {
			out[id] = scholarships
		}
	}
	return out, nil
}

func (f *fakeScholarshipRepo) Update(_ context.Context, scholarship *models.Scholarship) error {
	if _, ok := f.scholarships[scholarship.ID]; !ok {
		return apperrors.ErrScholarshipNotFound
	}
	f.scholarships[scholarship.ID] = scholarship
	return nil
}

func (f *fakeScholarshipRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.scholarships[id]; !ok {
		return apperrors.ErrScholarshipNotFound
	}
	delete(f.scholarships, id)
	return nil
}

type fakeAlumniRepo struct {
	alumni map[int64]*models.Alumnus
	nextID int64
}

func newFakeAlumniRepo() *fakeAlumniRepo {
	return &fakeAlumniRepo{alumni: make(map[int64]*models.Alumnus)}
}

func (f *fakeAlumniRepo) Create(_ context.Context, alumnus *models.Alumnus) (int64, error) {
	f.nextID++
	alumnus.ID = f.nextID
	f.alumni[alumnus.ID] = alumnus
	return alumnus.ID, nil
}

func (f *fakeAlumniRepo) GetByID(_ context.Context, id int64) (*models.Alumnus, error) {
	alumnus, ok := f.alumni[id]
	if !ok {
		return nil, apperrors.ErrAlumnusNotFound
	}
	return alumnus, nil
}

func (f *fakeAlumniRepo) GetByCollegeID(_ context.Context, collegeID int64) ([]*models.Alumnus, error) {
	var out []*models.Alumnus
	for _, a := range f.alumni {
		if a.CollegeID == collegeID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAlumniRepo) CountByCollegeID(ctx context.Context, collegeID int64) (int, error) {
	alumni, _ := f.GetByCollegeID(ctx, collegeID)
	return len(alumni), nil
}

func (f *fakeAlumniRepo) Update(_ context.Context, alumnus *models.Alumnus) error {
	if _, ok := f.alumni[alumnus.ID]; !ok {
		return apperrors.ErrAlumnusNotFound
	}
	f.alumni[alumnus.ID] = alumnus
	return nil
}

func (f *fakeAlumniRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.alumni[id]; !ok {
		return apperrors.ErrAlumnusNotFound
	}
	delete(f.alumni, id)
	return nil
}

type fakeFacultyRepo struct {
	profiles    map[int64]*models.FacultyProfile
	invitations map[int64]*models.FacultyInvitation
	nextID      int64
}

func newFakeFacultyRepo() *fakeFacultyRepo {
	return &fakeFacultyRepo{
		profiles:    make(map[int64]*models.FacultyProfile),
		invitations: make(map[int64]*models.FacultyInvitation),
	}
}

func (f *fakeFacultyRepo) CreateProfile(_ context.Context, profile *models.FacultyProfile) (int64, error) {
	f.nextID++
	profile.ID = f.nextID
	f.profiles[profile.ID] = profile
	return profile.ID, nil
}

func (f *fakeFacultyRepo) GetProfileByID(_ context.Context, id int64) (*models.FacultyProfile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, apperrors.ErrFacultyProfileNotFound
	}
	return profile, nil
}

func (f *fakeFacultyRepo) GetProfileByUserID(_ context.Context, userID int64) (*models.FacultyProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, apperrors.ErrFacultyProfileNotFound
}

func (f *fakeFacultyRepo) GetProfilesByCollegeID(_ context.Context, collegeID int64) ([]*models.FacultyProfile, error) {
	var out []*models.FacultyProfile
	for _, p := range f.profiles {
		if p.CollegeID == collegeID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeFacultyRepo) CountByCollegeID(ctx context.Context, collegeID int64) (int, error) {
	profiles, _ := f.GetProfilesByCollegeID(ctx, collegeID)
	return len(profiles), nil
}

func (f *fakeFacultyRepo) UpdateProfile(_ context.Context, profile *models.FacultyProfile) error {
	if _, ok := f.profiles[profile.ID]; !ok {
		return apperrors.ErrFacultyProfileNotFound
	}
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeFacultyRepo) CreateInvitation(_ context.Context, invitation *models.FacultyInvitation) (int64, error) {
	f.nextID++
	invitation.ID = f.nextID
	f.invitations[invitation.ID] = invitation
	return invitation.ID, nil
}

func (f *fakeFacultyRepo) GetInvitationByID(_ context.Context, id int64) (*models.FacultyInvitation, error) {
	invitation, ok := f.invitations[id]
	if !ok {
		return nil, apperrors.ErrInvitationNotFound
	}
	return invitation, nil
}

func (f *fakeFacultyRepo) GetPendingInvitationsByEmail(_ context.Context, email string) ([]*models.FacultyInvitation, error) {
	var out []*models.FacultyInvitation
	for _, inv := range f.invitations {
		if strings.EqualFold(inv.Email, email) && inv.Status == models.InvitationPending {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeFacultyRepo) PendingInvitationExists(_ context.Context, collegeID int64, email string) (bool, error) {
	for _, inv := range f.invitations {
		if inv.CollegeID == collegeID && strings.EqualFold(inv.Email, email) && inv.Status == models.InvitationPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFacultyRepo) ResolveInvitation(_ context.Context, id int64, status models.InvitationStatus) error {
	invitation, ok := f.invitations[id]
	if !ok {
		return apperrors.ErrInvitationNotFound
	}
	if invitation.Status != models.InvitationPending {
		return apperrors.ErrInvitationResolved
	}
	invitation.Status = status
	return nil
}

type fakeStudentRepo struct {
	profiles map[int64]*models.StudentProfile
	nextID   int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{profiles: make(map[int64]*models.StudentProfile)}
}

func (f *fakeStudentRepo) GetProfileByUserID(_ context.Context, userID int64) (*models.StudentProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, apperrors.ErrStudentProfileNotFound
}

func (f *fakeStudentRepo) UpsertProfile(_ context.Context, profile *models.StudentProfile) error {
	for _, existing := range f.profiles {
		if existing.UserID == profile.UserID {
			profile.ID = existing.ID
			profile.CollegeID = existing.CollegeID
			profile.IsVerified = existing.IsVerified
			f.profiles[profile.ID] = profile
			return nil
		}
	}
	f.nextID++
	profile.ID = f.nextID
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeStudentRepo) LinkCollege(_ context.Context, _ pgx.Tx, profileID, collegeID int64) error {
	profile, ok := f.profiles[profileID]
	if !ok {
		return apperrors.ErrStudentProfileNotFound
	}
	profile.CollegeID = &collegeID
	profile.IsVerified = true
	return nil
}

type fakeApplicationRepo struct {
	applications map[int64]*models.CourseApplication
	nextID       int64
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[int64]*models.CourseApplication)}
}

func (f *fakeApplicationRepo) Create(_ context.Context, application *models.CourseApplication) (int64, error) {
	f.nextID++
	application.ID = f.nextID
	if application.Status == "" {
		application.Status = models.ApplicationPending
	}
	f.applications[application.ID] = application
	return application.ID, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id int64) (*models.CourseApplication, error) {
	application, ok := f.applications[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	return application, nil
}

func (f *fakeApplicationRepo) Exists(_ context.Context, studentID, courseID int64) (bool, error) {
	for _, a := range f.applications {
		if a.StudentID == studentID && a.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) GetByStudentID(_ context.Context, studentID int64) ([]*models.CourseApplication, error) {
	var out []*models.CourseApplication
	for _, a := range f.applications {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeApplicationRepo) GetByFacultyID(_ context.Context, facultyID int64, limit int) ([]*models.CourseApplication, error) {
	var out []*models.CourseApplication
	for _, a := range f.applications {
		if a.FacultyID == facultyID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeApplicationRepo) GetRecentByCollegeID(_ context.Context, _ int64, limit int) ([]*models.CourseApplication, error) {
	var out []*models.CourseApplication
	for _, a := range f.applications {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeApplicationRepo) CountByFacultyID(_ context.Context, facultyID int64, status models.ApplicationStatus) (int, error) {
	count := 0
	for _, a := range f.applications {
		if a.FacultyID == facultyID && a.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeApplicationRepo) SetStatus(_ context.Context, id int64, status models.ApplicationStatus) error {
	application, ok := f.applications[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	if application.Status != models.ApplicationPending {
		return apperrors.ErrApplicationReviewed
	}
	application.Status = status
	return nil
}
