package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
)

// IApplicationRepository defines database operations for course applications
type IApplicationRepository interface {
	Create(ctx context.Context, application *models.CourseApplication) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.CourseApplication, error)
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.CourseApplication, error)
	GetByFacultyID(ctx context.Context, facultyID int64, limit int) ([]*models.CourseApplication, error)
	GetRecentByCollegeID(ctx context.Context, collegeID int64, limit int) ([]*models.CourseApplication, error)
	CountByFacultyID(ctx context.Context, facultyID int64, status models.ApplicationStatus) (int, error)
	SetStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
}

// ApplicationRepository handles database operations for course applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a pending application and returns its generated id
func (r *ApplicationRepository) Create(ctx context.Context, application *models.CourseApplication) (int64, error) {
	query := `
		INSERT INTO course_applications (student_id, course_id, faculty_id, status, applied_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		application.StudentID, application.CourseID, application.FacultyID,
		models.ApplicationPending, time.Now(),
	).Scan(&application.ID)
	if err != nil {
		return 0, err
	}

	application.Status = models.ApplicationPending
	return application.ID, nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.CourseApplication, error) {
	query := `
		SELECT id, student_id, course_id, faculty_id, status, applied_at
		FROM course_applications
		WHERE id = $1
	`

	var a models.CourseApplication
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.StudentID,
		&a.CourseID,
		&a.FacultyID,
		&a.Status,
		&a.AppliedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	return &a, nil
}

// Exists checks for an existing application for a (student, course) pair
func (r *ApplicationRepository) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM course_applications WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking application existence: %w", err)
	}
	return exists, nil
}

// GetByStudentID retrieves a student's applications with the course and
// college names joined for display.
func (r *ApplicationRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.CourseApplication, error) {
	query := `
		SELECT ca.id, ca.student_id, ca.course_id, ca.faculty_id, ca.status, ca.applied_at,
			co.name, c.name
		FROM course_applications ca
		JOIN courses co ON co.id = ca.course_id
		JOIN colleges c ON c.id = co.college_id
		WHERE ca.student_id = $1
		ORDER BY ca.applied_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows, false)
}

// GetByFacultyID retrieves applications addressed to a faculty reviewer
// with the applicant's name joined in. A non-positive limit returns all.
func (r *ApplicationRepository) GetByFacultyID(ctx context.Context, facultyID int64, limit int) ([]*models.CourseApplication, error) {
	query := `
		SELECT ca.id, ca.student_id, ca.course_id, ca.faculty_id, ca.status, ca.applied_at,
			co.name, c.name, u.name
		FROM course_applications ca
		JOIN courses co ON co.id = ca.course_id
		JOIN colleges c ON c.id = co.college_id
		JOIN student_profiles sp ON sp.id = ca.student_id
		JOIN users u ON u.id = sp.user_id
		WHERE ca.faculty_id = $1
		ORDER BY ca.applied_at DESC
	`
	args := []interface{}{facultyID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows, true)
}

// GetRecentByCollegeID retrieves the most recent applications across all
// courses of a college.
func (r *ApplicationRepository) GetRecentByCollegeID(ctx context.Context, collegeID int64, limit int) ([]*models.CourseApplication, error) {
	query := `
		SELECT ca.id, ca.student_id, ca.course_id, ca.faculty_id, ca.status, ca.applied_at,
			co.name, c.name, u.name
		FROM course_applications ca
		JOIN courses co ON co.id = ca.course_id
		JOIN colleges c ON c.id = co.college_id
		JOIN student_profiles sp ON sp.id = ca.student_id
		JOIN users u ON u.id = sp.user_id
		WHERE co.college_id = $1
		ORDER BY ca.applied_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, collegeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows, true)
}

func collectApplications(rows pgx.Rows, withStudent bool) ([]*models.CourseApplication, error) {
	var applications []*models.CourseApplication
	for rows.Next() {
		var a models.CourseApplication
		dest := []interface{}{
			&a.ID, &a.StudentID, &a.CourseID, &a.FacultyID, &a.Status, &a.AppliedAt,
			&a.CourseName, &a.CollegeName,
		}
		if withStudent {
			dest = append(dest, &a.StudentName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		applications = append(applications, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return applications, nil
}

// CountByFacultyID counts a reviewer's applications in a given status
func (r *ApplicationRepository) CountByFacultyID(ctx context.Context, facultyID int64, status models.ApplicationStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM course_applications WHERE faculty_id = $1 AND status = $2`,
		facultyID, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}
	return count, nil
}

// SetStatus records a reviewer's terminal decision. The WHERE clause keeps
// decided rows immutable; a zero row count on an existing application means
// it was already reviewed.
func (r *ApplicationRepository) SetStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE course_applications SET status = $1
		WHERE id = $2 AND status = $3`,
		status, id, models.ApplicationPending)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationReviewed
	}
	return nil
}
