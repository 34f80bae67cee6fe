package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
)

// ICourseRepository defines database operations for courses and cutoffs
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCollegeID(ctx context.Context, collegeID int64) ([]*models.Course, error)
	GetByCollegeIDs(ctx context.Context, ids []int64) (map[int64][]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error

	CreateCutoff(ctx context.Context, cutoff *models.Cutoff) (int64, error)
	GetCutoffByID(ctx context.Context, id int64) (*models.Cutoff, error)
	GetCutoffsByCourseID(ctx context.Context, courseID int64) ([]*models.Cutoff, error)
	CutoffExists(ctx context.Context, courseID int64, year int) (bool, error)
	UpdateCutoff(ctx context.Context, cutoff *models.Cutoff) error
	DeleteCutoff(ctx context.Context, id int64) error
}

// CourseRepository handles database operations for courses and their cutoffs
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a new course and returns its generated id
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	query := `
		INSERT INTO courses (college_id, name, duration_years, fee)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.CollegeID, course.Name, course.DurationYears, course.Fee,
	).Scan(&course.ID)
	if err != nil {
		return 0, fmt.Errorf("error creating course: %w", err)
	}
	return course.ID, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, college_id, name, duration_years, fee
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.CollegeID,
		&course.Name,
		&course.DurationYears,
		&course.Fee,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return &course, nil
}

// GetByCollegeID retrieves all courses of a college
func (r *CourseRepository) GetByCollegeID(ctx context.Context, collegeID int64) ([]*models.Course, error) {
	query := `
		SELECT id, college_id, name, duration_years, fee
		FROM courses
		WHERE college_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCourses(rows)
}

// GetByCollegeIDs retrieves courses for a set of colleges, keyed by
// college id.
func (r *CourseRepository) GetByCollegeIDs(ctx context.Context, ids []int64) (map[int64][]*models.Course, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	querySQL, args, err := psql.Select("id, college_id, name, duration_years, fee").
		From("courses").
		Where(sq.Eq{"college_id": ids}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building course batch query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses, err := collectCourses(rows)
	if err != nil {
		return nil, err
	}

	result := make(map[int64][]*models.Course)
	for _, course := range courses {
		result[course.CollegeID] = append(result[course.CollegeID], course)
	}
	return result, nil
}

func collectCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.CollegeID,
			&course.Name,
			&course.DurationYears,
			&course.Fee,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

// Update overwrites all mutable attributes of a course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, duration_years = $2, fee = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Name, course.DurationYears, course.Fee, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Delete removes a course. Cutoffs and applications referencing it are
// removed by the cascading foreign keys declared in the schema.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// CreateCutoff inserts a cutoff row and returns its generated id
func (r *CourseRepository) CreateCutoff(ctx context.Context, cutoff *models.Cutoff) (int64, error) {
	query := `
		INSERT INTO cutoffs (course_id, year, general, obc, sc, st, ews)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		cutoff.CourseID, cutoff.Year, cutoff.General, cutoff.OBC,
		cutoff.SC, cutoff.ST, cutoff.EWS,
	).Scan(&cutoff.ID)
	if err != nil {
		return 0, err
	}
	return cutoff.ID, nil
}

// GetCutoffByID retrieves a cutoff by ID
func (r *CourseRepository) GetCutoffByID(ctx context.Context, id int64) (*models.Cutoff, error) {
	query := `
		SELECT id, course_id, year, general, obc, sc, st, ews
		FROM cutoffs
		WHERE id = $1
	`

	var cutoff models.Cutoff
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cutoff.ID,
		&cutoff.CourseID,
		&cutoff.Year,
		&cutoff.General,
		&cutoff.OBC,
		&cutoff.SC,
		&cutoff.ST,
		&cutoff.EWS,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCutoffNotFound
		}
		return nil, fmt.Errorf("error retrieving cutoff: %w", err)
	}
	return &cutoff, nil
}

// GetCutoffsByCourseID retrieves all cutoffs of a course, newest year first
func (r *CourseRepository) GetCutoffsByCourseID(ctx context.Context, courseID int64) ([]*models.Cutoff, error) {
	query := `
		SELECT id, course_id, year, general, obc, sc, st, ews
		FROM cutoffs
		WHERE course_id = $1
		ORDER BY year DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cutoffs []*models.Cutoff
	for rows.Next() {
		var cutoff models.Cutoff
		if err := rows.Scan(
			&cutoff.ID,
			&cutoff.CourseID,
			&cutoff.Year,
			&cutoff.General,
			&cutoff.OBC,
			&cutoff.SC,
			&cutoff.ST,
			&cutoff.EWS,
		); err != nil {
			return nil, err
		}
		cutoffs = append(cutoffs, &cutoff)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cutoffs, nil
}

// CutoffExists checks if a cutoff already exists for a (course, year) pair
func (r *CourseRepository) CutoffExists(ctx context.Context, courseID int64, year int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM cutoffs WHERE course_id = $1 AND year = $2)`,
		courseID, year).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking cutoff existence: %w", err)
	}
	return exists, nil
}

// UpdateCutoff overwrites all mutable attributes of a cutoff
func (r *CourseRepository) UpdateCutoff(ctx context.Context, cutoff *models.Cutoff) error {
	query := `
		UPDATE cutoffs
		SET year = $1, general = $2, obc = $3, sc = $4, st = $5, ews = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		cutoff.Year, cutoff.General, cutoff.OBC, cutoff.SC, cutoff.ST, cutoff.EWS, cutoff.ID)
	if err != nil {
		return fmt.Errorf("error updating cutoff: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCutoffNotFound
	}
	return nil
}

// DeleteCutoff removes a cutoff by ID
func (r *CourseRepository) DeleteCutoff(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM cutoffs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting cutoff: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCutoffNotFound
	}
	return nil
}
