package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
)

// IAlumniRepository defines database operations for alumni records
type IAlumniRepository interface {
	Create(ctx context.Context, alumnus *models.Alumnus) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Alumnus, error)
	GetByCollegeID(ctx context.Context, collegeID int64) ([]*models.Alumnus, error)
	CountByCollegeID(ctx context.Context, collegeID int64) (int, error)
	Update(ctx context.Context, alumnus *models.Alumnus) error
	Delete(ctx context.Context, id int64) error
}

// AlumniRepository handles database operations for alumni records
type AlumniRepository struct {
	db *pgxpool.Pool
}

// NewAlumniRepository creates a new alumni repository
func NewAlumniRepository(db *pgxpool.Pool) *AlumniRepository {
	return &AlumniRepository{db: db}
}

// Create inserts an alumni record and returns its generated id
func (r *AlumniRepository) Create(ctx context.Context, alumnus *models.Alumnus) (int64, error) {
	query := `
		INSERT INTO alumni (college_id, name, graduation_year, degree, current_company, designation, achievements)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		alumnus.CollegeID, alumnus.Name, alumnus.GraduationYear, alumnus.Degree,
		alumnus.CurrentCompany, alumnus.Designation, alumnus.Achievements,
	).Scan(&alumnus.ID)
	if err != nil {
		return 0, fmt.Errorf("error creating alumni record: %w", err)
	}
	return alumnus.ID, nil
}

// GetByID retrieves an alumni record by ID
func (r *AlumniRepository) GetByID(ctx context.Context, id int64) (*models.Alumnus, error) {
	query := `
		SELECT id, college_id, name, graduation_year, degree, current_company, designation, achievements
		FROM alumni
		WHERE id = $1
	`

	var a models.Alumnus
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.CollegeID,
		&a.Name,
		&a.GraduationYear,
		&a.Degree,
		&a.CurrentCompany,
		&a.Designation,
		&a.Achievements,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlumnusNotFound
		}
		return nil, fmt.Errorf("error retrieving alumni record: %w", err)
	}
	return &a, nil
}

// GetByCollegeID retrieves all alumni records of a college
func (r *AlumniRepository) GetByCollegeID(ctx context.Context, collegeID int64) ([]*models.Alumnus, error) {
	query := `
		SELECT id, college_id, name, graduation_year, degree, current_company, designation, achievements
		FROM alumni
		WHERE college_id = $1
		ORDER BY graduation_year DESC, name
	`

	rows, err := r.db.Query(ctx, query, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alumni []*models.Alumnus
	for rows.Next() {
		var a models.Alumnus
		if err := rows.Scan(
			&a.ID,
			&a.CollegeID,
			&a.Name,
			&a.GraduationYear,
			&a.Degree,
			&a.CurrentCompany,
			&a.Designation,
			&a.Achievements,
		); err != nil {
			return nil, err
		}
		alumni = append(alumni, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return alumni, nil
}

// CountByCollegeID counts alumni records of a college
func (r *AlumniRepository) CountByCollegeID(ctx context.Context, collegeID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM alumni WHERE college_id = $1`, collegeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting alumni: %w", err)
	}
	return count, nil
}

// Update overwrites all mutable attributes of an alumni record
func (r *AlumniRepository) Update(ctx context.Context, alumnus *models.Alumnus) error {
	query := `
		UPDATE alumni
		SET name = $1, graduation_year = $2, degree = $3, current_company = $4, designation = $5, achievements = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		alumnus.Name, alumnus.GraduationYear, alumnus.Degree, alumnus.CurrentCompany,
		alumnus.Designation, alumnus.Achievements, alumnus.ID)
	if err != nil {
		return fmt.Errorf("error updating alumni record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlumnusNotFound
	}
	return nil
}

// Delete removes an alumni record by ID
func (r *AlumniRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM alumni WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting alumni record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlumnusNotFound
	}
	return nil
}
