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

// IScholarshipRepository defines database operations for scholarships
type IScholarshipRepository interface {
	Create(ctx context.Context, scholarship *models.Scholarship) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Scholarship, error)
	GetByCollegeID(ctx context.Context, collegeID int64) ([]*models.Scholarship, error)
	GetByCollegeIDs(ctx context.Context, ids []int64) (map[int64][]*models.Scholarship, error)
	Update(ctx context.Context, scholarship *models.Scholarship) error
	Delete(ctx context.Context, id int64) error
}

// ScholarshipRepository handles database operations for scholarships
type ScholarshipRepository struct {
	db *pgxpool.Pool
}

// NewScholarshipRepository creates a new scholarship repository
func NewScholarshipRepository(db *pgxpool.Pool) *ScholarshipRepository {
	return &ScholarshipRepository{db: db}
}

// Create inserts a scholarship and returns its generated id
func (r *ScholarshipRepository) Create(ctx context.Context, scholarship *models.Scholarship) (int64, error) {
	query := `
		INSERT INTO scholarships (college_id, name, amount, eligibility, deadline)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		scholarship.CollegeID, scholarship.Name, scholarship.Amount,
		scholarship.Eligibility, scholarship.Deadline,
	).Scan(&scholarship.ID)
	if err != nil {
		return 0, fmt.Errorf("error creating scholarship: %w", err)
	}
	return scholarship.ID, nil
}

// GetByID retrieves a scholarship by ID
func (r *ScholarshipRepository) GetByID(ctx context.Context, id int64) (*models.Scholarship, error) {
	query := `
		SELECT id, college_id, name, amount, eligibility, deadline
		FROM scholarships
		WHERE id = $1
	`

	var s models.Scholarship
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.CollegeID,
		&s.Name,
		&s.Amount,
		&s.Eligibility,
		&s.Deadline,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScholarshipNotFound
		}
		return nil, fmt.Errorf("error retrieving scholarship: %w", err)
	}
	return &s, nil
}

// GetByCollegeID retrieves all scholarships of a college
func (r *ScholarshipRepository) GetByCollegeID(ctx context.Context, collegeID int64) ([]*models.Scholarship, error) {
	query := `
		SELECT id, college_id, name, amount, eligibility, deadline
		FROM scholarships
		WHERE college_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectScholarships(rows)
}

// GetByCollegeIDs retrieves scholarship rows for a set of colleges, keyed
// by college id.
func (r *ScholarshipRepository) GetByCollegeIDs(ctx context.Context, ids []int64) (map[int64][]*models.Scholarship, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	querySQL, args, err := psql.Select("id, college_id, name, amount, eligibility, deadline").
		From("scholarships").
		Where(sq.Eq{"college_id": ids}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building scholarship batch query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scholarships, err := collectScholarships(rows)
	if err != nil {
		return nil, err
	}

	result := make(map[int64][]*models.Scholarship)
	for _, s := range scholarships {
		result[s.CollegeID] = append(result[s.CollegeID], s)
	}
	return result, nil
}

func collectScholarships(rows pgx.Rows) ([]*models.Scholarship, error) {
	var scholarships []*models.Scholarship
	for rows.Next() {
		var s models.Scholarship
		if err := rows.Scan(
			&s.ID,
			&s.CollegeID,
			&s.Name,
			&s.Amount,
			&s.Eligibility,
			&s.Deadline,
		); err != nil {
			return nil, err
		}
		scholarships = append(scholarships, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return scholarships, nil
}

// Update overwrites all mutable attributes of a scholarship
func (r *ScholarshipRepository) Update(ctx context.Context, scholarship *models.Scholarship) error {
	query := `
		UPDATE scholarships
		SET name = $1, amount = $2, eligibility = $3, deadline = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		scholarship.Name, scholarship.Amount, scholarship.Eligibility,
		scholarship.Deadline, scholarship.ID)
	if err != nil {
		return fmt.Errorf("error updating scholarship: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScholarshipNotFound
	}
	return nil
}

// Delete removes a scholarship by ID
func (r *ScholarshipRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM scholarships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting scholarship: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScholarshipNotFound
	}
	return nil
}
