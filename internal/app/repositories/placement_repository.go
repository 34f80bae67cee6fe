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

// IPlacementRepository defines database operations for placement records
type IPlacementRepository interface {
	Create(ctx context.Context, placement *models.Placement) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Placement, error)
	GetByCollegeID(ctx context.Context, collegeID int64) ([]*models.Placement, error)
	GetByCollegeIDs(ctx context.Context, ids []int64) (map[int64][]*models.Placement, error)
	Exists(ctx context.Context, collegeID int64, year int) (bool, error)
	CountByCollegeID(ctx context.Context, collegeID int64) (int, error)
	Update(ctx context.Context, placement *models.Placement) error
	Delete(ctx context.Context, id int64) error
}

// PlacementRepository handles database operations for placement records
type PlacementRepository struct {
	db *pgxpool.Pool
}

// NewPlacementRepository creates a new placement repository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{db: db}
}

// Create inserts a placement record and returns its generated id
func (r *PlacementRepository) Create(ctx context.Context, placement *models.Placement) (int64, error) {
	query := `
		INSERT INTO placements (college_id, year, students_placed, average_package, highest_package, top_recruiters)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		placement.CollegeID, placement.Year, placement.StudentsPlaced,
		placement.AveragePackage, placement.HighestPackage, placement.TopRecruiters,
	).Scan(&placement.ID)
	if err != nil {
		return 0, err
	}
	return placement.ID, nil
}

// GetByID retrieves a placement record by ID
func (r *PlacementRepository) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	query := `
		SELECT id, college_id, year, students_placed, average_package, highest_package, top_recruiters
		FROM placements
		WHERE id = $1
	`

	var p models.Placement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.CollegeID,
		&p.Year,
		&p.StudentsPlaced,
		&p.AveragePackage,
		&p.HighestPackage,
		&p.TopRecruiters,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, fmt.Errorf("error retrieving placement: %w", err)
	}
	return &p, nil
}

// GetByCollegeID retrieves all placement records of a college
func (r *PlacementRepository) GetByCollegeID(ctx context.Context, collegeID int64) ([]*models.Placement, error) {
	query := `
		SELECT id, college_id, year, students_placed, average_package, highest_package, top_recruiters
		FROM placements
		WHERE college_id = $1
		ORDER BY year DESC
	`

	rows, err := r.db.Query(ctx, query, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPlacements(rows)
}

// GetByCollegeIDs retrieves placement rows for a set of colleges, keyed by
// college id.
func (r *PlacementRepository) GetByCollegeIDs(ctx context.Context, ids []int64) (map[int64][]*models.Placement, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	querySQL, args, err := psql.Select("id, college_id, year, students_placed, average_package, highest_package, top_recruiters").
		From("placements").
		Where(sq.Eq{"college_id": ids}).
		OrderBy("year DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building placement batch query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	placements, err := collectPlacements(rows)
	if err != nil {
		return nil, err
	}

	result := make(map[int64][]*models.Placement)
	for _, p := range placements {
		result[p.CollegeID] = append(result[p.CollegeID], p)
	}
	return result, nil
}

func collectPlacements(rows pgx.Rows) ([]*models.Placement, error) {
	var placements []*models.Placement
	for rows.Next() {
		var p models.Placement
		if err := rows.Scan(
			&p.ID,
			&p.CollegeID,
			&p.Year,
			&p.StudentsPlaced,
			&p.AveragePackage,
			&p.HighestPackage,
			&p.TopRecruiters,
		); err != nil {
			return nil, err
		}
		placements = append(placements, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return placements, nil
}

// Exists checks if a placement record already exists for (college, year)
func (r *PlacementRepository) Exists(ctx context.Context, collegeID int64, year int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM placements WHERE college_id = $1 AND year = $2)`,
		collegeID, year).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking placement existence: %w", err)
	}
	return exists, nil
}

// CountByCollegeID counts placement records of a college
func (r *PlacementRepository) CountByCollegeID(ctx context.Context, collegeID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM placements WHERE college_id = $1`, collegeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting placements: %w", err)
	}
	return count, nil
}

// Update overwrites all mutable attributes of a placement record
func (r *PlacementRepository) Update(ctx context.Context, placement *models.Placement) error {
	query := `
		UPDATE placements
		SET year = $1, students_placed = $2, average_package = $3, highest_package = $4, top_recruiters = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		placement.Year, placement.StudentsPlaced, placement.AveragePackage,
		placement.HighestPackage, placement.TopRecruiters, placement.ID)
	if err != nil {
		return fmt.Errorf("error updating placement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}
	return nil
}

// Delete removes a placement record by ID
func (r *PlacementRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM placements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting placement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}
	return nil
}
