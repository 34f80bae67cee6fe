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

// ICollegeRepository defines database operations for colleges and their
// one-to-one infrastructure records.
type ICollegeRepository interface {
	Create(ctx context.Context, college *models.College) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.College, error)
	List(ctx context.Context, filter CollegeFilter) ([]*models.College, int64, error)
	GetByUserID(ctx context.Context, userID int64) (*models.College, error)
	GetByEmailDomain(ctx context.Context, domain string) (*models.College, error)
	GetOwnerID(ctx context.Context, collegeID int64) (int64, error)
	Update(ctx context.Context, college *models.College) error
	Delete(ctx context.Context, id int64) error
	GetInfrastructure(ctx context.Context, collegeID int64) (*models.Infrastructure, error)
	UpsertInfrastructure(ctx context.Context, infra *models.Infrastructure) error
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.College, error)
	GetInfrastructureByCollegeIDs(ctx context.Context, ids []int64) (map[int64]*models.Infrastructure, error)
}

// CollegeFilter carries the optional search filters of the college listing
type CollegeFilter struct {
	City   string
	State  string
	Name   string
	Offset uint64
	Limit  int
}

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *pgxpool.Pool
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{db: db}
}

const collegeColumns = `id, user_id, name, established_year, accreditation, city, state,
		contact_email, contact_phone, website, email_domain, description, created_at`

func scanCollege(row pgx.Row) (*models.College, error) {
	var c models.College
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.EstablishedYear,
		&c.Accreditation,
		&c.City,
		&c.State,
		&c.ContactEmail,
		&c.ContactPhone,
		&c.Website,
		&c.EmailDomain,
		&c.Description,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new college owned by college.UserID and returns its id
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) (int64, error) {
	query := `
		INSERT INTO colleges (user_id, name, established_year, accreditation, city, state,
			contact_email, contact_phone, website, email_domain, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		college.UserID, college.Name, college.EstablishedYear, college.Accreditation,
		college.City, college.State, college.ContactEmail, college.ContactPhone,
		college.Website, college.EmailDomain, college.Description,
	).Scan(&college.ID, &college.CreatedAt)
	if err != nil {
		return 0, err
	}

	return college.ID, nil
}

// GetByID retrieves a college by ID
func (r *CollegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	query := `SELECT ` + collegeColumns + ` FROM colleges WHERE id = $1`

	college, err := scanCollege(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}
	return college, nil
}

// List retrieves colleges matching the filter along with the total count
// for pagination. Filters are combined with AND; name matches are
// case-insensitive substring matches.
func (r *CollegeRepository) List(ctx context.Context, filter CollegeFilter) ([]*models.College, int64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select(collegeColumns).From("colleges").OrderBy("name ASC")
	countQuery := psql.Select("COUNT(*)").From("colleges")

	if filter.City != "" {
		base = base.Where(sq.Eq{"city": filter.City})
		countQuery = countQuery.Where(sq.Eq{"city": filter.City})
	}
	if filter.State != "" {
		base = base.Where(sq.Eq{"state": filter.State})
		countQuery = countQuery.Where(sq.Eq{"state": filter.State})
	}
	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		base = base.Where(sq.ILike{"name": pattern})
		countQuery = countQuery.Where(sq.ILike{"name": pattern})
	}
	if filter.Limit > 0 {
		base = base.Offset(filter.Offset).Limit(uint64(filter.Limit))
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building college count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting colleges: %w", err)
	}

	listSQL, listArgs, err := base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building college list query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var colleges []*models.College
	for rows.Next() {
		college, err := scanCollege(rows)
		if err != nil {
			return nil, 0, err
		}
		colleges = append(colleges, college)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return colleges, total, nil
}

// GetByUserID retrieves the college owned by a user, if any
func (r *CollegeRepository) GetByUserID(ctx context.Context, userID int64) (*models.College, error) {
	query := `SELECT ` + collegeColumns + ` FROM colleges WHERE user_id = $1`

	college, err := scanCollege(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college by owner: %w", err)
	}
	return college, nil
}

// GetByEmailDomain retrieves the college whose email_domain matches
func (r *CollegeRepository) GetByEmailDomain(ctx context.Context, domain string) (*models.College, error) {
	query := `SELECT ` + collegeColumns + ` FROM colleges WHERE LOWER(email_domain) = LOWER($1)`

	college, err := scanCollege(r.db.QueryRow(ctx, query, domain))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college by email domain: %w", err)
	}
	return college, nil
}

// GetOwnerID resolves the owning user id of a college
func (r *CollegeRepository) GetOwnerID(ctx context.Context, collegeID int64) (int64, error) {
	var ownerID int64
	err := r.db.QueryRow(ctx,
		`SELECT user_id FROM colleges WHERE id = $1`, collegeID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrCollegeNotFound
		}
		return 0, fmt.Errorf("error resolving college owner: %w", err)
	}
	return ownerID, nil
}

// Update overwrites all mutable attributes of a college
func (r *CollegeRepository) Update(ctx context.Context, college *models.College) error {
	query := `
		UPDATE colleges
		SET name = $1, established_year = $2, accreditation = $3, city = $4, state = $5,
			contact_email = $6, contact_phone = $7, website = $8, email_domain = $9, description = $10
		WHERE id = $11
	`

	cmdTag, err := r.db.Exec(ctx, query,
		college.Name, college.EstablishedYear, college.Accreditation, college.City,
		college.State, college.ContactEmail, college.ContactPhone, college.Website,
		college.EmailDomain, college.Description, college.ID)
	if err != nil {
		return fmt.Errorf("error updating college: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}
	return nil
}

// Delete removes a college. Child rows are removed by the cascading
// foreign keys declared in the schema.
func (r *CollegeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM colleges WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting college: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}
	return nil
}

// GetInfrastructure retrieves the infrastructure record of a college
func (r *CollegeRepository) GetInfrastructure(ctx context.Context, collegeID int64) (*models.Infrastructure, error) {
	query := `
		SELECT id, college_id, campus_area, hostel, labs, sports, library, wifi, description
		FROM infrastructure
		WHERE college_id = $1
	`

	var infra models.Infrastructure
	err := r.db.QueryRow(ctx, query, collegeID).Scan(
		&infra.ID,
		&infra.CollegeID,
		&infra.CampusArea,
		&infra.Hostel,
		&infra.Labs,
		&infra.Sports,
		&infra.Library,
		&infra.Wifi,
		&infra.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("infrastructure record not found")
		}
		return nil, fmt.Errorf("error retrieving infrastructure: %w", err)
	}
	return &infra, nil
}

// UpsertInfrastructure inserts or replaces the one-to-one infrastructure
// record of a college.
func (r *CollegeRepository) UpsertInfrastructure(ctx context.Context, infra *models.Infrastructure) error {
	query := `
		INSERT INTO infrastructure (college_id, campus_area, hostel, labs, sports, library, wifi, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (college_id) DO UPDATE
		SET campus_area = EXCLUDED.campus_area, hostel = EXCLUDED.hostel, labs = EXCLUDED.labs,
			sports = EXCLUDED.sports, library = EXCLUDED.library, wifi = EXCLUDED.wifi,
			description = EXCLUDED.description
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		infra.CollegeID, infra.CampusArea, infra.Hostel, infra.Labs,
		infra.Sports, infra.Library, infra.Wifi, infra.Description,
	).Scan(&infra.ID)
	if err != nil {
		return fmt.Errorf("error upserting infrastructure: %w", err)
	}
	return nil
}

// GetByIDs retrieves colleges by id, keyed by college id. Missing ids are
// simply absent from the result map.
func (r *CollegeRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.College, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	querySQL, args, err := psql.Select(collegeColumns).
		From("colleges").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building college batch query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64]*models.College)
	for rows.Next() {
		college, err := scanCollege(rows)
		if err != nil {
			return nil, err
		}
		result[college.ID] = college
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetInfrastructureByCollegeIDs retrieves infrastructure rows for a set of
// colleges, keyed by college id.
func (r *CollegeRepository) GetInfrastructureByCollegeIDs(ctx context.Context, ids []int64) (map[int64]*models.Infrastructure, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	querySQL, args, err := psql.Select("id, college_id, campus_area, hostel, labs, sports, library, wifi, description").
		From("infrastructure").
		Where(sq.Eq{"college_id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building infrastructure batch query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64]*models.Infrastructure)
	for rows.Next() {
		var infra models.Infrastructure
		if err := rows.Scan(
			&infra.ID,
			&infra.CollegeID,
			&infra.CampusArea,
			&infra.Hostel,
			&infra.Labs,
			&infra.Sports,
			&infra.Library,
			&infra.Wifi,
			&infra.Description,
		); err != nil {
			return nil, err
		}
		result[infra.CollegeID] = &infra
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
