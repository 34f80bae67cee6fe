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

// IFacultyRepository defines database operations for faculty profiles and
// invitations.
type IFacultyRepository interface {
	CreateProfile(ctx context.Context, profile *models.FacultyProfile) (int64, error)
	GetProfileByID(ctx context.Context, id int64) (*models.FacultyProfile, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*models.FacultyProfile, error)
	GetProfilesByCollegeID(ctx context.Context, collegeID int64) ([]*models.FacultyProfile, error)
	CountByCollegeID(ctx context.Context, collegeID int64) (int, error)
	UpdateProfile(ctx context.Context, profile *models.FacultyProfile) error

	CreateInvitation(ctx context.Context, invitation *models.FacultyInvitation) (int64, error)
	GetInvitationByID(ctx context.Context, id int64) (*models.FacultyInvitation, error)
	GetPendingInvitationsByEmail(ctx context.Context, email string) ([]*models.FacultyInvitation, error)
	PendingInvitationExists(ctx context.Context, collegeID int64, email string) (bool, error)
	ResolveInvitation(ctx context.Context, id int64, status models.InvitationStatus) error
}

// FacultyRepository handles database operations for faculty profiles and
// the invitations that create them.
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// CreateProfile inserts a faculty profile and returns its generated id
func (r *FacultyRepository) CreateProfile(ctx context.Context, profile *models.FacultyProfile) (int64, error) {
	query := `
		INSERT INTO faculty_profiles (user_id, college_id, department, qualification, experience_years)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.CollegeID, profile.Department,
		profile.Qualification, profile.ExperienceYears,
	).Scan(&profile.ID)
	if err != nil {
		return 0, err
	}
	return profile.ID, nil
}

// GetProfileByID retrieves a faculty profile by ID
func (r *FacultyRepository) GetProfileByID(ctx context.Context, id int64) (*models.FacultyProfile, error) {
	query := `
		SELECT id, user_id, college_id, department, qualification, experience_years
		FROM faculty_profiles
		WHERE id = $1
	`
	return r.scanProfile(r.db.QueryRow(ctx, query, id))
}

// GetProfileByUserID retrieves the faculty profile of a user
func (r *FacultyRepository) GetProfileByUserID(ctx context.Context, userID int64) (*models.FacultyProfile, error) {
	query := `
		SELECT id, user_id, college_id, department, qualification, experience_years
		FROM faculty_profiles
		WHERE user_id = $1
	`
	return r.scanProfile(r.db.QueryRow(ctx, query, userID))
}

func (r *FacultyRepository) scanProfile(row pgx.Row) (*models.FacultyProfile, error) {
	var p models.FacultyProfile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.CollegeID,
		&p.Department,
		&p.Qualification,
		&p.ExperienceYears,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty profile: %w", err)
	}
	return &p, nil
}

// GetProfilesByCollegeID retrieves all faculty profiles of a college with
// the user's name and email joined in.
func (r *FacultyRepository) GetProfilesByCollegeID(ctx context.Context, collegeID int64) ([]*models.FacultyProfile, error) {
	query := `
		SELECT fp.id, fp.user_id, fp.college_id, fp.department, fp.qualification, fp.experience_years,
			u.id, u.email, u.name, u.role_type, u.created_at, u.updated_at
		FROM faculty_profiles fp
		JOIN users u ON u.id = fp.user_id
		WHERE fp.college_id = $1
		ORDER BY fp.department, u.name
	`

	rows, err := r.db.Query(ctx, query, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.FacultyProfile
	for rows.Next() {
		var p models.FacultyProfile
		var u models.User
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.CollegeID,
			&p.Department,
			&p.Qualification,
			&p.ExperienceYears,
			&u.ID,
			&u.Email,
			&u.Name,
			&u.RoleType,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p.User = &u
		profiles = append(profiles, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// CountByCollegeID counts faculty profiles of a college
func (r *FacultyRepository) CountByCollegeID(ctx context.Context, collegeID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM faculty_profiles WHERE college_id = $1`, collegeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting faculty profiles: %w", err)
	}
	return count, nil
}

// UpdateProfile overwrites the mutable attributes of a faculty profile
func (r *FacultyRepository) UpdateProfile(ctx context.Context, profile *models.FacultyProfile) error {
	query := `
		UPDATE faculty_profiles
		SET department = $1, qualification = $2, experience_years = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		profile.Department, profile.Qualification, profile.ExperienceYears, profile.ID)
	if err != nil {
		return fmt.Errorf("error updating faculty profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyProfileNotFound
	}
	return nil
}

// CreateInvitation inserts a pending invitation and returns its id
func (r *FacultyRepository) CreateInvitation(ctx context.Context, invitation *models.FacultyInvitation) (int64, error) {
	query := `
		INSERT INTO faculty_invitations (college_id, email, token, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		invitation.CollegeID, invitation.Email, invitation.Token,
		invitation.Status, time.Now(),
	).Scan(&invitation.ID)
	if err != nil {
		return 0, fmt.Errorf("error creating invitation: %w", err)
	}
	return invitation.ID, nil
}

// GetInvitationByID retrieves an invitation by ID
func (r *FacultyRepository) GetInvitationByID(ctx context.Context, id int64) (*models.FacultyInvitation, error) {
	query := `
		SELECT id, college_id, email, token, status, created_at
		FROM faculty_invitations
		WHERE id = $1
	`

	var inv models.FacultyInvitation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&inv.ID,
		&inv.CollegeID,
		&inv.Email,
		&inv.Token,
		&inv.Status,
		&inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("error retrieving invitation: %w", err)
	}
	return &inv, nil
}

// GetPendingInvitationsByEmail retrieves pending invitations addressed to
// an email, with the inviting college joined in.
func (r *FacultyRepository) GetPendingInvitationsByEmail(ctx context.Context, email string) ([]*models.FacultyInvitation, error) {
	query := `
		SELECT fi.id, fi.college_id, fi.email, fi.token, fi.status, fi.created_at, c.name
		FROM faculty_invitations fi
		JOIN colleges c ON c.id = fi.college_id
		WHERE LOWER(fi.email) = LOWER($1) AND fi.status = $2
		ORDER BY fi.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, email, models.InvitationPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []*models.FacultyInvitation
	for rows.Next() {
		var inv models.FacultyInvitation
		var collegeName string
		if err := rows.Scan(
			&inv.ID,
			&inv.CollegeID,
			&inv.Email,
			&inv.Token,
			&inv.Status,
			&inv.CreatedAt,
			&collegeName,
		); err != nil {
			return nil, err
		}
		inv.College = &models.College{ID: inv.CollegeID, Name: collegeName}
		invitations = append(invitations, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return invitations, nil
}

// PendingInvitationExists checks for an unresolved invitation for the same
// (college, email) pair.
func (r *FacultyRepository) PendingInvitationExists(ctx context.Context, collegeID int64, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM faculty_invitations
			WHERE college_id = $1 AND LOWER(email) = LOWER($2) AND status = $3)`,
		collegeID, email, models.InvitationPending).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking invitation existence: %w", err)
	}
	return exists, nil
}

// ResolveInvitation sets the terminal status of a pending invitation.
// Returns ErrInvitationResolved if the row was already decided.
func (r *FacultyRepository) ResolveInvitation(ctx context.Context, id int64, status models.InvitationStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE faculty_invitations SET status = $1
		WHERE id = $2 AND status = $3`,
		status, id, models.InvitationPending)
	if err != nil {
		return fmt.Errorf("error resolving invitation: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInvitationResolved
	}
	return nil
}
