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

// IStudentRepository defines database operations for student profiles
type IStudentRepository interface {
	GetProfileByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error)
	UpsertProfile(ctx context.Context, profile *models.StudentProfile) error
	LinkCollege(ctx context.Context, tx pgx.Tx, profileID, collegeID int64) error
}

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// GetProfileByUserID retrieves the student profile of a user
func (r *StudentRepository) GetProfileByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	query := `
		SELECT id, user_id, college_id, entrance_exam, exam_score, category, stream, is_verified
		FROM student_profiles
		WHERE user_id = $1
	`

	var p models.StudentProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.CollegeID,
		&p.EntranceExam,
		&p.ExamScore,
		&p.Category,
		&p.Stream,
		&p.IsVerified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return &p, nil
}

// UpsertProfile inserts or replaces the one-to-one student profile.
// College link and verification flag are managed separately by LinkCollege.
func (r *StudentRepository) UpsertProfile(ctx context.Context, profile *models.StudentProfile) error {
	query := `
		INSERT INTO student_profiles (user_id, entrance_exam, exam_score, category, stream)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET entrance_exam = EXCLUDED.entrance_exam, exam_score = EXCLUDED.exam_score,
			category = EXCLUDED.category, stream = EXCLUDED.stream
		RETURNING id, college_id, is_verified
	`

	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.EntranceExam, profile.ExamScore,
		profile.Category, profile.Stream,
	).Scan(&profile.ID, &profile.CollegeID, &profile.IsVerified)
	if err != nil {
		return fmt.Errorf("error upserting student profile: %w", err)
	}
	return nil
}

// LinkCollege sets the verified college reference of a profile. It runs
// inside the caller's transaction so the domain lookup and the profile
// mutation commit together.
func (r *StudentRepository) LinkCollege(ctx context.Context, tx pgx.Tx, profileID, collegeID int64) error {
	cmdTag, err := tx.Exec(ctx, `
		UPDATE student_profiles SET college_id = $1, is_verified = TRUE
		WHERE id = $2`,
		collegeID, profileID)
	if err != nil {
		return fmt.Errorf("error linking college to student profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentProfileNotFound
	}
	return nil
}
