package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/vallabh/collegehub/internal/app/models"
	appRepos "github.com/vallabh/collegehub/internal/app/repositories"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
	pkgAuth "github.com/vallabh/collegehub/internal/pkg/auth"
)

// Demo institute credentials used in local development environments only.
const (
	demoInstituteEmail    = "dean@demo.collegehub.app"
	demoInstitutePassword = "Demo1234!"
	demoCollegeDomain     = "demo.collegehub.app"
)

// CreateDefaultData creates a demo institute account with a registered
// college so a fresh database is immediately browsable. Records that
// already exist are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	collegeRepo := appRepos.NewCollegeRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (demo institute)...")

	exists, err := userRepo.EmailExists(ctx, demoInstituteEmail)
	if err != nil {
		return err
	}

	var instituteID int64
	if exists {
		user, err := userRepo.GetByEmail(ctx, demoInstituteEmail)
		if err != nil {
			return err
		}
		instituteID = user.ID
	} else {
		hashed, err := pkgAuth.HashPassword(demoInstitutePassword)
		if err != nil {
			return err
		}
		user := &appModels.User{
			Email:    demoInstituteEmail,
			Password: hashed,
			Name:     "Demo Institute",
			RoleType: appModels.RoleInstitute,
		}
		instituteID, err = userRepo.Create(ctx, user)
		if err != nil {
			return err
		}
		lgr.Info().Str("email", demoInstituteEmail).Msg("Created demo institute user")
	}

	if instituteID == 0 {
		return errors.New("demo institute user could not be resolved")
	}

	if _, err := collegeRepo.GetByUserID(ctx, instituteID); err == nil {
		return nil // college already registered
	} else if !errors.Is(err, apperrors.ErrCollegeNotFound) {
		return err
	}

	website := "https://demo.collegehub.app"
	description := "Demo college created at startup for local development."
	college := &appModels.College{
		UserID:          instituteID,
		Name:            "Demo Institute of Technology",
		EstablishedYear: 1985,
		Accreditation:   "NAAC A",
		City:            "Pune",
		State:           "Maharashtra",
		ContactEmail:    demoInstituteEmail,
		Website:         &website,
		EmailDomain:     demoCollegeDomain,
		Description:     &description,
	}
	if _, err := collegeRepo.Create(ctx, college); err != nil {
		return err
	}
	lgr.Info().Str("domain", demoCollegeDomain).Msg("Created demo college")

	return nil
}
