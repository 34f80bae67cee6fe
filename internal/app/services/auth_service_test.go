package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/app/models/dto"
	"github.com/vallabh/collegehub/internal/pkg/apperrors"
	pkgAuth "github.com/vallabh/collegehub/internal/pkg/auth"
)

func newAuthServiceForTest(users *fakeUserRepo) AuthService {
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "collegehub.test",
	})
	return NewAuthService(users, jwtService, zerolog.Nop())
}

func newRegisterRequest(email string, role models.RoleType) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:    email,
		Password: "strongpass123",
		Name:     "Asha Rao",
		RoleType: role,
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users)

	resp, err := svc.Register(context.Background(), newRegisterRequest("asha@iitb.ac.in", models.RoleStudent))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, "asha@iitb.ac.in", resp.User.Email)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users)

	resp, err := svc.Register(context.Background(), newRegisterRequest("  Asha@IITB.ac.in ", models.RoleStudent))
	require.NoError(t, err)
	assert.Equal(t, "asha@iitb.ac.in", resp.User.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users)

	_, err := svc.Register(context.Background(), newRegisterRequest("asha@iitb.ac.in", models.RoleStudent))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), newRegisterRequest("asha@iitb.ac.in", models.RoleInstitute))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterDuplicateEmailRace(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users)

	// A concurrent insert past the existence check loses on the unique
	// constraint, which maps back to the same domain error
	users.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	_, err := svc.Register(context.Background(), newRegisterRequest("asha@iitb.ac.in", models.RoleStudent))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users)

	_, err := svc.Register(context.Background(), newRegisterRequest("asha@iitb.ac.in", models.RoleType("ADMIN")))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users)

	req := newRegisterRequest("asha@iitb.ac.in", models.RoleStudent)
	req.Password = "short"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users)

	_, err := svc.Register(context.Background(), newRegisterRequest("asha@iitb.ac.in", models.RoleStudent))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "asha@iitb.ac.in", Password: "wrongpass123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users)

	// Unknown email and bad password are indistinguishable to the caller
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@iitb.ac.in", Password: "whatever123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginRoundTrip(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthServiceForTest(users)

	_, err := svc.Register(context.Background(), newRegisterRequest("asha@iitb.ac.in", models.RoleFaculty))
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "asha@iitb.ac.in", Password: "strongpass123"})
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleFaculty), resp.User.RoleType)
}
