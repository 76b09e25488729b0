package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"craftmarket-backend/internal/domains/user/model"
	"craftmarket-backend/internal/domains/user/repository"
	"craftmarket-backend/pkg/jwt"
)

func newUserService(t *testing.T) (ServiceInterface, *repository.MemoryUserRepository, *jwt.Manager) {
	t.Helper()

	repo := repository.NewMemoryUserRepository()
	jwtManager := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	return NewUserService(repo, jwtManager), repo, jwtManager
}

func registerRequest(email string) model.RegisterRequest {
	return model.RegisterRequest{
		Name:     "Mai Tran",
		Email:    email,
		Password: "secret123",
	}
}

func TestRegisterCreatesBuyer(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newUserService(t)

	dto, err := svc.Register(ctx, registerRequest("Mai@Example.com"))
	require.NoError(t, err)

	assert.Equal(t, model.RoleBuyer, dto.Role)
	// Emails are stored lowercase
	assert.Equal(t, "mai@example.com", dto.Email)

	stored, err := repo.GetByID(ctx, dto.ID)
	require.NoError(t, err)
	// Password is hashed, never stored raw
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUserService(t)

	_, err := svc.Register(ctx, registerRequest("mai@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest("MAI@example.com"))
	require.Error(t, err)

	var userErr *model.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, model.ErrCodeEmailTaken, userErr.Code)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUserService(t)

	req := registerRequest("mai@example.com")
	req.Password = "short"
	_, err := svc.Register(ctx, req)
	assert.Error(t, err)

	req = registerRequest("not-an-email")
	_, err = svc.Register(ctx, req)
	assert.Error(t, err)
}

func TestLoginIssuesTokens(t *testing.T) {
	ctx := context.Background()
	svc, _, jwtManager := newUserService(t)

	_, err := svc.Register(ctx, registerRequest("mai@example.com"))
	require.NoError(t, err)

	res, err := svc.Login(ctx, model.LoginRequest{
		Email:    "mai@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.NotEmpty(t, res.RefreshToken)

	claims, err := jwtManager.ValidateAccessToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID.String(), claims.UserID)
	assert.Equal(t, model.RoleBuyer, claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUserService(t)

	_, err := svc.Register(ctx, registerRequest("mai@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, model.LoginRequest{Email: "mai@example.com", Password: "wrong-password"})
	require.Error(t, err)
	var userErr *model.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, model.ErrCodeInvalidCredentials, userErr.Code)

	// An unknown email yields the same error as a wrong password
	_, err = svc.Login(ctx, model.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, model.ErrCodeInvalidCredentials, userErr.Code)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUserService(t)

	_, err := svc.Register(ctx, registerRequest("mai@example.com"))
	require.NoError(t, err)

	login, err := svc.Login(ctx, model.LoginRequest{Email: "mai@example.com", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)

	// An access token cannot be used as a refresh token
	_, err = svc.RefreshToken(ctx, login.AccessToken)
	assert.Error(t, err)
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newUserService(t)

	dto, err := svc.Register(ctx, registerRequest("mai@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateRole(ctx, dto.ID, model.RoleSeller))

	stored, err := repo.GetByID(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleSeller, stored.Role)

	assert.Error(t, svc.UpdateRole(ctx, dto.ID, "superuser"))
	assert.Error(t, svc.UpdateRole(ctx, uuid.New(), model.RoleSeller))
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUserService(t)

	dto, err := svc.Register(ctx, registerRequest("mai@example.com"))
	require.NoError(t, err)

	newName := "Mai T."
	updated, err := svc.UpdateProfile(ctx, dto.ID, model.UpdateProfileRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, dto.Email, updated.Email)
}
