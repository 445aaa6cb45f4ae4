package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woofwoof-app/backend/internal/domain"
)

type fakeUserRepo struct {
	users  map[int]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]*domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyUsed
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateLocation(ctx context.Context, userID int, lat, lon float64, city string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Latitude = &lat
	u.Longitude = &lon
	u.City = &city
	return nil
}

func (r *fakeUserRepo) UpdatePlan(ctx context.Context, userID int, plan domain.PlanTier) error {
	return nil
}

const testSecret = "test-secret-which-is-long-enough-to-sign"

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testSecret, time.Hour)
	ctx := context.Background()

	token, err := uc.Register(ctx, &RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		FullName: "Alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)

	// New users start on the free plan.
	user, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.PlanCroquette, user.Plan)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	login, err := uc.Login(ctx, &LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testSecret, time.Hour)
	ctx := context.Background()

	req := &RegisterRequest{Email: "alice@example.com", Password: "secret123", FullName: "Alice"}
	_, err := uc.Register(ctx, req)
	require.NoError(t, err)

	_, err = uc.Register(ctx, req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyUsed)
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testSecret, time.Hour)
	ctx := context.Background()

	_, err := uc.Register(ctx, &RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		FullName: "Alice",
	})
	require.NoError(t, err)

	// Wrong password and unknown email report the same error.
	_, err = uc.Login(ctx, &LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestParseToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testSecret, time.Hour)
	ctx := context.Background()

	token, err := uc.Register(ctx, &RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		FullName: "Alice",
	})
	require.NoError(t, err)

	userID, err := uc.ParseToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, 1, userID)
}

func TestParseTokenRejectsBadSignature(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testSecret, time.Hour)
	other := NewUseCase(newFakeUserRepo(), "another-secret-also-long-enough-here", time.Hour)

	token, err := other.Register(context.Background(), &RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		FullName: "Alice",
	})
	require.NoError(t, err)

	_, err = uc.ParseToken(token.AccessToken)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testSecret, -time.Minute)

	token, err := uc.Register(context.Background(), &RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		FullName: "Alice",
	})
	require.NoError(t, err)

	_, err = uc.ParseToken(token.AccessToken)
	assert.Error(t, err)
}

func TestUpdateLocation(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testSecret, time.Hour)
	ctx := context.Background()

	_, err := uc.Register(ctx, &RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		FullName: "Alice",
	})
	require.NoError(t, err)

	err = uc.UpdateLocation(ctx, 1, &LocationUpdateRequest{Latitude: 48.85, Longitude: 2.35, City: "Paris"})
	require.NoError(t, err)

	user, err := uc.Me(ctx, 1)
	require.NoError(t, err)
	require.True(t, user.HasLocation())
	assert.Equal(t, "Paris", *user.City)
}
