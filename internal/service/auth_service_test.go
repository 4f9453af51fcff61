package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/pet-adoption-service/internal/config"
	"github.com/spec-kit/pet-adoption-service/internal/domain"
	apperrors "github.com/spec-kit/pet-adoption-service/pkg/util"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) MarkEmailVerified(_ context.Context, id string) error {
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.EmailVerified = true
	return nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(r.users), nil
}

func (r *fakeUserRepo) CountRegisteredSince(_ context.Context, since time.Time) (int, error) {
	count := 0
	for _, user := range r.users {
		if !user.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) ListRecent(_ context.Context, limit int) ([]domain.User, error) {
	var result []domain.User
	for _, user := range r.users {
		result = append(result, *user)
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func newTestAuthService() (*AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            bcrypt.MinCost,
	}}
	return NewAuthService(cfg, AuthDependencies{UserRepo: users}), users
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:     "Ana Silva",
		Email:    "Ana@Example.com",
		Password: "hunter22",
		Phone:    "555-0101",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	user, token, exp, err := svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Errorf("email = %s, want lowercase", user.Email)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("role = %s, want user", user.Role)
	}
	if user.PasswordHash == "hunter22" {
		t.Error("password stored in plaintext")
	}
	if token == "" || !exp.After(time.Now()) {
		t.Error("registration must return a live token")
	}

	logged, token, _, err := svc.Login(ctx, "ANA@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != user.ID || token == "" {
		t.Error("login must return the registered user and a token")
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token subject = %s, want %s", claims.UserID, user.ID)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, _, _, err := svc.Register(ctx, validRegisterInput())
	if apperrors.ToDomainError(err).Code != "CONFLICT" {
		t.Errorf("code = %s, want CONFLICT", apperrors.ToDomainError(err).Code)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	input := validRegisterInput()
	input.Password = "abc"

	_, _, _, err := svc.Register(context.Background(), input)
	if apperrors.ToDomainError(err).Code != "VALIDATION_FAILED" {
		t.Errorf("code = %s, want VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, _, err := svc.Login(ctx, "ana@example.com", "wrong")
	if apperrors.ToDomainError(err).Code != "UNAUTHORIZED" {
		t.Errorf("wrong password: code = %s, want UNAUTHORIZED", apperrors.ToDomainError(err).Code)
	}

	_, _, _, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	if apperrors.ToDomainError(err).Code != "UNAUTHORIZED" {
		t.Errorf("unknown email: code = %s, want UNAUTHORIZED", apperrors.ToDomainError(err).Code)
	}
}
