package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shop_backend/internal/feature/auth/domain/entity"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/platform/pagination"
	"shop_backend/internal/platform/validation"
	"shop_backend/internal/shared/role"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	maxPasswordLength = 72

	refreshTokenBytes = 32

	// dummyHash keeps login timing uniform for unknown emails.
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository abstracts user persistence.
// Interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create returns ErrEmailAlreadyExists when the unique index fires.
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	FindByRefreshTokenHash(ctx context.Context, hash string) (*entity.User, error)

	SetRefreshToken(ctx context.Context, userID uint, hash string, expiresAt time.Time) error
	// ReplaceRefreshToken swaps oldHash for newHash, returning
	// ErrInvalidRefreshToken when oldHash is no longer current.
	ReplaceRefreshToken(ctx context.Context, userID uint, oldHash, newHash string, expiresAt time.Time) error
	ClearRefreshToken(ctx context.Context, userID uint) error
	// UpdatePassword stores a new hash and revokes the refresh token.
	UpdatePassword(ctx context.Context, userID uint, hash string) error

	List(ctx context.Context) ([]entity.User, error)
	ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.User], error)
	Delete(ctx context.Context, id uint) error
}

// TokenIssuer signs access tokens and reads back expired ones during refresh.
type TokenIssuer interface {
	GenerateToken(id jwtmw.Identity) (string, time.Time, error)
	VerifyIgnoringExpiry(token string) (jwtmw.Identity, error)
}

// LoginLimiter throttles failed logins per email. It is optional.
type LoginLimiter interface {
	Allow(ctx context.Context, subject string) (bool, error)
	Fail(ctx context.Context, subject string) error
	Reset(ctx context.Context, subject string) error
}

// RegisterInput is the data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// Session is an authenticated user with fresh tokens.
type Session struct {
	User   *entity.User
	Tokens TokenPair
}

type authUsecase struct {
	users      UserRepository
	tokens     TokenIssuer
	limiter    LoginLimiter
	refreshTTL time.Duration
	hashCost   int
	now        func() time.Time
}

// NewAuthUsecase wires the auth flows. limiter may be nil.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, limiter LoginLimiter, refreshTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:      users,
		tokens:     tokens,
		limiter:    limiter,
		refreshTTL: refreshTTL,
		hashCost:   bcrypt.DefaultCost,
		now:        time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validatePassword(v *validation.Errors, field, password string) {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		v.Add(field, "must be between %d and %d characters", minPasswordLength, maxPasswordLength)
	}
}

func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func newRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Register creates a User-role account with a bcrypt-hashed password.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)

	var v validation.Errors
	v.Length("name", in.Name, 2, 100)
	v.Email("email", in.Email)
	validatePassword(&v, "password", in.Password)
	if err := v.Err(); err != nil {
		return nil, err
	}

	_, err := u.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, ErrEmailAlreadyExists
	case !errors.Is(err, ErrUserNotFound):
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: in.Name, Email: in.Email, Password: string(hashed), Role: role.User}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a token pair. bcrypt always runs so
// response time does not reveal whether the email exists.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)

	if u.limiter != nil {
		allowed, err := u.limiter.Allow(ctx, email)
		if err != nil {
			slog.Warn("login limiter unavailable", "error", err)
		} else if !allowed {
			return nil, ErrTooManyAttempts
		}
	}

	user, findErr := u.users.FindByEmail(ctx, email)
	passwordHash := dummyHash
	if findErr == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if findErr != nil && !errors.Is(findErr, ErrUserNotFound) {
		return nil, findErr
	}
	if findErr != nil || compareErr != nil {
		if u.limiter != nil {
			if err := u.limiter.Fail(ctx, email); err != nil {
				slog.Warn("failed to record login attempt", "error", err)
			}
		}
		return nil, ErrInvalidCredentials
	}

	tokens, refreshHash, err := u.issueTokens(user)
	if err != nil {
		return nil, err
	}
	if err := u.users.SetRefreshToken(ctx, user.ID, refreshHash, tokens.RefreshExpiresAt); err != nil {
		return nil, err
	}

	if u.limiter != nil {
		if err := u.limiter.Reset(ctx, email); err != nil {
			slog.Warn("failed to reset login attempts", "error", err)
		}
	}
	return &Session{User: user, Tokens: tokens}, nil
}

// Refresh exchanges a valid refresh token, optionally bound to the access
// token it was issued with, for a new pair. The old refresh token stops working.
func (u *authUsecase) Refresh(ctx context.Context, accessToken, refreshToken string) (*Session, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrInvalidRefreshToken
	}
	oldHash := hashRefreshToken(refreshToken)

	user, err := u.users.FindByRefreshTokenHash(ctx, oldHash)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidRefreshToken
	}
	if err != nil {
		return nil, err
	}
	if !user.HasValidRefreshToken(u.now()) {
		return nil, ErrInvalidRefreshToken
	}

	if accessToken != "" {
		id, err := u.tokens.VerifyIgnoringExpiry(accessToken)
		if err != nil || id.UserID != user.ID {
			return nil, ErrInvalidRefreshToken
		}
	}

	tokens, newHash, err := u.issueTokens(user)
	if err != nil {
		return nil, err
	}
	if err := u.users.ReplaceRefreshToken(ctx, user.ID, oldHash, newHash, tokens.RefreshExpiresAt); err != nil {
		return nil, err
	}
	return &Session{User: user, Tokens: tokens}, nil
}

// Logout revokes the user's refresh token.
func (u *authUsecase) Logout(ctx context.Context, userID uint) error {
	return u.users.ClearRefreshToken(ctx, userID)
}

// UpdatePassword checks the current password, stores the new hash and
// revokes the refresh token so other sessions must log in again.
func (u *authUsecase) UpdatePassword(ctx context.Context, userID uint, current, next string) error {
	var v validation.Errors
	v.Required("current_password", current)
	validatePassword(&v, "new_password", next)
	if err := v.Err(); err != nil {
		return err
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)) != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), u.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return u.users.UpdatePassword(ctx, userID, string(hashed))
}

func (u *authUsecase) issueTokens(user *entity.User) (TokenPair, string, error) {
	access, accessExp, err := u.tokens.GenerateToken(jwtmw.Identity{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return TokenPair{}, "", fmt.Errorf("failed to generate token: %w", err)
	}
	refresh, err := newRefreshToken()
	if err != nil {
		return TokenPair{}, "", err
	}
	return TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: u.now().Add(u.refreshTTL),
	}, hashRefreshToken(refresh), nil
}
