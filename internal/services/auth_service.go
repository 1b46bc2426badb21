package services

import (
	"context"
	"errors"
	"time"

	"astro-chat/config"
	"astro-chat/internal/domain/account"
	"astro-chat/internal/repository"
	astro_errors "astro-chat/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	accountRepo repository.AccountRepository
	jwtSecret   []byte
	accessTTL   time.Duration
}

func NewAuthService(accountRepo repository.AccountRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		jwtSecret:   []byte(cfg.JWTSecret),
		accessTTL:   time.Duration(cfg.JWTExpiryMin) * time.Minute,
	}
}

// Identity is the public subset of an account attached to a request
// after token verification.
type Identity struct {
	AccountID uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
}

type AccessClaims struct {
	AccountID string `json:"userId"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// Register stores a new account with a bcrypt hash of the password.
// Fails with ErrAlreadyExists when the email is taken; no side effect
// on failure.
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return astro_errors.ErrInvalidInput
	}
	if len(password) < 8 {
		return astro_errors.ErrInvalidInput
	}

	if _, err := s.accountRepo.GetByEmail(ctx, email); err == nil {
		return astro_errors.ErrAlreadyExists
	} else if !errors.Is(err, astro_errors.ErrNotFound) {
		return err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	return s.accountRepo.Create(ctx, &account.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Login verifies the credentials and issues a signed access token
// carrying the account id and email. Unknown email and bad password
// both come back as ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", astro_errors.ErrInvalidInput
	}

	a, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, astro_errors.ErrNotFound) {
			return "", astro_errors.ErrUnauthorized
		}
		return "", err
	}

	if err := comparePassword(a.PasswordHash, password); err != nil {
		return "", astro_errors.ErrUnauthorized
	}

	return s.newAccessToken(a)
}

// Validate resolves verified token claims back to a live account and
// returns the public identity subset. The auth middleware turns
// ErrNotFound into a 401.
func (s *AuthService) Validate(ctx context.Context, claims AccessClaims) (Identity, error) {
	accountID, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return Identity{}, astro_errors.ErrUnauthorized
	}

	a, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return Identity{}, err
	}

	return Identity{AccountID: a.ID, Email: a.Email}, nil
}

func (s *AuthService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, astro_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, astro_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return AccessClaims{}, astro_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, astro_errors.ErrUnauthorized
	}

	return *claims, nil
}

func (s *AuthService) newAccessToken(a account.Account) (string, error) {
	now := time.Now()

	claims := AccessClaims{
		AccountID: a.ID.String(),
		Email:     a.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, astro_errors.ErrInvalidInput):
		return 400
	case errors.Is(err, astro_errors.ErrUnauthorized):
		return 401
	case errors.Is(err, astro_errors.ErrForbidden):
		return 403
	case errors.Is(err, astro_errors.ErrNotFound):
		return 404
	case errors.Is(err, astro_errors.ErrAlreadyExists), errors.Is(err, astro_errors.ErrConflict):
		return 409
	case errors.Is(err, astro_errors.ErrRateLimited):
		return 429
	default:
		return 500
	}
}

type ctxKey string

var identityKey ctxKey = "identity"

func WithIdentityContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	value := ctx.Value(identityKey)
	if value == nil {
		return Identity{}, false
	}
	id, ok := value.(Identity)
	return id, ok
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
