package http

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const profileContextKey = "profile"

// DefaultTokenTTL is the lifetime of tokens issued by SignToken callers that
// do not choose one.
const DefaultTokenTTL = 12 * time.Hour

// TokenClaims are the claims read from the identity provider's token.
// The role is never taken from the token.
type TokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens and resolves the caller's profile.
type Authenticator struct {
	secret   []byte
	resolver Handler[commands.ResolveProfileCommand, user.Profile]
}

func NewAuthenticator(secret string, resolver Handler[commands.ResolveProfileCommand, user.Profile]) *Authenticator {
	return &Authenticator{secret: []byte(secret), resolver: resolver}
}

// Middleware authenticates the Authorization header and stores the profile
// in the echo context.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") {
				return ErrUnauthorized
			}

			profile, err := a.Authenticate(c.Request().Context(), strings.TrimSpace(token))
			if err != nil {
				return err
			}

			c.Set(profileContextKey, profile)
			return next(c)
		}
	}
}

// Authenticate turns a raw token into the caller's profile. Token problems
// are reported as ErrUnauthorized; resolution failures are returned as is.
func (a *Authenticator) Authenticate(ctx context.Context, raw string) (user.Profile, error) {
	if raw == "" {
		return user.Profile{}, ErrUnauthorized
	}

	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return user.Profile{}, ErrUnauthorized.WithInternal(err)
	}

	userID, err := kernel.IDFromString(claims.Subject)
	if err != nil {
		return user.Profile{}, ErrUnauthorized.WithInternal(fmt.Errorf("token subject: %w", err))
	}

	cmd, err := commands.NewResolveProfileCommand(userID, claims.Email, claims.Name)
	if err != nil {
		return user.Profile{}, err
	}
	return a.resolver.Handle(ctx, cmd)
}

// SignToken issues a token for the given subject that expires after ttl,
// for the token command and tests.
func SignToken(secret, subject, email, name string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}

	now := time.Now()
	claims := TokenClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func profileFrom(c echo.Context) user.Profile {
	profile, _ := c.Get(profileContextKey).(user.Profile)
	return profile
}
