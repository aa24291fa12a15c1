package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalContextKey = "dishly.principal"

var (
	ErrMissingPrincipal = errors.New("authentication required")
	ErrInvalidToken     = errors.New("invalid bearer token")
)

// Claims is the token payload issued by the identity provider. The subject
// carries the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// PrincipalMiddleware verifies an HS256 bearer token when one is present and
// stores the resulting principal on the context. Requests without a token
// pass through; handlers that need a caller reject them.
func PrincipalMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(ctx)
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, ErrInvalidToken.Error())
			}

			principal, err := ParsePrincipal(raw, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// ParsePrincipal verifies the token signature and expiry and maps its claims
// to a Principal.
func ParsePrincipal(raw string, secret []byte) (user.Principal, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return user.Principal{}, ErrInvalidToken
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	principal, err := user.NewPrincipal(id, role)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return principal, nil
}

func principalFrom(ctx echo.Context) (user.Principal, error) {
	principal, ok := ctx.Get(principalContextKey).(user.Principal)
	if !ok {
		return user.Principal{}, ErrMissingPrincipal
	}
	return principal, nil
}
