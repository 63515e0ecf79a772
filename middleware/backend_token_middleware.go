package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"receipt/config"
	"receipt/utils/logger"
)

const (
	backendTokenHeader = "X-Alt-Backend-Token"
	userIDHeader       = "X-Alt-User-Id"
	userIDContextKey   = "receiptUserID"
)

var (
	errMissingToken    = errors.New("missing backend token")
	errInvalidToken    = errors.New("invalid backend token")
	errInvalidIssuer   = errors.New("invalid issuer")
	errInvalidAudience = errors.New("invalid audience")
	errMissingSubject  = errors.New("missing subject")
)

// BackendClaims are the claims of the token minted by the auth hub.
type BackendClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Sid   string `json:"sid"`
	jwt.RegisteredClaims
}

// BackendTokenMiddleware authenticates requests forwarded by the auth hub.
type BackendTokenMiddleware struct {
	logger   *slog.Logger
	secret   []byte
	issuer   string
	audience string
}

func NewBackendTokenMiddleware(logger *slog.Logger, cfg config.AuthConfig) *BackendTokenMiddleware {
	secret := []byte(cfg.BackendTokenSecret)
	if len(secret) == 0 && logger != nil {
		logger.Warn("BACKEND_TOKEN_SECRET not set, trusting X-Alt-User-Id header")
	}
	return &BackendTokenMiddleware{
		logger:   logger,
		secret:   secret,
		issuer:   cfg.BackendTokenIssuer,
		audience: cfg.BackendTokenAudience,
	}
}

// RequireUser resolves the user of the request or answers 401.
func (m *BackendTokenMiddleware) RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := m.resolveUser(c)
			if err != nil {
				if m.logger != nil {
					m.logger.WarnContext(c.Request().Context(), "Backend token rejected", "error", err)
				}
				switch {
				case errors.Is(err, errMissingToken):
					return echo.NewHTTPError(http.StatusUnauthorized, "missing backend token")
				case errors.Is(err, errInvalidIssuer), errors.Is(err, errInvalidAudience):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token issuer or audience")
				default:
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid backend token")
				}
			}

			c.Set(userIDContextKey, userID)
			ctx := logger.WithUserID(c.Request().Context(), userID)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func (m *BackendTokenMiddleware) resolveUser(c echo.Context) (string, error) {
	if len(m.secret) == 0 {
		userID := c.Request().Header.Get(userIDHeader)
		if userID == "" {
			return "", errMissingToken
		}
		return userID, nil
	}

	tokenStr := c.Request().Header.Get(backendTokenHeader)
	if tokenStr == "" {
		return "", errMissingToken
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &BackendClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", errInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*BackendClaims)
	if !ok || !parsed.Valid {
		return "", errInvalidToken
	}
	if claims.Issuer != m.issuer {
		return "", errInvalidIssuer
	}
	if !slices.Contains(claims.Audience, m.audience) {
		return "", errInvalidAudience
	}
	if claims.Subject == "" {
		return "", errMissingSubject
	}

	if headerUserID := c.Request().Header.Get(userIDHeader); headerUserID != "" && headerUserID != claims.Subject {
		return "", fmt.Errorf("%w: user id mismatch", errInvalidToken)
	}
	return claims.Subject, nil
}

// UserID returns the authenticated user of the request.
func UserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(userIDContextKey).(string)
	return userID, ok && userID != ""
}

// SetUserID attaches an authenticated user to the context.
func SetUserID(c echo.Context, userID string) {
	c.Set(userIDContextKey, userID)
}
