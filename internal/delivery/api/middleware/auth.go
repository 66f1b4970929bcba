package middleware

import (
	"log/slog"
	"strings"

	"agrimatch/internal/delivery/api/response"
	deliverycontext "agrimatch/internal/delivery/context"
	"agrimatch/internal/domain/entity"
	"agrimatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies bearer tokens and enforces caller roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			logger.Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired access token")
		}

		caller := deliverycontext.Caller{
			PartyID: claims.UserID,
			Roles:   entity.RolesFromStrings(claims.Roles),
		}
		ctx = deliverycontext.WithCaller(ctx, caller)
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("party_id", caller.PartyID.String())))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole checks that the caller holds the role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return m.RequireAnyRole(required)
}

// RequireAnyRole checks that the caller holds at least one of the roles.
func (m *AuthMiddleware) RequireAnyRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			for _, role := range allowed {
				if roles.Contains(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied: require "+joinRoles(allowed)+" role")
		}
	}
}

// GetUserID returns the authenticated caller id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	caller, ok := deliverycontext.GetCaller(c.Request().Context())

	return caller.PartyID, ok
}

// GetRoles returns the roles of the authenticated caller.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	caller, ok := deliverycontext.GetCaller(c.Request().Context())

	return caller.Roles, ok
}

func joinRoles(roles []entity.Role) string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, "'"+r.String()+"'")
	}

	return strings.Join(names, " or ")
}
