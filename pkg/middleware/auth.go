package middleware

import (
	"context"
	"errors"
	"strings"

	"campshop/pkg/access"
	"campshop/pkg/errs"
	"campshop/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const TokenCookie = "token"

var errNotAuthorized = errs.Unauthorized("Not authorized to access this route")

// PrincipalResolver loads the principal a credential was issued to.
// A missing principal is reported as an errs NotFound error.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, id string) (*access.Principal, error)
}

// ExtractToken reads the bearer header first and falls back to the token cookie.
func ExtractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "none" {
		return cookie
	}
	return ""
}

// Authenticate verifies the request credential and stores the principal.
func Authenticate(tokens *jwt.Service, principals PrincipalResolver) Precondition {
	return func(c *gin.Context) error {
		token := ExtractToken(c)
		if token == "" {
			return errNotAuthorized
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			return errNotAuthorized.Wrap(err)
		}

		principal, err := principals.ResolvePrincipal(c.Request.Context(), claims.UserID)
		if err != nil {
			var e *errs.Error
			if errors.As(err, &e) && e.Kind == errs.KindNotFound {
				return errNotAuthorized.Wrap(err)
			}
			return errs.ServerError("Server Error").Wrap(err)
		}

		c.Set(PrincipalKey, principal)
		c.Set(UserIDKey, principal.ID)
		c.Set(UserRoleKey, string(principal.Role))
		return nil
	}
}

// RequireRole passes only principals whose role is in roles.
func RequireRole(roles ...access.Role) Precondition {
	return func(c *gin.Context) error {
		principal, ok := PrincipalFrom(c)
		if !ok {
			return errNotAuthorized
		}
		if !access.HasRole(principal, roles...) {
			return errs.Forbidden("User role %s is not authorized to access this route", principal.Role)
		}
		return nil
	}
}

func Protect(tokens *jwt.Service, principals PrincipalResolver) gin.HandlerFunc {
	return Guard(Authenticate(tokens, principals))
}

func Authorize(roles ...access.Role) gin.HandlerFunc {
	return Guard(RequireRole(roles...))
}

func PrincipalFrom(c *gin.Context) (*access.Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil, false
	}
	principal, ok := v.(*access.Principal)
	return principal, ok && principal != nil
}
