package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/httperr"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/cookie"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	enabled        bool
}

const (
	ctxStaffSubjectKey = "staff_subject"
	ctxStaffRoleKey    = "staff_role"
)

var (
	errTokenRequired = errs.New("access token required")
	errTokenInvalid  = errs.New("invalid or expired token")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, authUseCase usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		enabled:        authUseCase.Enabled(),
	}
}

// RequireStaff lets every request through when no staff password is
// configured. Otherwise a valid staff token must come from the session
// cookie or an Authorization bearer header.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		subject, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errTokenInvalid), "Invalid or expired token", nil)
			return
		}

		c.Set(ctxStaffSubjectKey, subject)
		c.Set(ctxStaffRoleKey, role)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.StaffSession(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetStaffSubject returns the authenticated subject, if any.
func GetStaffSubject(c *gin.Context) (string, bool) {
	subject := c.GetString(ctxStaffSubjectKey)
	return subject, subject != ""
}
