package cookie

import (
	"net/http"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const StaffSessionCookieName = "staff_session"

// SetStaffSession stores the staff access token in an HttpOnly cookie so
// the calendar page can call the API without handling the token itself.
func SetStaffSession(c *gin.Context, cfg config.CookieConfig, accessToken string, ttl time.Duration) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	c.SetCookie(StaffSessionCookieName, accessToken, int(ttl.Seconds()), "/", cfg.Domain, cfg.Secure, true)
}

func ClearStaffSession(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	c.SetCookie(StaffSessionCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

func StaffSession(c *gin.Context) string {
	token, _ := c.Cookie(StaffSessionCookieName)
	return token
}

func sameSiteMode(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
