package api

import (
	"net/http"
	"time"

	reqdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/request"
	resdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/response"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/httperr"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/cookie"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookieCfg:   cfg.Cookie,
	}
}

// @Summary Staff login
// @Description Exchange the shared staff password for an access token. Also sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Password)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	cookie.SetStaffSession(c, h.cookieCfg, result.AccessToken, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
	})
}

// @Summary Staff logout
// @Description Clear the session cookie. Bearer tokens simply expire.
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearStaffSession(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Auth status
// @Description Whether staff login is required
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.AuthStatusResponse
// @Router /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.AuthStatusResponse{Enabled: h.authUseCase.Enabled()})
}
