//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/api"
	resdto "github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/handler/dto/response"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/cookie"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/usecase"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/common/httptest"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/common/testutil"
	usecasemock "github.com/Vetlyst2025/HPVC-Boarding-Calendar/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *usecasemock.MockAuthUseCase
	handler  *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth, config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/status", s.handler.Status)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]any{"password": "correct horse battery"}
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	s.Run("success: returns the token and sets the session cookie", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), "correct horse battery").
			Return(&usecase.LoginResult{AccessToken: "staff-token", ExpiresAt: expiresAt}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("staff-token", response.AccessToken)
		s.True(expiresAt.Equal(response.ExpiresAt))

		session := httptest.ExtractCookie(rec, cookie.StaffSessionCookieName)
		s.Require().NotNil(session)
		s.Equal("staff-token", session.Value)
		s.True(session.HttpOnly)
		s.Positive(session.MaxAge)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
			{name: "password wrong type", mutate: testutil.Field("password", 12345678), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error: 401 on wrong password", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid password")
		s.Nil(httptest.ExtractCookie(rec, cookie.StaffSessionCookieName))
	})

	s.Run("error: 404 when staff login is disabled", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrAuthDisabled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Staff login is not enabled")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	session := httptest.ExtractCookie(rec, cookie.StaffSessionCookieName)
	s.Require().NotNil(session)
	s.Empty(session.Value)
	s.Negative(session.MaxAge)
}

func (s *AuthHandlerTestSuite) TestStatus() {
	for _, enabled := range []bool{true, false} {
		s.mockAuth.EXPECT().Enabled().Return(enabled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/status", nil, "")

		var response resdto.AuthStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(enabled, response.Enabled)
	}
}
