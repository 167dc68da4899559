package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	jwtConfig    *config.JWTConfig
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.jwtConfig = &config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: time.Hour,
	}
	s.tokenService = services.NewTokenService(s.jwtConfig)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) serve(authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/upcoming-payments", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(RequireAuth(s.tokenService)(next)(c))
	return rec
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	token, _, err := s.tokenService.GenerateAccessToken("household-42")
	s.Require().NoError(err)

	var seen interface{}
	rec := s.serve("Bearer "+token, func(c echo.Context) error {
		seen = c.Get(UserIDContextKey)
		return okHandler(c)
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("household-42", seen)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_Rejections() {
	expiredConfig := *s.jwtConfig
	expiredConfig.AccessTokenDuration = -time.Minute
	expired, _, err := services.NewTokenService(&expiredConfig).GenerateAccessToken("household-42")
	s.Require().NoError(err)

	otherKey, otherPub, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	foreign, _, err := services.NewTokenService(&config.JWTConfig{
		PrivateKey:          otherKey,
		PublicKey:           otherPub,
		Issuer:              "test-issuer",
		AccessTokenDuration: time.Hour,
	}).GenerateAccessToken("household-42")
	s.Require().NoError(err)

	testCases := []struct {
		name   string
		header string
		code   string
	}{
		{"missing header", "", "AUTH_001"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "AUTH_003"},
		{"garbage token", "Bearer not-a-jwt", "AUTH_003"},
		{"expired token", "Bearer " + expired, "AUTH_002"},
		{"foreign signing key", "Bearer " + foreign, "AUTH_003"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.serve(tc.header, func(c echo.Context) error {
				s.Fail("next handler must not run")
				return nil
			})

			s.Equal(http.StatusUnauthorized, rec.Code)
			s.Contains(rec.Body.String(), tc.code)
		})
	}
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredFromMock() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	mockTokens := service_mocks.NewMockTokenServiceInterface(ctrl)
	mockTokens.EXPECT().ExtractTokenFromHeader("Bearer abc").Return("abc", nil)
	mockTokens.EXPECT().ValidateAccessToken("abc").Return(nil, services.ErrExpiredToken)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer abc")
	rec := httptest.NewRecorder()

	err := RequireAuth(mockTokens)(okHandler)(s.e.NewContext(req, rec))
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ClaimsCarryUserID() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	mockTokens := service_mocks.NewMockTokenServiceInterface(ctrl)
	mockTokens.EXPECT().ExtractTokenFromHeader(gomock.Any()).Return("abc", nil)
	mockTokens.EXPECT().ValidateAccessToken("abc").Return(&models.CustomClaims{UserID: "u-1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer abc")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(RequireAuth(mockTokens)(okHandler)(c))
	s.Equal("u-1", c.Get(UserIDContextKey))
}
