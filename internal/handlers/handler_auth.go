package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
	portssvc "github.com/galeria-sm/stands_backend/internal/core/ports/services"
	"github.com/galeria-sm/stands_backend/internal/dto"
	"github.com/galeria-sm/stands_backend/internal/middleware"
	"github.com/galeria-sm/stands_backend/internal/platform/config"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.AppConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.AppConfig) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.Engine, cfg *config.AppConfig, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token, cfg)

	// Rate limit credential endpoints: 5 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/google", limitMiddleware, h.GoogleLogin)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
}

// issueTokens generates the access/refresh token pair, sets the refresh cookie
// and writes the login response.
func (h *AuthHandler) issueTokens(c *gin.Context, logger *slog.Logger, user *domain.User) {
	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	h.setRefreshCookie(c, user.UserID, refreshToken, refreshExpiry)

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        dto.ToUserResponse(user),
	})
}

// setRefreshCookie stores "userID:token" in an http-only cookie scoped to the
// auth endpoints, so the refresh token never reaches handler javascript.
func (h *AuthHandler) setRefreshCookie(c *gin.Context, userID, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		h.cfg.AuthConfig.RefreshTokenCookieName,
		userID+":"+token,
		maxAge,
		h.cfg.AuthConfig.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction,
		true,
	)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		h.cfg.AuthConfig.RefreshTokenCookieName,
		"",
		-1,
		h.cfg.AuthConfig.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction,
		true,
	)
}

// readRefreshCookie splits the refresh cookie back into user ID and raw token.
func (h *AuthHandler) readRefreshCookie(c *gin.Context) (userID, token string, ok bool) {
	value, err := c.Cookie(h.cfg.AuthConfig.RefreshTokenCookieName)
	if err != nil {
		return "", "", false
	}
	userID, token, found := strings.Cut(value, ":")
	if !found || userID == "" || token == "" {
		return "", "", false
	}
	return userID, token, true
}

// Login godoc
// @Summary User login
// @Description Authenticates a user by username/password and returns an access token. The refresh token is set as an http-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("Login failed", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}

	h.issueTokens(c, logger.With(slog.String("user_id", user.UserID)), user)
}

// GoogleLogin godoc
// @Summary Google sign-in
// @Description Verifies a Google ID token and signs in the user registered under the asserted email. Unknown emails are rejected; there is no auto-provisioning.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	email, err := h.tokenService.ValidateGoogleIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		logger.Warn("Google ID token rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google credentials"})
		return
	}

	user, err := h.userService.FindByEmail(c.Request.Context(), email)
	if err != nil {
		logger.Warn("Google sign-in for unregistered email", slog.String("email", email))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No account registered for this Google account"})
		return
	}

	h.issueTokens(c, logger.With(slog.String("user_id", user.UserID)), user)
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchanges the refresh token cookie for a new access/refresh token pair. The previous refresh token is rotated out.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, token, ok := h.readRefreshCookie(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Missing refresh token"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), userID, token)
	if err != nil {
		logger.Warn("Refresh token rejected", slog.String("user_id", userID))
		h.clearRefreshCookie(c)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	h.issueTokens(c, logger.With(slog.String("user_id", user.UserID)), user)
}

// Logout godoc
// @Summary Logout
// @Description Invalidates the stored refresh token and clears the cookie.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if userID, _, ok := h.readRefreshCookie(c); ok {
		if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
			logger.Warn("Failed to clear refresh token on logout", slog.String("user_id", userID), slog.String("error", err.Error()))
		}
	}
	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}
