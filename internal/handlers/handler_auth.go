package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	portssvc "github.com/DanielEsLoH/StockFlow-sub014/internal/core/ports/services"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/dto"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/middleware"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/platform/config"
	"github.com/DanielEsLoH/StockFlow-sub014/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles login, token refresh and logout.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	oauthService portssvc.GoogleOAuthSvcFacade
	cfg          *config.Config
}

func newAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:  services.User,
		tokenService: services.Token,
		oauthService: services.GoogleOAuth,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login and
// Google sign-in are rate limited by client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(services, cfg)
	limit := middleware.RateLimit(loginLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", limit, h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
		auth.POST("/google", limit, h.googleSignIn)
	}

	registerGoogleOAuthRoutes(auth, h)
}

// register godoc
// @Summary Register a new user
// @Description Creates a user account with username/password credentials.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.CreateUserRequest true "User registration info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Username taken"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	newUser, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	logger.Info("User registered", slog.String("user_id", newUser.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(newUser))
}

// login godoc
// @Summary User login
// @Description Authenticates with username/password. Returns an access token; the refresh token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 429 {object} map[string]string "Too many attempts"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	h.issueTokens(c, user)
}

// refresh godoc
// @Summary Refresh the access token
// @Description Exchanges the refresh token cookie for a fresh access token. Rotates the refresh token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string "Missing, invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, rawToken, ok := h.readRefreshCookie(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing refresh token"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), userID, rawToken)
	if err != nil {
		logger.Warn("Refresh token validation failed", slog.String("error", err.Error()))
		h.clearRefreshCookie(c)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	h.issueTokens(c, user)
}

// logout godoc
// @Summary Log out
// @Description Clears the stored refresh token and the cookie.
// @Tags auth
// @Produce json
// @Success 204 "Logged out"
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	if userID, _, ok := h.readRefreshCookie(c); ok {
		if err := h.userService.ClearUserRefreshToken(c.Request.Context(), userID); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to clear refresh token on logout", slog.String("error", err.Error()))
		}
	}
	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

// googleSignIn godoc
// @Summary Sign in with a Google ID token
// @Description Verifies an ID token obtained by the frontend and signs the user in, provisioning an account on first use.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.GoogleSignInRequest true "Google ID token"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string "Token verification failed"
// @Router /auth/google [post]
func (h *authHandler) googleSignIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	payload, err := h.oauthService.ValidateGoogleIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		logger.Warn("Google ID token verification failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google token verification failed"})
		return
	}

	info := googleInfoFromPayload(payload.Subject, payload.Claims)
	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), info)
	if err != nil {
		respondError(c, err, "Failed to sign in with Google")
		return
	}

	h.issueTokens(c, user)
}

// establishSession generates the access and refresh tokens, persists the
// refresh token hash and sets the cookie.
func (h *authHandler) establishSession(c *gin.Context, user *domain.User) (*dto.AuthResponse, error) {
	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		return nil, err
	}

	rawRefresh, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		return nil, err
	}

	if err := h.userService.UpdateUserRefreshToken(c.Request.Context(), user.UserID, utils.HashRefreshToken(rawRefresh), refreshExpiry); err != nil {
		return nil, err
	}

	h.setRefreshCookie(c, user.UserID, rawRefresh, int(h.cfg.RefreshTokenExpiryDuration.Seconds()))

	return &dto.AuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        dto.ToUserResponse(user),
	}, nil
}

// issueTokens establishes a session and writes the auth response.
func (h *authHandler) issueTokens(c *gin.Context, user *domain.User) {
	resp, err := h.establishSession(c, user)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to establish session", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// The refresh cookie value is "<userID>.<rawToken>" so the refresh endpoint
// can locate the stored hash without a separate identifier.
func (h *authHandler) setRefreshCookie(c *gin.Context, userID, rawToken string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, userID+"."+rawToken, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func (h *authHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func (h *authHandler) readRefreshCookie(c *gin.Context) (userID, rawToken string, ok bool) {
	value, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || value == "" {
		return "", "", false
	}
	parts := strings.SplitN(value, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// googleInfoFromPayload maps verified ID-token claims onto the userinfo
// shape shared with the redirect flow.
func googleInfoFromPayload(subject string, claims map[string]any) *domain.GoogleUserInfo {
	info := &domain.GoogleUserInfo{ID: subject}
	if email, ok := claims["email"].(string); ok {
		info.Email = email
	}
	if verified, ok := claims["email_verified"].(bool); ok {
		info.VerifiedEmail = verified
	}
	if name, ok := claims["name"].(string); ok {
		info.Name = name
	}
	if picture, ok := claims["picture"].(string); ok {
		info.Picture = picture
	}
	return info
}
