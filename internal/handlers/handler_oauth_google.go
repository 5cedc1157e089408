package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/middleware"
	"github.com/gin-gonic/gin"
)

const oauthStateCookieName = "oauth_state"

// registerGoogleOAuthRoutes sets up the server-side Google redirect flow.
// The frontend-driven flow posts an ID token to /auth/google instead.
func registerGoogleOAuthRoutes(auth *gin.RouterGroup, h *authHandler) {
	google := auth.Group("/google")
	{
		google.GET("/login", h.googleLogin)
		google.GET("/callback", h.googleCallback)
	}
}

// googleLogin godoc
// @Summary Start the Google OAuth redirect flow
// @Description Redirects the browser to Google's consent screen with a CSRF state cookie.
// @Tags auth
// @Success 307 "Redirect to Google"
// @Router /auth/google/login [get]
func (h *authHandler) googleLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.oauthService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start Google login"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, state, 300, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// googleCallback godoc
// @Summary Google OAuth callback
// @Description Verifies the state cookie, exchanges the authorization code, signs the user in and redirects to the frontend with an access token.
// @Tags auth
// @Success 307 "Redirect to frontend"
// @Failure 400 {object} map[string]string "State mismatch or missing code"
// @Failure 401 {object} map[string]string "Token exchange failed"
// @Router /auth/google/callback [get]
func (h *authHandler) googleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stateCookie, err := c.Cookie(oauthStateCookieName)
	if err != nil || stateCookie == "" || stateCookie != c.Query("state") {
		logger.Warn("OAuth state mismatch on Google callback")
		c.JSON(http.StatusBadRequest, gin.H{"error": "OAuth state mismatch"})
		return
	}
	c.SetCookie(oauthStateCookieName, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code missing"})
		return
	}

	token, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), code)
	if err != nil {
		logger.Warn("Failed to exchange Google authorization code", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to exchange authorization code"})
		return
	}

	info, err := h.oauthService.GetUserInfo(c.Request.Context(), token)
	if err != nil {
		logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to fetch Google profile"})
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), info)
	if err != nil {
		respondError(c, err, "Failed to sign in with Google")
		return
	}

	resp, err := h.establishSession(c, user)
	if err != nil {
		logger.Error("Failed to establish session after Google login", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	redirect := h.cfg.FrontendBaseURL + "/auth/callback?token=" + url.QueryEscape(resp.AccessToken)
	c.Redirect(http.StatusTemporaryRedirect, redirect)
}
