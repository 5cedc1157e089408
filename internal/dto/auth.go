package dto

import "time"

// LoginRequest defines the credentials for username/password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleSignInRequest carries a Google ID token obtained by the frontend.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// AuthResponse is returned after a successful login or token refresh. The
// refresh token itself travels in an HTTP-only cookie, not in the body.
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"` // Always "Bearer"
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}
