// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// LoginReq is the body of POST /auth/login.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRes carries the token pair and a summary of the signed-in user.
type LoginRes struct {
	AccessToken      string  `json:"access_token"`
	RefreshToken     string  `json:"refresh_token"`
	TokenType        string  `json:"token_type"`
	ExpiresIn        int64   `json:"expires_in"`
	RefreshExpiresAt string  `json:"refresh_expires_at"`
	User             UserRes `json:"user"`
}
