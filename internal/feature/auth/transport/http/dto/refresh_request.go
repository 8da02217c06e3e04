package dto

// RefreshReq exchanges a token pair for a new one. AccessToken may be
// expired; it is only used to bind the refresh token to its subject.
type RefreshReq struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
