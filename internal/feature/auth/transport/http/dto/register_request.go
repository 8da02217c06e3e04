package dto

// RegisterReq is the body of POST /auth/register. Field rules are enforced
// by the usecase, not by binding tags.
type RegisterReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordReq is the body of PUT /auth/password.
type PasswordReq struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
