package types

// RegisterRequest represents the request body for creating an identity. The
// profile metadata travels with it so the registration path can populate the
// initial student row.
type RegisterRequest struct {
	FullName        string   `json:"full_name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=6"`
	CollegeID       string   `json:"college_id"`
	GamePreferences []string `json:"game_preferences" binding:"required,min=1"`
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest carries the signed verification token sent by mail
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// UpdateProfileRequest is a partial student patch. Nil fields are left
// untouched.
type UpdateProfileRequest struct {
	FullName        *string   `json:"full_name,omitempty"`
	CollegeID       *string   `json:"college_id,omitempty"`
	GamePreferences *[]string `json:"game_preferences,omitempty"`
}
