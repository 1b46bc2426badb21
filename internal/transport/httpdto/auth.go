package httpdto

// RegisterRequest is used for POST /api/auth/register
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is returned after successful registration
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginRequest is used for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// IdentityDTO is the token-derived identity echoed by POST /api/auth/profile
type IdentityDTO struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// AuthProfileResponse wraps the authenticated identity
type AuthProfileResponse struct {
	User IdentityDTO `json:"user"`
}
