package dto

// CreateUserRequest carries a new user account.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=admin staff"`
}

// UpdateUserRequest is a partial update; nil fields keep the stored value.
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=64"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	FullName *string `json:"fullName"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin staff"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned after a successful login.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"43200"`
}
