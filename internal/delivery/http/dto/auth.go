package dto

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is optional; the refresh token may also come as a bearer
// token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type AuthResponse struct {
	User UserResponse `json:"user"`
	TokenResponse
}

func NewTokenResponse(access, refresh string) TokenResponse {
	return TokenResponse{AccessToken: access, RefreshToken: refresh, TokenType: "Bearer"}
}
