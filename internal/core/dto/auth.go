package dto

type SignInRequest struct {
	Role string `json:"role" binding:"required,oneof=EDITOR PROVIDER"`
}

type SignInResponse struct {
	Token string `json:"token"`
}
