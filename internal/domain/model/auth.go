package model

// LoginRequest carries operator credentials for the backend login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the backend reply to a successful login. Unmarshaling is
// case-insensitive, which also covers backend versions that send "Token".
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest carries the self-registration form fields.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
