package login

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role"`
	Token   string `json:"token"`
}
