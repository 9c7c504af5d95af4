package dto

// Wire shapes for /register, /login and /me. The backend speaks
// snake_case with numeric ids.

type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

type MeResponse struct {
	ID         int64  `json:"id"`
	Role       string `json:"role"`
	HasProfile bool   `json:"has_profile"`
}
