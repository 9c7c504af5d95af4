package models

type Role string

const (
	RoleCustomer Role = "customer"
	RoleBarber   Role = "barber"
)

// User is the cached profile shape held in the session. IDs are opaque
// strings in the application layer even though the backend uses
// numeric ids.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Role   Role   `json:"role"`
	ShopID string `json:"shopId,omitempty"`
}

// Identity is the /me response in application shape.
type Identity struct {
	ID         string
	Role       Role
	HasProfile bool
}
