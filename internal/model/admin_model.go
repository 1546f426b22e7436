package model

import "time"

const RoleSuperAdmin = "super-admin"

// Admin is an administrator account. Password holds the bcrypt hash and is
// only populated by the login lookup; every other read excludes it.
type Admin struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // never JSON-encode
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminPublic is the sanitized projection returned on the wire.
type AdminPublic struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (a *Admin) Public() AdminPublic {
	return AdminPublic{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}
