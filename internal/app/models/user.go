package models

import "fmt"

// Role is the closed set of PandaCare account roles. Anything outside this
// set fails ParseRole, which in turn makes a token undecodable.
type Role string

const (
	RolePacilian  Role = "PACILIAN"
	RoleCaregiver Role = "CAREGIVER"
)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RolePacilian:
		return RolePacilian, nil
	case RoleCaregiver:
		return RoleCaregiver, nil
	default:
		return "", fmt.Errorf("unknown role: %q", value)
	}
}

// UserData is the identity the gateway derives from token claims. It is
// rebuilt from the token on every read and never stored on its own.
type UserData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}
