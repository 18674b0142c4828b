package model

import "fmt"

// Role is a member's position in the access hierarchy. Stored as its
// uppercase name; comparisons go through the level table so SUPERADMIN
// passes every gate ADMIN passes.
type Role string

const (
	RoleSuperadmin Role = "SUPERADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleModerator  Role = "MODERATOR"
	RoleUser       Role = "USER"
)

var roleLevels = map[Role]int{
	RoleUser:       1,
	RoleModerator:  2,
	RoleAdmin:      3,
	RoleSuperadmin: 4,
}

// ParseRole maps a raw string onto a known role.
func ParseRole(raw string) (Role, error) {
	role := Role(raw)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", raw)
	}
	return role, nil
}

// Valid reports whether the role is one of the known four.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// Level returns the role's rank in the hierarchy, 0 for unknown roles.
func (r Role) Level() int {
	return roleLevels[r]
}

// AtLeast reports whether the role ranks at or above min. Unknown
// roles never pass.
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && r.Level() >= min.Level()
}

func (r Role) String() string {
	return string(r)
}
