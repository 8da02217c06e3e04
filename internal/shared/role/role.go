// Package role defines the closed set of user roles.
package role

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Role is a user's authorization level. The zero value is not a valid role.
type Role uint8

const (
	User Role = iota + 1
	Admin
	SuperAdmin
)

var names = map[Role]string{
	User:       "User",
	Admin:      "Admin",
	SuperAdmin: "SuperAdmin",
}

func (r Role) String() string {
	if s, ok := names[r]; ok {
		return s
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	_, ok := names[r]
	return ok
}

// IsAdmin reports whether r may perform administrative operations.
func (r Role) IsAdmin() bool {
	return r == Admin || r == SuperAdmin
}

// Parse converts a role name (case-insensitive) into a Role.
func Parse(s string) (Role, error) {
	for r, name := range names {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

// Value stores the role by name.
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", uint8(r))
	}
	return r.String(), nil
}

// Scan reads a role stored by name.
func (r *Role) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into role", src)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
