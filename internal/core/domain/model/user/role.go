package user

import (
	"fmt"

	"dishly/internal/pkg/errs"
)

// Role distinguishes the two kinds of platform users.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
)

// ParseRole maps the wire value to a Role. Older tokens carry "user" for
// customers, which is accepted as an alias.
func ParseRole(s string) (Role, error) {
	switch s {
	case string(RoleCustomer), "user":
		return RoleCustomer, nil
	case string(RoleVendor):
		return RoleVendor, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

func (r Role) String() string {
	return string(r)
}
