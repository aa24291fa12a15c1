package user

import (
	"errors"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/pkg/errs"
)

// Principal is the authenticated caller.
type Principal struct {
	ID   kernel.UUID
	Role Role
}

// NewPrincipal validates the identity pair received from the identity provider.
func NewPrincipal(id kernel.UUID, role Role) (Principal, error) {
	var roleErr error
	if role != RoleCustomer && role != RoleVendor {
		roleErr = errs.NewValueIsInvalidError("role")
	}
	if err := errors.Join(id.Validate(), roleErr); err != nil {
		return Principal{}, err
	}
	return Principal{ID: id, Role: role}, nil
}

// IsVendor reports whether the caller acts as a vendor.
func (p Principal) IsVendor() bool {
	return p.Role == RoleVendor
}

// IsCustomer reports whether the caller acts as a customer.
func (p Principal) IsCustomer() bool {
	return p.Role == RoleCustomer
}
