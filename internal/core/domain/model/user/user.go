package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/pkg/errs"
)

var (
	emailPattern = regexp.MustCompile(`.+@.+\..+`)
	phonePattern = regexp.MustCompile(`^[\d+\-()\s]{10,15}$`)
)

// User is implemented by Customer and Vendor.
type User interface {
	ID() kernel.UUID
	Role() Role
	Profile() Profile
}

// Profile holds the fields common to every user.
type Profile struct {
	Name       string
	Email      string
	Phone      string
	IsVerified bool
}

// NewProfile trims and validates the common fields. Email is lower-cased.
func NewProfile(name, email, phone string) (Profile, error) {
	p := Profile{
		Name:  strings.TrimSpace(name),
		Email: strings.ToLower(strings.TrimSpace(email)),
		Phone: strings.TrimSpace(phone),
	}

	var nameErr, emailErr, phoneErr error
	if p.Name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if !emailPattern.MatchString(p.Email) {
		emailErr = errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid email", p.Email))
	}
	if !phonePattern.MatchString(p.Phone) {
		phoneErr = errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%q is not a valid phone number", p.Phone))
	}
	if err := errors.Join(nameErr, emailErr, phoneErr); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Customer orders food.
type Customer struct {
	id      kernel.UUID
	profile Profile
}

// NewCustomer builds a customer.
func NewCustomer(id kernel.UUID, profile Profile) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Customer{id: id, profile: profile}, nil
}

func (c *Customer) ID() kernel.UUID  { return c.id }
func (c *Customer) Role() Role       { return RoleCustomer }
func (c *Customer) Profile() Profile { return c.profile }

// Vendor runs a restaurant and owns food items and categories.
type Vendor struct {
	id                    kernel.UUID
	profile               Profile
	address               string
	restaurantName        string
	restaurantDescription string
}

// NewVendor builds a vendor. Address and restaurant name are required.
func NewVendor(id kernel.UUID, profile Profile, address, restaurantName, restaurantDescription string) (*Vendor, error) {
	v := &Vendor{
		id:                    id,
		profile:               profile,
		address:               strings.TrimSpace(address),
		restaurantName:        strings.TrimSpace(restaurantName),
		restaurantDescription: strings.TrimSpace(restaurantDescription),
	}

	var addressErr, restaurantErr error
	if v.address == "" {
		addressErr = errs.NewValueIsRequiredError("address")
	}
	if v.restaurantName == "" {
		restaurantErr = errs.NewValueIsRequiredError("restaurantName")
	}
	if err := errors.Join(id.Validate(), addressErr, restaurantErr); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vendor) ID() kernel.UUID  { return v.id }
func (v *Vendor) Role() Role       { return RoleVendor }
func (v *Vendor) Profile() Profile { return v.profile }

// Address is where the restaurant is located.
func (v *Vendor) Address() string { return v.address }

// RestaurantName is the public name of the restaurant.
func (v *Vendor) RestaurantName() string { return v.restaurantName }

// RestaurantDescription is optional free text.
func (v *Vendor) RestaurantDescription() string { return v.restaurantDescription }
