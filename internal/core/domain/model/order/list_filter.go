package order

import (
	"errors"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/pkg/errs"
)

// ListFilter selects stored orders by party and status, newest first. At
// least one party must be set. Limit caps the number of orders returned.
type ListFilter struct {
	CustomerID *kernel.UUID
	VendorID   *kernel.UUID
	Status     *Status
	Limit      int
}

func (f ListFilter) Validate() error {
	if f.CustomerID == nil && f.VendorID == nil {
		return errs.NewValueIsRequiredErrorWithCause("party",
			errors.New("a customer or a vendor is required"))
	}

	var errList []error
	if f.CustomerID != nil {
		errList = append(errList, f.CustomerID.Validate())
	}
	if f.VendorID != nil {
		errList = append(errList, f.VendorID.Validate())
	}
	if f.Status != nil {
		errList = append(errList, f.Status.Validate())
	}
	if f.Limit < 1 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("limit", f.Limit, 1, "∞"))
	}
	return errors.Join(errList...)
}
