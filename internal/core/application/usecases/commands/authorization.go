package commands

import (
	"dishly/internal/core/domain/model/order"
	"dishly/internal/core/domain/model/user"
	"dishly/internal/pkg/errs"
)

// authorizeOrderParty allows the order's customer and vendor only.
func authorizeOrderParty(principal user.Principal, o *order.Order, action string) error {
	switch {
	case principal.IsCustomer() && o.CustomerID().IsEqual(principal.ID):
		return nil
	case principal.IsVendor() && o.VendorID().IsEqual(principal.ID):
		return nil
	default:
		return errs.NewForbiddenError(action, "caller is not a party to the order")
	}
}

// authorizeStatusChange lets both parties cancel. Every other status change
// belongs to the vendor.
func authorizeStatusChange(principal user.Principal, o *order.Order, to order.Status) error {
	if err := authorizeOrderParty(principal, o, "change order status"); err != nil {
		return err
	}
	if to != order.Cancelled && !principal.IsVendor() {
		return errs.NewForbiddenError("change order status", "only the vendor moves an order to "+to.String())
	}
	return nil
}

// authorizePaymentChange leaves payment outcomes to the order's vendor, who
// hears back from the payment processor. Customers never mark their own
// orders paid or refunded.
func authorizePaymentChange(principal user.Principal, o *order.Order) error {
	if err := authorizeOrderParty(principal, o, "change payment status"); err != nil {
		return err
	}
	if !principal.IsVendor() {
		return errs.NewForbiddenError("change payment status", "only the vendor records payment outcomes")
	}
	return nil
}
