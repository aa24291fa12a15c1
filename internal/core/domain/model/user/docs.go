// Package user models the identity provider's records of customers and
// vendors. The order core references them by id but never stores or
// changes them; the types here describe and validate what the provider
// hands over, for example when seeding fixtures or importing accounts.
//
// A User is a tagged variant: Customer or Vendor. Only a Vendor carries an
// address and a restaurant name, and NewVendor requires both, so the
// "required only for vendors" rule needs no conditional validation.
//
// Principal is the slim {id, role} pair supplied by the identity provider on
// every call. The core trusts it and does not re-authenticate.
package user
