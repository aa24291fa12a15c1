// Package services provides domain services that work across aggregates.
//
// The package includes:
//   - PricingSnapshot: freezes live catalog prices into order line items
//
// Domain services are pure: callers load the aggregates and pass them in.
package services
