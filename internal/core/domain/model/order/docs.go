// Package order provides the Order aggregate of the ordering lifecycle: line
// item price snapshots, the delivery status machine and the payment status
// machine.
//
// Key business rules:
//   - An order has at least one line item and its total equals Σ quantity × priceAtOrder
//   - Line item prices are frozen when the order is placed
//   - Status: pending -> confirmed -> preparing -> out-for-delivery -> delivered,
//     with cancelled reachable from pending, confirmed and preparing
//   - Payment: pending -> paid -> refunded, pending -> failed
//   - Cancelling requires a reason, delivering stamps a delivery time
//   - Orders are never deleted
//
// Every state change records an Event which the unit of work publishes after
// the transaction commits.
package order
