// Package ports defines the contracts between the order core and its
// infrastructure: repositories, the unit of work, the event publisher and the
// idempotency store.
package ports
