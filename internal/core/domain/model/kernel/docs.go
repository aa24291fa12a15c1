// Package kernel provides the shared value objects of the dishly domain model.
//
// The package includes:
//   - UUID: identifier of every entity and aggregate, wrapping github.com/google/uuid
//   - Money: a non-rounding amount with minor-unit (cent) precision, backed by
//     github.com/shopspring/decimal
//
// Both types are immutable and safe for concurrent use. Their zero values are
// meaningful only where documented: a zero UUID fails Validate, a zero Money is
// a valid amount of 0.
package kernel
