// Package order models one delivery order in two shapes:
//   - Candidate: a raw record straight from an input file; every field is optional
//   - Order: a validated, immutable order built only by NewOrder
//
// Field rules, applied in this order by NewOrder:
//   - the order ID must be present and not the nil UUID
//   - 0.1 <= weight <= 1000.0 kilograms
//   - the region index must be a 6-digit number (100000..999999)
//   - the delivery time must be present and non-zero
//
// Each rule is exported on its own so callers can check a single field.
package order
