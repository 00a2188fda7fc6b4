// Package kernel provides the primitive value types shared by the order model:
//   - UUID: an order identifier wrapping github.com/google/uuid
//   - delivery-time helpers: the canonical "yyyy-MM-dd HH:mm:ss" layout and the
//     lenient parser used for input files
//
// Both are immutable and safe to copy.
package kernel
