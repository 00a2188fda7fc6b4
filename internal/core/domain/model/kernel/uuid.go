package kernel

import (
	"fmt"

	"deliveryfilter/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero (nil) UUID, either never constructed
// or parsed from "00000000-0000-0000-0000-000000000000".
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via UUIDFromString")

// UUID identifies a single delivery order. The zero value is invalid.
//
// Example:
//
//	id, err := kernel.UUIDFromString("11111111-1111-1111-1111-111111111111")
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
type UUID struct {
	id uuid.UUID
}

// UUIDFromString parses the canonical, braced, urn-prefixed and hyphen-less forms.
// The nil UUID parses successfully; callers that need a usable identifier call Validate.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// String returns the lowercase "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// IsEqual reports whether both UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// IsNil reports whether u is the nil UUID.
func (u UUID) IsNil() bool {
	return u.id == uuid.Nil
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.IsNil() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
