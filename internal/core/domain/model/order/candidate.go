package order

import (
	"time"

	"deliveryfilter/internal/core/domain/model/kernel"
)

// Candidate is an unvalidated order as read from an input file.
// A nil field means the value was absent from the record.
type Candidate struct {
	ID           *kernel.UUID
	Weight       *float64
	RegionIndex  *RegionIndex
	DeliveryTime *time.Time

	// Source locates the record for diagnostics, e.g. "orders.txt:3" or "orders.json[2]".
	Source string
}

// NewCandidate fills every field, as the text parser does once a line is fully parsed.
func NewCandidate(id kernel.UUID, weight float64, region RegionIndex, deliveryTime time.Time, source string) Candidate {
	return Candidate{
		ID:           &id,
		Weight:       &weight,
		RegionIndex:  &region,
		DeliveryTime: &deliveryTime,
		Source:       source,
	}
}
