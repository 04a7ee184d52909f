package order

import "barstock/pkg/numerator"

const (
	// NumberPrefix for order document numbers (ORD-2026-00001).
	NumberPrefix = "ORD"

	// NumeratorStrategy is Cached: orders are internal documents and gaps
	// in numbering are acceptable.
	NumeratorStrategy = numerator.StrategyCached
)
