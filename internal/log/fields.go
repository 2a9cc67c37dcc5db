// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldBusID = "bus_id"

	// Dispatch fields
	FieldEvent       = "event"
	FieldComponent   = "component"
	FieldSubscribers = "subscribers"
	FieldArgs        = "args"
)
