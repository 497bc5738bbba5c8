package config

import "errors"

// Sentinel errors for strategy definition loading and validation.
var (
	// ErrEmpty is returned when the definition data is empty (zero bytes).
	ErrEmpty = errors.New("config: strategy definition is empty")

	// ErrUnsupportedFormat is returned for a file extension or Format with no decoder.
	ErrUnsupportedFormat = errors.New("config: unsupported definition format")

	// ErrNoTopology is returned when neither line nor couplings is set.
	ErrNoTopology = errors.New("config: one of line or couplings is required")

	// ErrAmbiguousTopology is returned when both line and couplings are set.
	ErrAmbiguousTopology = errors.New("config: line and couplings are mutually exclusive")

	// ErrLayersWithLine is returned when explicit layers accompany a line.
	ErrLayersWithLine = errors.New("config: layers cannot be combined with line")

	// ErrNumLayersWithoutLine is returned when num_layers is set for explicit couplings.
	ErrNumLayersWithoutLine = errors.New("config: num_layers requires line")

	// ErrMalformedPair is returned when a coupling or swap does not have exactly two qubits.
	ErrMalformedPair = errors.New("config: pair must have exactly two qubits")

	// ErrNumQubits is returned for a negative num_qubits.
	ErrNumQubits = errors.New("config: num_qubits must be >= 0")
)
