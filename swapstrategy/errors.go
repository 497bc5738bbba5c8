// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors and the structured ConfigurationError.
// Error policy:
//   - Callers branch with errors.Is / errors.As, never on message text.
//   - Every construction-time layering failure is a *ConfigurationError that
//     matches both ErrConfiguration and its specific reason sentinel.

package swapstrategy

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("swapstrategy: invalid swap strategy configuration")

	// ErrNilCouplingMap indicates New was called without a coupling map.
	ErrNilCouplingMap = errors.New("swapstrategy: coupling map is nil")

	// ErrQubitOutOfRange indicates a swap references a qubit outside [0, NumQubits).
	ErrQubitOutOfRange = errors.New("swapstrategy: qubit index out of range")

	// ErrNotAnEdge indicates a swap between qubits that are not coupled.
	ErrNotAnEdge = errors.New("swapstrategy: swap is not an edge of the coupling map")

	// ErrMultipleSwaps indicates a qubit used by more than one swap of one layer.
	ErrMultipleSwaps = errors.New("swapstrategy: qubit with multiple swaps in one layer")

	// ErrLayerOutOfRange indicates a layer index outside the valid range.
	ErrLayerOutOfRange = errors.New("swapstrategy: layer index out of range")

	// ErrSequenceLength indicates a sequence whose length differs from NumQubits.
	ErrSequenceLength = errors.New("swapstrategy: sequence length does not match qubit count")

	// ErrInvalidArgument indicates a rejected factory argument (line too short,
	// negative layer count).
	ErrInvalidArgument = errors.New("swapstrategy: invalid argument")
)

// ConfigurationError reports a structurally invalid swap layer.
type ConfigurationError struct {
	// Layer is the 0-based index of the offending layer.
	Layer int

	// Swap is the offending swap.
	Swap Swap

	// Qubit is the qubit that triggered the failure, or -1 when the swap as a
	// whole is at fault (ErrNotAnEdge).
	Qubit int

	// Reason is one of ErrQubitOutOfRange, ErrNotAnEdge, ErrMultipleSwaps.
	Reason error
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	switch {
	case errors.Is(e.Reason, ErrMultipleSwaps):
		return fmt.Sprintf("swapstrategy: swap layer %d contains qubit %d with multiple swaps (at swap %v)",
			e.Layer, e.Qubit, e.Swap)
	case errors.Is(e.Reason, ErrNotAnEdge):
		return fmt.Sprintf("swapstrategy: swap layer %d contains swap %v which is not an edge of the coupling map",
			e.Layer, e.Swap)
	case errors.Is(e.Reason, ErrQubitOutOfRange):
		return fmt.Sprintf("swapstrategy: swap layer %d: swap %v references qubit %d out of range",
			e.Layer, e.Swap, e.Qubit)
	}

	return fmt.Sprintf("swapstrategy: swap layer %d: swap %v: %v", e.Layer, e.Swap, e.Reason)
}

// Unwrap exposes the reason sentinel to errors.Is.
func (e *ConfigurationError) Unwrap() error { return e.Reason }

// Is makes every ConfigurationError match ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }
