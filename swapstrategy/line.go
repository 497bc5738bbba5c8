// SPDX-License-Identifier: MIT
//
// File: line.go
// Role: FromLine, the odd-even transposition strategy on a path.
//
// Contract:
//   - len(line) >= 2 (else ErrInvalidArgument naming the line).
//   - WithNumLayers(n): n >= 0 (else ErrInvalidArgument); default len(line)-2.
//   - Coupling map: line[i] to line[i+1] for i = 0..len(line)-2, in path order.
//   - Layer i uses pattern A (pairs starting at even offsets) for even i and
//     pattern B (pairs starting at odd offsets) for odd i.
//   - Construction goes through New, so layering validation still applies.

package swapstrategy

import (
	"fmt"

	"github.com/katalvlaran/swapstrat/coupling"
)

const minLineQubits = 2

// LineOption configures FromLine.
type LineOption func(*lineConfig)

type lineConfig struct {
	numLayers *int
}

// WithNumLayers requests exactly n swap layers instead of the default len(line)-2.
// A negative n is rejected by FromLine with ErrInvalidArgument.
func WithNumLayers(n int) LineOption {
	return func(c *lineConfig) { c.numLayers = &n }
}

// FromLine builds the brick-wall swap strategy on the physical path line.
//
// With the default len(line)-2 layers every pair of qubits on the line
// becomes adjacent at some layer; fewer layers leave missing couplings.
func FromLine(line []int, opts ...LineOption) (*SwapStrategy, error) {
	var cfg lineConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(line) < minLineQubits {
		return nil, fmt.Errorf("swapstrategy: the line cannot have less than two elements, but is %v: %w",
			line, ErrInvalidArgument)
	}
	numLayers := len(line) - 2
	if cfg.numLayers != nil {
		if *cfg.numLayers < 0 {
			return nil, fmt.Errorf("swapstrategy: negative number %d passed for number of swap layers: %w",
				*cfg.numLayers, ErrInvalidArgument)
		}
		numLayers = *cfg.numLayers
	}

	m, err := lineMap(line)
	if err != nil {
		return nil, err
	}

	patterns := [2]Layer{linePattern(line, 0), linePattern(line, 1)}
	layers := make([]Layer, numLayers)
	for i := range layers {
		layers[i] = patterns[i%2]
	}

	return New(m, layers)
}

// lineMap builds the path coupling map; coupling errors (negative qubit,
// self-loop from a repeated neighbor) are reported as ErrInvalidArgument.
func lineMap(line []int) (*coupling.Map, error) {
	m, err := coupling.Line(line)
	if err != nil {
		return nil, fmt.Errorf("swapstrategy: line %v: %w: %w", line, ErrInvalidArgument, err)
	}

	return m, nil
}

// linePattern pairs (line[i], line[i+1]) for i = offset, offset+2, ...
func linePattern(line []int, offset int) Layer {
	var l Layer
	for i := offset; i+1 < len(line); i += 2 {
		l = append(l, Swap{line[i], line[i+1]})
	}

	return l
}
