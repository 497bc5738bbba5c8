// Package config loads declarative swap strategy definitions from YAML or
// TOML and turns them into validated *swapstrategy.SwapStrategy values.
//
// A definition describes either a line:
//
//	line: [0, 1, 2, 3, 4]
//	num_layers: 3          # optional, defaults to len(line)-2
//
// or an explicit coupling map with swap layers:
//
//	num_qubits: 4          # optional, defaults to max index + 1
//	couplings: [[0, 1], [1, 2], [2, 3]]
//	layers:
//	  - [[0, 1], [2, 3]]
//	  - [[1, 2]]
package config

import (
	"fmt"

	"github.com/katalvlaran/swapstrat/coupling"
	"github.com/katalvlaran/swapstrat/swapstrategy"
)

// Definition is the file representation of a swap strategy.
type Definition struct {
	Name      string    `yaml:"name,omitempty" toml:"name,omitempty"`
	NumQubits int       `yaml:"num_qubits,omitempty" toml:"num_qubits,omitempty"`
	Couplings [][]int   `yaml:"couplings,omitempty" toml:"couplings,omitempty"`
	Layers    [][][]int `yaml:"layers,omitempty" toml:"layers,omitempty"`
	Line      []int     `yaml:"line,omitempty" toml:"line,omitempty"`
	NumLayers *int      `yaml:"num_layers,omitempty" toml:"num_layers,omitempty"`
}

// Validate checks the shape of the definition and returns the first failure.
// Qubit-level checks (ranges, edges, disjointness) are left to Build, which
// reports them through the swapstrategy error types.
func (d *Definition) Validate() error {
	if d == nil {
		return ErrEmpty
	}
	if d.NumQubits < 0 {
		return fmt.Errorf("num_qubits=%d: %w", d.NumQubits, ErrNumQubits)
	}

	hasLine, hasCouplings := len(d.Line) > 0, len(d.Couplings) > 0
	switch {
	case hasLine && hasCouplings:
		return ErrAmbiguousTopology
	case !hasLine && !hasCouplings:
		return ErrNoTopology
	case hasLine && len(d.Layers) > 0:
		return ErrLayersWithLine
	case hasCouplings && d.NumLayers != nil:
		return ErrNumLayersWithoutLine
	}

	for i, c := range d.Couplings {
		if len(c) != 2 {
			return fmt.Errorf("couplings[%d]=%v: %w", i, c, ErrMalformedPair)
		}
	}
	for k, layer := range d.Layers {
		for i, sw := range layer {
			if len(sw) != 2 {
				return fmt.Errorf("layers[%d][%d]=%v: %w", k, i, sw, ErrMalformedPair)
			}
		}
	}

	return nil
}

// Build validates the definition and constructs the swap strategy it describes.
func (d *Definition) Build() (*swapstrategy.SwapStrategy, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if len(d.Line) > 0 {
		var opts []swapstrategy.LineOption
		if d.NumLayers != nil {
			opts = append(opts, swapstrategy.WithNumLayers(*d.NumLayers))
		}
		return swapstrategy.FromLine(d.Line, opts...)
	}

	edges := make([]coupling.Edge, len(d.Couplings))
	for i, c := range d.Couplings {
		edges[i] = coupling.Edge{From: c[0], To: c[1]}
	}
	var mopts []coupling.Option
	if d.NumQubits > 0 {
		mopts = append(mopts, coupling.WithNumQubits(d.NumQubits))
	}
	m, err := coupling.New(edges, mopts...)
	if err != nil {
		return nil, fmt.Errorf("couplings: %w", err)
	}

	layers := make([]swapstrategy.Layer, len(d.Layers))
	for k, layer := range d.Layers {
		layers[k] = make(swapstrategy.Layer, len(layer))
		for i, sw := range layer {
			layers[k][i] = swapstrategy.Swap{sw[0], sw[1]}
		}
	}

	return swapstrategy.New(m, layers)
}

// FromStrategy captures s as an explicit couplings-and-layers definition.
func FromStrategy(name string, s *swapstrategy.SwapStrategy) *Definition {
	m := s.CouplingMap()
	d := &Definition{Name: name, NumQubits: m.NumQubits()}
	for _, e := range m.Couplings() {
		d.Couplings = append(d.Couplings, []int{e.From, e.To})
	}
	for _, layer := range s.Layers() {
		swaps := make([][]int, len(layer))
		for i, sw := range layer {
			swaps[i] = []int{sw[0], sw[1]}
		}
		d.Layers = append(d.Layers, swaps)
	}

	return d
}
