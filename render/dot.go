package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/swapstrat/coupling"
	"github.com/katalvlaran/swapstrat/swapstrategy"
)

// DOT returns an undirected Graphviz document for m. Every qubit becomes a
// node "q<i>" labeled with its index; isolated qubits are included.
func DOT(m *coupling.Map, name string) string {
	return dot(m, name, nil)
}

// StrategyDOT renders the swapped coupling map after k layers of s. Couplings
// that first appear at layer k are drawn bold, and the graph label names the layer.
func StrategyDOT(s *swapstrategy.SwapStrategy, k int) (string, error) {
	m, err := s.SwappedCouplingMap(k)
	if err != nil {
		return "", err
	}

	fresh := make(map[coupling.Edge]bool)
	if k > 0 {
		d := s.DistanceMatrix()
		for _, e := range m.Couplings() {
			if v, _ := d.At(e.From, e.To); v == k {
				fresh[e] = true
			}
		}
	}

	return dot(m, fmt.Sprintf("layer %d of %d", k, s.Len()), fresh), nil
}

func dot(m *coupling.Map, name string, bold map[coupling.Edge]bool) string {
	var buf bytes.Buffer
	buf.WriteString("graph CouplingMap {\n")
	if name != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", name)
	}
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fontname=\"SF Mono, Menlo, monospace\", style=filled, fillcolor=white];\n\n")

	for q := 0; q < m.NumQubits(); q++ {
		fmt.Fprintf(&buf, "  q%d [label=\"%d\"];\n", q, q)
	}
	for _, e := range m.Couplings() {
		if bold[e] {
			fmt.Fprintf(&buf, "  q%d -- q%d [penwidth=2.5];\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  q%d -- q%d;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders a DOT document to SVG with Graphviz.
//
// All errors are wrapped with context using fmt.Errorf with %w.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
