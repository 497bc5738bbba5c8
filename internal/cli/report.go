package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/swapstrat/bfs"
	"github.com/katalvlaran/swapstrat/coupling"
	"github.com/katalvlaran/swapstrat/dfs"
	"github.com/katalvlaran/swapstrat/swapstrategy"
)

// maxListedCouplings caps how many missing couplings are printed.
const maxListedCouplings = 16

// writeReport prints a summary of s: the coupling map, its layers, the
// distance matrix and what the strategy leaves unreachable.
func writeReport(p printer, name string, s *swapstrategy.SwapStrategy) error {
	m := s.CouplingMap()
	diameter, connected, err := bfs.Diameter(m)
	if err != nil {
		return err
	}
	comps, err := dfs.Components(m)
	if err != nil {
		return err
	}

	p.title("%s", name)
	p.keyValue("qubits", strconv.Itoa(s.NumQubits()))
	p.keyValue("couplings", strconv.Itoa(m.NumCouplings()))
	p.keyValue("layers", strconv.Itoa(s.Len()))
	if connected {
		p.keyValue("diameter", strconv.Itoa(diameter))
	} else {
		p.keyValue("diameter", "disconnected")
		p.keyValue("components", strconv.Itoa(len(comps)))
	}
	p.newline()

	if s.Len() > 0 {
		lines := make([]string, s.Len())
		for k, layer := range s.Layers() {
			lines[k] = fmt.Sprintf("%d: %s", k, layer)
		}
		p.block("swap layers", strings.Join(lines, "\n"))
	}
	p.block("distance matrix", s.DistanceMatrix().String())

	hops, err := bfs.HopMatrix(m)
	if err != nil {
		return err
	}
	p.block("hop matrix", hops.String())
	p.newline()

	missing := s.MissingCouplings()
	if len(missing) == 0 {
		p.success("full connectivity after %d layers", s.Len())
		return nil
	}
	p.warning("%d ordered pairs never become adjacent", len(missing))
	if len(comps) > 1 {
		p.warning("%d components cannot be joined by swaps", len(comps))
	}
	p.block("missing couplings", formatEdges(missing, maxListedCouplings))

	return nil
}

func formatEdges(es []coupling.Edge, limit int) string {
	parts := make([]string, 0, min(len(es), limit)+1)
	for i, e := range es {
		if i == limit {
			parts = append(parts, fmt.Sprintf("... and %d more", len(es)-limit))
			break
		}
		parts = append(parts, fmt.Sprintf("(%d, %d)", e.From, e.To))
	}
	return strings.Join(parts, " ")
}
