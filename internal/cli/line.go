package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swapstrat/config"
	"github.com/katalvlaran/swapstrat/swapstrategy"
)

var errBadLine = errors.New("line must be a qubit count or a comma-separated list of qubits")

func newLineCmd() *cobra.Command {
	var (
		layers int
		export string
	)

	cmd := &cobra.Command{
		Use:   "line N|q0,q1,...",
		Short: "Build the standard swap strategy on a line of qubits",
		Long: `Build the odd/even brick-wall swap strategy on a line of qubits and print its report.

The line is either a qubit count (0..N-1 in order) or an explicit comma-separated list.
By default the strategy has len(line)-2 layers, enough for full connectivity.`,
		Example: `  swapstrat line 5
  swapstrat line 3,1,0,2 --layers 1
  swapstrat line 8 --export line8.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			qubits, err := parseLine(args[0])
			if err != nil {
				return err
			}

			var opts []swapstrategy.LineOption
			if cmd.Flags().Changed("layers") {
				opts = append(opts, swapstrategy.WithNumLayers(layers))
			}
			s, err := swapstrategy.FromLine(qubits, opts...)
			if err != nil {
				return err
			}
			prog.done("strategy built", "qubits", len(qubits), "layers", s.Len())

			p := printer{w: cmd.OutOrStdout()}
			name := "line " + args[0]
			if err := writeReport(p, name, s); err != nil {
				return err
			}

			if export == "" {
				return nil
			}
			format, err := config.FormatFromPath(export)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := config.Encode(&buf, config.FromStrategy(name, s), format); err != nil {
				return err
			}
			if err := writeFile(export, buf.Bytes()); err != nil {
				return err
			}
			p.newline()
			p.success("Exported definition")
			p.file(export)
			return nil
		},
	}

	cmd.Flags().IntVarP(&layers, "layers", "l", 0, "number of swap layers (default len(line)-2)")
	cmd.Flags().StringVarP(&export, "export", "e", "", "write the strategy as a definition file (.yaml, .yml or .toml)")

	return cmd
}

// parseLine accepts "N" for the line 0..N-1 or "a,b,c" for an explicit order.
func parseLine(arg string) ([]int, error) {
	if !strings.Contains(arg, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%q: %w", arg, errBadLine)
		}
		line := make([]int, n)
		for i := range line {
			line[i] = i
		}
		return line, nil
	}

	fields := strings.Split(arg, ",")
	line := make([]int, len(fields))
	for i, f := range fields {
		q, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", arg, errBadLine)
		}
		line[i] = q
	}
	return line, nil
}
