package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swapstrat/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

func newRenderCmd() *cobra.Command {
	var (
		layer  int
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render the swapped coupling map of a strategy",
		Long: `Render the coupling map of a strategy definition after a number of swap layers.
Couplings that first appear at that layer are drawn bold.

The layer defaults to the last one. The format defaults to the output file's
extension, or dot when writing to stdout.`,
		Example: `  swapstrat render line5.yaml --layer 2 -o layer2.svg
  swapstrat render line5.yaml -f dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := loadStrategy(cmd, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("layer") {
				layer = s.Len()
			}
			outFormat, err := resolveFormat(format, output)
			if err != nil {
				return err
			}

			dot, err := render.StrategyDOT(s, layer)
			if err != nil {
				return err
			}
			data := []byte(dot)
			if outFormat == formatSVG {
				logger := loggerFromContext(cmd.Context())
				prog := newProgress(logger)
				if data, err = render.SVG(cmd.Context(), dot); err != nil {
					return err
				}
				prog.done("svg rendered", "bytes", len(data))
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := writeFile(output, data); err != nil {
				return err
			}
			p := printer{w: cmd.OutOrStdout()}
			p.success("Rendered layer %d of %d", layer, s.Len())
			p.file(output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&layer, "layer", "k", 0, "number of swap layers to apply (default all)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// resolveFormat picks the output format from the flag, then the output extension.
func resolveFormat(flag, output string) (string, error) {
	f := strings.ToLower(flag)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	switch f {
	case "", "gv", formatDOT:
		return formatDOT, nil
	case formatSVG:
		return formatSVG, nil
	}
	return "", fmt.Errorf("unsupported render format %q (want dot or svg)", f)
}
