package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swapstrat/config"
	"github.com/katalvlaran/swapstrat/swapstrategy"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Load a strategy definition and report its connectivity",
		Long: `Load a YAML or TOML strategy definition, validate it and print a report:
the swap layers, the distance matrix, the hop distances of the coupling map
and any qubit pairs the strategy never brings together.`,
		Example: `  swapstrat inspect brickwall.toml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, name, err := loadStrategy(cmd, args[0])
			if err != nil {
				return err
			}
			return writeReport(printer{w: cmd.OutOrStdout()}, name, s)
		},
	}
}

// loadStrategy loads and builds the definition at path. The definition's
// name falls back to the file name.
func loadStrategy(cmd *cobra.Command, path string) (*swapstrategy.SwapStrategy, string, error) {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	def, err := config.LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	s, err := def.Build()
	if err != nil {
		return nil, "", err
	}
	prog.done("definition loaded", "file", path, "layers", s.Len())

	name := def.Name
	if name == "" {
		name = filepath.Base(path)
	}
	return s, name, nil
}
