// Package cli implements the swapstrat command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// The main package calls it with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the swapstrat CLI with ctx and returns an error if any command fails.
//
// Logging goes to stderr at info level, or debug level with --verbose (-v).
// The logger is attached to the command context and read back with loggerFromContext.
func Execute(ctx context.Context) error {
	root := newRootCmd(os.Stdout, os.Stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "swapstrat",
		Short:         "swapstrat builds and inspects swap strategies on qubit coupling maps",
		Long:          `swapstrat builds swap strategies (layers of disjoint SWAP gates on a coupling map), reports the connectivity they reach and renders the swapped maps.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("swapstrat %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLineCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newRenderCmd())

	return root
}

// writeFile creates path and writes data to it.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
