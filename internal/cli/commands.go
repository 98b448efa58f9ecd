// Package cli implements the staticize command line interface for
// inspecting the default projection registry.
package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/staticize/internal/version"
	"github.com/arthur-debert/staticize/pkg/config"
	"github.com/arthur-debert/staticize/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "staticize",
		Short: "Inspect the type projection registry",
		Long: `staticize resolves, for every registered type, a self-contained
counterpart that is safe to persist beyond the scope that produced a
value, and derives a stable identifier and display name from it. This
tool lists the registered projections, resolves individual types, and
exports registry snapshots.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("staticize %s (commit %s, built %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}

// setupColor disables colored output when the config says so or stdout
// is not a terminal
func setupColor(cfg *config.Config) {
	if cfg != nil && cfg.NoColor {
		pterm.DisableColor()
		return
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		pterm.DisableColor()
	}
}
