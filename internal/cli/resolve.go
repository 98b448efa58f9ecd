package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/staticize/pkg/errors"
	"github.com/arthur-debert/staticize/pkg/staticize"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <type>",
		Short: "Resolve a registered type to its identity descriptor",
		Long: `Resolve looks up a registered source type by canonical or display
name and prints its self-contained counterpart, stable identifier and
display name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, ok := staticize.Default.Lookup(args[0])
			if !ok {
				return errors.Newf(errors.ErrNotFound,
					"no projection registered for %q", args[0])
			}

			id, err := staticize.Default.StaticID(entry.Source)
			if err != nil {
				return err
			}
			name, err := staticize.Default.StaticName(entry.Source)
			if err != nil {
				return err
			}

			fmt.Printf("source: %s\n", staticize.CanonicalName(entry.Source))
			fmt.Printf("shape:  %s\n", entry.Shape)
			fmt.Printf("static: %s\n", staticize.CanonicalName(entry.Static))
			fmt.Printf("id:     %s\n", id)
			fmt.Printf("name:   %s\n", name)
			return nil
		},
	}
}
