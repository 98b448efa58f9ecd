package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/staticize/pkg/config"
	"github.com/arthur-debert/staticize/pkg/staticize"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered projections",
		Long: `List every projection registered in the default registry, with the
shape it was registered under, the resolved counterpart, and the
counterpart's stable identifier.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			setupColor(cfg)

			data := pterm.TableData{
				{"SHAPE", "SOURCE", "STATIC", "ID"},
			}
			for _, entry := range staticize.Default.Entries() {
				data = append(data, []string{
					entry.Shape.String(),
					entry.Source.String(),
					entry.Static.String(),
					staticize.IDOf(entry.Static).String(),
				})
			}

			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	}
}
