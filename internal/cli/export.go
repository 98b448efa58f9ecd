package cli

import (
	"encoding/json"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	"github.com/arthur-debert/staticize/pkg/config"
	"github.com/arthur-debert/staticize/pkg/errors"
	"github.com/arthur-debert/staticize/pkg/staticize"
)

type exportEntry struct {
	Source string `json:"source" toml:"source" yaml:"source"`
	Shape  string `json:"shape" toml:"shape" yaml:"shape"`
	Static string `json:"static" toml:"static" yaml:"static"`
	Name   string `json:"name" toml:"name" yaml:"name"`
	ID     string `json:"id" toml:"id" yaml:"id"`
}

type exportDoc struct {
	Entries []exportEntry `json:"entries" toml:"entries" yaml:"entries"`
}

func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the registry snapshot",
		Long: `Export serializes the default registry's projections, with each
counterpart's identity descriptor, as TOML, YAML or JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Export.Format
			}

			doc := exportDoc{}
			for _, entry := range staticize.Default.Entries() {
				doc.Entries = append(doc.Entries, exportEntry{
					Source: staticize.CanonicalName(entry.Source),
					Shape:  entry.Shape.String(),
					Static: staticize.CanonicalName(entry.Static),
					Name:   entry.Static.String(),
					ID:     staticize.IDOf(entry.Static).String(),
				})
			}

			var out []byte
			switch format {
			case "toml":
				out, err = toml.Marshal(doc)
			case "yaml":
				out, err = yaml.Marshal(doc)
			case "json":
				out, err = json.MarshalIndent(doc, "", "  ")
			default:
				return errors.Newf(errors.ErrInvalidInput,
					"unsupported format %q, expected toml, yaml or json", format)
			}
			if err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to serialize registry as %s", format)
			}

			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: toml, yaml or json (default from config)")
	return cmd
}
