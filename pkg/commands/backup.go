package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/tapedeck/pkg/commands/options"
	"tableflip.dev/tapedeck/pkg/runner/backup"
	"tableflip.dev/tapedeck/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	fo := &options.FileOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as a CSV backup",
		Example: `
tapedeck export -f vhs_familiares_bkp.csv
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := backup.Export{Path: fo.Path, Persistence: p}
			return s.Do(context.Background())
		},
	}

	options.AddFileArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	fo := &options.FileOptions{}
	sample := false

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the catalog from a CSV backup",
		Example: `
tapedeck import -f vhs_familiares.csv
tapedeck import --sample
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fo.Path == "" && !sample {
				return errors.New("requires --file or --sample")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := backup.Import{Path: fo.Path, Sample: sample, Persistence: p}
			return s.Do(context.Background())
		},
	}

	options.AddFileArgs(cmd, fo)
	cmd.Flags().BoolVar(&sample, "sample", false, "Load the built-in starter dataset.")
	topLevel.AddCommand(cmd)
}
