package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tapedeck",
		Short: base.Wrap80("Catalog home-video tapes, their timelines, and tags on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addTape(topLevel)
	addEvent(topLevel)
	addTag(topLevel)
	addFind(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addClear(topLevel)
	addVersion(topLevel)
}
