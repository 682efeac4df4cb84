package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tapedeck/pkg/commands/options"
	"tableflip.dev/tapedeck/pkg/runner/find"
	"tableflip.dev/tapedeck/pkg/store"
)

func addFind(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "find [query]",
		Short: "Filter events by text and tags",
		Long: `Filter events by free text and tag codes. The text matches event content
or tape names, case-insensitively; tags match when the event carries any of
the selected codes. Both criteria must hold. With no criteria the whole
catalog is listed.`,
		Example: `
tapedeck find navidad
tapedeck find --tag 1 --tag 2
tapedeck find fiesta --tag 4 --links
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := find.Find{
				Query:       strings.Join(args, " "),
				TagCodes:    fo.TagCodes,
				ShowLinks:   fo.ShowLinks,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}
