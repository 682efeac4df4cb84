package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tapedeck/pkg/commands/options"
	"tableflip.dev/tapedeck/pkg/runner/tape"
	"tableflip.dev/tapedeck/pkg/store"
)

func addTape(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tape",
		Short: "Manage tapes",
		Example: `
tapedeck tape add "Video 2" --duration=02:26:47 --format=8mm --speed=SP
tapedeck tape list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTapeAdd(cmd)
	addTapeEdit(cmd)
	addTapeList(cmd)
	addTapeRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addTapeAdd(topLevel *cobra.Command) {
	to := &options.TapeOptions{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new tape",
		Example: `
tapedeck tape add "Video 2" --duration=02:26:47 --format=8mm --speed=SP --start-date=1999-07-20
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a tape name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tape.Add{
				Name:        strings.Join(args, " "),
				Duration:    to.Duration,
				Format:      to.Format,
				Speed:       to.Speed,
				StartDate:   to.StartDate,
				EndDate:     to.EndDate,
				VideoLink:   to.VideoLink,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTapeArgs(cmd, to)
	topLevel.AddCommand(cmd)
}

func addTapeEdit(topLevel *cobra.Command) {
	to := &options.TapeOptions{}

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Rewrite a tape's metadata, keeping its events",
		Example: `
tapedeck tape edit "Video 2" --speed=LP
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a tape name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tape.Add{
				Name:        strings.Join(args, " "),
				Duration:    to.Duration,
				Format:      to.Format,
				Speed:       to.Speed,
				StartDate:   to.StartDate,
				EndDate:     to.EndDate,
				VideoLink:   to.VideoLink,
				Overwrite:   true,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTapeArgs(cmd, to)
	topLevel.AddCommand(cmd)
}

func addTapeList(topLevel *cobra.Command) {
	showLinks := false

	cmd := &cobra.Command{
		Use:   "list [name]",
		Short: "List tapes, or one tape's timeline",
		Example: `
tapedeck tape list
tapedeck tape list "Video 2" --links
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tape.List{
				Name:        strings.Join(args, " "),
				ShowLinks:   showLinks,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&showLinks, "links", false, "Show timestamped video links per event.")
	topLevel.AddCommand(cmd)
}

func addTapeRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a tape and all of its events",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a tape name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tape.Remove{
				Name:        strings.Join(args, " "),
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
