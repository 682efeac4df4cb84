package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tapedeck/pkg/commands/options"
	"tableflip.dev/tapedeck/pkg/runner/tags"
	"tableflip.dev/tapedeck/pkg/store"
)

func addTag(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
		Example: `
tapedeck tag add Familia --color="#667eea"
tapedeck tag list
tapedeck tag rm 3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTagAdd(cmd)
	addTagEdit(cmd)
	addTagList(cmd)
	addTagRemove(cmd)
	addTagExport(cmd)
	addTagImport(cmd)

	topLevel.AddCommand(cmd)
}

func addTagAdd(topLevel *cobra.Command) {
	to := &options.TagOptions{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a tag with an auto-allocated code",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a tag name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tags.Add{
				Name:        strings.Join(args, " "),
				Color:       to.Color,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTagArgs(cmd, to)
	topLevel.AddCommand(cmd)
}

func addTagEdit(topLevel *cobra.Command) {
	to := &options.TagOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> <name>",
		Short: "Rename a tag; its id and code never change",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a tag id and a name")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("tag id must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			id, _ := strconv.Atoi(args[0])
			s := tags.Rename{
				ID:          id,
				Name:        strings.Join(args[1:], " "),
				Color:       to.Color,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTagArgs(cmd, to)
	topLevel.AddCommand(cmd)
}

func addTagList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags in code order",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tags.List{Persistence: p}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addTagRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a tag and strip its code from every event",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a tag id")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("tag id must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			id, _ := strconv.Atoi(args[0])
			s := tags.Remove{ID: id, Persistence: p}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addTagExport(topLevel *cobra.Command) {
	fo := &options.FileOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the tag registry as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tags.Export{Path: fo.Path, Persistence: p}
			return s.Do(context.Background())
		},
	}

	options.AddFileArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}

func addTagImport(topLevel *cobra.Command) {
	fo := &options.FileOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the tag registry from a JSON backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fo.Path == "" {
				return errors.New("requires --file")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tags.Import{Path: fo.Path, Persistence: p}
			return s.Do(context.Background())
		},
	}

	options.AddFileArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}
