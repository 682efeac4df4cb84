package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tapedeck/pkg/commands/options"
	"tableflip.dev/tapedeck/pkg/runner/event"
	"tableflip.dev/tapedeck/pkg/store"
)

func addEvent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage the timeline of a tape",
		Example: `
tapedeck event add --tape "Video 2" --start=00:16:48 --end=00:19:10 "Primer uso del Tripode"
tapedeck event edit 1 --tape "Video 2" --end=00:12:00 "Visita de la Ita"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEventAdd(cmd)
	addEventEdit(cmd)
	addEventRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addEventAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Append an event to the end of a tape",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the event content")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := event.Add{
				Tape:        eo.Tape,
				Date:        eo.Date,
				Content:     strings.Join(args, " "),
				Start:       eo.Start,
				End:         eo.End,
				TagCodes:    eo.TagCodes,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddEventArgs(cmd, eo)
	topLevel.AddCommand(cmd)
}

func addEventEdit(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	query := ""
	filterTags := []string{}

	cmd := &cobra.Command{
		Use:   "edit <index> <content>",
		Short: "Replace the event at an index",
		Long: `Replace the event at an index. Editing an event's end time cascades into
the next event's start time and recomputes both durations. With --query or
--filter-tag the index addresses the filtered view produced by those criteria,
and the edit is redirected to the original event on the owning tape.`,
		Example: `
tapedeck event edit 1 --tape "Video 2" --end=00:12:00 "Visita de la Ita"
tapedeck event edit 0 --tape "Video 2" --query=navidad --end=00:40:00 "Navidad 1999"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires an index and the event content")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("index must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			index, _ := strconv.Atoi(args[0])
			s := event.Edit{
				Tape:        eo.Tape,
				Index:       index,
				Date:        eo.Date,
				Content:     strings.Join(args[1:], " "),
				Start:       eo.Start,
				End:         eo.End,
				TagCodes:    eo.TagCodes,
				Query:       query,
				FilterTags:  filterTags,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddEventArgs(cmd, eo)
	cmd.Flags().StringVar(&query, "query", "", "Resolve the index within this text filter.")
	cmd.Flags().StringSliceVar(&filterTags, "filter-tag", nil, "Resolve the index within this tag filter, repeatable.")
	topLevel.AddCommand(cmd)
}

func addEventRemove(topLevel *cobra.Command) {
	tapeName := ""

	cmd := &cobra.Command{
		Use:     "rm <index>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete the event at an index",
		Long: `Delete the event at an index. Removal never cascades: the following
events keep their start times.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an index")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("index must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			index, _ := strconv.Atoi(args[0])
			s := event.Remove{
				Tape:        tapeName,
				Index:       index,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&tapeName, "tape", "", "Name of the owning tape.")
	_ = cmd.MarkFlagRequired("tape")
	topLevel.AddCommand(cmd)
}
