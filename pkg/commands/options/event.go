package options

import (
	"github.com/spf13/cobra"
)

// EventOptions captures event field flags.
type EventOptions struct {
	Tape     string
	Date     string
	Start    string
	End      string
	TagCodes []string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.Tape, "tape", "",
		`Name of the owning tape.`)
	cmd.Flags().StringVar(&o.Date, "date", "",
		`Calendar date of the content, example: --date="1999-07-20".`)
	cmd.Flags().StringVar(&o.Start, "start", "",
		`Start offset on the tape, example: --start="00:09:54".`)
	cmd.Flags().StringVar(&o.End, "end", "",
		`End offset on the tape, example: --end="00:16:48".`)
	cmd.Flags().StringSliceVar(&o.TagCodes, "tag", nil,
		`Tag codes for the event, repeatable.`)
	_ = cmd.MarkFlagRequired("tape")
}

// FilterOptions captures the search criteria flags.
type FilterOptions struct {
	TagCodes  []string
	ShowLinks bool
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringSliceVar(&o.TagCodes, "tag", nil,
		`Tag codes to filter by, repeatable.`)
	cmd.Flags().BoolVar(&o.ShowLinks, "links", false,
		`Show timestamped video links for matching events.`)
}
