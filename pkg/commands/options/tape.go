// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// TapeOptions captures tape metadata flags.
type TapeOptions struct {
	Duration  string
	Format    string
	Speed     string
	StartDate string
	EndDate   string
	VideoLink string
}

func AddTapeArgs(cmd *cobra.Command, o *TapeOptions) {
	cmd.Flags().StringVar(&o.Duration, "duration", "",
		`Total recorded duration, example: --duration="02:26:47".`)
	cmd.Flags().StringVar(&o.Format, "format", "",
		`Physical format, example: --format=8mm.`)
	cmd.Flags().StringVar(&o.Speed, "speed", "",
		`Recording speed, example: --speed=SP.`)
	cmd.Flags().StringVar(&o.StartDate, "start-date", "",
		`First recording date, example: --start-date="1999-07-20".`)
	cmd.Flags().StringVar(&o.EndDate, "end-date", "",
		`Last recording date, example: --end-date="1999-10-27".`)
	cmd.Flags().StringVar(&o.VideoLink, "link", "",
		`External video link for the digitized tape.`)
}
