package options

import (
	"github.com/spf13/cobra"
)

// TagOptions captures tag display flags.
type TagOptions struct {
	Color string
}

func AddTagArgs(cmd *cobra.Command, o *TagOptions) {
	cmd.Flags().StringVar(&o.Color, "color", "",
		`Display color as a hex value, example: --color="#667eea".`)
}

// FileOptions captures backup file flags.
type FileOptions struct {
	Path string
}

func AddFileArgs(cmd *cobra.Command, o *FileOptions) {
	cmd.Flags().StringVarP(&o.Path, "file", "f", "",
		`Backup file path; stdout or stdin when omitted.`)
}
