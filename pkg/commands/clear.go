package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tapedeck/pkg/runner/clear"
	"tableflip.dev/tapedeck/pkg/store"
)

func addClear(topLevel *cobra.Command) {
	force := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Wipe the persisted catalog and tag registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirm("Clear all saved tapes and tags?") {
				fmt.Println("aborted")
				return nil
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := clear.Clear{Persistence: p}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "y", false, "Skip the confirmation prompt.")
	topLevel.AddCommand(cmd)
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
