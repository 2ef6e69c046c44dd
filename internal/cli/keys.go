package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/spf13/cobra"

	"github.com/interpretive-systems/diffwin/internal/keymap"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the key bindings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			h := help.New()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Menus:")
			fmt.Fprintln(out, h.FullHelpView(keymap.Menu().FullHelp()))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Diff view:")
			for _, line := range keymap.Diff().HelpLines() {
				fmt.Fprintln(out, "  "+line)
			}
		},
	}
}
