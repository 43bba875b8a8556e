package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solacebot/solace/internal/fallback"
	"github.com/solacebot/solace/internal/intent"
)

// newAskCmd answers one message through the fallback engine only. Handy
// for checking classifier behavior from the shell without a server or
// an API key.
func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message>",
		Short: "Answer one message offline via the fallback engine",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.TrimSpace(strings.Join(args, " "))
			if message == "" {
				return fmt.Errorf("ask: message is empty")
			}
			gen := fallback.New(nil)
			fmt.Fprintln(cmd.OutOrStdout(), gen.Reply(intent.Classify(message)))
			return nil
		},
	}
}
