package cli

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
)

//go:embed help/settings.md
var settingsHelp string

//go:embed help/env.md
var envHelp string

// addHelpCommand replaces Cobra's default help command with one that also
// carries reference topics (settings, env).
func addHelpCommand(root *cobra.Command) {
	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command or topic",
		GroupID: "utilities",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				_ = root.Help()
				return
			}
			target, _, err := root.Find(args)
			if err != nil || target == nil || target == root {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unknown help topic: %s\n", args[0])
				return
			}
			_ = target.Help()
		},
	}

	for _, topic := range []struct {
		use, short, text string
	}{
		{"settings", "Settings file reference", settingsHelp},
		{"env", "Env file and required values reference", envHelp},
	} {
		text := topic.text
		helpCmd.AddCommand(&cobra.Command{
			Use:   topic.use,
			Short: topic.short,
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), text)
			},
		})
	}

	root.SetHelpCommand(helpCmd)
	root.InitDefaultHelpCmd()
}
