package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// completionShells lists the supported shells with their install notes.
var completionShells = []struct {
	name    string
	install string
	gen     func(root *cobra.Command, w io.Writer) error
}{
	{
		name: "bash",
		install: `Requires the bash-completion package.

    source <(tally completion bash)
    tally completion bash > /etc/bash_completion.d/tally`,
		gen: func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	},
	{
		name: "zsh",
		install: `Enable completion once with: echo "autoload -U compinit; compinit" >> ~/.zshrc

    source <(tally completion zsh)
    tally completion zsh > "${fpath[1]}/_tally"`,
		gen: func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	},
	{
		name: "fish",
		install: `    tally completion fish | source
    tally completion fish > ~/.config/fish/completions/tally.fish`,
		gen: func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	},
}

// addCompletionCommand adds the completion command to the parent command.
func addCompletionCommand(parent *cobra.Command) {
	completionCmd := &cobra.Command{
		Use:     "completion",
		Aliases: []string{"completions"},
		GroupID: "utilities",
		Short:   "Generate shell completion scripts",
		Long: `Generate shell completion scripts for bash, zsh, or fish.

Each subcommand writes a completion script to stdout.`,
	}

	for _, sh := range completionShells {
		gen := sh.gen
		completionCmd.AddCommand(&cobra.Command{
			Use:               sh.name,
			Short:             "Generate " + sh.name + " completion script",
			Long:              "Generate the autocompletion script for " + sh.name + ".\n\n" + sh.install,
			Args:              cobra.NoArgs,
			ValidArgsFunction: cobra.NoFileCompletions,
			RunE: func(cmd *cobra.Command, args []string) error {
				return gen(cmd.Root(), cmd.OutOrStdout())
			},
		})
	}

	parent.AddCommand(completionCmd)
}
