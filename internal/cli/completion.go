package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// completionShells lists the shells completion scripts are generated for.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion SHELL",
		Short: "Generate a shell completion script",
		Long: `Generate a completion script for roundtrip, including the --file and
--format flags.

Load it into the current shell, for example:

  $ source <(roundtrip completion bash)
  $ roundtrip completion fish | source
  PS> roundtrip completion powershell | Out-String | Invoke-Expression

For zsh, write the script somewhere on $fpath:

  $ roundtrip completion zsh > "${fpath[1]}/_roundtrip"`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCompletion(cmd.Root(), args[0], c.ui.w)
		},
	}
}

// writeCompletion writes the completion script for shell to w.
func writeCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf("unsupported shell %q", shell)
}
