package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/roundtrip/pkg/roundtrip"
)

// showCommand creates the "show" subcommand, which reads the record file
// without writing it.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Read the record file and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options()
			if err != nil {
				return err
			}
			s, err := opts.NewStore(c.fs)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := commandLogger(cmd)
			prog := newProgress(logger)

			r := roundtrip.NewRunner(s, newReporter(c.ui), logger)
			if rec := r.Reload(ctx, opts.Path); rec != nil {
				prog.done("read record", "path", opts.Path, "format", opts.Format)
			}
			return nil
		},
	}
}
