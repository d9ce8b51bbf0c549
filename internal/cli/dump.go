package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roundtrip/pkg/errors"
)

// dumpCommand creates the "dump" subcommand. It reads the record file as a
// generic document, without assuming the record's shape, and prints both the
// decoded value and its re-serialization.
func (c *CLI) dumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the record file as a generic document",
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

			prog := newProgress(commandLogger(cmd))

			v, err := s.LoadValue(opts.Path)
			if err != nil {
				c.ui.failure("Dump failed: %s", errors.UserMessage(err))
				return nil
			}
			if v == nil {
				c.ui.warning("%s is empty", opts.Path)
				return nil
			}

			c.ui.block("--- m:", fmt.Sprintf("%v", v))
			c.ui.newline()

			var buf bytes.Buffer
			if err := s.Codec().EncodeValue(&buf, v); err != nil {
				c.ui.failure("Dump failed: %s", errors.UserMessage(err))
				return nil
			}
			c.ui.block("--- m dump:", buf.String())

			prog.done("dumped document", "path", opts.Path, "format", opts.Format)
			return nil
		},
	}
}
