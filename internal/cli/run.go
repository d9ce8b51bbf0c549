package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/roundtrip/pkg/roundtrip"
)

// runRoundTrip performs a full round trip with the parsed flags. Stage
// failures are printed, never returned: only invalid flags produce an error.
func (c *CLI) runRoundTrip(cmd *cobra.Command) error {
	opts, err := c.options()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	res, err := roundtrip.Execute(ctx, c.fs, opts, newReporter(c.ui), commandLogger(cmd))
	if err != nil {
		return err
	}

	c.printSummary(res)
	return nil
}

func (c *CLI) printSummary(res *roundtrip.Result) {
	switch {
	case res.Consistent:
		c.ui.success("Round trip consistent")
	case res.Reloaded != nil:
		c.ui.warning("Reloaded record differs from the written record")
	default:
		c.ui.warning("Round trip could not be confirmed")
	}
	c.ui.detail("run %s · %s · %s", res.ID[:8], res.Format, res.Path)
}
