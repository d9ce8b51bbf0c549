// Package cli implements the roundtrip command-line interface.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/matzehuels/roundtrip/pkg/buildinfo"
	"github.com/matzehuels/roundtrip/pkg/codec"
	"github.com/matzehuels/roundtrip/pkg/observability"
	"github.com/matzehuels/roundtrip/pkg/roundtrip"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "roundtrip"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ui receives user-facing output; log lines go to Logger instead.
	ui *ui

	// fs is the filesystem record files are read from and written to.
	fs afero.Fs

	opts roundtrip.Options
}

// New creates a new CLI instance with a default logger writing to w.
// User-facing output goes to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		ui:     newUI(os.Stdout),
		fs:     afero.NewOsFs(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects user-facing output to w.
func (c *CLI) SetOutput(w io.Writer) {
	c.ui = newUI(w)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand, it performs a full round trip on the record file.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Roundtrip loads, writes and re-reads a YAML record file",
		Long: `Roundtrip demonstrates reading and writing a structured record file.

It loads the record file if it exists (falling back to a default record
stamped with the current time), prints it, writes it back in block style,
and reads it once more. Missing files and malformed content are reported,
never fatal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetRoundTripHooks(newLogHooks(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRoundTrip(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVarP(&c.opts.Path, "file", "f", roundtrip.DefaultPath, "record file to read and write")
	root.PersistentFlags().StringVar(&c.opts.Format, "format", "", "file format: "+formatList()+" (default: from file extension)")
	_ = root.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return codec.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	root.PersistentFlags().BoolVar(&c.opts.Strict, "strict", false, "reject keys that do not belong to the record")
	root.Flags().BoolVar(&c.opts.Fresh, "fresh", false, "ignore any existing file and write the default record")

	root.AddCommand(c.showCommand())
	root.AddCommand(c.dumpCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// options returns validated options from the parsed flags.
func (c *CLI) options() (roundtrip.Options, error) {
	opts := c.opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return roundtrip.Options{}, err
	}
	return opts, nil
}

func formatList() string {
	return strings.Join(codec.Names(), ", ")
}
