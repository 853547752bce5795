package cli

import (
	"github.com/spf13/cobra"
)

// NowOptions holds flags for the now command.
type NowOptions struct {
	*RootOptions
	Preset string // rendering preset for the formatted field
}

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Report the current instant",
		Long: `Report the current instant as a full civil decomposition.

The clock is read exactly once; the UTC reading, local reading,
offset and daylight status in one report all describe that single
instant, even when it falls on a second or day boundary.

Example:
  tempus now
  tempus now --preset date
  tempus now --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Preset, "preset", "p", "", "rendering preset for the formatted field")

	return cmd
}

func runNow(opts *NowOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	eng, cfg, err := newEngine(opts.RootOptions)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	fopts, presetName, err := resolvePreset(cfg, opts.Preset)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Using preset %q in zone %s", presetName, zoneLabel(cfg))

	// One clock read; everything below derives from it.
	report, err := buildConversionReport(eng, eng.Now(), fopts)
	if err != nil {
		return outputConversionError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}
	writeConversionText(formatter.Writer, report)
	return nil
}
