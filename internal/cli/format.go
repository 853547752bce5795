package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/tempus"
)

// FormatOptions holds flags for the format command.
type FormatOptions struct {
	*RootOptions
	Nanos     int64  // sub-second remainder added to the epoch
	Preset    string // named preset to render under
	Local     bool   // render the local reading instead of UTC
	Date      bool   // render the year-month-day block
	Time      bool   // render the hour-minute-second block
	Subsecond bool   // render the millisecond and microsecond fields
	Offset    bool   // render the zone offset field
	Separator string // field separator byte
}

// FormatReport holds one rendering of one instant.
type FormatReport struct {
	Epoch     int64  `json:"epoch"`
	Nanos     int64  `json:"nanos"`
	Preset    string `json:"preset,omitempty"`
	Scope     string `json:"scope"`
	Rendering string `json:"rendering"`
}

// NewFormatCommand creates the format command.
func NewFormatCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FormatOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "format <epoch>",
		Short: "Render an instant under a preset or explicit blocks",
		Long: `Render an instant under a named preset or an explicit block set.

Every numeric field is zero-padded to a fixed width, so renderings of
equal shape are equal length and sort lexicographically in time
order. Block flags (--date, --time, --subsecond, --offset) select
fields directly and exclude --preset; the separator can override
either mode.

Preset names resolve against the built-in presets first, then
against the configured CUE preset pack.

Example:
  tempus format 1728933069
  tempus format 1728933069 --preset date
  tempus format 1728933069 --date --time --separator _
  tempus format 1728933069 --local --offset --time`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(opts, args[0], cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.Nanos, "nanos", 0, "sub-second nanoseconds (0..999999999)")
	cmd.Flags().StringVarP(&opts.Preset, "preset", "p", "", "named rendering preset")
	cmd.Flags().BoolVar(&opts.Local, "local", false, "render the local reading instead of UTC")
	cmd.Flags().BoolVar(&opts.Date, "date", false, "render the year-month-day block")
	cmd.Flags().BoolVar(&opts.Time, "time", false, "render the hour-minute-second block")
	cmd.Flags().BoolVar(&opts.Subsecond, "subsecond", false, "render millisecond and microsecond fields")
	cmd.Flags().BoolVar(&opts.Offset, "offset", false, "render the zone offset field")
	cmd.Flags().StringVarP(&opts.Separator, "separator", "s", "-", "field separator (one printable ASCII character)")

	return cmd
}

func runFormat(opts *FormatOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	epoch, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return outputError(formatter, ErrCodeBadArgument, fmt.Sprintf("epoch %q is not an integer number of seconds", arg))
	}
	if opts.Nanos < 0 || opts.Nanos > 999999999 {
		return outputError(formatter, ErrCodeBadArgument, fmt.Sprintf("nanos %d is outside 0..999999999", opts.Nanos))
	}

	eng, cfg, err := newEngine(opts.RootOptions)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	custom := cmd.Flags().Changed("date") || cmd.Flags().Changed("time") ||
		cmd.Flags().Changed("subsecond") || cmd.Flags().Changed("offset")

	var fopts tempus.FormatOptions
	presetName := ""
	if custom {
		if opts.Preset != "" {
			return outputError(formatter, ErrCodeBadArgument, "choose either --preset or the block flags, not both")
		}
		fopts = tempus.FormatOptions{
			Date:      opts.Date,
			Time:      opts.Time,
			Subsecond: opts.Subsecond,
			Offset:    opts.Offset,
		}
	} else {
		fopts, presetName, err = resolvePreset(cfg, opts.Preset)
		if err != nil {
			return outputLoadError(formatter, err)
		}
	}

	if cmd.Flags().Changed("separator") {
		if len(opts.Separator) != 1 || opts.Separator[0] < 0x20 || opts.Separator[0] > 0x7e {
			return outputError(formatter, ErrCodeBadArgument, fmt.Sprintf("separator %q must be one printable ASCII character", opts.Separator))
		}
		fopts.Separator = opts.Separator[0]
	}

	at := tempus.Unix(epoch, opts.Nanos)

	rendering := ""
	scope := "utc"
	if opts.Local {
		scope = "local"
		rendering, err = eng.FormatLocal(at, fopts)
	} else {
		rendering, err = eng.FormatUTC(at, fopts)
	}
	if err != nil {
		return outputConversionError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(&FormatReport{
			Epoch:     epoch,
			Nanos:     opts.Nanos,
			Preset:    presetName,
			Scope:     scope,
			Rendering: rendering,
		})
	}

	fmt.Fprintln(formatter.Writer, rendering)
	return nil
}
