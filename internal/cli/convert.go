package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/tempus"
	"github.com/roach88/tempus/civil"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Unit   string // unit the epoch argument is counted in
	Nanos  int64  // sub-second remainder added to a seconds epoch
	Preset string // rendering preset for the formatted field
}

// ConversionReport is the full civil decomposition of one instant.
type ConversionReport struct {
	Epoch        int64   `json:"epoch"`
	Nanos        int64   `json:"nanos"`
	UTC          string  `json:"utc"`
	Weekday      string  `json:"weekday"`
	Month        string  `json:"month"`
	ISOWeek      string  `json:"iso_week"`
	YearDay      int     `json:"year_day"`
	Leap         bool    `json:"leap"`
	Local        string  `json:"local"`
	LocalWeekday string  `json:"local_weekday"`
	Offset       string  `json:"offset"`
	OffsetHours  float64 `json:"offset_hours"`
	Daylight     bool    `json:"daylight"`
	Formatted    string  `json:"formatted"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <epoch>",
		Short: "Convert a Unix epoch to its civil decomposition",
		Long: `Convert a Unix epoch to its civil decomposition.

The epoch counts since 1970-01-01 00:00:00 UTC in the unit named by
--unit (seconds by default); negative values reach back before the
epoch. The report covers the UTC and local wall-clock readings,
weekday, ISO week, ordinal day, leap-year status, zone offset, and
the rendering under the active preset.

Example:
  tempus convert 1728933069
  tempus convert -- -1
  tempus convert 1728933069123 --unit millis
  tempus convert 1728933069 --nanos 123456789 --preset datetime`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Unit, "unit", "seconds", "unit of the epoch argument (seconds|millis|nanos)")
	cmd.Flags().Int64Var(&opts.Nanos, "nanos", 0, "sub-second nanoseconds (0..999999999, seconds unit only)")
	cmd.Flags().StringVarP(&opts.Preset, "preset", "p", "", "rendering preset for the formatted field")

	return cmd
}

func runConvert(opts *ConvertOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	epoch, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return outputError(formatter, ErrCodeBadArgument, fmt.Sprintf("epoch %q is not an integer count of %s", arg, opts.Unit))
	}

	var at tempus.Instant
	switch opts.Unit {
	case "seconds":
		if opts.Nanos < 0 || opts.Nanos > 999999999 {
			return outputError(formatter, ErrCodeBadArgument, fmt.Sprintf("nanos %d is outside 0..999999999", opts.Nanos))
		}
		at = tempus.Unix(epoch, opts.Nanos)
	case "millis", "nanos":
		if cmd.Flags().Changed("nanos") {
			return outputError(formatter, ErrCodeBadArgument, "--nanos applies only to --unit seconds")
		}
		if opts.Unit == "millis" {
			at = tempus.UnixMilli(epoch)
		} else {
			at = tempus.UnixNano(epoch)
		}
	default:
		return outputError(formatter, ErrCodeBadArgument, fmt.Sprintf("unit %q is not one of seconds, millis, nanos", opts.Unit))
	}

	eng, cfg, err := newEngine(opts.RootOptions)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	fopts, presetName, err := resolvePreset(cfg, opts.Preset)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Using preset %q in zone %s", presetName, zoneLabel(cfg))

	report, err := buildConversionReport(eng, at, fopts)
	if err != nil {
		return outputConversionError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}
	writeConversionText(formatter.Writer, report)
	return nil
}

// buildConversionReport decomposes one instant into a report. Every
// field derives from the engine's single snapshot of the instant.
func buildConversionReport(eng *tempus.Engine, at tempus.Instant, fopts tempus.FormatOptions) (*ConversionReport, error) {
	snap, err := eng.SnapshotAt(at)
	if err != nil {
		return nil, err
	}

	localWeekday, err := snap.LocalWeekday()
	if err != nil {
		return nil, err
	}
	daylight, err := eng.DaylightActiveAt(at)
	if err != nil {
		return nil, err
	}
	formatted, err := snap.FormatUTC(fopts)
	if err != nil {
		return nil, err
	}

	isoYear, isoWeek := snap.ISOWeek()

	return &ConversionReport{
		Epoch:        at.Unix(),
		Nanos:        int64(at.Nanosecond()),
		UTC:          clockString(snap.UTC),
		Weekday:      snap.Weekday().String(),
		Month:        snap.UTC.Month.String(),
		ISOWeek:      fmt.Sprintf("%d-W%02d", isoYear, isoWeek),
		YearDay:      at.YearDay(),
		Leap:         civil.IsLeapYear(snap.UTC.Year),
		Local:        clockString(snap.Local),
		LocalWeekday: localWeekday.String(),
		Offset:       snap.Offset.String(),
		OffsetHours:  snap.Offset.Hours(),
		Daylight:     daylight,
		Formatted:    formatted,
	}, nil
}

// writeConversionText renders a report as aligned key/value rows.
func writeConversionText(w io.Writer, r *ConversionReport) {
	fmt.Fprintf(w, "Epoch:      %d\n", r.Epoch)
	if r.Nanos != 0 {
		fmt.Fprintf(w, "Nanos:      %d\n", r.Nanos)
	}
	fmt.Fprintf(w, "UTC:        %s\n", r.UTC)
	fmt.Fprintf(w, "Weekday:    %s\n", r.Weekday)
	fmt.Fprintf(w, "Month:      %s\n", r.Month)
	fmt.Fprintf(w, "ISO week:   %s\n", r.ISOWeek)
	fmt.Fprintf(w, "Year day:   %d\n", r.YearDay)
	fmt.Fprintf(w, "Leap year:  %s\n", yesNo(r.Leap))
	fmt.Fprintf(w, "Local:      %s\n", r.Local)
	fmt.Fprintf(w, "Local day:  %s\n", r.LocalWeekday)
	fmt.Fprintf(w, "Offset:     %s\n", r.Offset)
	fmt.Fprintf(w, "Daylight:   %s\n", yesNo(r.Daylight))
	fmt.Fprintf(w, "Formatted:  %s\n", r.Formatted)
}

// clockString renders civil fields to whole-second precision for
// report output.
func clockString(dt civil.DateTime) string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		dt.Year, int(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
