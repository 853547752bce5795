package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/tempus"
)

// ZoneOptions holds flags for the zone command.
type ZoneOptions struct {
	*RootOptions
	At int64 // epoch to inspect (default: now)
}

// ZoneReport describes the active zone at one instant.
type ZoneReport struct {
	Zone          string  `json:"zone"`
	Epoch         int64   `json:"epoch"`
	Offset        string  `json:"offset"`
	OffsetSeconds int     `json:"offset_seconds"`
	OffsetHours   float64 `json:"offset_hours"`
	Daylight      bool    `json:"daylight"`
}

// NewZoneCommand creates the zone command.
func NewZoneCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ZoneOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Resolve the active zone's offset from UTC",
		Long: `Resolve the active zone's offset from UTC.

The zone is the host timezone, or the fixed displacement configured
as zone.utc_offset. Daylight status is inferred by comparing the
offset in effect against the zone's standard offset, taken near the
two solstices of the same local year; no transition table is
consulted.

Example:
  tempus zone
  tempus zone --at 1719792000
  tempus zone --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZone(opts, cmd)
		},
	}

	cmd.Flags().Int64Var(&opts.At, "at", 0, "epoch to inspect instead of now")

	return cmd
}

func runZone(opts *ZoneOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	eng, cfg, err := newEngine(opts.RootOptions)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	at := eng.Now()
	if cmd.Flags().Changed("at") {
		at = tempus.Unix(opts.At, 0)
	}

	off, err := eng.OffsetAt(at)
	if err != nil {
		return outputConversionError(formatter, err)
	}
	daylight, err := eng.DaylightActiveAt(at)
	if err != nil {
		return outputConversionError(formatter, err)
	}

	report := &ZoneReport{
		Zone:          zoneLabel(cfg),
		Epoch:         at.Unix(),
		Offset:        off.String(),
		OffsetSeconds: off.Seconds(),
		OffsetHours:   off.Hours(),
		Daylight:      daylight,
	}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}
	writeZoneText(formatter.Writer, report, off)
	return nil
}

func writeZoneText(w io.Writer, r *ZoneReport, off tempus.Offset) {
	fmt.Fprintf(w, "Zone:       %s\n", r.Zone)
	fmt.Fprintf(w, "Epoch:      %d\n", r.Epoch)
	fmt.Fprintf(w, "Offset:     %s\n", offsetPhrase(off))
	fmt.Fprintf(w, "Daylight:   %s\n", yesNo(r.Daylight))
}

// offsetPhrase renders an offset with its direction spelled out.
func offsetPhrase(off tempus.Offset) string {
	switch {
	case off.Seconds() > 0:
		return fmt.Sprintf("%s (%.2f hours east of UTC)", off, off.Hours())
	case off.Seconds() < 0:
		return fmt.Sprintf("%s (%.2f hours west of UTC)", off, -off.Hours())
	}
	return off.String()
}
