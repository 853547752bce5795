package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tempus"
)

// StampOptions holds flags for the stamp command.
type StampOptions struct {
	*RootOptions
	Count  int    // number of stamps to mint
	Preset string // rendering preset for the formatted field
}

// StampReport is one minted stamp with its embedded instant.
type StampReport struct {
	Token     string `json:"token"`
	Epoch     int64  `json:"epoch"`
	Nanos     int64  `json:"nanos"`
	Formatted string `json:"formatted"`
}

// DecodeReport is the minting instant recovered from a stamp.
type DecodeReport struct {
	Token   string `json:"token"`
	Epoch   int64  `json:"epoch"`
	Nanos   int64  `json:"nanos"`
	UTC     string `json:"utc"`
	Weekday string `json:"weekday"`
}

// NewStampCommand creates the stamp command.
func NewStampCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StampOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stamp",
		Short: "Mint time-sortable identifiers",
		Long: `Mint UUIDv7 identifiers that sort by creation time.

Each stamp reads the clock exactly once and records that instant with
its rendering under the active preset. The minting instant can be
recovered later with "tempus stamp decode".

Example:
  tempus stamp
  tempus stamp --count 5 --preset datetime
  tempus stamp --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStamp(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "number of stamps to mint")
	cmd.Flags().StringVarP(&opts.Preset, "preset", "p", "", "rendering preset for the formatted field")

	cmd.AddCommand(NewStampDecodeCommand(rootOpts))

	return cmd
}

func runStamp(opts *StampOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if opts.Count < 1 || opts.Count > 10000 {
		return outputError(formatter, ErrCodeBadArgument, fmt.Sprintf("count %d is outside 1..10000", opts.Count))
	}

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	fopts, presetName, err := resolvePreset(cfg, opts.Preset)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	eng, _, err := newEngine(opts.RootOptions, tempus.WithDefaultFormat(fopts))
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Minting %d stamp(s) under preset %q", opts.Count, presetName)

	reports := make([]StampReport, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		st, serr := eng.Stamp()
		if serr != nil {
			return outputConversionError(formatter, serr)
		}
		reports = append(reports, StampReport{
			Token:     st.Token,
			Epoch:     st.At.Unix(),
			Nanos:     int64(st.At.Nanosecond()),
			Formatted: st.Formatted,
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(reports)
	}

	fmt.Fprintf(formatter.Writer, "✓ Minted %d stamp(s)\n\n", len(reports))
	for _, r := range reports {
		fmt.Fprintf(formatter.Writer, "  %s  %s\n", r.Token, r.Formatted)
	}
	return nil
}

// NewStampDecodeCommand creates the stamp decode subcommand.
func NewStampDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <token>",
		Short: "Recover the minting instant from a stamp",
		Long: `Recover the minting instant embedded in a UUIDv7 stamp.

Only version 7 stamps carry a timestamp in a defined place; other
tokens are rejected.

Example:
  tempus stamp decode 0192c2b4-8a31-7cc3-98f5-ccb0c1e93d17`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStampDecode(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runStampDecode(opts *RootOptions, token string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	at, err := tempus.StampInstant(token)
	if err != nil {
		return outputError(formatter, ErrCodeBadArgument, fmt.Sprintf("stamp token: %v", err))
	}

	report := &DecodeReport{
		Token:   token,
		Epoch:   at.Unix(),
		Nanos:   int64(at.Nanosecond()),
		UTC:     clockString(at.DateTime()),
		Weekday: at.Weekday().String(),
	}

	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	fmt.Fprintf(formatter.Writer, "Token:      %s\n", report.Token)
	fmt.Fprintf(formatter.Writer, "Epoch:      %d\n", report.Epoch)
	if report.Nanos != 0 {
		fmt.Fprintf(formatter.Writer, "Nanos:      %d\n", report.Nanos)
	}
	fmt.Fprintf(formatter.Writer, "UTC:        %s\n", report.UTC)
	fmt.Fprintf(formatter.Writer, "Weekday:    %s\n", report.Weekday)
	return nil
}
