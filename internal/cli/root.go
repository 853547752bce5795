package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tempus"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // config file path (empty means TEMPUS_CONFIG, then defaults)

	// Clock, Zone and Stamps override the engine's capabilities. nil
	// selects the system clock, the configured or host zone, and the
	// UUIDv7 stamper; tests inject fixed ones. An injected Zone wins
	// over the config's zone.utc_offset.
	Clock  tempus.Clock
	Zone   tempus.ZoneProvider
	Stamps tempus.StampGenerator

	cfg *Config // memoized by loadConfig
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tempus CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tempus",
		Short: "Tempus - epoch, calendar and timezone conversions",
		Long: `Tempus converts Unix epochs to civil dates, weekdays and ISO weeks,
resolves timezone offsets, and renders instants in zero-padded,
lexicographically sortable forms.

Configuration is read from the file named by --config or the
TEMPUS_CONFIG environment variable. Set zone.utc_offset there to pin
local readings to a fixed displacement instead of the host timezone.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			// Surface config problems before the command starts, and
			// let a configured format stand in for the flag default.
			cfg, err := loadConfig(opts)
			if err != nil {
				formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
				return outputLoadError(formatter, err)
			}
			if !cmd.Flags().Changed("format") && cfg.Format != "" {
				opts.Format = cfg.Format
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "config file path (TOML)")

	// Add subcommands
	cmd.AddCommand(NewNowCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewWeekCommand(opts))
	cmd.AddCommand(NewZoneCommand(opts))
	cmd.AddCommand(NewFormatCommand(opts))
	cmd.AddCommand(NewStampCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewPresetsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
