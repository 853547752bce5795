package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/tempus"
	"github.com/roach88/tempus/internal/presets"
)

// PresetSummary describes one compiled preset.
type PresetSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Blocks      []string `json:"blocks"`
	Separator   string   `json:"separator"`
}

// PackReport holds a compiled preset pack.
type PackReport struct {
	Presets   []PresetSummary `json:"presets"`
	FileCount int             `json:"file_count"`
}

// NewPresetsCommand creates the presets command.
func NewPresetsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets <pack-dir>",
		Short: "Compile and list a CUE preset pack",
		Long: `Compile and list a CUE preset pack.

Each entry under the pack's preset struct defines a rendering preset:
which blocks it renders, its separator, and a description. Commands
taking --preset resolve names against these definitions after the
built-ins.

Exit codes:
  0 - Pack compiled
  1 - Pack definitions invalid
  2 - Command error (directory not found, no CUE files, etc.)

Examples:
  tempus presets ./presets
  tempus presets ./presets --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runPresets(opts *RootOptions, packDir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	pack, err := presets.Load(packDir)
	if err != nil {
		var compileErr *presets.CompileError
		if errors.As(err, &compileErr) {
			return outputPackInvalid(formatter, compileErr)
		}
		return outputError(formatter, ErrCodePresetPack, err.Error())
	}

	report := buildPackReport(pack)
	formatter.VerboseLog("Compiled %d preset(s) from %s", len(report.Presets), packDir)

	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	fmt.Fprintf(formatter.Writer, "✓ Compiled %d preset(s) from %d file(s)\n\n", len(report.Presets), report.FileCount)
	fmt.Fprintln(formatter.Writer, "Presets:")
	for _, p := range report.Presets {
		line := fmt.Sprintf("  %s: %s", p.Name, strings.Join(p.Blocks, " "))
		if p.Separator != "-" {
			line += fmt.Sprintf(" [separator %q]", p.Separator)
		}
		fmt.Fprintln(formatter.Writer, line)
	}
	return nil
}

// buildPackReport summarizes a compiled pack for output.
func buildPackReport(pack *presets.Pack) *PackReport {
	report := &PackReport{
		Presets:   make([]PresetSummary, 0, len(pack.Presets)),
		FileCount: pack.FileCount,
	}
	for _, p := range pack.Presets {
		sep := p.Options.Separator
		if sep == 0 {
			sep = '-'
		}
		report.Presets = append(report.Presets, PresetSummary{
			Name:        p.Name,
			Description: p.Description,
			Blocks:      presetBlocks(p.Options),
			Separator:   string(sep),
		})
	}
	return report
}

// presetBlocks names the blocks a preset renders, in render order.
func presetBlocks(o tempus.FormatOptions) []string {
	var blocks []string
	if o.Date {
		blocks = append(blocks, "date")
	}
	if o.Time {
		blocks = append(blocks, "time")
	}
	if o.Subsecond {
		blocks = append(blocks, "subsecond")
	}
	if o.Offset {
		blocks = append(blocks, "offset")
	}
	return blocks
}

// outputPackInvalid reports a preset pack whose definitions failed to
// compile.
func outputPackInvalid(formatter *OutputFormatter, compileErr *presets.CompileError) error {
	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    ErrCodePresetPack,
				Message: compileErr.Message,
				Details: compileErr.Field,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		// Invalid definitions = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", ErrCodePresetPack, compileErr.Message))
	}

	fmt.Fprintln(formatter.Writer, "✗ Preset pack invalid")
	fmt.Fprintln(formatter.Writer)

	if compileErr.Pos.IsValid() {
		fmt.Fprintf(formatter.Writer, "%s:%d:%d\n",
			compileErr.Pos.Filename(),
			compileErr.Pos.Line(),
			compileErr.Pos.Column())
	}
	fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", compileErr.Field, compileErr.Message)

	// Invalid definitions = exit code 1
	return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", ErrCodePresetPack, compileErr.Message))
}
