// Package presets compiles named rendering presets from CUE pack
// definitions into engine format options.
package presets

import (
	"fmt"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/tempus"
)

// Preset is one compiled, named rendering definition.
type Preset struct {
	Name        string
	Description string
	Options     tempus.FormatOptions
}

// Pack is a compiled set of presets, ordered by name for stable
// listing.
type Pack struct {
	Presets   []Preset
	FileCount int

	index map[string]int
}

// Lookup returns the preset with the given name.
func (p *Pack) Lookup(name string) (Preset, bool) {
	i, ok := p.index[name]
	if !ok {
		return Preset{}, false
	}
	return p.Presets[i], true
}

// Names returns the preset names in listing order.
func (p *Pack) Names() []string {
	names := make([]string, len(p.Presets))
	for i, preset := range p.Presets {
		names[i] = preset.Name
	}
	return names
}

// Compile parses a CUE value whose "preset" struct holds named preset
// definitions:
//
//	preset: sortable: {
//		description: "file-name friendly, sorts in time order"
//		date:      true
//		time:      true
//		subsecond: true
//		separator: "-"
//	}
func Compile(v cue.Value) (*Pack, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	presetVal := v.LookupPath(cue.ParsePath("preset"))
	if !presetVal.Exists() {
		return nil, &CompileError{
			Field:   "preset",
			Message: "no preset definitions found",
			Pos:     v.Pos(),
		}
	}

	iter, err := presetVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	pack := &Pack{index: make(map[string]int)}
	for iter.Next() {
		preset, err := CompilePreset(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		pack.Presets = append(pack.Presets, preset)
	}
	if len(pack.Presets) == 0 {
		return nil, &CompileError{
			Field:   "preset",
			Message: "at least one preset is required",
			Pos:     presetVal.Pos(),
		}
	}

	sort.Slice(pack.Presets, func(i, j int) bool {
		return pack.Presets[i].Name < pack.Presets[j].Name
	})
	for i, preset := range pack.Presets {
		pack.index[preset.Name] = i
	}

	return pack, nil
}

// CompilePreset parses a single named preset struct. Unknown fields,
// wrong types and definitions that render nothing are compile errors
// carrying the source position.
func CompilePreset(name string, v cue.Value) (Preset, error) {
	preset := Preset{Name: name}

	iter, err := v.Fields()
	if err != nil {
		return preset, formatCUEError(err)
	}
	for iter.Next() {
		switch iter.Label() {
		case "description", "date", "time", "subsecond", "offset", "separator":
		default:
			return preset, &CompileError{
				Field:   fieldPath(name, iter.Label()),
				Message: "unknown preset field",
				Pos:     iter.Value().Pos(),
			}
		}
	}

	if descVal := v.LookupPath(cue.ParsePath("description")); descVal.Exists() {
		desc, err := descVal.String()
		if err != nil {
			return preset, &CompileError{
				Field:   fieldPath(name, "description"),
				Message: "must be a string",
				Pos:     descVal.Pos(),
			}
		}
		preset.Description = desc
	}

	if preset.Options.Date, err = boolField(v, name, "date"); err != nil {
		return preset, err
	}
	if preset.Options.Time, err = boolField(v, name, "time"); err != nil {
		return preset, err
	}
	if preset.Options.Subsecond, err = boolField(v, name, "subsecond"); err != nil {
		return preset, err
	}
	if preset.Options.Offset, err = boolField(v, name, "offset"); err != nil {
		return preset, err
	}

	if sepVal := v.LookupPath(cue.ParsePath("separator")); sepVal.Exists() {
		sep, err := sepVal.String()
		if err != nil || len(sep) != 1 {
			return preset, &CompileError{
				Field:   fieldPath(name, "separator"),
				Message: "must be a one-character string",
				Pos:     sepVal.Pos(),
			}
		}
		if sep[0] < 0x20 || sep[0] > 0x7e {
			return preset, &CompileError{
				Field:   fieldPath(name, "separator"),
				Message: fmt.Sprintf("separator %q is not printable ASCII", sep),
				Pos:     sepVal.Pos(),
			}
		}
		preset.Options.Separator = sep[0]
	}

	o := preset.Options
	if !o.Date && !o.Time && !o.Subsecond && !o.Offset {
		return preset, &CompileError{
			Field:   fieldPath(name, "blocks"),
			Message: "preset renders no blocks; enable at least one of date, time, subsecond, offset",
			Pos:     v.Pos(),
		}
	}

	return preset, nil
}

func boolField(v cue.Value, preset, field string) (bool, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return false, nil
	}
	b, err := fv.Bool()
	if err != nil {
		return false, &CompileError{
			Field:   fieldPath(preset, field),
			Message: "must be a boolean",
			Pos:     fv.Pos(),
		}
	}
	return b, nil
}

func fieldPath(preset, field string) string {
	return fmt.Sprintf("preset.%s.%s", preset, field)
}

// CompileError is a preset compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
