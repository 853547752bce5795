package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Process exit codes. Scripts branch on these, so the meaning of each
// value is part of the command contract.
const (
	ExitSuccess      = 0 // all requested work succeeded
	ExitFailure      = 1 // a check failed (scenario assertions, invalid preset pack)
	ExitCommandError = 2 // the command itself was unusable (bad arguments, missing paths)
)

// ExitError carries the process exit code a failed command wants,
// letting main translate command failures without string matching.
type ExitError struct {
	Code    int    // one of ExitFailure or ExitCommandError
	Message string
	Err     error // underlying cause, when there is one
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError builds an ExitError with no underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches an exit code and context to an existing error.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode resolves the process exit code for an error. Errors that
// never picked a code report as ExitFailure.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter renders command results as either human-readable
// text or a machine-parseable JSON envelope, selected by --format.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // diagnostics go here when set, keeping Writer clean
	Verbose   bool
}

// CLIResponse is the JSON envelope every command emits in json mode.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // command-specific report
	Error  *CLIError   `json:"error,omitempty"` // set when Status is "error"
}

// CLIError is the error payload of a CLIResponse.
type CLIError struct {
	Code    string      `json:"code"`              // stable code such as "E101"
	Message string      `json:"message"`           // what went wrong
	Details interface{} `json:"details,omitempty"` // extra context, shape varies by code
}

// Success renders a command's report in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error renders a failure in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog emits a diagnostic line when verbose mode is on. The line
// goes to ErrWriter when one is set, so json output on Writer stays a
// single parseable document.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// GetErrWriter returns the writer diagnostics should use, falling back
// to the main writer when no separate one was configured.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// newFormatter builds the formatter every command uses, with verbose
// output routed to stderr so JSON on stdout stays parseable.
func newFormatter(opts *RootOptions, out, errOut io.Writer) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   opts.Verbose,
	}
}

// outputError renders an error in the configured format and returns a
// command-level ExitError carrying the code.
func outputError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	return WrapExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message), nil)
}

// outputLoadError reports a configuration or environment failure,
// preserving its code when it is a LoadError.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return outputError(formatter, loadErr.Code, loadErr.Message)
	}
	return outputError(formatter, ErrCodeGeneric, err.Error())
}

// outputConversionError reports an engine error under the code for its
// error kind.
func outputConversionError(formatter *OutputFormatter, err error) error {
	return outputError(formatter, MapErrorCode(err), err.Error())
}
