package logger

import (
	"github.com/fatih/color" // Colored console output
)

// Colorized printf-style logging functions. These are package-level variables
// holding functions that behave like fmt.Printf, colored per log level.

// Info logs informational messages in green color.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color, written to the error stream so that
// fatal diagnostics stay separate from normal progress output.
var Error = func(format string, a ...any) {
	color.New(color.FgRed).FprintfFunc()(color.Error, format, a...)
}

// Debug logs trace messages in cyan color when verbose mode is enabled.
// It defaults to a no-op so packages can log before Init runs.
var Debug = func(format string, a ...any) {}

// Init configures the logger. verbose enables Debug tracing; noColor strips
// all color codes from the output (the `--no-color` flag).
func Init(verbose, noColor bool) {
	if noColor {
		color.NoColor = true
	}
	if verbose {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
