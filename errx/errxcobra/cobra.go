// Package errxcobra renders errx errors for cobra command line tools.
package errxcobra

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Conversia-AI/craftable-convx/errx"
)

// Output formats for CLI errors
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// DisplayMode controls which elements of the error are displayed
type DisplayMode string

const (
	// DisplayModeSimple shows only the error message
	DisplayModeSimple DisplayMode = "simple"
	// DisplayModeNormal shows error message, code and type
	DisplayModeNormal DisplayMode = "normal"
	// DisplayModeDetailed shows details and the cause chain as well
	DisplayModeDetailed DisplayMode = "detailed"
	// DisplayModeCustom uses the Show* flags as given
	DisplayModeCustom DisplayMode = "custom"
)

// CLIOptions configures how errors are displayed in CLI applications
type CLIOptions struct {
	Format      OutputFormat
	DisplayMode DisplayMode
	ShowCode    bool
	ShowType    bool
	ShowDetails bool
	ShowCause   bool
	// ExitOnError calls ExitFunc with the error's exit code after rendering
	ExitOnError bool
	UseColors   bool
	ExitFunc    func(int)
	// Writer receives the rendered error, os.Stderr when nil
	Writer io.Writer
}

// DefaultCLIOptions returns the default options for CLI error handling
func DefaultCLIOptions() CLIOptions {
	return CLIOptions{
		Format:      OutputFormatText,
		DisplayMode: DisplayModeNormal,
		ExitOnError: true,
		UseColors:   true,
		ExitFunc:    os.Exit,
		Writer:      os.Stderr,
	}
}

// SimpleCLIOptions returns minimalist options that only show the error message
func SimpleCLIOptions() CLIOptions {
	options := DefaultCLIOptions()
	options.DisplayMode = DisplayModeSimple
	return options
}

// DetailedCLIOptions returns options that show all error information
func DetailedCLIOptions() CLIOptions {
	options := DefaultCLIOptions()
	options.DisplayMode = DisplayModeDetailed
	return options
}

func (o *CLIOptions) applyDisplayMode() {
	switch o.DisplayMode {
	case DisplayModeSimple:
		o.ShowCode, o.ShowType, o.ShowDetails, o.ShowCause = false, false, false, false
	case DisplayModeNormal:
		o.ShowCode, o.ShowType, o.ShowDetails, o.ShowCause = true, true, false, false
	case DisplayModeDetailed:
		o.ShowCode, o.ShowType, o.ShowDetails, o.ShowCause = true, true, true, true
	}
	if o.Writer == nil {
		o.Writer = os.Stderr
	}
	if o.ExitFunc == nil {
		o.ExitFunc = os.Exit
	}
}

// CLI handles errors for command line applications
type CLI struct {
	options CLIOptions
}

// NewCLI creates a new CLI error handler with the given options
func NewCLI(options CLIOptions) *CLI {
	options.applyDisplayMode()
	return &CLI{options: options}
}

// ExitCode maps an error to a process exit code by its errx type
func ExitCode(err error) int {
	xerr, ok := errx.As(err)
	if !ok {
		return 1
	}
	switch xerr.Type {
	case errx.TypeValidation, errx.TypeBadRequest:
		return 2
	case errx.TypeAuthorization:
		return 3
	case errx.TypeNotFound:
		return 4
	case errx.TypeInternal, errx.TypeSystem:
		return 5
	default:
		return 1
	}
}

// HandleCommandError wraps a cobra RunE so that its error is rendered here
func (c *CLI) HandleCommandError(runFn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := runFn(cmd, args); err != nil {
			c.HandleError(err)
		}
		return nil
	}
}

// HandleError renders err and returns its exit code. With ExitOnError the
// process exits through ExitFunc.
func (c *CLI) HandleError(err error) int {
	if err == nil {
		return 0
	}

	exitCode := ExitCode(err)
	xerr, ok := errx.As(err)
	if !ok {
		xerr = &errx.Error{Code: "UNKNOWN_ERROR", Type: errx.TypeInternal, Message: err.Error()}
	}

	if c.options.Format == OutputFormatJSON {
		c.outputJSON(xerr)
	} else {
		c.outputText(xerr)
	}

	if c.options.ExitOnError {
		c.options.ExitFunc(exitCode)
	}
	return exitCode
}

func (c *CLI) outputJSON(err *errx.Error) {
	body := map[string]any{"message": err.Message}
	if c.options.ShowCode {
		body["code"] = err.Code
	}
	if c.options.ShowType {
		body["type"] = err.Type
	}
	if c.options.ShowDetails && len(err.Details) > 0 {
		body["details"] = err.Details
	}
	if c.options.ShowCause && err.Cause != nil {
		body["cause"] = causeChain(err.Cause)
	}

	out, _ := json.MarshalIndent(map[string]any{"error": body}, "", "  ")
	fmt.Fprintln(c.options.Writer, string(out))
}

type palette struct {
	error, code, kind, key, message, header, line *color.Color
}

func newPalette(useColors bool) palette {
	p := palette{
		error:   color.New(color.FgHiRed, color.Bold),
		code:    color.New(color.FgHiYellow),
		kind:    color.New(color.FgHiCyan),
		key:     color.New(color.FgHiGreen),
		message: color.New(color.FgHiWhite),
		header:  color.New(color.FgHiMagenta, color.Bold),
		line:    color.New(color.FgHiBlue),
	}
	if !useColors {
		for _, c := range []*color.Color{p.error, p.code, p.kind, p.key, p.message, p.header, p.line} {
			c.DisableColor()
		}
	}
	return p
}

func (c *CLI) outputText(err *errx.Error) {
	w := c.options.Writer
	p := newPalette(c.options.UseColors)

	if c.options.DisplayMode == DisplayModeSimple {
		p.error.Fprint(w, "Error: ")
		p.message.Fprintln(w, err.Message)
		return
	}

	line := strings.Repeat("─", 60)
	fmt.Fprintln(w)
	p.line.Fprintln(w, line)
	p.error.Fprint(w, " ERROR ")
	p.header.Fprint(w, "❯ ")
	p.message.Fprintln(w, err.Message)
	p.line.Fprintln(w, line)
	fmt.Fprintln(w)

	if c.options.ShowCode {
		p.header.Fprint(w, "   CODE ❯ ")
		p.code.Fprintln(w, string(err.Code))
	}
	if c.options.ShowType {
		p.header.Fprint(w, "   TYPE ❯ ")
		p.kind.Fprintln(w, string(err.Type))
	}

	if c.options.ShowDetails && len(err.Details) > 0 {
		fmt.Fprintln(w)
		p.header.Fprintln(w, " DETAILS")
		keys := lo.Keys(err.Details)
		sort.Strings(keys)
		for _, k := range keys {
			writeDetail(w, p, k, err.Details[k])
		}
	}

	if c.options.ShowCause && err.Cause != nil {
		fmt.Fprintln(w)
		p.header.Fprintln(w, "   CAUSE")
		indent := "   "
		for _, cause := range causeChain(err.Cause) {
			fmt.Fprintf(w, "%s❯ %s\n", indent, cause)
			indent += "  "
		}
	}

	fmt.Fprintln(w)
	p.line.Fprintln(w, line)
	fmt.Fprintln(w)
}

// writeDetail prints one detail entry. Per-field validation failures are
// listed one message per line.
func writeDetail(w io.Writer, p palette, key string, value any) {
	fieldErrors, ok := value.(map[string][]map[string]any)
	if !ok {
		p.key.Fprintf(w, "   %s", key)
		fmt.Fprintf(w, " ❯ %v\n", value)
		return
	}

	p.key.Fprintf(w, "   %s\n", key)
	fields := lo.Keys(fieldErrors)
	sort.Strings(fields)
	for _, field := range fields {
		for _, fe := range fieldErrors[field] {
			p.key.Fprintf(w, "     %s", field)
			fmt.Fprintf(w, " ❯ %v\n", fe["message"])
		}
	}
}

func causeChain(cause error) []string {
	var chain []string
	for cause != nil {
		chain = append(chain, cause.Error())
		cause = errors.Unwrap(cause)
	}
	return chain
}

// WithCLI installs the handler on cmd and every subcommand that has a RunE.
// Cobra's own error and usage printing is silenced.
func WithCLI(cmd *cobra.Command, options CLIOptions) *CLI {
	cli := NewCLI(options)
	install(cli, cmd)
	return cli
}

func install(cli *CLI, cmd *cobra.Command) {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if original := cmd.PersistentPreRunE; original != nil {
		cmd.PersistentPreRunE = cli.HandleCommandError(original)
	}
	if original := cmd.RunE; original != nil {
		cmd.RunE = cli.HandleCommandError(original)
	}
	for _, sub := range cmd.Commands() {
		install(cli, sub)
	}
}
