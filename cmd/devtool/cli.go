package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"
)

// dbTimeout bounds a single devtool database or broker operation
const dbTimeout = 2 * time.Minute

const (
	ansiGreen  = "\033[0;32m"
	ansiRed    = "\033[0;31m"
	ansiYellow = "\033[1;33m"
	ansiBlue   = "\033[0;34m"
	ansiReset  = "\033[0m"
)

// Exit codes returned by Registry.Dispatch
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage error")

// Command is a single devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, con *Console, args []string) error
}

// Console writes decorated status lines. Colors are dropped when NO_COLOR is set
// or the console was built for tests.
type Console struct {
	out   io.Writer
	err   io.Writer
	color bool
}

// NewConsole returns a console bound to stdout/stderr
func NewConsole() *Console {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Console{out: os.Stdout, err: os.Stderr, color: !noColor}
}

func (c *Console) line(w io.Writer, ansi, mark, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if c.color {
		fmt.Fprintf(w, "%s%s %s%s\n", ansi, mark, msg, ansiReset)
		return
	}
	fmt.Fprintf(w, "%s %s\n", mark, msg)
}

func (c *Console) Info(format string, a ...interface{}) {
	c.line(c.out, ansiBlue, "ℹ", format, a...)
}

func (c *Console) Success(format string, a ...interface{}) {
	c.line(c.out, ansiGreen, "✓", format, a...)
}

func (c *Console) Error(format string, a ...interface{}) {
	c.line(c.err, ansiRed, "✗", format, a...)
}

func (c *Console) Header(title string) {
	fmt.Fprintln(c.out)
	c.line(c.out, ansiYellow, "===", "%s ===", title)
}

// Registry holds the known commands keyed by name
type Registry struct {
	commands map[string]Command
}

func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command, len(cmds))}
	for _, cmd := range cmds {
		r.commands[cmd.Name()] = cmd
	}
	return r
}

func (r *Registry) names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usage writes the command table
func (r *Registry) Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: devtool <command> [args...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range r.names() {
		fmt.Fprintf(tw, "  %s\t%s\n", name, r.commands[name].Description())
	}
	tw.Flush()
}

// Dispatch runs the command named by args[0] and maps the outcome to an exit code
func (r *Registry) Dispatch(ctx context.Context, con *Console, args []string) int {
	if len(args) == 0 {
		r.Usage(con.err)
		return exitUsage
	}

	cmd, ok := r.commands[args[0]]
	if !ok {
		con.Error("unknown command: %s", args[0])
		r.Usage(con.err)
		return exitUsage
	}

	if err := cmd.Run(ctx, con, args[1:]); err != nil {
		con.Error("%s failed: %v", cmd.Name(), err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		return exitFailure
	}
	return exitOK
}
