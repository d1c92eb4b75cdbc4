package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
)

// command defines one imgstore subcommand with unified help generation.
// Adapted from the teacher's internal/cli.Command: a FlagSet-per-command
// plus a single Exec entry point, trimmed of the context/IO plumbing that
// existed to support the ticket tracker's test harness.
type command struct {
	// Flags defines command-specific flags. Identity comes from Usage.
	Flags *flag.FlagSet

	// Usage is the freeform usage string shown after "imgstore".
	Usage string

	// Short is a one-line description for the top-level help listing.
	Short string

	// Exec runs the command after flags are parsed, receiving the
	// remaining positional arguments.
	Exec func(args []string) error
}

// name returns the command name (first word of Usage).
func (c *command) name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

func (c *command) printHelp() {
	fmt.Fprintln(os.Stderr, "Usage: imgstore", c.Usage)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, c.Short)

	if c.Flags != nil && c.Flags.HasFlags() {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Flags:")
		c.Flags.SetOutput(os.Stderr)
		c.Flags.PrintDefaults()
	}
}

// run parses flags and executes the command, returning a process exit
// code.
func (c *command) run(args []string) int {
	c.Flags.SetOutput(&strings.Builder{}) // discard pflag's own error output

	if err := c.Flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.printHelp()
			return 0
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		c.printHelp()
		return 1
	}

	if err := c.Exec(c.Flags.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
