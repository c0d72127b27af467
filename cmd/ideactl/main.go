// Command ideactl inspects an idea catalog from the terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	ideastore "github.com/UniversityOfSaintThomas/AI-Toolkit/internal/app/store/ideas"
	"github.com/spf13/pflag"
)

// usageError marks a bad invocation. It exits with status 2.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

type command struct {
	name    string
	summary string
	run     func(env *env, args []string) error
}

var commands = []command{
	{"list", "list ideas, newest first, with optional filters", runList},
	{"show", "show one idea: show <id>", runShow},
	{"related", "list ideas related to one idea: related <id>", runRelated},
	{"options", "print the filter option sets", runOptions},
	{"kind", "classify a resource URL: kind <url>", runKind},
	{"check", "load the catalog and report problems", runCheck},
}

// env carries what every subcommand needs.
type env struct {
	dataFile string
	stdout   io.Writer
	stderr   io.Writer
}

func (e *env) load() (*ideastore.Store, error) {
	if e.dataFile == "" {
		return ideastore.LoadDefault()
	}
	s, err := ideastore.LoadFile(e.dataFile)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", e.dataFile, err)
	}
	return s, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one ideactl invocation and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	e := &env{stdout: stdout, stderr: stderr}

	flagSet := pflag.NewFlagSet("ideactl", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&e.dataFile, "data", "", "path to a YAML idea catalog (default: embedded catalog)")
	flagSet.Usage = func() { printHelp(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printHelp(stderr, flagSet)
		return 2
	}

	for _, c := range commands {
		if c.name != rest[0] {
			continue
		}
		err := c.run(e, rest[1:])
		var ue usageError
		switch {
		case err == nil:
			return 0
		case errors.Is(err, pflag.ErrHelp):
			return 0
		case errors.As(err, &ue):
			fmt.Fprintf(stderr, "ideactl %s: %v\n", c.name, err)
			return 2
		default:
			fmt.Fprintf(stderr, "ideactl %s: %v\n", c.name, err)
			return 1
		}
	}

	fmt.Fprintf(stderr, "ideactl: unknown command %q\n", rest[0])
	printHelp(stderr, flagSet)
	return 2
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: ideactl [--data FILE] <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, flagSet.FlagUsages())
}
