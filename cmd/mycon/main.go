// Command mycon runs a Befunge-98 source file to completion.
package main

import (
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"mycon/internal/env"
	"mycon/internal/program"
	"mycon/internal/trace"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

type options struct {
	sourcePath string
	reportTime bool
	doTrace    bool
	sleep      time.Duration
}

func run(args []string) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mycon:", err)
		return 1
	}

	code, err := os.ReadFile(opts.sourcePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mycon: reading source:", err)
		return 1
	}
	if !utf8.Valid(code) {
		fmt.Fprintln(os.Stderr, "mycon: reading source: not valid UTF-8")
		return 1
	}

	environment := env.New().WithSleep(opts.sleep)
	engine := program.Read(string(code), environment)

	if opts.doTrace {
		engine.OnTrace(trace.New(os.Stderr).Hook())
	}

	start := time.Now()
	exit := engine.Run()
	elapsed := time.Since(start)

	if opts.reportTime {
		fmt.Fprintf(os.Stderr, "mycon: %s μs elapsed\n", humanize.Comma(elapsed.Microseconds()))
	}

	return int(exit)
}

// parseArgs implements the CLI surface from spec.md §6: a required
// positional SOURCE_FILE plus -p/--time, -t/--trace, -s/--sleep <ms>.
func parseArgs(args []string) (options, error) {
	var opts options

	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "-p", "--time":
			opts.reportTime = true
		case "-t", "--trace":
			opts.doTrace = true
		case "-s", "--sleep":
			i++
			if i >= len(args) {
				return opts, fmt.Errorf("%s requires a millisecond argument", a)
			}
			var ms int64
			if _, err := fmt.Sscanf(args[i], "%d", &ms); err != nil {
				return opts, fmt.Errorf("%s: invalid duration %q", a, args[i])
			}
			opts.sleep = time.Duration(ms) * time.Millisecond
		default:
			if opts.sourcePath != "" {
				return opts, fmt.Errorf("unexpected argument %q", a)
			}
			opts.sourcePath = a
		}
	}

	if opts.sourcePath == "" {
		return opts, fmt.Errorf("usage: mycon [-p|--time] [-t|--trace] [-s|--sleep MS] SOURCE_FILE")
	}

	return opts, nil
}
