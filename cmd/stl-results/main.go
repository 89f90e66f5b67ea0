// Command stl-results is a tool for viewing and analyzing step result files.
//
// Result files are written by a step context configured with a file
// result logger and hold one CBOR-encoded event per publish, share,
// retrieve or failed operation.
//
// Usage:
//
//	stl-results <command> [flags] <file.rlog>
//
// Commands:
//
//	view     View result file in human-readable format
//	export   Export result file to JSON or CSV format
//	filter   Filter result file and write to new file
//	stats    Show statistics about the result file
//
// Examples:
//
//	# View all events
//	stl-results view continuity.rlog
//
//	# View only published values of one pin
//	stl-results view -kind publish -pin VCC1 continuity.rlog
//
//	# Export to CSV
//	stl-results export -format csv -o results.csv continuity.rlog
//
//	# Keep site 2 only
//	stl-results filter -site 2 -o site2.rlog continuity.rlog
//
//	# Show statistics
//	stl-results stats continuity.rlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/semitest/stl-go/cmd/stl-results/commands"
)

const usage = `stl-results - Step Result Analyzer

Usage:
  stl-results <command> [flags] <file.rlog>

Commands:
  view     View result file in human-readable format
  export   Export result file to JSON or CSV format
  filter   Filter result file and write to new file
  stats    Show statistics about the result file

Use "stl-results <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// parsePath parses args and returns the single result file argument.
func parsePath(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: result file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `stl-results view - View result file in human-readable format

Usage:
  stl-results view [flags] <file.rlog>

Flags:
`)
		fs.PrintDefaults()
	}

	kind := fs.String("kind", "", "Filter by kind (publish, share, retrieve, error)")
	stepID := fs.String("step-id", "", "Filter by step ID")
	dataID := fs.String("data-id", "", "Filter by data ID")
	pin := fs.String("pin", "", "Filter by pin name")
	site := fs.String("site", "", "Filter by site number (or system)")

	path := parsePath(fs, args)

	filter := commands.ViewFilter{
		StepID: *stepID,
		DataID: *dataID,
		Pin:    *pin,
	}

	if *kind != "" {
		k, err := commands.ParseKindFlag(*kind)
		if err != nil {
			fail(err)
		}
		filter.Kind = &k
	}

	if *site != "" {
		s, err := commands.ParseSiteFlag(*site)
		if err != nil {
			fail(err)
		}
		filter.Site = &s
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `stl-results export - Export result file to JSON or CSV format

Usage:
  stl-results export [flags] <file.rlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	path := parsePath(fs, args)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `stl-results filter - Filter result file and write to new file

Usage:
  stl-results filter [flags] <file.rlog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	stepID := fs.String("step-id", "", "Filter by step ID")
	stepName := fs.String("step-name", "", "Filter by step name")
	kind := fs.String("kind", "", "Filter by kind (publish, share, retrieve, error)")
	dataID := fs.String("data-id", "", "Filter by data ID")
	pin := fs.String("pin", "", "Filter by pin name")
	site := fs.String("site", "", "Filter by site number (or system)")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")

	path := parsePath(fs, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:    *output,
		StepID:    *stepID,
		StepName:  *stepName,
		Kind:      *kind,
		DataID:    *dataID,
		Pin:       *pin,
		Site:      *site,
		TimeStart: *timeStart,
		TimeEnd:   *timeEnd,
	}

	n, err := commands.RunFilter(path, opts)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Filtered %d events to %s\n", n, *output)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `stl-results stats - Show statistics about the result file

Usage:
  stl-results stats <file.rlog>

`)
	}

	path := parsePath(fs, args)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
