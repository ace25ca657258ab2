// Command lstcheck performs an offline integrity check of an OMNI-style .lst
// file: it runs the same parser as the dashboard, prints a summary, and
// verifies the structural invariants the interactive view relies on (rows
// decoded, chronological ordering of composed timestamps, a usable magnitude
// range). Exit status is nonzero when the file would not start a dashboard.
//
// Usage:
//
//	go run ./cmd/lstcheck -file omni_web_data1.lst
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/omni-storm-viz/internal/adapter/lst"
	"github.com/couchcryptid/omni-storm-viz/internal/domain"
)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	file := flag.String("file", "", "path to the .lst file to check")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ds, stats, err := lst.NewParser(logger).Parse(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}

	printSummary(ds, stats)

	phases := []*phase{
		checkCounts(ds, stats),
		checkOrdering(ds),
		checkMagnitudes(ds),
	}

	failed := false
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS  %s\n", p.name)
			continue
		}
		failed = true
		fmt.Printf("FAIL  %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("      %s\n", e)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func printSummary(ds domain.Dataset, stats lst.Stats) {
	lo, hi := ds.MagnitudeRange()
	fmt.Printf("file:             %s\n", ds.SourcePath)
	fmt.Printf("rows:             %d\n", stats.Rows)
	fmt.Printf("skipped lines:    %d\n", stats.Skipped)
	fmt.Printf("null timestamps:  %d\n", stats.NullTimestamps)
	fmt.Printf("years:            %v\n", ds.Years())
	fmt.Printf("magnitude range:  [%.2f, %.2f], mean %.2f\n", lo, hi, ds.MagnitudeMean())
}

func checkCounts(ds domain.Dataset, stats lst.Stats) *phase {
	p := &phase{name: "counts"}
	if ds.Len() != stats.Rows {
		p.errorf("dataset length %d != decoded rows %d", ds.Len(), stats.Rows)
	}
	if stats.Rows+stats.Skipped != stats.Lines {
		p.errorf("rows %d + skipped %d != lines %d", stats.Rows, stats.Skipped, stats.Lines)
	}
	if ds.NullTimestamps() != stats.NullTimestamps {
		p.errorf("null timestamp count mismatch: %d vs %d", ds.NullTimestamps(), stats.NullTimestamps)
	}
	return p
}

// checkOrdering verifies composed timestamps never go backwards. OMNI exports
// are chronological by construction; a violation usually means a mangled file.
func checkOrdering(ds domain.Dataset) *phase {
	p := &phase{name: "chronological order"}
	prev := -1 // index of last row with a composed timestamp
	for i, r := range ds.Records {
		if r.DateTime.IsZero() {
			continue
		}
		if prev >= 0 && r.DateTime.Before(ds.Records[prev].DateTime) {
			p.errorf("row %d (%s) precedes row %d (%s)",
				i, r.DateTime.Format("2006-01-02 15:04"),
				prev, ds.Records[prev].DateTime.Format("2006-01-02 15:04"))
			if len(p.errors) >= 5 {
				p.errorf("further ordering violations suppressed")
				break
			}
		}
		prev = i
	}
	return p
}

func checkMagnitudes(ds domain.Dataset) *phase {
	p := &phase{name: "magnitude range"}
	lo, hi := ds.MagnitudeRange()
	if lo == 0 && hi == 0 {
		p.errorf("no finite magnitude values; slider range would be empty")
	}
	if lo > hi {
		p.errorf("inverted range [%.2f, %.2f]", lo, hi)
	}
	return p
}
