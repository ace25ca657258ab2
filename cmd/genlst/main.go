// Command genlst generates synthetic OMNI-style .lst fixtures for local
// development and testing. Output is deterministic for a given seed, so
// fixtures can be regenerated byte-for-byte. A path ending in .gz produces a
// gzip-compressed file, which the parser reads transparently.
//
// Usage:
//
//	go run ./cmd/genlst -out testdata/omni_2024.lst -rows 2000 -years 2023,2024
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path (.lst or .lst.gz)")
	rows := flag.Int("rows", 500, "number of rows to generate")
	years := flag.String("years", "2024", "comma-separated list of years")
	seed := flag.Int64("seed", 1, "PRNG seed for deterministic output")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	yearList, err := parseYears(*years)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(*out, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	if err := generate(w, yearList, *rows, *seed); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("close gzip stream: %w", err)
		}
	}

	log.Printf("wrote %d rows to %s", *rows, *out)
	return nil
}

func parseYears(s string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(s, ",") {
		y, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", part)
		}
		years = append(years, y)
	}
	return years, nil
}

// generate emits rows in chronological order, cycling minutes within a storm
// window in May. Magnitudes follow a rough storm profile so the dashboard's
// color scale has something to show.
func generate(w io.Writer, years []int, rows int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	perYear := rows / len(years)
	remainder := rows % len(years)

	for i, year := range years {
		n := perYear
		if i == len(years)-1 {
			n += remainder
		}

		day, hour, minute := 130, 0, 0
		for j := 0; j < n; j++ {
			mag := 3.0 + 12.0*storm(j, n) + rng.Float64()
			bx := rng.NormFloat64() * mag / 2
			by := rng.NormFloat64() * mag / 2
			bz := rng.NormFloat64() * mag / 2

			_, err := fmt.Fprintf(w,
				"%4d %3d %2d %2d %6.2f %6.2f %6.2f %6.2f %6.1f %5.1f %8.0f %5.2f %5.2f %5.1f %6.1f %6.1f %6.1f %6.1f %6.1f\n",
				year, day, hour, minute,
				mag, bx, by, bz,
				300+rng.Float64()*500, // speed km/s
				rng.Float64()*20,      // proton density
				1e4+rng.Float64()*4e5, // proton temperature
				rng.NormFloat64()*5,   // electric field
				rng.Float64()*4,       // plasma beta
				2+rng.Float64()*15,    // alfven mach number
				rng.Float64()*1500,    // AE
				-rng.Float64()*1200,   // AL
				rng.Float64()*500,     // AU
				rng.NormFloat64()*30,  // SYM-D
				-rng.Float64()*150,    // SYM-H
			)
			if err != nil {
				return err
			}

			minute += 5
			if minute == 60 {
				minute = 0
				hour++
			}
			if hour == 24 {
				hour = 0
				day++
			}
		}
	}
	return nil
}

// storm shapes magnitude over the run: quiet, ramp up, peak, decay.
func storm(i, n int) float64 {
	x := float64(i) / float64(n)
	switch {
	case x < 0.3:
		return x / 3
	case x < 0.5:
		return 0.1 + (x-0.3)*4.5
	default:
		return 1.0 - (x-0.5)*1.8
	}
}
