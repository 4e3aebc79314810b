// Command buffon estimates π by throwing needles onto a ruled plane.
//
// It reads the number of needles from standard input and prints the
// crossing counts, the crossing probability, and its inverse.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nozzle/buffon"
	"github.com/nozzle/buffon/needle"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("buffon", flag.ContinueOnError)
	flags.SetOutput(stderr)
	seed := flags.Int64("seed", -1, "Random seed (negative draws one from the system entropy source)")
	verbose := flags.Bool("verbose", false, "Log progress to stderr")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	logger := slog.New(slog.DiscardHandler)
	if *verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	fmt.Fprint(stdout, "Enter number of needles to throw: ")
	needleCount, err := buffon.ReadNeedleCount(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	config := buffon.DefaultConfig()
	config.Seed = *seed
	if *verbose {
		config.ProgressCallback = func(thrown, total int) {
			logger.Info("progress",
				"thrown", humanize.Comma(int64(thrown)),
				"total", humanize.Comma(int64(total)),
				"percent", fmt.Sprintf("%.0f", 100*float64(thrown)/float64(total)),
			)
		}
	}

	logger.Info("throwing needles",
		"count", humanize.Comma(int64(needleCount)),
		"needle_length", needle.NeedleLength,
		"line_distance", needle.LineDistance,
	)

	start := time.Now()
	sim := buffon.New(config)
	summary, err := sim.Run(needleCount)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger.Info("simulation complete",
		"seed", sim.Seed(),
		"elapsed", time.Since(start).Round(time.Millisecond),
		"expected_probability", fmt.Sprintf("%.6f", needle.ExpectedProbability()),
	)

	if err := summary.WriteReport(stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
