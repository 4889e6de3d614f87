// perft counts, divides and searches the legal move tree of a chess position.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/movegen-go/internal/config"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("movegen-go perft version %s\n", programVersion)
		os.Exit(exitOK)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Unexpected arguments: %v\n", flag.Args())
		usage()
		os.Exit(exitUsage)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	os.Exit(run(cfg))
}

// run executes one invocation and returns the exit code.
func run(cfg *config.Config) int {
	runner, err := NewRunner(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}

	runErr := runner.Run()
	if err := runner.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return exitFailure
	}
	return exitOK
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(exitFailure)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(exitFailure)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the legal move tree of a chess position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  perft -depth 5\n")
	fmt.Fprintf(os.Stderr, "  perft -fen '8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1' -depth 4 -divide\n")
	fmt.Fprintf(os.Stderr, "  perft -moves 'e2e4 e7e5' -list\n")
	fmt.Fprintf(os.Stderr, "  perft -suite -suitedepth 3 -workers 4 -hash 1000000\n")
	fmt.Fprintf(os.Stderr, "  perft -suite -case kiwipete -v 2\n")
	fmt.Fprintf(os.Stderr, "  perft -search 4 -J\n")
}
