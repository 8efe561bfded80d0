// Command dstsolve loads a Directed Steiner Tree instance from a JSON file,
// runs the FLAC/G_F solver, and writes the JSON result to stdout (or a file).
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/wsgan001/DSTAlgoEvaluation/steiner"
)

type cliOptions struct {
	Input  string `long:"input" short:"i" required:"true" description:"path to a JSON instance file"`
	Output string `long:"output" short:"o" default:"-" description:"path to write the JSON result to; '-' for stdout"`

	Validate      bool `long:"validate" description:"run the post-solve arborescence validator"`
	Precheck      bool `long:"precheck" description:"enable the reachability precheck before each FLAC run"`
	Verbose       bool `long:"verbose" short:"v" description:"log one structured line per committed FLAC run"`
	JSONLogFormat bool `long:"json-logs" description:"emit logs as JSON instead of text"`
}

func main() {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.LongDescription = "dstsolve runs the FLAC/G_F Directed Steiner Tree solver against a JSON problem instance."

	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "dstsolve:", err)
		os.Exit(1)
	}
}

func run(opts cliOptions) error {
	logger := logrus.New()
	if opts.JSONLogFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if !opts.Verbose {
		logger.SetLevel(logrus.WarnLevel)
	}

	in, err := os.Open(opts.Input)
	if err != nil {
		return fmt.Errorf("opening instance file: %w", err)
	}
	defer in.Close()

	inst, err := steiner.LoadInstance(in)
	if err != nil {
		return fmt.Errorf("loading instance: %w", err)
	}

	var solveOpts []steiner.Option
	solveOpts = append(solveOpts, steiner.WithLogger(logger))
	if opts.Validate {
		solveOpts = append(solveOpts, steiner.WithValidation())
	}
	if opts.Precheck {
		solveOpts = append(solveOpts, steiner.WithReachabilityPrecheck())
	}

	logger.WithFields(logrus.Fields{
		"root":      inst.Root(),
		"terminals": len(inst.Terminals()),
		"vertices":  len(inst.Vertices()),
	}).Info("starting solve")

	res, err := steiner.Solve(inst, solveOpts...)
	if err != nil {
		return fmt.Errorf("solving instance: %w", err)
	}

	out := os.Stdout
	if opts.Output != "-" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := steiner.SaveResult(out, res); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	if !res.Feasible {
		logger.Warn("instance is infeasible: not every terminal is reachable from the root")
	}

	return nil
}
