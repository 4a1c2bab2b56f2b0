// Command tpsolve solves a transport or assignment problem read from a YAML
// file and prints the solution, trace included, as JSON.
//
//	tpsolve -f problem.yaml [-method vogel] [-tolerance 0.01] [-max-iter 0] [-plot cost.png] [-v]
//
// Logs go to stderr; stdout carries only the JSON document.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/transportation/assignment"
	"github.com/katalvlaran/transportation/internal/costplot"
	"github.com/katalvlaran/transportation/internal/problemfile"
	"github.com/katalvlaran/transportation/trace"
	"github.com/katalvlaran/transportation/transport"
	"github.com/sirupsen/logrus"
)

// timestampFormat: millisecond resolution, zone included, sorts as text.
const timestampFormat = "2006-01-02T15:04:05.999Z07:00"

// exit codes
const (
	exitOK    = 0
	exitUsage = 2
	exitSolve = 1
)

type config struct {
	file      string
	method    string
	tolerance float64
	maxIter   int
	plotPath  string
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}
	log := newLogger(stderr, cfg.verbose)

	doc, err := problemfile.Load(cfg.file)
	if err != nil {
		log.WithError(err).WithField("file", cfg.file).Error("load problem")
		return exitUsage
	}
	log.WithFields(logrus.Fields{"file": cfg.file, "kind": doc.Kind}).Debug("problem loaded")

	var (
		out   any
		steps []trace.Step
		total float64
		label string
	)
	switch doc.Kind {
	case problemfile.KindTransport:
		var sol transport.Solution
		sol, err = solveTransport(doc, cfg)
		out, steps, total, label = sol, sol.Steps, sol.TotalCost, sol.Method.String()
	case problemfile.KindAssignment:
		var sol assignment.Solution
		sol, err = solveAssignment(doc, cfg)
		out, steps, total, label = sol, sol.Steps, sol.TotalCost, sol.Method
	}
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{"file": cfg.file, "kind": doc.Kind}).Error("solve")
		if errors.Is(err, problemfile.ErrUnknownMethod) {
			return exitUsage
		}

		return exitSolve
	}

	for _, st := range steps {
		log.WithFields(logrus.Fields{"step": st.Index, "kind": st.Kind}).Debug(st.Describe())
	}
	log.WithFields(logrus.Fields{
		"kind":      doc.Kind,
		"method":    label,
		"steps":     len(steps),
		"totalCost": total,
	}).Info("solved")

	if cfg.plotPath != "" {
		if err = costplot.Save(steps, label, cfg.plotPath); err != nil {
			log.WithError(err).WithField("plot", cfg.plotPath).Error("draw cost plot")
			return exitSolve
		}
		log.WithField("plot", cfg.plotPath).Info("cost plot written")
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(out); err != nil {
		log.WithError(err).Error("encode solution")
		return exitSolve
	}

	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("tpsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.file, "f", "", "problem file (YAML)")
	fs.StringVar(&cfg.method, "method", "", "override the method of the file")
	fs.Float64Var(&cfg.tolerance, "tolerance", transport.DefaultTolerance, "Vogel residue tolerance")
	fs.IntVar(&cfg.maxIter, "max-iter", 0, "iteration cap for minimum-cost and vogel (0 = automatic)")
	fs.StringVar(&cfg.plotPath, "plot", "", "also draw the running cost per step to this image (.png, .svg, .pdf)")
	fs.BoolVar(&cfg.verbose, "v", false, "log every step")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.file == "" {
		fmt.Fprintln(stderr, "tpsolve: -f is required")
		fs.Usage()
		return cfg, errors.New("missing -f")
	}

	return cfg, nil
}

// newLogger returns a text logrus logger with full timestamps.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func solveTransport(doc problemfile.Document, cfg config) (transport.Solution, error) {
	m, err := doc.TransportMethod(cfg.method)
	if err != nil {
		return transport.Solution{}, err
	}

	return transport.Solve(doc.TransportProblem(), transport.Options{
		Method:        m,
		Tolerance:     cfg.tolerance,
		MaxIterations: cfg.maxIter,
	})
}

func solveAssignment(doc problemfile.Document, cfg config) (assignment.Solution, error) {
	m, err := doc.AssignmentMethod(cfg.method)
	if err != nil {
		return assignment.Solution{}, err
	}
	if m == assignment.MethodMinimumCost {
		return assignment.MinimumCost(doc.AssignmentProblem())
	}

	return assignment.Hungarian(doc.AssignmentProblem())
}
