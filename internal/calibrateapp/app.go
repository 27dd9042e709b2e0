// Package calibrateapp implements ltrcalibrate: derive the detector's red
// and connection thresholds from interior scores and annotated batches.
package calibrateapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ltrgraph/internal/classify"
	"ltrgraph/internal/cmdutil"
	"ltrgraph/internal/interior"
	"ltrgraph/internal/match"
	"ltrgraph/internal/pairing"
	"ltrgraph/internal/pipeline"
	"ltrgraph/internal/stats"
	"ltrgraph/internal/version"
	"ltrgraph/internal/writers"
	"ltrgraph/pkg/api"
)

type options struct {
	truth     []string
	graphs    []string
	scores    []string
	config    string
	clamp     bool
	json      bool
	threads   int
	quiet     bool
	verbose   bool
	threshold float64
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv and runs the calibration.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var (
		o      options
		ran    bool
		helped bool
	)
	cmd := &cobra.Command{
		Use:   "ltrcalibrate --scores <rsc>... --truth <gs-dir> --graphs <graph-dir> [--truth ... --graphs ...]",
		Short: "Derive red and connection thresholds for the LTR detector",
		Long: "ltrcalibrate takes the 2nd percentile of the non-zero score ratios of the\n" +
			"interior score files as the red threshold, and the 5th percentile of the\n" +
			"weights of every two-way connected RT in the annotated batches as the\n" +
			"connection threshold. The two values are appended to --config as\n" +
			"\"red: <v>\" and \"connection: <v>\" lines, or printed.",
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			log := cmdutil.NewLogger(stderr, o.quiet, o.verbose)
			return run(ctx, o, stdout, log)
		},
	}
	if argv == nil {
		argv = []string{}
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	help := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		helped = true
		help(c, args)
	})

	f := cmd.Flags()
	f.StringArrayVar(&o.truth, "truth", nil, "Ground-truth directory (repeatable, paired with --graphs)")
	f.StringArrayVar(&o.graphs, "graphs", nil, "Graph directory (repeatable, paired with --truth)")
	f.StringArrayVar(&o.scores, "scores", nil, "Interior score file or directory of .rsc files (repeatable)")
	f.StringVar(&o.config, "config", "", "Detector config to append thresholds to (default: stdout)")
	f.BoolVar(&o.clamp, "clamp", false, "Use the smallest value when a sample is too small for its percentile")
	f.BoolVar(&o.json, "json", false, "Print the calibration as JSON instead of config lines")
	f.IntVarP(&o.threads, "threads", "t", 0, "File pairs processed concurrently (0=all CPUs)")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "Only log warnings and errors")
	f.BoolVar(&o.verbose, "verbose", false, "Log per-pair details")
	f.Float64Var(&o.threshold, "threshold", match.DefaultThreshold, "Reciprocal overlap threshold")

	err := cmd.Execute()
	if helped {
		return cmdutil.ExitUsage
	}
	if err != nil && !ran {
		fmt.Fprintln(stderr, "error:", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return cmdutil.ExitUsage
	}
	code := cmdutil.ExitCode(err)
	if code != cmdutil.ExitOK && code != cmdutil.ExitCancelled {
		fmt.Fprintln(stderr, "error:", err)
	}
	return code
}

func (o options) validate() error {
	switch {
	case len(o.scores) == 0:
		return errors.New("at least one --scores path is required")
	case len(o.truth) == 0:
		return errors.New("at least one --truth/--graphs pair is required")
	case len(o.truth) != len(o.graphs):
		return fmt.Errorf("%d --truth but %d --graphs directories", len(o.truth), len(o.graphs))
	case o.threshold < 0 || o.threshold > 1:
		return fmt.Errorf("--threshold %v outside [0, 1]", o.threshold)
	}
	return nil
}

func run(ctx context.Context, o options, stdout io.Writer, log *logrus.Logger) error {
	if err := o.validate(); err != nil {
		return cmdutil.Usage(err)
	}
	dirs := append(append([]string(nil), o.truth...), o.graphs...)
	if err := pairing.RequireDirs(dirs...); err != nil {
		return cmdutil.Usage(err)
	}
	u := stats.Fail
	if o.clamp {
		u = stats.Clamp
	}
	threads := o.threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	files, err := interior.Expand(o.scores)
	if err != nil {
		return err
	}
	vectors, err := interior.LoadAll(files)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"files": len(files), "vectors": len(vectors)}).Info("loaded interior scores")
	clamped := underflows(log, "red", len(vectors), stats.RedPercentile, u)
	red, err := stats.RedThreshold(vectors, u)
	if err != nil {
		return err
	}

	proc := pipeline.Files{Options: classify.Options{Threshold: o.threshold, Census: o.verbose}}
	var all classify.Result
	for i := range o.truth {
		pairs, err := pairing.Dirs(o.truth[i], o.graphs[i])
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"gs": o.truth[i], "graph": o.graphs[i], "pairs": len(pairs)}).Info("matching connections")
		res, err := pipeline.Run(ctx, pipeline.Config{Threads: threads}, pairs, proc, log)
		if err != nil {
			return err
		}
		all = classify.Merge(all, res)
	}
	weights := stats.ConnectionWeights(all.Records)
	if underflows(log, "connection", len(weights), stats.ConnectionPercentile, u) {
		clamped = true
	}
	conn, err := stats.Percentile(weights, stats.ConnectionPercentile, u)
	if err != nil {
		return err
	}

	cal := api.CalibrationV1{
		Red:        red,
		Connection: conn,
		Vectors:    len(vectors),
		Weights:    len(weights),
		Clamped:    clamped,
	}
	format := writers.FormatText
	if o.json {
		format = writers.FormatJSON
	}
	if o.config == "" {
		outw := bufio.NewWriter(stdout)
		if err := writers.WriteCalibration(format, outw, cal); err != nil {
			return cmdutil.Output(err)
		}
		return cmdutil.Output(outw.Flush())
	}
	if err := appendTo(o.config, format, cal); err != nil {
		return cmdutil.Output(err)
	}
	log.WithField("config", o.config).Info("thresholds appended")
	return nil
}

// underflows warns when a pool of n values is too small for percentile p
// and reports whether clamping will apply.
func underflows(log logrus.FieldLogger, name string, n int, p float64, u stats.Underflow) bool {
	if n == 0 || stats.PercentileIndex(n, p) >= 0 || u != stats.Clamp {
		return false
	}
	log.WithFields(logrus.Fields{
		"threshold": name,
		"values":    n,
		"need":      stats.MinSample(p),
	}).Warn("sample too small for percentile; using the smallest value")
	return true
}

// appendTo adds the calibration to the end of an existing or new file.
func appendTo(path, format string, cal api.CalibrationV1) (err error) {
	fh, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return writers.WriteCalibration(format, fh, cal)
}
