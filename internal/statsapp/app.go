// Package statsapp implements ltrstats: compare ground-truth RT annotations
// with candidate graphs and report how well the graphs connect each RT's
// left and right LTR.
package statsapp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ltrgraph/internal/classify"
	"ltrgraph/internal/cmdutil"
	"ltrgraph/internal/jsonutil"
	"ltrgraph/internal/match"
	"ltrgraph/internal/pairing"
	"ltrgraph/internal/pipeline"
	"ltrgraph/internal/stats"
	"ltrgraph/internal/version"
	"ltrgraph/internal/writers"
)

// SummaryFile is written into the output directory with --summary.
const SummaryFile = "summary.json"

type options struct {
	threads   int
	quiet     bool
	verbose   bool
	progress  bool
	summary   bool
	threshold float64
	output    string
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv and runs the statistics report. A help flag or a
// wrong argument count prints usage and returns 1.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var (
		o      options
		ran    bool
		helped bool
	)
	cmd := &cobra.Command{
		Use:   "ltrstats <gs-dir> <graph-dir> <out-dir>",
		Short: "Connection statistics of candidate graphs against annotated retrotransposons",
		Long: "ltrstats pairs every ground-truth annotation file with the graph built from\n" +
			"the same chromosome, matches annotated LTRs to graph nodes by reciprocal\n" +
			"overlap, classifies each RT as two-way, left-only, right-only or unconnected\n" +
			"and reports weight statistics of the two-way connections.",
		Version:       version.Version,
		Args:          cobra.ExactArgs(3),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			log := cmdutil.NewLogger(stderr, o.quiet, o.verbose)
			return run(ctx, o, args, stdout, stderr, log)
		},
	}
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
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
	f.IntVarP(&o.threads, "threads", "t", 0, "File pairs processed concurrently (0=all CPUs)")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "Only log warnings and errors")
	f.BoolVar(&o.verbose, "verbose", false, "Log per-pair details and count ambiguous matches")
	f.BoolVar(&o.progress, "progress", false, "Show a progress bar on stderr")
	f.BoolVar(&o.summary, "summary", false, "Also write "+SummaryFile+" into <out-dir>")
	f.Float64Var(&o.threshold, "threshold", match.DefaultThreshold, "Reciprocal overlap threshold")
	f.StringVarP(&o.output, "output", "o", writers.FormatText, "Report format on stdout: text | json")

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

func run(ctx context.Context, o options, args []string, stdout, stderr io.Writer, log *logrus.Logger) error {
	gsDir, graphDir, outDir := args[0], args[1], args[2]
	if err := pairing.RequireDirs(gsDir, graphDir, outDir); err != nil {
		return cmdutil.Usage(err)
	}
	if _, ok := writers.ReportWriters[o.output]; !ok {
		return cmdutil.Usage(fmt.Errorf("unknown --output %q", o.output))
	}
	if o.threshold < 0 || o.threshold > 1 {
		return cmdutil.Usage(fmt.Errorf("--threshold %v outside [0, 1]", o.threshold))
	}
	threads := o.threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	pairs, err := pairing.Dirs(gsDir, graphDir)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"pairs": len(pairs), "threads": threads}).Info("matching connections")

	cfg := pipeline.Config{Threads: threads}
	if o.progress {
		cfg.Progress = stderr
	}
	proc := pipeline.Files{Options: classify.Options{Threshold: o.threshold, Census: o.verbose}}
	res, err := pipeline.Run(ctx, cfg, pairs, proc, log)
	if err != nil {
		return err
	}

	log.Info("collecting statistics")
	rep, err := stats.NewReport(res)
	if err != nil {
		return err
	}
	if res.Ambiguous > 0 {
		log.WithField("ltrs", res.Ambiguous).Warn("some LTRs had more than one qualifying candidate")
	}

	if err := writers.WriteRecordFiles(outDir, res.Records); err != nil {
		return cmdutil.Output(err)
	}
	if o.summary {
		if err := jsonutil.WriteFile(filepath.Join(outDir, SummaryFile), writers.ToAPISummary(rep)); err != nil {
			return cmdutil.Output(err)
		}
	}
	outw := bufio.NewWriter(stdout)
	if err := writers.WriteReport(o.output, outw, rep); err != nil {
		return cmdutil.Output(err)
	}
	return cmdutil.Output(outw.Flush())
}
