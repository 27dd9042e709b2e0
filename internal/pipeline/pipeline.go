// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"io"

	"github.com/cheggaaa/pb/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"ltrgraph/internal/classify"
	"ltrgraph/internal/pairing"
)

// Config controls the batch run.
type Config struct {
	Threads  int       // concurrent file pairs (>=1)
	Progress io.Writer // progress bar destination; nil disables it
}

// Run processes every pair and merges the results in input order.
// The first error cancels the remaining pairs and is returned.
func Run(
	ctx context.Context,
	cfg Config,
	pairs []pairing.Pair,
	proc Processor,
	log logrus.FieldLogger,
) (classify.Result, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	var bar *pb.ProgressBar
	if cfg.Progress != nil {
		bar = pb.New(len(pairs))
		bar.SetWriter(cfg.Progress)
		bar.Start()
		defer bar.Finish()
	}

	results := make([]classify.Result, len(pairs))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Threads)
	for i, p := range pairs {
		i, p := i, p
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entry := log.WithFields(logrus.Fields{"gs": p.Truth, "graph": p.Graph})
			entry.Info("loading pair")
			res, err := proc.Process(p)
			if err != nil {
				return err
			}
			entry.WithFields(logrus.Fields{
				"rts":        res.RTs,
				"classified": len(res.Records),
				"skipped":    res.Skipped,
			}).Debug("pair classified")
			if res.Ambiguous > 0 {
				entry.WithField("ltrs", res.Ambiguous).Debug("LTRs with more than one qualifying candidate")
			}
			results[i] = res
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return classify.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return classify.Result{}, err
	}
	return classify.Merge(results...), nil
}
