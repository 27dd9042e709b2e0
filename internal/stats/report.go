package stats

import "ltrgraph/internal/classify"

// Report is the descriptive summary of a whole batch.
type Report struct {
	LeftToRight ConStat
	RightToLeft ConStat
	Average     ConStat
	Ratio       ConStat

	TwoWay, LeftOnly, RightOnly, Unconnected int
	RTs, Skipped, Ambiguous                  int
}

// NewReport summarises the Bidirectional records of res. It fails with
// ErrEmptyStatistics when there are fewer than two of them.
func NewReport(res classify.Result) (Report, error) {
	var lr, rl, avg, rat []float64
	for _, r := range res.Records {
		if r.Kind != classify.Bidirectional {
			continue
		}
		lr = append(lr, r.LR)
		rl = append(rl, r.RL)
		avg = append(avg, (r.LR+r.RL)/2)
		rat = append(rat, min(r.LR, r.RL)/max(r.LR, r.RL))
	}

	rep := Report{
		TwoWay:      len(lr),
		LeftOnly:    res.Count(classify.LeftOnly),
		RightOnly:   res.Count(classify.RightOnly),
		Unconnected: res.Count(classify.Unconnected),
		RTs:         res.RTs,
		Skipped:     res.Skipped,
		Ambiguous:   res.Ambiguous,
	}
	var err error
	if rep.LeftToRight, err = NewConStat("left to right", lr); err != nil {
		return Report{}, err
	}
	if rep.RightToLeft, err = NewConStat("right to left", rl); err != nil {
		return Report{}, err
	}
	if rep.Average, err = NewConStat("average", avg); err != nil {
		return Report{}, err
	}
	if rep.Ratio, err = NewConStat("ratio", rat); err != nil {
		return Report{}, err
	}
	return rep, nil
}

// OneWay is the fraction of all RTs classified LeftOnly or RightOnly.
func (r Report) OneWay() float64 { return frac(r.LeftOnly+r.RightOnly, r.RTs) }

// Missed is the fraction of all RTs classified Unconnected.
func (r Report) Missed() float64 { return frac(r.Unconnected, r.RTs) }

func frac(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
