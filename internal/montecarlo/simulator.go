// Package montecarlo runs the trial-level outcome simulation. Each
// trial samples one scenario branch through a cumulative-threshold
// table, then draws value, duration, and cost from clamped normals
// around that branch's catalog means.
package montecarlo

import (
	"context"

	"golang.org/x/sync/errgroup"

	"litigation-strategy-lab/internal/domain"
	"litigation-strategy-lab/internal/scenario"
	"litigation-strategy-lab/internal/stats"
)

// Distribution summarizes one sampled dimension across all trials.
type Distribution struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
	P25    float64
	P50    float64
	P75    float64
	P90    float64
}

// Result holds the aggregated simulation output. Trials is populated
// only when the simulator was created with KeepTrials; for large N the
// per-trial records are discarded after aggregation to bound memory.
type Result struct {
	TrialCount int
	Seed       int64

	// WinRate is the fraction of trials whose scenario is not a trial
	// loss, i.e. any outcome with a nonzero recovery.
	WinRate float64

	Values Distribution
	Times  Distribution
	Costs  Distribution

	Trials []domain.Trial
}

// ValuePercentile reports the p-th percentile of the simulated values.
// Requires KeepTrials; without retained trials it falls back to the
// precomputed quartile summary points.
func (r *Result) ValuePercentile(p float64) (float64, error) {
	if len(r.Trials) > 0 {
		values := make([]float64, len(r.Trials))
		for i, t := range r.Trials {
			values[i] = t.Value
		}
		return stats.Percentile(values, p)
	}
	switch {
	case p <= 25:
		return r.Values.P25, nil
	case p <= 50:
		return r.Values.P50, nil
	case p <= 75:
		return r.Values.P75, nil
	default:
		return r.Values.P90, nil
	}
}

// Options configures a Simulator.
type Options struct {
	Seed       int64
	Workers    int  // <= 1 runs the sequential reference path
	KeepTrials bool // retain per-trial records on the Result
	Params     *Params
}

// Simulator draws independent case outcomes from the scenario catalog.
// Order of trial execution never affects the final statistics: every
// aggregation (mean, median after sort, percentiles after sort, stddev)
// is order-independent.
type Simulator struct {
	byType       map[domain.ScenarioType]domain.Scenario
	caseStrength int
	opts         Options
	params       Params
}

// NewSimulator creates a simulator over a materialized catalog.
// caseStrength must already be clamped to [0, 10].
func NewSimulator(catalog []domain.Scenario, caseStrength int, opts Options) *Simulator {
	params := DefaultParams()
	if opts.Params != nil {
		params = *opts.Params
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Simulator{
		byType:       scenario.ByType(catalog),
		caseStrength: caseStrength,
		opts:         opts,
		params:       params,
	}
}

// Run executes trials independent trials and aggregates them. With the
// same seed and worker count the output is reproducible bit-for-bit:
// worker i draws from its own stream seeded seed+i, and per-worker
// slices merge in worker order before the single aggregation pass.
func (s *Simulator) Run(ctx context.Context, trials int) (*Result, error) {
	if trials <= 0 {
		return nil, domain.ErrInvalidTrialCount
	}

	workers := s.opts.Workers
	if workers > trials {
		workers = trials
	}

	parts := make([][]domain.Trial, workers)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		i := i
		share := trials / workers
		if i == 0 {
			share += trials % workers
		}
		g.Go(func() error {
			sampler := stats.NewSampler(s.opts.Seed + int64(i))
			part := make([]domain.Trial, 0, share)
			for n := 0; n < share; n++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				part = append(part, s.sampleTrial(sampler))
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]domain.Trial, 0, trials)
	for _, part := range parts {
		all = append(all, part...)
	}

	return s.aggregate(all)
}

// sampleTrial picks a scenario branch through the cumulative-threshold
// table, then adds Gaussian noise around the branch means.
func (s *Simulator) sampleTrial(sampler *stats.Sampler) domain.Trial {
	st := s.sampleScenarioType(sampler)
	branch := s.byType[st]
	noise := s.params.Noise[st]

	return domain.Trial{
		Scenario: st,
		Value:    sampler.Normal(branch.Value, noise.Value),
		TimeDays: sampler.Normal(float64(branch.DurationDays), noise.Time),
		Cost:     sampler.Normal(branch.Cost, noise.Cost),
	}
}

// sampleScenarioType maps uniform rolls through the threshold table.
// A primary roll resolves the settlement-heavy mass; the residual goes
// through a secondary roll, and trial outcomes through a tertiary roll
// weighted by case strength.
func (s *Simulator) sampleScenarioType(sampler *stats.Sampler) domain.ScenarioType {
	r := sampler.Uniform()
	switch {
	case r < s.params.DefaultJudgmentCum:
		return domain.ScenarioDefaultJudgment
	case r < s.params.EarlySettlementCum:
		return domain.ScenarioEarlySettlement
	case r < s.params.MidSettlementCum:
		return domain.ScenarioMidSettlement
	}

	r2 := sampler.Uniform()
	switch {
	case r2 < s.params.SummaryJudgmentCum:
		return domain.ScenarioSummaryJudgmentWin
	case r2 < s.params.LateSettlementCum:
		return domain.ScenarioLateSettlement
	}

	winProb := float64(s.caseStrength) / 10.0 * s.params.TrialWinCap
	if sampler.Uniform() < winProb {
		return domain.ScenarioTrialWin
	}
	return domain.ScenarioTrialLoss
}

func (s *Simulator) aggregate(all []domain.Trial) (*Result, error) {
	values := make([]float64, len(all))
	times := make([]float64, len(all))
	costs := make([]float64, len(all))
	wins := 0
	for i, t := range all {
		values[i] = t.Value
		times[i] = t.TimeDays
		costs[i] = t.Cost
		if t.Won() {
			wins++
		}
	}

	valueDist, err := summarize(values)
	if err != nil {
		return nil, err
	}
	timeDist, err := summarize(times)
	if err != nil {
		return nil, err
	}
	costDist, err := summarize(costs)
	if err != nil {
		return nil, err
	}

	res := &Result{
		TrialCount: len(all),
		Seed:       s.opts.Seed,
		WinRate:    float64(wins) / float64(len(all)),
		Values:     valueDist,
		Times:      timeDist,
		Costs:      costDist,
	}
	if s.opts.KeepTrials {
		res.Trials = all
	}
	return res, nil
}

func summarize(xs []float64) (Distribution, error) {
	mean, err := stats.Mean(xs)
	if err != nil {
		return Distribution{}, err
	}
	stdDev, err := stats.StdDev(xs)
	if err != nil {
		return Distribution{}, err
	}

	var d Distribution
	d.Mean = mean
	d.StdDev = stdDev
	for _, pt := range []struct {
		p    float64
		dest *float64
	}{
		{0, &d.Min},
		{25, &d.P25},
		{50, &d.P50},
		{75, &d.P75},
		{90, &d.P90},
		{100, &d.Max},
	} {
		v, err := stats.Percentile(xs, pt.p)
		if err != nil {
			return Distribution{}, err
		}
		*pt.dest = v
	}
	d.Median = d.P50
	return d, nil
}
