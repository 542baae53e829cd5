// Package engine is the single entry point of the outcome simulation
// engine: validate inputs, materialize the scenario catalog, rank by
// expected value, select a best response, simulate, and synthesize the
// recommendation. Pure CPU-bound computation over in-memory data; any
// timeout is the caller's responsibility around Analyze.
package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"litigation-strategy-lab/internal/domain"
	"litigation-strategy-lab/internal/evaluation"
	"litigation-strategy-lab/internal/gametheory"
	"litigation-strategy-lab/internal/idhash"
	"litigation-strategy-lab/internal/montecarlo"
	"litigation-strategy-lab/internal/scenario"
	"litigation-strategy-lab/internal/strategy"
	"litigation-strategy-lab/internal/tree"
)

// Defaults and warning thresholds.
const (
	DefaultTrials                 = 10_000
	DefaultOpponentSettlementRate = 0.5

	// Trial counts above this are accepted but warned about: memory and
	// time grow linearly with N.
	largeTrialWarning = 1_000_000
)

// Request carries one analysis call's inputs. Damages and CaseStrength
// are required; the rest default per the field comments.
type Request struct {
	Damages      domain.DamagesRange
	CaseStrength int

	// OpponentSettlementRate in [0,1]; nil defaults to 0.5 (unknown).
	OpponentSettlementRate *float64

	// Trials defaults to DefaultTrials when zero.
	Trials int

	// Seed makes the full trial sequence reproducible; nil draws a
	// time-based seed.
	Seed *int64

	// Workers > 1 partitions trials across goroutines with independent
	// random streams. Zero means sequential.
	Workers int

	// KeepTrials retains per-trial records on the analysis detail.
	KeepTrials bool
}

// Analysis is the detailed output consumed by the reporting layer. The
// Recommendation field is the engine's externally consumed result; the
// rest exists for explanation and rendering.
type Analysis struct {
	Recommendation *domain.Recommendation

	Damages        domain.DamagesRange
	CaseStrength   int
	SettlementRate float64
	Trials         int
	Seed           int64

	Ranking    []evaluation.Ranked
	Opponent   domain.OpponentStrategy
	Matrix     gametheory.PayoffMatrix
	Tree       *tree.Node
	Simulation *montecarlo.Result
}

// Engine runs analyses. Safe for concurrent use: it holds no mutable
// state beyond the logger and sampling parameters.
type Engine struct {
	logger zerolog.Logger
	params montecarlo.Params
}

// New creates an engine with default sampling parameters.
func New(logger zerolog.Logger) *Engine {
	return &Engine{logger: logger, params: montecarlo.DefaultParams()}
}

// NewWithParams overrides the hand-tuned sampling constants.
func NewWithParams(logger zerolog.Logger, params montecarlo.Params) *Engine {
	return &Engine{logger: logger, params: params}
}

// Analyze validates the request and returns the recommendation.
func (e *Engine) Analyze(ctx context.Context, req Request) (*domain.Recommendation, error) {
	a, err := e.AnalyzeDetailed(ctx, req)
	if err != nil {
		return nil, err
	}
	return a.Recommendation, nil
}

// AnalyzeDetailed runs the full pipeline and returns the recommendation
// together with the ranking, payoff matrix, decision tree, and
// simulation summary.
//
// Validation happens before any computation; validation failures
// surface immediately with no partial result.
func (e *Engine) AnalyzeDetailed(ctx context.Context, req Request) (*Analysis, error) {
	if err := req.Damages.Validate(); err != nil {
		return nil, err
	}

	rate := DefaultOpponentSettlementRate
	if req.OpponentSettlementRate != nil {
		rate = *req.OpponentSettlementRate
		if rate < 0 || rate > 1 {
			return nil, domain.ErrInvalidProbability
		}
	}

	trials := req.Trials
	if trials == 0 {
		trials = DefaultTrials
	}
	if trials < 0 {
		return nil, domain.ErrInvalidTrialCount
	}
	if trials > largeTrialWarning {
		e.logger.Warn().
			Int("trials", trials).
			Msg("very large trial count: expect proportional memory and time cost")
	}

	caseStrength, clamped := domain.ClampCaseStrength(req.CaseStrength)
	if clamped {
		e.logger.Warn().
			Int("requested", req.CaseStrength).
			Int("clamped", caseStrength).
			Msg("case strength outside [0,10], clamped")
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	catalog := scenario.Catalog(req.Damages, caseStrength)
	ranking := evaluation.Rank(catalog)
	optimal := evaluation.Optimal(ranking)

	opponent := gametheory.ClassifyOpponent(rate)
	response, matrix := gametheory.BestResponse(optimal.ExpectedValue, opponent)

	sim := montecarlo.NewSimulator(catalog, caseStrength, montecarlo.Options{
		Seed:       seed,
		Workers:    req.Workers,
		KeepTrials: req.KeepTrials,
		Params:     &e.params,
	})
	result, err := sim.Run(ctx, trials)
	if err != nil {
		return nil, err
	}

	rec := strategy.Synthesize(optimal, response, opponent, result)
	rec.AnalysisID = idhash.ComputeAnalysisID(req.Damages, caseStrength, rate, trials, seed)

	return &Analysis{
		Recommendation: rec,

		Damages:        req.Damages,
		CaseStrength:   caseStrength,
		SettlementRate: rate,
		Trials:         trials,
		Seed:           seed,

		Ranking:    ranking,
		Opponent:   opponent,
		Matrix:     matrix,
		Tree:       tree.Build(req.Damages, caseStrength),
		Simulation: result,
	}, nil
}
