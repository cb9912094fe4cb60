package play

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/foresight/internal/engine"
)

// SurveyOptions controls a survey.
type SurveyOptions struct {
	Runs    int // Number of seeds to try
	Workers int // Concurrent simulations, 0 means GOMAXPROCS
}

// SurveyReport aggregates unpredicted runs of one level over consecutive seeds.
type SurveyReport struct {
	Runs           int
	MinSteps       int
	MaxSteps       int
	MeanSteps      float64
	StepLimitHits  int         // Runs rejected for cascading past the limit
	FurtherMatches int         // Runs that ended with a match still on the board
	Histogram      map[int]int // Step count -> runs
	BestSeed       uint64      // Seed with the most steps
}

// Survey runs the request once per seed in [req.Seed, req.Seed+Runs) without
// prediction and summarises how long the cascades last. Each run owns its
// random source, so runs are independent of scheduling.
func Survey(ctx context.Context, req Request, opts SurveyOptions) (SurveyReport, error) {
	if opts.Runs <= 0 {
		opts.Runs = 100
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	type outcome struct {
		steps   int
		further bool
		limit   bool
	}
	outcomes := make([]outcome, opts.Runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := 0; i < opts.Runs; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := req
			r.Seed = req.Seed + uint64(i)
			r.Prediction = nil

			res, err := Run(r)
			if errors.Is(err, engine.ErrStepLimit) {
				outcomes[i] = outcome{limit: true}
				return nil
			}
			if err != nil {
				return err
			}
			outcomes[i] = outcome{
				steps:   len(res.Sim.Steps),
				further: res.Sim.FurtherMatchesPossible,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SurveyReport{}, err
	}

	report := SurveyReport{Runs: opts.Runs, Histogram: make(map[int]int), MinSteps: -1, BestSeed: req.Seed}
	total, counted := 0, 0
	for i, o := range outcomes {
		if o.limit {
			report.StepLimitHits++
			continue
		}
		report.Histogram[o.steps]++
		if o.further {
			report.FurtherMatches++
		}
		if report.MinSteps < 0 || o.steps < report.MinSteps {
			report.MinSteps = o.steps
		}
		if o.steps > report.MaxSteps {
			report.MaxSteps = o.steps
			report.BestSeed = req.Seed + uint64(i)
		}
		total += o.steps
		counted++
	}
	if counted > 0 {
		report.MeanSteps = float64(total) / float64(counted)
	} else {
		report.MinSteps = 0
	}
	return report, nil
}
