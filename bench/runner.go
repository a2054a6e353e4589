package bench

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/jzbor/ccs"
	"github.com/jzbor/ccs/bisim"
	"github.com/jzbor/ccs/lts"
	"github.com/jzbor/ccs/parser"
	"github.com/jzbor/ccs/random"
)

// Runner times exploration and refinement for every case of a suite. Each
// trial explores and checks from scratch; no state is shared between
// trials, so the measurements are independent.
type Runner struct {
	Logger     *zap.Logger
	Algorithms []bisim.Algorithm
}

func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{
		Logger:     logger,
		Algorithms: []bisim.Algorithm{bisim.Worklist{}, bisim.Naive{}},
	}
}

func (r *Runner) Run(suite *Suite) (*Report, error) {
	report := &Report{}
	for _, c := range suite.Cases {
		sys, err := r.system(c, suite.Seed)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		if err := r.runCase(report, c, sys); err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
	}
	return report, nil
}

func (r *Runner) runCase(report *Report, c Case, sys *ccs.System) error {
	if c.Trials <= 0 {
		c.Trials = 1
	}
	exploreTimes := make([]float64, 0, c.Trials)
	var explored *lts.LTS
	for trial := 0; trial < c.Trials; trial++ {
		start := time.Now()
		l, err := lts.Explore(sys)
		if err != nil {
			return err
		}
		exploreTimes = append(exploreTimes, time.Since(start).Seconds())
		explored = l
	}
	r.Logger.Info("explored",
		zap.String("case", c.Name),
		zap.Int("states", len(explored.States)),
		zap.Int("edges", len(explored.Edges)),
	)

	for _, alg := range r.Algorithms {
		checkTimes := make([]float64, 0, c.Trials)
		pairs := 0
		for trial := 0; trial < c.Trials; trial++ {
			start := time.Now()
			res := bisim.CheckLTS(explored, explored, alg)
			checkTimes = append(checkTimes, time.Since(start).Seconds())
			pairs = res.Relation.Size()
		}
		m := Measurement{
			Case:        c.Name,
			Algorithm:   alg.Name(),
			States:      len(explored.States),
			Edges:       len(explored.Edges),
			Pairs:       pairs,
			Trials:      c.Trials,
			ExploreMean: stat.Mean(exploreTimes, nil),
			CheckMean:   stat.Mean(checkTimes, nil),
		}
		if c.Trials > 1 {
			m.ExploreStd = stat.StdDev(exploreTimes, nil)
			m.CheckStd = stat.StdDev(checkTimes, nil)
		}
		report.Measurements = append(report.Measurements, m)
		r.Logger.Info("checked",
			zap.String("case", c.Name),
			zap.String("algorithm", alg.Name()),
			zap.Float64("check_mean_s", m.CheckMean),
			zap.Int("pairs", pairs),
		)
	}
	return nil
}

func (r *Runner) system(c Case, seed int64) (*ccs.System, error) {
	if c.File == "" {
		return random.Generate(c.States, c.Actions, c.Transitions, seed), nil
	}
	f, err := os.Open(c.File)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p := &parser.Parser{Name: c.Name}
	sys, err := p.Load(f)
	if err != nil {
		return nil, err
	}
	return sys, sys.Validate()
}
