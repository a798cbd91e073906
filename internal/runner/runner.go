// Package runner executes the whole chart batch: every variant of every
// family, one linear pass each (locate file, validate schema, render, save),
// with per-chart failures recorded and never allowed to abort the batch.
package runner

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"sciplot/internal/charts"
	"sciplot/internal/config"
	"sciplot/internal/dataset"
	"sciplot/internal/errors"
	"sciplot/internal/render"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// Result records the outcome of one chart variant
type Result struct {
	Family  string
	Variant string
	Output  string
	Err     error
}

// Summary aggregates one batch run
type Summary struct {
	RunID    string
	Started  time.Time
	Duration time.Duration
	Results  []Result
}

// Succeeded counts charts that rendered
func (s *Summary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Failed counts charts that did not render
func (s *Summary) Failed() int {
	return len(s.Results) - s.Succeeded()
}

// Runner executes chart families against one configuration
type Runner struct {
	cfg   *config.Config
	style render.Style
}

// New creates a runner from the application configuration
func New(cfg *config.Config) *Runner {
	return &Runner{
		cfg:   cfg,
		style: render.NewStyle(cfg.Render.DPI, cfg.Render.WidthIn, cfg.Render.HeightIn),
	}
}

// Run executes every family. Families run sequentially by default; with
// Batch.Parallel they run concurrently under a weighted semaphore, which is
// safe because families share no state and write distinct output paths.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		RunID:   uuid.New().String(),
		Started: time.Now(),
	}
	log.Printf("[Runner] starting batch run %s", summary.RunID)

	families := charts.Families()
	if r.cfg.Batch.Parallel {
		results, err := r.runParallel(ctx, families)
		if err != nil {
			return nil, err
		}
		summary.Results = results
	} else {
		for _, family := range families {
			summary.Results = append(summary.Results, r.runFamily(family)...)
		}
	}

	summary.Duration = time.Since(summary.Started)
	log.Printf("[Runner] batch run %s finished: %d succeeded, %d failed in %s",
		summary.RunID, summary.Succeeded(), summary.Failed(), summary.Duration.Round(time.Millisecond))
	return summary, nil
}

func (r *Runner) runParallel(ctx context.Context, families []charts.Family) ([]Result, error) {
	sem := semaphore.NewWeighted(r.cfg.Batch.ParallelLimit)
	var mu sync.Mutex
	var wg sync.WaitGroup
	var all []Result

	for _, family := range families {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, errors.Wrap(err, "batch interrupted")
		}
		wg.Add(1)
		go func(f charts.Family) {
			defer wg.Done()
			defer sem.Release(1)
			results := r.runFamily(f)
			mu.Lock()
			all = append(all, results...)
			mu.Unlock()
		}(family)
	}
	wg.Wait()
	return all, nil
}

// runFamily renders every variant of one family, logging progress the way
// the batch always has
func (r *Runner) runFamily(family charts.Family) []Result {
	log.Printf("[Runner] ============================================================")
	log.Printf("[Runner] Running %s...", family.Name)

	results := make([]Result, 0, len(family.Variants))
	ok := true
	for _, variant := range family.Variants {
		err := r.runVariant(variant)
		if err != nil {
			ok = false
			log.Printf("[Runner] %s/%s failed:\n%v", family.Name, variant.Spec.Name, err)
		}
		results = append(results, Result{
			Family:  family.Name,
			Variant: variant.Spec.Name,
			Output:  variant.Output,
			Err:     err,
		})
	}

	if ok {
		log.Printf("[Runner] ✅ %s completed successfully", family.Name)
	} else {
		log.Printf("[Runner] ❌ %s had failures", family.Name)
	}
	return results
}

// runVariant is the single linear pass for one chart. Unexpected failures in
// the plotting layer (including panics) abort only this chart.
func (r *Runner) runVariant(variant charts.Variant) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.RenderFailed(variant.Spec.Name, fmt.Errorf("panic: %v", rec))
		}
	}()

	table, err := dataset.Load(r.cfg.Paths.DataDir, variant.Spec)
	if err != nil {
		return err
	}

	outPath := filepath.Join(r.cfg.Paths.OutputDir, variant.Output)
	if err := variant.Render(table, r.style, outPath); err != nil {
		return errors.RenderFailed(variant.Spec.Name, err)
	}
	log.Printf("[Runner] plot saved as: %s", outPath)
	return nil
}
