package service

import (
	"context"
	"iter"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/yndnr/cribcrack/internal/core/domain"
	"github.com/yndnr/cribcrack/internal/telemetry/logger"
	"github.com/yndnr/cribcrack/pkg/cmap"
)

// space describes an ordered candidate space for the engine.
type space[C any] struct {
	seq   iter.Seq[C]
	total int
	index func(C) int
	// dedupKey returns the key identifying a candidate's trial. nil
	// disables duplicate skipping.
	dedupKey func(C) string
	// newTrial returns a trial function owned by a single goroutine.
	newTrial func() func(C) (string, bool)
}

type hit[C any] struct {
	cand C
	text string
}

type outcome[C any] struct {
	hit     *hit[C]
	tried   int
	skipped int
}

// engine evaluates one candidate space. It is used for a single search.
type engine[C any] struct {
	cfg      Config
	sp       space[C]
	log      logger.Logger
	seen     *cmap.Map[int]
	progress rate.Sometimes
	onProg   ProgressFunc
}

func newEngine[C any](cfg Config, sp space[C], log logger.Logger, onProg ProgressFunc) *engine[C] {
	e := &engine[C]{
		cfg:      cfg,
		sp:       sp,
		log:      log,
		progress: rate.Sometimes{Interval: cfg.ProgressInterval},
		onProg:   onProg,
	}
	if cfg.SkipDuplicates && sp.dedupKey != nil {
		e.seen = cmap.New[int]()
	}
	return e
}

// claim records idx as a claimant of c's key and reports whether idx is
// the smallest claimant so far. A key claimed by a smaller index has
// already been, or is being, tried with the same outcome.
func (e *engine[C]) claim(c C, idx int) bool {
	if e.seen == nil {
		return true
	}
	owner := e.seen.Upsert(e.sp.dedupKey(c), idx, func(existing int, exists bool) int {
		if exists && existing < idx {
			return existing
		}
		return idx
	})
	return owner == idx
}

func (e *engine[C]) overBudget(idx int) bool {
	return e.cfg.MaxCandidates > 0 && idx >= e.cfg.MaxCandidates
}

func (e *engine[C]) reportProgress(out *outcome[C]) {
	e.progress.Do(func() {
		e.log.Debug("search progress",
			"tried", out.tried,
			"skipped", out.skipped,
			"total", e.sp.total)
		if e.onProg != nil {
			e.onProg(out.tried+out.skipped, e.sp.total)
		}
	})
}

func (e *engine[C]) run(ctx context.Context) (outcome[C], error) {
	if err := ctx.Err(); err != nil {
		return outcome[C]{}, canceled(err)
	}
	if e.cfg.Workers == 1 {
		return e.runSequential(ctx)
	}
	return e.runParallel(ctx)
}

func (e *engine[C]) runSequential(ctx context.Context) (outcome[C], error) {
	var out outcome[C]
	try := e.sp.newTrial()
	for c := range e.sp.seq {
		if err := ctx.Err(); err != nil {
			return out, canceled(err)
		}
		idx := e.sp.index(c)
		if e.overBudget(idx) {
			return out, budgetExhausted(e.cfg.MaxCandidates)
		}
		if !e.claim(c, idx) {
			out.skipped++
			continue
		}
		out.tried++
		if text, ok := try(c); ok {
			out.hit = &hit[C]{cand: c, text: text}
			return out, nil
		}
		e.reportProgress(&out)
	}
	return out, nil
}

// runParallel evaluates consecutive batches of candidates with a worker
// pool. Within a batch, a worker stops once a smaller index has matched;
// after the batch, the smallest matching index wins. The result is
// therefore the sequential first match.
func (e *engine[C]) runParallel(ctx context.Context) (outcome[C], error) {
	var out outcome[C]
	batch := make([]C, 0, e.cfg.BatchSize)

	for c := range e.sp.seq {
		if e.overBudget(e.sp.index(c)) {
			if err := e.evalBatch(ctx, batch, &out); err != nil || out.hit != nil {
				return out, err
			}
			return out, budgetExhausted(e.cfg.MaxCandidates)
		}
		batch = append(batch, c)
		if len(batch) < cap(batch) {
			continue
		}
		if err := e.evalBatch(ctx, batch, &out); err != nil || out.hit != nil {
			return out, err
		}
		e.reportProgress(&out)
		batch = batch[:0]
	}

	err := e.evalBatch(ctx, batch, &out)
	return out, err
}

func (e *engine[C]) evalBatch(ctx context.Context, batch []C, out *outcome[C]) error {
	if len(batch) == 0 {
		return nil
	}

	var (
		best    atomic.Int64
		tried   atomic.Int64
		skipped atomic.Int64
	)
	best.Store(math.MaxInt64)
	hits := make([]*hit[C], len(batch))

	workers := min(e.cfg.Workers, len(batch))
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			try := e.sp.newTrial()
			for i := w; i < len(batch); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				c := batch[i]
				idx := e.sp.index(c)
				if int64(idx) > best.Load() {
					return nil
				}
				if !e.claim(c, idx) {
					skipped.Add(1)
					continue
				}
				tried.Add(1)
				if text, ok := try(c); ok {
					hits[i] = &hit[C]{cand: c, text: text}
					lowerTo(&best, int64(idx))
					return nil
				}
			}
			return nil
		})
	}

	err := g.Wait()
	out.tried += int(tried.Load())
	out.skipped += int(skipped.Load())
	if err != nil {
		return canceled(ctx.Err())
	}
	for _, h := range hits {
		if h != nil {
			out.hit = h
			break
		}
	}
	return nil
}

func lowerTo(v *atomic.Int64, n int64) {
	for {
		cur := v.Load()
		if n >= cur || v.CompareAndSwap(cur, n) {
			return
		}
	}
}

func canceled(cause error) error {
	return domain.ErrSearchCanceled.WithCause(cause)
}

func budgetExhausted(limit int) error {
	return domain.ErrSearchBudgetExhausted.WithDetailsf("no match within the first %d candidates", limit)
}
