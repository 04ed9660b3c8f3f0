package service

import (
	"context"
	"iter"
	"time"

	"github.com/yndnr/cribcrack/internal/core/crack"
	"github.com/yndnr/cribcrack/internal/core/domain"
	"github.com/yndnr/cribcrack/internal/telemetry/logger"
	"github.com/yndnr/cribcrack/internal/telemetry/metric"
	"github.com/yndnr/cribcrack/pkg/alphabet"
)

// Recorder receives search metrics. *metric.Registry implements it.
type Recorder interface {
	AddTried(variant string, n int)
	AddSkipped(variant string, n int)
	ObserveRecovery(variant, outcome string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) AddTried(string, int)                          {}
func (nopRecorder) AddSkipped(string, int)                        {}
func (nopRecorder) ObserveRecovery(string, string, time.Duration) {}

// KeyRequest is the input of a repeating-key recovery.
type KeyRequest struct {
	Cipher    string
	Fragment  string
	KeyLength int
	Policy    alphabet.Policy
}

// ProgressFunc receives the number of candidates evaluated so far and the
// size of the candidate space. It is called at most once per
// Config.ProgressInterval.
type ProgressFunc func(done, total int)

// RecoveryService runs key recoveries. It is safe for concurrent use.
type RecoveryService struct {
	cfg      Config
	recorder Recorder
	log      logger.Logger
	progress ProgressFunc
}

// Option configures a RecoveryService.
type Option func(*RecoveryService)

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *RecoveryService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithLogger sets the logger used when the context carries none.
func WithLogger(l logger.Logger) Option {
	return func(s *RecoveryService) {
		if l != nil {
			s.log = l
		}
	}
}

// WithProgress sets a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(s *RecoveryService) {
		s.progress = fn
	}
}

// NewRecoveryService creates a RecoveryService. A nil cfg uses DefaultConfig.
func NewRecoveryService(cfg *Config, opts ...Option) *RecoveryService {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &RecoveryService{
		cfg:      cfg.normalized(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the effective configuration.
func (s *RecoveryService) Config() Config {
	return s.cfg
}

// BreakShift recovers the shift of a mono-alphabetic cipher. Shifts are
// tried from 0 to 25 and the smallest matching one wins.
func (s *RecoveryService) BreakShift(ctx context.Context, cipher, fragment string) (domain.ShiftRecovery, error) {
	p, err := crack.NewShiftProblem(cipher, fragment)
	if err != nil {
		return domain.ShiftRecovery{}, err
	}

	sp := space[int]{
		seq:      shifts(),
		total:    crack.ShiftCount,
		index:    func(shift int) int { return shift },
		newTrial: func() func(int) (string, bool) { return p.Try },
	}

	ctx, log, runID, err := s.begin(ctx, domain.VariantShift,
		"cipher_len", len(cipher), "fragment_len", len(fragment))
	if err != nil {
		return domain.ShiftRecovery{}, err
	}

	start := time.Now()
	out, err := newEngine(s.cfg, sp, log, s.progress).run(ctx)
	stats := domain.Stats{RunID: runID, Tried: out.tried, Skipped: out.skipped, Elapsed: time.Since(start)}

	var r domain.ShiftRecovery
	if out.hit != nil {
		r = domain.NewFound(out.hit.text, out.hit.cand, domain.Position{Index: out.hit.cand})
	}
	r = r.WithStats(stats)
	var shift any
	if out.hit != nil {
		shift = out.hit.cand
	}
	s.finish(log, domain.VariantShift, r.Found(), stats, err, "shift", shift)
	return r, err
}

// RecoverKey recovers a repeating key of req.KeyLength letters. Candidates
// are tried in ascending (offset, sub) order and the first match wins.
func (s *RecoveryService) RecoverKey(ctx context.Context, req KeyRequest) (domain.KeyRecovery, error) {
	p, err := crack.NewRepeatingProblem(req.Cipher, req.Fragment, req.KeyLength, req.Policy)
	if err != nil {
		return domain.KeyRecovery{}, err
	}

	sp := space[crack.Candidate]{
		seq:      p.Candidates(),
		total:    p.CandidateCount(),
		index:    func(c crack.Candidate) int { return c.Index },
		dedupKey: func(c crack.Candidate) string { return c.Key.String() },
		newTrial: func() func(crack.Candidate) (string, bool) {
			buf := p.NewBuffer()
			return func(c crack.Candidate) (string, bool) {
				return p.Try(c.Key, buf)
			}
		},
	}

	ctx, log, runID, err := s.begin(ctx, domain.VariantRepeating,
		"cipher_len", len(req.Cipher),
		"fragment_len", len(req.Fragment),
		"key_length", req.KeyLength,
		"policy", req.Policy.String(),
		"candidates", sp.total)
	if err != nil {
		return domain.KeyRecovery{}, err
	}

	start := time.Now()
	out, err := newEngine(s.cfg, sp, log, s.progress).run(ctx)
	stats := domain.Stats{RunID: runID, Tried: out.tried, Skipped: out.skipped, Elapsed: time.Since(start)}

	var r domain.KeyRecovery
	if out.hit != nil {
		r = domain.NewFound(out.hit.text, out.hit.cand.Key.String(), out.hit.cand.Position())
	}
	r = r.WithStats(stats)
	var key any
	if out.hit != nil {
		key = out.hit.cand.Key.String()
	}
	s.finish(log, domain.VariantRepeating, r.Found(), stats, err, "key", key)
	return r, err
}

// begin assigns a run ID and logs the start of a search.
func (s *RecoveryService) begin(ctx context.Context, variant domain.Variant, args ...any) (context.Context, logger.Logger, string, error) {
	runID, err := domain.NewRunID()
	if err != nil {
		return ctx, nil, "", err
	}
	if _, ok := logger.Lookup(ctx); !ok && s.log != nil {
		ctx = logger.WithLogger(ctx, s.log)
	}
	ctx = logger.WithRunID(ctx, runID)

	log := logger.L(ctx).With("variant", string(variant))
	log.Info("search started", append(args,
		"workers", s.cfg.Workers,
		"skip_duplicates", s.cfg.SkipDuplicates,
		"budget", s.cfg.MaxCandidates)...)
	return ctx, log, runID, nil
}

// finish logs the end of a search and records its metrics.
func (s *RecoveryService) finish(log logger.Logger, variant domain.Variant, found bool, stats domain.Stats, err error, keyAttr string, key any) {
	v := string(variant)
	s.recorder.AddTried(v, stats.Tried)
	s.recorder.AddSkipped(v, stats.Skipped)

	outcome := metric.OutcomeNotFound
	switch {
	case err != nil:
		outcome = metric.OutcomeError
	case found:
		outcome = metric.OutcomeFound
	}
	s.recorder.ObserveRecovery(v, outcome, stats.Elapsed)

	args := []any{
		"outcome", outcome,
		"tried", stats.Tried,
		"skipped", stats.Skipped,
		"elapsed", stats.Elapsed,
	}
	switch {
	case err != nil:
		log.Warn("search aborted", append(args, "error", err, "code", domain.GetErrorCode(err))...)
	case found:
		log.Info("search finished", append(args, keyAttr, key)...)
	default:
		log.Info("search finished", args...)
	}
}

func shifts() iter.Seq[int] {
	return func(yield func(int) bool) {
		for shift := 0; shift < crack.ShiftCount; shift++ {
			if !yield(shift) {
				return
			}
		}
	}
}
