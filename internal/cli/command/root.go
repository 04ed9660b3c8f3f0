package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cribcrack/internal/cli/config"
	"github.com/yndnr/cribcrack/internal/cli/output"
	"github.com/yndnr/cribcrack/internal/core/service"
	"github.com/yndnr/cribcrack/internal/infra/buildinfo"
	"github.com/yndnr/cribcrack/internal/telemetry/logger"
	"github.com/yndnr/cribcrack/internal/telemetry/metric"
)

// ErrNotFound is returned by the recovery commands when the search finished
// without any key producing the crib.
var ErrNotFound = errors.New("no key produces the crib")

// Process exit codes.
const (
	ExitOK       = 0
	ExitError    = 1
	ExitNotFound = 2
)

// ExitCode maps the error returned by App().Run to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitError
	}
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "cribcrack",
		Usage:   "Recover shift and repeating-key cipher keys from a known plaintext fragment",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.BuildTime),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ShiftCommand(),
			VigenereCommand(),
			EncodeCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
		// main decides the exit code.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// globalFlags returns the global CLI flags. Flags left unset fall back to
// CRIBCRACK_* environment variables, then the config file, then defaults.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default ~/.cribcrack/config.yaml)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.StringFlag{
			Name:  "log-backend",
			Usage: "Logger implementation: slog, zap",
		},
		&cli.BoolFlag{
			Name:  "reveal",
			Usage: "Log recovered keys unmasked",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "Goroutines evaluating candidates",
		},
		&cli.IntFlag{
			Name:  "batch-size",
			Usage: "Candidates evaluated per parallel round",
		},
		&cli.IntFlag{
			Name:  "budget",
			Usage: "Maximum candidates to enumerate, 0 for no limit",
		},
		&cli.BoolFlag{
			Name:  "skip-duplicates",
			Usage: "Skip candidate keys already tried",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Abort a recovery after this long, 0 for no limit",
		},
		&cli.StringFlag{
			Name:  "metrics-textfile",
			Usage: "Write Prometheus metrics to `FILE` after each recovery",
		},
		&cli.BoolFlag{
			Name:  "progress",
			Usage: "Draw a progress bar on stderr",
		},
	}
}

// binding maps a flag to the config key it overrides.
type binding struct {
	flag string
	key  string
}

var globalBindings = []binding{
	{"output", "output.format"},
	{"log-level", "log.level"},
	{"log-format", "log.format"},
	{"log-backend", "log.backend"},
	{"reveal", "log.reveal"},
	{"workers", "search.workers"},
	{"batch-size", "search.batch_size"},
	{"budget", "search.budget"},
	{"skip-duplicates", "search.skip_duplicates"},
	{"timeout", "search.timeout"},
	{"metrics-textfile", "metrics.textfile"},
}

// flagOverrides collects the explicitly set flags as dotted config keys.
func flagOverrides(c *cli.Context, bindings []binding) map[string]any {
	m := make(map[string]any)
	for _, b := range bindings {
		if c.IsSet(b.flag) {
			m[b.key] = c.Value(b.flag)
		}
	}
	return m
}

// loadConfig loads the effective configuration for c.
func loadConfig(c *cli.Context, extra ...binding) (*config.Config, error) {
	bindings := append(append([]binding(nil), globalBindings...), extra...)
	return config.Load(c.String("config"), flagOverrides(c, bindings))
}

// env is what a recovery command works with.
type env struct {
	cfg      *config.Config
	log      logger.Logger
	metrics  *metric.Registry
	svc      *service.RecoveryService
	format   output.Formatter
	stdout   io.Writer
	stderr   io.Writer
	progress *output.ProgressBar
}

// setup loads the configuration and builds the logger, metrics and
// recovery service.
func setup(c *cli.Context, extra ...binding) (*env, error) {
	cfg, err := loadConfig(c, extra...)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Backend: cfg.Log.Backend,
		Output:  c.App.ErrWriter,
		Reveal:  cfg.Log.Reveal,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	logger.SetDefault(log)

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	rt := &env{
		cfg:     cfg,
		log:     log,
		metrics: metric.NewRegistry(),
		format:  output.NewFormatter(format),
		stdout:  c.App.Writer,
		stderr:  c.App.ErrWriter,
	}

	opts := []service.Option{
		service.WithRecorder(rt.metrics),
		service.WithLogger(log),
	}
	if c.Bool("progress") {
		rt.progress = output.NewProgressBar(rt.stderr, c.Command.Name)
		opts = append(opts, service.WithProgress(rt.progress.Update))
	}

	rt.svc = service.NewRecoveryService(&service.Config{
		Workers:          cfg.Search.Workers,
		BatchSize:        cfg.Search.BatchSize,
		MaxCandidates:    cfg.Search.Budget,
		SkipDuplicates:   cfg.Search.SkipDuplicates,
		ProgressInterval: cfg.Search.ProgressInterval,
	}, opts...)
	return rt, nil
}

// recoverFunc runs one recovery over cipher and reports it.
type recoverFunc func(ctx context.Context, cipher, source string) (*output.Report, error)

// run executes fn under the configured timeout, renders the report and
// exports metrics.
func (rt *env) run(ctx context.Context, cipher, source string, fn recoverFunc) error {
	if rt.cfg.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rt.cfg.Search.Timeout)
		defer cancel()
	}

	rep, err := fn(ctx, cipher, source)
	if rt.progress != nil {
		rt.progress.Finish()
	}
	if path := rt.cfg.Metrics.Textfile; path != "" {
		if werr := rt.metrics.WriteTextfile(path); werr != nil {
			rt.log.Warn("metrics export failed", "path", path, "error", werr)
		}
	}
	if err != nil {
		return err
	}

	if err := rt.format.Format(rt.stdout, rep); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if !rep.Found {
		return ErrNotFound
	}
	return nil
}

// execute reads the ciphertext and runs fn once, or keeps re-running it
// on every change of --file when --watch is set.
func (rt *env) execute(c *cli.Context, fn recoverFunc) error {
	if c.Bool("watch") {
		path := c.String("file")
		if path == "" {
			return errors.New("--watch requires --file")
		}
		return rt.watch(c.Context, path, fn)
	}

	cipher, source, err := readInput(c)
	if err != nil {
		return err
	}
	return rt.run(c.Context, cipher, source, fn)
}

// PrintError prints an error message to w.
func PrintError(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "error: "+format+"\n", args...)
}
