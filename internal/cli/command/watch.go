package command

import (
	"context"
	"errors"
	"time"

	"github.com/yndnr/cribcrack/internal/infra/filewatch"
	"github.com/yndnr/cribcrack/internal/infra/shutdown"
)

const shutdownTimeout = 5 * time.Second

// watch runs fn over path once and again after every change until ctx is
// done or the process receives SIGINT or SIGTERM. Recovery errors are
// printed and do not stop the loop.
func (rt *env) watch(parent context.Context, path string, fn recoverFunc) error {
	w, err := filewatch.NewWatcher(filewatch.WithLogger(rt.log))
	if err != nil {
		return err
	}
	if err := w.Watch(path); err != nil {
		_ = w.Stop()
		return err
	}

	h := shutdown.NewHandler(shutdownTimeout)
	h.OnShutdown(func(context.Context) error {
		return w.Stop()
	})

	ctx, stop := h.Context(parent)
	defer stop()

	rerun := func(p string) {
		cipher, err := readFile(p)
		if err == nil {
			err = rt.run(ctx, cipher, p, fn)
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			PrintError(rt.stderr, "%v", err)
		}
	}
	w.OnChange(rerun)

	rerun(path)
	rt.log.Info("watching for changes", "path", path)

	runErr := w.Run(ctx)
	return errors.Join(runErr, h.Shutdown())
}
