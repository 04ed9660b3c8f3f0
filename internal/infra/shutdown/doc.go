// Package shutdown stops long-running commands on SIGINT or SIGTERM.
//
// Usage:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	ctx, stop := h.Context(context.Background())
//	defer stop()
//	h.OnShutdown(func(ctx context.Context) error { return watcher.Stop() })
//	return h.Wait(ctx)
package shutdown
