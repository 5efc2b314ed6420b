// Package httpserver runs an http.Handler until its context is cancelled and
// then shuts it down gracefully.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil { ... }
//
// Run returns nil after a clean shutdown. Listen failures are wrapped with
// ErrStart and shutdown failures with ErrShutdown.
package httpserver
