// Package shutdown provides graceful shutdown for memod.
//
// A Handler waits for SIGINT, SIGTERM or an explicit Trigger, then runs
// the registered hooks in reverse order under a shared timeout.
//
// Usage:
//
//	h := shutdown.NewHandler(30 * time.Second)
//	h.OnShutdown("http server", srv.Shutdown)
//	err := h.Wait(ctx)
package shutdown
