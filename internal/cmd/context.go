package cmd

import (
	"context"
	"os"
	"os/signal"
)

// cmdContext returns a context cancelled on interrupt, so a long-running
// scan stops feeding its worker pool cleanly instead of dying mid-write.
// The stop function is deliberately dropped: the context lives for the
// remainder of the process.
func cmdContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
	return ctx
}
