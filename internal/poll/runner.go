// internal/poll/runner.go
package poll

import (
	"context"
	"time"
)

// Run starts the ticker loop and emits one Result per cycle on out.
// No overlap. No retries.
func (r *Refresher) Run(ctx context.Context, out chan<- Result) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			out <- r.RefreshOnce()
		}
	}
}
