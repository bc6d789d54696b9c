package util

import (
	"context"
	"fmt"

	"couple_coach_backend/pkg/monitoring"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Branch is one independent read in a fan-out. Run must write its result
// through its own closure; branches never share state.
type Branch struct {
	Name string
	Run  func(ctx context.Context) error
}

// FanOut runs every branch concurrently and waits for all of them to settle.
// A failing branch is logged and recovered — it never cancels its siblings and
// never reaches the caller, so the merge step after FanOut always sees every
// branch either completed or defaulted. Context cancellation is the only thing
// that abandons in-flight branches.
func FanOut(ctx context.Context, log *zap.Logger, branches ...Branch) {
	g, ctx := errgroup.WithContext(ctx)
	for _, b := range branches {
		branch := b
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					monitoring.ContextBranchFailures.WithLabelValues(branch.Name).Inc()
					log.Error("fan-out branch panicked",
						zap.String("branch", branch.Name),
						zap.String("panic", fmt.Sprint(r)))
				}
			}()
			if err := branch.Run(ctx); err != nil {
				monitoring.ContextBranchFailures.WithLabelValues(branch.Name).Inc()
				log.Warn("fan-out branch failed, continuing without it",
					zap.String("branch", branch.Name),
					zap.Error(err))
			}
			return nil
		})
	}
	// Branches always return nil; Wait only gathers completion.
	_ = g.Wait()
}
