package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// PostCommitEffect is a side action run after the booking row is already
// committed: slot reservation, notification emails. Each effect is
// isolated; a failure is recorded and the rest still run.
type PostCommitEffect struct {
	Name string
	Run  func(ctx context.Context) error
}

// RunEffects executes the effects in order and returns a description of
// each failure. It never returns an error: by the time effects run, the
// booking exists and nothing here may undo that.
func RunEffects(ctx context.Context, logger *zap.Logger, effects []PostCommitEffect) []string {
	var failures []string

	for _, e := range effects {
		if err := e.Run(ctx); err != nil {
			logger.Warn("post-commit effect failed",
				zap.String("effect", e.Name),
				zap.Error(err),
			)
			failures = append(failures, fmt.Sprintf("%s: %v", e.Name, err))
		}
	}

	return failures
}
