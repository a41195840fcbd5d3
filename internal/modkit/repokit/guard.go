package repokit

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const guardBudget = 10 * time.Second

var errGuardTimeout = errors.New("startup guard timed out")

// MustGuard panics unless st's backends answer. ctx without a deadline gets guardBudget
func MustGuard(ctx context.Context, st interface{ Guard(context.Context) error }) {
	if _, bounded := ctx.Deadline(); !bounded {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, guardBudget, errGuardTimeout)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("repokit: dependency guard: %w", err))
	}
}
