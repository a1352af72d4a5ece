// Package saga runs a sequence of external side effects, undoing completed
// steps in reverse order when a later step fails.
package saga

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
)

// Step is one side effect and the action that reverses it. Compensate may be nil.
type Step struct {
	Name       string
	Action     func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Error reports the failing step and any compensation that could not be applied.
type Error struct {
	Step         string
	Err          error
	Compensation error
}

func (e *Error) Error() string {
	if e.Compensation != nil {
		return fmt.Sprintf("%s: %v (compensation failed: %v)", e.Step, e.Err, e.Compensation)
	}

	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Run executes steps in order. Compensations run on a context detached from
// cancellation so cleanup still happens after a deadline has passed.
func Run(ctx context.Context, steps ...Step) error {
	for idx, step := range steps {
		if err := ctx.Err(); err != nil {
			return &Error{Step: step.Name, Err: err, Compensation: compensate(ctx, steps[:idx])}
		}

		if err := step.Action(ctx); err != nil {
			log.Error().Err(err).Str("step", step.Name).Msg("saga step failed, compensating")

			return &Error{Step: step.Name, Err: err, Compensation: compensate(ctx, steps[:idx])}
		}
	}

	return nil
}

func compensate(ctx context.Context, done []Step) error {
	c := context.WithoutCancel(ctx)

	var errs error

	for idx := len(done) - 1; idx >= 0; idx-- {
		step := done[idx]
		if step.Compensate == nil {
			continue
		}

		if err := step.Compensate(c); err != nil {
			log.Error().Err(err).Str("step", step.Name).Msg("failed to compensate saga step")

			errs = multierr.Append(errs, fmt.Errorf("%s: %w", step.Name, err))
		}
	}

	return errs
}
