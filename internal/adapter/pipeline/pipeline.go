// Package pipeline drives one distribution attempt through its states:
// validate, probe, create. Each platform distributor supplies the three
// steps; the pipeline owns state transitions, logging, panic recovery and
// the folding of every failure into a PlatformCampaignResult.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ad-fanout/internal/core/domain"
)

// Check is the outcome of local validation. Errors block the attempt;
// warnings are reported on the result and never block.
type Check struct {
	Errors   []string
	Warnings []string
}

// Add appends reasons to the error list.
func (c *Check) Add(reasons ...string) {
	c.Errors = append(c.Errors, reasons...)
}

// Warn appends a non-blocking remark.
func (c *Check) Warn(w string) {
	c.Warnings = append(c.Warnings, w)
}

// Steps are the platform-specific parts of an attempt. Probe is optional.
// Create fills the ids of the result it is given.
type Steps struct {
	Platform domain.Platform
	Validate func() Check
	Probe    func(ctx context.Context) error
	Create   func(ctx context.Context, res *domain.PlatformCampaignResult) error
}

type tracker struct {
	platform domain.Platform
	state    domain.AttemptState
	logger   *slog.Logger
	ctx      context.Context
}

func (t *tracker) move(to domain.AttemptState) {
	if !t.state.CanTransition(to) {
		// Steps are hard-wired below; reaching this is a bug.
		panic(fmt.Sprintf("illegal transition %s -> %s", t.state, to))
	}
	t.logger.DebugContext(t.ctx, "attempt state changed",
		"event", "attempt_state_changed",
		"module", string(t.platform),
		"layer", "distributor",
		"from", string(t.state),
		"to", string(to),
	)
	t.state = to
}

// Run executes steps and always returns a result.
func Run(ctx context.Context, logger *slog.Logger, steps Steps) (res domain.PlatformCampaignResult) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	t := &tracker{platform: steps.Platform, state: domain.StatePending, logger: logger, ctx: ctx}
	res = domain.PlatformCampaignResult{Platform: steps.Platform}

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "distribution panicked",
				"event", "distribution_panic",
				"module", string(steps.Platform),
				"layer", "distributor",
				"state", string(t.state),
				"panic", r,
			)
			res.Success = false
			res.State = domain.StateFailed
			res.Error = &domain.ResultError{
				Name:    domain.ErrNameUnknown,
				Message: fmt.Sprintf("%s: unexpected failure: %v", steps.Platform.DisplayName(), r),
			}
		}
	}()

	t.move(domain.StateValidating)
	check := steps.Validate()
	res.Warnings = check.Warnings
	if len(check.Errors) > 0 {
		t.move(domain.StateRejected)
		verr := &domain.ValidationError{Platform: steps.Platform, Reasons: check.Errors}
		res.State = t.state
		res.Error = &domain.ResultError{Name: domain.ErrNameValidation, Message: verr.Error(), Details: check.Errors}
		logger.InfoContext(ctx, "campaign rejected by validation",
			"event", "distribution_rejected",
			"module", string(steps.Platform),
			"layer", "distributor",
			"reasons", len(check.Errors),
		)
		return res
	}

	t.move(domain.StateConnecting)
	if steps.Probe != nil {
		if err := steps.Probe(ctx); err != nil {
			t.move(domain.StateConnectionFailed)
			res.State = t.state
			res.Error = &domain.ResultError{Name: domain.ErrNameConnection, Message: err.Error()}
			logger.WarnContext(ctx, "platform probe failed",
				"event", "distribution_connection_failed",
				"module", string(steps.Platform),
				"layer", "distributor",
				"error", err,
			)
			return res
		}
	}

	t.move(domain.StateCreating)
	if err := steps.Create(ctx, &res); err != nil {
		t.move(domain.StateFailed)
		res.Success = false
		res.State = t.state
		res.Error = resultError(err)
		var cerr *domain.CreationError
		if errors.As(err, &cerr) && len(cerr.Created) > 0 {
			res.Orphans = cerr.Created
			for _, o := range cerr.Created {
				res.Error.Details = append(res.Error.Details,
					fmt.Sprintf("orphaned paused %s %s left on %s", o.Kind, o.ID, steps.Platform.DisplayName()))
			}
		}
		logger.WarnContext(ctx, "campaign creation failed",
			"event", "distribution_failed",
			"module", string(steps.Platform),
			"layer", "distributor",
			"orphans", len(res.Orphans),
			"error", err,
		)
		return res
	}

	t.move(domain.StateCreated)
	res.Success = true
	res.State = t.state
	logger.InfoContext(ctx, "campaign created",
		"event", "distribution_created",
		"module", string(steps.Platform),
		"layer", "distributor",
		"campaign_id", res.CampaignID,
	)
	return res
}

func resultError(err error) *domain.ResultError {
	return &domain.ResultError{Name: domain.Classify(err), Message: err.Error()}
}
