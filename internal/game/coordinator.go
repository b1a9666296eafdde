// Package game drives the two-phase task-completion workflow: credit the
// player's points, then mark the underlying bill paid. The two mutations
// are not atomic and there is no compensating rollback, so a step-two
// failure leaves the server in a real inconsistent state that callers
// must surface as such.
package game

import (
	"context"
	"fmt"

	"github.com/vitaminR/autobudget/internal/domain"
)

// Phase is the coordinator's position in the completion state machine.
type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhaseAwardingPoints Phase = "awarding_points"
	PhaseMarkingPaid    Phase = "marking_bill_paid"
	PhaseDone           Phase = "done"

	// PhaseInconsistent is the terminal state reached when points were
	// awarded but the bill mutation failed. The server-side inconsistency
	// persists until an operator intervenes; there is no retry path.
	PhaseInconsistent Phase = "inconsistent"
)

// CompletionAPI is the slice of the REST client the coordinator needs.
type CompletionAPI interface {
	CompleteTask(ctx context.Context, player domain.PlayerID, taskType domain.TaskType) error
	MarkBillPaid(ctx context.Context, billID int) error
}

// Coordinator runs one task completion at a time.
type Coordinator struct {
	api   CompletionAPI
	phase Phase
}

// NewCoordinator creates an idle coordinator.
func NewCoordinator(api CompletionAPI) *Coordinator {
	return &Coordinator{api: api, phase: PhaseIdle}
}

// Phase returns the current state-machine position.
func (c *Coordinator) Phase() Phase { return c.phase }

// Complete runs both mutations in order.
//
// Step-one failure: nothing changed server-side, so the machine returns
// to idle and the error surfaces as a plain failure. Step-two failure:
// the points are already credited, the bill stays unpaid, and the machine
// terminates in the inconsistent state with a PartialFailureError.
func (c *Coordinator) Complete(ctx context.Context, player domain.PlayerID, task domain.Task) error {
	if c.phase == PhaseInconsistent {
		return &PartialFailureError{Player: player, TaskType: task.TaskType, BillID: task.ID,
			Err: fmt.Errorf("coordinator already inconsistent; refusing further completions")}
	}

	c.phase = PhaseAwardingPoints
	if err := c.api.CompleteTask(ctx, player, task.TaskType); err != nil {
		c.phase = PhaseIdle
		return fmt.Errorf("awarding points for %q: %w", task.Name, err)
	}

	c.phase = PhaseMarkingPaid
	if err := c.api.MarkBillPaid(ctx, task.ID); err != nil {
		c.phase = PhaseInconsistent
		return &PartialFailureError{
			Player:   player,
			TaskType: task.TaskType,
			BillID:   task.ID,
			Err:      err,
		}
	}

	c.phase = PhaseDone
	return nil
}

// Reset returns a finished coordinator to idle so another task can run.
// The inconsistent state is deliberately sticky: acknowledge it first.
func (c *Coordinator) Reset() {
	if c.phase == PhaseDone {
		c.phase = PhaseIdle
	}
}

// Acknowledge clears the inconsistent state after the user has seen it.
func (c *Coordinator) Acknowledge() {
	if c.phase == PhaseInconsistent {
		c.phase = PhaseIdle
	}
}
