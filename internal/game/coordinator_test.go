package game

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitaminR/autobudget/internal/domain"
)

// stubAPI records calls and fails on demand.
type stubAPI struct {
	completeErr error
	markErr     error

	completeCalls int
	markCalls     int
	lastPlayer    domain.PlayerID
	lastTaskType  domain.TaskType
	lastBillID    int
}

func (s *stubAPI) CompleteTask(ctx context.Context, player domain.PlayerID, taskType domain.TaskType) error {
	s.completeCalls++
	s.lastPlayer = player
	s.lastTaskType = taskType
	return s.completeErr
}

func (s *stubAPI) MarkBillPaid(ctx context.Context, billID int) error {
	s.markCalls++
	s.lastBillID = billID
	return s.markErr
}

func electricTask() domain.Task {
	return domain.Task{
		ID:        7,
		Name:      "Electric",
		Amount:    decimal.NewFromFloat(150.00),
		BillClass: domain.ClassNeeded,
		TaskType:  domain.TaskPayBill,
	}
}

func TestComplete_BothStepsSucceed(t *testing.T) {
	api := &stubAPI{}
	c := NewCoordinator(api)

	err := c.Complete(context.Background(), domain.Player1, electricTask())

	require.NoError(t, err)
	assert.Equal(t, PhaseDone, c.Phase())
	assert.Equal(t, 1, api.completeCalls)
	assert.Equal(t, 1, api.markCalls)
	assert.Equal(t, domain.Player1, api.lastPlayer)
	assert.Equal(t, domain.TaskPayBill, api.lastTaskType)
	assert.Equal(t, 7, api.lastBillID)

	c.Reset()
	assert.Equal(t, PhaseIdle, c.Phase())
}

func TestComplete_StepOneFailureStaysIdle(t *testing.T) {
	boom := errors.New("503 from server")
	api := &stubAPI{completeErr: boom}
	c := NewCoordinator(api)

	err := c.Complete(context.Background(), domain.Player2, electricTask())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, IsPartialFailure(err), "step-one failure is an ordinary error, not a partial failure")
	assert.Equal(t, PhaseIdle, c.Phase(), "nothing changed server-side; machine returns to idle")
	assert.Equal(t, 0, api.markCalls, "bill mutation must not be attempted after step-one failure")
}

func TestComplete_StepTwoFailureIsInconsistent(t *testing.T) {
	boom := errors.New("500 from server")
	api := &stubAPI{markErr: boom}
	c := NewCoordinator(api)

	err := c.Complete(context.Background(), domain.Player1, electricTask())

	require.Error(t, err)
	require.True(t, IsPartialFailure(err))
	assert.Equal(t, PhaseInconsistent, c.Phase())

	var pfe *PartialFailureError
	require.ErrorAs(t, err, &pfe)
	assert.Equal(t, domain.Player1, pfe.Player)
	assert.Equal(t, domain.TaskPayBill, pfe.TaskType)
	assert.Equal(t, 7, pfe.BillID)
	assert.ErrorIs(t, pfe, boom)
}

func TestComplete_InconsistentIsSticky(t *testing.T) {
	api := &stubAPI{markErr: errors.New("boom")}
	c := NewCoordinator(api)

	_ = c.Complete(context.Background(), domain.Player1, electricTask())
	require.Equal(t, PhaseInconsistent, c.Phase())

	// Reset does not clear inconsistency; further completions are refused.
	c.Reset()
	assert.Equal(t, PhaseInconsistent, c.Phase())

	err := c.Complete(context.Background(), domain.Player1, electricTask())
	assert.True(t, IsPartialFailure(err))
	assert.Equal(t, 1, api.completeCalls, "no further mutations while inconsistent")

	c.Acknowledge()
	assert.Equal(t, PhaseIdle, c.Phase())
}
