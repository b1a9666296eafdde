package game

import (
	"errors"
	"fmt"

	"github.com/vitaminR/autobudget/internal/domain"
)

// PartialFailureError reports a completion where points were credited but
// the bill mutation failed. It is distinct from an ordinary network error:
// there is nothing to roll back locally, and the server holds the
// inconsistency until someone fixes it by hand.
type PartialFailureError struct {
	Player   domain.PlayerID
	TaskType domain.TaskType
	BillID   int
	Err      error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("points awarded to %s for %s but bill %d is still unpaid: %v",
		e.Player, e.TaskType, e.BillID, e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }

// IsPartialFailure reports whether err is a step-two completion failure.
func IsPartialFailure(err error) bool {
	var pfe *PartialFailureError
	return errors.As(err, &pfe)
}
