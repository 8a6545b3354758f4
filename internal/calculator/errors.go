package calculator

import (
	"errors"
	"fmt"

	"github.com/mmynk/billsettle/internal/models"
)

var (
	// ErrInvalidInput is returned when the calculator receives input it cannot work with:
	// no participants, or non-finite amounts.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInconsistentState is returned when settlement leaves balances that cannot be
	// matched, meaning the per-participant balances did not sum to zero.
	ErrInconsistentState = errors.New("inconsistent state")
)

// UnsettledError reports the balances left over after one side of the settlement
// pool ran out. It matches ErrInconsistentState with errors.Is.
type UnsettledError struct {
	Leftover []models.Balance
}

func (e *UnsettledError) Error() string {
	var total float64
	for _, b := range e.Leftover {
		total += b.Amount
	}
	return fmt.Sprintf("%s: %d participant(s) left with unmatched balance of %.2f",
		ErrInconsistentState, len(e.Leftover), total)
}

func (e *UnsettledError) Unwrap() error {
	return ErrInconsistentState
}
