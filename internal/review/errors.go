package review

import (
	"errors"
	"fmt"
)

var (
	ErrSubmissionCancelled  = errors.New("submission cancelled by reviewer")
	ErrSubmissionInFlight   = errors.New("submission already in flight")
	ErrNoActiveSheet        = errors.New("no active answer sheet")
	ErrNotAwaitingSelection = errors.New("coordinator is not awaiting selection")
	ErrNoGroupSelected      = errors.New("no group selected")
)

// TransportError wraps a collaborator failure (group fetch, answered-ID
// fetch, review persistence). Message carries the server-supplied reason
// when one exists and is safe to show to the caller.
type TransportError struct {
	Op      string
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("transport failure during %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Message: err.Error(), Err: err}
}

// ContractViolationError reports an out-of-range or wrongly-typed addressed
// update. It signals a defect in the calling layer, never a user-facing
// condition, and the operation that raised it leaves all state unchanged.
type ContractViolationError struct {
	Op     string
	Index  int
	Length int
	Reason string
}

func (e *ContractViolationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("contract violation in %s: index %d out of range [0,%d)", e.Op, e.Index, e.Length)
}

func newIndexViolation(op string, index, length int) *ContractViolationError {
	return &ContractViolationError{Op: op, Index: index, Length: length}
}

// IsTransport checks if err is a collaborator transport failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsContractViolation checks if err is a caller contract violation.
func IsContractViolation(err error) bool {
	var cv *ContractViolationError
	return errors.As(err, &cv)
}
