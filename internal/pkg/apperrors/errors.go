package apperrors

import (
	"errors"
	"fmt"
)

// Stage identifies where in the reconciliation sequence a failure happened,
// so callers know whether a chain transaction may already exist.
type Stage string

const (
	StageValidation Stage = "validation"
	StageStore      Stage = "store"
	StageApproval   Stage = "approval"
	StageAction     Stage = "action"
	StageMirror     Stage = "mirror"
)

// PreconditionError means a required capability (e.g. a connected wallet) was
// missing. Nothing has been written anywhere when this is returned.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

// ValidationError means the intent itself was malformed. No side effects.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StoreError wraps an off-chain store failure. The stage tells the caller
// whether a chain transaction might already have been submitted.
type StoreError struct {
	Stage Stage
	Op    string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed at stage %s: %v", e.Op, e.Stage, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// ChainError wraps a rejected, reverted or underfunded chain transaction.
// Stage is either StageApproval or StageAction.
type ChainError struct {
	Stage Stage
	Err   error
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("chain transaction failed at stage %s: %v", e.Stage, e.Err)
}

func (e *ChainError) Unwrap() error { return e.Err }

// InvariantViolation signals a programming error, such as an unmapped payment
// method reaching the transaction builder.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return "invariant violation: " + e.Reason
}

// ReconciliationWarning reports a successful chain result that could not be
// mirrored off-chain. It is returned alongside the otherwise successful result
// so the caller can retry the mirror step; it is never an overall failure.
type ReconciliationWarning struct {
	Stage  Stage
	Op     string
	TxHash string
	Err    error
}

func (w *ReconciliationWarning) Error() string {
	return fmt.Sprintf("reconciliation warning: %s not mirrored (tx %s): %v", w.Op, w.TxHash, w.Err)
}

func (w *ReconciliationWarning) Unwrap() error { return w.Err }

// AsChainError extracts a ChainError from an error chain.
func AsChainError(err error) (*ChainError, bool) {
	var ce *ChainError
	ok := errors.As(err, &ce)
	return ce, ok
}

// AsStoreError extracts a StoreError from an error chain.
func AsStoreError(err error) (*StoreError, bool) {
	var se *StoreError
	ok := errors.As(err, &se)
	return se, ok
}

// IsClientFault reports whether the error is the caller's fault rather than an
// infrastructure failure, for HTTP status mapping.
func IsClientFault(err error) bool {
	var pe *PreconditionError
	var ve *ValidationError
	return errors.As(err, &pe) || errors.As(err, &ve)
}
