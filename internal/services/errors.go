package services

import (
	"fmt"

	apperrors "sarthakenterprise/pkg/errors"
)

// ValidationError carries one human-readable message per failing field.
// It aborts the submission flow and is returned to the caller with
// field-level detail.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// NewPersistenceError wraps a store write failure. It is surfaced to the
// end user as a generic failure and logged with detail server-side.
func NewPersistenceError(err error) *apperrors.AppError {
	return apperrors.Wrap(apperrors.ErrCodePersistence, "failed to save inquiry", err)
}

// NewNotificationError wraps a mail dispatch failure. It is logged only
// and never surfaced once the record is safely stored.
func NewNotificationError(kind string, err error) *apperrors.AppError {
	return apperrors.Wrap(apperrors.ErrCodeNotification, fmt.Sprintf("failed to send %s email", kind), err)
}
