package ish

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch means the declared variable-section length disagrees
	// with the line.
	ErrLengthMismatch = errors.New("record length mismatch")

	// ErrTruncated means the line is too short to hold the mandatory section.
	ErrTruncated = errors.New("record truncated")

	// ErrFieldNotPresent means an additional-data code never appeared in the report.
	ErrFieldNotPresent = errors.New("additional field not present")
)

// DecodeError describes a fatal decode failure. It unwraps to ErrLengthMismatch
// or ErrTruncated.
type DecodeError struct {
	Kind     error
	Declared int
	Actual   int
}

func (e *DecodeError) Error() string {
	if e.Kind == ErrTruncated {
		return fmt.Sprintf("decode ish record: %v: %d characters, need at least %d", e.Kind, e.Actual, e.Declared)
	}
	return fmt.Sprintf("decode ish record: %v: declared %d, actual %d", e.Kind, e.Declared, e.Actual)
}

func (e *DecodeError) Unwrap() error { return e.Kind }
