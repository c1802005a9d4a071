package capture

import (
	"errors"
	"fmt"
)

// Register and store states
var (
	ErrSessionExists     = errors.New("capture session already exists for projectile")
	ErrSessionNotFound   = errors.New("no capture session for projectile")
	ErrThrowerAlreadySet = errors.New("capture session thrower already set")
	ErrItemNotFound      = errors.New("capture item not found")
	ErrNotCaptureItem    = errors.New("item does not carry a trait record")
	ErrNotOwner          = errors.New("creature is owned by another player")
)

// InvalidInputError is returned when a required creature or item is missing,
// or when a creature holds a value its trait record can't carry.
type InvalidInputError struct {
	What   string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid input: %s: %s", e.What, e.Reason)
	}
	return "invalid input: missing " + e.What
}

// FormatError is returned when a trait line does not parse for the kind at its position.
type FormatError struct {
	Index  int
	Line   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("format error: %s", e.Reason)
	}
	return fmt.Sprintf("format error(line=%d %q): %s", e.Index, e.Line, e.Reason)
}

// KindMismatchError is returned when a record claims a capability group the
// target creature's kind cannot host.
type KindMismatchError struct {
	Kind  Kind
	Group Group
	Label string
}

func (e *KindMismatchError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("kind mismatch: %s cannot host %s (label %q)", e.Kind, e.Group, e.Label)
	}
	return fmt.Sprintf("kind mismatch: %s cannot host %s", e.Kind, e.Group)
}

func formatErr(index int, line Line, format string, args ...interface{}) error {
	return &FormatError{Index: index, Line: line.String(), Reason: fmt.Sprintf(format, args...)}
}

// IsFormatError reports whether err carries a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsKindMismatch reports whether err carries a *KindMismatchError.
func IsKindMismatch(err error) bool {
	var ke *KindMismatchError
	return errors.As(err, &ke)
}

// IsInvalidInput reports whether err carries an *InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
