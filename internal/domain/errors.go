package domain

import (
	"errors"

	"github.com/abdidvp/growthcheck/internal/domain/growth"
)

// Evaluation failures. Every error returned by Evaluate wraps exactly one of
// these.
var (
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
	ErrFutureBirthDate     = errors.New("birth date is after the reference date")
	ErrUnsupportedAge      = errors.New("age is below the supported minimum of 5 years")
	ErrUndefinedInverse    = growth.ErrUndefinedInverse
	ErrOutOfRangeInput     = errors.New("input outside plausible range")
	ErrInvalidInput        = errors.New("invalid input")
)

// ErrProfileNotFound is returned by a ProfileStore when nothing has been saved.
var ErrProfileNotFound = errors.New("no profile saved")

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidCalendarDate, "InvalidCalendarDate"},
	{ErrFutureBirthDate, "FutureBirthDate"},
	{ErrUnsupportedAge, "UnsupportedAge"},
	{ErrUndefinedInverse, "UndefinedInverse"},
	{ErrOutOfRangeInput, "OutOfRangeInput"},
	{ErrInvalidInput, "InvalidInput"},
}

// ErrorKind returns the stable name of the evaluation error wrapped by err,
// or "" when err is nil or not an evaluation error. Adapters use it to map
// failures onto exit codes, HTTP statuses and MCP payloads.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ""
}
