package obj

import (
	"errors"
	"fmt"
)

// OBJ parse errors.
var (
	ErrResourceOpen       = errors.New("cannot open OBJ resource")
	ErrMalformedRecord    = errors.New("malformed record")
	ErrUnrecognizedRecord = errors.New("unrecognized record")
	ErrAbsentIndex        = errors.New("index not specified")
)

// RecordError reports a problem with a single input line.
type RecordError struct {
	Line int
	Tag  string
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Tag, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...))
}
