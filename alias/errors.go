package alias

import (
	"errors"
	"strconv"
)

// ErrNotFound matches every *NotFoundError under errors.Is.
var ErrNotFound = errors.New("alias not found")

// NotFoundError reports an input with no entry in an index queried with Raise.
type NotFoundError struct {
	// Input is the raw string that was looked up.
	Input string
	// IndexName is the display name of the index, empty if unnamed.
	IndexName string
}

func (e *NotFoundError) Error() string {
	msg := "alias: " + strconv.Quote(e.Input) + " not found"
	if e.IndexName != "" {
		msg += " in alias index " + strconv.Quote(e.IndexName)
	}

	return msg
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
