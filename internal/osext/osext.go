// Package osext provides some helpful os functions.
package osext

import (
	"errors"
	"fmt"
	"os"
)

// ErrExists is returned when the output location exists and is not empty.
var ErrExists = errors.New("output location exists and is not empty")

// Error is the error related to a file.
type Error struct {
	File string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.File)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CheckOutput checks that the output location, a directory or a file, can
// be written without overwriting anything.  A non-existing location or an
// empty directory is fine.
func CheckOutput(loc string) error {
	fi, err := os.Stat(loc)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return &Error{File: loc, Err: err}
	}
	if !fi.IsDir() {
		return &Error{File: loc, Err: ErrExists}
	}
	entries, err := os.ReadDir(loc)
	if err != nil {
		return &Error{File: loc, Err: err}
	}
	if len(entries) > 0 {
		return &Error{File: loc, Err: ErrExists}
	}
	return nil
}
