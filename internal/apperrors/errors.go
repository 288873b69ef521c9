package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnknownFormat indicates that an uploaded file matches none of the known export layouts.
var ErrUnknownFormat = errors.New("unknown format")

// ErrParse indicates that an uploaded file could not be read as a table at all.
var ErrParse = errors.New("parse error")

// ErrTabMismatch indicates that a recognised file was uploaded on the wrong tab.
var ErrTabMismatch = errors.New("tab mismatch")

// TabMismatchError carries the tab the file should have been uploaded on.
type TabMismatchError struct {
	Format   string
	Expected string
}

func (e *TabMismatchError) Error() string {
	return fmt.Sprintf("this %s file belongs on the %s tab; please upload it there", e.Format, e.Expected)
}

// Is lets errors.Is(err, ErrTabMismatch) match.
func (e *TabMismatchError) Is(target error) bool {
	return target == ErrTabMismatch
}
