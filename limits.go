package gopages

import (
	"errors"
	"fmt"
)

const (
	// FirstPage is the number of the first page of every pass.
	FirstPage = 0

	// DefaultFactor is the page size used when none is configured.
	DefaultFactor = 10
)

var (
	ErrInvalidFactor     = errors.New("factor must be at least 1")
	ErrEmptyTarget       = errors.New("target name is empty")
	ErrNilRouter         = errors.New("router is nil")
	ErrMissingDependency = errors.New("missing dependency")
)

// ValidateFactor reports whether factor can be used as a page size.
func ValidateFactor(factor int) error {
	if factor < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidFactor, factor)
	}

	return nil
}

// PageCount returns the number of pages needed to hold postCount items,
// factor items per page. The factor must already be validated.
//
// Example: for postCount=25 and factor=10 returns 3.
func PageCount(postCount int, factor int) int {
	div, rem := postCount/factor, postCount%factor
	if rem != 0 {
		return div + 1
	}

	return div
}
