package carousel

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports an index outside [0, Count()) of the attached source.
	ErrOutOfRange = errors.New("index out of range")

	// ErrNoSource reports an index operation attempted before a source was attached.
	ErrNoSource = errors.New("no source attached")

	// ErrInconsistentKind reports a pooled visual whose kind disagrees with its pool.
	ErrInconsistentKind = errors.New("inconsistent visual kind")
)

func outOfRange(index, count int) error {
	return fmt.Errorf("set index %d of %d: %w", index, count, ErrOutOfRange)
}

// kindMismatch handles a visual deposited under the wrong kind. Debug builds
// panic; release builds report false so the caller discards the visual.
func kindMismatch(want, got Kind) bool {
	if debugAssertions {
		panic(fmt.Errorf("deposit kind %d into pool %d: %w", got, want, ErrInconsistentKind))
	}
	return false
}
