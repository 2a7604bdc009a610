package tessellate

import "errors"

// Fatal errors — programmer errors per spec: the caller passed something
// the contract documents as non-nil/non-empty, or called a closed
// Tessellator. These are returned, never panicked, since a library
// boundary should not crash its caller's process.
var (
	// ErrNoSink is returned by Tessellate when no [Sink] was configured
	// via [WithSink].
	ErrNoSink = errors.New("tessellate: no sink configured")

	// ErrClosed is returned by Tessellate when called after [Tessellator.Close].
	ErrClosed = errors.New("tessellate: tessellator is closed")

	// ErrEmptyBounds is returned when bounds has zero diagonal but the
	// input polygon is non-empty — the tolerance cannot be scaled.
	ErrEmptyBounds = errors.New("tessellate: bounds has zero extent for non-empty polygon")
)
