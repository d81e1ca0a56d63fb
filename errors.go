package roaring

import "errors"

// ErrInvalidRange is returned when a range operation is given begin >= end
// or an end past the 16-bit universe.
var ErrInvalidRange = errors.New("roaring: invalid range")

// ErrIndexOutOfRange is returned by select when the requested rank is
// negative or not below the container's cardinality.
var ErrIndexOutOfRange = errors.New("roaring: index out of range")

// ErrIteratorMutation is returned when a caller attempts to mutate a
// container through an iterator; iterators are read-only views.
var ErrIteratorMutation = errors.New("roaring: mutation via iterator is not supported")

// ErrCorruptContainer is returned by deserialize when the wire bytes
// decode to a structurally invalid container (unsorted, overlapping, or
// out-of-range runs).
var ErrCorruptContainer = errors.New("roaring: corrupt container")
