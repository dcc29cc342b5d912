package rpz

import "errors"

// Sentinel error kinds, checked with errors.Is rather than bespoke
// error types.
var (
	// ErrOutOfMemory names the error kind for a failed allocation during
	// begin/ready. No function in this package returns it.
	ErrOutOfMemory = errors.New("rpz: out of memory")

	// ErrInvalidName is returned when an owner name does not decode to a
	// canonical trigger. Add/Delete swallow this internally; it is
	// exported so the IP key codec can report it to its own callers/tests.
	ErrInvalidName = errors.New("rpz: invalid trigger owner name")

	// ErrAlreadyExists names the error kind for an insert that collides with
	// an identical, already-present (ip, prefix, pair) entry. No function in
	// this package returns it: Add ignores such a collision.
	ErrAlreadyExists = errors.New("rpz: entry already exists")

	// ErrNotFound names the error kind for a delete or exact lookup that
	// found nothing. No function in this package returns it: Delete ignores
	// absent names and the Find* methods report a miss with ok=false.
	ErrNotFound = errors.New("rpz: not found")

	// ErrPartialMatch names the error kind for a lookup that only matched a
	// shorter prefix ancestor. No function in this package returns it.
	ErrPartialMatch = errors.New("rpz: partial match only")

	// ErrInternal is returned for a zone ordinal that is out of range or
	// not registered, and by Ready when a live entry cannot be copied into
	// the shadow tree.
	ErrInternal = errors.New("rpz: internal invariant violated")
)
