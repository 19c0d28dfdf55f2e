// Package gustaveerr centralizes the sentinel errors of spec.md §7, the way
// katalvlaran-lvlath's core package centralizes its own sentinels in one
// file (core/types.go) instead of scattering them package by package. Every
// Gustave package that can raise one of these wraps it with fmt.Errorf and
// "%w" for context; callers check with errors.Is.
package gustaveerr

import "errors"

var (
	// ErrInvalidArgument is raised by a constructor or setter given a value
	// that cannot represent a physically valid quantity (targetMaxError<=0,
	// non-positive mass, non-positive stress component, ...). These checks
	// compare against zero, so a NaN value is not rejected.
	ErrInvalidArgument = errors.New("gustave: invalid argument")

	// ErrDuplicateInsertion is raised when a Transaction adds two blocks at
	// the same index.
	ErrDuplicateInsertion = errors.New("gustave: duplicate insertion")

	// ErrInvalidTransaction is raised at modify() when a transaction adds an
	// already-present index or removes a missing one. Atomic: no partial
	// effect on the scene.
	ErrInvalidTransaction = errors.New("gustave: invalid transaction")

	// ErrOutOfRange is raised by an "at" accessor given a missing index.
	ErrOutOfRange = errors.New("gustave: index out of range")

	// ErrInvalidated is raised by a view accessor whose generation no longer
	// matches its container's current generation for that slot.
	ErrInvalidated = errors.New("gustave: view invalidated")

	// ErrOverflow is raised when an index-type allocation would narrow
	// (addNode, addLink, structure id allocation).
	ErrOverflow = errors.New("gustave: index overflow")

	// ErrStructureUnsolvable is raised by a force accessor on a structure the
	// solver failed to solve.
	ErrStructureUnsolvable = errors.New("gustave: structure unsolvable")
)
