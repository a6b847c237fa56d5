// Package apperr tags business errors with a kind so controllers can map
// them to HTTP statuses without matching on message strings.
package apperr

import "errors"

type Kind int

const (
	Internal Kind = iota
	NotFound
	BadRequest
	Forbidden
	Conflict
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// KindOf returns the kind of err, or Internal for untagged errors
// (data-layer faults propagate unclassified).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
