// Package svcerr defines the three externally-visible error kinds the
// engine and its collaborators raise. An error carries no more than its
// kind, a message and, for internal failures, an optional wrapped cause;
// it is deliberately thin so that every layer above
// the engine (today just the HTTP surface) can map it to a transport
// status without inspecting anything else.
package svcerr

import (
	"errors"
	"fmt"
)

// Kind is one of the three externally-visible failure categories.
type Kind string

const (
	// KindBadRequest marks a validation failure on caller input.
	KindBadRequest Kind = "bad_request"
	// KindNotFound marks a reference to an unknown run id.
	KindNotFound Kind = "not_found"
	// KindInternal marks a scorer, decode, or bookkeeping failure.
	KindInternal Kind = "internal"
)

// Error is a Kind-tagged error.
type Error struct {
	Kind Kind
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.err
}

// BadRequest builds a KindBadRequest error.
func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Msg: msg}
}

// NotFound builds a KindNotFound error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Internal builds a KindInternal error, optionally wrapping a cause.
func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, err: cause}
}

// KindOf extracts the Kind from err, defaulting to KindInternal for any
// error this package did not produce.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
