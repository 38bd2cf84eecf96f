package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error into the closed set of failure categories the
// sync engine produces. Callers branch on kinds instead of inspecting
// error strings.
type Kind string

const (
	// KindConfig means a required credential or setting is unavailable.
	// Fatal to a pass, not retryable.
	KindConfig Kind = "config"
	// KindTransport means the remote service could not be reached
	// (connect, timeout, non-200). Retryable by the caller of a pass.
	KindTransport Kind = "transport"
	// KindParse means the remote response was not valid or not of the
	// expected shape.
	KindParse Kind = "parse"
	// KindNotFound is the expected negative result of a lookup. It is
	// internal to the catalog and never escapes ResolveOrCreate.
	KindNotFound Kind = "not_found"
	// KindStorage means a persistent store read or write failed.
	KindStorage Kind = "storage"
)

// Stages name the sync step that produced an error.
const (
	StageFetch   = "fetch"
	StageResolve = "resolve"
	StageUpsert  = "upsert"
	StageMirror  = "mirror"
)

// Error is a structured sync error carrying the failure kind, the stage it
// occurred in, and optionally the local user being processed.
type Error struct {
	Kind   Kind
	Stage  string
	UserID uint
	Err    error
}

func (e *Error) Error() string {
	if e.UserID != 0 {
		return fmt.Sprintf("%s: %s (user %d): %v", e.Stage, e.Kind, e.UserID, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with a kind and stage.
func New(kind Kind, stage string, err error) *Error {
	return &Error{Kind: kind, Stage: stage, Err: err}
}

// Newf wraps a formatted message with a kind and stage.
func Newf(kind Kind, stage string, format string, args ...any) *Error {
	return &Error{Kind: kind, Stage: stage, Err: fmt.Errorf(format, args...)}
}

// WithUser attaches the local user id to an error. A structured sync error
// is annotated in place; anything else is wrapped as a storage-kind error
// so the user context is never lost.
func WithUser(err error, userID uint) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		e.UserID = userID
		return err
	}
	return &Error{Kind: KindStorage, Stage: StageUpsert, UserID: userID, Err: err}
}

// KindOf returns the kind of err, or the empty kind if err is not a
// structured sync error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
