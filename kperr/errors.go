// Package kperr defines the error taxonomy shared by every keypath-kit package.
//
// All operations return *Error values. Use errors.Is against the sentinel
// values to branch on the category and errors.As to reach the details:
//
//	_, err := keypath.Get(doc, "database.host", keypath.ThrowOnMissing(true))
//	if errors.Is(err, kperr.ErrMissingElement) {
//		var kerr *kperr.Error
//		errors.As(err, &kerr)
//		fmt.Println(kerr.Path, kerr.Suggestions)
//	}
package kperr

import (
	"fmt"
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies the category of an Error.
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	// KindValidation marks malformed call arguments: wrong container type,
	// malformed key path, malformed option value or key path map entry.
	KindValidation
	// KindMissingElement marks a key path that does not resolve to an element.
	// Only reported when the caller opted in.
	KindMissingElement
	// KindCollision marks a write that would have to replace a non-container
	// value in order to create deeper nesting. Only reported when the caller opted in.
	KindCollision
	// KindPattern marks a malformed wildcard pattern or a parameter mismatch
	// between input and output patterns.
	KindPattern
	// KindConfiguration marks an invalid tokenizer configuration.
	KindConfiguration
	// KindType marks a value that was required to be a container but is not.
	KindType
)

// Sentinel errors to be used with errors.Is.
var (
	ErrValidation     = &Error{Kind: KindValidation}
	ErrMissingElement = &Error{Kind: KindMissingElement}
	ErrCollision      = &Error{Kind: KindCollision}
	ErrPattern        = &Error{Kind: KindPattern}
	ErrConfiguration  = &Error{Kind: KindConfiguration}
	ErrType           = &Error{Kind: KindType}
)

// Error is the structured error returned by keypath-kit operations.
type Error struct {
	// Kind identifies the error category.
	Kind Kind
	// Op is the operation that failed ("get", "set", "split", ...).
	Op string
	// Path is the visited key path prefix at the point of failure, if any.
	Path []any
	// Message is a human-readable description.
	Message string
	// Suggestions are similar keys found next to a missing one.
	Suggestions []string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" && e.Op == "" {
		return strings.ToLower(e.Kind.String()) + " error"
	}

	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}

	b.WriteString(e.Message)

	if len(e.Suggestions) > 0 {
		quoted := make([]string, len(e.Suggestions))
		for i, s := range e.Suggestions {
			quoted[i] = strconv.Quote(s)
		}

		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(quoted, ", "))
	}

	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// Validation returns a KindValidation error.
func Validation(op, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Configuration returns a KindConfiguration error.
func Configuration(op, format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Pattern returns a KindPattern error.
func Pattern(op, format string, args ...any) *Error {
	return &Error{Kind: KindPattern, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Missing returns a KindMissingElement error for the visited prefix.
func Missing(op string, visited []any) *Error {
	return &Error{
		Kind:    KindMissingElement,
		Op:      op,
		Path:    clonePath(visited),
		Message: fmt.Sprintf("element at %s does not exist", FormatPath(visited)),
	}
}

// Collision returns a KindCollision error for the visited prefix and the
// non-container value found there.
func Collision(op string, visited []any, found any) *Error {
	return &Error{
		Kind: KindCollision,
		Op:   op,
		Path: clonePath(visited),
		Message: fmt.Sprintf(
			"collision at %s: element should not exist or be a container, %s given",
			FormatPath(visited), TypeName(found)),
	}
}

// NotContainer returns a KindType error for a value at the visited prefix
// that had to be a container.
func NotContainer(op string, visited []any, found any) *Error {
	return &Error{
		Kind: KindType,
		Op:   op,
		Path: clonePath(visited),
		Message: fmt.Sprintf(
			"element at %s is not a container, %s given",
			FormatPath(visited), TypeName(found)),
	}
}

// FormatPath renders a key sequence as a literal list, e.g. ["users",0,"id"].
func FormatPath(path []any) string {
	var b strings.Builder

	b.WriteByte('[')

	for i, k := range path {
		if i > 0 {
			b.WriteByte(',')
		}

		switch v := k.(type) {
		case string:
			b.WriteString(strconv.Quote(v))
		case int:
			b.WriteString(strconv.Itoa(v))
		default:
			fmt.Fprintf(&b, "%v", v)
		}
	}

	b.WriteByte(']')

	return b.String()
}

// TypeName describes the dynamic type of v for error messages.
func TypeName(v any) string {
	if v == nil {
		return "null"
	}

	return fmt.Sprintf("%T", v)
}

func clonePath(path []any) []any {
	if path == nil {
		return nil
	}

	out := make([]any, len(path))
	copy(out, path)

	return out
}
