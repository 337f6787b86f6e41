package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfig Phase = "config" // policy construction
	PhaseParse  Phase = "parse"  // input decoding
	PhaseStrip  Phase = "strip"  // section filtering and re-emission
	PhaseOutput Phase = "output" // result delivery
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupported    Kind = "unsupported"
	KindInvalidData    Kind = "invalid_data"
	KindTruncated      Kind = "truncated"
	KindInvalidPattern Kind = "invalid_pattern"
)

// Error is the structured error type used throughout the stripper
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Section string
	Detail  string
	Offset  int
	HasPos  bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Section != "" {
		b.WriteString(" in ")
		b.WriteString(e.Section)
		b.WriteString(" section")
	}

	if e.HasPos {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Section sets the section the error occurred in
func (b *Builder) Section(name string) *Builder {
	b.err.Section = name
	return b
}

// Offset sets the byte offset the error occurred at
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	b.err.HasPos = true
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Unsupported creates an error for input variants the stripper rejects
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Malformed wraps a structural decoding failure with positional context
func Malformed(phase Phase, detail string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// Truncated creates an error for input that ends inside a section
func Truncated(phase Phase, section string, offset int) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindTruncated,
		Section: section,
		Offset:  offset,
		HasPos:  true,
		Detail:  "unexpected end of input",
	}
}

// InvalidPattern creates an error for a name-matching pattern that fails
// to compile
func InvalidPattern(pattern string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidPattern,
		Detail: fmt.Sprintf("pattern %q", pattern),
		Cause:  cause,
	}
}
