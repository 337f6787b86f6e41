// Package errors provides structured error types for the stripper.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type carries the section identity and byte
// offset where decoding failed, plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindTruncated).
//		Section("code").
//		Offset(1042).
//		Detail("section size exceeds remaining input").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unsupported(errors.PhaseParse, "component model binary")
//	err := errors.InvalidPattern(".producers(", compileErr)
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on Phase and Kind.
package errors
