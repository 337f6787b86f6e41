package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseParse,
				Kind:    KindTruncated,
				Section: "producers",
				Offset:  42,
				HasPos:  true,
				Detail:  "unexpected end of input",
			},
			contains: []string{"[parse]", "truncated", "producers section", "offset 42", "unexpected end of input"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseConfig,
				Kind:  KindInvalidPattern,
			},
			contains: []string{"[config]", "invalid_pattern"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindInvalidData,
				Detail: "invalid module",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[parse]", "invalid_data", "invalid module", "caused by", "underlying error"},
		},
		{
			name: "zero offset still reported when positioned",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindTruncated,
				HasPos: true,
			},
			contains: []string{"offset 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:   PhaseParse,
		Kind:    KindTruncated,
		Section: "name",
	}

	if !err.Is(&Error{Phase: PhaseParse, Kind: KindTruncated}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseConfig, Kind: KindTruncated}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseParse, Kind: KindInvalidData}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseParse, Kind: KindTruncated}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseParse, KindInvalidData).
		Section("custom").
		Offset(17).
		Cause(cause).
		Detail("expected %d bytes, got %d", 8, 3).
		Build()

	if err.Phase != PhaseParse {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseParse)
	}
	if err.Kind != KindInvalidData {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
	}
	if err.Section != "custom" {
		t.Errorf("Section = %v, want 'custom'", err.Section)
	}
	if err.Offset != 17 || !err.HasPos {
		t.Errorf("Offset = %v (HasPos=%v), want 17 with position set", err.Offset, err.HasPos)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected 8 bytes, got 3" {
		t.Errorf("Detail = %v, want 'expected 8 bytes, got 3'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseParse, "component model binaries")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
		if err.Detail != "component model binaries" {
			t.Errorf("Detail = %v", err.Detail)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		cause := errors.New("bad leb128")
		err := Malformed(PhaseParse, "invalid module", cause)
		if err.Kind != KindInvalidData {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should be reachable through errors.Is")
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		err := Truncated(PhaseParse, "section contents", 23)
		if err.Kind != KindTruncated {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTruncated)
		}
		if err.Offset != 23 || !err.HasPos {
			t.Errorf("Offset = %v (HasPos=%v), want 23 with position set", err.Offset, err.HasPos)
		}
	})

	t.Run("InvalidPattern", func(t *testing.T) {
		cause := errors.New("missing closing )")
		err := InvalidPattern("(", cause)
		if err.Phase != PhaseConfig {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseConfig)
		}
		if err.Kind != KindInvalidPattern {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidPattern)
		}
		if !strings.Contains(err.Detail, "(") {
			t.Errorf("Detail = %v, should name the pattern", err.Detail)
		}
	})
}
