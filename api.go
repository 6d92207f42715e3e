package iexecschema

import (
	"context"

	js "github.com/iexec-tools/iexecschema/jsonschema"
)

// Schema validates an unknown wire value and projects it into T.
type Schema[T any] interface {
	// Parse checks v and returns the typed value. It returns Issues when any
	// rule is violated; all violations are collected.
	Parse(ctx context.Context, v any) (T, error)

	// Validate runs the same checks as Parse without building the result.
	Validate(ctx context.Context, v any) error

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is returns true if v conforms to the schema s.
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	return s.Validate(ctx, v) == nil
}

// ParseFrom decodes src and delegates validation to the Schema. Decoding
// failures are reported as a single parse_error issue.
func ParseFrom[T any](ctx context.Context, s Schema[T], src Source) (T, error) {
	var zero T
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	v, err := src.Decode()
	if err != nil {
		log.Debugw("decode failed", "format", src.Format(), "err", err)
		return zero, Issues{{Path: "/", Code: CodeParseError, Params: map[string]any{"detail": err.Error()}, Cause: err}}
	}
	return s.Parse(ctx, v)
}

func singleIssue(code, detail string) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: code, Params: map[string]any{"detail": detail}})
}
