package dsl

import (
	"context"

	"github.com/iexec-tools/iexecschema"
	js "github.com/iexec-tools/iexecschema/jsonschema"
)

// Node is implemented by every DSL schema so it can be used as an object
// field, map value or array element regardless of its Go result type.
type Node interface {
	parseAny(ctx context.Context, v any) (any, error)
	JSONSchema() (*js.Schema, error)
}

// AnyAdapter adapts an arbitrary iexecschema.Schema[T] into a Node.
type AnyAdapter struct {
	parse      func(context.Context, any) (any, error)
	jsonSchema func() (*js.Schema, error)
}

// SchemaOf wraps a strongly typed Schema[T] so it can be embedded into
// builders.
func SchemaOf[T any](s iexecschema.Schema[T]) AnyAdapter {
	return AnyAdapter{
		parse:      func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
		jsonSchema: s.JSONSchema,
	}
}

func (ad AnyAdapter) parseAny(ctx context.Context, v any) (any, error) {
	if ad.parse == nil {
		return v, nil
	}
	return ad.parse(ctx, v)
}

// JSONSchema implements Node.
func (ad AnyAdapter) JSONSchema() (*js.Schema, error) {
	if ad.jsonSchema == nil {
		return &js.Schema{}, nil
	}
	return ad.jsonSchema()
}

// issuesFromErr converts an error into Issues, wrapping non-Issues with
// CodeParseError.
func issuesFromErr(err error) iexecschema.Issues {
	if err == nil {
		return nil
	}
	if iss, ok := iexecschema.AsIssues(err); ok {
		return iss
	}
	return iexecschema.Issues{{Path: "/", Code: iexecschema.CodeParseError, Params: map[string]any{"detail": err.Error()}, Cause: err}}
}

func typeIssue(expected string) iexecschema.Issues {
	return iexecschema.Issues{iexecschema.IssueAt(iexecschema.CodeInvalidType, map[string]any{"expected": expected})}
}
