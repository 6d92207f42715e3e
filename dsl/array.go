package dsl

import (
	"context"
	"strconv"

	"github.com/iexec-tools/iexecschema"
	js "github.com/iexec-tools/iexecschema/jsonschema"
)

// ArraySchema validates JSON arrays whose elements share one schema.
type ArraySchema struct {
	elem Node
}

var _ iexecschema.Schema[[]any] = (*ArraySchema)(nil)

// Array returns an array schema with the given element schema.
func Array(elem Node) *ArraySchema { return &ArraySchema{elem: elem} }

func (a *ArraySchema) Parse(ctx context.Context, v any) ([]any, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, typeIssue("an array")
	}
	out := make([]any, len(src))
	var iss iexecschema.Issues
	for i, e := range src {
		parsed, err := a.elem.parseAny(ctx, e)
		if err != nil {
			iss = append(iss, issuesFromErr(err).Rebase(strconv.Itoa(i))...)
			if iexecschema.IsFailFast(ctx) {
				return nil, iss[:1]
			}
			continue
		}
		out[i] = parsed
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (a *ArraySchema) Validate(ctx context.Context, v any) error {
	_, err := a.Parse(ctx, v)
	return err
}

func (a *ArraySchema) JSONSchema() (*js.Schema, error) {
	es, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: es}, nil
}

func (a *ArraySchema) parseAny(ctx context.Context, v any) (any, error) { return a.Parse(ctx, v) }
