package dsl

import (
	"context"
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/iexec-tools/iexecschema"
	js "github.com/iexec-tools/iexecschema/jsonschema"
)

// ObjectSchema validates JSON objects with a fixed set of keys.
type ObjectSchema struct {
	order    []string
	fields   map[string]Node
	required map[string]struct{}
}

var _ iexecschema.Schema[map[string]any] = (*ObjectSchema)(nil)

// Keys returns the declared field names in declaration order.
func (o *ObjectSchema) Keys() []string {
	out := make([]string, len(o.order))
	copy(out, o.order)
	return out
}

// IsRequired reports whether the named field is required.
func (o *ObjectSchema) IsRequired(name string) bool {
	_, ok := o.required[name]
	return ok
}

func (o *ObjectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, typeIssue("an object")
	}
	out, iss := o.collectKnown(ctx, src)
	if len(iss) > 0 && iexecschema.IsFailFast(ctx) {
		return nil, iss[:1]
	}
	iss = append(iss, o.collectUnknown(src)...)
	if len(iss) > 0 {
		if iexecschema.IsFailFast(ctx) {
			return nil, iss[:1]
		}
		return nil, iss
	}
	return out, nil
}

// collectKnown parses declared fields in declaration order and reports
// missing required ones.
func (o *ObjectSchema) collectKnown(ctx context.Context, src map[string]any) (map[string]any, iexecschema.Issues) {
	out := make(map[string]any, len(src))
	var iss iexecschema.Issues
	for _, k := range o.order {
		val, exists := src[k]
		if !exists {
			if _, req := o.required[k]; req {
				iss = append(iss, iexecschema.Issues{iexecschema.IssueAt(iexecschema.CodeRequired, nil)}.Rebase(k)...)
				if iexecschema.IsFailFast(ctx) {
					return out, iss
				}
			}
			continue
		}
		parsed, err := o.fields[k].parseAny(ctx, val)
		if err != nil {
			iss = append(iss, issuesFromErr(err).Rebase(k)...)
			if iexecschema.IsFailFast(ctx) {
				return out, iss
			}
			continue
		}
		out[k] = parsed
	}
	return out, iss
}

// collectUnknown reports keys that are not declared, in sorted order, with a
// hint naming the closest declared key.
func (o *ObjectSchema) collectUnknown(src map[string]any) iexecschema.Issues {
	var uks []string
	for k := range src {
		if _, known := o.fields[k]; !known {
			uks = append(uks, k)
		}
	}
	if len(uks) == 0 {
		return nil
	}
	sort.Strings(uks)
	iss := make(iexecschema.Issues, 0, len(uks))
	for _, k := range uks {
		it := iexecschema.Issue{Code: iexecschema.CodeUnknownKey}
		if s := o.suggest(k); s != "" {
			it.Hint = "did you mean \"" + s + "\"?"
		}
		iss = append(iss, iexecschema.Issues{it}.Rebase(k)...)
	}
	return iss
}

// suggest returns the declared key closest to k within the configured edit
// distance, or "" when none qualifies.
func (o *ObjectSchema) suggest(k string) string {
	maxDist := iexecschema.HintDistance()
	if maxDist <= 0 {
		return ""
	}
	best, bestDist := "", maxDist+1
	for _, cand := range o.order {
		if d := levenshtein.ComputeDistance(k, cand); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

func (o *ObjectSchema) Validate(ctx context.Context, v any) error {
	_, err := o.Parse(ctx, v)
	return err
}

func (o *ObjectSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.fields))
	for _, k := range o.order {
		ps, err := o.fields[k].JSONSchema()
		if err != nil {
			return nil, err
		}
		if ps == nil {
			ps = &js.Schema{}
		}
		props[k] = ps
	}
	var req []string
	for _, k := range o.order {
		if _, ok := o.required[k]; ok {
			req = append(req, k)
		}
	}
	return &js.Schema{Type: "object", Properties: props, Required: req, AdditionalProperties: false}, nil
}

func (o *ObjectSchema) parseAny(ctx context.Context, v any) (any, error) { return o.Parse(ctx, v) }
