package dsl

import (
	"context"
	"sort"

	"github.com/dlclark/regexp2"

	"github.com/iexec-tools/iexecschema"
	js "github.com/iexec-tools/iexecschema/jsonschema"
)

// MapSchema validates JSON objects whose keys are not known in advance. Every
// key must match the key pattern (when set) and every value is validated by
// the same schema.
type MapSchema struct {
	pattern string
	fold    bool
	re      *regexp2.Regexp
	val     Node
	minKeys int
}

var _ iexecschema.Schema[map[string]any] = (*MapSchema)(nil)

// Map returns a schema accepting any key, validating every value with val.
func Map(val Node) *MapSchema { return &MapSchema{val: val} }

// PatternMap returns a schema accepting only keys matching pattern (ECMAScript
// syntax). It panics when the pattern does not compile.
func PatternMap(pattern string, val Node) *MapSchema {
	m := &MapSchema{pattern: pattern, val: val}
	m.compile()
	return m
}

// Fold makes the key pattern case-insensitive.
func (m *MapSchema) Fold() *MapSchema {
	m.fold = true
	m.compile()
	return m
}

// MinKeys requires at least n keys.
func (m *MapSchema) MinKeys(n int) *MapSchema { m.minKeys = n; return m }

func (m *MapSchema) compile() {
	if m.pattern == "" {
		m.re = nil
		return
	}
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if m.fold {
		opts |= regexp2.IgnoreCase
	}
	m.re = regexp2.MustCompile(m.pattern, opts)
}

func (m *MapSchema) matches(k string) bool {
	if m.re == nil {
		return true
	}
	ok, err := m.re.MatchString(k)
	return err == nil && ok
}

func (m *MapSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, typeIssue("an object")
	}
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var iss iexecschema.Issues
	if len(keys) < m.minKeys {
		iss = iexecschema.AppendIssues(iss, iexecschema.IssueAt(iexecschema.CodeTooFewKeys, map[string]any{"limit": m.minKeys}))
		if iexecschema.IsFailFast(ctx) {
			return nil, iss
		}
	}
	out := make(map[string]any, len(src))
	for _, k := range keys {
		if !m.matches(k) {
			iss = append(iss, iexecschema.Issues{iexecschema.IssueAt(iexecschema.CodeUnknownKey, nil)}.Rebase(k)...)
		} else if parsed, err := m.val.parseAny(ctx, src[k]); err != nil {
			iss = append(iss, issuesFromErr(err).Rebase(k)...)
		} else {
			out[k] = parsed
		}
		if len(iss) > 0 && iexecschema.IsFailFast(ctx) {
			return nil, iss[:1]
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (m *MapSchema) Validate(ctx context.Context, v any) error {
	_, err := m.Parse(ctx, v)
	return err
}

func (m *MapSchema) JSONSchema() (*js.Schema, error) {
	vs, err := m.val.JSONSchema()
	if err != nil {
		return nil, err
	}
	out := &js.Schema{Type: "object"}
	if m.re == nil {
		out.AdditionalProperties = vs
	} else {
		p := m.pattern
		if m.fold {
			p = "(?i)" + p
		}
		out.PatternProperties = map[string]*js.Schema{p: vs}
		out.AdditionalProperties = false
	}
	if m.minKeys > 0 {
		out.MinProperties = js.Int(m.minKeys)
	}
	return out, nil
}

func (m *MapSchema) parseAny(ctx context.Context, v any) (any, error) { return m.Parse(ctx, v) }
