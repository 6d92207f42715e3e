package dsl

import (
	"context"
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/iexec-tools/iexecschema"
	"github.com/iexec-tools/iexecschema/format"
	js "github.com/iexec-tools/iexecschema/jsonschema"
)

// ---------------- String ----------------

type stringRule struct {
	code  string
	check func(string) bool
	// export annotates the JSON Schema projection of the rule.
	export func(*js.Schema)
}

// StringSchema validates strings. The empty string is rejected unless
// AllowEmpty is set; lengths count UTF-16 code units.
type StringSchema struct {
	minLen     int
	maxLen     int
	allowEmpty bool
	valids     []string
	rules      []stringRule
}

var _ iexecschema.Schema[string] = (*StringSchema)(nil)

// String returns a string schema without constraints.
func String() *StringSchema { return &StringSchema{minLen: -1, maxLen: -1} }

// Min sets the minimum length (inclusive).
func (s *StringSchema) Min(n int) *StringSchema { s.minLen = n; return s }

// Max sets the maximum length (inclusive).
func (s *StringSchema) Max(n int) *StringSchema { s.maxLen = n; return s }

// AllowEmpty accepts "" without running any other rule.
func (s *StringSchema) AllowEmpty() *StringSchema { s.allowEmpty = true; return s }

// Valid restricts the value to the given set.
func (s *StringSchema) Valid(vals ...string) *StringSchema {
	s.valids = append(s.valids, vals...)
	return s
}

// Rule adds a predicate reported under code when it returns false.
func (s *StringSchema) Rule(code string, check func(string) bool) *StringSchema {
	s.rules = append(s.rules, stringRule{code: code, check: check})
	return s
}

// Address requires an Ethereum address (checksummed when mixed case).
func (s *StringSchema) Address() *StringSchema {
	s.rules = append(s.rules, stringRule{
		code:   iexecschema.CodeEthAddress,
		check:  format.IsAddress,
		export: func(o *js.Schema) { o.Pattern = `^(0x)?[0-9a-fA-F]{40}$` },
	})
	return s
}

// Bytes32 requires a 0x-prefixed string of length 66.
func (s *StringSchema) Bytes32() *StringSchema {
	s.rules = append(s.rules, stringRule{
		code:   iexecschema.CodeBytes32,
		check:  format.IsBytes32,
		export: func(o *js.Schema) { o.Pattern = `^0x.{64}$` },
	})
	return s
}

// Semver requires a strict semantic version.
func (s *StringSchema) Semver() *StringSchema {
	s.rules = append(s.rules, stringRule{
		code:   iexecschema.CodeSemver,
		check:  format.IsSemver,
		export: func(o *js.Schema) { o.Format = "semver" },
	})
	return s
}

// ISODate requires an ISO-8601 date or date-time.
func (s *StringSchema) ISODate() *StringSchema {
	s.rules = append(s.rules, stringRule{
		code:   iexecschema.CodeISODate,
		check:  format.IsISODate,
		export: func(o *js.Schema) { o.Format = "date-time" },
	})
	return s
}

func (s *StringSchema) Parse(ctx context.Context, v any) (string, error) {
	str, ok := v.(string)
	if !ok {
		return "", typeIssue("a string")
	}
	if str == "" {
		if s.allowEmpty {
			return str, nil
		}
		return "", iexecschema.Issues{iexecschema.IssueAt(iexecschema.CodeEmpty, nil)}
	}
	if len(s.valids) > 0 && !slices.Contains(s.valids, str) {
		return "", iexecschema.Issues{iexecschema.IssueAt(iexecschema.CodeInvalidEnum, map[string]any{"valids": s.valids})}
	}
	var iss iexecschema.Issues
	n := utf16Len(str)
	if s.minLen >= 0 && n < s.minLen {
		iss = iexecschema.AppendIssues(iss, iexecschema.IssueAt(iexecschema.CodeTooShort, map[string]any{"limit": s.minLen}))
	}
	if s.maxLen >= 0 && n > s.maxLen {
		iss = iexecschema.AppendIssues(iss, iexecschema.IssueAt(iexecschema.CodeTooLong, map[string]any{"limit": s.maxLen}))
	}
	for _, r := range s.rules {
		if len(iss) > 0 && iexecschema.IsFailFast(ctx) {
			break
		}
		if !r.check(str) {
			iss = iexecschema.AppendIssues(iss, iexecschema.IssueAt(r.code, nil))
		}
	}
	if len(iss) > 0 {
		return "", iss
	}
	return str, nil
}

func (s *StringSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (s *StringSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "string"}
	switch {
	case s.minLen > 0:
		out.MinLength = js.Int(s.minLen)
	case !s.allowEmpty:
		out.MinLength = js.Int(1)
	}
	if s.maxLen >= 0 {
		out.MaxLength = js.Int(s.maxLen)
	}
	for _, v := range s.valids {
		out.Enum = append(out.Enum, v)
	}
	for _, r := range s.rules {
		if r.export != nil {
			r.export(out)
		}
	}
	return out, nil
}

func (s *StringSchema) parseAny(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) }

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// ---------------- Number ----------------

// NumberSchema validates numbers. JSON numbers, Go numeric kinds and numeric
// strings are accepted; NaN and infinities are not.
type NumberSchema struct {
	integer bool
	min     *float64
	max     *float64
	greater *float64
}

var _ iexecschema.Schema[float64] = (*NumberSchema)(nil)

// Number returns a number schema without constraints.
func Number() *NumberSchema { return &NumberSchema{} }

// Integer requires a whole number.
func (n *NumberSchema) Integer() *NumberSchema { n.integer = true; return n }

// Min sets an inclusive lower bound.
func (n *NumberSchema) Min(f float64) *NumberSchema { n.min = &f; return n }

// Max sets an inclusive upper bound.
func (n *NumberSchema) Max(f float64) *NumberSchema { n.max = &f; return n }

// Greater sets an exclusive lower bound.
func (n *NumberSchema) Greater(f float64) *NumberSchema { n.greater = &f; return n }

func (n *NumberSchema) Parse(ctx context.Context, v any) (float64, error) {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, typeIssue("a number")
	}
	var iss iexecschema.Issues
	if n.integer && f != math.Trunc(f) {
		iss = iexecschema.AppendIssues(iss, iexecschema.IssueAt(iexecschema.CodeNotInteger, nil))
	}
	if n.min != nil && f < *n.min {
		iss = iexecschema.AppendIssues(iss, iexecschema.IssueAt(iexecschema.CodeTooSmall, map[string]any{"limit": formatFloat(*n.min)}))
	}
	if n.max != nil && f > *n.max {
		iss = iexecschema.AppendIssues(iss, iexecschema.IssueAt(iexecschema.CodeTooBig, map[string]any{"limit": formatFloat(*n.max)}))
	}
	if n.greater != nil && f <= *n.greater {
		iss = iexecschema.AppendIssues(iss, iexecschema.IssueAt(iexecschema.CodeNotGreater, map[string]any{"limit": formatFloat(*n.greater)}))
	}
	if len(iss) > 0 {
		if iexecschema.IsFailFast(ctx) {
			return 0, iss[:1]
		}
		return 0, iss
	}
	return f, nil
}

func (n *NumberSchema) Validate(ctx context.Context, v any) error {
	_, err := n.Parse(ctx, v)
	return err
}

func (n *NumberSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "number"}
	if n.integer {
		out.Type = "integer"
	}
	if n.min != nil {
		out.Minimum = js.Float(*n.min)
	}
	if n.max != nil {
		out.Maximum = js.Float(*n.max)
	}
	if n.greater != nil {
		out.ExclusiveMinimum = js.Float(*n.greater)
	}
	return out, nil
}

func (n *NumberSchema) parseAny(ctx context.Context, v any) (any, error) { return n.Parse(ctx, v) }

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// formatFloat renders a bound the way it was written (9007199254740991, not
// 9.007199254740991e+15).
func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// ---------------- Bool ----------------

// BoolSchema validates booleans; the strings "true" and "false" are accepted
// regardless of case.
type BoolSchema struct{}

var _ iexecschema.Schema[bool] = BoolSchema{}

// Bool returns the boolean schema.
func Bool() BoolSchema { return BoolSchema{} }

func (BoolSchema) Parse(ctx context.Context, v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		switch strings.ToLower(t) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, typeIssue("a boolean")
}

func (b BoolSchema) Validate(ctx context.Context, v any) error {
	_, err := b.Parse(ctx, v)
	return err
}

func (BoolSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

func (b BoolSchema) parseAny(ctx context.Context, v any) (any, error) { return b.Parse(ctx, v) }

// ---------------- Any ----------------

// AnySchema accepts every value; combined with Required it only demands
// presence.
type AnySchema struct{}

var _ iexecschema.Schema[any] = AnySchema{}

// Any returns the schema accepting any value.
func Any() AnySchema { return AnySchema{} }

func (AnySchema) Parse(ctx context.Context, v any) (any, error)    { return v, nil }
func (AnySchema) Validate(ctx context.Context, v any) error        { return nil }
func (AnySchema) JSONSchema() (*js.Schema, error)                  { return &js.Schema{}, nil }
func (AnySchema) parseAny(ctx context.Context, v any) (any, error) { return v, nil }
