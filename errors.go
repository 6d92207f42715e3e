package iexecschema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iexec-tools/iexecschema/i18n"
)

// Issue codes.
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	CodeEmpty         = "empty"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeNotGreater    = "not_greater"
	CodeNotInteger    = "not_integer"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeISODate       = "iso_date"
	CodeEthAddress    = "eth_address"
	CodeBytes32       = "bytes32"
	CodeSemver        = "semver"
	CodeTooFewKeys    = "too_few_keys"
	CodeParseError    = "parse_error"
)

// DefaultLabel names the value under validation when an issue sits at the root.
const DefaultLabel = "value"

// Issue represents a single rule violation.
type Issue struct {
	Path    string // JSON Pointer (for example: /app/owner).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hint, e.g. the closest known key.
	Cause   error  // Optional: underlying error.
	// Label is the key the offending value was found under. Empty until the
	// issue has been attached to an object or map entry.
	Label string
	// Params carries structured parameters (e.g., {"limit":150}) for i18n.
	Params map[string]any
}

// Render returns the human readable message, rendering it from the code when
// no explicit message was set.
func (it Issue) Render() string {
	if it.Message != "" {
		return it.Message
	}
	label := it.Label
	if label == "" {
		label = DefaultLabel
	}
	return i18n.Render(it.Code, label, it.Params)
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Messages renders every issue into its human readable message.
func (iss Issues) Messages() []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.Render())
	}
	return out
}

// Rebase moves issues under the given key. Issues that sit at the child's root
// take the key as their label.
func (iss Issues) Rebase(key string) Issues {
	if len(iss) == 0 {
		return nil
	}
	base := "/" + escapePointer(key)
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		switch p := it.Path; {
		case p == "" || p == "/":
			it.Path = base
		case p[0] == '/':
			it.Path = base + p
		default:
			it.Path = base + "/" + p
		}
		if it.Label == "" {
			it.Label = key
		}
		out = append(out, it)
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueAt creates an Issue at the root of the current value.
func IssueAt(code string, params map[string]any) Issue {
	return Issue{Path: "/", Code: code, Params: params}
}

// ValidationError is returned by strict validation. Its message joins every
// violated rule's message with " + ".
type ValidationError struct {
	Issues Issues
}

// NewValidationError wraps issues into a ValidationError.
func NewValidationError(iss Issues) *ValidationError {
	return &ValidationError{Issues: iss}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Issues.Messages(), " + ")
}

// Unwrap exposes the underlying Issues to errors.As.
func (e *ValidationError) Unwrap() error { return e.Issues }

// escapePointer escapes a key for use as a JSON Pointer reference token.
func escapePointer(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
