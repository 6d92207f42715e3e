package jsonschema

import j "github.com/goccy/go-json"

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	// Core
	Schema      string `json:"$schema,omitempty"`
	Title       string `json:"title,omitempty"`
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Description string `json:"description,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Number
	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	PatternProperties    map[string]*Schema `json:"patternProperties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	MinProperties        *int               `json:"minProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`
}

// Draft is the JSON Schema dialect written by Marshal.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Marshal renders s as indented JSON, stamping the dialect on the root.
func Marshal(s *Schema) ([]byte, error) {
	root := *s
	if root.Schema == "" {
		root.Schema = Draft
	}
	return j.MarshalIndent(&root, "", "  ")
}

// Int returns a pointer to n, for the optional numeric keywords.
func Int(n int) *int { return &n }

// Float returns a pointer to f, for the optional numeric keywords.
func Float(f float64) *float64 { return &f }
