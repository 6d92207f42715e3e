package iexecschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/BurntSushi/toml"
	j "github.com/goccy/go-json"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Source abstracts over the encodings a record may arrive in. Decode returns
// the JSON-like wire value: map[string]any, []any, string, bool, json.Number
// (or Go numeric kinds), nil.
type Source interface {
	Decode() (any, error)
	Format() string
}

type jsonSource struct{ r io.Reader }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return jsonSource{r: bytes.NewReader(b)} }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

func (s jsonSource) Format() string { return "json" }

func (s jsonSource) Decode() (any, error) {
	dec := j.NewDecoder(s.r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, xerrors.Errorf("decode json: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, xerrors.New("decode json: unexpected data after top-level value")
	}
	return v, nil
}

type yamlSource struct{ b []byte }

// YAMLBytes wraps a single YAML document as a Source.
func YAMLBytes(b []byte) Source { return yamlSource{b: b} }

func (s yamlSource) Format() string { return "yaml" }

func (s yamlSource) Decode() (any, error) {
	var v any
	if err := yaml.Unmarshal(s.b, &v); err != nil {
		return nil, xerrors.Errorf("decode yaml: %w", err)
	}
	return normalizeDecoded(v), nil
}

type tomlSource struct{ b []byte }

// TOMLBytes wraps a TOML document as a Source. The document root is always a
// table.
func TOMLBytes(b []byte) Source { return tomlSource{b: b} }

func (s tomlSource) Format() string { return "toml" }

func (s tomlSource) Decode() (any, error) {
	var v map[string]any
	if err := toml.Unmarshal(s.b, &v); err != nil {
		return nil, xerrors.Errorf("decode toml: %w", err)
	}
	return normalizeDecoded(v), nil
}

type valueSource struct{ v any }

// Value wraps an in-memory Go value as a Source. Wire-shaped values are used
// as-is; anything else (structs, typed maps and slices) is converted through
// its JSON encoding.
func Value(v any) Source { return valueSource{v: v} }

func (s valueSource) Format() string { return "value" }

func (s valueSource) Decode() (any, error) { return ToWire(s.v) }

// ToWire converts a Go value into the JSON-like wire representation the DSL
// schemas operate on.
func ToWire(v any) (any, error) {
	switch t := v.(type) {
	case nil, string, bool, j.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			w, err := ToWire(vv)
			if err != nil {
				return nil, err
			}
			out[k] = w
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i := range t {
			w, err := ToWire(t[i])
			if err != nil {
				return nil, err
			}
			out[i] = w
		}
		return out, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}
	b, err := j.Marshal(v)
	if err != nil {
		return nil, xerrors.Errorf("encode %T: %w", v, err)
	}
	return JSONBytes(b).Decode()
}

// normalizeDecoded converts YAML/TOML decoded values (which may contain
// map[any]any, typed slices or timestamps) into JSON-like values recursively.
// Non-string mapping keys (YAML chain ids such as 134) become their decimal
// text, the way they would be written as JSON object keys.
func normalizeDecoded(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeDecoded(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = normalizeDecoded(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeDecoded(t[i])
		}
		return arr
	case []map[string]any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeDecoded(t[i])
		}
		return arr
	case time.Time:
		return t.Format(time.RFC3339Nano)
	default:
		return v
	}
}
