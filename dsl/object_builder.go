package dsl

import (
	"fmt"
	"slices"
)

type objectBuilder struct {
	order    []string
	fields   map[string]Node
	required map[string]struct{}
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new object builder. Unknown keys are always rejected.
func Object() *objectBuilder {
	return &objectBuilder{
		fields:   map[string]Node{},
		required: map[string]struct{}{},
	}
}

// Extend copies every field of base (with its required flag) into the
// builder. Fields declared afterwards are appended, or replace a copied field
// of the same name in place.
func (b *objectBuilder) Extend(base *ObjectSchema) *objectBuilder {
	if base == nil {
		return b
	}
	for _, k := range base.order {
		b.set(k, base.fields[k])
		if _, req := base.required[k]; req {
			b.required[k] = struct{}{}
		} else {
			delete(b.required, k)
		}
	}
	return b
}

// Field registers a field with its schema. Fields are optional until marked
// Required.
func (b *objectBuilder) Field(name string, n Node) *fieldStep {
	b.set(name, n)
	delete(b.required, name)
	return &fieldStep{b: b, name: name}
}

func (b *objectBuilder) set(name string, n Node) {
	if _, exists := b.fields[name]; !exists {
		b.order = append(b.order, name)
	}
	b.fields[name] = n
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	f.b.required[f.name] = struct{}{}
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *objectBuilder {
	delete(f.b.required, f.name)
	return f.b
}

func (f *fieldStep) Field(name string, n Node) *fieldStep     { return f.b.Field(name, n) }
func (f *fieldStep) Require(names ...string) *objectBuilder   { return f.b.Require(names...) }
func (f *fieldStep) Extend(base *ObjectSchema) *objectBuilder { return f.b.Extend(base) }
func (f *fieldStep) Build() (*ObjectSchema, error)            { return f.b.Build() }
func (f *fieldStep) MustBuild() *ObjectSchema                 { return f.b.MustBuild() }

// Require marks one or more already declared fields as required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// Build validates the builder and returns the schema.
func (b *objectBuilder) Build() (*ObjectSchema, error) {
	for k := range b.required {
		if _, ok := b.fields[k]; !ok {
			return nil, fmt.Errorf("dsl: required field %q is not declared", k)
		}
	}
	for _, k := range b.order {
		if b.fields[k] == nil {
			return nil, fmt.Errorf("dsl: field %q has no schema", k)
		}
	}
	req := make(map[string]struct{}, len(b.required))
	for k := range b.required {
		req[k] = struct{}{}
	}
	fields := make(map[string]Node, len(b.fields))
	for k, n := range b.fields {
		fields[k] = n
	}
	return &ObjectSchema{order: slices.Clone(b.order), fields: fields, required: req}, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() *ObjectSchema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
