// Package dsl builds record shapes for iexecschema.
//
// # Overview
//
//   - Object(): declare fields with Field(...).Required(); unknown keys are
//     rejected. Extend(base) copies the fields of another object first so a
//     shape can be composed from a base shape plus kind-specific fields.
//   - PatternMap(pattern, value) / Map(value): objects whose keys follow a
//     pattern and whose values all share one schema.
//   - Array(elem): arrays whose elements share one schema.
//   - String(), Number(), Bool(), Any(): leaves carrying the field rules
//     (length, enum, integer, bounds, and the format predicates Address,
//     Bytes32, Semver, ISODate).
//
// # Error model
//
// Every schema collects all violations into iexecschema.Issues. Paths are
// JSON Pointers; the label of an issue is the key its value was found under,
// so messages read like `"description" is required`. Object fields are
// visited in declaration order and map keys in sorted order, which keeps the
// issue order stable.
//
// # Example
//
//	base := g.Object().
//	    Field("description", g.String().Min(150).Max(2000)).Required().
//	    Field("logo", g.String()).Required().
//	    MustBuild()
//
//	app := g.Object().Extend(base).
//	    Field("owner", g.String().Address()).Required().
//	    MustBuild()
//
//	if err := app.Validate(ctx, record); err != nil {
//	    iss, _ := iexecschema.AsIssues(err)
//	    ...
//	}
package dsl
