// Package iexecschema validates marketplace registry records (app, dataset
// and workerpool descriptors, registry and partner entries, chain, wallet and
// deployment configuration) against fixed shape rules.
//
// The package is organised like this:
//
//   - The root package holds the Issue model, ValidationError, the Schema
//     interface and the input Sources (JSON, YAML, TOML, Go values).
//   - dsl/ builds shapes: objects (with Extend for composition), pattern maps,
//     arrays, and string/number/bool leaves carrying the field rules.
//   - format/ holds the primitive checks (address checksum, bytes32, semver,
//     ISO-8601 dates).
//   - validator/ composes the record schemas and exposes ValidateDapp and the
//     other named entry points.
//
// Typical usage:
//
//	ok, err := validator.ValidateDapp(ctx, record)
//	ok, err = validator.ValidateSource(ctx, validator.KindChainsConf, iexecschema.JSONBytes(data))
//	ok, _ = validator.ValidateDapp(ctx, record, validator.Strict(false))
package iexecschema
