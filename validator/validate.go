package validator

import (
	"context"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"

	"github.com/iexec-tools/iexecschema"
	js "github.com/iexec-tools/iexecschema/jsonschema"
)

var log = logging.Logger(iexecschema.LoggerPrefix + "/validator")

type recordSchema = iexecschema.Schema[map[string]any]

var registry = map[Version]map[Kind]recordSchema{
	Current: {
		KindRegistryEntry: registryEntrySchema,
		KindDapp:          dappSchema,
		KindDataset:       datasetSchema,
		KindWorkerpool:    workerpoolSchema,
		KindPartner:       partnerSchema,
		KindChainConf:     chainConfSchema,
		KindChainsConf:    chainsConfSchema,
		KindWalletConf:    walletConfSchema,
		KindAccountConf:   accountConfSchema,
		KindDeployedConf:  deployedConfSchema,
		KindGithub:        githubSchema,
		KindFileDB:        fileDBSchema,
	},
	Legacy: {
		KindRegistryEntry: registryEntrySchema,
		KindDapp:          legacyDappSchema,
		KindDataset:       legacyDatasetSchema,
		KindWorkerpool:    legacyWorkerpoolSchema,
		KindPartner:       partnerSchema,
		KindChainConf:     legacyChainConfSchema,
		KindChainsConf:    legacyChainsConfSchema,
		KindWalletConf:    walletConfSchema,
		KindAccountConf:   accountConfSchema,
		KindDeployedConf:  deployedConfSchema,
		KindGithub:        githubSchema,
		KindFileDB:        fileDBSchema,
	},
}

// Schema returns the schema of kind in the given version.
func Schema(kind Kind, version Version) (iexecschema.Schema[map[string]any], error) {
	byKind, ok := registry[version]
	if !ok {
		return nil, xerrors.Errorf("unknown schema version %d", version)
	}
	s, ok := byKind[kind]
	if !ok {
		return nil, xerrors.Errorf("unknown record kind %q", kind)
	}
	return s, nil
}

// JSONSchema exports the JSON Schema of kind in the given version.
func JSONSchema(kind Kind, version Version) (*js.Schema, error) {
	s, err := Schema(kind, version)
	if err != nil {
		return nil, err
	}
	out, err := s.JSONSchema()
	if err != nil {
		return nil, xerrors.Errorf("exporting %s schema: %w", kind, err)
	}
	out.Title = string(kind)
	return out, nil
}

type options struct {
	strict     bool
	version    Version
	abortEarly bool
}

// Option customises a validation call.
type Option func(*options)

// Strict controls how a failure is reported: as a *iexecschema.ValidationError
// (true, the default) or as a plain false result.
func Strict(strict bool) Option { return func(o *options) { o.strict = strict } }

// WithVersion selects the record shape to validate against. Current is the
// default.
func WithVersion(v Version) Option { return func(o *options) { o.version = v } }

// AbortEarly stops at the first violated rule instead of reporting all of
// them.
func AbortEarly(enabled bool) Option { return func(o *options) { o.abortEarly = enabled } }

func applyOptions(opts []Option) options {
	o := options{strict: true, version: Current}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Validate checks v against the schema of kind. v may be a wire value
// (map[string]any, []any, scalars) or any Go value with a JSON encoding.
//
// It returns (true, nil) when v conforms. Otherwise it returns (false, err)
// with err a *iexecschema.ValidationError in strict mode, and (false, nil) in
// non-strict mode. An unknown kind or version is always reported as an error.
func Validate(ctx context.Context, kind Kind, v any, opts ...Option) (bool, error) {
	o := applyOptions(opts)
	s, err := Schema(kind, o.version)
	if err != nil {
		return false, err
	}
	wire, err := iexecschema.ToWire(v)
	if err != nil {
		return o.fail(kind, parseIssues(err))
	}
	return o.check(ctx, kind, s, wire)
}

// ValidateSource decodes src and checks the result against the schema of
// kind. A document that cannot be decoded fails validation with a
// parse_error issue.
func ValidateSource(ctx context.Context, kind Kind, src iexecschema.Source, opts ...Option) (bool, error) {
	o := applyOptions(opts)
	s, err := Schema(kind, o.version)
	if err != nil {
		return false, err
	}
	wire, err := src.Decode()
	if err != nil {
		log.Debugw("decode failed", "kind", kind, "format", src.Format(), "err", err)
		return o.fail(kind, parseIssues(err))
	}
	return o.check(ctx, kind, s, wire)
}

func (o options) check(ctx context.Context, kind Kind, s recordSchema, wire any) (bool, error) {
	if o.abortEarly {
		ctx = iexecschema.WithFailFast(ctx, true)
	}
	err := s.Validate(ctx, wire)
	if err == nil {
		return true, nil
	}
	iss, ok := iexecschema.AsIssues(err)
	if !ok {
		iss = parseIssues(err)
	}
	return o.fail(kind, iss)
}

func (o options) fail(kind Kind, iss iexecschema.Issues) (bool, error) {
	log.Debugw("validation failed", "kind", kind, "version", o.version, "issues", iss)
	if o.strict {
		return false, iexecschema.NewValidationError(iss)
	}
	return false, nil
}

func parseIssues(err error) iexecschema.Issues {
	return iexecschema.Issues{{
		Path:   "/",
		Code:   iexecschema.CodeParseError,
		Params: map[string]any{"detail": err.Error()},
		Cause:  err,
	}}
}
