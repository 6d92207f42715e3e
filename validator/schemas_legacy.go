package validator

import (
	"github.com/iexec-tools/iexecschema/dsl"
)

// nonNegative matches the legacy "integer greater than -1" rule.
func nonNegative() *dsl.NumberSchema { return dsl.Number().Integer().Greater(-1) }

var legacyDappSchema = dsl.Object().Extend(baseSchema).
	Field("license", dsl.String()).
	Field("author", dsl.String()).
	Field("app", dsl.Object().
		Field("name", dsl.String()).Required().
		Field("price", nonNegative()).
		Field("params", dsl.Object().
			Field("type", dsl.String().Valid(AppTypes...)).
			Field("envvars", dsl.String()).
			MustBuild()).
		MustBuild()).Required().
	MustBuild()

var legacyDatasetSchema = dsl.Object().Extend(baseSchema).
	Field("license", dsl.String()).
	Field("author", dsl.String()).
	Field("data", dsl.Object().
		Field("name", dsl.String()).Required().
		Field("price", nonNegative()).
		Field("params", dsl.Object().
			Field("uri", dsl.String()).
			MustBuild()).
		MustBuild()).Required().
	MustBuild()

var legacyWorkerpoolSchema = dsl.Object().Extend(baseSchema).
	Field("workerPool", dsl.Object().
		Field("description", dsl.String()).Required().
		Field("subscriptionLockStakePolicy", nonNegative()).
		Field("subscriptionMinimumStakePolicy", nonNegative()).
		Field("subscriptionMinimumScorePolicy", nonNegative()).
		MustBuild()).Required().
	MustBuild()

var legacyChainConfSchema = dsl.Object().
	Field("host", dsl.String()).Required().
	Field("id", dsl.String()).Required().
	Field("hub", dsl.String()).
	MustBuild()

var legacyChainsConfSchema = dsl.Object().
	Field("default", dsl.String()).
	Field("chains", dsl.Map(legacyChainConfSchema).MinKeys(1)).Required().
	MustBuild()

var accountConfSchema = dsl.Object().
	Field("jwtoken", dsl.String()).Required().
	MustBuild()
