package validator

import (
	"github.com/iexec-tools/iexecschema/dsl"
)

// MaxSafeInteger is the largest integer a double represents exactly; it bounds
// the buy configuration trust level.
const MaxSafeInteger = 1<<53 - 1

var (
	// AppTypes lists the accepted app.type values.
	AppTypes = []string{"DOCKER"}
	// Categories lists the accepted dataset categories.
	Categories = []string{"Other"}
	// FileDBTypes lists the accepted file-db entry types.
	FileDBTypes = []string{"app", "dataset", "workerpool"}
)

func description() *dsl.StringSchema { return dsl.String().Min(150).Max(2000) }

func address() *dsl.StringSchema { return dsl.String().Address() }

func bytes32() *dsl.StringSchema { return dsl.String().Bytes32() }

// addressList maps arbitrary names to addresses.
func addressList() *dsl.MapSchema { return dsl.Map(address()) }

var baseSchema = dsl.Object().
	Field("type", dsl.String()).
	Field("description", description()).Required().
	Field("logo", dsl.String()).Required().
	Field("social", dsl.Object().
		Field("website", dsl.String()).
		Field("github", dsl.String()).
		MustBuild()).Required().
	Field("addresses", addressList()).
	Field("repo", dsl.String()).
	MustBuild()

var buyConfSchema = dsl.Object().
	Field("params", dsl.Any()).Required().
	Field("trust", dsl.Number().Integer().Min(0).Max(MaxSafeInteger)).
	Field("tag", bytes32()).
	Field("callback", address()).
	MustBuild()

var dappSchema = dsl.Object().Extend(baseSchema).
	Field("license", dsl.String()).Required().
	Field("author", dsl.String()).Required().
	Field("app", dsl.Object().
		Field("owner", address()).Required().
		Field("name", dsl.String()).Required().
		Field("type", dsl.String().Valid(AppTypes...)).
		Field("multiaddr", dsl.String()).Required().
		Field("checksum", bytes32()).Required().
		Field("mrenclave", dsl.String().AllowEmpty()).
		MustBuild()).Required().
	Field("buyConf", buyConfSchema).Required().
	MustBuild()

var datasetCompatibleDappSchema = dsl.Object().
	Field("name", dsl.String()).Required().
	Field("addresses", addressList()).Required().
	Field("buyConf", buyConfSchema).
	MustBuild()

var datasetSchema = dsl.Object().Extend(baseSchema).
	Field("license", dsl.String()).Required().
	Field("author", dsl.String()).Required().
	Field("categories", dsl.String().Valid(Categories...)).
	Field("dataset", dsl.Object().
		Field("owner", address()).Required().
		Field("name", dsl.String()).Required().
		Field("multiaddr", dsl.String()).Required().
		Field("checksum", bytes32()).Required().
		MustBuild()).Required().
	Field("dapps", dsl.Array(datasetCompatibleDappSchema)).
	MustBuild()

var workerpoolSchema = dsl.Object().Extend(baseSchema).
	Field("workerpool", dsl.Object().
		Field("owner", address()).Required().
		Field("description", dsl.String()).Required().
		MustBuild()).Required().
	MustBuild()

var registryEntrySchema = dsl.Object().
	Field("name", dsl.String().Min(1).Max(40)).
	Field("org", dsl.String().Min(1).Max(40)).Required().
	Field("created", dsl.String().ISODate()).Required().
	Field("rank", dsl.Number().Integer()).
	MustBuild()

var partnerSchema = dsl.Object().Extend(registryEntrySchema).
	Field("description", description()).Required().
	Field("logo", dsl.String()).Required().
	Field("license", dsl.String()).
	Field("social", dsl.Object().
		Field("website", dsl.String()).
		Field("github", dsl.String()).
		Field("linkedin", dsl.String()).
		Field("twitter", dsl.String()).
		Field("medium", dsl.String()).
		MustBuild()).Required().
	Field("type", dsl.String()).Required().
	Field("link", dsl.String()).
	Field("buttonText", dsl.String()).
	Field("theme", dsl.String()).
	Field("button", dsl.Bool()).
	MustBuild()

var chainConfSchema = dsl.Object().
	Field("host", dsl.String()).Required().
	Field("id", dsl.String()).Required().
	Field("hub", dsl.String()).
	Field("sms", dsl.String()).
	Field("ipfsGateway", dsl.String()).
	Field("iexecGateway", dsl.String()).
	MustBuild()

var chainsConfSchema = dsl.Object().
	Field("default", dsl.String()).
	Field("chains", dsl.Map(chainConfSchema).MinKeys(1)).Required().
	MustBuild()

var walletConfSchema = dsl.Object().
	Field("privateKey", dsl.String()).Required().
	Field("publicKey", dsl.String()).Required().
	Field("address", dsl.String()).Required().
	MustBuild()

// deployedConfSchema maps an object type to the addresses it was deployed at,
// keyed by chain id.
var deployedConfSchema = dsl.PatternMap(`^(app|dataset|workerpool)$`, addressList()).Fold()

var githubSchema = dsl.Object().
	Field("url", dsl.String()).Required().
	Field("branch", dsl.String()).
	Field("commit", dsl.String()).
	Field("version", dsl.String().Semver()).
	Field("updatedAt", dsl.String().ISODate()).Required().
	MustBuild()

var fileDBSchema = dsl.Object().
	Field("address", address()).Required().
	Field("type", dsl.String().Valid(FileDBTypes...)).Required().
	Field("name", dsl.String()).
	Field("checksum", bytes32()).
	Field("version", dsl.String().Semver()).
	Field("updatedAt", dsl.String().ISODate()).Required().
	MustBuild()
