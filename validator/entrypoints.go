package validator

import "context"

// ValidateRegistryEntry checks a registry entry (name, org, created, rank).
func ValidateRegistryEntry(ctx context.Context, v any, opts ...Option) (bool, error) {
	return Validate(ctx, KindRegistryEntry, v, opts...)
}

// ValidateDapp checks an application descriptor.
func ValidateDapp(ctx context.Context, v any, opts ...Option) (bool, error) {
	return Validate(ctx, KindDapp, v, opts...)
}

// ValidateDataset checks a dataset descriptor.
func ValidateDataset(ctx context.Context, v any, opts ...Option) (bool, error) {
	return Validate(ctx, KindDataset, v, opts...)
}

// ValidateWorkerpool checks a worker-pool descriptor.
func ValidateWorkerpool(ctx context.Context, v any, opts ...Option) (bool, error) {
	return Validate(ctx, KindWorkerpool, v, opts...)
}

// ValidatePool is an alias of ValidateWorkerpool.
func ValidatePool(ctx context.Context, v any, opts ...Option) (bool, error) {
	return ValidateWorkerpool(ctx, v, opts...)
}

// ValidatePartner checks a partner entry.
func ValidatePartner(ctx context.Context, v any, opts ...Option) (bool, error) {
	return Validate(ctx, KindPartner, v, opts...)
}

// ValidateChainConf checks the configuration of a single chain.
func ValidateChainConf(ctx context.Context, v any, opts ...Option) (bool, error) {
	return Validate(ctx, KindChainConf, v, opts...)
}

// ValidateChainsConf checks a chains configuration with its named chains.
func ValidateChainsConf(ctx context.Context, v any, opts ...Option) (bool, error) {
	return Validate(ctx, KindChainsConf, v, opts...)
}

// ValidateWalletConf checks a wallet configuration.
func ValidateWalletConf(ctx context.Context, v any, opts ...Option) (bool, error) {
	return Validate(ctx, KindWalletConf, v, opts...)
}

// ValidateAccountConf checks an account configuration.
func ValidateAccountConf(ctx context.Context, v any, opts ...Option) (bool, error) {
	return Validate(ctx, KindAccountConf, v, opts...)
}

// ValidateDeployedConf checks a deployed-object manifest.
func ValidateDeployedConf(ctx context.Context, v any, opts ...Option) (bool, error) {
	return Validate(ctx, KindDeployedConf, v, opts...)
}

// ValidateGithub checks github metadata.
func ValidateGithub(ctx context.Context, v any, opts ...Option) (bool, error) {
	return Validate(ctx, KindGithub, v, opts...)
}

// ValidateFileDB checks a file-db entry.
func ValidateFileDB(ctx context.Context, v any, opts ...Option) (bool, error) {
	return Validate(ctx, KindFileDB, v, opts...)
}
