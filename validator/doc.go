// Package validator holds the marketplace record schemas and their entry
// points.
//
// Each Kind has one schema per Version. Descriptor schemas are composed from
// a shared base shape:
//
//	dapp    = base + license, author, app, buyConf
//	dataset = base + license, author, categories, dataset, dapps
//
// Entry points return (true, nil) on success. On failure they return a
// *iexecschema.ValidationError whose message joins every violated rule with
// " + ", or (false, nil) when called with Strict(false):
//
//	ok, err := validator.ValidateDapp(ctx, record)
//	ok, _ = validator.ValidateDapp(ctx, record, validator.Strict(false))
//	ok, err = validator.ValidateDapp(ctx, record, validator.WithVersion(validator.Legacy))
package validator
