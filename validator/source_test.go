package validator_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iexec-tools/iexecschema"
	"github.com/iexec-tools/iexecschema/validator"
)

func TestValidateSource(t *testing.T) {
	ctx := context.Background()

	t.Run("json", func(t *testing.T) {
		doc := `{"app":{"1":"` + validAddress + `"},"dataset":{"5":"` + lowerAddress + `"}}`
		ok, err := validator.ValidateSource(ctx, validator.KindDeployedConf, iexecschema.JSONBytes([]byte(doc)))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("json reader", func(t *testing.T) {
		ok, err := validator.ValidateSource(ctx, validator.KindDapp, iexecschema.JSONReader(strings.NewReader(`{"description":"short"}`)), validator.Strict(false))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("yaml", func(t *testing.T) {
		doc := `
default: bellecour
chains:
  bellecour:
    host: https://bellecour.iex.ec
    id: "134"
    sms: https://sms.iex.ec
`
		ok, err := validator.ValidateSource(ctx, validator.KindChainsConf, iexecschema.YAMLBytes([]byte(doc)))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("yaml number where string expected", func(t *testing.T) {
		doc := "chains:\n  dev:\n    host: localhost\n    id: 65535\n"
		_, err := validator.ValidateSource(ctx, validator.KindChainsConf, iexecschema.YAMLBytes([]byte(doc)))
		require.EqualError(t, err, `"id" must be a string`)
	})

	t.Run("yaml numeric keys", func(t *testing.T) {
		doc := "app:\n  134: not-an-address\n  5: \"0x1234\"\n"
		ok, err := validator.ValidateSource(ctx, validator.KindDeployedConf, iexecschema.YAMLBytes([]byte(doc)))
		assert.False(t, ok)
		require.EqualError(t, err, `"134" needs to be a valid ethereum address + "5" needs to be a valid ethereum address`)

		doc = "app:\n  134: " + validAddress + "\n"
		ok, err = validator.ValidateSource(ctx, validator.KindDeployedConf, iexecschema.YAMLBytes([]byte(doc)))
		require.NoError(t, err)
		assert.True(t, ok)

		doc = "chains:\n  1:\n    host: localhost\n    id: \"1\"\n"
		ok, err = validator.ValidateSource(ctx, validator.KindChainsConf, iexecschema.YAMLBytes([]byte(doc)))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("toml", func(t *testing.T) {
		doc := `
privateKey = "0x564a9db84969c8159f7aa3d5393c5ecd014fce6a375842a45b12af6677b12407"
publicKey = "0x0433b1a4ee2e4b2a0c2e4b6e8d5b4c1a"
address = "` + validAddress + `"
`
		ok, err := validator.ValidateSource(ctx, validator.KindWalletConf, iexecschema.TOMLBytes([]byte(doc)))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("undecodable", func(t *testing.T) {
		doc := []byte(`{"jwtoken":"t"} trailing`)
		ok, err := validator.ValidateSource(ctx, validator.KindAccountConf, iexecschema.JSONBytes(doc), validator.Strict(false))
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = validator.ValidateSource(ctx, validator.KindAccountConf, iexecschema.JSONBytes(doc))
		iss, found := iexecschema.AsIssues(err)
		require.True(t, found)
		require.Len(t, iss, 1)
		assert.Equal(t, iexecschema.CodeParseError, iss[0].Code)
	})
}
