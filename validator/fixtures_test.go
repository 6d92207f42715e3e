package validator_test

import "strings"

const (
	validAddress = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	lowerAddress = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
)

var validChecksum = "0x" + strings.Repeat("a", 64)

func longText(n int) string { return strings.Repeat("a", n) }

func dappRecord() map[string]any {
	return map[string]any{
		"description": longText(150),
		"logo":        "logo.png",
		"social":      map[string]any{"website": "https://example.org"},
		"license":     "MIT",
		"author":      "iexec",
		"app": map[string]any{
			"owner":     validAddress,
			"name":      "VanityEth",
			"type":      "DOCKER",
			"multiaddr": "registry.hub.docker.com/iexechub/vanityeth:1.1.1",
			"checksum":  validChecksum,
			"mrenclave": "",
		},
		"buyConf": map[string]any{
			"params":   map[string]any{"0": "iExec"},
			"trust":    "0",
			"tag":      validChecksum,
			"callback": lowerAddress,
		},
	}
}

func datasetRecord() map[string]any {
	return map[string]any{
		"description": longText(200),
		"logo":        "logo.png",
		"social":      map[string]any{},
		"license":     "MIT",
		"author":      "iexec",
		"categories":  "Other",
		"dataset": map[string]any{
			"owner":     validAddress,
			"name":      "my-dataset",
			"multiaddr": "/ipfs/QmW2WQi7j6c7UgJTarActp7tDNikE4B2qXtFCfLPdsgaTQ",
			"checksum":  validChecksum,
		},
		"dapps": []any{
			map[string]any{
				"name":      "VanityEth",
				"addresses": map[string]any{"5": validAddress},
				"buyConf":   map[string]any{"params": "--help"},
			},
		},
	}
}

func workerpoolRecord() map[string]any {
	return map[string]any{
		"description": longText(150),
		"logo":        "logo.png",
		"social":      map[string]any{"github": "https://github.com/iExecBlockchainComputing"},
		"addresses":   map[string]any{"1": validAddress, "5": lowerAddress},
		"workerpool": map[string]any{
			"owner":       validAddress,
			"description": "my pool",
		},
	}
}

func partnerRecord() map[string]any {
	return map[string]any{
		"name":        "iExec",
		"org":         "iExec Blockchain Computing",
		"created":     "2019-04-01T10:00:00.000Z",
		"rank":        1,
		"description": longText(160),
		"logo":        "logo.png",
		"social":      map[string]any{"twitter": "https://twitter.com/iEx_ec"},
		"type":        "technology",
		"button":      true,
	}
}
