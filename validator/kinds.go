package validator

import "golang.org/x/xerrors"

// Kind names a record kind of the marketplace registry.
type Kind string

const (
	KindRegistryEntry Kind = "registryEntry"
	KindDapp          Kind = "dapp"
	KindDataset       Kind = "dataset"
	KindWorkerpool    Kind = "workerpool"
	KindPartner       Kind = "partner"
	KindChainConf     Kind = "chainConf"
	KindChainsConf    Kind = "chainsConf"
	KindWalletConf    Kind = "walletConf"
	KindAccountConf   Kind = "accountConf"
	KindDeployedConf  Kind = "deployedConf"
	KindGithub        Kind = "github"
	KindFileDB        Kind = "fileDB"
)

// Kinds lists every kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindRegistryEntry,
		KindDapp,
		KindDataset,
		KindWorkerpool,
		KindPartner,
		KindChainConf,
		KindChainsConf,
		KindWalletConf,
		KindAccountConf,
		KindDeployedConf,
		KindGithub,
		KindFileDB,
	}
}

// ParseKind resolves a kind from its name. "pool" is accepted for
// KindWorkerpool.
func ParseKind(s string) (Kind, error) {
	if s == "pool" {
		return KindWorkerpool, nil
	}
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", xerrors.Errorf("unknown record kind %q", s)
}

// Version selects one of the two marketplace record shapes.
type Version uint8

const (
	// Current is the nested app/dataset/workerpool shape with buy
	// configuration, categories and SMS/gateway chain fields.
	Current Version = iota
	// Legacy is the older flat shape with priced app/data objects, workerPool
	// stake policies and JWT account configuration.
	Legacy
)

var versionString = map[Version]string{
	Current: "current",
	Legacy:  "legacy",
}

func (v Version) String() string {
	if s, ok := versionString[v]; ok {
		return s
	}
	return "unknown"
}
