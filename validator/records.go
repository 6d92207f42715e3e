package validator

// Typed records matching the current wire shapes. They can be passed to the
// entry points directly; optional fields are omitted when empty.

// Social lists the public links of a descriptor.
type Social struct {
	Website  string `json:"website,omitempty"`
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Medium   string `json:"medium,omitempty"`
}

// Descriptor holds the fields shared by dapp, dataset and workerpool
// descriptors.
type Descriptor struct {
	Type        string            `json:"type,omitempty"`
	Description string            `json:"description"`
	Logo        string            `json:"logo"`
	Social      Social            `json:"social"`
	Addresses   map[string]string `json:"addresses,omitempty"`
	Repo        string            `json:"repo,omitempty"`
}

// BuyConf is the order configuration used when buying a dapp run.
type BuyConf struct {
	Params   any    `json:"params"`
	Trust    *int64 `json:"trust,omitempty"`
	Tag      string `json:"tag,omitempty"`
	Callback string `json:"callback,omitempty"`
}

// App is the on-chain app object of a dapp descriptor.
type App struct {
	Owner     string  `json:"owner"`
	Name      string  `json:"name"`
	Type      string  `json:"type,omitempty"`
	Multiaddr string  `json:"multiaddr"`
	Checksum  string  `json:"checksum"`
	Mrenclave *string `json:"mrenclave,omitempty"`
}

// Dapp is a dapp registry descriptor.
type Dapp struct {
	Descriptor
	License string  `json:"license"`
	Author  string  `json:"author"`
	App     App     `json:"app"`
	BuyConf BuyConf `json:"buyConf"`
}

// DatasetObject is the on-chain dataset object of a dataset descriptor.
type DatasetObject struct {
	Owner     string `json:"owner"`
	Name      string `json:"name"`
	Multiaddr string `json:"multiaddr"`
	Checksum  string `json:"checksum"`
}

// CompatibleDapp names a dapp allowed to consume a dataset.
type CompatibleDapp struct {
	Name      string            `json:"name"`
	Addresses map[string]string `json:"addresses"`
	BuyConf   *BuyConf          `json:"buyConf,omitempty"`
}

// Dataset is a dataset registry descriptor.
type Dataset struct {
	Descriptor
	License    string           `json:"license"`
	Author     string           `json:"author"`
	Categories string           `json:"categories,omitempty"`
	Dataset    DatasetObject    `json:"dataset"`
	Dapps      []CompatibleDapp `json:"dapps,omitempty"`
}

// WorkerpoolObject is the on-chain workerpool object of a workerpool descriptor.
type WorkerpoolObject struct {
	Owner       string `json:"owner"`
	Description string `json:"description"`
}

// Workerpool is a workerpool registry descriptor.
type Workerpool struct {
	Descriptor
	Workerpool WorkerpoolObject `json:"workerpool"`
}

// RegistryEntry holds the fields shared by registry listings.
type RegistryEntry struct {
	Name    string `json:"name,omitempty"`
	Org     string `json:"org"`
	Created string `json:"created"`
	Rank    *int   `json:"rank,omitempty"`
}

// Partner is a partner registry entry.
type Partner struct {
	RegistryEntry
	Description string `json:"description"`
	Logo        string `json:"logo"`
	License     string `json:"license,omitempty"`
	Social      Social `json:"social"`
	Type        string `json:"type"`
	Link        string `json:"link,omitempty"`
	ButtonText  string `json:"buttonText,omitempty"`
	Theme       string `json:"theme,omitempty"`
	Button      *bool  `json:"button,omitempty"`
}

// ChainConf describes how to reach one chain.
type ChainConf struct {
	Host         string `json:"host"`
	ID           string `json:"id"`
	Hub          string `json:"hub,omitempty"`
	Sms          string `json:"sms,omitempty"`
	IpfsGateway  string `json:"ipfsGateway,omitempty"`
	IexecGateway string `json:"iexecGateway,omitempty"`
}

// ChainsConf is the chain configuration file.
type ChainsConf struct {
	Default string               `json:"default,omitempty"`
	Chains  map[string]ChainConf `json:"chains"`
}

// WalletConf is a wallet file.
type WalletConf struct {
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
	Address    string `json:"address"`
}

// AccountConf holds the API credentials of an account.
type AccountConf struct {
	JWToken string `json:"jwtoken"`
}

// DeployedConf maps an object type (app, dataset, workerpool) to its
// deployment addresses keyed by chain id.
type DeployedConf map[string]map[string]string

// GithubMeta records the github source a descriptor was built from.
type GithubMeta struct {
	URL       string `json:"url"`
	Branch    string `json:"branch,omitempty"`
	Commit    string `json:"commit,omitempty"`
	Version   string `json:"version,omitempty"`
	UpdatedAt string `json:"updatedAt"`
}

// FileDBEntry is one entry of the file database.
type FileDBEntry struct {
	Address   string `json:"address"`
	Type      string `json:"type"`
	Name      string `json:"name,omitempty"`
	Checksum  string `json:"checksum,omitempty"`
	Version   string `json:"version,omitempty"`
	UpdatedAt string `json:"updatedAt"`
}
