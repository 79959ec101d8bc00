package fiatconnect

// ProviderID identifies a FiatConnect provider supported by the widget
type ProviderID string

const (
	ProviderBitmama ProviderID = "bitmama"
	ProviderBitssa  ProviderID = "bitssa"
	ProviderClabs   ProviderID = "clabs"
)

// ProviderIDs lists every supported provider in display order
var ProviderIDs = []ProviderID{ProviderBitmama, ProviderBitssa, ProviderClabs}

// CryptoType is a token accepted by FiatConnect providers
type CryptoType string

const (
	CryptoCUSD  CryptoType = "cUSD"
	CryptoCEUR  CryptoType = "cEUR"
	CryptoCREAL CryptoType = "cREAL"
	CryptoCELO  CryptoType = "CELO"
	CryptoUSDC  CryptoType = "USDC"
	CryptoUSDT  CryptoType = "USDT"
)

var CryptoTypes = []CryptoType{CryptoCUSD, CryptoCEUR, CryptoCREAL, CryptoCELO, CryptoUSDC, CryptoUSDT}

// FiatType is an ISO 4217 currency code accepted by FiatConnect providers
type FiatType string

const (
	FiatNGN FiatType = "NGN"
	FiatKES FiatType = "KES"
	FiatGHS FiatType = "GHS"
	FiatUGX FiatType = "UGX"
	FiatXOF FiatType = "XOF"
	FiatZAR FiatType = "ZAR"
	FiatUSD FiatType = "USD"
	FiatEUR FiatType = "EUR"
	FiatBRL FiatType = "BRL"
	FiatPHP FiatType = "PHP"
	FiatGBP FiatType = "GBP"
)

var FiatTypes = []FiatType{FiatNGN, FiatKES, FiatGHS, FiatUGX, FiatXOF, FiatZAR, FiatUSD, FiatEUR, FiatBRL, FiatPHP, FiatGBP}

// TransferType is the direction of a transfer as used in quote paths
type TransferType string

const (
	TransferIn  TransferType = "in"  // fiat to crypto
	TransferOut TransferType = "out" // crypto to fiat
)

var TransferTypes = []TransferType{TransferIn, TransferOut}

// KycStatus is the state of a user's KYC submission with a provider
type KycStatus string

const (
	KycNotCreated KycStatus = "KycNotCreated"
	KycPending    KycStatus = "KycPending"
	KycApproved   KycStatus = "KycApproved"
	KycDenied     KycStatus = "KycDenied"
	KycExpired    KycStatus = "KycExpired"
)

var KycStatuses = []KycStatus{KycNotCreated, KycPending, KycApproved, KycDenied, KycExpired}

// Network is a FiatConnect network name
type Network string

const (
	NetworkMainnet   Network = "Mainnet"
	NetworkAlfajores Network = "Alfajores"
)

var Networks = []Network{NetworkMainnet, NetworkAlfajores}

// QuoteRequest is the JSON body sent to POST /quote/{in|out}
type QuoteRequest struct {
	Address      string     `json:"address"`
	Country      string     `json:"country"`
	CryptoAmount string     `json:"cryptoAmount"`
	CryptoType   CryptoType `json:"cryptoType"`
	FiatType     FiatType   `json:"fiatType"`
}

// QuoteResponse is the body returned by a successful quote request
type QuoteResponse struct {
	Quote       *Quote       `json:"quote"`
	Kyc         *Kyc         `json:"kyc"`
	FiatAccount *FiatAccount `json:"fiatAccount"`
}

// Quote holds the priced offer
type Quote struct {
	FiatType        string `json:"fiatType,omitempty"`
	CryptoType      string `json:"cryptoType,omitempty"`
	FiatAmount      string `json:"fiatAmount"`
	CryptoAmount    string `json:"cryptoAmount,omitempty"`
	QuoteID         string `json:"quoteId"`
	GuaranteedUntil string `json:"guaranteedUntil,omitempty"`
	TransferType    string `json:"transferType"`
}

// Kyc describes the KYC requirements attached to a quote
type Kyc struct {
	KycRequired *bool       `json:"kycRequired"`
	KycSchemas  []KycSchema `json:"kycSchemas"`
}

// Required reports whether the provider asked for KYC
func (k *Kyc) Required() bool {
	return k != nil && k.KycRequired != nil && *k.KycRequired
}

// KycSchema names one acceptable KYC form
type KycSchema struct {
	KycSchema     string        `json:"kycSchema"`
	AllowedValues AllowedValues `json:"allowedValues,omitempty"`
}

// FiatAccountSchema names one acceptable fiat account shape
type FiatAccountSchema struct {
	FiatAccountSchema string        `json:"fiatAccountSchema"`
	UserActionType    string        `json:"userActionType,omitempty"`
	AllowedValues     AllowedValues `json:"allowedValues,omitempty"`
}

// FiatAccountDetail is the value stored under each fiat account type
type FiatAccountDetail struct {
	FiatAccountSchemas       []FiatAccountSchema `json:"fiatAccountSchemas"`
	SettlementTimeLowerBound string              `json:"settlementTimeLowerBound,omitempty"`
	SettlementTimeUpperBound string              `json:"settlementTimeUpperBound,omitempty"`
}
