package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"fiatconnect-widget/pkg/fiatconnect"
	"fiatconnect-widget/pkg/parser"
)

// Configuration keys. With AutomaticEnv each key is also read from the
// upper-cased environment variable, e.g. api_key -> API_KEY.
const (
	KeyAPIKey        = "api_key"
	KeyAddress       = "address"
	KeyProviderID    = "provider_id"
	KeyBaseURL       = "base_url"
	KeyCountry       = "country"
	KeyCryptoAmount  = "crypto_amount"
	KeyCryptoType    = "crypto_type"
	KeyFiatType      = "fiat_type"
	KeyTransferType  = "transfer_type"
	KeyWidgetBaseURL = "widget_base_url"
	KeyTimeout       = "timeout"
	KeyEscape        = "escape"
)

// Defaults
const (
	DefaultProviderID    = fiatconnect.ProviderBitmama
	DefaultBaseURL       = "https://cico-staging.bitmama.io"
	DefaultCountry       = "NG"
	DefaultCryptoAmount  = "2"
	DefaultCryptoType    = fiatconnect.CryptoCUSD
	DefaultFiatType      = fiatconnect.FiatNGN
	DefaultTransferType  = fiatconnect.TransferIn
	DefaultWidgetBaseURL = "http://localhost:3000"
	DefaultTimeout       = 30 * time.Second
)

// Config holds everything needed to request a quote and build the widget URL
type Config struct {
	APIKey        string
	Address       string
	ProviderID    fiatconnect.ProviderID
	BaseURL       string
	Country       string
	CryptoAmount  string
	CryptoType    fiatconnect.CryptoType
	FiatType      fiatconnect.FiatType
	TransferType  fiatconnect.TransferType
	WidgetBaseURL string
	Timeout       time.Duration
	EscapeValues  bool
}

// QuoteRequest returns the body of the quote call for this configuration
func (c *Config) QuoteRequest() *fiatconnect.QuoteRequest {
	return &fiatconnect.QuoteRequest{
		Address:      c.Address,
		Country:      c.Country,
		CryptoAmount: c.CryptoAmount,
		CryptoType:   c.CryptoType,
		FiatType:     c.FiatType,
	}
}

// New returns a viper instance with defaults, environment lookup and the
// optional .fiatconnect-widget.yaml file in $HOME or the working directory
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName(".fiatconnect-widget")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME")
	v.AddConfigPath(".")

	SetDefaults(v)

	v.AutomaticEnv()
	return v
}

// SetDefaults registers the default value of every optional key
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyProviderID, string(DefaultProviderID))
	v.SetDefault(KeyBaseURL, DefaultBaseURL)
	v.SetDefault(KeyCountry, DefaultCountry)
	v.SetDefault(KeyCryptoAmount, DefaultCryptoAmount)
	v.SetDefault(KeyCryptoType, string(DefaultCryptoType))
	v.SetDefault(KeyFiatType, string(DefaultFiatType))
	v.SetDefault(KeyTransferType, string(DefaultTransferType))
	v.SetDefault(KeyWidgetBaseURL, DefaultWidgetBaseURL)
	v.SetDefault(KeyTimeout, DefaultTimeout.String())
	v.SetDefault(KeyEscape, false)
}

// Load reads the configuration from v and validates it
func Load(v *viper.Viper) (*Config, error) {
	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		APIKey:        strings.TrimSpace(v.GetString(KeyAPIKey)),
		Address:       strings.TrimSpace(v.GetString(KeyAddress)),
		BaseURL:       strings.TrimRight(v.GetString(KeyBaseURL), "/"),
		Country:       strings.TrimSpace(v.GetString(KeyCountry)),
		CryptoAmount:  strings.TrimSpace(v.GetString(KeyCryptoAmount)),
		WidgetBaseURL: strings.TrimRight(v.GetString(KeyWidgetBaseURL), "/"),
		EscapeValues:  v.GetBool(KeyEscape),
	}

	if cfg.APIKey == "" {
		return nil, &fiatconnect.ConfigError{Option: "apiKey", Message: "required (set --api-key or API_KEY)"}
	}
	if err := parser.ValidateAddress(cfg.Address); err != nil {
		return nil, err
	}

	var err error
	if cfg.ProviderID, err = parser.ParseProviderID(v.GetString(KeyProviderID)); err != nil {
		return nil, err
	}
	if cfg.CryptoType, err = parser.ParseCryptoType(v.GetString(KeyCryptoType)); err != nil {
		return nil, err
	}
	if cfg.FiatType, err = parser.ParseFiatType(v.GetString(KeyFiatType)); err != nil {
		return nil, err
	}
	if cfg.TransferType, err = parser.ParseTransferType(v.GetString(KeyTransferType)); err != nil {
		return nil, err
	}

	if cfg.BaseURL == "" {
		return nil, &fiatconnect.ConfigError{Option: "baseUrl", Message: "required"}
	}
	if cfg.WidgetBaseURL == "" {
		return nil, &fiatconnect.ConfigError{Option: "widgetBaseUrl", Message: "required"}
	}
	if cfg.Country == "" {
		return nil, &fiatconnect.ConfigError{Option: "country", Message: "required"}
	}
	if cfg.CryptoAmount == "" {
		return nil, &fiatconnect.ConfigError{Option: "cryptoAmount", Message: "required"}
	}
	if cfg.Timeout, err = parseTimeout(v.GetString(KeyTimeout)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseTimeout reads a duration such as "45s" or "1m". A bare integer is a
// number of seconds, so TIMEOUT=30 means 30s rather than 30ns.
func parseTimeout(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, &fiatconnect.ConfigError{Option: "timeout", Message: "required"}
	}

	var d time.Duration
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		d = time.Duration(n) * time.Second
	} else {
		d, err = time.ParseDuration(value)
		if err != nil {
			return 0, &fiatconnect.ConfigError{Option: "timeout", Message: fmt.Sprintf("invalid duration %q", value)}
		}
	}

	if d <= 0 {
		return 0, &fiatconnect.ConfigError{Option: "timeout", Message: "must be positive"}
	}
	return d, nil
}
