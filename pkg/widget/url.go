package widget

import (
	"fmt"
	"net/url"
	"strings"

	"fiatconnect-widget/config"
	"fiatconnect-widget/pkg/fiatconnect"
)

// Path is appended to the widget base URL; parameters follow in the fragment
const Path = "/fiatconnect-widget/#?"

type options struct {
	escape bool
}

// Option changes how the URL is built
type Option func(*options)

// WithEscapedValues percent-encodes every parameter value.
// The hosted widget reads raw values, so this is off by default.
func WithEscapedValues() Option {
	return func(o *options) {
		o.escape = true
	}
}

type builder struct {
	sb     strings.Builder
	escape bool
	n      int
}

func (b *builder) add(key, value string) {
	if b.n > 0 {
		b.sb.WriteByte('&')
	}
	if b.escape {
		value = url.QueryEscape(value)
	}
	b.sb.WriteString(key)
	b.sb.WriteByte('=')
	b.sb.WriteString(value)
	b.n++
}

// BuildURL turns a validated quote response into the widget URL for cfg.
// When several KYC schemas or fiat account types are offered the first one wins.
func BuildURL(cfg *config.Config, quote *fiatconnect.QuoteResponse, opts ...Option) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("config is required")
	}
	if quote == nil || quote.Quote == nil || quote.Kyc == nil {
		return "", &fiatconnect.SchemaValidationError{Issues: []fiatconnect.Issue{{Path: "quote", Message: "required"}}}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	b := &builder{escape: o.escape}
	b.sb.WriteString(cfg.WidgetBaseURL)
	b.sb.WriteString(Path)

	b.add("providerId", string(cfg.ProviderID))
	b.add("apiKey", cfg.APIKey)
	b.add("transferType", quote.Quote.TransferType)
	b.add("fiatAmount", quote.Quote.FiatAmount)
	b.add("cryptoAmount", cfg.CryptoAmount)
	b.add("fiatType", string(cfg.FiatType))
	b.add("cryptoType", string(cfg.CryptoType))
	b.add("quoteId", quote.Quote.QuoteID)
	b.add("country", cfg.Country)

	if quote.Kyc.Required() {
		if len(quote.Kyc.KycSchemas) == 0 {
			return "", &fiatconnect.MissingFieldError{Field: "kyc.kycSchemas", Err: fiatconnect.ErrKycSchemaNotFound}
		}
		kyc := quote.Kyc.KycSchemas[0]
		b.add("kycSchema", kyc.KycSchema)
		if kyc.AllowedValues.Len() > 0 {
			allowed, err := kyc.AllowedValues.Stringify()
			if err != nil {
				return "", err
			}
			b.add("kycAllowedValues", allowed)
		}
	}

	account, ok := quote.FiatAccount.First()
	if !ok || account.Type == "" {
		return "", &fiatconnect.MissingFieldError{Field: "fiatAccount", Err: fiatconnect.ErrFiatAccountTypeNotFound}
	}
	b.add("fiatAccountType", account.Type)

	schemas := account.Detail.FiatAccountSchemas
	if len(schemas) == 0 || schemas[0].FiatAccountSchema == "" {
		return "", &fiatconnect.MissingFieldError{
			Field: "fiatAccount." + account.Type + ".fiatAccountSchemas",
			Err:   fiatconnect.ErrFiatAccountSchemaNotFound,
		}
	}
	schema := schemas[0]
	b.add("fiatAccountSchema", schema.FiatAccountSchema)

	if schema.UserActionType != "" {
		b.add("userActionDetailsSchema", schema.UserActionType)
	}
	if schema.AllowedValues.Len() > 0 {
		allowed, err := schema.AllowedValues.Stringify()
		if err != nil {
			return "", err
		}
		b.add("fiatAccountAllowedValues", allowed)
	}

	return b.sb.String(), nil
}
