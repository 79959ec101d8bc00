package widget

import (
	"context"
	"fmt"

	"fiatconnect-widget/config"
	"fiatconnect-widget/pkg/fiatconnect"
)

// Quoter fetches a quote from a FiatConnect provider
type Quoter interface {
	GetQuote(ctx context.Context, transferType fiatconnect.TransferType, req *fiatconnect.QuoteRequest) (*fiatconnect.QuoteResponse, error)
}

// Result is the outcome of Generate
type Result struct {
	URL   string                     `json:"widgetUrl"`
	Quote *fiatconnect.QuoteResponse `json:"quote"`
}

// Generate requests a quote for cfg and builds the widget URL from it.
// Any failure aborts the whole operation; no partial URL is returned.
func Generate(ctx context.Context, cfg *config.Config, quoter Quoter) (*Result, error) {
	quote, err := quoter.GetQuote(ctx, cfg.TransferType, cfg.QuoteRequest())
	if err != nil {
		return nil, fmt.Errorf("fetching quote: %w", err)
	}

	var opts []Option
	if cfg.EscapeValues {
		opts = append(opts, WithEscapedValues())
	}

	url, err := BuildURL(cfg, quote, opts...)
	if err != nil {
		return nil, fmt.Errorf("building widget url: %w", err)
	}

	return &Result{URL: url, Quote: quote}, nil
}
