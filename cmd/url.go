package cmd

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fiatconnect-widget/config"
	"fiatconnect-widget/pkg/client"
	"fiatconnect-widget/pkg/fiatconnect"
	"fiatconnect-widget/pkg/parser"
	"fiatconnect-widget/pkg/widget"
)

var (
	urlConfig  *viper.Viper
	urlHeaders []string
)

var urlCmd = &cobra.Command{
	Use:     "generate-url",
	Aliases: []string{"url"},
	Short:   "Fetch a quote and print the widget URL for it",
	Long: `Request a quote from a FiatConnect provider and print the URL that opens the
FiatConnect widget for that quote.

Every flag can also be set through the environment (API_KEY, ADDRESS,
PROVIDER_ID, BASE_URL, COUNTRY, CRYPTO_AMOUNT, CRYPTO_TYPE, FIAT_TYPE,
TRANSFER_TYPE, WIDGET_BASE_URL, TIMEOUT, ESCAPE), a .env file, or a
.fiatconnect-widget.yaml file in $HOME or the current directory.

IMPORTANT:
  - --api-key and --address are required

Examples:
  # Cash in 2 cUSD worth of NGN with Bitmama staging
  fiatconnect-widget generate-url --api-key <key> --address 0x123...

  # Cash out to a Kenyan account
  fiatconnect-widget generate-url --api-key <key> --address 0x123... \
    --transfer-type out --fiat-type KES --country KE --crypto-amount 10

  # Send an extra header with the quote request
  fiatconnect-widget generate-url --api-key <key> --address 0x123... -H "X-Request-Id: 42"

  # Point the URL at a deployed widget
  fiatconnect-widget generate-url --widget-base-url https://widget.example.com`,
	Args: cobra.NoArgs,
	RunE: runGenerateURL,
}

func init() {
	rootCmd.AddCommand(urlCmd)

	f := urlCmd.Flags()
	f.String("api-key", "", "API key to use (REQUIRED)")
	f.String("address", "", "Address to get a quote for (REQUIRED)")
	f.String("provider-id", string(config.DefaultProviderID), fmt.Sprintf("Provider ID to use (%s)", parser.Join(fiatconnect.ProviderIDs)))
	f.String("base-url", config.DefaultBaseURL, "Base URL of the FiatConnect server to get a quote from")
	f.String("country", config.DefaultCountry, "Country to get a quote for")
	f.String("crypto-amount", config.DefaultCryptoAmount, "Amount of crypto to get a quote for")
	f.String("crypto-type", string(config.DefaultCryptoType), fmt.Sprintf("Type of crypto to get a quote for (%s)", parser.Join(fiatconnect.CryptoTypes)))
	f.String("fiat-type", string(config.DefaultFiatType), fmt.Sprintf("Type of fiat to get a quote for (%s)", parser.Join(fiatconnect.FiatTypes)))
	f.String("transfer-type", string(config.DefaultTransferType), "Type of transfer to get a quote for (in, out)")
	f.String("widget-base-url", config.DefaultWidgetBaseURL, "Base URL of the widget to use")
	f.String("timeout", config.DefaultTimeout.String(), "Timeout for the quote request, e.g. 45s (a bare number is seconds)")
	f.Bool("escape", false, "Percent-encode URL parameter values")
	f.StringArrayVarP(&urlHeaders, "header", "H", nil, `Extra header for the quote request as "Name: value" (repeatable)`)

	urlConfig = config.New()
	bindings := map[string]string{
		config.KeyAPIKey:        "api-key",
		config.KeyAddress:       "address",
		config.KeyProviderID:    "provider-id",
		config.KeyBaseURL:       "base-url",
		config.KeyCountry:       "country",
		config.KeyCryptoAmount:  "crypto-amount",
		config.KeyCryptoType:    "crypto-type",
		config.KeyFiatType:      "fiat-type",
		config.KeyTransferType:  "transfer-type",
		config.KeyWidgetBaseURL: "widget-base-url",
		config.KeyTimeout:       "timeout",
		config.KeyEscape:        "escape",
	}
	for key, flag := range bindings {
		if err := urlConfig.BindPFlag(key, f.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func runGenerateURL(cmd *cobra.Command, args []string) error {
	verbose, jsonOutput := outputFlags(cmd)
	stderr := cmd.ErrOrStderr()

	// Load configuration
	cfg, err := config.Load(urlConfig)
	if err != nil {
		return err
	}

	if verbose {
		printDebug(stderr, "requesting quote from %s/quote/%s for %s %s -> %s (%s)",
			cfg.BaseURL, cfg.TransferType, cfg.CryptoAmount, cfg.CryptoType, cfg.FiatType, cfg.Country)
	}

	header, err := parseHeaders(urlHeaders)
	if err != nil {
		return err
	}

	apiClient := client.NewFiatConnectClient(cfg.APIKey,
		client.WithBaseURL(cfg.BaseURL),
		client.WithTimeout(cfg.Timeout),
		client.WithHeader(header),
	)

	// Get quote with spinner
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	if !jsonOutput {
		s.Suffix = " Fetching quote..."
		s.Start()
	}

	result, err := widget.Generate(cmd.Context(), cfg, apiClient)
	if !jsonOutput {
		s.Stop()
	}
	if err != nil {
		if verbose {
			printDebug(stderr, "this might be due to:")
			printDebug(stderr, "  1. an invalid or expired API key")
			printDebug(stderr, "  2. an amount outside the provider's limits")
			printDebug(stderr, "  3. a crypto/fiat/country combination the provider does not support")
		}
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), result)
	}

	if verbose {
		printDebug(stderr, "quote received:")
		if err := printJSON(stderr, result.Quote); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.URL)
	color.New(color.FgGreen).Fprintln(stderr, "done")
	return nil
}

// parseHeaders turns "Name: value" flag values into a header set
func parseHeaders(values []string) (http.Header, error) {
	header := http.Header{}
	for _, v := range values {
		name, value, ok := strings.Cut(v, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, &fiatconnect.ConfigError{Option: "header", Message: fmt.Sprintf("%q is not in the form \"Name: value\"", v)}
		}
		header.Add(name, strings.TrimSpace(value))
	}
	return header, nil
}
