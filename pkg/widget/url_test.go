package widget_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"fiatconnect-widget/config"
	"fiatconnect-widget/pkg/fiatconnect"
	"fiatconnect-widget/pkg/widget"
)

func testConfig() *config.Config {
	return &config.Config{
		APIKey:        "k1",
		Address:       "0x1111111111111111111111111111111111111111",
		ProviderID:    fiatconnect.ProviderBitmama,
		BaseURL:       "https://cico-staging.bitmama.io",
		Country:       "NG",
		CryptoAmount:  "2",
		CryptoType:    fiatconnect.CryptoCUSD,
		FiatType:      fiatconnect.FiatNGN,
		TransferType:  fiatconnect.TransferIn,
		WidgetBaseURL: "http://localhost:3000",
	}
}

func parseQuote(t *testing.T, body string) *fiatconnect.QuoteResponse {
	t.Helper()

	var quote fiatconnect.QuoteResponse
	require.NoError(t, json.Unmarshal([]byte(body), &quote))
	return &quote
}

const baseQuote = `{
	"quote": {"fiatAmount": "1000", "quoteId": "q1", "transferType": "in"},
	"kyc": {"kycRequired": false, "kycSchemas": []},
	"fiatAccount": {"BankAccount": {"fiatAccountSchemas": [{"fiatAccountSchema": "NGNBankAccount"}]}}
}`

func TestBuildURL(t *testing.T) {
	t.Parallel()

	// Act: build the URL for the reference quote
	got, err := widget.BuildURL(testConfig(), parseQuote(t, baseQuote))
	require.NoError(t, err)

	// Assert: nine base fragments in order, then the fiat account
	require.Equal(t,
		"http://localhost:3000/fiatconnect-widget/#?providerId=bitmama&apiKey=k1&transferType=in&fiatAmount=1000&cryptoAmount=2&fiatType=NGN&cryptoType=cUSD&quoteId=q1&country=NG&fiatAccountType=BankAccount&fiatAccountSchema=NGNBankAccount",
		got)
	require.NotContains(t, got, "kyc")
}

func TestBuildURL_Idempotent(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	quote := parseQuote(t, baseQuote)

	first, err := widget.BuildURL(cfg, quote)
	require.NoError(t, err)
	second, err := widget.BuildURL(cfg, quote)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestBuildURL_TransferTypeFromQuote(t *testing.T) {
	t.Parallel()

	// Arrange: the server normalizes the transfer type
	quote := parseQuote(t, strings.Replace(baseQuote, `"transferType": "in"`, `"transferType": "TransferIn"`, 1))

	got, err := widget.BuildURL(testConfig(), quote)
	require.NoError(t, err)
	require.Contains(t, got, "&transferType=TransferIn&")
}

func TestBuildURL_Kyc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		kyc       string
		want      string
		notWanted string
	}{
		{
			name:      "no allowed values",
			kyc:       `{"kycRequired": true, "kycSchemas": [{"kycSchema": "PersonalDataAndDocuments"}]}`,
			want:      "&country=NG&kycSchema=PersonalDataAndDocuments&fiatAccountType=",
			notWanted: "kycAllowedValues",
		},
		{
			name:      "empty allowed values",
			kyc:       `{"kycRequired": true, "kycSchemas": [{"kycSchema": "PersonalDataAndDocuments", "allowedValues": {}}]}`,
			want:      "&kycSchema=PersonalDataAndDocuments&fiatAccountType=",
			notWanted: "kycAllowedValues",
		},
		{
			name: "allowed values keep their order",
			kyc:  `{"kycRequired": true, "kycSchemas": [{"kycSchema": "PersonalDataAndDocuments", "allowedValues": {"isoCountryCode": ["NG"], "isoRegionCode": ["LA", "AB"]}}]}`,
			want: `&kycSchema=PersonalDataAndDocuments&kycAllowedValues={"isoCountryCode":["NG"],"isoRegionCode":["LA","AB"]}&fiatAccountType=`,
		},
		{
			name: "escaped allowed values are decoded",
			kyc:  `{"kycRequired": true, "kycSchemas": [{"kycSchema": "PersonalDataAndDocuments", "allowedValues": {"city": ["S\u00e3o Paulo", "A\/B", "M\u0026T"]}}]}`,
			want: `&kycAllowedValues={"city":["São Paulo","A/B","M&T"]}&fiatAccountType=`,
		},
		{
			name: "first schema wins",
			kyc:  `{"kycRequired": true, "kycSchemas": [{"kycSchema": "First"}, {"kycSchema": "Second", "allowedValues": {"a": ["b"]}}]}`,
			want: "&kycSchema=First&fiatAccountType=",
		},
		{
			name:      "kyc not required",
			kyc:       `{"kycRequired": false, "kycSchemas": [{"kycSchema": "PersonalDataAndDocuments"}]}`,
			want:      "&country=NG&fiatAccountType=",
			notWanted: "kycSchema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := strings.Replace(baseQuote, `{"kycRequired": false, "kycSchemas": []}`, tt.kyc, 1)
			got, err := widget.BuildURL(testConfig(), parseQuote(t, body))
			require.NoError(t, err)
			require.Contains(t, got, tt.want)
			if tt.notWanted != "" {
				require.NotContains(t, got, tt.notWanted)
			}
		})
	}
}

func TestBuildURL_FiatAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fiatAccount string
		wantSuffix  string
	}{
		{
			name:        "first account type in document order",
			fiatAccount: `{"MobileMoney": {"fiatAccountSchemas": [{"fiatAccountSchema": "MobileMoney"}]}, "BankAccount": {"fiatAccountSchemas": [{"fiatAccountSchema": "AccountNumber"}]}}`,
			wantSuffix:  "&fiatAccountType=MobileMoney&fiatAccountSchema=MobileMoney",
		},
		{
			name:        "user action",
			fiatAccount: `{"BankAccount": {"fiatAccountSchemas": [{"fiatAccountSchema": "DuniaWallet", "userActionType": "AccountNumberUserAction"}]}}`,
			wantSuffix:  "&fiatAccountType=BankAccount&fiatAccountSchema=DuniaWallet&userActionDetailsSchema=AccountNumberUserAction",
		},
		{
			name:        "allowed values",
			fiatAccount: `{"BankAccount": {"fiatAccountSchemas": [{"fiatAccountSchema": "AccountNumber", "allowedValues": {"institutionName": ["Access Bank", "GTBank"]}}]}}`,
			wantSuffix:  `&fiatAccountSchema=AccountNumber&fiatAccountAllowedValues={"institutionName":["Access Bank","GTBank"]}`,
		},
		{
			name:        "user action and allowed values",
			fiatAccount: `{"BankAccount": {"fiatAccountSchemas": [{"fiatAccountSchema": "PIXAccount", "userActionType": "PIXUserAction", "allowedValues": {"keyType": ["EMAIL"]}}]}}`,
			wantSuffix:  `&fiatAccountSchema=PIXAccount&userActionDetailsSchema=PIXUserAction&fiatAccountAllowedValues={"keyType":["EMAIL"]}`,
		},
		{
			name:        "escaped allowed values are decoded",
			fiatAccount: `{"BankAccount": {"fiatAccountSchemas": [{"fiatAccountSchema": "AccountNumber", "allowedValues": {"institutionName": ["Caf\u00e9 Bank", "A\/B", "M\u0026T Bank"]}}]}}`,
			wantSuffix:  `&fiatAccountAllowedValues={"institutionName":["Café Bank","A/B","M&T Bank"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := strings.Replace(baseQuote,
				`{"BankAccount": {"fiatAccountSchemas": [{"fiatAccountSchema": "NGNBankAccount"}]}}`, tt.fiatAccount, 1)
			got, err := widget.BuildURL(testConfig(), parseQuote(t, body))
			require.NoError(t, err)
			require.True(t, strings.HasSuffix(got, tt.wantSuffix), "unexpected url: %s", got)
		})
	}
}

func TestBuildURL_MissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
		message string
	}{
		{
			name:    "no fiat account type",
			from:    `{"BankAccount": {"fiatAccountSchemas": [{"fiatAccountSchema": "NGNBankAccount"}]}}`,
			to:      `{}`,
			wantErr: fiatconnect.ErrFiatAccountTypeNotFound,
			message: "fiat account type not found in quote response",
		},
		{
			name:    "no fiat account schemas",
			from:    `[{"fiatAccountSchema": "NGNBankAccount"}]`,
			to:      `[]`,
			wantErr: fiatconnect.ErrFiatAccountSchemaNotFound,
			message: "fiat account schema not found in quote response",
		},
		{
			name:    "empty fiat account schema",
			from:    `"fiatAccountSchema": "NGNBankAccount"`,
			to:      `"fiatAccountSchema": ""`,
			wantErr: fiatconnect.ErrFiatAccountSchemaNotFound,
			message: "fiat account schema not found in quote response",
		},
		{
			name:    "kyc required without schemas",
			from:    `"kycRequired": false`,
			to:      `"kycRequired": true`,
			wantErr: fiatconnect.ErrKycSchemaNotFound,
			message: "kyc schema not found in quote response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := widget.BuildURL(testConfig(), parseQuote(t, strings.Replace(baseQuote, tt.from, tt.to, 1)))
			require.Empty(t, got)
			require.ErrorIs(t, err, tt.wantErr)
			require.EqualError(t, err, tt.message)

			var missing *fiatconnect.MissingFieldError
			require.True(t, errors.As(err, &missing))
		})
	}
}

func TestBuildURL_EscapedValues(t *testing.T) {
	t.Parallel()

	// Arrange: values that are not safe in a URL
	cfg := testConfig()
	cfg.APIKey = "a&b=c"
	body := strings.Replace(baseQuote,
		`{"fiatAccountSchema": "NGNBankAccount"}`,
		`{"fiatAccountSchema": "AccountNumber", "allowedValues": {"institutionName": ["Access Bank"]}}`, 1)
	quote := parseQuote(t, body)

	// Act: build with and without escaping
	raw, err := widget.BuildURL(cfg, quote)
	require.NoError(t, err)
	escaped, err := widget.BuildURL(cfg, quote, widget.WithEscapedValues())
	require.NoError(t, err)

	// Assert: raw keeps values untouched, escaped encodes them
	require.Contains(t, raw, "&apiKey=a&b=c&")
	require.Contains(t, escaped, "&apiKey=a%26b%3Dc&")
	require.Contains(t, escaped, "&fiatAccountAllowedValues=%7B%22institutionName%22%3A%5B%22Access+Bank%22%5D%7D")
	require.True(t, strings.HasPrefix(escaped, "http://localhost:3000/fiatconnect-widget/#?providerId=bitmama&"))
}
