package parser

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"fiatconnect-widget/pkg/fiatconnect"
)

// ParseProviderID resolves a provider id option
func ParseProviderID(value string) (fiatconnect.ProviderID, error) {
	return parseChoice("providerId", value, fiatconnect.ProviderIDs)
}

// ParseCryptoType resolves a crypto type option
func ParseCryptoType(value string) (fiatconnect.CryptoType, error) {
	return parseChoice("cryptoType", value, fiatconnect.CryptoTypes)
}

// ParseFiatType resolves a fiat type option
func ParseFiatType(value string) (fiatconnect.FiatType, error) {
	return parseChoice("fiatType", value, fiatconnect.FiatTypes)
}

// ParseTransferType resolves a transfer type option
func ParseTransferType(value string) (fiatconnect.TransferType, error) {
	return parseChoice("transferType", value, fiatconnect.TransferTypes)
}

// ParseKycStatus resolves a KYC status. Both the FiatConnect names
// ("KycDenied") and the short forms ("denied", "not-created") are accepted.
func ParseKycStatus(value string) (fiatconnect.KycStatus, error) {
	short := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(value), "-", ""))
	short = strings.TrimPrefix(short, "kyc")
	if short != "" {
		for _, status := range fiatconnect.KycStatuses {
			if strings.EqualFold(strings.TrimPrefix(string(status), "Kyc"), short) {
				return status, nil
			}
		}
	}
	return parseChoice("status", value, fiatconnect.KycStatuses)
}

// ParseNetwork resolves a FiatConnect network name
func ParseNetwork(value string) (fiatconnect.Network, error) {
	return parseChoice("network", value, fiatconnect.Networks)
}

// ValidateAddress checks that the address is a hex encoded account address
func ValidateAddress(address string) error {
	if address == "" {
		return &fiatconnect.ConfigError{Option: "address", Message: "required"}
	}
	if !common.IsHexAddress(address) {
		return &fiatconnect.ConfigError{Option: "address", Message: fmt.Sprintf("%q is not a valid account address", address)}
	}
	return nil
}

func parseChoice[T ~string](option, value string, choices []T) (T, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &fiatconnect.ConfigError{Option: option, Message: "required"}
	}

	for _, choice := range choices {
		if string(choice) == value {
			return choice, nil
		}
	}

	return "", &fiatconnect.ConfigError{
		Option:  option,
		Message: fmt.Sprintf("invalid choice %q (choices: %s)", value, Join(choices)),
	}
}

// Join renders a list of choices for help and error text
func Join[T ~string](choices []T) string {
	parts := make([]string, 0, len(choices))
	for _, c := range choices {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ", ")
}
