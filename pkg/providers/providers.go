package providers

import (
	"fmt"

	"fiatconnect-widget/pkg/fiatconnect"
)

// Info holds the display details of a provider
type Info struct {
	ID           fiatconnect.ProviderID `json:"id"`
	Name         string                 `json:"name"`
	SupportEmail string                 `json:"supportEmail"`
	Website      string                 `json:"website"`
}

var byID = map[fiatconnect.ProviderID]Info{
	fiatconnect.ProviderBitmama: {
		ID:           fiatconnect.ProviderBitmama,
		Name:         "Bitmama",
		SupportEmail: "support@bitmama.io",
		Website:      "https://bitmama.io",
	},
	fiatconnect.ProviderBitssa: {
		ID:           fiatconnect.ProviderBitssa,
		Name:         "Bitssa",
		SupportEmail: "support@bitssa.com",
		Website:      "https://bitssa.com",
	},
	fiatconnect.ProviderClabs: {
		ID:           fiatconnect.ProviderClabs,
		Name:         "cLabs",
		SupportEmail: "support@clabs.co",
		Website:      "https://clabs.co",
	},
}

// Lookup returns the details of a provider
func Lookup(id fiatconnect.ProviderID) (Info, error) {
	info, ok := byID[id]
	if !ok {
		return Info{}, fmt.Errorf("unknown provider %q", id)
	}
	return info, nil
}

// All returns every provider in the order of fiatconnect.ProviderIDs
func All() []Info {
	out := make([]Info, 0, len(fiatconnect.ProviderIDs))
	for _, id := range fiatconnect.ProviderIDs {
		out = append(out, byID[id])
	}
	return out
}
