package networks

import (
	"fmt"

	"fiatconnect-widget/pkg/fiatconnect"
)

// Celo chain ids
const (
	CeloChainID          int64 = 42220
	CeloAlfajoresChainID int64 = 44787
)

var networkToChainID = map[fiatconnect.Network]int64{
	fiatconnect.NetworkMainnet:   CeloChainID,
	fiatconnect.NetworkAlfajores: CeloAlfajoresChainID,
}

var chainIDToNetwork = invert(networkToChainID)

func invert(m map[fiatconnect.Network]int64) map[int64]fiatconnect.Network {
	out := make(map[int64]fiatconnect.Network, len(m))
	for network, id := range m {
		out[id] = network
	}
	return out
}

// ChainID returns the chain id a FiatConnect network runs on
func ChainID(network fiatconnect.Network) (int64, error) {
	id, ok := networkToChainID[network]
	if !ok {
		return 0, fmt.Errorf("unknown network %q", network)
	}
	return id, nil
}

// FromChainID returns the FiatConnect network for a chain id
func FromChainID(id int64) (fiatconnect.Network, error) {
	network, ok := chainIDToNetwork[id]
	if !ok {
		return "", fmt.Errorf("no FiatConnect network for chain id %d", id)
	}
	return network, nil
}
