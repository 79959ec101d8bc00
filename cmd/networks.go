package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fiatconnect-widget/pkg/fiatconnect"
	"fiatconnect-widget/pkg/networks"
	"fiatconnect-widget/pkg/parser"
)

var networksCmd = &cobra.Command{
	Use:   "networks [network | chain-id]",
	Short: "Show FiatConnect networks and their chain ids",
	Long: `Show the chain id of each FiatConnect network, or resolve a single
network name or chain id.

Examples:
  fiatconnect-widget networks
  fiatconnect-widget networks Alfajores
  fiatconnect-widget networks 42220`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNetworks,
}

func init() {
	rootCmd.AddCommand(networksCmd)
}

type networkRow struct {
	Network fiatconnect.Network `json:"network"`
	ChainID int64               `json:"chainId"`
}

func runNetworks(cmd *cobra.Command, args []string) error {
	_, jsonOutput := outputFlags(cmd)

	var rows []networkRow
	if len(args) == 0 {
		for _, n := range fiatconnect.Networks {
			id, err := networks.ChainID(n)
			if err != nil {
				return err
			}
			rows = append(rows, networkRow{Network: n, ChainID: id})
		}
	} else {
		row, err := resolveNetwork(args[0])
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), rows)
	}
	for _, r := range rows {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-10s  %s\n", color.YellowString(string(r.Network)), color.CyanString("%d", r.ChainID))
	}
	return nil
}

func resolveNetwork(arg string) (networkRow, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		n, err := networks.FromChainID(id)
		if err != nil {
			return networkRow{}, err
		}
		return networkRow{Network: n, ChainID: id}, nil
	}

	n, err := parser.ParseNetwork(arg)
	if err != nil {
		return networkRow{}, err
	}
	id, err := networks.ChainID(n)
	if err != nil {
		return networkRow{}, err
	}
	return networkRow{Network: n, ChainID: id}, nil
}
