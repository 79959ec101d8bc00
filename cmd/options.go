package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fiatconnect-widget/pkg/fiatconnect"
	"fiatconnect-widget/pkg/parser"
	"fiatconnect-widget/pkg/providers"
)

var optionsCmd = &cobra.Command{
	Use:     "list-options",
	Aliases: []string{"options", "ls"},
	Short:   "List supported providers, crypto and fiat types",
	Long: `List the values accepted by generate-url for --provider-id, --crypto-type,
--fiat-type and --transfer-type.

Examples:
  fiatconnect-widget list-options
  fiatconnect-widget list-options --json`,
	Args: cobra.NoArgs,
	RunE: runListOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

type optionsOutput struct {
	Providers     []providers.Info           `json:"providers"`
	CryptoTypes   []fiatconnect.CryptoType   `json:"cryptoTypes"`
	FiatTypes     []fiatconnect.FiatType     `json:"fiatTypes"`
	TransferTypes []fiatconnect.TransferType `json:"transferTypes"`
}

func runListOptions(cmd *cobra.Command, args []string) error {
	_, jsonOutput := outputFlags(cmd)

	out := optionsOutput{
		Providers:     providers.All(),
		CryptoTypes:   fiatconnect.CryptoTypes,
		FiatTypes:     fiatconnect.FiatTypes,
		TransferTypes: fiatconnect.TransferTypes,
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), out)
	}

	displayOptions(cmd.OutOrStdout(), out)
	return nil
}

func displayOptions(w io.Writer, out optionsOutput) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 70))
	color.New(color.FgGreen).Fprintln(w, "                        SUPPORTED OPTIONS")
	fmt.Fprintln(w, strings.Repeat("=", 70))

	color.New(color.FgCyan).Fprintln(w, "\nPROVIDERS")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, p := range out.Providers {
		fmt.Fprintf(w, "  %-10s  %-10s  %s\n",
			color.YellowString(string(p.ID)),
			p.Name,
			color.HiBlackString(p.SupportEmail))
	}

	color.New(color.FgCyan).Fprintln(w, "\nCRYPTO TYPES")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	fmt.Fprintf(w, "  %s\n", parser.Join(out.CryptoTypes))

	color.New(color.FgCyan).Fprintln(w, "\nFIAT TYPES")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	fmt.Fprintf(w, "  %s\n", parser.Join(out.FiatTypes))

	color.New(color.FgCyan).Fprintln(w, "\nTRANSFER TYPES")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	fmt.Fprintf(w, "  %s\n", parser.Join(out.TransferTypes))

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 70)+"\n")
}
