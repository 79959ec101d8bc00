package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fiatconnect-widget",
	Short: "Build FiatConnect widget URLs from provider quotes",
	Long: `fiatconnect-widget fetches a quote from a FiatConnect provider and builds the
URL that opens the hosted FiatConnect widget for that quote. It can also render
the widget's KYC status screens and list the supported providers and networks.

Examples:
  fiatconnect-widget generate-url --api-key <key> --address 0x123...
  fiatconnect-widget generate-url --transfer-type out --fiat-type KES --country KE
  fiatconnect-widget kyc-status denied --provider-id bitmama
  fiatconnect-widget list-options
  fiatconnect-widget networks`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
}

func outputFlags(cmd *cobra.Command) (verbose, jsonOutput bool) {
	verbose, _ = cmd.Flags().GetBool("verbose")
	jsonOutput, _ = cmd.Flags().GetBool("json")
	return verbose, jsonOutput
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printDebug(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.HiBlackString("Debug: "+format, args...))
}
