package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fiatconnect-widget/config"
	"fiatconnect-widget/pkg/fiatconnect"
	"fiatconnect-widget/pkg/kycstatus"
	"fiatconnect-widget/pkg/parser"
)

var (
	kycProviderID string
	kycWidth      int
	kycPlain      bool
)

var kycStatusCmd = &cobra.Command{
	Use:   "kyc-status <status>",
	Short: "Show the widget screen for a KYC status",
	Long: `Render the screen the widget shows for a KYC status.

Status is one of pending, approved, denied or expired (the FiatConnect names
such as KycDenied are accepted too).

Examples:
  fiatconnect-widget kyc-status denied
  fiatconnect-widget kyc-status KycPending --provider-id bitssa
  fiatconnect-widget kyc-status approved --json
  fiatconnect-widget kyc-status expired --plain`,
	Args: cobra.ExactArgs(1),
	RunE: runKycStatus,
}

func init() {
	rootCmd.AddCommand(kycStatusCmd)

	kycStatusCmd.Flags().StringVar(&kycProviderID, "provider-id", string(config.DefaultProviderID), fmt.Sprintf("Provider ID (%s)", parser.Join(fiatconnect.ProviderIDs)))
	kycStatusCmd.Flags().IntVar(&kycWidth, "width", 60, "Screen width in columns")
	kycStatusCmd.Flags().BoolVar(&kycPlain, "plain", false, "Print the screen text without styling")
}

func runKycStatus(cmd *cobra.Command, args []string) error {
	_, jsonOutput := outputFlags(cmd)

	status, err := parser.ParseKycStatus(args[0])
	if err != nil {
		return err
	}
	providerID, err := parser.ParseProviderID(kycProviderID)
	if err != nil {
		return err
	}

	screen, err := kycstatus.ScreenFor(status, providerID)
	if err != nil {
		return err
	}

	switch {
	case jsonOutput:
		return printJSON(cmd.OutOrStdout(), screen)
	case kycPlain:
		fmt.Fprintln(cmd.OutOrStdout(), screen.Text())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), screen.Render(kycWidth))
	return nil
}
