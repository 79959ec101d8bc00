package kycstatus_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fiatconnect-widget/pkg/fiatconnect"
	"fiatconnect-widget/pkg/kycstatus"
)

func TestScreenFor_Denied(t *testing.T) {
	t.Parallel()

	// Act
	screen, err := kycstatus.ScreenFor(fiatconnect.KycDenied, fiatconnect.ProviderBitmama)
	require.NoError(t, err)

	// Assert: copy is filled in with the provider's name and support email
	require.Equal(t, "Your information has been denied", screen.Title)
	require.Equal(t, kycstatus.IconError, screen.Icon)
	require.Equal(t, []string{
		"Your identification information has been denied by Bitmama.",
		"If you think this was a mistake, please contact the provider at support@bitmama.io.",
	}, screen.Paragraphs)
}

func TestScreenFor_AllStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status fiatconnect.KycStatus
		icon   kycstatus.Icon
	}{
		{status: fiatconnect.KycPending, icon: kycstatus.IconPending},
		{status: fiatconnect.KycApproved, icon: kycstatus.IconSuccess},
		{status: fiatconnect.KycDenied, icon: kycstatus.IconError},
		{status: fiatconnect.KycExpired, icon: kycstatus.IconWarning},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()

			screen, err := kycstatus.ScreenFor(tt.status, fiatconnect.ProviderBitssa)
			require.NoError(t, err)
			require.Equal(t, tt.status, screen.Status)
			require.Equal(t, tt.icon, screen.Icon)
			require.NotEmpty(t, screen.Title)
			require.Contains(t, screen.Text(), "Bitssa")
		})
	}
}

func TestScreenFor_Errors(t *testing.T) {
	t.Parallel()

	_, err := kycstatus.ScreenFor(fiatconnect.KycNotCreated, fiatconnect.ProviderBitmama)
	require.Error(t, err)

	_, err = kycstatus.ScreenFor(fiatconnect.KycDenied, "acme")
	require.Error(t, err)
}

func TestScreen_Render(t *testing.T) {
	t.Parallel()

	screen, err := kycstatus.ScreenFor(fiatconnect.KycApproved, fiatconnect.ProviderClabs)
	require.NoError(t, err)

	out := screen.Render(80)
	require.Contains(t, out, "Your information has been approved")
	require.Contains(t, out, string(kycstatus.IconSuccess))
	require.Contains(t, out, "cLabs")

	// Assert: a non-positive width falls back to the default
	require.NotEmpty(t, screen.Render(0))
}
