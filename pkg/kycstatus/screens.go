// Package kycstatus renders the screens shown to a user while a provider
// processes their KYC information.
package kycstatus

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fiatconnect-widget/pkg/fiatconnect"
	"fiatconnect-widget/pkg/providers"
)

// Icon is the glyph shown above a screen's text
type Icon string

const (
	IconPending Icon = "…"
	IconSuccess Icon = "✓"
	IconError   Icon = "✗"
	IconWarning Icon = "!"
)

// Screen is one static status screen
type Screen struct {
	Status     fiatconnect.KycStatus `json:"status"`
	Title      string                `json:"title"`
	Icon       Icon                  `json:"icon"`
	Paragraphs []string              `json:"paragraphs"`
}

type template struct {
	title      string
	icon       Icon
	paragraphs []string // {name} and {email} are replaced with the provider details
}

var templates = map[fiatconnect.KycStatus]template{
	fiatconnect.KycPending: {
		title: "Your information is being reviewed",
		icon:  IconPending,
		paragraphs: []string{
			"{name} is reviewing your identification information.",
			"This can take a few minutes. Come back later to continue your transfer.",
		},
	},
	fiatconnect.KycApproved: {
		title: "Your information has been approved",
		icon:  IconSuccess,
		paragraphs: []string{
			"Your identification information has been approved by {name}.",
			"You can now continue with your transfer.",
		},
	},
	fiatconnect.KycDenied: {
		title: "Your information has been denied",
		icon:  IconError,
		paragraphs: []string{
			"Your identification information has been denied by {name}.",
			"If you think this was a mistake, please contact the provider at {email}.",
		},
	},
	fiatconnect.KycExpired: {
		title: "Your information has expired",
		icon:  IconWarning,
		paragraphs: []string{
			"Your identification information with {name} has expired.",
			"Please submit it again, or contact the provider at {email}.",
		},
	},
}

// ScreenFor returns the screen for status, filled in with the provider's details.
// KycNotCreated has no screen: the widget shows the KYC form instead.
func ScreenFor(status fiatconnect.KycStatus, providerID fiatconnect.ProviderID) (Screen, error) {
	tmpl, ok := templates[status]
	if !ok {
		return Screen{}, fmt.Errorf("no status screen for %q", status)
	}
	info, err := providers.Lookup(providerID)
	if err != nil {
		return Screen{}, err
	}

	r := strings.NewReplacer("{name}", info.Name, "{email}", info.SupportEmail)
	paragraphs := make([]string, 0, len(tmpl.paragraphs))
	for _, p := range tmpl.paragraphs {
		paragraphs = append(paragraphs, r.Replace(p))
	}

	return Screen{
		Status:     status,
		Title:      tmpl.title,
		Icon:       tmpl.icon,
		Paragraphs: paragraphs,
	}, nil
}

var (
	containerStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	titleStyle     = lipgloss.NewStyle().Bold(true)
	textStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	iconStyles = map[Icon]lipgloss.Style{
		IconPending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		IconSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		IconError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		IconWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	}
)

// Render lays the screen out in a bordered box at most width columns wide
func (s Screen) Render(width int) string {
	if width <= 0 {
		width = 60
	}
	inner := width - containerStyle.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}

	lines := []string{
		titleStyle.Width(inner).Align(lipgloss.Center).Render(s.Title),
		"",
		iconStyles[s.Icon].Width(inner).Align(lipgloss.Center).Render(string(s.Icon)),
	}
	for _, p := range s.Paragraphs {
		lines = append(lines, "", textStyle.Width(inner).Render(p))
	}

	return containerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Text returns the screen as plain text without styling
func (s Screen) Text() string {
	return s.Title + "\n\n" + strings.Join(s.Paragraphs, "\n")
}
