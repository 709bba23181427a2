package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/okitolabs/demopass/internal/web/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			MarginBottom(1)

	credentialStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	hashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// printBanner renders the build-stack banner the deploy pipeline uses to
// verify which artifact is actually running.
func printBanner(info domain.BuildInfo) {
	rows := [][2]string{
		{"Version", info.Version},
		{"Go", info.GoVersion},
		{"Platform", info.OS + "/" + info.Arch},
		{"Build", info.BuildNumber},
		{"Commit", info.ShortCommit()},
		{"CI", info.CIServer},
		{"Env", info.Environment},
	}

	body := titleStyle.Render("passgen") + "\n"
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		body += labelStyle.Render(row[0]) + valueStyle.Render(row[1]) + "\n"
	}

	fmt.Println(bannerStyle.Render(body))
}
