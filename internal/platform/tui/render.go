package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gt4500/internal/bridge"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	loadedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	spentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	hitStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pointerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

// maxPips caps gauge width; larger stores are drawn to scale.
const maxPips = 20

// renderGauge draws a store as a row of loaded and spent pips.
func renderGauge(st bridge.StoreStatus) string {
	if st.Capacity <= 0 {
		return spentStyle.Render("(no tubes)")
	}

	total := st.Capacity
	loaded := st.Count
	if total > maxPips {
		loaded = loaded * maxPips / total
		if st.Count > 0 && loaded == 0 {
			loaded = 1
		}
		total = maxPips
	}

	return loadedStyle.Render(strings.Repeat("■", loaded)) +
		spentStyle.Render(strings.Repeat("□", total-loaded))
}

// renderStores draws both stores with the alternation pointer.
func renderStores(st bridge.Status) string {
	pointer := func(preferred bool) string {
		if preferred {
			return pointerStyle.Render("▶ ")
		}
		return "  "
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%sPrimary    %s %2d/%d\n",
		pointer(st.PrimaryPreferred), renderGauge(st.Primary), st.Primary.Count, st.Primary.Capacity)
	fmt.Fprintf(&b, "%sSecondary  %s %2d/%d",
		pointer(!st.PrimaryPreferred), renderGauge(st.Secondary), st.Secondary.Count, st.Secondary.Capacity)
	return panelStyle.Render(b.String())
}

// renderSalvo describes one salvo in a single line.
func renderSalvo(s bridge.Salvo) string {
	var stores []string
	if s.PrimaryFired {
		stores = append(stores, "primary")
	}
	if s.SecondaryFired {
		stores = append(stores, "secondary")
	}

	from := "no store fired"
	if len(stores) > 0 {
		from = strings.Join(stores, " + ")
	}

	if s.Success {
		return hitStyle.Render("TORPEDO AWAY") + dimStyle.Render(fmt.Sprintf("  %s, %s", s.Mode, from))
	}
	return missStyle.Render("FIRE FAILED") + dimStyle.Render(fmt.Sprintf("   %s, %s", s.Mode, from))
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return strings.Repeat(" ", (width-textWidth)/2) + text
}
