package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"linkboard/internal/catalog"
)

const cardWidth = 56

// Cards renders the records as bordered cards laid out two per row, the
// card view of the browse command. Accent colors apply only when colored is
// true (stdout is a terminal).
func Cards(records []catalog.Record, colored bool) string {
	if len(records) == 0 {
		return ""
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(cardWidth)
	labelStyle := lipgloss.NewStyle().Bold(true)
	if colored {
		cardStyle = cardStyle.BorderForeground(lipgloss.Color("8"))
		labelStyle = labelStyle.Foreground(lipgloss.Color("12"))
	}

	cards := make([]string, 0, len(records))
	for _, record := range records {
		cards = append(cards, cardStyle.Render(cardBody(record, labelStyle)))
	}

	var rows []string
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], cards[i+1]))
		} else {
			rows = append(rows, cards[i])
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func cardBody(record catalog.Record, label lipgloss.Style) string {
	lines := []string{
		fmt.Sprintf("%s %s min | %s %s",
			label.Render("Duration:"), orUnknown(record.Duration.String()),
			label.Render("Rating:"), orUnknown(record.Rate.String())),
		label.Render("Studio:") + " " + record.Studio,
		label.Render("Core:") + " " + record.CoreCat,
		label.Render("Stars:") + " " + catalog.MergeFields(record.Stars()),
		label.Render("Categories:") + " " + catalog.MergeFields(record.Categories()),
		label.Render("Positions:") + " " + catalog.MergeFields(record.Positions()),
		label.Render("Tags:") + " " + record.GeneralTags,
		label.Render("Link:") + " " + record.MainLink,
	}
	return strings.Join(lines, "\n")
}

func orUnknown(value string) string {
	if strings.TrimSpace(value) == "" {
		return "?"
	}
	return value
}
