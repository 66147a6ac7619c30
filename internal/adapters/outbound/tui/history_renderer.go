package tui

import (
	"fmt"
	"strings"

	"github.com/abdidvp/growthcheck/internal/domain"
	"github.com/abdidvp/growthcheck/internal/domain/jalali"
	"github.com/charmbracelet/lipgloss"
)

// RenderHistory formats stored evaluations, newest first, with the BMI
// change relative to the previous (older) entry.
func RenderHistory(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No evaluation history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Evaluation History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 60)) + "\n\n")

	for i, e := range entries {
		ev := e.Evaluation
		when := jalali.FromTime(e.Timestamp.Local()).String()

		bmiStyled := lipgloss.NewStyle().
			Foreground(categoryColor(ev.Category)).
			Render(fmt.Sprintf("%5.1f", ev.BMI))

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(when),
			faintStyle.Render(fmt.Sprintf("%5.1f kg", ev.Input.WeightKg)),
			bmiStyled,
			padRight(CategoryLabel(ev.Category), 18),
		)

		if i+1 < len(entries) {
			line += "  " + trendArrow(ev.BMI-entries[i+1].Evaluation.BMI)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func trendArrow(diff float64) string {
	switch {
	case diff >= 0.05:
		return failStyle.Render(fmt.Sprintf("↑%.1f", diff))
	case diff <= -0.05:
		return passStyle.Render(fmt.Sprintf("↓%.1f", -diff))
	default:
		return faintStyle.Render("=")
	}
}

// RenderProfile formats the saved profile.
func RenderProfile(p *domain.Profile) string {
	var b strings.Builder

	name := p.Name
	if name == "" {
		name = "Saved profile"
	}
	b.WriteString(boxStyle.Render(titleStyle.Render(name) + "\n" +
		dimStyle.Render("updated "+p.UpdatedAt.Local().Format("2006-01-02 15:04"))))
	b.WriteString("\n")

	row(&b, "Gender", string(p.Gender))
	row(&b, "Birth date", p.BirthDate.String())
	row(&b, "Height", fmt.Sprintf("%.1f cm", p.HeightCm))
	row(&b, "Activity", ActivityLabel(p.ActivityLevel))
	b.WriteString("\n")
	return b.String()
}
