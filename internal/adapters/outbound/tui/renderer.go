package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/abdidvp/growthcheck/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#60A5FA") // blue
	lime    = lipgloss.Color("#A3E635")
	orange  = lipgloss.Color("#FB923C")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	categoryColors = map[domain.Category]lipgloss.Color{
		domain.CategorySevereUnderweight: danger,
		domain.CategoryUnderweight:       info,
		domain.CategoryNormal:            success,
		domain.CategoryOverweight:        warning,
		domain.CategoryObese:             danger,
		domain.CategoryObesityClass1:     orange,
		domain.CategoryObesityClass2:     danger,
		domain.CategoryObesityClass3:     danger,
	}

	categoryLabels = map[domain.Category]string{
		domain.CategorySevereUnderweight: "Severe underweight",
		domain.CategoryUnderweight:       "Underweight",
		domain.CategoryNormal:            "Normal",
		domain.CategoryOverweight:        "Overweight",
		domain.CategoryObese:             "Obese",
		domain.CategoryObesityClass1:     "Obesity class I",
		domain.CategoryObesityClass2:     "Obesity class II",
		domain.CategoryObesityClass3:     "Obesity class III",
	}

	waistColors = map[domain.WaistRisk]lipgloss.Color{
		domain.WaistRiskLow:       info,
		domain.WaistRiskHealthy:   success,
		domain.WaistRiskIncreased: warning,
		domain.WaistRiskHigh:      danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle    = lipgloss.NewStyle().Foreground(dim)
	valueStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

const disclaimer = "For information only. This is not a medical diagnosis; consult a physician or dietitian."

// CategoryLabel returns the display name of a category.
func CategoryLabel(c domain.Category) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// ActivityLabel returns the display name of an activity level.
func ActivityLabel(a domain.ActivityLevel) string {
	switch a {
	case domain.ActivitySedentary:
		return "Sedentary"
	case domain.ActivityLight:
		return "Lightly active"
	case domain.ActivityModerate:
		return "Moderately active"
	case domain.ActivityActive:
		return "Active"
	case domain.ActivityVeryActive:
		return "Very active"
	}
	return string(a)
}

// RenderEvaluation formats one evaluation as a terminal report. name is
// optional and shown in the header.
func RenderEvaluation(ev *domain.Evaluation, name string) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("growthcheck")
	subtitle := dimStyle.Render("Body composition report · " + ev.Input.ReferenceDate.String())
	if name != "" {
		subtitle = dimStyle.Render(name+" · ") + subtitle
	}
	bmiStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(categoryColor(ev.Category)).
		Render(fmt.Sprintf("BMI %.1f", ev.BMI))
	categoryStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(categoryColor(ev.Category)).
		Render(CategoryLabel(ev.Category))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + bmiStyled + "  " + categoryStyled))
	b.WriteString("\n\n")

	// ── Personal data ──
	section(&b, "Personal data")
	row(&b, "Gender", string(ev.Input.Gender))
	row(&b, "Birth date", ev.Input.BirthDate.String())
	row(&b, "Age", fmt.Sprintf("%d years, %d months, %d days", ev.AgeYears, ev.AgeMonths, ev.AgeDays))
	row(&b, "Height", fmt.Sprintf("%.1f cm", ev.Input.HeightCm))
	row(&b, "Weight", fmt.Sprintf("%.1f kg", ev.Input.WeightKg))
	row(&b, "Activity", ActivityLabel(ev.Input.ActivityLevel))

	// ── Analysis ──
	section(&b, "Analysis")
	if ev.ZScore != nil {
		row(&b, "Reference", fmt.Sprintf("WHO BMI-for-age, %.1f months", ev.AgeMonthsExact))
		row(&b, "Z-score", fmt.Sprintf("%+.2f  %s", *ev.ZScore, gauge(*ev.ZScore, -4, 4, 24, categoryColor(ev.Category))))
	} else {
		row(&b, "Reference", "Adult BMI thresholds")
		row(&b, "BMI", fmt.Sprintf("%.1f  %s", ev.BMI, gauge(ev.BMI, 15, 40, 24, categoryColor(ev.Category))))
	}
	row(&b, "Healthy weight", fmt.Sprintf("%.1f – %.1f kg", ev.HealthyWeightRange.MinKg, ev.HealthyWeightRange.MaxKg))
	row(&b, "Difference", differenceText(ev.WeightToHealthyKg))
	if w := ev.WaistToHeight; w != nil {
		risk := lipgloss.NewStyle().Foreground(waistColors[w.Risk]).Render(string(w.Risk) + " risk")
		row(&b, "Waist / height", fmt.Sprintf("%.2f  %s", w.Ratio, risk))
	}

	// ── Metabolism ──
	section(&b, "Metabolism")
	row(&b, "BMR", fmt.Sprintf("%.0f kcal/day", ev.BMR))
	row(&b, "TDEE", fmt.Sprintf("%.0f kcal/day", ev.TDEE))

	// ── Calorie guide ──
	section(&b, "Calorie guide")
	row(&b, "Maintain", fmt.Sprintf("%.0f kcal/day", ev.CalorieTargets.Maintain))
	row(&b, "Gain", fmt.Sprintf("%.0f kcal/day", ev.CalorieTargets.Surplus))
	row(&b, "Lose", fmt.Sprintf("%.0f kcal/day", ev.CalorieTargets.Deficit))

	b.WriteString("\n")
	b.WriteString("  " + separatorLine + "\n")
	b.WriteString("  " + faintStyle.Render(disclaimer) + "\n\n")
	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n  " + titleStyle.Render(title) + "\n")
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "    %s %s\n", labelStyle.Render(padRight(label, 16)), valueStyle.Render(value))
}

func differenceText(kg float64) string {
	switch {
	case kg > 0:
		return fmt.Sprintf("gain %.1f kg to reach the healthy range", kg)
	case kg < 0:
		return fmt.Sprintf("lose %.1f kg to reach the healthy range", -kg)
	default:
		return "within the healthy range"
	}
}

// gauge draws a bar with a marker at value on the [lo, hi] scale.
func gauge(value, lo, hi float64, width int, color lipgloss.Color) string {
	pos := int(math.Round((value - lo) / (hi - lo) * float64(width-1)))
	pos = max(0, min(pos, width-1))

	left := faintStyle.Render(strings.Repeat("─", pos))
	marker := lipgloss.NewStyle().Foreground(color).Render("●")
	right := faintStyle.Render(strings.Repeat("─", width-1-pos))
	return left + marker + right
}

func categoryColor(c domain.Category) lipgloss.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
