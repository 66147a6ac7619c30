package domain

import (
	"errors"
	"fmt"

	"github.com/abdidvp/growthcheck/internal/domain/growth"
	"github.com/abdidvp/growthcheck/internal/domain/jalali"
)

const (
	// averageMonthDays is the mean Jalali month length (365.25 / 12).
	averageMonthDays = 30.4375
	// tropicalYearDays is the mean tropical year.
	tropicalYearDays = 365.2422
)

// Age is the canonical age of a subject on a reference date. It is computed
// once per evaluation and every consumer reads it from here.
type Age struct {
	Years       int     `json:"years"`
	Months      int     `json:"months"`
	Days        int     `json:"days"`
	TotalDays   int     `json:"total_days"`
	TotalMonths float64 `json:"total_months"`
	TotalYears  float64 `json:"total_years"`
}

// Branch is the classification regime chosen by age.
type Branch string

const (
	BranchMinor Branch = "minor"
	BranchAdult Branch = "adult"
)

// NormalizeAge computes the exact age between two Jalali dates.
func NormalizeAge(birth, reference jalali.Date) (Age, error) {
	if err := birth.Validate(); err != nil {
		return Age{}, fmt.Errorf("%w: birth date: %v", ErrInvalidCalendarDate, err)
	}
	if err := reference.Validate(); err != nil {
		return Age{}, fmt.Errorf("%w: reference date: %v", ErrInvalidCalendarDate, err)
	}

	y, m, d, err := jalali.ExactAge(birth, reference)
	if err != nil {
		if errors.Is(err, jalali.ErrReferenceBeforeBirth) {
			return Age{}, fmt.Errorf("%w: born %s, reference %s", ErrFutureBirthDate, birth, reference)
		}
		return Age{}, fmt.Errorf("%w: %v", ErrInvalidCalendarDate, err)
	}

	totalDays := jalali.DaysBetween(birth, reference)
	return Age{
		Years:       y,
		Months:      m,
		Days:        d,
		TotalDays:   totalDays,
		TotalMonths: float64(y*12+m) + float64(d)/averageMonthDays,
		TotalYears:  float64(totalDays) / tropicalYearDays,
	}, nil
}

// Branch selects the growth reference for [60, 228] months and adult
// thresholds above. Younger subjects are rejected.
func (a Age) Branch() (Branch, error) {
	switch {
	case a.TotalMonths < growth.MinMonth:
		return "", fmt.Errorf("%w: %.2f months", ErrUnsupportedAge, a.TotalMonths)
	case a.TotalMonths <= growth.MaxMonth:
		return BranchMinor, nil
	default:
		return BranchAdult, nil
	}
}

// ParseDate reads a Jalali YYYY/MM/DD date from user input.
func ParseDate(s string) (jalali.Date, error) {
	d, err := jalali.Parse(s)
	if err != nil {
		return jalali.Date{}, fmt.Errorf("%w: %v", ErrInvalidCalendarDate, err)
	}
	return d, nil
}
