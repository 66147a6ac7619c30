package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/abdidvp/growthcheck/internal/domain/growth"
	"github.com/abdidvp/growthcheck/internal/domain/jalali"
	"github.com/fatih/camelcase"
)

// Gender selects the growth curve and the BMR constant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ValidGenders enumerates all accepted genders.
var ValidGenders = []Gender{GenderMale, GenderFemale}

// ParseGender accepts the gender names case-insensitively, plus "m" and "f".
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "boy":
		return GenderMale, nil
	case "female", "f", "girl":
		return GenderFemale, nil
	}
	return "", fmt.Errorf("%w: unknown gender %q (valid: male, female)", ErrInvalidInput, s)
}

// Sex maps the gender onto a growth reference curve.
func (g Gender) Sex() growth.Sex {
	if g == GenderFemale {
		return growth.Female
	}
	return growth.Male
}

// IsValid reports whether g is one of ValidGenders.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// ActivityLevel scales BMR into TDEE.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ValidActivityLevels enumerates all activity levels from least to most active.
var ValidActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// Multiplier returns the TDEE factor for the level, or 0 if it is unknown.
func (a ActivityLevel) Multiplier() float64 {
	return activityMultipliers[a]
}

// IsValid reports whether a is one of ValidActivityLevels.
func (a ActivityLevel) IsValid() bool {
	_, ok := activityMultipliers[a]
	return ok
}

// ParseActivityLevel normalizes user spellings such as "veryActive",
// "VeryActive", "very-active" or "VERY_ACTIVE" onto an ActivityLevel.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	var words []string
	for _, part := range camelcase.Split(strings.TrimSpace(s)) {
		if !isWord(part) {
			continue
		}
		words = append(words, strings.ToLower(part))
	}
	level := ActivityLevel(strings.Join(words, "_"))
	if !level.IsValid() {
		return "", fmt.Errorf("%w: unknown activity level %q (valid: sedentary, light, moderate, active, very_active)", ErrInvalidInput, s)
	}
	return level, nil
}

func isWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// Profile is the saved subject of repeated evaluations: everything except
// the measurements that change between visits.
type Profile struct {
	Name          string        `json:"name,omitempty"`
	Gender        Gender        `json:"gender"`
	BirthDate     jalali.Date   `json:"birth_date"`
	HeightCm      float64       `json:"height_cm"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Validate checks the profile fields without a reference date.
func (p Profile) Validate() error {
	if !p.Gender.IsValid() {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, p.Gender)
	}
	if !p.ActivityLevel.IsValid() {
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, p.ActivityLevel)
	}
	if err := p.BirthDate.Validate(); err != nil {
		return fmt.Errorf("%w: birth date: %v", ErrInvalidCalendarDate, err)
	}
	return checkRange("height_cm", p.HeightCm, heightRange)
}

// HistoryEntry is one stored evaluation.
type HistoryEntry struct {
	ID         string     `json:"id"`
	Timestamp  time.Time  `json:"timestamp"`
	Evaluation Evaluation `json:"evaluation"`
}
