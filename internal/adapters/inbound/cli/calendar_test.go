package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/growthcheck/internal/domain"
	"github.com/abdidvp/growthcheck/internal/domain/jalali"
)

func TestCalendarToGregorian(t *testing.T) {
	out, err := run(t, t.TempDir(), "calendar", "to-gregorian", "1403/12/30")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-03-20")
	assert.Contains(t, out, "Thursday")
	assert.Contains(t, out, "leap year")
}

func TestCalendarToJalali_JSON(t *testing.T) {
	out, err := run(t, t.TempDir(), "calendar", "to-jalali", "2024-12-31", "--json")
	require.NoError(t, err)

	var info jalali.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "1403/10/11", info.Jalali)
	assert.Equal(t, "2024-12-31", info.Gregorian)
}

func TestCalendarRejectsInvalidDates(t *testing.T) {
	_, err := run(t, t.TempDir(), "calendar", "to-gregorian", "1404/12/30")
	assert.ErrorIs(t, err, domain.ErrInvalidCalendarDate)

	_, err = run(t, t.TempDir(), "calendar", "to-jalali", "2025-02-29")
	assert.ErrorIs(t, err, domain.ErrInvalidCalendarDate)

	_, err = run(t, t.TempDir(), "calendar", "to-jalali")
	assert.Error(t, err)
}

func TestCalendarToday(t *testing.T) {
	out, err := run(t, t.TempDir(), "calendar", "today", "--json")
	require.NoError(t, err)

	var info jalali.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	_, err = jalali.Parse(info.Jalali)
	assert.NoError(t, err)
}
