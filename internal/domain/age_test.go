package domain_test

import (
	"testing"

	"github.com/abdidvp/growthcheck/internal/domain"
	"github.com/abdidvp/growthcheck/internal/domain/jalali"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) jalali.Date { return jalali.Date{Year: y, Month: m, Day: d} }

func TestNormalizeAge_ExactYears(t *testing.T) {
	age, err := domain.NormalizeAge(date(1394, 1, 1), date(1404, 1, 1))
	require.NoError(t, err)

	assert.Equal(t, 10, age.Years)
	assert.Equal(t, 0, age.Months)
	assert.Equal(t, 0, age.Days)
	assert.Equal(t, 120.0, age.TotalMonths)
	assert.Equal(t, 3653, age.TotalDays)
	assert.InDelta(t, 10.0016, age.TotalYears, 1e-4)
}

func TestNormalizeAge_FractionalMonths(t *testing.T) {
	age, err := domain.NormalizeAge(date(1390, 5, 20), date(1404, 3, 10))
	require.NoError(t, err)

	assert.Equal(t, 13, age.Years)
	assert.Equal(t, 9, age.Months)
	assert.Equal(t, 21, age.Days)
	assert.InDelta(t, 13*12+9+21/30.4375, age.TotalMonths, 1e-12)
}

func TestNormalizeAge_Errors(t *testing.T) {
	tests := []struct {
		name      string
		birth     jalali.Date
		reference jalali.Date
		want      error
	}{
		{"future birth", date(1404, 2, 1), date(1404, 1, 31), domain.ErrFutureBirthDate},
		{"month 13", date(1390, 13, 1), date(1404, 1, 1), domain.ErrInvalidCalendarDate},
		{"day 30 of common Esfand", date(1402, 12, 30), date(1404, 1, 1), domain.ErrInvalidCalendarDate},
		{"day 31 of Mehr", date(1390, 7, 31), date(1404, 1, 1), domain.ErrInvalidCalendarDate},
		{"invalid reference", date(1390, 1, 1), date(1404, 0, 1), domain.ErrInvalidCalendarDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NormalizeAge(tt.birth, tt.reference)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNormalizeAge_LeapEsfandIsValid(t *testing.T) {
	_, err := domain.NormalizeAge(date(1399, 12, 30), date(1404, 1, 1))
	assert.NoError(t, err)
}

func TestAgeBranch(t *testing.T) {
	tests := []struct {
		name      string
		birth     jalali.Date
		reference jalali.Date
		want      domain.Branch
		wantErr   error
	}{
		{"four years", date(1400, 1, 1), date(1404, 1, 1), "", domain.ErrUnsupportedAge},
		{"exactly 60 months", date(1399, 1, 1), date(1404, 1, 1), domain.BranchMinor, nil},
		{"ten years", date(1394, 1, 1), date(1404, 1, 1), domain.BranchMinor, nil},
		{"exactly 228 months", date(1385, 1, 1), date(1404, 1, 1), domain.BranchMinor, nil},
		{"228 months and a day", date(1385, 1, 1), date(1404, 1, 2), domain.BranchAdult, nil},
		{"229 months", date(1384, 12, 1), date(1404, 1, 1), domain.BranchAdult, nil},
		{"adult", date(1370, 1, 1), date(1404, 1, 1), domain.BranchAdult, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, err := domain.NormalizeAge(tt.birth, tt.reference)
			require.NoError(t, err)

			branch, err := age.Branch()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, branch)
		})
	}
}
