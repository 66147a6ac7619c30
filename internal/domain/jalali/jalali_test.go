package jalali_test

import (
	"testing"
	"time"

	"github.com/abdidvp/growthcheck/internal/domain/jalali"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Leap years 1300..1450 from the published Iranian calendar tables. Note the
// five-year gaps at 1337→1342, 1370→1375, 1403→1408 and 1436→1441.
var knownLeapYears = []int{
	1300, 1304, 1309, 1313, 1317, 1321, 1325, 1329, 1333, 1337,
	1342, 1346, 1350, 1354, 1358, 1362, 1366, 1370, 1375, 1379,
	1383, 1387, 1391, 1395, 1399, 1403, 1408, 1412, 1416, 1420,
	1424, 1428, 1432, 1436, 1441, 1445, 1449,
}

func TestIsLeapYear_MatchesReferenceTable(t *testing.T) {
	leap := make(map[int]bool, len(knownLeapYears))
	for _, y := range knownLeapYears {
		leap[y] = true
	}
	for y := 1300; y <= 1450; y++ {
		assert.Equal(t, leap[y], jalali.IsLeapYear(y), "year %d", y)
	}
}

func TestIsLeapYear_OutOfRange(t *testing.T) {
	assert.False(t, jalali.IsLeapYear(jalali.MaxYear+1))
	assert.False(t, jalali.IsLeapYear(jalali.MinYear-1))
}

func TestDaysInMonth(t *testing.T) {
	for m := 1; m <= 6; m++ {
		assert.Equal(t, 31, jalali.DaysInMonth(1404, m))
	}
	for m := 7; m <= 11; m++ {
		assert.Equal(t, 30, jalali.DaysInMonth(1404, m))
	}
	assert.Equal(t, 29, jalali.DaysInMonth(1404, 12))
	assert.Equal(t, 30, jalali.DaysInMonth(1403, 12))
}

func TestDate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		date    jalali.Date
		wantErr bool
	}{
		{"valid", jalali.Date{Year: 1404, Month: 1, Day: 1}, false},
		{"leap esfand 30", jalali.Date{Year: 1403, Month: 12, Day: 30}, false},
		{"common esfand 30", jalali.Date{Year: 1404, Month: 12, Day: 30}, true},
		{"mehr 31", jalali.Date{Year: 1404, Month: 7, Day: 31}, true},
		{"month 0", jalali.Date{Year: 1404, Month: 0, Day: 1}, true},
		{"month 13", jalali.Date{Year: 1404, Month: 13, Day: 1}, true},
		{"day 0", jalali.Date{Year: 1404, Month: 1, Day: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.date.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, jalali.ErrInvalidDate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGregorianConversion_KnownNowruz(t *testing.T) {
	tests := []struct {
		date    jalali.Date
		y, m, d int
	}{
		{jalali.Date{Year: 1300, Month: 1, Day: 1}, 1921, 3, 21},
		{jalali.Date{Year: 1370, Month: 1, Day: 1}, 1991, 3, 21},
		{jalali.Date{Year: 1394, Month: 1, Day: 1}, 2015, 3, 21},
		{jalali.Date{Year: 1399, Month: 1, Day: 1}, 2020, 3, 20},
		{jalali.Date{Year: 1403, Month: 1, Day: 1}, 2024, 3, 20},
		{jalali.Date{Year: 1403, Month: 12, Day: 30}, 2025, 3, 20},
		{jalali.Date{Year: 1404, Month: 1, Day: 1}, 2025, 3, 21},
	}
	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			y, m, d := tt.date.ToGregorian()
			assert.Equal(t, []int{tt.y, tt.m, tt.d}, []int{y, m, d})
			assert.Equal(t, tt.date, jalali.FromGregorian(tt.y, tt.m, tt.d))
		})
	}
}

func TestGregorianConversion_RoundTrip(t *testing.T) {
	for y := 1300; y <= 1450; y++ {
		for m := 1; m <= 12; m++ {
			for d := 1; d <= jalali.DaysInMonth(y, m); d++ {
				date := jalali.Date{Year: y, Month: m, Day: d}
				gy, gm, gd := date.ToGregorian()
				require.Equal(t, date, jalali.FromGregorian(gy, gm, gd), "round trip of %s", date)
			}
		}
	}
}

func TestJDN_ConsecutiveDays(t *testing.T) {
	prev := jalali.Date{Year: 1399, Month: 12, Day: 30}
	next := jalali.Date{Year: 1400, Month: 1, Day: 1}
	assert.Equal(t, 1, jalali.DaysBetween(prev, next))
	assert.Equal(t, 366, jalali.DaysBetween(jalali.Date{Year: 1403, Month: 1, Day: 1}, jalali.Date{Year: 1404, Month: 1, Day: 1}))
	assert.Equal(t, 365, jalali.DaysBetween(jalali.Date{Year: 1404, Month: 1, Day: 1}, jalali.Date{Year: 1405, Month: 1, Day: 1}))
	assert.Equal(t, 2451545, jalali.FromGregorian(2000, 1, 1).JDN())
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2025, time.March, 21, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, jalali.Date{Year: 1404, Month: 1, Day: 1}, jalali.FromTime(ts))
	assert.True(t, ts.Truncate(24*time.Hour).Equal(jalali.FromTime(ts).Time()))
}

func TestParse(t *testing.T) {
	d, err := jalali.Parse("1394/01/01")
	require.NoError(t, err)
	assert.Equal(t, jalali.Date{Year: 1394, Month: 1, Day: 1}, d)

	d, err = jalali.Parse(" 1403-12-30 ")
	require.NoError(t, err)
	assert.Equal(t, "1403/12/30", d.String())

	_, err = jalali.Parse("1404/12/30")
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)

	_, err = jalali.Parse("1404/1")
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)

	_, err = jalali.Parse("abcd/01/01")
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)
}

func TestParseGregorian(t *testing.T) {
	d, err := jalali.ParseGregorian("2025-03-21")
	require.NoError(t, err)
	assert.Equal(t, jalali.Date{Year: 1404, Month: 1, Day: 1}, d)

	d, err = jalali.ParseGregorian("2024/12/31")
	require.NoError(t, err)
	assert.Equal(t, "1403/10/11", d.String())

	_, err = jalali.ParseGregorian("2025-02-29")
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)
	_, err = jalali.ParseGregorian("yesterday")
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)
}

func TestParseGregorian_OutsideSupportedYears(t *testing.T) {
	for _, s := range []string{"5000-06-01", "0100-01-01"} {
		d, err := jalali.ParseGregorian(s)
		assert.ErrorIs(t, err, jalali.ErrInvalidDate, s)
		assert.ErrorIs(t, err, jalali.ErrYearOutOfRange, s)
		assert.Equal(t, jalali.Date{}, d, s)
	}

	d, err := jalali.ParseGregorian("3000-06-01")
	require.NoError(t, err)
	y, m, day := d.ToGregorian()
	assert.Equal(t, []int{3000, 6, 1}, []int{y, m, day})
}

func TestCompare(t *testing.T) {
	a := jalali.Date{Year: 1400, Month: 5, Day: 10}
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(jalali.Date{Year: 1400, Month: 5, Day: 11}))
	assert.Equal(t, 1, a.Compare(jalali.Date{Year: 1400, Month: 4, Day: 31}))
	assert.True(t, a.Before(jalali.Date{Year: 1401, Month: 1, Day: 1}))
}

func TestExactAge(t *testing.T) {
	tests := []struct {
		name              string
		birth, reference  jalali.Date
		years, months, dd int
	}{
		{"exact ten years", jalali.Date{Year: 1394, Month: 1, Day: 1}, jalali.Date{Year: 1404, Month: 1, Day: 1}, 10, 0, 0},
		{"same day", jalali.Date{Year: 1404, Month: 3, Day: 5}, jalali.Date{Year: 1404, Month: 3, Day: 5}, 0, 0, 0},
		{"day borrow from 31-day month", jalali.Date{Year: 1390, Month: 5, Day: 20}, jalali.Date{Year: 1404, Month: 3, Day: 10}, 13, 9, 21},
		{"day borrow from esfand in leap year", jalali.Date{Year: 1400, Month: 1, Day: 15}, jalali.Date{Year: 1404, Month: 1, Day: 10}, 3, 11, 25},
		{"double borrow across short esfand", jalali.Date{Year: 1400, Month: 6, Day: 31}, jalali.Date{Year: 1401, Month: 1, Day: 1}, 0, 5, 29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m, d, err := jalali.ExactAge(tt.birth, tt.reference)
			require.NoError(t, err)
			assert.Equal(t, []int{tt.years, tt.months, tt.dd}, []int{y, m, d})
		})
	}
}

func TestExactAge_ReferenceBeforeBirth(t *testing.T) {
	_, _, _, err := jalali.ExactAge(jalali.Date{Year: 1404, Month: 2, Day: 1}, jalali.Date{Year: 1404, Month: 1, Day: 31})
	assert.ErrorIs(t, err, jalali.ErrReferenceBeforeBirth)
}

func TestExactAge_InvalidInput(t *testing.T) {
	_, _, _, err := jalali.ExactAge(jalali.Date{Year: 1404, Month: 12, Day: 30}, jalali.Date{Year: 1405, Month: 1, Day: 1})
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)
}

func TestDescribe(t *testing.T) {
	info := jalali.Date{Year: 1403, Month: 12, Day: 30}.Describe()
	assert.Equal(t, jalali.Info{
		Jalali:      "1403/12/30",
		Gregorian:   "2025-03-20",
		Weekday:     "Thursday",
		LeapYear:    true,
		DaysInMonth: 30,
	}, info)

	info = jalali.Date{Year: 1404, Month: 1, Day: 1}.Describe()
	assert.Equal(t, "Friday", info.Weekday)
	assert.False(t, info.LeapYear)
	assert.Equal(t, 31, info.DaysInMonth)
}
