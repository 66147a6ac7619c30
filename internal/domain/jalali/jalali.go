// Package jalali implements the solar Hijri (Jalali) calendar arithmetic needed
// to turn a birth date into an exact age: leap years, month lengths, date
// differences and conversion to and from the Gregorian calendar.
//
// Leap years follow the astronomical break-point table: the calendar is split
// into intervals at historical "jump" years and leap days are counted in
// 33-year sub-cycles within each interval. All conversions go through Julian
// Day Numbers so that the two directions are exact inverses.
package jalali

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Supported year range of the break-point table.
const (
	MinYear = -61
	MaxYear = 3177
)

var breaks = []int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181,
	1210, 1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

var (
	ErrInvalidDate          = errors.New("invalid jalali date")
	ErrYearOutOfRange       = errors.New("jalali year out of supported range")
	ErrReferenceBeforeBirth = errors.New("reference date is before birth date")
)

// Date is a calendar date in the Jalali calendar. Month is 1-based
// (1 = Farvardin, 12 = Esfand).
type Date struct {
	Year  int `json:"year"  yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day"   yaml:"day"`
}

// NewDate builds a validated Date.
func NewDate(year, month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// yearInfo is the result of locating a year in the break-point table.
type yearInfo struct {
	leap  int // years since the last leap year; 0 means leap
	gy    int // Gregorian year in which this Jalali year starts
	march int // day in March of that Gregorian year on which Farvardin 1 falls
}

func calendarYear(jy int) (yearInfo, error) {
	if jy < MinYear || jy > MaxYear {
		return yearInfo{}, fmt.Errorf("%w: %d", ErrYearOutOfRange, jy)
	}

	gy := jy + 621
	leapJ := -14
	jp := breaks[0]
	jump := 0
	for i := 1; i < len(breaks); i++ {
		jm := breaks[i]
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + (jump%33)/4
		jp = jm
	}
	n := jy - jp

	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}

	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march := 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap := ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}

	return yearInfo{leap: leap, gy: gy, march: march}, nil
}

// IsLeapYear reports whether the Jalali year has 366 days. Years outside the
// supported range are reported as common years.
func IsLeapYear(year int) bool {
	info, err := calendarYear(year)
	if err != nil {
		return false
	}
	return info.leap == 0
}

// DaysInMonth returns the length of a month. The month must already be in [1, 12].
func DaysInMonth(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	case IsLeapYear(year):
		return 30
	default:
		return 29
	}
}

// Validate checks that the month and day exist in the given year.
func (d Date) Validate() error {
	if d.Year < MinYear || d.Year > MaxYear {
		return fmt.Errorf("%w: %d", ErrYearOutOfRange, d.Year)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d outside 1..12", ErrInvalidDate, d.Month)
	}
	if n := DaysInMonth(d.Year, d.Month); d.Day < 1 || d.Day > n {
		return fmt.Errorf("%w: day %d outside 1..%d for %d/%02d", ErrInvalidDate, d.Day, n, d.Year, d.Month)
	}
	return nil
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// String formats the date as YYYY/MM/DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// Parse reads a date written as YYYY/MM/DD or YYYY-MM-DD and validates it.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q is not YYYY/MM/DD", ErrInvalidDate, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q is not YYYY/MM/DD", ErrInvalidDate, s)
		}
		nums[i] = n
	}
	return NewDate(nums[0], nums[1], nums[2])
}

// ParseGregorian reads a Gregorian YYYY-MM-DD (or YYYY/MM/DD) date and returns
// its Jalali equivalent. Dates such as February 30 are rejected, as are dates
// whose Jalali year falls outside [MinYear, MaxYear].
func ParseGregorian(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.ReplaceAll(strings.TrimSpace(s), "/", "-"))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not a Gregorian YYYY-MM-DD date", ErrInvalidDate, s)
	}
	d := FromTime(t)
	if err := d.Validate(); err != nil {
		return Date{}, fmt.Errorf("%w: %q: %w", ErrInvalidDate, s, err)
	}
	// FromJDN cannot see its own range errors, so near the edges a date can
	// validate and still be wrong.
	if y, m, day := d.ToGregorian(); y != t.Year() || m != int(t.Month()) || day != t.Day() {
		return Date{}, fmt.Errorf("%w: %q: %w", ErrInvalidDate, s, ErrYearOutOfRange)
	}
	return d, nil
}

// JDN returns the Julian Day Number of the date. The date must be valid.
func (d Date) JDN() int {
	info, _ := calendarYear(d.Year)
	return gregorianToJDN(info.gy, 3, info.march) + (d.Month-1)*31 - d.Month/7*(d.Month-7) + d.Day - 1
}

// FromJDN converts a Julian Day Number to a Jalali date.
func FromJDN(jdn int) Date {
	gy, _, _ := jdnToGregorian(jdn)
	jy := gy - 621
	info, _ := calendarYear(jy)
	k := jdn - gregorianToJDN(gy, 3, info.march)

	if k >= 0 {
		if k <= 185 {
			return Date{Year: jy, Month: 1 + k/31, Day: k%31 + 1}
		}
		k -= 186
	} else {
		jy--
		k += 179
		if info.leap == 1 {
			k++
		}
	}
	return Date{Year: jy, Month: 7 + k/30, Day: k%30 + 1}
}

// ToGregorian converts a valid Jalali date to its Gregorian year, month and day.
func (d Date) ToGregorian() (year, month, day int) {
	return jdnToGregorian(d.JDN())
}

// FromGregorian converts a Gregorian calendar date to Jalali.
func FromGregorian(year, month, day int) Date {
	return FromJDN(gregorianToJDN(year, month, day))
}

// FromTime returns the Jalali date of t in t's location.
func FromTime(t time.Time) Date {
	return FromGregorian(t.Year(), int(t.Month()), t.Day())
}

// Time returns midnight UTC of the date's Gregorian equivalent.
func (d Date) Time() time.Time {
	y, m, day := d.ToGregorian()
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

// Info describes one day in both calendars.
type Info struct {
	Jalali      string `json:"jalali"`
	Gregorian   string `json:"gregorian"`
	Weekday     string `json:"weekday"`
	LeapYear    bool   `json:"jalali_leap_year"`
	DaysInMonth int    `json:"days_in_jalali_month"`
}

// Describe returns the calendar facts of a valid date.
func (d Date) Describe() Info {
	t := d.Time()
	return Info{
		Jalali:      d.String(),
		Gregorian:   t.Format("2006-01-02"),
		Weekday:     t.Weekday().String(),
		LeapYear:    IsLeapYear(d.Year),
		DaysInMonth: DaysInMonth(d.Year, d.Month),
	}
}

// DaysBetween returns the number of days from a to b (negative when b is before a).
func DaysBetween(a, b Date) int {
	return b.JDN() - a.JDN()
}

// ExactAge returns the whole years, months and days from birth to reference
// using borrow arithmetic: days borrow the length of the month preceding the
// reference month, months borrow twelve from years.
func ExactAge(birth, reference Date) (years, months, days int, err error) {
	if err := birth.Validate(); err != nil {
		return 0, 0, 0, err
	}
	if err := reference.Validate(); err != nil {
		return 0, 0, 0, err
	}
	if reference.Before(birth) {
		return 0, 0, 0, fmt.Errorf("%w: %s is after %s", ErrReferenceBeforeBirth, birth, reference)
	}

	years = reference.Year - birth.Year
	months = reference.Month - birth.Month
	days = reference.Day - birth.Day

	// A 31st birthday against a 29-day Esfand needs a second borrow.
	py, pm := reference.Year, reference.Month
	for days < 0 {
		pm--
		if pm == 0 {
			py, pm = py-1, 12
		}
		days += DaysInMonth(py, pm)
		months--
	}
	if months < 0 {
		months += 12
		years--
	}
	return years, months, days, nil
}

func gregorianToJDN(gy, gm, gd int) int {
	d := (gy+(gm-8)/6+100100)*1461/4 + (153*((gm+9)%12)+2)/5 + gd - 34840408
	return d - (gy+100100+(gm-8)/6)/100*3/4 + 752
}

func jdnToGregorian(jdn int) (gy, gm, gd int) {
	j := 4*jdn + 139361631
	j += (4*jdn+183187720)/146097*3/4*4 - 3908
	i := (j%1461)/4*5 + 308
	gd = (i%153)/5 + 1
	gm = (i/153)%12 + 1
	gy = j/1461 - 100100 + (8-gm)/6
	return gy, gm, gd
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
