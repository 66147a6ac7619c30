// Package growth holds the BMI-for-age growth reference and the LMS
// (Lambda-Mu-Sigma) transforms that map a BMI to a Z-score and back.
package growth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Month range covered by the reference (5 to 19 years).
const (
	MinMonth = 60
	MaxMonth = 228
)

// Sex selects one of the two reference curves.
type Sex int

const (
	Male Sex = iota
	Female
)

func (s Sex) String() string {
	if s == Female {
		return "female"
	}
	return "male"
}

var ErrInvalidTable = errors.New("invalid growth reference table")

// Row is a single monthly knot of a reference curve.
type Row struct {
	Month int `json:"month"`
	Params
}

// Table is an immutable per-sex, per-month lookup of LMS parameters. It is
// safe for concurrent use.
type Table struct {
	curves [2][]Params // indexed by month - MinMonth
}

// NewTable builds a table from the rows of both sexes. Each side must cover
// every month in [MinMonth, MaxMonth] exactly once with M > 0 and S > 0; rows
// outside that range are ignored.
func NewTable(male, female []Row) (*Table, error) {
	t := &Table{}
	for sex, rows := range map[Sex][]Row{Male: male, Female: female} {
		curve, err := buildCurve(rows)
		if err != nil {
			return nil, fmt.Errorf("%s curve: %w", sex, err)
		}
		t.curves[sex] = curve
	}
	return t, nil
}

func buildCurve(rows []Row) ([]Params, error) {
	curve := make([]Params, MaxMonth-MinMonth+1)
	seen := make([]bool, len(curve))
	for _, r := range rows {
		if r.Month < MinMonth || r.Month > MaxMonth {
			continue
		}
		i := r.Month - MinMonth
		if seen[i] {
			return nil, fmt.Errorf("%w: duplicate month %d", ErrInvalidTable, r.Month)
		}
		if !(r.M > 0) || !(r.S > 0) || math.IsNaN(r.L) || math.IsInf(r.L, 0) {
			return nil, fmt.Errorf("%w: month %d has non-positive M or S", ErrInvalidTable, r.Month)
		}
		curve[i] = r.Params
		seen[i] = true
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: month %d missing", ErrInvalidTable, i+MinMonth)
		}
	}
	return curve, nil
}

// Lookup returns the parameters at an integer month.
func (t *Table) Lookup(sex Sex, month int) (Params, bool) {
	if month < MinMonth || month > MaxMonth {
		return Params{}, false
	}
	return t.curves[sex][month-MinMonth], true
}

// Interpolate returns the parameters at a fractional age in months. The age
// is clamped to [MinMonth, MaxMonth]; integer months return the stored row
// unchanged, anything in between interpolates L, M and S independently.
func (t *Table) Interpolate(sex Sex, ageMonths float64) Params {
	ageMonths = math.Max(MinMonth, math.Min(MaxMonth, ageMonths))

	lo := math.Floor(ageMonths)
	frac := ageMonths - lo
	curve := t.curves[sex]
	i := int(lo) - MinMonth
	if frac == 0 {
		return curve[i]
	}
	return lerpParams(curve[i], curve[i+1], frac)
}

// Rows returns a copy of one curve in month order.
func (t *Table) Rows(sex Sex) []Row {
	curve := t.curves[sex]
	rows := make([]Row, len(curve))
	for i, p := range curve {
		rows[i] = Row{Month: i + MinMonth, Params: p}
	}
	return rows
}

// Merge overlays override on base by month and returns the result sorted by
// month. It lets a partial official file (WHO publishes 61..228) reuse the
// bundled knots it does not cover.
func Merge(base, override []Row) []Row {
	byMonth := make(map[int]Row, len(base)+len(override))
	for _, r := range base {
		byMonth[r.Month] = r
	}
	for _, r := range override {
		byMonth[r.Month] = r
	}
	out := make([]Row, 0, len(byMonth))
	for _, r := range byMonth {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// ParseRows reads a whitespace-separated reference file in the layout of the
// WHO "bmi-{boys,girls}-z-who-2007-exp.txt" downloads: a header row naming
// the columns, then one row per month. Only the Month, L, M and S columns are
// used; extra columns such as SD bands are ignored.
func ParseRows(r io.Reader) ([]Row, error) {
	sc := bufio.NewScanner(r)
	cols := map[string]int{}
	var rows []Row
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(cols) == 0 {
			for i, f := range fields {
				cols[strings.ToLower(f)] = i
			}
			for _, want := range []string{"month", "l", "m", "s"} {
				if _, ok := cols[want]; !ok {
					return nil, fmt.Errorf("%w: header missing %q column", ErrInvalidTable, want)
				}
			}
			continue
		}

		row, err := parseRow(fields, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidTable, line, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidTable)
	}
	return rows, nil
}

func parseRow(fields []string, cols map[string]int) (Row, error) {
	get := func(name string) (float64, error) {
		i := cols[name]
		if i >= len(fields) {
			return 0, fmt.Errorf("missing %s value", name)
		}
		return strconv.ParseFloat(fields[i], 64)
	}

	month, err := get("month")
	if err != nil {
		return Row{}, err
	}
	if month != math.Trunc(month) {
		return Row{}, fmt.Errorf("month %v is not an integer", month)
	}
	var p Params
	if p.L, err = get("l"); err != nil {
		return Row{}, err
	}
	if p.M, err = get("m"); err != nil {
		return Row{}, err
	}
	if p.S, err = get("s"); err != nil {
		return Row{}, err
	}
	return Row{Month: int(month), Params: p}, nil
}
