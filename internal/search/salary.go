package search

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// SalaryRange is the numeric reading of a free-text salary. A single figure
// yields Min == Max.
type SalaryRange struct {
	Min int64
	Max int64
}

var salaryFigureRe = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// Currency markers allowed around the separator of a range, as in
// "$50k - $70k" or "50000USD-70000USD".
var salaryCurrencies = []string{"usd", "idr", "eur", "rp.", "rp", "$", "€", "£"}

var salaryRangeSeparators = map[string]bool{
	"-": true, "–": true, "—": true, "~": true, "to": true, "s/d": true,
}

type salaryFigure struct {
	value      int64
	start, end int
}

// ParseSalary reads texts such as "50000-70000", "$50k - $70k", "80,000 per
// year" or "50000USD". The first pair of figures joined by a range separator
// wins; without one, the largest figure is taken so counts like "3 days" are
// not read as pay. It reports false when no figure is found.
func ParseSalary(s string) (SalaryRange, bool) {
	figs := salaryFigures(s)
	if len(figs) == 0 {
		return SalaryRange{}, false
	}

	for i := 0; i+1 < len(figs); i++ {
		if isRangeSeparator(s[figs[i].end:figs[i+1].start]) {
			lo, hi := figs[i].value, figs[i+1].value
			if hi < lo {
				lo, hi = hi, lo
			}
			return SalaryRange{Min: lo, Max: hi}, true
		}
	}

	best := figs[0].value
	for _, f := range figs[1:] {
		if f.value > best {
			best = f.value
		}
	}
	return SalaryRange{Min: best, Max: best}, true
}

func salaryFigures(s string) []salaryFigure {
	var out []salaryFigure
	for _, loc := range salaryFigureRe.FindAllStringIndex(s, -1) {
		digits := strings.ReplaceAll(s[loc[0]:loc[1]], ",", "")
		f, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			continue
		}

		end := loc[1]
		if mult, n := multiplierAt(s, end); n > 0 {
			f *= mult
			end += n
		}
		out = append(out, salaryFigure{value: clampInt64(f), start: loc[0], end: end})
	}
	return out
}

// multiplierAt reads an optional k/m suffix at s[i:], allowing spaces before
// it. The letter only counts when no other letter follows, so "5000 monthly"
// and "50000USD" keep their face value.
func multiplierAt(s string, i int) (float64, int) {
	j := i
	for j < len(s) && s[j] == ' ' {
		j++
	}
	if j >= len(s) {
		return 0, 0
	}

	var mult float64
	switch s[j] {
	case 'k', 'K':
		mult = 1_000
	case 'm', 'M':
		mult = 1_000_000
	default:
		return 0, 0
	}
	if next := j + 1; next < len(s) && unicode.IsLetter(rune(s[next])) {
		return 0, 0
	}
	return mult, j + 1 - i
}

func isRangeSeparator(between string) bool {
	t := strings.ToLower(strings.Join(strings.Fields(between), ""))
	for _, c := range salaryCurrencies {
		t = strings.TrimSuffix(t, c)
	}
	for _, c := range salaryCurrencies {
		t = strings.TrimPrefix(t, c)
	}
	return salaryRangeSeparators[t]
}

func clampInt64(f float64) int64 {
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	if f < 0 {
		return 0
	}
	return int64(f)
}

// Overlaps reports whether the range intersects [from, to]. A nil bound is
// open.
func (r SalaryRange) Overlaps(from, to *int64) bool {
	if from != nil && r.Max < *from {
		return false
	}
	if to != nil && r.Min > *to {
		return false
	}
	return true
}
