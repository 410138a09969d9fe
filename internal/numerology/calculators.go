package numerology

import (
	"strings"
	"time"

	"divination/internal/domain"
)

// MasterMode selects how the life number treats master numbers.
type MasterMode string

const (
	// MasterModeRaw keeps the historical behaviour: only a raw
	// year+month+day sum of 11, 22, 33, 44 or 55 is kept unreduced and
	// everything else collapses to one digit.
	MasterModeRaw MasterMode = "raw"
	// MasterModeReduction detects masters during reduction, like the
	// name-based numbers.
	MasterModeReduction MasterMode = "reduction"
)

// ParseMasterMode accepts "raw" or "reduction", case-insensitively.
func ParseMasterMode(raw string) (MasterMode, bool) {
	switch MasterMode(strings.ToLower(strings.TrimSpace(raw))) {
	case MasterModeRaw:
		return MasterModeRaw, true
	case MasterModeReduction:
		return MasterModeReduction, true
	}
	return "", false
}

var rawMasterSums = map[int]bool{11: true, 22: true, 33: true, 44: true, 55: true}

// Calculator derives numerology numbers from names and dates. It is safe for
// concurrent use.
type Calculator struct {
	mode MasterMode
}

// NewCalculator returns a calculator using mode for life numbers. An unknown
// mode falls back to MasterModeRaw.
func NewCalculator(mode MasterMode) *Calculator {
	if _, ok := ParseMasterMode(string(mode)); !ok {
		mode = MasterModeRaw
	}
	return &Calculator{mode: mode}
}

func (c *Calculator) Mode() MasterMode {
	return c.mode
}

// LifeNumber sums year, month and day and reduces the total.
func (c *Calculator) LifeNumber(year, month, day int) int {
	sum := year + month + day
	if c.mode == MasterModeReduction {
		return Reduce(sum)
	}
	if rawMasterSums[sum] {
		return sum
	}
	return ReduceToDigit(sum)
}

// LifeNumberFor is LifeNumber over a calendar date.
func (c *Calculator) LifeNumberFor(date time.Time) int {
	return c.LifeNumber(date.Year(), int(date.Month()), date.Day())
}

// ExpressionNumber scores every Latin and Han character of name. The second
// return value is false when nothing in name carries a value.
func ExpressionNumber(name string) (int, bool) {
	return sumName(name, RuneValue)
}

// SoulNumber scores the Latin vowels A, E, I, O and U.
func SoulNumber(name string) (int, bool) {
	return sumName(name, func(r rune) int {
		if !isVowel(r) {
			return 0
		}
		return LetterValue(r)
	})
}

// PersonalityNumber scores the Latin consonants; Y counts as a consonant.
func PersonalityNumber(name string) (int, bool) {
	return sumName(name, func(r rune) int {
		if !isLatinLetter(r) || isVowel(r) {
			return 0
		}
		return LetterValue(r)
	})
}

func sumName(name string, value func(rune) int) (int, bool) {
	sum, used := 0, 0
	for _, r := range FoldName(name) {
		v := value(r)
		if v == 0 {
			continue
		}
		sum += v
		used++
	}
	if used == 0 {
		return 0, false
	}
	return Reduce(sum), true
}

// BirthdayNumber reduces the day of the month.
func BirthdayNumber(day int) int {
	return Reduce(day)
}

// MaturityNumber reduces the sum of the life and expression numbers.
func MaturityNumber(life, expression int) int {
	return Reduce(life + expression)
}

// PersonalYear is the number governing targetYear for someone born on the
// given month and day.
func PersonalYear(month, day, targetYear int) int {
	return Reduce(month + day + targetYear)
}

// Report gathers every number available from name and birth. Either input may
// be absent: an empty name leaves the name numbers at zero and a zero birth
// time leaves the date numbers at zero. targetYear selects the personal year
// and is ignored when zero.
func (c *Calculator) Report(name string, birth time.Time, targetYear int) domain.NumerologyReport {
	report := domain.NumerologyReport{Name: strings.TrimSpace(name)}

	expression, hasName := ExpressionNumber(name)
	if hasName {
		report.ExpressionNumber = expression
		report.SoulNumber, _ = SoulNumber(name)
		report.PersonalityNumber, _ = PersonalityNumber(name)
	}

	if !birth.IsZero() {
		report.BirthDate = birth.Format("2006-01-02")
		report.LifeNumber = c.LifeNumberFor(birth)
		report.BirthdayNumber = BirthdayNumber(birth.Day())
		if profile, ok := LifeNumberProfile(report.LifeNumber); ok {
			report.LifeProfile = &profile
		}
		if hasName {
			report.MaturityNumber = MaturityNumber(report.LifeNumber, expression)
		}
		if targetYear > 0 {
			report.PersonalYear = PersonalYear(int(birth.Month()), birth.Day(), targetYear)
			report.PersonalYearFor = targetYear
		}
	}
	return report
}
