package astro

import (
	"strings"
	"time"

	"divination/internal/domain"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Engine assembles birth charts. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	defaultClock string
	aspectLimit  int
}

// NewEngine returns an engine that substitutes defaultClock ("HH:MM") for a
// missing or unparsable birth time. An invalid default falls back to noon.
func NewEngine(defaultClock string) *Engine {
	defaultClock = strings.TrimSpace(defaultClock)
	if _, err := time.Parse(clockLayout, defaultClock); err != nil {
		defaultClock = defaultBirthHHMM
	}
	return &Engine{defaultClock: defaultClock, aspectLimit: MaxChartAspects}
}

// DefaultClock is the birth time used when none is supplied.
func (e *Engine) DefaultClock() string {
	return e.defaultClock
}

// ParseDate parses a YYYY-MM-DD calendar date, rejecting days that do not
// exist (Feb 29 is only accepted in leap years).
func ParseDate(raw string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ResolveDate resolves the sun sign for a YYYY-MM-DD date.
func ResolveDate(raw string) (domain.ZodiacSign, bool) {
	t, ok := ParseDate(raw)
	if !ok {
		return domain.ZodiacSign{}, false
	}
	return ResolveSign(int(t.Month()), t.Day())
}

// BirthInstant combines a date with an "HH:MM" clock, falling back to the
// engine default when the clock is empty or malformed. The returned clock is
// the one actually used.
func (e *Engine) BirthInstant(date time.Time, clock string) (time.Time, string) {
	clock = strings.TrimSpace(clock)
	parsed, err := time.Parse(clockLayout, clock)
	if err != nil {
		clock = e.defaultClock
		parsed, _ = time.Parse(clockLayout, clock)
	}
	instant := time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	return instant, clock
}

// GenerateChart builds the full chart for a birth date, clock time and place.
// It returns false when the date cannot be resolved to a sun sign. Identical
// inputs always produce identical charts.
func (e *Engine) GenerateChart(date, clock, place string) (*domain.BirthChart, bool) {
	day, ok := ParseDate(date)
	if !ok {
		return nil, false
	}
	sun, ok := ResolveSign(int(day.Month()), day.Day())
	if !ok {
		return nil, false
	}

	instant, usedClock := e.BirthInstant(day, clock)
	placements := PlacePlanets(instant)
	dist := TallyDistribution(placements)

	return &domain.BirthChart{
		BirthDate:       day.Format(dateLayout),
		BirthTime:       usedClock,
		Place:           strings.TrimSpace(place),
		SunSign:         sun.ID,
		MoonSign:        MoonSign(day).ID,
		Ascendant:       Ascendant(instant.Hour()).ID,
		Placements:      placements,
		Aspects:         DetectAspects(placements, e.aspectLimit),
		Houses:          TallyHouses(placements),
		Elements:        dist.Elements,
		Qualities:       dist.Qualities,
		DominantElement: dist.DominantElement,
		DominantQuality: dist.DominantQuality,
	}, true
}

// MoonSign scales the day of the year into twelve equal buckets. It is a
// stand-in for a lunar position, not an ephemeris lookup.
func MoonSign(date time.Time) domain.ZodiacSign {
	daysInYear := 365
	if isLeap(date.Year()) {
		daysInYear = 366
	}
	return signAt((date.YearDay() - 1) * signsInZodiac / daysInYear)
}

// Ascendant scales the birth hour into twelve two-hour buckets.
func Ascendant(hour int) domain.ZodiacSign {
	if hour < 0 || hour > 23 {
		hour = 12
	}
	return signAt(hour * signsInZodiac / 24)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
