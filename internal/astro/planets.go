package astro

import (
	"math"
	"time"

	"divination/internal/domain"
)

const (
	degreesPerSign   = 30.0
	degreesPerHour   = 15.0
	fullCircle       = 360.0
	secondsPerDay    = 86400.0
	signsInZodiac    = 12
	housesInChart    = 12
	planetsInChart   = 10
	defaultBirthHHMM = "12:00"
)

// epoch is the reference instant all orbital positions are measured from.
var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var planets = [planetsInChart]domain.Planet{
	{ID: domain.PlanetSun, Name: "Sun", Keywords: []string{"identity", "vitality", "purpose"}, OrbitalPeriodDays: 365.25},
	{ID: domain.PlanetMoon, Name: "Moon", Keywords: []string{"emotion", "instinct", "memory"}, OrbitalPeriodDays: 27.32},
	{ID: domain.PlanetMercury, Name: "Mercury", Keywords: []string{"communication", "intellect", "travel"}, OrbitalPeriodDays: 87.97},
	{ID: domain.PlanetVenus, Name: "Venus", Keywords: []string{"love", "beauty", "values"}, OrbitalPeriodDays: 224.70},
	{ID: domain.PlanetMars, Name: "Mars", Keywords: []string{"drive", "courage", "conflict"}, OrbitalPeriodDays: 686.98},
	{ID: domain.PlanetJupiter, Name: "Jupiter", Keywords: []string{"growth", "luck", "wisdom"}, OrbitalPeriodDays: 4332.59},
	{ID: domain.PlanetSaturn, Name: "Saturn", Keywords: []string{"discipline", "structure", "limits"}, OrbitalPeriodDays: 10759.22},
	{ID: domain.PlanetUranus, Name: "Uranus", Keywords: []string{"change", "innovation", "rebellion"}, OrbitalPeriodDays: 30688.50},
	{ID: domain.PlanetNeptune, Name: "Neptune", Keywords: []string{"dreams", "intuition", "illusion"}, OrbitalPeriodDays: 60182.00},
	{ID: domain.PlanetPluto, Name: "Pluto", Keywords: []string{"transformation", "power", "rebirth"}, OrbitalPeriodDays: 90560.00},
}

// Planets returns a copy of the planet table, Sun first.
func Planets() []domain.Planet {
	out := make([]domain.Planet, len(planets))
	for i, p := range planets {
		out[i] = p.Clone()
	}
	return out
}

// DaysSinceEpoch returns fractional days between the epoch and t. It works
// from Unix seconds because time.Duration saturates about 292 years out.
func DaysSinceEpoch(t time.Time) float64 {
	t = t.UTC()
	seconds := float64(t.Unix() - epoch.Unix())
	return seconds/secondsPerDay + float64(t.Nanosecond())/(secondsPerDay*1e9)
}

// OrbitalPosition approximates an ecliptic longitude in [0, 360) from the
// fraction of an orbit completed since the epoch.
func OrbitalPosition(daysElapsed, periodDays float64) float64 {
	if periodDays <= 0 {
		return 0
	}
	pos := math.Mod(daysElapsed/periodDays*fullCircle, fullCircle)
	if pos < 0 {
		pos += fullCircle
	}
	// Mod can round a tiny negative up to exactly 360.
	if pos >= fullCircle {
		pos = 0
	}
	return pos
}

// HouseFor buckets a position into a house id (1-12) after rotating by the
// birth hour. This is a simplified offset model, not a real house system.
func HouseFor(position float64, hour int) int {
	idx := int(math.Floor((position+float64(hour)*degreesPerHour)/degreesPerSign)) % housesInChart
	if idx < 0 {
		idx += housesInChart
	}
	return idx + 1
}

// PlacePlanets computes placements for all ten planets at the given instant.
// The hour used for the house offset is the wall-clock hour of birth.
func PlacePlanets(birth time.Time) []domain.PlanetaryPlacement {
	days := DaysSinceEpoch(birth)
	hour := birth.UTC().Hour()

	out := make([]domain.PlanetaryPlacement, 0, len(planets))
	for _, p := range planets {
		pos := OrbitalPosition(days, p.OrbitalPeriodDays)
		signIdx := int(math.Floor(pos / degreesPerSign))
		out = append(out, domain.PlanetaryPlacement{
			Planet:   p.ID,
			Position: pos,
			Sign:     signAt(signIdx).ID,
			House:    HouseFor(pos, hour),
			Degree:   int(math.Floor(math.Mod(pos, degreesPerSign))),
		})
	}
	return out
}
