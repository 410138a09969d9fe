package astro

import (
	"math"

	"divination/internal/domain"
)

const defaultCompatibility = 50

// baseCompatibility is indexed by sign table position and is symmetric.
var baseCompatibility = [signsInZodiac][signsInZodiac]int{
	{67, 47, 77, 42, 87, 37, 62, 37, 87, 42, 77, 47}, // aries
	{47, 68, 49, 80, 46, 92, 43, 62, 38, 89, 45, 81}, // taurus
	{77, 49, 71, 53, 78, 45, 92, 37, 64, 41, 93, 43}, // gemini
	{42, 80, 53, 69, 52, 78, 46, 87, 40, 68, 39, 92}, // cancer
	{87, 46, 78, 52, 69, 53, 80, 42, 91, 38, 67, 39}, // leo
	{37, 92, 45, 78, 53, 71, 49, 77, 47, 90, 38, 68}, // virgo
	{62, 43, 92, 46, 80, 49, 68, 47, 83, 47, 91, 40}, // libra
	{37, 62, 37, 87, 42, 77, 47, 67, 47, 77, 42, 87}, // scorpio
	{87, 38, 64, 40, 91, 47, 83, 47, 68, 49, 80, 46}, // sagittarius
	{42, 89, 41, 68, 38, 90, 47, 77, 49, 71, 53, 78}, // capricorn
	{77, 45, 93, 39, 67, 38, 91, 42, 80, 53, 69, 52}, // aquarius
	{47, 81, 43, 92, 39, 68, 40, 87, 46, 78, 52, 69}, // pisces
}

var elementAffinity = map[domain.Element]map[domain.Element]int{
	domain.ElementFire:  {domain.ElementFire: 80, domain.ElementEarth: 50, domain.ElementAir: 90, domain.ElementWater: 55},
	domain.ElementEarth: {domain.ElementFire: 50, domain.ElementEarth: 80, domain.ElementAir: 55, domain.ElementWater: 90},
	domain.ElementAir:   {domain.ElementFire: 90, domain.ElementEarth: 55, domain.ElementAir: 80, domain.ElementWater: 50},
	domain.ElementWater: {domain.ElementFire: 55, domain.ElementEarth: 90, domain.ElementAir: 50, domain.ElementWater: 85},
}

var qualityAffinity = map[domain.Quality]map[domain.Quality]int{
	domain.QualityCardinal: {domain.QualityCardinal: 60, domain.QualityFixed: 70, domain.QualityMutable: 85},
	domain.QualityFixed:    {domain.QualityCardinal: 70, domain.QualityFixed: 65, domain.QualityMutable: 75},
	domain.QualityMutable:  {domain.QualityCardinal: 85, domain.QualityFixed: 75, domain.QualityMutable: 70},
}

// ScoreCompatibility is a direct lookup in the base matrix. Unknown ids score
// the neutral default.
func ScoreCompatibility(a, b domain.SignID) int {
	i, okA := signIndex[a]
	j, okB := signIndex[b]
	if !okA || !okB {
		return defaultCompatibility
	}
	return baseCompatibility[i][j]
}

// ScoreDetailedCompatibility blends the base matrix with element and quality
// affinity and explains the result. It never fails; unknown ids produce the
// neutral default with empty explanations.
func ScoreDetailedCompatibility(a, b domain.SignID) domain.SignCompatibility {
	out := domain.SignCompatibility{
		First:      a,
		Second:     b,
		Score:      defaultCompatibility,
		Strengths:  []string{},
		Challenges: []string{},
	}
	signA, okA := SignByID(a)
	signB, okB := SignByID(b)
	if !okA || !okB {
		out.Breakdown = domain.CompatibilityBreakdown{
			Base:    defaultCompatibility,
			Element: defaultCompatibility,
			Quality: defaultCompatibility,
		}
		return out
	}

	out.Breakdown = domain.CompatibilityBreakdown{
		Base:    ScoreCompatibility(a, b),
		Element: elementAffinity[signA.Element][signB.Element],
		Quality: qualityAffinity[signA.Quality][signB.Quality],
	}
	sum := out.Breakdown.Base + out.Breakdown.Element + out.Breakdown.Quality
	out.Score = int(math.Round(float64(sum) / 3))
	out.Strengths = compatibilityStrengths(signA, signB)
	out.Challenges = compatibilityChallenges(signA, signB)
	return out
}

const topStrengths = 3

func compatibilityStrengths(a, b domain.ZodiacSign) []string {
	out := []string{}
	seen := make(map[string]struct{}, topStrengths)
	for _, s := range firstN(a.Strengths, topStrengths) {
		seen[s] = struct{}{}
	}
	for _, s := range firstN(b.Strengths, topStrengths) {
		if _, ok := seen[s]; ok {
			out = append(out, "shared "+s)
		}
	}

	switch {
	case a.Element == b.Element:
		out = append(out, "same "+string(a.Element)+" element brings instinctive understanding")
	case complementary(a.Element, b.Element):
		out = append(out, string(a.Element)+" and "+string(b.Element)+" feed each other naturally")
	}
	if a.Quality != b.Quality && (a.Quality == domain.QualityMutable || b.Quality == domain.QualityMutable) {
		out = append(out, "mutable flexibility eases differences in pace")
	}
	return out
}

func compatibilityChallenges(a, b domain.ZodiacSign) []string {
	out := []string{}
	if opposed(a.Element, b.Element) {
		out = append(out, string(a.Element)+" and "+string(b.Element)+" can dampen or unsettle each other")
	}
	if a.Quality == domain.QualityFixed && b.Quality == domain.QualityFixed {
		out = append(out, "two fixed signs rarely give ground in disagreements")
	}
	if a.Quality == domain.QualityCardinal && b.Quality == domain.QualityCardinal {
		out = append(out, "both want to lead and may compete for direction")
	}
	return out
}

func complementary(a, b domain.Element) bool {
	pair := [2]domain.Element{a, b}
	switch pair {
	case [2]domain.Element{domain.ElementFire, domain.ElementAir},
		[2]domain.Element{domain.ElementAir, domain.ElementFire},
		[2]domain.Element{domain.ElementEarth, domain.ElementWater},
		[2]domain.Element{domain.ElementWater, domain.ElementEarth}:
		return true
	}
	return false
}

func opposed(a, b domain.Element) bool {
	pair := [2]domain.Element{a, b}
	switch pair {
	case [2]domain.Element{domain.ElementFire, domain.ElementWater},
		[2]domain.Element{domain.ElementWater, domain.ElementFire},
		[2]domain.Element{domain.ElementEarth, domain.ElementAir},
		[2]domain.Element{domain.ElementAir, domain.ElementEarth}:
		return true
	}
	return false
}

func firstN(values []string, n int) []string {
	if len(values) < n {
		return values
	}
	return values[:n]
}
