package numerology

import (
	"strings"
	"unicode"

	"divination/internal/domain"
)

// luckyBundles is indexed by personality number mod 5.
var luckyBundles = [5]domain.LuckyElements{
	{
		Element:    domain.FiveElementMetal,
		Colors:     []string{"white", "gold", "silver"},
		Directions: []string{"west", "northwest"},
		Numbers:    []int{4, 9},
		Season:     "autumn",
	},
	{
		Element:    domain.FiveElementWood,
		Colors:     []string{"green", "teal"},
		Directions: []string{"east", "southeast"},
		Numbers:    []int{3, 8},
		Season:     "spring",
	},
	{
		Element:    domain.FiveElementWater,
		Colors:     []string{"black", "dark blue"},
		Directions: []string{"north"},
		Numbers:    []int{1, 6},
		Season:     "winter",
	},
	{
		Element:    domain.FiveElementFire,
		Colors:     []string{"red", "purple", "orange"},
		Directions: []string{"south"},
		Numbers:    []int{2, 7},
		Season:     "summer",
	},
	{
		Element:    domain.FiveElementEarth,
		Colors:     []string{"yellow", "brown"},
		Directions: []string{"center", "southwest", "northeast"},
		Numbers:    []int{5, 0},
		Season:     "late summer",
	},
}

// AnalyzeFiveGrid derives the five-grid numbers for a surname and given name.
// Both parts must contain at least one scorable character.
func AnalyzeFiveGrid(surname, given string) (domain.NameAnalysis, bool) {
	surnameRunes := nameRunes(surname)
	givenRunes := nameRunes(given)
	if len(surnameRunes) == 0 || len(givenRunes) == 0 {
		return domain.NameAnalysis{}, false
	}

	destiny := strokeSum(surnameRunes)
	earth := strokeSum(givenRunes)
	personality := destiny + CJKValue(givenRunes[0])
	external := destiny + earth - personality

	return domain.NameAnalysis{
		Surname:           string(surnameRunes),
		GivenName:         string(givenRunes),
		TotalStrokes:      destiny + earth,
		DestinyNumber:     destiny,
		PersonalityNumber: personality,
		EarthNumber:       earth,
		ExternalNumber:    external,
		Fortune:           fortuneFor(destiny, personality, earth, external),
		LuckyElements:     luckyBundles[personality%len(luckyBundles)].Clone(),
	}, true
}

func fortuneFor(d, p, e, x int) domain.Fortune {
	return domain.Fortune{
		Overall: reading((3*d + 5*p + 2*e + 4*x + 60) % 100),
		Career:  reading((6*p + 3*x + 55) % 100),
		Wealth:  reading((4*d + 5*e + 45) % 100),
		Love:    reading((7*e + 2*p + 65) % 100),
		Health:  reading((2*d + 3*e + 5*x + 70) % 100),
	}
}

func reading(score int) domain.FortuneReading {
	return domain.FortuneReading{Score: score, Band: BandFor(score)}
}

// BandFor maps a 0-99 fortune score to its qualitative band.
func BandFor(score int) domain.FortuneBand {
	switch {
	case score >= 80:
		return domain.BandExcellent
	case score >= 70:
		return domain.BandGood
	case score >= 60:
		return domain.BandFair
	case score >= 50:
		return domain.BandAverage
	default:
		return domain.BandNeedsAttention
	}
}

// nameRunes drops whitespace and punctuation; every remaining rune is scored,
// falling back to the code point rule for characters outside the table.
func nameRunes(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func strokeSum(rs []rune) int {
	sum := 0
	for _, r := range rs {
		sum += CJKValue(r)
	}
	return sum
}
