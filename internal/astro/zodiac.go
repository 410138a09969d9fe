package astro

import (
	"divination/internal/domain"
)

// signs is ordered along the ecliptic starting at Aries; the index of a sign
// in this table is its 30° segment number.
var signs = [12]domain.ZodiacSign{
	{
		ID: domain.SignAries, Name: "Aries", Symbol: "♈",
		Start: domain.MonthDay{Month: 3, Day: 21}, End: domain.MonthDay{Month: 4, Day: 19},
		Element: domain.ElementFire, Quality: domain.QualityCardinal, Ruler: domain.PlanetMars,
		Traits:       []string{"energetic", "bold", "competitive", "impulsive"},
		Strengths:    []string{"courage", "initiative", "enthusiasm", "honesty"},
		Weaknesses:   []string{"impatience", "short temper", "recklessness"},
		LuckyNumbers: []int{1, 8, 17},
		LuckyColors:  []string{"red", "scarlet"},
		Compatible:   []domain.SignID{domain.SignLeo, domain.SignSagittarius, domain.SignGemini, domain.SignAquarius},
	},
	{
		ID: domain.SignTaurus, Name: "Taurus", Symbol: "♉",
		Start: domain.MonthDay{Month: 4, Day: 20}, End: domain.MonthDay{Month: 5, Day: 20},
		Element: domain.ElementEarth, Quality: domain.QualityFixed, Ruler: domain.PlanetVenus,
		Traits:       []string{"patient", "reliable", "sensual", "stubborn"},
		Strengths:    []string{"reliability", "patience", "devotion", "practicality"},
		Weaknesses:   []string{"stubbornness", "possessiveness", "rigidity"},
		LuckyNumbers: []int{2, 6, 9, 12},
		LuckyColors:  []string{"green", "pink"},
		Compatible:   []domain.SignID{domain.SignVirgo, domain.SignCapricorn, domain.SignCancer, domain.SignPisces},
	},
	{
		ID: domain.SignGemini, Name: "Gemini", Symbol: "♊",
		Start: domain.MonthDay{Month: 5, Day: 21}, End: domain.MonthDay{Month: 6, Day: 20},
		Element: domain.ElementAir, Quality: domain.QualityMutable, Ruler: domain.PlanetMercury,
		Traits:       []string{"curious", "adaptable", "witty", "restless"},
		Strengths:    []string{"communication", "adaptability", "curiosity", "wit"},
		Weaknesses:   []string{"inconsistency", "indecision", "nervousness"},
		LuckyNumbers: []int{5, 7, 14, 23},
		LuckyColors:  []string{"yellow", "light green"},
		Compatible:   []domain.SignID{domain.SignLibra, domain.SignAquarius, domain.SignAries, domain.SignLeo},
	},
	{
		ID: domain.SignCancer, Name: "Cancer", Symbol: "♋",
		Start: domain.MonthDay{Month: 6, Day: 21}, End: domain.MonthDay{Month: 7, Day: 22},
		Element: domain.ElementWater, Quality: domain.QualityCardinal, Ruler: domain.PlanetMoon,
		Traits:       []string{"nurturing", "intuitive", "protective", "moody"},
		Strengths:    []string{"loyalty", "empathy", "intuition", "devotion"},
		Weaknesses:   []string{"moodiness", "oversensitivity", "clinginess"},
		LuckyNumbers: []int{2, 3, 15, 20},
		LuckyColors:  []string{"white", "silver"},
		Compatible:   []domain.SignID{domain.SignScorpio, domain.SignPisces, domain.SignTaurus, domain.SignVirgo},
	},
	{
		ID: domain.SignLeo, Name: "Leo", Symbol: "♌",
		Start: domain.MonthDay{Month: 7, Day: 23}, End: domain.MonthDay{Month: 8, Day: 22},
		Element: domain.ElementFire, Quality: domain.QualityFixed, Ruler: domain.PlanetSun,
		Traits:       []string{"confident", "generous", "dramatic", "proud"},
		Strengths:    []string{"generosity", "leadership", "enthusiasm", "loyalty"},
		Weaknesses:   []string{"arrogance", "stubbornness", "vanity"},
		LuckyNumbers: []int{1, 3, 10, 19},
		LuckyColors:  []string{"gold", "orange"},
		Compatible:   []domain.SignID{domain.SignAries, domain.SignSagittarius, domain.SignGemini, domain.SignLibra},
	},
	{
		ID: domain.SignVirgo, Name: "Virgo", Symbol: "♍",
		Start: domain.MonthDay{Month: 8, Day: 23}, End: domain.MonthDay{Month: 9, Day: 22},
		Element: domain.ElementEarth, Quality: domain.QualityMutable, Ruler: domain.PlanetMercury,
		Traits:       []string{"analytical", "modest", "diligent", "critical"},
		Strengths:    []string{"practicality", "diligence", "loyalty", "analysis"},
		Weaknesses:   []string{"overcriticism", "worry", "perfectionism"},
		LuckyNumbers: []int{5, 14, 15, 23},
		LuckyColors:  []string{"grey", "beige"},
		Compatible:   []domain.SignID{domain.SignTaurus, domain.SignCapricorn, domain.SignCancer, domain.SignScorpio},
	},
	{
		ID: domain.SignLibra, Name: "Libra", Symbol: "♎",
		Start: domain.MonthDay{Month: 9, Day: 23}, End: domain.MonthDay{Month: 10, Day: 22},
		Element: domain.ElementAir, Quality: domain.QualityCardinal, Ruler: domain.PlanetVenus,
		Traits:       []string{"diplomatic", "charming", "fair-minded", "indecisive"},
		Strengths:    []string{"diplomacy", "fairness", "communication", "grace"},
		Weaknesses:   []string{"indecision", "people-pleasing", "avoidance"},
		LuckyNumbers: []int{4, 6, 13, 15},
		LuckyColors:  []string{"pink", "light blue"},
		Compatible:   []domain.SignID{domain.SignGemini, domain.SignAquarius, domain.SignLeo, domain.SignSagittarius},
	},
	{
		ID: domain.SignScorpio, Name: "Scorpio", Symbol: "♏",
		Start: domain.MonthDay{Month: 10, Day: 23}, End: domain.MonthDay{Month: 11, Day: 21},
		Element: domain.ElementWater, Quality: domain.QualityFixed, Ruler: domain.PlanetPluto,
		Traits:       []string{"intense", "passionate", "secretive", "determined"},
		Strengths:    []string{"determination", "loyalty", "intuition", "passion"},
		Weaknesses:   []string{"jealousy", "secrecy", "resentment"},
		LuckyNumbers: []int{8, 11, 18, 22},
		LuckyColors:  []string{"deep red", "black"},
		Compatible:   []domain.SignID{domain.SignCancer, domain.SignPisces, domain.SignVirgo, domain.SignCapricorn},
	},
	{
		ID: domain.SignSagittarius, Name: "Sagittarius", Symbol: "♐",
		Start: domain.MonthDay{Month: 11, Day: 22}, End: domain.MonthDay{Month: 12, Day: 21},
		Element: domain.ElementFire, Quality: domain.QualityMutable, Ruler: domain.PlanetJupiter,
		Traits:       []string{"optimistic", "adventurous", "philosophical", "blunt"},
		Strengths:    []string{"optimism", "enthusiasm", "honesty", "generosity"},
		Weaknesses:   []string{"impatience", "tactlessness", "restlessness"},
		LuckyNumbers: []int{3, 7, 9, 12, 21},
		LuckyColors:  []string{"purple", "blue"},
		Compatible:   []domain.SignID{domain.SignAries, domain.SignLeo, domain.SignLibra, domain.SignAquarius},
	},
	{
		ID: domain.SignCapricorn, Name: "Capricorn", Symbol: "♑",
		Start: domain.MonthDay{Month: 12, Day: 22}, End: domain.MonthDay{Month: 1, Day: 19},
		Element: domain.ElementEarth, Quality: domain.QualityCardinal, Ruler: domain.PlanetSaturn,
		Traits:       []string{"disciplined", "ambitious", "responsible", "reserved"},
		Strengths:    []string{"discipline", "responsibility", "practicality", "patience"},
		Weaknesses:   []string{"pessimism", "rigidity", "workaholism"},
		LuckyNumbers: []int{4, 8, 13, 22},
		LuckyColors:  []string{"brown", "dark green"},
		Compatible:   []domain.SignID{domain.SignTaurus, domain.SignVirgo, domain.SignScorpio, domain.SignPisces},
	},
	{
		ID: domain.SignAquarius, Name: "Aquarius", Symbol: "♒",
		Start: domain.MonthDay{Month: 1, Day: 20}, End: domain.MonthDay{Month: 2, Day: 18},
		Element: domain.ElementAir, Quality: domain.QualityFixed, Ruler: domain.PlanetUranus,
		Traits:       []string{"inventive", "independent", "humanitarian", "aloof"},
		Strengths:    []string{"originality", "independence", "communication", "idealism"},
		Weaknesses:   []string{"detachment", "stubbornness", "unpredictability"},
		LuckyNumbers: []int{4, 7, 11, 22, 29},
		LuckyColors:  []string{"electric blue", "turquoise"},
		Compatible:   []domain.SignID{domain.SignGemini, domain.SignLibra, domain.SignAries, domain.SignSagittarius},
	},
	{
		ID: domain.SignPisces, Name: "Pisces", Symbol: "♓",
		Start: domain.MonthDay{Month: 2, Day: 19}, End: domain.MonthDay{Month: 3, Day: 20},
		Element: domain.ElementWater, Quality: domain.QualityMutable, Ruler: domain.PlanetNeptune,
		Traits:       []string{"compassionate", "artistic", "intuitive", "dreamy"},
		Strengths:    []string{"empathy", "intuition", "creativity", "devotion"},
		Weaknesses:   []string{"escapism", "oversensitivity", "indecision"},
		LuckyNumbers: []int{3, 9, 12, 15, 18},
		LuckyColors:  []string{"sea green", "lavender"},
		Compatible:   []domain.SignID{domain.SignCancer, domain.SignScorpio, domain.SignTaurus, domain.SignCapricorn},
	},
}

var signIndex = func() map[domain.SignID]int {
	idx := make(map[domain.SignID]int, len(signs))
	for i := range signs {
		idx[signs[i].ID] = i
	}
	return idx
}()

var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Signs returns a copy of the sign table in ecliptic order.
func Signs() []domain.ZodiacSign {
	out := make([]domain.ZodiacSign, len(signs))
	for i, s := range signs {
		out[i] = s.Clone()
	}
	return out
}

// SignByID looks up a sign by its lower-case id.
func SignByID(id domain.SignID) (domain.ZodiacSign, bool) {
	i, ok := signIndex[id]
	if !ok {
		return domain.ZodiacSign{}, false
	}
	return signs[i].Clone(), true
}

func signAt(index int) domain.ZodiacSign {
	index %= len(signs)
	if index < 0 {
		index += len(signs)
	}
	return signs[index].Clone()
}

// ValidMonthDay reports whether month/day names a real calendar day in some
// year; Feb 29 is accepted.
func ValidMonthDay(month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysInMonth[month]
}

// ResolveSign maps a calendar month/day to its tropical sun sign. The second
// return value is false only for malformed dates.
func ResolveSign(month, day int) (domain.ZodiacSign, bool) {
	if !ValidMonthDay(month, day) {
		return domain.ZodiacSign{}, false
	}
	for i := range signs {
		if signContains(signs[i], month, day) {
			return signs[i].Clone(), true
		}
	}
	return domain.ZodiacSign{}, false
}

func signContains(s domain.ZodiacSign, month, day int) bool {
	key := month*100 + day
	start := s.Start.Month*100 + s.Start.Day
	end := s.End.Month*100 + s.End.Day
	if start <= end {
		return key >= start && key <= end
	}
	// range wraps the year boundary
	return key >= start || key <= end
}
