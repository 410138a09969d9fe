package domain

import "slices"

type LifeNumberProfile struct {
	Number      int      `json:"number"`
	Name        string   `json:"name"`
	Meaning     string   `json:"meaning"`
	Personality []string `json:"personality"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Career      []string `json:"career"`
	Love        []string `json:"love"`
	Health      []string `json:"health"`
	LuckyColors []string `json:"lucky_colors"`
	LuckyStones []string `json:"lucky_stones"`
	Compatible  []int    `json:"compatible"`
}

// Clone returns a copy that shares no slices with p.
func (p LifeNumberProfile) Clone() LifeNumberProfile {
	p.Personality = slices.Clone(p.Personality)
	p.Strengths = slices.Clone(p.Strengths)
	p.Weaknesses = slices.Clone(p.Weaknesses)
	p.Career = slices.Clone(p.Career)
	p.Love = slices.Clone(p.Love)
	p.Health = slices.Clone(p.Health)
	p.LuckyColors = slices.Clone(p.LuckyColors)
	p.LuckyStones = slices.Clone(p.LuckyStones)
	p.Compatible = slices.Clone(p.Compatible)
	return p
}

// IsMaster reports whether the profile belongs to one of the unreduced
// master numbers.
func (p LifeNumberProfile) IsMaster() bool {
	return p.Number == 11 || p.Number == 22 || p.Number == 33
}

type FortuneBand string

const (
	BandExcellent      FortuneBand = "excellent"
	BandGood           FortuneBand = "good"
	BandFair           FortuneBand = "fair"
	BandAverage        FortuneBand = "average"
	BandNeedsAttention FortuneBand = "needs attention"
)

type FortuneReading struct {
	Score int         `json:"score"`
	Band  FortuneBand `json:"band"`
}

type Fortune struct {
	Overall FortuneReading `json:"overall"`
	Career  FortuneReading `json:"career"`
	Wealth  FortuneReading `json:"wealth"`
	Love    FortuneReading `json:"love"`
	Health  FortuneReading `json:"health"`
}

type FiveElement string

const (
	FiveElementMetal FiveElement = "metal"
	FiveElementWood  FiveElement = "wood"
	FiveElementWater FiveElement = "water"
	FiveElementFire  FiveElement = "fire"
	FiveElementEarth FiveElement = "earth"
)

type LuckyElements struct {
	Element    FiveElement `json:"element"`
	Colors     []string    `json:"colors"`
	Directions []string    `json:"directions"`
	Numbers    []int       `json:"numbers"`
	Season     string      `json:"season"`
}

func (l LuckyElements) Clone() LuckyElements {
	l.Colors = slices.Clone(l.Colors)
	l.Directions = slices.Clone(l.Directions)
	l.Numbers = slices.Clone(l.Numbers)
	return l
}

type NameAnalysis struct {
	Surname           string        `json:"surname"`
	GivenName         string        `json:"given_name"`
	TotalStrokes      int           `json:"total_strokes"`
	DestinyNumber     int           `json:"destiny_number"`
	PersonalityNumber int           `json:"personality_number"`
	EarthNumber       int           `json:"earth_number"`
	ExternalNumber    int           `json:"external_number"`
	Fortune           Fortune       `json:"fortune"`
	LuckyElements     LuckyElements `json:"lucky_elements"`
}

// NumerologyReport gathers every number derivable from a name and a birth
// date. Numbers whose input was absent or unusable are left at zero.
type NumerologyReport struct {
	Name              string             `json:"name,omitempty"`
	BirthDate         string             `json:"birth_date,omitempty"`
	LifeNumber        int                `json:"life_number,omitempty"`
	ExpressionNumber  int                `json:"expression_number,omitempty"`
	SoulNumber        int                `json:"soul_number,omitempty"`
	PersonalityNumber int                `json:"personality_number,omitempty"`
	BirthdayNumber    int                `json:"birthday_number,omitempty"`
	MaturityNumber    int                `json:"maturity_number,omitempty"`
	PersonalYear      int                `json:"personal_year,omitempty"`
	PersonalYearFor   int                `json:"personal_year_for,omitempty"`
	LifeProfile       *LifeNumberProfile `json:"life_profile,omitempty"`
}

type ProfileRequest struct {
	BirthDate string `json:"birth_date"`
	BirthTime string `json:"birth_time,omitempty"`
	Place     string `json:"place,omitempty"`
	Name      string `json:"name,omitempty"`
	Surname   string `json:"surname,omitempty"`
	GivenName string `json:"given_name,omitempty"`
	Year      int    `json:"year,omitempty"`
}

type DivinationProfile struct {
	Chart      *BirthChart       `json:"chart"`
	Sun        *ZodiacSign       `json:"sun,omitempty"`
	Numerology *NumerologyReport `json:"numerology"`
	FiveGrid   *NameAnalysis     `json:"five_grid,omitempty"`
}
