package domain

import "slices"

type SignID string

const (
	SignAries       SignID = "aries"
	SignTaurus      SignID = "taurus"
	SignGemini      SignID = "gemini"
	SignCancer      SignID = "cancer"
	SignLeo         SignID = "leo"
	SignVirgo       SignID = "virgo"
	SignLibra       SignID = "libra"
	SignScorpio     SignID = "scorpio"
	SignSagittarius SignID = "sagittarius"
	SignCapricorn   SignID = "capricorn"
	SignAquarius    SignID = "aquarius"
	SignPisces      SignID = "pisces"
)

type Element string

const (
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementAir   Element = "air"
	ElementWater Element = "water"
)

// Elements lists elements in declaration order, which is also the tie-break
// order when picking a dominant element.
var Elements = []Element{ElementFire, ElementEarth, ElementAir, ElementWater}

type Quality string

const (
	QualityCardinal Quality = "cardinal"
	QualityFixed    Quality = "fixed"
	QualityMutable  Quality = "mutable"
)

var Qualities = []Quality{QualityCardinal, QualityFixed, QualityMutable}

type PlanetID string

const (
	PlanetSun     PlanetID = "sun"
	PlanetMoon    PlanetID = "moon"
	PlanetMercury PlanetID = "mercury"
	PlanetVenus   PlanetID = "venus"
	PlanetMars    PlanetID = "mars"
	PlanetJupiter PlanetID = "jupiter"
	PlanetSaturn  PlanetID = "saturn"
	PlanetUranus  PlanetID = "uranus"
	PlanetNeptune PlanetID = "neptune"
	PlanetPluto   PlanetID = "pluto"
)

type AspectNature string

const (
	NatureHarmonious  AspectNature = "harmonious"
	NatureChallenging AspectNature = "challenging"
	NatureNeutral     AspectNature = "neutral"
)

// MonthDay is an inclusive calendar boundary with no year attached.
type MonthDay struct {
	Month int `json:"month"`
	Day   int `json:"day"`
}

type ZodiacSign struct {
	ID           SignID   `json:"id"`
	Name         string   `json:"name"`
	Symbol       string   `json:"symbol"`
	Start        MonthDay `json:"start"`
	End          MonthDay `json:"end"`
	Element      Element  `json:"element"`
	Quality      Quality  `json:"quality"`
	Ruler        PlanetID `json:"ruler"`
	Traits       []string `json:"traits"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	LuckyNumbers []int    `json:"lucky_numbers"`
	LuckyColors  []string `json:"lucky_colors"`
	Compatible   []SignID `json:"compatible"`
}

// Clone returns a copy that shares no slices with s.
func (s ZodiacSign) Clone() ZodiacSign {
	s.Traits = slices.Clone(s.Traits)
	s.Strengths = slices.Clone(s.Strengths)
	s.Weaknesses = slices.Clone(s.Weaknesses)
	s.LuckyNumbers = slices.Clone(s.LuckyNumbers)
	s.LuckyColors = slices.Clone(s.LuckyColors)
	s.Compatible = slices.Clone(s.Compatible)
	return s
}

type Planet struct {
	ID                PlanetID `json:"id"`
	Name              string   `json:"name"`
	Keywords          []string `json:"keywords"`
	OrbitalPeriodDays float64  `json:"orbital_period_days"`
}

func (p Planet) Clone() Planet {
	p.Keywords = slices.Clone(p.Keywords)
	return p
}

type PlanetaryPlacement struct {
	Planet   PlanetID `json:"planet"`
	Position float64  `json:"position"`
	Sign     SignID   `json:"sign"`
	House    int      `json:"house"`
	Degree   int      `json:"degree"`
}

type Aspect struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Angle  float64      `json:"angle"`
	Nature AspectNature `json:"nature"`
}

type DetectedAspect struct {
	First      PlanetID `json:"first"`
	Second     PlanetID `json:"second"`
	Aspect     Aspect   `json:"aspect"`
	Separation float64  `json:"separation"`
	Exactness  float64  `json:"exactness"`
}

type House struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	LifeArea string `json:"life_area"`
}

type HouseOccupancy struct {
	House   House      `json:"house"`
	Planets []PlanetID `json:"planets"`
	Count   int        `json:"count"`
	Active  bool       `json:"active"`
}

type BirthChart struct {
	BirthDate       string               `json:"birth_date"`
	BirthTime       string               `json:"birth_time"`
	Place           string               `json:"place,omitempty"`
	SunSign         SignID               `json:"sun_sign"`
	MoonSign        SignID               `json:"moon_sign"`
	Ascendant       SignID               `json:"ascendant"`
	Placements      []PlanetaryPlacement `json:"placements"`
	Aspects         []DetectedAspect     `json:"aspects"`
	Houses          []HouseOccupancy     `json:"houses"`
	Elements        map[Element]int      `json:"elements"`
	Qualities       map[Quality]int      `json:"qualities"`
	DominantElement Element              `json:"dominant_element"`
	DominantQuality Quality              `json:"dominant_quality"`
}

type CompatibilityBreakdown struct {
	Base    int `json:"base"`
	Element int `json:"element"`
	Quality int `json:"quality"`
}

type SignCompatibility struct {
	First      SignID                 `json:"first"`
	Second     SignID                 `json:"second"`
	Score      int                    `json:"score"`
	Breakdown  CompatibilityBreakdown `json:"breakdown"`
	Strengths  []string               `json:"strengths"`
	Challenges []string               `json:"challenges"`
}

// ChartImage is a rendered birth-chart wheel.
type ChartImage struct {
	MimeType string `json:"mime_type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Bytes    []byte `json:"-"`
}
