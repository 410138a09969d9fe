package astro

import (
	"math"
	"sort"

	"divination/internal/domain"
)

const (
	// AspectOrb is the largest deviation from a canonical angle that still
	// counts as an aspect.
	AspectOrb = 8.0
	// MaxChartAspects caps how many aspects a chart keeps.
	MaxChartAspects = 6
)

// aspects are matched in table order; the first within orb wins.
var aspects = [5]domain.Aspect{
	{ID: "conjunction", Name: "Conjunction", Angle: 0, Nature: domain.NatureNeutral},
	{ID: "sextile", Name: "Sextile", Angle: 60, Nature: domain.NatureHarmonious},
	{ID: "square", Name: "Square", Angle: 90, Nature: domain.NatureChallenging},
	{ID: "trine", Name: "Trine", Angle: 120, Nature: domain.NatureHarmonious},
	{ID: "opposition", Name: "Opposition", Angle: 180, Nature: domain.NatureChallenging},
}

func Aspects() []domain.Aspect {
	out := make([]domain.Aspect, len(aspects))
	copy(out, aspects[:])
	return out
}

// Separation is the shorter arc between two ecliptic positions, in [0, 180].
func Separation(a, b float64) float64 {
	diff := math.Abs(a - b)
	diff = math.Mod(diff, fullCircle)
	return math.Min(diff, fullCircle-diff)
}

// MatchAspect returns the first aspect whose canonical angle lies within the
// orb of the separation, along with the exactness of the match.
func MatchAspect(separation float64) (domain.Aspect, float64, bool) {
	for _, a := range aspects {
		deviation := math.Abs(separation - a.Angle)
		if deviation <= AspectOrb {
			return a, AspectOrb - deviation, true
		}
	}
	return domain.Aspect{}, 0, false
}

// DetectAspects checks every unordered pair of placements and returns the
// most exact matches first, truncated to limit. A non-positive limit keeps
// every match.
func DetectAspects(placements []domain.PlanetaryPlacement, limit int) []domain.DetectedAspect {
	found := make([]domain.DetectedAspect, 0, len(placements))
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			sep := Separation(placements[i].Position, placements[j].Position)
			aspect, exactness, ok := MatchAspect(sep)
			if !ok {
				continue
			}
			found = append(found, domain.DetectedAspect{
				First:      placements[i].Planet,
				Second:     placements[j].Planet,
				Aspect:     aspect,
				Separation: sep,
				Exactness:  exactness,
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Exactness > found[j].Exactness
	})
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	return found
}
