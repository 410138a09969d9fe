package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"divination/internal/domain"
)

func TestBaseCompatibilitySymmetric(t *testing.T) {
	for _, a := range signs {
		for _, b := range signs {
			ab := ScoreCompatibility(a.ID, b.ID)
			ba := ScoreCompatibility(b.ID, a.ID)
			require.Equalf(t, ab, ba, "%s/%s", a.ID, b.ID)
			assert.GreaterOrEqual(t, ab, 0)
			assert.LessOrEqual(t, ab, 100)
		}
	}
}

func TestScoreCompatibilityUnknownSign(t *testing.T) {
	assert.Equal(t, 50, ScoreCompatibility("ophiuchus", domain.SignAries))
	assert.Equal(t, 50, ScoreCompatibility(domain.SignAries, ""))
}

func TestScoreDetailedCompatibilityAriesLeo(t *testing.T) {
	got := ScoreDetailedCompatibility(domain.SignAries, domain.SignLeo)

	assert.Equal(t, domain.CompatibilityBreakdown{Base: 87, Element: 80, Quality: 70}, got.Breakdown)
	assert.Equal(t, 79, got.Score)
	assert.Contains(t, got.Strengths, "shared enthusiasm")
	assert.Contains(t, got.Strengths, "same fire element brings instinctive understanding")
	assert.Empty(t, got.Challenges)
}

func TestScoreDetailedCompatibilityChallenges(t *testing.T) {
	got := ScoreDetailedCompatibility(domain.SignAries, domain.SignCancer)

	assert.Equal(t, 42, got.Breakdown.Base)
	assert.Equal(t, 55, got.Breakdown.Element)
	assert.Equal(t, 60, got.Breakdown.Quality)
	assert.Equal(t, 52, got.Score)
	assert.Equal(t, []string{
		"fire and water can dampen or unsettle each other",
		"both want to lead and may compete for direction",
	}, got.Challenges)
}

func TestScoreDetailedCompatibilitySymmetricScore(t *testing.T) {
	for _, a := range signs {
		for _, b := range signs {
			ab := ScoreDetailedCompatibility(a.ID, b.ID)
			ba := ScoreDetailedCompatibility(b.ID, a.ID)
			assert.Equalf(t, ab.Score, ba.Score, "%s/%s", a.ID, b.ID)
		}
	}
}

func TestScoreDetailedCompatibilityUnknownSign(t *testing.T) {
	got := ScoreDetailedCompatibility("ophiuchus", domain.SignLeo)

	assert.Equal(t, 50, got.Score)
	assert.Equal(t, domain.CompatibilityBreakdown{Base: 50, Element: 50, Quality: 50}, got.Breakdown)
	assert.NotNil(t, got.Strengths)
	assert.NotNil(t, got.Challenges)
	assert.Empty(t, got.Strengths)
	assert.Empty(t, got.Challenges)
}
