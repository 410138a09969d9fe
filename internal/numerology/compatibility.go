package numerology

const (
	mutualCompatibility   = 90
	oneSidedCompatibility = 75
	fallbackCompatibility = 50
)

// distanceScores is keyed on |n1 - n2|.
var distanceScores = map[int]int{
	0: 85,
	1: 70, 8: 70,
	2: 65, 7: 65,
	3: 60, 6: 60,
	4: 55, 5: 55,
}

// ScoreCompatibility rates two life numbers. Numbers listing each other as
// compatible score highest, a one-sided listing next, and otherwise the score
// depends only on their distance. The result is symmetric.
func ScoreCompatibility(a, b int) int {
	aLikesB := listsCompatible(a, b)
	bLikesA := listsCompatible(b, a)
	switch {
	case aLikesB && bLikesA:
		return mutualCompatibility
	case aLikesB || bLikesA:
		return oneSidedCompatibility
	}

	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	if score, ok := distanceScores[diff]; ok {
		return score
	}
	return fallbackCompatibility
}

func listsCompatible(from, to int) bool {
	profile, ok := LifeNumberProfile(from)
	if !ok {
		return false
	}
	for _, n := range profile.Compatible {
		if n == to {
			return true
		}
	}
	return false
}
