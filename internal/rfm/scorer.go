package rfm

import (
	"math"
	"sort"

	"ecommerce-analytics/internal/domain"
)

const (
	scoreBins    = 5
	neutralScore = 3
)

// Scorer assigns 1..5 quintile scores relative to the profiled population.
type Scorer struct {
	// RankTies bins stable ranks instead of raw values, so duplicate values
	// never collapse quantile edges.
	RankTies bool
}

// NewScorer returns a Scorer that breaks ties by rank.
func NewScorer() Scorer {
	return Scorer{RankTies: true}
}

// Score scores every profile. Recency is inverted so the most recent
// customers get 5; frequency and monetary are direct. The returned slice
// keeps the input order and carries no segment yet.
func (s Scorer) Score(profiles []domain.CustomerProfile) []domain.ScoredProfile {
	n := len(profiles)
	var recency, frequency, monetary []float64
	if s.RankTies {
		recency = stableRanks(profiles, func(a, b domain.CustomerProfile) int {
			return a.Recency - b.Recency
		})
		frequency = stableRanks(profiles, func(a, b domain.CustomerProfile) int {
			return a.Frequency - b.Frequency
		})
		monetary = stableRanks(profiles, func(a, b domain.CustomerProfile) int {
			return a.Monetary.Cmp(b.Monetary)
		})
	} else {
		recency = make([]float64, n)
		frequency = make([]float64, n)
		monetary = make([]float64, n)
		for i, p := range profiles {
			recency[i] = float64(p.Recency)
			frequency[i] = float64(p.Frequency)
			monetary[i] = p.Monetary.InexactFloat64()
		}
	}

	rScores := scoreColumn(recency, true)
	fScores := scoreColumn(frequency, false)
	mScores := scoreColumn(monetary, false)

	scored := make([]domain.ScoredProfile, n)
	for i, p := range profiles {
		scored[i] = domain.ScoredProfile{
			CustomerProfile: p,
			Scores: domain.Scores{
				R: rScores[i],
				F: fScores[i],
				M: mScores[i],
			},
		}
	}
	return scored
}

// stableRanks returns 1-based ranks ordered by cmp, ties broken by customer id.
func stableRanks(profiles []domain.CustomerProfile, cmp func(a, b domain.CustomerProfile) int) []float64 {
	order := make([]int, len(profiles))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := profiles[order[i]], profiles[order[j]]
		if c := cmp(a, b); c != 0 {
			return c < 0
		}
		return a.CustomerID < b.CustomerID
	})
	ranks := make([]float64, len(profiles))
	for pos, idx := range order {
		ranks[idx] = float64(pos + 1)
	}
	return ranks
}

func scoreColumn(values []float64, inverted bool) []int {
	bins, n := QuantileBins(values, scoreBins)
	scores := make([]int, len(values))
	for i, b := range bins {
		score := binScore(b, n)
		if inverted {
			score = scoreBins + 1 - score
		}
		scores[i] = score
	}
	return scores
}

// binScore spreads the surviving bins over 1..5. With all five bins this is
// simply b+1.
func binScore(b, bins int) int {
	if b < 0 || bins <= 1 {
		return neutralScore
	}
	return 1 + int(math.Round(float64(b*(scoreBins-1))/float64(bins-1)))
}
