package service

import "math"

// Reduce collapses the three judge scores into the final score (mean)
// and the disagreement signal (max minus min), both rounded to one
// decimal. Scores are taken as-is; a judge score outside [1,5] is not
// clamped.
func Reduce(scores []int) (finalScore, variance float64) {
	if len(scores) == 0 {
		return 0, 0
	}

	sum := 0
	mn, mx := scores[0], scores[0]
	for _, s := range scores {
		sum += s
		if s < mn {
			mn = s
		}
		if s > mx {
			mx = s
		}
	}

	finalScore = round1(float64(sum) / float64(len(scores)))
	variance = round1(float64(mx - mn))
	return finalScore, variance
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
