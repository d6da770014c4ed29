package domain

import "math"

// ProgressFunc receives upload progress as a percentage between 0 and 100.
type ProgressFunc func(percent int)

// Percent returns round(loaded*100/total) clamped to [0,100].
// It returns false when the total is unknown.
func Percent(loaded, total int64) (int, bool) {
	if total <= 0 {
		return 0, false
	}
	return roundPercent(float64(loaded) / float64(total)), true
}

func roundPercent(ratio float64) int {
	p := int(math.Round(ratio * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
