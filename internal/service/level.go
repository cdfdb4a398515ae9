package service

// LevelForScore maps a quiz score onto the catalog's Niveau scale. thresholds
// are ascending inclusive upper bounds for Niveau 1..len(thresholds); higher
// scores get the next level. A score of zero or less means no quiz was taken
// and yields 0, which disables the level filter.
func LevelForScore(score float64, thresholds []int) int {
	if score <= 0 {
		return 0
	}
	for i, t := range thresholds {
		if score <= float64(t) {
			return i + 1
		}
	}
	return len(thresholds) + 1
}
