package course

import "math"

// ComputeProgress derives the completion percentage and flag for an
// enrollment from the number of content items in the course and the set
// of completed content IDs. Duplicate IDs are counted once. A course
// with no content is never complete. The percentage is rounded half-up
// and clamped to [0, 100], so stale completion IDs can never push it
// past 100.
func ComputeProgress(totalItems int, completedIDs []uint) (percent int, completed bool) {
	if totalItems <= 0 {
		return 0, false
	}

	seen := make(map[uint]struct{}, len(completedIDs))
	for _, id := range completedIDs {
		seen[id] = struct{}{}
	}

	percent = int(math.Round(float64(len(seen)) / float64(totalItems) * 100))
	if percent > 100 {
		percent = 100
	}

	return percent, percent == 100
}
