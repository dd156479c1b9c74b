package assessment

import "github.com/vark-assess/backend/internal/models"

// PickWeakest returns the modality the next question should target:
// the least-asked modality, with current score as tie-break, and the
// fixed V,A,R,K enumeration order as final tie-break. Coverage breadth
// wins over score — an under-asked modality is always probed before a
// well-covered one.
func PickWeakest(askedCounts, scores models.ModalityScores) models.Modality {
	best := models.Modalities[0]
	for _, m := range models.Modalities[1:] {
		mAsked, bestAsked := askedCounts.Get(m), askedCounts.Get(best)
		if mAsked < bestAsked {
			best = m
			continue
		}
		if mAsked == bestAsked && scores.Get(m) < scores.Get(best) {
			best = m
		}
	}
	return best
}
