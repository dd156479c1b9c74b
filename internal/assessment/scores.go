package assessment

import (
	"math"

	"github.com/vark-assess/backend/internal/models"
)

// AddScores returns the field-wise sum of base and delta. No clamping —
// the result may transiently hold negative or non-finite values and must
// pass through ClampScores before it feeds selection or termination logic.
func AddScores(base, delta models.ModalityScores) models.ModalityScores {
	return models.ModalityScores{
		V: base.V + delta.V,
		A: base.A + delta.A,
		R: base.R + delta.R,
		K: base.K + delta.K,
	}
}

// ClampScores forces every field to a non-negative finite value:
// NaN and infinities become 0, negatives become 0, everything else is
// unchanged. Idempotent.
func ClampScores(s models.ModalityScores) models.ModalityScores {
	return models.ModalityScores{
		V: clampField(s.V),
		A: clampField(s.A),
		R: clampField(s.R),
		K: clampField(s.K),
	}
}

func clampField(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	return v
}

// OneHot returns a vector with 1 in the given modality's field and 0
// elsewhere. Used both for direct-choice score deltas and for bumping
// asked-counts when a question is assigned.
func OneHot(m models.Modality) models.ModalityScores {
	var s models.ModalityScores
	switch m {
	case models.ModalityV:
		s.V = 1
	case models.ModalityA:
		s.A = 1
	case models.ModalityR:
		s.R = 1
	case models.ModalityK:
		s.K = 1
	}
	return s
}
