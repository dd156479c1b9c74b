package classifier

import (
	"context"
	"strings"

	"github.com/vark-assess/backend/internal/models"
)

// MockClassifier is a deterministic keyword heuristic for local
// development and tests. Text that mentions no learning-style cue at all
// comes back with low confidence, which exercises the clarifying-question
// path end to end without an API key.
type MockClassifier struct{}

func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

var modalityKeywords = map[models.Modality][]string{
	models.ModalityV: {"see", "watch", "picture", "diagram", "video", "draw", "look", "chart", "map"},
	models.ModalityA: {"hear", "listen", "talk", "explain", "discuss", "song", "say", "tell", "music"},
	models.ModalityR: {"read", "write", "notes", "book", "list", "words", "text"},
	models.ModalityK: {"do", "build", "try", "hands", "move", "practice", "touch", "play", "make"},
}

func (m *MockClassifier) Classify(ctx context.Context, text string) (*models.ClassifierResult, error) {
	lowered := strings.ToLower(text)

	var scores models.ModalityScores
	hits := 0
	for modality, keywords := range modalityKeywords {
		for _, kw := range keywords {
			if containsWord(lowered, kw) {
				hits++
				switch modality {
				case models.ModalityV:
					scores.V += 0.5
				case models.ModalityA:
					scores.A += 0.5
				case models.ModalityR:
					scores.R += 0.5
				case models.ModalityK:
					scores.K += 0.5
				}
				break
			}
		}
	}

	confidence := 0.3
	if hits == 1 {
		confidence = 0.9
	} else if hits > 1 {
		confidence = 0.7
	}

	return &models.ClassifierResult{Scores: scores, Confidence: confidence}, nil
}

func containsWord(text, word string) bool {
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '!' || r == '?' || r == ';' || r == ':'
	}) {
		if field == word {
			return true
		}
	}
	return false
}
