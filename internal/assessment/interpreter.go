package assessment

import (
	"context"
	"fmt"
	"strings"

	"github.com/vark-assess/backend/internal/models"
)

// interpretation is the resolved scoring signal for one answer: a score
// delta plus how confident we are in it. Direct option choices carry
// confidence 1.0; free-text answers carry the classifier's confidence.
type interpretation struct {
	delta      models.ModalityScores
	confidence float64
}

// interpretAnswer resolves a raw answer against the current question.
// A single-letter answer is treated as an option-key choice; anything
// longer goes to the external classifier. The classifier is the only
// path that can fail on transport or parse errors, and that failure is
// surfaced as ErrClassificationFailed rather than defaulting to zero
// scores.
func (s *Service) interpretAnswer(ctx context.Context, question *models.Question, rawAnswer string) (interpretation, error) {
	normalized := strings.TrimSpace(rawAnswer)

	if normalized == "" {
		return interpretation{}, ErrMissingAnswer
	}

	if len(normalized) == 1 {
		key := strings.ToUpper(normalized)
		for _, option := range question.Options {
			if option.Key == key {
				return interpretation{delta: OneHot(option.Modality), confidence: 1.0}, nil
			}
		}
		return interpretation{}, fmt.Errorf("%w: %q", ErrInvalidAnswer, key)
	}

	result, err := s.classifier.Classify(ctx, normalized)
	if err != nil {
		return interpretation{}, fmt.Errorf("%w: %v", ErrClassificationFailed, err)
	}

	return interpretation{
		delta:      ClampScores(result.Scores),
		confidence: result.Confidence,
	}, nil
}
