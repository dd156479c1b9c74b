package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/vark-assess/backend/internal/models"
)

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ParseResult parses and validates a classifier response body. Models
// sometimes wrap JSON in code fences despite instructions, so fences are
// stripped first. A result that parses but fails validation is rejected
// rather than passed through — the core must never score from malformed
// data.
func ParseResult(responseBody string) (*models.ClassifierResult, error) {
	cleaned := stripCodeFences(responseBody)

	var result models.ClassifierResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if err := validateResult(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

func validateResult(result *models.ClassifierResult) error {
	var errs []string

	fields := map[string]float64{
		"v": result.Scores.V,
		"a": result.Scores.A,
		"r": result.Scores.R,
		"k": result.Scores.K,
	}
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Sprintf("score %q is not finite", name))
		}
	}

	if math.IsNaN(result.Confidence) || result.Confidence < 0 || result.Confidence > 1 {
		errs = append(errs, fmt.Sprintf("confidence %v outside range [0, 1]", result.Confidence))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
