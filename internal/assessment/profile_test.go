package assessment

import (
	"testing"

	"github.com/vark-assess/backend/internal/models"
)

func TestSummarize_SinglePrimary(t *testing.T) {
	tests := []struct {
		scores models.ModalityScores
		want   string
	}{
		{models.ModalityScores{V: 4, A: 1, R: 1, K: 0}, "V"},
		{models.ModalityScores{V: 0, A: 3, R: 1, K: 2}, "A"},
		{models.ModalityScores{V: 1, A: 0, R: 5, K: 2}, "R"},
		{models.ModalityScores{V: 2, A: 1, R: 0, K: 3}, "K"},
	}

	for _, tt := range tests {
		profile := Summarize(tt.scores)
		if profile.Primary != tt.want {
			t.Errorf("Summarize(%+v).Primary = %s, want %s", tt.scores, profile.Primary, tt.want)
		}
		if profile.Summary == "" {
			t.Errorf("primary %s: empty summary", tt.want)
		}
		if len(profile.Recommendations) != 3 {
			t.Errorf("primary %s: %d recommendations, want 3", tt.want, len(profile.Recommendations))
		}
	}
}

func TestSummarize_Multi(t *testing.T) {
	tests := []struct {
		name   string
		scores models.ModalityScores
	}{
		{"exact tie", models.ModalityScores{V: 3, A: 3, R: 0, K: 0}},
		{"margin below one", models.ModalityScores{V: 3, A: 2.5, R: 0, K: 0}},
		{"all zero", models.ModalityScores{}},
	}

	for _, tt := range tests {
		profile := Summarize(tt.scores)
		if profile.Primary != "Multi" {
			t.Errorf("%s: Primary = %s, want Multi", tt.name, profile.Primary)
		}
		if len(profile.Recommendations) != 3 {
			t.Errorf("%s: %d recommendations, want 3", tt.name, len(profile.Recommendations))
		}
	}
}

func TestSummarize_MarginExactlyOne(t *testing.T) {
	// A lead of exactly 1.0 is enough for a single-style profile
	profile := Summarize(models.ModalityScores{V: 3, A: 2, R: 0, K: 0})
	if profile.Primary != "V" {
		t.Errorf("Primary = %s, want V for a lead of exactly 1.0", profile.Primary)
	}
}
