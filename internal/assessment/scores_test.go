package assessment

import (
	"math"
	"testing"

	"github.com/vark-assess/backend/internal/models"
)

func TestAddScores(t *testing.T) {
	base := models.ModalityScores{V: 1, A: 2, R: 0, K: 0.5}
	delta := models.ModalityScores{V: 0.5, A: -1, R: 3, K: 0}

	got := AddScores(base, delta)
	want := models.ModalityScores{V: 1.5, A: 1, R: 3, K: 0.5}
	if got != want {
		t.Errorf("AddScores = %+v, want %+v", got, want)
	}
}

func TestClampScores(t *testing.T) {
	tests := []struct {
		name  string
		input models.ModalityScores
		want  models.ModalityScores
	}{
		{
			name:  "already clean",
			input: models.ModalityScores{V: 1, A: 0.5, R: 0, K: 2},
			want:  models.ModalityScores{V: 1, A: 0.5, R: 0, K: 2},
		},
		{
			name:  "negative to zero",
			input: models.ModalityScores{V: -1, A: -0.001, R: 5, K: 0},
			want:  models.ModalityScores{V: 0, A: 0, R: 5, K: 0},
		},
		{
			name:  "NaN to zero",
			input: models.ModalityScores{V: math.NaN(), A: 1, R: 1, K: 1},
			want:  models.ModalityScores{V: 0, A: 1, R: 1, K: 1},
		},
		{
			name:  "infinities to zero",
			input: models.ModalityScores{V: math.Inf(1), A: math.Inf(-1), R: 2, K: 2},
			want:  models.ModalityScores{V: 0, A: 0, R: 2, K: 2},
		},
	}

	for _, tt := range tests {
		got := ClampScores(tt.input)
		if got != tt.want {
			t.Errorf("%s: ClampScores = %+v, want %+v", tt.name, got, tt.want)
		}

		// Idempotence
		again := ClampScores(got)
		if again != got {
			t.Errorf("%s: clamp not idempotent: %+v != %+v", tt.name, again, got)
		}

		// Every field finite and non-negative
		for _, m := range models.Modalities {
			v := got.Get(m)
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				t.Errorf("%s: field %s = %v after clamp", tt.name, m, v)
			}
		}
	}
}

func TestOneHot(t *testing.T) {
	for _, m := range models.Modalities {
		got := OneHot(m)
		for _, other := range models.Modalities {
			want := 0.0
			if other == m {
				want = 1.0
			}
			if got.Get(other) != want {
				t.Errorf("OneHot(%s).Get(%s) = %v, want %v", m, other, got.Get(other), want)
			}
		}
	}
}
