package assessment

import (
	"sort"

	"github.com/vark-assess/backend/internal/models"
)

// multiMargin is the minimum lead the top modality needs over the
// runner-up for a single-style profile. Anything closer reads as Multi.
const multiMargin = 1.0

type profileText struct {
	summary         string
	recommendations []string
}

var profileTexts = map[string]profileText{
	"V": {
		summary: "You learn best visually — pictures, diagrams, and seeing how things fit together help ideas stick.",
		recommendations: []string{
			"Turn notes into diagrams, mind maps, or color-coded charts",
			"Watch videos or animations of new topics before reading about them",
			"Sketch what you're learning, even rough drawings help",
		},
	},
	"A": {
		summary: "You learn best by listening and talking — hearing ideas explained and discussing them out loud helps them stick.",
		recommendations: []string{
			"Read notes aloud or record yourself and play it back",
			"Join study groups and explain topics to others",
			"Turn facts into rhymes, songs, or spoken summaries",
		},
	},
	"R": {
		summary: "You learn best through reading and writing — working with written words helps ideas stick.",
		recommendations: []string{
			"Rewrite notes in your own words after each lesson",
			"Make lists, summaries, and flashcards",
			"Read about a topic from more than one written source",
		},
	},
	"K": {
		summary: "You learn best by doing — hands-on practice and movement help ideas stick.",
		recommendations: []string{
			"Use experiments, models, and real objects whenever you can",
			"Take short movement breaks and practice skills physically",
			"Act out processes or walk through examples step by step",
		},
	},
	"Multi": {
		summary: "You're a multimodal learner — you benefit from mixing several learning styles rather than relying on one.",
		recommendations: []string{
			"Combine reading, diagrams, and discussion when studying a topic",
			"Switch formats when you get stuck, a different style may unlock it",
			"Notice which style helps most for each subject and lean into it",
		},
	},
}

// Summarize turns final scores into a terminal profile. Modalities are
// ranked by score descending; when the top two scores are equal or
// differ by less than multiMargin the primary label is Multi. The
// summary and recommendations are a static lookup keyed on the primary
// label only.
func Summarize(scores models.ModalityScores) models.Profile {
	ranked := make([]models.Modality, len(models.Modalities))
	copy(ranked, models.Modalities[:])
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores.Get(ranked[i]) > scores.Get(ranked[j])
	})

	primary := string(ranked[0])
	if scores.Get(ranked[0])-scores.Get(ranked[1]) < multiMargin {
		primary = "Multi"
	}

	text := profileTexts[primary]
	return models.Profile{
		Primary:         primary,
		Summary:         text.summary,
		Recommendations: text.recommendations,
	}
}
