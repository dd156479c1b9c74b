package models

import "time"

type Modality string

const (
	ModalityV Modality = "V" // Visual
	ModalityA Modality = "A" // Auditory
	ModalityR Modality = "R" // Read/write
	ModalityK Modality = "K" // Kinesthetic
)

// Modalities is the canonical enumeration order. Selection tie-breaks
// and score ranking both depend on it being stable.
var Modalities = [4]Modality{ModalityV, ModalityA, ModalityR, ModalityK}

var ValidModalities = map[Modality]bool{
	ModalityV: true,
	ModalityA: true,
	ModalityR: true,
	ModalityK: true,
}

// ModalityScores is a 4-dimensional score vector over the VARK modalities.
// The same shape doubles as asked-counts (how many questions have targeted
// each modality).
type ModalityScores struct {
	V float64 `json:"v"`
	A float64 `json:"a"`
	R float64 `json:"r"`
	K float64 `json:"k"`
}

// Get returns the field for the given modality (0 for an unknown modality).
func (s ModalityScores) Get(m Modality) float64 {
	switch m {
	case ModalityV:
		return s.V
	case ModalityA:
		return s.A
	case ModalityR:
		return s.R
	case ModalityK:
		return s.K
	}
	return 0
}

type GradeBand string

const (
	GradeBandK2  GradeBand = "K-2"
	GradeBand35  GradeBand = "3-5"
	GradeBand68  GradeBand = "6-8"
	GradeBand912 GradeBand = "9-12"
)

var ValidGradeBands = map[GradeBand]bool{
	GradeBandK2:  true,
	GradeBand35:  true,
	GradeBand68:  true,
	GradeBand912: true,
}

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionComplete   SessionStatus = "complete"
)

// Option is one of a question's four fixed choices. Key is drawn from
// A-D; Modality is the modality the choice scores toward and is never
// exposed on the wire.
type Option struct {
	Key      string   `json:"key"`
	Text     string   `json:"text"`
	Modality Modality `json:"modality"`
}

// Question is a served question instance. Target is the modality the
// question is designed to probe, which is distinct from the modalities
// its individual options map to.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
	Target  Modality `json:"target"`
}

// View strips the option-to-modality mapping for client serving.
func (q Question) View() QuestionView {
	options := make([]OptionView, 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, OptionView{Key: o.Key, Text: o.Text})
	}
	return QuestionView{ID: q.ID, Text: q.Text, Options: options}
}

// HistoryEntry records one served question. AnsweredAt is nil while the
// question is still the session's current unanswered question.
type HistoryEntry struct {
	QuestionID string     `json:"question_id"`
	Target     Modality   `json:"target"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
}

// Session is the full state of one assessment run.
//
// Invariants: while Status is in_progress, CurrentQuestion is non-nil and
// its ID equals the last history entry's ID; Step equals len(History);
// once Status is complete the session is never mutated again.
type Session struct {
	ID              string         `json:"id"`
	StudentID       string         `json:"student_id"`
	GradeBand       GradeBand      `json:"grade_band,omitempty"`
	Status          SessionStatus  `json:"status"`
	Step            int            `json:"step"`
	Scores          ModalityScores `json:"scores"`
	AskedCounts     ModalityScores `json:"asked_counts"`
	History         []HistoryEntry `json:"history"`
	CurrentQuestion *Question      `json:"current_question,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// ClassifierResult is the outcome of classifying a free-text answer.
// Scores are nominally in [0,1] per field (not required to sum to 1);
// Confidence is in [0,1].
type ClassifierResult struct {
	Scores     ModalityScores `json:"scores"`
	Confidence float64        `json:"confidence"`
}

// Profile is the terminal assessment result. Primary is one of
// V, A, R, K, or Multi.
type Profile struct {
	Primary         string   `json:"primary"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}
