package models

import "time"

// ── Wire Types ──────────────────────────────────────────
//
// The HTTP field names are camelCase to match the existing assessment
// clients (studentId/sessionId/answer).

// QuestionView is a question as served to clients: option keys and text
// only, never the modality each option scores toward.
type QuestionView struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Options []OptionView `json:"options"`
}

type OptionView struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

type StartSessionRequest struct {
	StudentID string `json:"studentId"`
	GradeBand string `json:"gradeBand,omitempty"`
}

type StartSessionResponse struct {
	SessionID string       `json:"sessionId"`
	Step      int          `json:"step"`
	Question  QuestionView `json:"question"`
}

type RespondRequest struct {
	SessionID string `json:"sessionId"`
	Answer    string `json:"answer"`
}

// RespondResponse carries either the next question or, once the session
// completes, the terminal profile. Exactly one of the two is set.
type RespondResponse struct {
	SessionID string        `json:"sessionId"`
	Step      int           `json:"step"`
	Question  *QuestionView `json:"question,omitempty"`
	Result    *Profile      `json:"result,omitempty"`
}

// SessionStateResponse is the progress view of a session. The current
// question goes out as a QuestionView so an in-progress session never
// reveals which modality each option scores toward.
type SessionStateResponse struct {
	SessionID       string         `json:"sessionId"`
	StudentID       string         `json:"studentId"`
	GradeBand       string         `json:"gradeBand,omitempty"`
	Status          SessionStatus  `json:"status"`
	Step            int            `json:"step"`
	Scores          ModalityScores `json:"scores"`
	AskedCounts     ModalityScores `json:"askedCounts"`
	History         []HistoryEntry `json:"history"`
	CurrentQuestion *QuestionView  `json:"currentQuestion,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// StateView converts a session to its wire form.
func (s *Session) StateView() SessionStateResponse {
	resp := SessionStateResponse{
		SessionID:   s.ID,
		StudentID:   s.StudentID,
		GradeBand:   string(s.GradeBand),
		Status:      s.Status,
		Step:        s.Step,
		Scores:      s.Scores,
		AskedCounts: s.AskedCounts,
		History:     s.History,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.CurrentQuestion != nil {
		view := s.CurrentQuestion.View()
		resp.CurrentQuestion = &view
	}
	return resp
}

type ErrorResponse struct {
	Error string `json:"error"`
}
