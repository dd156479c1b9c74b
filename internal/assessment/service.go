package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vark-assess/backend/internal/classifier"
	"github.com/vark-assess/backend/internal/models"
	"github.com/vark-assess/backend/internal/store"
)

// MaxQuestions is the fixed assessment length. Once this many questions
// have been answered the session completes with a profile.
const MaxQuestions = 6

// clarifyThreshold is the classifier confidence below which the next
// question is the fixed clarifying question instead of a
// modality-targeted one: an ambiguous free-text answer gets a
// forced-choice follow-up rather than steering by inferred modality.
const clarifyThreshold = 0.6

type Service struct {
	store      store.SessionStore
	classifier classifier.Classifier
}

func NewService(st store.SessionStore, cls classifier.Classifier) *Service {
	return &Service{store: st, classifier: cls}
}

// StartSession creates a new assessment session with its first question
// already assigned and recorded in history.
func (s *Service) StartSession(ctx context.Context, studentID, gradeBand string) (*models.Session, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, fmt.Errorf("%w: student id is required", ErrValidation)
	}

	band := models.GradeBand(gradeBand)
	if gradeBand != "" && !models.ValidGradeBands[band] {
		return nil, fmt.Errorf("%w: unknown grade band %q", ErrValidation, gradeBand)
	}

	question := SelectTemplate(1, nil)
	now := time.Now().UTC()

	session := &models.Session{
		ID:        uuid.NewString(),
		StudentID: studentID,
		GradeBand: band,
		Status:    models.SessionInProgress,
		Step:      1,
		History: []models.HistoryEntry{
			{QuestionID: question.ID, Target: question.Target},
		},
		CurrentQuestion: &question,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// RespondOutcome is the result of one accepted answer: either the next
// question or, once the session completes, the terminal profile.
type RespondOutcome struct {
	Session  *models.Session
	Question *models.Question
	Profile  *models.Profile
}

// Respond folds one answer into the session. Every failure path returns
// before any state is written, so a failed call leaves the stored
// session exactly as it was.
func (s *Service) Respond(ctx context.Context, sessionID, rawAnswer string) (*RespondOutcome, error) {
	session, err := s.store.Get(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	if session.Status != models.SessionInProgress || session.CurrentQuestion == nil {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotActive, sessionID)
	}

	interp, err := s.interpretAnswer(ctx, session.CurrentQuestion, rawAnswer)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session.Scores = ClampScores(AddScores(session.Scores, interp.delta))
	session.History[len(session.History)-1].AnsweredAt = &now
	session.UpdatedAt = now

	if session.Step >= MaxQuestions {
		session.Status = models.SessionComplete
		session.CurrentQuestion = nil
		profile := Summarize(session.Scores)

		if err := s.store.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		return &RespondOutcome{Session: session, Profile: &profile}, nil
	}

	var next models.Question
	if interp.confidence < clarifyThreshold {
		next = SelectClarifyingTemplate(session.Step + 1)
	} else {
		target := PickWeakest(session.AskedCounts, session.Scores)
		next = SelectTemplate(session.Step+1, &target)
	}

	session.Step++
	session.History = append(session.History, models.HistoryEntry{
		QuestionID: next.ID,
		Target:     next.Target,
	})
	session.AskedCounts = AddScores(session.AskedCounts, OneHot(next.Target))
	session.CurrentQuestion = &next

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &RespondOutcome{Session: session, Question: &next}, nil
}

// GetSession returns the stored session state for progress views.
func (s *Service) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return session, nil
}
