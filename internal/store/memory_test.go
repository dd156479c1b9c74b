package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vark-assess/backend/internal/models"
)

func testSession(id string) *models.Session {
	now := time.Now().UTC()
	return &models.Session{
		ID:        id,
		StudentID: "s1",
		Status:    models.SessionInProgress,
		Step:      1,
		History: []models.HistoryEntry{
			{QuestionID: "q-1", Target: models.ModalityV},
		},
		CurrentQuestion: &models.Question{
			ID:     "q-1",
			Text:   "test question",
			Target: models.ModalityV,
			Options: []models.Option{
				{Key: "A", Text: "option a", Modality: models.ModalityV},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemoryStore_Roundtrip(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	if err := st.Save(ctx, testSession("sess-1")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := st.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != "sess-1" || got.StudentID != "s1" {
		t.Errorf("got %q/%q, want sess-1/s1", got.ID, got.StudentID)
	}
	if got.CurrentQuestion == nil || got.CurrentQuestion.ID != "q-1" {
		t.Errorf("current question not restored: %+v", got.CurrentQuestion)
	}
}

func TestMemoryStore_NotFound(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_NoAliasing(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	original := testSession("sess-1")
	if err := st.Save(ctx, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Mutating the saved value must not change stored state
	original.Step = 99
	original.History[0].QuestionID = "corrupted"
	original.CurrentQuestion.Text = "corrupted"

	stored, _ := st.Get(ctx, "sess-1")
	if stored.Step != 1 {
		t.Errorf("stored Step = %d, caller mutation leaked in", stored.Step)
	}
	if stored.History[0].QuestionID != "q-1" {
		t.Errorf("stored history mutated: %q", stored.History[0].QuestionID)
	}
	if stored.CurrentQuestion.Text != "test question" {
		t.Errorf("stored question mutated: %q", stored.CurrentQuestion.Text)
	}

	// Mutating a fetched value must not change stored state either
	fetched, _ := st.Get(ctx, "sess-1")
	fetched.Scores.V = 42
	fetched.CurrentQuestion.Options[0].Text = "corrupted"

	stored, _ = st.Get(ctx, "sess-1")
	if stored.Scores.V != 0 {
		t.Errorf("stored Scores.V = %v, fetched mutation leaked in", stored.Scores.V)
	}
	if stored.CurrentQuestion.Options[0].Text != "option a" {
		t.Errorf("stored option mutated: %q", stored.CurrentQuestion.Options[0].Text)
	}
}
