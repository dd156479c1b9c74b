package assessment

import (
	"fmt"

	"github.com/vark-assess/backend/internal/models"
)

// questionTemplate is a fixed catalog entry. Each template carries
// exactly 4 options, one per modality, with a stable key-to-modality
// mapping (the mapping varies across templates so option keys carry no
// positional signal).
type questionTemplate struct {
	target  models.Modality
	text    string
	options [4]models.Option
}

// templateCatalog covers every modality with at least one template, a
// property selectTemplate's target filter relies on.
var templateCatalog = []questionTemplate{
	{
		target: models.ModalityV,
		text:   "You need to learn how a volcano works for class. What helps you understand it best?",
		options: [4]models.Option{
			{Key: "A", Text: "A labeled diagram showing the layers and lava flow", Modality: models.ModalityV},
			{Key: "B", Text: "Your teacher explaining it out loud", Modality: models.ModalityA},
			{Key: "C", Text: "Reading a chapter that describes each part", Modality: models.ModalityR},
			{Key: "D", Text: "Building a model volcano and making it erupt", Modality: models.ModalityK},
		},
	},
	{
		target: models.ModalityA,
		text:   "You have to memorize the steps of the water cycle. Which way works best for you?",
		options: [4]models.Option{
			{Key: "A", Text: "Saying the steps out loud or turning them into a song", Modality: models.ModalityA},
			{Key: "B", Text: "Acting out each step with hand motions", Modality: models.ModalityK},
			{Key: "C", Text: "Studying a poster that shows the whole cycle", Modality: models.ModalityV},
			{Key: "D", Text: "Writing the steps down a few times", Modality: models.ModalityR},
		},
	},
	{
		target: models.ModalityR,
		text:   "Your class is starting a new topic. What would you rather do first?",
		options: [4]models.Option{
			{Key: "A", Text: "Read the textbook pages about it", Modality: models.ModalityR},
			{Key: "B", Text: "Watch a video with pictures and animations", Modality: models.ModalityV},
			{Key: "C", Text: "Try a hands-on activity about it", Modality: models.ModalityK},
			{Key: "D", Text: "Listen to someone talk about it", Modality: models.ModalityA},
		},
	},
	{
		target: models.ModalityK,
		text:   "You are learning a new game. How do you figure out the rules?",
		options: [4]models.Option{
			{Key: "A", Text: "Jump in and learn by playing a practice round", Modality: models.ModalityK},
			{Key: "B", Text: "Have someone explain the rules to you", Modality: models.ModalityA},
			{Key: "C", Text: "Look at a picture guide of how the game works", Modality: models.ModalityV},
			{Key: "D", Text: "Read the instruction sheet yourself", Modality: models.ModalityR},
		},
	},
	{
		target: models.ModalityV,
		text:   "You forgot how to get to a friend's house. What do you do?",
		options: [4]models.Option{
			{Key: "A", Text: "Picture the route in your head or check a map", Modality: models.ModalityV},
			{Key: "B", Text: "Call and ask them to tell you the directions", Modality: models.ModalityA},
			{Key: "C", Text: "Find the directions you wrote down before", Modality: models.ModalityR},
			{Key: "D", Text: "Start walking and trust you'll remember the turns", Modality: models.ModalityK},
		},
	},
	{
		target: models.ModalityA,
		text:   "When you study for a test, what helps the material stick?",
		options: [4]models.Option{
			{Key: "A", Text: "Explaining it to someone or quizzing out loud", Modality: models.ModalityA},
			{Key: "B", Text: "Making flashcards and rereading your notes", Modality: models.ModalityR},
			{Key: "C", Text: "Drawing charts and color-coding your notes", Modality: models.ModalityV},
			{Key: "D", Text: "Walking around while you practice, or using objects to act it out", Modality: models.ModalityK},
		},
	},
	{
		target: models.ModalityR,
		text:   "You got a new gadget. What's your first move?",
		options: [4]models.Option{
			{Key: "A", Text: "Read the manual front to back", Modality: models.ModalityR},
			{Key: "B", Text: "Press buttons until you figure it out", Modality: models.ModalityK},
			{Key: "C", Text: "Ask someone to walk you through it", Modality: models.ModalityA},
			{Key: "D", Text: "Look at the setup diagrams on the box", Modality: models.ModalityV},
		},
	},
	{
		target: models.ModalityK,
		text:   "In science class, which kind of lesson do you enjoy most?",
		options: [4]models.Option{
			{Key: "A", Text: "Running the experiment yourself", Modality: models.ModalityK},
			{Key: "B", Text: "Watching a demonstration with clear visuals", Modality: models.ModalityV},
			{Key: "C", Text: "A discussion where everyone shares ideas", Modality: models.ModalityA},
			{Key: "D", Text: "Reading about the experiment and its results", Modality: models.ModalityR},
		},
	},
}

// clarifyingTemplate is the fixed forced-choice fallback served when a
// free-text answer classified with low confidence.
var clarifyingTemplate = questionTemplate{
	target: models.ModalityV,
	text:   "If you could pick just one way to learn something new, which would you choose?",
	options: [4]models.Option{
		{Key: "A", Text: "Seeing it — pictures, diagrams, videos", Modality: models.ModalityV},
		{Key: "B", Text: "Hearing it — someone explaining or discussing", Modality: models.ModalityA},
		{Key: "C", Text: "Reading it — books, notes, written steps", Modality: models.ModalityR},
		{Key: "D", Text: "Doing it — hands-on practice", Modality: models.ModalityK},
	},
}

func questionID(step int) string {
	return fmt.Sprintf("q-%d", step)
}

// SelectTemplate picks the question for the given step. When target is
// non-nil the catalog is filtered to templates probing that modality;
// the catalog guarantees at least one per modality, with the full
// catalog's first entry as a defensive fallback. Selection is
// deterministic and stateless: the same (step, target) always yields the
// same template content, tagged with a fresh step-derived identifier.
func SelectTemplate(step int, target *models.Modality) models.Question {
	pool := templateCatalog
	if target != nil {
		var filtered []questionTemplate
		for _, t := range templateCatalog {
			if t.target == *target {
				filtered = append(filtered, t)
			}
		}
		if len(filtered) > 0 {
			pool = filtered
		}
	}

	idx := step - 1
	if idx < 0 {
		idx = 0
	}
	return buildQuestion(pool[idx%len(pool)], step)
}

// SelectClarifyingTemplate returns the fixed clarifying question tagged
// with the given step's identifier.
func SelectClarifyingTemplate(step int) models.Question {
	return buildQuestion(clarifyingTemplate, step)
}

func buildQuestion(t questionTemplate, step int) models.Question {
	options := make([]models.Option, 0, len(t.options))
	for _, o := range t.options {
		options = append(options, o)
	}
	return models.Question{
		ID:      questionID(step),
		Text:    t.text,
		Options: options,
		Target:  t.target,
	}
}
