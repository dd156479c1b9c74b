package classifier

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
	"github.com/vark-assess/backend/internal/models"
)

// Classifier scores a free-text answer against the four VARK modalities.
// The result's score fields are nominally in [0,1] and confidence is in
// [0,1]; responses are schema-validated before they reach the caller.
type Classifier interface {
	Classify(ctx context.Context, text string) (*models.ClassifierResult, error)
}

// New selects the classifier implementation from the environment:
// MOCK_CLASSIFIER=true for the keyword heuristic, otherwise the
// Anthropic API with the model from ANTHROPIC_MODEL.
func New() Classifier {
	if os.Getenv("MOCK_CLASSIFIER") == "true" {
		log.Println("Classifier using keyword heuristic (mock)")
		return NewMockClassifier()
	}

	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = "claude-3-5-haiku-20241022"
	}
	log.Println("Classifier using Anthropic API:", model)
	return NewAPIClassifier(model)
}

const systemPrompt = `You are a learning-style classifier for the VARK model (Visual, Auditory, Read/write, Kinesthetic).

Given a student's free-text answer about how they prefer to learn, score how strongly it signals each modality.

Respond with ONLY a JSON object in exactly this shape, no prose and no markdown:
{"scores":{"v":0.0,"a":0.0,"r":0.0,"k":0.0},"confidence":0.0}

Each score is between 0 and 1 (they need not sum to 1). Confidence is between 0 and 1 and reflects how clearly the text signals any learning preference at all. Vague or off-topic answers get low confidence.`

// ── APIClassifier — Anthropic SDK ──────────────────────────

type APIClassifier struct {
	client *anthropic.Client
	model  string
}

func NewAPIClassifier(model string) *APIClassifier {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIClassifier{client: &client, model: model}
}

func (c *APIClassifier) Classify(ctx context.Context, text string) (*models.ClassifierResult, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   256,
		Temperature: param.NewOpt(0.0),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	}

	message, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	result, err := ParseResult(responseText)
	if err != nil {
		return nil, fmt.Errorf("parse classifier response: %w", err)
	}
	return result, nil
}

func (c *APIClassifier) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.Printf("Retrying Anthropic API call in %v (attempt %d)", sleepDuration, attempt+1)
			time.Sleep(sleepDuration)
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.Printf("Anthropic API attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}
