package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/dtroode/voicegate/internal/model"
)

var _ model.QuestionGenerator = (*Questioner)(nil)

const questionInstruction = `You write one short, direct, second-person question that a person answers
with a known personal value. First decide what kind of value it is (color, food, city, animal,
person, date, sport, ...), then ask the predictable question for that kind, for example
"What is your favorite color?" or "What city do you live in?".
Never include the value itself or any hint of it. Reply with the question only, in %s.`

// Questioner turns a factor into a confirmation question.
type Questioner struct {
	gen      contentGenerator
	model    string
	language string
}

func NewQuestioner(gen contentGenerator, model, language string) *Questioner {
	return &Questioner{
		gen:      gen,
		model:    model,
		language: language,
	}
}

func (q *Questioner) QuestionFor(ctx context.Context, factor string) (string, error) {
	resp, err := q.gen.GenerateContent(ctx, q.model, userText(fmt.Sprintf("Value: %q", factor)), &genai.GenerateContentConfig{
		SystemInstruction: systemText(fmt.Sprintf(questionInstruction, q.language)),
		Temperature:       genai.Ptr[float32](0.2),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate question: %w", err)
	}

	return responseText(resp)
}
