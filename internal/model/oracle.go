package model

import "context"

// FactorOracle judges whether a spoken answer is equivalent to the expected factor.
type FactorOracle interface {
	IsEquivalent(ctx context.Context, expected, answer string) (bool, error)
}

// QuestionGenerator produces a confirmation question for a factor without revealing it.
type QuestionGenerator interface {
	QuestionFor(ctx context.Context, factor string) (string, error)
}

// ConversationalEngine answers authenticated users and returns their updated context.
type ConversationalEngine interface {
	Respond(ctx context.Context, utterance string, userContext UserContext) (string, UserContext, error)
}

// Transcriber converts recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// Synthesizer converts text into speech.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (Audio, error)
}

// Audio is an encoded audio payload.
type Audio struct {
	Data     []byte
	MIMEType string
}
