package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/voicegate/internal/logger"
	"github.com/dtroode/voicegate/internal/model"
)

// ErrEmptyAudio is returned when a device sends no audio.
var ErrEmptyAudio = errors.New("audio payload is empty")

// TurnHandler advances a client's protocol by one utterance.
type TurnHandler interface {
	HandleInteraction(ctx context.Context, clientID, utterance string) model.Reply
}

// Default bounds of the speech and archive calls of one interaction.
const (
	DefaultTranscribeTimeout = 20 * time.Second
	DefaultSynthesizeTimeout = 20 * time.Second
	DefaultArchiveTimeout    = 10 * time.Second
)

// InteractionOption customizes an Interaction.
type InteractionOption func(*Interaction)

// WithSpeechTimeouts bounds the transcription and synthesis calls.
func WithSpeechTimeouts(transcribe, synthesize time.Duration) InteractionOption {
	return func(s *Interaction) {
		if transcribe > 0 {
			s.transcribeTimeout = transcribe
		}
		if synthesize > 0 {
			s.synthesizeTimeout = synthesize
		}
	}
}

// WithArchiveTimeout bounds each recording upload.
func WithArchiveTimeout(d time.Duration) InteractionOption {
	return func(s *Interaction) {
		if d > 0 {
			s.archiveTimeout = d
		}
	}
}

// Interaction turns device audio into protocol turns and speaks the replies.
type Interaction struct {
	protocol    TurnHandler
	transcriber model.Transcriber
	synthesizer model.Synthesizer
	recordings  model.RecordingStorage
	logger      *logger.Logger

	transcribeTimeout time.Duration
	synthesizeTimeout time.Duration
	archiveTimeout    time.Duration
}

// NewInteraction creates the orchestration service. recordings may be nil to disable archiving.
func NewInteraction(
	protocol TurnHandler,
	transcriber model.Transcriber,
	synthesizer model.Synthesizer,
	recordings model.RecordingStorage,
	logger *logger.Logger,
	opts ...InteractionOption,
) *Interaction {
	s := &Interaction{
		protocol:          protocol,
		transcriber:       transcriber,
		synthesizer:       synthesizer,
		recordings:        recordings,
		logger:            logger,
		transcribeTimeout: DefaultTranscribeTimeout,
		synthesizeTimeout: DefaultSynthesizeTimeout,
		archiveTimeout:    DefaultArchiveTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleAudio transcribes audio, runs one protocol turn and synthesizes the reply.
// Speech failures degrade to an empty transcript or a reply without audio.
func (s *Interaction) HandleAudio(ctx context.Context, clientID string, audio []byte, mimeType string) (model.InteractionResult, error) {
	if len(audio) == 0 {
		return model.InteractionResult{}, ErrEmptyAudio
	}

	interactionID := uuid.NewString()
	log := s.logger.With("client_id", clientID, "interaction_id", interactionID)

	transcript, err := s.transcribe(ctx, audio, mimeType)
	if err != nil {
		log.Warn("Interaction service: transcription failed", "error", err.Error())
		transcript = ""
	}
	transcript = strings.TrimSpace(transcript)

	reply := s.protocol.HandleInteraction(ctx, clientID, transcript)

	speech, err := s.synthesize(ctx, reply.Text)
	if err != nil {
		log.Warn("Interaction service: speech synthesis failed", "error", err.Error())
		speech = model.Audio{}
	}

	if s.recordings != nil && conversational(reply) {
		s.archive(ctx, log, clientID, interactionID, model.Audio{Data: audio, MIMEType: mimeType}, speech)
	}

	return model.InteractionResult{
		InteractionID: interactionID,
		Transcript:    transcript,
		Reply:         reply,
		Audio:         speech,
	}, nil
}

// HandleText runs one protocol turn for an already transcribed utterance.
func (s *Interaction) HandleText(ctx context.Context, clientID, text string) model.InteractionResult {
	transcript := strings.TrimSpace(text)
	return model.InteractionResult{
		InteractionID: uuid.NewString(),
		Transcript:    transcript,
		Reply:         s.protocol.HandleInteraction(ctx, clientID, transcript),
	}
}

// conversational reports whether the turn happened entirely inside an authenticated session.
func conversational(reply model.Reply) bool {
	return reply.PriorState == model.StateAuthenticated && reply.State == model.StateAuthenticated
}

func (s *Interaction) archive(ctx context.Context, log *logger.Logger, clientID, interactionID string, request, response model.Audio) {
	prefix := fmt.Sprintf("%s/%s", clientID, interactionID)

	for name, audio := range map[string]model.Audio{"request": request, "response": response} {
		if len(audio.Data) == 0 {
			continue
		}
		key := prefix + "/" + name + audioExtension(audio.MIMEType)
		if err := s.upload(ctx, key, audio); err != nil {
			log.Warn("Interaction service: failed to archive recording", "key", key, "error", err.Error())
		}
	}
}

func (s *Interaction) transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.transcribeTimeout)
	defer cancel()
	return s.transcriber.Transcribe(ctx, audio, mimeType)
}

func (s *Interaction) synthesize(ctx context.Context, text string) (model.Audio, error) {
	ctx, cancel := context.WithTimeout(ctx, s.synthesizeTimeout)
	defer cancel()
	return s.synthesizer.Synthesize(ctx, text)
}

func (s *Interaction) upload(ctx context.Context, key string, audio model.Audio) error {
	ctx, cancel := context.WithTimeout(ctx, s.archiveTimeout)
	defer cancel()
	return s.recordings.Upload(ctx, key, bytes.NewReader(audio.Data), int64(len(audio.Data)), audio.MIMEType)
}

func audioExtension(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "audio/wav", "audio/x-wav", "audio/wave":
		return ".wav"
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/ogg":
		return ".ogg"
	case "audio/pcm", "audio/l16":
		return ".pcm"
	default:
		return ".bin"
	}
}
