package gemini

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/genai"

	"github.com/dtroode/voicegate/internal/model"
)

var (
	_ model.Transcriber = (*Transcriber)(nil)
	_ model.Synthesizer = (*Synthesizer)(nil)
)

const (
	defaultSampleRate = 24000
	bitsPerSample     = 16
	channels          = 1
)

const transcribeInstruction = `Transcribe the speech in this recording verbatim.
The speaker says either a four-digit code, a short answer to a personal question, or talks freely,
usually in %s. Write spoken digits as numerals. Reply with the transcript only.
If there is no speech, reply with an empty message.`

// Transcriber converts device recordings to text.
type Transcriber struct {
	gen      contentGenerator
	model    string
	language string
}

func NewTranscriber(gen contentGenerator, model, language string) *Transcriber {
	return &Transcriber{
		gen:      gen,
		model:    model,
		language: language,
	}
}

// Transcribe returns an empty transcript for silent recordings.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "audio/wav"
	}

	contents := []*genai.Content{genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(fmt.Sprintf(transcribeInstruction, t.language)),
		genai.NewPartFromBytes(audio, mimeType),
	}, genai.RoleUser)}

	resp, err := t.gen.GenerateContent(ctx, t.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	})
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	text, err := responseText(resp)
	if errors.Is(err, ErrEmptyResponse) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

// Synthesizer speaks reply text with a prebuilt Gemini voice.
type Synthesizer struct {
	gen   contentGenerator
	model string
	voice string
}

func NewSynthesizer(gen contentGenerator, model, voice string) *Synthesizer {
	return &Synthesizer{
		gen:   gen,
		model: model,
		voice: voice,
	}
}

// Synthesize returns WAV audio.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (model.Audio, error) {
	if strings.TrimSpace(text) == "" {
		return model.Audio{}, errors.New("nothing to synthesize")
	}

	resp, err := s.gen.GenerateContent(ctx, s.model, userText(text), &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.voice},
			},
		},
	})
	if err != nil {
		return model.Audio{}, fmt.Errorf("failed to synthesize speech: %w", err)
	}

	data, mimeType, err := responseAudio(resp)
	if err != nil {
		return model.Audio{}, err
	}

	if strings.Contains(strings.ToLower(mimeType), "wav") {
		return model.Audio{Data: data, MIMEType: "audio/wav"}, nil
	}

	return model.Audio{
		Data:     pcmToWAV(data, sampleRate(mimeType)),
		MIMEType: "audio/wav",
	}, nil
}

// sampleRate reads the rate parameter of e.g. "audio/L16;codec=pcm;rate=24000".
func sampleRate(mimeType string) int {
	for _, param := range strings.Split(mimeType, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || !strings.EqualFold(key, "rate") {
			continue
		}
		if rate, err := strconv.Atoi(value); err == nil && rate > 0 {
			return rate
		}
	}
	return defaultSampleRate
}

// pcmToWAV wraps 16-bit mono little-endian PCM in a RIFF header.
func pcmToWAV(pcm []byte, rate int) []byte {
	dataLen := len(pcm)
	byteRate := rate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+dataLen))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(rate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(bitsPerSample))
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataLen))

	return append(header, pcm...)
}
