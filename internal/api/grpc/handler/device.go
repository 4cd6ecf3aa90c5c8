package handler

import (
	"context"
	"net/url"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/voicegate/internal/api/grpc/device"
	"github.com/dtroode/voicegate/internal/logger"
	"github.com/dtroode/voicegate/internal/model"
)

// defaultAudioFormat is assumed when a device does not label its recording.
const defaultAudioFormat = "audio/wav"

// InteractionService runs device turns.
type InteractionService interface {
	HandleAudio(ctx context.Context, clientID string, audio []byte, mimeType string) (model.InteractionResult, error)
	HandleText(ctx context.Context, clientID, text string) model.InteractionResult
}

var _ device.Server = (*Device)(nil)

// Device handles the voicegate.Device endpoints.
type Device struct {
	interactions   InteractionService
	contextManager model.ClientContextManager
	logger         *logger.Logger
}

// NewDevice creates a new Device handler.
func NewDevice(interactions InteractionService, contextManager model.ClientContextManager, logger *logger.Logger) *Device {
	return &Device{
		interactions:   interactions,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Interact runs one spoken turn and returns the synthesized reply.
func (h *Device) Interact(ctx context.Context, req *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	clientID, ok := h.contextManager.GetClientIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "client id is missing")
	}

	format := audioFormat(ctx)
	h.logger.Debug("Device handler: processing interaction",
		"client_id", clientID,
		"audio_bytes", len(req.GetValue()),
		"audio_format", format)

	result, err := h.interactions.HandleAudio(ctx, clientID, req.GetValue(), format)
	if err != nil {
		h.logger.Error("Device handler: interaction failed",
			"client_id", clientID,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.sendHeader(ctx, clientID, result)

	return wrapperspb.Bytes(result.Audio.Data), nil
}

// Converse runs one pre-transcribed turn and returns the reply text.
func (h *Device) Converse(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	clientID, ok := h.contextManager.GetClientIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "client id is missing")
	}

	result := h.interactions.HandleText(ctx, clientID, req.GetValue())
	h.sendHeader(ctx, clientID, result)

	return wrapperspb.String(result.Reply.Text), nil
}

func (h *Device) sendHeader(ctx context.Context, clientID string, result model.InteractionResult) {
	md := metadata.Pairs(
		device.HeaderInteractionID, result.InteractionID,
		device.HeaderTranscription, url.QueryEscape(result.Transcript),
		device.HeaderResponseText, url.QueryEscape(result.Reply.Text),
		device.HeaderRecordSeconds, strconv.Itoa(result.Reply.ListenSeconds()),
		device.HeaderSessionState, result.Reply.State.String(),
	)
	if result.Audio.MIMEType != "" {
		md.Set(device.HeaderAudioFormat, result.Audio.MIMEType)
	}

	if err := grpc.SetHeader(ctx, md); err != nil {
		h.logger.Warn("Device handler: failed to set response header",
			"client_id", clientID,
			"error", err.Error())
	}
}

func audioFormat(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return defaultAudioFormat
	}
	if values := md.Get(device.HeaderAudioFormat); len(values) > 0 && values[0] != "" {
		return values[0]
	}
	return defaultAudioFormat
}
