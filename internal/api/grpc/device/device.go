// Package device describes the voicegate.Device gRPC service.
//
// The service exchanges well-known wrapper messages, so the descriptor is
// maintained by hand instead of being generated from a .proto file.
package device

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "voicegate.Device"

const (
	InteractMethod = "/" + ServiceName + "/Interact"
	ConverseMethod = "/" + ServiceName + "/Converse"
)

// Metadata keys exchanged with devices.
const (
	HeaderAudioFormat   = "x-audio-format"
	HeaderTranscription = "x-transcription"
	HeaderResponseText  = "x-response-text"
	HeaderRecordSeconds = "x-record-duration"
	HeaderSessionState  = "x-session-state"
	HeaderInteractionID = "x-interaction-id"
)

// Server is the server API for the Device service.
type Server interface {
	// Interact takes one recorded utterance and returns the spoken reply.
	Interact(ctx context.Context, audio *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
	// Converse takes one pre-transcribed utterance and returns the reply text.
	Converse(ctx context.Context, text *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// Register registers srv on the gRPC service registrar.
func Register(s grpc.ServiceRegistrar, srv Server) {
	s.RegisterService(&ServiceDesc, srv)
}

func interactHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Server).Interact(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InteractMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(Server).Interact(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func converseHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Server).Converse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ConverseMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(Server).Converse(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// ServiceDesc is the grpc.ServiceDesc for the Device service.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*Server)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Interact", Handler: interactHandler},
		{MethodName: "Converse", Handler: converseHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "voicegate/device.proto",
}

// Client is the client API for the Device service.
type Client interface {
	Interact(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Converse(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a Device client over cc.
func NewClient(cc grpc.ClientConnInterface) Client {
	return &client{cc: cc}
}

func (c *client) Interact(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, InteractMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) Converse(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, ConverseMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
