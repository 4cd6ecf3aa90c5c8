package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/dtroode/voicegate/internal/api/grpc/device"
	"github.com/dtroode/voicegate/internal/api/grpc/handler"
	"github.com/dtroode/voicegate/internal/api/grpc/middleware"
	"github.com/dtroode/voicegate/internal/logger"
	"github.com/dtroode/voicegate/internal/model"
)

// Router wires the device service and its middleware into a gRPC server.
type Router struct {
	interactions   handler.InteractionService
	tokens         model.DeviceTokenManager
	contextManager model.ClientContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	interactions handler.InteractionService,
	tokens model.DeviceTokenManager,
	contextManager model.ClientContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		interactions:   interactions,
		tokens:         tokens,
		contextManager: contextManager,
		logger:         logger,
	}
}

// authRequired skips authentication for the standard health service.
func authRequired(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/"+healthpb.Health_ServiceDesc.ServiceName+"/")
}

// Register builds the gRPC server with panic recovery, device authentication and request logging.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.contextManager, r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger)
	recoverPanic := recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		r.logger.Error("Router: recovered from panic", "panic", p)
		return status.Error(codes.Internal, "internal server error")
	})

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoverPanic),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
			logging.HandleGRPC,
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoverPanic),
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
	)
	r.registerHealth(s)
	r.registerDeviceRoutes(s)

	return s
}

func (r *Router) registerHealth(server *grpc.Server) {
	healthServer := health.NewServer()
	healthServer.SetServingStatus(device.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)
}

func (r *Router) registerDeviceRoutes(server *grpc.Server) {
	deviceHandler := handler.NewDevice(r.interactions, r.contextManager, r.logger)
	device.Register(server, deviceHandler)
}
