package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/voicegate/internal/api/grpc/context"
	"github.com/dtroode/voicegate/internal/api/grpc/router"
	grpcServer "github.com/dtroode/voicegate/internal/api/grpc/server"
	"github.com/dtroode/voicegate/internal/config"
	"github.com/dtroode/voicegate/internal/logger"
	"github.com/dtroode/voicegate/internal/model"
	"github.com/dtroode/voicegate/internal/oracle/gemini"
	"github.com/dtroode/voicegate/internal/repository/postgres"
	"github.com/dtroode/voicegate/internal/repository/redis"
	"github.com/dtroode/voicegate/internal/sealed"
	"github.com/dtroode/voicegate/internal/server"
	"github.com/dtroode/voicegate/internal/service"
	storage "github.com/dtroode/voicegate/internal/storage/minio"
	"github.com/dtroode/voicegate/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	db, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("failed to initialize session store", "error", err)
	}
	defer redisClient.Close()

	sealer, err := sealed.NewSealer(cfg.Crypto.AgeIdentity)
	if err != nil {
		logger.Fatal("failed to initialize factor encryption", "error", err)
	}

	genaiClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey)
	if err != nil {
		logger.Fatal("failed to initialize gemini client", "error", err)
	}

	userRepo := postgres.NewUserRepository(db)
	contextRepo := postgres.NewContextRepository(db)
	sessionRepo := redis.NewSessionRepository(redisClient, cfg.Redis.KeyPrefix)

	protocol := service.NewProtocol(
		service.ProtocolDeps{
			Credentials: userRepo,
			Contexts:    contextRepo,
			Sessions:    sessionRepo,
			Cipher:      sealer,
			Oracle:      gemini.NewJudge(genaiClient.Models, cfg.Gemini.Model, logger),
			Questions:   gemini.NewQuestioner(genaiClient.Models, cfg.Gemini.Model, cfg.Gemini.Language),
			Engine:      gemini.NewAssistant(genaiClient.Models, cfg.Gemini.AssistantModel, cfg.Gemini.Language, logger),
		},
		service.Policy{
			SessionTTL:          cfg.Protocol.SessionTTL,
			IdentityTTL:         cfg.Protocol.IdentityTTL,
			OracleTimeout:       cfg.Protocol.OracleTimeout,
			TurnTimeout:         cfg.Protocol.TurnTimeout,
			ListenDefault:       cfg.Protocol.ListenDefault,
			ListenAuthenticated: cfg.Protocol.ListenAuthenticated,
			MaxFactorAttempts:   cfg.Protocol.MaxFactorAttempts,
		},
		service.Keywords{
			Cancel: cfg.Protocol.CancelKeywords,
			Logout: cfg.Protocol.LogoutKeywords,
		},
		logger,
	)

	var recordings model.RecordingStorage
	if cfg.Storage.Enabled {
		storageClient, err := storage.New(ctx, cfg.Storage)
		if err != nil {
			logger.Fatal("failed to initialize recording storage", "error", err)
		}
		recordings = storageClient
	}

	interactions := service.NewInteraction(
		protocol,
		gemini.NewTranscriber(genaiClient.Models, cfg.Gemini.TranscriptionModel, cfg.Gemini.Language),
		gemini.NewSynthesizer(genaiClient.Models, cfg.Gemini.SpeechModel, cfg.Gemini.Voice),
		recordings,
		logger,
		service.WithSpeechTimeouts(cfg.Speech.TranscribeTimeout, cfg.Speech.SynthesizeTimeout),
		service.WithArchiveTimeout(cfg.Storage.UploadTimeout),
	)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.DeviceTokenTTL)
	ctxMgr := grpcctx.NewManager()

	grpcServer := registerGRPCServer(logger, interactions, tokenManager, ctxMgr, fmt.Sprintf(":%s", cfg.GRPC.Port))
	sl := server.NewSecurityLayer(cfg.GRPC)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "tls", cfg.GRPC.EnableHTTPS)
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerGRPCServer(
	logger *logger.Logger,
	interactions *service.Interaction,
	tokens model.DeviceTokenManager,
	ctxMgr model.ClientContextManager,
	addr string,
) *grpcServer.GRPCServer {
	r := router.New(interactions, tokens, ctxMgr, logger)
	s := r.Register()

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, addr)
}
