package main

import (
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/servvia/servvia/pkg/ai"
	"github.com/servvia/servvia/pkg/bootstrap"
	"github.com/servvia/servvia/pkg/config"
	"github.com/servvia/servvia/pkg/conversation"
	"github.com/servvia/servvia/pkg/httpapi"
	"github.com/servvia/servvia/pkg/observability"
	"github.com/servvia/servvia/pkg/pipeline"
	"github.com/servvia/servvia/pkg/profile"
	"github.com/servvia/servvia/pkg/rephrase"
	"github.com/servvia/servvia/pkg/retrieval"
)

func main() {
	logger := bootstrap.NewLogger()

	envs, err := config.LoadConfig(false)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Info("Using database path", "path", envs.DBPath)

	if err := os.MkdirAll(filepath.Dir(envs.DBPath), 0o755); err != nil {
		logger.Error("Failed to create database directory", "error", err)
		os.Exit(1)
	}

	natsServer, err := bootstrap.StartEmbeddedNATSServer(logger, envs.NatsPort)
	if err != nil {
		logger.Error("Failed to start NATS server", "error", err)
		os.Exit(1)
	}
	defer natsServer.Shutdown()

	natsClient, err := bootstrap.NewNatsClient(envs.NatsPort)
	if err != nil {
		logger.Error("Failed to connect NATS client", "error", err)
		os.Exit(1)
	}
	defer natsClient.Close()

	// Redis is optional. Without an address the store runs purely on the
	// in-process map; with one, Redis faults still degrade to the map.
	var backend conversation.Backend
	if envs.RedisAddr != "" {
		backend = conversation.NewRedisBackend(redis.NewClient(&redis.Options{Addr: envs.RedisAddr}))
		logger.Info("Using Redis context backend", "addr", envs.RedisAddr)
	} else {
		backend = conversation.NewMemoryBackend()
		logger.Info("Using in-memory context backend")
	}

	store := conversation.NewStore(backend, logger, conversation.Options{
		TTL:            envs.ContextTTL,
		MaxHistory:     envs.MaxHistory,
		HistoryCharCap: envs.HistoryCharCap,
	})
	reconciler := conversation.NewReconciler(store, logger, envs.AdditionKeywordMinLen)

	profiles, err := profile.NewStore(envs.DBPath)
	if err != nil {
		logger.Error("Unable to create or initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := profiles.Close(); err != nil {
			logger.Error("Error closing profile store", "error", err)
		}
	}()
	logger.Info("SQLite profile store initialized")

	aiService := ai.NewOpenAIService(logger, envs.CompletionsAPIKey, envs.CompletionsAPIURL)

	var retriever pipeline.Retriever
	if envs.RetrievalURL != "" {
		retriever = retrieval.NewClient(envs.RetrievalURL, envs.RetrievalTimeout, logger)
	} else {
		logger.Warn("No retrieval URL configured, answering without knowledge base")
	}

	metrics := observability.NewMetrics("servvia")

	orchestrator := pipeline.NewOrchestrator(pipeline.Deps{
		Logger:            logger,
		Store:             store,
		Reconciler:        reconciler,
		Profiles:          profiles,
		Retriever:         retriever,
		Rephraser:         rephrase.NewRephraser(aiService, envs.RephraseModel, logger),
		Completion:        aiService,
		Model:             envs.CompletionsModel,
		Metrics:           metrics,
		Nats:              natsClient,
		TopK:              envs.RetrievalTopK,
		RetrievalTimeout:  envs.RetrievalTimeout,
		GenerationTimeout: envs.GenerationTimeout,
	})

	server := httpapi.NewServer(logger, orchestrator, store)

	go func() {
		logger.Info("HTTP server listening", "port", envs.HTTPPort)
		if err := http.ListenAndServe(":"+envs.HTTPPort, server.Router()); err != nil {
			logger.Error("HTTP server stopped", "error", err)
			os.Exit(1)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	<-signalChan
	logger.Info("Shutting down")
}
