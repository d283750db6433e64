package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vmunix/chatarr/internal/chat"
	"github.com/vmunix/chatarr/internal/config"
	"github.com/vmunix/chatarr/internal/history"
	"github.com/vmunix/chatarr/internal/media"
	"github.com/vmunix/chatarr/internal/nlu"
	"github.com/vmunix/chatarr/internal/server"
	"github.com/vmunix/chatarr/internal/session"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(cfg config.ServerConfig) *slog.Logger {
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    20, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		})
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

func runServer(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := newLogger(cfg.Server)

	// Ensure database directory exists
	dbDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	histStore, err := history.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	defer func() { _ = histStore.Close() }()

	// === Session store (Redis when configured, in-memory otherwise) ===
	var sessions session.Store
	var memStore *session.MemoryStore
	if cfg.Session.RedisAddr != "" {
		sessions = session.NewRedisStore(cfg.Session.RedisAddr, cfg.Session.RedisPassword,
			cfg.Session.RedisDB, cfg.Session.TTL.Duration)
		logger.Info("using redis session store", "addr", cfg.Session.RedisAddr)
	} else {
		memStore = session.NewMemoryStore(cfg.Session.TTL.Duration)
		sessions = memStore
	}

	// === Manager clients (nil if not configured) ===
	var radarr *media.RadarrClient
	if cfg.Radarr.URL != "" {
		var opts []media.RadarrOption
		if cfg.Radarr.RootFolder != "" {
			opts = append(opts, media.WithRadarrRootFolder(cfg.Radarr.RootFolder))
		}
		if cfg.Radarr.QualityProfile != 0 {
			opts = append(opts, media.WithRadarrQualityProfile(cfg.Radarr.QualityProfile))
		}
		radarr = media.NewRadarrClient(cfg.Radarr.URL, cfg.Radarr.APIKey, opts...)
	}
	var sonarr *media.SonarrClient
	if cfg.Sonarr.URL != "" {
		var opts []media.SonarrOption
		if cfg.Sonarr.RootFolder != "" {
			opts = append(opts, media.WithSonarrRootFolder(cfg.Sonarr.RootFolder))
		}
		if cfg.Sonarr.QualityProfile != 0 {
			opts = append(opts, media.WithSonarrQualityProfile(cfg.Sonarr.QualityProfile))
		}
		sonarr = media.NewSonarrClient(cfg.Sonarr.URL, cfg.Sonarr.APIKey, opts...)
	}
	router := media.NewRouter(radarr, sonarr)

	// === Language model + orchestration ===
	var nluOpts []nlu.OpenAIOption
	if cfg.LLM.Model != "" {
		nluOpts = append(nluOpts, nlu.WithModel(cfg.LLM.Model))
	}
	nluSvc := nlu.NewOpenAIService(cfg.LLM.APIKey, cfg.LLM.BaseURL, nluOpts...)

	dispatcher := chat.NewDispatcher(nluSvc, router, sessions,
		logger.With("component", "chat"),
		chat.WithMaxCandidates(cfg.Session.MaxCandidates))

	// === HTTP surface ===
	api := server.New(dispatcher, histStore, cfg.Chat.HistoryLimit, logger.With("component", "api"))
	mux := http.NewServeMux()
	api.RegisterRoutes(mux)
	handler := server.LogRequests(mux, logger.With("component", "http"))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	runner := server.NewRunner(addr, handler, memStore, logger.With("component", "server"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("chatarrd starting", "version", version, "addr", addr)
	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("chatarrd stopped")
	return nil
}
