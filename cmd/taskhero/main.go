package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/kolapsis/taskhero/internal/auth"
	"github.com/kolapsis/taskhero/internal/briefing"
	"github.com/kolapsis/taskhero/internal/config"
	taskheromcp "github.com/kolapsis/taskhero/internal/mcp"
	"github.com/kolapsis/taskhero/internal/notify"
	"github.com/kolapsis/taskhero/internal/server"
	"github.com/kolapsis/taskhero/internal/store"
	"github.com/kolapsis/taskhero/internal/tracker"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "version":
		fmt.Printf("taskhero %s\n", version)
	case "check":
		cmdCheck(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: taskhero <command> [flags]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the TaskHero server\n")
	fmt.Fprintf(os.Stderr, "  check     Validate configuration\n")
	fmt.Fprintf(os.Stderr, "  version   Print version\n")
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	_ = fs.Parse(args) // ExitOnError handles errors

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	slog.Info("starting taskhero",
		"version", version,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	_ = fs.Parse(args) // ExitOnError handles errors

	_, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("configuration is valid")
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func setupLogging(cfg *config.Config) {
	var level slog.Level
	switch cfg.Server.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stdout
	if cfg.Server.LogFile != "" {
		f, err := os.OpenFile(cfg.Server.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
		if err != nil {
			slog.Warn("failed to open log file, using stdout only", "path", cfg.Server.LogFile, "error", err)
		} else {
			out = io.MultiWriter(os.Stdout, f)
		}
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func run(ctx context.Context, cfg *config.Config) error {
	// --- SQLite KV store ---
	dbPath := config.ExpandHome(cfg.Database.Path)
	kv, err := store.NewSQLiteKV(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = kv.Close() }()

	slog.Info("database opened", "path", dbPath)

	// --- Briefing provider ---
	provider := briefing.New(briefing.Config{
		APIKey:  cfg.Briefing.APIKey,
		BaseURL: cfg.Briefing.BaseURL,
		Model:   cfg.Briefing.Model,
		Timeout: cfg.Briefing.Timeout,
	})

	// --- Tracker ---
	tr := tracker.New(kv, provider)

	// --- Notifications ---
	var notifiers []notify.Notifier
	if cfg.Notifications.Ntfy.Enabled {
		n := cfg.Notifications.Ntfy
		notifiers = append(notifiers, notify.NewNtfyNotifier(n.Server, n.Topic, n.Token, n.Events))
	}
	for _, wh := range cfg.Notifications.Webhooks {
		notifiers = append(notifiers, notify.NewWebhookNotifier(wh.Name, wh.URL, wh.Secret, wh.Events))
	}
	if len(notifiers) > 0 {
		hub := notify.NewHub(notifiers...)
		tr.SetNotifyFunc(hub.Notify)
		slog.Info("notifications enabled", "notifiers", len(notifiers))
	}

	// --- Bearer token ---
	apiToken := cfg.Auth.APIToken
	if cfg.Auth.Enabled && apiToken == "" {
		apiToken, err = auth.LoadOrCreateToken(filepath.Dir(dbPath))
		if err != nil {
			return fmt.Errorf("loading API token: %w", err)
		}
		slog.Info("API token loaded", "path", filepath.Join(filepath.Dir(dbPath), "api_token"))
	}
	if !cfg.Auth.Enabled {
		apiToken = ""
	}

	// --- MCP server ---
	mcpSrv := taskheromcp.NewServer(&taskheromcp.Deps{
		Tracker: tr,
		Version: version,
	})
	mcpHTTP := mcpserver.NewStreamableHTTPServer(mcpSrv)

	// --- HTTP router ---
	r := chi.NewRouter()
	r.Use(server.SecurityHeaders)
	r.Use(server.RequestLogger)

	api := server.New(tr)
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(apiToken))
		r.Mount("/api", api.Routes())
		r.Handle("/mcp", mcpHTTP)
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- HTTP server ---
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("taskhero is ready", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
