package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	csrf "github.com/utrack/gin-csrf"

	"pdf-summarizer/config"
	"pdf-summarizer/llm"
	"pdf-summarizer/results"
	"pdf-summarizer/summarize"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	generator, err := newGenerator(ctx, cfg)
	if err != nil {
		slog.Error("building inference client failed", "error", err)
		os.Exit(1)
	}
	if closer, ok := generator.(io.Closer); ok {
		defer closer.Close()
	}

	store := results.NewStore(cfg.ResultTTL)
	h := summarize.NewHandler(generator, store)

	r := gin.Default()
	r.Use(sessions.Sessions("summarizer", cookie.NewStore([]byte(cfg.SessionSecret))))
	r.Use(csrf.Middleware(csrf.Options{
		Secret: cfg.SessionSecret,
		ErrorFunc: func(c *gin.Context) {
			c.String(http.StatusBadRequest, "CSRF token mismatch")
			c.Abort()
		},
	}))
	r.LoadHTMLGlob("templates/*")
	h.RegisterRoutes(r)

	slog.Info("listening", "addr", cfg.ListenAddr, "backend", cfg.LLMBackend, "model", cfg.ModelName)
	if err := r.Run(cfg.ListenAddr); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newGenerator(ctx context.Context, cfg config.Config) (llm.Generator, error) {
	switch cfg.LLMBackend {
	case "openai":
		return llm.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	default:
		return llm.NewVertexGenerator(ctx, cfg.ProjectID, cfg.Region, cfg.ModelName)
	}
}
