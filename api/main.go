package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avasin/notion-folio/backend/internal/config"
	"github.com/avasin/notion-folio/backend/internal/content"
	"github.com/avasin/notion-folio/backend/internal/logger"
	"github.com/avasin/notion-folio/backend/internal/models"
	"github.com/avasin/notion-folio/backend/internal/notion"
)

func main() {
	log := logger.New("api")
	cfg, err := config.LoadAPI()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	store := notion.New(cfg.NotionToken, log)
	svc := content.NewService(store, cfg.Databases, log)

	srv := &server{log: log, cfg: cfg, content: svc}

	httpServer := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           srv.router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		log.Info("api server starting", slog.String("addr", cfg.BindAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", slog.Any("err", err))
	}
}

type server struct {
	log     *slog.Logger
	cfg     *config.API
	content *content.Service
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/api/projects", s.handleProjects)
	r.Get("/api/experience", s.handleExperience)
	r.Get("/api/blog", s.handleBlogPosts)
	r.Get("/api/blog/{id}", s.handleBlogPost)
	r.Get("/api/reading", s.handleReading)
	r.Get("/api/quotes", s.handleQuotes)
	r.Get("/api/settings", s.handleSettings)
	r.Get("/api/tweets", s.handleTweets)
	r.Get("/api/home", s.handleHome)

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleProjects(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	projects, err := s.content.Projects(ctx)
	if err != nil {
		s.log.Error("fetch projects", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to fetch projects"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

func (s *server) handleExperience(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	experiences, err := s.content.Experience(ctx)
	if err != nil {
		s.log.Error("fetch experience", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to fetch experience"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"experiences": experiences})
}

func (s *server) handleBlogPosts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	posts, err := s.content.BlogPosts(ctx)
	if err != nil {
		s.log.Error("fetch blog posts", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to fetch blog posts"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (s *server) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	id := chi.URLParam(r, "id")

	post, err := s.content.BlogPost(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "blog post not found"})
			return
		}
		s.log.Error("fetch blog post", slog.String("id", id), slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to fetch blog post"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}

func (s *server) handleReading(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	books, err := s.content.ReadingList(ctx)
	if err != nil {
		s.log.Error("fetch reading list", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to fetch reading list"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"books": books})
}

func (s *server) handleQuotes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	quotes, featured := s.content.Quotes(ctx)
	writeJSON(w, http.StatusOK, map[string]any{"quotes": quotes, "featured": featured})
}

func (s *server) handleSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	settings, err := s.content.Settings(ctx)
	if err != nil {
		s.log.Error("fetch settings", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to fetch site settings"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"settings": settings})
}

func (s *server) handleTweets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	featuredOnly := strings.EqualFold(r.URL.Query().Get("featured"), "true")
	limit := clampInt(r.URL.Query().Get("limit"), s.cfg.TweetLimit, s.cfg.TweetLimit)

	tweets, err := s.content.Tweets(ctx, featuredOnly, limit)
	if err != nil {
		s.log.Error("fetch tweets", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to fetch tweets"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tweets": tweets})
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	writeJSON(w, http.StatusOK, s.content.Home(ctx, s.cfg.TweetLimit))
}

func clampInt(raw string, fallback, max int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	if value <= 0 {
		return fallback
	}
	if value > max {
		return max
	}
	return value
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// nothing better to do
	}
}
