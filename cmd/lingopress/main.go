// Package main is the entry point for the LingoPress admin console.
// It loads configuration, connects to Valkey and the content backend,
// sets up routing, and starts the HTTP server with graceful shutdown.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lingopress/internal/api"
	"lingopress/internal/config"
	"lingopress/internal/handlers"
	"lingopress/internal/models"
	"lingopress/internal/notify"
	"lingopress/internal/query"
	"lingopress/internal/render"
	"lingopress/internal/router"
	"lingopress/internal/services"
	"lingopress/internal/session"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"api", cfg.APIBaseURL,
	)

	// Connect to Valkey. Sessions and flash notifications live there, so the
	// console cannot run without it.
	valkeyClient, err := query.ConnectValkey(cfg.ValkeyAddr(), cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Session store backed by Valkey. In non-development environments the
	// session cookie is Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)
	flashStore := notify.NewStore(valkeyClient)

	// Transport client for the content backend.
	client := api.New(cfg.APIBaseURL)

	// Query cache: Valkey-backed by default, in-process when disabled.
	var backend query.Backend
	if cfg.CacheDisabled {
		slog.Warn("query cache running in-process — CACHE_DISABLED is set")
		backend = query.NewMemory()
	} else {
		backend = query.NewValkey(valkeyClient)
	}
	cache := query.NewCache(backend)

	// Per-resource services and their cached resource wrappers.
	usersSvc := services.NewUsers(client)

	categories := query.NewResource[models.Category, models.CategoryRequest](
		"categories", "category", services.NewCategories(client), cache, query.Messages{
			Created:      "Kategori başarıyla oluşturuldu",
			CreateFailed: "Kategori oluşturulurken bir hata oluştu, tekrar deneyiniz",
			Updated:      "Kategori başarıyla güncellendi",
			UpdateFailed: "Kategori güncellenirken bir hata oluştu, tekrar deneyiniz",
			Deleted:      "Kategori başarıyla silindi",
			DeleteFailed: "Kategori silinirken bir hata oluştu, tekrar deneyiniz",
		})
	tags := query.NewResource[models.Tag, models.TagRequest](
		"tags", "tag", services.NewTags(client), cache, query.Messages{
			Created:      "Tag başarıyla oluşturuldu",
			CreateFailed: "Tag oluşturulurken bir hata oluştu, tekrar deneyiniz",
			Updated:      "Tag başarıyla güncellendi",
			UpdateFailed: "Tag güncellenirken bir hata oluştu, tekrar deneyiniz",
			Deleted:      "Tag başarıyla silindi",
			DeleteFailed: "Tag silinirken bir hata oluştu, tekrar deneyiniz",
		})
	posts := query.NewResource[models.Post, models.PostRequest](
		"posts", "post", services.NewPosts(client), cache, query.Messages{
			Created:      "Post başarıyla oluşturuldu",
			CreateFailed: "Post oluşturulurken bir hata oluştu, tekrar deneyiniz",
			Updated:      "Post başarıyla güncellendi",
			UpdateFailed: "Post güncellenirken bir hata oluştu, tekrar deneyiniz",
			Deleted:      "Post başarıyla silindi",
			DeleteFailed: "Post silinirken bir hata oluştu, tekrar deneyiniz",
		})
	users := query.NewResource[models.User, models.UserRequest](
		"users", "user", usersSvc, cache, query.Messages{
			Created:      "Kullanıcı başarıyla oluşturuldu",
			CreateFailed: "Kullanıcı oluşturulurken bir hata oluştu, tekrar deneyiniz",
			Updated:      "Kullanıcı başarıyla güncellendi",
			UpdateFailed: "Kullanıcı güncellenirken bir hata oluştu, tekrar deneyiniz",
			Deleted:      "Kullanıcı başarıyla silindi",
			DeleteFailed: "Kullanıcı silinirken bir hata oluştu, tekrar deneyiniz",
		})

	// HTML template renderer for the admin pages.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Handler groups and the route table.
	adminHandlers := handlers.NewAdmin(renderer, sessionStore, flashStore, cache, usersSvc, categories, tags, posts, users)
	authHandlers := handlers.NewAuth(renderer, sessionStore, services.NewAuth(client), usersSvc)

	r := router.New(sessionStore, adminHandlers, authHandlers)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
